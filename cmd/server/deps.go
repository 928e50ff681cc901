package main

import (
	"context"

	"github.com/Simplici0/sheetquote/internal/pricing"
	"github.com/Simplici0/sheetquote/internal/store"
)

//go:generate mockgen -source=deps.go -destination=store_mock_test.go -package=main

// quoteStore is the persistence the handlers need; *store.Store implements it.
type quoteStore interface {
	Ping() error
	Snapshot(ctx context.Context) (pricing.Snapshot, error)

	ListCustomers(ctx context.Context) ([]pricing.Customer, error)
	UpdateCustomer(ctx context.Context, id string, patch store.CustomerPatch) (pricing.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error

	ListItems(ctx context.Context) ([]pricing.Item, error)
	UpdateItem(ctx context.Context, sku string, patch store.ItemPatch) (pricing.Item, error)
	DeleteItem(ctx context.Context, sku string) error

	AppendQuote(ctx context.Context, resp pricing.QuoteResponse) (store.QuoteRecord, error)
	ListQuotes(ctx context.Context, customerID string) ([]store.QuoteSummary, error)
	GetQuote(ctx context.Context, id int64) (store.QuoteRecord, error)
}

type pdfRenderer interface {
	Generate(rec store.QuoteRecord) ([]byte, error)
}
