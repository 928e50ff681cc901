package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/Simplici0/sheetquote/internal/db"
	"github.com/Simplici0/sheetquote/internal/migrations"
	"github.com/Simplici0/sheetquote/internal/pricing"
	"github.com/Simplici0/sheetquote/internal/quotepdf"
	"github.com/Simplici0/sheetquote/internal/seed"
	"github.com/Simplici0/sheetquote/internal/store"
)

const vinylStockQuote = `{
	"customer_id": "CNG",
	"lines": [{"type": "stock", "sku": "VN-030-4896-WH", "quantity": 10}]
}`

func newTestServer(t *testing.T) (*server, *store.Store) {
	t.Helper()
	ctx := context.Background()

	database, err := db.Open(ctx, filepath.Join(t.TempDir(), "server-test.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := migrations.Up(database); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	if _, err := seed.Run(ctx, database); err != nil {
		t.Fatalf("failed to seed reference data: %v", err)
	}

	next := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		now := next
		next = next.Add(time.Hour)
		return now
	}

	st := store.New(database, store.WithClock(clock))
	return newServer(st, pricing.NewEngine(), quotepdf.New("")), st
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rr.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to decode response %q: %v", rr.Body.String(), err)
	}
	return v
}

func TestPostQuotePricesAndStoresSnapshot(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.routes(nil)

	rr := doRequest(t, h, http.MethodPost, "/quote", vinylStockQuote)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %q", ct)
	}

	rec := decodeBody[store.QuoteRecord](t, rr)
	if rec.ID <= 0 || rec.Reference == "" || rec.NumLines != 1 {
		t.Fatalf("unexpected record header: %+v", rec)
	}
	if !rec.IncludeFreight {
		t.Fatalf("include_freight should default to true")
	}
	line := rec.Lines[0]
	if line.TotalColumn != 12 || line.SellPricePerUnit != 24.888 || line.ExtendedSellPrice != 248.88 {
		t.Fatalf("unexpected line pricing: %+v", line)
	}
	if rec.NaturalTotal != 248.88 || rec.MinimumOrderValue != 550 || rec.QuoteTotal != 550 {
		t.Fatalf("unexpected totals: natural=%v minimum=%v total=%v", rec.NaturalTotal, rec.MinimumOrderValue, rec.QuoteTotal)
	}

	detail := doRequest(t, h, http.MethodGet, "/quotes/1", "")
	if detail.Code != http.StatusOK {
		t.Fatalf("expected status 200 for detail, got %d", detail.Code)
	}
	stored := decodeBody[store.QuoteRecord](t, detail)
	want, _ := json.Marshal(rec.QuoteResponse)
	got, _ := json.Marshal(stored.QuoteResponse)
	if !bytes.Equal(want, got) {
		t.Fatalf("stored quote differs from priced quote:\n got %s\nwant %s", got, want)
	}
}

func TestPostQuoteHonorsIncludeFreightFalse(t *testing.T) {
	srv, _ := newTestServer(t)

	rr := doRequest(t, srv.routes(nil), http.MethodPost, "/quote", `{
		"customer_id": "CNG",
		"include_freight": false,
		"lines": [{"type": "stock", "sku": "VN-030-4896-WH", "quantity": 10}]
	}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	rec := decodeBody[store.QuoteRecord](t, rr)
	if rec.IncludeFreight || rec.Lines[0].TotalColumn != 10 {
		t.Fatalf("freight offset should not apply: %+v", rec.Lines[0])
	}
}

func TestListQuotesNewestFirstWithCustomerFilter(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.routes(nil)

	for _, body := range []string{
		vinylStockQuote,
		`{"customer_id": "ACME", "lines": [{"type": "ad_hoc", "description": "Crating", "weight_per_unit": 0, "landed_cost_per_unit": 35, "quantity": 1}]}`,
		vinylStockQuote,
	} {
		if rr := doRequest(t, h, http.MethodPost, "/quote", body); rr.Code != http.StatusOK {
			t.Fatalf("seed quote failed with %d: %s", rr.Code, rr.Body.String())
		}
	}

	all := decodeBody[[]store.QuoteSummary](t, doRequest(t, h, http.MethodGet, "/quotes", ""))
	if len(all) != 3 {
		t.Fatalf("expected 3 quotes, got %d", len(all))
	}
	if all[0].ID != 3 || all[1].ID != 2 || all[2].ID != 1 {
		t.Fatalf("quotes are not sorted newest first: %+v", all)
	}
	if !all[0].CreatedAt.After(all[2].CreatedAt) {
		t.Fatalf("created_at should fall with position: %+v", all)
	}

	acme := decodeBody[[]store.QuoteSummary](t, doRequest(t, h, http.MethodGet, "/quotes?customer_id=ACME", ""))
	if len(acme) != 1 || acme[0].CustomerID != "ACME" || acme[0].QuoteTotal != 150 {
		t.Fatalf("unexpected filtered quotes: %+v", acme)
	}
}

func TestRejectedQuoteIsNotStored(t *testing.T) {
	srv, st := newTestServer(t)
	h := srv.routes(nil)

	rr := doRequest(t, h, http.MethodPost, "/quote", `{"customer_id": "NOPE", "lines": [{"type": "stock", "sku": "VN-030-4896-WH", "quantity": 1}]}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}

	quotes, err := st.ListQuotes(context.Background(), "")
	if err != nil {
		t.Fatalf("ListQuotes: %v", err)
	}
	if len(quotes) != 0 {
		t.Fatalf("rejected quote should not be stored, got %+v", quotes)
	}
}

func TestQuoteDetailNotFoundAndBadID(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.routes(nil)

	for _, tc := range []struct {
		target string
		status int
	}{
		{"/quotes/42", http.StatusNotFound},
		{"/quotes/abc", http.StatusBadRequest},
		{"/quotes/0", http.StatusBadRequest},
		{"/quotes/-3/pdf", http.StatusBadRequest},
		{"/quotes/42/pdf", http.StatusNotFound},
	} {
		rr := doRequest(t, h, http.MethodGet, tc.target, "")
		if rr.Code != tc.status {
			t.Fatalf("%s: expected status %d, got %d", tc.target, tc.status, rr.Code)
		}
		resp := decodeBody[errorResponse](t, rr)
		if resp.Message == "" {
			t.Fatalf("%s: expected an error message", tc.target)
		}
	}
}
