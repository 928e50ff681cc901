package pricing

import "strings"

// Customer is a quoting customer. ColumnBreak encodes per-material base
// columns, e.g. "VN10ST20AP15".
type Customer struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	ColumnBreak         string `json:"column_break,omitempty"`
	FreightColumnOffset int    `json:"freight_column_offset,omitempty"`
}

// Item is a stock catalog entry. Optional numeric fields are nil when the
// catalog has no value for them.
type Item struct {
	SKU           string   `json:"sku"`
	Description   string   `json:"description"`
	Material      string   `json:"material,omitempty"`
	MaterialCode  string   `json:"material_code,omitempty"`
	Color         string   `json:"color,omitempty"`
	Surface       string   `json:"surface,omitempty"`
	Gauge         *float64 `json:"gauge,omitempty"`
	Width         *float64 `json:"width,omitempty"`
	Length        *float64 `json:"length,omitempty"`
	WeightPerUnit *float64 `json:"weight_per_unit,omitempty"`
	AvgCost       *float64 `json:"avg_cost,omitempty"`
	BaseColumn    *int     `json:"base_column,omitempty"`
}

// Catalog is a read-only view of customers and items.
type Catalog interface {
	Customer(id string) (Customer, bool)
	Item(sku string) (Item, bool)
}

type mapCatalog struct {
	customers map[string]Customer
	items     map[string]Item
}

// NewCatalog returns an immutable Catalog over copies of the given rows.
// SKU and customer id lookups are exact after trimming spaces.
func NewCatalog(customers []Customer, items []Item) Catalog {
	c := mapCatalog{
		customers: make(map[string]Customer, len(customers)),
		items:     make(map[string]Item, len(items)),
	}
	for _, cu := range customers {
		c.customers[strings.TrimSpace(cu.ID)] = cu
	}
	for _, it := range items {
		c.items[strings.TrimSpace(it.SKU)] = it
	}
	return c
}

func (c mapCatalog) Customer(id string) (Customer, bool) {
	cu, ok := c.customers[strings.TrimSpace(id)]
	return cu, ok
}

func (c mapCatalog) Item(sku string) (Item, bool) {
	it, ok := c.items[strings.TrimSpace(sku)]
	return it, ok
}

// Snapshot is one consistent view of every reference table a quote reads.
type Snapshot struct {
	Catalog      Catalog
	Materials    *MaterialTable
	Costs        SheetCoster
	WeightBreaks WeightBreaks
	Pricer       SellPricer
}

func (s Snapshot) check() error {
	switch {
	case s.Catalog == nil:
		return &ConfigurationError{Table: "catalog", Reason: "is missing"}
	case s.Materials == nil:
		return &ConfigurationError{Table: "material constraint", Reason: "is missing"}
	case s.Costs == nil:
		return &ConfigurationError{Table: "base cost", Reason: "is missing"}
	case s.Pricer == nil:
		return &ConfigurationError{Table: "pricing column", Reason: "is missing"}
	}
	return nil
}

func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
