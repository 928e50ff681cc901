package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Simplici0/sheetquote/internal/pricing"
)

// ItemPatch changes the non-nil fields of a stock item.
type ItemPatch struct {
	Description   *string  `json:"description"`
	Material      *string  `json:"material"`
	MaterialCode  *string  `json:"material_code"`
	Color         *string  `json:"color"`
	Surface       *string  `json:"surface"`
	Gauge         *float64 `json:"gauge"`
	Width         *float64 `json:"width"`
	Length        *float64 `json:"length"`
	WeightPerUnit *float64 `json:"weight_per_unit"`
	AvgCost       *float64 `json:"avg_cost"`
	BaseColumn    *int     `json:"base_column"`
}

const itemColumns = `
	sku,
	description,
	material,
	material_code,
	color,
	surface,
	gauge,
	width,
	length,
	weight_per_unit,
	avg_cost,
	base_column
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (pricing.Item, error) {
	var it pricing.Item
	var gauge, width, length, weight, cost sql.NullFloat64
	var base sql.NullInt64
	if err := row.Scan(&it.SKU, &it.Description, &it.Material, &it.MaterialCode, &it.Color, &it.Surface,
		&gauge, &width, &length, &weight, &cost, &base); err != nil {
		return pricing.Item{}, err
	}
	it.Gauge = nullFloat(gauge)
	it.Width = nullFloat(width)
	it.Length = nullFloat(length)
	it.WeightPerUnit = nullFloat(weight)
	it.AvgCost = nullFloat(cost)
	it.BaseColumn = nullInt(base)
	return it, nil
}

// ListItems returns every stock item ordered by sku.
func (s *Store) ListItems(ctx context.Context) ([]pricing.Item, error) {
	return listItems(ctx, s.db)
}

func listItems(ctx context.Context, q queryer) ([]pricing.Item, error) {
	rows, err := q.QueryContext(ctx, `SELECT `+itemColumns+` FROM items ORDER BY sku`)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	items := make([]pricing.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// GetItem returns one item or ErrNotFound.
func (s *Store) GetItem(ctx context.Context, sku string) (pricing.Item, error) {
	it, err := scanItem(s.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE sku = ?`, sku))
	if errors.Is(err, sql.ErrNoRows) {
		return pricing.Item{}, ErrNotFound
	}
	if err != nil {
		return pricing.Item{}, fmt.Errorf("query item: %w", err)
	}
	return it, nil
}

// UpdateItem applies patch and returns the stored item.
func (s *Store) UpdateItem(ctx context.Context, sku string, patch ItemPatch) (pricing.Item, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE items
		SET
			description = COALESCE(?, description),
			material = COALESCE(?, material),
			material_code = COALESCE(?, material_code),
			color = COALESCE(?, color),
			surface = COALESCE(?, surface),
			gauge = COALESCE(?, gauge),
			width = COALESCE(?, width),
			length = COALESCE(?, length),
			weight_per_unit = COALESCE(?, weight_per_unit),
			avg_cost = COALESCE(?, avg_cost),
			base_column = COALESCE(?, base_column),
			updated_at = CURRENT_TIMESTAMP
		WHERE sku = ?
	`, nullable(patch.Description), nullable(patch.Material), nullable(patch.MaterialCode), nullable(patch.Color), nullable(patch.Surface),
		nullable(patch.Gauge), nullable(patch.Width), nullable(patch.Length), nullable(patch.WeightPerUnit), nullable(patch.AvgCost), nullable(patch.BaseColumn), sku)
	if err != nil {
		return pricing.Item{}, fmt.Errorf("update item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return pricing.Item{}, fmt.Errorf("update item: %w", err)
	}
	if affected == 0 {
		return pricing.Item{}, ErrNotFound
	}
	return s.GetItem(ctx, sku)
}

// DeleteItem removes a stock item.
func (s *Store) DeleteItem(ctx context.Context, sku string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE sku = ?`, sku)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
