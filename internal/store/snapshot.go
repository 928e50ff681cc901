package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Simplici0/sheetquote/internal/pricing"
)

// Snapshot loads every reference table inside one transaction so a quote
// never sees a table mid-update. Empty cost or multiplier tables leave the
// corresponding snapshot field nil; the engine reports that as a
// configuration error.
func (s *Store) Snapshot(ctx context.Context) (pricing.Snapshot, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return pricing.Snapshot{}, fmt.Errorf("begin snapshot transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	customers, err := listCustomers(ctx, tx)
	if err != nil {
		return pricing.Snapshot{}, err
	}
	items, err := listItems(ctx, tx)
	if err != nil {
		return pricing.Snapshot{}, err
	}
	costs, err := loadCosts(ctx, tx)
	if err != nil {
		return pricing.Snapshot{}, err
	}
	breaks, err := loadWeightBreaks(ctx, tx)
	if err != nil {
		return pricing.Snapshot{}, err
	}
	multipliers, err := loadMultipliers(ctx, tx)
	if err != nil {
		return pricing.Snapshot{}, err
	}

	snap := pricing.Snapshot{
		Catalog:      pricing.NewCatalog(customers, items),
		Materials:    pricing.DefaultMaterials(),
		WeightBreaks: breaks,
	}
	if len(costs) > 0 {
		snap.Costs = costs
	}
	if len(multipliers.Multipliers) > 0 {
		snap.Pricer = multipliers
	}
	return snap, nil
}

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func loadCosts(ctx context.Context, q queryer) (pricing.BaseCosts, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT
			material,
			base_per_lb,
			color_up,
			clear_up,
			gloss_up,
			velvet_up,
			dead_white_up,
			translucent_white_up
		FROM material_costs
	`)
	if err != nil {
		return nil, fmt.Errorf("query material costs: %w", err)
	}
	defer rows.Close()

	costs := pricing.BaseCosts{}
	for rows.Next() {
		var material string
		var mc pricing.MaterialCost
		if err := rows.Scan(&material, &mc.BasePerLb, &mc.ColorUp, &mc.ClearUp, &mc.GlossUp, &mc.VelvetUp, &mc.DeadWhiteUp, &mc.TranslucentWhiteUp); err != nil {
			return nil, fmt.Errorf("scan material cost: %w", err)
		}
		costs[material] = mc
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate material costs: %w", err)
	}
	return costs, nil
}

func loadWeightBreaks(ctx context.Context, q queryer) (pricing.WeightBreaks, error) {
	rows, err := q.QueryContext(ctx, `SELECT min_weight, weight_column FROM weight_breaks ORDER BY min_weight`)
	if err != nil {
		return nil, fmt.Errorf("query weight breaks: %w", err)
	}
	defer rows.Close()

	var breaks pricing.WeightBreaks
	for rows.Next() {
		var b pricing.WeightBreak
		if err := rows.Scan(&b.MinWeight, &b.Column); err != nil {
			return nil, fmt.Errorf("scan weight break: %w", err)
		}
		breaks = append(breaks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weight breaks: %w", err)
	}
	return breaks, nil
}

func loadMultipliers(ctx context.Context, q queryer) (pricing.ColumnMultipliers, error) {
	out := pricing.ColumnMultipliers{Multipliers: map[int]float64{}}

	err := q.QueryRowContext(ctx, `SELECT default_above_max FROM pricing_settings WHERE id = 1`).Scan(&out.DefaultAboveMax)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return out, fmt.Errorf("query pricing settings: %w", err)
	}

	rows, err := q.QueryContext(ctx, `SELECT column_number, multiplier FROM column_multipliers`)
	if err != nil {
		return out, fmt.Errorf("query column multipliers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var column int
		var m float64
		if err := rows.Scan(&column, &m); err != nil {
			return out, fmt.Errorf("scan column multiplier: %w", err)
		}
		out.Multipliers[column] = m
	}
	if err := rows.Err(); err != nil {
		return out, fmt.Errorf("iterate column multipliers: %w", err)
	}
	return out, nil
}
