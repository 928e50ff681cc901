package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Simplici0/sheetquote/internal/pricing"
)

const defaultAboveMaxMultiplier = 1.10

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

func ptr[T any](v T) *T { return &v }

var customers = []pricing.Customer{
	{ID: "CNG", Name: "CNG Displays", ColumnBreak: "VN10ST20AP15AD5", FreightColumnOffset: 2},
	{ID: "ACME", Name: "Acme Signs"},
	{ID: "RETAIL", Name: "Walk-in Retail", ColumnBreak: "VN14ST24AP18PC6AD8", FreightColumnOffset: 3},
}

var items = []pricing.Item{
	{SKU: "VN-030-4896-WH", Description: ".030 White Matte/Matte Vinyl 48X96", Material: "Vinyl", Color: "White", Surface: "Matte/Matte", Gauge: ptr(0.030), Width: ptr(48.0), Length: ptr(96.0), WeightPerUnit: ptr(6.91), AvgCost: ptr(10.37)},
	{SKU: "VN-020-2740-CL", Description: ".020 Clear Gloss/Gloss Vinyl 27X40", Material: "Vinyl", Color: "Clear", Surface: "Gloss/Gloss", Gauge: ptr(0.020), Width: ptr(27.0), Length: ptr(40.0), WeightPerUnit: ptr(1.08), AvgCost: ptr(2.11)},
	{SKU: "ST-040-4896-WH", Description: ".040 White Matte/Matte Styrene 48X96", Material: "Styrene", Color: "White", Surface: "Matte/Matte", Gauge: ptr(0.040), Width: ptr(48.0), Length: ptr(96.0), WeightPerUnit: ptr(7.37), AvgCost: ptr(8.84)},
	{SKU: "ST-020-4848-DW", Description: ".020 Dead White Styrene 48X48", Material: "Styrene", Color: "Dead White", Surface: "Matte/Matte", Gauge: ptr(0.020), Width: ptr(48.0), Length: ptr(48.0), WeightPerUnit: ptr(1.84), AvgCost: ptr(2.49)},
	{SKU: "AP-015-2536-CL", Description: ".015 Clear APET 25X36", Material: "APET", Color: "Clear", Surface: "Gloss/Gloss", Gauge: ptr(0.015), Width: ptr(25.0), Length: ptr(36.0), WeightPerUnit: ptr(0.68), AvgCost: ptr(1.22)},
	{SKU: "PC-060-4896-CL", Description: ".060 Clear Polycarbonate 48X96", Material: "Polycarbonate", Color: "Clear", Gauge: ptr(0.060), Width: ptr(48.0), Length: ptr(96.0), WeightPerUnit: ptr(16.6), AvgCost: ptr(54.10), BaseColumn: ptr(6)},
	{SKU: "PG-040-4872-CL", Description: ".040 Clear PETG 48X72", Material: "PETG", Color: "Clear", Gauge: ptr(0.040), Width: ptr(48.0), Length: ptr(72.0), WeightPerUnit: ptr(6.36), AvgCost: ptr(15.90), BaseColumn: ptr(8)},
	{SKU: "PE-125-3648-NT", Description: ".125 Natural HDPE 36X48", Material: "Polyethylene", MaterialCode: "PE", Color: "Natural", Gauge: ptr(0.125), Width: ptr(36.0), Length: ptr(48.0), WeightPerUnit: ptr(7.79), AvgCost: ptr(12.40), BaseColumn: ptr(10)},
	{SKU: "SAMPLE-KIT", Description: "Material sample kit"},
}

var materialCosts = map[string]pricing.MaterialCost{
	"vinyl":   {BasePerLb: 1.50, ColorUp: 0.25, ClearUp: 0.35, GlossUp: 0.10, VelvetUp: 0.20},
	"styrene": {BasePerLb: 1.20, DeadWhiteUp: 0.15, TranslucentWhiteUp: 0.30, GlossUp: 0.05},
	"apet":    {BasePerLb: 1.80},
}

// materialCostOrder keeps inserts deterministic.
var materialCostOrder = []string{"vinyl", "styrene", "apet"}

var weightBreaks = pricing.WeightBreaks{
	{MinWeight: 100, Column: 1},
	{MinWeight: 500, Column: 2},
	{MinWeight: 1000, Column: 3},
	{MinWeight: 2000, Column: 4},
	{MinWeight: 5000, Column: 5},
}

// columnMultipliers runs from 3.00 at column 0 down to 1.00 at column 40.
func columnMultipliers() map[int]float64 {
	m := make(map[int]float64, 41)
	for c := 0; c <= 40; c++ {
		m[c] = float64(300-5*c) / 100
	}
	return m
}

// Run inserts the reference data in an idempotent way. Existing rows are
// never modified.
func Run(ctx context.Context, db *sql.DB) (Stats, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	for _, step := range []func(context.Context, *sql.Tx, *Stats) error{
		ensureCustomers,
		ensureItems,
		ensureMaterialCosts,
		ensureWeightBreaks,
		ensureColumnMultipliers,
		ensurePricingSettings,
	} {
		if err := step(ctx, tx, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func countInsert(result sql.Result, stats *Stats) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	stats.Inserts += int(n)
	return nil
}

func ensureCustomers(ctx context.Context, tx *sql.Tx, stats *Stats) error {
	for _, c := range customers {
		result, err := tx.ExecContext(ctx, `
			INSERT INTO customers (id, name, column_break, freight_column_offset)
			VALUES (?, ?, ?, ?)
			ON CONFLICT (id) DO NOTHING
		`, c.ID, c.Name, c.ColumnBreak, c.FreightColumnOffset)
		if err != nil {
			return fmt.Errorf("insert customer %s: %w", c.ID, err)
		}
		if err := countInsert(result, stats); err != nil {
			return fmt.Errorf("insert customer %s: %w", c.ID, err)
		}
	}
	return nil
}

func ensureItems(ctx context.Context, tx *sql.Tx, stats *Stats) error {
	for _, it := range items {
		result, err := tx.ExecContext(ctx, `
			INSERT INTO items (
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
			)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (sku) DO NOTHING
		`, it.SKU, it.Description, it.Material, it.MaterialCode, it.Color, it.Surface,
			opt(it.Gauge), opt(it.Width), opt(it.Length), opt(it.WeightPerUnit), opt(it.AvgCost), opt(it.BaseColumn))
		if err != nil {
			return fmt.Errorf("insert item %s: %w", it.SKU, err)
		}
		if err := countInsert(result, stats); err != nil {
			return fmt.Errorf("insert item %s: %w", it.SKU, err)
		}
	}
	return nil
}

func opt[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func ensureMaterialCosts(ctx context.Context, tx *sql.Tx, stats *Stats) error {
	for _, name := range materialCostOrder {
		mc := materialCosts[name]
		result, err := tx.ExecContext(ctx, `
			INSERT INTO material_costs (
				material,
				base_per_lb,
				color_up,
				clear_up,
				gloss_up,
				velvet_up,
				dead_white_up,
				translucent_white_up
			)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (material) DO NOTHING
		`, name, mc.BasePerLb, mc.ColorUp, mc.ClearUp, mc.GlossUp, mc.VelvetUp, mc.DeadWhiteUp, mc.TranslucentWhiteUp)
		if err != nil {
			return fmt.Errorf("insert material cost %s: %w", name, err)
		}
		if err := countInsert(result, stats); err != nil {
			return fmt.Errorf("insert material cost %s: %w", name, err)
		}
	}
	return nil
}

func ensureWeightBreaks(ctx context.Context, tx *sql.Tx, stats *Stats) error {
	for _, b := range weightBreaks {
		result, err := tx.ExecContext(ctx, `
			INSERT INTO weight_breaks (min_weight, weight_column)
			VALUES (?, ?)
			ON CONFLICT (min_weight) DO NOTHING
		`, b.MinWeight, b.Column)
		if err != nil {
			return fmt.Errorf("insert weight break %v: %w", b.MinWeight, err)
		}
		if err := countInsert(result, stats); err != nil {
			return fmt.Errorf("insert weight break %v: %w", b.MinWeight, err)
		}
	}
	return nil
}

func ensureColumnMultipliers(ctx context.Context, tx *sql.Tx, stats *Stats) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM column_multipliers LIMIT 1)`).Scan(&exists); err != nil {
		return fmt.Errorf("check column multipliers existence: %w", err)
	}
	if exists {
		return nil
	}

	for column, m := range columnMultipliers() {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO column_multipliers (column_number, multiplier)
			VALUES (?, ?)
		`, column, m); err != nil {
			return fmt.Errorf("insert column multiplier %d: %w", column, err)
		}
		stats.Inserts++
	}
	return nil
}

func ensurePricingSettings(ctx context.Context, tx *sql.Tx, stats *Stats) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM pricing_settings WHERE id = 1)`).Scan(&exists); err != nil {
		return fmt.Errorf("check pricing settings existence: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO pricing_settings (id, default_above_max)
		VALUES (1, ?)
	`, defaultAboveMaxMultiplier); err != nil {
		return fmt.Errorf("insert pricing settings singleton: %w", err)
	}
	stats.Inserts++
	return nil
}
