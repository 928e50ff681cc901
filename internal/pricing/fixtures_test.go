package pricing

import (
	"math"
	"testing"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func f(v float64) *float64 { return &v }

func n(v int) *int { return &v }

// testMultipliers maps columns 0..40 to 3.00, 2.95, ... 1.00.
func testMultipliers() ColumnMultipliers {
	m := make(map[int]float64, 41)
	for c := 0; c <= 40; c++ {
		m[c] = float64(300-5*c) / 100
	}
	return ColumnMultipliers{DefaultAboveMax: 1.10, Multipliers: m}
}

func testSnapshot() Snapshot {
	customers := []Customer{
		{ID: "CNG", Name: "CNG Displays", ColumnBreak: "VN10ST20AP15AD5", FreightColumnOffset: 2},
		{ID: "ACME", Name: "Acme Signs"},
	}
	items := []Item{
		{SKU: "VN-4896", Description: ".030 White Vinyl 48X96", Material: "Vinyl", Width: f(48), Length: f(96), WeightPerUnit: f(12.5), AvgCost: f(20)},
		{SKU: "ST-4848", Description: ".020 White Styrene 48X48", Material: "Styrene", Width: f(48), Length: f(48), WeightPerUnit: f(4), AvgCost: f(1)},
		{SKU: "PC-3648", Description: "Polycarbonate 36X48", Material: "Polycarbonate", Width: f(36), Length: f(48), WeightPerUnit: f(3), AvgCost: f(1), BaseColumn: n(7)},
		{SKU: "PE-4072", Description: "Polyethylene 40X72", Material: "Polyethylene", MaterialCode: "PE", Width: f(40), Length: f(72), WeightPerUnit: f(1), AvgCost: f(1)},
		{SKU: "PG-4747", Description: "PETG 47X47", Material: "PETG", Width: f(47), Length: f(47), WeightPerUnit: f(1), AvgCost: f(1)},
		{SKU: "BARE", Description: "Unpriced remnant"},
	}
	return Snapshot{
		Catalog:   NewCatalog(customers, items),
		Materials: DefaultMaterials(),
		Costs: BaseCosts{
			"vinyl":   {BasePerLb: 1.5, ColorUp: 0.25, ClearUp: 0.35, GlossUp: 0.1, VelvetUp: 0.2},
			"styrene": {BasePerLb: 1.2, DeadWhiteUp: 0.15, TranslucentWhiteUp: 0.3, GlossUp: 0.05},
			"apet":    {BasePerLb: 1.8},
		},
		WeightBreaks: WeightBreaks{
			{MinWeight: 100, Column: 1},
			{MinWeight: 500, Column: 2},
			{MinWeight: 1000, Column: 3},
			{MinWeight: 2000, Column: 4},
		},
		Pricer: testMultipliers(),
	}
}

func stockLine(sku string, qty float64) LineRequest {
	return LineRequest{Type: KindStock, SKU: sku, Quantity: f(qty)}
}

func customLine(material, color, surface string, gauge, width, length, sheets float64) LineRequest {
	return LineRequest{
		Type:     KindCustom,
		Material: material,
		Color:    color,
		Surface:  surface,
		Gauge:    f(gauge),
		Width:    f(width),
		Length:   f(length),
		Sheets:   f(sheets),
	}
}

func adHocLine(desc string, weight, cost, qty float64) LineRequest {
	return LineRequest{Type: KindAdHoc, Description: desc, WeightPerUnit: f(weight), LandedCostPerUnit: f(cost), Quantity: f(qty)}
}
