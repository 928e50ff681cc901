package pricing

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// RunMinimumPolicy names how a custom line below the run-weight floor is
// priced.
type RunMinimumPolicy string

const (
	// RunMinimumRoundUp raises the sheet count to the smallest count whose
	// weight reaches the floor.
	RunMinimumRoundUp RunMinimumPolicy = "round_up"
	// RunMinimumSurcharge keeps the sheet count and charges the missing
	// weight at a per-lb rate.
	RunMinimumSurcharge RunMinimumPolicy = "surcharge"
)

// ParseRunMinimumPolicy accepts the policy names used in configuration.
func ParseRunMinimumPolicy(s string) (RunMinimumPolicy, error) {
	switch p := RunMinimumPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case RunMinimumRoundUp, RunMinimumSurcharge:
		return p, nil
	}
	return "", fmt.Errorf("unknown run minimum policy %q", s)
}

const (
	RunWeightFloorLbs           = 2000.0
	MinimumOrderValue           = 150.0
	LargeSheetMinimumOrderValue = 550.0

	largeSheetShortSide = 40.0
	largeSheetLongSide  = 72.0
)

// RunMinimum enforces the run-weight floor on custom lines.
type RunMinimum struct {
	Policy         RunMinimumPolicy
	FloorLbs       float64
	SurchargePerLb float64
}

// DefaultRunMinimum is the policy compiled into the engine.
func DefaultRunMinimum() RunMinimum {
	return RunMinimum{Policy: RunMinimumRoundUp, FloorLbs: RunWeightFloorLbs}
}

// apply returns the sheet count to price, a line surcharge, and a report of
// the adjustment; the report is nil when the run already meets the floor.
func (r RunMinimum) apply(sheets, weightPerSheet float64) (float64, float64, *RunMinimumAdjustment) {
	total := sheets * weightPerSheet
	if total >= r.FloorLbs || weightPerSheet <= 0 {
		return sheets, 0, nil
	}

	adj := &RunMinimumAdjustment{
		Policy:          r.Policy,
		FloorLbs:        r.FloorLbs,
		RequestedSheets: sheets,
		RequestedWeight: total,
		ShortfallLbs:    r.FloorLbs - total,
	}

	if r.Policy == RunMinimumSurcharge {
		adj.Surcharge = adj.ShortfallLbs * r.SurchargePerLb
		return sheets, adj.Surcharge, adj
	}

	required := math.Ceil(r.FloorLbs / weightPerSheet)
	adj.AdditionalSheets = required - sheets
	return required, 0, adj
}

// IsLargeSheet reports whether a sheet triggers the large-sheet order
// minimum: short side at least 40 and long side at least 72.
func IsLargeSheet(width, length float64) bool {
	return min(width, length) >= largeSheetShortSide && max(width, length) >= largeSheetLongSide
}

// orderMinimum is the order-value floor for a quote whose sheet lines have
// the given nominal dimensions.
func orderMinimum(sheets []lineWeight) float64 {
	for _, s := range sheets {
		if IsLargeSheet(s.Width, s.Length) {
			return LargeSheetMinimumOrderValue
		}
	}
	return MinimumOrderValue
}

// topUp is the amount needed to lift natural to floor, never negative.
func topUp(natural decimal.Decimal, floor float64) decimal.Decimal {
	f := decimal.NewFromFloat(floor)
	if natural.GreaterThanOrEqual(f) {
		return decimal.Zero
	}
	return f.Sub(natural)
}
