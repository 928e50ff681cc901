package pricing

import (
	"slices"
	"strconv"
	"strings"
)

// SellPricer turns a resolved pricing column into a sell price per unit.
type SellPricer interface {
	SellPricePerUnit(column int, quantity, baseCostPerUnit float64) float64
}

// ExtractColumn reads the base column for a material code out of a column
// break string such as "VN10ST20AP15". The last occurrence of the code wins;
// a two-digit number is preferred over one digit. ok is false when the code
// is absent or not followed by a number.
func ExtractColumn(code, columnBreak string) (column int, ok bool) {
	if code == "" || columnBreak == "" {
		return 0, false
	}
	idx := strings.LastIndex(columnBreak, code)
	if idx == -1 {
		return 0, false
	}

	start := idx + len(code)
	for _, n := range []int{2, 1} {
		end := min(start+n, len(columnBreak))
		if end <= start {
			continue
		}
		if v, err := strconv.Atoi(columnBreak[start:end]); err == nil {
			return v, true
		}
	}
	return 0, false
}

// WeightBreak assigns Column to line weights strictly above MinWeight.
type WeightBreak struct {
	MinWeight float64 `json:"min_weight"`
	Column    int     `json:"weight_column"`
}

// WeightBreaks is the weight-to-column table.
type WeightBreaks []WeightBreak

// Column returns the column of the highest break below weight, or 0.
func (wb WeightBreaks) Column(weight float64) int {
	sorted := slices.Clone(wb)
	slices.SortFunc(sorted, func(a, b WeightBreak) int {
		switch {
		case a.MinWeight > b.MinWeight:
			return -1
		case a.MinWeight < b.MinWeight:
			return 1
		}
		return 0
	})
	for _, b := range sorted {
		if weight > b.MinWeight {
			return b.Column
		}
	}
	return 0
}

const defaultAboveMaxMultiplier = 1.10

// ColumnMultipliers is the default SellPricer: sell price is base cost times
// the multiplier of the column.
type ColumnMultipliers struct {
	DefaultAboveMax float64         `json:"default_above_max"`
	Multipliers     map[int]float64 `json:"multipliers"`
}

// Multiplier looks up a column. Columns below the smallest key use the
// smallest key; columns above the largest use DefaultAboveMax.
func (c ColumnMultipliers) Multiplier(column int) float64 {
	above := c.DefaultAboveMax
	if above == 0 {
		above = defaultAboveMaxMultiplier
	}
	if len(c.Multipliers) == 0 {
		return above
	}
	if m, ok := c.Multipliers[column]; ok {
		return m
	}

	lo, hi := 0, 0
	first := true
	for k := range c.Multipliers {
		if first {
			lo, hi, first = k, k, false
			continue
		}
		lo, hi = min(lo, k), max(hi, k)
	}
	if column < lo {
		return c.Multipliers[lo]
	}
	// Above the largest key, or a gap inside the table.
	return above
}

func (c ColumnMultipliers) SellPricePerUnit(column int, _ float64, baseCostPerUnit float64) float64 {
	return baseCostPerUnit * c.Multiplier(column)
}

// columnInput is what the column resolver needs about a line, independent of
// its kind.
type columnInput struct {
	MaterialCode  string
	BaseColumn    int
	Quantity      float64
	WeightPerUnit float64
}

// styreneHeavyRunLbs is the run weight above which styrene gets a second
// column step.
const styreneHeavyRunLbs = 999

func materialColumnAdjustment(code string, runWeight float64) int {
	switch strings.ToUpper(code) {
	case "PC":
		return 8
	case "PE":
		return -2
	case "AP":
		return -4
	case "ST":
		if runWeight > styreneHeavyRunLbs {
			return 32
		}
		return 16
	}
	return 0
}

// resolveColumn combines base column, material adjustment, freight and the
// weight-break column into the total column.
func resolveColumn(in columnInput, customer Customer, includeFreight bool, breaks WeightBreaks) int {
	runWeight := in.Quantity * in.WeightPerUnit

	column := in.BaseColumn + materialColumnAdjustment(in.MaterialCode, runWeight)
	if includeFreight {
		column += customer.FreightColumnOffset
	}
	return column + breaks.Column(runWeight)
}
