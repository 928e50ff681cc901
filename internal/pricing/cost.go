package pricing

import "strings"

// SheetCoster prices one custom sheet from its material and weight.
type SheetCoster interface {
	CostPerSheet(sheet CustomLine, weightPerSheet float64) float64
}

// MaterialCost is the per-lb base cost of a material and its upcharges.
// Which upcharge applies depends on the material; see BaseCosts.PerLb.
type MaterialCost struct {
	BasePerLb          float64 `json:"base_per_lb"`
	ColorUp            float64 `json:"color_up,omitempty"`
	ClearUp            float64 `json:"clear_up,omitempty"`
	GlossUp            float64 `json:"gloss_up,omitempty"`
	VelvetUp           float64 `json:"velvet_up,omitempty"`
	DeadWhiteUp        float64 `json:"dead_white_up,omitempty"`
	TranslucentWhiteUp float64 `json:"translucent_white_up,omitempty"`
}

// BaseCosts is the default SheetCoster, keyed by lowercase material name.
type BaseCosts map[string]MaterialCost

// PerLb returns the cost per lb for a material, color and surface. An
// unconfigured material costs $1/lb.
func (b BaseCosts) PerLb(material, color, surface string) float64 {
	mat := strings.ToLower(strings.TrimSpace(material))
	color = strings.ToLower(strings.TrimSpace(color))
	surface = strings.ToLower(strings.TrimSpace(surface))

	mc, ok := b[mat]
	if !ok {
		return 1
	}

	perLb := mc.BasePerLb
	switch mat {
	case "vinyl":
		if color != "white" && color != "clear" {
			perLb += mc.ColorUp
		}
		if color == "clear" {
			perLb += mc.ClearUp
		}
		if surface == "gloss/gloss" {
			perLb += mc.GlossUp
		}
		if surface == "velvet/gloss" || surface == "velvet one side" {
			perLb += mc.VelvetUp
		}
	case "styrene":
		if color == "dead white" {
			perLb += mc.DeadWhiteUp
		}
		if color == "translucent white" {
			perLb += mc.TranslucentWhiteUp
		}
		if surface == "gloss/matte" {
			perLb += mc.GlossUp
		}
	}
	return perLb
}

func (b BaseCosts) CostPerSheet(sheet CustomLine, weightPerSheet float64) float64 {
	return b.PerLb(sheet.Material, sheet.Color, sheet.Surface) * weightPerSheet
}

// costResolver establishes base cost per unit. It never applies markup.
type costResolver struct {
	catalog   Catalog
	materials *MaterialTable
	costs     SheetCoster
}

func (c costResolver) stock(l StockLine) (float64, error) {
	it, ok := c.catalog.Item(l.SKU)
	if !ok {
		return 0, unknownSku(-1, l.SKU)
	}
	return valueOr(it.AvgCost, 0), nil
}

func (c costResolver) custom(l CustomLine) (float64, error) {
	w := SheetWeight(c.materials.ConstraintsFor(l.Material), l.Gauge, l.Width, l.Length)
	return c.costs.CostPerSheet(l, w), nil
}

func (c costResolver) adHoc(l AdHocLine) (float64, error) {
	return l.LandedCostPerUnit, nil
}
