package pricing

// lineWeight is the physical profile of a line. Width and Length are the
// nominal sheet dimensions, zero when the line has none.
type lineWeight struct {
	PerUnit float64
	Total   float64
	Width   float64
	Length  float64
}

// SheetWeight returns the weight in lbs of one sheet of the given material.
func SheetWeight(spec MaterialSpec, gauge, width, length float64) float64 {
	return spec.WeightFactor * gauge * width * length
}

type weigher struct {
	catalog   Catalog
	materials *MaterialTable
}

func (w weigher) stock(l StockLine) (lineWeight, error) {
	it, ok := w.catalog.Item(l.SKU)
	if !ok {
		return lineWeight{}, unknownSku(-1, l.SKU)
	}
	// A missing stored weight is treated as zero weight.
	per := valueOr(it.WeightPerUnit, 0)
	return lineWeight{
		PerUnit: per,
		Total:   per * l.Quantity,
		Width:   valueOr(it.Width, 0),
		Length:  valueOr(it.Length, 0),
	}, nil
}

func (w weigher) custom(l CustomLine) (lineWeight, error) {
	per := SheetWeight(w.materials.ConstraintsFor(l.Material), l.Gauge, l.Width, l.Length)
	return lineWeight{
		PerUnit: per,
		Total:   per * l.Sheets,
		Width:   l.Width,
		Length:  l.Length,
	}, nil
}

func (w weigher) adHoc(l AdHocLine) (lineWeight, error) {
	return lineWeight{PerUnit: l.WeightPerUnit, Total: l.WeightPerUnit * l.Quantity}, nil
}
