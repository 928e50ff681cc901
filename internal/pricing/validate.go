package pricing

import (
	"fmt"
	"strings"
)

// validator rejects lines that cannot be priced. It never reads cost or
// weight tables.
type validator struct {
	catalog   Catalog
	materials *MaterialTable
	strict    bool
	index     int
}

func (v *validator) stock(l StockLine) (struct{}, error) {
	if _, ok := v.catalog.Item(l.SKU); !ok {
		return struct{}{}, unknownSku(v.index, l.SKU)
	}
	if !(l.Quantity > 0) {
		return struct{}{}, invalidValue(v.index, "quantity", "quantity must be greater than 0")
	}
	return struct{}{}, nil
}

func (v *validator) custom(l CustomLine) (struct{}, error) {
	if v.strict && !v.materials.IsCustom(l.Material) {
		names := make([]string, 0, 3)
		for _, s := range v.materials.Custom() {
			names = append(names, s.Name)
		}
		return struct{}{}, invalidValue(v.index, "material",
			fmt.Sprintf("material %q is not valid for custom sheets, valid materials: %s", l.Material, strings.Join(names, ", ")))
	}

	spec := v.materials.ConstraintsFor(l.Material)
	for _, dim := range []struct {
		field string
		value float64
		r     Range
	}{
		{"gauge", l.Gauge, spec.Gauge},
		{"width", l.Width, spec.Width},
		{"length", l.Length, spec.Length},
	} {
		if !dim.r.Contains(dim.value) {
			return struct{}{}, outOfRange(v.index, dim.field, dim.value, dim.r)
		}
	}

	if !(l.Sheets >= 1) {
		return struct{}{}, invalidValue(v.index, "sheets", "sheets must be at least 1")
	}
	if !containsFold(spec.Colors, l.Color) {
		return struct{}{}, invalidValue(v.index, "color",
			fmt.Sprintf("color %q is not valid for %s, valid colors: %s", l.Color, l.Material, strings.Join(spec.Colors, ", ")))
	}
	if !containsFold(spec.Surfaces, l.Surface) {
		return struct{}{}, invalidValue(v.index, "surface",
			fmt.Sprintf("surface %q is not valid for %s, valid surfaces: %s", l.Surface, l.Material, strings.Join(spec.Surfaces, ", ")))
	}
	return struct{}{}, nil
}

func (v *validator) adHoc(l AdHocLine) (struct{}, error) {
	if !(l.WeightPerUnit >= 0) {
		return struct{}{}, invalidValue(v.index, "weight_per_unit", "weight_per_unit must be 0 or greater")
	}
	if !(l.LandedCostPerUnit >= 0) {
		return struct{}{}, invalidValue(v.index, "landed_cost_per_unit", "landed_cost_per_unit must be 0 or greater")
	}
	if !(l.Quantity >= 1) {
		return struct{}{}, invalidValue(v.index, "quantity", "quantity must be at least 1")
	}
	return struct{}{}, nil
}

// validateRequest converts and validates every line and returns all
// rejections together. On success the returned lines are in request order.
func validateRequest(req QuoteRequest, snap Snapshot, strict bool) (Customer, []Line, error) {
	var errs ValidationErrors

	customer, ok := snap.Catalog.Customer(req.CustomerID)
	if !ok {
		errs = append(errs, unknownCustomer(req.CustomerID))
	}
	if len(req.Lines) == 0 {
		errs = append(errs, &ValidationError{Code: ErrEmptyLineList, Line: -1, Field: "lines", Message: "at least one line is required"})
		return Customer{}, nil, errs
	}

	v := &validator{catalog: snap.Catalog, materials: snap.Materials, strict: strict}
	lines := make([]Line, len(req.Lines))
	for i, lr := range req.Lines {
		l, verr := lr.toLine(i)
		if verr != nil {
			errs = append(errs, verr)
			continue
		}
		v.index = i
		if _, err := dispatch[struct{}](l, v); err != nil {
			errs = append(errs, err.(*ValidationError))
			continue
		}
		lines[i] = l
	}

	if len(errs) > 0 {
		return Customer{}, nil, errs
	}
	return customer, lines, nil
}
