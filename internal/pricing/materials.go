package pricing

import (
	"slices"
	"strings"
)

// Range is an inclusive numeric bound.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies within the inclusive bound.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// MaterialSpec holds the custom-sheet limits for one material.
type MaterialSpec struct {
	Name         string   `json:"name"`
	Code         string   `json:"code"`
	Gauge        Range    `json:"gauge"`
	Width        Range    `json:"width"`
	Length       Range    `json:"length"`
	WeightFactor float64  `json:"weight_factor"` // lbs per gauge·in·in
	Colors       []string `json:"colors"`
	Surfaces     []string `json:"surfaces"`
	Fallback     bool     `json:"-"`
}

// MaterialTable answers constraint lookups for custom sheet materials. It is
// immutable once built.
type MaterialTable struct {
	specs    map[string]MaterialSpec
	order    []string
	fallback MaterialSpec
	codes    map[string]string
}

const adHocMaterialCode = "AD"

// DefaultMaterials returns the production material table.
func DefaultMaterials() *MaterialTable {
	thin := Range{Min: 0.009, Max: 0.030}
	vinyl := MaterialSpec{
		Name:         "Vinyl",
		Code:         "VN",
		Gauge:        thin,
		Width:        Range{Min: 20, Max: 50},
		Length:       Range{Min: 20, Max: 70},
		WeightFactor: 0.05,
		Colors:       []string{"White", "Clear", "Stock Color"},
		Surfaces:     []string{"Matte/Matte", "Gloss/Gloss", "Gloss/Matte", "Velvet One Side"},
	}
	styrene := MaterialSpec{
		Name:         "Styrene",
		Code:         "ST",
		Gauge:        Range{Min: 0.009, Max: 0.250},
		Width:        Range{Min: 20, Max: 65},
		Length:       Range{Min: 20, Max: 130},
		WeightFactor: 0.04,
		Colors:       []string{"White", "Translucent White", "Dead White"},
		Surfaces:     []string{"Matte/Matte", "Gloss/Matte"},
	}
	apet := MaterialSpec{
		Name:         "APET",
		Code:         "AP",
		Gauge:        thin,
		Width:        Range{Min: 20, Max: 50},
		Length:       Range{Min: 20, Max: 70},
		WeightFactor: 0.05,
		Colors:       []string{"Clear"},
		Surfaces:     []string{"Gloss/Gloss"},
	}

	// Unknown materials are sized like vinyl.
	fallback := vinyl
	fallback.Name = ""
	fallback.Fallback = true

	return NewMaterialTable([]MaterialSpec{vinyl, styrene, apet}, fallback, map[string]string{
		"apet":          "AP",
		"petg":          "PG",
		"polycarbonate": "PC",
		"polyester":     "PY",
		"polyethylene":  "PE",
		"polypropylene": "PP",
		"styrene":       "ST",
		"vinyl":         "VN",
	})
}

// NewMaterialTable builds a table from custom specs, a fallback entry for
// unknown materials, and the stock material code map (keyed by lowercase
// material name).
func NewMaterialTable(specs []MaterialSpec, fallback MaterialSpec, codes map[string]string) *MaterialTable {
	t := &MaterialTable{
		specs:    make(map[string]MaterialSpec, len(specs)),
		fallback: fallback,
		codes:    make(map[string]string, len(codes)+len(specs)),
	}
	t.fallback.Fallback = true
	for _, s := range specs {
		key := strings.ToLower(s.Name)
		s.Colors = slices.Clone(s.Colors)
		s.Surfaces = slices.Clone(s.Surfaces)
		t.specs[key] = s
		t.order = append(t.order, key)
		t.codes[key] = s.Code
	}
	for k, v := range codes {
		t.codes[strings.ToLower(k)] = v
	}
	return t
}

// ConstraintsFor returns the spec for material, or the fallback entry when
// the material is not a custom sheet material.
func (t *MaterialTable) ConstraintsFor(material string) MaterialSpec {
	s, ok := t.specs[strings.ToLower(strings.TrimSpace(material))]
	if !ok {
		s = t.fallback
	}
	s.Colors = slices.Clone(s.Colors)
	s.Surfaces = slices.Clone(s.Surfaces)
	return s
}

// IsCustom reports whether material has its own custom sheet entry.
func (t *MaterialTable) IsCustom(material string) bool {
	_, ok := t.specs[strings.ToLower(strings.TrimSpace(material))]
	return ok
}

// ColorsFor lists allowed colors; the first element is the default.
func (t *MaterialTable) ColorsFor(material string) []string {
	return t.ConstraintsFor(material).Colors
}

// SurfacesFor lists allowed surfaces; the first element is the default.
func (t *MaterialTable) SurfacesFor(material string) []string {
	return t.ConstraintsFor(material).Surfaces
}

// Custom lists the custom sheet materials in table order.
func (t *MaterialTable) Custom() []MaterialSpec {
	out := make([]MaterialSpec, 0, len(t.order))
	for _, k := range t.order {
		out = append(out, t.ConstraintsFor(k))
	}
	return out
}

// MaterialCode maps a material name to its two-letter pricing code. An
// unknown name yields "".
func (t *MaterialTable) MaterialCode(material string) string {
	return t.codes[strings.ToLower(strings.TrimSpace(material))]
}

func containsFold(options []string, v string) bool {
	return slices.ContainsFunc(options, func(o string) bool {
		return strings.EqualFold(o, v)
	})
}
