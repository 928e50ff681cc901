package pricing

import (
	"encoding/json"
	"strings"
)

// LineKind identifies the variant of a quote line.
type LineKind string

const (
	KindStock  LineKind = "stock"
	KindCustom LineKind = "custom"
	KindAdHoc  LineKind = "ad_hoc"
)

// Line is one validated-shape quote line. The set of implementations is
// closed: StockLine, CustomLine and AdHocLine.
type Line interface {
	Kind() LineKind
	line()
}

// StockLine orders a catalog item by SKU.
type StockLine struct {
	SKU      string
	Quantity float64
}

// CustomLine orders made-to-order sheets cut to the requested dimensions.
type CustomLine struct {
	Material    string
	Color       string
	Surface     string
	Gauge       float64
	Width       float64
	Length      float64
	Sheets      float64
	Description string
}

// AdHocLine is a free-form line priced from caller-supplied weight and cost.
type AdHocLine struct {
	Description       string
	WeightPerUnit     float64
	LandedCostPerUnit float64
	Quantity          float64
}

func (StockLine) Kind() LineKind  { return KindStock }
func (CustomLine) Kind() LineKind { return KindCustom }
func (AdHocLine) Kind() LineKind  { return KindAdHoc }

func (StockLine) line()  {}
func (CustomLine) line() {}
func (AdHocLine) line()  {}

// lineSwitch is implemented by every component that behaves differently per
// line kind. Adding a kind adds a method here, which breaks the build of every
// component until it handles the new kind.
type lineSwitch[T any] interface {
	stock(StockLine) (T, error)
	custom(CustomLine) (T, error)
	adHoc(AdHocLine) (T, error)
}

func dispatch[T any](l Line, s lineSwitch[T]) (T, error) {
	switch v := l.(type) {
	case StockLine:
		return s.stock(v)
	case CustomLine:
		return s.custom(v)
	case AdHocLine:
		return s.adHoc(v)
	}
	var zero T
	return zero, invalidValue(-1, "type", "unsupported line type")
}

// LineRequest is the wire shape of a quote line. Fields that do not belong
// to the line's type are ignored.
type LineRequest struct {
	Type     LineKind `json:"type"`
	Quantity *float64 `json:"quantity,omitempty"`

	SKU string `json:"sku,omitempty"`

	Material string   `json:"material,omitempty"`
	Color    string   `json:"color,omitempty"`
	Surface  string   `json:"surface,omitempty"`
	Gauge    *float64 `json:"gauge,omitempty"`
	Width    *float64 `json:"width,omitempty"`
	Length   *float64 `json:"length,omitempty"`
	Sheets   *float64 `json:"sheets,omitempty"`

	Description       string   `json:"description,omitempty"`
	WeightPerUnit     *float64 `json:"weight_per_unit,omitempty"`
	LandedCostPerUnit *float64 `json:"landed_cost_per_unit,omitempty"`
}

// toLine converts the wire shape into its variant, reporting the first
// missing required field.
func (r LineRequest) toLine(index int) (Line, *ValidationError) {
	switch r.Type {
	case KindStock:
		if strings.TrimSpace(r.SKU) == "" {
			return nil, invalidValue(index, "sku", "sku is required for stock lines")
		}
		if r.Quantity == nil {
			return nil, invalidValue(index, "quantity", "quantity is required for stock lines")
		}
		return StockLine{SKU: strings.TrimSpace(r.SKU), Quantity: *r.Quantity}, nil

	case KindCustom:
		for _, req := range []struct {
			field string
			ok    bool
		}{
			{"material", strings.TrimSpace(r.Material) != ""},
			{"color", strings.TrimSpace(r.Color) != ""},
			{"surface", strings.TrimSpace(r.Surface) != ""},
			{"gauge", r.Gauge != nil},
			{"width", r.Width != nil},
			{"length", r.Length != nil},
			{"sheets", r.Sheets != nil},
		} {
			if !req.ok {
				return nil, invalidValue(index, req.field, req.field+" is required for custom lines")
			}
		}
		return CustomLine{
			Material:    strings.TrimSpace(r.Material),
			Color:       strings.TrimSpace(r.Color),
			Surface:     strings.TrimSpace(r.Surface),
			Gauge:       *r.Gauge,
			Width:       *r.Width,
			Length:      *r.Length,
			Sheets:      *r.Sheets,
			Description: strings.TrimSpace(r.Description),
		}, nil

	case KindAdHoc:
		if r.WeightPerUnit == nil {
			return nil, invalidValue(index, "weight_per_unit", "weight_per_unit is required for ad_hoc lines")
		}
		if r.LandedCostPerUnit == nil {
			return nil, invalidValue(index, "landed_cost_per_unit", "landed_cost_per_unit is required for ad_hoc lines")
		}
		if r.Quantity == nil {
			return nil, invalidValue(index, "quantity", "quantity is required for ad_hoc lines")
		}
		return AdHocLine{
			Description:       strings.TrimSpace(r.Description),
			WeightPerUnit:     *r.WeightPerUnit,
			LandedCostPerUnit: *r.LandedCostPerUnit,
			Quantity:          *r.Quantity,
		}, nil
	}

	return nil, invalidValue(index, "type", "type must be one of stock, custom, ad_hoc")
}

// QuoteRequest is the input to Engine.Quote.
type QuoteRequest struct {
	CustomerID     string        `json:"customer_id"`
	IncludeFreight bool          `json:"include_freight"`
	Lines          []LineRequest `json:"lines"`
}

// UnmarshalJSON defaults include_freight to true when the field is omitted.
func (q *QuoteRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		CustomerID     string        `json:"customer_id"`
		IncludeFreight *bool         `json:"include_freight"`
		Lines          []LineRequest `json:"lines"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	q.CustomerID = raw.CustomerID
	q.IncludeFreight = raw.IncludeFreight == nil || *raw.IncludeFreight
	q.Lines = raw.Lines
	return nil
}

// RunMinimumAdjustment describes how a custom line under the run-weight
// floor was brought up to it.
type RunMinimumAdjustment struct {
	Policy           RunMinimumPolicy `json:"policy"`
	FloorLbs         float64          `json:"floor_lbs"`
	RequestedSheets  float64          `json:"requested_sheets"`
	RequestedWeight  float64          `json:"requested_weight"`
	ShortfallLbs     float64          `json:"shortfall_lbs"`
	AdditionalSheets float64          `json:"additional_sheets"`
	Surcharge        float64          `json:"surcharge"`
}

// LinePriceResult is the priced form of one quote line.
type LinePriceResult struct {
	Type              LineKind              `json:"type"`
	SKU               string                `json:"sku,omitempty"`
	Description       string                `json:"description,omitempty"`
	Quantity          float64               `json:"quantity"`
	WeightPerUnit     float64               `json:"weight_per_unit"`
	BaseCostPerUnit   float64               `json:"base_cost_per_unit"`
	SellPricePerUnit  float64               `json:"sell_price_per_unit"`
	ExtendedSellPrice float64               `json:"extended_sell_price"`
	TotalColumn       int                   `json:"total_column"`
	RunMinimum        *RunMinimumAdjustment `json:"run_minimum,omitempty"`
}

// QuoteResponse is the priced quote. QuoteTotal is NaturalTotal plus
// MinimumTopUp.
type QuoteResponse struct {
	CustomerID        string            `json:"customer_id"`
	IncludeFreight    bool              `json:"include_freight"`
	Lines             []LinePriceResult `json:"lines"`
	NaturalTotal      float64           `json:"natural_total"`
	MinimumOrderValue float64           `json:"minimum_order_value"`
	MinimumTopUp      float64           `json:"minimum_top_up"`
	QuoteTotal        float64           `json:"quote_total"`
}
