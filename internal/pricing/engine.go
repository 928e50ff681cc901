package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// lineProfile carries the kind-specific facts the column resolver and the
// aggregator need.
type lineProfile struct {
	SKU          string
	Description  string
	MaterialCode string
	BaseColumn   int
	Quantity     float64
	Sheet        bool
}

type profiler struct {
	catalog   Catalog
	materials *MaterialTable
	customer  Customer
}

func (p profiler) stock(l StockLine) (lineProfile, error) {
	it, ok := p.catalog.Item(l.SKU)
	if !ok {
		return lineProfile{}, unknownSku(-1, l.SKU)
	}

	code := it.MaterialCode
	if code == "" {
		code = p.materials.MaterialCode(it.Material)
	}
	base, found := ExtractColumn(code, p.customer.ColumnBreak)
	if !found && it.BaseColumn != nil {
		base = *it.BaseColumn
	}

	return lineProfile{
		SKU:          it.SKU,
		Description:  it.Description,
		MaterialCode: code,
		BaseColumn:   base,
		Quantity:     l.Quantity,
		Sheet:        true,
	}, nil
}

// customStyreneColumnStep is the extra base column for made-to-order styrene.
const customStyreneColumnStep = 10

func (p profiler) custom(l CustomLine) (lineProfile, error) {
	code := p.materials.ConstraintsFor(l.Material).Code
	base, _ := ExtractColumn(code, p.customer.ColumnBreak)
	if code == "ST" {
		base += customStyreneColumnStep
	}

	desc := l.Description
	if desc == "" {
		desc = fmt.Sprintf("%.3f %s %s %s %dX%d", l.Gauge, l.Color, l.Surface, l.Material, int(l.Width), int(l.Length))
	}

	return lineProfile{
		Description:  desc,
		MaterialCode: code,
		BaseColumn:   base,
		Quantity:     l.Sheets,
		Sheet:        true,
	}, nil
}

func (p profiler) adHoc(l AdHocLine) (lineProfile, error) {
	base, _ := ExtractColumn(adHocMaterialCode, p.customer.ColumnBreak)

	desc := l.Description
	if desc == "" {
		desc = "Ad-hoc line"
	}
	return lineProfile{
		Description:  desc,
		MaterialCode: adHocMaterialCode,
		BaseColumn:   base,
		Quantity:     l.Quantity,
	}, nil
}

// Engine prices quotes. It holds no mutable state and is safe for concurrent
// use.
type Engine struct {
	runMinimum RunMinimum
	strict     bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithRunMinimum replaces the default run-weight policy.
func WithRunMinimum(r RunMinimum) Option {
	return func(e *Engine) {
		if r.FloorLbs <= 0 {
			r.FloorLbs = RunWeightFloorLbs
		}
		if r.Policy == "" {
			r.Policy = RunMinimumRoundUp
		}
		e.runMinimum = r
	}
}

// WithLenientMaterials lets custom lines use materials without their own
// constraint entry; they are sized and priced with the fallback entry.
func WithLenientMaterials() Option {
	return func(e *Engine) { e.strict = false }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{runMinimum: DefaultRunMinimum(), strict: true}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RunMinimum reports the run-weight policy in effect.
func (e *Engine) RunMinimum() RunMinimum { return e.runMinimum }

// Quote validates and prices req against snap. Any validation failure
// rejects the whole quote with ValidationErrors; missing reference tables
// yield a *ConfigurationError.
func (e *Engine) Quote(req QuoteRequest, snap Snapshot) (QuoteResponse, error) {
	if err := snap.check(); err != nil {
		return QuoteResponse{}, err
	}

	customer, lines, err := validateRequest(req, snap, e.strict)
	if err != nil {
		return QuoteResponse{}, err
	}

	weigh := weigher{catalog: snap.Catalog, materials: snap.Materials}
	coster := costResolver{catalog: snap.Catalog, materials: snap.Materials, costs: snap.Costs}
	prof := profiler{catalog: snap.Catalog, materials: snap.Materials, customer: customer}

	results := make([]LinePriceResult, 0, len(lines))
	sheets := make([]lineWeight, 0, len(lines))
	natural := decimal.Zero

	for i, l := range lines {
		res, w, isSheet, err := e.priceLine(l, req.IncludeFreight, customer, snap, weigh, coster, prof)
		if err != nil {
			var ve *ValidationError
			if errors.As(err, &ve) {
				ve.Line = i
				return QuoteResponse{}, ValidationErrors{ve}
			}
			return QuoteResponse{}, err
		}
		if isSheet {
			sheets = append(sheets, w)
		}
		natural = natural.Add(decimal.NewFromFloat(res.ExtendedSellPrice))
		results = append(results, res)
	}

	floor := orderMinimum(sheets)
	top := topUp(natural, floor)

	return QuoteResponse{
		CustomerID:        req.CustomerID,
		IncludeFreight:    req.IncludeFreight,
		Lines:             results,
		NaturalTotal:      natural.InexactFloat64(),
		MinimumOrderValue: floor,
		MinimumTopUp:      top.InexactFloat64(),
		QuoteTotal:        natural.Add(top).InexactFloat64(),
	}, nil
}

func (e *Engine) priceLine(l Line, includeFreight bool, customer Customer, snap Snapshot, weigh weigher, coster costResolver, prof profiler) (LinePriceResult, lineWeight, bool, error) {
	w, err := dispatch[lineWeight](l, weigh)
	if err != nil {
		return LinePriceResult{}, lineWeight{}, false, err
	}
	baseCost, err := dispatch[float64](l, coster)
	if err != nil {
		return LinePriceResult{}, lineWeight{}, false, err
	}
	p, err := dispatch[lineProfile](l, prof)
	if err != nil {
		return LinePriceResult{}, lineWeight{}, false, err
	}

	qty := p.Quantity
	var surcharge float64
	var adj *RunMinimumAdjustment
	if _, ok := l.(CustomLine); ok {
		qty, surcharge, adj = e.runMinimum.apply(qty, w.PerUnit)
	}

	column := resolveColumn(columnInput{
		MaterialCode:  p.MaterialCode,
		BaseColumn:    p.BaseColumn,
		Quantity:      qty,
		WeightPerUnit: w.PerUnit,
	}, customer, includeFreight, snap.WeightBreaks)

	sell := snap.Pricer.SellPricePerUnit(column, qty, baseCost)
	if surcharge > 0 {
		sell += surcharge / qty
	}

	sellRounded := decimal.NewFromFloat(sell).Round(4)
	extended := sellRounded.Mul(decimal.NewFromFloat(qty)).Round(2)

	return LinePriceResult{
		Type:              l.Kind(),
		SKU:               p.SKU,
		Description:       p.Description,
		Quantity:          qty,
		WeightPerUnit:     w.PerUnit,
		BaseCostPerUnit:   decimal.NewFromFloat(baseCost).Round(4).InexactFloat64(),
		SellPricePerUnit:  sellRounded.InexactFloat64(),
		ExtendedSellPrice: extended.InexactFloat64(),
		TotalColumn:       column,
		RunMinimum:        adj,
	}, w, p.Sheet, nil
}
