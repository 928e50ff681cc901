// Package quotepdf renders stored quotes as printable PDF documents.
package quotepdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/Simplici0/sheetquote/internal/pricing"
	"github.com/Simplici0/sheetquote/internal/store"
)

const defaultCompany = "Sheet Plastics Quoting"

// Generator renders quote records.
type Generator struct {
	Company string
	now     func() time.Time
}

func New(company string) *Generator {
	if company == "" {
		company = defaultCompany
	}
	return &Generator{Company: company, now: time.Now}
}

// Generate returns the PDF bytes for rec.
func (g *Generator) Generate(rec store.QuoteRecord) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetTitle(fmt.Sprintf("Quote %s", rec.Reference), false)
	pdf.SetAuthor(g.Company, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Quotation")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("Quote #%d  Ref %s", rec.ID, rec.Reference))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Date: %s", rec.CreatedAt.Format("Jan 2, 2006")))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Customer: %s", rec.CustomerID))
	pdf.Ln(5)
	freight := "excluded"
	if rec.IncludeFreight {
		freight = "included"
	}
	pdf.Cell(0, 5, fmt.Sprintf("Freight: %s", freight))
	pdf.Ln(9)

	widths := []float64{92, 22, 22, 28, 32}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range []string{"Item", "Qty", "Lbs/unit", "Unit price", "Extended"} {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(widths[i], 7, h, "B", 0, align, false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 9)
	for _, line := range rec.Lines {
		pdf.CellFormat(widths[0], 6, trim(lineLabel(line), 55), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, formatQty(line.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 6, fmt.Sprintf("%.3f", line.WeightPerUnit), "", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, fmt.Sprintf("$%.4f", line.SellPricePerUnit), "", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, fmt.Sprintf("$%.2f", line.ExtendedSellPrice), "", 0, "R", false, 0, "")
		pdf.Ln(6)
		if adj := line.RunMinimum; adj != nil {
			pdf.SetFont("Helvetica", "I", 8)
			pdf.CellFormat(widths[0], 5, "  "+runMinimumNote(adj), "", 0, "L", false, 0, "")
			pdf.Ln(5)
			pdf.SetFont("Helvetica", "", 9)
		}
	}

	pdf.Ln(4)
	labelWidth := widths[0] + widths[1] + widths[2] + widths[3]
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(labelWidth, 6, "Subtotal", "T", 0, "R", false, 0, "")
	pdf.CellFormat(widths[4], 6, fmt.Sprintf("$%.2f", rec.NaturalTotal), "T", 0, "R", false, 0, "")
	pdf.Ln(6)
	if rec.MinimumTopUp > 0 {
		pdf.CellFormat(labelWidth, 6, fmt.Sprintf("Minimum order adjustment ($%.2f minimum)", rec.MinimumOrderValue), "", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, fmt.Sprintf("$%.2f", rec.MinimumTopUp), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(labelWidth, 7, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(widths[4], 7, fmt.Sprintf("$%.2f", rec.QuoteTotal), "", 0, "R", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 8)
	pdf.Cell(0, 4, g.Company)
	pdf.Ln(4)
	pdf.Cell(0, 4, fmt.Sprintf("Generated %s", g.now().UTC().Format(time.RFC3339)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render quote pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func lineLabel(l pricing.LinePriceResult) string {
	switch {
	case l.SKU != "" && l.Description != "":
		return l.SKU + " " + l.Description
	case l.SKU != "":
		return l.SKU
	}
	return l.Description
}

func runMinimumNote(adj *pricing.RunMinimumAdjustment) string {
	if adj.Policy == pricing.RunMinimumSurcharge {
		return fmt.Sprintf("Short run: %.0f lb below %.0f lb minimum, surcharge $%.2f", adj.ShortfallLbs, adj.FloorLbs, adj.Surcharge)
	}
	return fmt.Sprintf("Run raised from %s to meet %.0f lb minimum", formatQty(adj.RequestedSheets), adj.FloorLbs)
}

func formatQty(q float64) string {
	s := fmt.Sprintf("%.2f", q)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	return s
}

// trim shortens s to n runes so it fits its table cell.
func trim(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
