package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"

	"spendwise/internal/analytics"
	"spendwise/internal/models"
)

// maxStatementRows caps the record list of a statement.
const maxStatementRows = 500

var recordCols = []float64{36, 104, 42}

// Statement renders a PDF with the total, a category breakdown and the
// record list for one ledger.
func Statement(kind models.TransactionKind, owner string, records []models.Transaction, generatedAt time.Time) (*bytes.Buffer, error) {
	title := "Expense Statement"
	if kind == models.TransactionKindIncome {
		title = "Income Statement"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.SetTitle(title, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, title)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, tr("Account: "+owner))
	pdf.Ln(5)
	pdf.Cell(0, 6, "Generated: "+generatedAt.Format("2006-01-02 15:04 MST"))
	pdf.Ln(10)

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(248, 248, 248)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(91, 10, "Total", "1", 0, "C", true, 0, "")
	pdf.CellFormat(91, 10, "Records", "1", 1, "C", true, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(91, 10, formatMoney(analytics.Sum(records)), "1", 0, "C", false, 0, "")
	pdf.CellFormat(91, 10, fmt.Sprintf("%d", len(records)), "1", 1, "C", false, 0, "")
	pdf.Ln(6)

	breakdown := analytics.CategoryBreakdown(records)
	if len(breakdown) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "By "+strings.ToLower(CategoryLabel(kind)))
		pdf.Ln(9)

		cols := []float64{92, 30, 30, 30}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(245, 245, 245)
		pdf.CellFormat(cols[0], 8, strings.ToUpper(CategoryLabel(kind)), "1", 0, "L", true, 0, "")
		pdf.CellFormat(cols[1], 8, "AMOUNT", "1", 0, "R", true, 0, "")
		pdf.CellFormat(cols[2], 8, "COUNT", "1", 0, "R", true, 0, "")
		pdf.CellFormat(cols[3], 8, "SHARE", "1", 1, "R", true, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		for _, b := range breakdown {
			pdf.CellFormat(cols[0], 7, tr(trimTo(b.Category, 60)), "1", 0, "L", false, 0, "")
			pdf.CellFormat(cols[1], 7, formatMoney(b.Amount), "1", 0, "R", false, 0, "")
			pdf.CellFormat(cols[2], 7, fmt.Sprintf("%d", b.Count), "1", 0, "R", false, 0, "")
			pdf.CellFormat(cols[3], 7, b.Percentage.StringFixed(1)+"%", "1", 1, "R", false, 0, "")
		}
		pdf.Ln(6)
	}

	recordHeader(pdf, kind)
	pdf.SetFont("Helvetica", "", 9)
	for i, r := range records {
		if i >= maxStatementRows {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.CellFormat(0, 8, fmt.Sprintf("%d more records not shown", len(records)-maxStatementRows), "1", 1, "C", false, 0, "")
			break
		}
		if pdf.GetY() > 270 {
			pdf.AddPage()
			recordHeader(pdf, kind)
			pdf.SetFont("Helvetica", "", 9)
		}
		pdf.CellFormat(recordCols[0], 7, r.Date.Format(models.DateLayout), "1", 0, "C", false, 0, "")
		pdf.CellFormat(recordCols[1], 7, tr(trimTo(r.Category, 70)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(recordCols[2], 7, formatMoney(r.Amount), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render statement: %w", err)
	}
	return &buf, nil
}

func recordHeader(pdf *gofpdf.Fpdf, kind models.TransactionKind) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(245, 245, 245)
	pdf.CellFormat(recordCols[0], 8, "DATE", "1", 0, "C", true, 0, "")
	pdf.CellFormat(recordCols[1], 8, strings.ToUpper(CategoryLabel(kind)), "1", 0, "L", true, 0, "")
	pdf.CellFormat(recordCols[2], 8, "AMOUNT", "1", 1, "R", true, 0, "")
}

func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func trimTo(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "..."
}
