// Package export renders a user's records as downloadable files.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"spendwise/internal/models"
)

// Content types of the generated files.
const (
	ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	PDFContentType   = "application/pdf"
)

// SheetName returns the worksheet name used for kind.
func SheetName(kind models.TransactionKind) string {
	if kind == models.TransactionKindIncome {
		return "Income Data"
	}
	return "Expense Data"
}

// CategoryLabel is the column heading of the category field for kind.
func CategoryLabel(kind models.TransactionKind) string {
	if kind == models.TransactionKindIncome {
		return "Source"
	}
	return "Category"
}

// FileName returns the attachment name for kind with the given extension.
func FileName(kind models.TransactionKind, ext string) string {
	return fmt.Sprintf("%s_details.%s", kind, ext)
}

// Workbook writes records to a single-sheet xlsx workbook with the columns
// Source/Category, Amount and Date.
func Workbook(kind models.TransactionKind, records []models.Transaction) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := SheetName(kind)
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := []interface{}{CategoryLabel(kind), "Amount", "Date"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "C1", bold); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	money, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, fmt.Errorf("create amount style: %w", err)
	}

	for i, r := range records {
		row := i + 2
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		values := []interface{}{r.Category, r.Amount.InexactFloat64(), r.Date.Format(models.DateLayout)}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", row, err)
		}
	}

	if len(records) > 0 {
		last := fmt.Sprintf("B%d", len(records)+1)
		if err := f.SetCellStyle(sheet, "B2", last, money); err != nil {
			return nil, fmt.Errorf("style amounts: %w", err)
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 28); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "B", "C", 14); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}
