// Package export renders reports for download: the payment batch
// reconciliation workbook and the audit trail CSV.
package export

import (
	"bytes"
	"fmt"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	itemsSheet   = "Payments"
	summarySheet = "Summary"
	maxColWidth  = 50
)

var itemsHeader = []string{
	"Reference", "Payee", "Scholarship", "Institution", "Transit", "Account", "Amount", "Status",
}

// BatchWorkbook builds an XLSX with one row per payment item and a summary
// sheet. Account numbers are masked.
func BatchWorkbook(batch domain.PaymentBatch, items []domain.PaymentItem) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", itemsSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeRow(f, itemsSheet, 1, toAny(itemsHeader)); err != nil {
		return nil, err
	}
	for i, it := range items {
		amount, _ := it.Amount.Float64()
		row := []any{
			it.ReferenceNumber, it.PayeeName, it.ScholarshipName, it.InstitutionNumber,
			it.TransitNumber, domain.MaskAccount(it.AccountNumber), amount, it.Status,
		}
		if err := writeRow(f, itemsSheet, i+2, row); err != nil {
			return nil, err
		}
	}
	if err := styleHeader(f, itemsSheet, len(itemsHeader)); err != nil {
		return nil, err
	}
	if len(items) > 0 {
		money, err := f.NewStyle(&excelize.Style{NumFmt: 4})
		if err != nil {
			return nil, fmt.Errorf("new style: %w", err)
		}
		if err := f.SetCellStyle(itemsSheet, "G2", fmt.Sprintf("G%d", len(items)+1), money); err != nil {
			return nil, fmt.Errorf("set money style: %w", err)
		}
	}
	autoWidth(f, itemsSheet, itemsHeader, items)

	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, fmt.Errorf("new sheet: %w", err)
	}
	summary := [][]any{
		{"Batch", batch.BatchNumber},
		{"Status", batch.Status},
		{"Generated", batch.CreatedAt.UTC().Format("2006-01-02 15:04:05")},
		{"Generated by", batch.GeneratedByName},
		{"Applications", batch.ApplicationCount},
		{"Total", batch.TotalAmount.StringFixed(2)},
		{"File", batch.FileName},
	}
	for i, row := range summary {
		if err := writeRow(f, summarySheet, i+1, row); err != nil {
			return nil, err
		}
	}
	_ = f.SetColWidth(summarySheet, "A", "A", 16)
	_ = f.SetColWidth(summarySheet, "B", "B", 40)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("set row %d: %w", row, err)
	}
	return nil
}

func styleHeader(f *excelize.File, sheet string, cols int) error {
	end, err := excelize.CoordinatesToCellName(cols, 1)
	if err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("new style: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", end, bold); err != nil {
		return fmt.Errorf("set header style: %w", err)
	}
	return f.AutoFilter(sheet, "A1:"+end, nil)
}

// autoWidth sizes columns from the header and the text cells.
func autoWidth(f *excelize.File, sheet string, header []string, items []domain.PaymentItem) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h) + 2
	}
	for _, it := range items {
		for i, v := range []string{it.ReferenceNumber, it.PayeeName, it.ScholarshipName} {
			if l := len(v) + 2; l > widths[i] {
				widths[i] = min(l, maxColWidth)
			}
		}
	}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			continue
		}
		_ = f.SetColWidth(sheet, col, col, float64(max(w, 10)))
	}
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
