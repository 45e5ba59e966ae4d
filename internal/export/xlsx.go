package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"invoicehub/internal/domain"
)

// XLSXWriter renders invoices into a single worksheet. Rows are buffered in
// the workbook and written to the destination on Close.
type XLSXWriter struct {
	out   io.Writer
	file  *excelize.File
	sheet string
	row   int
}

// NewXLSXWriter creates an XLSXWriter whose only sheet is named sheet.
func NewXLSXWriter(w io.Writer, sheet string) (*XLSXWriter, error) {
	if sheet == "" {
		sheet = "Invoices"
	}
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("naming sheet: %w", err)
	}
	return &XLSXWriter{out: w, file: f, sheet: sheet, row: 1}, nil
}

func (w *XLSXWriter) WriteHeader() error {
	if err := w.writeRow(toCells(columns)); err != nil {
		return err
	}
	style, err := w.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(columns), 1)
	if err != nil {
		return err
	}
	if err := w.file.SetCellStyle(w.sheet, "A1", last, style); err != nil {
		return err
	}
	return w.file.SetPanes(w.sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// WriteInvoices writes one row per invoice. Money columns are stored as
// numbers so spreadsheet formulas work on them.
func (w *XLSXWriter) WriteInvoices(invoices []domain.InvoiceDetail) error {
	for i := range invoices {
		inv := &invoices[i]
		cells := toCells(invoiceToRow(inv))
		cells[9] = inv.SubTotal
		cells[10] = inv.TaxTotal
		cells[11] = inv.Total
		cells[14] = len(inv.LineItems)
		cells[15] = paidAmount(inv.Payments)
		if err := w.writeRow(cells); err != nil {
			return err
		}
	}
	return nil
}

// Close writes the workbook to the destination and releases it.
func (w *XLSXWriter) Close() error {
	defer func() { _ = w.file.Close() }()
	if _, err := w.file.WriteTo(w.out); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func (w *XLSXWriter) writeRow(cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return err
	}
	if err := w.file.SetSheetRow(w.sheet, cell, &cells); err != nil {
		return fmt.Errorf("writing row %d: %w", w.row, err)
	}
	w.row++
	return nil
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
