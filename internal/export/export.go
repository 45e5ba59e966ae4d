package export

import (
	"fmt"
	"io"
	"strings"

	"invoicehub/internal/domain"
)

// ParseFormat normalizes a user-supplied format name. Empty input selects def.
func ParseFormat(s string, def domain.ExportFormat) (domain.ExportFormat, error) {
	switch domain.ExportFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return def, nil
	case domain.ExportFormatCSV:
		return domain.ExportFormatCSV, nil
	case domain.ExportFormatXLSX:
		return domain.ExportFormatXLSX, nil
	}
	return "", fmt.Errorf("%q: %w", s, domain.ErrInvalidFormat)
}

// ContentType returns the MIME type for format.
func ContentType(format domain.ExportFormat) string {
	if format == domain.ExportFormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// NewRowWriter returns the encoder for format writing to w.
func NewRowWriter(w io.Writer, format domain.ExportFormat, sheet string) (RowWriter, error) {
	switch format {
	case domain.ExportFormatCSV:
		if _, err := w.Write(BOM); err != nil {
			return nil, err
		}
		return NewCSVWriter(w), nil
	case domain.ExportFormatXLSX:
		return NewXLSXWriter(w, sheet)
	}
	return nil, domain.ErrInvalidFormat
}

// WriteInvoices encodes invoices in format, header first.
func WriteInvoices(w io.Writer, format domain.ExportFormat, sheet string, invoices []domain.InvoiceDetail) error {
	rw, err := NewRowWriter(w, format, sheet)
	if err != nil {
		return err
	}
	if err := rw.WriteHeader(); err != nil {
		_ = rw.Close()
		return fmt.Errorf("writing header: %w", err)
	}
	if err := rw.WriteInvoices(invoices); err != nil {
		_ = rw.Close()
		return fmt.Errorf("writing invoices: %w", err)
	}
	return rw.Close()
}
