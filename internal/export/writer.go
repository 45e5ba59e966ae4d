package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"invoicehub/internal/domain"
)

// BOM is the UTF-8 byte order mark written ahead of CSV exports so Excel on
// Windows picks the right encoding.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the header row shared by the CSV and XLSX encodings.
var columns = []string{
	"Invoice ID",
	"Source ID",
	"Invoice Number",
	"Vendor",
	"Vendor Tax ID",
	"Customer",
	"Issue Date",
	"Due Date",
	"Currency",
	"Sub Total",
	"Tax Total",
	"Total",
	"Status",
	"Validated By Human",
	"Line Item Count",
	"Paid Amount",
	"Created At",
}

// Columns returns a copy of the header row.
func Columns() []string {
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

// RowWriter is implemented by the CSV and XLSX encoders.
type RowWriter interface {
	WriteHeader() error
	WriteInvoices(invoices []domain.InvoiceDetail) error
	Close() error
}

// CSVWriter wraps csv.Writer for exporting invoices.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(columns)
}

func (w *CSVWriter) WriteInvoices(invoices []domain.InvoiceDetail) error {
	for i := range invoices {
		if err := w.csv.Write(invoiceToRow(&invoices[i])); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes buffered rows and reports any write error.
func (w *CSVWriter) Close() error {
	w.csv.Flush()
	return w.csv.Error()
}

// invoiceToRow flattens one invoice into the column layout.
func invoiceToRow(inv *domain.InvoiceDetail) []string {
	row := make([]string, len(columns))
	row[0] = inv.ID.String()
	row[1] = inv.SourceID
	row[2] = deref(inv.InvoiceNumber)
	if inv.Vendor != nil {
		row[3] = inv.Vendor.Name
		row[4] = deref(inv.Vendor.TaxID)
	}
	if inv.Customer != nil {
		row[5] = inv.Customer.Name
	}
	row[6] = formatDate(inv.IssueDate)
	row[7] = formatDate(inv.DueDate)
	row[8] = inv.Currency
	row[9] = formatMoney(inv.SubTotal)
	row[10] = formatMoney(inv.TaxTotal)
	row[11] = formatMoney(inv.Total)
	row[12] = inv.Status
	row[13] = formatBool(inv.IsValidatedByHuman)
	row[14] = strconv.Itoa(len(inv.LineItems))
	row[15] = formatMoney(paidAmount(inv.Payments))
	row[16] = inv.CreatedAt.UTC().Format(time.RFC3339)
	return row
}

func paidAmount(payments []domain.Payment) float64 {
	var sum float64
	for _, p := range payments {
		sum += p.Amount
	}
	return sum
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename replaces characters unsafe for Content-Disposition with
// underscores, collapses runs and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns {prefix}_{YYYY-MM-DD}.{format}.
func BuildFilename(prefix string, format domain.ExportFormat, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", SanitizeFilename(prefix), now.Format("2006-01-02"), format)
}
