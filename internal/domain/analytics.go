package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stats holds dashboard headline figures.
type Stats struct {
	TotalInvoices     int     `db:"total_invoices" json:"totalInvoices"`
	TotalSpend        float64 `db:"total_spend" json:"totalSpend"`
	DocumentsUploaded int     `db:"documents_uploaded" json:"documentsUploaded"`
	AvgInvoiceValue   float64 `db:"avg_invoice_value" json:"avgInvoiceValue"`
}

// DueAmount is the (due date, total) projection feeding the cash outflow forecast.
type DueAmount struct {
	DueDate *time.Time `db:"due_date"`
	Total   float64    `db:"total"`
	Status  string     `db:"status"`
}

// IssuedAmount is the (issue date, total) projection feeding invoice trends.
type IssuedAmount struct {
	IssueDate *time.Time `db:"issue_date"`
	Total     float64    `db:"total"`
}

// ItemSpend is the (description, total price) projection of a line item.
type ItemSpend struct {
	Description *string `db:"description"`
	TotalPrice  float64 `db:"total_price"`
}

// VendorTotal is the summed invoice total per vendor. VendorID is nil for
// invoices without a resolved vendor.
type VendorTotal struct {
	VendorID *uuid.UUID `db:"vendor_id"`
	Total    float64    `db:"total"`
}

// MonthlyTotal is one bucket of the cash outflow forecast.
type MonthlyTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// MonthlyTrend is one bucket of the invoice issuance trend.
type MonthlyTrend struct {
	Month        string  `json:"month"`
	InvoiceCount int     `json:"invoiceCount"`
	TotalSpend   float64 `json:"totalSpend"`
}

// CategorySpend is the spend attributed to one line-item category.
type CategorySpend struct {
	Category   string  `json:"category"`
	TotalSpend float64 `json:"totalSpend"`
}

// VendorSpend is one row of the top vendors ranking.
type VendorSpend struct {
	Vendor     string  `json:"vendor"`
	TotalSpend float64 `json:"totalSpend"`
}
