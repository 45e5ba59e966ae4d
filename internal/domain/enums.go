package domain

// Defaults applied while normalizing source records.
const (
	DefaultCurrency      = "EUR"
	DefaultInvoiceStatus = "processed"
	UnknownFileName      = "unknown"
	UnknownVendorName    = "Unknown Vendor"
)

// ExportFormat selects the invoice export encoding.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// Spend categories derived from line-item descriptions.
const (
	CategorySoftware   = "Software"
	CategoryConsulting = "Consulting"
	CategoryOffice     = "Office Supplies"
	CategoryHardware   = "Hardware"
	CategoryServices   = "Services"
	CategoryOther      = "Other"
)
