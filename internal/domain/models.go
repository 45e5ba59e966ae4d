package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Vendor is a supplier shared by reference across invoices. It is unique by
// tax id when one is known, otherwise by name.
type Vendor struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	TaxID     *string   `db:"tax_id" json:"taxId"`
	Address   *string   `db:"address" json:"address"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Customer is the billed party of an invoice, unique by name.
type Customer struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Address   *string   `db:"address" json:"address"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Invoice is the normalized invoice header, unique by SourceID.
type Invoice struct {
	ID                 uuid.UUID       `db:"id" json:"id"`
	SourceID           string          `db:"source_id" json:"sourceId"`
	InvoiceNumber      *string         `db:"invoice_number" json:"invoiceNumber"`
	VendorID           *uuid.UUID      `db:"vendor_id" json:"vendorId"`
	CustomerID         *uuid.UUID      `db:"customer_id" json:"customerId"`
	IssueDate          *time.Time      `db:"issue_date" json:"issueDate"`
	DueDate            *time.Time      `db:"due_date" json:"dueDate"`
	Currency           string          `db:"currency" json:"currency"`
	SubTotal           float64         `db:"sub_total" json:"subTotal"`
	TaxTotal           float64         `db:"tax_total" json:"taxTotal"`
	Total              float64         `db:"total" json:"total"`
	Status             string          `db:"status" json:"status"`
	IsValidatedByHuman bool            `db:"is_validated_by_human" json:"isValidatedByHuman"`
	ProcessedAt        *time.Time      `db:"processed_at" json:"processedAt"`
	AnalyticsID        *string         `db:"analytics_id" json:"analyticsId"`
	Metadata           *datatypes.JSON `db:"metadata" json:"metadata"`
	ExtractedData      *datatypes.JSON `db:"extracted_data" json:"extractedData"`
	ValidatedData      *datatypes.JSON `db:"validated_data" json:"validatedData"`
	CreatedAt          time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time       `db:"updated_at" json:"updatedAt"`
}

// Document is one uploaded source file. Documents are always inserted, so
// re-seeding the same source produces additional rows.
type Document struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	SourceID       string          `db:"source_id" json:"sourceId"`
	FileName       string          `db:"file_name" json:"fileName"`
	FilePath       string          `db:"file_path" json:"filePath"`
	FileSize       *int64          `db:"file_size" json:"fileSize"`
	FileType       string          `db:"file_type" json:"fileType"`
	Status         string          `db:"status" json:"status"`
	OrganizationID *string         `db:"organization_id" json:"organizationId"`
	DepartmentID   *string         `db:"department_id" json:"departmentId"`
	UploadedByID   *string         `db:"uploaded_by_id" json:"uploadedById"`
	Metadata       *datatypes.JSON `db:"metadata" json:"metadata"`
	InvoiceID      *uuid.UUID      `db:"invoice_id" json:"invoiceId"`
	CreatedAt      time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updatedAt"`
}

// LineItem belongs to exactly one invoice.
type LineItem struct {
	ID          uuid.UUID `db:"id" json:"id"`
	InvoiceID   uuid.UUID `db:"invoice_id" json:"invoiceId"`
	Description *string   `db:"description" json:"description"`
	Quantity    float64   `db:"quantity" json:"quantity"`
	UnitPrice   float64   `db:"unit_price" json:"unitPrice"`
	TotalPrice  float64   `db:"total_price" json:"totalPrice"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// Payment records a settlement against an invoice. The service only reads payments.
type Payment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	InvoiceID uuid.UUID `db:"invoice_id" json:"invoiceId"`
	Amount    float64   `db:"amount" json:"amount"`
	PaidAt    time.Time `db:"paid_at" json:"paidAt"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// InvoiceDetail is an invoice with its related records joined in.
type InvoiceDetail struct {
	Invoice
	Vendor    *Vendor    `json:"vendor"`
	Customer  *Customer  `json:"customer"`
	LineItems []LineItem `json:"lineItems"`
	Payments  []Payment  `json:"payments"`
}

// InvoiceBrief is the invoice projection embedded in vendor and customer listings.
type InvoiceBrief struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	VendorID   *uuid.UUID `db:"vendor_id" json:"-"`
	CustomerID *uuid.UUID `db:"customer_id" json:"-"`
	Total      float64    `db:"total" json:"total"`
	Status     string     `db:"status" json:"status"`
	CreatedAt  time.Time  `db:"created_at" json:"createdAt"`
}

// VendorWithInvoices is a vendor listing row.
type VendorWithInvoices struct {
	Vendor
	Invoices []InvoiceBrief `json:"invoices"`
}

// CustomerWithInvoices is a customer listing row.
type CustomerWithInvoices struct {
	Customer
	Invoices []InvoiceBrief `json:"invoices"`
}

// PartyName carries only the name of a vendor or customer.
type PartyName struct {
	Name string `json:"name"`
}

// PaymentInvoice is the invoice projection embedded in payment listings.
type PaymentInvoice struct {
	ID            uuid.UUID  `json:"id"`
	InvoiceNumber *string    `json:"invoiceNumber"`
	Total         float64    `json:"total"`
	Customer      *PartyName `json:"customer"`
	Vendor        *PartyName `json:"vendor"`
}

// PaymentWithInvoice is a payment listing row.
type PaymentWithInvoice struct {
	Payment
	Invoice *PaymentInvoice `json:"invoice"`
}

// PaymentRow is the flat join used to build PaymentWithInvoice.
type PaymentRow struct {
	Payment
	InvoiceNumber *string `db:"invoice_number"`
	InvoiceTotal  float64 `db:"invoice_total"`
	CustomerName  *string `db:"customer_name"`
	VendorName    *string `db:"vendor_name"`
}
