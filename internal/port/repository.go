package port

import (
	"context"

	"github.com/google/uuid"

	"invoicehub/internal/domain"
)

// VendorRepository defines the contract for vendor persistence.
type VendorRepository interface {
	// UpsertByTaxID inserts a vendor or, when the tax id already exists,
	// overwrites its name and address. Returns domain.ErrDuplicate when the
	// insert collides on another unique key.
	UpsertByTaxID(ctx context.Context, name, taxID string, address *string) (uuid.UUID, error)
	// UpsertByName inserts a vendor or overwrites the address of the vendor
	// with the same name.
	UpsertByName(ctx context.Context, name string, address *string) (uuid.UUID, error)
	// FindLatestByName returns the most recently created vendor with name.
	FindLatestByName(ctx context.Context, name string) (*domain.Vendor, error)
	ListWithInvoices(ctx context.Context) ([]domain.VendorWithInvoices, error)
	NamesByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

// CustomerRepository defines the contract for customer persistence.
type CustomerRepository interface {
	UpsertByName(ctx context.Context, name string, address *string) (uuid.UUID, error)
	FindLatestByName(ctx context.Context, name string) (*domain.Customer, error)
	ListWithInvoices(ctx context.Context) ([]domain.CustomerWithInvoices, error)
}

// InvoiceRepository defines the contract for invoice persistence.
type InvoiceRepository interface {
	// UpsertBySourceID creates the invoice on first sight of its source id.
	// On a repeat sight only updated_at and the raw payloads are refreshed.
	// inv.ID is set to the stored row's id in both cases.
	UpsertBySourceID(ctx context.Context, inv *domain.Invoice) error
	GetDetail(ctx context.Context, id uuid.UUID) (*domain.InvoiceDetail, error)
	ListDetails(ctx context.Context) ([]domain.InvoiceDetail, error)
}

// DocumentRepository defines the contract for document persistence.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
}

// LineItemRepository defines the contract for line item persistence.
type LineItemRepository interface {
	CreateBatch(ctx context.Context, items []domain.LineItem) error
}

// PaymentRepository defines the contract for payment reads.
type PaymentRepository interface {
	ListWithInvoice(ctx context.Context) ([]domain.PaymentWithInvoice, error)
}
