package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"invoicehub/internal/domain"
	"invoicehub/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) UpsertBySourceID(ctx context.Context, inv *domain.Invoice) error {
	now := time.Now().UTC()
	inv.CreatedAt = now
	inv.UpdatedAt = now
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}

	query := `INSERT INTO invoices (
			id, source_id, invoice_number, vendor_id, customer_id,
			issue_date, due_date, currency, sub_total, tax_total, total,
			status, is_validated_by_human, processed_at, analytics_id,
			metadata, extracted_data, validated_data, created_at, updated_at
		) VALUES (
			:id, :source_id, :invoice_number, :vendor_id, :customer_id,
			:issue_date, :due_date, :currency, :sub_total, :tax_total, :total,
			:status, :is_validated_by_human, :processed_at, :analytics_id,
			:metadata, :extracted_data, :validated_data, :created_at, :updated_at
		)
		ON CONFLICT (source_id) DO UPDATE SET
			updated_at = EXCLUDED.updated_at,
			metadata = COALESCE(EXCLUDED.metadata, invoices.metadata),
			extracted_data = COALESCE(EXCLUDED.extracted_data, invoices.extracted_data),
			validated_data = COALESCE(EXCLUDED.validated_data, invoices.validated_data)
		RETURNING id, created_at`

	rows, err := r.db.NamedQueryContext(ctx, query, inv)
	if err != nil {
		return fmt.Errorf("invoiceRepo.UpsertBySourceID: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return fmt.Errorf("invoiceRepo.UpsertBySourceID: %w", err)
		}
		return fmt.Errorf("invoiceRepo.UpsertBySourceID: no row returned")
	}
	if err := rows.Scan(&inv.ID, &inv.CreatedAt); err != nil {
		return fmt.Errorf("invoiceRepo.UpsertBySourceID scan: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetDetail(ctx context.Context, id uuid.UUID) (*domain.InvoiceDetail, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv, "SELECT * FROM invoices WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetDetail: %w", err)
	}

	details, err := r.attachRelations(ctx, []domain.Invoice{inv})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (r *invoiceRepo) ListDetails(ctx context.Context) ([]domain.InvoiceDetail, error) {
	var invoices []domain.Invoice
	if err := r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM invoices ORDER BY created_at DESC"); err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListDetails: %w", err)
	}
	return r.attachRelations(ctx, invoices)
}

// attachRelations loads vendors, customers, line items and payments for the
// given invoices with one query per relation.
func (r *invoiceRepo) attachRelations(ctx context.Context, invoices []domain.Invoice) ([]domain.InvoiceDetail, error) {
	details := make([]domain.InvoiceDetail, len(invoices))
	if len(invoices) == 0 {
		return details, nil
	}

	invoiceIDs := make([]uuid.UUID, 0, len(invoices))
	var vendorIDs, customerIDs []uuid.UUID
	for i := range invoices {
		invoiceIDs = append(invoiceIDs, invoices[i].ID)
		if invoices[i].VendorID != nil {
			vendorIDs = append(vendorIDs, *invoices[i].VendorID)
		}
		if invoices[i].CustomerID != nil {
			customerIDs = append(customerIDs, *invoices[i].CustomerID)
		}
	}

	var vendors []domain.Vendor
	if err := r.selectIn(ctx, &vendors, "SELECT * FROM vendors WHERE id IN (?)", vendorIDs); err != nil {
		return nil, fmt.Errorf("invoiceRepo.attachRelations vendors: %w", err)
	}
	var customers []domain.Customer
	if err := r.selectIn(ctx, &customers, "SELECT * FROM customers WHERE id IN (?)", customerIDs); err != nil {
		return nil, fmt.Errorf("invoiceRepo.attachRelations customers: %w", err)
	}
	var items []domain.LineItem
	if err := r.selectIn(ctx, &items,
		"SELECT * FROM line_items WHERE invoice_id IN (?) ORDER BY created_at", invoiceIDs); err != nil {
		return nil, fmt.Errorf("invoiceRepo.attachRelations line items: %w", err)
	}
	var payments []domain.Payment
	if err := r.selectIn(ctx, &payments,
		"SELECT * FROM payments WHERE invoice_id IN (?) ORDER BY paid_at DESC", invoiceIDs); err != nil {
		return nil, fmt.Errorf("invoiceRepo.attachRelations payments: %w", err)
	}

	vendorByID := make(map[uuid.UUID]*domain.Vendor, len(vendors))
	for i := range vendors {
		vendorByID[vendors[i].ID] = &vendors[i]
	}
	customerByID := make(map[uuid.UUID]*domain.Customer, len(customers))
	for i := range customers {
		customerByID[customers[i].ID] = &customers[i]
	}
	itemsByInvoice := make(map[uuid.UUID][]domain.LineItem)
	for _, it := range items {
		itemsByInvoice[it.InvoiceID] = append(itemsByInvoice[it.InvoiceID], it)
	}
	paymentsByInvoice := make(map[uuid.UUID][]domain.Payment)
	for _, p := range payments {
		paymentsByInvoice[p.InvoiceID] = append(paymentsByInvoice[p.InvoiceID], p)
	}

	for i := range invoices {
		d := domain.InvoiceDetail{
			Invoice:   invoices[i],
			LineItems: itemsByInvoice[invoices[i].ID],
			Payments:  paymentsByInvoice[invoices[i].ID],
		}
		if d.VendorID != nil {
			d.Vendor = vendorByID[*d.VendorID]
		}
		if d.CustomerID != nil {
			d.Customer = customerByID[*d.CustomerID]
		}
		if d.LineItems == nil {
			d.LineItems = []domain.LineItem{}
		}
		if d.Payments == nil {
			d.Payments = []domain.Payment{}
		}
		details[i] = d
	}
	return details, nil
}

func (r *invoiceRepo) selectIn(ctx context.Context, dest interface{}, query string, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	q, args, err := sqlx.In(query, ids)
	if err != nil {
		return err
	}
	return r.db.SelectContext(ctx, dest, r.db.Rebind(q), args...)
}
