package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"invoicehub/internal/domain"
	"invoicehub/internal/port"
)

type paymentRepo struct {
	db *sqlx.DB
}

// NewPaymentRepo creates a new PostgreSQL-backed PaymentRepository.
func NewPaymentRepo(db *sqlx.DB) port.PaymentRepository {
	return &paymentRepo{db: db}
}

const paymentsWithInvoiceQuery = `SELECT
	p.id, p.invoice_id, p.amount, p.paid_at, p.created_at,
	i.invoice_number, i.total AS invoice_total,
	c.name AS customer_name, v.name AS vendor_name
FROM payments p
INNER JOIN invoices i ON i.id = p.invoice_id
LEFT JOIN customers c ON c.id = i.customer_id
LEFT JOIN vendors v ON v.id = i.vendor_id
ORDER BY p.paid_at DESC`

func (r *paymentRepo) ListWithInvoice(ctx context.Context) ([]domain.PaymentWithInvoice, error) {
	var rows []domain.PaymentRow
	if err := r.db.SelectContext(ctx, &rows, paymentsWithInvoiceQuery); err != nil {
		return nil, fmt.Errorf("paymentRepo.ListWithInvoice: %w", err)
	}

	out := make([]domain.PaymentWithInvoice, 0, len(rows))
	for _, row := range rows {
		inv := &domain.PaymentInvoice{
			ID:            row.InvoiceID,
			InvoiceNumber: row.InvoiceNumber,
			Total:         row.InvoiceTotal,
		}
		if row.CustomerName != nil {
			inv.Customer = &domain.PartyName{Name: *row.CustomerName}
		}
		if row.VendorName != nil {
			inv.Vendor = &domain.PartyName{Name: *row.VendorName}
		}
		out = append(out, domain.PaymentWithInvoice{Payment: row.Payment, Invoice: inv})
	}
	return out, nil
}
