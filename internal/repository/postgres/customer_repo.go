package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"invoicehub/internal/domain"
	"invoicehub/internal/port"
)

type customerRepo struct {
	db *sqlx.DB
}

// NewCustomerRepo creates a new PostgreSQL-backed CustomerRepository.
func NewCustomerRepo(db *sqlx.DB) port.CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) UpsertByName(ctx context.Context, name string, address *string) (uuid.UUID, error) {
	query := `INSERT INTO customers (id, name, address, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (name) DO UPDATE SET
			address = EXCLUDED.address,
			updated_at = NOW()
		RETURNING id`

	var id uuid.UUID
	err := r.db.GetContext(ctx, &id, query, uuid.New(), name, address)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, domain.ErrDuplicate
		}
		return uuid.Nil, fmt.Errorf("customerRepo.UpsertByName: %w", err)
	}
	return id, nil
}

func (r *customerRepo) FindLatestByName(ctx context.Context, name string) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.GetContext(ctx, &customer,
		"SELECT * FROM customers WHERE name = $1 ORDER BY created_at DESC LIMIT 1", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("customerRepo.FindLatestByName: %w", err)
	}
	return &customer, nil
}

func (r *customerRepo) ListWithInvoices(ctx context.Context) ([]domain.CustomerWithInvoices, error) {
	var customers []domain.Customer
	if err := r.db.SelectContext(ctx, &customers,
		"SELECT * FROM customers ORDER BY created_at DESC"); err != nil {
		return nil, fmt.Errorf("customerRepo.ListWithInvoices customers: %w", err)
	}

	var briefs []domain.InvoiceBrief
	if err := r.db.SelectContext(ctx, &briefs,
		`SELECT id, vendor_id, customer_id, total, status, created_at
		 FROM invoices WHERE customer_id IS NOT NULL
		 ORDER BY created_at DESC`); err != nil {
		return nil, fmt.Errorf("customerRepo.ListWithInvoices invoices: %w", err)
	}

	byCustomer := make(map[uuid.UUID][]domain.InvoiceBrief)
	for _, b := range briefs {
		byCustomer[*b.CustomerID] = append(byCustomer[*b.CustomerID], b)
	}

	out := make([]domain.CustomerWithInvoices, 0, len(customers))
	for _, c := range customers {
		invoices := byCustomer[c.ID]
		if invoices == nil {
			invoices = []domain.InvoiceBrief{}
		}
		out = append(out, domain.CustomerWithInvoices{Customer: c, Invoices: invoices})
	}
	return out, nil
}
