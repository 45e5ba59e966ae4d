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

type vendorRepo struct {
	db *sqlx.DB
}

// NewVendorRepo creates a new PostgreSQL-backed VendorRepository.
func NewVendorRepo(db *sqlx.DB) port.VendorRepository {
	return &vendorRepo{db: db}
}

func (r *vendorRepo) UpsertByTaxID(ctx context.Context, name, taxID string, address *string) (uuid.UUID, error) {
	query := `INSERT INTO vendors (id, name, tax_id, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (tax_id) DO UPDATE SET
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			updated_at = NOW()
		RETURNING id`

	var id uuid.UUID
	err := r.db.GetContext(ctx, &id, query, uuid.New(), name, taxID, address)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, domain.ErrDuplicate
		}
		return uuid.Nil, fmt.Errorf("vendorRepo.UpsertByTaxID: %w", err)
	}
	return id, nil
}

func (r *vendorRepo) UpsertByName(ctx context.Context, name string, address *string) (uuid.UUID, error) {
	query := `INSERT INTO vendors (id, name, address, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (name) DO UPDATE SET
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			updated_at = NOW()
		RETURNING id`

	var id uuid.UUID
	err := r.db.GetContext(ctx, &id, query, uuid.New(), name, address)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, domain.ErrDuplicate
		}
		return uuid.Nil, fmt.Errorf("vendorRepo.UpsertByName: %w", err)
	}
	return id, nil
}

func (r *vendorRepo) FindLatestByName(ctx context.Context, name string) (*domain.Vendor, error) {
	var vendor domain.Vendor
	err := r.db.GetContext(ctx, &vendor,
		"SELECT * FROM vendors WHERE name = $1 ORDER BY created_at DESC LIMIT 1", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("vendorRepo.FindLatestByName: %w", err)
	}
	return &vendor, nil
}

func (r *vendorRepo) ListWithInvoices(ctx context.Context) ([]domain.VendorWithInvoices, error) {
	var vendors []domain.Vendor
	if err := r.db.SelectContext(ctx, &vendors,
		"SELECT * FROM vendors ORDER BY created_at DESC"); err != nil {
		return nil, fmt.Errorf("vendorRepo.ListWithInvoices vendors: %w", err)
	}

	var briefs []domain.InvoiceBrief
	if err := r.db.SelectContext(ctx, &briefs,
		`SELECT id, vendor_id, customer_id, total, status, created_at
		 FROM invoices WHERE vendor_id IS NOT NULL
		 ORDER BY created_at DESC`); err != nil {
		return nil, fmt.Errorf("vendorRepo.ListWithInvoices invoices: %w", err)
	}

	byVendor := make(map[uuid.UUID][]domain.InvoiceBrief)
	for _, b := range briefs {
		byVendor[*b.VendorID] = append(byVendor[*b.VendorID], b)
	}

	out := make([]domain.VendorWithInvoices, 0, len(vendors))
	for _, v := range vendors {
		invoices := byVendor[v.ID]
		if invoices == nil {
			invoices = []domain.InvoiceBrief{}
		}
		out = append(out, domain.VendorWithInvoices{Vendor: v, Invoices: invoices})
	}
	return out, nil
}

func (r *vendorRepo) NamesByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	query, args, err := sqlx.In("SELECT id, name FROM vendors WHERE id IN (?)", ids)
	if err != nil {
		return nil, fmt.Errorf("vendorRepo.NamesByID build: %w", err)
	}

	var rows []struct {
		ID   uuid.UUID `db:"id"`
		Name string    `db:"name"`
	}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("vendorRepo.NamesByID: %w", err)
	}
	for _, row := range rows {
		names[row.ID] = row.Name
	}
	return names, nil
}
