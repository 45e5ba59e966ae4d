package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"invoicehub/internal/domain"
	"invoicehub/internal/port"
)

type analyticsRepo struct {
	db *sqlx.DB
}

// NewAnalyticsRepo creates a new PostgreSQL-backed AnalyticsRepository.
func NewAnalyticsRepo(db *sqlx.DB) port.AnalyticsRepository {
	return &analyticsRepo{db: db}
}

const invoiceStatsQuery = `SELECT
	COUNT(*) AS total_invoices,
	COALESCE(SUM(total), 0) AS total_spend,
	COALESCE(AVG(total), 0) AS avg_invoice_value
FROM invoices`

func (r *analyticsRepo) GetStats(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats
	if err := r.db.GetContext(ctx, &stats, invoiceStatsQuery); err != nil {
		return nil, fmt.Errorf("analyticsRepo.GetStats invoices: %w", err)
	}

	var documents int
	if err := r.db.GetContext(ctx, &documents, "SELECT COUNT(*) FROM documents"); err != nil {
		return nil, fmt.Errorf("analyticsRepo.GetStats documents: %w", err)
	}
	stats.DocumentsUploaded = documents

	return &stats, nil
}

func (r *analyticsRepo) ListDueAmounts(ctx context.Context) ([]domain.DueAmount, error) {
	var rows []domain.DueAmount
	if err := r.db.SelectContext(ctx, &rows,
		"SELECT due_date, total, status FROM invoices WHERE due_date IS NOT NULL"); err != nil {
		return nil, fmt.Errorf("analyticsRepo.ListDueAmounts: %w", err)
	}
	return rows, nil
}

func (r *analyticsRepo) ListIssuedAmounts(ctx context.Context) ([]domain.IssuedAmount, error) {
	var rows []domain.IssuedAmount
	if err := r.db.SelectContext(ctx, &rows,
		"SELECT issue_date, total FROM invoices WHERE issue_date IS NOT NULL"); err != nil {
		return nil, fmt.Errorf("analyticsRepo.ListIssuedAmounts: %w", err)
	}
	return rows, nil
}

func (r *analyticsRepo) ListItemSpend(ctx context.Context) ([]domain.ItemSpend, error) {
	var rows []domain.ItemSpend
	if err := r.db.SelectContext(ctx, &rows,
		"SELECT description, total_price FROM line_items ORDER BY created_at"); err != nil {
		return nil, fmt.Errorf("analyticsRepo.ListItemSpend: %w", err)
	}
	return rows, nil
}

func (r *analyticsRepo) SumByVendor(ctx context.Context) ([]domain.VendorTotal, error) {
	var rows []domain.VendorTotal
	if err := r.db.SelectContext(ctx, &rows,
		"SELECT vendor_id, COALESCE(SUM(total), 0) AS total FROM invoices GROUP BY vendor_id"); err != nil {
		return nil, fmt.Errorf("analyticsRepo.SumByVendor: %w", err)
	}
	return rows, nil
}
