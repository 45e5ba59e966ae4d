package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"invoicehub/internal/domain"
	"invoicehub/internal/port"
)

type lineItemRepo struct {
	db *sqlx.DB
}

// NewLineItemRepo creates a new PostgreSQL-backed LineItemRepository.
func NewLineItemRepo(db *sqlx.DB) port.LineItemRepository {
	return &lineItemRepo{db: db}
}

func (r *lineItemRepo) CreateBatch(ctx context.Context, items []domain.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	now := time.Now().UTC()
	valueStrings := make([]string, 0, len(items))
	valueArgs := make([]interface{}, 0, len(items)*7)

	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		items[i].CreatedAt = now
		base := i * 7
		valueStrings = append(valueStrings, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7))
		it := items[i]
		valueArgs = append(valueArgs, it.ID, it.InvoiceID, it.Description,
			it.Quantity, it.UnitPrice, it.TotalPrice, it.CreatedAt)
	}

	query := fmt.Sprintf(
		`INSERT INTO line_items (id, invoice_id, description, quantity, unit_price, total_price, created_at) VALUES %s`,
		strings.Join(valueStrings, ", "))

	if _, err := r.db.ExecContext(ctx, query, valueArgs...); err != nil {
		return fmt.Errorf("lineItemRepo.CreateBatch: %w", err)
	}
	return nil
}
