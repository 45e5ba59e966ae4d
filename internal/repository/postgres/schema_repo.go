package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"invoicehub/internal/domain"
	"invoicehub/internal/port"
)

type schemaRepo struct {
	db *sqlx.DB
}

// NewSchemaRepo creates a new PostgreSQL-backed SchemaRepository.
func NewSchemaRepo(db *sqlx.DB) port.SchemaRepository {
	return &schemaRepo{db: db}
}

const schemaColumnsQuery = `SELECT table_name, column_name, data_type
FROM information_schema.columns
WHERE table_schema = 'public'
ORDER BY table_name, ordinal_position`

func (r *schemaRepo) ListColumns(ctx context.Context) ([]domain.SchemaColumn, error) {
	var cols []domain.SchemaColumn
	if err := r.db.SelectContext(ctx, &cols, schemaColumnsQuery); err != nil {
		return nil, fmt.Errorf("schemaRepo.ListColumns: %w", err)
	}
	return cols, nil
}

func (r *schemaRepo) RunReadOnly(ctx context.Context, query string, maxRows int) (*domain.QueryResult, error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("schemaRepo.RunReadOnly: begin: %w", err)
	}
	// Nothing is ever committed.
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("schemaRepo.RunReadOnly: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("schemaRepo.RunReadOnly: columns: %w", err)
	}
	result := &domain.QueryResult{Columns: cols, Rows: []map[string]any{}}
	for rows.Next() {
		if maxRows > 0 && len(result.Rows) >= maxRows {
			break
		}
		row := make(map[string]any, len(cols))
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("schemaRepo.RunReadOnly: scan: %w", err)
		}
		for k, v := range row {
			if b, ok := v.([]byte); ok {
				row[k] = string(b)
			}
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("schemaRepo.RunReadOnly: %w", err)
	}
	return result, nil
}
