package port

import (
	"context"

	"invoicehub/internal/domain"
)

// SchemaRepository exposes the database catalog and runs generated queries.
type SchemaRepository interface {
	ListColumns(ctx context.Context) ([]domain.SchemaColumn, error)
	// RunReadOnly executes query inside a read-only transaction and returns
	// at most maxRows rows. maxRows <= 0 means no limit.
	RunReadOnly(ctx context.Context, query string, maxRows int) (*domain.QueryResult, error)
}

// SQLGenerator turns a question into SQL against the described schema.
type SQLGenerator interface {
	GenerateSQL(ctx context.Context, question, schemaText string) (string, error)
}
