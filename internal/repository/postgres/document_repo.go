package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"invoicehub/internal/domain"
	"invoicehub/internal/port"
)

type documentRepo struct {
	db *sqlx.DB
}

// NewDocumentRepo creates a new PostgreSQL-backed DocumentRepository.
func NewDocumentRepo(db *sqlx.DB) port.DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, doc *domain.Document) error {
	doc.ID = uuid.New()

	query := `INSERT INTO documents (
			id, source_id, file_name, file_path, file_size, file_type, status,
			organization_id, department_id, uploaded_by_id, metadata, invoice_id,
			created_at, updated_at
		) VALUES (
			:id, :source_id, :file_name, :file_path, :file_size, :file_type, :status,
			:organization_id, :department_id, :uploaded_by_id, :metadata, :invoice_id,
			:created_at, :updated_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, doc); err != nil {
		return fmt.Errorf("documentRepo.Create: %w", err)
	}
	return nil
}
