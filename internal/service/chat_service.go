package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"invoicehub/internal/domain"
	"invoicehub/internal/port"
	"invoicehub/internal/sqlguard"
)

// ChatService answers natural-language questions with generated SQL.
type ChatService interface {
	// InspectSchema lists the tables and the schema text given to the generator.
	InspectSchema(ctx context.Context) (*domain.SchemaInfo, error)
	// Ask generates, vets and runs a read-only query answering question.
	// Refused or failing queries come back as *domain.ChatRejection.
	Ask(ctx context.Context, question string) (*domain.ChatAnswer, error)
}

// ChatConfig holds chat-with-data settings.
type ChatConfig struct {
	MaxRows int
}

type chatService struct {
	schemaRepo port.SchemaRepository
	generator  port.SQLGenerator
	cfg        ChatConfig
}

// NewChatService creates a new ChatService. generator may be nil, in which
// case Ask reports domain.ErrChatDisabled.
func NewChatService(schemaRepo port.SchemaRepository, generator port.SQLGenerator, cfg ChatConfig) ChatService {
	return &chatService{schemaRepo: schemaRepo, generator: generator, cfg: cfg}
}

func (s *chatService) InspectSchema(ctx context.Context) (*domain.SchemaInfo, error) {
	cols, err := s.schemaRepo.ListColumns(ctx)
	if err != nil {
		return nil, err
	}
	return describeSchema(cols), nil
}

func (s *chatService) Ask(ctx context.Context, question string) (*domain.ChatAnswer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, domain.ErrEmptyQuestion
	}
	if s.generator == nil {
		return nil, domain.ErrChatDisabled
	}

	schema, err := s.InspectSchema(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := s.generator.GenerateSQL(ctx, question, schema.SchemaText)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLLMUnavailable, err)
	}
	query := sqlguard.Clean(raw)

	if sqlguard.IsUnanswerable(query) {
		return nil, &domain.ChatRejection{Err: domain.ErrUnanswerable, AvailableTables: schema.Tables}
	}
	if err := sqlguard.CheckSelect(query); err != nil {
		return nil, &domain.ChatRejection{Err: err, GeneratedSQL: query}
	}
	if !sqlguard.ReferencesAny(query, schema.Tables) {
		return nil, &domain.ChatRejection{
			Err:             domain.ErrUnknownTables,
			GeneratedSQL:    query,
			AvailableTables: schema.Tables,
		}
	}

	result, err := s.schemaRepo.RunReadOnly(ctx, query, s.cfg.MaxRows)
	if err != nil {
		return nil, &domain.ChatRejection{
			Err:             fmt.Errorf("%w: %v", domain.ErrQueryFailed, err),
			GeneratedSQL:    query,
			AvailableTables: schema.Tables,
		}
	}

	log.Debug().
		Str("generated_sql", query).
		Int("rows", len(result.Rows)).
		Msg("chat query answered")

	return &domain.ChatAnswer{
		Query:        question,
		GeneratedSQL: query,
		Rows:         len(result.Rows),
		Columns:      result.Columns,
		Results:      result.Rows,
	}, nil
}

// describeSchema renders one "Table name (col type, ...)" line per table,
// keeping catalog order.
func describeSchema(cols []domain.SchemaColumn) *domain.SchemaInfo {
	info := &domain.SchemaInfo{Tables: []string{}}
	if len(cols) == 0 {
		info.SchemaText = "No tables found in public schema."
		return info
	}

	byTable := make(map[string][]string)
	for _, c := range cols {
		if _, ok := byTable[c.TableName]; !ok {
			info.Tables = append(info.Tables, c.TableName)
		}
		byTable[c.TableName] = append(byTable[c.TableName], c.ColumnName+" "+c.DataType)
	}

	lines := make([]string, 0, len(info.Tables))
	for _, t := range info.Tables {
		lines = append(lines, fmt.Sprintf("Table %s (%s)", t, strings.Join(byTable[t], ", ")))
	}
	info.SchemaText = strings.Join(lines, "\n")
	return info
}
