package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"invoicehub/internal/domain"
)

// MockSchemaRepo is a mock implementation of port.SchemaRepository.
type MockSchemaRepo struct {
	mock.Mock
}

func (m *MockSchemaRepo) ListColumns(ctx context.Context) ([]domain.SchemaColumn, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SchemaColumn), args.Error(1)
}

func (m *MockSchemaRepo) RunReadOnly(ctx context.Context, query string, maxRows int) (*domain.QueryResult, error) {
	args := m.Called(ctx, query, maxRows)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QueryResult), args.Error(1)
}
