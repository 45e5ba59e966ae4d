package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSQLGenerator is a mock implementation of port.SQLGenerator.
type MockSQLGenerator struct {
	mock.Mock
}

func (m *MockSQLGenerator) GenerateSQL(ctx context.Context, question, schemaText string) (string, error) {
	args := m.Called(ctx, question, schemaText)
	return args.String(0), args.Error(1)
}
