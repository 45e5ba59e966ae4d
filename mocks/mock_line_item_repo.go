package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"invoicehub/internal/domain"
)

// MockLineItemRepo is a mock implementation of port.LineItemRepository.
type MockLineItemRepo struct {
	mock.Mock
}

func (m *MockLineItemRepo) CreateBatch(ctx context.Context, items []domain.LineItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}
