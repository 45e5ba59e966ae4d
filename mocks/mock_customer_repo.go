package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"invoicehub/internal/domain"
)

// MockCustomerRepo is a mock implementation of port.CustomerRepository.
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) UpsertByName(ctx context.Context, name string, address *string) (uuid.UUID, error) {
	args := m.Called(ctx, name, address)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockCustomerRepo) FindLatestByName(ctx context.Context, name string) (*domain.Customer, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepo) ListWithInvoices(ctx context.Context) ([]domain.CustomerWithInvoices, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomerWithInvoices), args.Error(1)
}
