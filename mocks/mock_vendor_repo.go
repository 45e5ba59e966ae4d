package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"invoicehub/internal/domain"
)

// MockVendorRepo is a mock implementation of port.VendorRepository.
type MockVendorRepo struct {
	mock.Mock
}

func (m *MockVendorRepo) UpsertByTaxID(ctx context.Context, name, taxID string, address *string) (uuid.UUID, error) {
	args := m.Called(ctx, name, taxID, address)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockVendorRepo) UpsertByName(ctx context.Context, name string, address *string) (uuid.UUID, error) {
	args := m.Called(ctx, name, address)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockVendorRepo) FindLatestByName(ctx context.Context, name string) (*domain.Vendor, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockVendorRepo) ListWithInvoices(ctx context.Context) ([]domain.VendorWithInvoices, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VendorWithInvoices), args.Error(1)
}

func (m *MockVendorRepo) NamesByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]string), args.Error(1)
}
