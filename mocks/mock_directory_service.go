package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"invoicehub/internal/domain"
)

// MockDirectoryService is a mock implementation of service.DirectoryService.
type MockDirectoryService struct {
	mock.Mock
}

func (m *MockDirectoryService) ListVendors(ctx context.Context) ([]domain.VendorWithInvoices, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VendorWithInvoices), args.Error(1)
}

func (m *MockDirectoryService) ListCustomers(ctx context.Context) ([]domain.CustomerWithInvoices, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomerWithInvoices), args.Error(1)
}

func (m *MockDirectoryService) ListPayments(ctx context.Context) ([]domain.PaymentWithInvoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentWithInvoice), args.Error(1)
}
