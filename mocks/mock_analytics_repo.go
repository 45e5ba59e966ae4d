package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"invoicehub/internal/domain"
)

// MockAnalyticsRepo is a mock implementation of port.AnalyticsRepository.
type MockAnalyticsRepo struct {
	mock.Mock
}

func (m *MockAnalyticsRepo) GetStats(ctx context.Context) (*domain.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stats), args.Error(1)
}

func (m *MockAnalyticsRepo) ListDueAmounts(ctx context.Context) ([]domain.DueAmount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DueAmount), args.Error(1)
}

func (m *MockAnalyticsRepo) ListIssuedAmounts(ctx context.Context) ([]domain.IssuedAmount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IssuedAmount), args.Error(1)
}

func (m *MockAnalyticsRepo) ListItemSpend(ctx context.Context) ([]domain.ItemSpend, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemSpend), args.Error(1)
}

func (m *MockAnalyticsRepo) SumByVendor(ctx context.Context) ([]domain.VendorTotal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VendorTotal), args.Error(1)
}
