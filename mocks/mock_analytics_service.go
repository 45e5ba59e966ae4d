package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"invoicehub/internal/domain"
)

// MockAnalyticsService is a mock implementation of service.AnalyticsService.
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) GetStats(ctx context.Context) (*domain.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stats), args.Error(1)
}

func (m *MockAnalyticsService) CashOutflow(ctx context.Context) ([]domain.MonthlyTotal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyTotal), args.Error(1)
}

func (m *MockAnalyticsService) InvoiceTrends(ctx context.Context) ([]domain.MonthlyTrend, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyTrend), args.Error(1)
}

func (m *MockAnalyticsService) CategorySpend(ctx context.Context) ([]domain.CategorySpend, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategorySpend), args.Error(1)
}

func (m *MockAnalyticsService) TopVendors(ctx context.Context) ([]domain.VendorSpend, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VendorSpend), args.Error(1)
}
