package service

import (
	"context"
	"fmt"

	"invoicehub/internal/analytics"
	"invoicehub/internal/domain"
	"invoicehub/internal/port"
)

// AnalyticsService provides the dashboard figures and groupings.
type AnalyticsService interface {
	GetStats(ctx context.Context) (*domain.Stats, error)
	CashOutflow(ctx context.Context) ([]domain.MonthlyTotal, error)
	InvoiceTrends(ctx context.Context) ([]domain.MonthlyTrend, error)
	CategorySpend(ctx context.Context) ([]domain.CategorySpend, error)
	TopVendors(ctx context.Context) ([]domain.VendorSpend, error)
}

type analyticsService struct {
	analyticsRepo port.AnalyticsRepository
	vendorRepo    port.VendorRepository
}

// NewAnalyticsService creates a new AnalyticsService implementation.
func NewAnalyticsService(analyticsRepo port.AnalyticsRepository, vendorRepo port.VendorRepository) AnalyticsService {
	return &analyticsService{analyticsRepo: analyticsRepo, vendorRepo: vendorRepo}
}

func (s *analyticsService) GetStats(ctx context.Context) (*domain.Stats, error) {
	return s.analyticsRepo.GetStats(ctx)
}

func (s *analyticsService) CashOutflow(ctx context.Context) ([]domain.MonthlyTotal, error) {
	rows, err := s.analyticsRepo.ListDueAmounts(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.MonthlyOutflow(rows), nil
}

func (s *analyticsService) InvoiceTrends(ctx context.Context) ([]domain.MonthlyTrend, error) {
	rows, err := s.analyticsRepo.ListIssuedAmounts(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.InvoiceTrends(rows), nil
}

func (s *analyticsService) CategorySpend(ctx context.Context) ([]domain.CategorySpend, error) {
	items, err := s.analyticsRepo.ListItemSpend(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.CategorySpend(items), nil
}

func (s *analyticsService) TopVendors(ctx context.Context) ([]domain.VendorSpend, error) {
	groups, err := s.analyticsRepo.SumByVendor(ctx)
	if err != nil {
		return nil, err
	}
	names, err := s.vendorRepo.NamesByID(ctx, analytics.VendorIDs(groups))
	if err != nil {
		return nil, fmt.Errorf("resolving vendor names: %w", err)
	}
	return analytics.TopVendors(groups, names, analytics.TopVendorLimit), nil
}
