package port

import (
	"context"

	"invoicehub/internal/domain"
)

// AnalyticsRepository provides the read projections behind the dashboard
// aggregations. Grouping happens in the service layer.
type AnalyticsRepository interface {
	GetStats(ctx context.Context) (*domain.Stats, error)
	ListDueAmounts(ctx context.Context) ([]domain.DueAmount, error)
	ListIssuedAmounts(ctx context.Context) ([]domain.IssuedAmount, error)
	ListItemSpend(ctx context.Context) ([]domain.ItemSpend, error)
	SumByVendor(ctx context.Context) ([]domain.VendorTotal, error)
}
