package handler

import (
	"github.com/gin-gonic/gin"

	"invoicehub/internal/service"
)

// AnalyticsHandler handles the dashboard endpoints.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetStats handles GET /api/stats
// @Summary Headline statistics
// @Tags analytics
// @Produce json
// @Success 200 {object} domain.Stats
// @Failure 500 {object} ErrorResponseBody
// @Router /api/stats [get]
func (h *AnalyticsHandler) GetStats(c *gin.Context) {
	stats, err := h.analyticsService.GetStats(c.Request.Context())
	if err != nil {
		HandleError(c, err, msgFetchStats)
		return
	}
	RespondOK(c, stats)
}

// CashOutflow handles GET /api/cash-outflow
// @Summary Expected cash outflow per month
// @Description Sum of positive invoice totals grouped by due month, ascending.
// @Tags analytics
// @Produce json
// @Success 200 {array} domain.MonthlyTotal
// @Failure 500 {object} ErrorResponseBody
// @Router /api/cash-outflow [get]
func (h *AnalyticsHandler) CashOutflow(c *gin.Context) {
	buckets, err := h.analyticsService.CashOutflow(c.Request.Context())
	if err != nil {
		HandleError(c, err, msgFetchData)
		return
	}
	RespondOK(c, buckets)
}

// InvoiceTrends handles GET /api/invoice-trends
// @Summary Invoice count and spend per issue month
// @Tags analytics
// @Produce json
// @Success 200 {array} domain.MonthlyTrend
// @Failure 500 {object} ErrorResponseBody
// @Router /api/invoice-trends [get]
func (h *AnalyticsHandler) InvoiceTrends(c *gin.Context) {
	trends, err := h.analyticsService.InvoiceTrends(c.Request.Context())
	if err != nil {
		HandleError(c, err, msgFetchData)
		return
	}
	RespondOK(c, trends)
}

// CategorySpend handles GET /api/category-spend
// @Summary Line-item spend per category
// @Tags analytics
// @Produce json
// @Success 200 {array} domain.CategorySpend
// @Failure 500 {object} ErrorResponseBody
// @Router /api/category-spend [get]
func (h *AnalyticsHandler) CategorySpend(c *gin.Context) {
	spend, err := h.analyticsService.CategorySpend(c.Request.Context())
	if err != nil {
		HandleError(c, err, msgFetchData)
		return
	}
	RespondOK(c, spend)
}

// TopVendors handles GET /api/vendors/top10
// @Summary Ten vendors with the highest invoice totals
// @Tags analytics
// @Produce json
// @Success 200 {array} domain.VendorSpend
// @Failure 500 {object} ErrorResponseBody
// @Router /api/vendors/top10 [get]
func (h *AnalyticsHandler) TopVendors(c *gin.Context) {
	vendors, err := h.analyticsService.TopVendors(c.Request.Context())
	if err != nil {
		HandleError(c, err, msgFetchData)
		return
	}
	RespondOK(c, vendors)
}
