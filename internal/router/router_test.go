package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"invoicehub/internal/config"
	"invoicehub/internal/domain"
	"invoicehub/internal/handler"
	"invoicehub/internal/router"
	"invoicehub/mocks"
)

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

type testServices struct {
	invoices  *mocks.MockInvoiceService
	directory *mocks.MockDirectoryService
	analytics *mocks.MockAnalyticsService
	exports   *mocks.MockExportService
	chat      *mocks.MockChatService
}

func newTestRouter() (*gin.Engine, testServices) {
	gin.SetMode(gin.TestMode)
	svcs := testServices{
		invoices:  new(mocks.MockInvoiceService),
		directory: new(mocks.MockDirectoryService),
		analytics: new(mocks.MockAnalyticsService),
		exports:   new(mocks.MockExportService),
		chat:      new(mocks.MockChatService),
	}
	r := router.Setup(
		config.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: "GET, POST, OPTIONS",
			AllowedHeaders: "Content-Type, Authorization",
		},
		handler.NewInvoiceHandler(svcs.invoices),
		handler.NewDirectoryHandler(svcs.directory),
		handler.NewAnalyticsHandler(svcs.analytics),
		handler.NewExportHandler(svcs.exports, domain.ExportFormatCSV),
		handler.NewHealthHandler(okPinger{}),
		handler.NewChatHandler(svcs.chat),
	)
	return r, svcs
}

func serve(r *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, target, http.NoBody)
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_TopVendorsDoesNotHitVendorList(t *testing.T) {
	r, svcs := newTestRouter()
	svcs.analytics.On("TopVendors", mock.Anything).Return([]domain.VendorSpend{}, nil)

	w := serve(r, http.MethodGet, "/api/vendors/top10")

	assert.Equal(t, http.StatusOK, w.Code)
	svcs.analytics.AssertExpectations(t)
	svcs.directory.AssertNotCalled(t, "ListVendors", mock.Anything)
}

func TestRouter_InvoiceByID(t *testing.T) {
	r, svcs := newTestRouter()
	id := uuid.New()
	svcs.invoices.On("Get", mock.Anything, id).Return(nil, domain.ErrInvoiceNotFound)

	w := serve(r, http.MethodGet, "/api/invoices/"+id.String())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Invoice not found"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_Routes(t *testing.T) {
	r, svcs := newTestRouter()
	svcs.invoices.On("List", mock.Anything).Return([]domain.InvoiceDetail{}, nil)
	svcs.directory.On("ListVendors", mock.Anything).Return([]domain.VendorWithInvoices{}, nil)
	svcs.directory.On("ListCustomers", mock.Anything).Return([]domain.CustomerWithInvoices{}, nil)
	svcs.directory.On("ListPayments", mock.Anything).Return([]domain.PaymentWithInvoice{}, nil)
	svcs.analytics.On("GetStats", mock.Anything).Return(&domain.Stats{}, nil)
	svcs.analytics.On("CashOutflow", mock.Anything).Return([]domain.MonthlyTotal{}, nil)
	svcs.analytics.On("InvoiceTrends", mock.Anything).Return([]domain.MonthlyTrend{}, nil)
	svcs.analytics.On("CategorySpend", mock.Anything).Return([]domain.CategorySpend{}, nil)
	svcs.exports.On("Export", mock.Anything, domain.ExportFormatCSV, mock.Anything).Return(nil)
	svcs.chat.On("InspectSchema", mock.Anything).Return(&domain.SchemaInfo{Tables: []string{}}, nil)

	for _, path := range []string{
		"/healthz",
		"/readyz",
		"/api/invoices",
		"/api/vendors",
		"/api/customers",
		"/api/payments",
		"/api/stats",
		"/api/cash-outflow",
		"/api/invoice-trends",
		"/api/category-spend",
		"/api/exports/invoices",
		"/api/inspect-schema",
	} {
		t.Run(path, func(t *testing.T) {
			w := serve(r, http.MethodGet, path)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestRouter_ChatWithData(t *testing.T) {
	r, svcs := newTestRouter()
	svcs.chat.On("Ask", mock.Anything, "How many invoices?").
		Return(&domain.ChatAnswer{Query: "How many invoices?", Columns: []string{}, Results: []map[string]any{}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/chat-with-data", strings.NewReader(`{"query":"How many invoices?"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svcs.chat.AssertExpectations(t)
}

func TestRouter_Preflight(t *testing.T) {
	r, _ := newTestRouter()

	w := serve(r, http.MethodOptions, "/api/invoices")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "GET, POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
}

func TestRouter_UnknownRoute(t *testing.T) {
	r, _ := newTestRouter()

	w := serve(r, http.MethodGet, "/api/nope")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
