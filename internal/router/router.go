package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "invoicehub/docs" // registers the OpenAPI document
	"invoicehub/internal/config"
	"invoicehub/internal/handler"
	"invoicehub/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	corsCfg config.CORSConfig,
	invoiceH *handler.InvoiceHandler,
	directoryH *handler.DirectoryHandler,
	analyticsH *handler.AnalyticsHandler,
	exportH *handler.ExportHandler,
	healthH *handler.HealthHandler,
	chatH *handler.ChatHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsCfg))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	api.GET("/invoices", invoiceH.List)
	api.GET("/invoices/:id", invoiceH.Get)

	api.GET("/vendors", directoryH.ListVendors)
	api.GET("/vendors/top10", analyticsH.TopVendors)
	api.GET("/customers", directoryH.ListCustomers)
	api.GET("/payments", directoryH.ListPayments)

	// Dashboard
	api.GET("/stats", analyticsH.GetStats)
	api.GET("/cash-outflow", analyticsH.CashOutflow)
	api.GET("/invoice-trends", analyticsH.InvoiceTrends)
	api.GET("/category-spend", analyticsH.CategorySpend)

	api.GET("/exports/invoices", exportH.ExportInvoices)

	// Chat with data
	api.POST("/chat-with-data", chatH.ChatWithData)
	api.GET("/inspect-schema", chatH.InspectSchema)

	return r
}
