package handler

import (
	"github.com/gin-gonic/gin"

	"invoicehub/internal/service"
)

// DirectoryHandler handles the vendor, customer and payment listings.
type DirectoryHandler struct {
	directoryService service.DirectoryService
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(directoryService service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directoryService: directoryService}
}

// ListVendors handles GET /api/vendors
// @Summary List vendors
// @Description Vendors with their invoices, newest first.
// @Tags vendors
// @Produce json
// @Success 200 {array} domain.VendorWithInvoices
// @Failure 500 {object} ErrorResponseBody
// @Router /api/vendors [get]
func (h *DirectoryHandler) ListVendors(c *gin.Context) {
	vendors, err := h.directoryService.ListVendors(c.Request.Context())
	if err != nil {
		HandleError(c, err, msgFetchVendors)
		return
	}
	RespondOK(c, vendors)
}

// ListCustomers handles GET /api/customers
// @Summary List customers
// @Description Customers with their invoices, newest first.
// @Tags customers
// @Produce json
// @Success 200 {array} domain.CustomerWithInvoices
// @Failure 500 {object} ErrorResponseBody
// @Router /api/customers [get]
func (h *DirectoryHandler) ListCustomers(c *gin.Context) {
	customers, err := h.directoryService.ListCustomers(c.Request.Context())
	if err != nil {
		HandleError(c, err, msgFetchCustomers)
		return
	}
	RespondOK(c, customers)
}

// ListPayments handles GET /api/payments
// @Summary List payments
// @Description Payments with a summary of the paid invoice, most recent payment first.
// @Tags payments
// @Produce json
// @Success 200 {array} domain.PaymentWithInvoice
// @Failure 500 {object} ErrorResponseBody
// @Router /api/payments [get]
func (h *DirectoryHandler) ListPayments(c *gin.Context) {
	payments, err := h.directoryService.ListPayments(c.Request.Context())
	if err != nil {
		HandleError(c, err, msgFetchPayments)
		return
	}
	RespondOK(c, payments)
}
