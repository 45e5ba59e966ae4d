package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"invoicehub/internal/domain"
	"invoicehub/internal/service"
)

// InvoiceHandler handles invoice endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// List handles GET /api/invoices
// @Summary List invoices
// @Description All invoices with vendor, customer, line items and payments, newest first.
// @Tags invoices
// @Produce json
// @Success 200 {array} domain.InvoiceDetail
// @Failure 500 {object} ErrorResponseBody
// @Router /api/invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.invoiceService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err, msgFetchInvoices)
		return
	}
	RespondOK(c, invoices)
}

// Get handles GET /api/invoices/:id
// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} domain.InvoiceDetail
// @Failure 404 {object} ErrorResponseBody
// @Failure 500 {object} ErrorResponseBody
// @Router /api/invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// Malformed ids cannot exist, so they read as missing.
		HandleError(c, domain.ErrInvoiceNotFound, msgFetchInvoice)
		return
	}

	invoice, err := h.invoiceService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err, msgFetchInvoice)
		return
	}
	RespondOK(c, invoice)
}
