package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"invoicehub/internal/domain"
	"invoicehub/internal/middleware"
)

// Fixed client-facing messages for failed reads. Error details stay in the log.
const (
	msgFetchInvoices  = "Failed to fetch invoices"
	msgFetchInvoice   = "Error fetching invoice"
	msgFetchVendors   = "Failed to fetch vendors"
	msgFetchCustomers = "Failed to fetch customers"
	msgFetchPayments  = "Failed to fetch payments"
	msgFetchStats     = "Failed to fetch stats"
	msgFetchData      = "Failed to fetch data"
	msgExport         = "Failed to export invoices"
	msgChat           = "Failed to answer question"
	msgSchema         = "Failed to inspect schema"
)

// RespondOK sends a 200 response with data as the JSON body.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// RespondError sends {"error": msg} with the given status code.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponseBody{Error: msg})
}

// MapDomainError translates domain errors to HTTP status codes and messages.
func MapDomainError(err error) (status int, msg string) {
	switch {
	case errors.Is(err, domain.ErrInvoiceNotFound):
		return http.StatusNotFound, "Invoice not found"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Resource not found"
	case errors.Is(err, domain.ErrInvalidFormat):
		return http.StatusBadRequest, "Unsupported export format; allowed: csv, xlsx"
	case errors.Is(err, domain.ErrEmptyQuestion):
		return http.StatusBadRequest, "query is required"
	case errors.Is(err, domain.ErrUnanswerable),
		errors.Is(err, domain.ErrUnsafeSQL),
		errors.Is(err, domain.ErrUnknownTables),
		errors.Is(err, domain.ErrQueryFailed):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrLLMUnavailable):
		return http.StatusBadGateway, "Language model request failed"
	case errors.Is(err, domain.ErrChatDisabled):
		return http.StatusServiceUnavailable, "Chat with data is not configured"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// HandleError maps err and sends the error response. Server-side failures
// are logged with the request id; unmapped ones are answered with internalMsg.
func HandleError(c *gin.Context, err error, internalMsg string) {
	status, msg := MapDomainError(err)
	if status >= http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("path", c.FullPath()).
			Msg("internal error")
	}
	if status == http.StatusInternalServerError {
		msg = internalMsg
	}
	RespondError(c, status, msg)
}
