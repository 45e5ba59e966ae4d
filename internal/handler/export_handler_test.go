package handler_test

import (
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"invoicehub/internal/domain"
	"invoicehub/internal/handler"
	"invoicehub/mocks"
)

func newExportHandler() (*handler.ExportHandler, *mocks.MockExportService) {
	mockSvc := new(mocks.MockExportService)
	return handler.NewExportHandler(mockSvc, domain.ExportFormatCSV), mockSvc
}

func TestExportHandler_DefaultCSV(t *testing.T) {
	h, mockSvc := newExportHandler()
	mockSvc.On("Export", mock.Anything, domain.ExportFormatCSV, mock.Anything).
		Run(func(args mock.Arguments) {
			_, _ = io.WriteString(args.Get(2).(io.Writer), "Invoice ID\n")
		}).
		Return(nil)

	c, w := newTestContext(http.MethodGet, "/api/exports/invoices")
	h.ExportInvoices(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `attachment; filename="invoices_`)
	assert.Contains(t, w.Header().Get("Content-Disposition"), `.csv"`)
	assert.Equal(t, "Invoice ID\n", w.Body.String())
	mockSvc.AssertExpectations(t)
}

func TestExportHandler_XLSX(t *testing.T) {
	h, mockSvc := newExportHandler()
	mockSvc.On("Export", mock.Anything, domain.ExportFormatXLSX, mock.Anything).Return(nil)

	c, w := newTestContext(http.MethodGet, "/api/exports/invoices?format=xlsx")
	h.ExportInvoices(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, w.Header().Get("Content-Disposition"), `.xlsx"`)
}

func TestExportHandler_BadFormat(t *testing.T) {
	h, mockSvc := newExportHandler()

	c, w := newTestContext(http.MethodGet, "/api/exports/invoices?format=pdf")
	h.ExportInvoices(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, w.Header().Get("Content-Disposition"))
	mockSvc.AssertNotCalled(t, "Export", mock.Anything, mock.Anything, mock.Anything)
}

func TestExportHandler_Failure(t *testing.T) {
	h, mockSvc := newExportHandler()
	mockSvc.On("Export", mock.Anything, domain.ExportFormatCSV, mock.Anything).
		Run(func(args mock.Arguments) {
			_, _ = io.WriteString(args.Get(2).(io.Writer), "partial")
		}).
		Return(errors.New("db down"))

	c, w := newTestContext(http.MethodGet, "/api/exports/invoices")
	h.ExportInvoices(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to export invoices", decodeError(t, w))
	assert.NotContains(t, w.Body.String(), "partial")
}
