package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"invoicehub/internal/domain"
	"invoicehub/internal/export"
	"invoicehub/internal/service"
)

// ExportHandler handles invoice export downloads.
type ExportHandler struct {
	exportService service.ExportService
	defaultFormat domain.ExportFormat
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService, defaultFormat domain.ExportFormat) *ExportHandler {
	if defaultFormat == "" {
		defaultFormat = domain.ExportFormatCSV
	}
	return &ExportHandler{exportService: exportService, defaultFormat: defaultFormat}
}

// ExportInvoices handles GET /api/exports/invoices
// @Summary Export invoices
// @Description Download all invoices as CSV or XLSX.
// @Tags exports
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv or xlsx" Enums(csv, xlsx)
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponseBody
// @Failure 500 {object} ErrorResponseBody
// @Router /api/exports/invoices [get]
func (h *ExportHandler) ExportInvoices(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"), h.defaultFormat)
	if err != nil {
		HandleError(c, err, msgExport)
		return
	}

	// Rendered fully before any byte is sent so a failure can still become a JSON error.
	var buf bytes.Buffer
	if err := h.exportService.Export(c.Request.Context(), format, &buf); err != nil {
		HandleError(c, err, msgExport)
		return
	}

	filename := export.BuildFilename("invoices", format, time.Now().UTC())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, export.ContentType(format), buf.Bytes())
}
