package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"invoicehub/internal/domain"
	"invoicehub/internal/export"
	"invoicehub/internal/port"
)

// ExportService renders invoice exports and optionally stores them.
type ExportService interface {
	// Export writes all invoices to w in format.
	Export(ctx context.Context, format domain.ExportFormat, w io.Writer) error
	// ExportToStorage renders the export and uploads it under key. It
	// returns the stored object's location.
	ExportToStorage(ctx context.Context, format domain.ExportFormat, key string) (*port.UploadOutput, error)
}

// ExportConfig holds export settings.
type ExportConfig struct {
	SheetName string
	Bucket    string
}

type exportService struct {
	invoiceRepo port.InvoiceRepository
	storage     port.ObjectStorage
	cfg         ExportConfig
}

// NewExportService creates a new ExportService. storage may be nil when
// exports are only streamed.
func NewExportService(invoiceRepo port.InvoiceRepository, storage port.ObjectStorage, cfg ExportConfig) ExportService {
	return &exportService{invoiceRepo: invoiceRepo, storage: storage, cfg: cfg}
}

func (s *exportService) Export(ctx context.Context, format domain.ExportFormat, w io.Writer) error {
	invoices, err := s.invoiceRepo.ListDetails(ctx)
	if err != nil {
		return err
	}
	return export.WriteInvoices(w, format, s.cfg.SheetName, invoices)
}

func (s *exportService) ExportToStorage(ctx context.Context, format domain.ExportFormat, key string) (*port.UploadOutput, error) {
	if s.storage == nil {
		return nil, fmt.Errorf("object storage not configured")
	}
	if key == "" {
		key = "exports/" + export.BuildFilename("invoices", format, time.Now().UTC())
	}

	var buf bytes.Buffer
	if err := s.Export(ctx, format, &buf); err != nil {
		return nil, err
	}

	out, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        &buf,
		ContentType: export.ContentType(format),
	})
	if err != nil {
		return nil, fmt.Errorf("uploading export: %w", err)
	}
	return out, nil
}
