package service

import (
	"context"

	"github.com/google/uuid"

	"invoicehub/internal/domain"
	"invoicehub/internal/port"
)

// InvoiceService provides invoice listings with their related records.
type InvoiceService interface {
	List(ctx context.Context) ([]domain.InvoiceDetail, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.InvoiceDetail, error)
}

type invoiceService struct {
	invoiceRepo port.InvoiceRepository
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(invoiceRepo port.InvoiceRepository) InvoiceService {
	return &invoiceService{invoiceRepo: invoiceRepo}
}

func (s *invoiceService) List(ctx context.Context) ([]domain.InvoiceDetail, error) {
	invoices, err := s.invoiceRepo.ListDetails(ctx)
	if err != nil {
		return nil, err
	}
	if invoices == nil {
		invoices = []domain.InvoiceDetail{}
	}
	return invoices, nil
}

func (s *invoiceService) Get(ctx context.Context, id uuid.UUID) (*domain.InvoiceDetail, error) {
	return s.invoiceRepo.GetDetail(ctx, id)
}
