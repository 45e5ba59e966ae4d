package service

import (
	"context"

	"invoicehub/internal/domain"
	"invoicehub/internal/port"
)

// DirectoryService lists vendors, customers and payments together with the
// invoices they relate to.
type DirectoryService interface {
	ListVendors(ctx context.Context) ([]domain.VendorWithInvoices, error)
	ListCustomers(ctx context.Context) ([]domain.CustomerWithInvoices, error)
	ListPayments(ctx context.Context) ([]domain.PaymentWithInvoice, error)
}

type directoryService struct {
	vendorRepo   port.VendorRepository
	customerRepo port.CustomerRepository
	paymentRepo  port.PaymentRepository
}

// NewDirectoryService creates a new DirectoryService implementation.
func NewDirectoryService(
	vendorRepo port.VendorRepository,
	customerRepo port.CustomerRepository,
	paymentRepo port.PaymentRepository,
) DirectoryService {
	return &directoryService{
		vendorRepo:   vendorRepo,
		customerRepo: customerRepo,
		paymentRepo:  paymentRepo,
	}
}

func (s *directoryService) ListVendors(ctx context.Context) ([]domain.VendorWithInvoices, error) {
	vendors, err := s.vendorRepo.ListWithInvoices(ctx)
	if err != nil {
		return nil, err
	}
	if vendors == nil {
		vendors = []domain.VendorWithInvoices{}
	}
	return vendors, nil
}

func (s *directoryService) ListCustomers(ctx context.Context) ([]domain.CustomerWithInvoices, error) {
	customers, err := s.customerRepo.ListWithInvoices(ctx)
	if err != nil {
		return nil, err
	}
	if customers == nil {
		customers = []domain.CustomerWithInvoices{}
	}
	return customers, nil
}

func (s *directoryService) ListPayments(ctx context.Context) ([]domain.PaymentWithInvoice, error) {
	payments, err := s.paymentRepo.ListWithInvoice(ctx)
	if err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []domain.PaymentWithInvoice{}
	}
	return payments, nil
}
