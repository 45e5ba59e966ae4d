package ingest_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"invoicehub/internal/domain"
)

// fakeStore is an in-memory stand-in for the PostgreSQL repositories with the
// same uniqueness rules: vendor name and tax id, customer name, invoice
// source id.
type fakeStore struct {
	mu        sync.Mutex
	vendors   []domain.Vendor
	customers []domain.Customer
	invoices  []domain.Invoice
	documents []domain.Document
	lineItems []domain.LineItem

	vendorErr   error
	customerErr error
}

func newFakeStore() *fakeStore { return &fakeStore{} }

type fakeVendors struct{ s *fakeStore }
type fakeCustomers struct{ s *fakeStore }
type fakeInvoices struct{ s *fakeStore }
type fakeDocuments struct{ s *fakeStore }
type fakeLineItems struct{ s *fakeStore }

func (f fakeVendors) UpsertByTaxID(_ context.Context, name, taxID string, address *string) (uuid.UUID, error) {
	s := f.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.vendorErr != nil {
		return uuid.Nil, s.vendorErr
	}
	for i := range s.vendors {
		v := &s.vendors[i]
		if v.TaxID != nil && *v.TaxID == taxID {
			if other := s.vendorByName(name); other != nil && other.ID != v.ID {
				return uuid.Nil, domain.ErrDuplicate
			}
			v.Name = name
			v.Address = address
			v.UpdatedAt = time.Now()
			return v.ID, nil
		}
	}
	if s.vendorByName(name) != nil {
		return uuid.Nil, domain.ErrDuplicate
	}
	tax := taxID
	v := domain.Vendor{ID: uuid.New(), Name: name, TaxID: &tax, Address: address, CreatedAt: time.Now()}
	s.vendors = append(s.vendors, v)
	return v.ID, nil
}

func (f fakeVendors) UpsertByName(_ context.Context, name string, address *string) (uuid.UUID, error) {
	s := f.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.vendorErr != nil {
		return uuid.Nil, s.vendorErr
	}
	if v := s.vendorByName(name); v != nil {
		v.Address = address
		return v.ID, nil
	}
	v := domain.Vendor{ID: uuid.New(), Name: name, Address: address, CreatedAt: time.Now()}
	s.vendors = append(s.vendors, v)
	return v.ID, nil
}

func (f fakeVendors) FindLatestByName(_ context.Context, name string) (*domain.Vendor, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if v := f.s.vendorByName(name); v != nil {
		out := *v
		return &out, nil
	}
	return nil, domain.ErrNotFound
}

func (f fakeVendors) ListWithInvoices(context.Context) ([]domain.VendorWithInvoices, error) {
	return nil, nil
}

func (f fakeVendors) NamesByID(context.Context, []uuid.UUID) (map[uuid.UUID]string, error) {
	return nil, nil
}

func (s *fakeStore) vendorByName(name string) *domain.Vendor {
	for i := range s.vendors {
		if s.vendors[i].Name == name {
			return &s.vendors[i]
		}
	}
	return nil
}

func (f fakeCustomers) UpsertByName(_ context.Context, name string, address *string) (uuid.UUID, error) {
	s := f.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.customerErr != nil {
		return uuid.Nil, s.customerErr
	}
	for i := range s.customers {
		if s.customers[i].Name == name {
			s.customers[i].Address = address
			return s.customers[i].ID, nil
		}
	}
	c := domain.Customer{ID: uuid.New(), Name: name, Address: address, CreatedAt: time.Now()}
	s.customers = append(s.customers, c)
	return c.ID, nil
}

func (f fakeCustomers) FindLatestByName(_ context.Context, name string) (*domain.Customer, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for i := range f.s.customers {
		if f.s.customers[i].Name == name {
			out := f.s.customers[i]
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f fakeCustomers) ListWithInvoices(context.Context) ([]domain.CustomerWithInvoices, error) {
	return nil, nil
}

func (f fakeInvoices) UpsertBySourceID(_ context.Context, inv *domain.Invoice) error {
	s := f.s
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.invoices {
		existing := &s.invoices[i]
		if existing.SourceID != inv.SourceID {
			continue
		}
		existing.UpdatedAt = time.Now()
		if inv.Metadata != nil {
			existing.Metadata = inv.Metadata
		}
		if inv.ExtractedData != nil {
			existing.ExtractedData = inv.ExtractedData
		}
		if inv.ValidatedData != nil {
			existing.ValidatedData = inv.ValidatedData
		}
		inv.ID = existing.ID
		return nil
	}
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	s.invoices = append(s.invoices, *inv)
	return nil
}

func (f fakeInvoices) GetDetail(context.Context, uuid.UUID) (*domain.InvoiceDetail, error) {
	return nil, domain.ErrInvoiceNotFound
}

func (f fakeInvoices) ListDetails(context.Context) ([]domain.InvoiceDetail, error) {
	return nil, nil
}

func (f fakeDocuments) Create(_ context.Context, doc *domain.Document) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	doc.ID = uuid.New()
	f.s.documents = append(f.s.documents, *doc)
	return nil
}

func (f fakeLineItems) CreateBatch(_ context.Context, items []domain.LineItem) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.lineItems = append(f.s.lineItems, items...)
	return nil
}
