package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"invoicehub/internal/domain"
	"invoicehub/internal/handler"
	"invoicehub/mocks"
)

func newDirectoryHandler() (*handler.DirectoryHandler, *mocks.MockDirectoryService) {
	mockSvc := new(mocks.MockDirectoryService)
	return handler.NewDirectoryHandler(mockSvc), mockSvc
}

func TestDirectoryHandler_ListVendors(t *testing.T) {
	h, mockSvc := newDirectoryHandler()

	vendors := []domain.VendorWithInvoices{{
		Vendor:   domain.Vendor{ID: uuid.New(), Name: "Acme Corp"},
		Invoices: []domain.InvoiceBrief{{ID: uuid.New(), Total: 10, Status: "processed"}},
	}}
	mockSvc.On("ListVendors", mock.Anything).Return(vendors, nil)

	c, w := newTestContext(http.MethodGet, "/api/vendors")
	h.ListVendors(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Acme Corp", got[0]["name"])
	assert.Len(t, got[0]["invoices"], 1)
}

func TestDirectoryHandler_ListCustomers_Failure(t *testing.T) {
	h, mockSvc := newDirectoryHandler()
	mockSvc.On("ListCustomers", mock.Anything).Return(nil, errors.New("boom"))

	c, w := newTestContext(http.MethodGet, "/api/customers")
	h.ListCustomers(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch customers", decodeError(t, w))
}

func TestDirectoryHandler_ListPayments(t *testing.T) {
	h, mockSvc := newDirectoryHandler()

	number := "INV-9"
	payments := []domain.PaymentWithInvoice{{
		Payment: domain.Payment{ID: uuid.New(), Amount: 25},
		Invoice: &domain.PaymentInvoice{
			ID:            uuid.New(),
			InvoiceNumber: &number,
			Total:         100,
			Vendor:        &domain.PartyName{Name: "Acme Corp"},
		},
	}}
	mockSvc.On("ListPayments", mock.Anything).Return(payments, nil)

	c, w := newTestContext(http.MethodGet, "/api/payments")
	h.ListPayments(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	inv := got[0]["invoice"].(map[string]interface{})
	assert.Equal(t, "INV-9", inv["invoiceNumber"])
	assert.Nil(t, inv["customer"])
}

func TestDirectoryHandler_ListPayments_Failure(t *testing.T) {
	h, mockSvc := newDirectoryHandler()
	mockSvc.On("ListPayments", mock.Anything).Return(nil, errors.New("boom"))

	c, w := newTestContext(http.MethodGet, "/api/payments")
	h.ListPayments(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch payments", decodeError(t, w))
}
