package ingest_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicehub/internal/ingest"
)

const acmeRecord = `[{
  "_id": "doc-acme-1",
  "name": "acme-invoice.pdf",
  "filePath": "uploads/acme-invoice.pdf",
  "fileSize": {"$numberLong": "20480"},
  "fileType": "application/pdf",
  "status": "processed",
  "organizationId": "org-1",
  "departmentId": "dept-9",
  "uploadedById": "user-3",
  "isValidatedByHuman": true,
  "createdAt": {"$date": "2024-01-10T09:00:00.000Z"},
  "processedAt": {"$date": {"$numberLong": "1704877200000"}},
  "metadata": {"originalFileName": "scan.pdf"},
  "validatedData": {"status": "validated"},
  "extractedData": {
    "llmData": {
      "invoice": {"value": {
        "invoiceId": {"value": "INV-100"},
        "invoiceDate": {"value": "2024-01-05"},
        "dueDate": {"value": "2024-02-04"}
      }},
      "vendor": {"value": {
        "vendorName": {"value": "Acme Corp"},
        "vendorTaxId": {"value": "TX1"},
        "vendorAddress": {"value": "1 Road Runner Way"}
      }},
      "customer": {"value": {
        "customerName": {"value": "Globex"},
        "customerAddress": {"value": "Cypress Creek"}
      }},
      "summary": {"value": {
        "subTotal": {"value": "126.05"},
        "totalTax": {"value": 23.95},
        "invoiceTotal": {"value": "€150.00"},
        "currencySymbol": {"value": " USD "}
      }},
      "lineItems": {"value": {"items": {"value": [
        {"description": {"value": "Software license"}, "quantity": {"value": 1}, "unitPrice": {"value": 100}, "totalPrice": {"value": 100}},
        {"description": "Consulting hours", "quantity": 2, "unitPrice": 25, "totalPrice": "50.00"}
      ]}}}
    }
  }
}]`

func decodeOne(t *testing.T, raw string) ingest.Record {
	t.Helper()
	recs, err := ingest.DecodeRecords([]byte(raw))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	return recs[0]
}

func TestExtract_FullyWrappedRecord(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ex := ingest.Extract(decodeOne(t, acmeRecord), now, "EUR")

	assert.Equal(t, "doc-acme-1", ex.SourceID)
	assert.Equal(t, "acme-invoice.pdf", ex.FileName)
	require.NotNil(t, ex.FileSize)
	assert.Equal(t, int64(20480), *ex.FileSize)
	assert.Equal(t, "2024-01-10", ex.CreatedAt.Format("2006-01-02"))
	assert.Equal(t, now, ex.UpdatedAt)
	require.NotNil(t, ex.ProcessedAt)
	assert.Equal(t, int64(1704877200000), ex.ProcessedAt.UnixMilli())

	require.NotNil(t, ex.InvoiceNumber)
	assert.Equal(t, "INV-100", *ex.InvoiceNumber)
	require.NotNil(t, ex.IssueDate)
	assert.Equal(t, "2024-01", ex.IssueDate.Format("2006-01"))
	require.NotNil(t, ex.DueDate)
	assert.Equal(t, "2024-02", ex.DueDate.Format("2006-01"))

	assert.Equal(t, "USD", ex.Currency)
	assert.Equal(t, 126.05, ex.SubTotal)
	assert.Equal(t, 23.95, ex.TaxTotal)
	assert.Equal(t, 150.0, ex.Total)
	assert.Equal(t, "validated", ex.InvoiceStatus)
	assert.True(t, ex.IsValidatedByHuman)

	require.NotNil(t, ex.VendorName)
	assert.Equal(t, "Acme Corp", *ex.VendorName)
	require.NotNil(t, ex.VendorTaxID)
	assert.Equal(t, "TX1", *ex.VendorTaxID)
	require.NotNil(t, ex.CustomerName)
	assert.Equal(t, "Globex", *ex.CustomerName)

	require.Len(t, ex.LineItems, 2)
	assert.Equal(t, "Software license", *ex.LineItems[0].Description)
	assert.Equal(t, 100.0, ex.LineItems[0].TotalPrice)
	assert.Equal(t, "Consulting hours", *ex.LineItems[1].Description)
	assert.Equal(t, 2.0, ex.LineItems[1].Quantity)
	assert.Equal(t, 50.0, ex.LineItems[1].TotalPrice)

	assert.JSONEq(t, `{"originalFileName":"scan.pdf"}`, string(ex.Metadata))
}

func TestExtract_EmptyRecordUsesDefaults(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ex := ingest.Extract(ingest.Record{}, now, "EUR")

	assert.Equal(t, "", ex.SourceID)
	assert.Equal(t, "unknown", ex.FileName)
	assert.Equal(t, "EUR", ex.Currency)
	assert.Equal(t, "processed", ex.InvoiceStatus)
	assert.Nil(t, ex.InvoiceNumber)
	assert.Nil(t, ex.IssueDate)
	assert.Nil(t, ex.VendorName)
	assert.Nil(t, ex.CustomerName)
	assert.Nil(t, ex.FileSize)
	assert.Nil(t, ex.Metadata)
	assert.Equal(t, 0.0, ex.Total)
	assert.Equal(t, now, ex.CreatedAt)
	assert.NotNil(t, ex.LineItems)
	assert.Empty(t, ex.LineItems)
}

func TestExtract_FileNameFallsBackToMetadata(t *testing.T) {
	rec := decodeOne(t, `[{"metadata": {"originalFileName": "orig.pdf"}}]`)
	ex := ingest.Extract(rec, time.Now(), "EUR")
	assert.Equal(t, "orig.pdf", ex.FileName)
}

func TestExtract_UnwrappedFields(t *testing.T) {
	rec := decodeOne(t, `[{
	  "status": "new",
	  "extractedData": {"llmData": {
	    "vendor": {"vendorName": "Plain Vendor"},
	    "summary": {"value": {"invoiceTotal": 42}},
	    "invoice": {"value": {"invoiceId": "INV-7"}}
	  }}
	}]`)
	ex := ingest.Extract(rec, time.Now(), "EUR")

	require.NotNil(t, ex.VendorName)
	assert.Equal(t, "Plain Vendor", *ex.VendorName)
	require.NotNil(t, ex.InvoiceNumber)
	assert.Equal(t, "INV-7", *ex.InvoiceNumber)
	assert.Equal(t, 42.0, ex.Total)
	assert.Equal(t, "new", ex.InvoiceStatus)
}

func TestExtract_LineItemFallbackShapes(t *testing.T) {
	tests := []struct {
		name  string
		items string
	}{
		{"thrice nested", `{"value": {"items": {"value": [{"total": 5}]}}}`},
		{"twice nested", `{"value": {"items": [{"total": 5}]}}`},
		{"bare wrapped", `{"value": [{"total": 5}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := decodeOne(t, `[{"extractedData": {"llmData": {"lineItems": `+tt.items+`}}}]`)
			ex := ingest.Extract(rec, time.Now(), "EUR")
			require.Len(t, ex.LineItems, 1)
			assert.Equal(t, 5.0, ex.LineItems[0].TotalPrice)
			assert.Equal(t, 1.0, ex.LineItems[0].Quantity)
			assert.Equal(t, 0.0, ex.LineItems[0].UnitPrice)
			assert.Nil(t, ex.LineItems[0].Description)
		})
	}
}

func TestExtract_NonArrayLineItemsIsEmpty(t *testing.T) {
	rec := decodeOne(t, `[{"extractedData": {"llmData": {"lineItems": {"value": {"items": "oops"}}}}}]`)
	ex := ingest.Extract(rec, time.Now(), "EUR")
	assert.Empty(t, ex.LineItems)
}

func TestExtract_ItemDescriptionFallsBackToName(t *testing.T) {
	rec := decodeOne(t, `[{"extractedData": {"llmData": {"lineItems": {"value": [{"name": "Widget"}]}}}}]`)
	ex := ingest.Extract(rec, time.Now(), "EUR")
	require.Len(t, ex.LineItems, 1)
	require.NotNil(t, ex.LineItems[0].Description)
	assert.Equal(t, "Widget", *ex.LineItems[0].Description)
}

func TestFirst_SkipsNullAndMissing(t *testing.T) {
	rec := ingest.Record{"a": map[string]any{"value": nil}, "b": "hit"}
	got := ingest.First(rec, []ingest.Rule{
		ingest.Path("a", "value"),
		ingest.Path("missing"),
		ingest.Path("b"),
		ingest.Const("default"),
	})
	assert.Equal(t, "hit", got)
}

func TestExtract_NullValueWrappersCoerceToZero(t *testing.T) {
	rec := decodeOne(t, `[{"extractedData": {"llmData": {
	  "summary": {"value": {
	    "subTotal": {"value": null, "confidence": 0.61},
	    "totalTax": {"value": null, "confidence": 0.72},
	    "invoiceTotal": {"value": null, "confidence": 0.87}
	  }},
	  "lineItems": {"value": [
	    {"quantity": {"value": null, "confidence": 0.5}, "unitPrice": {"value": null, "confidence": 0.4}, "totalPrice": {"value": null, "confidence": 0.93}}
	  ]}
	}}}]`)
	ex := ingest.Extract(rec, time.Now(), "EUR")

	assert.Equal(t, 0.0, ex.SubTotal)
	assert.Equal(t, 0.0, ex.TaxTotal)
	assert.Equal(t, 0.0, ex.Total)
	require.Len(t, ex.LineItems, 1)
	assert.Equal(t, 0.0, ex.LineItems[0].Quantity)
	assert.Equal(t, 0.0, ex.LineItems[0].UnitPrice)
	assert.Equal(t, 0.0, ex.LineItems[0].TotalPrice)
}

func TestExtract_OnlyReadsDirectLLMBlocks(t *testing.T) {
	rec := decodeOne(t, `[{"extractedData": {"llmData": {"value": {
	  "vendor": {"value": {"vendorName": {"value": "Nested Vendor"}}},
	  "summary": {"value": {"invoiceTotal": {"value": 5}}}
	}}}}]`)
	ex := ingest.Extract(rec, time.Now(), "EUR")

	assert.Nil(t, ex.VendorName)
	assert.Equal(t, 0.0, ex.Total)
}
