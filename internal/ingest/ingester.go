package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"invoicehub/internal/domain"
	"invoicehub/internal/port"
)

// Options tunes an Ingester.
type Options struct {
	// Workers is the number of records processed concurrently. Values below 1
	// mean sequential processing.
	Workers         int
	DefaultCurrency string
}

// Summary reports the outcome of a Run.
type Summary struct {
	Total     int
	Processed int
	Failed    int
}

// Ingester normalizes seed records into invoices, documents and line items.
type Ingester struct {
	resolver  *Resolver
	invoices  port.InvoiceRepository
	documents port.DocumentRepository
	lineItems port.LineItemRepository
	opts      Options
	now       func() time.Time
}

// NewIngester creates a new Ingester.
func NewIngester(
	resolver *Resolver,
	invoices port.InvoiceRepository,
	documents port.DocumentRepository,
	lineItems port.LineItemRepository,
	opts Options,
) *Ingester {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.DefaultCurrency == "" {
		opts.DefaultCurrency = domain.DefaultCurrency
	}
	return &Ingester{
		resolver:  resolver,
		invoices:  invoices,
		documents: documents,
		lineItems: lineItems,
		opts:      opts,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Ingest writes one record. The invoice is created on first sight of its
// source key; the document and line items are always inserted.
func (g *Ingester) Ingest(ctx context.Context, rec Record) error {
	if rec == nil {
		return domain.ErrInvalidRecord
	}
	now := g.now()
	ex := Extract(rec, now, g.opts.DefaultCurrency)
	key := SourceKey(rec, ex.SourceID)

	vendorID := g.resolver.ResolveVendor(ctx, ex.VendorName, ex.VendorTaxID, ex.VendorAddress)
	customerID := g.resolver.ResolveCustomer(ctx, ex.CustomerName, ex.CustomerAddress)

	inv := &domain.Invoice{
		SourceID:           key,
		InvoiceNumber:      ex.InvoiceNumber,
		VendorID:           vendorID,
		CustomerID:         customerID,
		IssueDate:          ex.IssueDate,
		DueDate:            ex.DueDate,
		Currency:           ex.Currency,
		SubTotal:           ex.SubTotal,
		TaxTotal:           ex.TaxTotal,
		Total:              ex.Total,
		Status:             ex.InvoiceStatus,
		IsValidatedByHuman: ex.IsValidatedByHuman,
		ProcessedAt:        ex.ProcessedAt,
		AnalyticsID:        ex.AnalyticsID,
		Metadata:           jsonColumn(ex.Metadata),
		ExtractedData:      jsonColumn(ex.ExtractedData),
		ValidatedData:      jsonColumn(ex.ValidatedData),
	}
	if err := g.invoices.UpsertBySourceID(ctx, inv); err != nil {
		return fmt.Errorf("upserting invoice: %w", err)
	}

	invoiceID := inv.ID
	doc := &domain.Document{
		SourceID:       key,
		FileName:       ex.FileName,
		FilePath:       ex.FilePath,
		FileSize:       ex.FileSize,
		FileType:       ex.FileType,
		Status:         ex.DocumentStatus,
		OrganizationID: ex.OrganizationID,
		DepartmentID:   ex.DepartmentID,
		UploadedByID:   ex.UploadedByID,
		Metadata:       jsonColumn(ex.Metadata),
		InvoiceID:      &invoiceID,
		CreatedAt:      ex.CreatedAt,
		UpdatedAt:      ex.UpdatedAt,
	}
	if err := g.documents.Create(ctx, doc); err != nil {
		return fmt.Errorf("creating document: %w", err)
	}

	if len(ex.LineItems) == 0 {
		return nil
	}
	items := make([]domain.LineItem, 0, len(ex.LineItems))
	for _, it := range ex.LineItems {
		items = append(items, domain.LineItem{
			ID:          uuid.New(),
			InvoiceID:   invoiceID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	if err := g.lineItems.CreateBatch(ctx, items); err != nil {
		return fmt.Errorf("creating line items: %w", err)
	}
	return nil
}

// Run ingests records with up to Options.Workers concurrent writers. A failed
// record is logged and counted; it never stops the batch. Canceling ctx stops
// dispatching further records and waits for in-flight ones.
func (g *Ingester) Run(ctx context.Context, records []Record) Summary {
	var (
		wg        sync.WaitGroup
		processed atomic.Int64
		failed    atomic.Int64
	)
	sem := make(chan struct{}, g.opts.Workers)

	log.Info().Int("records", len(records)).Int("workers", g.opts.Workers).Msg("seeding documents")

dispatch:
	for i := range records {
		if ctx.Err() != nil {
			log.Warn().Int("dispatched", i).Msg("ingest canceled, waiting for in-flight records")
			break
		}
		select {
		case <-ctx.Done():
			log.Warn().Int("dispatched", i).Msg("ingest canceled, waiting for in-flight records")
			break dispatch
		case sem <- struct{}{}:
		}

		rec := records[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			defer func() {
				if p := recover(); p != nil {
					failed.Add(1)
					log.Error().
						Interface("panic", p).
						Str("record_id", recordID(rec)).
						Msg("panic seeding record")
				}
			}()

			if err := g.Ingest(ctx, rec); err != nil {
				failed.Add(1)
				log.Error().Err(err).Str("record_id", recordID(rec)).Msg("error seeding record")
				return
			}
			processed.Add(1)
		}()
	}
	wg.Wait()

	summary := Summary{
		Total:     len(records),
		Processed: int(processed.Load()),
		Failed:    int(failed.Load()),
	}
	log.Info().
		Int("processed", summary.Processed).
		Int("failed", summary.Failed).
		Msg("seeding finished")
	return summary
}

// SourceKey returns the invoice identity of rec: its own id when present,
// else a content hash so distinct id-less records never share a row.
func SourceKey(rec Record, id string) string {
	if id != "" {
		return id
	}
	b, err := json.Marshal(rec)
	if err != nil {
		b = []byte(fmt.Sprint(map[string]any(rec)))
	}
	sum := sha256.Sum256(b)
	return "sha256:" + hex.EncodeToString(sum[:])
}

func recordID(rec Record) string {
	if id := sourceID(rec["_id"]); id != "" {
		return id
	}
	return "<no id>"
}

func jsonColumn(b []byte) *datatypes.JSON {
	if b == nil {
		return nil
	}
	j := datatypes.JSON(b)
	return &j
}
