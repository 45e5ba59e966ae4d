package ingest

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"invoicehub/internal/domain"
	"invoicehub/internal/port"
)

// Resolver maps vendor and customer names onto stored rows, creating or
// updating them as needed. It is safe for concurrent use.
type Resolver struct {
	vendors   port.VendorRepository
	customers port.CustomerRepository
	locks     keyedMutex
}

// NewResolver creates a Resolver over the given repositories.
func NewResolver(vendors port.VendorRepository, customers port.CustomerRepository) *Resolver {
	return &Resolver{
		vendors:   vendors,
		customers: customers,
		locks:     keyedMutex{locks: make(map[string]*sync.Mutex)},
	}
}

// ResolveVendor upserts the vendor keyed by tax id when present, else by
// name, and returns its id. A blank name yields nil without touching the
// store. Failures are logged and also yield nil.
func (r *Resolver) ResolveVendor(ctx context.Context, name, taxID, address *string) *uuid.UUID {
	vendorName, ok := nonBlank(name)
	if !ok {
		return nil
	}
	tax, hasTax := nonBlank(taxID)

	key := "vendor:name:" + vendorName
	if hasTax {
		key = "vendor:tax:" + tax
	}
	unlock := r.locks.lock(key)
	defer unlock()

	var (
		id  uuid.UUID
		err error
	)
	if hasTax {
		id, err = r.vendors.UpsertByTaxID(ctx, vendorName, tax, address)
	} else {
		id, err = r.vendors.UpsertByName(ctx, vendorName, address)
	}
	if err == nil {
		return &id
	}

	if !errors.Is(err, domain.ErrDuplicate) {
		log.Error().Err(err).Str("vendor", vendorName).Msg("unexpected vendor error")
		return nil
	}

	log.Warn().Str("vendor", vendorName).Msg("duplicate vendor, reusing existing row")
	existing, err := r.vendors.FindLatestByName(ctx, vendorName)
	if err != nil {
		log.Warn().Err(err).Str("vendor", vendorName).Msg("duplicate vendor lookup failed")
		return nil
	}
	return &existing.ID
}

// ResolveCustomer upserts the customer keyed by name and returns its id.
func (r *Resolver) ResolveCustomer(ctx context.Context, name, address *string) *uuid.UUID {
	customerName, ok := nonBlank(name)
	if !ok {
		return nil
	}

	unlock := r.locks.lock("customer:" + customerName)
	defer unlock()

	id, err := r.customers.UpsertByName(ctx, customerName, address)
	if err == nil {
		return &id
	}

	if !errors.Is(err, domain.ErrDuplicate) {
		log.Error().Err(err).Str("customer", customerName).Msg("unexpected customer error")
		return nil
	}

	log.Warn().Str("customer", customerName).Msg("duplicate customer, reusing existing row")
	existing, err := r.customers.FindLatestByName(ctx, customerName)
	if err != nil {
		log.Warn().Err(err).Str("customer", customerName).Msg("duplicate customer lookup failed")
		return nil
	}
	return &existing.ID
}

func nonBlank(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	trimmed := strings.TrimSpace(*s)
	return trimmed, trimmed != ""
}

// keyedMutex hands out one mutex per key. Entries are never evicted; the key
// space is bounded by the distinct parties in one seed run.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
