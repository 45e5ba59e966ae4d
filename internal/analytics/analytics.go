// Package analytics holds the in-memory groupings behind the dashboard
// routes. Every function is pure; sums are accumulated with decimal
// arithmetic so bucket totals do not drift from the stored NUMERIC values.
package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"invoicehub/internal/domain"
)

// TopVendorLimit is the length of the top vendors ranking.
const TopVendorLimit = 10

const monthLayout = "2006-01"

func monthKey(t time.Time) string {
	return t.UTC().Format(monthLayout)
}

// MonthlyOutflow sums totals of invoices with a due date and a positive total
// per due month, ascending by month.
func MonthlyOutflow(rows []domain.DueAmount) []domain.MonthlyTotal {
	sums := make(map[string]decimal.Decimal)
	for _, r := range rows {
		if r.DueDate == nil || r.Total <= 0 {
			continue
		}
		k := monthKey(*r.DueDate)
		sums[k] = sums[k].Add(decimal.NewFromFloat(r.Total))
	}

	out := make([]domain.MonthlyTotal, 0, len(sums))
	for _, month := range sortedKeys(sums) {
		out = append(out, domain.MonthlyTotal{Month: month, Total: sums[month].InexactFloat64()})
	}
	return out
}

// InvoiceTrends counts invoices and sums their totals per issue month,
// rounding each sum to two decimals, ascending by month.
func InvoiceTrends(rows []domain.IssuedAmount) []domain.MonthlyTrend {
	sums := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	for _, r := range rows {
		if r.IssueDate == nil {
			continue
		}
		k := monthKey(*r.IssueDate)
		sums[k] = sums[k].Add(decimal.NewFromFloat(r.Total))
		counts[k]++
	}

	out := make([]domain.MonthlyTrend, 0, len(sums))
	for _, month := range sortedKeys(sums) {
		out = append(out, domain.MonthlyTrend{
			Month:        month,
			InvoiceCount: counts[month],
			TotalSpend:   sums[month].Round(2).InexactFloat64(),
		})
	}
	return out
}

var categoryKeywords = []struct {
	keyword  string
	category string
}{
	{"software", domain.CategorySoftware},
	{"consulting", domain.CategoryConsulting},
	{"office", domain.CategoryOffice},
	{"hardware", domain.CategoryHardware},
	{"service", domain.CategoryServices},
}

// Categorize maps a line-item description to a spend category. The first
// matching keyword wins; nil or unmatched descriptions are Other.
func Categorize(desc *string) string {
	if desc == nil {
		return domain.CategoryOther
	}
	lower := strings.ToLower(*desc)
	for _, kw := range categoryKeywords {
		if strings.Contains(lower, kw.keyword) {
			return kw.category
		}
	}
	return domain.CategoryOther
}

// CategorySpend sums line-item totals per category in first-seen order.
func CategorySpend(items []domain.ItemSpend) []domain.CategorySpend {
	sums := make(map[string]decimal.Decimal)
	var order []string
	for _, it := range items {
		c := Categorize(it.Description)
		if _, seen := sums[c]; !seen {
			order = append(order, c)
		}
		sums[c] = sums[c].Add(decimal.NewFromFloat(it.TotalPrice))
	}

	out := make([]domain.CategorySpend, 0, len(order))
	for _, c := range order {
		out = append(out, domain.CategorySpend{Category: c, TotalSpend: sums[c].InexactFloat64()})
	}
	return out
}

// TopVendors ranks vendor totals descending and keeps at most limit rows.
// Groups whose vendor is nil or missing from names are labelled
// "Unknown Vendor". Equal totals are ordered by name.
func TopVendors(groups []domain.VendorTotal, names map[uuid.UUID]string, limit int) []domain.VendorSpend {
	out := make([]domain.VendorSpend, 0, len(groups))
	for _, g := range groups {
		name := domain.UnknownVendorName
		if g.VendorID != nil {
			if n, ok := names[*g.VendorID]; ok {
				name = n
			}
		}
		out = append(out, domain.VendorSpend{
			Vendor:     name,
			TotalSpend: decimal.NewFromFloat(g.Total).InexactFloat64(),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalSpend != out[j].TotalSpend {
			return out[i].TotalSpend > out[j].TotalSpend
		}
		return out[i].Vendor < out[j].Vendor
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// VendorIDs returns the non-nil vendor ids of groups.
func VendorIDs(groups []domain.VendorTotal) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(groups))
	for _, g := range groups {
		if g.VendorID != nil {
			ids = append(ids, *g.VendorID)
		}
	}
	return ids
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
