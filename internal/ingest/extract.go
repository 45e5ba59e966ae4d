package ingest

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"invoicehub/internal/domain"
)

// Record is one decoded seed document.
type Record map[string]any

// Rule resolves one candidate location of a field. ok is false when the
// location is absent or null.
type Rule func(Record) (any, bool)

// Path builds a Rule that walks nested objects by key.
func Path(keys ...string) Rule {
	return func(r Record) (any, bool) {
		var cur any = map[string]any(r)
		for _, k := range keys {
			m, ok := cur.(map[string]any)
			if !ok {
				return nil, false
			}
			cur, ok = m[k]
			if !ok || cur == nil {
				return nil, false
			}
		}
		return cur, true
	}
}

// Const builds a Rule that always yields v.
func Const(v any) Rule {
	return func(Record) (any, bool) { return v, true }
}

// First evaluates rules in order and returns the first value found, or nil.
func First(r Record, rules []Rule) any {
	for _, rule := range rules {
		if v, ok := rule(r); ok {
			return v
		}
	}
	return nil
}

var llmRoot = []string{"extractedData", "llmData"}

// llmField lists every wrapped and unwrapped location of block.name under
// the extraction payload, most specific first.
func llmField(block, name string) []Rule {
	var rules []Rule
	for _, blockPath := range [][]string{{block, "value"}, {block}} {
		for _, leaf := range [][]string{{name, "value"}, {name}} {
			keys := make([]string, 0, len(llmRoot)+len(blockPath)+len(leaf))
			keys = append(keys, llmRoot...)
			keys = append(keys, blockPath...)
			keys = append(keys, leaf...)
			rules = append(rules, Path(keys...))
		}
	}
	return rules
}

var (
	invoiceNumberRules   = llmField("invoice", "invoiceId")
	issueDateRules       = llmField("invoice", "invoiceDate")
	dueDateRules         = llmField("invoice", "dueDate")
	vendorNameRules      = llmField("vendor", "vendorName")
	vendorTaxIDRules     = llmField("vendor", "vendorTaxId")
	vendorAddressRules   = llmField("vendor", "vendorAddress")
	customerNameRules    = llmField("customer", "customerName")
	customerAddressRules = llmField("customer", "customerAddress")
	subTotalRules        = llmField("summary", "subTotal")
	taxTotalRules        = llmField("summary", "totalTax")
	invoiceTotalRules    = llmField("summary", "invoiceTotal")
	currencyRules        = llmField("summary", "currencySymbol")

	lineItemRules = []Rule{
		Path("extractedData", "llmData", "lineItems", "value", "items", "value"),
		Path("extractedData", "llmData", "lineItems", "value", "items"),
		Path("extractedData", "llmData", "lineItems", "value"),
	}

	fileNameRules = []Rule{
		Path("name"),
		Path("metadata", "originalFileName"),
		Const(domain.UnknownFileName),
	}
	invoiceStatusRules = []Rule{
		Path("validatedData", "status"),
		Path("status"),
		Const(domain.DefaultInvoiceStatus),
	}

	itemDescriptionRules = []Rule{Path("description", "value"), Path("description"), Path("name")}
	itemQuantityRules    = []Rule{Path("quantity", "value"), Path("quantity"), Const(1)}
	itemUnitPriceRules   = []Rule{Path("unitPrice", "value"), Path("unitPrice"), Const(0)}
	itemTotalRules       = []Rule{Path("totalPrice", "value"), Path("totalPrice"), Path("total"), Const(0)}
)

// Extracted is the flattened, coerced view of one Record.
type Extracted struct {
	SourceID string

	FileName       string
	FilePath       string
	FileSize       *int64
	FileType       string
	DocumentStatus string
	OrganizationID *string
	DepartmentID   *string
	UploadedByID   *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	InvoiceNumber      *string
	IssueDate          *time.Time
	DueDate            *time.Time
	Currency           string
	SubTotal           float64
	TaxTotal           float64
	Total              float64
	InvoiceStatus      string
	IsValidatedByHuman bool
	ProcessedAt        *time.Time
	AnalyticsID        *string

	VendorName      *string
	VendorTaxID     *string
	VendorAddress   *string
	CustomerName    *string
	CustomerAddress *string

	Metadata      []byte
	ExtractedData []byte
	ValidatedData []byte

	LineItems []ExtractedItem
}

// ExtractedItem is one coerced line item.
type ExtractedItem struct {
	Description *string
	Quantity    float64
	UnitPrice   float64
	TotalPrice  float64
}

// Extract flattens r. It never fails: absent scalars are nil or zero and an
// absent line item collection is empty. now stamps missing timestamps.
func Extract(r Record, now time.Time, defaultCurrency string) Extracted {
	ex := Extracted{
		SourceID:       sourceID(r["_id"]),
		FileName:       stringOr(First(r, fileNameRules), domain.UnknownFileName),
		FilePath:       stringOr(r["filePath"], ""),
		FileSize:       CoerceLong(r["fileSize"]),
		FileType:       stringOr(r["fileType"], ""),
		DocumentStatus: stringOr(r["status"], ""),
		OrganizationID: stringOf(r["organizationId"]),
		DepartmentID:   stringOf(r["departmentId"]),
		UploadedByID:   stringOf(r["uploadedById"]),
		CreatedAt:      timeOr(CoerceDate(r["createdAt"]), now),
		UpdatedAt:      timeOr(CoerceDate(r["updatedAt"]), now),

		InvoiceNumber:      stringOf(First(r, invoiceNumberRules)),
		IssueDate:          CoerceDate(First(r, issueDateRules)),
		DueDate:            CoerceDate(First(r, dueDateRules)),
		Currency:           currency(First(r, currencyRules), defaultCurrency),
		SubTotal:           CoerceNumber(First(r, subTotalRules)),
		TaxTotal:           CoerceNumber(First(r, taxTotalRules)),
		Total:              CoerceNumber(First(r, invoiceTotalRules)),
		InvoiceStatus:      stringOr(First(r, invoiceStatusRules), domain.DefaultInvoiceStatus),
		IsValidatedByHuman: truthy(r["isValidatedByHuman"]),
		ProcessedAt:        CoerceDate(r["processedAt"]),
		AnalyticsID:        stringOf(r["analyticsId"]),

		VendorName:      stringOf(First(r, vendorNameRules)),
		VendorTaxID:     stringOf(First(r, vendorTaxIDRules)),
		VendorAddress:   stringOf(First(r, vendorAddressRules)),
		CustomerName:    stringOf(First(r, customerNameRules)),
		CustomerAddress: stringOf(First(r, customerAddressRules)),

		Metadata:      rawJSON(r["metadata"]),
		ExtractedData: rawJSON(r["extractedData"]),
		ValidatedData: rawJSON(r["validatedData"]),

		LineItems: extractItems(First(r, lineItemRules)),
	}
	return ex
}

func extractItems(v any) []ExtractedItem {
	arr, ok := v.([]any)
	if !ok {
		return []ExtractedItem{}
	}
	items := make([]ExtractedItem, 0, len(arr))
	for _, raw := range arr {
		m, _ := raw.(map[string]any)
		it := Record(m)
		items = append(items, ExtractedItem{
			Description: stringOf(First(it, itemDescriptionRules)),
			Quantity:    CoerceNumber(First(it, itemQuantityRules)),
			UnitPrice:   CoerceNumber(First(it, itemUnitPriceRules)),
			TotalPrice:  CoerceNumber(First(it, itemTotalRules)),
		})
	}
	return items
}

// sourceID accepts a plain string id or an {"$oid": ...} envelope.
func sourceID(v any) string {
	if m, ok := v.(map[string]any); ok {
		v = m["$oid"]
	}
	if s := stringOf(v); s != nil {
		return *s
	}
	return ""
}

// stringOf renders scalars as strings. Objects, arrays and nil yield nil.
func stringOf(v any) *string {
	var s string
	switch t := v.(type) {
	case nil, map[string]any, []any:
		return nil
	case string:
		s = t
	case json.Number:
		s = t.String()
	default:
		s = fmt.Sprint(t)
	}
	return &s
}

func stringOr(v any, def string) string {
	if s := stringOf(v); s != nil {
		return *s
	}
	return def
}

func currency(v any, def string) string {
	if s := stringOf(v); s != nil {
		if trimmed := strings.TrimSpace(*s); trimmed != "" {
			return trimmed
		}
	}
	if def == "" {
		return domain.DefaultCurrency
	}
	return def
}

func timeOr(t *time.Time, def time.Time) time.Time {
	if t == nil {
		return def
	}
	return *t
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0
	case float64:
		return t != 0
	}
	return true
}

func rawJSON(v any) []byte {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
