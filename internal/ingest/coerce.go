package ingest

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// CoerceNumber converts a loosely typed JSON value to a finite float64.
// Nil, empty strings, objects, arrays and anything unparseable become 0.
// Scalars are stripped of every rune other than digits, '.' and '-' before
// parsing, so "1,234.50" and "€ 99" both parse.
func CoerceNumber(v any) float64 {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		if n == "" {
			return 0
		}
		f = parseStripped(n)
	case map[string]any, []any:
		// A {"value": null, "confidence": 0.9} wrapper carries no amount.
		return 0
	default:
		f = parseStripped(fmt.Sprint(v))
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func parseStripped(s string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return f
}

// Coalesce returns def when v is nil, otherwise v unchanged.
func Coalesce(v, def any) any {
	if v == nil {
		return def
	}
	return v
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02.01.2006",
	"02/01/2006",
	"01/02/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// CoerceDate unwraps {"$date": ...} envelopes and parses the payload as a
// timestamp string or epoch milliseconds. Anything unparseable yields nil.
func CoerceDate(v any) *time.Time {
	switch d := v.(type) {
	case nil:
		return nil
	case map[string]any:
		if inner, ok := d["$date"]; ok {
			return CoerceDate(inner)
		}
		if ms := CoerceLong(d); ms != nil {
			return epochMillis(*ms)
		}
		return nil
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return nil
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				t = t.UTC()
				return &t
			}
		}
		return nil
	case json.Number:
		ms, err := d.Int64()
		if err != nil {
			f, ferr := d.Float64()
			if ferr != nil {
				return nil
			}
			ms = int64(f)
		}
		return epochMillis(ms)
	case float64:
		return epochMillis(int64(d))
	case int64:
		return epochMillis(d)
	case int:
		return epochMillis(int64(d))
	case time.Time:
		t := d.UTC()
		return &t
	}
	return nil
}

func epochMillis(ms int64) *time.Time {
	t := time.UnixMilli(ms).UTC()
	return &t
}

// CoerceLong unwraps {"$numberLong": "123"} and accepts plain numbers or
// numeric strings. Returns nil when v carries no integer.
func CoerceLong(v any) *int64 {
	switch n := v.(type) {
	case nil:
		return nil
	case map[string]any:
		inner, ok := n["$numberLong"]
		if !ok {
			return nil
		}
		return CoerceLong(inner)
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return nil
		}
		return &i
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return &i
		}
		f, err := n.Float64()
		if err != nil {
			return nil
		}
		i := int64(f)
		return &i
	case float64:
		i := int64(n)
		return &i
	case int64:
		return &n
	case int:
		i := int64(n)
		return &i
	}
	return nil
}
