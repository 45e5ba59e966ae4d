// Package sqlguard vets model-generated SQL before it reaches the database.
package sqlguard

import (
	"fmt"
	"regexp"
	"strings"

	"invoicehub/internal/domain"
)

// UnanswerableToken is the reply a generator gives when the schema cannot
// answer the question.
const UnanswerableToken = "UNABLE_TO_ANSWER"

var fenceTag = regexp.MustCompile(`^[A-Za-z]+$`)

// Clean strips markdown code fences, surrounding whitespace and trailing
// semicolons from a generated statement.
func Clean(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			if tag := strings.TrimSpace(s[:i]); tag == "" || fenceTag.MatchString(tag) {
				s = s[i+1:]
			}
		}
		s = strings.TrimSpace(s)
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimRight(strings.TrimSpace(s), "; \t\r\n")
}

// IsUnanswerable reports whether query is the generator's refusal.
func IsUnanswerable(query string) bool {
	return strings.EqualFold(strings.TrimSpace(query), UnanswerableToken)
}

// CheckSelect accepts a single SELECT statement and rejects everything else.
func CheckSelect(query string) error {
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(query)), "select") {
		return domain.ErrUnsafeSQL
	}
	if strings.Contains(query, ";") {
		return fmt.Errorf("%w: multiple statements", domain.ErrUnsafeSQL)
	}
	return nil
}

// ReferencesAny reports whether query names at least one of tables as a
// whole identifier, ignoring case and double quotes.
func ReferencesAny(query string, tables []string) bool {
	for _, t := range tables {
		if t == "" {
			continue
		}
		re := regexp.MustCompile(`(?i)(^|[^a-z0-9_])` + regexp.QuoteMeta(t) + `($|[^a-z0-9_])`)
		if re.MatchString(query) {
			return true
		}
	}
	return false
}
