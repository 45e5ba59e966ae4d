package sqlguard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"invoicehub/internal/domain"
	"invoicehub/internal/sqlguard"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "  SELECT 1  ", "SELECT 1"},
		{"trailing semicolon", "SELECT 1;\n", "SELECT 1"},
		{"sql fence", "```sql\nSELECT * FROM invoices;\n```", "SELECT * FROM invoices"},
		{"bare fence", "```\nSELECT 1\n```", "SELECT 1"},
		{"single line fence", "```SELECT 1```", "SELECT 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sqlguard.Clean(tt.in))
		})
	}
}

func TestIsUnanswerable(t *testing.T) {
	assert.True(t, sqlguard.IsUnanswerable("UNABLE_TO_ANSWER"))
	assert.True(t, sqlguard.IsUnanswerable(" unable_to_answer "))
	assert.False(t, sqlguard.IsUnanswerable("SELECT 'UNABLE_TO_ANSWER'"))
}

func TestCheckSelect(t *testing.T) {
	assert.NoError(t, sqlguard.CheckSelect("select count(*) from invoices"))
	assert.NoError(t, sqlguard.CheckSelect("  SELECT 1"))

	for _, q := range []string{
		"DELETE FROM invoices",
		"UPDATE invoices SET total = 0",
		"WITH x AS (DELETE FROM invoices RETURNING *) SELECT * FROM x",
		"SELECT 1; DROP TABLE invoices",
		"",
	} {
		assert.ErrorIs(t, sqlguard.CheckSelect(q), domain.ErrUnsafeSQL, q)
	}
}

func TestReferencesAny(t *testing.T) {
	tables := []string{"invoices", "vendors"}

	assert.True(t, sqlguard.ReferencesAny(`SELECT * FROM "Invoices"`, tables))
	assert.True(t, sqlguard.ReferencesAny("select name from vendors", tables))
	assert.False(t, sqlguard.ReferencesAny("SELECT * FROM invoices_archive", tables))
	assert.False(t, sqlguard.ReferencesAny("SELECT now()", tables))
	assert.False(t, sqlguard.ReferencesAny("SELECT * FROM invoices", nil))
}
