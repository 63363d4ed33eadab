package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableDefinitions(t *testing.T) {
	assert.NotEmpty(t, TableDefinitions)

	joined := strings.Join(TableDefinitions, "\n")
	assert.Contains(t, joined, "CREATE TABLE IF NOT EXISTS pages")
	assert.Contains(t, joined, "CREATE TABLE IF NOT EXISTS elements")
	assert.Contains(t, joined, "UNIQUE (store_id, slug)")
	assert.Contains(t, joined, "styles JSONB")

	for _, stmt := range append(TableDefinitions, MigrationStatements...) {
		assert.Contains(t, stmt, "IF NOT EXISTS", "statement must be idempotent: %s", stmt)
		assert.NotContains(t, stmt, "REFERENCES")
		assert.NotContains(t, stmt, "CHECK")
	}
}
