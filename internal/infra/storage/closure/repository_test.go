package closure

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Колонки таблицы closures, на которые ссылаются запросы репозитория
var queriedColumns = []string{
	"id",
	"closure_date",
	"reason",
	"category",
	"created_by",
	"created_at",
}

func TestMigrationDefinesQueriedColumns(t *testing.T) {
	ddl, err := os.ReadFile("../../../../migrations/001_init.sql")
	require.NoError(t, err)

	start := strings.Index(string(ddl), "CREATE TABLE IF NOT EXISTS closures")
	require.GreaterOrEqual(t, start, 0, "closures table missing from migration")

	block := string(ddl)[start:]
	end := strings.Index(block, ");")
	require.GreaterOrEqual(t, end, 0, "closures DDL is not terminated")
	block = block[:end]

	// Имя колонки это первый токен строки внутри CREATE TABLE
	defined := make(map[string]bool)
	for _, line := range strings.Split(block, "\n")[1:] {
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) == 0 || strings.HasPrefix(fields[0], "--") {
			continue
		}
		defined[strings.ToLower(fields[0])] = true
	}

	for _, col := range queriedColumns {
		assert.True(t, defined[col],
			"repository queries column %q but the closures DDL does not define it", col)
	}
}
