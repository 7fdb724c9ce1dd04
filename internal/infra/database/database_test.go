package database

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)

	var ups, downs int
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			ups++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			downs++
		}
	}

	assert.Positive(t, ups)
	assert.Equal(t, ups, downs, "every up migration needs a down migration")
}

func TestInitSchema_HasCoreTables(t *testing.T) {
	data, err := fs.ReadFile(migrationsFS, "migrations/000001_init_schema.up.sql")
	require.NoError(t, err)

	schema := string(data)
	for _, table := range []string{"users", "requests", "items", "bookings", "comments"} {
		assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS "+table)
	}
	assert.Contains(t, schema, "CHECK (start_date < end_date)")
}
