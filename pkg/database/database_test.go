package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMemoryRunsMigrations(t *testing.T) {
	db, err := Open(MemoryPath)
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"key_values", "contribution_days"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	db, err := Open(MemoryPath)
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, RunMigrations(db))
}

func TestInitAndCloseFileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gexplore.db")

	require.NoError(t, Init(path))
	require.NotNil(t, DB)

	_, err := DB.Exec(`INSERT INTO key_values (key, value) VALUES ('k', 'v')`)
	require.NoError(t, err)

	assert.NoError(t, Close())
}

func TestContributionCountMustBeNonNegative(t *testing.T) {
	db, err := Open(MemoryPath)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO contribution_days (day, count) VALUES ('2026-10-14', -1)`)
	assert.Error(t, err)
}
