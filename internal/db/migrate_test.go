package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMigrateTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openMigrateTestDB(t)

	// Re-running the full migration set must succeed without error.
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openMigrateTestDB(t)

	expected := []string{"tna_plans", "cad_designs", "fabric_bookings", "sample_developments", "dhl_trackings"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_OneStageRowPerPlan(t *testing.T) {
	db := openMigrateTestDB(t)

	_, err := db.Exec(`INSERT INTO tna_plans (id, style_name, merchandiser_id, sample_sending_date, created_at, updated_at)
		VALUES ('p1', 'Style A', 'm1', '2024-03-20', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)

	insertTracking := `INSERT INTO dhl_trackings (id, tna_id, date, created_at, updated_at)
		VALUES (?, 'p1', '2024-03-18', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`
	_, err = db.Exec(insertTracking, "t1")
	require.NoError(t, err)

	// The UNIQUE constraint on tna_id rejects a second tracking row.
	_, err = db.Exec(insertTracking, "t2")
	assert.Error(t, err)
}
