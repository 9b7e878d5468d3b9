package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tna_plans (
		id                  TEXT PRIMARY KEY,
		style_name          TEXT NOT NULL,
		merchandiser_id     TEXT NOT NULL,
		sample_sending_date TEXT NOT NULL,
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tna_plans_merchandiser ON tna_plans(merchandiser_id)`,

	`CREATE TABLE IF NOT EXISTS cad_designs (
		id                  TEXT PRIMARY KEY,
		tna_id              TEXT NOT NULL UNIQUE REFERENCES tna_plans(id) ON DELETE CASCADE,
		complete_date       TEXT,
		final_complete_date TEXT,
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS fabric_bookings (
		id                   TEXT PRIMARY KEY,
		tna_id               TEXT NOT NULL UNIQUE REFERENCES tna_plans(id) ON DELETE CASCADE,
		style_name           TEXT NOT NULL DEFAULT '',
		complete_date        TEXT,
		actual_complete_date TEXT,
		receive_date         TEXT,
		owner_id             TEXT,
		claimed_at           TEXT,
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_fabric_bookings_owner ON fabric_bookings(owner_id)`,

	`CREATE TABLE IF NOT EXISTS sample_developments (
		id                          TEXT PRIMARY KEY,
		tna_id                      TEXT NOT NULL UNIQUE REFERENCES tna_plans(id) ON DELETE CASCADE,
		sample_complete_date        TEXT,
		actual_sample_complete_date TEXT,
		created_at                  TEXT NOT NULL,
		updated_at                  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS dhl_trackings (
		id         TEXT PRIMARY KEY,
		tna_id     TEXT NOT NULL UNIQUE REFERENCES tna_plans(id) ON DELETE CASCADE,
		date       TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}
