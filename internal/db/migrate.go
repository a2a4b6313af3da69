package db

import (
	"database/sql"
	"fmt"
)

// migrations holds the full schema as idempotent statements; the slice is
// replayed on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tailoring_profiles (
		id           TEXT PRIMARY KEY,
		benchmark_id TEXT NOT NULL,
		title        TEXT NOT NULL DEFAULT '',
		description  TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS profile_selects (
		profile_id TEXT NOT NULL REFERENCES tailoring_profiles(id) ON DELETE CASCADE,
		item_id    TEXT NOT NULL,
		selected   INTEGER NOT NULL,
		PRIMARY KEY (profile_id, item_id)
	)`,
	`CREATE TABLE IF NOT EXISTS profile_setvalues (
		profile_id TEXT NOT NULL REFERENCES tailoring_profiles(id) ON DELETE CASCADE,
		value_id   TEXT NOT NULL,
		value      TEXT NOT NULL,
		PRIMARY KEY (profile_id, value_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tailoring_profiles_benchmark
		ON tailoring_profiles(benchmark_id)`,
}

// Migrate runs all schema migrations.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
