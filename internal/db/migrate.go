package db

import (
	"database/sql"
	"fmt"
)

// Every history column is stored as the text a spreadsheet cell would hold,
// so rows read back from an imported workbook round-trip unchanged.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS history_entries (
		id               TEXT PRIMARY KEY,
		client_key       TEXT NOT NULL,
		seq              INTEGER NOT NULL,
		client           TEXT NOT NULL DEFAULT '',
		entry_date       TEXT NOT NULL DEFAULT '',
		workout          TEXT NOT NULL DEFAULT '',
		exercise_no      TEXT NOT NULL DEFAULT '',
		movement_pattern TEXT NOT NULL DEFAULT '',
		exercise         TEXT NOT NULL DEFAULT '',
		sets             TEXT NOT NULL DEFAULT '',
		reps             TEXT NOT NULL DEFAULT '',
		rest_sec         TEXT NOT NULL DEFAULT '',
		demo             TEXT NOT NULL DEFAULT '',
		rpe              TEXT NOT NULL DEFAULT '',
		notes            TEXT NOT NULL DEFAULT '',
		completed        TEXT NOT NULL DEFAULT '',
		extra            TEXT NOT NULL DEFAULT '{}',
		UNIQUE (client_key, seq)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_history_entries_client ON history_entries(client_key, seq)`,
}

// Migrate runs all schema migrations. Statements are idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
