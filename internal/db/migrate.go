package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies every schema statement. Statements are idempotent, so the
// full list runs on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// DefaultFacultyID keys the single faculty row.
const DefaultFacultyID = "default"

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS faculty (
		id                 TEXT PRIMARY KEY DEFAULT 'default',
		name               TEXT NOT NULL DEFAULT '',
		degree             TEXT NOT NULL DEFAULT '',
		current_position   TEXT NOT NULL DEFAULT '',
		years_of_service   INTEGER NOT NULL DEFAULT 0 CHECK(years_of_service >= 0),
		wizard_completed   INTEGER NOT NULL DEFAULT 0,
		application_status TEXT NOT NULL DEFAULT 'not_applied'
		                   CHECK(application_status IN ('not_applied','pending')),
		application_date   TEXT,
		updated_at         TEXT NOT NULL DEFAULT ''
	)`,

	`INSERT OR IGNORE INTO faculty (id) VALUES ('default')`,

	`CREATE TABLE IF NOT EXISTS achievements (
		id         TEXT PRIMARY KEY,
		faculty_id TEXT NOT NULL DEFAULT 'default' REFERENCES faculty(id) ON DELETE CASCADE,
		category   TEXT NOT NULL
		           CHECK(category IN ('research','patents','supervision','conferences','training','teaching')),
		title      TEXT NOT NULL DEFAULT '',
		detail     TEXT NOT NULL DEFAULT '',
		kind       TEXT NOT NULL DEFAULT '',
		role       TEXT NOT NULL DEFAULT '',
		certified  INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_achievements_category ON achievements(faculty_id, category)`,
}
