package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tickets (
		id              TEXT PRIMARY KEY,
		number          TEXT NOT NULL UNIQUE,
		customer        TEXT NOT NULL,
		job_site        TEXT NOT NULL DEFAULT '',
		scheduled_date  TEXT,
		work_types      TEXT NOT NULL DEFAULT '[]',
		description     TEXT NOT NULL DEFAULT '',
		recommendations TEXT NOT NULL DEFAULT '[]',
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tickets_created ON tickets(created_at)`,

	`CREATE TABLE IF NOT EXISTS ticket_work_items (
		ticket_id        TEXT NOT NULL REFERENCES tickets(id) ON DELETE CASCADE,
		work_type        TEXT NOT NULL,
		position         INTEGER NOT NULL,
		quantity         REAL NOT NULL DEFAULT 0 CHECK(quantity >= 0),
		unit             TEXT NOT NULL CHECK(unit IN ('holes','LF','SF','EA')),
		notes            TEXT NOT NULL DEFAULT '',
		details_category TEXT,
		details_json     TEXT,
		PRIMARY KEY (ticket_id, work_type)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_ticket_work_items_position ON ticket_work_items(ticket_id, position)`,
}
