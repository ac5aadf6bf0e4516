package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// contact_metadata.contact_id is a logical foreign key only. Deleting a contact leaves its metadata row
// in place, and an enforced constraint would reject that delete on MySQL.
var schemas = map[string][]string{
	"sqlite3": {
		`CREATE TABLE IF NOT EXISTS contacts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			display_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone_number TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS contact_metadata (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			contact_id INTEGER NOT NULL UNIQUE,
			starred BOOLEAN NOT NULL,
			is_archived BOOLEAN NOT NULL,
			frequency INTEGER,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			last_seen_at TEXT,
			next_reminder_at TEXT,
			last_reminder_at TEXT
		)`,
	},
	"mysql": {
		`CREATE TABLE IF NOT EXISTS contacts (
			id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			display_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone_number TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS contact_metadata (
			id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
			contact_id BIGINT NOT NULL UNIQUE,
			starred BOOLEAN NOT NULL,
			is_archived BOOLEAN NOT NULL,
			frequency INTEGER NULL,
			created_at VARCHAR(32) NOT NULL,
			updated_at VARCHAR(32) NOT NULL,
			last_seen_at VARCHAR(32) NULL,
			next_reminder_at VARCHAR(32) NULL,
			last_reminder_at VARCHAR(32) NULL
		)`,
	},
}

// Migrate creates the contacts and contact_metadata tables if they do not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	queries, ok := schemas[db.DriverName()]
	if !ok {
		return fmt.Errorf("no schema for driver %q", db.DriverName())
	}
	for _, query := range queries {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
