package db

import (
	"database/sql"
	"fmt"
)

// migrations holds the full schema. Every statement is idempotent so the list
// can be re-run against an existing database.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		color       TEXT NOT NULL,
		archived_at TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tracking_sessions (
		id               TEXT PRIMARY KEY,
		user_id          TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		project_id       TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		started_at       TEXT NOT NULL,
		ended_at         TEXT,
		duration_seconds INTEGER,
		note             TEXT,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_user_started
		ON tracking_sessions(user_id, started_at)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_user_ended
		ON tracking_sessions(user_id, ended_at)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_project_started
		ON tracking_sessions(project_id, started_at)`,

	// At most one running session per user. Concurrent starts that slip past
	// the transactional stop-then-start both try to insert an ended_at IS NULL
	// row; the second insert fails here instead of violating the invariant.
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_sessions_active
		ON tracking_sessions(user_id) WHERE ended_at IS NULL`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
