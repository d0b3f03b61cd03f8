package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// Instants are stored as UTC unix nanoseconds so range filters compare
// numerically.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
        user_id TEXT PRIMARY KEY,
        email TEXT NOT NULL UNIQUE,
        display_name TEXT,
        time_zone TEXT NOT NULL,
        password_hash TEXT NOT NULL,
        creation_time INTEGER NOT NULL
    );`,
	`CREATE TABLE IF NOT EXISTS journal_entries (
        entry_id TEXT PRIMARY KEY,
        user_id TEXT NOT NULL REFERENCES users(user_id),
        title TEXT NOT NULL,
        content TEXT NOT NULL,
        mood TEXT NOT NULL DEFAULT '',
        emotion TEXT NOT NULL DEFAULT '',
        tags TEXT NOT NULL DEFAULT '[]',
        is_favorite INTEGER NOT NULL DEFAULT 0,
        entry_date INTEGER NOT NULL,
        last_modified INTEGER NOT NULL
    );`,
	`CREATE INDEX IF NOT EXISTS idx_journal_entries_user_date ON journal_entries(user_id, entry_date);`,
	`CREATE TABLE IF NOT EXISTS mood_entries (
        mood_id TEXT PRIMARY KEY,
        user_id TEXT NOT NULL REFERENCES users(user_id),
        rating INTEGER NOT NULL,
        emotions TEXT NOT NULL DEFAULT '[]',
        note TEXT NOT NULL DEFAULT '',
        recorded_at INTEGER NOT NULL
    );`,
	`CREATE INDEX IF NOT EXISTS idx_mood_entries_user_time ON mood_entries(user_id, recorded_at);`,
}

// EnsureSchema creates the tables if they do not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlite schema: %w", err)
		}
	}
	return nil
}
