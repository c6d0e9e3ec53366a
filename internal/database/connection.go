package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"           // postgres driver
	_ "github.com/mattn/go-sqlite3" // sqlite driver
)

// Connect opens the database described by the connection string and
// bootstraps the schema. A "postgres://" or "postgresql://" URL selects
// PostgreSQL; anything else is treated as a SQLite file path.
func Connect(ctx context.Context, databaseURL string) (*sqlx.DB, error) {
	driver, dsn, err := resolveDriver(databaseURL)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == "sqlite3" {
		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)

		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
	}

	if err := initializeSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// resolveDriver maps a connection string to a driver name and DSN.
func resolveDriver(databaseURL string) (driver, dsn string, err error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		// lib/pq only understands the postgres:// scheme
		dsn = strings.Replace(databaseURL, "postgresql://", "postgres://", 1)
		return "postgres", dsn, nil
	case databaseURL == "":
		return "", "", fmt.Errorf("database connection string is empty")
	default:
		if databaseURL != ":memory:" && !strings.HasPrefix(databaseURL, "file:") {
			if dir := filepath.Dir(databaseURL); dir != "." {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return "", "", fmt.Errorf("failed to create data directory: %w", err)
				}
			}
		}
		return "sqlite3", databaseURL, nil
	}
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema(ctx context.Context, db *sqlx.DB) error {
	var usersDDL, eventsDDL string

	if db.DriverName() == "postgres" {
		usersDDL = `
		CREATE TABLE IF NOT EXISTS users (
			chat_id BIGINT PRIMARY KEY,
			username TEXT,
			first_name TEXT,
			last_name TEXT,
			joined_at TIMESTAMP WITH TIME ZONE NOT NULL,
			reminders_enabled BOOLEAN NOT NULL DEFAULT FALSE,
			last_action TEXT,
			last_active TIMESTAMP WITH TIME ZONE NOT NULL,
			practice_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL,
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL
		)`
		eventsDDL = `
		CREATE TABLE IF NOT EXISTS practice_events (
			id SERIAL PRIMARY KEY,
			chat_id BIGINT NOT NULL REFERENCES users(chat_id),
			practice_type TEXT NOT NULL,
			practice_name TEXT NOT NULL,
			duration_minutes INTEGER,
			completed_at TIMESTAMP WITH TIME ZONE NOT NULL,
			notes TEXT
		)`
	} else {
		usersDDL = `
		CREATE TABLE IF NOT EXISTS users (
			chat_id INTEGER PRIMARY KEY,
			username TEXT,
			first_name TEXT,
			last_name TEXT,
			joined_at TIMESTAMP NOT NULL,
			reminders_enabled BOOLEAN NOT NULL DEFAULT FALSE,
			last_action TEXT,
			last_active TIMESTAMP NOT NULL,
			practice_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`
		eventsDDL = `
		CREATE TABLE IF NOT EXISTS practice_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			chat_id INTEGER NOT NULL REFERENCES users(chat_id),
			practice_type TEXT NOT NULL,
			practice_name TEXT NOT NULL,
			duration_minutes INTEGER,
			completed_at TIMESTAMP NOT NULL,
			notes TEXT
		)`
	}

	if _, err := db.ExecContext(ctx, usersDDL); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}
	if _, err := db.ExecContext(ctx, eventsDDL); err != nil {
		return fmt.Errorf("failed to create practice_events table: %w", err)
	}

	idx := `CREATE INDEX IF NOT EXISTS idx_practice_events_chat_id ON practice_events (chat_id)`
	if _, err := db.ExecContext(ctx, idx); err != nil {
		return fmt.Errorf("failed to create practice_events index: %w", err)
	}

	return nil
}
