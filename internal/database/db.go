// Package database owns the task table: period-bucketed querying,
// ordering, carry-over, and full-image snapshot persistence.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"
)

// schemaSQL creates the single task table. Ordering relies entirely on
// explicit ORDER BY sortOrder; the only index is the implicit one
// backing the UNIQUE constraint.
const schemaSQL = `
	CREATE TABLE task (
		id TEXT UNIQUE,
		name TEXT,
		complete BOOLEAN,
		sortOrder INTEGER DEFAULT 0,
		period TEXT,
		date TEXT
	)
`

// openEngine opens a fresh in-memory SQLite instance with no schema.
func openEngine(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A second connection would see its own empty :memory: database,
	// so the pool must stay at exactly one connection. This also
	// matches the single-owner access model.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		slog.Error("Failed to set busy timeout", "error", err)
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return db, nil
}

func createSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create task table: %w", err)
	}
	return nil
}
