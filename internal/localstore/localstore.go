// Package localstore opens the embedded SQLite database, applies migrations
// and wires up the repositories. The returned handle is meant to be owned by
// a single in-process singleton: callers issue operations through it and
// never open the database themselves.
package localstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/mindful-ai-dude/multilingo/internal/localstore/migrations"
	"github.com/mindful-ai-dude/multilingo/internal/repositories/history"
	"github.com/mindful-ai-dude/multilingo/internal/repositories/preferences"
	"github.com/mindful-ai-dude/multilingo/internal/repositories/syncqueue"
)

// Store bundles the database handle and its repositories.
type Store struct {
	DB          *sql.DB
	History     history.Repository
	Preferences preferences.Repository
	Queue       syncqueue.Repository
}

// RunMigrations applies all pending goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the translation database at dsn and
// migrates it to the latest schema.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite serializes writes; a single connection avoids table-lock errors
	// from concurrent writers.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{
		DB:          db,
		History:     history.NewSQLiteRepository(db),
		Preferences: preferences.NewSQLiteRepository(db),
		Queue:       syncqueue.NewSQLiteRepository(db),
	}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.DB.Close()
}
