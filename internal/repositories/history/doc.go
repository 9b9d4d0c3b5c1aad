// Package history provides the persistence layer for translation history.
//
// # Overview
//
// The package defines a Repository interface for the append-only translation
// log and its queries. A SQLite-backed implementation (SQLiteRepository)
// persists data using a dbx.DBTX (either *sql.DB or *sql.Tx).
//
// # Data Model
//
// Each row stores the source and translated text, the language pair, the
// stage that produced it (method), its confidence, the online/offline mode
// and a favorite flag. Timestamps are unix milliseconds, indexed descending
// for the newest-first listing.
//
// # Concurrency
//
// Implementations are safe for concurrent use when backed by a properly
// configured *sql.DB; each Save is a single INSERT, so readers never observe
// a partially written record.
//
// Key Types
//
//   - type Repository: interface used by the orchestration layer
//   - type SQLiteRepository: SQLite implementation over dbx.DBTX
//
// Typical Usage
//
//	repo := history.NewSQLiteRepository(db)
//	id, _ := repo.Save(ctx, rec)
//	rows, _ := repo.List(ctx, history.Filter{Limit: 20})
//	hit, err := repo.GetCached(ctx, "hello", language.English, language.Tamazight)
package history
