// Package syncqueue persists remote mutations that failed to reach the
// collaboration store, so they can be replayed once connectivity returns.
package syncqueue

import (
	"context"

	"github.com/mindful-ai-dude/multilingo/internal/models"
)

// Repository is the durable replay log. Entries are drained highest priority
// first, oldest first within a priority.
type Repository interface {
	// Enqueue appends one entry.
	Enqueue(ctx context.Context, e *models.SyncEntry) error

	// NextUnprocessed returns up to limit pending entries, priority desc then
	// created_at asc.
	NextUnprocessed(ctx context.Context, limit int) ([]models.SyncEntry, error)

	// MarkProcessed flips the processed flag of one entry.
	MarkProcessed(ctx context.Context, id string) error

	// IncrementRetry bumps the retry counter of one entry.
	IncrementRetry(ctx context.Context, id string) error

	// CountPending returns the number of unprocessed entries.
	CountPending(ctx context.Context) (int, error)
}
