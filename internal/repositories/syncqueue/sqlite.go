package syncqueue

import (
	"context"
	"fmt"

	"github.com/mindful-ai-dude/multilingo/internal/common"
	"github.com/mindful-ai-dude/multilingo/internal/dbx"
	"github.com/mindful-ai-dude/multilingo/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) guard() error {
	if r.db == nil {
		return common.ErrStoreNotInitialized
	}
	return nil
}

// Enqueue appends one entry to the replay log.
func (r *SQLiteRepository) Enqueue(ctx context.Context, e *models.SyncEntry) error {
	if err := r.guard(); err != nil {
		return err
	}

	query := `INSERT INTO sync_queue (id, action, payload, priority, processed, retry_count, created_at)
		VALUES (?, ?, ?, ?, 0, 0, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, string(e.Action), e.Payload, e.Priority, e.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to enqueue sync entry: %w", err)
	}
	return nil
}

// NextUnprocessed returns pending entries, emergency work first.
func (r *SQLiteRepository) NextUnprocessed(ctx context.Context, limit int) ([]models.SyncEntry, error) {
	if err := r.guard(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT id, action, payload, priority, processed, retry_count, created_at
		FROM sync_queue WHERE processed = 0
		ORDER BY priority DESC, created_at ASC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select sync entries: %w", err)
	}
	defer rows.Close()

	var result []models.SyncEntry
	for rows.Next() {
		var (
			e      models.SyncEntry
			action string
			ms     int64
		)
		if err := rows.Scan(&e.ID, &action, &e.Payload, &e.Priority, &e.Processed, &e.RetryCount, &ms); err != nil {
			return nil, err
		}
		e.Action = models.SyncAction(action)
		e.CreatedAt = fromUnixMilli(ms)
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// MarkProcessed flips the processed flag. It expects exactly one row to be affected.
func (r *SQLiteRepository) MarkProcessed(ctx context.Context, id string) error {
	if err := r.guard(); err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `UPDATE sync_queue SET processed = 1 WHERE id = ? AND processed = 0`, id)
	if err != nil {
		return fmt.Errorf("failed to mark sync entry processed: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return common.ErrNotFound
	}
	return nil
}

// IncrementRetry bumps the retry counter after a failed replay.
func (r *SQLiteRepository) IncrementRetry(ctx context.Context, id string) error {
	if err := r.guard(); err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `UPDATE sync_queue SET retry_count = retry_count + 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to increment retry count: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return common.ErrNotFound
	}
	return nil
}

// CountPending returns the number of unprocessed entries.
func (r *SQLiteRepository) CountPending(ctx context.Context) (int, error) {
	if err := r.guard(); err != nil {
		return 0, err
	}

	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sync_queue WHERE processed = 0`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count pending entries: %w", err)
	}
	return n, nil
}
