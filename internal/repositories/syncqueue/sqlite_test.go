package syncqueue

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/mindful-ai-dude/multilingo/internal/common"
	"github.com/mindful-ai-dude/multilingo/internal/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE sync_queue (
  id TEXT PRIMARY KEY,
  action TEXT NOT NULL,
  payload BLOB NOT NULL,
  priority INTEGER NOT NULL,
  processed INTEGER NOT NULL DEFAULT 0,
  retry_count INTEGER NOT NULL DEFAULT 0,
  created_at INTEGER NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func entry(id string, action models.SyncAction, priority int, at time.Time) *models.SyncEntry {
	return &models.SyncEntry{
		ID:        id,
		Action:    action,
		Payload:   []byte(`{"x":1}`),
		Priority:  priority,
		CreatedAt: at,
	}
}

func TestEnqueueAndDrainOrder(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	require.NoError(t, r.Enqueue(ctx, entry("a", models.ActionSaveTranslation, models.PriorityNormal, base)))
	require.NoError(t, r.Enqueue(ctx, entry("b", models.ActionCreateBroadcast, models.PriorityEmergency, base.Add(time.Minute))))
	require.NoError(t, r.Enqueue(ctx, entry("c", models.ActionSaveTranslation, models.PriorityNormal, base.Add(2*time.Minute))))

	got, err := r.NextUnprocessed(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	// emergency first, then FIFO within priority
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
}

func TestMarkProcessed(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Enqueue(ctx, entry("a", models.ActionSaveTranslation, models.PriorityNormal, time.Now())))
	require.NoError(t, r.MarkProcessed(ctx, "a"))

	n, err := r.CountPending(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	// already processed
	assert.ErrorIs(t, r.MarkProcessed(ctx, "a"), common.ErrNotFound)
}

func TestIncrementRetry(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Enqueue(ctx, entry("a", models.ActionSaveTranslation, models.PriorityNormal, time.Now())))
	require.NoError(t, r.IncrementRetry(ctx, "a"))
	require.NoError(t, r.IncrementRetry(ctx, "a"))

	got, err := r.NextUnprocessed(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].RetryCount)

	assert.ErrorIs(t, r.IncrementRetry(ctx, "missing"), common.ErrNotFound)
}

func TestGuard_NilHandle(t *testing.T) {
	r := NewSQLiteRepository(nil)
	ctx := context.Background()
	assert.ErrorIs(t, r.Enqueue(ctx, entry("a", models.ActionSaveTranslation, 5, time.Now())), common.ErrStoreNotInitialized)
	_, err := r.NextUnprocessed(ctx, 1)
	assert.ErrorIs(t, err, common.ErrStoreNotInitialized)
	_, err = r.CountPending(ctx)
	assert.ErrorIs(t, err, common.ErrStoreNotInitialized)
}
