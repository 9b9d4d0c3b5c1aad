package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindful-ai-dude/multilingo/internal/language"
	"github.com/mindful-ai-dude/multilingo/internal/models"
	"github.com/mindful-ai-dude/multilingo/internal/remote"
)

func queuedSave(t *testing.T, text string, priority int) *models.SyncEntry {
	t.Helper()
	payload, err := json.Marshal(remote.SaveTranslationRequest{
		SourceText:     text,
		TranslatedText: "ⴰⵣⵓⵍ",
		From:           language.English,
		To:             language.Tamazight,
		Method:         models.MethodGemini,
		Context:        models.ContextGeneral,
		Confidence:     0.95,
	})
	require.NoError(t, err)
	return &models.SyncEntry{
		ID:        uuid.NewString(),
		Action:    models.ActionSaveTranslation,
		Payload:   payload,
		Priority:  priority,
		CreatedAt: time.Now(),
	}
}

func TestFlush_ReplaysInPriorityOrder(t *testing.T) {
	_, queue := setupRepos(t)
	store := remote.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, queue.Enqueue(ctx, queuedSave(t, "normal one", models.PriorityNormal)))

	broadcastPayload, err := json.Marshal(remote.CreateBroadcastRequest{
		Message:       "I need help",
		Source:        language.English,
		Location:      "Atlas",
		UrgencyLevel:  9,
		Category:      "rescue",
		BroadcasterID: "device-1",
		ExpiresAt:     time.Now().Add(time.Hour),
		Translations: []remote.BroadcastTranslation{
			{Language: language.Tamazight, Text: "ⵔⵉⵖ ⵜⵉⵡⵉⵙⵉ"},
		},
	})
	require.NoError(t, err)
	require.NoError(t, queue.Enqueue(ctx, &models.SyncEntry{
		ID:        uuid.NewString(),
		Action:    models.ActionCreateBroadcast,
		Payload:   broadcastPayload,
		Priority:  models.PriorityEmergency,
		CreatedAt: time.Now(),
	}))

	s := NewSyncer(queue, store, &fakeProber{online: true}, testLogger())
	n, err := s.Flush(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	pending, err := s.Pending(ctx)
	require.NoError(t, err)
	assert.Zero(t, pending)

	// both mutations landed
	recent, err := store.GetRecentTranslations(ctx, remote.RecentQuery{})
	require.NoError(t, err)
	assert.Len(t, recent, 1)
	broadcasts, err := store.GetActiveEmergencyBroadcasts(ctx, remote.ActiveQuery{})
	require.NoError(t, err)
	assert.Len(t, broadcasts, 1)
}

func TestFlush_FailureKeepsEntryAndBumpsRetry(t *testing.T) {
	_, queue := setupRepos(t)
	store := &failingRemote{Store: remote.NewMemoryStore(), failSave: true}
	ctx := context.Background()

	require.NoError(t, queue.Enqueue(ctx, queuedSave(t, "stuck", models.PriorityNormal)))

	s := NewSyncer(queue, store, &fakeProber{online: true}, testLogger())
	s.backoffBase = time.Millisecond
	n, err := s.Flush(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	entries, err := queue.NextUnprocessed(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Positive(t, entries[0].RetryCount)

	// remote recovers, the entry drains
	store.failSave = false
	n, err = s.Flush(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestFlush_CorruptPayloadDoesNotBlockOthers(t *testing.T) {
	_, queue := setupRepos(t)
	store := remote.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, queue.Enqueue(ctx, &models.SyncEntry{
		ID:        uuid.NewString(),
		Action:    models.ActionSaveTranslation,
		Payload:   []byte("{corrupt"),
		Priority:  models.PriorityEmergency,
		CreatedAt: time.Now(),
	}))
	require.NoError(t, queue.Enqueue(ctx, queuedSave(t, "fine", models.PriorityNormal)))

	s := NewSyncer(queue, store, &fakeProber{online: true}, testLogger())
	n, err := s.Flush(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	pending, err := s.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)
}

func TestFlush_UnknownAction(t *testing.T) {
	_, queue := setupRepos(t)
	ctx := context.Background()

	require.NoError(t, queue.Enqueue(ctx, &models.SyncEntry{
		ID:        uuid.NewString(),
		Action:    models.SyncAction("mystery"),
		Payload:   []byte("{}"),
		Priority:  models.PriorityNormal,
		CreatedAt: time.Now(),
	}))

	s := NewSyncer(queue, remote.NewMemoryStore(), &fakeProber{online: true}, testLogger())
	n, err := s.Flush(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
