package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindful-ai-dude/multilingo/internal/common"
	"github.com/mindful-ai-dude/multilingo/internal/language"
	"github.com/mindful-ai-dude/multilingo/internal/models"
	"github.com/mindful-ai-dude/multilingo/internal/remote"
)

func newBroadcastFixture(t *testing.T, store remote.Store) (*Broadcaster, *Translator) {
	t.Helper()
	hist, queue := setupRepos(t)
	tr := NewTranslator(store, &fakeOracle{}, &fakeProber{}, hist, queue, testLogger())
	return NewBroadcaster(tr, store, queue, nil, testLogger()), tr
}

func TestBroadcast_ExcludesSourceLanguage(t *testing.T) {
	store := remote.NewMemoryStore()
	b, _ := newBroadcastFixture(t, store)

	bc, err := b.Broadcast(context.Background(), BroadcastRequest{
		Message:       "Earthquake! Get out!",
		Source:        language.English,
		Location:      "Atlas",
		UrgencyLevel:  10,
		Category:      "earthquake",
		BroadcasterID: "device-1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, bc.ID)

	// exactly the three non-source languages, in canonical order
	require.Len(t, bc.Translations, 3)
	assert.Equal(t, language.Tamazight, bc.Translations[0].Language)
	assert.Equal(t, language.Arabic, bc.Translations[1].Language)
	assert.Equal(t, language.French, bc.Translations[2].Language)
	for _, tr := range bc.Translations {
		assert.NotEqual(t, language.English, tr.Language)
		assert.NotEmpty(t, tr.Text)
	}

	// expiry set 24h out
	assert.WithinDuration(t, time.Now().Add(BroadcastTTL), bc.ExpiresAt, time.Minute)

	got, err := b.Active(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, bc.ID, got[0].ID)
}

func TestBroadcast_Validation(t *testing.T) {
	b, _ := newBroadcastFixture(t, remote.NewMemoryStore())
	ctx := context.Background()

	_, err := b.Broadcast(ctx, BroadcastRequest{Source: language.English, UrgencyLevel: 5})
	assert.Error(t, err)

	_, err = b.Broadcast(ctx, BroadcastRequest{Message: "help", Source: "klingon", UrgencyLevel: 5})
	assert.ErrorIs(t, err, common.ErrUnsupportedLanguagePair)

	_, err = b.Broadcast(ctx, BroadcastRequest{Message: "help", Source: language.English, UrgencyLevel: 11})
	assert.Error(t, err)
}

func TestBroadcast_RemoteFailureQueuesAndSurfaces(t *testing.T) {
	store := &failingRemote{Store: remote.NewMemoryStore(), failCreate: true}
	hist, queue := setupRepos(t)
	tr := NewTranslator(store, &fakeOracle{}, &fakeProber{}, hist, queue, testLogger())
	b := NewBroadcaster(tr, store, queue, nil, testLogger())

	_, err := b.Broadcast(context.Background(), BroadcastRequest{
		Message:       "I need help",
		Source:        language.English,
		Location:      "Rif",
		UrgencyLevel:  9,
		Category:      "rescue",
		BroadcasterID: "device-1",
	})
	// unlike ordinary translation, the failure surfaces
	require.ErrorIs(t, err, common.ErrRemoteWriteFailed)

	entries, qerr := queue.NextUnprocessed(context.Background(), 10)
	require.NoError(t, qerr)
	require.Len(t, entries, 1)
	assert.Equal(t, models.ActionCreateBroadcast, entries[0].Action)
	assert.Equal(t, models.PriorityEmergency, entries[0].Priority)
}

func TestBroadcaster_AcknowledgeIdempotent(t *testing.T) {
	store := remote.NewMemoryStore()
	b, _ := newBroadcastFixture(t, store)
	ctx := context.Background()

	bc, err := b.Broadcast(ctx, BroadcastRequest{
		Message: "I need help", Source: language.English,
		Location: "Atlas", UrgencyLevel: 8, Category: "rescue", BroadcasterID: "device-1",
	})
	require.NoError(t, err)

	require.NoError(t, b.Acknowledge(ctx, bc.ID, "user-9"))
	require.NoError(t, b.Acknowledge(ctx, bc.ID, "user-9"))

	got, err := b.Active(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ReachCount)
}

func TestBroadcaster_ActiveDefaultsUrgencyFloor(t *testing.T) {
	store := remote.NewMemoryStore()
	b, _ := newBroadcastFixture(t, store)
	ctx := context.Background()

	_, err := b.Broadcast(ctx, BroadcastRequest{
		Message: "minor issue", Source: language.English,
		Location: "Atlas", UrgencyLevel: 3, Category: "safety", BroadcasterID: "device-1",
	})
	require.NoError(t, err)
	_, err = b.Broadcast(ctx, BroadcastRequest{
		Message: "major issue", Source: language.English,
		Location: "Atlas", UrgencyLevel: 8, Category: "safety", BroadcasterID: "device-1",
	})
	require.NoError(t, err)

	got, err := b.Active(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 8, got[0].UrgencyLevel)

	// explicit floor overrides the default
	got, err = b.Active(ctx, "", 1)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestBroadcaster_Phrases(t *testing.T) {
	b, _ := newBroadcastFixture(t, remote.NewSeededMemoryStore())

	got, err := b.Phrases(context.Background(), language.Tamazight, "", 0)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, 10, got[0].Priority)
}

func TestUrgencyBand(t *testing.T) {
	assert.Equal(t, "critical", UrgencyBand(10))
	assert.Equal(t, "critical", UrgencyBand(9))
	assert.Equal(t, "high", UrgencyBand(7))
	assert.Equal(t, "medium", UrgencyBand(5))
	assert.Equal(t, "low", UrgencyBand(4))
	assert.Equal(t, "low", UrgencyBand(1))
}
