package history

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/mindful-ai-dude/multilingo/internal/common"
	"github.com/mindful-ai-dude/multilingo/internal/language"
	"github.com/mindful-ai-dude/multilingo/internal/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE translation_history (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  input_text TEXT NOT NULL,
  output_text TEXT NOT NULL,
  from_language TEXT NOT NULL,
  to_language TEXT NOT NULL,
  timestamp INTEGER NOT NULL,
  is_favorite INTEGER NOT NULL DEFAULT 0,
  translation_mode TEXT NOT NULL,
  context TEXT NOT NULL DEFAULT 'general',
  method TEXT NOT NULL DEFAULT 'tflite',
  confidence REAL NOT NULL DEFAULT 0
);
`)
	require.NoError(t, err)

	return db
}

func sampleRecord(text, translated string, ts time.Time) *models.TranslationRecord {
	return &models.TranslationRecord{
		SourceText:     text,
		TranslatedText: translated,
		From:           language.English,
		To:             language.Tamazight,
		Timestamp:      ts,
		Mode:           models.ModeOffline,
		Context:        models.ContextGeneral,
		Method:         models.MethodTFLite,
		Confidence:     0.85,
	}
}

func TestSave_AssignsID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id, err := r.Save(ctx, sampleRecord("Hello", "ⴰⵣⵓⵍ", time.Now()))
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	id2, err := r.Save(ctx, sampleRecord("Water", "ⴰⵎⴰⵏ", time.Now()))
	require.NoError(t, err)
	assert.Equal(t, int64(2), id2, "ids must auto-increment")
}

func TestSave_NilHandleFailsFast(t *testing.T) {
	r := NewSQLiteRepository(nil)
	_, err := r.Save(context.Background(), sampleRecord("x", "y", time.Now()))
	assert.ErrorIs(t, err, common.ErrStoreNotInitialized)
}

func TestList_NewestFirstAndFilters(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	_, err := r.Save(ctx, sampleRecord("Hello", "ⴰⵣⵓⵍ", base))
	require.NoError(t, err)
	_, err = r.Save(ctx, sampleRecord("Water", "ⴰⵎⴰⵏ", base.Add(time.Minute)))
	require.NoError(t, err)
	fav := sampleRecord("Thank you", "ⵜⴰⵏⵎⵎⵉⵔⵜ", base.Add(2*time.Minute))
	fav.IsFavorite = true
	_, err = r.Save(ctx, fav)
	require.NoError(t, err)

	all, err := r.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Thank you", all[0].SourceText, "newest first")
	assert.Equal(t, "Hello", all[2].SourceText)

	favs, err := r.List(ctx, Filter{FavoritesOnly: true})
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, "Thank you", favs[0].SourceText)

	// substring search is case-insensitive and matches either column
	hits, err := r.List(ctx, Filter{Search: "wat"})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Water", hits[0].SourceText)

	hits, err = r.List(ctx, Filter{Search: "ⴰⵎⴰⵏ"})
	require.NoError(t, err)
	require.Len(t, hits, 1)

	limited, err := r.List(ctx, Filter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestGetCached_ExactBeforeSubstring(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	_, err := r.Save(ctx, sampleRecord("I need water", "ⵔⵉⵖ ⴰⵎⴰⵏ", base))
	require.NoError(t, err)
	_, err = r.Save(ctx, sampleRecord("I need help", "ⵔⵉⵖ ⵜⵉⵡⵉⵙⵉ", base.Add(time.Minute)))
	require.NoError(t, err)

	got, err := r.GetCached(ctx, "i need help", language.English, language.Tamazight)
	require.NoError(t, err)
	assert.Equal(t, "ⵔⵉⵖ ⵜⵉⵡⵉⵙⵉ", got.TranslatedText, "exact CI match wins")

	// substring fallback: "I need" is a prefix of both rows; the newest wins
	got, err = r.GetCached(ctx, "I need", language.English, language.Tamazight)
	require.NoError(t, err)
	assert.Equal(t, "ⵔⵉⵖ ⵜⵉⵡⵉⵙⵉ", got.TranslatedText)

	_, err = r.GetCached(ctx, "goodbye", language.English, language.Tamazight)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetCached_LanguagePairIsExact(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := r.Save(ctx, sampleRecord("Hello", "ⴰⵣⵓⵍ", time.Now()))
	require.NoError(t, err)

	_, err = r.GetCached(ctx, "Hello", language.English, language.French)
	assert.ErrorIs(t, err, common.ErrNotFound, "different pair must not match")
}

func TestToggleFavoriteAndDelete(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id, err := r.Save(ctx, sampleRecord("Hello", "ⴰⵣⵓⵍ", time.Now()))
	require.NoError(t, err)

	require.NoError(t, r.ToggleFavorite(ctx, id))
	rows, err := r.List(ctx, Filter{FavoritesOnly: true})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	require.NoError(t, r.ToggleFavorite(ctx, id))
	rows, err = r.List(ctx, Filter{FavoritesOnly: true})
	require.NoError(t, err)
	assert.Empty(t, rows)

	assert.ErrorIs(t, r.ToggleFavorite(ctx, 999), common.ErrNotFound)

	require.NoError(t, r.Delete(ctx, id))
	assert.ErrorIs(t, r.Delete(ctx, id), common.ErrNotFound)
}

func TestClearAndStats(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	online := sampleRecord("Hello", "ⴰⵣⵓⵍ", time.Now())
	online.Mode = models.ModeOnline
	online.IsFavorite = true
	_, err := r.Save(ctx, online)
	require.NoError(t, err)
	_, err = r.Save(ctx, sampleRecord("Water", "ⴰⵎⴰⵏ", time.Now()))
	require.NoError(t, err)

	stats, err := r.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Statistics{Total: 2, Favorites: 1, Online: 1, Offline: 1}, stats)

	require.NoError(t, r.Clear(ctx))
	stats, err = r.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Statistics{}, stats)
}
