package history

import (
	"context"

	"github.com/mindful-ai-dude/multilingo/internal/language"
	"github.com/mindful-ai-dude/multilingo/internal/models"
)

// Filter narrows a List call. A zero Filter returns the newest 50 rows.
type Filter struct {
	Limit         int
	FavoritesOnly bool
	// Search matches case-insensitively against either source or translated
	// text.
	Search string
}

// Repository describes the append-only translation history log and its
// queries. Implementations are backed by the local SQLite database.
type Repository interface {
	// Save appends one history row and returns its local id. Rows are never
	// updated in place.
	Save(ctx context.Context, rec *models.TranslationRecord) (int64, error)

	// List returns history rows newest first.
	List(ctx context.Context, f Filter) ([]models.TranslationRecord, error)

	// GetCached returns the most recent prior translation of sourceText for
	// the exact language pair: case-insensitive exact match first, then a
	// bidirectional substring match (same policy as the dataset search).
	// Returns common.ErrNotFound when nothing matches.
	GetCached(ctx context.Context, sourceText string, from, to language.Language) (*models.TranslationRecord, error)

	// ToggleFavorite flips the favorite flag of one row.
	ToggleFavorite(ctx context.Context, id int64) error

	// Delete removes one row.
	Delete(ctx context.Context, id int64) error

	// Clear removes all history rows.
	Clear(ctx context.Context) error

	// Stats returns counts by favorite and online/offline mode.
	Stats(ctx context.Context) (models.Statistics, error)
}
