// Package preferences persists the singleton per-device preference row.
package preferences

import (
	"context"

	"github.com/mindful-ai-dude/multilingo/internal/models"
)

// Repository reads and updates the single preferences row. Updates are
// last-write-wins; partial patches leave unset fields alone.
type Repository interface {
	// Get returns the current preferences, seeding defaults on first use.
	Get(ctx context.Context) (models.UserPreferences, error)

	// Update applies a partial patch to the singleton row.
	Update(ctx context.Context, patch models.PreferencesPatch) error
}
