// Package oracle abstracts the online AI translation backend. The
// orchestrator treats it as best-effort: any failure here falls through to
// the offline stages, it never surfaces to the caller.
package oracle

import (
	"context"

	"github.com/mindful-ai-dude/multilingo/internal/language"
	"github.com/mindful-ai-dude/multilingo/internal/models"
)

// Oracle translates text using an external AI service.
type Oracle interface {
	// Translate returns the translated text, or an error wrapping
	// common.ErrOracleUnavailable when the service cannot answer.
	Translate(ctx context.Context, text string, from, to language.Language, tctx models.TranslationContext) (string, error)

	// IsConfigured reports whether the oracle has the credentials it needs.
	// An unconfigured oracle is skipped without being called.
	IsConfigured() bool
}
