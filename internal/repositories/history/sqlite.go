package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mindful-ai-dude/multilingo/internal/common"
	"github.com/mindful-ai-dude/multilingo/internal/dbx"
	"github.com/mindful-ai-dude/multilingo/internal/language"
	"github.com/mindful-ai-dude/multilingo/internal/models"
)

const defaultListLimit = 50

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

const recordColumns = `id, input_text, output_text, from_language, to_language,
	timestamp, is_favorite, translation_mode, context, method, confidence`

func scanRecord(scan func(dest ...any) error) (*models.TranslationRecord, error) {
	var (
		rec      models.TranslationRecord
		from, to string
		ms       int64
	)
	err := scan(&rec.ID, &rec.SourceText, &rec.TranslatedText, &from, &to,
		&ms, &rec.IsFavorite, &rec.Mode, &rec.Context, &rec.Method, &rec.Confidence)
	if err != nil {
		return nil, err
	}
	rec.From = language.Language(from)
	rec.To = language.Language(to)
	rec.Timestamp = fromUnixMilli(ms)
	return &rec, nil
}

// Save appends one history row. The write is a single INSERT, so concurrent
// readers never observe a partial record.
func (r *SQLiteRepository) Save(ctx context.Context, rec *models.TranslationRecord) (int64, error) {
	if err := r.guard(); err != nil {
		return 0, err
	}

	query := `INSERT INTO translation_history
		(input_text, output_text, from_language, to_language, timestamp,
		 is_favorite, translation_mode, context, method, confidence)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		rec.SourceText, rec.TranslatedText, rec.From.String(), rec.To.String(),
		toUnixMilli(rec.Timestamp), rec.IsFavorite, string(rec.Mode),
		string(rec.Context), string(rec.Method), rec.Confidence)
	if err != nil {
		return 0, fmt.Errorf("failed to insert history row: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted id: %w", err)
	}
	rec.ID = id
	return id, nil
}

// List returns history rows newest first, optionally filtered by favorite
// flag and a case-insensitive substring over both text columns.
func (r *SQLiteRepository) List(ctx context.Context, f Filter) ([]models.TranslationRecord, error) {
	if err := r.guard(); err != nil {
		return nil, err
	}

	query := `SELECT ` + recordColumns + ` FROM translation_history WHERE 1=1`
	args := []any{}

	if f.FavoritesOnly {
		query += ` AND is_favorite = 1`
	}
	if f.Search != "" {
		query += ` AND (instr(lower(input_text), lower(?)) > 0 OR instr(lower(output_text), lower(?)) > 0)`
		args = append(args, f.Search, f.Search)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	query += ` ORDER BY timestamp DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select history: %w", err)
	}
	defer rows.Close()

	var result []models.TranslationRecord
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetCached looks up the freshest prior translation for the pair. Exact
// case-insensitive match wins; otherwise a bidirectional substring match is
// accepted. The substring fallback is a known imprecision for short phrases
// ("I need" can match "I need water"); it is kept for parity with the
// dataset search.
func (r *SQLiteRepository) GetCached(ctx context.Context, sourceText string, from, to language.Language) (*models.TranslationRecord, error) {
	if err := r.guard(); err != nil {
		return nil, err
	}

	exact := `SELECT ` + recordColumns + ` FROM translation_history
		WHERE lower(input_text) = lower(?) AND from_language = ? AND to_language = ?
		ORDER BY timestamp DESC, id DESC LIMIT 1`

	rec, err := scanRecord(r.db.QueryRowContext(ctx, exact, sourceText, from.String(), to.String()).Scan)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to query cached translation: %w", err)
	}

	loose := `SELECT ` + recordColumns + ` FROM translation_history
		WHERE (instr(lower(input_text), lower(?)) > 0 OR instr(lower(?), lower(input_text)) > 0)
		  AND from_language = ? AND to_language = ?
		ORDER BY timestamp DESC, id DESC LIMIT 1`

	rec, err = scanRecord(r.db.QueryRowContext(ctx, loose, sourceText, sourceText, from.String(), to.String()).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query cached translation: %w", err)
	}
	return rec, nil
}

// ToggleFavorite flips the favorite flag. It expects exactly one row to be affected.
func (r *SQLiteRepository) ToggleFavorite(ctx context.Context, id int64) error {
	if err := r.guard(); err != nil {
		return err
	}

	query := `UPDATE translation_history
		SET is_favorite = CASE WHEN is_favorite = 1 THEN 0 ELSE 1 END
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to toggle favorite: %w", err)
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

// Delete removes one history row.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	if err := r.guard(); err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM translation_history WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete history row: %w", err)
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

// Clear removes all history rows.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if err := r.guard(); err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM translation_history`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// Stats returns counts by favorite and mode in one aggregate query.
func (r *SQLiteRepository) Stats(ctx context.Context) (models.Statistics, error) {
	var stats models.Statistics
	if err := r.guard(); err != nil {
		return stats, err
	}

	query := `SELECT COUNT(*),
		COALESCE(SUM(CASE WHEN is_favorite = 1 THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN translation_mode = 'online' THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN translation_mode = 'offline' THEN 1 ELSE 0 END), 0)
		FROM translation_history`

	err := r.db.QueryRowContext(ctx, query).Scan(&stats.Total, &stats.Favorites, &stats.Online, &stats.Offline)
	if err != nil {
		return stats, fmt.Errorf("failed to query statistics: %w", err)
	}
	return stats, nil
}
