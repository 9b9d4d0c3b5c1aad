package preferences

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mindful-ai-dude/multilingo/internal/common"
	"github.com/mindful-ai-dude/multilingo/internal/dbx"
	"github.com/mindful-ai-dude/multilingo/internal/language"
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

// Get returns the singleton preferences row, inserting defaults if the table
// is still empty.
func (r *SQLiteRepository) Get(ctx context.Context) (models.UserPreferences, error) {
	var prefs models.UserPreferences
	if err := r.guard(); err != nil {
		return prefs, err
	}

	query := `SELECT preferred_mode, from_language, to_language,
		enable_haptics, enable_audio, updated_at
		FROM user_preferences WHERE id = 1`

	var (
		mode, from, to string
		ms             int64
	)
	err := r.db.QueryRowContext(ctx, query).Scan(&mode, &from, &to,
		&prefs.EnableHaptics, &prefs.EnableAudio, &ms)

	if errors.Is(err, sql.ErrNoRows) {
		defaults := models.DefaultPreferences()
		defaults.UpdatedAt = time.Now()
		if err := r.insertDefaults(ctx, defaults); err != nil {
			return prefs, err
		}
		return defaults, nil
	}
	if err != nil {
		return prefs, fmt.Errorf("failed to query preferences: %w", err)
	}

	prefs.PreferredMode = models.Mode(mode)
	prefs.FromLanguage = language.Language(from)
	prefs.ToLanguage = language.Language(to)
	prefs.UpdatedAt = time.UnixMilli(ms)
	return prefs, nil
}

func (r *SQLiteRepository) insertDefaults(ctx context.Context, p models.UserPreferences) error {
	query := `INSERT INTO user_preferences
		(id, preferred_mode, from_language, to_language, enable_haptics, enable_audio, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query,
		string(p.PreferredMode), p.FromLanguage.String(), p.ToLanguage.String(),
		p.EnableHaptics, p.EnableAudio, p.UpdatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to seed default preferences: %w", err)
	}
	return nil
}

// Update applies a partial patch to the singleton row. Unset fields are left
// unchanged; updated_at always moves forward.
func (r *SQLiteRepository) Update(ctx context.Context, patch models.PreferencesPatch) error {
	if err := r.guard(); err != nil {
		return err
	}

	// Ensure the row exists before patching.
	if _, err := r.Get(ctx); err != nil {
		return err
	}

	updates := []string{}
	args := []any{}

	if patch.PreferredMode != nil {
		updates = append(updates, "preferred_mode = ?")
		args = append(args, string(*patch.PreferredMode))
	}
	if patch.FromLanguage != nil {
		updates = append(updates, "from_language = ?")
		args = append(args, patch.FromLanguage.String())
	}
	if patch.ToLanguage != nil {
		updates = append(updates, "to_language = ?")
		args = append(args, patch.ToLanguage.String())
	}
	if patch.EnableHaptics != nil {
		updates = append(updates, "enable_haptics = ?")
		args = append(args, *patch.EnableHaptics)
	}
	if patch.EnableAudio != nil {
		updates = append(updates, "enable_audio = ?")
		args = append(args, *patch.EnableAudio)
	}

	if len(updates) == 0 {
		return nil
	}

	updates = append(updates, "updated_at = ?")
	args = append(args, time.Now().UnixMilli())

	query := "UPDATE user_preferences SET "
	for i, u := range updates {
		if i > 0 {
			query += ", "
		}
		query += u
	}
	query += " WHERE id = 1"

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update preferences: %w", err)
	}
	return nil
}
