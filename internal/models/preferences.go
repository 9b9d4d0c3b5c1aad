package models

import (
	"time"

	"github.com/mindful-ai-dude/multilingo/internal/language"
)

// UserPreferences is the singleton per-device preference row.
type UserPreferences struct {
	PreferredMode Mode
	FromLanguage  language.Language
	ToLanguage    language.Language
	EnableHaptics bool
	EnableAudio   bool
	UpdatedAt     time.Time
}

// DefaultPreferences returns the preferences seeded on first run: offline
// mode, Arabic → Tamazight, feedback toggles on.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		PreferredMode: ModeOffline,
		FromLanguage:  language.Arabic,
		ToLanguage:    language.Tamazight,
		EnableHaptics: true,
		EnableAudio:   true,
	}
}

// PreferencesPatch is a partial preferences update; nil fields are left
// unchanged. Last write wins.
type PreferencesPatch struct {
	PreferredMode *Mode
	FromLanguage  *language.Language
	ToLanguage    *language.Language
	EnableHaptics *bool
	EnableAudio   *bool
}
