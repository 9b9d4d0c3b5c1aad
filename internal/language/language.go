// Package language defines the closed set of languages the app translates
// between and the single canonical mapping from outside representations
// (codes, legacy display strings) into that set. Every boundary goes through
// ParseLanguage; nothing in the interior pattern-matches display strings.
package language

import (
	"fmt"
	"strings"
)

// Language is one of the four supported languages.
type Language string

const (
	Tamazight Language = "tamazight"
	Arabic    Language = "arabic"
	French    Language = "french"
	English   Language = "english"
)

// All lists the supported languages in canonical order. Broadcast fan-out and
// display code rely on this order being stable.
var All = []Language{Tamazight, Arabic, French, English}

var byAlias = map[string]Language{
	"tamazight": Tamazight, "tmz": Tamazight, "ber": Tamazight,
	"arabic": Arabic, "ar": Arabic,
	"french": French, "fr": French,
	"english": English, "en": English,
}

var displayNames = map[Language]string{
	Tamazight: "Tamazight (ⵜⴰⵎⴰⵣⵉⵖⵜ)",
	Arabic:    "Arabic (العربية)",
	French:    "French (Français)",
	English:   "English",
}

var codes = map[Language]string{
	Tamazight: "tmz",
	Arabic:    "ar",
	French:    "fr",
	English:   "en",
}

// promptNames are the long descriptive names handed to the AI oracle so the
// prompt carries enough context for low-resource languages.
var promptNames = map[Language]string{
	Tamazight: "Tamazight (ⵜⴰⵎⴰⵣⵉⵖⵜ) - Moroccan Berber language",
	Arabic:    "Arabic (العربية) - Modern Standard Arabic",
	French:    "French (Français)",
	English:   "English",
}

// ParseLanguage maps an external representation to a Language. It accepts
// canonical names ("tamazight"), short codes ("tmz", "ar", "fr", "en") and the
// legacy display strings the phrase dataset uses ("Tamazight (ⵜⴰⵎⴰⵣⵉⵖⵜ)").
// Unknown input is rejected.
func ParseLanguage(s string) (Language, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if l, ok := byAlias[normalized]; ok {
		return l, nil
	}
	// Legacy display strings like "Arabic (العربية)": match on the leading
	// English word only.
	if name, _, found := strings.Cut(normalized, " ("); found {
		if l, ok := byAlias[name]; ok {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown language %q", s)
}

// Valid reports whether l is one of the four supported languages.
func (l Language) Valid() bool {
	_, ok := codes[l]
	return ok
}

// DisplayName returns the user-facing name, including the native script.
func (l Language) DisplayName() string {
	return displayNames[l]
}

// Code returns the short code used in dataset keys and placeholders.
func (l Language) Code() string {
	return codes[l]
}

// PromptName returns the descriptive name used in oracle prompts.
func (l Language) PromptName() string {
	return promptNames[l]
}

// Others returns the supported languages except l, in canonical order.
func (l Language) Others() []Language {
	out := make([]Language, 0, len(All)-1)
	for _, cand := range All {
		if cand != l {
			out = append(out, cand)
		}
	}
	return out
}

func (l Language) String() string {
	return string(l)
}
