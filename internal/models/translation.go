// Package models holds the domain types shared by the translation
// orchestration, persistence and CLI layers.
package models

import (
	"fmt"
	"time"

	"github.com/mindful-ai-dude/multilingo/internal/language"
)

// Method records which stage produced a translation.
type Method string

const (
	MethodGemini    Method = "gemini"
	MethodTFLite    Method = "tflite"
	MethodUser      Method = "user"
	MethodCommunity Method = "community"

	// MethodCached marks a result served from local history. It appears only
	// on Result values; persisted rows keep the method of the stage that
	// originally produced them.
	MethodCached Method = "cached"
)

// TranslationContext qualifies what a phrase is for. It changes both the
// oracle prompt and the fallback order (emergency skips the cache).
type TranslationContext string

const (
	ContextEmergency  TranslationContext = "emergency"
	ContextGovernment TranslationContext = "government"
	ContextGeneral    TranslationContext = "general"
	ContextCultural   TranslationContext = "cultural"
)

// ParseContext maps a string to a TranslationContext, defaulting to general.
func ParseContext(s string) TranslationContext {
	switch TranslationContext(s) {
	case ContextEmergency, ContextGovernment, ContextGeneral, ContextCultural:
		return TranslationContext(s)
	default:
		return ContextGeneral
	}
}

// Mode says whether a translation was produced with network access.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// ParseMode maps a string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeOnline, ModeOffline:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}

// TranslationRecord is one row of local translation history. History is an
// append-only log: rows are never updated in place (except the favorite flag).
type TranslationRecord struct {
	ID             int64
	SourceText     string
	TranslatedText string
	From           language.Language
	To             language.Language
	Timestamp      time.Time
	IsFavorite     bool
	Mode           Mode
	Context        TranslationContext
	Method         Method
	Confidence     float64
}

// Result is what the orchestrator hands back to the caller: a displayable
// string plus its provenance and confidence.
type Result struct {
	TranslatedText string
	Confidence     float64
	Method         Method
	RemoteID       string
	LocalID        int64
}

// Statistics aggregates local history counts.
type Statistics struct {
	Total     int
	Favorites int
	Online    int
	Offline   int
}
