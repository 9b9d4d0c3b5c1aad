// Package remote defines the collaboration store contract: the shared pool of
// community translations, emergency broadcasts and curated emergency phrases.
//
// # Overview
//
// Two implementations exist. HTTPStore talks JSON to the hosted backend with a
// device bearer token. MemoryStore is the in-process reference used by tests
// and by the CLI when no endpoint is configured; it carries the authoritative
// semantics (verification threshold, idempotent acknowledgment, computed
// expiry).
//
// Remote payloads are validated at this boundary. A malformed record is an
// error wrapping common.ErrRemoteReadCorrupt, never a crash deeper in.
package remote

import (
	"context"
	"fmt"
	"time"

	"github.com/mindful-ai-dude/multilingo/internal/language"
	"github.com/mindful-ai-dude/multilingo/internal/models"
)

// VerifiedThreshold is the number of verifications that flips IsVerified.
const VerifiedThreshold = 3

// Translation is one shared translation record. The remote store assigns ID
// on insert; it is unrelated to local history ids.
type Translation struct {
	ID                string
	SourceText        string
	TranslatedText    string
	From              language.Language
	To                language.Language
	Method            models.Method
	Context           models.TranslationContext
	UserID            string
	Region            string
	Confidence        float64
	IsVerified        bool
	VerificationCount int
	IsEmergency       bool
	Timestamp         time.Time
}

// SaveTranslationRequest carries the fields of a new shared translation.
// Verification state always starts at zero on the server side.
type SaveTranslationRequest struct {
	SourceText     string
	TranslatedText string
	From           language.Language
	To             language.Language
	Method         models.Method
	Context        models.TranslationContext
	UserID         string
	Region         string
	Confidence     float64
	IsEmergency    bool
}

// Validate rejects requests that must never reach the wire.
func (r *SaveTranslationRequest) Validate() error {
	if r.SourceText == "" || r.TranslatedText == "" {
		return fmt.Errorf("source and translated text are required")
	}
	if !r.From.Valid() || !r.To.Valid() {
		return fmt.Errorf("unknown language in pair %q/%q", r.From, r.To)
	}
	if r.From == r.To {
		return fmt.Errorf("source and target language must differ")
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("confidence %v out of [0,1]", r.Confidence)
	}
	return nil
}

// RecentQuery narrows GetRecentTranslations. Zero Limit means 50; an empty
// Context means all contexts.
type RecentQuery struct {
	Limit   int
	Context models.TranslationContext
}

// VerifyRequest records one community verification of a translation.
type VerifyRequest struct {
	TranslationID        string
	UserID               string
	IsCorrect            bool
	SuggestedImprovement string
	// Expertise is self-declared: native_speaker, linguist,
	// emergency_responder or community_member.
	Expertise string
}

// BroadcastTranslation is one per-language rendering of a broadcast message.
type BroadcastTranslation struct {
	Language language.Language
	Text     string
	AudioURL string
}

// Broadcast is an emergency broadcast with its translations and reach state.
// A zero ExpiresAt means the broadcast never expires.
type Broadcast struct {
	ID             string
	Message        string
	Source         language.Language
	Translations   []BroadcastTranslation
	Location       string
	UrgencyLevel   int
	Category       string
	BroadcasterID  string
	Timestamp      time.Time
	ExpiresAt      time.Time
	IsActive       bool
	ReachCount     int
	AcknowledgedBy []string
}

// Expired reports whether the broadcast's expiry has passed. Expiry is
// computed from ExpiresAt regardless of the stored IsActive flag.
func (b *Broadcast) Expired(now time.Time) bool {
	return !b.ExpiresAt.IsZero() && !b.ExpiresAt.After(now)
}

// CreateBroadcastRequest carries the fields of a new emergency broadcast.
type CreateBroadcastRequest struct {
	Message       string
	Source        language.Language
	Translations  []BroadcastTranslation
	Location      string
	UrgencyLevel  int
	Category      string
	BroadcasterID string
	ExpiresAt     time.Time
}

func (r *CreateBroadcastRequest) Validate() error {
	if r.Message == "" {
		return fmt.Errorf("message is required")
	}
	if !r.Source.Valid() {
		return fmt.Errorf("unknown source language %q", r.Source)
	}
	if r.UrgencyLevel < 1 || r.UrgencyLevel > 10 {
		return fmt.Errorf("urgency level %d out of [1,10]", r.UrgencyLevel)
	}
	for _, t := range r.Translations {
		if t.Language == r.Source {
			return fmt.Errorf("translation set must not contain the source language %q", r.Source)
		}
	}
	return nil
}

// ActiveQuery narrows GetActiveEmergencyBroadcasts. An empty Location matches
// everything; MinUrgency 0 applies no urgency floor.
type ActiveQuery struct {
	Location   string
	MinUrgency int
}

// EmergencyPhrase is a curated phrase for disaster-relief communication.
type EmergencyPhrase struct {
	ID         string
	Phrase     string
	Language   language.Language
	Category   string
	Priority   int
	Tifinagh   string
	Region     string
	IsOfficial bool
	UsageCount int
}

// PhraseQuery narrows GetEmergencyPhrases. Zero Limit means 20; an empty
// Category means all categories.
type PhraseQuery struct {
	Language language.Language
	Category string
	Limit    int
}

// Store is the remote collaboration surface the orchestrator and the
// broadcast coordinator depend on.
type Store interface {
	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error

	// GetRecentTranslations returns shared translations newest first.
	GetRecentTranslations(ctx context.Context, q RecentQuery) ([]Translation, error)

	// SaveTranslation inserts a shared translation and returns its remote id.
	SaveTranslation(ctx context.Context, req SaveTranslationRequest) (string, error)

	// VerifyTranslation records one verification mutation. Every call
	// increments the count; IsVerified flips at VerifiedThreshold.
	VerifyTranslation(ctx context.Context, req VerifyRequest) error

	// GetActiveEmergencyBroadcasts returns active, non-expired broadcasts
	// sorted by urgency descending. Expiry is computed from ExpiresAt, not
	// trusted from the IsActive flag.
	GetActiveEmergencyBroadcasts(ctx context.Context, q ActiveQuery) ([]Broadcast, error)

	// CreateEmergencyBroadcast inserts a broadcast and returns its id.
	CreateEmergencyBroadcast(ctx context.Context, req CreateBroadcastRequest) (string, error)

	// AcknowledgeEmergencyBroadcast marks the broadcast seen by userID.
	// Re-acknowledging is a no-op; ReachCount counts distinct users.
	AcknowledgeEmergencyBroadcast(ctx context.Context, broadcastID, userID string) error

	// GetEmergencyPhrases returns curated phrases sorted by priority
	// descending.
	GetEmergencyPhrases(ctx context.Context, q PhraseQuery) ([]EmergencyPhrase, error)

	// DeactivateExpiredBroadcasts flips IsActive off for every broadcast whose
	// expiry has passed and returns how many were flipped. Idempotent.
	DeactivateExpiredBroadcasts(ctx context.Context) (int, error)
}
