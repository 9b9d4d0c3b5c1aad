package remote

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mindful-ai-dude/multilingo/internal/common"
	"github.com/mindful-ai-dude/multilingo/internal/language"
)

// MemoryStore is an in-process Store. It backs tests and offline sessions and
// is the reference for the contract's edge semantics.
type MemoryStore struct {
	mu           sync.RWMutex
	translations []Translation
	broadcasts   []Broadcast
	phrases      []EmergencyPhrase
	now          func() time.Time
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

// NewSeededMemoryStore returns a store preloaded with the curated emergency
// phrase set.
func NewSeededMemoryStore() *MemoryStore {
	s := NewMemoryStore()
	for _, p := range seedEmergencyPhrases {
		p.ID = uuid.NewString()
		s.phrases = append(s.phrases, p)
	}
	return s
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) GetRecentTranslations(ctx context.Context, q RecentQuery) ([]Translation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	limit := q.Limit
	if limit <= 0 {
		limit = 50
	}

	out := make([]Translation, 0, limit)
	// translations are appended in arrival order; walk backwards for newest
	// first
	for i := len(s.translations) - 1; i >= 0 && len(out) < limit; i-- {
		t := s.translations[i]
		if q.Context != "" && t.Context != q.Context {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *MemoryStore) SaveTranslation(ctx context.Context, req SaveTranslationRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("invalid translation: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := Translation{
		ID:             uuid.NewString(),
		SourceText:     req.SourceText,
		TranslatedText: req.TranslatedText,
		From:           req.From,
		To:             req.To,
		Method:         req.Method,
		Context:        req.Context,
		UserID:         req.UserID,
		Region:         req.Region,
		Confidence:     req.Confidence,
		IsEmergency:    req.IsEmergency,
		Timestamp:      s.now(),
	}
	s.translations = append(s.translations, t)
	return t.ID, nil
}

// VerifyTranslation increments the count on every call. The same user
// verifying twice counts twice; de-duplication is a known gap of the shared
// contract, not of this implementation.
func (s *MemoryStore) VerifyTranslation(ctx context.Context, req VerifyRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.translations {
		if s.translations[i].ID == req.TranslationID {
			s.translations[i].VerificationCount++
			if s.translations[i].VerificationCount >= VerifiedThreshold {
				s.translations[i].IsVerified = true
			}
			return nil
		}
	}
	return fmt.Errorf("translation %s: %w", req.TranslationID, common.ErrNotFound)
}

func (s *MemoryStore) GetActiveEmergencyBroadcasts(ctx context.Context, q ActiveQuery) ([]Broadcast, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	var out []Broadcast
	for _, b := range s.broadcasts {
		if !b.IsActive || b.Expired(now) {
			continue
		}
		if q.Location != "" && !locationMatches(b.Location, q.Location) {
			continue
		}
		if q.MinUrgency > 0 && b.UrgencyLevel < q.MinUrgency {
			continue
		}
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UrgencyLevel > out[j].UrgencyLevel
	})
	return out, nil
}

// locationMatches treats "general" as a wildcard on either side.
func locationMatches(broadcastLoc, queryLoc string) bool {
	return broadcastLoc == queryLoc || broadcastLoc == "general" || queryLoc == "general"
}

func (s *MemoryStore) CreateEmergencyBroadcast(ctx context.Context, req CreateBroadcastRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("invalid broadcast: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b := Broadcast{
		ID:            uuid.NewString(),
		Message:       req.Message,
		Source:        req.Source,
		Translations:  append([]BroadcastTranslation(nil), req.Translations...),
		Location:      req.Location,
		UrgencyLevel:  req.UrgencyLevel,
		Category:      req.Category,
		BroadcasterID: req.BroadcasterID,
		Timestamp:     s.now(),
		ExpiresAt:     req.ExpiresAt,
		IsActive:      true,
	}
	s.broadcasts = append(s.broadcasts, b)
	return b.ID, nil
}

func (s *MemoryStore) AcknowledgeEmergencyBroadcast(ctx context.Context, broadcastID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.broadcasts {
		if s.broadcasts[i].ID != broadcastID {
			continue
		}
		for _, seen := range s.broadcasts[i].AcknowledgedBy {
			if seen == userID {
				return nil
			}
		}
		s.broadcasts[i].AcknowledgedBy = append(s.broadcasts[i].AcknowledgedBy, userID)
		s.broadcasts[i].ReachCount++
		return nil
	}
	return fmt.Errorf("broadcast %s: %w", broadcastID, common.ErrNotFound)
}

func (s *MemoryStore) GetEmergencyPhrases(ctx context.Context, q PhraseQuery) ([]EmergencyPhrase, error) {
	if !q.Language.Valid() {
		return nil, fmt.Errorf("unknown language %q", q.Language)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}

	var out []EmergencyPhrase
	for _, p := range s.phrases {
		if p.Language != q.Language {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryStore) DeactivateExpiredBroadcasts(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for i := range s.broadcasts {
		if s.broadcasts[i].IsActive && s.broadcasts[i].Expired(now) {
			s.broadcasts[i].IsActive = false
			n++
		}
	}
	return n, nil
}

// seedEmergencyPhrases is the curated disaster-relief phrase set shipped with
// the backend.
var seedEmergencyPhrases = []EmergencyPhrase{
	{Phrase: "Ɣriɣ tallalt!", Language: language.Tamazight, Category: "medical", Priority: 10, Tifinagh: "ⵖⵔⵉⵖ ⵜⴰⵍⵍⴰⵍⵜ!", Region: "Atlas", IsOfficial: true},
	{Phrase: "I need help!", Language: language.English, Category: "medical", Priority: 10, Region: "general", IsOfficial: true},
	{Phrase: "أحتاج مساعدة!", Language: language.Arabic, Category: "medical", Priority: 10, Region: "general", IsOfficial: true},
	{Phrase: "J'ai besoin d'aide!", Language: language.French, Category: "medical", Priority: 10, Region: "general", IsOfficial: true},
	{Phrase: "Manik ara d-tafem?", Language: language.Tamazight, Category: "location", Priority: 8, Tifinagh: "ⵎⴰⵏⵉⴽ ⴰⵔⴰ ⴷ-ⵜⴰⴼⴻⵎ?", Region: "Rif"},
	{Phrase: "Where can you find me?", Language: language.English, Category: "location", Priority: 8, Region: "general"},
	{Phrase: "Ḥader! Amek!", Language: language.Tamazight, Category: "safety", Priority: 9, Tifinagh: "ⵃⴰⴷⴻⵔ! ⴰⵎⴻⴽ!", Region: "Atlas", IsOfficial: true},
	{Phrase: "Careful! Stop!", Language: language.English, Category: "safety", Priority: 9, Region: "general", IsOfficial: true},
	{Phrase: "Andrar! Ffeɣ-d!", Language: language.Tamazight, Category: "earthquake", Priority: 10, Tifinagh: "ⴰⵏⴷⵔⴰⵔ! ⴼⴼⴻⵖ-ⴷ!", Region: "Atlas", IsOfficial: true},
	{Phrase: "Earthquake! Get out!", Language: language.English, Category: "earthquake", Priority: 10, Region: "general", IsOfficial: true},
	{Phrase: "Ur ttiniɣ ara taɛrabt", Language: language.Tamazight, Category: "communication", Priority: 6, Tifinagh: "ⵓⵔ ⵜⵜⵉⵏⵉⵖ ⴰⵔⴰ ⵜⴰⵄⵔⴰⴱⵜ", Region: "general"},
	{Phrase: "I don't speak Arabic", Language: language.English, Category: "communication", Priority: 6, Region: "general"},
}
