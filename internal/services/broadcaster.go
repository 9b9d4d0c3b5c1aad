package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mindful-ai-dude/multilingo/internal/audio"
	"github.com/mindful-ai-dude/multilingo/internal/common"
	"github.com/mindful-ai-dude/multilingo/internal/language"
	"github.com/mindful-ai-dude/multilingo/internal/logging"
	"github.com/mindful-ai-dude/multilingo/internal/models"
	"github.com/mindful-ai-dude/multilingo/internal/remote"
	"github.com/mindful-ai-dude/multilingo/internal/repositories/syncqueue"
)

const (
	// BroadcastTTL is how long a broadcast stays active without an explicit
	// expiry.
	BroadcastTTL = 24 * time.Hour

	// DefaultMinUrgency is the floor applied to active-broadcast queries
	// when the caller does not give one.
	DefaultMinUrgency = 6
)

// UrgencyBand maps an urgency level to its display band.
func UrgencyBand(level int) string {
	switch {
	case level >= 9:
		return "critical"
	case level >= 7:
		return "high"
	case level >= 5:
		return "medium"
	default:
		return "low"
	}
}

// Resolver is the slice of the orchestrator the coordinator needs.
type Resolver interface {
	Resolve(ctx context.Context, req TranslateRequest) (*models.Result, error)
}

// Broadcaster assembles and submits emergency broadcasts. Unlike ordinary
// translation, a failed remote submission surfaces to the caller: silence
// during an emergency is unacceptable.
type Broadcaster struct {
	resolver Resolver
	remote   remote.Store
	queue    syncqueue.Repository
	audio    *audio.Library
	log      logging.Logger
	now      func() time.Time
}

func NewBroadcaster(resolver Resolver, rs remote.Store, q syncqueue.Repository, lib *audio.Library, log logging.Logger) *Broadcaster {
	return &Broadcaster{
		resolver: resolver,
		remote:   rs,
		queue:    q,
		audio:    lib,
		log:      log.With("service", "broadcaster"),
		now:      time.Now,
	}
}

// BroadcastRequest carries the fields of a new emergency broadcast.
type BroadcastRequest struct {
	Message       string
	Source        language.Language
	Location      string
	UrgencyLevel  int
	Category      string
	BroadcasterID string
}

// Broadcast translates the message into every language other than the
// source, assembles the broadcast and submits it. On remote failure the
// broadcast is queued at emergency priority and the error is returned.
func (b *Broadcaster) Broadcast(ctx context.Context, req BroadcastRequest) (*remote.Broadcast, error) {
	if req.Message == "" {
		return nil, fmt.Errorf("broadcast message is empty")
	}
	if !req.Source.Valid() {
		return nil, fmt.Errorf("unknown source language %q: %w", req.Source, common.ErrUnsupportedLanguagePair)
	}
	if req.UrgencyLevel < 1 || req.UrgencyLevel > 10 {
		return nil, fmt.Errorf("urgency level %d out of [1,10]", req.UrgencyLevel)
	}

	targets := req.Source.Others()
	translations := make([]remote.BroadcastTranslation, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			res, err := b.resolver.Resolve(gctx, TranslateRequest{
				SourceText: req.Message,
				From:       req.Source,
				To:         target,
				Context:    models.ContextEmergency,
				UserID:     req.BroadcasterID,
			})
			if err != nil {
				return fmt.Errorf("translate to %s: %w", target, err)
			}
			bt := remote.BroadcastTranslation{Language: target, Text: res.TranslatedText}
			if b.audio != nil {
				if url, ok := b.audio.ResolveURL(gctx, req.Message, target); ok {
					bt.AudioURL = url
				}
			}
			translations[i] = bt
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := b.now()
	createReq := remote.CreateBroadcastRequest{
		Message:       req.Message,
		Source:        req.Source,
		Translations:  translations,
		Location:      req.Location,
		UrgencyLevel:  req.UrgencyLevel,
		Category:      req.Category,
		BroadcasterID: req.BroadcasterID,
		ExpiresAt:     now.Add(BroadcastTTL),
	}

	bc := &remote.Broadcast{
		Message:       createReq.Message,
		Source:        createReq.Source,
		Translations:  translations,
		Location:      createReq.Location,
		UrgencyLevel:  createReq.UrgencyLevel,
		Category:      createReq.Category,
		BroadcasterID: createReq.BroadcasterID,
		Timestamp:     now,
		ExpiresAt:     createReq.ExpiresAt,
		IsActive:      true,
	}

	id, err := b.remote.CreateEmergencyBroadcast(ctx, createReq)
	if err != nil {
		b.enqueueBroadcast(ctx, createReq)
		return bc, fmt.Errorf("submit broadcast: %v: %w", err, common.ErrRemoteWriteFailed)
	}
	bc.ID = id
	b.log.Info(ctx, "emergency broadcast submitted", "id", id, "urgency", req.UrgencyLevel, "location", req.Location)
	return bc, nil
}

func (b *Broadcaster) enqueueBroadcast(ctx context.Context, createReq remote.CreateBroadcastRequest) {
	payload, err := json.Marshal(createReq)
	if err != nil {
		b.log.Error(ctx, "failed to encode broadcast payload", "error", err)
		return
	}
	entry := &models.SyncEntry{
		ID:        uuid.NewString(),
		Action:    models.ActionCreateBroadcast,
		Payload:   payload,
		Priority:  models.PriorityEmergency,
		CreatedAt: b.now(),
	}
	if err := b.queue.Enqueue(ctx, entry); err != nil {
		b.log.Error(ctx, "failed to enqueue broadcast", "error", err)
	}
}

// Acknowledge marks the broadcast seen by userID. Idempotent.
func (b *Broadcaster) Acknowledge(ctx context.Context, broadcastID, userID string) error {
	return b.remote.AcknowledgeEmergencyBroadcast(ctx, broadcastID, userID)
}

// Active returns active non-expired broadcasts, urgency descending.
// minUrgency 0 applies DefaultMinUrgency.
func (b *Broadcaster) Active(ctx context.Context, location string, minUrgency int) ([]remote.Broadcast, error) {
	if minUrgency <= 0 {
		minUrgency = DefaultMinUrgency
	}
	return b.remote.GetActiveEmergencyBroadcasts(ctx, remote.ActiveQuery{Location: location, MinUrgency: minUrgency})
}

// Phrases returns the curated emergency phrase set for a language, priority
// descending.
func (b *Broadcaster) Phrases(ctx context.Context, lang language.Language, category string, limit int) ([]remote.EmergencyPhrase, error) {
	return b.remote.GetEmergencyPhrases(ctx, remote.PhraseQuery{Language: lang, Category: category, Limit: limit})
}

// StartExpirySweeper runs the expiry sweep on a fixed interval until ctx is
// cancelled.
func (b *Broadcaster) StartExpirySweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := b.remote.DeactivateExpiredBroadcasts(ctx)
				if err != nil {
					b.log.Warn(ctx, "expiry sweep failed", "error", err)
					continue
				}
				if n > 0 {
					b.log.Info(ctx, "deactivated expired broadcasts", "count", n)
				}
			}
		}
	}()
}
