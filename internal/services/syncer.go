package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/mindful-ai-dude/multilingo/internal/logging"
	"github.com/mindful-ai-dude/multilingo/internal/models"
	"github.com/mindful-ai-dude/multilingo/internal/netx"
	"github.com/mindful-ai-dude/multilingo/internal/remote"
	"github.com/mindful-ai-dude/multilingo/internal/repositories/syncqueue"
)

const (
	syncBatchSize = 20

	retryBase     = 500 * time.Millisecond
	retryAttempts = 3
)

// Syncer replays queued mutations against the remote store once connectivity
// returns. Entries drain priority-first, so emergency work goes out before
// ordinary history.
type Syncer struct {
	queue       syncqueue.Repository
	remote      remote.Store
	prober      netx.Prober
	log         logging.Logger
	backoffBase time.Duration
}

func NewSyncer(q syncqueue.Repository, rs remote.Store, p netx.Prober, log logging.Logger) *Syncer {
	return &Syncer{
		queue:       q,
		remote:      rs,
		prober:      p,
		log:         log.With("service", "syncer"),
		backoffBase: retryBase,
	}
}

// Flush replays every pending entry once, with exponential backoff per
// entry. It returns how many entries were replayed successfully. A failed
// entry gets its retry count bumped and stays queued; failures never abort
// the rest of the batch.
func (s *Syncer) Flush(ctx context.Context) (int, error) {
	replayed := 0
	for {
		entries, err := s.queue.NextUnprocessed(ctx, syncBatchSize)
		if err != nil {
			return replayed, fmt.Errorf("read sync queue: %w", err)
		}
		if len(entries) == 0 {
			return replayed, nil
		}

		progressed := false
		for _, e := range entries {
			if err := s.replayWithBackoff(ctx, &e); err != nil {
				s.log.Warn(ctx, "sync entry failed", "id", e.ID, "action", e.Action, "error", err)
				if err := s.queue.IncrementRetry(ctx, e.ID); err != nil {
					s.log.Error(ctx, "failed to bump retry count", "id", e.ID, "error", err)
				}
				continue
			}
			if err := s.queue.MarkProcessed(ctx, e.ID); err != nil {
				s.log.Error(ctx, "failed to mark entry processed", "id", e.ID, "error", err)
				continue
			}
			replayed++
			progressed = true
		}

		// nothing in this batch went through, stop instead of spinning on
		// the same entries
		if !progressed {
			return replayed, nil
		}
	}
}

// replayWithBackoff retries remote failures with exponential backoff.
// Decode failures and unknown actions are permanent and fail immediately.
func (s *Syncer) replayWithBackoff(ctx context.Context, e *models.SyncEntry) error {
	backoff := retry.WithMaxRetries(retryAttempts, retry.NewExponential(s.backoffBase))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		return s.replay(ctx, e)
	})
}

func (s *Syncer) replay(ctx context.Context, e *models.SyncEntry) error {
	switch e.Action {
	case models.ActionSaveTranslation:
		var req remote.SaveTranslationRequest
		if err := json.Unmarshal(e.Payload, &req); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
		if _, err := s.remote.SaveTranslation(ctx, req); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	case models.ActionCreateBroadcast:
		var req remote.CreateBroadcastRequest
		if err := json.Unmarshal(e.Payload, &req); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
		if _, err := s.remote.CreateEmergencyBroadcast(ctx, req); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	default:
		return fmt.Errorf("unknown sync action %q", e.Action)
	}
}

// Pending returns how many entries wait in the queue.
func (s *Syncer) Pending(ctx context.Context) (int, error) {
	return s.queue.CountPending(ctx)
}

// Start flushes the queue on a fixed interval whenever the network is
// reachable, until ctx is cancelled.
func (s *Syncer) Start(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !s.prober.Online(ctx) {
					continue
				}
				n, err := s.Flush(ctx)
				if err != nil {
					s.log.Warn(ctx, "background sync failed", "error", err)
					continue
				}
				if n > 0 {
					s.log.Info(ctx, "sync queue flushed", "replayed", n)
				}
			}
		}
	}()
}
