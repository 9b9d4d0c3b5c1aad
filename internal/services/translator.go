// Package services holds the three long-lived services of the client: the
// translation orchestrator, the emergency broadcast coordinator and the sync
// queue worker. Each one is constructed explicitly at process start and
// injected where needed; there are no ambient singletons.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mindful-ai-dude/multilingo/internal/common"
	"github.com/mindful-ai-dude/multilingo/internal/dataset"
	"github.com/mindful-ai-dude/multilingo/internal/language"
	"github.com/mindful-ai-dude/multilingo/internal/logging"
	"github.com/mindful-ai-dude/multilingo/internal/models"
	"github.com/mindful-ai-dude/multilingo/internal/netx"
	"github.com/mindful-ai-dude/multilingo/internal/oracle"
	"github.com/mindful-ai-dude/multilingo/internal/remote"
	"github.com/mindful-ai-dude/multilingo/internal/repositories/history"
	"github.com/mindful-ai-dude/multilingo/internal/repositories/syncqueue"
)

const (
	// communityWindow bounds how many recent shared translations stage 1
	// scans.
	communityWindow = 50

	// OracleTimeout bounds a single oracle call. Expiry counts as oracle
	// failure and falls through to the offline stages.
	OracleTimeout = 10 * time.Second

	confidenceCommunity   = 1.0
	confidenceOracle      = 0.95
	confidenceOffline     = 0.85
	confidencePlaceholder = 0.3
)

// TranslateRequest is one resolution request.
type TranslateRequest struct {
	SourceText string
	From       language.Language
	To         language.Language
	Context    models.TranslationContext
	UserID     string
}

func (r *TranslateRequest) validate() error {
	if strings.TrimSpace(r.SourceText) == "" {
		return fmt.Errorf("source text is empty: %w", common.ErrUnsupportedLanguagePair)
	}
	if !r.From.Valid() || !r.To.Valid() || r.From == r.To {
		return fmt.Errorf("pair %q/%q: %w", r.From, r.To, common.ErrUnsupportedLanguagePair)
	}
	return nil
}

// Translator resolves translation requests through the ordered fallback
// chain: community-verified, local cache, AI oracle, offline dataset and
// history, placeholder. Network and remote failures demote to the next
// stage; only malformed input is an error.
type Translator struct {
	remote  remote.Store
	oracle  oracle.Oracle
	prober  netx.Prober
	history history.Repository
	queue   syncqueue.Repository
	log     logging.Logger
	now     func() time.Time
}

func NewTranslator(rs remote.Store, o oracle.Oracle, p netx.Prober, h history.Repository, q syncqueue.Repository, log logging.Logger) *Translator {
	return &Translator{
		remote:  rs,
		oracle:  o,
		prober:  p,
		history: h,
		queue:   q,
		log:     log.With("service", "translator"),
		now:     time.Now,
	}
}

// Resolve runs the fallback chain and returns the first stage's answer.
// Abandoned requests still complete and persist; callers that stop waiting
// should not cancel ctx, so the local cache keeps warming.
func (t *Translator) Resolve(ctx context.Context, req TranslateRequest) (*models.Result, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	if req.Context == "" {
		req.Context = models.ContextGeneral
	}

	if res := t.communityLookup(ctx, req); res != nil {
		return res, nil
	}

	// Emergency requests skip the cache: freshness over reuse for
	// life-safety phrases.
	if req.Context != models.ContextEmergency {
		if res := t.cacheLookup(ctx, req); res != nil {
			return res, nil
		}
	}

	if res := t.oracleLookup(ctx, req); res != nil {
		return res, nil
	}

	return t.offlineLookup(ctx, req), nil
}

// communityLookup scans the recent shared-translation window for a verified
// record with the same text and pair. The window is re-fetched on every call
// so a freshly verified record wins immediately.
func (t *Translator) communityLookup(ctx context.Context, req TranslateRequest) *models.Result {
	recent, err := t.remote.GetRecentTranslations(ctx, remote.RecentQuery{Limit: communityWindow})
	if err != nil {
		t.log.Debug(ctx, "community lookup skipped", "error", err)
		return nil
	}

	want := normalize(req.SourceText)
	for _, r := range recent {
		if !r.IsVerified || r.From != req.From || r.To != req.To || normalize(r.SourceText) != want {
			continue
		}
		res := t.persist(ctx, req, r.TranslatedText, confidenceCommunity, models.MethodCommunity, models.ModeOnline)
		res.RemoteID = r.ID
		return res
	}
	return nil
}

func (t *Translator) cacheLookup(ctx context.Context, req TranslateRequest) *models.Result {
	rec, err := t.history.GetCached(ctx, req.SourceText, req.From, req.To)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			t.log.Warn(ctx, "cache lookup failed", "error", err)
		}
		return nil
	}
	return &models.Result{
		TranslatedText: rec.TranslatedText,
		Confidence:     rec.Confidence,
		Method:         models.MethodCached,
		LocalID:        rec.ID,
	}
}

func (t *Translator) oracleLookup(ctx context.Context, req TranslateRequest) *models.Result {
	if !t.oracle.IsConfigured() || !t.prober.Online(ctx) {
		return nil
	}

	octx, cancel := context.WithTimeout(ctx, OracleTimeout)
	translated, err := t.oracle.Translate(octx, req.SourceText, req.From, req.To, req.Context)
	cancel()
	if err != nil || translated == "" {
		t.log.Debug(ctx, "oracle failed, falling through", "error", err)
		return nil
	}

	res := t.persist(ctx, req, translated, confidenceOracle, models.MethodGemini, models.ModeOnline)

	saveReq := remote.SaveTranslationRequest{
		SourceText:     req.SourceText,
		TranslatedText: translated,
		From:           req.From,
		To:             req.To,
		Method:         models.MethodGemini,
		Context:        req.Context,
		UserID:         req.UserID,
		Confidence:     confidenceOracle,
		IsEmergency:    req.Context == models.ContextEmergency,
	}
	remoteID, err := t.remote.SaveTranslation(ctx, saveReq)
	if err != nil {
		t.log.Warn(ctx, "remote write failed, queued for sync", "error", err)
		t.enqueueSave(ctx, saveReq)
	} else {
		res.RemoteID = remoteID
	}
	return res
}

// offlineLookup is the last stage and always produces a result: dataset
// first, local history next, a marked placeholder if both miss.
func (t *Translator) offlineLookup(ctx context.Context, req TranslateRequest) *models.Result {
	if text, ok := dataset.Search(req.SourceText, req.From, req.To); ok {
		return t.persist(ctx, req, text, confidenceOffline, models.MethodTFLite, models.ModeOffline)
	}

	if rec, err := t.history.GetCached(ctx, req.SourceText, req.From, req.To); err == nil {
		return t.persist(ctx, req, rec.TranslatedText, confidenceOffline, models.MethodTFLite, models.ModeOffline)
	}

	res := t.persist(ctx, req, placeholder(req), confidencePlaceholder, models.MethodTFLite, models.ModeOffline)
	return res
}

// placeholder marks a failed lookup so the caller can render something.
// Emergency requests get a canned help phrase instead of an opaque marker.
func placeholder(req TranslateRequest) string {
	if req.Context == models.ContextEmergency {
		if req.To == language.Tamazight {
			return "ⵜⴰⵔⵡⴰ - ⵔⵉⵖ ⵜⵉⵡⵉⵙⵉ"
		}
		return "Emergency - I need help"
	}
	return fmt.Sprintf("[%s] %s", strings.ToUpper(req.To.Code()), req.SourceText)
}

// persist appends the outcome to local history. Rows are timestamped at
// write time. A failed write is logged but does not fail the translation.
func (t *Translator) persist(ctx context.Context, req TranslateRequest, text string, confidence float64, method models.Method, mode models.Mode) *models.Result {
	rec := &models.TranslationRecord{
		SourceText:     req.SourceText,
		TranslatedText: text,
		From:           req.From,
		To:             req.To,
		Timestamp:      t.now(),
		Mode:           mode,
		Context:        req.Context,
		Method:         method,
		Confidence:     confidence,
	}
	id, err := t.history.Save(ctx, rec)
	if err != nil {
		t.log.Error(ctx, "failed to persist translation", "error", err)
	}
	return &models.Result{
		TranslatedText: text,
		Confidence:     confidence,
		Method:         method,
		LocalID:        id,
	}
}

func (t *Translator) enqueueSave(ctx context.Context, saveReq remote.SaveTranslationRequest) {
	payload, err := json.Marshal(saveReq)
	if err != nil {
		t.log.Error(ctx, "failed to encode sync payload", "error", err)
		return
	}
	priority := models.PriorityNormal
	if saveReq.IsEmergency {
		priority = models.PriorityEmergency
	}
	entry := &models.SyncEntry{
		ID:        uuid.NewString(),
		Action:    models.ActionSaveTranslation,
		Payload:   payload,
		Priority:  priority,
		CreatedAt: t.now(),
	}
	if err := t.queue.Enqueue(ctx, entry); err != nil {
		t.log.Error(ctx, "failed to enqueue sync entry", "error", err)
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
