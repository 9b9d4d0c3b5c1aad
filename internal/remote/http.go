package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mindful-ai-dude/multilingo/internal/common"
	"github.com/mindful-ai-dude/multilingo/internal/language"
	"github.com/mindful-ai-dude/multilingo/internal/models"
)

// DefaultTimeout bounds every remote store call.
const DefaultTimeout = 10 * time.Second

// HTTPStore talks JSON to the hosted collaboration backend. All requests carry
// the device identity token as a bearer credential.
type HTTPStore struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPStore builds a store for the given endpoint. token is the device
// identity JWT.
func NewHTTPStore(baseURL, token string) *HTTPStore {
	return &HTTPStore{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
}

func (s *HTTPStore) Ping(ctx context.Context) error {
	return s.doGET(ctx, "/api/health", nil, nil)
}

func (s *HTTPStore) GetRecentTranslations(ctx context.Context, q RecentQuery) ([]Translation, error) {
	params := url.Values{}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Context != "" {
		params.Set("context", string(q.Context))
	}

	var wires []translationWire
	if err := s.doGET(ctx, "/api/translations", params, &wires); err != nil {
		return nil, err
	}

	out := make([]Translation, 0, len(wires))
	for _, w := range wires {
		t, err := w.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *HTTPStore) SaveTranslation(ctx context.Context, req SaveTranslationRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("invalid translation: %w", err)
	}

	body := translationWire{
		SourceText:        req.SourceText,
		TranslatedText:    req.TranslatedText,
		SourceLanguage:    string(req.From),
		TargetLanguage:    string(req.To),
		TranslationMethod: string(req.Method),
		Context:           string(req.Context),
		UserID:            req.UserID,
		Region:            req.Region,
		Confidence:        req.Confidence,
		IsEmergency:       req.IsEmergency,
	}
	var resp idResponse
	if err := s.doPOST(ctx, "/api/translations", body, &resp); err != nil {
		return "", err
	}
	if resp.ID == "" {
		return "", fmt.Errorf("save translation: missing id: %w", common.ErrRemoteReadCorrupt)
	}
	return resp.ID, nil
}

func (s *HTTPStore) VerifyTranslation(ctx context.Context, req VerifyRequest) error {
	body := map[string]any{
		"translationId": req.TranslationID,
		"userId":        req.UserID,
		"isCorrect":     req.IsCorrect,
	}
	if req.SuggestedImprovement != "" {
		body["suggestedImprovement"] = req.SuggestedImprovement
	}
	if req.Expertise != "" {
		body["expertise"] = req.Expertise
	}
	return s.doPOST(ctx, "/api/translations/verify", body, nil)
}

func (s *HTTPStore) GetActiveEmergencyBroadcasts(ctx context.Context, q ActiveQuery) ([]Broadcast, error) {
	params := url.Values{}
	if q.Location != "" {
		params.Set("location", q.Location)
	}
	if q.MinUrgency > 0 {
		params.Set("minUrgency", strconv.Itoa(q.MinUrgency))
	}

	var wires []broadcastWire
	if err := s.doGET(ctx, "/api/broadcasts/active", params, &wires); err != nil {
		return nil, err
	}

	out := make([]Broadcast, 0, len(wires))
	for _, w := range wires {
		b, err := w.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *HTTPStore) CreateEmergencyBroadcast(ctx context.Context, req CreateBroadcastRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("invalid broadcast: %w", err)
	}

	body := broadcastWire{
		Message:        req.Message,
		SourceLanguage: string(req.Source),
		Location:       req.Location,
		UrgencyLevel:   req.UrgencyLevel,
		Category:       req.Category,
		BroadcasterID:  req.BroadcasterID,
	}
	for _, t := range req.Translations {
		body.Translations = append(body.Translations, broadcastTranslationWire{
			Language: string(t.Language),
			Text:     t.Text,
			AudioURL: t.AudioURL,
		})
	}
	if !req.ExpiresAt.IsZero() {
		ms := req.ExpiresAt.UnixMilli()
		body.ExpiresAt = &ms
	}

	var resp idResponse
	if err := s.doPOST(ctx, "/api/broadcasts", body, &resp); err != nil {
		return "", err
	}
	if resp.ID == "" {
		return "", fmt.Errorf("create broadcast: missing id: %w", common.ErrRemoteReadCorrupt)
	}
	return resp.ID, nil
}

func (s *HTTPStore) AcknowledgeEmergencyBroadcast(ctx context.Context, broadcastID, userID string) error {
	body := map[string]string{"broadcastId": broadcastID, "userId": userID}
	return s.doPOST(ctx, "/api/broadcasts/acknowledge", body, nil)
}

func (s *HTTPStore) GetEmergencyPhrases(ctx context.Context, q PhraseQuery) ([]EmergencyPhrase, error) {
	params := url.Values{}
	params.Set("language", string(q.Language))
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	var wires []phraseWire
	if err := s.doGET(ctx, "/api/phrases", params, &wires); err != nil {
		return nil, err
	}

	out := make([]EmergencyPhrase, 0, len(wires))
	for _, w := range wires {
		p, err := w.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *HTTPStore) DeactivateExpiredBroadcasts(ctx context.Context) (int, error) {
	var resp struct {
		DeactivatedCount int `json:"deactivatedCount"`
	}
	if err := s.doPOST(ctx, "/api/broadcasts/deactivate-expired", struct{}{}, &resp); err != nil {
		return 0, err
	}
	return resp.DeactivatedCount, nil
}

func (s *HTTPStore) doGET(ctx context.Context, path string, params url.Values, out any) error {
	u := s.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return s.do(req, out)
}

func (s *HTTPStore) doPOST(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return s.do(req, out)
}

func (s *HTTPStore) do(req *http.Request, out any) error {
	if s.token != "" {
		req.Header.Set(common.AccessTokenHeaderName, "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("remote store request: %v: %w", err, common.ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("remote store: %s: %s", resp.Status, string(b))
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %v: %w", err, common.ErrRemoteReadCorrupt)
	}
	return nil
}

type idResponse struct {
	ID string `json:"id"`
}

type translationWire struct {
	ID                string  `json:"id,omitempty"`
	SourceText        string  `json:"sourceText"`
	TranslatedText    string  `json:"translatedText"`
	SourceLanguage    string  `json:"sourceLanguage"`
	TargetLanguage    string  `json:"targetLanguage"`
	TranslationMethod string  `json:"translationMethod"`
	Context           string  `json:"context,omitempty"`
	UserID            string  `json:"userId,omitempty"`
	Region            string  `json:"region,omitempty"`
	Confidence        float64 `json:"confidence,omitempty"`
	IsVerified        bool    `json:"isVerified"`
	VerificationCount int     `json:"verificationCount"`
	IsEmergency       bool    `json:"isEmergency"`
	Timestamp         int64   `json:"timestamp"`
}

func (w *translationWire) toDomain() (Translation, error) {
	if w.ID == "" || w.SourceText == "" || w.TranslatedText == "" {
		return Translation{}, fmt.Errorf("translation record missing required fields: %w", common.ErrRemoteReadCorrupt)
	}
	from, err := language.ParseLanguage(w.SourceLanguage)
	if err != nil {
		return Translation{}, fmt.Errorf("translation %s: %v: %w", w.ID, err, common.ErrRemoteReadCorrupt)
	}
	to, err := language.ParseLanguage(w.TargetLanguage)
	if err != nil {
		return Translation{}, fmt.Errorf("translation %s: %v: %w", w.ID, err, common.ErrRemoteReadCorrupt)
	}
	return Translation{
		ID:                w.ID,
		SourceText:        w.SourceText,
		TranslatedText:    w.TranslatedText,
		From:              from,
		To:                to,
		Method:            models.Method(w.TranslationMethod),
		Context:           models.ParseContext(w.Context),
		UserID:            w.UserID,
		Region:            w.Region,
		Confidence:        w.Confidence,
		IsVerified:        w.IsVerified,
		VerificationCount: w.VerificationCount,
		IsEmergency:       w.IsEmergency,
		Timestamp:         time.UnixMilli(w.Timestamp),
	}, nil
}

type broadcastTranslationWire struct {
	Language string `json:"language"`
	Text     string `json:"text"`
	AudioURL string `json:"audioUrl,omitempty"`
}

type broadcastWire struct {
	ID             string                     `json:"id,omitempty"`
	Message        string                     `json:"message"`
	SourceLanguage string                     `json:"sourceLanguage"`
	Translations   []broadcastTranslationWire `json:"translations"`
	Location       string                     `json:"location"`
	UrgencyLevel   int                        `json:"urgencyLevel"`
	Category       string                     `json:"category"`
	BroadcasterID  string                     `json:"broadcasterId"`
	Timestamp      int64                      `json:"timestamp,omitempty"`
	ExpiresAt      *int64                     `json:"expiresAt,omitempty"`
	IsActive       bool                       `json:"isActive"`
	ReachCount     int                        `json:"reachCount"`
	AcknowledgedBy []string                   `json:"acknowledgedBy,omitempty"`
}

func (w *broadcastWire) toDomain() (Broadcast, error) {
	if w.ID == "" || w.Message == "" {
		return Broadcast{}, fmt.Errorf("broadcast record missing required fields: %w", common.ErrRemoteReadCorrupt)
	}
	source, err := language.ParseLanguage(w.SourceLanguage)
	if err != nil {
		return Broadcast{}, fmt.Errorf("broadcast %s: %v: %w", w.ID, err, common.ErrRemoteReadCorrupt)
	}

	b := Broadcast{
		ID:             w.ID,
		Message:        w.Message,
		Source:         source,
		Location:       w.Location,
		UrgencyLevel:   w.UrgencyLevel,
		Category:       w.Category,
		BroadcasterID:  w.BroadcasterID,
		Timestamp:      time.UnixMilli(w.Timestamp),
		IsActive:       w.IsActive,
		ReachCount:     w.ReachCount,
		AcknowledgedBy: w.AcknowledgedBy,
	}
	if w.ExpiresAt != nil {
		b.ExpiresAt = time.UnixMilli(*w.ExpiresAt)
	}
	for _, t := range w.Translations {
		lang, err := language.ParseLanguage(t.Language)
		if err != nil {
			return Broadcast{}, fmt.Errorf("broadcast %s: %v: %w", w.ID, err, common.ErrRemoteReadCorrupt)
		}
		b.Translations = append(b.Translations, BroadcastTranslation{
			Language: lang,
			Text:     t.Text,
			AudioURL: t.AudioURL,
		})
	}
	return b, nil
}

type phraseWire struct {
	ID       string `json:"id"`
	Phrase   string `json:"phrase"`
	Language string `json:"language"`
	Category string `json:"category"`
	Priority int    `json:"priority"`
	// the backend schema spells this field without the second "a"
	Tifinagh   string `json:"tifinghScript,omitempty"`
	Region     string `json:"region,omitempty"`
	IsOfficial bool   `json:"isOfficial"`
	UsageCount int    `json:"usageCount"`
}

func (w *phraseWire) toDomain() (EmergencyPhrase, error) {
	if w.ID == "" || w.Phrase == "" {
		return EmergencyPhrase{}, fmt.Errorf("phrase record missing required fields: %w", common.ErrRemoteReadCorrupt)
	}
	lang, err := language.ParseLanguage(w.Language)
	if err != nil {
		return EmergencyPhrase{}, fmt.Errorf("phrase %s: %v: %w", w.ID, err, common.ErrRemoteReadCorrupt)
	}
	return EmergencyPhrase{
		ID:         w.ID,
		Phrase:     w.Phrase,
		Language:   lang,
		Category:   w.Category,
		Priority:   w.Priority,
		Tifinagh:   w.Tifinagh,
		Region:     w.Region,
		IsOfficial: w.IsOfficial,
		UsageCount: w.UsageCount,
	}, nil
}
