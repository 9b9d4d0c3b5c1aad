package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mindful-ai-dude/multilingo/internal/common"
	"github.com/mindful-ai-dude/multilingo/internal/language"
	"github.com/mindful-ai-dude/multilingo/internal/models"
)

const (
	// DefaultModel is tuned for translation quality on low-resource
	// languages.
	DefaultModel = "gemma-3-12b-it"

	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	requestTimeout = 10 * time.Second
)

// Gemini calls the Generative Language API over REST.
type Gemini struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// GeminiOption adjusts a Gemini client.
type GeminiOption func(*Gemini)

// WithBaseURL points the client at a different endpoint. Tests use it.
func WithBaseURL(url string) GeminiOption {
	return func(g *Gemini) { g.baseURL = url }
}

// WithModel overrides the default model.
func WithModel(model string) GeminiOption {
	return func(g *Gemini) { g.model = model }
}

// NewGemini builds an oracle for the given API key. An empty key yields an
// unconfigured oracle; Translate on it always fails.
func NewGemini(apiKey string, opts ...GeminiOption) *Gemini {
	g := &Gemini{
		apiKey:  apiKey,
		model:   DefaultModel,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gemini) IsConfigured() bool {
	return g.apiKey != ""
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (g *Gemini) Translate(ctx context.Context, text string, from, to language.Language, tctx models.TranslationContext) (string, error) {
	if !g.IsConfigured() {
		return "", fmt.Errorf("no API key: %w", common.ErrOracleUnavailable)
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(text, from, to, tctx)}}}},
		GenerationConfig: generationConfig{
			// low temperature keeps translations consistent between calls
			Temperature:     0.3,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 1024,
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("oracle request: %v: %w", err, common.ErrOracleUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("oracle responded %s: %w", resp.Status, common.ErrOracleUnavailable)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode oracle response: %v: %w", err, common.ErrOracleUnavailable)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("oracle returned no candidates: %w", common.ErrOracleUnavailable)
	}

	translation := cleanup(out.Candidates[0].Content.Parts[0].Text)
	if translation == "" {
		return "", fmt.Errorf("oracle returned empty text: %w", common.ErrOracleUnavailable)
	}
	return translation, nil
}

// cleanup strips whitespace and one layer of wrapping quotes the model
// sometimes adds despite being told not to.
func cleanup(s string) string {
	s = strings.TrimSpace(s)
	for _, q := range []string{`"`, `'`} {
		if len(s) >= 2 && strings.HasPrefix(s, q) && strings.HasSuffix(s, q) {
			return strings.TrimSuffix(strings.TrimPrefix(s, q), q)
		}
	}
	return s
}

// buildPrompt assembles a context-aware translation prompt. Tamazight pairs
// get extra instructions so the model answers in Tifinagh script.
func buildPrompt(text string, from, to language.Language, tctx models.TranslationContext) string {
	var b strings.Builder

	switch tctx {
	case models.ContextEmergency:
		b.WriteString("This is an emergency/medical translation. Prioritize accuracy and clarity for urgent situations. ")
	case models.ContextGovernment:
		b.WriteString("This is an official/government translation. Use formal, official terminology appropriate for legal and administrative contexts. ")
	}

	if from == language.Tamazight || to == language.Tamazight {
		b.WriteString(`
Important: Tamazight (ⵜⴰⵎⴰⵣⵉⵖⵜ) is the indigenous Berber language of Morocco, officially recognized in the 2011 Constitution.
- Use Tifinagh script (ⵜⵉⴼⵉⵏⴰⵖ) when writing in Tamazight
- Focus on Moroccan Tamazight variants (Tachelhit, Tamazight, Tarifit)
- Preserve cultural context and meaning
- For emergency contexts, ensure translations are immediately understandable to Moroccan Berber speakers
`)
	}

	fmt.Fprintf(&b, "\nTranslate the following text from %s to %s:\n\n%q\n\n", from.PromptName(), to.PromptName(), text)
	fmt.Fprintf(&b, "Provide only the translation without any explanations or additional text. Ensure the translation is:\n")
	fmt.Fprintf(&b, "1. Culturally appropriate for Morocco\n2. Accurate and natural-sounding\n3. Appropriate for the context (%s)\n", tctx)
	if to == language.Tamazight {
		b.WriteString("4. Written in Tifinagh script when possible")
	}
	return b.String()
}
