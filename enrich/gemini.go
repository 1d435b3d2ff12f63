package enrich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiSystemPrompt = `You are a medical transcription cleaner.
You receive raw OCR text from a handwritten or printed medical form.
Correct obvious OCR errors, rejoin words broken across lines, and collapse
stray whitespace. Do NOT add, remove, or reorder information, expand
abbreviations, or guess at illegible passages. Return only the corrected
text with no commentary.`

const geminiAttempts = 3

// ErrMissingAPIKey is returned when a GeminiNormalizer is used without a
// configured key.
var ErrMissingAPIKey = errors.New("enrich: gemini api key is empty")

// GeminiNormalizer implements Normalizer on the Gemini generative API.
// Each call opens its own client, so the zero cost of an idle normalizer
// is nothing but the key and model name.
type GeminiNormalizer struct {
	apiKey string
	model  string
	logger *slog.Logger
}

// NewGeminiNormalizer creates a normalizer for the given API key and
// model name, e.g. "gemini-1.5-flash".
func NewGeminiNormalizer(apiKey, model string) *GeminiNormalizer {
	return &GeminiNormalizer{
		apiKey: strings.TrimSpace(apiKey),
		model:  strings.TrimSpace(model),
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithLogger sets the logger and returns the normalizer for chaining.
func (g *GeminiNormalizer) WithLogger(logger *slog.Logger) *GeminiNormalizer {
	if logger != nil {
		g.logger = logger
	}
	return g
}

// Normalize sends the recognized text to Gemini for cleanup. Transient
// failures are retried with a short backoff; the text is returned as the
// model produced it, minus surrounding code fences.
func (g *GeminiNormalizer) Normalize(ctx context.Context, freeText string) (string, error) {
	if g.apiKey == "" {
		return "", ErrMissingAPIKey
	}
	if strings.TrimSpace(freeText) == "" {
		return freeText, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("enrich: gemini client: %w", err)
	}
	defer client.Close()

	m := client.GenerativeModel(g.model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature: ptrFloat32(0),
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(geminiSystemPrompt)},
	}

	var lastErr error
	for attempt := 1; attempt <= geminiAttempts; attempt++ {
		resp, err := m.GenerateContent(ctx, genai.Text(freeText))
		if err != nil {
			lastErr = err
			g.logger.Warn("gemini attempt failed", "attempt", attempt, "error", err)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Duration(attempt) * 300 * time.Millisecond):
			}
			continue
		}
		text := firstText(resp)
		if text == "" {
			return "", errors.New("enrich: gemini returned empty response")
		}
		return stripCodeFences(strings.TrimSpace(text)), nil
	}
	return "", fmt.Errorf("enrich: gemini normalize: %w", lastErr)
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

// stripCodeFences removes a surrounding ``` block if the model wrapped
// its answer in one.
func stripCodeFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	trimmed := strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(trimmed, '\n'); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

func ptrFloat32(v float32) *float32 { return &v }
