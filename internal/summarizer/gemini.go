package summarizer

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"docsummary/internal/config"
)

// Gemini summarizes files with a Google Gemini model through langchaingo.
// It is safe for concurrent use by multiple goroutines.
type Gemini struct {
	llm   llms.Model
	model string
}

var _ Summarizer = (*Gemini)(nil)

// NewGemini wraps an already constructed model. Tests pass a fake llms.Model.
func NewGemini(llm llms.Model, model string) *Gemini {
	return &Gemini{llm: llm, model: model}
}

// NewGeminiFromConfig builds the Google AI client for cfg.
func NewGeminiFromConfig(ctx context.Context, cfg config.GeminiConfig) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, config.ErrAPIKeyMissing
	}

	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(&apiKeyTransport{
			key:  cfg.APIKey,
			base: http.DefaultTransport,
		}),
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithHTTPClient(httpClient),
		googleai.WithDefaultModel(cfg.Model),
		googleai.WithDefaultMaxTokens(cfg.MaxTokens),
	)
	if err != nil {
		return nil, fmt.Errorf("create google ai client: %w", err)
	}
	return NewGemini(llm, cfg.Model), nil
}

// SummarizeText sends the prompt followed by the extracted text as one text part.
func (g *Gemini) SummarizeText(ctx context.Context, text string) (string, error) {
	content := fmt.Sprintf("%s\n\nContent:\n%s", Prompt, text)
	return g.generate(ctx, llms.TextParts(llms.ChatMessageTypeHuman, content))
}

// SummarizeFile sends the payload tagged with mimeType, followed by the prompt.
func (g *Gemini) SummarizeFile(ctx context.Context, data []byte, mimeType string) (string, error) {
	if len(data) == 0 {
		return "", ErrNoData
	}
	msg := llms.MessageContent{
		Role: llms.ChatMessageTypeHuman,
		Parts: []llms.ContentPart{
			llms.BinaryPart(mimeType, data),
			llms.TextPart(Prompt),
		},
	}
	return g.generate(ctx, msg)
}

func (g *Gemini) generate(ctx context.Context, msg llms.MessageContent) (string, error) {
	resp, err := g.llm.GenerateContent(ctx, []llms.MessageContent{msg}, llms.WithModel(g.model))
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Content, nil
}

// apiKeyTransport authenticates requests made through a custom HTTP client.
// The Google client libraries skip their own key handling when one is supplied.
type apiKeyTransport struct {
	key  string
	base http.RoundTripper
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("x-goog-api-key", t.key)
	return t.base.RoundTrip(r)
}
