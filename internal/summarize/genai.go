package summarize

import (
	"context"
	"errors"
	"fmt"
	"time"

	genai "google.golang.org/genai"
)

// GeminiSDK performs the same generateContent call through the Google GenAI SDK.
type GeminiSDK struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiSDK(ctx context.Context, opts GeminiOptions) (*GeminiSDK, error) {
	if opts.APIKey == "" {
		return nil, errors.New("missing GEMINI_API_KEY")
	}
	baseURL := opts.BaseURL
	opts = opts.withDefaults()

	cfg := &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL + "/"}
	}
	c, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiSDK{client: c, model: opts.Model, timeout: opts.Timeout}, nil
}

func (g *GeminiSDK) Generate(ctx context.Context, prompt string) (Envelope, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	res, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}, nil)
	if err != nil {
		return Envelope{}, fail(ErrTransport, "call model", err)
	}
	return sdkEnvelope(res), nil
}

// sdkEnvelope maps an SDK response onto the same Envelope. The SDK decodes a
// missing text and "" alike, so an empty first part is a shape error here
// while GeminiREST passes "" on to parsing.
func sdkEnvelope(res *genai.GenerateContentResponse) Envelope {
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0] == nil {
		return EnvelopeShapeError("no candidates")
	}
	c := res.Candidates[0].Content
	if c == nil {
		return EnvelopeShapeError("first candidate has no content")
	}
	if len(c.Parts) == 0 || c.Parts[0] == nil {
		return EnvelopeShapeError("first candidate has no parts")
	}
	if c.Parts[0].Text == "" {
		return EnvelopeShapeError("first part has no text")
	}
	return EnvelopeOK(c.Parts[0].Text)
}
