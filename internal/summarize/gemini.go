package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	DefaultGeminiModel   = "gemini-1.5-flash"
	DefaultTimeout       = 45 * time.Second

	maxResponseBytes = 8 << 20
	maxErrorBody     = 512
)

type GeminiOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

func (o GeminiOptions) withDefaults() GeminiOptions {
	if o.Model == "" {
		o.Model = DefaultGeminiModel
	}
	if o.BaseURL == "" {
		o.BaseURL = DefaultGeminiBaseURL
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.HTTPClient == nil {
		o.HTTPClient = &http.Client{}
	}
	return o
}

// GeminiREST calls generateContent over plain HTTP.
type GeminiREST struct {
	opts GeminiOptions
}

func NewGeminiREST(opts GeminiOptions) (*GeminiREST, error) {
	if opts.APIKey == "" {
		return nil, errors.New("missing GEMINI_API_KEY")
	}
	return &GeminiREST{opts: opts.withDefaults()}, nil
}

func (g *GeminiREST) endpoint() string {
	return g.opts.BaseURL + "/v1beta/models/" + url.PathEscape(g.opts.Model) + ":generateContent"
}

func (g *GeminiREST) Generate(ctx context.Context, prompt string) (Envelope, error) {
	ctx, cancel := context.WithTimeout(ctx, g.opts.Timeout)
	defer cancel()

	b, err := json.Marshal(newGenerateRequest(prompt))
	if err != nil {
		return Envelope{}, fail(ErrTransport, "encode request", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint(), bytes.NewReader(b))
	if err != nil {
		return Envelope{}, fail(ErrTransport, "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// never in the query string; url.Error would print it
	req.Header.Set("x-goog-api-key", g.opts.APIKey)

	resp, err := g.opts.HTTPClient.Do(req)
	if err != nil {
		return Envelope{}, fail(ErrTransport, "call model", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Envelope{}, fail(ErrTransport, "read response", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Envelope{}, fail(ErrTransport, "call model", &StatusError{Code: resp.StatusCode, Body: snippet(body)})
	}

	var raw generateResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return EnvelopeShapeError("response is not a json envelope: " + err.Error()), nil
	}
	return raw.envelope(), nil
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > maxErrorBody {
		cut := maxErrorBody
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "..."
	}
	return s
}
