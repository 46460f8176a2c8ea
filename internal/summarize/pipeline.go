package summarize

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/MalithGihan/taxnotice-service/internal/ingest"
	"github.com/MalithGihan/taxnotice-service/pkg/types"
)

type Extractor interface {
	ExtractText(data []byte) (string, error)
}

// Model sends one prompt and unwraps the response envelope. Transport
// failures are errors; a malformed envelope is an Envelope, not an error.
type Model interface {
	Generate(ctx context.Context, prompt string) (Envelope, error)
}

type Config struct {
	Template  PromptTemplate
	Model     Model
	Extractor Extractor
	Logger    *slog.Logger
}

// Pipeline turns PDF bytes into a NoticeSummary. It holds only its Config,
// which is never modified after New, so one Pipeline serves concurrent calls.
type Pipeline struct {
	cfg Config
}

func New(cfg Config) (*Pipeline, error) {
	if cfg.Model == nil {
		return nil, errors.New("summarize: model is required")
	}
	if cfg.Extractor == nil {
		cfg.Extractor = ingest.PDFExtractor{}
	}
	if cfg.Template.IsZero() {
		cfg.Template = DefaultTemplate()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &Pipeline{cfg: cfg}, nil
}

func (p *Pipeline) TemplateVersion() string { return p.cfg.Template.Version }

func (p *Pipeline) Extract(pdf []byte) (string, error) {
	text, err := p.cfg.Extractor.ExtractText(pdf)
	if err != nil {
		return "", fail(ErrExtraction, "extract text", err)
	}
	return text, nil
}

func (p *Pipeline) Prompt(text string) string {
	return p.cfg.Template.Build(text)
}

// Summarize runs the model stages on already extracted text.
func (p *Pipeline) Summarize(ctx context.Context, text string) (types.NoticeSummary, error) {
	env, err := p.cfg.Model.Generate(ctx, p.Prompt(text))
	if err != nil {
		if KindOf(err) == nil {
			err = fail(ErrTransport, "call model", err)
		}
		return types.NoticeSummary{}, err
	}
	raw, err := env.Text()
	if err != nil {
		return types.NoticeSummary{}, err
	}
	return ParseSummary(raw)
}

// Run is the whole pipeline. On failure the summary is the zero value and the
// error matches one of the four failure kinds.
func (p *Pipeline) Run(ctx context.Context, pdf []byte) (types.NoticeSummary, error) {
	start := time.Now()
	log := p.cfg.Logger.With("template", p.cfg.Template.Version, "pdf_bytes", len(pdf))

	sum, err := p.run(ctx, pdf)
	if err != nil {
		log.WarnContext(ctx, "notice summary failed", "kind", KindOf(err), "err", err, "elapsed", time.Since(start))
		return types.NoticeSummary{}, err
	}
	log.InfoContext(ctx, "notice summarized",
		"notice_type", sum.NoticeType,
		"breakdown_items", len(sum.Breakdown),
		"elapsed", time.Since(start))
	return sum, nil
}

func (p *Pipeline) run(ctx context.Context, pdf []byte) (types.NoticeSummary, error) {
	text, err := p.Extract(pdf)
	if err != nil {
		return types.NoticeSummary{}, err
	}
	if strings.TrimSpace(text) == "" {
		return types.NoticeSummary{}, fail(ErrExtraction, "extract text", ErrNoText)
	}
	return p.Summarize(ctx, text)
}

const pingPrompt = `Return ONLY valid JSON: {"ok":true}`

// Ping makes one minimal model call and reports whether an envelope with
// text came back.
func (p *Pipeline) Ping(ctx context.Context) error {
	env, err := p.cfg.Model.Generate(ctx, pingPrompt)
	if err != nil {
		return err
	}
	_, err = env.Text()
	return err
}
