package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/MalithGihan/taxnotice-service/internal/config"
	"github.com/MalithGihan/taxnotice-service/internal/summarize"
)

func rootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "taxnotice",
		Short:         "Summarize IRS tax notice PDFs with an LLM",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "optional YAML config file")

	load := func() (config.Config, *slog.Logger, error) {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return cfg, nil, err
		}
		return cfg, cfg.Log.NewLogger(os.Stderr), nil
	}

	root.AddCommand(serveCmd(load))
	root.AddCommand(summarizeCmd(load))
	root.AddCommand(extractCmd())
	root.AddCommand(promptCmd())
	return root
}

type loader func() (config.Config, *slog.Logger, error)

// newModel picks the model backend named by the config.
func newModel(ctx context.Context, cfg config.Config) (summarize.Model, error) {
	opts := summarize.GeminiOptions{
		APIKey:  cfg.Model.APIKey,
		Model:   cfg.Model.Name,
		BaseURL: cfg.Model.BaseURL,
		Timeout: cfg.Model.Timeout,
	}
	switch cfg.Model.Provider {
	case config.ProviderGemini:
		return summarize.NewGeminiREST(opts)
	case config.ProviderGenAI:
		return summarize.NewGeminiSDK(ctx, opts)
	case config.ProviderMock:
		return summarize.MockModel{Template: summarize.DefaultTemplate()}, nil
	}
	return nil, fmt.Errorf("unknown model provider %q", cfg.Model.Provider)
}

func newPipeline(ctx context.Context, cfg config.Config, log *slog.Logger) (*summarize.Pipeline, error) {
	m, err := newModel(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return summarize.New(summarize.Config{
		Template: summarize.DefaultTemplate(),
		Model:    m,
		Logger:   log.With("component", "pipeline"),
	})
}
