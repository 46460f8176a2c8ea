package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ProviderGemini = "gemini" // raw REST
	ProviderGenAI  = "genai"  // Google GenAI SDK
	ProviderMock   = "mock"
)

type Config struct {
	Port           string   `yaml:"port"`
	DataRoot       string   `yaml:"data_root"`
	MaxUploadMB    int64    `yaml:"max_upload_mb"`
	AllowedOrigins []string `yaml:"cors_origins"`
	Log            Log      `yaml:"log"`
	Model          Model    `yaml:"model"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text|json
}

type Model struct {
	Provider string        `yaml:"provider"`
	APIKey   string        `yaml:"api_key"`
	Name     string        `yaml:"name"`
	BaseURL  string        `yaml:"base_url"`
	Timeout  time.Duration `yaml:"timeout"`
}

func Default() Config {
	return Config{
		Port:           "8081",
		DataRoot:       "./data",
		MaxUploadMB:    16,
		AllowedOrigins: []string{"*"},
		Log:            Log{Level: "info", Format: "text"},
		Model: Model{
			Provider: ProviderGemini,
			Name:     "gemini-1.5-flash",
			Timeout:  45 * time.Second,
		},
	}
}

// Load layers defaults, an optional YAML file and the environment, in that
// order. A .env file in the working directory is loaded into the
// environment first; a missing one is not an error.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	c.Port = getenv("PORT", c.Port)
	c.DataRoot = getenv("DATA_ROOT", c.DataRoot)
	c.Log.Level = getenv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getenv("LOG_FORMAT", c.Log.Format)
	c.Model.Provider = strings.ToLower(getenv("MODEL_PROVIDER", c.Model.Provider))
	c.Model.APIKey = getenv("GEMINI_API_KEY", c.Model.APIKey)
	c.Model.Name = getenv("GEMINI_MODEL", c.Model.Name)
	c.Model.BaseURL = getenv("GEMINI_BASE_URL", c.Model.BaseURL)

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("MODEL_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("MODEL_TIMEOUT: %w", err)
		}
		c.Model.Timeout = d
	}
	if v := os.Getenv("MAX_UPLOAD_MB"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("MAX_UPLOAD_MB: %w", err)
		}
		c.MaxUploadMB = n
	}
	return nil
}

func (c Config) Validate() error {
	var errs []error
	switch c.Model.Provider {
	case ProviderGemini, ProviderGenAI:
		if c.Model.APIKey == "" {
			errs = append(errs, errors.New("GEMINI_API_KEY is required for provider "+c.Model.Provider))
		}
	case ProviderMock:
	default:
		errs = append(errs, fmt.Errorf("unknown model provider %q", c.Model.Provider))
	}
	if c.Model.Timeout <= 0 {
		errs = append(errs, errors.New("model timeout must be positive"))
	}
	if c.MaxUploadMB <= 0 {
		errs = append(errs, errors.New("max upload size must be positive"))
	}
	if c.Port == "" {
		errs = append(errs, errors.New("port is required"))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c Config) MaxUploadBytes() int64 { return c.MaxUploadMB << 20 }

func (l Log) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

// NewLogger builds the process logger described by l.
func (l Log) NewLogger(w io.Writer) *slog.Logger {
	lvl, err := l.SlogLevel()
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
