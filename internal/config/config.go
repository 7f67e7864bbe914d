package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML-file configuration. Every field has a default;
// the API credential is deliberately absent, it is read from the environment
// at request time.
type Config struct {
	ListenAddr   string        `yaml:"listen_addr"`
	GridPageSize int           `yaml:"grid_page_size"`
	Charts       ChartsConfig  `yaml:"charts"`
	Styling      StylingConfig `yaml:"styling"`
}

type ChartsConfig struct {
	Width  string `yaml:"width"`
	Height string `yaml:"height"`
}

type StylingConfig struct {
	Model          string `yaml:"model"`
	MaxTokens      int    `yaml:"max_tokens"`
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

func (s StylingConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		ListenAddr:   ":8080",
		GridPageSize: 10,
		Charts: ChartsConfig{
			Width:  "100%",
			Height: "420px",
		},
		Styling: StylingConfig{
			Model:          "claude-sonnet-4-5-20250929",
			MaxTokens:      1000,
			BaseURL:        "https://api.anthropic.com/v1",
			TimeoutSeconds: 60,
		},
	}
}

// Load reads a YAML config file, rejecting unknown fields, and fills every
// omitted field with its default.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg = applyDefaults(cfg)
	if err := validate(cfg); err != nil {
		return Config{}, fmt.Errorf("validate %s: %w", path, err)
	}
	return cfg, nil
}

func applyDefaults(cfg Config) Config {
	def := Default()
	if strings.TrimSpace(cfg.ListenAddr) == "" {
		cfg.ListenAddr = def.ListenAddr
	}
	if cfg.GridPageSize == 0 {
		cfg.GridPageSize = def.GridPageSize
	}
	if strings.TrimSpace(cfg.Charts.Width) == "" {
		cfg.Charts.Width = def.Charts.Width
	}
	if strings.TrimSpace(cfg.Charts.Height) == "" {
		cfg.Charts.Height = def.Charts.Height
	}
	if strings.TrimSpace(cfg.Styling.Model) == "" {
		cfg.Styling.Model = def.Styling.Model
	}
	if cfg.Styling.MaxTokens == 0 {
		cfg.Styling.MaxTokens = def.Styling.MaxTokens
	}
	if strings.TrimSpace(cfg.Styling.BaseURL) == "" {
		cfg.Styling.BaseURL = def.Styling.BaseURL
	}
	if cfg.Styling.TimeoutSeconds == 0 {
		cfg.Styling.TimeoutSeconds = def.Styling.TimeoutSeconds
	}
	return cfg
}

func validate(cfg Config) error {
	if cfg.GridPageSize < 1 {
		return fmt.Errorf("grid_page_size must be positive, got %d", cfg.GridPageSize)
	}
	if cfg.Styling.MaxTokens < 1 {
		return fmt.Errorf("styling.max_tokens must be positive, got %d", cfg.Styling.MaxTokens)
	}
	if cfg.Styling.TimeoutSeconds < 1 {
		return fmt.Errorf("styling.timeout_seconds must be positive, got %d", cfg.Styling.TimeoutSeconds)
	}
	if !strings.HasPrefix(cfg.Styling.BaseURL, "http://") && !strings.HasPrefix(cfg.Styling.BaseURL, "https://") {
		return fmt.Errorf("styling.base_url must be an http(s) URL, got %q", cfg.Styling.BaseURL)
	}
	return nil
}
