package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/cchooks/render"
)

// Config holds all client hook configuration
type Config struct {
	Logging Logging `yaml:"logging"`
	Debug   Debug   `yaml:"debug"`
	Render  Render  `yaml:"render"`
	Storage Storage `yaml:"storage"`
}

// Logging configures the zap logger
type Logging struct {
	Level       string `yaml:"level" env:"CCHOOKS_LOG_LEVEL"` // debug, info, warn, error
	File        string `yaml:"file" env:"CCHOOKS_LOG_FILE"`   // empty = stderr
	Development bool   `yaml:"development" env:"CCHOOKS_LOG_DEVELOPMENT"`
}

// Debug configures the debug overlay
type Debug struct {
	Overlay bool `yaml:"overlay" env:"CCHOOKS_DEBUG_OVERLAY"`
}

// Render configures renderer stage order
type Render struct {
	HighlightOrder []string `yaml:"highlight_order" env:"CCHOOKS_HIGHLIGHT_ORDER" envSeparator:","`
}

// Storage locates the local server storage root
type Storage struct {
	Dir string `yaml:"dir" env:"CCHOOKS_STORAGE_DIR"`
}

var ErrInvalid = errors.New("invalid config")

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Logging: Logging{Level: "info"},
		Render: Render{
			HighlightOrder: append([]string(nil), render.DefaultHighlightOrder...),
		},
	}
}

// Load reads path over the defaults, then applies environment overrides
// An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields whose environment variable is set
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks values that cannot be checked by type
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}
	if len(c.Render.HighlightOrder) == 0 {
		return fmt.Errorf("%w: render.highlight_order is empty", ErrInvalid)
	}
	seen := make(map[string]bool, len(c.Render.HighlightOrder))
	for _, name := range c.Render.HighlightOrder {
		if name == "" || seen[name] {
			return fmt.Errorf("%w: render.highlight_order entry %q", ErrInvalid, name)
		}
		seen[name] = true
	}
	return nil
}
