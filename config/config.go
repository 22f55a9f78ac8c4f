// Package config loads Flik settings from a YAML file on top of defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/1Seob/Flik-v2-sub000/core/normalize"
	"github.com/1Seob/Flik-v2-sub000/core/paginate"
	"github.com/1Seob/Flik-v2-sub000/core/sentence"
)

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("invalid configuration")

// Config is the full set of tunables.
type Config struct {
	Pagination Pagination `yaml:"pagination"`
	Sentence   Sentence   `yaml:"sentence"`
	Normalize  Normalize  `yaml:"normalize"`
	Render     Render     `yaml:"render"`
	LogLevel   string     `yaml:"log_level"`
}

// Pagination holds the page capacity model.
type Pagination struct {
	MaxLogical  int `yaml:"max_logical"`
	NewlineCost int `yaml:"newline_cost"`
}

// Sentence holds the sentence boundary tables.
type Sentence struct {
	Terminators string `yaml:"terminators"`
	Closers     string `yaml:"closers"`
}

// Normalize holds paragraph cleaning options.
type Normalize struct {
	NFC        bool   `yaml:"nfc"`
	NullMarker string `yaml:"null_marker"`
}

// Render holds output options.
type Render struct {
	FontPath string `yaml:"font_path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Pagination: Pagination{
			MaxLogical:  paginate.DefaultMaxLogical,
			NewlineCost: paginate.DefaultNewlineCost,
		},
		Sentence: Sentence{
			Terminators: sentence.DefaultTerminators,
			Closers:     sentence.DefaultClosers,
		},
		Normalize: Normalize{NullMarker: normalize.DefaultNullMarker},
		LogLevel:  "info",
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a usable paginator.
func (c *Config) Validate() error {
	p := c.Pagination
	if p.MaxLogical <= 0 {
		return fmt.Errorf("%w: pagination.max_logical must be positive, got %d", ErrInvalid, p.MaxLogical)
	}
	if p.NewlineCost <= 0 {
		return fmt.Errorf("%w: pagination.newline_cost must be positive, got %d", ErrInvalid, p.NewlineCost)
	}
	if p.NewlineCost >= p.MaxLogical {
		return fmt.Errorf("%w: pagination.newline_cost (%d) must be below max_logical (%d)",
			ErrInvalid, p.NewlineCost, p.MaxLogical)
	}
	if c.Sentence.Terminators == "" {
		return fmt.Errorf("%w: sentence.terminators must not be empty", ErrInvalid)
	}
	if c.Normalize.NullMarker != "" {
		if _, err := regexp.Compile(c.Normalize.NullMarker); err != nil {
			return fmt.Errorf("%w: normalize.null_marker: %v", ErrInvalid, err)
		}
	}
	return nil
}

// Normalizer builds the paragraph normalizer described by c.
func (c *Config) Normalizer() (*normalize.TextNormalizer, error) {
	n := normalize.New()
	n.NFC = c.Normalize.NFC
	if c.Normalize.NullMarker != "" && c.Normalize.NullMarker != normalize.DefaultNullMarker {
		pred, err := normalize.NullMarkerPattern(c.Normalize.NullMarker)
		if err != nil {
			return nil, err
		}
		n.Discard = pred
	}
	return n, nil
}

// Paginator builds the paginator described by c.
func (c *Config) Paginator() *paginate.Paginator {
	return paginate.New(
		c.Pagination.MaxLogical,
		c.Pagination.NewlineCost,
		sentence.New(c.Sentence.Terminators, c.Sentence.Closers),
	)
}
