// Package config loads the folio CLI configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/gompdf/folio/internal/pagination"
	"github.com/gompdf/folio/internal/theme"
)

// DefaultPath is read when no --config flag is given
const DefaultPath = "folio.yaml"

// Config holds all folio configuration.
type Config struct {
	// Content is a path or URL of the portfolio JSON document
	Content string `yaml:"content" validate:"required"`

	Theme    ThemeConfig    `yaml:"theme"`
	Sections SectionsConfig `yaml:"sections"`
	Preview  PreviewConfig  `yaml:"preview"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ThemeConfig selects the theme preset and an optional override file.
type ThemeConfig struct {
	Preset   string `yaml:"preset" validate:"required"`
	Override string `yaml:"override"`
}

// SectionsConfig locates the persisted section preferences.
type SectionsConfig struct {
	Store string `yaml:"store" validate:"required"`
}

// PreviewConfig configures pagination and painting.
type PreviewConfig struct {
	PageSize string  `yaml:"page_size"`
	Zoom     float64 `yaml:"zoom" validate:"gte=0.5,lte=2"`
	Debounce string  `yaml:"debounce"`
	Output   string  `yaml:"output" validate:"required"`
}

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Content: "portfolio.json",
		Theme: ThemeConfig{
			Preset: "professional",
		},
		Sections: SectionsConfig{
			Store: filepath.Join(".folio", "sections.yaml"),
		},
		Preview: PreviewConfig{
			PageSize: "A4",
			Zoom:     1,
			Debounce: "150ms",
			Output:   "out",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies FOLIO_* environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	strs := map[string]*string{
		"FOLIO_CONTENT":        &c.Content,
		"FOLIO_THEME":          &c.Theme.Preset,
		"FOLIO_THEME_OVERRIDE": &c.Theme.Override,
		"FOLIO_SECTIONS_STORE": &c.Sections.Store,
		"FOLIO_PAGE_SIZE":      &c.Preview.PageSize,
		"FOLIO_DEBOUNCE":       &c.Preview.Debounce,
		"FOLIO_OUTPUT":         &c.Preview.Output,
		"FOLIO_LOG_LEVEL":      &c.Logging.Level,
	}
	for key, field := range strs {
		if v := os.Getenv(key); v != "" {
			*field = v
		}
	}

	if v := os.Getenv("FOLIO_ZOOM"); v != "" {
		zoom, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid FOLIO_ZOOM %q: %w", v, err)
		}
		c.Preview.Zoom = zoom
	}
	return nil
}

// GetDebounce returns the preview debounce delay.
func (c *Config) GetDebounce() time.Duration {
	if d, err := time.ParseDuration(c.Preview.Debounce); err == nil && d >= 0 {
		return d
	}
	return 150 * time.Millisecond
}

// GetPageSize returns the configured page size.
func (c *Config) GetPageSize() pagination.PageSize {
	if ps, err := pagination.PageSizeByName(c.Preview.PageSize); err == nil {
		return ps
	}
	return pagination.PageSizeA4
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var problems []string

	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("invalid config: %w", err)
		}
		for _, fe := range verrs {
			problems = append(problems, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
		}
	}

	if _, err := theme.Preset(c.Theme.Preset); err != nil && c.Theme.Preset != "" {
		problems = append(problems, err.Error())
	}
	if _, err := pagination.PageSizeByName(c.Preview.PageSize); err != nil {
		problems = append(problems, err.Error())
	}
	if d, err := time.ParseDuration(c.Preview.Debounce); c.Preview.Debounce != "" && (err != nil || d < 0) {
		problems = append(problems, fmt.Sprintf("invalid debounce %q", c.Preview.Debounce))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, ", "))
	}
	return nil
}
