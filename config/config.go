package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/API4KBs/kmdp-models-sub004/errors"
	"github.com/API4KBs/kmdp-models-sub004/pkg/cache"
)

// Config represents the complete module configuration
type Config struct {
	Catalogue CatalogueConfig `json:"catalogue" mapstructure:"catalogue"`
	Codec     CodecConfig     `json:"codec" mapstructure:"codec"`
	Logging   LoggingConfig   `json:"logging" mapstructure:"logging"`
	Metrics   MetricsConfig   `json:"metrics" mapstructure:"metrics"`
}

// CatalogueConfig selects the terms known to the codec and the resolver
type CatalogueConfig struct {
	Paths           []string `json:"paths,omitempty" mapstructure:"paths"`
	IncludeDefaults bool     `json:"include_defaults" mapstructure:"include_defaults"`
}

// CodecConfig tunes the representation codec
type CodecConfig struct {
	IncludeVersion bool         `json:"include_version" mapstructure:"include_version"`
	Cache          cache.Config `json:"cache" mapstructure:"cache"`
}

// LoggingConfig selects the slog handler
type LoggingConfig struct {
	Level  string `json:"level" mapstructure:"level"`
	Format string `json:"format" mapstructure:"format"`
}

// MetricsConfig toggles Prometheus collection
type MetricsConfig struct {
	Enabled bool `json:"enabled" mapstructure:"enabled"`
}

// Default returns the configuration used when no file is supplied
func Default() *Config {
	return &Config{
		Catalogue: CatalogueConfig{IncludeDefaults: true},
		Codec: CodecConfig{
			IncludeVersion: true,
			Cache:          cache.DefaultConfig(),
		},
		Logging: LoggingConfig{Level: "info", Format: "json"},
		Metrics: MetricsConfig{Enabled: true},
	}
}

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"json", "text"}
)

// Validate checks if the config is valid and normalizes case-insensitive fields
func (c *Config) Validate() error {
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	c.Logging.Format = strings.ToLower(c.Logging.Format)

	if !contains(validLevels, c.Logging.Level) {
		return errors.WrapInvalid(
			fmt.Errorf("%w: logging.level %q", errors.ErrInvalidConfig, c.Logging.Level),
			"Config", "Validate", "logging validation")
	}
	if !contains(validFormats, c.Logging.Format) {
		return errors.WrapInvalid(
			fmt.Errorf("%w: logging.format %q", errors.ErrInvalidConfig, c.Logging.Format),
			"Config", "Validate", "logging validation")
	}

	if !c.Catalogue.IncludeDefaults && len(c.Catalogue.Paths) == 0 {
		return errors.WrapInvalid(
			fmt.Errorf("%w: catalogue.paths is required when include_defaults is false", errors.ErrMissingConfig),
			"Config", "Validate", "catalogue validation")
	}
	for i, p := range c.Catalogue.Paths {
		if strings.TrimSpace(p) == "" {
			return errors.WrapInvalid(
				fmt.Errorf("%w: catalogue.paths[%d] is empty", errors.ErrInvalidConfig, i),
				"Config", "Validate", "catalogue validation")
		}
	}

	if err := c.Codec.Cache.Validate(); err != nil {
		return errors.Wrap(err, "Config", "Validate", "codec.cache validation")
	}

	return nil
}

// ToJSON converts config to JSON string for debugging
func (c *Config) ToJSON() (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
