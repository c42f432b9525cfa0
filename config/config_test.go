package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/API4KBs/kmdp-models-sub004/errors"
	"github.com/API4KBs/kmdp-models-sub004/pkg/cache"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Codec.IncludeVersion)
	assert.True(t, cfg.Catalogue.IncludeDefaults)
	assert.Equal(t, cache.StrategyLRU, cfg.Codec.Cache.Strategy)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"upper case level normalized", func(c *Config) { c.Logging.Level = "DEBUG" }, false},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, true},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"no catalogue at all", func(c *Config) { c.Catalogue.IncludeDefaults = false }, true},
		{"explicit catalogue only", func(c *Config) {
			c.Catalogue.IncludeDefaults = false
			c.Catalogue.Paths = []string{"terms.yaml"}
		}, false},
		{"blank catalogue path", func(c *Config) { c.Catalogue.Paths = []string{" "} }, true},
		{"bad cache", func(c *Config) { c.Codec.Cache.MaxSize = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalid(err), "expected invalid-class error, got %v", err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Logging, cfg.Logging)
	assert.Equal(t, Default().Codec, cfg.Codec)
}

func TestLoad_JSONFile(t *testing.T) {
	path := writeFile(t, "kmdp.json", `{
		"catalogue": {"paths": ["a.yaml", "b.yaml"], "include_defaults": false},
		"codec": {"include_version": false, "cache": {"enabled": true, "strategy": "simple"}},
		"logging": {"level": "warn", "format": "text"}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.yaml", "b.yaml"}, cfg.Catalogue.Paths)
	assert.False(t, cfg.Catalogue.IncludeDefaults)
	assert.False(t, cfg.Codec.IncludeVersion)
	assert.Equal(t, cache.StrategySimple, cfg.Codec.Cache.Strategy)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.True(t, cfg.Metrics.Enabled, "unset keys keep defaults")
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeFile(t, "kmdp.yaml", `
logging:
  level: debug
metrics:
  enabled: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("KMDP_LOGGING_LEVEL", "error")
	t.Setenv("KMDP_CODEC_INCLUDE_VERSION", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.False(t, cfg.Codec.IncludeVersion)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("wrong extension", func(t *testing.T) {
		path := writeFile(t, "kmdp.toml", "x = 1")
		_, err := Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsInvalid(err))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeFile(t, "kmdp.json", `{"logging": {"level": "loud"}}`)
		_, err := Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsInvalid(err))
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeFile(t, "kmdp.json", `{"logging": `)
		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestSafeReadFile(t *testing.T) {
	path := writeFile(t, "terms.YAML", "terms: []")

	data, err := SafeReadFile(path, ".yaml", ".yml")
	require.NoError(t, err)
	assert.Equal(t, "terms: []", string(data))

	_, err = SafeReadFile(path, ".json")
	assert.Error(t, err)

	_, err = SafeReadFile(t.TempDir())
	assert.Error(t, err, "directories are rejected")

	_, err = SafeReadFile("")
	assert.Error(t, err)
}
