package config

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/API4KBs/kmdp-models-sub004/errors"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "KMDP"

// Load reads configuration from path (JSON or YAML) layered over Default()
// and KMDP_* environment variables. An empty path uses defaults and the
// environment only.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		data, err := SafeReadFile(path, ".json", ".yaml", ".yml")
		if err != nil {
			return nil, errors.WrapInvalid(err, "config", "Load", "read config file")
		}
		v.SetConfigType(strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")))
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.WrapInvalid(err, "config", "Load", "parse config file")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapInvalid(err, "config", "Load", "decode config")
	}

	// viper reports a comma separated env value as a single string
	if len(cfg.Catalogue.Paths) == 1 && strings.Contains(cfg.Catalogue.Paths[0], ",") {
		cfg.Catalogue.Paths = strings.Split(cfg.Catalogue.Paths[0], ",")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()

	def := Default()
	v.SetDefault("catalogue.paths", def.Catalogue.Paths)
	v.SetDefault("catalogue.include_defaults", def.Catalogue.IncludeDefaults)
	v.SetDefault("codec.include_version", def.Codec.IncludeVersion)
	v.SetDefault("codec.cache.enabled", def.Codec.Cache.Enabled)
	v.SetDefault("codec.cache.strategy", string(def.Codec.Cache.Strategy))
	v.SetDefault("codec.cache.max_size", def.Codec.Cache.MaxSize)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("metrics.enabled", def.Metrics.Enabled)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}
