// Package config loads and validates the module configuration.
//
// Configuration comes from an optional JSON or YAML file and KMDP_*
// environment variables, layered over Default():
//
//	{
//	  "catalogue": {"paths": ["catalogues/local.yaml"], "include_defaults": true},
//	  "codec": {"include_version": true, "cache": {"enabled": true, "strategy": "lru", "max_size": 1024}},
//	  "logging": {"level": "info", "format": "json"},
//	  "metrics": {"enabled": true}
//	}
//
// Environment variables use underscores for nesting, e.g.
// KMDP_LOGGING_LEVEL=debug or KMDP_CODEC_INCLUDE_VERSION=false.
//
// Files read from disk (configuration and catalogue documents) go through
// SafeReadFile, which bounds their size and refuses non-regular files.
package config
