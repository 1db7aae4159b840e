// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskApp Contributors

// Package config loads service configuration from defaults, an
// optional YAML file, and command-line flags, in that order.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// Default values.
const (
	DefaultListenAddr      = "127.0.0.1:8000"
	DefaultMetricsAddr     = "127.0.0.1:9100"
	DefaultTokenTTLMinutes = 30
	DefaultLogFormat       = "json"
)

// Config holds the process configuration.
type Config struct {
	ListenAddr      string `koanf:"listen_addr"`
	MetricsAddr     string `koanf:"metrics_addr"`
	DatabaseURL     string `koanf:"database_url"`
	SecretKey       string `koanf:"secret_key"`
	TokenTTLMinutes int    `koanf:"token_ttl_minutes"`
	LogFormat       string `koanf:"log_format"`
}

// Default returns a Config with default values. DatabaseURL and
// SecretKey have no defaults and must come from file, flags, or env.
func Default() Config {
	return Config{
		ListenAddr:      DefaultListenAddr,
		MetricsAddr:     DefaultMetricsAddr,
		TokenTTLMinutes: DefaultTokenTTLMinutes,
		LogFormat:       DefaultLogFormat,
	}
}

// TokenTTL returns the configured token time-to-live.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// Validate checks that the configuration is complete and consistent.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return oops.Code("CONFIG_INVALID").Errorf("listen_addr is required")
	}
	if c.DatabaseURL == "" {
		return oops.Code("CONFIG_INVALID").Errorf("database_url is required (flag, config file, or DATABASE_URL)")
	}
	if c.SecretKey == "" {
		return oops.Code("CONFIG_INVALID").Errorf("secret_key is required (config file or SECRET_KEY)")
	}
	if c.TokenTTLMinutes <= 0 {
		return oops.Code("CONFIG_INVALID").Errorf("token_ttl_minutes must be positive, got %d", c.TokenTTLMinutes)
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return oops.Code("CONFIG_INVALID").Errorf("log_format must be 'json' or 'text', got %q", c.LogFormat)
	}
	return nil
}

// Load builds the configuration. Layering, lowest to highest
// precedence: defaults, the YAML file at path (skipped when path is
// empty), the given flag set (skipped when nil), then the
// DATABASE_URL and SECRET_KEY environment variables so secrets can
// stay out of files and argv.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, oops.Code("CONFIG_LOAD_FAILED").
				With("operation", "load config file").
				With("path", path).
				Wrap(err)
		}
	}

	if flags != nil {
		// Flag names use dashes; config keys use underscores.
		provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return nil, oops.Code("CONFIG_LOAD_FAILED").
				With("operation", "load flags").
				Wrap(err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.Code("CONFIG_LOAD_FAILED").
			With("operation", "unmarshal config").
			Wrap(err)
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		cfg.SecretKey = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
