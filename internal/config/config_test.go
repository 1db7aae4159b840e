// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskApp Contributors

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FAbrickA/TaskApp/internal/config"
	"github.com/FAbrickA/TaskApp/pkg/errutil"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, config.DefaultListenAddr, cfg.ListenAddr)
	assert.Equal(t, config.DefaultMetricsAddr, cfg.MetricsAddr)
	assert.Equal(t, config.DefaultTokenTTLMinutes, cfg.TokenTTLMinutes)
	assert.Equal(t, config.DefaultLogFormat, cfg.LogFormat)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.SecretKey)
}

func TestConfig_TokenTTL(t *testing.T) {
	cfg := config.Config{TokenTTLMinutes: 45}
	assert.Equal(t, 45*time.Minute, cfg.TokenTTL())
}

func TestConfig_Validate(t *testing.T) {
	valid := func() config.Config {
		cfg := config.Default()
		cfg.DatabaseURL = "postgres://localhost:5432/taskapp"
		cfg.SecretKey = "secret"
		return cfg
	}

	t.Run("complete config passes", func(t *testing.T) {
		cfg := valid()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing database URL", func(t *testing.T) {
		cfg := valid()
		cfg.DatabaseURL = ""
		err := cfg.Validate()
		require.Error(t, err)
		errutil.AssertErrorCode(t, err, "CONFIG_INVALID")
	})

	t.Run("missing secret key", func(t *testing.T) {
		cfg := valid()
		cfg.SecretKey = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("non-positive token TTL", func(t *testing.T) {
		cfg := valid()
		cfg.TokenTTLMinutes = 0
		require.Error(t, cfg.Validate())
	})

	t.Run("unknown log format", func(t *testing.T) {
		cfg := valid()
		cfg.LogFormat = "xml"
		require.Error(t, cfg.Validate())
	})
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
listen_addr: "0.0.0.0:9000"
database_url: "postgres://db:5432/taskapp"
secret_key: "file-secret"
token_ttl_minutes: 60
log_format: "text"
`)

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.ListenAddr)
	assert.Equal(t, "postgres://db:5432/taskapp", cfg.DatabaseURL)
	assert.Equal(t, "file-secret", cfg.SecretKey)
	assert.Equal(t, 60, cfg.TokenTTLMinutes)
	assert.Equal(t, "text", cfg.LogFormat)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, config.DefaultMetricsAddr, cfg.MetricsAddr)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, "CONFIG_LOAD_FAILED")
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	path := writeConfigFile(t, `
listen_addr: "0.0.0.0:9000"
database_url: "postgres://db:5432/taskapp"
secret_key: "file-secret"
`)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("listen-addr", config.DefaultListenAddr, "")
	flags.Int("token-ttl-minutes", config.DefaultTokenTTLMinutes, "")
	require.NoError(t, flags.Parse([]string{"--listen-addr", "127.0.0.1:7777"}))

	cfg, err := config.Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7777", cfg.ListenAddr, "explicit flag wins over file")
	assert.Equal(t, "file-secret", cfg.SecretKey)
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	path := writeConfigFile(t, `
database_url: "postgres://db:5432/taskapp"
secret_key: "file-secret"
`)

	t.Setenv("DATABASE_URL", "postgres://env:5432/taskapp")
	t.Setenv("SECRET_KEY", "env-secret")

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "postgres://env:5432/taskapp", cfg.DatabaseURL)
	assert.Equal(t, "env-secret", cfg.SecretKey)
}

func TestLoad_InvalidResultRejected(t *testing.T) {
	path := writeConfigFile(t, `
database_url: "postgres://db:5432/taskapp"
secret_key: "file-secret"
token_ttl_minutes: -5
`)

	_, err := config.Load(path, nil)
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, "CONFIG_INVALID")
}
