package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, defaultBaseURL, cfg.BaseURL)
	assert.Equal(t, defaultLanguage, cfg.Language)
	assert.Equal(t, defaultAppName, cfg.AppName)
	assert.Equal(t, defaultTimeout, cfg.Timeout)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, defaultCacheTTL, cfg.Cache.TTL)
	assert.Zero(t, cfg.Rate.RequestsPerSecond)

	wantDir, err := expandPath(defaultCacheDir)
	require.NoError(t, err)
	assert.Equal(t, wantDir, cfg.Cache.Dir)
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
base_url = "  http://localhost:5000  "
language = "en-US"
username = " reader "
timeout = "3s"

[cache]
enabled = false
dir = "  ~/ganjoor-cache  "
ttl = "90m"

[rate]
requests_per_second = 2.5
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", cfg.BaseURL)
	assert.Equal(t, "en-US", cfg.Language)
	assert.Equal(t, defaultAppName, cfg.AppName)
	assert.Equal(t, "reader", cfg.Username)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 90*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, filepath.Join(home, "ganjoor-cache"), cfg.Cache.Dir)
	assert.Equal(t, 2.5, cfg.Rate.RequestsPerSecond)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
base_url = "http://from-file"
username = "file-user"
`)
	t.Setenv("GANJOOR_BASE_URL", "http://from-env:8080")
	t.Setenv("GANJOOR_PASSWORD", "hunter2")
	t.Setenv("GANJOOR_CACHE_TTL", "5m")
	t.Setenv("GANJOOR_RATE_LIMIT", "4")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:8080", cfg.BaseURL)
	assert.Equal(t, "file-user", cfg.Username, "unset env vars keep file values")
	assert.Equal(t, "hunter2", cfg.Password)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 4.0, cfg.Rate.RequestsPerSecond)
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	_, err := Load(writeConfig(t, `base_url = [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_InvalidDurationFails(t *testing.T) {
	_, err := Load(writeConfig(t, "[cache]\nttl = \"forever\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache.ttl")
}

func TestValidate_RejectsBadValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"scheme", func(c *Config) { c.BaseURL = "ftp://ganjgah.ir" }, "base_url must be an http(s) URL"},
		{"empty url", func(c *Config) { c.BaseURL = "" }, "base_url is required"},
		{"language", func(c *Config) { c.Language = "" }, "language is required"},
		{"ttl", func(c *Config) { c.Cache.TTL = -time.Second }, "cache.ttl must not be negative"},
		{"rate", func(c *Config) { c.Rate.RequestsPerSecond = -1 }, "rate.requests_per_second must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	assert.NoError(t, Validate(Default()))
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "a/b"), got)

	_, err = expandPath("   ")
	assert.Error(t, err)
}
