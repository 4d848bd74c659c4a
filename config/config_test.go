package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daticahealth/snapdash/profile"
	"github.com/daticahealth/snapdash/session"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapdash.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(nil, "")
	require.NoError(t, err)

	assert.Equal(t, profile.DefaultHost, cfg.API.Host)
	assert.Zero(t, cfg.API.Timeout)
	assert.Equal(t, session.DefaultPath, cfg.Session.File)
	assert.True(t, cfg.Output.Colors)
	assert.False(t, cfg.Verbose)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
api:
  host: http://localhost:8000
  timeout: 5s
session:
  file: /tmp/snapdash-session.yaml
output:
  colors: false
`)

	cfg, err := Load(nil, path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.API.Host)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "/tmp/snapdash-session.yaml", cfg.Session.File)
	assert.False(t, cfg.Output.Colors)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "api:\n  host: http://localhost:8000\n")
	t.Setenv("SNAPDASH_API_HOST", "https://staging.example.com")

	cfg, err := Load(nil, path)
	require.NoError(t, err)

	assert.Equal(t, "https://staging.example.com", cfg.API.Host)
}

func TestLoad_ExplicitValueWins(t *testing.T) {
	v := viper.New()
	v.Set("api.host", "http://flag.example.com")

	path := writeConfig(t, "api:\n  host: http://localhost:8000\n")
	cfg, err := Load(v, path)
	require.NoError(t, err)

	assert.Equal(t, "http://flag.example.com", cfg.API.Host)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(nil, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad scheme", "api:\n  host: ftp://example.com\n"},
		{"no host", "api:\n  host: http://\n"},
		{"negative timeout", "api:\n  timeout: -1s\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(nil, writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
