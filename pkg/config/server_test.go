package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoadServerDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := LoadServer(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 30, cfg.HTTP.HeartbeatIntervalS)
	assert.Equal(t, 5*time.Second, cfg.Executor.PollInterval)
	assert.Equal(t, 30*time.Minute, cfg.Executor.RunTimeout)
	assert.Equal(t, 90*time.Second, cfg.Agents.HeartbeatTimeout)
	assert.Equal(t, "https://huggingface.co", cfg.Discovery.HuggingFaceBaseURL)
	assert.Equal(t, 180, cfg.Retention.CampaignRetentionDays)
}

func TestLoadServerMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, ServerFileName, `
database:
  host: db.internal
  password: hunter2
http:
  addr: ":9090"
  heartbeat_interval_s: 60
executor:
  queue_capacity: 16
`)

	cfg, err := LoadServer(dir)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "hunter2", cfg.Database.Password)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, 60, cfg.HTTP.HeartbeatIntervalS)
	assert.Equal(t, 16, cfg.Executor.QueueCapacity)

	// Unset values keep their defaults.
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "kitt", cfg.Database.User)
	assert.Equal(t, 5*time.Second, cfg.Executor.PollInterval)
}

func TestLoadServerExpandsEnvironment(t *testing.T) {
	t.Setenv("TEST_KITT_ADMIN_TOKEN", "sekrit-token")
	t.Setenv("TEST_KITT_DB_PASSWORD", "p@ss$word")

	dir := t.TempDir()
	writeConfigFile(t, dir, ServerFileName, `
database:
  password: "{{.TEST_KITT_DB_PASSWORD}}"
http:
  admin_token: "{{.TEST_KITT_ADMIN_TOKEN}}"
`)

	cfg, err := LoadServer(dir)
	require.NoError(t, err)
	assert.Equal(t, "sekrit-token", cfg.HTTP.AdminToken)
	assert.Equal(t, "p@ss$word", cfg.Database.Password)
}

func TestLoadServerInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, ServerFileName, "database:\n  host: [broken\n")

	_, err := LoadServer(dir)
	require.Error(t, err)
	var loadErr *LoadError
	assert.True(t, errors.As(err, &loadErr))
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestLoadServerValidation(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, ServerFileName, `
database:
  port: 70000
`)

	_, err := LoadServer(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestServerConfigValidate(t *testing.T) {
	cfg := DefaultServerConfig()
	require.NoError(t, cfg.Validate())

	cfg.Database.Host = ""
	err := cfg.Validate()
	require.Error(t, err)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "database", vErr.Section)
	assert.Equal(t, "host", vErr.Field)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}
