package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAgent(t *testing.T) {
	t.Setenv("TEST_KITT_AGENT_TOKEN", "agent-token-abc")

	dir := t.TempDir()
	writeConfigFile(t, dir, AgentFileName, `
server_url: http://kitt.internal:8080
name: rig-01
token: "{{.TEST_KITT_AGENT_TOKEN}}"
log_tail_lines: 100
docker:
  network: host
disk:
  reserve_gb: 25
  cleanup_after_run: true
`)

	cfg, err := LoadAgent(dir)
	require.NoError(t, err)

	assert.Equal(t, "http://kitt.internal:8080", cfg.ServerURL)
	assert.Equal(t, "rig-01", cfg.Name)
	assert.Equal(t, "agent-token-abc", cfg.Token)
	assert.Equal(t, 100, cfg.LogTailLines)
	assert.Equal(t, "host", cfg.Docker.Network)
	assert.Equal(t, 25.0, cfg.Disk.ReserveGB)
	assert.True(t, cfg.Disk.CleanupAfterRun)

	// Defaults survive the merge.
	assert.Equal(t, "docker", cfg.Docker.Binary)
	assert.Equal(t, 30*time.Second, cfg.HeartbeatInterval)
	assert.Equal(t, "/var/lib/kitt-agent/models", cfg.ModelCacheDir)
}

func TestLoadAgentRequiresCredentials(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, AgentFileName, `
server_url: http://localhost:8080
name: rig-01
`)

	_, err := LoadAgent(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "token")
}

func TestAgentConfigValidate(t *testing.T) {
	cfg := DefaultAgentConfig()
	cfg.Name = "rig-01"
	cfg.Token = "tok"
	require.NoError(t, cfg.Validate())

	cfg.ServerURL = "not a url"
	assert.Error(t, cfg.Validate())

	cfg.ServerURL = "http://localhost:8080"
	cfg.HeartbeatInterval = 0
	assert.Error(t, cfg.Validate())
}
