package services

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kirizan/kitt-sub000/ent/agent"
	"github.com/Kirizan/kitt-sub000/pkg/models"
)

func TestProvisionStoresHashNotToken(t *testing.T) {
	client := setupTestClient(t)
	svc := NewAgentService(client, discardLogger())
	ctx := context.Background()

	resp, err := svc.Provision(ctx, models.ProvisionRequest{Name: "rig-01"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, resp.Token[:8], resp.TokenPrefix)

	// Tokens are base64url over 32 bytes of entropy.
	raw, err := base64.RawURLEncoding.DecodeString(resp.Token)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	a, err := svc.GetByName(ctx, "rig-01")
	require.NoError(t, err)

	sum := sha256.Sum256([]byte(resp.Token))
	assert.Equal(t, hex.EncodeToString(sum[:]), a.TokenHash)
	assert.NotContains(t, a.TokenHash, resp.Token)
	assert.Equal(t, agent.StatusOffline, a.Status)
}

func TestProvisionDuplicateName(t *testing.T) {
	client := setupTestClient(t)
	svc := NewAgentService(client, discardLogger())
	ctx := context.Background()

	_, err := svc.Provision(ctx, models.ProvisionRequest{Name: "rig-01"})
	require.NoError(t, err)

	_, err = svc.Provision(ctx, models.ProvisionRequest{Name: "rig-01"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestVerifyToken(t *testing.T) {
	client := setupTestClient(t)
	svc := NewAgentService(client, discardLogger())
	ctx := context.Background()

	resp, err := svc.Provision(ctx, models.ProvisionRequest{Name: "rig-01"})
	require.NoError(t, err)

	a, err := svc.VerifyToken(ctx, "rig-01", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.AgentID, a.ID)

	_, err = svc.VerifyToken(ctx, "rig-01", "wrong-token")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.VerifyToken(ctx, "no-such-agent", resp.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRotateTokenInvalidatesOld(t *testing.T) {
	client := setupTestClient(t)
	svc := NewAgentService(client, discardLogger())
	ctx := context.Background()

	resp, err := svc.Provision(ctx, models.ProvisionRequest{Name: "rig-01"})
	require.NoError(t, err)

	rotated, err := svc.RotateToken(ctx, "rig-01")
	require.NoError(t, err)
	require.NotEqual(t, resp.Token, rotated.Token)

	_, err = svc.VerifyToken(ctx, "rig-01", resp.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.VerifyToken(ctx, "rig-01", rotated.Token)
	assert.NoError(t, err)
}

func TestHeartbeatFlipsOnlineAndRecordsCapabilities(t *testing.T) {
	client := setupTestClient(t)
	svc := NewAgentService(client, discardLogger())
	ctx := context.Background()

	_, err := svc.Provision(ctx, models.ProvisionRequest{Name: "rig-01"})
	require.NoError(t, err)

	a, err := svc.Heartbeat(ctx, "rig-01", models.HeartbeatRequest{
		Capabilities: models.AgentCapabilities{
			Hostname: "rig-01.lab",
			CPUArch:  "amd64",
			GPUCount: 2,
			RAMGB:    128,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, agent.StatusOnline, a.Status)
	require.NotNil(t, a.LastHeartbeat)
	assert.WithinDuration(t, time.Now(), *a.LastHeartbeat, 5*time.Second)
	assert.Equal(t, "rig-01.lab", a.Hostname)
	assert.Equal(t, 2, a.GpuCount)
	assert.Equal(t, 128, a.RAMGB)
	assert.True(t, svc.IsOnline(a))
}

func TestMarkStaleOffline(t *testing.T) {
	client := setupTestClient(t)
	svc := NewAgentService(client, discardLogger())
	svc.SetHeartbeatTimeout(50 * time.Millisecond)
	ctx := context.Background()

	_, err := svc.Provision(ctx, models.ProvisionRequest{Name: "rig-stale"})
	require.NoError(t, err)
	_, err = svc.Heartbeat(ctx, "rig-stale", models.HeartbeatRequest{})
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	n, err := svc.MarkStaleOffline(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	a, err := svc.GetByName(ctx, "rig-stale")
	require.NoError(t, err)
	assert.Equal(t, agent.StatusOffline, a.Status)
	assert.False(t, svc.IsOnline(a))

	// Sweep is idempotent.
	n, err = svc.MarkStaleOffline(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestUnregister(t *testing.T) {
	client := setupTestClient(t)
	svc := NewAgentService(client, discardLogger())
	ctx := context.Background()

	_, err := svc.Provision(ctx, models.ProvisionRequest{Name: "rig-01"})
	require.NoError(t, err)

	require.NoError(t, svc.Unregister(ctx, "rig-01"))
	assert.ErrorIs(t, svc.Unregister(ctx, "rig-01"), ErrNotFound)
	_, err = svc.GetByName(ctx, "rig-01")
	assert.ErrorIs(t, err, ErrNotFound)
}
