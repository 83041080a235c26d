package cleanup

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kirizan/kitt-sub000/ent"
	"github.com/Kirizan/kitt-sub000/ent/campaign"
	"github.com/Kirizan/kitt-sub000/ent/plannedrun"
	"github.com/Kirizan/kitt-sub000/ent/streamevent"
	"github.com/Kirizan/kitt-sub000/pkg/bus"
	"github.com/Kirizan/kitt-sub000/pkg/config"
	"github.com/Kirizan/kitt-sub000/pkg/models"
	"github.com/Kirizan/kitt-sub000/pkg/services"
	testdb "github.com/Kirizan/kitt-sub000/test/database"
)

func setupCleanup(t *testing.T) (*ent.Client, *Service, *services.CampaignService, *services.EventService) {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	logger := slog.New(slog.DiscardHandler)
	b := bus.New(0)
	t.Cleanup(b.Close)

	campaigns := services.NewCampaignService(client, logger)
	events := services.NewEventService(client, b, logger)
	cfg := &config.RetentionConfig{
		CampaignRetentionDays: 180,
		EventTTL:              1 * time.Hour,
		CleanupInterval:       1 * time.Hour,
	}
	return client, NewService(cfg, campaigns, events, logger), campaigns, events
}

// terminalCampaign creates a completed campaign with one run whose
// completion is `age` in the past.
func terminalCampaign(t *testing.T, client *ent.Client, campaigns *services.CampaignService, age time.Duration) *ent.Campaign {
	t.Helper()
	ctx := context.Background()

	agents := services.NewAgentService(client, slog.New(slog.DiscardHandler))
	prov, err := agents.Provision(ctx, models.ProvisionRequest{Name: "rig-" + uuid.New().String()[:8]})
	require.NoError(t, err)

	c, err := campaigns.Create(ctx, models.CreateCampaignRequest{
		AgentID: prov.AgentID,
		Config: models.CampaignConfig{
			Name:    "retention-test",
			Models:  []models.ModelSpec{{Name: "llama-8b", GGUFRepo: "org/llama-gguf"}},
			Engines: []models.EngineSpec{{Name: "llama_cpp"}},
		},
	})
	require.NoError(t, err)

	_, err = client.PlannedRun.Create().
		SetID(uuid.New().String()).
		SetCampaignID(c.ID).
		SetModelName("llama-8b").
		SetModelRef("org/llama-gguf/llama-8b-Q4_K_M.gguf").
		SetQuant("Q4_K_M").
		SetEngineName("llama_cpp").
		SetBenchmarkName("throughput").
		SetStatus(plannedrun.StatusCompleted).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, client.Campaign.UpdateOneID(c.ID).
		SetStatus(campaign.StatusCompleted).
		SetCompletedAt(time.Now().Add(-age)).
		Exec(ctx))
	return c
}

func TestServicePrunesExpiredCampaigns(t *testing.T) {
	client, svc, campaigns, _ := setupCleanup(t)
	ctx := context.Background()

	expired := terminalCampaign(t, client, campaigns, 200*24*time.Hour)
	recent := terminalCampaign(t, client, campaigns, 24*time.Hour)

	svc.RunOnce(ctx)

	_, err := campaigns.Get(ctx, expired.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	runs, err := client.PlannedRun.Query().
		Where(plannedrun.CampaignIDEQ(expired.ID)).All(ctx)
	require.NoError(t, err)
	assert.Empty(t, runs, "expired campaign's runs must be deleted")

	_, err = campaigns.Get(ctx, recent.ID)
	assert.NoError(t, err, "recent campaign survives")
}

func TestServicePrunesExpiredEvents(t *testing.T) {
	client, svc, _, events := setupCleanup(t)
	ctx := context.Background()

	_, err := client.StreamEvent.Create().
		SetStreamID("campaign-1").
		SetKind(streamevent.KindLog).
		SetPayload(map[string]interface{}{"line": "old"}).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = events.AppendLog(ctx, "campaign-1", "recent")
	require.NoError(t, err)

	svc.RunOnce(ctx)

	remaining, err := events.CatchUp(ctx, "campaign-1", 0, 100)
	require.NoError(t, err)
	require.Len(t, remaining, 1, "old event deleted, recent preserved")
	assert.Equal(t, "recent", remaining[0].Payload["line"])
}

func TestServiceStartStop(t *testing.T) {
	_, svc, _, _ := setupCleanup(t)

	svc.Start(context.Background())
	svc.Stop()
}
