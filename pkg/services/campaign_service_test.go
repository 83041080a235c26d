package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kirizan/kitt-sub000/ent/campaign"
	"github.com/Kirizan/kitt-sub000/ent/plannedrun"
	"github.com/Kirizan/kitt-sub000/pkg/models"
	"github.com/Kirizan/kitt-sub000/pkg/planner"
)

func TestCreateCampaignStartsAsDraft(t *testing.T) {
	client := setupTestClient(t)

	agentID, _ := provisionTestAgent(t, client, "rig-01")
	c := createTestCampaign(t, client, agentID)

	assert.Equal(t, campaign.StatusDraft, c.Status)
	assert.Equal(t, "test-campaign", c.Name)
	assert.Equal(t, agentID, c.AgentID)

	// Stored config round-trips.
	cfg, err := DecodeConfig(c)
	require.NoError(t, err)
	assert.Equal(t, "llama-8b", cfg.Models[0].Name)
	assert.Equal(t, "llama_cpp", cfg.Engines[0].Name)
}

func TestCreateCampaignValidation(t *testing.T) {
	client := setupTestClient(t)
	svc := NewCampaignService(client, discardLogger())
	ctx := context.Background()

	agentID, _ := provisionTestAgent(t, client, "rig-01")

	// No engines.
	_, err := svc.Create(ctx, models.CreateCampaignRequest{
		AgentID: agentID,
		Config: models.CampaignConfig{
			Name:   "bad",
			Models: []models.ModelSpec{{Name: "m"}},
		},
	})
	assert.True(t, IsValidationError(err))

	// Unknown agent.
	_, err = svc.Create(ctx, models.CreateCampaignRequest{
		AgentID: "missing",
		Config: models.CampaignConfig{
			Name:    "bad",
			Models:  []models.ModelSpec{{Name: "m"}},
			Engines: []models.EngineSpec{{Name: "llama_cpp"}},
		},
	})
	assert.True(t, IsValidationError(err))
}

func TestCampaignTransitionCAS(t *testing.T) {
	client := setupTestClient(t)
	svc := NewCampaignService(client, discardLogger())
	ctx := context.Background()

	agentID, _ := provisionTestAgent(t, client, "rig-01")
	c := createTestCampaign(t, client, agentID)

	c, err := svc.Transition(ctx, c.ID, []campaign.Status{campaign.StatusDraft}, campaign.StatusQueued)
	require.NoError(t, err)
	assert.Equal(t, campaign.StatusQueued, c.Status)

	// Draft -> queued again conflicts: the campaign is already queued.
	_, err = svc.Transition(ctx, c.ID, []campaign.Status{campaign.StatusDraft}, campaign.StatusQueued)
	assert.ErrorIs(t, err, ErrConflict)

	c, err = svc.Transition(ctx, c.ID, []campaign.Status{campaign.StatusQueued}, campaign.StatusRunning)
	require.NoError(t, err)
	assert.Equal(t, campaign.StatusRunning, c.Status)
	assert.NotNil(t, c.StartedAt)

	c, err = svc.Transition(ctx, c.ID, []campaign.Status{campaign.StatusRunning}, campaign.StatusCompleted)
	require.NoError(t, err)
	assert.NotNil(t, c.CompletedAt)

	// Terminal states never transition.
	_, err = svc.Transition(ctx, c.ID, []campaign.Status{campaign.StatusRunning}, campaign.StatusFailed)
	assert.ErrorIs(t, err, ErrConflict)

	// Unknown id maps to not found, not conflict.
	_, err = svc.Transition(ctx, "missing", []campaign.Status{campaign.StatusDraft}, campaign.StatusQueued)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelFromAnyActiveState(t *testing.T) {
	client := setupTestClient(t)
	svc := NewCampaignService(client, discardLogger())
	ctx := context.Background()

	agentID, _ := provisionTestAgent(t, client, "rig-01")

	c := createTestCampaign(t, client, agentID)
	c, err := svc.Cancel(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, campaign.StatusCancelled, c.Status)

	// Cancelling twice conflicts.
	_, err = svc.Cancel(ctx, c.ID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestListCampaignsFilterAndPagination(t *testing.T) {
	client := setupTestClient(t)
	svc := NewCampaignService(client, discardLogger())
	ctx := context.Background()

	agentID, _ := provisionTestAgent(t, client, "rig-01")
	for i := 0; i < 3; i++ {
		createTestCampaign(t, client, agentID)
	}
	cancelled := createTestCampaign(t, client, agentID)
	_, err := svc.Cancel(ctx, cancelled.ID)
	require.NoError(t, err)

	all, err := svc.List(ctx, models.CampaignFilters{})
	require.NoError(t, err)
	assert.Equal(t, 4, all.TotalCount)

	drafts, err := svc.List(ctx, models.CampaignFilters{Status: "draft"})
	require.NoError(t, err)
	assert.Equal(t, 3, drafts.TotalCount)

	page, err := svc.List(ctx, models.CampaignFilters{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, 4, page.TotalCount)
	assert.Len(t, page.Campaigns, 2)

	_, err = svc.List(ctx, models.CampaignFilters{Status: "bogus"})
	assert.True(t, IsValidationError(err))
}

func TestSnapshotDerivesCountsFromRuns(t *testing.T) {
	client := setupTestClient(t)
	campaigns := NewCampaignService(client, discardLogger())
	runs := NewRunService(client, discardLogger())
	ctx := context.Background()

	agentID, _ := provisionTestAgent(t, client, "rig-01")
	c := createTestCampaign(t, client, agentID)

	specs := []planner.RunSpec{
		{ModelName: "m", ModelRef: "org/m", EngineName: "llama_cpp", EngineMode: "docker", Quant: "Q2_K", BenchmarkName: "throughput"},
		{ModelName: "m", ModelRef: "org/m", EngineName: "llama_cpp", EngineMode: "docker", Quant: "Q4_K_M", BenchmarkName: "throughput"},
		{ModelName: "m", ModelRef: "org/m", EngineName: "llama_cpp", EngineMode: "docker", Quant: "Q6_K", BenchmarkName: "throughput"},
		{ModelName: "m", ModelRef: "org/m", EngineName: "llama_cpp", EngineMode: "docker", Quant: "Q8_0", BenchmarkName: "throughput", Skip: true, SkipReason: planner.SkipReasonSize},
	}
	require.NoError(t, runs.InsertPlan(ctx, c.ID, specs))

	planned, err := runs.ListByCampaign(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, planned, 4)

	// Drive two runs to terminal states through the normal path.
	complete := func(runID string, to plannedrun.Status, kind string) {
		_, err := runs.Transition(ctx, runID, []plannedrun.Status{plannedrun.StatusPending}, plannedrun.StatusQueued, &RunTransition{CommandID: "cmd-" + runID})
		require.NoError(t, err)
		_, err = runs.Transition(ctx, runID, []plannedrun.Status{plannedrun.StatusQueued}, plannedrun.StatusRunning, nil)
		require.NoError(t, err)
		_, err = runs.Transition(ctx, runID, []plannedrun.Status{plannedrun.StatusRunning}, to, &RunTransition{ErrorKind: kind})
		require.NoError(t, err)
	}
	complete(planned[0].ID, plannedrun.StatusCompleted, "")
	complete(planned[1].ID, plannedrun.StatusFailed, "oom")

	snap, err := campaigns.Snapshot(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, snap.TotalRuns)
	assert.Equal(t, 1, snap.Succeeded)
	assert.Equal(t, 1, snap.Failed)
	assert.Equal(t, 1, snap.Skipped)
	assert.Equal(t, 1, snap.PendingOrRunning)
	require.Len(t, snap.TopFailureKinds, 1)
	assert.Equal(t, "oom", snap.TopFailureKinds[0].Kind)
	assert.Equal(t, 1, snap.TopFailureKinds[0].Count)

	// Runs come back in plan order.
	for i, r := range snap.Runs {
		assert.Equal(t, i, r.PlanIndex)
	}
}
