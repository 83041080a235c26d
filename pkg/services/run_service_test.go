package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kirizan/kitt-sub000/ent"
	"github.com/Kirizan/kitt-sub000/ent/plannedrun"
	"github.com/Kirizan/kitt-sub000/pkg/planner"
)

func testSpecs() []planner.RunSpec {
	return []planner.RunSpec{
		{ModelName: "llama-8b", ModelRef: "org/llama-gguf", EngineName: "llama_cpp", EngineMode: "docker", Quant: "Q2_K", BenchmarkName: "throughput", EstimatedSizeGB: 3},
		{ModelName: "llama-8b", ModelRef: "org/llama-gguf", EngineName: "llama_cpp", EngineMode: "docker", Quant: "Q4_K_M", BenchmarkName: "throughput", EstimatedSizeGB: 5},
		{ModelName: "llama-8b", ModelRef: "org/llama-gguf", EngineName: "llama_cpp", EngineMode: "docker", Quant: "Q8_0", BenchmarkName: "throughput", EstimatedSizeGB: 9, Skip: true, SkipReason: planner.SkipReasonSize},
	}
}

func insertTestPlan(t *testing.T, client *ent.Client, campaignID string) []*ent.PlannedRun {
	t.Helper()
	svc := NewRunService(client, discardLogger())
	require.NoError(t, svc.InsertPlan(context.Background(), campaignID, testSpecs()))
	runs, err := svc.ListByCampaign(context.Background(), campaignID)
	require.NoError(t, err)
	return runs
}

func TestInsertPlanPersistsRunsInOrder(t *testing.T) {
	client := setupTestClient(t)
	agentID, _ := provisionTestAgent(t, client, "rig-01")
	c := createTestCampaign(t, client, agentID)

	runs := insertTestPlan(t, client, c.ID)
	require.Len(t, runs, 3)

	assert.Equal(t, "Q2_K", runs[0].Quant)
	assert.Equal(t, plannedrun.StatusPending, runs[0].Status)
	assert.Equal(t, 0, runs[0].PlanIndex)

	// Pre-skipped specs land terminal with the reason recorded.
	assert.Equal(t, plannedrun.StatusSkipped, runs[2].Status)
	assert.Equal(t, planner.SkipReasonSize, runs[2].ErrorKind)
	assert.NotNil(t, runs[2].CompletedAt)
}

func TestInsertPlanIsIdempotent(t *testing.T) {
	client := setupTestClient(t)
	svc := NewRunService(client, discardLogger())
	ctx := context.Background()

	agentID, _ := provisionTestAgent(t, client, "rig-01")
	c := createTestCampaign(t, client, agentID)

	runs := insertTestPlan(t, client, c.ID)

	// Move one run forward, then replay the same plan.
	_, err := svc.Transition(ctx, runs[0].ID, []plannedrun.Status{plannedrun.StatusPending}, plannedrun.StatusQueued, &RunTransition{CommandID: "cmd-1"})
	require.NoError(t, err)

	require.NoError(t, svc.InsertPlan(ctx, c.ID, testSpecs()))

	after, err := svc.ListByCampaign(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, after, 3, "replaying the plan must not duplicate runs")

	// The advanced run keeps its progress.
	r, err := svc.Get(ctx, runs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, plannedrun.StatusQueued, r.Status)
	assert.Equal(t, "cmd-1", r.CommandID)
}

func TestRunTransitionCASAndTimestamps(t *testing.T) {
	client := setupTestClient(t)
	svc := NewRunService(client, discardLogger())
	ctx := context.Background()

	agentID, _ := provisionTestAgent(t, client, "rig-01")
	c := createTestCampaign(t, client, agentID)
	runs := insertTestPlan(t, client, c.ID)
	runID := runs[0].ID

	r, err := svc.Transition(ctx, runID, []plannedrun.Status{plannedrun.StatusPending}, plannedrun.StatusQueued, &RunTransition{CommandID: "cmd-1"})
	require.NoError(t, err)
	assert.NotNil(t, r.QueuedAt)
	assert.Equal(t, "cmd-1", r.CommandID)

	r, err = svc.Transition(ctx, runID, []plannedrun.Status{plannedrun.StatusQueued}, plannedrun.StatusDispatched, nil)
	require.NoError(t, err)
	assert.NotNil(t, r.DispatchedAt)

	r, err = svc.Transition(ctx, runID, []plannedrun.Status{plannedrun.StatusDispatched}, plannedrun.StatusRunning, nil)
	require.NoError(t, err)
	assert.NotNil(t, r.StartedAt)

	r, err = svc.Transition(ctx, runID, []plannedrun.Status{plannedrun.StatusRunning}, plannedrun.StatusFailed, &RunTransition{ErrorKind: "oom", ErrorMessage: "cuda out of memory"})
	require.NoError(t, err)
	assert.NotNil(t, r.CompletedAt)
	assert.Equal(t, "oom", r.ErrorKind)

	// Terminal runs are immutable.
	_, err = svc.Transition(ctx, runID, []plannedrun.Status{plannedrun.StatusFailed}, plannedrun.StatusCompleted, nil)
	assert.ErrorIs(t, err, ErrConflict)
	_, err = svc.Transition(ctx, runID, []plannedrun.Status{plannedrun.StatusRunning}, plannedrun.StatusCompleted, nil)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.Transition(ctx, "missing", []plannedrun.Status{plannedrun.StatusPending}, plannedrun.StatusQueued, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByCommandID(t *testing.T) {
	client := setupTestClient(t)
	svc := NewRunService(client, discardLogger())
	ctx := context.Background()

	agentID, _ := provisionTestAgent(t, client, "rig-01")
	c := createTestCampaign(t, client, agentID)
	runs := insertTestPlan(t, client, c.ID)

	_, err := svc.Transition(ctx, runs[0].ID, []plannedrun.Status{plannedrun.StatusPending}, plannedrun.StatusQueued, &RunTransition{CommandID: "cmd-42"})
	require.NoError(t, err)

	r, err := svc.GetByCommandID(ctx, "cmd-42")
	require.NoError(t, err)
	assert.Equal(t, runs[0].ID, r.ID)

	_, err = svc.GetByCommandID(ctx, "cmd-unknown")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPendingRunsSkipsTerminalAndInFlight(t *testing.T) {
	client := setupTestClient(t)
	svc := NewRunService(client, discardLogger())
	ctx := context.Background()

	agentID, _ := provisionTestAgent(t, client, "rig-01")
	c := createTestCampaign(t, client, agentID)
	runs := insertTestPlan(t, client, c.ID)

	_, err := svc.Transition(ctx, runs[0].ID, []plannedrun.Status{plannedrun.StatusPending}, plannedrun.StatusQueued, nil)
	require.NoError(t, err)

	pending, err := svc.PendingRuns(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, runs[1].ID, pending[0].ID)
}

func TestCancelRemaining(t *testing.T) {
	client := setupTestClient(t)
	svc := NewRunService(client, discardLogger())
	ctx := context.Background()

	agentID, _ := provisionTestAgent(t, client, "rig-01")
	c := createTestCampaign(t, client, agentID)
	runs := insertTestPlan(t, client, c.ID)

	_, err := svc.Transition(ctx, runs[0].ID, []plannedrun.Status{plannedrun.StatusPending}, plannedrun.StatusQueued, nil)
	require.NoError(t, err)

	n, err := svc.CancelRemaining(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n) // queued run + pending run; the skipped one is untouched

	after, err := svc.ListByCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, plannedrun.StatusCancelled, after[0].Status)
	assert.Equal(t, plannedrun.StatusCancelled, after[1].Status)
	assert.Equal(t, plannedrun.StatusSkipped, after[2].Status)
}

func TestStaleInFlight(t *testing.T) {
	client := setupTestClient(t)
	svc := NewRunService(client, discardLogger())
	ctx := context.Background()

	agentID, _ := provisionTestAgent(t, client, "rig-01")
	c := createTestCampaign(t, client, agentID)
	runs := insertTestPlan(t, client, c.ID)

	_, err := svc.Transition(ctx, runs[0].ID, []plannedrun.Status{plannedrun.StatusPending}, plannedrun.StatusRunning, nil)
	require.NoError(t, err)

	// Nothing is stale yet.
	stale, err := svc.StaleInFlight(ctx, time.Minute)
	require.NoError(t, err)
	assert.Empty(t, stale)

	time.Sleep(30 * time.Millisecond)
	stale, err = svc.StaleInFlight(ctx, 10*time.Millisecond)
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, runs[0].ID, stale[0].ID)
}
