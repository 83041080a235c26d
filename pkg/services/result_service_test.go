package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kirizan/kitt-sub000/pkg/models"
)

func TestRecordResultWriteOnce(t *testing.T) {
	client := setupTestClient(t)
	svc := NewResultService(client, discardLogger())
	ctx := context.Background()

	agentID, _ := provisionTestAgent(t, client, "rig-01")
	c := createTestCampaign(t, client, agentID)
	runs := insertTestPlan(t, client, c.ID)
	runID := runs[0].ID

	first, err := svc.Record(ctx, runID, models.ResultRequest{
		CommandID:      "cmd-1",
		Passed:         true,
		Metrics:        map[string]interface{}{"tokens_per_second": 42.5},
		OutputLocation: "s3://bench/results/run-1",
	})
	require.NoError(t, err)
	assert.True(t, first.Passed)
	assert.Equal(t, 42.5, first.Metrics["tokens_per_second"])

	// A duplicate report does not overwrite the first write.
	second, err := svc.Record(ctx, runID, models.ResultRequest{
		CommandID: "cmd-1",
		Passed:    false,
		Metrics:   map[string]interface{}{"tokens_per_second": 0.0},
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.Passed)

	got, err := svc.GetByRun(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.True(t, got.Passed)
}

func TestGetResultNotFound(t *testing.T) {
	client := setupTestClient(t)
	svc := NewResultService(client, discardLogger())

	_, err := svc.GetByRun(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordResultRequiresCommandID(t *testing.T) {
	client := setupTestClient(t)
	svc := NewResultService(client, discardLogger())

	_, err := svc.Record(context.Background(), "run-1", models.ResultRequest{})
	assert.True(t, IsValidationError(err))
}
