package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Kirizan/kitt-sub000/ent"
	testdb "github.com/Kirizan/kitt-sub000/test/database"
	"github.com/Kirizan/kitt-sub000/pkg/models"
)

func setupTestClient(t *testing.T) *ent.Client {
	t.Helper()
	return testdb.NewTestClient(t).Client
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// provisionTestAgent registers an agent and returns it with its raw token.
func provisionTestAgent(t *testing.T, client *ent.Client, name string) (agentID, token string) {
	t.Helper()
	svc := NewAgentService(client, discardLogger())
	resp, err := svc.Provision(context.Background(), models.ProvisionRequest{Name: name})
	require.NoError(t, err)
	return resp.AgentID, resp.Token
}

// createTestCampaign creates a draft campaign targeting the given agent.
func createTestCampaign(t *testing.T, client *ent.Client, agentID string) *ent.Campaign {
	t.Helper()
	svc := NewCampaignService(client, discardLogger())
	c, err := svc.Create(context.Background(), models.CreateCampaignRequest{
		AgentID: agentID,
		Config: models.CampaignConfig{
			Name:    "test-campaign",
			Models:  []models.ModelSpec{{Name: "llama-8b", Params: "8B", GGUFRepo: "org/llama-gguf"}},
			Engines: []models.EngineSpec{{Name: "llama_cpp"}},
		},
	})
	require.NoError(t, err)
	return c
}
