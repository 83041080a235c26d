package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kirizan/kitt-sub000/ent"
	"github.com/Kirizan/kitt-sub000/ent/plannedrun"
	"github.com/Kirizan/kitt-sub000/pkg/bus"
	"github.com/Kirizan/kitt-sub000/pkg/dispatch"
	"github.com/Kirizan/kitt-sub000/pkg/executor"
	"github.com/Kirizan/kitt-sub000/pkg/metrics"
	"github.com/Kirizan/kitt-sub000/pkg/models"
	"github.com/Kirizan/kitt-sub000/pkg/planner"
	"github.com/Kirizan/kitt-sub000/pkg/services"
	testdb "github.com/Kirizan/kitt-sub000/test/database"
)

const testAdminToken = "test-admin-token"

type fakeDiscovery struct{}

func (fakeDiscovery) ListRepoFiles(_ context.Context, _ string) ([]planner.RepoFile, error) {
	const gb = int64(1024 * 1024 * 1024)
	return []planner.RepoFile{
		{Path: "llama-8b-Q4_K_M.gguf", SizeBytes: 5 * gb},
	}, nil
}

func (fakeDiscovery) ListOllamaTags(_ context.Context, _ string) ([]string, error) {
	return nil, errors.New("not used")
}

type apiEnv struct {
	server *Server
	router *gin.Engine
	client *ent.Client

	agents    *services.AgentService
	campaigns *services.CampaignService
	runs      *services.RunService
	events    *services.EventService
	queue     *dispatch.Queue
}

func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.NewTestClient(t)
	logger := slog.New(slog.DiscardHandler)
	b := bus.New(0)
	t.Cleanup(b.Close)

	agents := services.NewAgentService(db.Client, logger)
	campaigns := services.NewCampaignService(db.Client, logger)
	runs := services.NewRunService(db.Client, logger)
	results := services.NewResultService(db.Client, logger)
	events := services.NewEventService(db.Client, b, logger)
	queue := dispatch.New(0)
	exec := executor.New(campaigns, runs, events, queue,
		planner.New(fakeDiscovery{}, logger),
		executor.Config{PollInterval: 20 * time.Millisecond, RunTimeout: 10 * time.Second},
		logger)

	cfg := DefaultConfig()
	cfg.AdminToken = testAdminToken
	cfg.HeartbeatIntervalS = 30

	server := NewServer(cfg, db, agents, campaigns, runs, results, events, queue, exec, metrics.New(), logger)
	return &apiEnv{
		server:    server,
		router:    server.Router(),
		client:    db.Client,
		agents:    agents,
		campaigns: campaigns,
		runs:      runs,
		events:    events,
		queue:     queue,
	}
}

func (env *apiEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env *apiEnv) provision(t *testing.T, name string) models.ProvisionResponse {
	t.Helper()
	w := env.do(t, http.MethodPost, "/api/v1/agents/provision", testAdminToken, models.ProvisionRequest{Name: name})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp models.ProvisionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAdminAuthRequired(t *testing.T) {
	env := newAPIEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/agents/provision", "", models.ProvisionRequest{Name: "rig-01"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/agents/provision", "wrong", models.ProvisionRequest{Name: "rig-01"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/campaigns", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProvisionAndDuplicate(t *testing.T) {
	env := newAPIEnv(t)

	resp := env.provision(t, "rig-01")
	assert.NotEmpty(t, resp.Token)
	assert.Len(t, resp.TokenPrefix, 8)

	w := env.do(t, http.MethodPost, "/api/v1/agents/provision", testAdminToken, models.ProvisionRequest{Name: "rig-01"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHeartbeatAuthAndDispatch(t *testing.T) {
	env := newAPIEnv(t)
	ctx := context.Background()

	cred := env.provision(t, "rig-01")

	// Wrong token is rejected.
	w := env.do(t, http.MethodPost, "/api/v1/agents/rig-01/heartbeat", "bad-token", models.HeartbeatRequest{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Empty queue: null command, interval advertised.
	w = env.do(t, http.MethodPost, "/api/v1/agents/rig-01/heartbeat", cred.Token, models.HeartbeatRequest{})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var hb models.HeartbeatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hb))
	assert.Nil(t, hb.Command)
	assert.Equal(t, 30, hb.HeartbeatIntervalS)

	// Queue a command bound to a queued run.
	c := createCampaignWithPlan(t, env, cred.AgentID)
	runs, err := env.runs.ListByCampaign(ctx, c.ID)
	require.NoError(t, err)
	run := runs[0]
	cmd := &models.Command{
		CommandID: "cmd-1",
		AgentID:   cred.AgentID,
		Type:      models.CommandRunContainer,
		Payload:   models.CommandPayload{RunID: run.ID},
	}
	_, err = env.runs.Transition(ctx, run.ID,
		[]plannedrun.Status{plannedrun.StatusPending}, plannedrun.StatusQueued,
		&services.RunTransition{CommandID: cmd.CommandID})
	require.NoError(t, err)
	require.NoError(t, env.queue.Enqueue(cred.AgentID, cmd))

	// Busy agent gets nothing.
	w = env.do(t, http.MethodPost, "/api/v1/agents/rig-01/heartbeat", cred.Token,
		models.HeartbeatRequest{ActiveCommands: []string{"cmd-0"}})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hb))
	assert.Nil(t, hb.Command)
	assert.Equal(t, 1, env.queue.Len(cred.AgentID))

	// Idle agent receives the command and the run flips to dispatched.
	w = env.do(t, http.MethodPost, "/api/v1/agents/rig-01/heartbeat", cred.Token, models.HeartbeatRequest{})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hb))
	require.NotNil(t, hb.Command)
	assert.Equal(t, "cmd-1", hb.Command.CommandID)

	got, err := env.runs.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, plannedrun.StatusDispatched, got.Status)
}

func TestHeartbeatDropsCancelledCommands(t *testing.T) {
	env := newAPIEnv(t)
	ctx := context.Background()

	cred := env.provision(t, "rig-01")
	c := createCampaignWithPlan(t, env, cred.AgentID)
	runs, err := env.runs.ListByCampaign(ctx, c.ID)
	require.NoError(t, err)
	run := runs[0]

	cmd := &models.Command{
		CommandID: "cmd-1",
		AgentID:   cred.AgentID,
		Type:      models.CommandRunContainer,
		Payload:   models.CommandPayload{RunID: run.ID},
	}
	_, err = env.runs.Transition(ctx, run.ID,
		[]plannedrun.Status{plannedrun.StatusPending}, plannedrun.StatusQueued,
		&services.RunTransition{CommandID: cmd.CommandID})
	require.NoError(t, err)
	require.NoError(t, env.queue.Enqueue(cred.AgentID, cmd))

	// The run is cancelled while the command sits in the queue.
	_, err = env.runs.Transition(ctx, run.ID,
		[]plannedrun.Status{plannedrun.StatusQueued}, plannedrun.StatusCancelled, nil)
	require.NoError(t, err)

	w := env.do(t, http.MethodPost, "/api/v1/agents/rig-01/heartbeat", cred.Token, models.HeartbeatRequest{})
	require.Equal(t, http.StatusOK, w.Code)
	var hb models.HeartbeatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hb))
	assert.Nil(t, hb.Command, "stale command must be dropped, not delivered")
	assert.Equal(t, 0, env.queue.Len(cred.AgentID))
}

func TestResultsIngestionAndIdempotency(t *testing.T) {
	env := newAPIEnv(t)
	ctx := context.Background()

	cred := env.provision(t, "rig-01")
	c := createCampaignWithPlan(t, env, cred.AgentID)
	runs, err := env.runs.ListByCampaign(ctx, c.ID)
	require.NoError(t, err)
	run := runs[0]

	_, err = env.runs.Transition(ctx, run.ID,
		[]plannedrun.Status{plannedrun.StatusPending}, plannedrun.StatusQueued,
		&services.RunTransition{CommandID: "cmd-1"})
	require.NoError(t, err)
	_, err = env.runs.Transition(ctx, run.ID,
		[]plannedrun.Status{plannedrun.StatusQueued}, plannedrun.StatusDispatched, nil)
	require.NoError(t, err)

	report := models.ResultRequest{
		CommandID:      "cmd-1",
		Status:         "completed",
		Passed:         true,
		Metrics:        map[string]interface{}{"tokens_per_second": 51.2},
		OutputLocation: "s3://bench/run-1",
		LogTail:        []string{"benchmark finished"},
	}
	w := env.do(t, http.MethodPost, "/api/v1/agents/rig-01/results", cred.Token, report)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	got, err := env.runs.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, plannedrun.StatusCompleted, got.Status)

	// Redelivery acknowledges without mutating.
	report.Status = "failed"
	report.ErrorKind = "oom"
	w = env.do(t, http.MethodPost, "/api/v1/agents/rig-01/results", cred.Token, report)
	require.Equal(t, http.StatusOK, w.Code)

	got, err = env.runs.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, plannedrun.StatusCompleted, got.Status)

	// Unknown command id is a 404.
	w = env.do(t, http.MethodPost, "/api/v1/agents/rig-01/results", cred.Token,
		models.ResultRequest{CommandID: "cmd-unknown", Status: "completed"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResultsRejectedFromForeignAgent(t *testing.T) {
	env := newAPIEnv(t)
	ctx := context.Background()

	owner := env.provision(t, "rig-01")
	other := env.provision(t, "rig-02")

	c := createCampaignWithPlan(t, env, owner.AgentID)
	runs, err := env.runs.ListByCampaign(ctx, c.ID)
	require.NoError(t, err)
	run := runs[0]

	_, err = env.runs.Transition(ctx, run.ID,
		[]plannedrun.Status{plannedrun.StatusPending}, plannedrun.StatusQueued,
		&services.RunTransition{CommandID: "cmd-1"})
	require.NoError(t, err)
	_, err = env.runs.Transition(ctx, run.ID,
		[]plannedrun.Status{plannedrun.StatusQueued}, plannedrun.StatusDispatched, nil)
	require.NoError(t, err)

	// rig-02 holds a valid token but the command belongs to rig-01's
	// campaign: the report must not settle the run.
	report := models.ResultRequest{CommandID: "cmd-1", Status: "completed", Passed: true}
	w := env.do(t, http.MethodPost, "/api/v1/agents/rig-02/results", other.Token, report)
	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	got, err := env.runs.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, plannedrun.StatusDispatched, got.Status)

	// The owning agent settles it normally.
	w = env.do(t, http.MethodPost, "/api/v1/agents/rig-01/results", owner.Token, report)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	got, err = env.runs.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, plannedrun.StatusCompleted, got.Status)
}

func TestCancelStopFlagControlsPreemption(t *testing.T) {
	env := newAPIEnv(t)
	ctx := context.Background()

	cred := env.provision(t, "rig-01")

	dispatchRun := func(t *testing.T, c *ent.Campaign, commandID string) *ent.PlannedRun {
		t.Helper()
		runs, err := env.runs.ListByCampaign(ctx, c.ID)
		require.NoError(t, err)
		run := runs[0]
		_, err = env.runs.Transition(ctx, run.ID,
			[]plannedrun.Status{plannedrun.StatusPending}, plannedrun.StatusQueued,
			&services.RunTransition{CommandID: commandID})
		require.NoError(t, err)
		_, err = env.runs.Transition(ctx, run.ID,
			[]plannedrun.Status{plannedrun.StatusQueued}, plannedrun.StatusDispatched, nil)
		require.NoError(t, err)
		return run
	}

	// Plain cancel: the agent keeps the in-flight benchmark.
	first := createCampaignWithPlan(t, env, cred.AgentID)
	dispatchRun(t, first, "cmd-1")
	w := env.do(t, http.MethodPost, "/api/v1/campaigns/"+first.ID+"/cancel", testAdminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 0, env.queue.Len(cred.AgentID), "plain cancel must not dispatch a stop")

	// Cancel with stop: a stop_container aimed at the in-flight command
	// lands on the queue.
	second := createCampaignWithPlan(t, env, cred.AgentID)
	dispatchRun(t, second, "cmd-2")
	w = env.do(t, http.MethodPost, "/api/v1/campaigns/"+second.ID+"/cancel", testAdminToken,
		models.CancelCampaignRequest{Stop: true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stop, ok := env.queue.Dequeue(cred.AgentID)
	require.True(t, ok, "stop cancel must enqueue a stop command")
	assert.Equal(t, models.CommandStopContainer, stop.Type)
	assert.Equal(t, second.ID, stop.CampaignID)
	assert.Equal(t, "cmd-2", stop.Payload.ContainerID)
}

func TestCommandStatusCallback(t *testing.T) {
	env := newAPIEnv(t)
	ctx := context.Background()

	cred := env.provision(t, "rig-01")
	c := createCampaignWithPlan(t, env, cred.AgentID)
	runs, err := env.runs.ListByCampaign(ctx, c.ID)
	require.NoError(t, err)
	run := runs[0]

	_, err = env.runs.Transition(ctx, run.ID,
		[]plannedrun.Status{plannedrun.StatusPending}, plannedrun.StatusQueued,
		&services.RunTransition{CommandID: "cmd-1"})
	require.NoError(t, err)
	_, err = env.runs.Transition(ctx, run.ID,
		[]plannedrun.Status{plannedrun.StatusQueued}, plannedrun.StatusDispatched, nil)
	require.NoError(t, err)

	w := env.do(t, http.MethodPost, "/api/v1/commands/cmd-1/status", cred.Token,
		map[string]string{"status": "running"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	got, err := env.runs.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, plannedrun.StatusRunning, got.Status)

	// Log callback appends to the campaign stream.
	w = env.do(t, http.MethodPost, "/api/v1/commands/cmd-1/log", cred.Token,
		models.LogLineRequest{Line: "loading model"})
	require.Equal(t, http.StatusAccepted, w.Code)

	events, err := env.events.CatchUp(ctx, c.ID, 0, 100)
	require.NoError(t, err)
	var sawLog bool
	for _, ev := range events {
		if ev.Payload["line"] == "loading model" {
			sawLog = true
		}
	}
	assert.True(t, sawLog)
}

func TestCampaignLifecycleOverHTTP(t *testing.T) {
	env := newAPIEnv(t)

	cred := env.provision(t, "rig-01")

	w := env.do(t, http.MethodPost, "/api/v1/campaigns", testAdminToken, models.CreateCampaignRequest{
		AgentID: cred.AgentID,
		Config: models.CampaignConfig{
			Name:    "http-campaign",
			Models:  []models.ModelSpec{{Name: "llama-8b", Params: "8B", GGUFRepo: "org/llama-gguf"}},
			Engines: []models.EngineSpec{{Name: "llama_cpp"}},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created models.CampaignResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "draft", created.Status)

	w = env.do(t, http.MethodGet, "/api/v1/campaigns?status=draft", testAdminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list models.CampaignListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.TotalCount)

	w = env.do(t, http.MethodGet, "/api/v1/campaigns/"+created.CampaignID, testAdminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Cancel the draft: no executor involved, runs settle immediately.
	w = env.do(t, http.MethodPost, "/api/v1/campaigns/"+created.CampaignID+"/cancel", testAdminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Start after cancel conflicts.
	w = env.do(t, http.MethodPost, "/api/v1/campaigns/"+created.CampaignID+"/start", testAdminToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/campaigns/missing", testAdminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSSECatchUpAndLive(t *testing.T) {
	env := newAPIEnv(t)
	ctx := context.Background()

	// History before the client connects.
	first, err := env.events.AppendLog(ctx, "campaign-1", "historic line")
	require.NoError(t, err)

	srv := httptest.NewServer(env.router)
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet,
		srv.URL+"/api/v1/events?stream=campaign-1", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+testAdminToken)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	reader := bufio.NewReader(resp.Body)

	// The historic event is replayed with its sequence as the SSE id.
	requireSSEEvent(t, reader, fmt.Sprintf("id: %d", first.ID), "historic line")

	// A live event follows.
	_, err = env.events.AppendLog(ctx, "campaign-1", "live line")
	require.NoError(t, err)
	requireSSEEvent(t, reader, "id:", "live line")
}

// requireSSEEvent reads one SSE frame and asserts on the id line prefix
// and payload substring.
func requireSSEEvent(t *testing.T, reader *bufio.Reader, idPrefix, payloadContains string) {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	var frame []string
	for time.Now().Before(deadline) {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		if line == "" {
			if len(frame) > 0 {
				break
			}
			continue
		}
		frame = append(frame, line)
	}
	require.NotEmpty(t, frame, "no SSE frame received")
	assert.True(t, strings.HasPrefix(frame[0], idPrefix),
		"frame %v should start with %q", frame, idPrefix)
	joined := strings.Join(frame, "\n")
	assert.Contains(t, joined, payloadContains)
}

// createCampaignWithPlan creates a draft campaign and persists its plan
// without launching an executor.
func createCampaignWithPlan(t *testing.T, env *apiEnv, agentID string) *ent.Campaign {
	t.Helper()
	ctx := context.Background()

	c, err := env.campaigns.Create(ctx, models.CreateCampaignRequest{
		AgentID: agentID,
		Config: models.CampaignConfig{
			Name:    "api-test",
			Models:  []models.ModelSpec{{Name: "llama-8b", Params: "8B", GGUFRepo: "org/llama-gguf"}},
			Engines: []models.EngineSpec{{Name: "llama_cpp"}},
		},
	})
	require.NoError(t, err)

	cfg, err := services.DecodeConfig(c)
	require.NoError(t, err)
	specs, err := planner.New(fakeDiscovery{}, slog.New(slog.DiscardHandler)).Plan(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, env.runs.InsertPlan(ctx, c.ID, specs))
	return c
}
