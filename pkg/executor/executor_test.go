package executor

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kirizan/kitt-sub000/ent"
	"github.com/Kirizan/kitt-sub000/ent/campaign"
	"github.com/Kirizan/kitt-sub000/ent/plannedrun"
	"github.com/Kirizan/kitt-sub000/pkg/bus"
	"github.com/Kirizan/kitt-sub000/pkg/dispatch"
	"github.com/Kirizan/kitt-sub000/pkg/models"
	"github.com/Kirizan/kitt-sub000/pkg/planner"
	"github.com/Kirizan/kitt-sub000/pkg/services"
	testdb "github.com/Kirizan/kitt-sub000/test/database"
)

type fakeDiscovery struct{}

func (fakeDiscovery) ListRepoFiles(_ context.Context, _ string) ([]planner.RepoFile, error) {
	const gb = int64(1024 * 1024 * 1024)
	return []planner.RepoFile{
		{Path: "llama-8b-Q2_K.gguf", SizeBytes: 3 * gb},
		{Path: "llama-8b-Q4_K_M.gguf", SizeBytes: 5 * gb},
	}, nil
}

func (fakeDiscovery) ListOllamaTags(_ context.Context, _ string) ([]string, error) {
	return nil, errors.New("not used")
}

type testEnv struct {
	client    *ent.Client
	agents    *services.AgentService
	campaigns *services.CampaignService
	runs      *services.RunService
	events    *services.EventService
	queue     *dispatch.Queue
	exec      *Executor
	bus       *bus.Bus
}

func newTestEnv(t *testing.T, cfg Config) *testEnv {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	logger := slog.New(slog.DiscardHandler)
	b := bus.New(0)
	t.Cleanup(b.Close)

	env := &testEnv{
		client:    client,
		agents:    services.NewAgentService(client, logger),
		campaigns: services.NewCampaignService(client, logger),
		runs:      services.NewRunService(client, logger),
		events:    services.NewEventService(client, b, logger),
		queue:     dispatch.New(0),
		bus:       b,
	}
	env.exec = New(env.campaigns, env.runs, env.events, env.queue,
		planner.New(fakeDiscovery{}, logger), cfg, logger)
	return env
}

func (env *testEnv) newQueuedCampaign(t *testing.T, agentName string) (*ent.Campaign, string) {
	t.Helper()
	ctx := context.Background()

	resp, err := env.agents.Provision(ctx, models.ProvisionRequest{Name: agentName})
	require.NoError(t, err)

	c, err := env.campaigns.Create(ctx, models.CreateCampaignRequest{
		AgentID: resp.AgentID,
		Config: models.CampaignConfig{
			Name:    "exec-test",
			Models:  []models.ModelSpec{{Name: "llama-8b", Params: "8B", GGUFRepo: "org/llama-gguf"}},
			Engines: []models.EngineSpec{{Name: "llama_cpp"}},
		},
	})
	require.NoError(t, err)

	c, err = env.campaigns.Transition(ctx, c.ID,
		[]campaign.Status{campaign.StatusDraft}, campaign.StatusQueued)
	require.NoError(t, err)
	return c, resp.AgentID
}

// runFakeAgent drains the dispatch queue like a real agent's heartbeat
// loop would, driving each run to the given terminal status through the
// same ledger transitions the result API performs.
func (env *testEnv) runFakeAgent(t *testing.T, agentID string, outcome plannedrun.Status) (stop func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cmd, ok := env.queue.Dequeue(agentID)
				if !ok || cmd.Type != models.CommandRunContainer {
					continue
				}
				runID := cmd.Payload.RunID
				if _, err := env.runs.Transition(ctx, runID,
					[]plannedrun.Status{plannedrun.StatusQueued}, plannedrun.StatusDispatched, nil); err != nil {
					continue
				}
				_, _ = env.runs.Transition(ctx, runID,
					[]plannedrun.Status{plannedrun.StatusDispatched}, plannedrun.StatusRunning, nil)
				opt := &services.RunTransition{}
				if outcome == plannedrun.StatusFailed {
					opt.ErrorKind = "oom"
				}
				_, _ = env.runs.Transition(ctx, runID,
					[]plannedrun.Status{plannedrun.StatusRunning}, outcome, opt)
			}
		}
	}()

	return func() {
		cancel()
		wg.Wait()
	}
}

func waitForCampaignStatus(t *testing.T, env *testEnv, id string, want campaign.Status) *ent.Campaign {
	t.Helper()
	deadline := time.After(30 * time.Second)
	for {
		select {
		case <-deadline:
			c, _ := env.campaigns.Get(context.Background(), id)
			t.Fatalf("campaign never reached %s (currently %v)", want, c)
			return nil
		case <-time.After(20 * time.Millisecond):
			c, err := env.campaigns.Get(context.Background(), id)
			require.NoError(t, err)
			if c.Status == want {
				return c
			}
		}
	}
}

func TestExecutorMarchesCampaignToCompletion(t *testing.T) {
	env := newTestEnv(t, Config{PollInterval: 20 * time.Millisecond, RunTimeout: 10 * time.Second})
	c, agentID := env.newQueuedCampaign(t, "rig-01")

	stop := env.runFakeAgent(t, agentID, plannedrun.StatusCompleted)
	defer stop()

	require.NoError(t, env.exec.Launch(context.Background(), c.ID))

	final := waitForCampaignStatus(t, env, c.ID, campaign.StatusCompleted)
	assert.Equal(t, 2, final.Succeeded)
	assert.Equal(t, 0, final.Failed)
	assert.Equal(t, 2, final.TotalRuns)

	runs, err := env.runs.ListByCampaign(context.Background(), c.ID)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	// Smallest quant marches first.
	assert.Equal(t, "Q2_K", runs[0].Quant)
	for _, r := range runs {
		assert.Equal(t, plannedrun.StatusCompleted, r.Status)
		assert.NotEmpty(t, r.CommandID)
		assert.NotNil(t, r.CompletedAt)
	}
	env.exec.Shutdown()
	assert.False(t, env.exec.Active(c.ID))
}

func TestExecutorAllRunsFailedFailsCampaign(t *testing.T) {
	env := newTestEnv(t, Config{PollInterval: 20 * time.Millisecond, RunTimeout: 10 * time.Second})
	c, agentID := env.newQueuedCampaign(t, "rig-01")

	stop := env.runFakeAgent(t, agentID, plannedrun.StatusFailed)
	defer stop()

	require.NoError(t, env.exec.Launch(context.Background(), c.ID))

	final := waitForCampaignStatus(t, env, c.ID, campaign.StatusFailed)
	assert.Equal(t, 0, final.Succeeded)
	assert.Equal(t, 2, final.Failed)
}

func TestExecutorRunTimeout(t *testing.T) {
	env := newTestEnv(t, Config{PollInterval: 20 * time.Millisecond, RunTimeout: 150 * time.Millisecond})
	c, _ := env.newQueuedCampaign(t, "rig-01")

	// No agent drains the queue: every run times out.
	require.NoError(t, env.exec.Launch(context.Background(), c.ID))

	waitForCampaignStatus(t, env, c.ID, campaign.StatusFailed)

	runs, err := env.runs.ListByCampaign(context.Background(), c.ID)
	require.NoError(t, err)
	for _, r := range runs {
		assert.Equal(t, plannedrun.StatusFailed, r.Status)
		assert.Equal(t, "timeout", r.ErrorKind)
	}
}

func TestExecutorCancelStopsMarch(t *testing.T) {
	env := newTestEnv(t, Config{PollInterval: 20 * time.Millisecond, RunTimeout: 10 * time.Second})
	c, agentID := env.newQueuedCampaign(t, "rig-01")

	// Nothing drains the queue, so the first run stays in flight while we
	// cancel the campaign out from under the executor.
	require.NoError(t, env.exec.Launch(context.Background(), c.ID))

	// Wait until the first run is queued.
	require.Eventually(t, func() bool {
		return env.queue.Len(agentID) > 0
	}, 10*time.Second, 10*time.Millisecond)

	_, err := env.campaigns.Cancel(context.Background(), c.ID)
	require.NoError(t, err)
	env.exec.Interrupt(c.ID)

	waitForCampaignStatus(t, env, c.ID, campaign.StatusCancelled)
	env.exec.Shutdown()

	runs, err := env.runs.ListByCampaign(context.Background(), c.ID)
	require.NoError(t, err)
	for _, r := range runs {
		assert.Equal(t, plannedrun.StatusCancelled, r.Status)
	}
	assert.Equal(t, 0, env.queue.Len(agentID))
}

func TestShutdownLeavesRunningCampaignForRecovery(t *testing.T) {
	env := newTestEnv(t, Config{PollInterval: 20 * time.Millisecond, RunTimeout: 10 * time.Second})
	ctx, cancel := context.WithCancel(context.Background())
	c, agentID := env.newQueuedCampaign(t, "rig-01")

	// No agent drains the queue, so the first run stays in flight when
	// the process goes down.
	require.NoError(t, env.exec.Launch(ctx, c.ID))
	require.Eventually(t, func() bool {
		return env.queue.Len(agentID) > 0
	}, 10*time.Second, 10*time.Millisecond)

	cancel()
	env.exec.Shutdown()

	// Shutdown is not completion: the campaign row must stay running so
	// startup recovery can resume it, and no run may have been forced
	// terminal.
	got, err := env.campaigns.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, campaign.StatusRunning, got.Status)

	runs, err := env.runs.ListByCampaign(context.Background(), c.ID)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	for _, r := range runs {
		assert.False(t, services.IsTerminalRunStatus(r.Status))
	}

	// The next startup picks the campaign back up and marches it out.
	stop := env.runFakeAgent(t, agentID, plannedrun.StatusCompleted)
	defer stop()
	require.NoError(t, env.exec.RecoverOnStartup(context.Background()))

	final := waitForCampaignStatus(t, env, c.ID, campaign.StatusCompleted)
	assert.Equal(t, 1, final.Failed, "run in flight at shutdown is orphaned")
	assert.Equal(t, 1, final.Succeeded)
}

func TestLaunchRejectsSecondExecutor(t *testing.T) {
	env := newTestEnv(t, Config{PollInterval: 20 * time.Millisecond, RunTimeout: 10 * time.Second})
	c, agentID := env.newQueuedCampaign(t, "rig-01")

	stop := env.runFakeAgent(t, agentID, plannedrun.StatusCompleted)
	defer stop()

	require.NoError(t, env.exec.Launch(context.Background(), c.ID))
	assert.Error(t, env.exec.Launch(context.Background(), c.ID))

	waitForCampaignStatus(t, env, c.ID, campaign.StatusCompleted)
}

func TestRecoverOnStartup(t *testing.T) {
	env := newTestEnv(t, Config{PollInterval: 20 * time.Millisecond, RunTimeout: 10 * time.Second})
	ctx := context.Background()
	c, agentID := env.newQueuedCampaign(t, "rig-01")

	// Simulate a crash: campaign running with one run stuck in flight and
	// the rest still pending.
	_, err := env.campaigns.Transition(ctx, c.ID,
		[]campaign.Status{campaign.StatusQueued}, campaign.StatusRunning)
	require.NoError(t, err)
	require.NoError(t, env.runs.InsertPlan(ctx, c.ID, mustPlan(t, env, c)))
	runs, err := env.runs.ListByCampaign(ctx, c.ID)
	require.NoError(t, err)
	_, err = env.runs.Transition(ctx, runs[0].ID,
		[]plannedrun.Status{plannedrun.StatusPending}, plannedrun.StatusRunning,
		&services.RunTransition{CommandID: "cmd-lost"})
	require.NoError(t, err)

	stop := env.runFakeAgent(t, agentID, plannedrun.StatusCompleted)
	defer stop()

	require.NoError(t, env.exec.RecoverOnStartup(ctx))

	final := waitForCampaignStatus(t, env, c.ID, campaign.StatusCompleted)
	assert.Equal(t, 1, final.Failed, "in-flight run is orphaned")
	assert.Equal(t, 1, final.Succeeded, "remaining pending run is resumed")

	orphan, err := env.runs.Get(ctx, runs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, plannedrun.StatusFailed, orphan.Status)
	assert.Equal(t, "orphaned", orphan.ErrorKind)
}

func TestWatchdogFailsStalledRuns(t *testing.T) {
	env := newTestEnv(t, Config{PollInterval: 20 * time.Millisecond, RunTimeout: 30 * time.Millisecond})
	ctx := context.Background()
	c, _ := env.newQueuedCampaign(t, "rig-01")

	require.NoError(t, env.runs.InsertPlan(ctx, c.ID, mustPlan(t, env, c)))
	runs, err := env.runs.ListByCampaign(ctx, c.ID)
	require.NoError(t, err)
	_, err = env.runs.Transition(ctx, runs[0].ID,
		[]plannedrun.Status{plannedrun.StatusPending}, plannedrun.StatusRunning, nil)
	require.NoError(t, err)

	time.Sleep(60 * time.Millisecond)
	require.NoError(t, env.exec.sweepStalledRuns(ctx))

	r, err := env.runs.Get(ctx, runs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, plannedrun.StatusFailed, r.Status)
	assert.Equal(t, "watchdog", r.ErrorKind)

	// The pending run is untouched.
	r, err = env.runs.Get(ctx, runs[1].ID)
	require.NoError(t, err)
	assert.Equal(t, plannedrun.StatusPending, r.Status)
}

func mustPlan(t *testing.T, env *testEnv, c *ent.Campaign) []planner.RunSpec {
	t.Helper()
	cfg, err := services.DecodeConfig(c)
	require.NoError(t, err)
	specs, err := planner.New(fakeDiscovery{}, slog.New(slog.DiscardHandler)).Plan(context.Background(), cfg)
	require.NoError(t, err)
	return specs
}
