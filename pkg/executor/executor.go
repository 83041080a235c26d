// Package executor marches campaigns through their planned runs: one
// campaign executor per campaign, one run in flight at a time. The
// executor owns campaign/run status transitions on the dispatch side;
// terminal run states arrive asynchronously through result ingestion, so
// the loop polls the ledger rather than trusting in-memory state.
package executor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Kirizan/kitt-sub000/ent"
	"github.com/Kirizan/kitt-sub000/ent/campaign"
	"github.com/Kirizan/kitt-sub000/ent/plannedrun"
	"github.com/Kirizan/kitt-sub000/pkg/dispatch"
	"github.com/Kirizan/kitt-sub000/pkg/models"
	"github.com/Kirizan/kitt-sub000/pkg/planner"
	"github.com/Kirizan/kitt-sub000/pkg/services"
)

// Config holds executor tuning knobs.
type Config struct {
	// PollInterval is how often the march loop re-reads an in-flight
	// run's status from the ledger.
	PollInterval time.Duration
	// RunTimeout bounds a single run from dispatch to terminal state.
	RunTimeout time.Duration
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		PollInterval: 5 * time.Second,
		RunTimeout:   30 * time.Minute,
	}
}

// Executor runs campaigns. It is safe for concurrent use; each campaign
// gets its own goroutine and at most one executor (enforced both by the
// in-memory registry and the queued→running CAS).
type Executor struct {
	campaigns *services.CampaignService
	runs      *services.RunService
	events    *services.EventService
	queue     *dispatch.Queue
	planner   *planner.Planner
	logger    *slog.Logger
	cfg       Config

	mu     sync.Mutex
	active map[string]context.CancelFunc
	wg     sync.WaitGroup
}

// New creates an Executor.
func New(
	campaigns *services.CampaignService,
	runs *services.RunService,
	events *services.EventService,
	queue *dispatch.Queue,
	pl *planner.Planner,
	cfg Config,
	logger *slog.Logger,
) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultConfig().PollInterval
	}
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = DefaultConfig().RunTimeout
	}
	return &Executor{
		campaigns: campaigns,
		runs:      runs,
		events:    events,
		queue:     queue,
		planner:   pl,
		cfg:       cfg,
		logger:    logger,
		active:    make(map[string]context.CancelFunc),
	}
}

// Launch starts marching a queued campaign in the background. A second
// Launch for the same campaign is a no-op error; the queued→running CAS
// inside the march catches executors racing across restarts.
func (e *Executor) Launch(ctx context.Context, campaignID string) error {
	e.mu.Lock()
	if _, ok := e.active[campaignID]; ok {
		e.mu.Unlock()
		return fmt.Errorf("campaign %s already has an executor", campaignID)
	}
	runCtx, cancel := context.WithCancel(ctx)
	e.active[campaignID] = cancel
	e.mu.Unlock()

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		defer func() {
			cancel()
			e.mu.Lock()
			delete(e.active, campaignID)
			e.mu.Unlock()
		}()
		e.march(runCtx, campaignID)
	}()
	return nil
}

// Interrupt wakes the executor of a cancelled campaign so it stops
// waiting on the in-flight run. Returns false when no executor is
// active for the campaign on this process.
func (e *Executor) Interrupt(campaignID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	cancel, ok := e.active[campaignID]
	if ok {
		cancel()
	}
	return ok
}

// Active reports whether a campaign currently has an executor.
func (e *Executor) Active(campaignID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.active[campaignID]
	return ok
}

// Shutdown waits for all campaign executors to return. Callers cancel
// the launch context first; the marches notice and exit at the next poll.
func (e *Executor) Shutdown() {
	e.wg.Wait()
}

// march drives one campaign from queued to a terminal state.
func (e *Executor) march(ctx context.Context, campaignID string) {
	log := e.logger.With(slog.String("campaign_id", campaignID))

	c, err := e.campaigns.Transition(ctx, campaignID,
		[]campaign.Status{campaign.StatusQueued}, campaign.StatusRunning)
	if err != nil {
		// Another executor claimed it, or it was cancelled before start.
		log.Warn("campaign not claimable", slog.Any("error", err))
		return
	}

	cfg, err := services.DecodeConfig(c)
	if err != nil {
		e.failCampaign(campaignID, fmt.Sprintf("invalid stored config: %v", err))
		return
	}

	specs, err := e.planner.Plan(ctx, cfg)
	if err != nil {
		e.failCampaign(campaignID, fmt.Sprintf("planning failed: %v", err))
		return
	}
	if err := e.runs.InsertPlan(ctx, campaignID, specs); err != nil {
		e.failCampaign(campaignID, fmt.Sprintf("plan persistence failed: %v", err))
		return
	}

	e.appendStatus(campaignID, "running", map[string]interface{}{"total_runs": len(specs)})

	total, err := e.runs.ListByCampaign(ctx, campaignID)
	if err != nil {
		e.failCampaign(campaignID, fmt.Sprintf("ledger read failed: %v", err))
		return
	}
	totalRuns := len(total)

	for {
		if e.campaignCancelled(campaignID) {
			break
		}

		pending, err := e.runs.PendingRuns(ctx, campaignID)
		if err != nil {
			e.failCampaign(campaignID, fmt.Sprintf("ledger read failed: %v", err))
			return
		}
		if len(pending) == 0 {
			break
		}

		run := pending[0]
		e.appendLog(campaignID, fmt.Sprintf("[%d/%d] %s %s %s on %s",
			run.PlanIndex+1, totalRuns, run.ModelName, run.Quant, run.BenchmarkName, run.EngineName))

		if err := e.executeRun(ctx, c, cfg, run); err != nil {
			if ctx.Err() != nil {
				break
			}
			log.Error("run execution failed", slog.String("run_id", run.ID), slog.Any("error", err))
		}
	}

	// A cancelled context with the campaign still running means process
	// shutdown, not cancellation. Leave the row in running: startup
	// recovery resumes the march and the watchdog settles the in-flight
	// run. Finalizing here would close the campaign over pending runs.
	if ctx.Err() != nil && !e.campaignCancelled(campaignID) {
		log.Info("shutdown mid-campaign, leaving for startup recovery")
		return
	}

	e.finalize(campaignID)
}

// executeRun dispatches one run and waits for it to reach a terminal
// state in the ledger.
func (e *Executor) executeRun(ctx context.Context, c *ent.Campaign, cfg *models.CampaignConfig, run *ent.PlannedRun) error {
	cmd := buildCommand(c.AgentID, cfg, run)

	// The command id is stamped before dispatch so a crash between CAS and
	// enqueue leaves an auditable trail.
	if _, err := e.runs.Transition(ctx, run.ID,
		[]plannedrun.Status{plannedrun.StatusPending}, plannedrun.StatusQueued,
		&services.RunTransition{CommandID: cmd.CommandID}); err != nil {
		return fmt.Errorf("failed to queue run: %w", err)
	}
	e.appendStatus(c.ID, "run_queued", map[string]interface{}{"run_id": run.ID, "command_id": cmd.CommandID})

	if err := e.queue.Enqueue(c.AgentID, cmd); err != nil {
		_, ferr := e.runs.Transition(ctx, run.ID,
			[]plannedrun.Status{plannedrun.StatusQueued}, plannedrun.StatusFailed,
			&services.RunTransition{ErrorKind: "dispatch", ErrorMessage: err.Error()})
		if ferr != nil {
			return ferr
		}
		return fmt.Errorf("failed to enqueue command: %w", err)
	}

	return e.awaitTerminal(ctx, c.ID, c.AgentID, run.ID, cmd)
}

// awaitTerminal polls the ledger until the run finishes, the per-run
// timeout fires, or the campaign is cancelled.
func (e *Executor) awaitTerminal(ctx context.Context, campaignID, agentID, runID string, cmd *models.Command) error {
	deadline := time.NewTimer(e.cfg.RunTimeout)
	defer deadline.Stop()
	ticker := time.NewTicker(e.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-deadline.C:
			// The agent may still be grinding; tell it to stop and fail
			// the run from whatever in-flight state it is in.
			e.stopCommand(agentID, cmd)
			_, err := e.runs.Transition(context.Background(), runID,
				[]plannedrun.Status{plannedrun.StatusQueued, plannedrun.StatusDispatched, plannedrun.StatusRunning},
				plannedrun.StatusFailed,
				&services.RunTransition{ErrorKind: "timeout", ErrorMessage: fmt.Sprintf("no terminal state within %s", e.cfg.RunTimeout)})
			if err != nil && !errors.Is(err, services.ErrConflict) {
				return err
			}
			e.appendStatus(campaignID, "run_timeout", map[string]interface{}{"run_id": runID})
			return nil

		case <-ticker.C:
			run, err := e.runs.Get(ctx, runID)
			if err != nil {
				return err
			}
			if services.IsTerminalRunStatus(run.Status) {
				e.appendStatus(campaignID, "run_"+string(run.Status), map[string]interface{}{"run_id": runID})
				return nil
			}
			if e.campaignCancelled(campaignID) {
				// Cancellation does not pre-empt the agent: drop the
				// command if it is still queued, otherwise let the run
				// finish (operators request pre-emption explicitly via
				// the cancel API's stop flag).
				e.queue.Drop(agentID, cmd.CommandID)
				return nil
			}
		}
	}
}

// stopCommand drops the command if still queued, or dispatches a
// stop_container so the agent tears the benchmark down.
func (e *Executor) stopCommand(agentID string, cmd *models.Command) {
	if e.queue.Drop(agentID, cmd.CommandID) {
		return
	}
	stop := &models.Command{
		CommandID:  uuid.New().String(),
		AgentID:    agentID,
		CampaignID: cmd.CampaignID,
		Type:       models.CommandStopContainer,
		Payload:    models.CommandPayload{RunID: cmd.Payload.RunID, ContainerID: cmd.CommandID},
		CreatedAt:  time.Now(),
	}
	if err := e.queue.Enqueue(agentID, stop); err != nil {
		e.logger.Warn("failed to enqueue stop command",
			slog.String("agent_id", agentID), slog.Any("error", err))
	}
}

// finalize settles the campaign row from the run ledger. Uses a
// background context: finalization must happen even when the march
// context was cancelled.
func (e *Executor) finalize(campaignID string) {
	ctx := context.Background()
	log := e.logger.With(slog.String("campaign_id", campaignID))

	c, err := e.campaigns.Get(ctx, campaignID)
	if err != nil {
		log.Error("failed to load campaign for finalize", slog.Any("error", err))
		return
	}

	if c.Status == campaign.StatusCancelled {
		e.queue.ClearCampaign(c.AgentID, campaignID)
		if _, err := e.runs.CancelRemaining(ctx, campaignID); err != nil {
			log.Error("failed to cancel remaining runs", slog.Any("error", err))
		}
	}

	snap, err := e.campaigns.Snapshot(ctx, campaignID)
	if err != nil {
		log.Error("failed to snapshot campaign", slog.Any("error", err))
		return
	}
	if err := e.campaigns.Finalize(ctx, campaignID, *snap, ""); err != nil {
		log.Error("failed to write campaign aggregates", slog.Any("error", err))
	}

	if c.Status == campaign.StatusRunning {
		to := campaign.StatusCompleted
		if snap.Succeeded == 0 && snap.Failed > 0 {
			to = campaign.StatusFailed
		}
		if _, err := e.campaigns.Transition(ctx, campaignID,
			[]campaign.Status{campaign.StatusRunning}, to); err != nil {
			log.Error("failed to close campaign", slog.Any("error", err))
			return
		}
		e.appendStatus(campaignID, string(to), map[string]interface{}{
			"succeeded": snap.Succeeded,
			"failed":    snap.Failed,
			"skipped":   snap.Skipped,
		})
	} else {
		e.appendStatus(campaignID, string(c.Status), nil)
	}

	log.Info("campaign finished",
		slog.Int("succeeded", snap.Succeeded),
		slog.Int("failed", snap.Failed),
		slog.Int("skipped", snap.Skipped))
}

// failCampaign force-fails a campaign that cannot make progress.
func (e *Executor) failCampaign(campaignID, msg string) {
	ctx := context.Background()
	e.logger.Error("campaign failed", slog.String("campaign_id", campaignID), slog.String("error", msg))

	if _, err := e.campaigns.Transition(ctx, campaignID,
		[]campaign.Status{campaign.StatusQueued, campaign.StatusRunning}, campaign.StatusFailed); err != nil {
		e.logger.Error("failed to mark campaign failed", slog.Any("error", err))
		return
	}
	snap, err := e.campaigns.Snapshot(ctx, campaignID)
	if err == nil {
		_ = e.campaigns.Finalize(ctx, campaignID, *snap, msg)
	}
	e.appendStatus(campaignID, "failed", map[string]interface{}{"error": msg})
}

func (e *Executor) campaignCancelled(campaignID string) bool {
	c, err := e.campaigns.Get(context.Background(), campaignID)
	if err != nil {
		return false
	}
	return c.Status == campaign.StatusCancelled
}

func (e *Executor) appendStatus(campaignID, status string, extra map[string]interface{}) {
	if _, err := e.events.AppendStatus(context.Background(), campaignID, status, extra); err != nil {
		e.logger.Warn("failed to append status event",
			slog.String("campaign_id", campaignID), slog.Any("error", err))
	}
}

func (e *Executor) appendLog(campaignID, line string) {
	if _, err := e.events.AppendLog(context.Background(), campaignID, line); err != nil {
		e.logger.Warn("failed to append log event",
			slog.String("campaign_id", campaignID), slog.Any("error", err))
	}
}

// buildCommand turns a planned run into the agent-facing command.
func buildCommand(agentID string, cfg *models.CampaignConfig, run *ent.PlannedRun) *models.Command {
	var engineConfig map[string]interface{}
	for _, eng := range cfg.Engines {
		if eng.Name == run.EngineName {
			engineConfig = eng.Config
			break
		}
	}

	return &models.Command{
		CommandID:  uuid.New().String(),
		AgentID:    agentID,
		CampaignID: run.CampaignID,
		Type:       models.CommandRunContainer,
		Payload: models.CommandPayload{
			RunID:         run.ID,
			ModelName:     run.ModelName,
			ModelRef:      run.ModelRef,
			Quant:         run.Quant,
			EngineName:    run.EngineName,
			EngineMode:    string(run.EngineMode),
			EngineConfig:  engineConfig,
			BenchmarkName: run.BenchmarkName,
			SuiteName:     run.SuiteName,
		},
		CreatedAt: time.Now(),
	}
}
