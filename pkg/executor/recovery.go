package executor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Kirizan/kitt-sub000/ent/campaign"
	"github.com/Kirizan/kitt-sub000/ent/plannedrun"
	"github.com/Kirizan/kitt-sub000/pkg/models"
	"github.com/Kirizan/kitt-sub000/pkg/services"
)

func listFilter(status campaign.Status) models.CampaignFilters {
	return models.CampaignFilters{Status: string(status), Limit: 100}
}

// DefaultWatchdogInterval is how often the watchdog scans for stalled
// in-flight runs.
const DefaultWatchdogInterval = time.Minute

// RecoverOnStartup reconciles the ledger after a server restart:
// commands live only in memory, so any run that was in flight when the
// process died is failed as orphaned, and campaigns that were queued or
// running get fresh executors to march the remaining pending runs.
// Called once before the API starts accepting traffic.
func (e *Executor) RecoverOnStartup(ctx context.Context) error {
	// Everything in flight lost its command with the old process.
	orphans, err := e.runs.StaleInFlight(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to scan in-flight runs: %w", err)
	}
	for _, run := range orphans {
		_, err := e.runs.Transition(ctx, run.ID,
			[]plannedrun.Status{plannedrun.StatusQueued, plannedrun.StatusDispatched, plannedrun.StatusRunning},
			plannedrun.StatusFailed,
			&services.RunTransition{
				ErrorKind:    "orphaned",
				ErrorMessage: "server restarted while run was in flight",
			})
		if err != nil && !errors.Is(err, services.ErrConflict) {
			e.logger.Error("failed to fail orphaned run",
				slog.String("run_id", run.ID), slog.Any("error", err))
			continue
		}
		e.logger.Warn("orphaned run failed on startup", slog.String("run_id", run.ID))
	}

	// Relaunch interrupted campaigns. Running campaigns are flipped back
	// to queued so the normal queued→running claim applies.
	interrupted, err := e.campaigns.List(ctx, listFilter(campaign.StatusRunning))
	if err != nil {
		return err
	}
	for _, c := range interrupted.Campaigns {
		if _, err := e.campaigns.Transition(ctx, c.ID,
			[]campaign.Status{campaign.StatusRunning}, campaign.StatusQueued); err != nil {
			e.logger.Error("failed to requeue interrupted campaign",
				slog.String("campaign_id", c.ID), slog.Any("error", err))
		}
	}

	queued, err := e.campaigns.List(ctx, listFilter(campaign.StatusQueued))
	if err != nil {
		return err
	}
	for _, c := range queued.Campaigns {
		e.logger.Info("resuming campaign after restart", slog.String("campaign_id", c.ID))
		if err := e.Launch(ctx, c.ID); err != nil {
			e.logger.Error("failed to resume campaign",
				slog.String("campaign_id", c.ID), slog.Any("error", err))
		}
	}
	return nil
}

// RunWatchdog periodically fails in-flight runs whose last transition is
// older than the run timeout. This is the backstop for runs orphaned
// outside the executor's own per-run timer (e.g. the executor crashed
// while other replicas kept the process alive).
func (e *Executor) RunWatchdog(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultWatchdogInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	e.logger.Info("run watchdog started", slog.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			e.logger.Info("run watchdog stopped")
			return
		case <-ticker.C:
			if err := e.sweepStalledRuns(ctx); err != nil {
				e.logger.Error("watchdog sweep failed", slog.Any("error", err))
			}
		}
	}
}

func (e *Executor) sweepStalledRuns(ctx context.Context) error {
	stalled, err := e.runs.StaleInFlight(ctx, e.cfg.RunTimeout)
	if err != nil {
		return err
	}
	for _, run := range stalled {
		_, err := e.runs.Transition(ctx, run.ID,
			[]plannedrun.Status{plannedrun.StatusQueued, plannedrun.StatusDispatched, plannedrun.StatusRunning},
			plannedrun.StatusFailed,
			&services.RunTransition{
				ErrorKind:    "watchdog",
				ErrorMessage: fmt.Sprintf("no progress for %s", e.cfg.RunTimeout),
			})
		if err != nil {
			if errors.Is(err, services.ErrConflict) {
				continue // reached a terminal state between scan and sweep
			}
			e.logger.Error("failed to sweep stalled run",
				slog.String("run_id", run.ID), slog.Any("error", err))
			continue
		}
		e.logger.Warn("stalled run failed by watchdog",
			slog.String("run_id", run.ID),
			slog.String("campaign_id", run.CampaignID))
		e.appendStatus(run.CampaignID, "run_failed", map[string]interface{}{
			"run_id": run.ID,
			"reason": "watchdog",
		})
	}
	return nil
}
