package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Kirizan/kitt-sub000/ent"
	"github.com/Kirizan/kitt-sub000/ent/plannedrun"
	"github.com/Kirizan/kitt-sub000/pkg/planner"
	"github.com/google/uuid"
)

// terminalRunStatuses are immutable once reached.
var terminalRunStatuses = []plannedrun.Status{
	plannedrun.StatusCompleted,
	plannedrun.StatusFailed,
	plannedrun.StatusSkipped,
	plannedrun.StatusCancelled,
}

// IsTerminalRunStatus reports whether a run status is terminal.
func IsTerminalRunStatus(s plannedrun.Status) bool {
	for _, t := range terminalRunStatuses {
		if s == t {
			return true
		}
	}
	return false
}

// RunTransition carries the optional fields written alongside a status
// change.
type RunTransition struct {
	CommandID    string
	ErrorKind    string
	ErrorMessage string
}

// RunService owns the durable run ledger.
type RunService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewRunService creates a new RunService.
func NewRunService(client *ent.Client, logger *slog.Logger) *RunService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RunService{client: client, logger: logger}
}

// InsertPlan persists the expanded plan idempotently: rows that already
// exist for the campaign's plan key (model_ref, engine, quant, benchmark)
// are left untouched, so re-planning after a restart never duplicates or
// resets runs. Pre-skipped specs are inserted already terminal.
func (s *RunService) InsertPlan(ctx context.Context, campaignID string, specs []planner.RunSpec) error {
	if len(specs) == 0 {
		return nil
	}

	now := time.Now()
	builders := make([]*ent.PlannedRunCreate, 0, len(specs))
	for i, spec := range specs {
		b := s.client.PlannedRun.Create().
			SetID(uuid.New().String()).
			SetCampaignID(campaignID).
			SetModelName(spec.ModelName).
			SetModelRef(spec.ModelRef).
			SetEngineName(spec.EngineName).
			SetEngineMode(plannedrun.EngineMode(spec.EngineMode)).
			SetBenchmarkName(spec.BenchmarkName).
			SetSuiteName(spec.SuiteName).
			SetQuant(spec.Quant).
			SetEstimatedSizeGB(spec.EstimatedSizeGB).
			SetPlanIndex(i).
			SetLastTransitionAt(now)
		if spec.Skip {
			b.SetStatus(plannedrun.StatusSkipped).
				SetErrorKind(spec.SkipReason).
				SetCompletedAt(now)
		} else {
			b.SetStatus(plannedrun.StatusPending)
		}
		builders = append(builders, b)
	}

	err := s.client.PlannedRun.CreateBulk(builders...).
		OnConflictColumns(
			plannedrun.FieldCampaignID,
			plannedrun.FieldModelRef,
			plannedrun.FieldEngineName,
			plannedrun.FieldQuant,
			plannedrun.FieldBenchmarkName,
		).
		DoNothing().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert planned runs: %w", err)
	}

	s.logger.Info("plan persisted",
		slog.String("campaign_id", campaignID),
		slog.Int("runs", len(specs)))
	return nil
}

// Get retrieves a run by id.
func (s *RunService) Get(ctx context.Context, id string) (*ent.PlannedRun, error) {
	r, err := s.client.PlannedRun.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return r, nil
}

// GetByCommandID resolves the run a command was dispatched for.
func (s *RunService) GetByCommandID(ctx context.Context, commandID string) (*ent.PlannedRun, error) {
	r, err := s.client.PlannedRun.Query().
		Where(plannedrun.CommandIDEQ(commandID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run by command: %w", err)
	}
	return r, nil
}

// ListByCampaign returns a campaign's runs in plan order.
func (s *RunService) ListByCampaign(ctx context.Context, campaignID string) ([]*ent.PlannedRun, error) {
	runs, err := s.client.PlannedRun.Query().
		Where(plannedrun.CampaignIDEQ(campaignID)).
		Order(ent.Asc(plannedrun.FieldPlanIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// PendingRuns returns a campaign's not-yet-executed runs in plan order.
// This is the executor's resume cursor after a restart.
func (s *RunService) PendingRuns(ctx context.Context, campaignID string) ([]*ent.PlannedRun, error) {
	runs, err := s.client.PlannedRun.Query().
		Where(
			plannedrun.CampaignIDEQ(campaignID),
			plannedrun.StatusEQ(plannedrun.StatusPending),
		).
		Order(ent.Asc(plannedrun.FieldPlanIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending runs: %w", err)
	}
	return runs, nil
}

// Transition moves a run between statuses atomically: the update applies
// only when the current status is in the allowed set. Terminal statuses
// are never in any allowed set, which makes them immutable. Every
// transition refreshes last_transition_at for the watchdog.
func (s *RunService) Transition(ctx context.Context, runID string, from []plannedrun.Status, to plannedrun.Status, opt *RunTransition) (*ent.PlannedRun, error) {
	now := time.Now()
	upd := s.client.PlannedRun.Update().
		Where(plannedrun.IDEQ(runID), plannedrun.StatusIn(from...)).
		SetStatus(to).
		SetLastTransitionAt(now)

	switch to {
	case plannedrun.StatusQueued:
		upd.SetQueuedAt(now)
	case plannedrun.StatusDispatched:
		upd.SetDispatchedAt(now)
	case plannedrun.StatusRunning:
		upd.SetStartedAt(now)
	case plannedrun.StatusCompleted, plannedrun.StatusFailed,
		plannedrun.StatusSkipped, plannedrun.StatusCancelled:
		upd.SetCompletedAt(now)
	}

	if opt != nil {
		if opt.CommandID != "" {
			upd.SetCommandID(opt.CommandID)
		}
		if opt.ErrorKind != "" {
			upd.SetErrorKind(opt.ErrorKind)
		}
		if opt.ErrorMessage != "" {
			upd.SetErrorMessage(opt.ErrorMessage)
		}
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to transition run: %w", err)
	}
	if n == 0 {
		if _, err := s.Get(ctx, runID); err != nil {
			return nil, err
		}
		return nil, ErrConflict
	}

	r, err := s.Get(ctx, runID)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("run transitioned",
		slog.String("run_id", runID),
		slog.String("status", string(to)))
	return r, nil
}

// CancelRemaining cancels every non-terminal run of a campaign. The
// in-flight run (if any) is included: its agent-side command is stopped
// separately by the executor.
func (s *RunService) CancelRemaining(ctx context.Context, campaignID string) (int, error) {
	now := time.Now()
	n, err := s.client.PlannedRun.Update().
		Where(
			plannedrun.CampaignIDEQ(campaignID),
			plannedrun.StatusIn(
				plannedrun.StatusPending,
				plannedrun.StatusQueued,
				plannedrun.StatusDispatched,
				plannedrun.StatusRunning,
			),
		).
		SetStatus(plannedrun.StatusCancelled).
		SetCompletedAt(now).
		SetLastTransitionAt(now).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel remaining runs: %w", err)
	}
	if n > 0 {
		s.logger.Info("remaining runs cancelled",
			slog.String("campaign_id", campaignID),
			slog.Int("count", n))
	}
	return n, nil
}

// StaleInFlight returns queued, dispatched, or running runs whose last
// transition is older than the cutoff. The watchdog fails these.
func (s *RunService) StaleInFlight(ctx context.Context, olderThan time.Duration) ([]*ent.PlannedRun, error) {
	cutoff := time.Now().Add(-olderThan)
	runs, err := s.client.PlannedRun.Query().
		Where(
			plannedrun.StatusIn(
				plannedrun.StatusQueued,
				plannedrun.StatusDispatched,
				plannedrun.StatusRunning,
			),
			plannedrun.LastTransitionAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale runs: %w", err)
	}
	return runs, nil
}
