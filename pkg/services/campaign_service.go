package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/Kirizan/kitt-sub000/ent"
	"github.com/Kirizan/kitt-sub000/ent/campaign"
	"github.com/Kirizan/kitt-sub000/ent/plannedrun"
	"github.com/Kirizan/kitt-sub000/ent/runresult"
	"github.com/Kirizan/kitt-sub000/ent/streamevent"
	"github.com/Kirizan/kitt-sub000/pkg/models"
	"github.com/google/uuid"
)

// topFailureKindLimit caps the failure-kind breakdown in snapshots.
const topFailureKindLimit = 5

// CampaignService manages campaign lifecycle and aggregate views.
type CampaignService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewCampaignService creates a new CampaignService.
func NewCampaignService(client *ent.Client, logger *slog.Logger) *CampaignService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CampaignService{client: client, logger: logger}
}

// Create validates the config and persists a new draft campaign. The
// config is immutable after this point.
func (s *CampaignService) Create(ctx context.Context, req models.CreateCampaignRequest) (*ent.Campaign, error) {
	if req.AgentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}
	if err := req.Config.Validate(); err != nil {
		return nil, NewValidationError("config", err.Error())
	}

	// Verify the target agent exists before accepting the campaign.
	if _, err := s.client.Agent.Get(ctx, req.AgentID); err != nil {
		if ent.IsNotFound(err) {
			return nil, NewValidationError("agent_id", "unknown agent")
		}
		return nil, fmt.Errorf("failed to look up agent: %w", err)
	}

	cfgJSON, err := configToMap(&req.Config)
	if err != nil {
		return nil, err
	}

	c, err := s.client.Campaign.Create().
		SetID(uuid.New().String()).
		SetName(req.Config.Name).
		SetDescription(req.Config.Description).
		SetConfig(cfgJSON).
		SetAgentID(req.AgentID).
		SetStatus(campaign.StatusDraft).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	s.logger.Info("campaign created",
		slog.String("campaign_id", c.ID),
		slog.String("name", c.Name),
		slog.String("agent_id", c.AgentID))
	return c, nil
}

// Get retrieves a campaign by id.
func (s *CampaignService) Get(ctx context.Context, id string) (*ent.Campaign, error) {
	c, err := s.client.Campaign.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return c, nil
}

// List returns campaigns newest first with optional status filtering and
// pagination.
func (s *CampaignService) List(ctx context.Context, filters models.CampaignFilters) (*models.CampaignListResponse, error) {
	query := s.client.Campaign.Query()
	if filters.Status != "" {
		status := campaign.Status(filters.Status)
		if err := campaign.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", "unknown status")
		}
		query = query.Where(campaign.StatusEQ(status))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count campaigns: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	campaigns, err := query.
		Order(ent.Desc(campaign.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	return &models.CampaignListResponse{
		Campaigns:  campaigns,
		TotalCount: total,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// Transition moves a campaign between statuses with an atomic
// compare-and-set: the update applies only when the current status is in
// the allowed set, otherwise ErrConflict.
func (s *CampaignService) Transition(ctx context.Context, id string, from []campaign.Status, to campaign.Status) (*ent.Campaign, error) {
	upd := s.client.Campaign.Update().
		Where(campaign.IDEQ(id), campaign.StatusIn(from...)).
		SetStatus(to)

	switch to {
	case campaign.StatusRunning:
		upd.SetStartedAt(time.Now())
	case campaign.StatusCompleted, campaign.StatusFailed, campaign.StatusCancelled:
		upd.SetCompletedAt(time.Now())
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to transition campaign: %w", err)
	}
	if n == 0 {
		// Either missing or in a disallowed state; distinguish for the API.
		if _, err := s.Get(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrConflict
	}

	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info("campaign transitioned",
		slog.String("campaign_id", id),
		slog.String("status", string(to)))
	return c, nil
}

// Cancel requests cancellation. Draft and queued campaigns cancel
// immediately; running campaigns are flipped to cancelled and the
// executor finishes the in-flight run before honoring it.
func (s *CampaignService) Cancel(ctx context.Context, id string) (*ent.Campaign, error) {
	return s.Transition(ctx, id,
		[]campaign.Status{campaign.StatusDraft, campaign.StatusQueued, campaign.StatusRunning},
		campaign.StatusCancelled)
}

// Finalize writes the aggregate counts and optional error message on a
// campaign row after the executor finishes.
func (s *CampaignService) Finalize(ctx context.Context, id string, counts models.CampaignSnapshot, errorMessage string) error {
	upd := s.client.Campaign.UpdateOneID(id).
		SetTotalRuns(counts.TotalRuns).
		SetSucceeded(counts.Succeeded).
		SetFailed(counts.Failed).
		SetSkipped(counts.Skipped)
	if errorMessage != "" {
		upd.SetErrorMessage(errorMessage)
	}
	if _, err := upd.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to finalize campaign: %w", err)
	}
	return nil
}

// Snapshot returns the campaign with its runs in plan order plus
// aggregates derived from the run rows. Counts are always recomputed
// from the ledger, never read back from the campaign row.
func (s *CampaignService) Snapshot(ctx context.Context, id string) (*models.CampaignSnapshot, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	runs, err := s.client.PlannedRun.Query().
		Where(plannedrun.CampaignIDEQ(id)).
		Order(ent.Asc(plannedrun.FieldPlanIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load campaign runs: %w", err)
	}

	snap := &models.CampaignSnapshot{
		Campaign:  c,
		Runs:      runs,
		TotalRuns: len(runs),
	}

	failureKinds := make(map[string]int)
	for _, r := range runs {
		switch r.Status {
		case plannedrun.StatusCompleted:
			snap.Succeeded++
		case plannedrun.StatusFailed:
			snap.Failed++
			kind := r.ErrorKind
			if kind == "" {
				kind = "unknown"
			}
			failureKinds[kind]++
		case plannedrun.StatusSkipped:
			snap.Skipped++
		case plannedrun.StatusCancelled:
			snap.Cancelled++
		default:
			snap.PendingOrRunning++
		}
	}

	snap.TopFailureKinds = topFailureKinds(failureKinds)
	return snap, nil
}

// DecodeConfig unpacks the stored config JSON into a typed config.
func DecodeConfig(c *ent.Campaign) (*models.CampaignConfig, error) {
	raw, err := json.Marshal(c.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal campaign config: %w", err)
	}
	var cfg models.CampaignConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode campaign config: %w", err)
	}
	return &cfg, nil
}

func configToMap(cfg *models.CampaignConfig) (map[string]interface{}, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return m, nil
}

func topFailureKinds(counts map[string]int) []models.FailureKindCount {
	if len(counts) == 0 {
		return nil
	}
	kinds := make([]models.FailureKindCount, 0, len(counts))
	for kind, n := range counts {
		kinds = append(kinds, models.FailureKindCount{Kind: kind, Count: n})
	}
	sort.Slice(kinds, func(i, j int) bool {
		if kinds[i].Count != kinds[j].Count {
			return kinds[i].Count > kinds[j].Count
		}
		return kinds[i].Kind < kinds[j].Kind
	})
	if len(kinds) > topFailureKindLimit {
		kinds = kinds[:topFailureKindLimit]
	}
	return kinds
}

// PruneTerminal deletes terminal campaigns whose completion is older
// than retentionDays, together with their runs, results, and stream
// events. Returns the number of campaigns removed.
func (s *CampaignService) PruneTerminal(ctx context.Context, retentionDays int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	ids, err := s.client.Campaign.Query().
		Where(
			campaign.StatusIn(campaign.StatusCompleted, campaign.StatusFailed, campaign.StatusCancelled),
			campaign.CompletedAtLT(cutoff),
		).
		IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to find expired campaigns: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	runIDs, err := s.client.PlannedRun.Query().
		Where(plannedrun.CampaignIDIn(ids...)).
		IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to find expired runs: %w", err)
	}

	if len(runIDs) > 0 {
		if _, err := s.client.RunResult.Delete().
			Where(runresult.RunIDIn(runIDs...)).
			Exec(ctx); err != nil {
			return 0, fmt.Errorf("failed to delete expired results: %w", err)
		}
	}
	if _, err := s.client.PlannedRun.Delete().
		Where(plannedrun.CampaignIDIn(ids...)).
		Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to delete expired runs: %w", err)
	}
	if _, err := s.client.StreamEvent.Delete().
		Where(streamevent.StreamIDIn(ids...)).
		Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to delete expired events: %w", err)
	}

	n, err := s.client.Campaign.Delete().
		Where(campaign.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired campaigns: %w", err)
	}
	return n, nil
}
