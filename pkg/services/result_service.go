package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Kirizan/kitt-sub000/ent"
	"github.com/Kirizan/kitt-sub000/ent/runresult"
	"github.com/Kirizan/kitt-sub000/pkg/models"
	"github.com/google/uuid"
)

// ResultService persists benchmark results. A run has at most one result
// row; duplicate reports (agent retries, redelivered commands) are
// absorbed without overwriting the first write.
type ResultService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewResultService creates a new ResultService.
func NewResultService(client *ent.Client, logger *slog.Logger) *ResultService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResultService{client: client, logger: logger}
}

// Record stores the result for a run. The first write wins: a second
// report for the same run returns the existing row untouched.
func (s *ResultService) Record(ctx context.Context, runID string, req models.ResultRequest) (*ent.RunResult, error) {
	if req.CommandID == "" {
		return nil, NewValidationError("command_id", "required")
	}

	builder := s.client.RunResult.Create().
		SetID(uuid.New().String()).
		SetRunID(runID).
		SetCommandID(req.CommandID).
		SetPassed(req.Passed)
	if req.Metrics != nil {
		builder.SetMetrics(req.Metrics)
	}
	if req.OutputLocation != "" {
		builder.SetOutputLocation(req.OutputLocation)
	}
	if req.HardwareSnapshot != nil {
		builder.SetHardwareSnapshot(req.HardwareSnapshot)
	}

	result, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			existing, getErr := s.GetByRun(ctx, runID)
			if getErr != nil {
				return nil, getErr
			}
			s.logger.Info("duplicate result ignored",
				slog.String("run_id", runID),
				slog.String("command_id", req.CommandID))
			return existing, nil
		}
		return nil, fmt.Errorf("failed to record result: %w", err)
	}

	s.logger.Info("result recorded",
		slog.String("run_id", runID),
		slog.String("result_id", result.ID),
		slog.Bool("passed", result.Passed))
	return result, nil
}

// GetByRun returns the result for a run, or ErrNotFound.
func (s *ResultService) GetByRun(ctx context.Context, runID string) (*ent.RunResult, error) {
	r, err := s.client.RunResult.Query().
		Where(runresult.RunIDEQ(runID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}
	return r, nil
}
