// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/Kirizan/kitt-sub000/pkg/config"
	"github.com/Kirizan/kitt-sub000/pkg/services"
)

// Service periodically enforces retention policies:
//   - Deletes terminal campaigns (with runs and results) past retention
//   - Deletes stream events past their TTL
//
// All operations are idempotent.
type Service struct {
	config    *config.RetentionConfig
	campaigns *services.CampaignService
	events    *services.EventService
	logger    *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	campaigns *services.CampaignService,
	events *services.EventService,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		config:    cfg,
		campaigns: campaigns,
		events:    events,
		logger:    logger,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("cleanup service started",
		"campaign_retention_days", s.config.CampaignRetentionDays,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce applies every retention policy a single time.
func (s *Service) RunOnce(ctx context.Context) {
	s.pruneCampaigns(ctx)
	s.pruneEvents(ctx)
}

func (s *Service) pruneCampaigns(ctx context.Context) {
	count, err := s.campaigns.PruneTerminal(ctx, s.config.CampaignRetentionDays)
	if err != nil {
		s.logger.Error("retention: campaign prune failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("retention: deleted expired campaigns", "count", count)
	}
}

func (s *Service) pruneEvents(ctx context.Context) {
	count, err := s.events.Prune(ctx, s.config.EventTTL)
	if err != nil {
		s.logger.Error("retention: event prune failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("retention: deleted expired stream events", "count", count)
	}
}
