package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Kirizan/kitt-sub000/ent"
	"github.com/Kirizan/kitt-sub000/ent/campaign"
	"github.com/Kirizan/kitt-sub000/ent/plannedrun"
	"github.com/Kirizan/kitt-sub000/pkg/models"
)

// handleCreateCampaign handles POST /api/v1/campaigns. The campaign is
// created as a draft; /start queues it for execution.
func (s *Server) handleCreateCampaign(c *gin.Context) {
	var req models.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := s.campaigns.Create(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.CampaignResponse{
		CampaignID: created.ID,
		Status:     string(created.Status),
		CreatedAt:  created.CreatedAt,
	})
}

// handleListCampaigns handles GET /api/v1/campaigns.
func (s *Server) handleListCampaigns(c *gin.Context) {
	filters := models.CampaignFilters{Status: c.Query("status")}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		filters.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be an integer"})
			return
		}
		filters.Offset = n
	}

	resp, err := s.campaigns.List(c.Request.Context(), filters)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// handleGetCampaign handles GET /api/v1/campaigns/:id: the full
// snapshot with runs and aggregates derived from the ledger.
func (s *Server) handleGetCampaign(c *gin.Context) {
	snap, err := s.campaigns.Snapshot(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// handleStartCampaign handles POST /api/v1/campaigns/:id/start: flips
// the draft to queued and hands it to the executor.
func (s *Server) handleStartCampaign(c *gin.Context) {
	id := c.Param("id")
	queued, err := s.campaigns.Transition(c.Request.Context(), id,
		[]campaign.Status{campaign.StatusDraft}, campaign.StatusQueued)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	// Executors outlive the request: they run on the process context.
	if err := s.exec.Launch(s.execContext(), id); err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, models.CampaignResponse{
		CampaignID: queued.ID,
		Status:     string(queued.Status),
		CreatedAt:  queued.CreatedAt,
	})
}

// handleCancelCampaign handles POST /api/v1/campaigns/:id/cancel.
// Cancellation is cooperative: the ledger flips immediately, the
// executor notices and stops after the in-flight run is dealt with.
// The in-flight benchmark is left running unless the body asks for a
// stop, in which case a stop_container is dispatched alongside.
func (s *Server) handleCancelCampaign(c *gin.Context) {
	id := c.Param("id")

	var req models.CancelCampaignRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	cancelled, err := s.campaigns.Cancel(c.Request.Context(), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	// Dispatch the stop before the runs settle: once a run flips to
	// cancelled there is no in-flight status left to match on. The
	// queue clear below spares control commands.
	if req.Stop {
		s.stopInFlightRun(c.Request.Context(), cancelled)
	}

	if !s.exec.Interrupt(id) {
		// No executor running (draft/queued campaign): settle the runs
		// here since no march loop will.
		if _, err := s.runs.CancelRemaining(c.Request.Context(), id); err != nil {
			mapServiceError(c, err)
			return
		}
		s.queue.ClearCampaign(cancelled.AgentID, id)
	}
	s.metrics.CampaignsTotal.WithLabelValues("cancelled").Inc()

	c.JSON(http.StatusOK, models.CampaignResponse{
		CampaignID: cancelled.ID,
		Status:     string(cancelled.Status),
		CreatedAt:  cancelled.CreatedAt,
	})
}

// stopInFlightRun dispatches stop_container for the campaign's run that
// is currently on the agent, if any. Best effort: a full queue only
// delays teardown until the run settles on its own.
func (s *Server) stopInFlightRun(ctx context.Context, c *ent.Campaign) {
	runs, err := s.runs.ListByCampaign(ctx, c.ID)
	if err != nil {
		s.logger.Warn("failed to list runs for stop dispatch", "campaign_id", c.ID, "error", err)
		return
	}
	for _, run := range runs {
		if run.Status != plannedrun.StatusDispatched && run.Status != plannedrun.StatusRunning {
			continue
		}
		containerID := ""
		if run.CommandID != nil {
			containerID = *run.CommandID
		}
		stop := &models.Command{
			CommandID:  uuid.New().String(),
			AgentID:    c.AgentID,
			CampaignID: c.ID,
			Type:       models.CommandStopContainer,
			Payload:    models.CommandPayload{RunID: run.ID, ContainerID: containerID},
			CreatedAt:  time.Now(),
		}
		if err := s.queue.Enqueue(c.AgentID, stop); err != nil {
			s.logger.Warn("failed to enqueue stop command", "agent_id", c.AgentID, "error", err)
		}
	}
}
