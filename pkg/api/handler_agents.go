package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kirizan/kitt-sub000/ent"
	"github.com/Kirizan/kitt-sub000/ent/plannedrun"
	"github.com/Kirizan/kitt-sub000/pkg/bus"
	"github.com/Kirizan/kitt-sub000/pkg/models"
	"github.com/Kirizan/kitt-sub000/pkg/services"
)

// Heartbeat interval bounds advertised to agents.
const (
	minHeartbeatIntervalS = 10
	maxHeartbeatIntervalS = 300
)

// handleProvisionAgent handles POST /api/v1/agents/provision.
func (s *Server) handleProvisionAgent(c *gin.Context) {
	var req models.ProvisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := s.agents.Provision(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// handleListAgents handles GET /api/v1/agents.
func (s *Server) handleListAgents(c *gin.Context) {
	agents, err := s.agents.List(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.AgentListResponse{Agents: agents})
}

// handleGetAgent handles GET /api/v1/agents/:name.
func (s *Server) handleGetAgent(c *gin.Context) {
	a, err := s.agents.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// handleRotateToken handles POST /api/v1/agents/:name/rotate-token.
func (s *Server) handleRotateToken(c *gin.Context) {
	resp, err := s.agents.RotateToken(c.Request.Context(), c.Param("name"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// handleUnregisterAgent handles DELETE /api/v1/agents/:name.
func (s *Server) handleUnregisterAgent(c *gin.Context) {
	if err := s.agents.Unregister(c.Request.Context(), c.Param("name")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// handleHeartbeat handles POST /api/v1/agents/:name/heartbeat. This is
// the only channel that hands commands to agents: a busy agent (one
// reporting active commands) gets a null command back, otherwise the
// oldest queued command is popped and its run flipped to dispatched.
func (s *Server) handleHeartbeat(c *gin.Context) {
	var req models.HeartbeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := c.Param("name")
	a, err := s.agents.Heartbeat(c.Request.Context(), name, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	s.metrics.HeartbeatsTotal.WithLabelValues(name).Inc()

	resp := models.HeartbeatResponse{
		AgentID:            a.ID,
		HeartbeatIntervalS: clampHeartbeatInterval(s.cfg.HeartbeatIntervalS),
		Settings:           s.cfg.AgentSettings,
	}

	if len(req.ActiveCommands) == 0 {
		resp.Command = s.nextCommand(c, a)
	}

	c.JSON(http.StatusOK, resp)
}

// nextCommand pops commands for the agent until one is still wanted.
// Commands whose run was cancelled between enqueue and heartbeat are
// dropped silently.
func (s *Server) nextCommand(c *gin.Context, a *ent.Agent) *models.Command {
	for {
		cmd, ok := s.queue.Dequeue(a.ID)
		if !ok {
			return nil
		}

		if cmd.Type != models.CommandRunContainer && cmd.Type != models.CommandRunTest {
			// Control commands (stop_container, check_docker) pass
			// through without a ledger transition.
			s.metrics.CommandsDispatched.Inc()
			return cmd
		}

		_, err := s.runs.Transition(c.Request.Context(), cmd.Payload.RunID,
			[]plannedrun.Status{plannedrun.StatusQueued}, plannedrun.StatusDispatched, nil)
		if err != nil {
			// Run no longer wants dispatch (cancelled or already
			// terminal): drop this command and try the next.
			s.logger.Info("dropping stale command",
				slog.String("command_id", cmd.CommandID),
				slog.String("run_id", cmd.Payload.RunID),
				slog.Any("reason", err))
			continue
		}
		s.metrics.CommandsDispatched.Inc()
		return cmd
	}
}

// handleResults handles POST /api/v1/agents/:name/results: the terminal
// report for a command. The result row is write-once and the run
// transition CAS makes redelivered reports harmless.
func (s *Server) handleResults(c *gin.Context) {
	var req models.ResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != "completed" && req.Status != "failed" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be completed or failed"})
		return
	}

	ctx := c.Request.Context()
	run, err := s.runs.GetByCommandID(ctx, req.CommandID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	// The token already proved who the caller is; the command must also
	// belong to that agent, or any provisioned agent could settle
	// another agent's runs.
	caller := c.MustGet(agentContextKey).(*ent.Agent)
	owner, err := s.campaigns.Get(ctx, run.CampaignID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if owner.AgentID != caller.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "command belongs to a different agent"})
		return
	}

	if services.IsTerminalRunStatus(run.Status) {
		// Duplicate delivery after the run settled: acknowledge.
		c.JSON(http.StatusOK, gin.H{"run_id": run.ID, "status": string(run.Status)})
		return
	}

	to := plannedrun.StatusCompleted
	opt := &services.RunTransition{}
	if req.Status == "failed" {
		to = plannedrun.StatusFailed
		opt.ErrorKind = req.ErrorKind
		if opt.ErrorKind == "" {
			opt.ErrorKind = "unknown"
		}
		opt.ErrorMessage = req.Error
	}

	run, err = s.runs.Transition(ctx, run.ID,
		[]plannedrun.Status{plannedrun.StatusDispatched, plannedrun.StatusRunning}, to, opt)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	s.metrics.RunsFinishedTotal.WithLabelValues(string(to)).Inc()

	if req.Status == "completed" || req.OutputLocation != "" || req.Metrics != nil {
		if _, err := s.results.Record(ctx, run.ID, req); err != nil {
			mapServiceError(c, err)
			return
		}
	}

	// Surface the last log lines and the terminal status on the stream.
	for _, line := range req.LogTail {
		_, _ = s.events.AppendLog(ctx, run.CampaignID, line)
	}
	extra := map[string]interface{}{"run_id": run.ID}
	if opt.ErrorKind != "" {
		extra["error_kind"] = opt.ErrorKind
	}
	if _, err := s.events.AppendStatus(ctx, run.CampaignID, "run_"+string(to), extra); err != nil {
		s.logger.Warn("failed to append result event", slog.Any("error", err))
	}

	c.JSON(http.StatusOK, gin.H{"run_id": run.ID, "status": string(to)})
}

// handleCommandLog handles POST /api/v1/commands/:command_id/log: one
// log line from the agent, fanned out on the campaign stream.
func (s *Server) handleCommandLog(c *gin.Context) {
	var req models.LogLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	run, err := s.runs.GetByCommandID(ctx, c.Param("command_id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	ev, err := s.events.Append(ctx, run.CampaignID, bus.KindLog, map[string]interface{}{
		"line":   req.Line,
		"run_id": run.ID,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	s.metrics.EventsAppended.Inc()
	c.JSON(http.StatusAccepted, gin.H{"sequence": ev.ID})
}

// handleCommandStatus handles POST /api/v1/commands/:command_id/status.
// Agents report "running" when the benchmark container is up.
func (s *Server) handleCommandStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != "running" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be running"})
		return
	}

	ctx := c.Request.Context()
	run, err := s.runs.GetByCommandID(ctx, c.Param("command_id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	updated, err := s.runs.Transition(ctx, run.ID,
		[]plannedrun.Status{plannedrun.StatusDispatched}, plannedrun.StatusRunning, nil)
	if err != nil {
		// Redelivered callback: the run already moved on. Acknowledge so
		// the agent stops retrying.
		if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusOK, gin.H{"run_id": run.ID, "status": string(run.Status)})
			return
		}
		mapServiceError(c, err)
		return
	}
	run = updated

	if _, err := s.events.AppendStatus(ctx, run.CampaignID, "run_running", map[string]interface{}{"run_id": run.ID}); err != nil {
		s.logger.Warn("failed to append status event", slog.Any("error", err))
	}
	c.JSON(http.StatusOK, gin.H{"run_id": run.ID, "status": "running"})
}

func clampHeartbeatInterval(v int) int {
	if v < minHeartbeatIntervalS {
		return minHeartbeatIntervalS
	}
	if v > maxHeartbeatIntervalS {
		return maxHeartbeatIntervalS
	}
	return v
}
