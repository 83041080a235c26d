// Package api exposes the orchestration server's HTTP surface: agent
// provisioning and heartbeats, campaign lifecycle, result ingestion, and
// the SSE event stream.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Kirizan/kitt-sub000/pkg/database"
	"github.com/Kirizan/kitt-sub000/pkg/dispatch"
	"github.com/Kirizan/kitt-sub000/pkg/executor"
	"github.com/Kirizan/kitt-sub000/pkg/metrics"
	"github.com/Kirizan/kitt-sub000/pkg/services"
)

// Config holds the HTTP server configuration.
type Config struct {
	Addr string
	// AdminToken authorizes the operator endpoints (campaigns, agent
	// provisioning). Agent endpoints use per-agent tokens instead.
	AdminToken string
	// HeartbeatIntervalS is advertised to agents on every heartbeat,
	// clamped to [10, 300] seconds.
	HeartbeatIntervalS int
	// AgentSettings is pushed to agents on every heartbeat.
	AgentSettings map[string]string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		Addr:               ":8080",
		HeartbeatIntervalS: 30,
		ReadTimeout:        30 * time.Second,
		// Write timeout must accommodate long-lived SSE connections.
		WriteTimeout:    0,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Server wires the service layer into the HTTP API.
type Server struct {
	cfg       Config
	db        *database.Client
	agents    *services.AgentService
	campaigns *services.CampaignService
	runs      *services.RunService
	results   *services.ResultService
	events    *services.EventService
	queue     *dispatch.Queue
	exec      *executor.Executor
	metrics   *metrics.Registry
	logger    *slog.Logger

	// execCtx ties campaign executors launched from handlers to the
	// process lifetime rather than the request.
	execCtx    context.Context
	httpServer *http.Server
}

// SetExecContext sets the base context for executor launches. Defaults
// to context.Background when unset.
func (s *Server) SetExecContext(ctx context.Context) {
	s.execCtx = ctx
}

func (s *Server) execContext() context.Context {
	if s.execCtx != nil {
		return s.execCtx
	}
	return context.Background()
}

// NewServer creates the API server.
func NewServer(
	cfg Config,
	db *database.Client,
	agents *services.AgentService,
	campaigns *services.CampaignService,
	runs *services.RunService,
	results *services.ResultService,
	events *services.EventService,
	queue *dispatch.Queue,
	exec *executor.Executor,
	m *metrics.Registry,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:       cfg,
		db:        db,
		agents:    agents,
		campaigns: campaigns,
		runs:      runs,
		results:   results,
		events:    events,
		queue:     queue,
		exec:      exec,
		metrics:   m,
		logger:    logger,
	}
}

// Router builds the gin engine with all routes and middleware.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(s.logger), s.metricsMiddleware(), gin.Recovery())

	r.GET("/health", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Gatherer(), promhttp.HandlerOpts{})))

	v1 := r.Group("/api/v1")

	// Operator endpoints: admin bearer token.
	admin := v1.Group("", s.adminAuth())
	{
		admin.POST("/agents/provision", s.handleProvisionAgent)
		admin.GET("/agents", s.handleListAgents)
		admin.GET("/agents/:name", s.handleGetAgent)
		admin.POST("/agents/:name/rotate-token", s.handleRotateToken)
		admin.DELETE("/agents/:name", s.handleUnregisterAgent)

		admin.POST("/campaigns", s.handleCreateCampaign)
		admin.GET("/campaigns", s.handleListCampaigns)
		admin.GET("/campaigns/:id", s.handleGetCampaign)
		admin.POST("/campaigns/:id/start", s.handleStartCampaign)
		admin.POST("/campaigns/:id/cancel", s.handleCancelCampaign)

		admin.GET("/events", s.handleEvents)
	}

	// Agent endpoints: per-agent bearer token.
	agents := v1.Group("/agents/:name", s.agentAuth())
	{
		agents.POST("/heartbeat", s.handleHeartbeat)
		agents.POST("/results", s.handleResults)
	}

	// Command callbacks carry the agent token too; the agent is resolved
	// from the command rather than the path.
	commands := v1.Group("/commands/:command_id", s.commandAuth())
	{
		commands.POST("/log", s.handleCommandLog)
		commands.POST("/status", s.handleCommandStatus)
	}

	return r
}

// Run serves HTTP until the context is cancelled, then drains.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Router(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", slog.String("addr", s.cfg.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.logger.Info("http server draining")
	return s.httpServer.Shutdown(shutdownCtx)
}
