package agentd

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Kirizan/kitt-sub000/pkg/config"
	"github.com/Kirizan/kitt-sub000/pkg/models"
)

// Daemon is the agent's primary loop: heartbeat on a ticker, at most one
// run command in flight, stop/check commands handled inline. The server
// adjusts the heartbeat interval through the response.
type Daemon struct {
	cfg     *config.AgentConfig
	client  *Client
	worker  *Worker
	engines *EngineRegistry
	logger  *slog.Logger

	mu     sync.Mutex
	active map[string]context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a Daemon with the default engine registry.
func New(cfg *config.AgentConfig, logger *slog.Logger) *Daemon {
	return NewWithRegistry(cfg, DefaultEngineRegistry(), logger)
}

// NewWithRegistry creates a Daemon with a custom engine registry.
func NewWithRegistry(cfg *config.AgentConfig, engines *EngineRegistry, logger *slog.Logger) *Daemon {
	if logger == nil {
		logger = slog.Default()
	}
	client := NewClient(cfg, logger)
	deps := EngineDeps{
		Runner: NewExecRunner(logger),
		Cfg:    cfg,
		Logger: logger,
	}
	return &Daemon{
		cfg:     cfg,
		client:  client,
		worker:  NewWorker(client, engines, deps, logger),
		engines: engines,
		logger:  logger,
		active:  make(map[string]context.CancelFunc),
	}
}

// Run heartbeats until the context is cancelled, then waits for active
// workers to wind down. Heartbeat failures back off with jitter and
// never give up.
func (d *Daemon) Run(ctx context.Context) error {
	d.logger.Info("agent starting",
		slog.String("name", d.cfg.Name),
		slog.String("server_url", d.cfg.ServerURL))

	interval := d.cfg.HeartbeatInterval
	failures := 0
	for {
		resp, err := d.client.Heartbeat(ctx, models.HeartbeatRequest{
			Status:         d.status(),
			ActiveCommands: d.activeIDs(),
			Capabilities:   snapshotCapabilities(d.cfg),
		})
		if err != nil {
			failures++
			d.logger.Warn("heartbeat failed",
				slog.Int("failures", failures), slog.Any("error", err))
			if !sleep(ctx, retryBackoff(failures)) {
				break
			}
			continue
		}
		failures = 0

		if resp.HeartbeatIntervalS > 0 {
			interval = time.Duration(resp.HeartbeatIntervalS) * time.Second
		}
		if resp.Command != nil {
			d.dispatch(ctx, resp.Command)
		}

		if !sleep(ctx, interval) {
			break
		}
	}

	d.logger.Info("agent draining")
	d.wg.Wait()
	return ctx.Err()
}

func (d *Daemon) status() string {
	if len(d.activeIDs()) > 0 {
		return "busy"
	}
	return "idle"
}

// activeIDs lists run commands in flight. Only run commands count as
// busy; stop/check commands finish quickly and inline.
func (d *Daemon) activeIDs() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	ids := make([]string, 0, len(d.active))
	for id := range d.active {
		ids = append(ids, id)
	}
	return ids
}

// dispatch hands a command to a worker goroutine. stop_container cancels
// the matching in-flight worker first so its engine is torn down.
func (d *Daemon) dispatch(ctx context.Context, cmd *models.Command) {
	if cmd.Type == models.CommandStopContainer {
		d.cancelActive(cmd.Payload.ContainerID)
	}

	isRun := cmd.Type == models.CommandRunContainer || cmd.Type == models.CommandRunTest
	cmdCtx, cancel := context.WithCancel(ctx)
	if isRun {
		d.mu.Lock()
		d.active[cmd.CommandID] = cancel
		d.mu.Unlock()
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			cancel()
			if isRun {
				d.mu.Lock()
				delete(d.active, cmd.CommandID)
				d.mu.Unlock()
			}
		}()
		d.worker.Execute(cmdCtx, cmd)
	}()
}

// cancelActive cancels the in-flight worker for a command id, if any.
func (d *Daemon) cancelActive(commandID string) {
	d.mu.Lock()
	cancel, ok := d.active[commandID]
	d.mu.Unlock()
	if ok {
		d.logger.Info("cancelling active command", slog.String("command_id", commandID))
		cancel()
	}
}

// sleep waits for d or context cancellation; false means cancelled.
func sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
