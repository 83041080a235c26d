package agentd

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Kirizan/kitt-sub000/pkg/models"
)

// Worker executes one dispatched command at a time. Every run command
// produces exactly one terminal result report, no matter where it
// failed; cleanup always happens.
type Worker struct {
	client  *Client
	engines *EngineRegistry
	deps    EngineDeps
	logger  *slog.Logger
}

// NewWorker creates a Worker.
func NewWorker(client *Client, engines *EngineRegistry, deps EngineDeps, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{client: client, engines: engines, deps: deps, logger: logger}
}

// Execute dispatches on the command type.
func (w *Worker) Execute(ctx context.Context, cmd *models.Command) {
	log := w.logger.With(
		slog.String("command_id", cmd.CommandID),
		slog.String("type", string(cmd.Type)))
	log.Info("executing command")

	switch cmd.Type {
	case models.CommandRunContainer, models.CommandRunTest:
		w.runBenchmark(ctx, cmd)
	case models.CommandStopContainer:
		w.stopContainer(ctx, cmd)
	case models.CommandCheckDocker:
		w.checkDocker(ctx)
	default:
		log.Warn("ignoring unknown command type")
	}
}

// runBenchmark drives one benchmark run end to end: status callback,
// engine start, health wait, benchmark, terminal report. The log tail
// ring rides along with the report.
func (w *Worker) runBenchmark(ctx context.Context, cmd *models.Command) {
	log := w.logger.With(slog.String("command_id", cmd.CommandID))

	ring := NewLogRing(w.deps.Cfg.LogTailLines)
	onLine := func(line string) {
		ring.Append(line)
		if err := w.client.PostLog(ctx, cmd.CommandID, line); err != nil {
			log.Debug("log line dropped", slog.Any("error", err))
		}
	}

	report := models.ResultRequest{CommandID: cmd.CommandID, Status: "failed"}

	engine, err := w.engines.New(cmd, w.deps)
	if err != nil {
		report.ErrorKind = "incompatible"
		report.Error = err.Error()
		w.report(ctx, report, ring)
		return
	}

	if err := w.client.PostStatus(ctx, cmd.CommandID, "running"); err != nil {
		// Context cancelled while retrying; the server watchdog owns
		// the run now.
		log.Warn("giving up on status callback", slog.Any("error", err))
		return
	}

	// Cleanup must run even on failure, with a context that survives
	// command cancellation.
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		_ = engine.Stop(stopCtx)
	}()

	if err := engine.Start(ctx); err != nil {
		report.ErrorKind = errorKind(err)
		report.Error = err.Error()
		w.report(ctx, report, ring)
		return
	}

	if err := engine.WaitHealthy(ctx); err != nil {
		report.ErrorKind = "engine_error"
		report.Error = err.Error()
		w.report(ctx, report, ring)
		return
	}

	result, err := engine.RunBenchmark(ctx, onLine)
	if err != nil {
		report.ErrorKind = "engine_error"
		report.Error = err.Error()
		if result != nil {
			report.Metrics = result.Metrics
		}
		w.report(ctx, report, ring)
		return
	}

	report.Status = "completed"
	report.Passed = result.Passed
	report.Metrics = result.Metrics
	report.OutputLocation = result.OutputLocation
	w.report(ctx, report, ring)
}

// report posts the terminal result with the captured log tail.
func (w *Worker) report(ctx context.Context, report models.ResultRequest, ring *LogRing) {
	report.LogTail = ring.Tail()
	if err := w.client.ReportResult(ctx, report); err != nil {
		w.logger.Error("terminal report not delivered",
			slog.String("command_id", report.CommandID), slog.Any("error", err))
		return
	}
	w.logger.Info("result reported",
		slog.String("command_id", report.CommandID),
		slog.String("status", report.Status))
}

// stopContainer stops engine containers labelled with the originating
// command id. No result report: stop commands are fire-and-forget.
func (w *Worker) stopContainer(ctx context.Context, cmd *models.Command) {
	// ContainerID carries the original run command id, not a docker id.
	label := commandIDLabel + "=" + cmd.Payload.ContainerID
	out, err := w.deps.Runner.Output(ctx, ProcessSpec{
		Program: w.deps.Cfg.Docker.Binary,
		Args:    []string{"ps", "-q", "--filter", "label=" + label},
		Timeout: 30 * time.Second,
	})
	if err != nil {
		w.logger.Warn("failed to list containers to stop", slog.Any("error", err))
		return
	}
	for _, id := range strings.Fields(out) {
		if _, err := w.deps.Runner.Output(ctx, ProcessSpec{
			Program: w.deps.Cfg.Docker.Binary,
			Args:    []string{"stop", id},
			Timeout: 1 * time.Minute,
		}); err != nil {
			w.logger.Warn("failed to stop container",
				slog.String("container_id", id), slog.Any("error", err))
		}
	}
}

// checkDocker verifies the docker daemon is reachable.
func (w *Worker) checkDocker(ctx context.Context) {
	out, err := w.deps.Runner.Output(ctx, ProcessSpec{
		Program: w.deps.Cfg.Docker.Binary,
		Args:    []string{"version", "--format", "{{.Server.Version}}"},
		Timeout: 30 * time.Second,
	})
	if err != nil {
		w.logger.Warn("docker check failed", slog.Any("error", err))
		return
	}
	w.logger.Info("docker available", slog.String("server_version", out))
}

// errorKind maps engine start failures onto the run error taxonomy.
func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrIncompatibleArch):
		return "incompatible_architecture"
	case errors.Is(err, ErrBlockedFlag):
		return "validation"
	default:
		return "engine_error"
	}
}
