package agentd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kirizan/kitt-sub000/pkg/config"
	"github.com/Kirizan/kitt-sub000/pkg/models"
)

// fakeServer records the callbacks a worker makes.
type fakeServer struct {
	mu       sync.Mutex
	statuses []string
	logs     []string
	results  []models.ResultRequest

	*httptest.Server
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()
	fs := &fakeServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/commands/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		fs.mu.Lock()
		fs.statuses = append(fs.statuses, body["status"])
		fs.mu.Unlock()
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "{}")
	})
	mux.HandleFunc("POST /api/v1/commands/{id}/log", func(w http.ResponseWriter, r *http.Request) {
		var body models.LogLineRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		fs.mu.Lock()
		fs.logs = append(fs.logs, body.Line)
		fs.mu.Unlock()
		w.WriteHeader(http.StatusAccepted)
		fmt.Fprint(w, "{}")
	})
	mux.HandleFunc("POST /api/v1/agents/{name}/results", func(w http.ResponseWriter, r *http.Request) {
		var body models.ResultRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		fs.mu.Lock()
		fs.results = append(fs.results, body)
		fs.mu.Unlock()
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "{}")
	})
	fs.Server = httptest.NewServer(mux)
	t.Cleanup(fs.Close)
	return fs
}

func (fs *fakeServer) lastResult(t *testing.T) models.ResultRequest {
	t.Helper()
	fs.mu.Lock()
	defer fs.mu.Unlock()
	require.NotEmpty(t, fs.results)
	return fs.results[len(fs.results)-1]
}

// fakeEngine is a scripted Engine.
type fakeEngine struct {
	startErr  error
	healthErr error
	benchErr  error
	result    *BenchmarkResult
	lines     []string

	mu      sync.Mutex
	stopped bool
}

func (e *fakeEngine) Start(context.Context) error       { return e.startErr }
func (e *fakeEngine) WaitHealthy(context.Context) error { return e.healthErr }

func (e *fakeEngine) RunBenchmark(_ context.Context, onLine func(string)) (*BenchmarkResult, error) {
	for _, line := range e.lines {
		onLine(line)
	}
	if e.benchErr != nil {
		return e.result, e.benchErr
	}
	return e.result, nil
}

func (e *fakeEngine) Stop(context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopped = true
	return nil
}

func (e *fakeEngine) wasStopped() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stopped
}

func testAgentConfig(serverURL string) *config.AgentConfig {
	cfg := DefaultTestConfig()
	cfg.ServerURL = serverURL
	return cfg
}

// DefaultTestConfig is a valid agent config pointing nowhere.
func DefaultTestConfig() *config.AgentConfig {
	cfg := config.DefaultAgentConfig()
	cfg.Name = "rig-01"
	cfg.Token = "test-token"
	cfg.RequestTimeout = 5 * time.Second
	cfg.HeartbeatInterval = 20 * time.Millisecond
	cfg.LogTailLines = 10
	return cfg
}

func newTestWorker(t *testing.T, fs *fakeServer, engine Engine) *Worker {
	t.Helper()
	cfg := testAgentConfig(fs.URL)
	logger := slog.New(slog.DiscardHandler)
	client := NewClient(cfg, logger)

	registry := NewEngineRegistry()
	registry.Register("fake", func(*models.Command, EngineDeps) (Engine, error) {
		return engine, nil
	})

	deps := EngineDeps{Runner: NewExecRunner(logger), Cfg: cfg, Logger: logger}
	return NewWorker(client, registry, deps, logger)
}

func runCommand() *models.Command {
	return &models.Command{
		CommandID: "cmd-1",
		AgentID:   "agent-1",
		Type:      models.CommandRunContainer,
		Payload: models.CommandPayload{
			RunID:         "run-1",
			ModelName:     "llama-8b",
			EngineName:    "fake",
			BenchmarkName: "throughput",
		},
	}
}

func TestWorkerSuccessfulRun(t *testing.T) {
	fs := newFakeServer(t)
	engine := &fakeEngine{
		lines:  []string{"loading", "serving"},
		result: &BenchmarkResult{Passed: true, Metrics: map[string]interface{}{"tps": 42.0}},
	}
	w := newTestWorker(t, fs, engine)

	w.Execute(context.Background(), runCommand())

	fs.mu.Lock()
	assert.Equal(t, []string{"running"}, fs.statuses)
	assert.Equal(t, []string{"loading", "serving"}, fs.logs)
	fs.mu.Unlock()

	result := fs.lastResult(t)
	assert.Equal(t, "completed", result.Status)
	assert.True(t, result.Passed)
	assert.Equal(t, 42.0, result.Metrics["tps"])
	assert.Equal(t, []string{"loading", "serving"}, result.LogTail)
	assert.True(t, engine.wasStopped())
}

func TestWorkerEngineStartFailure(t *testing.T) {
	fs := newFakeServer(t)
	engine := &fakeEngine{startErr: fmt.Errorf("pull failed")}
	w := newTestWorker(t, fs, engine)

	w.Execute(context.Background(), runCommand())

	result := fs.lastResult(t)
	assert.Equal(t, "failed", result.Status)
	assert.Equal(t, "engine_error", result.ErrorKind)
	assert.Contains(t, result.Error, "pull failed")
	assert.True(t, engine.wasStopped(), "cleanup must run even on start failure")
}

func TestWorkerIncompatibleArchitecture(t *testing.T) {
	fs := newFakeServer(t)
	engine := &fakeEngine{startErr: fmt.Errorf("%w: image wants arm64", ErrIncompatibleArch)}
	w := newTestWorker(t, fs, engine)

	w.Execute(context.Background(), runCommand())

	result := fs.lastResult(t)
	assert.Equal(t, "failed", result.Status)
	assert.Equal(t, "incompatible_architecture", result.ErrorKind)
}

func TestWorkerUnknownEngine(t *testing.T) {
	fs := newFakeServer(t)
	w := newTestWorker(t, fs, &fakeEngine{})

	cmd := runCommand()
	cmd.Payload.EngineName = "nonexistent"
	w.Execute(context.Background(), cmd)

	result := fs.lastResult(t)
	assert.Equal(t, "failed", result.Status)
	assert.Equal(t, "incompatible", result.ErrorKind)
}

func TestWorkerBenchmarkFailureKeepsTail(t *testing.T) {
	fs := newFakeServer(t)
	engine := &fakeEngine{
		lines:    []string{"oom killed"},
		benchErr: fmt.Errorf("benchmark exited with code 137"),
	}
	w := newTestWorker(t, fs, engine)

	w.Execute(context.Background(), runCommand())

	result := fs.lastResult(t)
	assert.Equal(t, "failed", result.Status)
	assert.Equal(t, "engine_error", result.ErrorKind)
	assert.Equal(t, []string{"oom killed"}, result.LogTail)
	assert.True(t, engine.wasStopped())
}
