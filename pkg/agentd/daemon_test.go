package agentd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kirizan/kitt-sub000/pkg/models"
)

// heartbeatServer extends fakeServer with a scripted heartbeat queue.
type heartbeatServer struct {
	*fakeServer

	mu       sync.Mutex
	pending  []*models.Command
	requests []models.HeartbeatRequest
}

func newHeartbeatServer(t *testing.T) *heartbeatServer {
	t.Helper()
	hs := &heartbeatServer{fakeServer: newFakeServer(t)}

	mux := hs.Config.Handler.(*http.ServeMux)
	mux.HandleFunc("POST /api/v1/agents/{name}/heartbeat", func(w http.ResponseWriter, r *http.Request) {
		var req models.HeartbeatRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		hs.mu.Lock()
		hs.requests = append(hs.requests, req)
		var cmd *models.Command
		if len(req.ActiveCommands) == 0 && len(hs.pending) > 0 {
			cmd = hs.pending[0]
			hs.pending = hs.pending[1:]
		}
		hs.mu.Unlock()

		resp := models.HeartbeatResponse{AgentID: "agent-1", Command: cmd, HeartbeatIntervalS: 0}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})
	return hs
}

func (hs *heartbeatServer) enqueue(cmd *models.Command) {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	hs.pending = append(hs.pending, cmd)
}

func (hs *heartbeatServer) sawBusyHeartbeat() bool {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	for _, req := range hs.requests {
		if len(req.ActiveCommands) > 0 {
			return true
		}
	}
	return false
}

func newTestDaemon(t *testing.T, hs *heartbeatServer, engine Engine) *Daemon {
	t.Helper()
	cfg := testAgentConfig(hs.URL)
	registry := NewEngineRegistry()
	registry.Register("fake", func(*models.Command, EngineDeps) (Engine, error) {
		return engine, nil
	})
	return NewWithRegistry(cfg, registry, slog.New(slog.DiscardHandler))
}

func TestDaemonExecutesDispatchedCommand(t *testing.T) {
	hs := newHeartbeatServer(t)
	engine := &fakeEngine{
		result: &BenchmarkResult{Passed: true, Metrics: map[string]interface{}{"tps": 10.0}},
	}
	d := newTestDaemon(t, hs, engine)

	hs.enqueue(runCommand())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = d.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		hs.mu.Lock()
		defer hs.mu.Unlock()
		return len(hs.results) == 1
	}, 10*time.Second, 10*time.Millisecond)

	cancel()
	<-done

	result := hs.lastResult(t)
	assert.Equal(t, "completed", result.Status)
	assert.True(t, engine.wasStopped())
}

func TestDaemonReportsBusyWhileRunning(t *testing.T) {
	hs := newHeartbeatServer(t)

	release := make(chan struct{})
	engine := &slowEngine{release: release}
	d := newTestDaemon(t, hs, engine)

	hs.enqueue(runCommand())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = d.Run(ctx)
		close(done)
	}()

	// While the engine is held open, heartbeats must carry the active
	// command id.
	require.Eventually(t, hs.sawBusyHeartbeat, 10*time.Second, 10*time.Millisecond)
	close(release)

	require.Eventually(t, func() bool {
		hs.mu.Lock()
		defer hs.mu.Unlock()
		return len(hs.results) == 1
	}, 10*time.Second, 10*time.Millisecond)

	cancel()
	<-done
}

func TestDaemonHeartbeatsOnInterval(t *testing.T) {
	hs := newHeartbeatServer(t)
	d := newTestDaemon(t, hs, &fakeEngine{})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := d.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	hs.mu.Lock()
	count := len(hs.requests)
	hs.mu.Unlock()
	assert.Greater(t, count, 1, "daemon should heartbeat repeatedly")
}

// slowEngine blocks in RunBenchmark until released.
type slowEngine struct {
	release chan struct{}
	mu      sync.Mutex
	stopped bool
}

func (e *slowEngine) Start(context.Context) error       { return nil }
func (e *slowEngine) WaitHealthy(context.Context) error { return nil }

func (e *slowEngine) RunBenchmark(ctx context.Context, _ func(string)) (*BenchmarkResult, error) {
	select {
	case <-e.release:
		return &BenchmarkResult{Passed: true}, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("cancelled: %w", ctx.Err())
	}
}

func (e *slowEngine) Stop(context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopped = true
	return nil
}
