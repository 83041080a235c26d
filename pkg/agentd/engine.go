package agentd

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Kirizan/kitt-sub000/pkg/config"
	"github.com/Kirizan/kitt-sub000/pkg/models"
)

// BenchmarkResult is what an engine adapter reports when the benchmark
// process finishes.
type BenchmarkResult struct {
	Passed         bool
	Metrics        map[string]interface{}
	OutputLocation string
}

// Engine is a per-run adapter instance: constructed when a command is
// dispatched, discarded when the worker finishes. Stop must be safe to
// call regardless of how far the run got.
type Engine interface {
	// Start pulls the image if needed and launches the engine.
	Start(ctx context.Context) error
	// WaitHealthy blocks until the engine answers its health endpoint.
	WaitHealthy(ctx context.Context) error
	// RunBenchmark executes the benchmark, streaming output lines.
	RunBenchmark(ctx context.Context, onLine func(string)) (*BenchmarkResult, error)
	// Stop tears the engine down.
	Stop(ctx context.Context) error
}

// EngineDeps is everything an adapter needs from the agent.
type EngineDeps struct {
	Runner Runner
	Cfg    *config.AgentConfig
	Logger *slog.Logger
}

// EngineFactory builds a per-run Engine for a command.
type EngineFactory func(cmd *models.Command, deps EngineDeps) (Engine, error)

// EngineRegistry maps engine names to factories.
type EngineRegistry struct {
	mu        sync.RWMutex
	factories map[string]EngineFactory
}

// NewEngineRegistry creates an empty registry.
func NewEngineRegistry() *EngineRegistry {
	return &EngineRegistry{factories: make(map[string]EngineFactory)}
}

// Register adds or replaces a factory.
func (r *EngineRegistry) Register(name string, f EngineFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

// New constructs an Engine for the command's engine name.
func (r *EngineRegistry) New(cmd *models.Command, deps EngineDeps) (Engine, error) {
	r.mu.RLock()
	f, ok := r.factories[cmd.Payload.EngineName]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEngine, cmd.Payload.EngineName)
	}
	return f(cmd, deps)
}

// DefaultEngineRegistry returns the registry with the built-in Docker
// engine adapters.
func DefaultEngineRegistry() *EngineRegistry {
	r := NewEngineRegistry()
	for name, img := range dockerEngineImages {
		img := img
		r.Register(name, func(cmd *models.Command, deps EngineDeps) (Engine, error) {
			return newDockerEngine(cmd, img, deps)
		})
	}
	return r
}
