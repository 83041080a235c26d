package agentd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/Kirizan/kitt-sub000/pkg/models"
)

// Health wait: exponential backoff base 2, first probe after 1s, sleeps
// capped at 10s, total capped by the configured health timeout.
const (
	healthBackoffBase = 1 * time.Second
	healthBackoffCap  = 10 * time.Second
)

// commandIDLabel marks engine containers so stop_container can find them
// by the originating command even after the worker is gone.
const commandIDLabel = "kitt.command_id"

// dockerEngineImage describes one engine's container packaging.
type dockerEngineImage struct {
	image string
	port  int
	archs []string
	// serveArgs builds the engine's command line for a run.
	serveArgs func(p models.CommandPayload) []string
}

var dockerEngineImages = map[string]dockerEngineImage{
	"llama_cpp": {
		image: "ghcr.io/ggml-org/llama.cpp:server",
		port:  8080,
		archs: []string{"amd64", "arm64"},
		serveArgs: func(p models.CommandPayload) []string {
			return []string{"--model", "/models/" + p.ModelRef, "--host", "0.0.0.0", "--port", "8080"}
		},
	},
	"vllm": {
		image: "vllm/vllm-openai:latest",
		port:  8000,
		archs: []string{"amd64"},
		serveArgs: func(p models.CommandPayload) []string {
			return []string{"--model", p.ModelRef, "--host", "0.0.0.0", "--port", "8000"}
		},
	},
	"tgi": {
		image: "ghcr.io/huggingface/text-generation-inference:latest",
		port:  80,
		archs: []string{"amd64"},
		serveArgs: func(p models.CommandPayload) []string {
			return []string{"--model-id", p.ModelRef}
		},
	},
	"ollama": {
		image: "ollama/ollama:latest",
		port:  11434,
		archs: []string{"amd64", "arm64"},
		serveArgs: func(models.CommandPayload) []string {
			return nil
		},
	},
}

// dockerEngine runs one engine container for one benchmark run.
type dockerEngine struct {
	cmd  *models.Command
	img  dockerEngineImage
	deps EngineDeps

	containerID string
	hostPort    int
}

func newDockerEngine(cmd *models.Command, img dockerEngineImage, deps EngineDeps) (*dockerEngine, error) {
	return &dockerEngine{cmd: cmd, img: img, deps: deps, hostPort: img.port}, nil
}

func (e *dockerEngine) logger() *slog.Logger {
	return e.deps.Logger.With(
		slog.String("command_id", e.cmd.CommandID),
		slog.String("engine", e.cmd.Payload.EngineName))
}

// Start checks architecture compatibility, then launches the container
// detached. The blocked-flag policy is enforced by the spec validation
// inside the runner.
func (e *dockerEngine) Start(ctx context.Context) error {
	if !slices.Contains(e.img.archs, hostArch()) {
		return fmt.Errorf("%w: image %s supports %v, host is %s",
			ErrIncompatibleArch, e.img.image, e.img.archs, hostArch())
	}

	args := []string{
		"run", "-d", "--rm",
		"--label", commandIDLabel + "=" + e.cmd.CommandID,
		"-p", fmt.Sprintf("%d:%d", e.hostPort, e.img.port),
		"-v", e.deps.Cfg.ModelCacheDir + ":/models",
	}
	if e.deps.Cfg.Docker.Network != "" {
		args = append(args, "--network", e.deps.Cfg.Docker.Network)
	}
	args = append(args, e.img.image)
	args = append(args, e.img.serveArgs(e.cmd.Payload)...)

	out, err := e.deps.Runner.Output(ctx, ProcessSpec{
		Program: e.deps.Cfg.Docker.Binary,
		Args:    args,
		Timeout: 5 * time.Minute,
	})
	if err != nil {
		return fmt.Errorf("failed to start engine container: %w", err)
	}

	// `docker run -d` prints the container id as the last line; pull
	// progress may precede it.
	lines := strings.Split(out, "\n")
	e.containerID = strings.TrimSpace(lines[len(lines)-1])
	e.logger().Info("engine container started", slog.String("container_id", e.containerID))
	return nil
}

// WaitHealthy polls the engine's health endpoint until it answers 200.
func (e *dockerEngine) WaitHealthy(ctx context.Context) error {
	total := e.deps.Cfg.Docker.HealthTimeout
	if total <= 0 {
		total = 10 * time.Minute
	}
	ctx, cancel := context.WithTimeout(ctx, total)
	defer cancel()

	url := fmt.Sprintf("http://localhost:%d/health", e.hostPort)
	client := &http.Client{Timeout: 5 * time.Second}

	delay := healthBackoffBase
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("engine not healthy within %s: %w", total, ctx.Err())
		case <-time.After(delay):
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := client.Do(req)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				e.logger().Info("engine healthy")
				return nil
			}
		}

		delay *= 2
		if delay > healthBackoffCap {
			delay = healthBackoffCap
		}
	}
}

// RunBenchmark executes the benchmark client against the engine's API.
// The final stdout line is expected to be a JSON metrics object; the
// exit code decides pass/fail.
func (e *dockerEngine) RunBenchmark(ctx context.Context, onLine func(string)) (*BenchmarkResult, error) {
	var lastJSON string
	capture := func(line string) {
		if onLine != nil {
			onLine(line)
		}
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
			lastJSON = trimmed
		}
	}

	exitCode, err := e.deps.Runner.Run(ctx, ProcessSpec{
		Program: "kitt-bench",
		Args: []string{
			"--endpoint", fmt.Sprintf("http://localhost:%d", e.hostPort),
			"--engine", e.cmd.Payload.EngineName,
			"--model", e.cmd.Payload.ModelName,
			"--benchmark", e.cmd.Payload.BenchmarkName,
		},
	}, capture)
	if err != nil {
		return nil, fmt.Errorf("benchmark process failed: %w", err)
	}

	result := &BenchmarkResult{Passed: exitCode == 0}
	if lastJSON != "" {
		var metrics map[string]interface{}
		if jerr := json.Unmarshal([]byte(lastJSON), &metrics); jerr == nil {
			result.Metrics = metrics
		}
	}
	if !result.Passed {
		return result, fmt.Errorf("benchmark exited with code %d", exitCode)
	}
	return result, nil
}

// Stop tears the container down. Safe to call before Start succeeded.
func (e *dockerEngine) Stop(ctx context.Context) error {
	if e.containerID == "" {
		return nil
	}
	_, err := e.deps.Runner.Output(ctx, ProcessSpec{
		Program: e.deps.Cfg.Docker.Binary,
		Args:    []string{"stop", "--time", strconv.Itoa(30), e.containerID},
		Timeout: 1 * time.Minute,
	})
	if err != nil {
		e.logger().Warn("failed to stop engine container", slog.Any("error", err))
	}
	return err
}
