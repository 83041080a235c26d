// Package agentd implements the benchmark agent: the heartbeat loop that
// pulls commands from the server, the per-command workers that start
// engines and run benchmarks, and the engine adapter registry.
package agentd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Sentinel errors surfaced as run error kinds.
var (
	ErrBlockedFlag      = errors.New("blocked docker flag")
	ErrIncompatibleArch = errors.New("image architecture incompatible with host")
	ErrUnknownEngine    = errors.New("unknown engine")
)

// blockedDockerFlags are rejected before exec, prefix-matched so
// `--privileged=true` and `--device=/dev/kfd` are caught too.
var blockedDockerFlags = []string{
	"--privileged",
	"--pid",
	"--cap-add",
	"--security-opt",
	"--device",
}

// ProcessSpec is a structured process invocation: program, arguments,
// environment, timeout. All engine and benchmark processes go through
// one of these so the blocked-flag policy has a single enforcement
// point.
type ProcessSpec struct {
	Program string
	Args    []string
	Env     map[string]string
	Timeout time.Duration
}

// Validate rejects specs that violate the blocked-flag policy.
func (s ProcessSpec) Validate() error {
	if s.Program == "" {
		return fmt.Errorf("process spec has no program")
	}
	for _, arg := range s.Args {
		for _, blocked := range blockedDockerFlags {
			if arg == blocked || strings.HasPrefix(arg, blocked+"=") {
				return fmt.Errorf("%w: %s", ErrBlockedFlag, arg)
			}
		}
	}
	return nil
}

// Runner executes process specs. Implementations stream combined
// stdout/stderr line by line through onLine.
type Runner interface {
	// Run executes the spec to completion and returns its exit code.
	Run(ctx context.Context, spec ProcessSpec, onLine func(string)) (int, error)
	// Output executes the spec and returns trimmed combined output.
	// Used for short commands like `docker run -d`.
	Output(ctx context.Context, spec ProcessSpec) (string, error)
}

// ExecRunner runs process specs through os/exec.
type ExecRunner struct {
	logger *slog.Logger
}

// NewExecRunner creates an ExecRunner.
func NewExecRunner(logger *slog.Logger) *ExecRunner {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExecRunner{logger: logger}
}

func (r *ExecRunner) command(ctx context.Context, spec ProcessSpec) (*exec.Cmd, context.CancelFunc, error) {
	if err := spec.Validate(); err != nil {
		return nil, nil, err
	}
	cancel := func() {}
	if spec.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, spec.Timeout)
	}
	cmd := exec.CommandContext(ctx, spec.Program, spec.Args...)
	for k, v := range spec.Env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}
	return cmd, cancel, nil
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, spec ProcessSpec, onLine func(string)) (int, error) {
	cmd, cancel, err := r.command(ctx, spec)
	if err != nil {
		return -1, err
	}
	defer cancel()

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return -1, fmt.Errorf("failed to open stdout: %w", err)
	}
	cmd.Stderr = cmd.Stdout

	r.logger.Debug("running process", slog.String("program", spec.Program))
	if err := cmd.Start(); err != nil {
		return -1, fmt.Errorf("failed to start %s: %w", spec.Program, err)
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if onLine != nil {
			onLine(scanner.Text())
		}
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}

// Output implements Runner.
func (r *ExecRunner) Output(ctx context.Context, spec ProcessSpec) (string, error) {
	cmd, cancel, err := r.command(ctx, spec)
	if err != nil {
		return "", err
	}
	defer cancel()

	out, err := cmd.CombinedOutput()
	if err != nil {
		return strings.TrimSpace(string(out)), fmt.Errorf("%s failed: %w: %s",
			spec.Program, err, strings.TrimSpace(string(out)))
	}
	return strings.TrimSpace(string(out)), nil
}
