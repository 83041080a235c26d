package agentd

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessSpecBlockedFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		blocked bool
	}{
		{"plain run", []string{"run", "-d", "nginx"}, false},
		{"privileged", []string{"run", "--privileged", "nginx"}, true},
		{"privileged with value", []string{"run", "--privileged=true", "nginx"}, true},
		{"pid namespace", []string{"run", "--pid", "host", "nginx"}, true},
		{"cap-add", []string{"run", "--cap-add=SYS_ADMIN", "nginx"}, true},
		{"security-opt", []string{"run", "--security-opt", "seccomp=unconfined", "nginx"}, true},
		{"device", []string{"run", "--device=/dev/kfd", "nginx"}, true},
		{"similar but allowed prefix", []string{"run", "--pids-limit", "100", "nginx"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := ProcessSpec{Program: "docker", Args: tt.args}
			err := spec.Validate()
			if tt.blocked {
				assert.ErrorIs(t, err, ErrBlockedFlag)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessSpecRequiresProgram(t *testing.T) {
	assert.Error(t, ProcessSpec{}.Validate())
}

func TestExecRunnerStreamsLines(t *testing.T) {
	runner := NewExecRunner(slog.New(slog.DiscardHandler))

	var lines []string
	code, err := runner.Run(context.Background(), ProcessSpec{
		Program: "sh",
		Args:    []string{"-c", "echo one; echo two"},
	}, func(line string) { lines = append(lines, line) })

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"one", "two"}, lines)
}

func TestExecRunnerReportsExitCode(t *testing.T) {
	runner := NewExecRunner(slog.New(slog.DiscardHandler))

	code, err := runner.Run(context.Background(), ProcessSpec{
		Program: "sh",
		Args:    []string{"-c", "exit 3"},
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, 3, code)
}

func TestExecRunnerRejectsBlockedSpec(t *testing.T) {
	runner := NewExecRunner(slog.New(slog.DiscardHandler))

	_, err := runner.Output(context.Background(), ProcessSpec{
		Program: "docker",
		Args:    []string{"run", "--privileged", "nginx"},
	})
	assert.ErrorIs(t, err, ErrBlockedFlag)
}

func TestExecRunnerOutput(t *testing.T) {
	runner := NewExecRunner(slog.New(slog.DiscardHandler))

	out, err := runner.Output(context.Background(), ProcessSpec{
		Program: "sh",
		Args:    []string{"-c", "echo container-id"},
	})
	require.NoError(t, err)
	assert.Equal(t, "container-id", out)
}
