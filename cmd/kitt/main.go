// kitt operator CLI — provisions agents and drives benchmark campaigns
// against the orchestration server.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Kirizan/kitt-sub000/pkg/version"
)

// Exit codes.
const (
	exitOK      = 0
	exitUser    = 1
	exitRemote  = 2
	exitTimeout = 3
)

var (
	serverURL  string
	adminToken string
	timeout    time.Duration
)

func main() {
	root := &cobra.Command{
		Use:           "kitt",
		Short:         "Operator CLI for the kitt benchmark orchestrator",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&serverURL, "server",
		envOr("KITT_SERVER_URL", "http://localhost:8080"), "server base URL")
	root.PersistentFlags().StringVar(&adminToken, "token",
		os.Getenv("KITT_ADMIN_TOKEN"), "admin bearer token")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second,
		"per-request timeout")

	root.AddCommand(newAgentsCmd(), newCampaignCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// exitCode classifies an error: user mistakes are 1, server-side
// failures 2, timeouts 3.
func exitCode(err error) int {
	var uerr *userError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return exitTimeout
	case errors.As(err, &uerr):
		return exitUser
	default:
		return exitRemote
	}
}

// userError marks mistakes on the caller's side (bad flags, bad file,
// unknown names).
type userError struct{ msg string }

func (e *userError) Error() string { return e.msg }

func userErrorf(format string, args ...interface{}) error {
	return &userError{msg: fmt.Sprintf(format, args...)}
}
