// kitt benchmark agent — heartbeats against the orchestration server,
// pulls commands, and runs engine containers and benchmarks locally.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Kirizan/kitt-sub000/pkg/agentd"
	"github.com/Kirizan/kitt-sub000/pkg/config"
	"github.com/Kirizan/kitt-sub000/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("KITT_CONFIG_DIR", "/etc/kitt"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	cfg, err := config.LoadAgent(*configDir)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting kitt agent",
		"version", version.Version,
		"name", cfg.Name,
		"server_url", cfg.ServerURL)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	daemon := agentd.New(cfg, slog.Default())
	if err := daemon.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Agent exited with error", "error", err)
		os.Exit(1)
	}
	slog.Info("Shutdown complete")
}
