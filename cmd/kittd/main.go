// kitt orchestration server — provides the HTTP API, plans campaigns,
// and marches runs across benchmark agents.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Kirizan/kitt-sub000/pkg/api"
	"github.com/Kirizan/kitt-sub000/pkg/bus"
	"github.com/Kirizan/kitt-sub000/pkg/cleanup"
	"github.com/Kirizan/kitt-sub000/pkg/config"
	"github.com/Kirizan/kitt-sub000/pkg/database"
	"github.com/Kirizan/kitt-sub000/pkg/dispatch"
	"github.com/Kirizan/kitt-sub000/pkg/executor"
	"github.com/Kirizan/kitt-sub000/pkg/metrics"
	"github.com/Kirizan/kitt-sub000/pkg/planner"
	"github.com/Kirizan/kitt-sub000/pkg/services"
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
		getEnv("KITT_CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	slog.Info("Starting kitt server",
		"version", version.Version,
		"config_dir", *configDir)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// 1. Configuration
	cfg, err := config.LoadServer(*configDir)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (runs migrations)
	dbClient, err := database.NewClient(ctx, database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
	})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	logger := slog.Default()

	// 3. Services
	eventBus := bus.New(0)
	defer eventBus.Close()

	agentService := services.NewAgentService(dbClient.Client, logger)
	agentService.SetHeartbeatTimeout(cfg.Agents.HeartbeatTimeout)
	campaignService := services.NewCampaignService(dbClient.Client, logger)
	runService := services.NewRunService(dbClient.Client, logger)
	resultService := services.NewResultService(dbClient.Client, logger)
	eventService := services.NewEventService(dbClient.Client, eventBus, logger)
	slog.Info("Services initialized")

	// 4. Planner, dispatch queue, executor
	discoveryOpts := []planner.HTTPDiscoveryOption{
		planner.WithHuggingFaceBaseURL(cfg.Discovery.HuggingFaceBaseURL),
		planner.WithOllamaRegistryURL(cfg.Discovery.OllamaRegistryURL),
	}
	if cfg.Discovery.HuggingFaceToken != "" {
		discoveryOpts = append(discoveryOpts,
			planner.WithHuggingFaceToken(cfg.Discovery.HuggingFaceToken))
	}
	pl := planner.New(planner.NewHTTPDiscovery(discoveryOpts...), logger)

	queue := dispatch.New(cfg.Executor.QueueCapacity)
	exec := executor.New(campaignService, runService, eventService, queue, pl,
		executor.Config{
			PollInterval: cfg.Executor.PollInterval,
			RunTimeout:   cfg.Executor.RunTimeout,
		}, logger)

	// 5. Startup recovery: fail orphaned in-flight runs, resume running
	// campaigns, relaunch queued ones.
	if err := exec.RecoverOnStartup(ctx); err != nil {
		slog.Error("Startup recovery failed", "error", err)
		os.Exit(1)
	}

	// 6. Background loops
	go agentService.RunLivenessSweeper(ctx, cfg.Agents.SweepInterval)
	go exec.RunWatchdog(ctx, cfg.Executor.WatchdogInterval)

	cleanupService := cleanup.NewService(&cfg.Retention, campaignService, eventService, logger)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 7. HTTP server
	apiCfg := api.DefaultConfig()
	apiCfg.Addr = cfg.HTTP.Addr
	apiCfg.AdminToken = cfg.HTTP.AdminToken
	apiCfg.HeartbeatIntervalS = cfg.HTTP.HeartbeatIntervalS
	apiCfg.AgentSettings = cfg.HTTP.AgentSettings

	server := api.NewServer(apiCfg, dbClient,
		agentService, campaignService, runService, resultService, eventService,
		queue, exec, metrics.New(), logger)
	server.SetExecContext(ctx)

	slog.Info("kitt server started", "addr", cfg.HTTP.Addr)
	if err := server.Run(ctx); err != nil {
		slog.Error("HTTP server error", "error", err)
		os.Exit(1)
	}

	// 8. Drain executors before exit so campaign finalization lands.
	exec.Shutdown()

	slog.Info("Shutdown complete")
}
