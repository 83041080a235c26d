// Package config loads and validates the YAML configuration for the
// kitt server and the kitt agent. Files are read from a config
// directory, environment variables are expanded with {{.VAR}} template
// syntax, and user values are merged over built-in defaults.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ServerFileName is the server configuration file inside the config dir.
const ServerFileName = "kitt.yaml"

// DatabaseConfig holds the PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`

	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
}

// HTTPConfig holds the API listener settings.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
	// AdminToken authorizes operator endpoints. Usually injected via
	// {{.KITT_ADMIN_TOKEN}}; empty disables admin auth (dev only).
	AdminToken string `yaml:"admin_token"`
	// HeartbeatIntervalS is advertised to agents, clamped to [10, 300].
	HeartbeatIntervalS int               `yaml:"heartbeat_interval_s"`
	AgentSettings      map[string]string `yaml:"agent_settings"`
}

// ExecutorConfig tunes the campaign executor.
type ExecutorConfig struct {
	// PollInterval is how often the march loop re-reads an in-flight
	// run from the ledger.
	PollInterval time.Duration `yaml:"poll_interval"`
	// RunTimeout bounds one run from dispatch to terminal state.
	RunTimeout time.Duration `yaml:"run_timeout"`
	// WatchdogInterval is how often stalled in-flight runs are swept.
	WatchdogInterval time.Duration `yaml:"watchdog_interval"`
	// QueueCapacity caps each agent's command queue.
	QueueCapacity int `yaml:"queue_capacity"`
}

// AgentsConfig tunes server-side agent bookkeeping.
type AgentsConfig struct {
	// HeartbeatTimeout is how long an agent may go silent before it is
	// marked offline.
	HeartbeatTimeout time.Duration `yaml:"heartbeat_timeout"`
	// SweepInterval is how often the liveness sweeper runs.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// DiscoveryConfig points the planner at model registries.
type DiscoveryConfig struct {
	HuggingFaceBaseURL string `yaml:"huggingface_base_url"`
	// HuggingFaceToken authorizes gated repos. Usually injected via
	// {{.HF_TOKEN}}.
	HuggingFaceToken  string `yaml:"huggingface_token"`
	OllamaRegistryURL string `yaml:"ollama_registry_url"`
}

// ServerConfig is the complete kitt server configuration.
type ServerConfig struct {
	Database  DatabaseConfig  `yaml:"database"`
	HTTP      HTTPConfig      `yaml:"http"`
	Executor  ExecutorConfig  `yaml:"executor"`
	Agents    AgentsConfig    `yaml:"agents"`
	Discovery DiscoveryConfig `yaml:"discovery"`
	Retention RetentionConfig `yaml:"retention"`
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "kitt",
			Database:        "kitt",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 1 * time.Hour,
			ConnMaxIdleTime: 15 * time.Minute,
		},
		HTTP: HTTPConfig{
			Addr:               ":8080",
			HeartbeatIntervalS: 30,
		},
		Executor: ExecutorConfig{
			PollInterval:     5 * time.Second,
			RunTimeout:       30 * time.Minute,
			WatchdogInterval: 1 * time.Minute,
			QueueCapacity:    64,
		},
		Agents: AgentsConfig{
			HeartbeatTimeout: 90 * time.Second,
			SweepInterval:    30 * time.Second,
		},
		Discovery: DiscoveryConfig{
			HuggingFaceBaseURL: "https://huggingface.co",
			OllamaRegistryURL:  "https://registry.ollama.ai",
		},
		Retention: *DefaultRetentionConfig(),
	}
}

// LoadServer reads <configDir>/kitt.yaml, expands environment variables,
// and merges the result over the built-in defaults. A missing file is
// not an error: the defaults are returned as-is.
func LoadServer(configDir string) (*ServerConfig, error) {
	cfg := DefaultServerConfig()

	var user ServerConfig
	found, err := loadYAML(filepath.Join(configDir, ServerFileName), &user)
	if err != nil {
		return nil, NewLoadError(ServerFileName, err)
	}
	if found {
		if err := mergo.Merge(cfg, &user, mergo.WithOverride); err != nil {
			return nil, NewLoadError(ServerFileName, err)
		}
	} else {
		slog.Info("no server config file found, using defaults",
			"path", filepath.Join(configDir, ServerFileName))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	return cfg, nil
}

// loadYAML reads one config file with env expansion. The boolean reports
// whether the file existed.
func loadYAML(path string, target any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return true, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return true, nil
}
