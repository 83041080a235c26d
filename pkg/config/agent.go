package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"dario.cat/mergo"
)

// AgentFileName is the agent configuration file inside the config dir.
const AgentFileName = "kitt-agent.yaml"

// DockerConfig holds the agent's container runtime settings.
type DockerConfig struct {
	// Binary is the docker CLI executable.
	Binary string `yaml:"binary"`
	// Network is passed as --network on every benchmark container.
	Network string `yaml:"network"`
	// HealthTimeout bounds the post-start health wait for an engine
	// container.
	HealthTimeout time.Duration `yaml:"health_timeout"`
}

// AgentDiskConfig holds the agent's local disk policy.
type AgentDiskConfig struct {
	// ReserveGB is free space the agent refuses to eat into when
	// pulling models.
	ReserveGB float64 `yaml:"reserve_gb"`
	// CleanupAfterRun removes downloaded model files once a run ends.
	CleanupAfterRun bool `yaml:"cleanup_after_run"`
}

// AgentConfig is the complete kitt agent configuration.
type AgentConfig struct {
	// ServerURL is the orchestration server base URL.
	ServerURL string `yaml:"server_url"`
	// Name is the agent's registered name; must match provisioning.
	Name string `yaml:"name"`
	// Token is the per-agent bearer token. Usually injected via
	// {{.KITT_AGENT_TOKEN}}.
	Token string `yaml:"token"`

	// WorkDir holds per-run scratch space.
	WorkDir string `yaml:"work_dir"`
	// ModelCacheDir caches downloaded model weights across runs.
	ModelCacheDir string `yaml:"model_cache_dir"`

	// HeartbeatInterval is the initial interval; the server's advertised
	// value takes over after the first heartbeat.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`
	// RequestTimeout bounds one HTTP call to the server.
	RequestTimeout time.Duration `yaml:"request_timeout"`
	// LogTailLines is how many trailing log lines ride along with the
	// terminal result report.
	LogTailLines int `yaml:"log_tail_lines"`

	Docker DockerConfig    `yaml:"docker"`
	Disk   AgentDiskConfig `yaml:"disk"`
}

// DefaultAgentConfig returns the built-in agent defaults.
func DefaultAgentConfig() *AgentConfig {
	return &AgentConfig{
		ServerURL:         "http://localhost:8080",
		WorkDir:           "/var/lib/kitt-agent/work",
		ModelCacheDir:     "/var/lib/kitt-agent/models",
		HeartbeatInterval: 30 * time.Second,
		RequestTimeout:    30 * time.Second,
		LogTailLines:      50,
		Docker: DockerConfig{
			Binary:        "docker",
			HealthTimeout: 10 * time.Minute,
		},
		Disk: AgentDiskConfig{
			ReserveGB: 10,
		},
	}
}

// LoadAgent reads <configDir>/kitt-agent.yaml, expands environment
// variables, and merges the result over the built-in defaults.
func LoadAgent(configDir string) (*AgentConfig, error) {
	cfg := DefaultAgentConfig()

	var user AgentConfig
	found, err := loadYAML(filepath.Join(configDir, AgentFileName), &user)
	if err != nil {
		return nil, NewLoadError(AgentFileName, err)
	}
	if found {
		if err := mergo.Merge(cfg, &user, mergo.WithOverride); err != nil {
			return nil, NewLoadError(AgentFileName, err)
		}
	} else {
		slog.Info("no agent config file found, using defaults",
			"path", filepath.Join(configDir, AgentFileName))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	return cfg, nil
}
