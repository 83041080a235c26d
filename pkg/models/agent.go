package models

import "github.com/Kirizan/kitt-sub000/ent"

// ProvisionRequest is the body of POST /agents/provision.
type ProvisionRequest struct {
	Name string `json:"name"`
	Port int    `json:"port,omitempty"`
}

// ProvisionResponse carries the raw token exactly once; only its SHA-256
// hash is stored.
type ProvisionResponse struct {
	AgentID     string `json:"agent_id"`
	Token       string `json:"token"`
	TokenPrefix string `json:"token_prefix"`
}

// AgentCapabilities is the capability snapshot an agent reports on every
// heartbeat.
type AgentCapabilities struct {
	Hostname      string                 `json:"hostname,omitempty"`
	CPUArch       string                 `json:"cpu_arch,omitempty"`
	CPUInfo       string                 `json:"cpu_info,omitempty"`
	GPUInfo       string                 `json:"gpu_info,omitempty"`
	GPUCount      int                    `json:"gpu_count,omitempty"`
	RAMGB         int                    `json:"ram_gb,omitempty"`
	KittVersion   string                 `json:"kitt_version,omitempty"`
	StorageGBFree float64                `json:"storage_gb_free,omitempty"`
	Details       map[string]interface{} `json:"details,omitempty"`
}

// HeartbeatRequest is the body of POST /agents/{name}/heartbeat.
// ActiveCommands non-empty means the agent is busy: the server must not
// dequeue a new command for it.
type HeartbeatRequest struct {
	Status         string            `json:"status,omitempty"`
	ActiveCommands []string          `json:"active_commands,omitempty"`
	Capabilities   AgentCapabilities `json:"capabilities"`
}

// HeartbeatResponse returns the next command, or a null command when the
// queue is empty or the agent is busy.
type HeartbeatResponse struct {
	AgentID            string            `json:"agent_id"`
	Command            *Command          `json:"command"`
	HeartbeatIntervalS int               `json:"heartbeat_interval_s,omitempty"`
	Settings           map[string]string `json:"settings,omitempty"`
}

// ResultRequest is the terminal report for a command,
// POST /agents/{name}/results.
type ResultRequest struct {
	CommandID        string                 `json:"command_id"`
	Status           string                 `json:"status"` // completed|failed
	ErrorKind        string                 `json:"error_kind,omitempty"`
	Error            string                 `json:"error,omitempty"`
	Passed           bool                   `json:"passed,omitempty"`
	Metrics          map[string]interface{} `json:"metrics,omitempty"`
	OutputLocation   string                 `json:"output_location,omitempty"`
	HardwareSnapshot map[string]interface{} `json:"hardware_snapshot,omitempty"`
	LogTail          []string               `json:"log_tail,omitempty"`
}

// LogLineRequest appends one line to a command's run stream,
// POST /commands/{command_id}/log.
type LogLineRequest struct {
	Line string `json:"line"`
}

// AgentListResponse contains all known agents.
type AgentListResponse struct {
	Agents []*ent.Agent `json:"agents"`
}

// RotateTokenResponse carries a freshly rotated raw token, returned once.
type RotateTokenResponse struct {
	Token       string `json:"token"`
	TokenPrefix string `json:"token_prefix"`
}
