package models

import "time"

// CommandType identifies what an agent should do with a dispatched command.
type CommandType string

// Accepted command types. run_container is the canonical path; run_test is
// the legacy pathway kept with identical fields.
const (
	CommandRunContainer  CommandType = "run_container"
	CommandStopContainer CommandType = "stop_container"
	CommandCheckDocker   CommandType = "check_docker"
	CommandRunTest       CommandType = "run_test"
)

// CommandPayload carries the engine/model/suite specifics of a command.
type CommandPayload struct {
	RunID         string                 `json:"run_id,omitempty"`
	ModelName     string                 `json:"model_name,omitempty"`
	ModelRef      string                 `json:"model_ref,omitempty"`
	Quant         string                 `json:"quant,omitempty"`
	EngineName    string                 `json:"engine_name,omitempty"`
	EngineMode    string                 `json:"engine_mode,omitempty"`
	EngineConfig  map[string]interface{} `json:"engine_config,omitempty"`
	BenchmarkName string                 `json:"benchmark_name,omitempty"`
	SuiteName     string                 `json:"suite_name,omitempty"`
	// ContainerID targets a running container for stop_container.
	ContainerID string `json:"container_id,omitempty"`
}

// Command is a dispatched instruction to execute a single PlannedRun.
// Commands are volatile: they live on the per-agent dispatch queue and are
// handed to at most one heartbeat.
type Command struct {
	CommandID string `json:"command_id"`
	AgentID   string `json:"agent_id"`
	// CampaignID scopes queue cleanup: cancelling one campaign must not
	// drop another campaign's commands queued on the same agent.
	CampaignID string         `json:"campaign_id,omitempty"`
	Type       CommandType    `json:"type"`
	Payload    CommandPayload `json:"payload"`
	CreatedAt  time.Time      `json:"created_at"`
}
