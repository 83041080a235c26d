package config

import (
	"fmt"
	"net/url"
)

// Validate checks the server configuration for values that would fail
// at runtime.
func (c *ServerConfig) Validate() error {
	if c.Database.Host == "" {
		return NewValidationError("database", "host", "", ErrMissingRequiredField)
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		return NewValidationError("database", "port",
			fmt.Sprintf("%d", c.Database.Port), ErrInvalidValue)
	}
	if c.Database.Database == "" {
		return NewValidationError("database", "database", "", ErrMissingRequiredField)
	}
	if c.HTTP.Addr == "" {
		return NewValidationError("http", "addr", "", ErrMissingRequiredField)
	}
	if c.HTTP.HeartbeatIntervalS < 0 {
		return NewValidationError("http", "heartbeat_interval_s",
			fmt.Sprintf("%d", c.HTTP.HeartbeatIntervalS), ErrInvalidValue)
	}
	if c.Executor.PollInterval <= 0 {
		return NewValidationError("executor", "poll_interval",
			c.Executor.PollInterval.String(), ErrInvalidValue)
	}
	if c.Executor.RunTimeout <= 0 {
		return NewValidationError("executor", "run_timeout",
			c.Executor.RunTimeout.String(), ErrInvalidValue)
	}
	if c.Executor.QueueCapacity <= 0 {
		return NewValidationError("executor", "queue_capacity",
			fmt.Sprintf("%d", c.Executor.QueueCapacity), ErrInvalidValue)
	}
	if c.Agents.HeartbeatTimeout <= 0 {
		return NewValidationError("agents", "heartbeat_timeout",
			c.Agents.HeartbeatTimeout.String(), ErrInvalidValue)
	}
	if c.Retention.CampaignRetentionDays <= 0 {
		return NewValidationError("retention", "campaign_retention_days",
			fmt.Sprintf("%d", c.Retention.CampaignRetentionDays), ErrInvalidValue)
	}
	return nil
}

// Validate checks the agent configuration. Name and Token are required:
// an agent cannot heartbeat without credentials.
func (c *AgentConfig) Validate() error {
	if c.ServerURL == "" {
		return NewValidationError("agent", "server_url", "", ErrMissingRequiredField)
	}
	if _, err := url.ParseRequestURI(c.ServerURL); err != nil {
		return NewValidationError("agent", "server_url", c.ServerURL, ErrInvalidValue)
	}
	if c.Name == "" {
		return NewValidationError("agent", "name", "", ErrMissingRequiredField)
	}
	if c.Token == "" {
		return NewValidationError("agent", "token", "", ErrMissingRequiredField)
	}
	if c.HeartbeatInterval <= 0 {
		return NewValidationError("agent", "heartbeat_interval",
			c.HeartbeatInterval.String(), ErrInvalidValue)
	}
	if c.LogTailLines < 0 {
		return NewValidationError("agent", "log_tail_lines",
			fmt.Sprintf("%d", c.LogTailLines), ErrInvalidValue)
	}
	return nil
}
