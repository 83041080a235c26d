package config

import "time"

// RetentionConfig controls ledger retention and cleanup behavior.
type RetentionConfig struct {
	// CampaignRetentionDays is how many days to keep terminal campaigns
	// (and their runs and results) before deletion.
	CampaignRetentionDays int `yaml:"campaign_retention_days"`

	// EventTTL is the maximum age of stream events before deletion.
	// SSE clients only ever replay recent history; old events exist for
	// debugging, not serving.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		CampaignRetentionDays: 180,
		EventTTL:              7 * 24 * time.Hour,
		CleanupInterval:       12 * time.Hour,
	}
}
