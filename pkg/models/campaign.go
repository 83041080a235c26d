// Package models contains the request/response and configuration types
// shared by the server, the agent, and the CLI.
package models

import (
	"fmt"
	"time"

	"github.com/Kirizan/kitt-sub000/ent"
)

// ModelSpec describes one model in a campaign config. References are keyed
// by the format an engine consumes; any subset may be set.
type ModelSpec struct {
	Name            string  `json:"name" yaml:"name"`
	Params          string  `json:"params,omitempty" yaml:"params,omitempty"`
	SafetensorsRepo string  `json:"safetensors_repo,omitempty" yaml:"safetensors_repo,omitempty"`
	GGUFRepo        string  `json:"gguf_repo,omitempty" yaml:"gguf_repo,omitempty"`
	OllamaTag       string  `json:"ollama_tag,omitempty" yaml:"ollama_tag,omitempty"`
	EstimatedSizeGB float64 `json:"estimated_size_gb,omitempty" yaml:"estimated_size_gb,omitempty"`
}

// EngineSpec describes one inference engine in a campaign config.
type EngineSpec struct {
	Name   string                 `json:"name" yaml:"name"`
	Suite  string                 `json:"suite,omitempty" yaml:"suite,omitempty"`
	Config map[string]interface{} `json:"config,omitempty" yaml:"config,omitempty"`
	Mode   string                 `json:"mode,omitempty" yaml:"mode,omitempty"` // docker|native
}

// QuantFilter narrows the set of discovered quantisations.
// SkipPatterns subtract first, then IncludeOnly intersects.
type QuantFilter struct {
	SkipPatterns []string `json:"skip_patterns,omitempty" yaml:"skip_patterns,omitempty"`
	IncludeOnly  []string `json:"include_only,omitempty" yaml:"include_only,omitempty"`
}

// ResourceLimits bounds what the planner will schedule.
type ResourceLimits struct {
	// MaxModelSizeGB of 0 disables the size check entirely.
	MaxModelSizeGB float64 `json:"max_model_size_gb,omitempty" yaml:"max_model_size_gb,omitempty"`
}

// DiskConfig holds agent-side disk policy carried in the campaign config.
type DiskConfig struct {
	ReserveGB       float64 `json:"reserve_gb,omitempty" yaml:"reserve_gb,omitempty"`
	CleanupAfterRun bool    `json:"cleanup_after_run,omitempty" yaml:"cleanup_after_run,omitempty"`
}

// CampaignConfig is the immutable campaign definition: the matrix of
// models × engines × benchmarks plus filters and limits.
type CampaignConfig struct {
	Name           string         `json:"name" yaml:"name"`
	Description    string         `json:"description,omitempty" yaml:"description,omitempty"`
	Models         []ModelSpec    `json:"models" yaml:"models"`
	Engines        []EngineSpec   `json:"engines" yaml:"engines"`
	Benchmarks     []string       `json:"benchmarks" yaml:"benchmarks"`
	QuantFilter    QuantFilter    `json:"quant_filter,omitempty" yaml:"quant_filter,omitempty"`
	ResourceLimits ResourceLimits `json:"resource_limits,omitempty" yaml:"resource_limits,omitempty"`
	Disk           DiskConfig     `json:"disk,omitempty" yaml:"disk,omitempty"`
}

// Validate checks that the config can produce at least one run.
func (c *CampaignConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("campaign name is required")
	}
	if len(c.Models) == 0 {
		return fmt.Errorf("at least one model is required")
	}
	if len(c.Engines) == 0 {
		return fmt.Errorf("at least one engine is required")
	}
	for i, m := range c.Models {
		if m.Name == "" {
			return fmt.Errorf("models[%d]: name is required", i)
		}
	}
	for i, e := range c.Engines {
		if e.Name == "" {
			return fmt.Errorf("engines[%d]: name is required", i)
		}
		if e.Mode != "" && e.Mode != "docker" && e.Mode != "native" {
			return fmt.Errorf("engines[%d]: mode must be docker or native", i)
		}
	}
	return nil
}

// Benchmarks defaults to a single throughput benchmark when unset.
func (c *CampaignConfig) BenchmarkNames() []string {
	if len(c.Benchmarks) == 0 {
		return []string{"throughput"}
	}
	return c.Benchmarks
}

// CreateCampaignRequest is the body of POST /campaigns.
type CreateCampaignRequest struct {
	AgentID string         `json:"agent_id"`
	Config  CampaignConfig `json:"config"`
}

// CancelCampaignRequest is the optional body of POST /campaigns/{id}/cancel.
// Stop additionally dispatches stop_container for the in-flight run;
// without it the agent finishes the current benchmark undisturbed.
type CancelCampaignRequest struct {
	Stop bool `json:"stop"`
}

// CampaignFilters contains filtering options for listing campaigns.
type CampaignFilters struct {
	Status string `json:"status,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// CampaignListResponse contains a paginated campaign list.
type CampaignListResponse struct {
	Campaigns  []*ent.Campaign `json:"campaigns"`
	TotalCount int             `json:"total_count"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}

// FailureKindCount pairs an error_kind with how many runs carry it.
type FailureKindCount struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}

// CampaignSnapshot is the aggregate view of a campaign and its runs.
// Aggregate counts are derived from run rows, never trusted from the
// campaign row alone.
type CampaignSnapshot struct {
	Campaign         *ent.Campaign      `json:"campaign"`
	Runs             []*ent.PlannedRun  `json:"runs"`
	TotalRuns        int                `json:"total_runs"`
	Succeeded        int                `json:"succeeded"`
	Failed           int                `json:"failed"`
	Skipped          int                `json:"skipped"`
	Cancelled        int                `json:"cancelled"`
	PendingOrRunning int                `json:"pending_or_running"`
	TopFailureKinds  []FailureKindCount `json:"top_failure_kinds,omitempty"`
}

// CampaignResponse is the POST /campaigns reply.
type CampaignResponse struct {
	CampaignID string    `json:"campaign_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
