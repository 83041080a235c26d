// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Kirizan/kitt-sub000/ent/agent"
	"github.com/Kirizan/kitt-sub000/ent/campaign"
	"github.com/Kirizan/kitt-sub000/ent/plannedrun"
	"github.com/Kirizan/kitt-sub000/ent/runresult"
	"github.com/Kirizan/kitt-sub000/ent/schema"
	"github.com/Kirizan/kitt-sub000/ent/streamevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescPort is the schema descriptor for port field.
	agentDescPort := agentFields[3].Descriptor()
	// agent.DefaultPort holds the default value on creation for the port field.
	agent.DefaultPort = agentDescPort.Default.(int)
	// agentDescGpuCount is the schema descriptor for gpu_count field.
	agentDescGpuCount := agentFields[7].Descriptor()
	// agent.DefaultGpuCount holds the default value on creation for the gpu_count field.
	agent.DefaultGpuCount = agentDescGpuCount.Default.(int)
	// agentDescRAMGB is the schema descriptor for ram_gb field.
	agentDescRAMGB := agentFields[8].Descriptor()
	// agent.DefaultRAMGB holds the default value on creation for the ram_gb field.
	agent.DefaultRAMGB = agentDescRAMGB.Default.(int)
	// agentDescTokenPrefix is the schema descriptor for token_prefix field.
	agentDescTokenPrefix := agentFields[13].Descriptor()
	// agent.TokenPrefixValidator is a validator for the "token_prefix" field. It is called by the builders before save.
	agent.TokenPrefixValidator = agentDescTokenPrefix.Validators[0].(func(string) error)
	// agentDescRegisteredAt is the schema descriptor for registered_at field.
	agentDescRegisteredAt := agentFields[15].Descriptor()
	// agent.DefaultRegisteredAt holds the default value on creation for the registered_at field.
	agent.DefaultRegisteredAt = agentDescRegisteredAt.Default.(func() time.Time)
	campaignFields := schema.Campaign{}.Fields()
	_ = campaignFields
	// campaignDescTotalRuns is the schema descriptor for total_runs field.
	campaignDescTotalRuns := campaignFields[6].Descriptor()
	// campaign.DefaultTotalRuns holds the default value on creation for the total_runs field.
	campaign.DefaultTotalRuns = campaignDescTotalRuns.Default.(int)
	// campaignDescSucceeded is the schema descriptor for succeeded field.
	campaignDescSucceeded := campaignFields[7].Descriptor()
	// campaign.DefaultSucceeded holds the default value on creation for the succeeded field.
	campaign.DefaultSucceeded = campaignDescSucceeded.Default.(int)
	// campaignDescFailed is the schema descriptor for failed field.
	campaignDescFailed := campaignFields[8].Descriptor()
	// campaign.DefaultFailed holds the default value on creation for the failed field.
	campaign.DefaultFailed = campaignDescFailed.Default.(int)
	// campaignDescSkipped is the schema descriptor for skipped field.
	campaignDescSkipped := campaignFields[9].Descriptor()
	// campaign.DefaultSkipped holds the default value on creation for the skipped field.
	campaign.DefaultSkipped = campaignDescSkipped.Default.(int)
	// campaignDescCreatedAt is the schema descriptor for created_at field.
	campaignDescCreatedAt := campaignFields[11].Descriptor()
	// campaign.DefaultCreatedAt holds the default value on creation for the created_at field.
	campaign.DefaultCreatedAt = campaignDescCreatedAt.Default.(func() time.Time)
	plannedrunFields := schema.PlannedRun{}.Fields()
	_ = plannedrunFields
	// plannedrunDescSuiteName is the schema descriptor for suite_name field.
	plannedrunDescSuiteName := plannedrunFields[7].Descriptor()
	// plannedrun.DefaultSuiteName holds the default value on creation for the suite_name field.
	plannedrun.DefaultSuiteName = plannedrunDescSuiteName.Default.(string)
	// plannedrunDescEstimatedSizeGB is the schema descriptor for estimated_size_gb field.
	plannedrunDescEstimatedSizeGB := plannedrunFields[9].Descriptor()
	// plannedrun.DefaultEstimatedSizeGB holds the default value on creation for the estimated_size_gb field.
	plannedrun.DefaultEstimatedSizeGB = plannedrunDescEstimatedSizeGB.Default.(float64)
	// plannedrunDescPlanIndex is the schema descriptor for plan_index field.
	plannedrunDescPlanIndex := plannedrunFields[14].Descriptor()
	// plannedrun.DefaultPlanIndex holds the default value on creation for the plan_index field.
	plannedrun.DefaultPlanIndex = plannedrunDescPlanIndex.Default.(int)
	// plannedrunDescCreatedAt is the schema descriptor for created_at field.
	plannedrunDescCreatedAt := plannedrunFields[15].Descriptor()
	// plannedrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	plannedrun.DefaultCreatedAt = plannedrunDescCreatedAt.Default.(func() time.Time)
	// plannedrunDescLastTransitionAt is the schema descriptor for last_transition_at field.
	plannedrunDescLastTransitionAt := plannedrunFields[20].Descriptor()
	// plannedrun.DefaultLastTransitionAt holds the default value on creation for the last_transition_at field.
	plannedrun.DefaultLastTransitionAt = plannedrunDescLastTransitionAt.Default.(func() time.Time)
	runresultFields := schema.RunResult{}.Fields()
	_ = runresultFields
	// runresultDescPassed is the schema descriptor for passed field.
	runresultDescPassed := runresultFields[3].Descriptor()
	// runresult.DefaultPassed holds the default value on creation for the passed field.
	runresult.DefaultPassed = runresultDescPassed.Default.(bool)
	// runresultDescCreatedAt is the schema descriptor for created_at field.
	runresultDescCreatedAt := runresultFields[7].Descriptor()
	// runresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	runresult.DefaultCreatedAt = runresultDescCreatedAt.Default.(func() time.Time)
	streameventFields := schema.StreamEvent{}.Fields()
	_ = streameventFields
	// streameventDescCreatedAt is the schema descriptor for created_at field.
	streameventDescCreatedAt := streameventFields[3].Descriptor()
	// streamevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	streamevent.DefaultCreatedAt = streameventDescCreatedAt.Default.(func() time.Time)
}
