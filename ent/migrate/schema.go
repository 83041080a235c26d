// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "hostname", Type: field.TypeString, Nullable: true},
		{Name: "port", Type: field.TypeInt, Default: 8090},
		{Name: "cpu_arch", Type: field.TypeString, Nullable: true},
		{Name: "cpu_info", Type: field.TypeString, Nullable: true},
		{Name: "gpu_info", Type: field.TypeString, Nullable: true},
		{Name: "gpu_count", Type: field.TypeInt, Default: 0},
		{Name: "ram_gb", Type: field.TypeInt, Default: 0},
		{Name: "kitt_version", Type: field.TypeString, Nullable: true},
		{Name: "hardware_details", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"offline", "online"}, Default: "offline"},
		{Name: "token_hash", Type: field.TypeString},
		{Name: "token_prefix", Type: field.TypeString, Size: 8},
		{Name: "last_heartbeat", Type: field.TypeTime, Nullable: true},
		{Name: "registered_at", Type: field.TypeTime},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_status",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[11]},
			},
			{
				Name:    "agent_status_last_heartbeat",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[11], AgentsColumns[14]},
			},
		},
	}
	// CampaignsColumns holds the columns for the "campaigns" table.
	CampaignsColumns = []*schema.Column{
		{Name: "campaign_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "config", Type: field.TypeJSON},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "queued", "running", "completed", "failed", "cancelled"}, Default: "draft"},
		{Name: "total_runs", Type: field.TypeInt, Default: 0},
		{Name: "succeeded", Type: field.TypeInt, Default: 0},
		{Name: "failed", Type: field.TypeInt, Default: 0},
		{Name: "skipped", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// CampaignsTable holds the schema information for the "campaigns" table.
	CampaignsTable = &schema.Table{
		Name:       "campaigns",
		Columns:    CampaignsColumns,
		PrimaryKey: []*schema.Column{CampaignsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "campaign_status",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[5]},
			},
			{
				Name:    "campaign_agent_id",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[4]},
			},
			{
				Name:    "campaign_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[5], CampaignsColumns[11]},
			},
		},
	}
	// PlannedRunsColumns holds the columns for the "planned_runs" table.
	PlannedRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "model_name", Type: field.TypeString},
		{Name: "model_ref", Type: field.TypeString},
		{Name: "engine_name", Type: field.TypeString},
		{Name: "engine_mode", Type: field.TypeEnum, Enums: []string{"docker", "native"}, Default: "docker"},
		{Name: "benchmark_name", Type: field.TypeString},
		{Name: "suite_name", Type: field.TypeString, Default: "standard"},
		{Name: "quant", Type: field.TypeString},
		{Name: "estimated_size_gb", Type: field.TypeFloat64, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "queued", "dispatched", "running", "completed", "failed", "skipped", "cancelled"}, Default: "pending"},
		{Name: "command_id", Type: field.TypeString, Nullable: true},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "plan_index", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "queued_at", Type: field.TypeTime, Nullable: true},
		{Name: "dispatched_at", Type: field.TypeTime, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_transition_at", Type: field.TypeTime},
		{Name: "campaign_id", Type: field.TypeString},
	}
	// PlannedRunsTable holds the schema information for the "planned_runs" table.
	PlannedRunsTable = &schema.Table{
		Name:       "planned_runs",
		Columns:    PlannedRunsColumns,
		PrimaryKey: []*schema.Column{PlannedRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "planned_runs_campaigns_planned_runs",
				Columns:    []*schema.Column{PlannedRunsColumns[20]},
				RefColumns: []*schema.Column{CampaignsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "plannedrun_campaign_id_model_ref_engine_name_quant_benchmark_name",
				Unique:  true,
				Columns: []*schema.Column{PlannedRunsColumns[20], PlannedRunsColumns[2], PlannedRunsColumns[3], PlannedRunsColumns[7], PlannedRunsColumns[5]},
			},
			{
				Name:    "plannedrun_status",
				Unique:  false,
				Columns: []*schema.Column{PlannedRunsColumns[9]},
			},
			{
				Name:    "plannedrun_campaign_id_status",
				Unique:  false,
				Columns: []*schema.Column{PlannedRunsColumns[20], PlannedRunsColumns[9]},
			},
			{
				Name:    "plannedrun_command_id",
				Unique:  false,
				Columns: []*schema.Column{PlannedRunsColumns[10]},
			},
			{
				Name:    "plannedrun_campaign_id_plan_index",
				Unique:  false,
				Columns: []*schema.Column{PlannedRunsColumns[20], PlannedRunsColumns[13]},
			},
		},
	}
	// RunResultsColumns holds the columns for the "run_results" table.
	RunResultsColumns = []*schema.Column{
		{Name: "result_id", Type: field.TypeString, Unique: true},
		{Name: "command_id", Type: field.TypeString},
		{Name: "passed", Type: field.TypeBool, Default: false},
		{Name: "metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "output_location", Type: field.TypeString, Nullable: true},
		{Name: "hardware_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString, Unique: true},
	}
	// RunResultsTable holds the schema information for the "run_results" table.
	RunResultsTable = &schema.Table{
		Name:       "run_results",
		Columns:    RunResultsColumns,
		PrimaryKey: []*schema.Column{RunResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "run_results_planned_runs_result",
				Columns:    []*schema.Column{RunResultsColumns[7]},
				RefColumns: []*schema.Column{PlannedRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "runresult_command_id",
				Unique:  false,
				Columns: []*schema.Column{RunResultsColumns[1]},
			},
		},
	}
	// StreamEventsColumns holds the columns for the "stream_events" table.
	StreamEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "stream_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"log", "status"}},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StreamEventsTable holds the schema information for the "stream_events" table.
	StreamEventsTable = &schema.Table{
		Name:       "stream_events",
		Columns:    StreamEventsColumns,
		PrimaryKey: []*schema.Column{StreamEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "streamevent_stream_id",
				Unique:  false,
				Columns: []*schema.Column{StreamEventsColumns[1]},
			},
			{
				Name:    "streamevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{StreamEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		CampaignsTable,
		PlannedRunsTable,
		RunResultsTable,
		StreamEventsTable,
	}
)

func init() {
	PlannedRunsTable.ForeignKeys[0].RefTable = CampaignsTable
	RunResultsTable.ForeignKeys[0].RefTable = PlannedRunsTable
}
