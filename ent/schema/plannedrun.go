package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlannedRun holds the schema definition for one concrete
// (model, engine, quant, benchmark) run produced by the planner.
type PlannedRun struct {
	ent.Schema
}

// Fields of the PlannedRun.
func (PlannedRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("campaign_id"),
		field.String("model_name"),
		field.String("model_ref").
			Comment("Local path, HF repo id, or Ollama tag the engine loads"),
		field.String("engine_name"),
		field.Enum("engine_mode").
			Values("docker", "native").
			Default("docker"),
		field.String("benchmark_name"),
		field.String("suite_name").
			Default("standard"),
		field.String("quant").
			Comment("Quantisation identifier, e.g. Q4_K_M, bf16"),
		field.Float("estimated_size_gb").
			Default(0),
		field.Enum("status").
			Values("pending", "queued", "dispatched", "running",
				"completed", "failed", "skipped", "cancelled").
			Default("pending"),
		field.String("command_id").
			Optional().
			Nillable().
			Comment("Set when the run first leaves pending; unique per dispatch attempt"),
		field.String("error_kind").
			Optional().
			Comment("Failure taxonomy label: validation, incompatible, size, disk, engine, watchdog, ..."),
		field.String("error_message").
			Optional(),
		field.Int("plan_index").
			Default(0).
			Comment("Position in the deterministic plan order"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("queued_at").
			Optional().
			Nillable(),
		field.Time("dispatched_at").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_transition_at").
			Default(time.Now).
			Comment("Watchdog baseline: refreshed on every status transition"),
	}
}

// Edges of the PlannedRun.
func (PlannedRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("campaign", Campaign.Type).
			Ref("planned_runs").
			Field("campaign_id").
			Unique().
			Required(),
		edge.To("result", RunResult.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the PlannedRun.
func (PlannedRun) Indexes() []ent.Index {
	return []ent.Index{
		// Plan key: replanning must be a no-op.
		index.Fields("campaign_id", "model_ref", "engine_name", "quant", "benchmark_name").
			Unique(),
		index.Fields("status"),
		index.Fields("campaign_id", "status"),
		index.Fields("command_id"),
		index.Fields("campaign_id", "plan_index"),
	}
}
