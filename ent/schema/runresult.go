package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunResult holds the schema definition for the final result of a
// completed PlannedRun. Written once, never updated.
type RunResult struct {
	ent.Schema
}

// Fields of the RunResult.
func (RunResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("result_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Unique(),
		field.String("command_id"),
		field.Bool("passed").
			Default(false),
		field.JSON("metrics", map[string]interface{}{}).
			Optional().
			Comment("Benchmark metrics dictionary as reported by the agent"),
		field.String("output_location").
			Optional().
			Comment("Where the raw benchmark output lives on the agent"),
		field.JSON("hardware_snapshot", map[string]interface{}{}).
			Optional().
			Comment("Agent hardware state at completion time"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RunResult.
func (RunResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", PlannedRun.Type).
			Ref("result").
			Field("run_id").
			Unique().
			Required(),
	}
}

// Indexes of the RunResult.
func (RunResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("command_id"),
	}
}
