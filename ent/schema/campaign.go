package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Campaign holds the schema definition for a benchmark campaign.
type Campaign struct {
	ent.Schema
}

// Fields of the Campaign.
func (Campaign) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("campaign_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("description").
			Optional(),
		field.JSON("config", map[string]interface{}{}).
			Comment("Immutable campaign definition: models, engines, benchmarks, filters, limits"),
		field.String("agent_id").
			Comment("Target agent; a campaign is pinned to exactly one agent"),
		field.Enum("status").
			Values("draft", "queued", "running", "completed", "failed", "cancelled").
			Default("draft"),
		field.Int("total_runs").
			Default(0),
		field.Int("succeeded").
			Default(0),
		field.Int("failed").
			Default(0),
		field.Int("skipped").
			Default(0),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Campaign.
func (Campaign) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("planned_runs", PlannedRun.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Campaign.
func (Campaign) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("agent_id"),
		index.Fields("status", "created_at"),
	}
}
