package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for a registered benchmark agent.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique().
			Comment("Human-chosen agent name; stable across token rotations"),
		field.String("hostname").
			Optional(),
		field.Int("port").
			Default(8090),
		field.String("cpu_arch").
			Optional().
			Comment("Normalized architecture: amd64, arm64, ..."),
		field.String("cpu_info").
			Optional(),
		field.String("gpu_info").
			Optional(),
		field.Int("gpu_count").
			Default(0),
		field.Int("ram_gb").
			Default(0),
		field.String("kitt_version").
			Optional(),
		field.JSON("hardware_details", map[string]interface{}{}).
			Optional().
			Comment("Full capability snapshot from the last heartbeat"),
		field.Enum("status").
			Values("offline", "online").
			Default("offline"),
		field.String("token_hash").
			Comment("SHA-256 hex of the provisioned token; raw tokens are never stored"),
		field.String("token_prefix").
			MaxLen(8).
			Comment("First 8 chars of the raw token, for display only"),
		field.Time("last_heartbeat").
			Optional().
			Nillable(),
		field.Time("registered_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "last_heartbeat"),
	}
}
