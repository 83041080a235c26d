package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StreamEvent holds the schema definition for append-only log and status
// events. The auto-increment id doubles as the per-stream SSE sequence:
// it is not dense per stream, but it is strictly monotonic, which is all
// Last-Event-ID resumption needs.
type StreamEvent struct {
	ent.Schema
}

// Fields of the StreamEvent.
func (StreamEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("stream_id").
			Comment("Campaign id or run id this event belongs to"),
		field.Enum("kind").
			Values("log", "status"),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the StreamEvent.
func (StreamEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stream_id"),
		index.Fields("created_at"),
	}
}
