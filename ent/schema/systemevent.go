package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SystemEvent holds the schema definition for the SystemEvent entity:
// diagnostic records (interruptions, model failures, abandoned turns)
// appended best-effort alongside the transcript.
type SystemEvent struct {
	ent.Schema
}

// Fields of the SystemEvent.
func (SystemEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("debate_id").
			Immutable(),
		field.String("channel").
			Immutable().
			Comment("Diagnostic channel, e.g. interruption or model_failure"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SystemEvent.
func (SystemEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("debate", Debate.Type).
			Ref("system_events").
			Field("debate_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SystemEvent.
func (SystemEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("debate_id", "created_at"),
		index.Fields("channel"),
	}
}
