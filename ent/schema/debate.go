package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/debatelab/agora/pkg/config"
)

// Debate holds the schema definition for the Debate entity.
type Debate struct {
	ent.Schema
}

// Fields of the Debate.
func (Debate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("debate_id").
			Unique().
			Immutable(),
		field.Text("proposition").
			Comment("The statement under debate (full-text searchable)"),
		field.Text("context").
			Optional().
			Comment("Background material supplied at creation"),
		field.Enum("status").
			Values("pending", "running", "paused", "completed", "failed", "stopped").
			Default("pending").
			Comment("Queue lifecycle, orthogonal to phase"),
		field.String("phase").
			Default("initializing").
			Comment("Protocol position within the debate"),
		field.String("previous_phase").
			Optional().
			Nillable().
			Comment("Snapshot taken on entering paused; resume returns to it"),
		field.String("current_speaker").
			Optional().
			Nillable(),
		field.JSON("config", &config.DebateConfig{}).
			Comment("Full per-debate configuration, frozen at creation"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the debate (pending to running)"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int64("paused_ms").
			Default(0).
			Comment("Accumulated paused time; elapsed time excludes it"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Worker heartbeat, for orphan detection"),
	}
}

// Edges of the Debate.
func (Debate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("utterances", Utterance.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("interventions", Intervention.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("system_events", SystemEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Debate.
func (Debate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_interaction_at"),
	}
}
