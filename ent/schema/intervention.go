package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Intervention holds the schema definition for the Intervention entity: a
// user command recorded against a debate.
type Intervention struct {
	ent.Schema
}

// Fields of the Intervention.
func (Intervention) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("intervention_id").
			Unique().
			Immutable(),
		field.String("debate_id").
			Immutable(),
		field.Enum("type").
			Values(
				"question",
				"challenge",
				"evidence_injection",
				"pause_request",
				"clarification_request",
				"resume",
				"stop",
				"continue",
				"reassign_model",
			),
		field.Text("content").
			Optional(),
		field.String("directed_to").
			Optional().
			Comment("Target speaker for questions and reassignments"),
		field.Enum("status").
			Values("queued", "processing", "completed", "failed").
			Default("queued"),
		field.Text("response").
			Optional().
			Comment("Required for the completed status"),
		field.String("client_key").
			Optional().
			Nillable().
			Comment("Deduplicates retried submissions"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("processed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Intervention.
func (Intervention) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("debate", Debate.Type).
			Ref("interventions").
			Field("debate_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Intervention.
func (Intervention) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("debate_id", "status"),
		index.Fields("debate_id", "created_at"),
		// Client keys are unique per debate when present.
		index.Fields("debate_id", "client_key").
			Unique().
			Annotations(entsql.IndexWhere("client_key IS NOT NULL")),
	}
}
