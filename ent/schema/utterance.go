package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/debatelab/agora/pkg/models"
)

// Utterance holds the schema definition for the Utterance entity. One
// completed speech act; immutable once appended.
type Utterance struct {
	ent.Schema
}

// Fields of the Utterance.
func (Utterance) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("utterance_id").
			Unique().
			Immutable(),
		field.String("debate_id").
			Immutable(),
		field.Int("turn_index").
			Immutable().
			Comment("Monotonic position within the debate"),
		field.Int64("offset_ms").
			Immutable().
			Comment("Milliseconds since debate start, excluding paused intervals"),
		field.String("phase").
			Immutable(),
		field.String("speaker").
			Immutable(),
		field.Text("content").
			Immutable().
			Comment("Full utterance text (full-text searchable)"),
		field.JSON("metadata", models.UtteranceMetadata{}).
			Comment("Model, token usage, truncation and evaluation details"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Utterance.
func (Utterance) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("debate", Debate.Type).
			Ref("utterances").
			Field("debate_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Utterance.
func (Utterance) Indexes() []ent.Index {
	return []ent.Index{
		// Replayed appends of the same turn must be no-ops.
		index.Fields("debate_id", "turn_index").
			Unique(),
		index.Fields("debate_id", "created_at"),
	}
}
