// Code generated by ent, DO NOT EDIT.

package utterance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the utterance type in the database.
	Label = "utterance"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "utterance_id"
	// FieldDebateID holds the string denoting the debate_id field in the database.
	FieldDebateID = "debate_id"
	// FieldTurnIndex holds the string denoting the turn_index field in the database.
	FieldTurnIndex = "turn_index"
	// FieldOffsetMs holds the string denoting the offset_ms field in the database.
	FieldOffsetMs = "offset_ms"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldSpeaker holds the string denoting the speaker field in the database.
	FieldSpeaker = "speaker"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDebate holds the string denoting the debate edge name in mutations.
	EdgeDebate = "debate"
	// DebateFieldID holds the string denoting the ID field of the Debate.
	DebateFieldID = "debate_id"
	// Table holds the table name of the utterance in the database.
	Table = "utterances"
	// DebateTable is the table that holds the debate relation/edge.
	DebateTable = "utterances"
	// DebateInverseTable is the table name for the Debate entity.
	// It exists in this package in order to avoid circular dependency with the "debate" package.
	DebateInverseTable = "debates"
	// DebateColumn is the table column denoting the debate relation/edge.
	DebateColumn = "debate_id"
)

// Columns holds all SQL columns for utterance fields.
var Columns = []string{
	FieldID,
	FieldDebateID,
	FieldTurnIndex,
	FieldOffsetMs,
	FieldPhase,
	FieldSpeaker,
	FieldContent,
	FieldMetadata,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Utterance queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDebateID orders the results by the debate_id field.
func ByDebateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDebateID, opts...).ToFunc()
}

// ByTurnIndex orders the results by the turn_index field.
func ByTurnIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTurnIndex, opts...).ToFunc()
}

// ByOffsetMs orders the results by the offset_ms field.
func ByOffsetMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOffsetMs, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// BySpeaker orders the results by the speaker field.
func BySpeaker(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpeaker, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDebateField orders the results by debate field.
func ByDebateField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDebateStep(), sql.OrderByField(field, opts...))
	}
}
func newDebateStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DebateInverseTable, DebateFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DebateTable, DebateColumn),
	)
}
