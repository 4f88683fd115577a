// Code generated by ent, DO NOT EDIT.

package systemevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the systemevent type in the database.
	Label = "system_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldDebateID holds the string denoting the debate_id field in the database.
	FieldDebateID = "debate_id"
	// FieldChannel holds the string denoting the channel field in the database.
	FieldChannel = "channel"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDebate holds the string denoting the debate edge name in mutations.
	EdgeDebate = "debate"
	// DebateFieldID holds the string denoting the ID field of the Debate.
	DebateFieldID = "debate_id"
	// Table holds the table name of the systemevent in the database.
	Table = "system_events"
	// DebateTable is the table that holds the debate relation/edge.
	DebateTable = "system_events"
	// DebateInverseTable is the table name for the Debate entity.
	// It exists in this package in order to avoid circular dependency with the "debate" package.
	DebateInverseTable = "debates"
	// DebateColumn is the table column denoting the debate relation/edge.
	DebateColumn = "debate_id"
)

// Columns holds all SQL columns for systemevent fields.
var Columns = []string{
	FieldID,
	FieldDebateID,
	FieldChannel,
	FieldPayload,
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

// OrderOption defines the ordering options for the SystemEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDebateID orders the results by the debate_id field.
func ByDebateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDebateID, opts...).ToFunc()
}

// ByChannel orders the results by the channel field.
func ByChannel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannel, opts...).ToFunc()
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
