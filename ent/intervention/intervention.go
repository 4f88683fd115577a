// Code generated by ent, DO NOT EDIT.

package intervention

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the intervention type in the database.
	Label = "intervention"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "intervention_id"
	// FieldDebateID holds the string denoting the debate_id field in the database.
	FieldDebateID = "debate_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldDirectedTo holds the string denoting the directed_to field in the database.
	FieldDirectedTo = "directed_to"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldResponse holds the string denoting the response field in the database.
	FieldResponse = "response"
	// FieldClientKey holds the string denoting the client_key field in the database.
	FieldClientKey = "client_key"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// EdgeDebate holds the string denoting the debate edge name in mutations.
	EdgeDebate = "debate"
	// DebateFieldID holds the string denoting the ID field of the Debate.
	DebateFieldID = "debate_id"
	// Table holds the table name of the intervention in the database.
	Table = "interventions"
	// DebateTable is the table that holds the debate relation/edge.
	DebateTable = "interventions"
	// DebateInverseTable is the table name for the Debate entity.
	// It exists in this package in order to avoid circular dependency with the "debate" package.
	DebateInverseTable = "debates"
	// DebateColumn is the table column denoting the debate relation/edge.
	DebateColumn = "debate_id"
)

// Columns holds all SQL columns for intervention fields.
var Columns = []string{
	FieldID,
	FieldDebateID,
	FieldType,
	FieldContent,
	FieldDirectedTo,
	FieldStatus,
	FieldResponse,
	FieldClientKey,
	FieldCreatedAt,
	FieldProcessedAt,
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

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeQuestion             Type = "question"
	TypeChallenge            Type = "challenge"
	TypeEvidenceInjection    Type = "evidence_injection"
	TypePauseRequest         Type = "pause_request"
	TypeClarificationRequest Type = "clarification_request"
	TypeResume               Type = "resume"
	TypeStop                 Type = "stop"
	TypeContinue             Type = "continue"
	TypeReassignModel        Type = "reassign_model"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeQuestion, TypeChallenge, TypeEvidenceInjection, TypePauseRequest, TypeClarificationRequest, TypeResume, TypeStop, TypeContinue, TypeReassignModel:
		return nil
	default:
		return fmt.Errorf("intervention: invalid enum value for type field: %q", _type)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusQueued is the default value of the Status enum.
const DefaultStatus = StatusQueued

// Status values.
const (
	StatusQueued     Status = "queued"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQueued, StatusProcessing, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("intervention: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Intervention queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDebateID orders the results by the debate_id field.
func ByDebateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDebateID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByDirectedTo orders the results by the directed_to field.
func ByDirectedTo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDirectedTo, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByResponse orders the results by the response field.
func ByResponse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponse, opts...).ToFunc()
}

// ByClientKey orders the results by the client_key field.
func ByClientKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientKey, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
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
