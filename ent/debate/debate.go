// Code generated by ent, DO NOT EDIT.

package debate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the debate type in the database.
	Label = "debate"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "debate_id"
	// FieldProposition holds the string denoting the proposition field in the database.
	FieldProposition = "proposition"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldPreviousPhase holds the string denoting the previous_phase field in the database.
	FieldPreviousPhase = "previous_phase"
	// FieldCurrentSpeaker holds the string denoting the current_speaker field in the database.
	FieldCurrentSpeaker = "current_speaker"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldPausedMs holds the string denoting the paused_ms field in the database.
	FieldPausedMs = "paused_ms"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastInteractionAt holds the string denoting the last_interaction_at field in the database.
	FieldLastInteractionAt = "last_interaction_at"
	// EdgeUtterances holds the string denoting the utterances edge name in mutations.
	EdgeUtterances = "utterances"
	// EdgeInterventions holds the string denoting the interventions edge name in mutations.
	EdgeInterventions = "interventions"
	// EdgeSystemEvents holds the string denoting the system_events edge name in mutations.
	EdgeSystemEvents = "system_events"
	// UtteranceFieldID holds the string denoting the ID field of the Utterance.
	UtteranceFieldID = "utterance_id"
	// InterventionFieldID holds the string denoting the ID field of the Intervention.
	InterventionFieldID = "intervention_id"
	// SystemEventFieldID holds the string denoting the ID field of the SystemEvent.
	SystemEventFieldID = "event_id"
	// Table holds the table name of the debate in the database.
	Table = "debates"
	// UtterancesTable is the table that holds the utterances relation/edge.
	UtterancesTable = "utterances"
	// UtterancesInverseTable is the table name for the Utterance entity.
	// It exists in this package in order to avoid circular dependency with the "utterance" package.
	UtterancesInverseTable = "utterances"
	// UtterancesColumn is the table column denoting the utterances relation/edge.
	UtterancesColumn = "debate_id"
	// InterventionsTable is the table that holds the interventions relation/edge.
	InterventionsTable = "interventions"
	// InterventionsInverseTable is the table name for the Intervention entity.
	// It exists in this package in order to avoid circular dependency with the "intervention" package.
	InterventionsInverseTable = "interventions"
	// InterventionsColumn is the table column denoting the interventions relation/edge.
	InterventionsColumn = "debate_id"
	// SystemEventsTable is the table that holds the system_events relation/edge.
	SystemEventsTable = "system_events"
	// SystemEventsInverseTable is the table name for the SystemEvent entity.
	// It exists in this package in order to avoid circular dependency with the "systemevent" package.
	SystemEventsInverseTable = "system_events"
	// SystemEventsColumn is the table column denoting the system_events relation/edge.
	SystemEventsColumn = "debate_id"
)

// Columns holds all SQL columns for debate fields.
var Columns = []string{
	FieldID,
	FieldProposition,
	FieldContext,
	FieldStatus,
	FieldPhase,
	FieldPreviousPhase,
	FieldCurrentSpeaker,
	FieldConfig,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldPausedMs,
	FieldErrorMessage,
	FieldPodID,
	FieldLastInteractionAt,
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
	// DefaultPhase holds the default value on creation for the "phase" field.
	DefaultPhase string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultPausedMs holds the default value on creation for the "paused_ms" field.
	DefaultPausedMs int64
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusStopped   Status = "stopped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusPaused, StatusCompleted, StatusFailed, StatusStopped:
		return nil
	default:
		return fmt.Errorf("debate: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Debate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProposition orders the results by the proposition field.
func ByProposition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposition, opts...).ToFunc()
}

// ByContext orders the results by the context field.
func ByContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContext, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByPreviousPhase orders the results by the previous_phase field.
func ByPreviousPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviousPhase, opts...).ToFunc()
}

// ByCurrentSpeaker orders the results by the current_speaker field.
func ByCurrentSpeaker(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentSpeaker, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByPausedMs orders the results by the paused_ms field.
func ByPausedMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPausedMs, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastInteractionAt orders the results by the last_interaction_at field.
func ByLastInteractionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastInteractionAt, opts...).ToFunc()
}

// ByUtterancesCount orders the results by utterances count.
func ByUtterancesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUtterancesStep(), opts...)
	}
}

// ByUtterances orders the results by utterances terms.
func ByUtterances(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUtterancesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByInterventionsCount orders the results by interventions count.
func ByInterventionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInterventionsStep(), opts...)
	}
}

// ByInterventions orders the results by interventions terms.
func ByInterventions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInterventionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySystemEventsCount orders the results by system_events count.
func BySystemEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSystemEventsStep(), opts...)
	}
}

// BySystemEvents orders the results by system_events terms.
func BySystemEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSystemEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUtterancesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UtterancesInverseTable, UtteranceFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UtterancesTable, UtterancesColumn),
	)
}
func newInterventionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InterventionsInverseTable, InterventionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InterventionsTable, InterventionsColumn),
	)
}
func newSystemEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SystemEventsInverseTable, SystemEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SystemEventsTable, SystemEventsColumn),
	)
}
