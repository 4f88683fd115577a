// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/debatelab/agora/ent/debate"
	pkgconfig "github.com/debatelab/agora/pkg/config"
)

// Debate is the model entity for the Debate schema.
type Debate struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// The statement under debate (full-text searchable)
	Proposition string `json:"proposition,omitempty"`
	// Background material supplied at creation
	Context string `json:"context,omitempty"`
	// Queue lifecycle, orthogonal to phase
	Status debate.Status `json:"status,omitempty"`
	// Protocol position within the debate
	Phase string `json:"phase,omitempty"`
	// Snapshot taken on entering paused; resume returns to it
	PreviousPhase *string `json:"previous_phase,omitempty"`
	// CurrentSpeaker holds the value of the "current_speaker" field.
	CurrentSpeaker *string `json:"current_speaker,omitempty"`
	// Full per-debate configuration, frozen at creation
	Config *pkgconfig.DebateConfig `json:"config,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When a worker claimed the debate (pending to running)
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Accumulated paused time; elapsed time excludes it
	PausedMs int64 `json:"paused_ms,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// Worker heartbeat, for orphan detection
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DebateQuery when eager-loading is set.
	Edges        DebateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DebateEdges holds the relations/edges for other nodes in the graph.
type DebateEdges struct {
	// Utterances holds the value of the utterances edge.
	Utterances []*Utterance `json:"utterances,omitempty"`
	// Interventions holds the value of the interventions edge.
	Interventions []*Intervention `json:"interventions,omitempty"`
	// SystemEvents holds the value of the system_events edge.
	SystemEvents []*SystemEvent `json:"system_events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// UtterancesOrErr returns the Utterances value or an error if the edge
// was not loaded in eager-loading.
func (e DebateEdges) UtterancesOrErr() ([]*Utterance, error) {
	if e.loadedTypes[0] {
		return e.Utterances, nil
	}
	return nil, &NotLoadedError{edge: "utterances"}
}

// InterventionsOrErr returns the Interventions value or an error if the edge
// was not loaded in eager-loading.
func (e DebateEdges) InterventionsOrErr() ([]*Intervention, error) {
	if e.loadedTypes[1] {
		return e.Interventions, nil
	}
	return nil, &NotLoadedError{edge: "interventions"}
}

// SystemEventsOrErr returns the SystemEvents value or an error if the edge
// was not loaded in eager-loading.
func (e DebateEdges) SystemEventsOrErr() ([]*SystemEvent, error) {
	if e.loadedTypes[2] {
		return e.SystemEvents, nil
	}
	return nil, &NotLoadedError{edge: "system_events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Debate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case debate.FieldConfig:
			values[i] = new([]byte)
		case debate.FieldPausedMs:
			values[i] = new(sql.NullInt64)
		case debate.FieldID, debate.FieldProposition, debate.FieldContext, debate.FieldStatus, debate.FieldPhase, debate.FieldPreviousPhase, debate.FieldCurrentSpeaker, debate.FieldErrorMessage, debate.FieldPodID:
			values[i] = new(sql.NullString)
		case debate.FieldCreatedAt, debate.FieldStartedAt, debate.FieldCompletedAt, debate.FieldLastInteractionAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Debate fields.
func (_m *Debate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case debate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case debate.FieldProposition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proposition", values[i])
			} else if value.Valid {
				_m.Proposition = value.String
			}
		case debate.FieldContext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value.Valid {
				_m.Context = value.String
			}
		case debate.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = debate.Status(value.String)
			}
		case debate.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = value.String
			}
		case debate.FieldPreviousPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field previous_phase", values[i])
			} else if value.Valid {
				_m.PreviousPhase = new(string)
				*_m.PreviousPhase = value.String
			}
		case debate.FieldCurrentSpeaker:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_speaker", values[i])
			} else if value.Valid {
				_m.CurrentSpeaker = new(string)
				*_m.CurrentSpeaker = value.String
			}
		case debate.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case debate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case debate.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case debate.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case debate.FieldPausedMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field paused_ms", values[i])
			} else if value.Valid {
				_m.PausedMs = value.Int64
			}
		case debate.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case debate.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case debate.FieldLastInteractionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_interaction_at", values[i])
			} else if value.Valid {
				_m.LastInteractionAt = new(time.Time)
				*_m.LastInteractionAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Debate.
// This includes values selected through modifiers, order, etc.
func (_m *Debate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUtterances queries the "utterances" edge of the Debate entity.
func (_m *Debate) QueryUtterances() *UtteranceQuery {
	return NewDebateClient(_m.config).QueryUtterances(_m)
}

// QueryInterventions queries the "interventions" edge of the Debate entity.
func (_m *Debate) QueryInterventions() *InterventionQuery {
	return NewDebateClient(_m.config).QueryInterventions(_m)
}

// QuerySystemEvents queries the "system_events" edge of the Debate entity.
func (_m *Debate) QuerySystemEvents() *SystemEventQuery {
	return NewDebateClient(_m.config).QuerySystemEvents(_m)
}

// Update returns a builder for updating this Debate.
// Note that you need to call Debate.Unwrap() before calling this method if this Debate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Debate) Update() *DebateUpdateOne {
	return NewDebateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Debate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Debate) Unwrap() *Debate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Debate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Debate) String() string {
	var builder strings.Builder
	builder.WriteString("Debate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("proposition=")
	builder.WriteString(_m.Proposition)
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(_m.Context)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(_m.Phase)
	builder.WriteString(", ")
	if v := _m.PreviousPhase; v != nil {
		builder.WriteString("previous_phase=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CurrentSpeaker; v != nil {
		builder.WriteString("current_speaker=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("paused_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.PausedMs))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastInteractionAt; v != nil {
		builder.WriteString("last_interaction_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Debates is a parsable slice of Debate.
type Debates []*Debate
