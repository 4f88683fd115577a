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
	"github.com/debatelab/agora/ent/utterance"
	"github.com/debatelab/agora/pkg/models"
)

// Utterance is the model entity for the Utterance schema.
type Utterance struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DebateID holds the value of the "debate_id" field.
	DebateID string `json:"debate_id,omitempty"`
	// Monotonic position within the debate
	TurnIndex int `json:"turn_index,omitempty"`
	// Milliseconds since debate start, excluding paused intervals
	OffsetMs int64 `json:"offset_ms,omitempty"`
	// Phase holds the value of the "phase" field.
	Phase string `json:"phase,omitempty"`
	// Speaker holds the value of the "speaker" field.
	Speaker string `json:"speaker,omitempty"`
	// Full utterance text (full-text searchable)
	Content string `json:"content,omitempty"`
	// Model, token usage, truncation and evaluation details
	Metadata models.UtteranceMetadata `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UtteranceQuery when eager-loading is set.
	Edges        UtteranceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UtteranceEdges holds the relations/edges for other nodes in the graph.
type UtteranceEdges struct {
	// Debate holds the value of the debate edge.
	Debate *Debate `json:"debate,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DebateOrErr returns the Debate value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UtteranceEdges) DebateOrErr() (*Debate, error) {
	if e.Debate != nil {
		return e.Debate, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: debate.Label}
	}
	return nil, &NotLoadedError{edge: "debate"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Utterance) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case utterance.FieldMetadata:
			values[i] = new([]byte)
		case utterance.FieldTurnIndex, utterance.FieldOffsetMs:
			values[i] = new(sql.NullInt64)
		case utterance.FieldID, utterance.FieldDebateID, utterance.FieldPhase, utterance.FieldSpeaker, utterance.FieldContent:
			values[i] = new(sql.NullString)
		case utterance.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Utterance fields.
func (_m *Utterance) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case utterance.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case utterance.FieldDebateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field debate_id", values[i])
			} else if value.Valid {
				_m.DebateID = value.String
			}
		case utterance.FieldTurnIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field turn_index", values[i])
			} else if value.Valid {
				_m.TurnIndex = int(value.Int64)
			}
		case utterance.FieldOffsetMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field offset_ms", values[i])
			} else if value.Valid {
				_m.OffsetMs = value.Int64
			}
		case utterance.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = value.String
			}
		case utterance.FieldSpeaker:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field speaker", values[i])
			} else if value.Valid {
				_m.Speaker = value.String
			}
		case utterance.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case utterance.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case utterance.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Utterance.
// This includes values selected through modifiers, order, etc.
func (_m *Utterance) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDebate queries the "debate" edge of the Utterance entity.
func (_m *Utterance) QueryDebate() *DebateQuery {
	return NewUtteranceClient(_m.config).QueryDebate(_m)
}

// Update returns a builder for updating this Utterance.
// Note that you need to call Utterance.Unwrap() before calling this method if this Utterance
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Utterance) Update() *UtteranceUpdateOne {
	return NewUtteranceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Utterance entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Utterance) Unwrap() *Utterance {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Utterance is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Utterance) String() string {
	var builder strings.Builder
	builder.WriteString("Utterance(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("debate_id=")
	builder.WriteString(_m.DebateID)
	builder.WriteString(", ")
	builder.WriteString("turn_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.TurnIndex))
	builder.WriteString(", ")
	builder.WriteString("offset_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.OffsetMs))
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(_m.Phase)
	builder.WriteString(", ")
	builder.WriteString("speaker=")
	builder.WriteString(_m.Speaker)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Utterances is a parsable slice of Utterance.
type Utterances []*Utterance
