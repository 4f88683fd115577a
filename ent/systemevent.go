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
	"github.com/debatelab/agora/ent/systemevent"
)

// SystemEvent is the model entity for the SystemEvent schema.
type SystemEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DebateID holds the value of the "debate_id" field.
	DebateID string `json:"debate_id,omitempty"`
	// Diagnostic channel, e.g. interruption or model_failure
	Channel string `json:"channel,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SystemEventQuery when eager-loading is set.
	Edges        SystemEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SystemEventEdges holds the relations/edges for other nodes in the graph.
type SystemEventEdges struct {
	// Debate holds the value of the debate edge.
	Debate *Debate `json:"debate,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DebateOrErr returns the Debate value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SystemEventEdges) DebateOrErr() (*Debate, error) {
	if e.Debate != nil {
		return e.Debate, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: debate.Label}
	}
	return nil, &NotLoadedError{edge: "debate"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SystemEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case systemevent.FieldPayload:
			values[i] = new([]byte)
		case systemevent.FieldID, systemevent.FieldDebateID, systemevent.FieldChannel:
			values[i] = new(sql.NullString)
		case systemevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SystemEvent fields.
func (_m *SystemEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case systemevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case systemevent.FieldDebateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field debate_id", values[i])
			} else if value.Valid {
				_m.DebateID = value.String
			}
		case systemevent.FieldChannel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel", values[i])
			} else if value.Valid {
				_m.Channel = value.String
			}
		case systemevent.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case systemevent.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SystemEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SystemEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDebate queries the "debate" edge of the SystemEvent entity.
func (_m *SystemEvent) QueryDebate() *DebateQuery {
	return NewSystemEventClient(_m.config).QueryDebate(_m)
}

// Update returns a builder for updating this SystemEvent.
// Note that you need to call SystemEvent.Unwrap() before calling this method if this SystemEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SystemEvent) Update() *SystemEventUpdateOne {
	return NewSystemEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SystemEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SystemEvent) Unwrap() *SystemEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SystemEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SystemEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SystemEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("debate_id=")
	builder.WriteString(_m.DebateID)
	builder.WriteString(", ")
	builder.WriteString("channel=")
	builder.WriteString(_m.Channel)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SystemEvents is a parsable slice of SystemEvent.
type SystemEvents []*SystemEvent
