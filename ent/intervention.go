// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/debatelab/agora/ent/debate"
	"github.com/debatelab/agora/ent/intervention"
)

// Intervention is the model entity for the Intervention schema.
type Intervention struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DebateID holds the value of the "debate_id" field.
	DebateID string `json:"debate_id,omitempty"`
	// Type holds the value of the "type" field.
	Type intervention.Type `json:"type,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Target speaker for questions and reassignments
	DirectedTo string `json:"directed_to,omitempty"`
	// Status holds the value of the "status" field.
	Status intervention.Status `json:"status,omitempty"`
	// Required for the completed status
	Response string `json:"response,omitempty"`
	// Deduplicates retried submissions
	ClientKey *string `json:"client_key,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InterventionQuery when eager-loading is set.
	Edges        InterventionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InterventionEdges holds the relations/edges for other nodes in the graph.
type InterventionEdges struct {
	// Debate holds the value of the debate edge.
	Debate *Debate `json:"debate,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DebateOrErr returns the Debate value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InterventionEdges) DebateOrErr() (*Debate, error) {
	if e.Debate != nil {
		return e.Debate, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: debate.Label}
	}
	return nil, &NotLoadedError{edge: "debate"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Intervention) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case intervention.FieldID, intervention.FieldDebateID, intervention.FieldType, intervention.FieldContent, intervention.FieldDirectedTo, intervention.FieldStatus, intervention.FieldResponse, intervention.FieldClientKey:
			values[i] = new(sql.NullString)
		case intervention.FieldCreatedAt, intervention.FieldProcessedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Intervention fields.
func (_m *Intervention) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case intervention.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case intervention.FieldDebateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field debate_id", values[i])
			} else if value.Valid {
				_m.DebateID = value.String
			}
		case intervention.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = intervention.Type(value.String)
			}
		case intervention.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case intervention.FieldDirectedTo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field directed_to", values[i])
			} else if value.Valid {
				_m.DirectedTo = value.String
			}
		case intervention.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = intervention.Status(value.String)
			}
		case intervention.FieldResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response", values[i])
			} else if value.Valid {
				_m.Response = value.String
			}
		case intervention.FieldClientKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_key", values[i])
			} else if value.Valid {
				_m.ClientKey = new(string)
				*_m.ClientKey = value.String
			}
		case intervention.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case intervention.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = new(time.Time)
				*_m.ProcessedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Intervention.
// This includes values selected through modifiers, order, etc.
func (_m *Intervention) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDebate queries the "debate" edge of the Intervention entity.
func (_m *Intervention) QueryDebate() *DebateQuery {
	return NewInterventionClient(_m.config).QueryDebate(_m)
}

// Update returns a builder for updating this Intervention.
// Note that you need to call Intervention.Unwrap() before calling this method if this Intervention
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Intervention) Update() *InterventionUpdateOne {
	return NewInterventionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Intervention entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Intervention) Unwrap() *Intervention {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Intervention is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Intervention) String() string {
	var builder strings.Builder
	builder.WriteString("Intervention(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("debate_id=")
	builder.WriteString(_m.DebateID)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("directed_to=")
	builder.WriteString(_m.DirectedTo)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("response=")
	builder.WriteString(_m.Response)
	builder.WriteString(", ")
	if v := _m.ClientKey; v != nil {
		builder.WriteString("client_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ProcessedAt; v != nil {
		builder.WriteString("processed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Interventions is a parsable slice of Intervention.
type Interventions []*Intervention
