// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/debatelab/agora/ent/debate"
	"github.com/debatelab/agora/ent/utterance"
	"github.com/debatelab/agora/pkg/models"
)

// UtteranceCreate is the builder for creating a Utterance entity.
type UtteranceCreate struct {
	config
	mutation *UtteranceMutation
	hooks    []Hook
}

// SetDebateID sets the "debate_id" field.
func (_c *UtteranceCreate) SetDebateID(v string) *UtteranceCreate {
	_c.mutation.SetDebateID(v)
	return _c
}

// SetTurnIndex sets the "turn_index" field.
func (_c *UtteranceCreate) SetTurnIndex(v int) *UtteranceCreate {
	_c.mutation.SetTurnIndex(v)
	return _c
}

// SetOffsetMs sets the "offset_ms" field.
func (_c *UtteranceCreate) SetOffsetMs(v int64) *UtteranceCreate {
	_c.mutation.SetOffsetMs(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *UtteranceCreate) SetPhase(v string) *UtteranceCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetSpeaker sets the "speaker" field.
func (_c *UtteranceCreate) SetSpeaker(v string) *UtteranceCreate {
	_c.mutation.SetSpeaker(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *UtteranceCreate) SetContent(v string) *UtteranceCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *UtteranceCreate) SetMetadata(v models.UtteranceMetadata) *UtteranceCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UtteranceCreate) SetCreatedAt(v time.Time) *UtteranceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UtteranceCreate) SetNillableCreatedAt(v *time.Time) *UtteranceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UtteranceCreate) SetID(v string) *UtteranceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetDebate sets the "debate" edge to the Debate entity.
func (_c *UtteranceCreate) SetDebate(v *Debate) *UtteranceCreate {
	return _c.SetDebateID(v.ID)
}

// Mutation returns the UtteranceMutation object of the builder.
func (_c *UtteranceCreate) Mutation() *UtteranceMutation {
	return _c.mutation
}

// Save creates the Utterance in the database.
func (_c *UtteranceCreate) Save(ctx context.Context) (*Utterance, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UtteranceCreate) SaveX(ctx context.Context) *Utterance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UtteranceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UtteranceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UtteranceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := utterance.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UtteranceCreate) check() error {
	if _, ok := _c.mutation.DebateID(); !ok {
		return &ValidationError{Name: "debate_id", err: errors.New(`ent: missing required field "Utterance.debate_id"`)}
	}
	if _, ok := _c.mutation.TurnIndex(); !ok {
		return &ValidationError{Name: "turn_index", err: errors.New(`ent: missing required field "Utterance.turn_index"`)}
	}
	if _, ok := _c.mutation.OffsetMs(); !ok {
		return &ValidationError{Name: "offset_ms", err: errors.New(`ent: missing required field "Utterance.offset_ms"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "Utterance.phase"`)}
	}
	if _, ok := _c.mutation.Speaker(); !ok {
		return &ValidationError{Name: "speaker", err: errors.New(`ent: missing required field "Utterance.speaker"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Utterance.content"`)}
	}
	if _, ok := _c.mutation.Metadata(); !ok {
		return &ValidationError{Name: "metadata", err: errors.New(`ent: missing required field "Utterance.metadata"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Utterance.created_at"`)}
	}
	if len(_c.mutation.DebateIDs()) == 0 {
		return &ValidationError{Name: "debate", err: errors.New(`ent: missing required edge "Utterance.debate"`)}
	}
	return nil
}

func (_c *UtteranceCreate) sqlSave(ctx context.Context) (*Utterance, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Utterance.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UtteranceCreate) createSpec() (*Utterance, *sqlgraph.CreateSpec) {
	var (
		_node = &Utterance{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(utterance.Table, sqlgraph.NewFieldSpec(utterance.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TurnIndex(); ok {
		_spec.SetField(utterance.FieldTurnIndex, field.TypeInt, value)
		_node.TurnIndex = value
	}
	if value, ok := _c.mutation.OffsetMs(); ok {
		_spec.SetField(utterance.FieldOffsetMs, field.TypeInt64, value)
		_node.OffsetMs = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(utterance.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Speaker(); ok {
		_spec.SetField(utterance.FieldSpeaker, field.TypeString, value)
		_node.Speaker = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(utterance.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(utterance.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(utterance.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DebateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   utterance.DebateTable,
			Columns: []string{utterance.DebateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(debate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DebateID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UtteranceCreateBulk is the builder for creating many Utterance entities in bulk.
type UtteranceCreateBulk struct {
	config
	err      error
	builders []*UtteranceCreate
}

// Save creates the Utterance entities in the database.
func (_c *UtteranceCreateBulk) Save(ctx context.Context) ([]*Utterance, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Utterance, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UtteranceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *UtteranceCreateBulk) SaveX(ctx context.Context) []*Utterance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UtteranceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UtteranceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
