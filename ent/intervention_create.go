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
	"github.com/debatelab/agora/ent/intervention"
)

// InterventionCreate is the builder for creating a Intervention entity.
type InterventionCreate struct {
	config
	mutation *InterventionMutation
	hooks    []Hook
}

// SetDebateID sets the "debate_id" field.
func (_c *InterventionCreate) SetDebateID(v string) *InterventionCreate {
	_c.mutation.SetDebateID(v)
	return _c
}

// SetType sets the "type" field.
func (_c *InterventionCreate) SetType(v intervention.Type) *InterventionCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *InterventionCreate) SetContent(v string) *InterventionCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *InterventionCreate) SetNillableContent(v *string) *InterventionCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetDirectedTo sets the "directed_to" field.
func (_c *InterventionCreate) SetDirectedTo(v string) *InterventionCreate {
	_c.mutation.SetDirectedTo(v)
	return _c
}

// SetNillableDirectedTo sets the "directed_to" field if the given value is not nil.
func (_c *InterventionCreate) SetNillableDirectedTo(v *string) *InterventionCreate {
	if v != nil {
		_c.SetDirectedTo(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *InterventionCreate) SetStatus(v intervention.Status) *InterventionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InterventionCreate) SetNillableStatus(v *intervention.Status) *InterventionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResponse sets the "response" field.
func (_c *InterventionCreate) SetResponse(v string) *InterventionCreate {
	_c.mutation.SetResponse(v)
	return _c
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_c *InterventionCreate) SetNillableResponse(v *string) *InterventionCreate {
	if v != nil {
		_c.SetResponse(*v)
	}
	return _c
}

// SetClientKey sets the "client_key" field.
func (_c *InterventionCreate) SetClientKey(v string) *InterventionCreate {
	_c.mutation.SetClientKey(v)
	return _c
}

// SetNillableClientKey sets the "client_key" field if the given value is not nil.
func (_c *InterventionCreate) SetNillableClientKey(v *string) *InterventionCreate {
	if v != nil {
		_c.SetClientKey(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InterventionCreate) SetCreatedAt(v time.Time) *InterventionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InterventionCreate) SetNillableCreatedAt(v *time.Time) *InterventionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *InterventionCreate) SetProcessedAt(v time.Time) *InterventionCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *InterventionCreate) SetNillableProcessedAt(v *time.Time) *InterventionCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InterventionCreate) SetID(v string) *InterventionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetDebate sets the "debate" edge to the Debate entity.
func (_c *InterventionCreate) SetDebate(v *Debate) *InterventionCreate {
	return _c.SetDebateID(v.ID)
}

// Mutation returns the InterventionMutation object of the builder.
func (_c *InterventionCreate) Mutation() *InterventionMutation {
	return _c.mutation
}

// Save creates the Intervention in the database.
func (_c *InterventionCreate) Save(ctx context.Context) (*Intervention, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InterventionCreate) SaveX(ctx context.Context) *Intervention {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterventionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterventionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InterventionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := intervention.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := intervention.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InterventionCreate) check() error {
	if _, ok := _c.mutation.DebateID(); !ok {
		return &ValidationError{Name: "debate_id", err: errors.New(`ent: missing required field "Intervention.debate_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Intervention.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := intervention.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Intervention.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Intervention.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := intervention.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Intervention.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Intervention.created_at"`)}
	}
	if len(_c.mutation.DebateIDs()) == 0 {
		return &ValidationError{Name: "debate", err: errors.New(`ent: missing required edge "Intervention.debate"`)}
	}
	return nil
}

func (_c *InterventionCreate) sqlSave(ctx context.Context) (*Intervention, error) {
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
			return nil, fmt.Errorf("unexpected Intervention.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InterventionCreate) createSpec() (*Intervention, *sqlgraph.CreateSpec) {
	var (
		_node = &Intervention{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(intervention.Table, sqlgraph.NewFieldSpec(intervention.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(intervention.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(intervention.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.DirectedTo(); ok {
		_spec.SetField(intervention.FieldDirectedTo, field.TypeString, value)
		_node.DirectedTo = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(intervention.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Response(); ok {
		_spec.SetField(intervention.FieldResponse, field.TypeString, value)
		_node.Response = value
	}
	if value, ok := _c.mutation.ClientKey(); ok {
		_spec.SetField(intervention.FieldClientKey, field.TypeString, value)
		_node.ClientKey = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(intervention.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(intervention.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if nodes := _c.mutation.DebateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   intervention.DebateTable,
			Columns: []string{intervention.DebateColumn},
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

// InterventionCreateBulk is the builder for creating many Intervention entities in bulk.
type InterventionCreateBulk struct {
	config
	err      error
	builders []*InterventionCreate
}

// Save creates the Intervention entities in the database.
func (_c *InterventionCreateBulk) Save(ctx context.Context) ([]*Intervention, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Intervention, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InterventionMutation)
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
func (_c *InterventionCreateBulk) SaveX(ctx context.Context) []*Intervention {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterventionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterventionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
