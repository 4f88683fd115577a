// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/debatelab/agora/ent/predicate"
	"github.com/debatelab/agora/ent/utterance"
	"github.com/debatelab/agora/pkg/models"
)

// UtteranceUpdate is the builder for updating Utterance entities.
type UtteranceUpdate struct {
	config
	hooks    []Hook
	mutation *UtteranceMutation
}

// Where appends a list predicates to the UtteranceUpdate builder.
func (_u *UtteranceUpdate) Where(ps ...predicate.Utterance) *UtteranceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *UtteranceUpdate) SetMetadata(v models.UtteranceMetadata) *UtteranceUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// SetNillableMetadata sets the "metadata" field if the given value is not nil.
func (_u *UtteranceUpdate) SetNillableMetadata(v *models.UtteranceMetadata) *UtteranceUpdate {
	if v != nil {
		_u.SetMetadata(*v)
	}
	return _u
}

// Mutation returns the UtteranceMutation object of the builder.
func (_u *UtteranceUpdate) Mutation() *UtteranceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UtteranceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UtteranceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UtteranceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UtteranceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UtteranceUpdate) check() error {
	if _u.mutation.DebateCleared() && len(_u.mutation.DebateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Utterance.debate"`)
	}
	return nil
}

func (_u *UtteranceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(utterance.Table, utterance.Columns, sqlgraph.NewFieldSpec(utterance.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(utterance.FieldMetadata, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{utterance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UtteranceUpdateOne is the builder for updating a single Utterance entity.
type UtteranceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UtteranceMutation
}

// SetMetadata sets the "metadata" field.
func (_u *UtteranceUpdateOne) SetMetadata(v models.UtteranceMetadata) *UtteranceUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// SetNillableMetadata sets the "metadata" field if the given value is not nil.
func (_u *UtteranceUpdateOne) SetNillableMetadata(v *models.UtteranceMetadata) *UtteranceUpdateOne {
	if v != nil {
		_u.SetMetadata(*v)
	}
	return _u
}

// Mutation returns the UtteranceMutation object of the builder.
func (_u *UtteranceUpdateOne) Mutation() *UtteranceMutation {
	return _u.mutation
}

// Where appends a list predicates to the UtteranceUpdate builder.
func (_u *UtteranceUpdateOne) Where(ps ...predicate.Utterance) *UtteranceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UtteranceUpdateOne) Select(field string, fields ...string) *UtteranceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Utterance entity.
func (_u *UtteranceUpdateOne) Save(ctx context.Context) (*Utterance, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UtteranceUpdateOne) SaveX(ctx context.Context) *Utterance {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UtteranceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UtteranceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UtteranceUpdateOne) check() error {
	if _u.mutation.DebateCleared() && len(_u.mutation.DebateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Utterance.debate"`)
	}
	return nil
}

func (_u *UtteranceUpdateOne) sqlSave(ctx context.Context) (_node *Utterance, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(utterance.Table, utterance.Columns, sqlgraph.NewFieldSpec(utterance.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Utterance.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, utterance.FieldID)
		for _, f := range fields {
			if !utterance.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != utterance.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(utterance.FieldMetadata, field.TypeJSON, value)
	}
	_node = &Utterance{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{utterance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
