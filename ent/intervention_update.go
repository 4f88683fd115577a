// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/debatelab/agora/ent/intervention"
	"github.com/debatelab/agora/ent/predicate"
)

// InterventionUpdate is the builder for updating Intervention entities.
type InterventionUpdate struct {
	config
	hooks    []Hook
	mutation *InterventionMutation
}

// Where appends a list predicates to the InterventionUpdate builder.
func (_u *InterventionUpdate) Where(ps ...predicate.Intervention) *InterventionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *InterventionUpdate) SetType(v intervention.Type) *InterventionUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *InterventionUpdate) SetNillableType(v *intervention.Type) *InterventionUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *InterventionUpdate) SetContent(v string) *InterventionUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *InterventionUpdate) SetNillableContent(v *string) *InterventionUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *InterventionUpdate) ClearContent() *InterventionUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetDirectedTo sets the "directed_to" field.
func (_u *InterventionUpdate) SetDirectedTo(v string) *InterventionUpdate {
	_u.mutation.SetDirectedTo(v)
	return _u
}

// SetNillableDirectedTo sets the "directed_to" field if the given value is not nil.
func (_u *InterventionUpdate) SetNillableDirectedTo(v *string) *InterventionUpdate {
	if v != nil {
		_u.SetDirectedTo(*v)
	}
	return _u
}

// ClearDirectedTo clears the value of the "directed_to" field.
func (_u *InterventionUpdate) ClearDirectedTo() *InterventionUpdate {
	_u.mutation.ClearDirectedTo()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InterventionUpdate) SetStatus(v intervention.Status) *InterventionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InterventionUpdate) SetNillableStatus(v *intervention.Status) *InterventionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *InterventionUpdate) SetResponse(v string) *InterventionUpdate {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *InterventionUpdate) SetNillableResponse(v *string) *InterventionUpdate {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *InterventionUpdate) ClearResponse() *InterventionUpdate {
	_u.mutation.ClearResponse()
	return _u
}

// SetClientKey sets the "client_key" field.
func (_u *InterventionUpdate) SetClientKey(v string) *InterventionUpdate {
	_u.mutation.SetClientKey(v)
	return _u
}

// SetNillableClientKey sets the "client_key" field if the given value is not nil.
func (_u *InterventionUpdate) SetNillableClientKey(v *string) *InterventionUpdate {
	if v != nil {
		_u.SetClientKey(*v)
	}
	return _u
}

// ClearClientKey clears the value of the "client_key" field.
func (_u *InterventionUpdate) ClearClientKey() *InterventionUpdate {
	_u.mutation.ClearClientKey()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *InterventionUpdate) SetProcessedAt(v time.Time) *InterventionUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *InterventionUpdate) SetNillableProcessedAt(v *time.Time) *InterventionUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *InterventionUpdate) ClearProcessedAt() *InterventionUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// Mutation returns the InterventionMutation object of the builder.
func (_u *InterventionUpdate) Mutation() *InterventionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InterventionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterventionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InterventionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterventionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterventionUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := intervention.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Intervention.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := intervention.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Intervention.status": %w`, err)}
		}
	}
	if _u.mutation.DebateCleared() && len(_u.mutation.DebateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Intervention.debate"`)
	}
	return nil
}

func (_u *InterventionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(intervention.Table, intervention.Columns, sqlgraph.NewFieldSpec(intervention.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(intervention.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(intervention.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(intervention.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.DirectedTo(); ok {
		_spec.SetField(intervention.FieldDirectedTo, field.TypeString, value)
	}
	if _u.mutation.DirectedToCleared() {
		_spec.ClearField(intervention.FieldDirectedTo, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(intervention.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(intervention.FieldResponse, field.TypeString, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(intervention.FieldResponse, field.TypeString)
	}
	if value, ok := _u.mutation.ClientKey(); ok {
		_spec.SetField(intervention.FieldClientKey, field.TypeString, value)
	}
	if _u.mutation.ClientKeyCleared() {
		_spec.ClearField(intervention.FieldClientKey, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(intervention.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(intervention.FieldProcessedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{intervention.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InterventionUpdateOne is the builder for updating a single Intervention entity.
type InterventionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InterventionMutation
}

// SetType sets the "type" field.
func (_u *InterventionUpdateOne) SetType(v intervention.Type) *InterventionUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *InterventionUpdateOne) SetNillableType(v *intervention.Type) *InterventionUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *InterventionUpdateOne) SetContent(v string) *InterventionUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *InterventionUpdateOne) SetNillableContent(v *string) *InterventionUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *InterventionUpdateOne) ClearContent() *InterventionUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetDirectedTo sets the "directed_to" field.
func (_u *InterventionUpdateOne) SetDirectedTo(v string) *InterventionUpdateOne {
	_u.mutation.SetDirectedTo(v)
	return _u
}

// SetNillableDirectedTo sets the "directed_to" field if the given value is not nil.
func (_u *InterventionUpdateOne) SetNillableDirectedTo(v *string) *InterventionUpdateOne {
	if v != nil {
		_u.SetDirectedTo(*v)
	}
	return _u
}

// ClearDirectedTo clears the value of the "directed_to" field.
func (_u *InterventionUpdateOne) ClearDirectedTo() *InterventionUpdateOne {
	_u.mutation.ClearDirectedTo()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InterventionUpdateOne) SetStatus(v intervention.Status) *InterventionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InterventionUpdateOne) SetNillableStatus(v *intervention.Status) *InterventionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *InterventionUpdateOne) SetResponse(v string) *InterventionUpdateOne {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *InterventionUpdateOne) SetNillableResponse(v *string) *InterventionUpdateOne {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *InterventionUpdateOne) ClearResponse() *InterventionUpdateOne {
	_u.mutation.ClearResponse()
	return _u
}

// SetClientKey sets the "client_key" field.
func (_u *InterventionUpdateOne) SetClientKey(v string) *InterventionUpdateOne {
	_u.mutation.SetClientKey(v)
	return _u
}

// SetNillableClientKey sets the "client_key" field if the given value is not nil.
func (_u *InterventionUpdateOne) SetNillableClientKey(v *string) *InterventionUpdateOne {
	if v != nil {
		_u.SetClientKey(*v)
	}
	return _u
}

// ClearClientKey clears the value of the "client_key" field.
func (_u *InterventionUpdateOne) ClearClientKey() *InterventionUpdateOne {
	_u.mutation.ClearClientKey()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *InterventionUpdateOne) SetProcessedAt(v time.Time) *InterventionUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *InterventionUpdateOne) SetNillableProcessedAt(v *time.Time) *InterventionUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *InterventionUpdateOne) ClearProcessedAt() *InterventionUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// Mutation returns the InterventionMutation object of the builder.
func (_u *InterventionUpdateOne) Mutation() *InterventionMutation {
	return _u.mutation
}

// Where appends a list predicates to the InterventionUpdate builder.
func (_u *InterventionUpdateOne) Where(ps ...predicate.Intervention) *InterventionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InterventionUpdateOne) Select(field string, fields ...string) *InterventionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Intervention entity.
func (_u *InterventionUpdateOne) Save(ctx context.Context) (*Intervention, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterventionUpdateOne) SaveX(ctx context.Context) *Intervention {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InterventionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterventionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterventionUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := intervention.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Intervention.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := intervention.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Intervention.status": %w`, err)}
		}
	}
	if _u.mutation.DebateCleared() && len(_u.mutation.DebateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Intervention.debate"`)
	}
	return nil
}

func (_u *InterventionUpdateOne) sqlSave(ctx context.Context) (_node *Intervention, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(intervention.Table, intervention.Columns, sqlgraph.NewFieldSpec(intervention.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Intervention.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, intervention.FieldID)
		for _, f := range fields {
			if !intervention.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != intervention.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(intervention.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(intervention.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(intervention.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.DirectedTo(); ok {
		_spec.SetField(intervention.FieldDirectedTo, field.TypeString, value)
	}
	if _u.mutation.DirectedToCleared() {
		_spec.ClearField(intervention.FieldDirectedTo, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(intervention.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(intervention.FieldResponse, field.TypeString, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(intervention.FieldResponse, field.TypeString)
	}
	if value, ok := _u.mutation.ClientKey(); ok {
		_spec.SetField(intervention.FieldClientKey, field.TypeString, value)
	}
	if _u.mutation.ClientKeyCleared() {
		_spec.ClearField(intervention.FieldClientKey, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(intervention.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(intervention.FieldProcessedAt, field.TypeTime)
	}
	_node = &Intervention{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{intervention.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
