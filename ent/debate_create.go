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
	"github.com/debatelab/agora/ent/systemevent"
	"github.com/debatelab/agora/ent/utterance"
	pkgconfig "github.com/debatelab/agora/pkg/config"
)

// DebateCreate is the builder for creating a Debate entity.
type DebateCreate struct {
	config
	mutation *DebateMutation
	hooks    []Hook
}

// SetProposition sets the "proposition" field.
func (_c *DebateCreate) SetProposition(v string) *DebateCreate {
	_c.mutation.SetProposition(v)
	return _c
}

// SetContext sets the "context" field.
func (_c *DebateCreate) SetContext(v string) *DebateCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_c *DebateCreate) SetNillableContext(v *string) *DebateCreate {
	if v != nil {
		_c.SetContext(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DebateCreate) SetStatus(v debate.Status) *DebateCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DebateCreate) SetNillableStatus(v *debate.Status) *DebateCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPhase sets the "phase" field.
func (_c *DebateCreate) SetPhase(v string) *DebateCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_c *DebateCreate) SetNillablePhase(v *string) *DebateCreate {
	if v != nil {
		_c.SetPhase(*v)
	}
	return _c
}

// SetPreviousPhase sets the "previous_phase" field.
func (_c *DebateCreate) SetPreviousPhase(v string) *DebateCreate {
	_c.mutation.SetPreviousPhase(v)
	return _c
}

// SetNillablePreviousPhase sets the "previous_phase" field if the given value is not nil.
func (_c *DebateCreate) SetNillablePreviousPhase(v *string) *DebateCreate {
	if v != nil {
		_c.SetPreviousPhase(*v)
	}
	return _c
}

// SetCurrentSpeaker sets the "current_speaker" field.
func (_c *DebateCreate) SetCurrentSpeaker(v string) *DebateCreate {
	_c.mutation.SetCurrentSpeaker(v)
	return _c
}

// SetNillableCurrentSpeaker sets the "current_speaker" field if the given value is not nil.
func (_c *DebateCreate) SetNillableCurrentSpeaker(v *string) *DebateCreate {
	if v != nil {
		_c.SetCurrentSpeaker(*v)
	}
	return _c
}

// SetConfig sets the "config" field.
func (_c *DebateCreate) SetConfig(v *pkgconfig.DebateConfig) *DebateCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DebateCreate) SetCreatedAt(v time.Time) *DebateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DebateCreate) SetNillableCreatedAt(v *time.Time) *DebateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *DebateCreate) SetStartedAt(v time.Time) *DebateCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *DebateCreate) SetNillableStartedAt(v *time.Time) *DebateCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *DebateCreate) SetCompletedAt(v time.Time) *DebateCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *DebateCreate) SetNillableCompletedAt(v *time.Time) *DebateCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetPausedMs sets the "paused_ms" field.
func (_c *DebateCreate) SetPausedMs(v int64) *DebateCreate {
	_c.mutation.SetPausedMs(v)
	return _c
}

// SetNillablePausedMs sets the "paused_ms" field if the given value is not nil.
func (_c *DebateCreate) SetNillablePausedMs(v *int64) *DebateCreate {
	if v != nil {
		_c.SetPausedMs(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DebateCreate) SetErrorMessage(v string) *DebateCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *DebateCreate) SetNillableErrorMessage(v *string) *DebateCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *DebateCreate) SetPodID(v string) *DebateCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *DebateCreate) SetNillablePodID(v *string) *DebateCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *DebateCreate) SetLastInteractionAt(v time.Time) *DebateCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *DebateCreate) SetNillableLastInteractionAt(v *time.Time) *DebateCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DebateCreate) SetID(v string) *DebateCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddUtteranceIDs adds the "utterances" edge to the Utterance entity by IDs.
func (_c *DebateCreate) AddUtteranceIDs(ids ...string) *DebateCreate {
	_c.mutation.AddUtteranceIDs(ids...)
	return _c
}

// AddUtterances adds the "utterances" edges to the Utterance entity.
func (_c *DebateCreate) AddUtterances(v ...*Utterance) *DebateCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUtteranceIDs(ids...)
}

// AddInterventionIDs adds the "interventions" edge to the Intervention entity by IDs.
func (_c *DebateCreate) AddInterventionIDs(ids ...string) *DebateCreate {
	_c.mutation.AddInterventionIDs(ids...)
	return _c
}

// AddInterventions adds the "interventions" edges to the Intervention entity.
func (_c *DebateCreate) AddInterventions(v ...*Intervention) *DebateCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInterventionIDs(ids...)
}

// AddSystemEventIDs adds the "system_events" edge to the SystemEvent entity by IDs.
func (_c *DebateCreate) AddSystemEventIDs(ids ...string) *DebateCreate {
	_c.mutation.AddSystemEventIDs(ids...)
	return _c
}

// AddSystemEvents adds the "system_events" edges to the SystemEvent entity.
func (_c *DebateCreate) AddSystemEvents(v ...*SystemEvent) *DebateCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSystemEventIDs(ids...)
}

// Mutation returns the DebateMutation object of the builder.
func (_c *DebateCreate) Mutation() *DebateMutation {
	return _c.mutation
}

// Save creates the Debate in the database.
func (_c *DebateCreate) Save(ctx context.Context) (*Debate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DebateCreate) SaveX(ctx context.Context) *Debate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DebateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DebateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DebateCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := debate.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Phase(); !ok {
		v := debate.DefaultPhase
		_c.mutation.SetPhase(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := debate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.PausedMs(); !ok {
		v := debate.DefaultPausedMs
		_c.mutation.SetPausedMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DebateCreate) check() error {
	if _, ok := _c.mutation.Proposition(); !ok {
		return &ValidationError{Name: "proposition", err: errors.New(`ent: missing required field "Debate.proposition"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Debate.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := debate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Debate.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "Debate.phase"`)}
	}
	if _, ok := _c.mutation.Config(); !ok {
		return &ValidationError{Name: "config", err: errors.New(`ent: missing required field "Debate.config"`)}
	}
	if v, ok := _c.mutation.Config(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "config", err: fmt.Errorf(`ent: validator failed for field "Debate.config": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Debate.created_at"`)}
	}
	if _, ok := _c.mutation.PausedMs(); !ok {
		return &ValidationError{Name: "paused_ms", err: errors.New(`ent: missing required field "Debate.paused_ms"`)}
	}
	return nil
}

func (_c *DebateCreate) sqlSave(ctx context.Context) (*Debate, error) {
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
			return nil, fmt.Errorf("unexpected Debate.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DebateCreate) createSpec() (*Debate, *sqlgraph.CreateSpec) {
	var (
		_node = &Debate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(debate.Table, sqlgraph.NewFieldSpec(debate.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Proposition(); ok {
		_spec.SetField(debate.FieldProposition, field.TypeString, value)
		_node.Proposition = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(debate.FieldContext, field.TypeString, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(debate.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(debate.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.PreviousPhase(); ok {
		_spec.SetField(debate.FieldPreviousPhase, field.TypeString, value)
		_node.PreviousPhase = &value
	}
	if value, ok := _c.mutation.CurrentSpeaker(); ok {
		_spec.SetField(debate.FieldCurrentSpeaker, field.TypeString, value)
		_node.CurrentSpeaker = &value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(debate.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(debate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(debate.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(debate.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.PausedMs(); ok {
		_spec.SetField(debate.FieldPausedMs, field.TypeInt64, value)
		_node.PausedMs = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(debate.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(debate.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(debate.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if nodes := _c.mutation.UtterancesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   debate.UtterancesTable,
			Columns: []string{debate.UtterancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(utterance.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.InterventionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   debate.InterventionsTable,
			Columns: []string{debate.InterventionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(intervention.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SystemEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   debate.SystemEventsTable,
			Columns: []string{debate.SystemEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(systemevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DebateCreateBulk is the builder for creating many Debate entities in bulk.
type DebateCreateBulk struct {
	config
	err      error
	builders []*DebateCreate
}

// Save creates the Debate entities in the database.
func (_c *DebateCreateBulk) Save(ctx context.Context) ([]*Debate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Debate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DebateMutation)
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
func (_c *DebateCreateBulk) SaveX(ctx context.Context) []*Debate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DebateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DebateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
