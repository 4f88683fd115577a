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
	"github.com/debatelab/agora/ent/debate"
	"github.com/debatelab/agora/ent/intervention"
	"github.com/debatelab/agora/ent/predicate"
	"github.com/debatelab/agora/ent/systemevent"
	"github.com/debatelab/agora/ent/utterance"
	pkgconfig "github.com/debatelab/agora/pkg/config"
)

// DebateUpdate is the builder for updating Debate entities.
type DebateUpdate struct {
	config
	hooks    []Hook
	mutation *DebateMutation
}

// Where appends a list predicates to the DebateUpdate builder.
func (_u *DebateUpdate) Where(ps ...predicate.Debate) *DebateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProposition sets the "proposition" field.
func (_u *DebateUpdate) SetProposition(v string) *DebateUpdate {
	_u.mutation.SetProposition(v)
	return _u
}

// SetNillableProposition sets the "proposition" field if the given value is not nil.
func (_u *DebateUpdate) SetNillableProposition(v *string) *DebateUpdate {
	if v != nil {
		_u.SetProposition(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *DebateUpdate) SetContext(v string) *DebateUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *DebateUpdate) SetNillableContext(v *string) *DebateUpdate {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *DebateUpdate) ClearContext() *DebateUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DebateUpdate) SetStatus(v debate.Status) *DebateUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DebateUpdate) SetNillableStatus(v *debate.Status) *DebateUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *DebateUpdate) SetPhase(v string) *DebateUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *DebateUpdate) SetNillablePhase(v *string) *DebateUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetPreviousPhase sets the "previous_phase" field.
func (_u *DebateUpdate) SetPreviousPhase(v string) *DebateUpdate {
	_u.mutation.SetPreviousPhase(v)
	return _u
}

// SetNillablePreviousPhase sets the "previous_phase" field if the given value is not nil.
func (_u *DebateUpdate) SetNillablePreviousPhase(v *string) *DebateUpdate {
	if v != nil {
		_u.SetPreviousPhase(*v)
	}
	return _u
}

// ClearPreviousPhase clears the value of the "previous_phase" field.
func (_u *DebateUpdate) ClearPreviousPhase() *DebateUpdate {
	_u.mutation.ClearPreviousPhase()
	return _u
}

// SetCurrentSpeaker sets the "current_speaker" field.
func (_u *DebateUpdate) SetCurrentSpeaker(v string) *DebateUpdate {
	_u.mutation.SetCurrentSpeaker(v)
	return _u
}

// SetNillableCurrentSpeaker sets the "current_speaker" field if the given value is not nil.
func (_u *DebateUpdate) SetNillableCurrentSpeaker(v *string) *DebateUpdate {
	if v != nil {
		_u.SetCurrentSpeaker(*v)
	}
	return _u
}

// ClearCurrentSpeaker clears the value of the "current_speaker" field.
func (_u *DebateUpdate) ClearCurrentSpeaker() *DebateUpdate {
	_u.mutation.ClearCurrentSpeaker()
	return _u
}

// SetConfig sets the "config" field.
func (_u *DebateUpdate) SetConfig(v *pkgconfig.DebateConfig) *DebateUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *DebateUpdate) SetStartedAt(v time.Time) *DebateUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *DebateUpdate) SetNillableStartedAt(v *time.Time) *DebateUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *DebateUpdate) ClearStartedAt() *DebateUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DebateUpdate) SetCompletedAt(v time.Time) *DebateUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DebateUpdate) SetNillableCompletedAt(v *time.Time) *DebateUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DebateUpdate) ClearCompletedAt() *DebateUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPausedMs sets the "paused_ms" field.
func (_u *DebateUpdate) SetPausedMs(v int64) *DebateUpdate {
	_u.mutation.ResetPausedMs()
	_u.mutation.SetPausedMs(v)
	return _u
}

// SetNillablePausedMs sets the "paused_ms" field if the given value is not nil.
func (_u *DebateUpdate) SetNillablePausedMs(v *int64) *DebateUpdate {
	if v != nil {
		_u.SetPausedMs(*v)
	}
	return _u
}

// AddPausedMs adds value to the "paused_ms" field.
func (_u *DebateUpdate) AddPausedMs(v int64) *DebateUpdate {
	_u.mutation.AddPausedMs(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DebateUpdate) SetErrorMessage(v string) *DebateUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DebateUpdate) SetNillableErrorMessage(v *string) *DebateUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DebateUpdate) ClearErrorMessage() *DebateUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *DebateUpdate) SetPodID(v string) *DebateUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *DebateUpdate) SetNillablePodID(v *string) *DebateUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *DebateUpdate) ClearPodID() *DebateUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *DebateUpdate) SetLastInteractionAt(v time.Time) *DebateUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *DebateUpdate) SetNillableLastInteractionAt(v *time.Time) *DebateUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *DebateUpdate) ClearLastInteractionAt() *DebateUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// AddUtteranceIDs adds the "utterances" edge to the Utterance entity by IDs.
func (_u *DebateUpdate) AddUtteranceIDs(ids ...string) *DebateUpdate {
	_u.mutation.AddUtteranceIDs(ids...)
	return _u
}

// AddUtterances adds the "utterances" edges to the Utterance entity.
func (_u *DebateUpdate) AddUtterances(v ...*Utterance) *DebateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUtteranceIDs(ids...)
}

// AddInterventionIDs adds the "interventions" edge to the Intervention entity by IDs.
func (_u *DebateUpdate) AddInterventionIDs(ids ...string) *DebateUpdate {
	_u.mutation.AddInterventionIDs(ids...)
	return _u
}

// AddInterventions adds the "interventions" edges to the Intervention entity.
func (_u *DebateUpdate) AddInterventions(v ...*Intervention) *DebateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInterventionIDs(ids...)
}

// AddSystemEventIDs adds the "system_events" edge to the SystemEvent entity by IDs.
func (_u *DebateUpdate) AddSystemEventIDs(ids ...string) *DebateUpdate {
	_u.mutation.AddSystemEventIDs(ids...)
	return _u
}

// AddSystemEvents adds the "system_events" edges to the SystemEvent entity.
func (_u *DebateUpdate) AddSystemEvents(v ...*SystemEvent) *DebateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSystemEventIDs(ids...)
}

// Mutation returns the DebateMutation object of the builder.
func (_u *DebateUpdate) Mutation() *DebateMutation {
	return _u.mutation
}

// ClearUtterances clears all "utterances" edges to the Utterance entity.
func (_u *DebateUpdate) ClearUtterances() *DebateUpdate {
	_u.mutation.ClearUtterances()
	return _u
}

// RemoveUtteranceIDs removes the "utterances" edge to Utterance entities by IDs.
func (_u *DebateUpdate) RemoveUtteranceIDs(ids ...string) *DebateUpdate {
	_u.mutation.RemoveUtteranceIDs(ids...)
	return _u
}

// RemoveUtterances removes "utterances" edges to Utterance entities.
func (_u *DebateUpdate) RemoveUtterances(v ...*Utterance) *DebateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUtteranceIDs(ids...)
}

// ClearInterventions clears all "interventions" edges to the Intervention entity.
func (_u *DebateUpdate) ClearInterventions() *DebateUpdate {
	_u.mutation.ClearInterventions()
	return _u
}

// RemoveInterventionIDs removes the "interventions" edge to Intervention entities by IDs.
func (_u *DebateUpdate) RemoveInterventionIDs(ids ...string) *DebateUpdate {
	_u.mutation.RemoveInterventionIDs(ids...)
	return _u
}

// RemoveInterventions removes "interventions" edges to Intervention entities.
func (_u *DebateUpdate) RemoveInterventions(v ...*Intervention) *DebateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInterventionIDs(ids...)
}

// ClearSystemEvents clears all "system_events" edges to the SystemEvent entity.
func (_u *DebateUpdate) ClearSystemEvents() *DebateUpdate {
	_u.mutation.ClearSystemEvents()
	return _u
}

// RemoveSystemEventIDs removes the "system_events" edge to SystemEvent entities by IDs.
func (_u *DebateUpdate) RemoveSystemEventIDs(ids ...string) *DebateUpdate {
	_u.mutation.RemoveSystemEventIDs(ids...)
	return _u
}

// RemoveSystemEvents removes "system_events" edges to SystemEvent entities.
func (_u *DebateUpdate) RemoveSystemEvents(v ...*SystemEvent) *DebateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSystemEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DebateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DebateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DebateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DebateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DebateUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := debate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Debate.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Config(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "config", err: fmt.Errorf(`ent: validator failed for field "Debate.config": %w`, err)}
		}
	}
	return nil
}

func (_u *DebateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(debate.Table, debate.Columns, sqlgraph.NewFieldSpec(debate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Proposition(); ok {
		_spec.SetField(debate.FieldProposition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(debate.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(debate.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(debate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(debate.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreviousPhase(); ok {
		_spec.SetField(debate.FieldPreviousPhase, field.TypeString, value)
	}
	if _u.mutation.PreviousPhaseCleared() {
		_spec.ClearField(debate.FieldPreviousPhase, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentSpeaker(); ok {
		_spec.SetField(debate.FieldCurrentSpeaker, field.TypeString, value)
	}
	if _u.mutation.CurrentSpeakerCleared() {
		_spec.ClearField(debate.FieldCurrentSpeaker, field.TypeString)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(debate.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(debate.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(debate.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(debate.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(debate.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PausedMs(); ok {
		_spec.SetField(debate.FieldPausedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPausedMs(); ok {
		_spec.AddField(debate.FieldPausedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(debate.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(debate.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(debate.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(debate.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(debate.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(debate.FieldLastInteractionAt, field.TypeTime)
	}
	if _u.mutation.UtterancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUtterancesIDs(); len(nodes) > 0 && !_u.mutation.UtterancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UtterancesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InterventionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInterventionsIDs(); len(nodes) > 0 && !_u.mutation.InterventionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InterventionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SystemEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSystemEventsIDs(); len(nodes) > 0 && !_u.mutation.SystemEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SystemEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{debate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DebateUpdateOne is the builder for updating a single Debate entity.
type DebateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DebateMutation
}

// SetProposition sets the "proposition" field.
func (_u *DebateUpdateOne) SetProposition(v string) *DebateUpdateOne {
	_u.mutation.SetProposition(v)
	return _u
}

// SetNillableProposition sets the "proposition" field if the given value is not nil.
func (_u *DebateUpdateOne) SetNillableProposition(v *string) *DebateUpdateOne {
	if v != nil {
		_u.SetProposition(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *DebateUpdateOne) SetContext(v string) *DebateUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *DebateUpdateOne) SetNillableContext(v *string) *DebateUpdateOne {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *DebateUpdateOne) ClearContext() *DebateUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DebateUpdateOne) SetStatus(v debate.Status) *DebateUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DebateUpdateOne) SetNillableStatus(v *debate.Status) *DebateUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *DebateUpdateOne) SetPhase(v string) *DebateUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *DebateUpdateOne) SetNillablePhase(v *string) *DebateUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetPreviousPhase sets the "previous_phase" field.
func (_u *DebateUpdateOne) SetPreviousPhase(v string) *DebateUpdateOne {
	_u.mutation.SetPreviousPhase(v)
	return _u
}

// SetNillablePreviousPhase sets the "previous_phase" field if the given value is not nil.
func (_u *DebateUpdateOne) SetNillablePreviousPhase(v *string) *DebateUpdateOne {
	if v != nil {
		_u.SetPreviousPhase(*v)
	}
	return _u
}

// ClearPreviousPhase clears the value of the "previous_phase" field.
func (_u *DebateUpdateOne) ClearPreviousPhase() *DebateUpdateOne {
	_u.mutation.ClearPreviousPhase()
	return _u
}

// SetCurrentSpeaker sets the "current_speaker" field.
func (_u *DebateUpdateOne) SetCurrentSpeaker(v string) *DebateUpdateOne {
	_u.mutation.SetCurrentSpeaker(v)
	return _u
}

// SetNillableCurrentSpeaker sets the "current_speaker" field if the given value is not nil.
func (_u *DebateUpdateOne) SetNillableCurrentSpeaker(v *string) *DebateUpdateOne {
	if v != nil {
		_u.SetCurrentSpeaker(*v)
	}
	return _u
}

// ClearCurrentSpeaker clears the value of the "current_speaker" field.
func (_u *DebateUpdateOne) ClearCurrentSpeaker() *DebateUpdateOne {
	_u.mutation.ClearCurrentSpeaker()
	return _u
}

// SetConfig sets the "config" field.
func (_u *DebateUpdateOne) SetConfig(v *pkgconfig.DebateConfig) *DebateUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *DebateUpdateOne) SetStartedAt(v time.Time) *DebateUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *DebateUpdateOne) SetNillableStartedAt(v *time.Time) *DebateUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *DebateUpdateOne) ClearStartedAt() *DebateUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DebateUpdateOne) SetCompletedAt(v time.Time) *DebateUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DebateUpdateOne) SetNillableCompletedAt(v *time.Time) *DebateUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DebateUpdateOne) ClearCompletedAt() *DebateUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPausedMs sets the "paused_ms" field.
func (_u *DebateUpdateOne) SetPausedMs(v int64) *DebateUpdateOne {
	_u.mutation.ResetPausedMs()
	_u.mutation.SetPausedMs(v)
	return _u
}

// SetNillablePausedMs sets the "paused_ms" field if the given value is not nil.
func (_u *DebateUpdateOne) SetNillablePausedMs(v *int64) *DebateUpdateOne {
	if v != nil {
		_u.SetPausedMs(*v)
	}
	return _u
}

// AddPausedMs adds value to the "paused_ms" field.
func (_u *DebateUpdateOne) AddPausedMs(v int64) *DebateUpdateOne {
	_u.mutation.AddPausedMs(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DebateUpdateOne) SetErrorMessage(v string) *DebateUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DebateUpdateOne) SetNillableErrorMessage(v *string) *DebateUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DebateUpdateOne) ClearErrorMessage() *DebateUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *DebateUpdateOne) SetPodID(v string) *DebateUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *DebateUpdateOne) SetNillablePodID(v *string) *DebateUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *DebateUpdateOne) ClearPodID() *DebateUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *DebateUpdateOne) SetLastInteractionAt(v time.Time) *DebateUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *DebateUpdateOne) SetNillableLastInteractionAt(v *time.Time) *DebateUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *DebateUpdateOne) ClearLastInteractionAt() *DebateUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// AddUtteranceIDs adds the "utterances" edge to the Utterance entity by IDs.
func (_u *DebateUpdateOne) AddUtteranceIDs(ids ...string) *DebateUpdateOne {
	_u.mutation.AddUtteranceIDs(ids...)
	return _u
}

// AddUtterances adds the "utterances" edges to the Utterance entity.
func (_u *DebateUpdateOne) AddUtterances(v ...*Utterance) *DebateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUtteranceIDs(ids...)
}

// AddInterventionIDs adds the "interventions" edge to the Intervention entity by IDs.
func (_u *DebateUpdateOne) AddInterventionIDs(ids ...string) *DebateUpdateOne {
	_u.mutation.AddInterventionIDs(ids...)
	return _u
}

// AddInterventions adds the "interventions" edges to the Intervention entity.
func (_u *DebateUpdateOne) AddInterventions(v ...*Intervention) *DebateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInterventionIDs(ids...)
}

// AddSystemEventIDs adds the "system_events" edge to the SystemEvent entity by IDs.
func (_u *DebateUpdateOne) AddSystemEventIDs(ids ...string) *DebateUpdateOne {
	_u.mutation.AddSystemEventIDs(ids...)
	return _u
}

// AddSystemEvents adds the "system_events" edges to the SystemEvent entity.
func (_u *DebateUpdateOne) AddSystemEvents(v ...*SystemEvent) *DebateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSystemEventIDs(ids...)
}

// Mutation returns the DebateMutation object of the builder.
func (_u *DebateUpdateOne) Mutation() *DebateMutation {
	return _u.mutation
}

// ClearUtterances clears all "utterances" edges to the Utterance entity.
func (_u *DebateUpdateOne) ClearUtterances() *DebateUpdateOne {
	_u.mutation.ClearUtterances()
	return _u
}

// RemoveUtteranceIDs removes the "utterances" edge to Utterance entities by IDs.
func (_u *DebateUpdateOne) RemoveUtteranceIDs(ids ...string) *DebateUpdateOne {
	_u.mutation.RemoveUtteranceIDs(ids...)
	return _u
}

// RemoveUtterances removes "utterances" edges to Utterance entities.
func (_u *DebateUpdateOne) RemoveUtterances(v ...*Utterance) *DebateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUtteranceIDs(ids...)
}

// ClearInterventions clears all "interventions" edges to the Intervention entity.
func (_u *DebateUpdateOne) ClearInterventions() *DebateUpdateOne {
	_u.mutation.ClearInterventions()
	return _u
}

// RemoveInterventionIDs removes the "interventions" edge to Intervention entities by IDs.
func (_u *DebateUpdateOne) RemoveInterventionIDs(ids ...string) *DebateUpdateOne {
	_u.mutation.RemoveInterventionIDs(ids...)
	return _u
}

// RemoveInterventions removes "interventions" edges to Intervention entities.
func (_u *DebateUpdateOne) RemoveInterventions(v ...*Intervention) *DebateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInterventionIDs(ids...)
}

// ClearSystemEvents clears all "system_events" edges to the SystemEvent entity.
func (_u *DebateUpdateOne) ClearSystemEvents() *DebateUpdateOne {
	_u.mutation.ClearSystemEvents()
	return _u
}

// RemoveSystemEventIDs removes the "system_events" edge to SystemEvent entities by IDs.
func (_u *DebateUpdateOne) RemoveSystemEventIDs(ids ...string) *DebateUpdateOne {
	_u.mutation.RemoveSystemEventIDs(ids...)
	return _u
}

// RemoveSystemEvents removes "system_events" edges to SystemEvent entities.
func (_u *DebateUpdateOne) RemoveSystemEvents(v ...*SystemEvent) *DebateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSystemEventIDs(ids...)
}

// Where appends a list predicates to the DebateUpdate builder.
func (_u *DebateUpdateOne) Where(ps ...predicate.Debate) *DebateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DebateUpdateOne) Select(field string, fields ...string) *DebateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Debate entity.
func (_u *DebateUpdateOne) Save(ctx context.Context) (*Debate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DebateUpdateOne) SaveX(ctx context.Context) *Debate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DebateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DebateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DebateUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := debate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Debate.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Config(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "config", err: fmt.Errorf(`ent: validator failed for field "Debate.config": %w`, err)}
		}
	}
	return nil
}

func (_u *DebateUpdateOne) sqlSave(ctx context.Context) (_node *Debate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(debate.Table, debate.Columns, sqlgraph.NewFieldSpec(debate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Debate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, debate.FieldID)
		for _, f := range fields {
			if !debate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != debate.FieldID {
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
	if value, ok := _u.mutation.Proposition(); ok {
		_spec.SetField(debate.FieldProposition, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(debate.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(debate.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(debate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(debate.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreviousPhase(); ok {
		_spec.SetField(debate.FieldPreviousPhase, field.TypeString, value)
	}
	if _u.mutation.PreviousPhaseCleared() {
		_spec.ClearField(debate.FieldPreviousPhase, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentSpeaker(); ok {
		_spec.SetField(debate.FieldCurrentSpeaker, field.TypeString, value)
	}
	if _u.mutation.CurrentSpeakerCleared() {
		_spec.ClearField(debate.FieldCurrentSpeaker, field.TypeString)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(debate.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(debate.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(debate.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(debate.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(debate.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PausedMs(); ok {
		_spec.SetField(debate.FieldPausedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPausedMs(); ok {
		_spec.AddField(debate.FieldPausedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(debate.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(debate.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(debate.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(debate.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(debate.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(debate.FieldLastInteractionAt, field.TypeTime)
	}
	if _u.mutation.UtterancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUtterancesIDs(); len(nodes) > 0 && !_u.mutation.UtterancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UtterancesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InterventionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInterventionsIDs(); len(nodes) > 0 && !_u.mutation.InterventionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InterventionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SystemEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSystemEventsIDs(); len(nodes) > 0 && !_u.mutation.SystemEventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SystemEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Debate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{debate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
