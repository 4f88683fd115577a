// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/debatelab/agora/ent/debate"
	"github.com/debatelab/agora/ent/intervention"
	"github.com/debatelab/agora/ent/predicate"
	"github.com/debatelab/agora/ent/systemevent"
	"github.com/debatelab/agora/ent/utterance"
	pkgconfig "github.com/debatelab/agora/pkg/config"
	"github.com/debatelab/agora/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDebate       = "Debate"
	TypeIntervention = "Intervention"
	TypeSystemEvent  = "SystemEvent"
	TypeUtterance    = "Utterance"
)

// DebateMutation represents an operation that mutates the Debate nodes in the graph.
type DebateMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	proposition          *string
	context              *string
	status               *debate.Status
	phase                *string
	previous_phase       *string
	current_speaker      *string
	_config              **pkgconfig.DebateConfig
	created_at           *time.Time
	started_at           *time.Time
	completed_at         *time.Time
	paused_ms            *int64
	addpaused_ms         *int64
	error_message        *string
	pod_id               *string
	last_interaction_at  *time.Time
	clearedFields        map[string]struct{}
	utterances           map[string]struct{}
	removedutterances    map[string]struct{}
	clearedutterances    bool
	interventions        map[string]struct{}
	removedinterventions map[string]struct{}
	clearedinterventions bool
	system_events        map[string]struct{}
	removedsystem_events map[string]struct{}
	clearedsystem_events bool
	done                 bool
	oldValue             func(context.Context) (*Debate, error)
	predicates           []predicate.Debate
}

var _ ent.Mutation = (*DebateMutation)(nil)

// debateOption allows management of the mutation configuration using functional options.
type debateOption func(*DebateMutation)

// newDebateMutation creates new mutation for the Debate entity.
func newDebateMutation(c config, op Op, opts ...debateOption) *DebateMutation {
	m := &DebateMutation{
		config:        c,
		op:            op,
		typ:           TypeDebate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDebateID sets the ID field of the mutation.
func withDebateID(id string) debateOption {
	return func(m *DebateMutation) {
		var (
			err   error
			once  sync.Once
			value *Debate
		)
		m.oldValue = func(ctx context.Context) (*Debate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Debate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDebate sets the old Debate of the mutation.
func withDebate(node *Debate) debateOption {
	return func(m *DebateMutation) {
		m.oldValue = func(context.Context) (*Debate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DebateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DebateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Debate entities.
func (m *DebateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DebateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DebateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Debate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProposition sets the "proposition" field.
func (m *DebateMutation) SetProposition(s string) {
	m.proposition = &s
}

// Proposition returns the value of the "proposition" field in the mutation.
func (m *DebateMutation) Proposition() (r string, exists bool) {
	v := m.proposition
	if v == nil {
		return
	}
	return *v, true
}

// OldProposition returns the old "proposition" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldProposition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposition: %w", err)
	}
	return oldValue.Proposition, nil
}

// ResetProposition resets all changes to the "proposition" field.
func (m *DebateMutation) ResetProposition() {
	m.proposition = nil
}

// SetContext sets the "context" field.
func (m *DebateMutation) SetContext(s string) {
	m.context = &s
}

// Context returns the value of the "context" field in the mutation.
func (m *DebateMutation) Context() (r string, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldContext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *DebateMutation) ClearContext() {
	m.context = nil
	m.clearedFields[debate.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *DebateMutation) ContextCleared() bool {
	_, ok := m.clearedFields[debate.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *DebateMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, debate.FieldContext)
}

// SetStatus sets the "status" field.
func (m *DebateMutation) SetStatus(d debate.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DebateMutation) Status() (r debate.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldStatus(ctx context.Context) (v debate.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DebateMutation) ResetStatus() {
	m.status = nil
}

// SetPhase sets the "phase" field.
func (m *DebateMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *DebateMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *DebateMutation) ResetPhase() {
	m.phase = nil
}

// SetPreviousPhase sets the "previous_phase" field.
func (m *DebateMutation) SetPreviousPhase(s string) {
	m.previous_phase = &s
}

// PreviousPhase returns the value of the "previous_phase" field in the mutation.
func (m *DebateMutation) PreviousPhase() (r string, exists bool) {
	v := m.previous_phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviousPhase returns the old "previous_phase" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldPreviousPhase(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviousPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviousPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviousPhase: %w", err)
	}
	return oldValue.PreviousPhase, nil
}

// ClearPreviousPhase clears the value of the "previous_phase" field.
func (m *DebateMutation) ClearPreviousPhase() {
	m.previous_phase = nil
	m.clearedFields[debate.FieldPreviousPhase] = struct{}{}
}

// PreviousPhaseCleared returns if the "previous_phase" field was cleared in this mutation.
func (m *DebateMutation) PreviousPhaseCleared() bool {
	_, ok := m.clearedFields[debate.FieldPreviousPhase]
	return ok
}

// ResetPreviousPhase resets all changes to the "previous_phase" field.
func (m *DebateMutation) ResetPreviousPhase() {
	m.previous_phase = nil
	delete(m.clearedFields, debate.FieldPreviousPhase)
}

// SetCurrentSpeaker sets the "current_speaker" field.
func (m *DebateMutation) SetCurrentSpeaker(s string) {
	m.current_speaker = &s
}

// CurrentSpeaker returns the value of the "current_speaker" field in the mutation.
func (m *DebateMutation) CurrentSpeaker() (r string, exists bool) {
	v := m.current_speaker
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentSpeaker returns the old "current_speaker" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldCurrentSpeaker(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentSpeaker is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentSpeaker requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentSpeaker: %w", err)
	}
	return oldValue.CurrentSpeaker, nil
}

// ClearCurrentSpeaker clears the value of the "current_speaker" field.
func (m *DebateMutation) ClearCurrentSpeaker() {
	m.current_speaker = nil
	m.clearedFields[debate.FieldCurrentSpeaker] = struct{}{}
}

// CurrentSpeakerCleared returns if the "current_speaker" field was cleared in this mutation.
func (m *DebateMutation) CurrentSpeakerCleared() bool {
	_, ok := m.clearedFields[debate.FieldCurrentSpeaker]
	return ok
}

// ResetCurrentSpeaker resets all changes to the "current_speaker" field.
func (m *DebateMutation) ResetCurrentSpeaker() {
	m.current_speaker = nil
	delete(m.clearedFields, debate.FieldCurrentSpeaker)
}

// SetConfig sets the "config" field.
func (m *DebateMutation) SetConfig(cc *pkgconfig.DebateConfig) {
	m._config = &cc
}

// Config returns the value of the "config" field in the mutation.
func (m *DebateMutation) Config() (r *pkgconfig.DebateConfig, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldConfig(ctx context.Context) (v *pkgconfig.DebateConfig, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ResetConfig resets all changes to the "config" field.
func (m *DebateMutation) ResetConfig() {
	m._config = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DebateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DebateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DebateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *DebateMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *DebateMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *DebateMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[debate.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *DebateMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[debate.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *DebateMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, debate.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *DebateMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *DebateMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *DebateMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[debate.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *DebateMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[debate.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *DebateMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, debate.FieldCompletedAt)
}

// SetPausedMs sets the "paused_ms" field.
func (m *DebateMutation) SetPausedMs(i int64) {
	m.paused_ms = &i
	m.addpaused_ms = nil
}

// PausedMs returns the value of the "paused_ms" field in the mutation.
func (m *DebateMutation) PausedMs() (r int64, exists bool) {
	v := m.paused_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldPausedMs returns the old "paused_ms" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldPausedMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPausedMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPausedMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPausedMs: %w", err)
	}
	return oldValue.PausedMs, nil
}

// AddPausedMs adds i to the "paused_ms" field.
func (m *DebateMutation) AddPausedMs(i int64) {
	if m.addpaused_ms != nil {
		*m.addpaused_ms += i
	} else {
		m.addpaused_ms = &i
	}
}

// AddedPausedMs returns the value that was added to the "paused_ms" field in this mutation.
func (m *DebateMutation) AddedPausedMs() (r int64, exists bool) {
	v := m.addpaused_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetPausedMs resets all changes to the "paused_ms" field.
func (m *DebateMutation) ResetPausedMs() {
	m.paused_ms = nil
	m.addpaused_ms = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *DebateMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DebateMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DebateMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[debate.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DebateMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[debate.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DebateMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, debate.FieldErrorMessage)
}

// SetPodID sets the "pod_id" field.
func (m *DebateMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *DebateMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *DebateMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[debate.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *DebateMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[debate.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *DebateMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, debate.FieldPodID)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *DebateMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *DebateMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the Debate entity.
// If the Debate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *DebateMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[debate.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *DebateMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[debate.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *DebateMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, debate.FieldLastInteractionAt)
}

// AddUtteranceIDs adds the "utterances" edge to the Utterance entity by ids.
func (m *DebateMutation) AddUtteranceIDs(ids ...string) {
	if m.utterances == nil {
		m.utterances = make(map[string]struct{})
	}
	for i := range ids {
		m.utterances[ids[i]] = struct{}{}
	}
}

// ClearUtterances clears the "utterances" edge to the Utterance entity.
func (m *DebateMutation) ClearUtterances() {
	m.clearedutterances = true
}

// UtterancesCleared reports if the "utterances" edge to the Utterance entity was cleared.
func (m *DebateMutation) UtterancesCleared() bool {
	return m.clearedutterances
}

// RemoveUtteranceIDs removes the "utterances" edge to the Utterance entity by IDs.
func (m *DebateMutation) RemoveUtteranceIDs(ids ...string) {
	if m.removedutterances == nil {
		m.removedutterances = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.utterances, ids[i])
		m.removedutterances[ids[i]] = struct{}{}
	}
}

// RemovedUtterances returns the removed IDs of the "utterances" edge to the Utterance entity.
func (m *DebateMutation) RemovedUtterancesIDs() (ids []string) {
	for id := range m.removedutterances {
		ids = append(ids, id)
	}
	return
}

// UtterancesIDs returns the "utterances" edge IDs in the mutation.
func (m *DebateMutation) UtterancesIDs() (ids []string) {
	for id := range m.utterances {
		ids = append(ids, id)
	}
	return
}

// ResetUtterances resets all changes to the "utterances" edge.
func (m *DebateMutation) ResetUtterances() {
	m.utterances = nil
	m.clearedutterances = false
	m.removedutterances = nil
}

// AddInterventionIDs adds the "interventions" edge to the Intervention entity by ids.
func (m *DebateMutation) AddInterventionIDs(ids ...string) {
	if m.interventions == nil {
		m.interventions = make(map[string]struct{})
	}
	for i := range ids {
		m.interventions[ids[i]] = struct{}{}
	}
}

// ClearInterventions clears the "interventions" edge to the Intervention entity.
func (m *DebateMutation) ClearInterventions() {
	m.clearedinterventions = true
}

// InterventionsCleared reports if the "interventions" edge to the Intervention entity was cleared.
func (m *DebateMutation) InterventionsCleared() bool {
	return m.clearedinterventions
}

// RemoveInterventionIDs removes the "interventions" edge to the Intervention entity by IDs.
func (m *DebateMutation) RemoveInterventionIDs(ids ...string) {
	if m.removedinterventions == nil {
		m.removedinterventions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.interventions, ids[i])
		m.removedinterventions[ids[i]] = struct{}{}
	}
}

// RemovedInterventions returns the removed IDs of the "interventions" edge to the Intervention entity.
func (m *DebateMutation) RemovedInterventionsIDs() (ids []string) {
	for id := range m.removedinterventions {
		ids = append(ids, id)
	}
	return
}

// InterventionsIDs returns the "interventions" edge IDs in the mutation.
func (m *DebateMutation) InterventionsIDs() (ids []string) {
	for id := range m.interventions {
		ids = append(ids, id)
	}
	return
}

// ResetInterventions resets all changes to the "interventions" edge.
func (m *DebateMutation) ResetInterventions() {
	m.interventions = nil
	m.clearedinterventions = false
	m.removedinterventions = nil
}

// AddSystemEventIDs adds the "system_events" edge to the SystemEvent entity by ids.
func (m *DebateMutation) AddSystemEventIDs(ids ...string) {
	if m.system_events == nil {
		m.system_events = make(map[string]struct{})
	}
	for i := range ids {
		m.system_events[ids[i]] = struct{}{}
	}
}

// ClearSystemEvents clears the "system_events" edge to the SystemEvent entity.
func (m *DebateMutation) ClearSystemEvents() {
	m.clearedsystem_events = true
}

// SystemEventsCleared reports if the "system_events" edge to the SystemEvent entity was cleared.
func (m *DebateMutation) SystemEventsCleared() bool {
	return m.clearedsystem_events
}

// RemoveSystemEventIDs removes the "system_events" edge to the SystemEvent entity by IDs.
func (m *DebateMutation) RemoveSystemEventIDs(ids ...string) {
	if m.removedsystem_events == nil {
		m.removedsystem_events = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.system_events, ids[i])
		m.removedsystem_events[ids[i]] = struct{}{}
	}
}

// RemovedSystemEvents returns the removed IDs of the "system_events" edge to the SystemEvent entity.
func (m *DebateMutation) RemovedSystemEventsIDs() (ids []string) {
	for id := range m.removedsystem_events {
		ids = append(ids, id)
	}
	return
}

// SystemEventsIDs returns the "system_events" edge IDs in the mutation.
func (m *DebateMutation) SystemEventsIDs() (ids []string) {
	for id := range m.system_events {
		ids = append(ids, id)
	}
	return
}

// ResetSystemEvents resets all changes to the "system_events" edge.
func (m *DebateMutation) ResetSystemEvents() {
	m.system_events = nil
	m.clearedsystem_events = false
	m.removedsystem_events = nil
}

// Where appends a list predicates to the DebateMutation builder.
func (m *DebateMutation) Where(ps ...predicate.Debate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DebateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DebateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Debate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DebateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DebateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Debate).
func (m *DebateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DebateMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.proposition != nil {
		fields = append(fields, debate.FieldProposition)
	}
	if m.context != nil {
		fields = append(fields, debate.FieldContext)
	}
	if m.status != nil {
		fields = append(fields, debate.FieldStatus)
	}
	if m.phase != nil {
		fields = append(fields, debate.FieldPhase)
	}
	if m.previous_phase != nil {
		fields = append(fields, debate.FieldPreviousPhase)
	}
	if m.current_speaker != nil {
		fields = append(fields, debate.FieldCurrentSpeaker)
	}
	if m._config != nil {
		fields = append(fields, debate.FieldConfig)
	}
	if m.created_at != nil {
		fields = append(fields, debate.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, debate.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, debate.FieldCompletedAt)
	}
	if m.paused_ms != nil {
		fields = append(fields, debate.FieldPausedMs)
	}
	if m.error_message != nil {
		fields = append(fields, debate.FieldErrorMessage)
	}
	if m.pod_id != nil {
		fields = append(fields, debate.FieldPodID)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, debate.FieldLastInteractionAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DebateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case debate.FieldProposition:
		return m.Proposition()
	case debate.FieldContext:
		return m.Context()
	case debate.FieldStatus:
		return m.Status()
	case debate.FieldPhase:
		return m.Phase()
	case debate.FieldPreviousPhase:
		return m.PreviousPhase()
	case debate.FieldCurrentSpeaker:
		return m.CurrentSpeaker()
	case debate.FieldConfig:
		return m.Config()
	case debate.FieldCreatedAt:
		return m.CreatedAt()
	case debate.FieldStartedAt:
		return m.StartedAt()
	case debate.FieldCompletedAt:
		return m.CompletedAt()
	case debate.FieldPausedMs:
		return m.PausedMs()
	case debate.FieldErrorMessage:
		return m.ErrorMessage()
	case debate.FieldPodID:
		return m.PodID()
	case debate.FieldLastInteractionAt:
		return m.LastInteractionAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DebateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case debate.FieldProposition:
		return m.OldProposition(ctx)
	case debate.FieldContext:
		return m.OldContext(ctx)
	case debate.FieldStatus:
		return m.OldStatus(ctx)
	case debate.FieldPhase:
		return m.OldPhase(ctx)
	case debate.FieldPreviousPhase:
		return m.OldPreviousPhase(ctx)
	case debate.FieldCurrentSpeaker:
		return m.OldCurrentSpeaker(ctx)
	case debate.FieldConfig:
		return m.OldConfig(ctx)
	case debate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case debate.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case debate.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case debate.FieldPausedMs:
		return m.OldPausedMs(ctx)
	case debate.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case debate.FieldPodID:
		return m.OldPodID(ctx)
	case debate.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	}
	return nil, fmt.Errorf("unknown Debate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DebateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case debate.FieldProposition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposition(v)
		return nil
	case debate.FieldContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case debate.FieldStatus:
		v, ok := value.(debate.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case debate.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case debate.FieldPreviousPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviousPhase(v)
		return nil
	case debate.FieldCurrentSpeaker:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentSpeaker(v)
		return nil
	case debate.FieldConfig:
		v, ok := value.(*pkgconfig.DebateConfig)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case debate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case debate.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case debate.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case debate.FieldPausedMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPausedMs(v)
		return nil
	case debate.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case debate.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case debate.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	}
	return fmt.Errorf("unknown Debate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DebateMutation) AddedFields() []string {
	var fields []string
	if m.addpaused_ms != nil {
		fields = append(fields, debate.FieldPausedMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DebateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case debate.FieldPausedMs:
		return m.AddedPausedMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DebateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case debate.FieldPausedMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPausedMs(v)
		return nil
	}
	return fmt.Errorf("unknown Debate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DebateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(debate.FieldContext) {
		fields = append(fields, debate.FieldContext)
	}
	if m.FieldCleared(debate.FieldPreviousPhase) {
		fields = append(fields, debate.FieldPreviousPhase)
	}
	if m.FieldCleared(debate.FieldCurrentSpeaker) {
		fields = append(fields, debate.FieldCurrentSpeaker)
	}
	if m.FieldCleared(debate.FieldStartedAt) {
		fields = append(fields, debate.FieldStartedAt)
	}
	if m.FieldCleared(debate.FieldCompletedAt) {
		fields = append(fields, debate.FieldCompletedAt)
	}
	if m.FieldCleared(debate.FieldErrorMessage) {
		fields = append(fields, debate.FieldErrorMessage)
	}
	if m.FieldCleared(debate.FieldPodID) {
		fields = append(fields, debate.FieldPodID)
	}
	if m.FieldCleared(debate.FieldLastInteractionAt) {
		fields = append(fields, debate.FieldLastInteractionAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DebateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DebateMutation) ClearField(name string) error {
	switch name {
	case debate.FieldContext:
		m.ClearContext()
		return nil
	case debate.FieldPreviousPhase:
		m.ClearPreviousPhase()
		return nil
	case debate.FieldCurrentSpeaker:
		m.ClearCurrentSpeaker()
		return nil
	case debate.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case debate.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case debate.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case debate.FieldPodID:
		m.ClearPodID()
		return nil
	case debate.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown Debate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DebateMutation) ResetField(name string) error {
	switch name {
	case debate.FieldProposition:
		m.ResetProposition()
		return nil
	case debate.FieldContext:
		m.ResetContext()
		return nil
	case debate.FieldStatus:
		m.ResetStatus()
		return nil
	case debate.FieldPhase:
		m.ResetPhase()
		return nil
	case debate.FieldPreviousPhase:
		m.ResetPreviousPhase()
		return nil
	case debate.FieldCurrentSpeaker:
		m.ResetCurrentSpeaker()
		return nil
	case debate.FieldConfig:
		m.ResetConfig()
		return nil
	case debate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case debate.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case debate.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case debate.FieldPausedMs:
		m.ResetPausedMs()
		return nil
	case debate.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case debate.FieldPodID:
		m.ResetPodID()
		return nil
	case debate.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown Debate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DebateMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.utterances != nil {
		edges = append(edges, debate.EdgeUtterances)
	}
	if m.interventions != nil {
		edges = append(edges, debate.EdgeInterventions)
	}
	if m.system_events != nil {
		edges = append(edges, debate.EdgeSystemEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DebateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case debate.EdgeUtterances:
		ids := make([]ent.Value, 0, len(m.utterances))
		for id := range m.utterances {
			ids = append(ids, id)
		}
		return ids
	case debate.EdgeInterventions:
		ids := make([]ent.Value, 0, len(m.interventions))
		for id := range m.interventions {
			ids = append(ids, id)
		}
		return ids
	case debate.EdgeSystemEvents:
		ids := make([]ent.Value, 0, len(m.system_events))
		for id := range m.system_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DebateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedutterances != nil {
		edges = append(edges, debate.EdgeUtterances)
	}
	if m.removedinterventions != nil {
		edges = append(edges, debate.EdgeInterventions)
	}
	if m.removedsystem_events != nil {
		edges = append(edges, debate.EdgeSystemEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DebateMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case debate.EdgeUtterances:
		ids := make([]ent.Value, 0, len(m.removedutterances))
		for id := range m.removedutterances {
			ids = append(ids, id)
		}
		return ids
	case debate.EdgeInterventions:
		ids := make([]ent.Value, 0, len(m.removedinterventions))
		for id := range m.removedinterventions {
			ids = append(ids, id)
		}
		return ids
	case debate.EdgeSystemEvents:
		ids := make([]ent.Value, 0, len(m.removedsystem_events))
		for id := range m.removedsystem_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DebateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedutterances {
		edges = append(edges, debate.EdgeUtterances)
	}
	if m.clearedinterventions {
		edges = append(edges, debate.EdgeInterventions)
	}
	if m.clearedsystem_events {
		edges = append(edges, debate.EdgeSystemEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DebateMutation) EdgeCleared(name string) bool {
	switch name {
	case debate.EdgeUtterances:
		return m.clearedutterances
	case debate.EdgeInterventions:
		return m.clearedinterventions
	case debate.EdgeSystemEvents:
		return m.clearedsystem_events
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DebateMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Debate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DebateMutation) ResetEdge(name string) error {
	switch name {
	case debate.EdgeUtterances:
		m.ResetUtterances()
		return nil
	case debate.EdgeInterventions:
		m.ResetInterventions()
		return nil
	case debate.EdgeSystemEvents:
		m.ResetSystemEvents()
		return nil
	}
	return fmt.Errorf("unknown Debate edge %s", name)
}

// InterventionMutation represents an operation that mutates the Intervention nodes in the graph.
type InterventionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	_type         *intervention.Type
	content       *string
	directed_to   *string
	status        *intervention.Status
	response      *string
	client_key    *string
	created_at    *time.Time
	processed_at  *time.Time
	clearedFields map[string]struct{}
	debate        *string
	cleareddebate bool
	done          bool
	oldValue      func(context.Context) (*Intervention, error)
	predicates    []predicate.Intervention
}

var _ ent.Mutation = (*InterventionMutation)(nil)

// interventionOption allows management of the mutation configuration using functional options.
type interventionOption func(*InterventionMutation)

// newInterventionMutation creates new mutation for the Intervention entity.
func newInterventionMutation(c config, op Op, opts ...interventionOption) *InterventionMutation {
	m := &InterventionMutation{
		config:        c,
		op:            op,
		typ:           TypeIntervention,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInterventionID sets the ID field of the mutation.
func withInterventionID(id string) interventionOption {
	return func(m *InterventionMutation) {
		var (
			err   error
			once  sync.Once
			value *Intervention
		)
		m.oldValue = func(ctx context.Context) (*Intervention, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Intervention.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIntervention sets the old Intervention of the mutation.
func withIntervention(node *Intervention) interventionOption {
	return func(m *InterventionMutation) {
		m.oldValue = func(context.Context) (*Intervention, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InterventionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InterventionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Intervention entities.
func (m *InterventionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InterventionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InterventionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Intervention.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDebateID sets the "debate_id" field.
func (m *InterventionMutation) SetDebateID(s string) {
	m.debate = &s
}

// DebateID returns the value of the "debate_id" field in the mutation.
func (m *InterventionMutation) DebateID() (r string, exists bool) {
	v := m.debate
	if v == nil {
		return
	}
	return *v, true
}

// OldDebateID returns the old "debate_id" field's value of the Intervention entity.
// If the Intervention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionMutation) OldDebateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDebateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDebateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDebateID: %w", err)
	}
	return oldValue.DebateID, nil
}

// ResetDebateID resets all changes to the "debate_id" field.
func (m *InterventionMutation) ResetDebateID() {
	m.debate = nil
}

// SetType sets the "type" field.
func (m *InterventionMutation) SetType(i intervention.Type) {
	m._type = &i
}

// GetType returns the value of the "type" field in the mutation.
func (m *InterventionMutation) GetType() (r intervention.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Intervention entity.
// If the Intervention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionMutation) OldType(ctx context.Context) (v intervention.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *InterventionMutation) ResetType() {
	m._type = nil
}

// SetContent sets the "content" field.
func (m *InterventionMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *InterventionMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Intervention entity.
// If the Intervention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *InterventionMutation) ClearContent() {
	m.content = nil
	m.clearedFields[intervention.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *InterventionMutation) ContentCleared() bool {
	_, ok := m.clearedFields[intervention.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *InterventionMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, intervention.FieldContent)
}

// SetDirectedTo sets the "directed_to" field.
func (m *InterventionMutation) SetDirectedTo(s string) {
	m.directed_to = &s
}

// DirectedTo returns the value of the "directed_to" field in the mutation.
func (m *InterventionMutation) DirectedTo() (r string, exists bool) {
	v := m.directed_to
	if v == nil {
		return
	}
	return *v, true
}

// OldDirectedTo returns the old "directed_to" field's value of the Intervention entity.
// If the Intervention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionMutation) OldDirectedTo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirectedTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirectedTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirectedTo: %w", err)
	}
	return oldValue.DirectedTo, nil
}

// ClearDirectedTo clears the value of the "directed_to" field.
func (m *InterventionMutation) ClearDirectedTo() {
	m.directed_to = nil
	m.clearedFields[intervention.FieldDirectedTo] = struct{}{}
}

// DirectedToCleared returns if the "directed_to" field was cleared in this mutation.
func (m *InterventionMutation) DirectedToCleared() bool {
	_, ok := m.clearedFields[intervention.FieldDirectedTo]
	return ok
}

// ResetDirectedTo resets all changes to the "directed_to" field.
func (m *InterventionMutation) ResetDirectedTo() {
	m.directed_to = nil
	delete(m.clearedFields, intervention.FieldDirectedTo)
}

// SetStatus sets the "status" field.
func (m *InterventionMutation) SetStatus(i intervention.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *InterventionMutation) Status() (r intervention.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Intervention entity.
// If the Intervention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionMutation) OldStatus(ctx context.Context) (v intervention.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InterventionMutation) ResetStatus() {
	m.status = nil
}

// SetResponse sets the "response" field.
func (m *InterventionMutation) SetResponse(s string) {
	m.response = &s
}

// Response returns the value of the "response" field in the mutation.
func (m *InterventionMutation) Response() (r string, exists bool) {
	v := m.response
	if v == nil {
		return
	}
	return *v, true
}

// OldResponse returns the old "response" field's value of the Intervention entity.
// If the Intervention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionMutation) OldResponse(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponse: %w", err)
	}
	return oldValue.Response, nil
}

// ClearResponse clears the value of the "response" field.
func (m *InterventionMutation) ClearResponse() {
	m.response = nil
	m.clearedFields[intervention.FieldResponse] = struct{}{}
}

// ResponseCleared returns if the "response" field was cleared in this mutation.
func (m *InterventionMutation) ResponseCleared() bool {
	_, ok := m.clearedFields[intervention.FieldResponse]
	return ok
}

// ResetResponse resets all changes to the "response" field.
func (m *InterventionMutation) ResetResponse() {
	m.response = nil
	delete(m.clearedFields, intervention.FieldResponse)
}

// SetClientKey sets the "client_key" field.
func (m *InterventionMutation) SetClientKey(s string) {
	m.client_key = &s
}

// ClientKey returns the value of the "client_key" field in the mutation.
func (m *InterventionMutation) ClientKey() (r string, exists bool) {
	v := m.client_key
	if v == nil {
		return
	}
	return *v, true
}

// OldClientKey returns the old "client_key" field's value of the Intervention entity.
// If the Intervention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionMutation) OldClientKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientKey: %w", err)
	}
	return oldValue.ClientKey, nil
}

// ClearClientKey clears the value of the "client_key" field.
func (m *InterventionMutation) ClearClientKey() {
	m.client_key = nil
	m.clearedFields[intervention.FieldClientKey] = struct{}{}
}

// ClientKeyCleared returns if the "client_key" field was cleared in this mutation.
func (m *InterventionMutation) ClientKeyCleared() bool {
	_, ok := m.clearedFields[intervention.FieldClientKey]
	return ok
}

// ResetClientKey resets all changes to the "client_key" field.
func (m *InterventionMutation) ResetClientKey() {
	m.client_key = nil
	delete(m.clearedFields, intervention.FieldClientKey)
}

// SetCreatedAt sets the "created_at" field.
func (m *InterventionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InterventionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Intervention entity.
// If the Intervention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InterventionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *InterventionMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *InterventionMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the Intervention entity.
// If the Intervention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *InterventionMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[intervention.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *InterventionMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[intervention.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *InterventionMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, intervention.FieldProcessedAt)
}

// ClearDebate clears the "debate" edge to the Debate entity.
func (m *InterventionMutation) ClearDebate() {
	m.cleareddebate = true
	m.clearedFields[intervention.FieldDebateID] = struct{}{}
}

// DebateCleared reports if the "debate" edge to the Debate entity was cleared.
func (m *InterventionMutation) DebateCleared() bool {
	return m.cleareddebate
}

// DebateIDs returns the "debate" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DebateID instead. It exists only for internal usage by the builders.
func (m *InterventionMutation) DebateIDs() (ids []string) {
	if id := m.debate; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDebate resets all changes to the "debate" edge.
func (m *InterventionMutation) ResetDebate() {
	m.debate = nil
	m.cleareddebate = false
}

// Where appends a list predicates to the InterventionMutation builder.
func (m *InterventionMutation) Where(ps ...predicate.Intervention) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InterventionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InterventionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Intervention, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InterventionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InterventionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Intervention).
func (m *InterventionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InterventionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.debate != nil {
		fields = append(fields, intervention.FieldDebateID)
	}
	if m._type != nil {
		fields = append(fields, intervention.FieldType)
	}
	if m.content != nil {
		fields = append(fields, intervention.FieldContent)
	}
	if m.directed_to != nil {
		fields = append(fields, intervention.FieldDirectedTo)
	}
	if m.status != nil {
		fields = append(fields, intervention.FieldStatus)
	}
	if m.response != nil {
		fields = append(fields, intervention.FieldResponse)
	}
	if m.client_key != nil {
		fields = append(fields, intervention.FieldClientKey)
	}
	if m.created_at != nil {
		fields = append(fields, intervention.FieldCreatedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, intervention.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InterventionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case intervention.FieldDebateID:
		return m.DebateID()
	case intervention.FieldType:
		return m.GetType()
	case intervention.FieldContent:
		return m.Content()
	case intervention.FieldDirectedTo:
		return m.DirectedTo()
	case intervention.FieldStatus:
		return m.Status()
	case intervention.FieldResponse:
		return m.Response()
	case intervention.FieldClientKey:
		return m.ClientKey()
	case intervention.FieldCreatedAt:
		return m.CreatedAt()
	case intervention.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InterventionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case intervention.FieldDebateID:
		return m.OldDebateID(ctx)
	case intervention.FieldType:
		return m.OldType(ctx)
	case intervention.FieldContent:
		return m.OldContent(ctx)
	case intervention.FieldDirectedTo:
		return m.OldDirectedTo(ctx)
	case intervention.FieldStatus:
		return m.OldStatus(ctx)
	case intervention.FieldResponse:
		return m.OldResponse(ctx)
	case intervention.FieldClientKey:
		return m.OldClientKey(ctx)
	case intervention.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case intervention.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Intervention field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterventionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case intervention.FieldDebateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDebateID(v)
		return nil
	case intervention.FieldType:
		v, ok := value.(intervention.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case intervention.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case intervention.FieldDirectedTo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirectedTo(v)
		return nil
	case intervention.FieldStatus:
		v, ok := value.(intervention.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case intervention.FieldResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponse(v)
		return nil
	case intervention.FieldClientKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientKey(v)
		return nil
	case intervention.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case intervention.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Intervention field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InterventionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InterventionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterventionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Intervention numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InterventionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(intervention.FieldContent) {
		fields = append(fields, intervention.FieldContent)
	}
	if m.FieldCleared(intervention.FieldDirectedTo) {
		fields = append(fields, intervention.FieldDirectedTo)
	}
	if m.FieldCleared(intervention.FieldResponse) {
		fields = append(fields, intervention.FieldResponse)
	}
	if m.FieldCleared(intervention.FieldClientKey) {
		fields = append(fields, intervention.FieldClientKey)
	}
	if m.FieldCleared(intervention.FieldProcessedAt) {
		fields = append(fields, intervention.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InterventionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InterventionMutation) ClearField(name string) error {
	switch name {
	case intervention.FieldContent:
		m.ClearContent()
		return nil
	case intervention.FieldDirectedTo:
		m.ClearDirectedTo()
		return nil
	case intervention.FieldResponse:
		m.ClearResponse()
		return nil
	case intervention.FieldClientKey:
		m.ClearClientKey()
		return nil
	case intervention.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown Intervention nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InterventionMutation) ResetField(name string) error {
	switch name {
	case intervention.FieldDebateID:
		m.ResetDebateID()
		return nil
	case intervention.FieldType:
		m.ResetType()
		return nil
	case intervention.FieldContent:
		m.ResetContent()
		return nil
	case intervention.FieldDirectedTo:
		m.ResetDirectedTo()
		return nil
	case intervention.FieldStatus:
		m.ResetStatus()
		return nil
	case intervention.FieldResponse:
		m.ResetResponse()
		return nil
	case intervention.FieldClientKey:
		m.ResetClientKey()
		return nil
	case intervention.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case intervention.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown Intervention field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InterventionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.debate != nil {
		edges = append(edges, intervention.EdgeDebate)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InterventionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case intervention.EdgeDebate:
		if id := m.debate; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InterventionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InterventionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InterventionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddebate {
		edges = append(edges, intervention.EdgeDebate)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InterventionMutation) EdgeCleared(name string) bool {
	switch name {
	case intervention.EdgeDebate:
		return m.cleareddebate
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InterventionMutation) ClearEdge(name string) error {
	switch name {
	case intervention.EdgeDebate:
		m.ClearDebate()
		return nil
	}
	return fmt.Errorf("unknown Intervention unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InterventionMutation) ResetEdge(name string) error {
	switch name {
	case intervention.EdgeDebate:
		m.ResetDebate()
		return nil
	}
	return fmt.Errorf("unknown Intervention edge %s", name)
}

// SystemEventMutation represents an operation that mutates the SystemEvent nodes in the graph.
type SystemEventMutation struct {
	config
	op            Op
	typ           string
	id            *string
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	debate        *string
	cleareddebate bool
	done          bool
	oldValue      func(context.Context) (*SystemEvent, error)
	predicates    []predicate.SystemEvent
}

var _ ent.Mutation = (*SystemEventMutation)(nil)

// systemeventOption allows management of the mutation configuration using functional options.
type systemeventOption func(*SystemEventMutation)

// newSystemEventMutation creates new mutation for the SystemEvent entity.
func newSystemEventMutation(c config, op Op, opts ...systemeventOption) *SystemEventMutation {
	m := &SystemEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSystemEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSystemEventID sets the ID field of the mutation.
func withSystemEventID(id string) systemeventOption {
	return func(m *SystemEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SystemEvent
		)
		m.oldValue = func(ctx context.Context) (*SystemEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SystemEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSystemEvent sets the old SystemEvent of the mutation.
func withSystemEvent(node *SystemEvent) systemeventOption {
	return func(m *SystemEventMutation) {
		m.oldValue = func(context.Context) (*SystemEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SystemEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SystemEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SystemEvent entities.
func (m *SystemEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SystemEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SystemEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SystemEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDebateID sets the "debate_id" field.
func (m *SystemEventMutation) SetDebateID(s string) {
	m.debate = &s
}

// DebateID returns the value of the "debate_id" field in the mutation.
func (m *SystemEventMutation) DebateID() (r string, exists bool) {
	v := m.debate
	if v == nil {
		return
	}
	return *v, true
}

// OldDebateID returns the old "debate_id" field's value of the SystemEvent entity.
// If the SystemEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemEventMutation) OldDebateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDebateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDebateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDebateID: %w", err)
	}
	return oldValue.DebateID, nil
}

// ResetDebateID resets all changes to the "debate_id" field.
func (m *SystemEventMutation) ResetDebateID() {
	m.debate = nil
}

// SetChannel sets the "channel" field.
func (m *SystemEventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *SystemEventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the SystemEvent entity.
// If the SystemEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemEventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *SystemEventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *SystemEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *SystemEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the SystemEvent entity.
// If the SystemEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *SystemEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[systemevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *SystemEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[systemevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *SystemEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, systemevent.FieldPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *SystemEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SystemEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SystemEvent entity.
// If the SystemEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SystemEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDebate clears the "debate" edge to the Debate entity.
func (m *SystemEventMutation) ClearDebate() {
	m.cleareddebate = true
	m.clearedFields[systemevent.FieldDebateID] = struct{}{}
}

// DebateCleared reports if the "debate" edge to the Debate entity was cleared.
func (m *SystemEventMutation) DebateCleared() bool {
	return m.cleareddebate
}

// DebateIDs returns the "debate" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DebateID instead. It exists only for internal usage by the builders.
func (m *SystemEventMutation) DebateIDs() (ids []string) {
	if id := m.debate; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDebate resets all changes to the "debate" edge.
func (m *SystemEventMutation) ResetDebate() {
	m.debate = nil
	m.cleareddebate = false
}

// Where appends a list predicates to the SystemEventMutation builder.
func (m *SystemEventMutation) Where(ps ...predicate.SystemEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SystemEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SystemEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SystemEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SystemEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SystemEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SystemEvent).
func (m *SystemEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SystemEventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.debate != nil {
		fields = append(fields, systemevent.FieldDebateID)
	}
	if m.channel != nil {
		fields = append(fields, systemevent.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, systemevent.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, systemevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SystemEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case systemevent.FieldDebateID:
		return m.DebateID()
	case systemevent.FieldChannel:
		return m.Channel()
	case systemevent.FieldPayload:
		return m.Payload()
	case systemevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SystemEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case systemevent.FieldDebateID:
		return m.OldDebateID(ctx)
	case systemevent.FieldChannel:
		return m.OldChannel(ctx)
	case systemevent.FieldPayload:
		return m.OldPayload(ctx)
	case systemevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SystemEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SystemEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case systemevent.FieldDebateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDebateID(v)
		return nil
	case systemevent.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case systemevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case systemevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SystemEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SystemEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SystemEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SystemEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SystemEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SystemEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(systemevent.FieldPayload) {
		fields = append(fields, systemevent.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SystemEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SystemEventMutation) ClearField(name string) error {
	switch name {
	case systemevent.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown SystemEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SystemEventMutation) ResetField(name string) error {
	switch name {
	case systemevent.FieldDebateID:
		m.ResetDebateID()
		return nil
	case systemevent.FieldChannel:
		m.ResetChannel()
		return nil
	case systemevent.FieldPayload:
		m.ResetPayload()
		return nil
	case systemevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SystemEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SystemEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.debate != nil {
		edges = append(edges, systemevent.EdgeDebate)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SystemEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case systemevent.EdgeDebate:
		if id := m.debate; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SystemEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SystemEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SystemEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddebate {
		edges = append(edges, systemevent.EdgeDebate)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SystemEventMutation) EdgeCleared(name string) bool {
	switch name {
	case systemevent.EdgeDebate:
		return m.cleareddebate
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SystemEventMutation) ClearEdge(name string) error {
	switch name {
	case systemevent.EdgeDebate:
		m.ClearDebate()
		return nil
	}
	return fmt.Errorf("unknown SystemEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SystemEventMutation) ResetEdge(name string) error {
	switch name {
	case systemevent.EdgeDebate:
		m.ResetDebate()
		return nil
	}
	return fmt.Errorf("unknown SystemEvent edge %s", name)
}

// UtteranceMutation represents an operation that mutates the Utterance nodes in the graph.
type UtteranceMutation struct {
	config
	op            Op
	typ           string
	id            *string
	turn_index    *int
	addturn_index *int
	offset_ms     *int64
	addoffset_ms  *int64
	phase         *string
	speaker       *string
	content       *string
	metadata      *models.UtteranceMetadata
	created_at    *time.Time
	clearedFields map[string]struct{}
	debate        *string
	cleareddebate bool
	done          bool
	oldValue      func(context.Context) (*Utterance, error)
	predicates    []predicate.Utterance
}

var _ ent.Mutation = (*UtteranceMutation)(nil)

// utteranceOption allows management of the mutation configuration using functional options.
type utteranceOption func(*UtteranceMutation)

// newUtteranceMutation creates new mutation for the Utterance entity.
func newUtteranceMutation(c config, op Op, opts ...utteranceOption) *UtteranceMutation {
	m := &UtteranceMutation{
		config:        c,
		op:            op,
		typ:           TypeUtterance,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUtteranceID sets the ID field of the mutation.
func withUtteranceID(id string) utteranceOption {
	return func(m *UtteranceMutation) {
		var (
			err   error
			once  sync.Once
			value *Utterance
		)
		m.oldValue = func(ctx context.Context) (*Utterance, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Utterance.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUtterance sets the old Utterance of the mutation.
func withUtterance(node *Utterance) utteranceOption {
	return func(m *UtteranceMutation) {
		m.oldValue = func(context.Context) (*Utterance, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UtteranceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UtteranceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Utterance entities.
func (m *UtteranceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UtteranceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UtteranceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Utterance.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDebateID sets the "debate_id" field.
func (m *UtteranceMutation) SetDebateID(s string) {
	m.debate = &s
}

// DebateID returns the value of the "debate_id" field in the mutation.
func (m *UtteranceMutation) DebateID() (r string, exists bool) {
	v := m.debate
	if v == nil {
		return
	}
	return *v, true
}

// OldDebateID returns the old "debate_id" field's value of the Utterance entity.
// If the Utterance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtteranceMutation) OldDebateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDebateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDebateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDebateID: %w", err)
	}
	return oldValue.DebateID, nil
}

// ResetDebateID resets all changes to the "debate_id" field.
func (m *UtteranceMutation) ResetDebateID() {
	m.debate = nil
}

// SetTurnIndex sets the "turn_index" field.
func (m *UtteranceMutation) SetTurnIndex(i int) {
	m.turn_index = &i
	m.addturn_index = nil
}

// TurnIndex returns the value of the "turn_index" field in the mutation.
func (m *UtteranceMutation) TurnIndex() (r int, exists bool) {
	v := m.turn_index
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnIndex returns the old "turn_index" field's value of the Utterance entity.
// If the Utterance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtteranceMutation) OldTurnIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnIndex: %w", err)
	}
	return oldValue.TurnIndex, nil
}

// AddTurnIndex adds i to the "turn_index" field.
func (m *UtteranceMutation) AddTurnIndex(i int) {
	if m.addturn_index != nil {
		*m.addturn_index += i
	} else {
		m.addturn_index = &i
	}
}

// AddedTurnIndex returns the value that was added to the "turn_index" field in this mutation.
func (m *UtteranceMutation) AddedTurnIndex() (r int, exists bool) {
	v := m.addturn_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetTurnIndex resets all changes to the "turn_index" field.
func (m *UtteranceMutation) ResetTurnIndex() {
	m.turn_index = nil
	m.addturn_index = nil
}

// SetOffsetMs sets the "offset_ms" field.
func (m *UtteranceMutation) SetOffsetMs(i int64) {
	m.offset_ms = &i
	m.addoffset_ms = nil
}

// OffsetMs returns the value of the "offset_ms" field in the mutation.
func (m *UtteranceMutation) OffsetMs() (r int64, exists bool) {
	v := m.offset_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldOffsetMs returns the old "offset_ms" field's value of the Utterance entity.
// If the Utterance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtteranceMutation) OldOffsetMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOffsetMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOffsetMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOffsetMs: %w", err)
	}
	return oldValue.OffsetMs, nil
}

// AddOffsetMs adds i to the "offset_ms" field.
func (m *UtteranceMutation) AddOffsetMs(i int64) {
	if m.addoffset_ms != nil {
		*m.addoffset_ms += i
	} else {
		m.addoffset_ms = &i
	}
}

// AddedOffsetMs returns the value that was added to the "offset_ms" field in this mutation.
func (m *UtteranceMutation) AddedOffsetMs() (r int64, exists bool) {
	v := m.addoffset_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetOffsetMs resets all changes to the "offset_ms" field.
func (m *UtteranceMutation) ResetOffsetMs() {
	m.offset_ms = nil
	m.addoffset_ms = nil
}

// SetPhase sets the "phase" field.
func (m *UtteranceMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *UtteranceMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the Utterance entity.
// If the Utterance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtteranceMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *UtteranceMutation) ResetPhase() {
	m.phase = nil
}

// SetSpeaker sets the "speaker" field.
func (m *UtteranceMutation) SetSpeaker(s string) {
	m.speaker = &s
}

// Speaker returns the value of the "speaker" field in the mutation.
func (m *UtteranceMutation) Speaker() (r string, exists bool) {
	v := m.speaker
	if v == nil {
		return
	}
	return *v, true
}

// OldSpeaker returns the old "speaker" field's value of the Utterance entity.
// If the Utterance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtteranceMutation) OldSpeaker(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpeaker is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpeaker requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpeaker: %w", err)
	}
	return oldValue.Speaker, nil
}

// ResetSpeaker resets all changes to the "speaker" field.
func (m *UtteranceMutation) ResetSpeaker() {
	m.speaker = nil
}

// SetContent sets the "content" field.
func (m *UtteranceMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *UtteranceMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Utterance entity.
// If the Utterance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtteranceMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *UtteranceMutation) ResetContent() {
	m.content = nil
}

// SetMetadata sets the "metadata" field.
func (m *UtteranceMutation) SetMetadata(mm models.UtteranceMetadata) {
	m.metadata = &mm
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *UtteranceMutation) Metadata() (r models.UtteranceMetadata, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Utterance entity.
// If the Utterance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtteranceMutation) OldMetadata(ctx context.Context) (v models.UtteranceMetadata, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *UtteranceMutation) ResetMetadata() {
	m.metadata = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UtteranceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UtteranceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Utterance entity.
// If the Utterance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtteranceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UtteranceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDebate clears the "debate" edge to the Debate entity.
func (m *UtteranceMutation) ClearDebate() {
	m.cleareddebate = true
	m.clearedFields[utterance.FieldDebateID] = struct{}{}
}

// DebateCleared reports if the "debate" edge to the Debate entity was cleared.
func (m *UtteranceMutation) DebateCleared() bool {
	return m.cleareddebate
}

// DebateIDs returns the "debate" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DebateID instead. It exists only for internal usage by the builders.
func (m *UtteranceMutation) DebateIDs() (ids []string) {
	if id := m.debate; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDebate resets all changes to the "debate" edge.
func (m *UtteranceMutation) ResetDebate() {
	m.debate = nil
	m.cleareddebate = false
}

// Where appends a list predicates to the UtteranceMutation builder.
func (m *UtteranceMutation) Where(ps ...predicate.Utterance) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UtteranceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UtteranceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Utterance, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UtteranceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UtteranceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Utterance).
func (m *UtteranceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UtteranceMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.debate != nil {
		fields = append(fields, utterance.FieldDebateID)
	}
	if m.turn_index != nil {
		fields = append(fields, utterance.FieldTurnIndex)
	}
	if m.offset_ms != nil {
		fields = append(fields, utterance.FieldOffsetMs)
	}
	if m.phase != nil {
		fields = append(fields, utterance.FieldPhase)
	}
	if m.speaker != nil {
		fields = append(fields, utterance.FieldSpeaker)
	}
	if m.content != nil {
		fields = append(fields, utterance.FieldContent)
	}
	if m.metadata != nil {
		fields = append(fields, utterance.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, utterance.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UtteranceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case utterance.FieldDebateID:
		return m.DebateID()
	case utterance.FieldTurnIndex:
		return m.TurnIndex()
	case utterance.FieldOffsetMs:
		return m.OffsetMs()
	case utterance.FieldPhase:
		return m.Phase()
	case utterance.FieldSpeaker:
		return m.Speaker()
	case utterance.FieldContent:
		return m.Content()
	case utterance.FieldMetadata:
		return m.Metadata()
	case utterance.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UtteranceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case utterance.FieldDebateID:
		return m.OldDebateID(ctx)
	case utterance.FieldTurnIndex:
		return m.OldTurnIndex(ctx)
	case utterance.FieldOffsetMs:
		return m.OldOffsetMs(ctx)
	case utterance.FieldPhase:
		return m.OldPhase(ctx)
	case utterance.FieldSpeaker:
		return m.OldSpeaker(ctx)
	case utterance.FieldContent:
		return m.OldContent(ctx)
	case utterance.FieldMetadata:
		return m.OldMetadata(ctx)
	case utterance.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Utterance field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UtteranceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case utterance.FieldDebateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDebateID(v)
		return nil
	case utterance.FieldTurnIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnIndex(v)
		return nil
	case utterance.FieldOffsetMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOffsetMs(v)
		return nil
	case utterance.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case utterance.FieldSpeaker:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpeaker(v)
		return nil
	case utterance.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case utterance.FieldMetadata:
		v, ok := value.(models.UtteranceMetadata)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case utterance.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Utterance field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UtteranceMutation) AddedFields() []string {
	var fields []string
	if m.addturn_index != nil {
		fields = append(fields, utterance.FieldTurnIndex)
	}
	if m.addoffset_ms != nil {
		fields = append(fields, utterance.FieldOffsetMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UtteranceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case utterance.FieldTurnIndex:
		return m.AddedTurnIndex()
	case utterance.FieldOffsetMs:
		return m.AddedOffsetMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UtteranceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case utterance.FieldTurnIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTurnIndex(v)
		return nil
	case utterance.FieldOffsetMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOffsetMs(v)
		return nil
	}
	return fmt.Errorf("unknown Utterance numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UtteranceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UtteranceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UtteranceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Utterance nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UtteranceMutation) ResetField(name string) error {
	switch name {
	case utterance.FieldDebateID:
		m.ResetDebateID()
		return nil
	case utterance.FieldTurnIndex:
		m.ResetTurnIndex()
		return nil
	case utterance.FieldOffsetMs:
		m.ResetOffsetMs()
		return nil
	case utterance.FieldPhase:
		m.ResetPhase()
		return nil
	case utterance.FieldSpeaker:
		m.ResetSpeaker()
		return nil
	case utterance.FieldContent:
		m.ResetContent()
		return nil
	case utterance.FieldMetadata:
		m.ResetMetadata()
		return nil
	case utterance.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Utterance field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UtteranceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.debate != nil {
		edges = append(edges, utterance.EdgeDebate)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UtteranceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case utterance.EdgeDebate:
		if id := m.debate; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UtteranceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UtteranceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UtteranceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddebate {
		edges = append(edges, utterance.EdgeDebate)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UtteranceMutation) EdgeCleared(name string) bool {
	switch name {
	case utterance.EdgeDebate:
		return m.cleareddebate
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UtteranceMutation) ClearEdge(name string) error {
	switch name {
	case utterance.EdgeDebate:
		m.ClearDebate()
		return nil
	}
	return fmt.Errorf("unknown Utterance unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UtteranceMutation) ResetEdge(name string) error {
	switch name {
	case utterance.EdgeDebate:
		m.ResetDebate()
		return nil
	}
	return fmt.Errorf("unknown Utterance edge %s", name)
}
