// Code generated by ent, DO NOT EDIT.

package debate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/debatelab/agora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Debate {
	return predicate.Debate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Debate {
	return predicate.Debate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Debate {
	return predicate.Debate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Debate {
	return predicate.Debate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Debate {
	return predicate.Debate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Debate {
	return predicate.Debate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Debate {
	return predicate.Debate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Debate {
	return predicate.Debate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Debate {
	return predicate.Debate(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Debate {
	return predicate.Debate(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Debate {
	return predicate.Debate(sql.FieldContainsFold(FieldID, id))
}

// Proposition applies equality check predicate on the "proposition" field. It's identical to PropositionEQ.
func Proposition(v string) predicate.Debate {
	return predicate.Debate(sql.FieldEQ(FieldProposition, v))
}

// Context applies equality check predicate on the "context" field. It's identical to ContextEQ.
func Context(v string) predicate.Debate {
	return predicate.Debate(sql.FieldEQ(FieldContext, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v string) predicate.Debate {
	return predicate.Debate(sql.FieldEQ(FieldPhase, v))
}

// PreviousPhase applies equality check predicate on the "previous_phase" field. It's identical to PreviousPhaseEQ.
func PreviousPhase(v string) predicate.Debate {
	return predicate.Debate(sql.FieldEQ(FieldPreviousPhase, v))
}

// CurrentSpeaker applies equality check predicate on the "current_speaker" field. It's identical to CurrentSpeakerEQ.
func CurrentSpeaker(v string) predicate.Debate {
	return predicate.Debate(sql.FieldEQ(FieldCurrentSpeaker, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldEQ(FieldCompletedAt, v))
}

// PausedMs applies equality check predicate on the "paused_ms" field. It's identical to PausedMsEQ.
func PausedMs(v int64) predicate.Debate {
	return predicate.Debate(sql.FieldEQ(FieldPausedMs, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Debate {
	return predicate.Debate(sql.FieldEQ(FieldErrorMessage, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Debate {
	return predicate.Debate(sql.FieldEQ(FieldPodID, v))
}

// LastInteractionAt applies equality check predicate on the "last_interaction_at" field. It's identical to LastInteractionAtEQ.
func LastInteractionAt(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldEQ(FieldLastInteractionAt, v))
}

// PropositionEQ applies the EQ predicate on the "proposition" field.
func PropositionEQ(v string) predicate.Debate {
	return predicate.Debate(sql.FieldEQ(FieldProposition, v))
}

// PropositionNEQ applies the NEQ predicate on the "proposition" field.
func PropositionNEQ(v string) predicate.Debate {
	return predicate.Debate(sql.FieldNEQ(FieldProposition, v))
}

// PropositionIn applies the In predicate on the "proposition" field.
func PropositionIn(vs ...string) predicate.Debate {
	return predicate.Debate(sql.FieldIn(FieldProposition, vs...))
}

// PropositionNotIn applies the NotIn predicate on the "proposition" field.
func PropositionNotIn(vs ...string) predicate.Debate {
	return predicate.Debate(sql.FieldNotIn(FieldProposition, vs...))
}

// PropositionGT applies the GT predicate on the "proposition" field.
func PropositionGT(v string) predicate.Debate {
	return predicate.Debate(sql.FieldGT(FieldProposition, v))
}

// PropositionGTE applies the GTE predicate on the "proposition" field.
func PropositionGTE(v string) predicate.Debate {
	return predicate.Debate(sql.FieldGTE(FieldProposition, v))
}

// PropositionLT applies the LT predicate on the "proposition" field.
func PropositionLT(v string) predicate.Debate {
	return predicate.Debate(sql.FieldLT(FieldProposition, v))
}

// PropositionLTE applies the LTE predicate on the "proposition" field.
func PropositionLTE(v string) predicate.Debate {
	return predicate.Debate(sql.FieldLTE(FieldProposition, v))
}

// PropositionContains applies the Contains predicate on the "proposition" field.
func PropositionContains(v string) predicate.Debate {
	return predicate.Debate(sql.FieldContains(FieldProposition, v))
}

// PropositionHasPrefix applies the HasPrefix predicate on the "proposition" field.
func PropositionHasPrefix(v string) predicate.Debate {
	return predicate.Debate(sql.FieldHasPrefix(FieldProposition, v))
}

// PropositionHasSuffix applies the HasSuffix predicate on the "proposition" field.
func PropositionHasSuffix(v string) predicate.Debate {
	return predicate.Debate(sql.FieldHasSuffix(FieldProposition, v))
}

// PropositionEqualFold applies the EqualFold predicate on the "proposition" field.
func PropositionEqualFold(v string) predicate.Debate {
	return predicate.Debate(sql.FieldEqualFold(FieldProposition, v))
}

// PropositionContainsFold applies the ContainsFold predicate on the "proposition" field.
func PropositionContainsFold(v string) predicate.Debate {
	return predicate.Debate(sql.FieldContainsFold(FieldProposition, v))
}

// ContextEQ applies the EQ predicate on the "context" field.
func ContextEQ(v string) predicate.Debate {
	return predicate.Debate(sql.FieldEQ(FieldContext, v))
}

// ContextNEQ applies the NEQ predicate on the "context" field.
func ContextNEQ(v string) predicate.Debate {
	return predicate.Debate(sql.FieldNEQ(FieldContext, v))
}

// ContextIn applies the In predicate on the "context" field.
func ContextIn(vs ...string) predicate.Debate {
	return predicate.Debate(sql.FieldIn(FieldContext, vs...))
}

// ContextNotIn applies the NotIn predicate on the "context" field.
func ContextNotIn(vs ...string) predicate.Debate {
	return predicate.Debate(sql.FieldNotIn(FieldContext, vs...))
}

// ContextGT applies the GT predicate on the "context" field.
func ContextGT(v string) predicate.Debate {
	return predicate.Debate(sql.FieldGT(FieldContext, v))
}

// ContextGTE applies the GTE predicate on the "context" field.
func ContextGTE(v string) predicate.Debate {
	return predicate.Debate(sql.FieldGTE(FieldContext, v))
}

// ContextLT applies the LT predicate on the "context" field.
func ContextLT(v string) predicate.Debate {
	return predicate.Debate(sql.FieldLT(FieldContext, v))
}

// ContextLTE applies the LTE predicate on the "context" field.
func ContextLTE(v string) predicate.Debate {
	return predicate.Debate(sql.FieldLTE(FieldContext, v))
}

// ContextContains applies the Contains predicate on the "context" field.
func ContextContains(v string) predicate.Debate {
	return predicate.Debate(sql.FieldContains(FieldContext, v))
}

// ContextHasPrefix applies the HasPrefix predicate on the "context" field.
func ContextHasPrefix(v string) predicate.Debate {
	return predicate.Debate(sql.FieldHasPrefix(FieldContext, v))
}

// ContextHasSuffix applies the HasSuffix predicate on the "context" field.
func ContextHasSuffix(v string) predicate.Debate {
	return predicate.Debate(sql.FieldHasSuffix(FieldContext, v))
}

// ContextIsNil applies the IsNil predicate on the "context" field.
func ContextIsNil() predicate.Debate {
	return predicate.Debate(sql.FieldIsNull(FieldContext))
}

// ContextNotNil applies the NotNil predicate on the "context" field.
func ContextNotNil() predicate.Debate {
	return predicate.Debate(sql.FieldNotNull(FieldContext))
}

// ContextEqualFold applies the EqualFold predicate on the "context" field.
func ContextEqualFold(v string) predicate.Debate {
	return predicate.Debate(sql.FieldEqualFold(FieldContext, v))
}

// ContextContainsFold applies the ContainsFold predicate on the "context" field.
func ContextContainsFold(v string) predicate.Debate {
	return predicate.Debate(sql.FieldContainsFold(FieldContext, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Debate {
	return predicate.Debate(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Debate {
	return predicate.Debate(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Debate {
	return predicate.Debate(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Debate {
	return predicate.Debate(sql.FieldNotIn(FieldStatus, vs...))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v string) predicate.Debate {
	return predicate.Debate(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v string) predicate.Debate {
	return predicate.Debate(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...string) predicate.Debate {
	return predicate.Debate(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...string) predicate.Debate {
	return predicate.Debate(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v string) predicate.Debate {
	return predicate.Debate(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v string) predicate.Debate {
	return predicate.Debate(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v string) predicate.Debate {
	return predicate.Debate(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v string) predicate.Debate {
	return predicate.Debate(sql.FieldLTE(FieldPhase, v))
}

// PhaseContains applies the Contains predicate on the "phase" field.
func PhaseContains(v string) predicate.Debate {
	return predicate.Debate(sql.FieldContains(FieldPhase, v))
}

// PhaseHasPrefix applies the HasPrefix predicate on the "phase" field.
func PhaseHasPrefix(v string) predicate.Debate {
	return predicate.Debate(sql.FieldHasPrefix(FieldPhase, v))
}

// PhaseHasSuffix applies the HasSuffix predicate on the "phase" field.
func PhaseHasSuffix(v string) predicate.Debate {
	return predicate.Debate(sql.FieldHasSuffix(FieldPhase, v))
}

// PhaseEqualFold applies the EqualFold predicate on the "phase" field.
func PhaseEqualFold(v string) predicate.Debate {
	return predicate.Debate(sql.FieldEqualFold(FieldPhase, v))
}

// PhaseContainsFold applies the ContainsFold predicate on the "phase" field.
func PhaseContainsFold(v string) predicate.Debate {
	return predicate.Debate(sql.FieldContainsFold(FieldPhase, v))
}

// PreviousPhaseEQ applies the EQ predicate on the "previous_phase" field.
func PreviousPhaseEQ(v string) predicate.Debate {
	return predicate.Debate(sql.FieldEQ(FieldPreviousPhase, v))
}

// PreviousPhaseNEQ applies the NEQ predicate on the "previous_phase" field.
func PreviousPhaseNEQ(v string) predicate.Debate {
	return predicate.Debate(sql.FieldNEQ(FieldPreviousPhase, v))
}

// PreviousPhaseIn applies the In predicate on the "previous_phase" field.
func PreviousPhaseIn(vs ...string) predicate.Debate {
	return predicate.Debate(sql.FieldIn(FieldPreviousPhase, vs...))
}

// PreviousPhaseNotIn applies the NotIn predicate on the "previous_phase" field.
func PreviousPhaseNotIn(vs ...string) predicate.Debate {
	return predicate.Debate(sql.FieldNotIn(FieldPreviousPhase, vs...))
}

// PreviousPhaseGT applies the GT predicate on the "previous_phase" field.
func PreviousPhaseGT(v string) predicate.Debate {
	return predicate.Debate(sql.FieldGT(FieldPreviousPhase, v))
}

// PreviousPhaseGTE applies the GTE predicate on the "previous_phase" field.
func PreviousPhaseGTE(v string) predicate.Debate {
	return predicate.Debate(sql.FieldGTE(FieldPreviousPhase, v))
}

// PreviousPhaseLT applies the LT predicate on the "previous_phase" field.
func PreviousPhaseLT(v string) predicate.Debate {
	return predicate.Debate(sql.FieldLT(FieldPreviousPhase, v))
}

// PreviousPhaseLTE applies the LTE predicate on the "previous_phase" field.
func PreviousPhaseLTE(v string) predicate.Debate {
	return predicate.Debate(sql.FieldLTE(FieldPreviousPhase, v))
}

// PreviousPhaseContains applies the Contains predicate on the "previous_phase" field.
func PreviousPhaseContains(v string) predicate.Debate {
	return predicate.Debate(sql.FieldContains(FieldPreviousPhase, v))
}

// PreviousPhaseHasPrefix applies the HasPrefix predicate on the "previous_phase" field.
func PreviousPhaseHasPrefix(v string) predicate.Debate {
	return predicate.Debate(sql.FieldHasPrefix(FieldPreviousPhase, v))
}

// PreviousPhaseHasSuffix applies the HasSuffix predicate on the "previous_phase" field.
func PreviousPhaseHasSuffix(v string) predicate.Debate {
	return predicate.Debate(sql.FieldHasSuffix(FieldPreviousPhase, v))
}

// PreviousPhaseIsNil applies the IsNil predicate on the "previous_phase" field.
func PreviousPhaseIsNil() predicate.Debate {
	return predicate.Debate(sql.FieldIsNull(FieldPreviousPhase))
}

// PreviousPhaseNotNil applies the NotNil predicate on the "previous_phase" field.
func PreviousPhaseNotNil() predicate.Debate {
	return predicate.Debate(sql.FieldNotNull(FieldPreviousPhase))
}

// PreviousPhaseEqualFold applies the EqualFold predicate on the "previous_phase" field.
func PreviousPhaseEqualFold(v string) predicate.Debate {
	return predicate.Debate(sql.FieldEqualFold(FieldPreviousPhase, v))
}

// PreviousPhaseContainsFold applies the ContainsFold predicate on the "previous_phase" field.
func PreviousPhaseContainsFold(v string) predicate.Debate {
	return predicate.Debate(sql.FieldContainsFold(FieldPreviousPhase, v))
}

// CurrentSpeakerEQ applies the EQ predicate on the "current_speaker" field.
func CurrentSpeakerEQ(v string) predicate.Debate {
	return predicate.Debate(sql.FieldEQ(FieldCurrentSpeaker, v))
}

// CurrentSpeakerNEQ applies the NEQ predicate on the "current_speaker" field.
func CurrentSpeakerNEQ(v string) predicate.Debate {
	return predicate.Debate(sql.FieldNEQ(FieldCurrentSpeaker, v))
}

// CurrentSpeakerIn applies the In predicate on the "current_speaker" field.
func CurrentSpeakerIn(vs ...string) predicate.Debate {
	return predicate.Debate(sql.FieldIn(FieldCurrentSpeaker, vs...))
}

// CurrentSpeakerNotIn applies the NotIn predicate on the "current_speaker" field.
func CurrentSpeakerNotIn(vs ...string) predicate.Debate {
	return predicate.Debate(sql.FieldNotIn(FieldCurrentSpeaker, vs...))
}

// CurrentSpeakerGT applies the GT predicate on the "current_speaker" field.
func CurrentSpeakerGT(v string) predicate.Debate {
	return predicate.Debate(sql.FieldGT(FieldCurrentSpeaker, v))
}

// CurrentSpeakerGTE applies the GTE predicate on the "current_speaker" field.
func CurrentSpeakerGTE(v string) predicate.Debate {
	return predicate.Debate(sql.FieldGTE(FieldCurrentSpeaker, v))
}

// CurrentSpeakerLT applies the LT predicate on the "current_speaker" field.
func CurrentSpeakerLT(v string) predicate.Debate {
	return predicate.Debate(sql.FieldLT(FieldCurrentSpeaker, v))
}

// CurrentSpeakerLTE applies the LTE predicate on the "current_speaker" field.
func CurrentSpeakerLTE(v string) predicate.Debate {
	return predicate.Debate(sql.FieldLTE(FieldCurrentSpeaker, v))
}

// CurrentSpeakerContains applies the Contains predicate on the "current_speaker" field.
func CurrentSpeakerContains(v string) predicate.Debate {
	return predicate.Debate(sql.FieldContains(FieldCurrentSpeaker, v))
}

// CurrentSpeakerHasPrefix applies the HasPrefix predicate on the "current_speaker" field.
func CurrentSpeakerHasPrefix(v string) predicate.Debate {
	return predicate.Debate(sql.FieldHasPrefix(FieldCurrentSpeaker, v))
}

// CurrentSpeakerHasSuffix applies the HasSuffix predicate on the "current_speaker" field.
func CurrentSpeakerHasSuffix(v string) predicate.Debate {
	return predicate.Debate(sql.FieldHasSuffix(FieldCurrentSpeaker, v))
}

// CurrentSpeakerIsNil applies the IsNil predicate on the "current_speaker" field.
func CurrentSpeakerIsNil() predicate.Debate {
	return predicate.Debate(sql.FieldIsNull(FieldCurrentSpeaker))
}

// CurrentSpeakerNotNil applies the NotNil predicate on the "current_speaker" field.
func CurrentSpeakerNotNil() predicate.Debate {
	return predicate.Debate(sql.FieldNotNull(FieldCurrentSpeaker))
}

// CurrentSpeakerEqualFold applies the EqualFold predicate on the "current_speaker" field.
func CurrentSpeakerEqualFold(v string) predicate.Debate {
	return predicate.Debate(sql.FieldEqualFold(FieldCurrentSpeaker, v))
}

// CurrentSpeakerContainsFold applies the ContainsFold predicate on the "current_speaker" field.
func CurrentSpeakerContainsFold(v string) predicate.Debate {
	return predicate.Debate(sql.FieldContainsFold(FieldCurrentSpeaker, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Debate {
	return predicate.Debate(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Debate {
	return predicate.Debate(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Debate {
	return predicate.Debate(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Debate {
	return predicate.Debate(sql.FieldNotNull(FieldCompletedAt))
}

// PausedMsEQ applies the EQ predicate on the "paused_ms" field.
func PausedMsEQ(v int64) predicate.Debate {
	return predicate.Debate(sql.FieldEQ(FieldPausedMs, v))
}

// PausedMsNEQ applies the NEQ predicate on the "paused_ms" field.
func PausedMsNEQ(v int64) predicate.Debate {
	return predicate.Debate(sql.FieldNEQ(FieldPausedMs, v))
}

// PausedMsIn applies the In predicate on the "paused_ms" field.
func PausedMsIn(vs ...int64) predicate.Debate {
	return predicate.Debate(sql.FieldIn(FieldPausedMs, vs...))
}

// PausedMsNotIn applies the NotIn predicate on the "paused_ms" field.
func PausedMsNotIn(vs ...int64) predicate.Debate {
	return predicate.Debate(sql.FieldNotIn(FieldPausedMs, vs...))
}

// PausedMsGT applies the GT predicate on the "paused_ms" field.
func PausedMsGT(v int64) predicate.Debate {
	return predicate.Debate(sql.FieldGT(FieldPausedMs, v))
}

// PausedMsGTE applies the GTE predicate on the "paused_ms" field.
func PausedMsGTE(v int64) predicate.Debate {
	return predicate.Debate(sql.FieldGTE(FieldPausedMs, v))
}

// PausedMsLT applies the LT predicate on the "paused_ms" field.
func PausedMsLT(v int64) predicate.Debate {
	return predicate.Debate(sql.FieldLT(FieldPausedMs, v))
}

// PausedMsLTE applies the LTE predicate on the "paused_ms" field.
func PausedMsLTE(v int64) predicate.Debate {
	return predicate.Debate(sql.FieldLTE(FieldPausedMs, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Debate {
	return predicate.Debate(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Debate {
	return predicate.Debate(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Debate {
	return predicate.Debate(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Debate {
	return predicate.Debate(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Debate {
	return predicate.Debate(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Debate {
	return predicate.Debate(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Debate {
	return predicate.Debate(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Debate {
	return predicate.Debate(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Debate {
	return predicate.Debate(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Debate {
	return predicate.Debate(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Debate {
	return predicate.Debate(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Debate {
	return predicate.Debate(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Debate {
	return predicate.Debate(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Debate {
	return predicate.Debate(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Debate {
	return predicate.Debate(sql.FieldContainsFold(FieldErrorMessage, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Debate {
	return predicate.Debate(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Debate {
	return predicate.Debate(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Debate {
	return predicate.Debate(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Debate {
	return predicate.Debate(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Debate {
	return predicate.Debate(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Debate {
	return predicate.Debate(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Debate {
	return predicate.Debate(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Debate {
	return predicate.Debate(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Debate {
	return predicate.Debate(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Debate {
	return predicate.Debate(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Debate {
	return predicate.Debate(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Debate {
	return predicate.Debate(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Debate {
	return predicate.Debate(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Debate {
	return predicate.Debate(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Debate {
	return predicate.Debate(sql.FieldContainsFold(FieldPodID, v))
}

// LastInteractionAtEQ applies the EQ predicate on the "last_interaction_at" field.
func LastInteractionAtEQ(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtNEQ applies the NEQ predicate on the "last_interaction_at" field.
func LastInteractionAtNEQ(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldNEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtIn applies the In predicate on the "last_interaction_at" field.
func LastInteractionAtIn(vs ...time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtNotIn applies the NotIn predicate on the "last_interaction_at" field.
func LastInteractionAtNotIn(vs ...time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldNotIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtGT applies the GT predicate on the "last_interaction_at" field.
func LastInteractionAtGT(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldGT(FieldLastInteractionAt, v))
}

// LastInteractionAtGTE applies the GTE predicate on the "last_interaction_at" field.
func LastInteractionAtGTE(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldGTE(FieldLastInteractionAt, v))
}

// LastInteractionAtLT applies the LT predicate on the "last_interaction_at" field.
func LastInteractionAtLT(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldLT(FieldLastInteractionAt, v))
}

// LastInteractionAtLTE applies the LTE predicate on the "last_interaction_at" field.
func LastInteractionAtLTE(v time.Time) predicate.Debate {
	return predicate.Debate(sql.FieldLTE(FieldLastInteractionAt, v))
}

// LastInteractionAtIsNil applies the IsNil predicate on the "last_interaction_at" field.
func LastInteractionAtIsNil() predicate.Debate {
	return predicate.Debate(sql.FieldIsNull(FieldLastInteractionAt))
}

// LastInteractionAtNotNil applies the NotNil predicate on the "last_interaction_at" field.
func LastInteractionAtNotNil() predicate.Debate {
	return predicate.Debate(sql.FieldNotNull(FieldLastInteractionAt))
}

// HasUtterances applies the HasEdge predicate on the "utterances" edge.
func HasUtterances() predicate.Debate {
	return predicate.Debate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, UtterancesTable, UtterancesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUtterancesWith applies the HasEdge predicate on the "utterances" edge with a given conditions (other predicates).
func HasUtterancesWith(preds ...predicate.Utterance) predicate.Debate {
	return predicate.Debate(func(s *sql.Selector) {
		step := newUtterancesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInterventions applies the HasEdge predicate on the "interventions" edge.
func HasInterventions() predicate.Debate {
	return predicate.Debate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InterventionsTable, InterventionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInterventionsWith applies the HasEdge predicate on the "interventions" edge with a given conditions (other predicates).
func HasInterventionsWith(preds ...predicate.Intervention) predicate.Debate {
	return predicate.Debate(func(s *sql.Selector) {
		step := newInterventionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSystemEvents applies the HasEdge predicate on the "system_events" edge.
func HasSystemEvents() predicate.Debate {
	return predicate.Debate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SystemEventsTable, SystemEventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSystemEventsWith applies the HasEdge predicate on the "system_events" edge with a given conditions (other predicates).
func HasSystemEventsWith(preds ...predicate.SystemEvent) predicate.Debate {
	return predicate.Debate(func(s *sql.Selector) {
		step := newSystemEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Debate) predicate.Debate {
	return predicate.Debate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Debate) predicate.Debate {
	return predicate.Debate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Debate) predicate.Debate {
	return predicate.Debate(sql.NotPredicates(p))
}
