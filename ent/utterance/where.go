// Code generated by ent, DO NOT EDIT.

package utterance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/debatelab/agora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Utterance {
	return predicate.Utterance(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Utterance {
	return predicate.Utterance(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Utterance {
	return predicate.Utterance(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Utterance {
	return predicate.Utterance(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Utterance {
	return predicate.Utterance(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Utterance {
	return predicate.Utterance(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Utterance {
	return predicate.Utterance(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Utterance {
	return predicate.Utterance(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Utterance {
	return predicate.Utterance(sql.FieldContainsFold(FieldID, id))
}

// DebateID applies equality check predicate on the "debate_id" field. It's identical to DebateIDEQ.
func DebateID(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldDebateID, v))
}

// TurnIndex applies equality check predicate on the "turn_index" field. It's identical to TurnIndexEQ.
func TurnIndex(v int) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldTurnIndex, v))
}

// OffsetMs applies equality check predicate on the "offset_ms" field. It's identical to OffsetMsEQ.
func OffsetMs(v int64) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldOffsetMs, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldPhase, v))
}

// Speaker applies equality check predicate on the "speaker" field. It's identical to SpeakerEQ.
func Speaker(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldSpeaker, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldContent, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldCreatedAt, v))
}

// DebateIDEQ applies the EQ predicate on the "debate_id" field.
func DebateIDEQ(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldDebateID, v))
}

// DebateIDNEQ applies the NEQ predicate on the "debate_id" field.
func DebateIDNEQ(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldNEQ(FieldDebateID, v))
}

// DebateIDIn applies the In predicate on the "debate_id" field.
func DebateIDIn(vs ...string) predicate.Utterance {
	return predicate.Utterance(sql.FieldIn(FieldDebateID, vs...))
}

// DebateIDNotIn applies the NotIn predicate on the "debate_id" field.
func DebateIDNotIn(vs ...string) predicate.Utterance {
	return predicate.Utterance(sql.FieldNotIn(FieldDebateID, vs...))
}

// DebateIDGT applies the GT predicate on the "debate_id" field.
func DebateIDGT(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldGT(FieldDebateID, v))
}

// DebateIDGTE applies the GTE predicate on the "debate_id" field.
func DebateIDGTE(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldGTE(FieldDebateID, v))
}

// DebateIDLT applies the LT predicate on the "debate_id" field.
func DebateIDLT(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldLT(FieldDebateID, v))
}

// DebateIDLTE applies the LTE predicate on the "debate_id" field.
func DebateIDLTE(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldLTE(FieldDebateID, v))
}

// DebateIDContains applies the Contains predicate on the "debate_id" field.
func DebateIDContains(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldContains(FieldDebateID, v))
}

// DebateIDHasPrefix applies the HasPrefix predicate on the "debate_id" field.
func DebateIDHasPrefix(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldHasPrefix(FieldDebateID, v))
}

// DebateIDHasSuffix applies the HasSuffix predicate on the "debate_id" field.
func DebateIDHasSuffix(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldHasSuffix(FieldDebateID, v))
}

// DebateIDEqualFold applies the EqualFold predicate on the "debate_id" field.
func DebateIDEqualFold(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldEqualFold(FieldDebateID, v))
}

// DebateIDContainsFold applies the ContainsFold predicate on the "debate_id" field.
func DebateIDContainsFold(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldContainsFold(FieldDebateID, v))
}

// TurnIndexEQ applies the EQ predicate on the "turn_index" field.
func TurnIndexEQ(v int) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldTurnIndex, v))
}

// TurnIndexNEQ applies the NEQ predicate on the "turn_index" field.
func TurnIndexNEQ(v int) predicate.Utterance {
	return predicate.Utterance(sql.FieldNEQ(FieldTurnIndex, v))
}

// TurnIndexIn applies the In predicate on the "turn_index" field.
func TurnIndexIn(vs ...int) predicate.Utterance {
	return predicate.Utterance(sql.FieldIn(FieldTurnIndex, vs...))
}

// TurnIndexNotIn applies the NotIn predicate on the "turn_index" field.
func TurnIndexNotIn(vs ...int) predicate.Utterance {
	return predicate.Utterance(sql.FieldNotIn(FieldTurnIndex, vs...))
}

// TurnIndexGT applies the GT predicate on the "turn_index" field.
func TurnIndexGT(v int) predicate.Utterance {
	return predicate.Utterance(sql.FieldGT(FieldTurnIndex, v))
}

// TurnIndexGTE applies the GTE predicate on the "turn_index" field.
func TurnIndexGTE(v int) predicate.Utterance {
	return predicate.Utterance(sql.FieldGTE(FieldTurnIndex, v))
}

// TurnIndexLT applies the LT predicate on the "turn_index" field.
func TurnIndexLT(v int) predicate.Utterance {
	return predicate.Utterance(sql.FieldLT(FieldTurnIndex, v))
}

// TurnIndexLTE applies the LTE predicate on the "turn_index" field.
func TurnIndexLTE(v int) predicate.Utterance {
	return predicate.Utterance(sql.FieldLTE(FieldTurnIndex, v))
}

// OffsetMsEQ applies the EQ predicate on the "offset_ms" field.
func OffsetMsEQ(v int64) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldOffsetMs, v))
}

// OffsetMsNEQ applies the NEQ predicate on the "offset_ms" field.
func OffsetMsNEQ(v int64) predicate.Utterance {
	return predicate.Utterance(sql.FieldNEQ(FieldOffsetMs, v))
}

// OffsetMsIn applies the In predicate on the "offset_ms" field.
func OffsetMsIn(vs ...int64) predicate.Utterance {
	return predicate.Utterance(sql.FieldIn(FieldOffsetMs, vs...))
}

// OffsetMsNotIn applies the NotIn predicate on the "offset_ms" field.
func OffsetMsNotIn(vs ...int64) predicate.Utterance {
	return predicate.Utterance(sql.FieldNotIn(FieldOffsetMs, vs...))
}

// OffsetMsGT applies the GT predicate on the "offset_ms" field.
func OffsetMsGT(v int64) predicate.Utterance {
	return predicate.Utterance(sql.FieldGT(FieldOffsetMs, v))
}

// OffsetMsGTE applies the GTE predicate on the "offset_ms" field.
func OffsetMsGTE(v int64) predicate.Utterance {
	return predicate.Utterance(sql.FieldGTE(FieldOffsetMs, v))
}

// OffsetMsLT applies the LT predicate on the "offset_ms" field.
func OffsetMsLT(v int64) predicate.Utterance {
	return predicate.Utterance(sql.FieldLT(FieldOffsetMs, v))
}

// OffsetMsLTE applies the LTE predicate on the "offset_ms" field.
func OffsetMsLTE(v int64) predicate.Utterance {
	return predicate.Utterance(sql.FieldLTE(FieldOffsetMs, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...string) predicate.Utterance {
	return predicate.Utterance(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...string) predicate.Utterance {
	return predicate.Utterance(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldLTE(FieldPhase, v))
}

// PhaseContains applies the Contains predicate on the "phase" field.
func PhaseContains(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldContains(FieldPhase, v))
}

// PhaseHasPrefix applies the HasPrefix predicate on the "phase" field.
func PhaseHasPrefix(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldHasPrefix(FieldPhase, v))
}

// PhaseHasSuffix applies the HasSuffix predicate on the "phase" field.
func PhaseHasSuffix(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldHasSuffix(FieldPhase, v))
}

// PhaseEqualFold applies the EqualFold predicate on the "phase" field.
func PhaseEqualFold(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldEqualFold(FieldPhase, v))
}

// PhaseContainsFold applies the ContainsFold predicate on the "phase" field.
func PhaseContainsFold(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldContainsFold(FieldPhase, v))
}

// SpeakerEQ applies the EQ predicate on the "speaker" field.
func SpeakerEQ(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldSpeaker, v))
}

// SpeakerNEQ applies the NEQ predicate on the "speaker" field.
func SpeakerNEQ(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldNEQ(FieldSpeaker, v))
}

// SpeakerIn applies the In predicate on the "speaker" field.
func SpeakerIn(vs ...string) predicate.Utterance {
	return predicate.Utterance(sql.FieldIn(FieldSpeaker, vs...))
}

// SpeakerNotIn applies the NotIn predicate on the "speaker" field.
func SpeakerNotIn(vs ...string) predicate.Utterance {
	return predicate.Utterance(sql.FieldNotIn(FieldSpeaker, vs...))
}

// SpeakerGT applies the GT predicate on the "speaker" field.
func SpeakerGT(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldGT(FieldSpeaker, v))
}

// SpeakerGTE applies the GTE predicate on the "speaker" field.
func SpeakerGTE(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldGTE(FieldSpeaker, v))
}

// SpeakerLT applies the LT predicate on the "speaker" field.
func SpeakerLT(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldLT(FieldSpeaker, v))
}

// SpeakerLTE applies the LTE predicate on the "speaker" field.
func SpeakerLTE(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldLTE(FieldSpeaker, v))
}

// SpeakerContains applies the Contains predicate on the "speaker" field.
func SpeakerContains(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldContains(FieldSpeaker, v))
}

// SpeakerHasPrefix applies the HasPrefix predicate on the "speaker" field.
func SpeakerHasPrefix(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldHasPrefix(FieldSpeaker, v))
}

// SpeakerHasSuffix applies the HasSuffix predicate on the "speaker" field.
func SpeakerHasSuffix(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldHasSuffix(FieldSpeaker, v))
}

// SpeakerEqualFold applies the EqualFold predicate on the "speaker" field.
func SpeakerEqualFold(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldEqualFold(FieldSpeaker, v))
}

// SpeakerContainsFold applies the ContainsFold predicate on the "speaker" field.
func SpeakerContainsFold(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldContainsFold(FieldSpeaker, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Utterance {
	return predicate.Utterance(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Utterance {
	return predicate.Utterance(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Utterance {
	return predicate.Utterance(sql.FieldContainsFold(FieldContent, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Utterance {
	return predicate.Utterance(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Utterance {
	return predicate.Utterance(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Utterance {
	return predicate.Utterance(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Utterance {
	return predicate.Utterance(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Utterance {
	return predicate.Utterance(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Utterance {
	return predicate.Utterance(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Utterance {
	return predicate.Utterance(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Utterance {
	return predicate.Utterance(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDebate applies the HasEdge predicate on the "debate" edge.
func HasDebate() predicate.Utterance {
	return predicate.Utterance(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DebateTable, DebateColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDebateWith applies the HasEdge predicate on the "debate" edge with a given conditions (other predicates).
func HasDebateWith(preds ...predicate.Debate) predicate.Utterance {
	return predicate.Utterance(func(s *sql.Selector) {
		step := newDebateStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Utterance) predicate.Utterance {
	return predicate.Utterance(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Utterance) predicate.Utterance {
	return predicate.Utterance(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Utterance) predicate.Utterance {
	return predicate.Utterance(sql.NotPredicates(p))
}
