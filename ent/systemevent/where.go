// Code generated by ent, DO NOT EDIT.

package systemevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/debatelab/agora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldContainsFold(FieldID, id))
}

// DebateID applies equality check predicate on the "debate_id" field. It's identical to DebateIDEQ.
func DebateID(v string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldEQ(FieldDebateID, v))
}

// Channel applies equality check predicate on the "channel" field. It's identical to ChannelEQ.
func Channel(v string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldEQ(FieldChannel, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// DebateIDEQ applies the EQ predicate on the "debate_id" field.
func DebateIDEQ(v string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldEQ(FieldDebateID, v))
}

// DebateIDNEQ applies the NEQ predicate on the "debate_id" field.
func DebateIDNEQ(v string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldNEQ(FieldDebateID, v))
}

// DebateIDIn applies the In predicate on the "debate_id" field.
func DebateIDIn(vs ...string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldIn(FieldDebateID, vs...))
}

// DebateIDNotIn applies the NotIn predicate on the "debate_id" field.
func DebateIDNotIn(vs ...string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldNotIn(FieldDebateID, vs...))
}

// DebateIDGT applies the GT predicate on the "debate_id" field.
func DebateIDGT(v string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldGT(FieldDebateID, v))
}

// DebateIDGTE applies the GTE predicate on the "debate_id" field.
func DebateIDGTE(v string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldGTE(FieldDebateID, v))
}

// DebateIDLT applies the LT predicate on the "debate_id" field.
func DebateIDLT(v string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldLT(FieldDebateID, v))
}

// DebateIDLTE applies the LTE predicate on the "debate_id" field.
func DebateIDLTE(v string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldLTE(FieldDebateID, v))
}

// DebateIDContains applies the Contains predicate on the "debate_id" field.
func DebateIDContains(v string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldContains(FieldDebateID, v))
}

// DebateIDHasPrefix applies the HasPrefix predicate on the "debate_id" field.
func DebateIDHasPrefix(v string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldHasPrefix(FieldDebateID, v))
}

// DebateIDHasSuffix applies the HasSuffix predicate on the "debate_id" field.
func DebateIDHasSuffix(v string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldHasSuffix(FieldDebateID, v))
}

// DebateIDEqualFold applies the EqualFold predicate on the "debate_id" field.
func DebateIDEqualFold(v string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldEqualFold(FieldDebateID, v))
}

// DebateIDContainsFold applies the ContainsFold predicate on the "debate_id" field.
func DebateIDContainsFold(v string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldContainsFold(FieldDebateID, v))
}

// ChannelEQ applies the EQ predicate on the "channel" field.
func ChannelEQ(v string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldEQ(FieldChannel, v))
}

// ChannelNEQ applies the NEQ predicate on the "channel" field.
func ChannelNEQ(v string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldNEQ(FieldChannel, v))
}

// ChannelIn applies the In predicate on the "channel" field.
func ChannelIn(vs ...string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldIn(FieldChannel, vs...))
}

// ChannelNotIn applies the NotIn predicate on the "channel" field.
func ChannelNotIn(vs ...string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldNotIn(FieldChannel, vs...))
}

// ChannelGT applies the GT predicate on the "channel" field.
func ChannelGT(v string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldGT(FieldChannel, v))
}

// ChannelGTE applies the GTE predicate on the "channel" field.
func ChannelGTE(v string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldGTE(FieldChannel, v))
}

// ChannelLT applies the LT predicate on the "channel" field.
func ChannelLT(v string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldLT(FieldChannel, v))
}

// ChannelLTE applies the LTE predicate on the "channel" field.
func ChannelLTE(v string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldLTE(FieldChannel, v))
}

// ChannelContains applies the Contains predicate on the "channel" field.
func ChannelContains(v string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldContains(FieldChannel, v))
}

// ChannelHasPrefix applies the HasPrefix predicate on the "channel" field.
func ChannelHasPrefix(v string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldHasPrefix(FieldChannel, v))
}

// ChannelHasSuffix applies the HasSuffix predicate on the "channel" field.
func ChannelHasSuffix(v string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldHasSuffix(FieldChannel, v))
}

// ChannelEqualFold applies the EqualFold predicate on the "channel" field.
func ChannelEqualFold(v string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldEqualFold(FieldChannel, v))
}

// ChannelContainsFold applies the ContainsFold predicate on the "channel" field.
func ChannelContainsFold(v string) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldContainsFold(FieldChannel, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldNotNull(FieldPayload))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SystemEvent {
	return predicate.SystemEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDebate applies the HasEdge predicate on the "debate" edge.
func HasDebate() predicate.SystemEvent {
	return predicate.SystemEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DebateTable, DebateColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDebateWith applies the HasEdge predicate on the "debate" edge with a given conditions (other predicates).
func HasDebateWith(preds ...predicate.Debate) predicate.SystemEvent {
	return predicate.SystemEvent(func(s *sql.Selector) {
		step := newDebateStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SystemEvent) predicate.SystemEvent {
	return predicate.SystemEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SystemEvent) predicate.SystemEvent {
	return predicate.SystemEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SystemEvent) predicate.SystemEvent {
	return predicate.SystemEvent(sql.NotPredicates(p))
}
