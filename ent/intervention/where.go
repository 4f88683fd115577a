// Code generated by ent, DO NOT EDIT.

package intervention

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/debatelab/agora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Intervention {
	return predicate.Intervention(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Intervention {
	return predicate.Intervention(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Intervention {
	return predicate.Intervention(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Intervention {
	return predicate.Intervention(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Intervention {
	return predicate.Intervention(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Intervention {
	return predicate.Intervention(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Intervention {
	return predicate.Intervention(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Intervention {
	return predicate.Intervention(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Intervention {
	return predicate.Intervention(sql.FieldContainsFold(FieldID, id))
}

// DebateID applies equality check predicate on the "debate_id" field. It's identical to DebateIDEQ.
func DebateID(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldDebateID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldContent, v))
}

// DirectedTo applies equality check predicate on the "directed_to" field. It's identical to DirectedToEQ.
func DirectedTo(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldDirectedTo, v))
}

// Response applies equality check predicate on the "response" field. It's identical to ResponseEQ.
func Response(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldResponse, v))
}

// ClientKey applies equality check predicate on the "client_key" field. It's identical to ClientKeyEQ.
func ClientKey(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldClientKey, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldCreatedAt, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldProcessedAt, v))
}

// DebateIDEQ applies the EQ predicate on the "debate_id" field.
func DebateIDEQ(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldDebateID, v))
}

// DebateIDNEQ applies the NEQ predicate on the "debate_id" field.
func DebateIDNEQ(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldNEQ(FieldDebateID, v))
}

// DebateIDIn applies the In predicate on the "debate_id" field.
func DebateIDIn(vs ...string) predicate.Intervention {
	return predicate.Intervention(sql.FieldIn(FieldDebateID, vs...))
}

// DebateIDNotIn applies the NotIn predicate on the "debate_id" field.
func DebateIDNotIn(vs ...string) predicate.Intervention {
	return predicate.Intervention(sql.FieldNotIn(FieldDebateID, vs...))
}

// DebateIDGT applies the GT predicate on the "debate_id" field.
func DebateIDGT(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldGT(FieldDebateID, v))
}

// DebateIDGTE applies the GTE predicate on the "debate_id" field.
func DebateIDGTE(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldGTE(FieldDebateID, v))
}

// DebateIDLT applies the LT predicate on the "debate_id" field.
func DebateIDLT(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldLT(FieldDebateID, v))
}

// DebateIDLTE applies the LTE predicate on the "debate_id" field.
func DebateIDLTE(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldLTE(FieldDebateID, v))
}

// DebateIDContains applies the Contains predicate on the "debate_id" field.
func DebateIDContains(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldContains(FieldDebateID, v))
}

// DebateIDHasPrefix applies the HasPrefix predicate on the "debate_id" field.
func DebateIDHasPrefix(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldHasPrefix(FieldDebateID, v))
}

// DebateIDHasSuffix applies the HasSuffix predicate on the "debate_id" field.
func DebateIDHasSuffix(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldHasSuffix(FieldDebateID, v))
}

// DebateIDEqualFold applies the EqualFold predicate on the "debate_id" field.
func DebateIDEqualFold(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldEqualFold(FieldDebateID, v))
}

// DebateIDContainsFold applies the ContainsFold predicate on the "debate_id" field.
func DebateIDContainsFold(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldContainsFold(FieldDebateID, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Intervention {
	return predicate.Intervention(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Intervention {
	return predicate.Intervention(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Intervention {
	return predicate.Intervention(sql.FieldNotIn(FieldType, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Intervention {
	return predicate.Intervention(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Intervention {
	return predicate.Intervention(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldHasSuffix(FieldContent, v))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.Intervention {
	return predicate.Intervention(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.Intervention {
	return predicate.Intervention(sql.FieldNotNull(FieldContent))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldContainsFold(FieldContent, v))
}

// DirectedToEQ applies the EQ predicate on the "directed_to" field.
func DirectedToEQ(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldDirectedTo, v))
}

// DirectedToNEQ applies the NEQ predicate on the "directed_to" field.
func DirectedToNEQ(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldNEQ(FieldDirectedTo, v))
}

// DirectedToIn applies the In predicate on the "directed_to" field.
func DirectedToIn(vs ...string) predicate.Intervention {
	return predicate.Intervention(sql.FieldIn(FieldDirectedTo, vs...))
}

// DirectedToNotIn applies the NotIn predicate on the "directed_to" field.
func DirectedToNotIn(vs ...string) predicate.Intervention {
	return predicate.Intervention(sql.FieldNotIn(FieldDirectedTo, vs...))
}

// DirectedToGT applies the GT predicate on the "directed_to" field.
func DirectedToGT(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldGT(FieldDirectedTo, v))
}

// DirectedToGTE applies the GTE predicate on the "directed_to" field.
func DirectedToGTE(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldGTE(FieldDirectedTo, v))
}

// DirectedToLT applies the LT predicate on the "directed_to" field.
func DirectedToLT(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldLT(FieldDirectedTo, v))
}

// DirectedToLTE applies the LTE predicate on the "directed_to" field.
func DirectedToLTE(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldLTE(FieldDirectedTo, v))
}

// DirectedToContains applies the Contains predicate on the "directed_to" field.
func DirectedToContains(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldContains(FieldDirectedTo, v))
}

// DirectedToHasPrefix applies the HasPrefix predicate on the "directed_to" field.
func DirectedToHasPrefix(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldHasPrefix(FieldDirectedTo, v))
}

// DirectedToHasSuffix applies the HasSuffix predicate on the "directed_to" field.
func DirectedToHasSuffix(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldHasSuffix(FieldDirectedTo, v))
}

// DirectedToIsNil applies the IsNil predicate on the "directed_to" field.
func DirectedToIsNil() predicate.Intervention {
	return predicate.Intervention(sql.FieldIsNull(FieldDirectedTo))
}

// DirectedToNotNil applies the NotNil predicate on the "directed_to" field.
func DirectedToNotNil() predicate.Intervention {
	return predicate.Intervention(sql.FieldNotNull(FieldDirectedTo))
}

// DirectedToEqualFold applies the EqualFold predicate on the "directed_to" field.
func DirectedToEqualFold(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldEqualFold(FieldDirectedTo, v))
}

// DirectedToContainsFold applies the ContainsFold predicate on the "directed_to" field.
func DirectedToContainsFold(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldContainsFold(FieldDirectedTo, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Intervention {
	return predicate.Intervention(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Intervention {
	return predicate.Intervention(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Intervention {
	return predicate.Intervention(sql.FieldNotIn(FieldStatus, vs...))
}

// ResponseEQ applies the EQ predicate on the "response" field.
func ResponseEQ(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldResponse, v))
}

// ResponseNEQ applies the NEQ predicate on the "response" field.
func ResponseNEQ(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldNEQ(FieldResponse, v))
}

// ResponseIn applies the In predicate on the "response" field.
func ResponseIn(vs ...string) predicate.Intervention {
	return predicate.Intervention(sql.FieldIn(FieldResponse, vs...))
}

// ResponseNotIn applies the NotIn predicate on the "response" field.
func ResponseNotIn(vs ...string) predicate.Intervention {
	return predicate.Intervention(sql.FieldNotIn(FieldResponse, vs...))
}

// ResponseGT applies the GT predicate on the "response" field.
func ResponseGT(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldGT(FieldResponse, v))
}

// ResponseGTE applies the GTE predicate on the "response" field.
func ResponseGTE(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldGTE(FieldResponse, v))
}

// ResponseLT applies the LT predicate on the "response" field.
func ResponseLT(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldLT(FieldResponse, v))
}

// ResponseLTE applies the LTE predicate on the "response" field.
func ResponseLTE(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldLTE(FieldResponse, v))
}

// ResponseContains applies the Contains predicate on the "response" field.
func ResponseContains(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldContains(FieldResponse, v))
}

// ResponseHasPrefix applies the HasPrefix predicate on the "response" field.
func ResponseHasPrefix(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldHasPrefix(FieldResponse, v))
}

// ResponseHasSuffix applies the HasSuffix predicate on the "response" field.
func ResponseHasSuffix(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldHasSuffix(FieldResponse, v))
}

// ResponseIsNil applies the IsNil predicate on the "response" field.
func ResponseIsNil() predicate.Intervention {
	return predicate.Intervention(sql.FieldIsNull(FieldResponse))
}

// ResponseNotNil applies the NotNil predicate on the "response" field.
func ResponseNotNil() predicate.Intervention {
	return predicate.Intervention(sql.FieldNotNull(FieldResponse))
}

// ResponseEqualFold applies the EqualFold predicate on the "response" field.
func ResponseEqualFold(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldEqualFold(FieldResponse, v))
}

// ResponseContainsFold applies the ContainsFold predicate on the "response" field.
func ResponseContainsFold(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldContainsFold(FieldResponse, v))
}

// ClientKeyEQ applies the EQ predicate on the "client_key" field.
func ClientKeyEQ(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldClientKey, v))
}

// ClientKeyNEQ applies the NEQ predicate on the "client_key" field.
func ClientKeyNEQ(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldNEQ(FieldClientKey, v))
}

// ClientKeyIn applies the In predicate on the "client_key" field.
func ClientKeyIn(vs ...string) predicate.Intervention {
	return predicate.Intervention(sql.FieldIn(FieldClientKey, vs...))
}

// ClientKeyNotIn applies the NotIn predicate on the "client_key" field.
func ClientKeyNotIn(vs ...string) predicate.Intervention {
	return predicate.Intervention(sql.FieldNotIn(FieldClientKey, vs...))
}

// ClientKeyGT applies the GT predicate on the "client_key" field.
func ClientKeyGT(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldGT(FieldClientKey, v))
}

// ClientKeyGTE applies the GTE predicate on the "client_key" field.
func ClientKeyGTE(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldGTE(FieldClientKey, v))
}

// ClientKeyLT applies the LT predicate on the "client_key" field.
func ClientKeyLT(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldLT(FieldClientKey, v))
}

// ClientKeyLTE applies the LTE predicate on the "client_key" field.
func ClientKeyLTE(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldLTE(FieldClientKey, v))
}

// ClientKeyContains applies the Contains predicate on the "client_key" field.
func ClientKeyContains(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldContains(FieldClientKey, v))
}

// ClientKeyHasPrefix applies the HasPrefix predicate on the "client_key" field.
func ClientKeyHasPrefix(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldHasPrefix(FieldClientKey, v))
}

// ClientKeyHasSuffix applies the HasSuffix predicate on the "client_key" field.
func ClientKeyHasSuffix(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldHasSuffix(FieldClientKey, v))
}

// ClientKeyIsNil applies the IsNil predicate on the "client_key" field.
func ClientKeyIsNil() predicate.Intervention {
	return predicate.Intervention(sql.FieldIsNull(FieldClientKey))
}

// ClientKeyNotNil applies the NotNil predicate on the "client_key" field.
func ClientKeyNotNil() predicate.Intervention {
	return predicate.Intervention(sql.FieldNotNull(FieldClientKey))
}

// ClientKeyEqualFold applies the EqualFold predicate on the "client_key" field.
func ClientKeyEqualFold(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldEqualFold(FieldClientKey, v))
}

// ClientKeyContainsFold applies the ContainsFold predicate on the "client_key" field.
func ClientKeyContainsFold(v string) predicate.Intervention {
	return predicate.Intervention(sql.FieldContainsFold(FieldClientKey, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldLTE(FieldCreatedAt, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.Intervention {
	return predicate.Intervention(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtIsNil applies the IsNil predicate on the "processed_at" field.
func ProcessedAtIsNil() predicate.Intervention {
	return predicate.Intervention(sql.FieldIsNull(FieldProcessedAt))
}

// ProcessedAtNotNil applies the NotNil predicate on the "processed_at" field.
func ProcessedAtNotNil() predicate.Intervention {
	return predicate.Intervention(sql.FieldNotNull(FieldProcessedAt))
}

// HasDebate applies the HasEdge predicate on the "debate" edge.
func HasDebate() predicate.Intervention {
	return predicate.Intervention(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DebateTable, DebateColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDebateWith applies the HasEdge predicate on the "debate" edge with a given conditions (other predicates).
func HasDebateWith(preds ...predicate.Debate) predicate.Intervention {
	return predicate.Intervention(func(s *sql.Selector) {
		step := newDebateStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Intervention) predicate.Intervention {
	return predicate.Intervention(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Intervention) predicate.Intervention {
	return predicate.Intervention(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Intervention) predicate.Intervention {
	return predicate.Intervention(sql.NotPredicates(p))
}
