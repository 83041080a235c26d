// Code generated by ent, DO NOT EDIT.

package streamevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Kirizan/kitt-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldLTE(FieldID, id))
}

// StreamID applies equality check predicate on the "stream_id" field. It's identical to StreamIDEQ.
func StreamID(v string) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldEQ(FieldStreamID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// StreamIDEQ applies the EQ predicate on the "stream_id" field.
func StreamIDEQ(v string) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldEQ(FieldStreamID, v))
}

// StreamIDNEQ applies the NEQ predicate on the "stream_id" field.
func StreamIDNEQ(v string) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldNEQ(FieldStreamID, v))
}

// StreamIDIn applies the In predicate on the "stream_id" field.
func StreamIDIn(vs ...string) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldIn(FieldStreamID, vs...))
}

// StreamIDNotIn applies the NotIn predicate on the "stream_id" field.
func StreamIDNotIn(vs ...string) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldNotIn(FieldStreamID, vs...))
}

// StreamIDGT applies the GT predicate on the "stream_id" field.
func StreamIDGT(v string) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldGT(FieldStreamID, v))
}

// StreamIDGTE applies the GTE predicate on the "stream_id" field.
func StreamIDGTE(v string) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldGTE(FieldStreamID, v))
}

// StreamIDLT applies the LT predicate on the "stream_id" field.
func StreamIDLT(v string) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldLT(FieldStreamID, v))
}

// StreamIDLTE applies the LTE predicate on the "stream_id" field.
func StreamIDLTE(v string) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldLTE(FieldStreamID, v))
}

// StreamIDContains applies the Contains predicate on the "stream_id" field.
func StreamIDContains(v string) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldContains(FieldStreamID, v))
}

// StreamIDHasPrefix applies the HasPrefix predicate on the "stream_id" field.
func StreamIDHasPrefix(v string) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldHasPrefix(FieldStreamID, v))
}

// StreamIDHasSuffix applies the HasSuffix predicate on the "stream_id" field.
func StreamIDHasSuffix(v string) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldHasSuffix(FieldStreamID, v))
}

// StreamIDEqualFold applies the EqualFold predicate on the "stream_id" field.
func StreamIDEqualFold(v string) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldEqualFold(FieldStreamID, v))
}

// StreamIDContainsFold applies the ContainsFold predicate on the "stream_id" field.
func StreamIDContainsFold(v string) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldContainsFold(FieldStreamID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldNotIn(FieldKind, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StreamEvent {
	return predicate.StreamEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StreamEvent) predicate.StreamEvent {
	return predicate.StreamEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StreamEvent) predicate.StreamEvent {
	return predicate.StreamEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StreamEvent) predicate.StreamEvent {
	return predicate.StreamEvent(sql.NotPredicates(p))
}
