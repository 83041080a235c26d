// Code generated by ent, DO NOT EDIT.

package runresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Kirizan/kitt-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RunResult {
	return predicate.RunResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RunResult {
	return predicate.RunResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RunResult {
	return predicate.RunResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RunResult {
	return predicate.RunResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RunResult {
	return predicate.RunResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RunResult {
	return predicate.RunResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RunResult {
	return predicate.RunResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RunResult {
	return predicate.RunResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RunResult {
	return predicate.RunResult(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RunResult {
	return predicate.RunResult(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RunResult {
	return predicate.RunResult(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldEQ(FieldRunID, v))
}

// CommandID applies equality check predicate on the "command_id" field. It's identical to CommandIDEQ.
func CommandID(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldEQ(FieldCommandID, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.RunResult {
	return predicate.RunResult(sql.FieldEQ(FieldPassed, v))
}

// OutputLocation applies equality check predicate on the "output_location" field. It's identical to OutputLocationEQ.
func OutputLocation(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldEQ(FieldOutputLocation, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RunResult {
	return predicate.RunResult(sql.FieldEQ(FieldCreatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.RunResult {
	return predicate.RunResult(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.RunResult {
	return predicate.RunResult(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldContainsFold(FieldRunID, v))
}

// CommandIDEQ applies the EQ predicate on the "command_id" field.
func CommandIDEQ(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldEQ(FieldCommandID, v))
}

// CommandIDNEQ applies the NEQ predicate on the "command_id" field.
func CommandIDNEQ(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldNEQ(FieldCommandID, v))
}

// CommandIDIn applies the In predicate on the "command_id" field.
func CommandIDIn(vs ...string) predicate.RunResult {
	return predicate.RunResult(sql.FieldIn(FieldCommandID, vs...))
}

// CommandIDNotIn applies the NotIn predicate on the "command_id" field.
func CommandIDNotIn(vs ...string) predicate.RunResult {
	return predicate.RunResult(sql.FieldNotIn(FieldCommandID, vs...))
}

// CommandIDGT applies the GT predicate on the "command_id" field.
func CommandIDGT(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldGT(FieldCommandID, v))
}

// CommandIDGTE applies the GTE predicate on the "command_id" field.
func CommandIDGTE(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldGTE(FieldCommandID, v))
}

// CommandIDLT applies the LT predicate on the "command_id" field.
func CommandIDLT(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldLT(FieldCommandID, v))
}

// CommandIDLTE applies the LTE predicate on the "command_id" field.
func CommandIDLTE(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldLTE(FieldCommandID, v))
}

// CommandIDContains applies the Contains predicate on the "command_id" field.
func CommandIDContains(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldContains(FieldCommandID, v))
}

// CommandIDHasPrefix applies the HasPrefix predicate on the "command_id" field.
func CommandIDHasPrefix(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldHasPrefix(FieldCommandID, v))
}

// CommandIDHasSuffix applies the HasSuffix predicate on the "command_id" field.
func CommandIDHasSuffix(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldHasSuffix(FieldCommandID, v))
}

// CommandIDEqualFold applies the EqualFold predicate on the "command_id" field.
func CommandIDEqualFold(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldEqualFold(FieldCommandID, v))
}

// CommandIDContainsFold applies the ContainsFold predicate on the "command_id" field.
func CommandIDContainsFold(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldContainsFold(FieldCommandID, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.RunResult {
	return predicate.RunResult(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.RunResult {
	return predicate.RunResult(sql.FieldNEQ(FieldPassed, v))
}

// MetricsIsNil applies the IsNil predicate on the "metrics" field.
func MetricsIsNil() predicate.RunResult {
	return predicate.RunResult(sql.FieldIsNull(FieldMetrics))
}

// MetricsNotNil applies the NotNil predicate on the "metrics" field.
func MetricsNotNil() predicate.RunResult {
	return predicate.RunResult(sql.FieldNotNull(FieldMetrics))
}

// OutputLocationEQ applies the EQ predicate on the "output_location" field.
func OutputLocationEQ(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldEQ(FieldOutputLocation, v))
}

// OutputLocationNEQ applies the NEQ predicate on the "output_location" field.
func OutputLocationNEQ(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldNEQ(FieldOutputLocation, v))
}

// OutputLocationIn applies the In predicate on the "output_location" field.
func OutputLocationIn(vs ...string) predicate.RunResult {
	return predicate.RunResult(sql.FieldIn(FieldOutputLocation, vs...))
}

// OutputLocationNotIn applies the NotIn predicate on the "output_location" field.
func OutputLocationNotIn(vs ...string) predicate.RunResult {
	return predicate.RunResult(sql.FieldNotIn(FieldOutputLocation, vs...))
}

// OutputLocationGT applies the GT predicate on the "output_location" field.
func OutputLocationGT(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldGT(FieldOutputLocation, v))
}

// OutputLocationGTE applies the GTE predicate on the "output_location" field.
func OutputLocationGTE(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldGTE(FieldOutputLocation, v))
}

// OutputLocationLT applies the LT predicate on the "output_location" field.
func OutputLocationLT(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldLT(FieldOutputLocation, v))
}

// OutputLocationLTE applies the LTE predicate on the "output_location" field.
func OutputLocationLTE(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldLTE(FieldOutputLocation, v))
}

// OutputLocationContains applies the Contains predicate on the "output_location" field.
func OutputLocationContains(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldContains(FieldOutputLocation, v))
}

// OutputLocationHasPrefix applies the HasPrefix predicate on the "output_location" field.
func OutputLocationHasPrefix(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldHasPrefix(FieldOutputLocation, v))
}

// OutputLocationHasSuffix applies the HasSuffix predicate on the "output_location" field.
func OutputLocationHasSuffix(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldHasSuffix(FieldOutputLocation, v))
}

// OutputLocationIsNil applies the IsNil predicate on the "output_location" field.
func OutputLocationIsNil() predicate.RunResult {
	return predicate.RunResult(sql.FieldIsNull(FieldOutputLocation))
}

// OutputLocationNotNil applies the NotNil predicate on the "output_location" field.
func OutputLocationNotNil() predicate.RunResult {
	return predicate.RunResult(sql.FieldNotNull(FieldOutputLocation))
}

// OutputLocationEqualFold applies the EqualFold predicate on the "output_location" field.
func OutputLocationEqualFold(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldEqualFold(FieldOutputLocation, v))
}

// OutputLocationContainsFold applies the ContainsFold predicate on the "output_location" field.
func OutputLocationContainsFold(v string) predicate.RunResult {
	return predicate.RunResult(sql.FieldContainsFold(FieldOutputLocation, v))
}

// HardwareSnapshotIsNil applies the IsNil predicate on the "hardware_snapshot" field.
func HardwareSnapshotIsNil() predicate.RunResult {
	return predicate.RunResult(sql.FieldIsNull(FieldHardwareSnapshot))
}

// HardwareSnapshotNotNil applies the NotNil predicate on the "hardware_snapshot" field.
func HardwareSnapshotNotNil() predicate.RunResult {
	return predicate.RunResult(sql.FieldNotNull(FieldHardwareSnapshot))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RunResult {
	return predicate.RunResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RunResult {
	return predicate.RunResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RunResult {
	return predicate.RunResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RunResult {
	return predicate.RunResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RunResult {
	return predicate.RunResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RunResult {
	return predicate.RunResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RunResult {
	return predicate.RunResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RunResult {
	return predicate.RunResult(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.RunResult {
	return predicate.RunResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.PlannedRun) predicate.RunResult {
	return predicate.RunResult(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RunResult) predicate.RunResult {
	return predicate.RunResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RunResult) predicate.RunResult {
	return predicate.RunResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RunResult) predicate.RunResult {
	return predicate.RunResult(sql.NotPredicates(p))
}
