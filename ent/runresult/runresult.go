// Code generated by ent, DO NOT EDIT.

package runresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the runresult type in the database.
	Label = "run_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "result_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldCommandID holds the string denoting the command_id field in the database.
	FieldCommandID = "command_id"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldMetrics holds the string denoting the metrics field in the database.
	FieldMetrics = "metrics"
	// FieldOutputLocation holds the string denoting the output_location field in the database.
	FieldOutputLocation = "output_location"
	// FieldHardwareSnapshot holds the string denoting the hardware_snapshot field in the database.
	FieldHardwareSnapshot = "hardware_snapshot"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// PlannedRunFieldID holds the string denoting the ID field of the PlannedRun.
	PlannedRunFieldID = "run_id"
	// Table holds the table name of the runresult in the database.
	Table = "run_results"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "run_results"
	// RunInverseTable is the table name for the PlannedRun entity.
	// It exists in this package in order to avoid circular dependency with the "plannedrun" package.
	RunInverseTable = "planned_runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
)

// Columns holds all SQL columns for runresult fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldCommandID,
	FieldPassed,
	FieldMetrics,
	FieldOutputLocation,
	FieldHardwareSnapshot,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPassed holds the default value on creation for the "passed" field.
	DefaultPassed bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the RunResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByCommandID orders the results by the command_id field.
func ByCommandID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommandID, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}

// ByOutputLocation orders the results by the output_location field.
func ByOutputLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputLocation, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, PlannedRunFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, RunTable, RunColumn),
	)
}
