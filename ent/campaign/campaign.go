// Code generated by ent, DO NOT EDIT.

package campaign

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the campaign type in the database.
	Label = "campaign"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "campaign_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTotalRuns holds the string denoting the total_runs field in the database.
	FieldTotalRuns = "total_runs"
	// FieldSucceeded holds the string denoting the succeeded field in the database.
	FieldSucceeded = "succeeded"
	// FieldFailed holds the string denoting the failed field in the database.
	FieldFailed = "failed"
	// FieldSkipped holds the string denoting the skipped field in the database.
	FieldSkipped = "skipped"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgePlannedRuns holds the string denoting the planned_runs edge name in mutations.
	EdgePlannedRuns = "planned_runs"
	// PlannedRunFieldID holds the string denoting the ID field of the PlannedRun.
	PlannedRunFieldID = "run_id"
	// Table holds the table name of the campaign in the database.
	Table = "campaigns"
	// PlannedRunsTable is the table that holds the planned_runs relation/edge.
	PlannedRunsTable = "planned_runs"
	// PlannedRunsInverseTable is the table name for the PlannedRun entity.
	// It exists in this package in order to avoid circular dependency with the "plannedrun" package.
	PlannedRunsInverseTable = "planned_runs"
	// PlannedRunsColumn is the table column denoting the planned_runs relation/edge.
	PlannedRunsColumn = "campaign_id"
)

// Columns holds all SQL columns for campaign fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDescription,
	FieldConfig,
	FieldAgentID,
	FieldStatus,
	FieldTotalRuns,
	FieldSucceeded,
	FieldFailed,
	FieldSkipped,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
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
	// DefaultTotalRuns holds the default value on creation for the "total_runs" field.
	DefaultTotalRuns int
	// DefaultSucceeded holds the default value on creation for the "succeeded" field.
	DefaultSucceeded int
	// DefaultFailed holds the default value on creation for the "failed" field.
	DefaultFailed int
	// DefaultSkipped holds the default value on creation for the "skipped" field.
	DefaultSkipped int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusDraft is the default value of the Status enum.
const DefaultStatus = StatusDraft

// Status values.
const (
	StatusDraft     Status = "draft"
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusQueued, StatusRunning, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("campaign: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Campaign queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTotalRuns orders the results by the total_runs field.
func ByTotalRuns(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalRuns, opts...).ToFunc()
}

// BySucceeded orders the results by the succeeded field.
func BySucceeded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSucceeded, opts...).ToFunc()
}

// ByFailed orders the results by the failed field.
func ByFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailed, opts...).ToFunc()
}

// BySkipped orders the results by the skipped field.
func BySkipped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipped, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByPlannedRunsCount orders the results by planned_runs count.
func ByPlannedRunsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPlannedRunsStep(), opts...)
	}
}

// ByPlannedRuns orders the results by planned_runs terms.
func ByPlannedRuns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPlannedRunsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPlannedRunsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PlannedRunsInverseTable, PlannedRunFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PlannedRunsTable, PlannedRunsColumn),
	)
}
