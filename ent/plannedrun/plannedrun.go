// Code generated by ent, DO NOT EDIT.

package plannedrun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the plannedrun type in the database.
	Label = "planned_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldCampaignID holds the string denoting the campaign_id field in the database.
	FieldCampaignID = "campaign_id"
	// FieldModelName holds the string denoting the model_name field in the database.
	FieldModelName = "model_name"
	// FieldModelRef holds the string denoting the model_ref field in the database.
	FieldModelRef = "model_ref"
	// FieldEngineName holds the string denoting the engine_name field in the database.
	FieldEngineName = "engine_name"
	// FieldEngineMode holds the string denoting the engine_mode field in the database.
	FieldEngineMode = "engine_mode"
	// FieldBenchmarkName holds the string denoting the benchmark_name field in the database.
	FieldBenchmarkName = "benchmark_name"
	// FieldSuiteName holds the string denoting the suite_name field in the database.
	FieldSuiteName = "suite_name"
	// FieldQuant holds the string denoting the quant field in the database.
	FieldQuant = "quant"
	// FieldEstimatedSizeGB holds the string denoting the estimated_size_gb field in the database.
	FieldEstimatedSizeGB = "estimated_size_gb"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCommandID holds the string denoting the command_id field in the database.
	FieldCommandID = "command_id"
	// FieldErrorKind holds the string denoting the error_kind field in the database.
	FieldErrorKind = "error_kind"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldPlanIndex holds the string denoting the plan_index field in the database.
	FieldPlanIndex = "plan_index"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldQueuedAt holds the string denoting the queued_at field in the database.
	FieldQueuedAt = "queued_at"
	// FieldDispatchedAt holds the string denoting the dispatched_at field in the database.
	FieldDispatchedAt = "dispatched_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldLastTransitionAt holds the string denoting the last_transition_at field in the database.
	FieldLastTransitionAt = "last_transition_at"
	// EdgeCampaign holds the string denoting the campaign edge name in mutations.
	EdgeCampaign = "campaign"
	// EdgeResult holds the string denoting the result edge name in mutations.
	EdgeResult = "result"
	// CampaignFieldID holds the string denoting the ID field of the Campaign.
	CampaignFieldID = "campaign_id"
	// RunResultFieldID holds the string denoting the ID field of the RunResult.
	RunResultFieldID = "result_id"
	// Table holds the table name of the plannedrun in the database.
	Table = "planned_runs"
	// CampaignTable is the table that holds the campaign relation/edge.
	CampaignTable = "planned_runs"
	// CampaignInverseTable is the table name for the Campaign entity.
	// It exists in this package in order to avoid circular dependency with the "campaign" package.
	CampaignInverseTable = "campaigns"
	// CampaignColumn is the table column denoting the campaign relation/edge.
	CampaignColumn = "campaign_id"
	// ResultTable is the table that holds the result relation/edge.
	ResultTable = "run_results"
	// ResultInverseTable is the table name for the RunResult entity.
	// It exists in this package in order to avoid circular dependency with the "runresult" package.
	ResultInverseTable = "run_results"
	// ResultColumn is the table column denoting the result relation/edge.
	ResultColumn = "run_id"
)

// Columns holds all SQL columns for plannedrun fields.
var Columns = []string{
	FieldID,
	FieldCampaignID,
	FieldModelName,
	FieldModelRef,
	FieldEngineName,
	FieldEngineMode,
	FieldBenchmarkName,
	FieldSuiteName,
	FieldQuant,
	FieldEstimatedSizeGB,
	FieldStatus,
	FieldCommandID,
	FieldErrorKind,
	FieldErrorMessage,
	FieldPlanIndex,
	FieldCreatedAt,
	FieldQueuedAt,
	FieldDispatchedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldLastTransitionAt,
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
	// DefaultSuiteName holds the default value on creation for the "suite_name" field.
	DefaultSuiteName string
	// DefaultEstimatedSizeGB holds the default value on creation for the "estimated_size_gb" field.
	DefaultEstimatedSizeGB float64
	// DefaultPlanIndex holds the default value on creation for the "plan_index" field.
	DefaultPlanIndex int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultLastTransitionAt holds the default value on creation for the "last_transition_at" field.
	DefaultLastTransitionAt func() time.Time
)

// EngineMode defines the type for the "engine_mode" enum field.
type EngineMode string

// EngineModeDocker is the default value of the EngineMode enum.
const DefaultEngineMode = EngineModeDocker

// EngineMode values.
const (
	EngineModeDocker EngineMode = "docker"
	EngineModeNative EngineMode = "native"
)

func (em EngineMode) String() string {
	return string(em)
}

// EngineModeValidator is a validator for the "engine_mode" field enum values. It is called by the builders before save.
func EngineModeValidator(em EngineMode) error {
	switch em {
	case EngineModeDocker, EngineModeNative:
		return nil
	default:
		return fmt.Errorf("plannedrun: invalid enum value for engine_mode field: %q", em)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusQueued     Status = "queued"
	StatusDispatched Status = "dispatched"
	StatusRunning    Status = "running"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusSkipped    Status = "skipped"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusQueued, StatusDispatched, StatusRunning, StatusCompleted, StatusFailed, StatusSkipped, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("plannedrun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the PlannedRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCampaignID orders the results by the campaign_id field.
func ByCampaignID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCampaignID, opts...).ToFunc()
}

// ByModelName orders the results by the model_name field.
func ByModelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelName, opts...).ToFunc()
}

// ByModelRef orders the results by the model_ref field.
func ByModelRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelRef, opts...).ToFunc()
}

// ByEngineName orders the results by the engine_name field.
func ByEngineName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngineName, opts...).ToFunc()
}

// ByEngineMode orders the results by the engine_mode field.
func ByEngineMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngineMode, opts...).ToFunc()
}

// ByBenchmarkName orders the results by the benchmark_name field.
func ByBenchmarkName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBenchmarkName, opts...).ToFunc()
}

// BySuiteName orders the results by the suite_name field.
func BySuiteName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuiteName, opts...).ToFunc()
}

// ByQuant orders the results by the quant field.
func ByQuant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuant, opts...).ToFunc()
}

// ByEstimatedSizeGB orders the results by the estimated_size_gb field.
func ByEstimatedSizeGB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedSizeGB, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCommandID orders the results by the command_id field.
func ByCommandID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommandID, opts...).ToFunc()
}

// ByErrorKind orders the results by the error_kind field.
func ByErrorKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorKind, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByPlanIndex orders the results by the plan_index field.
func ByPlanIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanIndex, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByQueuedAt orders the results by the queued_at field.
func ByQueuedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueuedAt, opts...).ToFunc()
}

// ByDispatchedAt orders the results by the dispatched_at field.
func ByDispatchedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDispatchedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByLastTransitionAt orders the results by the last_transition_at field.
func ByLastTransitionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastTransitionAt, opts...).ToFunc()
}

// ByCampaignField orders the results by campaign field.
func ByCampaignField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCampaignStep(), sql.OrderByField(field, opts...))
	}
}

// ByResultField orders the results by result field.
func ByResultField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResultStep(), sql.OrderByField(field, opts...))
	}
}
func newCampaignStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CampaignInverseTable, CampaignFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CampaignTable, CampaignColumn),
	)
}
func newResultStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResultInverseTable, RunResultFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, ResultTable, ResultColumn),
	)
}
