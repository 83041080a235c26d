// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Kirizan/kitt-sub000/ent/campaign"
	"github.com/Kirizan/kitt-sub000/ent/plannedrun"
	"github.com/Kirizan/kitt-sub000/ent/runresult"
)

// PlannedRun is the model entity for the PlannedRun schema.
type PlannedRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CampaignID holds the value of the "campaign_id" field.
	CampaignID string `json:"campaign_id,omitempty"`
	// ModelName holds the value of the "model_name" field.
	ModelName string `json:"model_name,omitempty"`
	// Local path, HF repo id, or Ollama tag the engine loads
	ModelRef string `json:"model_ref,omitempty"`
	// EngineName holds the value of the "engine_name" field.
	EngineName string `json:"engine_name,omitempty"`
	// EngineMode holds the value of the "engine_mode" field.
	EngineMode plannedrun.EngineMode `json:"engine_mode,omitempty"`
	// BenchmarkName holds the value of the "benchmark_name" field.
	BenchmarkName string `json:"benchmark_name,omitempty"`
	// SuiteName holds the value of the "suite_name" field.
	SuiteName string `json:"suite_name,omitempty"`
	// Quantisation identifier, e.g. Q4_K_M, bf16
	Quant string `json:"quant,omitempty"`
	// EstimatedSizeGB holds the value of the "estimated_size_gb" field.
	EstimatedSizeGB float64 `json:"estimated_size_gb,omitempty"`
	// Status holds the value of the "status" field.
	Status plannedrun.Status `json:"status,omitempty"`
	// Set when the run first leaves pending; unique per dispatch attempt
	CommandID *string `json:"command_id,omitempty"`
	// Failure taxonomy label: validation, incompatible, size, disk, engine, watchdog, ...
	ErrorKind string `json:"error_kind,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// Position in the deterministic plan order
	PlanIndex int `json:"plan_index,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// QueuedAt holds the value of the "queued_at" field.
	QueuedAt *time.Time `json:"queued_at,omitempty"`
	// DispatchedAt holds the value of the "dispatched_at" field.
	DispatchedAt *time.Time `json:"dispatched_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Watchdog baseline: refreshed on every status transition
	LastTransitionAt time.Time `json:"last_transition_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PlannedRunQuery when eager-loading is set.
	Edges        PlannedRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PlannedRunEdges holds the relations/edges for other nodes in the graph.
type PlannedRunEdges struct {
	// Campaign holds the value of the campaign edge.
	Campaign *Campaign `json:"campaign,omitempty"`
	// Result holds the value of the result edge.
	Result *RunResult `json:"result,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// CampaignOrErr returns the Campaign value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PlannedRunEdges) CampaignOrErr() (*Campaign, error) {
	if e.Campaign != nil {
		return e.Campaign, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: campaign.Label}
	}
	return nil, &NotLoadedError{edge: "campaign"}
}

// ResultOrErr returns the Result value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PlannedRunEdges) ResultOrErr() (*RunResult, error) {
	if e.Result != nil {
		return e.Result, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: runresult.Label}
	}
	return nil, &NotLoadedError{edge: "result"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PlannedRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case plannedrun.FieldEstimatedSizeGB:
			values[i] = new(sql.NullFloat64)
		case plannedrun.FieldPlanIndex:
			values[i] = new(sql.NullInt64)
		case plannedrun.FieldID, plannedrun.FieldCampaignID, plannedrun.FieldModelName, plannedrun.FieldModelRef, plannedrun.FieldEngineName, plannedrun.FieldEngineMode, plannedrun.FieldBenchmarkName, plannedrun.FieldSuiteName, plannedrun.FieldQuant, plannedrun.FieldStatus, plannedrun.FieldCommandID, plannedrun.FieldErrorKind, plannedrun.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case plannedrun.FieldCreatedAt, plannedrun.FieldQueuedAt, plannedrun.FieldDispatchedAt, plannedrun.FieldStartedAt, plannedrun.FieldCompletedAt, plannedrun.FieldLastTransitionAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PlannedRun fields.
func (_m *PlannedRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case plannedrun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case plannedrun.FieldCampaignID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field campaign_id", values[i])
			} else if value.Valid {
				_m.CampaignID = value.String
			}
		case plannedrun.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = value.String
			}
		case plannedrun.FieldModelRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_ref", values[i])
			} else if value.Valid {
				_m.ModelRef = value.String
			}
		case plannedrun.FieldEngineName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field engine_name", values[i])
			} else if value.Valid {
				_m.EngineName = value.String
			}
		case plannedrun.FieldEngineMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field engine_mode", values[i])
			} else if value.Valid {
				_m.EngineMode = plannedrun.EngineMode(value.String)
			}
		case plannedrun.FieldBenchmarkName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field benchmark_name", values[i])
			} else if value.Valid {
				_m.BenchmarkName = value.String
			}
		case plannedrun.FieldSuiteName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field suite_name", values[i])
			} else if value.Valid {
				_m.SuiteName = value.String
			}
		case plannedrun.FieldQuant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quant", values[i])
			} else if value.Valid {
				_m.Quant = value.String
			}
		case plannedrun.FieldEstimatedSizeGB:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_size_gb", values[i])
			} else if value.Valid {
				_m.EstimatedSizeGB = value.Float64
			}
		case plannedrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = plannedrun.Status(value.String)
			}
		case plannedrun.FieldCommandID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field command_id", values[i])
			} else if value.Valid {
				_m.CommandID = new(string)
				*_m.CommandID = value.String
			}
		case plannedrun.FieldErrorKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_kind", values[i])
			} else if value.Valid {
				_m.ErrorKind = value.String
			}
		case plannedrun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case plannedrun.FieldPlanIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field plan_index", values[i])
			} else if value.Valid {
				_m.PlanIndex = int(value.Int64)
			}
		case plannedrun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case plannedrun.FieldQueuedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field queued_at", values[i])
			} else if value.Valid {
				_m.QueuedAt = new(time.Time)
				*_m.QueuedAt = value.Time
			}
		case plannedrun.FieldDispatchedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field dispatched_at", values[i])
			} else if value.Valid {
				_m.DispatchedAt = new(time.Time)
				*_m.DispatchedAt = value.Time
			}
		case plannedrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case plannedrun.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case plannedrun.FieldLastTransitionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_transition_at", values[i])
			} else if value.Valid {
				_m.LastTransitionAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PlannedRun.
// This includes values selected through modifiers, order, etc.
func (_m *PlannedRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCampaign queries the "campaign" edge of the PlannedRun entity.
func (_m *PlannedRun) QueryCampaign() *CampaignQuery {
	return NewPlannedRunClient(_m.config).QueryCampaign(_m)
}

// QueryResult queries the "result" edge of the PlannedRun entity.
func (_m *PlannedRun) QueryResult() *RunResultQuery {
	return NewPlannedRunClient(_m.config).QueryResult(_m)
}

// Update returns a builder for updating this PlannedRun.
// Note that you need to call PlannedRun.Unwrap() before calling this method if this PlannedRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PlannedRun) Update() *PlannedRunUpdateOne {
	return NewPlannedRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PlannedRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PlannedRun) Unwrap() *PlannedRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PlannedRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PlannedRun) String() string {
	var builder strings.Builder
	builder.WriteString("PlannedRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("campaign_id=")
	builder.WriteString(_m.CampaignID)
	builder.WriteString(", ")
	builder.WriteString("model_name=")
	builder.WriteString(_m.ModelName)
	builder.WriteString(", ")
	builder.WriteString("model_ref=")
	builder.WriteString(_m.ModelRef)
	builder.WriteString(", ")
	builder.WriteString("engine_name=")
	builder.WriteString(_m.EngineName)
	builder.WriteString(", ")
	builder.WriteString("engine_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.EngineMode))
	builder.WriteString(", ")
	builder.WriteString("benchmark_name=")
	builder.WriteString(_m.BenchmarkName)
	builder.WriteString(", ")
	builder.WriteString("suite_name=")
	builder.WriteString(_m.SuiteName)
	builder.WriteString(", ")
	builder.WriteString("quant=")
	builder.WriteString(_m.Quant)
	builder.WriteString(", ")
	builder.WriteString("estimated_size_gb=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedSizeGB))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.CommandID; v != nil {
		builder.WriteString("command_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("error_kind=")
	builder.WriteString(_m.ErrorKind)
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("plan_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlanIndex))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.QueuedAt; v != nil {
		builder.WriteString("queued_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DispatchedAt; v != nil {
		builder.WriteString("dispatched_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("last_transition_at=")
	builder.WriteString(_m.LastTransitionAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PlannedRuns is a parsable slice of PlannedRun.
type PlannedRuns []*PlannedRun
