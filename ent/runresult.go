// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Kirizan/kitt-sub000/ent/plannedrun"
	"github.com/Kirizan/kitt-sub000/ent/runresult"
)

// RunResult is the model entity for the RunResult schema.
type RunResult struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// CommandID holds the value of the "command_id" field.
	CommandID string `json:"command_id,omitempty"`
	// Passed holds the value of the "passed" field.
	Passed bool `json:"passed,omitempty"`
	// Benchmark metrics dictionary as reported by the agent
	Metrics map[string]interface{} `json:"metrics,omitempty"`
	// Where the raw benchmark output lives on the agent
	OutputLocation string `json:"output_location,omitempty"`
	// Agent hardware state at completion time
	HardwareSnapshot map[string]interface{} `json:"hardware_snapshot,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RunResultQuery when eager-loading is set.
	Edges        RunResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RunResultEdges holds the relations/edges for other nodes in the graph.
type RunResultEdges struct {
	// Run holds the value of the run edge.
	Run *PlannedRun `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RunResultEdges) RunOrErr() (*PlannedRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: plannedrun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RunResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case runresult.FieldMetrics, runresult.FieldHardwareSnapshot:
			values[i] = new([]byte)
		case runresult.FieldPassed:
			values[i] = new(sql.NullBool)
		case runresult.FieldID, runresult.FieldRunID, runresult.FieldCommandID, runresult.FieldOutputLocation:
			values[i] = new(sql.NullString)
		case runresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RunResult fields.
func (_m *RunResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case runresult.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case runresult.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case runresult.FieldCommandID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field command_id", values[i])
			} else if value.Valid {
				_m.CommandID = value.String
			}
		case runresult.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = value.Bool
			}
		case runresult.FieldMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metrics); err != nil {
					return fmt.Errorf("unmarshal field metrics: %w", err)
				}
			}
		case runresult.FieldOutputLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_location", values[i])
			} else if value.Valid {
				_m.OutputLocation = value.String
			}
		case runresult.FieldHardwareSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field hardware_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.HardwareSnapshot); err != nil {
					return fmt.Errorf("unmarshal field hardware_snapshot: %w", err)
				}
			}
		case runresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RunResult.
// This includes values selected through modifiers, order, etc.
func (_m *RunResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the RunResult entity.
func (_m *RunResult) QueryRun() *PlannedRunQuery {
	return NewRunResultClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this RunResult.
// Note that you need to call RunResult.Unwrap() before calling this method if this RunResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RunResult) Update() *RunResultUpdateOne {
	return NewRunResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RunResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RunResult) Unwrap() *RunResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RunResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RunResult) String() string {
	var builder strings.Builder
	builder.WriteString("RunResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("command_id=")
	builder.WriteString(_m.CommandID)
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Passed))
	builder.WriteString(", ")
	builder.WriteString("metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metrics))
	builder.WriteString(", ")
	builder.WriteString("output_location=")
	builder.WriteString(_m.OutputLocation)
	builder.WriteString(", ")
	builder.WriteString("hardware_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.HardwareSnapshot))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RunResults is a parsable slice of RunResult.
type RunResults []*RunResult
