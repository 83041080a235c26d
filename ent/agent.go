// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Kirizan/kitt-sub000/ent/agent"
)

// Agent is the model entity for the Agent schema.
type Agent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Human-chosen agent name; stable across token rotations
	Name string `json:"name,omitempty"`
	// Hostname holds the value of the "hostname" field.
	Hostname string `json:"hostname,omitempty"`
	// Port holds the value of the "port" field.
	Port int `json:"port,omitempty"`
	// Normalized architecture: amd64, arm64, ...
	CPUArch string `json:"cpu_arch,omitempty"`
	// CPUInfo holds the value of the "cpu_info" field.
	CPUInfo string `json:"cpu_info,omitempty"`
	// GpuInfo holds the value of the "gpu_info" field.
	GpuInfo string `json:"gpu_info,omitempty"`
	// GpuCount holds the value of the "gpu_count" field.
	GpuCount int `json:"gpu_count,omitempty"`
	// RAMGB holds the value of the "ram_gb" field.
	RAMGB int `json:"ram_gb,omitempty"`
	// KittVersion holds the value of the "kitt_version" field.
	KittVersion string `json:"kitt_version,omitempty"`
	// Full capability snapshot from the last heartbeat
	HardwareDetails map[string]interface{} `json:"hardware_details,omitempty"`
	// Status holds the value of the "status" field.
	Status agent.Status `json:"status,omitempty"`
	// SHA-256 hex of the provisioned token; raw tokens are never stored
	TokenHash string `json:"token_hash,omitempty"`
	// First 8 chars of the raw token, for display only
	TokenPrefix string `json:"token_prefix,omitempty"`
	// LastHeartbeat holds the value of the "last_heartbeat" field.
	LastHeartbeat *time.Time `json:"last_heartbeat,omitempty"`
	// RegisteredAt holds the value of the "registered_at" field.
	RegisteredAt time.Time `json:"registered_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Agent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agent.FieldHardwareDetails:
			values[i] = new([]byte)
		case agent.FieldPort, agent.FieldGpuCount, agent.FieldRAMGB:
			values[i] = new(sql.NullInt64)
		case agent.FieldID, agent.FieldName, agent.FieldHostname, agent.FieldCPUArch, agent.FieldCPUInfo, agent.FieldGpuInfo, agent.FieldKittVersion, agent.FieldStatus, agent.FieldTokenHash, agent.FieldTokenPrefix:
			values[i] = new(sql.NullString)
		case agent.FieldLastHeartbeat, agent.FieldRegisteredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Agent fields.
func (_m *Agent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agent.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case agent.FieldHostname:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hostname", values[i])
			} else if value.Valid {
				_m.Hostname = value.String
			}
		case agent.FieldPort:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field port", values[i])
			} else if value.Valid {
				_m.Port = int(value.Int64)
			}
		case agent.FieldCPUArch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cpu_arch", values[i])
			} else if value.Valid {
				_m.CPUArch = value.String
			}
		case agent.FieldCPUInfo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cpu_info", values[i])
			} else if value.Valid {
				_m.CPUInfo = value.String
			}
		case agent.FieldGpuInfo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gpu_info", values[i])
			} else if value.Valid {
				_m.GpuInfo = value.String
			}
		case agent.FieldGpuCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field gpu_count", values[i])
			} else if value.Valid {
				_m.GpuCount = int(value.Int64)
			}
		case agent.FieldRAMGB:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ram_gb", values[i])
			} else if value.Valid {
				_m.RAMGB = int(value.Int64)
			}
		case agent.FieldKittVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kitt_version", values[i])
			} else if value.Valid {
				_m.KittVersion = value.String
			}
		case agent.FieldHardwareDetails:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field hardware_details", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.HardwareDetails); err != nil {
					return fmt.Errorf("unmarshal field hardware_details: %w", err)
				}
			}
		case agent.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = agent.Status(value.String)
			}
		case agent.FieldTokenHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field token_hash", values[i])
			} else if value.Valid {
				_m.TokenHash = value.String
			}
		case agent.FieldTokenPrefix:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field token_prefix", values[i])
			} else if value.Valid {
				_m.TokenPrefix = value.String
			}
		case agent.FieldLastHeartbeat:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat", values[i])
			} else if value.Valid {
				_m.LastHeartbeat = new(time.Time)
				*_m.LastHeartbeat = value.Time
			}
		case agent.FieldRegisteredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field registered_at", values[i])
			} else if value.Valid {
				_m.RegisteredAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Agent.
// This includes values selected through modifiers, order, etc.
func (_m *Agent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Agent.
// Note that you need to call Agent.Unwrap() before calling this method if this Agent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Agent) Update() *AgentUpdateOne {
	return NewAgentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Agent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Agent) Unwrap() *Agent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Agent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Agent) String() string {
	var builder strings.Builder
	builder.WriteString("Agent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("hostname=")
	builder.WriteString(_m.Hostname)
	builder.WriteString(", ")
	builder.WriteString("port=")
	builder.WriteString(fmt.Sprintf("%v", _m.Port))
	builder.WriteString(", ")
	builder.WriteString("cpu_arch=")
	builder.WriteString(_m.CPUArch)
	builder.WriteString(", ")
	builder.WriteString("cpu_info=")
	builder.WriteString(_m.CPUInfo)
	builder.WriteString(", ")
	builder.WriteString("gpu_info=")
	builder.WriteString(_m.GpuInfo)
	builder.WriteString(", ")
	builder.WriteString("gpu_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.GpuCount))
	builder.WriteString(", ")
	builder.WriteString("ram_gb=")
	builder.WriteString(fmt.Sprintf("%v", _m.RAMGB))
	builder.WriteString(", ")
	builder.WriteString("kitt_version=")
	builder.WriteString(_m.KittVersion)
	builder.WriteString(", ")
	builder.WriteString("hardware_details=")
	builder.WriteString(fmt.Sprintf("%v", _m.HardwareDetails))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("token_hash=")
	builder.WriteString(_m.TokenHash)
	builder.WriteString(", ")
	builder.WriteString("token_prefix=")
	builder.WriteString(_m.TokenPrefix)
	builder.WriteString(", ")
	if v := _m.LastHeartbeat; v != nil {
		builder.WriteString("last_heartbeat=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("registered_at=")
	builder.WriteString(_m.RegisteredAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Agents is a parsable slice of Agent.
type Agents []*Agent
