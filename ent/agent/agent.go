// Code generated by ent, DO NOT EDIT.

package agent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the agent type in the database.
	Label = "agent"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldHostname holds the string denoting the hostname field in the database.
	FieldHostname = "hostname"
	// FieldPort holds the string denoting the port field in the database.
	FieldPort = "port"
	// FieldCPUArch holds the string denoting the cpu_arch field in the database.
	FieldCPUArch = "cpu_arch"
	// FieldCPUInfo holds the string denoting the cpu_info field in the database.
	FieldCPUInfo = "cpu_info"
	// FieldGpuInfo holds the string denoting the gpu_info field in the database.
	FieldGpuInfo = "gpu_info"
	// FieldGpuCount holds the string denoting the gpu_count field in the database.
	FieldGpuCount = "gpu_count"
	// FieldRAMGB holds the string denoting the ram_gb field in the database.
	FieldRAMGB = "ram_gb"
	// FieldKittVersion holds the string denoting the kitt_version field in the database.
	FieldKittVersion = "kitt_version"
	// FieldHardwareDetails holds the string denoting the hardware_details field in the database.
	FieldHardwareDetails = "hardware_details"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTokenHash holds the string denoting the token_hash field in the database.
	FieldTokenHash = "token_hash"
	// FieldTokenPrefix holds the string denoting the token_prefix field in the database.
	FieldTokenPrefix = "token_prefix"
	// FieldLastHeartbeat holds the string denoting the last_heartbeat field in the database.
	FieldLastHeartbeat = "last_heartbeat"
	// FieldRegisteredAt holds the string denoting the registered_at field in the database.
	FieldRegisteredAt = "registered_at"
	// Table holds the table name of the agent in the database.
	Table = "agents"
)

// Columns holds all SQL columns for agent fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldHostname,
	FieldPort,
	FieldCPUArch,
	FieldCPUInfo,
	FieldGpuInfo,
	FieldGpuCount,
	FieldRAMGB,
	FieldKittVersion,
	FieldHardwareDetails,
	FieldStatus,
	FieldTokenHash,
	FieldTokenPrefix,
	FieldLastHeartbeat,
	FieldRegisteredAt,
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
	// DefaultPort holds the default value on creation for the "port" field.
	DefaultPort int
	// DefaultGpuCount holds the default value on creation for the "gpu_count" field.
	DefaultGpuCount int
	// DefaultRAMGB holds the default value on creation for the "ram_gb" field.
	DefaultRAMGB int
	// TokenPrefixValidator is a validator for the "token_prefix" field. It is called by the builders before save.
	TokenPrefixValidator func(string) error
	// DefaultRegisteredAt holds the default value on creation for the "registered_at" field.
	DefaultRegisteredAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusOffline is the default value of the Status enum.
const DefaultStatus = StatusOffline

// Status values.
const (
	StatusOffline Status = "offline"
	StatusOnline  Status = "online"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusOffline, StatusOnline:
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Agent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByHostname orders the results by the hostname field.
func ByHostname(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHostname, opts...).ToFunc()
}

// ByPort orders the results by the port field.
func ByPort(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPort, opts...).ToFunc()
}

// ByCPUArch orders the results by the cpu_arch field.
func ByCPUArch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCPUArch, opts...).ToFunc()
}

// ByCPUInfo orders the results by the cpu_info field.
func ByCPUInfo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCPUInfo, opts...).ToFunc()
}

// ByGpuInfo orders the results by the gpu_info field.
func ByGpuInfo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGpuInfo, opts...).ToFunc()
}

// ByGpuCount orders the results by the gpu_count field.
func ByGpuCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGpuCount, opts...).ToFunc()
}

// ByRAMGB orders the results by the ram_gb field.
func ByRAMGB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRAMGB, opts...).ToFunc()
}

// ByKittVersion orders the results by the kitt_version field.
func ByKittVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKittVersion, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTokenHash orders the results by the token_hash field.
func ByTokenHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokenHash, opts...).ToFunc()
}

// ByTokenPrefix orders the results by the token_prefix field.
func ByTokenPrefix(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokenPrefix, opts...).ToFunc()
}

// ByLastHeartbeat orders the results by the last_heartbeat field.
func ByLastHeartbeat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeat, opts...).ToFunc()
}

// ByRegisteredAt orders the results by the registered_at field.
func ByRegisteredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegisteredAt, opts...).ToFunc()
}
