// Code generated by ent, DO NOT EDIT.

package agent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Kirizan/kitt-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldName, v))
}

// Hostname applies equality check predicate on the "hostname" field. It's identical to HostnameEQ.
func Hostname(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldHostname, v))
}

// Port applies equality check predicate on the "port" field. It's identical to PortEQ.
func Port(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPort, v))
}

// CPUArch applies equality check predicate on the "cpu_arch" field. It's identical to CPUArchEQ.
func CPUArch(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCPUArch, v))
}

// CPUInfo applies equality check predicate on the "cpu_info" field. It's identical to CPUInfoEQ.
func CPUInfo(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCPUInfo, v))
}

// GpuInfo applies equality check predicate on the "gpu_info" field. It's identical to GpuInfoEQ.
func GpuInfo(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldGpuInfo, v))
}

// GpuCount applies equality check predicate on the "gpu_count" field. It's identical to GpuCountEQ.
func GpuCount(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldGpuCount, v))
}

// RAMGB applies equality check predicate on the "ram_gb" field. It's identical to RAMGBEQ.
func RAMGB(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldRAMGB, v))
}

// KittVersion applies equality check predicate on the "kitt_version" field. It's identical to KittVersionEQ.
func KittVersion(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldKittVersion, v))
}

// TokenHash applies equality check predicate on the "token_hash" field. It's identical to TokenHashEQ.
func TokenHash(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTokenHash, v))
}

// TokenPrefix applies equality check predicate on the "token_prefix" field. It's identical to TokenPrefixEQ.
func TokenPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTokenPrefix, v))
}

// LastHeartbeat applies equality check predicate on the "last_heartbeat" field. It's identical to LastHeartbeatEQ.
func LastHeartbeat(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastHeartbeat, v))
}

// RegisteredAt applies equality check predicate on the "registered_at" field. It's identical to RegisteredAtEQ.
func RegisteredAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldRegisteredAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldName, v))
}

// HostnameEQ applies the EQ predicate on the "hostname" field.
func HostnameEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldHostname, v))
}

// HostnameNEQ applies the NEQ predicate on the "hostname" field.
func HostnameNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldHostname, v))
}

// HostnameIn applies the In predicate on the "hostname" field.
func HostnameIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldHostname, vs...))
}

// HostnameNotIn applies the NotIn predicate on the "hostname" field.
func HostnameNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldHostname, vs...))
}

// HostnameGT applies the GT predicate on the "hostname" field.
func HostnameGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldHostname, v))
}

// HostnameGTE applies the GTE predicate on the "hostname" field.
func HostnameGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldHostname, v))
}

// HostnameLT applies the LT predicate on the "hostname" field.
func HostnameLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldHostname, v))
}

// HostnameLTE applies the LTE predicate on the "hostname" field.
func HostnameLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldHostname, v))
}

// HostnameContains applies the Contains predicate on the "hostname" field.
func HostnameContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldHostname, v))
}

// HostnameHasPrefix applies the HasPrefix predicate on the "hostname" field.
func HostnameHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldHostname, v))
}

// HostnameHasSuffix applies the HasSuffix predicate on the "hostname" field.
func HostnameHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldHostname, v))
}

// HostnameIsNil applies the IsNil predicate on the "hostname" field.
func HostnameIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldHostname))
}

// HostnameNotNil applies the NotNil predicate on the "hostname" field.
func HostnameNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldHostname))
}

// HostnameEqualFold applies the EqualFold predicate on the "hostname" field.
func HostnameEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldHostname, v))
}

// HostnameContainsFold applies the ContainsFold predicate on the "hostname" field.
func HostnameContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldHostname, v))
}

// PortEQ applies the EQ predicate on the "port" field.
func PortEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPort, v))
}

// PortNEQ applies the NEQ predicate on the "port" field.
func PortNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldPort, v))
}

// PortIn applies the In predicate on the "port" field.
func PortIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldPort, vs...))
}

// PortNotIn applies the NotIn predicate on the "port" field.
func PortNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldPort, vs...))
}

// PortGT applies the GT predicate on the "port" field.
func PortGT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldPort, v))
}

// PortGTE applies the GTE predicate on the "port" field.
func PortGTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldPort, v))
}

// PortLT applies the LT predicate on the "port" field.
func PortLT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldPort, v))
}

// PortLTE applies the LTE predicate on the "port" field.
func PortLTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldPort, v))
}

// CPUArchEQ applies the EQ predicate on the "cpu_arch" field.
func CPUArchEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCPUArch, v))
}

// CPUArchNEQ applies the NEQ predicate on the "cpu_arch" field.
func CPUArchNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCPUArch, v))
}

// CPUArchIn applies the In predicate on the "cpu_arch" field.
func CPUArchIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCPUArch, vs...))
}

// CPUArchNotIn applies the NotIn predicate on the "cpu_arch" field.
func CPUArchNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCPUArch, vs...))
}

// CPUArchGT applies the GT predicate on the "cpu_arch" field.
func CPUArchGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCPUArch, v))
}

// CPUArchGTE applies the GTE predicate on the "cpu_arch" field.
func CPUArchGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCPUArch, v))
}

// CPUArchLT applies the LT predicate on the "cpu_arch" field.
func CPUArchLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCPUArch, v))
}

// CPUArchLTE applies the LTE predicate on the "cpu_arch" field.
func CPUArchLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCPUArch, v))
}

// CPUArchContains applies the Contains predicate on the "cpu_arch" field.
func CPUArchContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldCPUArch, v))
}

// CPUArchHasPrefix applies the HasPrefix predicate on the "cpu_arch" field.
func CPUArchHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldCPUArch, v))
}

// CPUArchHasSuffix applies the HasSuffix predicate on the "cpu_arch" field.
func CPUArchHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldCPUArch, v))
}

// CPUArchIsNil applies the IsNil predicate on the "cpu_arch" field.
func CPUArchIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldCPUArch))
}

// CPUArchNotNil applies the NotNil predicate on the "cpu_arch" field.
func CPUArchNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldCPUArch))
}

// CPUArchEqualFold applies the EqualFold predicate on the "cpu_arch" field.
func CPUArchEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldCPUArch, v))
}

// CPUArchContainsFold applies the ContainsFold predicate on the "cpu_arch" field.
func CPUArchContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldCPUArch, v))
}

// CPUInfoEQ applies the EQ predicate on the "cpu_info" field.
func CPUInfoEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCPUInfo, v))
}

// CPUInfoNEQ applies the NEQ predicate on the "cpu_info" field.
func CPUInfoNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCPUInfo, v))
}

// CPUInfoIn applies the In predicate on the "cpu_info" field.
func CPUInfoIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCPUInfo, vs...))
}

// CPUInfoNotIn applies the NotIn predicate on the "cpu_info" field.
func CPUInfoNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCPUInfo, vs...))
}

// CPUInfoGT applies the GT predicate on the "cpu_info" field.
func CPUInfoGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCPUInfo, v))
}

// CPUInfoGTE applies the GTE predicate on the "cpu_info" field.
func CPUInfoGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCPUInfo, v))
}

// CPUInfoLT applies the LT predicate on the "cpu_info" field.
func CPUInfoLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCPUInfo, v))
}

// CPUInfoLTE applies the LTE predicate on the "cpu_info" field.
func CPUInfoLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCPUInfo, v))
}

// CPUInfoContains applies the Contains predicate on the "cpu_info" field.
func CPUInfoContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldCPUInfo, v))
}

// CPUInfoHasPrefix applies the HasPrefix predicate on the "cpu_info" field.
func CPUInfoHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldCPUInfo, v))
}

// CPUInfoHasSuffix applies the HasSuffix predicate on the "cpu_info" field.
func CPUInfoHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldCPUInfo, v))
}

// CPUInfoIsNil applies the IsNil predicate on the "cpu_info" field.
func CPUInfoIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldCPUInfo))
}

// CPUInfoNotNil applies the NotNil predicate on the "cpu_info" field.
func CPUInfoNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldCPUInfo))
}

// CPUInfoEqualFold applies the EqualFold predicate on the "cpu_info" field.
func CPUInfoEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldCPUInfo, v))
}

// CPUInfoContainsFold applies the ContainsFold predicate on the "cpu_info" field.
func CPUInfoContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldCPUInfo, v))
}

// GpuInfoEQ applies the EQ predicate on the "gpu_info" field.
func GpuInfoEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldGpuInfo, v))
}

// GpuInfoNEQ applies the NEQ predicate on the "gpu_info" field.
func GpuInfoNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldGpuInfo, v))
}

// GpuInfoIn applies the In predicate on the "gpu_info" field.
func GpuInfoIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldGpuInfo, vs...))
}

// GpuInfoNotIn applies the NotIn predicate on the "gpu_info" field.
func GpuInfoNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldGpuInfo, vs...))
}

// GpuInfoGT applies the GT predicate on the "gpu_info" field.
func GpuInfoGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldGpuInfo, v))
}

// GpuInfoGTE applies the GTE predicate on the "gpu_info" field.
func GpuInfoGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldGpuInfo, v))
}

// GpuInfoLT applies the LT predicate on the "gpu_info" field.
func GpuInfoLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldGpuInfo, v))
}

// GpuInfoLTE applies the LTE predicate on the "gpu_info" field.
func GpuInfoLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldGpuInfo, v))
}

// GpuInfoContains applies the Contains predicate on the "gpu_info" field.
func GpuInfoContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldGpuInfo, v))
}

// GpuInfoHasPrefix applies the HasPrefix predicate on the "gpu_info" field.
func GpuInfoHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldGpuInfo, v))
}

// GpuInfoHasSuffix applies the HasSuffix predicate on the "gpu_info" field.
func GpuInfoHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldGpuInfo, v))
}

// GpuInfoIsNil applies the IsNil predicate on the "gpu_info" field.
func GpuInfoIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldGpuInfo))
}

// GpuInfoNotNil applies the NotNil predicate on the "gpu_info" field.
func GpuInfoNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldGpuInfo))
}

// GpuInfoEqualFold applies the EqualFold predicate on the "gpu_info" field.
func GpuInfoEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldGpuInfo, v))
}

// GpuInfoContainsFold applies the ContainsFold predicate on the "gpu_info" field.
func GpuInfoContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldGpuInfo, v))
}

// GpuCountEQ applies the EQ predicate on the "gpu_count" field.
func GpuCountEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldGpuCount, v))
}

// GpuCountNEQ applies the NEQ predicate on the "gpu_count" field.
func GpuCountNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldGpuCount, v))
}

// GpuCountIn applies the In predicate on the "gpu_count" field.
func GpuCountIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldGpuCount, vs...))
}

// GpuCountNotIn applies the NotIn predicate on the "gpu_count" field.
func GpuCountNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldGpuCount, vs...))
}

// GpuCountGT applies the GT predicate on the "gpu_count" field.
func GpuCountGT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldGpuCount, v))
}

// GpuCountGTE applies the GTE predicate on the "gpu_count" field.
func GpuCountGTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldGpuCount, v))
}

// GpuCountLT applies the LT predicate on the "gpu_count" field.
func GpuCountLT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldGpuCount, v))
}

// GpuCountLTE applies the LTE predicate on the "gpu_count" field.
func GpuCountLTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldGpuCount, v))
}

// RAMGBEQ applies the EQ predicate on the "ram_gb" field.
func RAMGBEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldRAMGB, v))
}

// RAMGBNEQ applies the NEQ predicate on the "ram_gb" field.
func RAMGBNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldRAMGB, v))
}

// RAMGBIn applies the In predicate on the "ram_gb" field.
func RAMGBIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldRAMGB, vs...))
}

// RAMGBNotIn applies the NotIn predicate on the "ram_gb" field.
func RAMGBNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldRAMGB, vs...))
}

// RAMGBGT applies the GT predicate on the "ram_gb" field.
func RAMGBGT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldRAMGB, v))
}

// RAMGBGTE applies the GTE predicate on the "ram_gb" field.
func RAMGBGTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldRAMGB, v))
}

// RAMGBLT applies the LT predicate on the "ram_gb" field.
func RAMGBLT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldRAMGB, v))
}

// RAMGBLTE applies the LTE predicate on the "ram_gb" field.
func RAMGBLTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldRAMGB, v))
}

// KittVersionEQ applies the EQ predicate on the "kitt_version" field.
func KittVersionEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldKittVersion, v))
}

// KittVersionNEQ applies the NEQ predicate on the "kitt_version" field.
func KittVersionNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldKittVersion, v))
}

// KittVersionIn applies the In predicate on the "kitt_version" field.
func KittVersionIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldKittVersion, vs...))
}

// KittVersionNotIn applies the NotIn predicate on the "kitt_version" field.
func KittVersionNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldKittVersion, vs...))
}

// KittVersionGT applies the GT predicate on the "kitt_version" field.
func KittVersionGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldKittVersion, v))
}

// KittVersionGTE applies the GTE predicate on the "kitt_version" field.
func KittVersionGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldKittVersion, v))
}

// KittVersionLT applies the LT predicate on the "kitt_version" field.
func KittVersionLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldKittVersion, v))
}

// KittVersionLTE applies the LTE predicate on the "kitt_version" field.
func KittVersionLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldKittVersion, v))
}

// KittVersionContains applies the Contains predicate on the "kitt_version" field.
func KittVersionContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldKittVersion, v))
}

// KittVersionHasPrefix applies the HasPrefix predicate on the "kitt_version" field.
func KittVersionHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldKittVersion, v))
}

// KittVersionHasSuffix applies the HasSuffix predicate on the "kitt_version" field.
func KittVersionHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldKittVersion, v))
}

// KittVersionIsNil applies the IsNil predicate on the "kitt_version" field.
func KittVersionIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldKittVersion))
}

// KittVersionNotNil applies the NotNil predicate on the "kitt_version" field.
func KittVersionNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldKittVersion))
}

// KittVersionEqualFold applies the EqualFold predicate on the "kitt_version" field.
func KittVersionEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldKittVersion, v))
}

// KittVersionContainsFold applies the ContainsFold predicate on the "kitt_version" field.
func KittVersionContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldKittVersion, v))
}

// HardwareDetailsIsNil applies the IsNil predicate on the "hardware_details" field.
func HardwareDetailsIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldHardwareDetails))
}

// HardwareDetailsNotNil applies the NotNil predicate on the "hardware_details" field.
func HardwareDetailsNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldHardwareDetails))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldStatus, vs...))
}

// TokenHashEQ applies the EQ predicate on the "token_hash" field.
func TokenHashEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTokenHash, v))
}

// TokenHashNEQ applies the NEQ predicate on the "token_hash" field.
func TokenHashNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldTokenHash, v))
}

// TokenHashIn applies the In predicate on the "token_hash" field.
func TokenHashIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldTokenHash, vs...))
}

// TokenHashNotIn applies the NotIn predicate on the "token_hash" field.
func TokenHashNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldTokenHash, vs...))
}

// TokenHashGT applies the GT predicate on the "token_hash" field.
func TokenHashGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldTokenHash, v))
}

// TokenHashGTE applies the GTE predicate on the "token_hash" field.
func TokenHashGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldTokenHash, v))
}

// TokenHashLT applies the LT predicate on the "token_hash" field.
func TokenHashLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldTokenHash, v))
}

// TokenHashLTE applies the LTE predicate on the "token_hash" field.
func TokenHashLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldTokenHash, v))
}

// TokenHashContains applies the Contains predicate on the "token_hash" field.
func TokenHashContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldTokenHash, v))
}

// TokenHashHasPrefix applies the HasPrefix predicate on the "token_hash" field.
func TokenHashHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldTokenHash, v))
}

// TokenHashHasSuffix applies the HasSuffix predicate on the "token_hash" field.
func TokenHashHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldTokenHash, v))
}

// TokenHashEqualFold applies the EqualFold predicate on the "token_hash" field.
func TokenHashEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldTokenHash, v))
}

// TokenHashContainsFold applies the ContainsFold predicate on the "token_hash" field.
func TokenHashContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldTokenHash, v))
}

// TokenPrefixEQ applies the EQ predicate on the "token_prefix" field.
func TokenPrefixEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTokenPrefix, v))
}

// TokenPrefixNEQ applies the NEQ predicate on the "token_prefix" field.
func TokenPrefixNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldTokenPrefix, v))
}

// TokenPrefixIn applies the In predicate on the "token_prefix" field.
func TokenPrefixIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldTokenPrefix, vs...))
}

// TokenPrefixNotIn applies the NotIn predicate on the "token_prefix" field.
func TokenPrefixNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldTokenPrefix, vs...))
}

// TokenPrefixGT applies the GT predicate on the "token_prefix" field.
func TokenPrefixGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldTokenPrefix, v))
}

// TokenPrefixGTE applies the GTE predicate on the "token_prefix" field.
func TokenPrefixGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldTokenPrefix, v))
}

// TokenPrefixLT applies the LT predicate on the "token_prefix" field.
func TokenPrefixLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldTokenPrefix, v))
}

// TokenPrefixLTE applies the LTE predicate on the "token_prefix" field.
func TokenPrefixLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldTokenPrefix, v))
}

// TokenPrefixContains applies the Contains predicate on the "token_prefix" field.
func TokenPrefixContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldTokenPrefix, v))
}

// TokenPrefixHasPrefix applies the HasPrefix predicate on the "token_prefix" field.
func TokenPrefixHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldTokenPrefix, v))
}

// TokenPrefixHasSuffix applies the HasSuffix predicate on the "token_prefix" field.
func TokenPrefixHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldTokenPrefix, v))
}

// TokenPrefixEqualFold applies the EqualFold predicate on the "token_prefix" field.
func TokenPrefixEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldTokenPrefix, v))
}

// TokenPrefixContainsFold applies the ContainsFold predicate on the "token_prefix" field.
func TokenPrefixContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldTokenPrefix, v))
}

// LastHeartbeatEQ applies the EQ predicate on the "last_heartbeat" field.
func LastHeartbeatEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatNEQ applies the NEQ predicate on the "last_heartbeat" field.
func LastHeartbeatNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatIn applies the In predicate on the "last_heartbeat" field.
func LastHeartbeatIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatNotIn applies the NotIn predicate on the "last_heartbeat" field.
func LastHeartbeatNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatGT applies the GT predicate on the "last_heartbeat" field.
func LastHeartbeatGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldLastHeartbeat, v))
}

// LastHeartbeatGTE applies the GTE predicate on the "last_heartbeat" field.
func LastHeartbeatGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldLastHeartbeat, v))
}

// LastHeartbeatLT applies the LT predicate on the "last_heartbeat" field.
func LastHeartbeatLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldLastHeartbeat, v))
}

// LastHeartbeatLTE applies the LTE predicate on the "last_heartbeat" field.
func LastHeartbeatLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldLastHeartbeat, v))
}

// LastHeartbeatIsNil applies the IsNil predicate on the "last_heartbeat" field.
func LastHeartbeatIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldLastHeartbeat))
}

// LastHeartbeatNotNil applies the NotNil predicate on the "last_heartbeat" field.
func LastHeartbeatNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldLastHeartbeat))
}

// RegisteredAtEQ applies the EQ predicate on the "registered_at" field.
func RegisteredAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldRegisteredAt, v))
}

// RegisteredAtNEQ applies the NEQ predicate on the "registered_at" field.
func RegisteredAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldRegisteredAt, v))
}

// RegisteredAtIn applies the In predicate on the "registered_at" field.
func RegisteredAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldRegisteredAt, vs...))
}

// RegisteredAtNotIn applies the NotIn predicate on the "registered_at" field.
func RegisteredAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldRegisteredAt, vs...))
}

// RegisteredAtGT applies the GT predicate on the "registered_at" field.
func RegisteredAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldRegisteredAt, v))
}

// RegisteredAtGTE applies the GTE predicate on the "registered_at" field.
func RegisteredAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldRegisteredAt, v))
}

// RegisteredAtLT applies the LT predicate on the "registered_at" field.
func RegisteredAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldRegisteredAt, v))
}

// RegisteredAtLTE applies the LTE predicate on the "registered_at" field.
func RegisteredAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldRegisteredAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.NotPredicates(p))
}
