// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Kirizan/kitt-sub000/ent/agent"
	"github.com/Kirizan/kitt-sub000/ent/predicate"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AgentUpdate) SetName(v string) *AgentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableName(v *string) *AgentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetHostname sets the "hostname" field.
func (_u *AgentUpdate) SetHostname(v string) *AgentUpdate {
	_u.mutation.SetHostname(v)
	return _u
}

// SetNillableHostname sets the "hostname" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableHostname(v *string) *AgentUpdate {
	if v != nil {
		_u.SetHostname(*v)
	}
	return _u
}

// ClearHostname clears the value of the "hostname" field.
func (_u *AgentUpdate) ClearHostname() *AgentUpdate {
	_u.mutation.ClearHostname()
	return _u
}

// SetPort sets the "port" field.
func (_u *AgentUpdate) SetPort(v int) *AgentUpdate {
	_u.mutation.ResetPort()
	_u.mutation.SetPort(v)
	return _u
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_u *AgentUpdate) SetNillablePort(v *int) *AgentUpdate {
	if v != nil {
		_u.SetPort(*v)
	}
	return _u
}

// AddPort adds value to the "port" field.
func (_u *AgentUpdate) AddPort(v int) *AgentUpdate {
	_u.mutation.AddPort(v)
	return _u
}

// SetCPUArch sets the "cpu_arch" field.
func (_u *AgentUpdate) SetCPUArch(v string) *AgentUpdate {
	_u.mutation.SetCPUArch(v)
	return _u
}

// SetNillableCPUArch sets the "cpu_arch" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableCPUArch(v *string) *AgentUpdate {
	if v != nil {
		_u.SetCPUArch(*v)
	}
	return _u
}

// ClearCPUArch clears the value of the "cpu_arch" field.
func (_u *AgentUpdate) ClearCPUArch() *AgentUpdate {
	_u.mutation.ClearCPUArch()
	return _u
}

// SetCPUInfo sets the "cpu_info" field.
func (_u *AgentUpdate) SetCPUInfo(v string) *AgentUpdate {
	_u.mutation.SetCPUInfo(v)
	return _u
}

// SetNillableCPUInfo sets the "cpu_info" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableCPUInfo(v *string) *AgentUpdate {
	if v != nil {
		_u.SetCPUInfo(*v)
	}
	return _u
}

// ClearCPUInfo clears the value of the "cpu_info" field.
func (_u *AgentUpdate) ClearCPUInfo() *AgentUpdate {
	_u.mutation.ClearCPUInfo()
	return _u
}

// SetGpuInfo sets the "gpu_info" field.
func (_u *AgentUpdate) SetGpuInfo(v string) *AgentUpdate {
	_u.mutation.SetGpuInfo(v)
	return _u
}

// SetNillableGpuInfo sets the "gpu_info" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableGpuInfo(v *string) *AgentUpdate {
	if v != nil {
		_u.SetGpuInfo(*v)
	}
	return _u
}

// ClearGpuInfo clears the value of the "gpu_info" field.
func (_u *AgentUpdate) ClearGpuInfo() *AgentUpdate {
	_u.mutation.ClearGpuInfo()
	return _u
}

// SetGpuCount sets the "gpu_count" field.
func (_u *AgentUpdate) SetGpuCount(v int) *AgentUpdate {
	_u.mutation.ResetGpuCount()
	_u.mutation.SetGpuCount(v)
	return _u
}

// SetNillableGpuCount sets the "gpu_count" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableGpuCount(v *int) *AgentUpdate {
	if v != nil {
		_u.SetGpuCount(*v)
	}
	return _u
}

// AddGpuCount adds value to the "gpu_count" field.
func (_u *AgentUpdate) AddGpuCount(v int) *AgentUpdate {
	_u.mutation.AddGpuCount(v)
	return _u
}

// SetRAMGB sets the "ram_gb" field.
func (_u *AgentUpdate) SetRAMGB(v int) *AgentUpdate {
	_u.mutation.ResetRAMGB()
	_u.mutation.SetRAMGB(v)
	return _u
}

// SetNillableRAMGB sets the "ram_gb" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableRAMGB(v *int) *AgentUpdate {
	if v != nil {
		_u.SetRAMGB(*v)
	}
	return _u
}

// AddRAMGB adds value to the "ram_gb" field.
func (_u *AgentUpdate) AddRAMGB(v int) *AgentUpdate {
	_u.mutation.AddRAMGB(v)
	return _u
}

// SetKittVersion sets the "kitt_version" field.
func (_u *AgentUpdate) SetKittVersion(v string) *AgentUpdate {
	_u.mutation.SetKittVersion(v)
	return _u
}

// SetNillableKittVersion sets the "kitt_version" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableKittVersion(v *string) *AgentUpdate {
	if v != nil {
		_u.SetKittVersion(*v)
	}
	return _u
}

// ClearKittVersion clears the value of the "kitt_version" field.
func (_u *AgentUpdate) ClearKittVersion() *AgentUpdate {
	_u.mutation.ClearKittVersion()
	return _u
}

// SetHardwareDetails sets the "hardware_details" field.
func (_u *AgentUpdate) SetHardwareDetails(v map[string]interface{}) *AgentUpdate {
	_u.mutation.SetHardwareDetails(v)
	return _u
}

// ClearHardwareDetails clears the value of the "hardware_details" field.
func (_u *AgentUpdate) ClearHardwareDetails() *AgentUpdate {
	_u.mutation.ClearHardwareDetails()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdate) SetStatus(v agent.Status) *AgentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableStatus(v *agent.Status) *AgentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTokenHash sets the "token_hash" field.
func (_u *AgentUpdate) SetTokenHash(v string) *AgentUpdate {
	_u.mutation.SetTokenHash(v)
	return _u
}

// SetNillableTokenHash sets the "token_hash" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableTokenHash(v *string) *AgentUpdate {
	if v != nil {
		_u.SetTokenHash(*v)
	}
	return _u
}

// SetTokenPrefix sets the "token_prefix" field.
func (_u *AgentUpdate) SetTokenPrefix(v string) *AgentUpdate {
	_u.mutation.SetTokenPrefix(v)
	return _u
}

// SetNillableTokenPrefix sets the "token_prefix" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableTokenPrefix(v *string) *AgentUpdate {
	if v != nil {
		_u.SetTokenPrefix(*v)
	}
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *AgentUpdate) SetLastHeartbeat(v time.Time) *AgentUpdate {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableLastHeartbeat(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *AgentUpdate) ClearLastHeartbeat() *AgentUpdate {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TokenPrefix(); ok {
		if err := agent.TokenPrefixValidator(v); err != nil {
			return &ValidationError{Name: "token_prefix", err: fmt.Errorf(`ent: validator failed for field "Agent.token_prefix": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hostname(); ok {
		_spec.SetField(agent.FieldHostname, field.TypeString, value)
	}
	if _u.mutation.HostnameCleared() {
		_spec.ClearField(agent.FieldHostname, field.TypeString)
	}
	if value, ok := _u.mutation.Port(); ok {
		_spec.SetField(agent.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPort(); ok {
		_spec.AddField(agent.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CPUArch(); ok {
		_spec.SetField(agent.FieldCPUArch, field.TypeString, value)
	}
	if _u.mutation.CPUArchCleared() {
		_spec.ClearField(agent.FieldCPUArch, field.TypeString)
	}
	if value, ok := _u.mutation.CPUInfo(); ok {
		_spec.SetField(agent.FieldCPUInfo, field.TypeString, value)
	}
	if _u.mutation.CPUInfoCleared() {
		_spec.ClearField(agent.FieldCPUInfo, field.TypeString)
	}
	if value, ok := _u.mutation.GpuInfo(); ok {
		_spec.SetField(agent.FieldGpuInfo, field.TypeString, value)
	}
	if _u.mutation.GpuInfoCleared() {
		_spec.ClearField(agent.FieldGpuInfo, field.TypeString)
	}
	if value, ok := _u.mutation.GpuCount(); ok {
		_spec.SetField(agent.FieldGpuCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGpuCount(); ok {
		_spec.AddField(agent.FieldGpuCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RAMGB(); ok {
		_spec.SetField(agent.FieldRAMGB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRAMGB(); ok {
		_spec.AddField(agent.FieldRAMGB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.KittVersion(); ok {
		_spec.SetField(agent.FieldKittVersion, field.TypeString, value)
	}
	if _u.mutation.KittVersionCleared() {
		_spec.ClearField(agent.FieldKittVersion, field.TypeString)
	}
	if value, ok := _u.mutation.HardwareDetails(); ok {
		_spec.SetField(agent.FieldHardwareDetails, field.TypeJSON, value)
	}
	if _u.mutation.HardwareDetailsCleared() {
		_spec.ClearField(agent.FieldHardwareDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TokenHash(); ok {
		_spec.SetField(agent.FieldTokenHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokenPrefix(); ok {
		_spec.SetField(agent.FieldTokenPrefix, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(agent.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(agent.FieldLastHeartbeat, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetName sets the "name" field.
func (_u *AgentUpdateOne) SetName(v string) *AgentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableName(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetHostname sets the "hostname" field.
func (_u *AgentUpdateOne) SetHostname(v string) *AgentUpdateOne {
	_u.mutation.SetHostname(v)
	return _u
}

// SetNillableHostname sets the "hostname" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableHostname(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetHostname(*v)
	}
	return _u
}

// ClearHostname clears the value of the "hostname" field.
func (_u *AgentUpdateOne) ClearHostname() *AgentUpdateOne {
	_u.mutation.ClearHostname()
	return _u
}

// SetPort sets the "port" field.
func (_u *AgentUpdateOne) SetPort(v int) *AgentUpdateOne {
	_u.mutation.ResetPort()
	_u.mutation.SetPort(v)
	return _u
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillablePort(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetPort(*v)
	}
	return _u
}

// AddPort adds value to the "port" field.
func (_u *AgentUpdateOne) AddPort(v int) *AgentUpdateOne {
	_u.mutation.AddPort(v)
	return _u
}

// SetCPUArch sets the "cpu_arch" field.
func (_u *AgentUpdateOne) SetCPUArch(v string) *AgentUpdateOne {
	_u.mutation.SetCPUArch(v)
	return _u
}

// SetNillableCPUArch sets the "cpu_arch" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableCPUArch(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetCPUArch(*v)
	}
	return _u
}

// ClearCPUArch clears the value of the "cpu_arch" field.
func (_u *AgentUpdateOne) ClearCPUArch() *AgentUpdateOne {
	_u.mutation.ClearCPUArch()
	return _u
}

// SetCPUInfo sets the "cpu_info" field.
func (_u *AgentUpdateOne) SetCPUInfo(v string) *AgentUpdateOne {
	_u.mutation.SetCPUInfo(v)
	return _u
}

// SetNillableCPUInfo sets the "cpu_info" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableCPUInfo(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetCPUInfo(*v)
	}
	return _u
}

// ClearCPUInfo clears the value of the "cpu_info" field.
func (_u *AgentUpdateOne) ClearCPUInfo() *AgentUpdateOne {
	_u.mutation.ClearCPUInfo()
	return _u
}

// SetGpuInfo sets the "gpu_info" field.
func (_u *AgentUpdateOne) SetGpuInfo(v string) *AgentUpdateOne {
	_u.mutation.SetGpuInfo(v)
	return _u
}

// SetNillableGpuInfo sets the "gpu_info" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableGpuInfo(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetGpuInfo(*v)
	}
	return _u
}

// ClearGpuInfo clears the value of the "gpu_info" field.
func (_u *AgentUpdateOne) ClearGpuInfo() *AgentUpdateOne {
	_u.mutation.ClearGpuInfo()
	return _u
}

// SetGpuCount sets the "gpu_count" field.
func (_u *AgentUpdateOne) SetGpuCount(v int) *AgentUpdateOne {
	_u.mutation.ResetGpuCount()
	_u.mutation.SetGpuCount(v)
	return _u
}

// SetNillableGpuCount sets the "gpu_count" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableGpuCount(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetGpuCount(*v)
	}
	return _u
}

// AddGpuCount adds value to the "gpu_count" field.
func (_u *AgentUpdateOne) AddGpuCount(v int) *AgentUpdateOne {
	_u.mutation.AddGpuCount(v)
	return _u
}

// SetRAMGB sets the "ram_gb" field.
func (_u *AgentUpdateOne) SetRAMGB(v int) *AgentUpdateOne {
	_u.mutation.ResetRAMGB()
	_u.mutation.SetRAMGB(v)
	return _u
}

// SetNillableRAMGB sets the "ram_gb" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableRAMGB(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetRAMGB(*v)
	}
	return _u
}

// AddRAMGB adds value to the "ram_gb" field.
func (_u *AgentUpdateOne) AddRAMGB(v int) *AgentUpdateOne {
	_u.mutation.AddRAMGB(v)
	return _u
}

// SetKittVersion sets the "kitt_version" field.
func (_u *AgentUpdateOne) SetKittVersion(v string) *AgentUpdateOne {
	_u.mutation.SetKittVersion(v)
	return _u
}

// SetNillableKittVersion sets the "kitt_version" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableKittVersion(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetKittVersion(*v)
	}
	return _u
}

// ClearKittVersion clears the value of the "kitt_version" field.
func (_u *AgentUpdateOne) ClearKittVersion() *AgentUpdateOne {
	_u.mutation.ClearKittVersion()
	return _u
}

// SetHardwareDetails sets the "hardware_details" field.
func (_u *AgentUpdateOne) SetHardwareDetails(v map[string]interface{}) *AgentUpdateOne {
	_u.mutation.SetHardwareDetails(v)
	return _u
}

// ClearHardwareDetails clears the value of the "hardware_details" field.
func (_u *AgentUpdateOne) ClearHardwareDetails() *AgentUpdateOne {
	_u.mutation.ClearHardwareDetails()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdateOne) SetStatus(v agent.Status) *AgentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableStatus(v *agent.Status) *AgentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTokenHash sets the "token_hash" field.
func (_u *AgentUpdateOne) SetTokenHash(v string) *AgentUpdateOne {
	_u.mutation.SetTokenHash(v)
	return _u
}

// SetNillableTokenHash sets the "token_hash" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableTokenHash(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetTokenHash(*v)
	}
	return _u
}

// SetTokenPrefix sets the "token_prefix" field.
func (_u *AgentUpdateOne) SetTokenPrefix(v string) *AgentUpdateOne {
	_u.mutation.SetTokenPrefix(v)
	return _u
}

// SetNillableTokenPrefix sets the "token_prefix" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableTokenPrefix(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetTokenPrefix(*v)
	}
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *AgentUpdateOne) SetLastHeartbeat(v time.Time) *AgentUpdateOne {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableLastHeartbeat(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *AgentUpdateOne) ClearLastHeartbeat() *AgentUpdateOne {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TokenPrefix(); ok {
		if err := agent.TokenPrefixValidator(v); err != nil {
			return &ValidationError{Name: "token_prefix", err: fmt.Errorf(`ent: validator failed for field "Agent.token_prefix": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hostname(); ok {
		_spec.SetField(agent.FieldHostname, field.TypeString, value)
	}
	if _u.mutation.HostnameCleared() {
		_spec.ClearField(agent.FieldHostname, field.TypeString)
	}
	if value, ok := _u.mutation.Port(); ok {
		_spec.SetField(agent.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPort(); ok {
		_spec.AddField(agent.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CPUArch(); ok {
		_spec.SetField(agent.FieldCPUArch, field.TypeString, value)
	}
	if _u.mutation.CPUArchCleared() {
		_spec.ClearField(agent.FieldCPUArch, field.TypeString)
	}
	if value, ok := _u.mutation.CPUInfo(); ok {
		_spec.SetField(agent.FieldCPUInfo, field.TypeString, value)
	}
	if _u.mutation.CPUInfoCleared() {
		_spec.ClearField(agent.FieldCPUInfo, field.TypeString)
	}
	if value, ok := _u.mutation.GpuInfo(); ok {
		_spec.SetField(agent.FieldGpuInfo, field.TypeString, value)
	}
	if _u.mutation.GpuInfoCleared() {
		_spec.ClearField(agent.FieldGpuInfo, field.TypeString)
	}
	if value, ok := _u.mutation.GpuCount(); ok {
		_spec.SetField(agent.FieldGpuCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGpuCount(); ok {
		_spec.AddField(agent.FieldGpuCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RAMGB(); ok {
		_spec.SetField(agent.FieldRAMGB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRAMGB(); ok {
		_spec.AddField(agent.FieldRAMGB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.KittVersion(); ok {
		_spec.SetField(agent.FieldKittVersion, field.TypeString, value)
	}
	if _u.mutation.KittVersionCleared() {
		_spec.ClearField(agent.FieldKittVersion, field.TypeString)
	}
	if value, ok := _u.mutation.HardwareDetails(); ok {
		_spec.SetField(agent.FieldHardwareDetails, field.TypeJSON, value)
	}
	if _u.mutation.HardwareDetailsCleared() {
		_spec.ClearField(agent.FieldHardwareDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TokenHash(); ok {
		_spec.SetField(agent.FieldTokenHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokenPrefix(); ok {
		_spec.SetField(agent.FieldTokenPrefix, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(agent.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(agent.FieldLastHeartbeat, field.TypeTime)
	}
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
