// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Kirizan/kitt-sub000/ent/agent"
)

// AgentCreate is the builder for creating a Agent entity.
type AgentCreate struct {
	config
	mutation *AgentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *AgentCreate) SetName(v string) *AgentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetHostname sets the "hostname" field.
func (_c *AgentCreate) SetHostname(v string) *AgentCreate {
	_c.mutation.SetHostname(v)
	return _c
}

// SetNillableHostname sets the "hostname" field if the given value is not nil.
func (_c *AgentCreate) SetNillableHostname(v *string) *AgentCreate {
	if v != nil {
		_c.SetHostname(*v)
	}
	return _c
}

// SetPort sets the "port" field.
func (_c *AgentCreate) SetPort(v int) *AgentCreate {
	_c.mutation.SetPort(v)
	return _c
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_c *AgentCreate) SetNillablePort(v *int) *AgentCreate {
	if v != nil {
		_c.SetPort(*v)
	}
	return _c
}

// SetCPUArch sets the "cpu_arch" field.
func (_c *AgentCreate) SetCPUArch(v string) *AgentCreate {
	_c.mutation.SetCPUArch(v)
	return _c
}

// SetNillableCPUArch sets the "cpu_arch" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCPUArch(v *string) *AgentCreate {
	if v != nil {
		_c.SetCPUArch(*v)
	}
	return _c
}

// SetCPUInfo sets the "cpu_info" field.
func (_c *AgentCreate) SetCPUInfo(v string) *AgentCreate {
	_c.mutation.SetCPUInfo(v)
	return _c
}

// SetNillableCPUInfo sets the "cpu_info" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCPUInfo(v *string) *AgentCreate {
	if v != nil {
		_c.SetCPUInfo(*v)
	}
	return _c
}

// SetGpuInfo sets the "gpu_info" field.
func (_c *AgentCreate) SetGpuInfo(v string) *AgentCreate {
	_c.mutation.SetGpuInfo(v)
	return _c
}

// SetNillableGpuInfo sets the "gpu_info" field if the given value is not nil.
func (_c *AgentCreate) SetNillableGpuInfo(v *string) *AgentCreate {
	if v != nil {
		_c.SetGpuInfo(*v)
	}
	return _c
}

// SetGpuCount sets the "gpu_count" field.
func (_c *AgentCreate) SetGpuCount(v int) *AgentCreate {
	_c.mutation.SetGpuCount(v)
	return _c
}

// SetNillableGpuCount sets the "gpu_count" field if the given value is not nil.
func (_c *AgentCreate) SetNillableGpuCount(v *int) *AgentCreate {
	if v != nil {
		_c.SetGpuCount(*v)
	}
	return _c
}

// SetRAMGB sets the "ram_gb" field.
func (_c *AgentCreate) SetRAMGB(v int) *AgentCreate {
	_c.mutation.SetRAMGB(v)
	return _c
}

// SetNillableRAMGB sets the "ram_gb" field if the given value is not nil.
func (_c *AgentCreate) SetNillableRAMGB(v *int) *AgentCreate {
	if v != nil {
		_c.SetRAMGB(*v)
	}
	return _c
}

// SetKittVersion sets the "kitt_version" field.
func (_c *AgentCreate) SetKittVersion(v string) *AgentCreate {
	_c.mutation.SetKittVersion(v)
	return _c
}

// SetNillableKittVersion sets the "kitt_version" field if the given value is not nil.
func (_c *AgentCreate) SetNillableKittVersion(v *string) *AgentCreate {
	if v != nil {
		_c.SetKittVersion(*v)
	}
	return _c
}

// SetHardwareDetails sets the "hardware_details" field.
func (_c *AgentCreate) SetHardwareDetails(v map[string]interface{}) *AgentCreate {
	_c.mutation.SetHardwareDetails(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentCreate) SetStatus(v agent.Status) *AgentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentCreate) SetNillableStatus(v *agent.Status) *AgentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTokenHash sets the "token_hash" field.
func (_c *AgentCreate) SetTokenHash(v string) *AgentCreate {
	_c.mutation.SetTokenHash(v)
	return _c
}

// SetTokenPrefix sets the "token_prefix" field.
func (_c *AgentCreate) SetTokenPrefix(v string) *AgentCreate {
	_c.mutation.SetTokenPrefix(v)
	return _c
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_c *AgentCreate) SetLastHeartbeat(v time.Time) *AgentCreate {
	_c.mutation.SetLastHeartbeat(v)
	return _c
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_c *AgentCreate) SetNillableLastHeartbeat(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetLastHeartbeat(*v)
	}
	return _c
}

// SetRegisteredAt sets the "registered_at" field.
func (_c *AgentCreate) SetRegisteredAt(v time.Time) *AgentCreate {
	_c.mutation.SetRegisteredAt(v)
	return _c
}

// SetNillableRegisteredAt sets the "registered_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableRegisteredAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetRegisteredAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentCreate) SetID(v string) *AgentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentMutation object of the builder.
func (_c *AgentCreate) Mutation() *AgentMutation {
	return _c.mutation
}

// Save creates the Agent in the database.
func (_c *AgentCreate) Save(ctx context.Context) (*Agent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentCreate) SaveX(ctx context.Context) *Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentCreate) defaults() {
	if _, ok := _c.mutation.Port(); !ok {
		v := agent.DefaultPort
		_c.mutation.SetPort(v)
	}
	if _, ok := _c.mutation.GpuCount(); !ok {
		v := agent.DefaultGpuCount
		_c.mutation.SetGpuCount(v)
	}
	if _, ok := _c.mutation.RAMGB(); !ok {
		v := agent.DefaultRAMGB
		_c.mutation.SetRAMGB(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := agent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RegisteredAt(); !ok {
		v := agent.DefaultRegisteredAt()
		_c.mutation.SetRegisteredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Agent.name"`)}
	}
	if _, ok := _c.mutation.Port(); !ok {
		return &ValidationError{Name: "port", err: errors.New(`ent: missing required field "Agent.port"`)}
	}
	if _, ok := _c.mutation.GpuCount(); !ok {
		return &ValidationError{Name: "gpu_count", err: errors.New(`ent: missing required field "Agent.gpu_count"`)}
	}
	if _, ok := _c.mutation.RAMGB(); !ok {
		return &ValidationError{Name: "ram_gb", err: errors.New(`ent: missing required field "Agent.ram_gb"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Agent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TokenHash(); !ok {
		return &ValidationError{Name: "token_hash", err: errors.New(`ent: missing required field "Agent.token_hash"`)}
	}
	if _, ok := _c.mutation.TokenPrefix(); !ok {
		return &ValidationError{Name: "token_prefix", err: errors.New(`ent: missing required field "Agent.token_prefix"`)}
	}
	if v, ok := _c.mutation.TokenPrefix(); ok {
		if err := agent.TokenPrefixValidator(v); err != nil {
			return &ValidationError{Name: "token_prefix", err: fmt.Errorf(`ent: validator failed for field "Agent.token_prefix": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RegisteredAt(); !ok {
		return &ValidationError{Name: "registered_at", err: errors.New(`ent: missing required field "Agent.registered_at"`)}
	}
	return nil
}

func (_c *AgentCreate) sqlSave(ctx context.Context) (*Agent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Agent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentCreate) createSpec() (*Agent, *sqlgraph.CreateSpec) {
	var (
		_node = &Agent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agent.Table, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Hostname(); ok {
		_spec.SetField(agent.FieldHostname, field.TypeString, value)
		_node.Hostname = value
	}
	if value, ok := _c.mutation.Port(); ok {
		_spec.SetField(agent.FieldPort, field.TypeInt, value)
		_node.Port = value
	}
	if value, ok := _c.mutation.CPUArch(); ok {
		_spec.SetField(agent.FieldCPUArch, field.TypeString, value)
		_node.CPUArch = value
	}
	if value, ok := _c.mutation.CPUInfo(); ok {
		_spec.SetField(agent.FieldCPUInfo, field.TypeString, value)
		_node.CPUInfo = value
	}
	if value, ok := _c.mutation.GpuInfo(); ok {
		_spec.SetField(agent.FieldGpuInfo, field.TypeString, value)
		_node.GpuInfo = value
	}
	if value, ok := _c.mutation.GpuCount(); ok {
		_spec.SetField(agent.FieldGpuCount, field.TypeInt, value)
		_node.GpuCount = value
	}
	if value, ok := _c.mutation.RAMGB(); ok {
		_spec.SetField(agent.FieldRAMGB, field.TypeInt, value)
		_node.RAMGB = value
	}
	if value, ok := _c.mutation.KittVersion(); ok {
		_spec.SetField(agent.FieldKittVersion, field.TypeString, value)
		_node.KittVersion = value
	}
	if value, ok := _c.mutation.HardwareDetails(); ok {
		_spec.SetField(agent.FieldHardwareDetails, field.TypeJSON, value)
		_node.HardwareDetails = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TokenHash(); ok {
		_spec.SetField(agent.FieldTokenHash, field.TypeString, value)
		_node.TokenHash = value
	}
	if value, ok := _c.mutation.TokenPrefix(); ok {
		_spec.SetField(agent.FieldTokenPrefix, field.TypeString, value)
		_node.TokenPrefix = value
	}
	if value, ok := _c.mutation.LastHeartbeat(); ok {
		_spec.SetField(agent.FieldLastHeartbeat, field.TypeTime, value)
		_node.LastHeartbeat = &value
	}
	if value, ok := _c.mutation.RegisteredAt(); ok {
		_spec.SetField(agent.FieldRegisteredAt, field.TypeTime, value)
		_node.RegisteredAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Agent.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentCreate) OnConflict(opts ...sql.ConflictOption) *AgentUpsertOne {
	_c.conflict = opts
	return &AgentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentCreate) OnConflictColumns(columns ...string) *AgentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentUpsertOne{
		create: _c,
	}
}

type (
	// AgentUpsertOne is the builder for "upsert"-ing
	//  one Agent node.
	AgentUpsertOne struct {
		create *AgentCreate
	}

	// AgentUpsert is the "OnConflict" setter.
	AgentUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *AgentUpsert) SetName(v string) *AgentUpsert {
	u.Set(agent.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AgentUpsert) UpdateName() *AgentUpsert {
	u.SetExcluded(agent.FieldName)
	return u
}

// SetHostname sets the "hostname" field.
func (u *AgentUpsert) SetHostname(v string) *AgentUpsert {
	u.Set(agent.FieldHostname, v)
	return u
}

// UpdateHostname sets the "hostname" field to the value that was provided on create.
func (u *AgentUpsert) UpdateHostname() *AgentUpsert {
	u.SetExcluded(agent.FieldHostname)
	return u
}

// ClearHostname clears the value of the "hostname" field.
func (u *AgentUpsert) ClearHostname() *AgentUpsert {
	u.SetNull(agent.FieldHostname)
	return u
}

// SetPort sets the "port" field.
func (u *AgentUpsert) SetPort(v int) *AgentUpsert {
	u.Set(agent.FieldPort, v)
	return u
}

// UpdatePort sets the "port" field to the value that was provided on create.
func (u *AgentUpsert) UpdatePort() *AgentUpsert {
	u.SetExcluded(agent.FieldPort)
	return u
}

// AddPort adds v to the "port" field.
func (u *AgentUpsert) AddPort(v int) *AgentUpsert {
	u.Add(agent.FieldPort, v)
	return u
}

// SetCPUArch sets the "cpu_arch" field.
func (u *AgentUpsert) SetCPUArch(v string) *AgentUpsert {
	u.Set(agent.FieldCPUArch, v)
	return u
}

// UpdateCPUArch sets the "cpu_arch" field to the value that was provided on create.
func (u *AgentUpsert) UpdateCPUArch() *AgentUpsert {
	u.SetExcluded(agent.FieldCPUArch)
	return u
}

// ClearCPUArch clears the value of the "cpu_arch" field.
func (u *AgentUpsert) ClearCPUArch() *AgentUpsert {
	u.SetNull(agent.FieldCPUArch)
	return u
}

// SetCPUInfo sets the "cpu_info" field.
func (u *AgentUpsert) SetCPUInfo(v string) *AgentUpsert {
	u.Set(agent.FieldCPUInfo, v)
	return u
}

// UpdateCPUInfo sets the "cpu_info" field to the value that was provided on create.
func (u *AgentUpsert) UpdateCPUInfo() *AgentUpsert {
	u.SetExcluded(agent.FieldCPUInfo)
	return u
}

// ClearCPUInfo clears the value of the "cpu_info" field.
func (u *AgentUpsert) ClearCPUInfo() *AgentUpsert {
	u.SetNull(agent.FieldCPUInfo)
	return u
}

// SetGpuInfo sets the "gpu_info" field.
func (u *AgentUpsert) SetGpuInfo(v string) *AgentUpsert {
	u.Set(agent.FieldGpuInfo, v)
	return u
}

// UpdateGpuInfo sets the "gpu_info" field to the value that was provided on create.
func (u *AgentUpsert) UpdateGpuInfo() *AgentUpsert {
	u.SetExcluded(agent.FieldGpuInfo)
	return u
}

// ClearGpuInfo clears the value of the "gpu_info" field.
func (u *AgentUpsert) ClearGpuInfo() *AgentUpsert {
	u.SetNull(agent.FieldGpuInfo)
	return u
}

// SetGpuCount sets the "gpu_count" field.
func (u *AgentUpsert) SetGpuCount(v int) *AgentUpsert {
	u.Set(agent.FieldGpuCount, v)
	return u
}

// UpdateGpuCount sets the "gpu_count" field to the value that was provided on create.
func (u *AgentUpsert) UpdateGpuCount() *AgentUpsert {
	u.SetExcluded(agent.FieldGpuCount)
	return u
}

// AddGpuCount adds v to the "gpu_count" field.
func (u *AgentUpsert) AddGpuCount(v int) *AgentUpsert {
	u.Add(agent.FieldGpuCount, v)
	return u
}

// SetRAMGB sets the "ram_gb" field.
func (u *AgentUpsert) SetRAMGB(v int) *AgentUpsert {
	u.Set(agent.FieldRAMGB, v)
	return u
}

// UpdateRAMGB sets the "ram_gb" field to the value that was provided on create.
func (u *AgentUpsert) UpdateRAMGB() *AgentUpsert {
	u.SetExcluded(agent.FieldRAMGB)
	return u
}

// AddRAMGB adds v to the "ram_gb" field.
func (u *AgentUpsert) AddRAMGB(v int) *AgentUpsert {
	u.Add(agent.FieldRAMGB, v)
	return u
}

// SetKittVersion sets the "kitt_version" field.
func (u *AgentUpsert) SetKittVersion(v string) *AgentUpsert {
	u.Set(agent.FieldKittVersion, v)
	return u
}

// UpdateKittVersion sets the "kitt_version" field to the value that was provided on create.
func (u *AgentUpsert) UpdateKittVersion() *AgentUpsert {
	u.SetExcluded(agent.FieldKittVersion)
	return u
}

// ClearKittVersion clears the value of the "kitt_version" field.
func (u *AgentUpsert) ClearKittVersion() *AgentUpsert {
	u.SetNull(agent.FieldKittVersion)
	return u
}

// SetHardwareDetails sets the "hardware_details" field.
func (u *AgentUpsert) SetHardwareDetails(v map[string]interface{}) *AgentUpsert {
	u.Set(agent.FieldHardwareDetails, v)
	return u
}

// UpdateHardwareDetails sets the "hardware_details" field to the value that was provided on create.
func (u *AgentUpsert) UpdateHardwareDetails() *AgentUpsert {
	u.SetExcluded(agent.FieldHardwareDetails)
	return u
}

// ClearHardwareDetails clears the value of the "hardware_details" field.
func (u *AgentUpsert) ClearHardwareDetails() *AgentUpsert {
	u.SetNull(agent.FieldHardwareDetails)
	return u
}

// SetStatus sets the "status" field.
func (u *AgentUpsert) SetStatus(v agent.Status) *AgentUpsert {
	u.Set(agent.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentUpsert) UpdateStatus() *AgentUpsert {
	u.SetExcluded(agent.FieldStatus)
	return u
}

// SetTokenHash sets the "token_hash" field.
func (u *AgentUpsert) SetTokenHash(v string) *AgentUpsert {
	u.Set(agent.FieldTokenHash, v)
	return u
}

// UpdateTokenHash sets the "token_hash" field to the value that was provided on create.
func (u *AgentUpsert) UpdateTokenHash() *AgentUpsert {
	u.SetExcluded(agent.FieldTokenHash)
	return u
}

// SetTokenPrefix sets the "token_prefix" field.
func (u *AgentUpsert) SetTokenPrefix(v string) *AgentUpsert {
	u.Set(agent.FieldTokenPrefix, v)
	return u
}

// UpdateTokenPrefix sets the "token_prefix" field to the value that was provided on create.
func (u *AgentUpsert) UpdateTokenPrefix() *AgentUpsert {
	u.SetExcluded(agent.FieldTokenPrefix)
	return u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (u *AgentUpsert) SetLastHeartbeat(v time.Time) *AgentUpsert {
	u.Set(agent.FieldLastHeartbeat, v)
	return u
}

// UpdateLastHeartbeat sets the "last_heartbeat" field to the value that was provided on create.
func (u *AgentUpsert) UpdateLastHeartbeat() *AgentUpsert {
	u.SetExcluded(agent.FieldLastHeartbeat)
	return u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (u *AgentUpsert) ClearLastHeartbeat() *AgentUpsert {
	u.SetNull(agent.FieldLastHeartbeat)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentUpsertOne) UpdateNewValues() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agent.FieldID)
		}
		if _, exists := u.create.mutation.RegisteredAt(); exists {
			s.SetIgnore(agent.FieldRegisteredAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentUpsertOne) Ignore() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentUpsertOne) DoNothing() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentCreate.OnConflict
// documentation for more info.
func (u *AgentUpsertOne) Update(set func(*AgentUpsert)) *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *AgentUpsertOne) SetName(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateName() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateName()
	})
}

// SetHostname sets the "hostname" field.
func (u *AgentUpsertOne) SetHostname(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetHostname(v)
	})
}

// UpdateHostname sets the "hostname" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateHostname() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateHostname()
	})
}

// ClearHostname clears the value of the "hostname" field.
func (u *AgentUpsertOne) ClearHostname() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearHostname()
	})
}

// SetPort sets the "port" field.
func (u *AgentUpsertOne) SetPort(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetPort(v)
	})
}

// AddPort adds v to the "port" field.
func (u *AgentUpsertOne) AddPort(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.AddPort(v)
	})
}

// UpdatePort sets the "port" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdatePort() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdatePort()
	})
}

// SetCPUArch sets the "cpu_arch" field.
func (u *AgentUpsertOne) SetCPUArch(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetCPUArch(v)
	})
}

// UpdateCPUArch sets the "cpu_arch" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateCPUArch() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCPUArch()
	})
}

// ClearCPUArch clears the value of the "cpu_arch" field.
func (u *AgentUpsertOne) ClearCPUArch() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearCPUArch()
	})
}

// SetCPUInfo sets the "cpu_info" field.
func (u *AgentUpsertOne) SetCPUInfo(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetCPUInfo(v)
	})
}

// UpdateCPUInfo sets the "cpu_info" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateCPUInfo() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCPUInfo()
	})
}

// ClearCPUInfo clears the value of the "cpu_info" field.
func (u *AgentUpsertOne) ClearCPUInfo() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearCPUInfo()
	})
}

// SetGpuInfo sets the "gpu_info" field.
func (u *AgentUpsertOne) SetGpuInfo(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetGpuInfo(v)
	})
}

// UpdateGpuInfo sets the "gpu_info" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateGpuInfo() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateGpuInfo()
	})
}

// ClearGpuInfo clears the value of the "gpu_info" field.
func (u *AgentUpsertOne) ClearGpuInfo() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearGpuInfo()
	})
}

// SetGpuCount sets the "gpu_count" field.
func (u *AgentUpsertOne) SetGpuCount(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetGpuCount(v)
	})
}

// AddGpuCount adds v to the "gpu_count" field.
func (u *AgentUpsertOne) AddGpuCount(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.AddGpuCount(v)
	})
}

// UpdateGpuCount sets the "gpu_count" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateGpuCount() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateGpuCount()
	})
}

// SetRAMGB sets the "ram_gb" field.
func (u *AgentUpsertOne) SetRAMGB(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetRAMGB(v)
	})
}

// AddRAMGB adds v to the "ram_gb" field.
func (u *AgentUpsertOne) AddRAMGB(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.AddRAMGB(v)
	})
}

// UpdateRAMGB sets the "ram_gb" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateRAMGB() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateRAMGB()
	})
}

// SetKittVersion sets the "kitt_version" field.
func (u *AgentUpsertOne) SetKittVersion(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetKittVersion(v)
	})
}

// UpdateKittVersion sets the "kitt_version" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateKittVersion() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateKittVersion()
	})
}

// ClearKittVersion clears the value of the "kitt_version" field.
func (u *AgentUpsertOne) ClearKittVersion() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearKittVersion()
	})
}

// SetHardwareDetails sets the "hardware_details" field.
func (u *AgentUpsertOne) SetHardwareDetails(v map[string]interface{}) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetHardwareDetails(v)
	})
}

// UpdateHardwareDetails sets the "hardware_details" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateHardwareDetails() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateHardwareDetails()
	})
}

// ClearHardwareDetails clears the value of the "hardware_details" field.
func (u *AgentUpsertOne) ClearHardwareDetails() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearHardwareDetails()
	})
}

// SetStatus sets the "status" field.
func (u *AgentUpsertOne) SetStatus(v agent.Status) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateStatus() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateStatus()
	})
}

// SetTokenHash sets the "token_hash" field.
func (u *AgentUpsertOne) SetTokenHash(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetTokenHash(v)
	})
}

// UpdateTokenHash sets the "token_hash" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateTokenHash() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateTokenHash()
	})
}

// SetTokenPrefix sets the "token_prefix" field.
func (u *AgentUpsertOne) SetTokenPrefix(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetTokenPrefix(v)
	})
}

// UpdateTokenPrefix sets the "token_prefix" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateTokenPrefix() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateTokenPrefix()
	})
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (u *AgentUpsertOne) SetLastHeartbeat(v time.Time) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetLastHeartbeat(v)
	})
}

// UpdateLastHeartbeat sets the "last_heartbeat" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateLastHeartbeat() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateLastHeartbeat()
	})
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (u *AgentUpsertOne) ClearLastHeartbeat() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearLastHeartbeat()
	})
}

// Exec executes the query.
func (u *AgentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentUpsertOne.ID is not supported by MySQL driver. Use AgentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentCreateBulk is the builder for creating many Agent entities in bulk.
type AgentCreateBulk struct {
	config
	err      error
	builders []*AgentCreate
	conflict []sql.ConflictOption
}

// Save creates the Agent entities in the database.
func (_c *AgentCreateBulk) Save(ctx context.Context) ([]*Agent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Agent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentCreateBulk) SaveX(ctx context.Context) []*Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Agent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentUpsertBulk {
	_c.conflict = opts
	return &AgentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentCreateBulk) OnConflictColumns(columns ...string) *AgentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentUpsertBulk{
		create: _c,
	}
}

// AgentUpsertBulk is the builder for "upsert"-ing
// a bulk of Agent nodes.
type AgentUpsertBulk struct {
	create *AgentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentUpsertBulk) UpdateNewValues() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agent.FieldID)
			}
			if _, exists := b.mutation.RegisteredAt(); exists {
				s.SetIgnore(agent.FieldRegisteredAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentUpsertBulk) Ignore() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentUpsertBulk) DoNothing() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentCreateBulk.OnConflict
// documentation for more info.
func (u *AgentUpsertBulk) Update(set func(*AgentUpsert)) *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *AgentUpsertBulk) SetName(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateName() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateName()
	})
}

// SetHostname sets the "hostname" field.
func (u *AgentUpsertBulk) SetHostname(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetHostname(v)
	})
}

// UpdateHostname sets the "hostname" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateHostname() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateHostname()
	})
}

// ClearHostname clears the value of the "hostname" field.
func (u *AgentUpsertBulk) ClearHostname() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearHostname()
	})
}

// SetPort sets the "port" field.
func (u *AgentUpsertBulk) SetPort(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetPort(v)
	})
}

// AddPort adds v to the "port" field.
func (u *AgentUpsertBulk) AddPort(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.AddPort(v)
	})
}

// UpdatePort sets the "port" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdatePort() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdatePort()
	})
}

// SetCPUArch sets the "cpu_arch" field.
func (u *AgentUpsertBulk) SetCPUArch(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetCPUArch(v)
	})
}

// UpdateCPUArch sets the "cpu_arch" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateCPUArch() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCPUArch()
	})
}

// ClearCPUArch clears the value of the "cpu_arch" field.
func (u *AgentUpsertBulk) ClearCPUArch() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearCPUArch()
	})
}

// SetCPUInfo sets the "cpu_info" field.
func (u *AgentUpsertBulk) SetCPUInfo(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetCPUInfo(v)
	})
}

// UpdateCPUInfo sets the "cpu_info" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateCPUInfo() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCPUInfo()
	})
}

// ClearCPUInfo clears the value of the "cpu_info" field.
func (u *AgentUpsertBulk) ClearCPUInfo() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearCPUInfo()
	})
}

// SetGpuInfo sets the "gpu_info" field.
func (u *AgentUpsertBulk) SetGpuInfo(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetGpuInfo(v)
	})
}

// UpdateGpuInfo sets the "gpu_info" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateGpuInfo() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateGpuInfo()
	})
}

// ClearGpuInfo clears the value of the "gpu_info" field.
func (u *AgentUpsertBulk) ClearGpuInfo() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearGpuInfo()
	})
}

// SetGpuCount sets the "gpu_count" field.
func (u *AgentUpsertBulk) SetGpuCount(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetGpuCount(v)
	})
}

// AddGpuCount adds v to the "gpu_count" field.
func (u *AgentUpsertBulk) AddGpuCount(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.AddGpuCount(v)
	})
}

// UpdateGpuCount sets the "gpu_count" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateGpuCount() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateGpuCount()
	})
}

// SetRAMGB sets the "ram_gb" field.
func (u *AgentUpsertBulk) SetRAMGB(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetRAMGB(v)
	})
}

// AddRAMGB adds v to the "ram_gb" field.
func (u *AgentUpsertBulk) AddRAMGB(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.AddRAMGB(v)
	})
}

// UpdateRAMGB sets the "ram_gb" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateRAMGB() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateRAMGB()
	})
}

// SetKittVersion sets the "kitt_version" field.
func (u *AgentUpsertBulk) SetKittVersion(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetKittVersion(v)
	})
}

// UpdateKittVersion sets the "kitt_version" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateKittVersion() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateKittVersion()
	})
}

// ClearKittVersion clears the value of the "kitt_version" field.
func (u *AgentUpsertBulk) ClearKittVersion() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearKittVersion()
	})
}

// SetHardwareDetails sets the "hardware_details" field.
func (u *AgentUpsertBulk) SetHardwareDetails(v map[string]interface{}) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetHardwareDetails(v)
	})
}

// UpdateHardwareDetails sets the "hardware_details" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateHardwareDetails() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateHardwareDetails()
	})
}

// ClearHardwareDetails clears the value of the "hardware_details" field.
func (u *AgentUpsertBulk) ClearHardwareDetails() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearHardwareDetails()
	})
}

// SetStatus sets the "status" field.
func (u *AgentUpsertBulk) SetStatus(v agent.Status) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateStatus() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateStatus()
	})
}

// SetTokenHash sets the "token_hash" field.
func (u *AgentUpsertBulk) SetTokenHash(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetTokenHash(v)
	})
}

// UpdateTokenHash sets the "token_hash" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateTokenHash() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateTokenHash()
	})
}

// SetTokenPrefix sets the "token_prefix" field.
func (u *AgentUpsertBulk) SetTokenPrefix(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetTokenPrefix(v)
	})
}

// UpdateTokenPrefix sets the "token_prefix" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateTokenPrefix() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateTokenPrefix()
	})
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (u *AgentUpsertBulk) SetLastHeartbeat(v time.Time) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetLastHeartbeat(v)
	})
}

// UpdateLastHeartbeat sets the "last_heartbeat" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateLastHeartbeat() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateLastHeartbeat()
	})
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (u *AgentUpsertBulk) ClearLastHeartbeat() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearLastHeartbeat()
	})
}

// Exec executes the query.
func (u *AgentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
