// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Kirizan/kitt-sub000/ent/agent"
	"github.com/Kirizan/kitt-sub000/ent/campaign"
	"github.com/Kirizan/kitt-sub000/ent/plannedrun"
	"github.com/Kirizan/kitt-sub000/ent/predicate"
	"github.com/Kirizan/kitt-sub000/ent/runresult"
	"github.com/Kirizan/kitt-sub000/ent/streamevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent       = "Agent"
	TypeCampaign    = "Campaign"
	TypePlannedRun  = "PlannedRun"
	TypeRunResult   = "RunResult"
	TypeStreamEvent = "StreamEvent"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op               Op
	typ              string
	id               *string
	name             *string
	hostname         *string
	port             *int
	addport          *int
	cpu_arch         *string
	cpu_info         *string
	gpu_info         *string
	gpu_count        *int
	addgpu_count     *int
	ram_gb           *int
	addram_gb        *int
	kitt_version     *string
	hardware_details *map[string]interface{}
	status           *agent.Status
	token_hash       *string
	token_prefix     *string
	last_heartbeat   *time.Time
	registered_at    *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Agent, error)
	predicates       []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *AgentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentMutation) ResetName() {
	m.name = nil
}

// SetHostname sets the "hostname" field.
func (m *AgentMutation) SetHostname(s string) {
	m.hostname = &s
}

// Hostname returns the value of the "hostname" field in the mutation.
func (m *AgentMutation) Hostname() (r string, exists bool) {
	v := m.hostname
	if v == nil {
		return
	}
	return *v, true
}

// OldHostname returns the old "hostname" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldHostname(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHostname is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHostname requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHostname: %w", err)
	}
	return oldValue.Hostname, nil
}

// ClearHostname clears the value of the "hostname" field.
func (m *AgentMutation) ClearHostname() {
	m.hostname = nil
	m.clearedFields[agent.FieldHostname] = struct{}{}
}

// HostnameCleared returns if the "hostname" field was cleared in this mutation.
func (m *AgentMutation) HostnameCleared() bool {
	_, ok := m.clearedFields[agent.FieldHostname]
	return ok
}

// ResetHostname resets all changes to the "hostname" field.
func (m *AgentMutation) ResetHostname() {
	m.hostname = nil
	delete(m.clearedFields, agent.FieldHostname)
}

// SetPort sets the "port" field.
func (m *AgentMutation) SetPort(i int) {
	m.port = &i
	m.addport = nil
}

// Port returns the value of the "port" field in the mutation.
func (m *AgentMutation) Port() (r int, exists bool) {
	v := m.port
	if v == nil {
		return
	}
	return *v, true
}

// OldPort returns the old "port" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldPort(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPort: %w", err)
	}
	return oldValue.Port, nil
}

// AddPort adds i to the "port" field.
func (m *AgentMutation) AddPort(i int) {
	if m.addport != nil {
		*m.addport += i
	} else {
		m.addport = &i
	}
}

// AddedPort returns the value that was added to the "port" field in this mutation.
func (m *AgentMutation) AddedPort() (r int, exists bool) {
	v := m.addport
	if v == nil {
		return
	}
	return *v, true
}

// ResetPort resets all changes to the "port" field.
func (m *AgentMutation) ResetPort() {
	m.port = nil
	m.addport = nil
}

// SetCPUArch sets the "cpu_arch" field.
func (m *AgentMutation) SetCPUArch(s string) {
	m.cpu_arch = &s
}

// CPUArch returns the value of the "cpu_arch" field in the mutation.
func (m *AgentMutation) CPUArch() (r string, exists bool) {
	v := m.cpu_arch
	if v == nil {
		return
	}
	return *v, true
}

// OldCPUArch returns the old "cpu_arch" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCPUArch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCPUArch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCPUArch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCPUArch: %w", err)
	}
	return oldValue.CPUArch, nil
}

// ClearCPUArch clears the value of the "cpu_arch" field.
func (m *AgentMutation) ClearCPUArch() {
	m.cpu_arch = nil
	m.clearedFields[agent.FieldCPUArch] = struct{}{}
}

// CPUArchCleared returns if the "cpu_arch" field was cleared in this mutation.
func (m *AgentMutation) CPUArchCleared() bool {
	_, ok := m.clearedFields[agent.FieldCPUArch]
	return ok
}

// ResetCPUArch resets all changes to the "cpu_arch" field.
func (m *AgentMutation) ResetCPUArch() {
	m.cpu_arch = nil
	delete(m.clearedFields, agent.FieldCPUArch)
}

// SetCPUInfo sets the "cpu_info" field.
func (m *AgentMutation) SetCPUInfo(s string) {
	m.cpu_info = &s
}

// CPUInfo returns the value of the "cpu_info" field in the mutation.
func (m *AgentMutation) CPUInfo() (r string, exists bool) {
	v := m.cpu_info
	if v == nil {
		return
	}
	return *v, true
}

// OldCPUInfo returns the old "cpu_info" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCPUInfo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCPUInfo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCPUInfo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCPUInfo: %w", err)
	}
	return oldValue.CPUInfo, nil
}

// ClearCPUInfo clears the value of the "cpu_info" field.
func (m *AgentMutation) ClearCPUInfo() {
	m.cpu_info = nil
	m.clearedFields[agent.FieldCPUInfo] = struct{}{}
}

// CPUInfoCleared returns if the "cpu_info" field was cleared in this mutation.
func (m *AgentMutation) CPUInfoCleared() bool {
	_, ok := m.clearedFields[agent.FieldCPUInfo]
	return ok
}

// ResetCPUInfo resets all changes to the "cpu_info" field.
func (m *AgentMutation) ResetCPUInfo() {
	m.cpu_info = nil
	delete(m.clearedFields, agent.FieldCPUInfo)
}

// SetGpuInfo sets the "gpu_info" field.
func (m *AgentMutation) SetGpuInfo(s string) {
	m.gpu_info = &s
}

// GpuInfo returns the value of the "gpu_info" field in the mutation.
func (m *AgentMutation) GpuInfo() (r string, exists bool) {
	v := m.gpu_info
	if v == nil {
		return
	}
	return *v, true
}

// OldGpuInfo returns the old "gpu_info" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldGpuInfo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGpuInfo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGpuInfo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGpuInfo: %w", err)
	}
	return oldValue.GpuInfo, nil
}

// ClearGpuInfo clears the value of the "gpu_info" field.
func (m *AgentMutation) ClearGpuInfo() {
	m.gpu_info = nil
	m.clearedFields[agent.FieldGpuInfo] = struct{}{}
}

// GpuInfoCleared returns if the "gpu_info" field was cleared in this mutation.
func (m *AgentMutation) GpuInfoCleared() bool {
	_, ok := m.clearedFields[agent.FieldGpuInfo]
	return ok
}

// ResetGpuInfo resets all changes to the "gpu_info" field.
func (m *AgentMutation) ResetGpuInfo() {
	m.gpu_info = nil
	delete(m.clearedFields, agent.FieldGpuInfo)
}

// SetGpuCount sets the "gpu_count" field.
func (m *AgentMutation) SetGpuCount(i int) {
	m.gpu_count = &i
	m.addgpu_count = nil
}

// GpuCount returns the value of the "gpu_count" field in the mutation.
func (m *AgentMutation) GpuCount() (r int, exists bool) {
	v := m.gpu_count
	if v == nil {
		return
	}
	return *v, true
}

// OldGpuCount returns the old "gpu_count" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldGpuCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGpuCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGpuCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGpuCount: %w", err)
	}
	return oldValue.GpuCount, nil
}

// AddGpuCount adds i to the "gpu_count" field.
func (m *AgentMutation) AddGpuCount(i int) {
	if m.addgpu_count != nil {
		*m.addgpu_count += i
	} else {
		m.addgpu_count = &i
	}
}

// AddedGpuCount returns the value that was added to the "gpu_count" field in this mutation.
func (m *AgentMutation) AddedGpuCount() (r int, exists bool) {
	v := m.addgpu_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetGpuCount resets all changes to the "gpu_count" field.
func (m *AgentMutation) ResetGpuCount() {
	m.gpu_count = nil
	m.addgpu_count = nil
}

// SetRAMGB sets the "ram_gb" field.
func (m *AgentMutation) SetRAMGB(i int) {
	m.ram_gb = &i
	m.addram_gb = nil
}

// RAMGB returns the value of the "ram_gb" field in the mutation.
func (m *AgentMutation) RAMGB() (r int, exists bool) {
	v := m.ram_gb
	if v == nil {
		return
	}
	return *v, true
}

// OldRAMGB returns the old "ram_gb" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldRAMGB(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRAMGB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRAMGB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRAMGB: %w", err)
	}
	return oldValue.RAMGB, nil
}

// AddRAMGB adds i to the "ram_gb" field.
func (m *AgentMutation) AddRAMGB(i int) {
	if m.addram_gb != nil {
		*m.addram_gb += i
	} else {
		m.addram_gb = &i
	}
}

// AddedRAMGB returns the value that was added to the "ram_gb" field in this mutation.
func (m *AgentMutation) AddedRAMGB() (r int, exists bool) {
	v := m.addram_gb
	if v == nil {
		return
	}
	return *v, true
}

// ResetRAMGB resets all changes to the "ram_gb" field.
func (m *AgentMutation) ResetRAMGB() {
	m.ram_gb = nil
	m.addram_gb = nil
}

// SetKittVersion sets the "kitt_version" field.
func (m *AgentMutation) SetKittVersion(s string) {
	m.kitt_version = &s
}

// KittVersion returns the value of the "kitt_version" field in the mutation.
func (m *AgentMutation) KittVersion() (r string, exists bool) {
	v := m.kitt_version
	if v == nil {
		return
	}
	return *v, true
}

// OldKittVersion returns the old "kitt_version" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldKittVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKittVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKittVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKittVersion: %w", err)
	}
	return oldValue.KittVersion, nil
}

// ClearKittVersion clears the value of the "kitt_version" field.
func (m *AgentMutation) ClearKittVersion() {
	m.kitt_version = nil
	m.clearedFields[agent.FieldKittVersion] = struct{}{}
}

// KittVersionCleared returns if the "kitt_version" field was cleared in this mutation.
func (m *AgentMutation) KittVersionCleared() bool {
	_, ok := m.clearedFields[agent.FieldKittVersion]
	return ok
}

// ResetKittVersion resets all changes to the "kitt_version" field.
func (m *AgentMutation) ResetKittVersion() {
	m.kitt_version = nil
	delete(m.clearedFields, agent.FieldKittVersion)
}

// SetHardwareDetails sets the "hardware_details" field.
func (m *AgentMutation) SetHardwareDetails(value map[string]interface{}) {
	m.hardware_details = &value
}

// HardwareDetails returns the value of the "hardware_details" field in the mutation.
func (m *AgentMutation) HardwareDetails() (r map[string]interface{}, exists bool) {
	v := m.hardware_details
	if v == nil {
		return
	}
	return *v, true
}

// OldHardwareDetails returns the old "hardware_details" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldHardwareDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHardwareDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHardwareDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHardwareDetails: %w", err)
	}
	return oldValue.HardwareDetails, nil
}

// ClearHardwareDetails clears the value of the "hardware_details" field.
func (m *AgentMutation) ClearHardwareDetails() {
	m.hardware_details = nil
	m.clearedFields[agent.FieldHardwareDetails] = struct{}{}
}

// HardwareDetailsCleared returns if the "hardware_details" field was cleared in this mutation.
func (m *AgentMutation) HardwareDetailsCleared() bool {
	_, ok := m.clearedFields[agent.FieldHardwareDetails]
	return ok
}

// ResetHardwareDetails resets all changes to the "hardware_details" field.
func (m *AgentMutation) ResetHardwareDetails() {
	m.hardware_details = nil
	delete(m.clearedFields, agent.FieldHardwareDetails)
}

// SetStatus sets the "status" field.
func (m *AgentMutation) SetStatus(a agent.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentMutation) Status() (r agent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldStatus(ctx context.Context) (v agent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentMutation) ResetStatus() {
	m.status = nil
}

// SetTokenHash sets the "token_hash" field.
func (m *AgentMutation) SetTokenHash(s string) {
	m.token_hash = &s
}

// TokenHash returns the value of the "token_hash" field in the mutation.
func (m *AgentMutation) TokenHash() (r string, exists bool) {
	v := m.token_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenHash returns the old "token_hash" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTokenHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenHash: %w", err)
	}
	return oldValue.TokenHash, nil
}

// ResetTokenHash resets all changes to the "token_hash" field.
func (m *AgentMutation) ResetTokenHash() {
	m.token_hash = nil
}

// SetTokenPrefix sets the "token_prefix" field.
func (m *AgentMutation) SetTokenPrefix(s string) {
	m.token_prefix = &s
}

// TokenPrefix returns the value of the "token_prefix" field in the mutation.
func (m *AgentMutation) TokenPrefix() (r string, exists bool) {
	v := m.token_prefix
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenPrefix returns the old "token_prefix" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTokenPrefix(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenPrefix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenPrefix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenPrefix: %w", err)
	}
	return oldValue.TokenPrefix, nil
}

// ResetTokenPrefix resets all changes to the "token_prefix" field.
func (m *AgentMutation) ResetTokenPrefix() {
	m.token_prefix = nil
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (m *AgentMutation) SetLastHeartbeat(t time.Time) {
	m.last_heartbeat = &t
}

// LastHeartbeat returns the value of the "last_heartbeat" field in the mutation.
func (m *AgentMutation) LastHeartbeat() (r time.Time, exists bool) {
	v := m.last_heartbeat
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeat returns the old "last_heartbeat" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldLastHeartbeat(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeat: %w", err)
	}
	return oldValue.LastHeartbeat, nil
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (m *AgentMutation) ClearLastHeartbeat() {
	m.last_heartbeat = nil
	m.clearedFields[agent.FieldLastHeartbeat] = struct{}{}
}

// LastHeartbeatCleared returns if the "last_heartbeat" field was cleared in this mutation.
func (m *AgentMutation) LastHeartbeatCleared() bool {
	_, ok := m.clearedFields[agent.FieldLastHeartbeat]
	return ok
}

// ResetLastHeartbeat resets all changes to the "last_heartbeat" field.
func (m *AgentMutation) ResetLastHeartbeat() {
	m.last_heartbeat = nil
	delete(m.clearedFields, agent.FieldLastHeartbeat)
}

// SetRegisteredAt sets the "registered_at" field.
func (m *AgentMutation) SetRegisteredAt(t time.Time) {
	m.registered_at = &t
}

// RegisteredAt returns the value of the "registered_at" field in the mutation.
func (m *AgentMutation) RegisteredAt() (r time.Time, exists bool) {
	v := m.registered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRegisteredAt returns the old "registered_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldRegisteredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegisteredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegisteredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegisteredAt: %w", err)
	}
	return oldValue.RegisteredAt, nil
}

// ResetRegisteredAt resets all changes to the "registered_at" field.
func (m *AgentMutation) ResetRegisteredAt() {
	m.registered_at = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.name != nil {
		fields = append(fields, agent.FieldName)
	}
	if m.hostname != nil {
		fields = append(fields, agent.FieldHostname)
	}
	if m.port != nil {
		fields = append(fields, agent.FieldPort)
	}
	if m.cpu_arch != nil {
		fields = append(fields, agent.FieldCPUArch)
	}
	if m.cpu_info != nil {
		fields = append(fields, agent.FieldCPUInfo)
	}
	if m.gpu_info != nil {
		fields = append(fields, agent.FieldGpuInfo)
	}
	if m.gpu_count != nil {
		fields = append(fields, agent.FieldGpuCount)
	}
	if m.ram_gb != nil {
		fields = append(fields, agent.FieldRAMGB)
	}
	if m.kitt_version != nil {
		fields = append(fields, agent.FieldKittVersion)
	}
	if m.hardware_details != nil {
		fields = append(fields, agent.FieldHardwareDetails)
	}
	if m.status != nil {
		fields = append(fields, agent.FieldStatus)
	}
	if m.token_hash != nil {
		fields = append(fields, agent.FieldTokenHash)
	}
	if m.token_prefix != nil {
		fields = append(fields, agent.FieldTokenPrefix)
	}
	if m.last_heartbeat != nil {
		fields = append(fields, agent.FieldLastHeartbeat)
	}
	if m.registered_at != nil {
		fields = append(fields, agent.FieldRegisteredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldName:
		return m.Name()
	case agent.FieldHostname:
		return m.Hostname()
	case agent.FieldPort:
		return m.Port()
	case agent.FieldCPUArch:
		return m.CPUArch()
	case agent.FieldCPUInfo:
		return m.CPUInfo()
	case agent.FieldGpuInfo:
		return m.GpuInfo()
	case agent.FieldGpuCount:
		return m.GpuCount()
	case agent.FieldRAMGB:
		return m.RAMGB()
	case agent.FieldKittVersion:
		return m.KittVersion()
	case agent.FieldHardwareDetails:
		return m.HardwareDetails()
	case agent.FieldStatus:
		return m.Status()
	case agent.FieldTokenHash:
		return m.TokenHash()
	case agent.FieldTokenPrefix:
		return m.TokenPrefix()
	case agent.FieldLastHeartbeat:
		return m.LastHeartbeat()
	case agent.FieldRegisteredAt:
		return m.RegisteredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldName:
		return m.OldName(ctx)
	case agent.FieldHostname:
		return m.OldHostname(ctx)
	case agent.FieldPort:
		return m.OldPort(ctx)
	case agent.FieldCPUArch:
		return m.OldCPUArch(ctx)
	case agent.FieldCPUInfo:
		return m.OldCPUInfo(ctx)
	case agent.FieldGpuInfo:
		return m.OldGpuInfo(ctx)
	case agent.FieldGpuCount:
		return m.OldGpuCount(ctx)
	case agent.FieldRAMGB:
		return m.OldRAMGB(ctx)
	case agent.FieldKittVersion:
		return m.OldKittVersion(ctx)
	case agent.FieldHardwareDetails:
		return m.OldHardwareDetails(ctx)
	case agent.FieldStatus:
		return m.OldStatus(ctx)
	case agent.FieldTokenHash:
		return m.OldTokenHash(ctx)
	case agent.FieldTokenPrefix:
		return m.OldTokenPrefix(ctx)
	case agent.FieldLastHeartbeat:
		return m.OldLastHeartbeat(ctx)
	case agent.FieldRegisteredAt:
		return m.OldRegisteredAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agent.FieldHostname:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHostname(v)
		return nil
	case agent.FieldPort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPort(v)
		return nil
	case agent.FieldCPUArch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCPUArch(v)
		return nil
	case agent.FieldCPUInfo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCPUInfo(v)
		return nil
	case agent.FieldGpuInfo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGpuInfo(v)
		return nil
	case agent.FieldGpuCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGpuCount(v)
		return nil
	case agent.FieldRAMGB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRAMGB(v)
		return nil
	case agent.FieldKittVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKittVersion(v)
		return nil
	case agent.FieldHardwareDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHardwareDetails(v)
		return nil
	case agent.FieldStatus:
		v, ok := value.(agent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agent.FieldTokenHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenHash(v)
		return nil
	case agent.FieldTokenPrefix:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenPrefix(v)
		return nil
	case agent.FieldLastHeartbeat:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeat(v)
		return nil
	case agent.FieldRegisteredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegisteredAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	var fields []string
	if m.addport != nil {
		fields = append(fields, agent.FieldPort)
	}
	if m.addgpu_count != nil {
		fields = append(fields, agent.FieldGpuCount)
	}
	if m.addram_gb != nil {
		fields = append(fields, agent.FieldRAMGB)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldPort:
		return m.AddedPort()
	case agent.FieldGpuCount:
		return m.AddedGpuCount()
	case agent.FieldRAMGB:
		return m.AddedRAMGB()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agent.FieldPort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPort(v)
		return nil
	case agent.FieldGpuCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGpuCount(v)
		return nil
	case agent.FieldRAMGB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRAMGB(v)
		return nil
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldHostname) {
		fields = append(fields, agent.FieldHostname)
	}
	if m.FieldCleared(agent.FieldCPUArch) {
		fields = append(fields, agent.FieldCPUArch)
	}
	if m.FieldCleared(agent.FieldCPUInfo) {
		fields = append(fields, agent.FieldCPUInfo)
	}
	if m.FieldCleared(agent.FieldGpuInfo) {
		fields = append(fields, agent.FieldGpuInfo)
	}
	if m.FieldCleared(agent.FieldKittVersion) {
		fields = append(fields, agent.FieldKittVersion)
	}
	if m.FieldCleared(agent.FieldHardwareDetails) {
		fields = append(fields, agent.FieldHardwareDetails)
	}
	if m.FieldCleared(agent.FieldLastHeartbeat) {
		fields = append(fields, agent.FieldLastHeartbeat)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldHostname:
		m.ClearHostname()
		return nil
	case agent.FieldCPUArch:
		m.ClearCPUArch()
		return nil
	case agent.FieldCPUInfo:
		m.ClearCPUInfo()
		return nil
	case agent.FieldGpuInfo:
		m.ClearGpuInfo()
		return nil
	case agent.FieldKittVersion:
		m.ClearKittVersion()
		return nil
	case agent.FieldHardwareDetails:
		m.ClearHardwareDetails()
		return nil
	case agent.FieldLastHeartbeat:
		m.ClearLastHeartbeat()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldName:
		m.ResetName()
		return nil
	case agent.FieldHostname:
		m.ResetHostname()
		return nil
	case agent.FieldPort:
		m.ResetPort()
		return nil
	case agent.FieldCPUArch:
		m.ResetCPUArch()
		return nil
	case agent.FieldCPUInfo:
		m.ResetCPUInfo()
		return nil
	case agent.FieldGpuInfo:
		m.ResetGpuInfo()
		return nil
	case agent.FieldGpuCount:
		m.ResetGpuCount()
		return nil
	case agent.FieldRAMGB:
		m.ResetRAMGB()
		return nil
	case agent.FieldKittVersion:
		m.ResetKittVersion()
		return nil
	case agent.FieldHardwareDetails:
		m.ResetHardwareDetails()
		return nil
	case agent.FieldStatus:
		m.ResetStatus()
		return nil
	case agent.FieldTokenHash:
		m.ResetTokenHash()
		return nil
	case agent.FieldTokenPrefix:
		m.ResetTokenPrefix()
		return nil
	case agent.FieldLastHeartbeat:
		m.ResetLastHeartbeat()
		return nil
	case agent.FieldRegisteredAt:
		m.ResetRegisteredAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Agent edge %s", name)
}

// CampaignMutation represents an operation that mutates the Campaign nodes in the graph.
type CampaignMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	name                *string
	description         *string
	_config             *map[string]interface{}
	agent_id            *string
	status              *campaign.Status
	total_runs          *int
	addtotal_runs       *int
	succeeded           *int
	addsucceeded        *int
	failed              *int
	addfailed           *int
	skipped             *int
	addskipped          *int
	error_message       *string
	created_at          *time.Time
	started_at          *time.Time
	completed_at        *time.Time
	clearedFields       map[string]struct{}
	planned_runs        map[string]struct{}
	removedplanned_runs map[string]struct{}
	clearedplanned_runs bool
	done                bool
	oldValue            func(context.Context) (*Campaign, error)
	predicates          []predicate.Campaign
}

var _ ent.Mutation = (*CampaignMutation)(nil)

// campaignOption allows management of the mutation configuration using functional options.
type campaignOption func(*CampaignMutation)

// newCampaignMutation creates new mutation for the Campaign entity.
func newCampaignMutation(c config, op Op, opts ...campaignOption) *CampaignMutation {
	m := &CampaignMutation{
		config:        c,
		op:            op,
		typ:           TypeCampaign,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCampaignID sets the ID field of the mutation.
func withCampaignID(id string) campaignOption {
	return func(m *CampaignMutation) {
		var (
			err   error
			once  sync.Once
			value *Campaign
		)
		m.oldValue = func(ctx context.Context) (*Campaign, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Campaign.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCampaign sets the old Campaign of the mutation.
func withCampaign(node *Campaign) campaignOption {
	return func(m *CampaignMutation) {
		m.oldValue = func(context.Context) (*Campaign, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CampaignMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CampaignMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Campaign entities.
func (m *CampaignMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CampaignMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CampaignMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Campaign.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CampaignMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CampaignMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CampaignMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *CampaignMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CampaignMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CampaignMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[campaign.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CampaignMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[campaign.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CampaignMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, campaign.FieldDescription)
}

// SetConfig sets the "config" field.
func (m *CampaignMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *CampaignMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ResetConfig resets all changes to the "config" field.
func (m *CampaignMutation) ResetConfig() {
	m._config = nil
}

// SetAgentID sets the "agent_id" field.
func (m *CampaignMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *CampaignMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *CampaignMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetStatus sets the "status" field.
func (m *CampaignMutation) SetStatus(c campaign.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CampaignMutation) Status() (r campaign.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldStatus(ctx context.Context) (v campaign.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CampaignMutation) ResetStatus() {
	m.status = nil
}

// SetTotalRuns sets the "total_runs" field.
func (m *CampaignMutation) SetTotalRuns(i int) {
	m.total_runs = &i
	m.addtotal_runs = nil
}

// TotalRuns returns the value of the "total_runs" field in the mutation.
func (m *CampaignMutation) TotalRuns() (r int, exists bool) {
	v := m.total_runs
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalRuns returns the old "total_runs" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldTotalRuns(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalRuns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalRuns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalRuns: %w", err)
	}
	return oldValue.TotalRuns, nil
}

// AddTotalRuns adds i to the "total_runs" field.
func (m *CampaignMutation) AddTotalRuns(i int) {
	if m.addtotal_runs != nil {
		*m.addtotal_runs += i
	} else {
		m.addtotal_runs = &i
	}
}

// AddedTotalRuns returns the value that was added to the "total_runs" field in this mutation.
func (m *CampaignMutation) AddedTotalRuns() (r int, exists bool) {
	v := m.addtotal_runs
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalRuns resets all changes to the "total_runs" field.
func (m *CampaignMutation) ResetTotalRuns() {
	m.total_runs = nil
	m.addtotal_runs = nil
}

// SetSucceeded sets the "succeeded" field.
func (m *CampaignMutation) SetSucceeded(i int) {
	m.succeeded = &i
	m.addsucceeded = nil
}

// Succeeded returns the value of the "succeeded" field in the mutation.
func (m *CampaignMutation) Succeeded() (r int, exists bool) {
	v := m.succeeded
	if v == nil {
		return
	}
	return *v, true
}

// OldSucceeded returns the old "succeeded" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldSucceeded(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSucceeded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSucceeded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSucceeded: %w", err)
	}
	return oldValue.Succeeded, nil
}

// AddSucceeded adds i to the "succeeded" field.
func (m *CampaignMutation) AddSucceeded(i int) {
	if m.addsucceeded != nil {
		*m.addsucceeded += i
	} else {
		m.addsucceeded = &i
	}
}

// AddedSucceeded returns the value that was added to the "succeeded" field in this mutation.
func (m *CampaignMutation) AddedSucceeded() (r int, exists bool) {
	v := m.addsucceeded
	if v == nil {
		return
	}
	return *v, true
}

// ResetSucceeded resets all changes to the "succeeded" field.
func (m *CampaignMutation) ResetSucceeded() {
	m.succeeded = nil
	m.addsucceeded = nil
}

// SetFailed sets the "failed" field.
func (m *CampaignMutation) SetFailed(i int) {
	m.failed = &i
	m.addfailed = nil
}

// Failed returns the value of the "failed" field in the mutation.
func (m *CampaignMutation) Failed() (r int, exists bool) {
	v := m.failed
	if v == nil {
		return
	}
	return *v, true
}

// OldFailed returns the old "failed" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailed: %w", err)
	}
	return oldValue.Failed, nil
}

// AddFailed adds i to the "failed" field.
func (m *CampaignMutation) AddFailed(i int) {
	if m.addfailed != nil {
		*m.addfailed += i
	} else {
		m.addfailed = &i
	}
}

// AddedFailed returns the value that was added to the "failed" field in this mutation.
func (m *CampaignMutation) AddedFailed() (r int, exists bool) {
	v := m.addfailed
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailed resets all changes to the "failed" field.
func (m *CampaignMutation) ResetFailed() {
	m.failed = nil
	m.addfailed = nil
}

// SetSkipped sets the "skipped" field.
func (m *CampaignMutation) SetSkipped(i int) {
	m.skipped = &i
	m.addskipped = nil
}

// Skipped returns the value of the "skipped" field in the mutation.
func (m *CampaignMutation) Skipped() (r int, exists bool) {
	v := m.skipped
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipped returns the old "skipped" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldSkipped(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipped: %w", err)
	}
	return oldValue.Skipped, nil
}

// AddSkipped adds i to the "skipped" field.
func (m *CampaignMutation) AddSkipped(i int) {
	if m.addskipped != nil {
		*m.addskipped += i
	} else {
		m.addskipped = &i
	}
}

// AddedSkipped returns the value that was added to the "skipped" field in this mutation.
func (m *CampaignMutation) AddedSkipped() (r int, exists bool) {
	v := m.addskipped
	if v == nil {
		return
	}
	return *v, true
}

// ResetSkipped resets all changes to the "skipped" field.
func (m *CampaignMutation) ResetSkipped() {
	m.skipped = nil
	m.addskipped = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *CampaignMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *CampaignMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *CampaignMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[campaign.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *CampaignMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[campaign.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *CampaignMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, campaign.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *CampaignMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CampaignMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CampaignMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *CampaignMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *CampaignMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *CampaignMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[campaign.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *CampaignMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[campaign.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *CampaignMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, campaign.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *CampaignMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *CampaignMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *CampaignMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[campaign.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *CampaignMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[campaign.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *CampaignMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, campaign.FieldCompletedAt)
}

// AddPlannedRunIDs adds the "planned_runs" edge to the PlannedRun entity by ids.
func (m *CampaignMutation) AddPlannedRunIDs(ids ...string) {
	if m.planned_runs == nil {
		m.planned_runs = make(map[string]struct{})
	}
	for i := range ids {
		m.planned_runs[ids[i]] = struct{}{}
	}
}

// ClearPlannedRuns clears the "planned_runs" edge to the PlannedRun entity.
func (m *CampaignMutation) ClearPlannedRuns() {
	m.clearedplanned_runs = true
}

// PlannedRunsCleared reports if the "planned_runs" edge to the PlannedRun entity was cleared.
func (m *CampaignMutation) PlannedRunsCleared() bool {
	return m.clearedplanned_runs
}

// RemovePlannedRunIDs removes the "planned_runs" edge to the PlannedRun entity by IDs.
func (m *CampaignMutation) RemovePlannedRunIDs(ids ...string) {
	if m.removedplanned_runs == nil {
		m.removedplanned_runs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.planned_runs, ids[i])
		m.removedplanned_runs[ids[i]] = struct{}{}
	}
}

// RemovedPlannedRuns returns the removed IDs of the "planned_runs" edge to the PlannedRun entity.
func (m *CampaignMutation) RemovedPlannedRunsIDs() (ids []string) {
	for id := range m.removedplanned_runs {
		ids = append(ids, id)
	}
	return
}

// PlannedRunsIDs returns the "planned_runs" edge IDs in the mutation.
func (m *CampaignMutation) PlannedRunsIDs() (ids []string) {
	for id := range m.planned_runs {
		ids = append(ids, id)
	}
	return
}

// ResetPlannedRuns resets all changes to the "planned_runs" edge.
func (m *CampaignMutation) ResetPlannedRuns() {
	m.planned_runs = nil
	m.clearedplanned_runs = false
	m.removedplanned_runs = nil
}

// Where appends a list predicates to the CampaignMutation builder.
func (m *CampaignMutation) Where(ps ...predicate.Campaign) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CampaignMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CampaignMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Campaign, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CampaignMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CampaignMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Campaign).
func (m *CampaignMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CampaignMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.name != nil {
		fields = append(fields, campaign.FieldName)
	}
	if m.description != nil {
		fields = append(fields, campaign.FieldDescription)
	}
	if m._config != nil {
		fields = append(fields, campaign.FieldConfig)
	}
	if m.agent_id != nil {
		fields = append(fields, campaign.FieldAgentID)
	}
	if m.status != nil {
		fields = append(fields, campaign.FieldStatus)
	}
	if m.total_runs != nil {
		fields = append(fields, campaign.FieldTotalRuns)
	}
	if m.succeeded != nil {
		fields = append(fields, campaign.FieldSucceeded)
	}
	if m.failed != nil {
		fields = append(fields, campaign.FieldFailed)
	}
	if m.skipped != nil {
		fields = append(fields, campaign.FieldSkipped)
	}
	if m.error_message != nil {
		fields = append(fields, campaign.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, campaign.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, campaign.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, campaign.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CampaignMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case campaign.FieldName:
		return m.Name()
	case campaign.FieldDescription:
		return m.Description()
	case campaign.FieldConfig:
		return m.Config()
	case campaign.FieldAgentID:
		return m.AgentID()
	case campaign.FieldStatus:
		return m.Status()
	case campaign.FieldTotalRuns:
		return m.TotalRuns()
	case campaign.FieldSucceeded:
		return m.Succeeded()
	case campaign.FieldFailed:
		return m.Failed()
	case campaign.FieldSkipped:
		return m.Skipped()
	case campaign.FieldErrorMessage:
		return m.ErrorMessage()
	case campaign.FieldCreatedAt:
		return m.CreatedAt()
	case campaign.FieldStartedAt:
		return m.StartedAt()
	case campaign.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CampaignMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case campaign.FieldName:
		return m.OldName(ctx)
	case campaign.FieldDescription:
		return m.OldDescription(ctx)
	case campaign.FieldConfig:
		return m.OldConfig(ctx)
	case campaign.FieldAgentID:
		return m.OldAgentID(ctx)
	case campaign.FieldStatus:
		return m.OldStatus(ctx)
	case campaign.FieldTotalRuns:
		return m.OldTotalRuns(ctx)
	case campaign.FieldSucceeded:
		return m.OldSucceeded(ctx)
	case campaign.FieldFailed:
		return m.OldFailed(ctx)
	case campaign.FieldSkipped:
		return m.OldSkipped(ctx)
	case campaign.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case campaign.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case campaign.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case campaign.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Campaign field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignMutation) SetField(name string, value ent.Value) error {
	switch name {
	case campaign.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case campaign.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case campaign.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case campaign.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case campaign.FieldStatus:
		v, ok := value.(campaign.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case campaign.FieldTotalRuns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalRuns(v)
		return nil
	case campaign.FieldSucceeded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSucceeded(v)
		return nil
	case campaign.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailed(v)
		return nil
	case campaign.FieldSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipped(v)
		return nil
	case campaign.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case campaign.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case campaign.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case campaign.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Campaign field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CampaignMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_runs != nil {
		fields = append(fields, campaign.FieldTotalRuns)
	}
	if m.addsucceeded != nil {
		fields = append(fields, campaign.FieldSucceeded)
	}
	if m.addfailed != nil {
		fields = append(fields, campaign.FieldFailed)
	}
	if m.addskipped != nil {
		fields = append(fields, campaign.FieldSkipped)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CampaignMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case campaign.FieldTotalRuns:
		return m.AddedTotalRuns()
	case campaign.FieldSucceeded:
		return m.AddedSucceeded()
	case campaign.FieldFailed:
		return m.AddedFailed()
	case campaign.FieldSkipped:
		return m.AddedSkipped()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignMutation) AddField(name string, value ent.Value) error {
	switch name {
	case campaign.FieldTotalRuns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalRuns(v)
		return nil
	case campaign.FieldSucceeded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSucceeded(v)
		return nil
	case campaign.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailed(v)
		return nil
	case campaign.FieldSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSkipped(v)
		return nil
	}
	return fmt.Errorf("unknown Campaign numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CampaignMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(campaign.FieldDescription) {
		fields = append(fields, campaign.FieldDescription)
	}
	if m.FieldCleared(campaign.FieldErrorMessage) {
		fields = append(fields, campaign.FieldErrorMessage)
	}
	if m.FieldCleared(campaign.FieldStartedAt) {
		fields = append(fields, campaign.FieldStartedAt)
	}
	if m.FieldCleared(campaign.FieldCompletedAt) {
		fields = append(fields, campaign.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CampaignMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CampaignMutation) ClearField(name string) error {
	switch name {
	case campaign.FieldDescription:
		m.ClearDescription()
		return nil
	case campaign.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case campaign.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case campaign.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Campaign nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CampaignMutation) ResetField(name string) error {
	switch name {
	case campaign.FieldName:
		m.ResetName()
		return nil
	case campaign.FieldDescription:
		m.ResetDescription()
		return nil
	case campaign.FieldConfig:
		m.ResetConfig()
		return nil
	case campaign.FieldAgentID:
		m.ResetAgentID()
		return nil
	case campaign.FieldStatus:
		m.ResetStatus()
		return nil
	case campaign.FieldTotalRuns:
		m.ResetTotalRuns()
		return nil
	case campaign.FieldSucceeded:
		m.ResetSucceeded()
		return nil
	case campaign.FieldFailed:
		m.ResetFailed()
		return nil
	case campaign.FieldSkipped:
		m.ResetSkipped()
		return nil
	case campaign.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case campaign.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case campaign.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case campaign.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Campaign field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CampaignMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.planned_runs != nil {
		edges = append(edges, campaign.EdgePlannedRuns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CampaignMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case campaign.EdgePlannedRuns:
		ids := make([]ent.Value, 0, len(m.planned_runs))
		for id := range m.planned_runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CampaignMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedplanned_runs != nil {
		edges = append(edges, campaign.EdgePlannedRuns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CampaignMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case campaign.EdgePlannedRuns:
		ids := make([]ent.Value, 0, len(m.removedplanned_runs))
		for id := range m.removedplanned_runs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CampaignMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedplanned_runs {
		edges = append(edges, campaign.EdgePlannedRuns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CampaignMutation) EdgeCleared(name string) bool {
	switch name {
	case campaign.EdgePlannedRuns:
		return m.clearedplanned_runs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CampaignMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Campaign unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CampaignMutation) ResetEdge(name string) error {
	switch name {
	case campaign.EdgePlannedRuns:
		m.ResetPlannedRuns()
		return nil
	}
	return fmt.Errorf("unknown Campaign edge %s", name)
}

// PlannedRunMutation represents an operation that mutates the PlannedRun nodes in the graph.
type PlannedRunMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	model_name           *string
	model_ref            *string
	engine_name          *string
	engine_mode          *plannedrun.EngineMode
	benchmark_name       *string
	suite_name           *string
	quant                *string
	estimated_size_gb    *float64
	addestimated_size_gb *float64
	status               *plannedrun.Status
	command_id           *string
	error_kind           *string
	error_message        *string
	plan_index           *int
	addplan_index        *int
	created_at           *time.Time
	queued_at            *time.Time
	dispatched_at        *time.Time
	started_at           *time.Time
	completed_at         *time.Time
	last_transition_at   *time.Time
	clearedFields        map[string]struct{}
	campaign             *string
	clearedcampaign      bool
	result               *string
	clearedresult        bool
	done                 bool
	oldValue             func(context.Context) (*PlannedRun, error)
	predicates           []predicate.PlannedRun
}

var _ ent.Mutation = (*PlannedRunMutation)(nil)

// plannedrunOption allows management of the mutation configuration using functional options.
type plannedrunOption func(*PlannedRunMutation)

// newPlannedRunMutation creates new mutation for the PlannedRun entity.
func newPlannedRunMutation(c config, op Op, opts ...plannedrunOption) *PlannedRunMutation {
	m := &PlannedRunMutation{
		config:        c,
		op:            op,
		typ:           TypePlannedRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlannedRunID sets the ID field of the mutation.
func withPlannedRunID(id string) plannedrunOption {
	return func(m *PlannedRunMutation) {
		var (
			err   error
			once  sync.Once
			value *PlannedRun
		)
		m.oldValue = func(ctx context.Context) (*PlannedRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PlannedRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlannedRun sets the old PlannedRun of the mutation.
func withPlannedRun(node *PlannedRun) plannedrunOption {
	return func(m *PlannedRunMutation) {
		m.oldValue = func(context.Context) (*PlannedRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlannedRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlannedRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PlannedRun entities.
func (m *PlannedRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlannedRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlannedRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PlannedRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCampaignID sets the "campaign_id" field.
func (m *PlannedRunMutation) SetCampaignID(s string) {
	m.campaign = &s
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *PlannedRunMutation) CampaignID() (r string, exists bool) {
	v := m.campaign
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the PlannedRun entity.
// If the PlannedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlannedRunMutation) OldCampaignID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *PlannedRunMutation) ResetCampaignID() {
	m.campaign = nil
}

// SetModelName sets the "model_name" field.
func (m *PlannedRunMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *PlannedRunMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the PlannedRun entity.
// If the PlannedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlannedRunMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ResetModelName resets all changes to the "model_name" field.
func (m *PlannedRunMutation) ResetModelName() {
	m.model_name = nil
}

// SetModelRef sets the "model_ref" field.
func (m *PlannedRunMutation) SetModelRef(s string) {
	m.model_ref = &s
}

// ModelRef returns the value of the "model_ref" field in the mutation.
func (m *PlannedRunMutation) ModelRef() (r string, exists bool) {
	v := m.model_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldModelRef returns the old "model_ref" field's value of the PlannedRun entity.
// If the PlannedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlannedRunMutation) OldModelRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelRef: %w", err)
	}
	return oldValue.ModelRef, nil
}

// ResetModelRef resets all changes to the "model_ref" field.
func (m *PlannedRunMutation) ResetModelRef() {
	m.model_ref = nil
}

// SetEngineName sets the "engine_name" field.
func (m *PlannedRunMutation) SetEngineName(s string) {
	m.engine_name = &s
}

// EngineName returns the value of the "engine_name" field in the mutation.
func (m *PlannedRunMutation) EngineName() (r string, exists bool) {
	v := m.engine_name
	if v == nil {
		return
	}
	return *v, true
}

// OldEngineName returns the old "engine_name" field's value of the PlannedRun entity.
// If the PlannedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlannedRunMutation) OldEngineName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngineName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngineName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngineName: %w", err)
	}
	return oldValue.EngineName, nil
}

// ResetEngineName resets all changes to the "engine_name" field.
func (m *PlannedRunMutation) ResetEngineName() {
	m.engine_name = nil
}

// SetEngineMode sets the "engine_mode" field.
func (m *PlannedRunMutation) SetEngineMode(pm plannedrun.EngineMode) {
	m.engine_mode = &pm
}

// EngineMode returns the value of the "engine_mode" field in the mutation.
func (m *PlannedRunMutation) EngineMode() (r plannedrun.EngineMode, exists bool) {
	v := m.engine_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldEngineMode returns the old "engine_mode" field's value of the PlannedRun entity.
// If the PlannedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlannedRunMutation) OldEngineMode(ctx context.Context) (v plannedrun.EngineMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngineMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngineMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngineMode: %w", err)
	}
	return oldValue.EngineMode, nil
}

// ResetEngineMode resets all changes to the "engine_mode" field.
func (m *PlannedRunMutation) ResetEngineMode() {
	m.engine_mode = nil
}

// SetBenchmarkName sets the "benchmark_name" field.
func (m *PlannedRunMutation) SetBenchmarkName(s string) {
	m.benchmark_name = &s
}

// BenchmarkName returns the value of the "benchmark_name" field in the mutation.
func (m *PlannedRunMutation) BenchmarkName() (r string, exists bool) {
	v := m.benchmark_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBenchmarkName returns the old "benchmark_name" field's value of the PlannedRun entity.
// If the PlannedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlannedRunMutation) OldBenchmarkName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBenchmarkName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBenchmarkName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBenchmarkName: %w", err)
	}
	return oldValue.BenchmarkName, nil
}

// ResetBenchmarkName resets all changes to the "benchmark_name" field.
func (m *PlannedRunMutation) ResetBenchmarkName() {
	m.benchmark_name = nil
}

// SetSuiteName sets the "suite_name" field.
func (m *PlannedRunMutation) SetSuiteName(s string) {
	m.suite_name = &s
}

// SuiteName returns the value of the "suite_name" field in the mutation.
func (m *PlannedRunMutation) SuiteName() (r string, exists bool) {
	v := m.suite_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSuiteName returns the old "suite_name" field's value of the PlannedRun entity.
// If the PlannedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlannedRunMutation) OldSuiteName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuiteName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuiteName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuiteName: %w", err)
	}
	return oldValue.SuiteName, nil
}

// ResetSuiteName resets all changes to the "suite_name" field.
func (m *PlannedRunMutation) ResetSuiteName() {
	m.suite_name = nil
}

// SetQuant sets the "quant" field.
func (m *PlannedRunMutation) SetQuant(s string) {
	m.quant = &s
}

// Quant returns the value of the "quant" field in the mutation.
func (m *PlannedRunMutation) Quant() (r string, exists bool) {
	v := m.quant
	if v == nil {
		return
	}
	return *v, true
}

// OldQuant returns the old "quant" field's value of the PlannedRun entity.
// If the PlannedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlannedRunMutation) OldQuant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuant: %w", err)
	}
	return oldValue.Quant, nil
}

// ResetQuant resets all changes to the "quant" field.
func (m *PlannedRunMutation) ResetQuant() {
	m.quant = nil
}

// SetEstimatedSizeGB sets the "estimated_size_gb" field.
func (m *PlannedRunMutation) SetEstimatedSizeGB(f float64) {
	m.estimated_size_gb = &f
	m.addestimated_size_gb = nil
}

// EstimatedSizeGB returns the value of the "estimated_size_gb" field in the mutation.
func (m *PlannedRunMutation) EstimatedSizeGB() (r float64, exists bool) {
	v := m.estimated_size_gb
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedSizeGB returns the old "estimated_size_gb" field's value of the PlannedRun entity.
// If the PlannedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlannedRunMutation) OldEstimatedSizeGB(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedSizeGB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedSizeGB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedSizeGB: %w", err)
	}
	return oldValue.EstimatedSizeGB, nil
}

// AddEstimatedSizeGB adds f to the "estimated_size_gb" field.
func (m *PlannedRunMutation) AddEstimatedSizeGB(f float64) {
	if m.addestimated_size_gb != nil {
		*m.addestimated_size_gb += f
	} else {
		m.addestimated_size_gb = &f
	}
}

// AddedEstimatedSizeGB returns the value that was added to the "estimated_size_gb" field in this mutation.
func (m *PlannedRunMutation) AddedEstimatedSizeGB() (r float64, exists bool) {
	v := m.addestimated_size_gb
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedSizeGB resets all changes to the "estimated_size_gb" field.
func (m *PlannedRunMutation) ResetEstimatedSizeGB() {
	m.estimated_size_gb = nil
	m.addestimated_size_gb = nil
}

// SetStatus sets the "status" field.
func (m *PlannedRunMutation) SetStatus(pl plannedrun.Status) {
	m.status = &pl
}

// Status returns the value of the "status" field in the mutation.
func (m *PlannedRunMutation) Status() (r plannedrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PlannedRun entity.
// If the PlannedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlannedRunMutation) OldStatus(ctx context.Context) (v plannedrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PlannedRunMutation) ResetStatus() {
	m.status = nil
}

// SetCommandID sets the "command_id" field.
func (m *PlannedRunMutation) SetCommandID(s string) {
	m.command_id = &s
}

// CommandID returns the value of the "command_id" field in the mutation.
func (m *PlannedRunMutation) CommandID() (r string, exists bool) {
	v := m.command_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCommandID returns the old "command_id" field's value of the PlannedRun entity.
// If the PlannedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlannedRunMutation) OldCommandID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommandID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommandID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommandID: %w", err)
	}
	return oldValue.CommandID, nil
}

// ClearCommandID clears the value of the "command_id" field.
func (m *PlannedRunMutation) ClearCommandID() {
	m.command_id = nil
	m.clearedFields[plannedrun.FieldCommandID] = struct{}{}
}

// CommandIDCleared returns if the "command_id" field was cleared in this mutation.
func (m *PlannedRunMutation) CommandIDCleared() bool {
	_, ok := m.clearedFields[plannedrun.FieldCommandID]
	return ok
}

// ResetCommandID resets all changes to the "command_id" field.
func (m *PlannedRunMutation) ResetCommandID() {
	m.command_id = nil
	delete(m.clearedFields, plannedrun.FieldCommandID)
}

// SetErrorKind sets the "error_kind" field.
func (m *PlannedRunMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *PlannedRunMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the PlannedRun entity.
// If the PlannedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlannedRunMutation) OldErrorKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *PlannedRunMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[plannedrun.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *PlannedRunMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[plannedrun.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *PlannedRunMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, plannedrun.FieldErrorKind)
}

// SetErrorMessage sets the "error_message" field.
func (m *PlannedRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *PlannedRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the PlannedRun entity.
// If the PlannedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlannedRunMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *PlannedRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[plannedrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *PlannedRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[plannedrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *PlannedRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, plannedrun.FieldErrorMessage)
}

// SetPlanIndex sets the "plan_index" field.
func (m *PlannedRunMutation) SetPlanIndex(i int) {
	m.plan_index = &i
	m.addplan_index = nil
}

// PlanIndex returns the value of the "plan_index" field in the mutation.
func (m *PlannedRunMutation) PlanIndex() (r int, exists bool) {
	v := m.plan_index
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanIndex returns the old "plan_index" field's value of the PlannedRun entity.
// If the PlannedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlannedRunMutation) OldPlanIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanIndex: %w", err)
	}
	return oldValue.PlanIndex, nil
}

// AddPlanIndex adds i to the "plan_index" field.
func (m *PlannedRunMutation) AddPlanIndex(i int) {
	if m.addplan_index != nil {
		*m.addplan_index += i
	} else {
		m.addplan_index = &i
	}
}

// AddedPlanIndex returns the value that was added to the "plan_index" field in this mutation.
func (m *PlannedRunMutation) AddedPlanIndex() (r int, exists bool) {
	v := m.addplan_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetPlanIndex resets all changes to the "plan_index" field.
func (m *PlannedRunMutation) ResetPlanIndex() {
	m.plan_index = nil
	m.addplan_index = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PlannedRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PlannedRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PlannedRun entity.
// If the PlannedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlannedRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PlannedRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetQueuedAt sets the "queued_at" field.
func (m *PlannedRunMutation) SetQueuedAt(t time.Time) {
	m.queued_at = &t
}

// QueuedAt returns the value of the "queued_at" field in the mutation.
func (m *PlannedRunMutation) QueuedAt() (r time.Time, exists bool) {
	v := m.queued_at
	if v == nil {
		return
	}
	return *v, true
}

// OldQueuedAt returns the old "queued_at" field's value of the PlannedRun entity.
// If the PlannedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlannedRunMutation) OldQueuedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueuedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueuedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueuedAt: %w", err)
	}
	return oldValue.QueuedAt, nil
}

// ClearQueuedAt clears the value of the "queued_at" field.
func (m *PlannedRunMutation) ClearQueuedAt() {
	m.queued_at = nil
	m.clearedFields[plannedrun.FieldQueuedAt] = struct{}{}
}

// QueuedAtCleared returns if the "queued_at" field was cleared in this mutation.
func (m *PlannedRunMutation) QueuedAtCleared() bool {
	_, ok := m.clearedFields[plannedrun.FieldQueuedAt]
	return ok
}

// ResetQueuedAt resets all changes to the "queued_at" field.
func (m *PlannedRunMutation) ResetQueuedAt() {
	m.queued_at = nil
	delete(m.clearedFields, plannedrun.FieldQueuedAt)
}

// SetDispatchedAt sets the "dispatched_at" field.
func (m *PlannedRunMutation) SetDispatchedAt(t time.Time) {
	m.dispatched_at = &t
}

// DispatchedAt returns the value of the "dispatched_at" field in the mutation.
func (m *PlannedRunMutation) DispatchedAt() (r time.Time, exists bool) {
	v := m.dispatched_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDispatchedAt returns the old "dispatched_at" field's value of the PlannedRun entity.
// If the PlannedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlannedRunMutation) OldDispatchedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDispatchedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDispatchedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDispatchedAt: %w", err)
	}
	return oldValue.DispatchedAt, nil
}

// ClearDispatchedAt clears the value of the "dispatched_at" field.
func (m *PlannedRunMutation) ClearDispatchedAt() {
	m.dispatched_at = nil
	m.clearedFields[plannedrun.FieldDispatchedAt] = struct{}{}
}

// DispatchedAtCleared returns if the "dispatched_at" field was cleared in this mutation.
func (m *PlannedRunMutation) DispatchedAtCleared() bool {
	_, ok := m.clearedFields[plannedrun.FieldDispatchedAt]
	return ok
}

// ResetDispatchedAt resets all changes to the "dispatched_at" field.
func (m *PlannedRunMutation) ResetDispatchedAt() {
	m.dispatched_at = nil
	delete(m.clearedFields, plannedrun.FieldDispatchedAt)
}

// SetStartedAt sets the "started_at" field.
func (m *PlannedRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PlannedRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PlannedRun entity.
// If the PlannedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlannedRunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *PlannedRunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[plannedrun.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *PlannedRunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[plannedrun.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PlannedRunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, plannedrun.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *PlannedRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PlannedRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PlannedRun entity.
// If the PlannedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlannedRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PlannedRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[plannedrun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PlannedRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[plannedrun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PlannedRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, plannedrun.FieldCompletedAt)
}

// SetLastTransitionAt sets the "last_transition_at" field.
func (m *PlannedRunMutation) SetLastTransitionAt(t time.Time) {
	m.last_transition_at = &t
}

// LastTransitionAt returns the value of the "last_transition_at" field in the mutation.
func (m *PlannedRunMutation) LastTransitionAt() (r time.Time, exists bool) {
	v := m.last_transition_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastTransitionAt returns the old "last_transition_at" field's value of the PlannedRun entity.
// If the PlannedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlannedRunMutation) OldLastTransitionAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastTransitionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastTransitionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastTransitionAt: %w", err)
	}
	return oldValue.LastTransitionAt, nil
}

// ResetLastTransitionAt resets all changes to the "last_transition_at" field.
func (m *PlannedRunMutation) ResetLastTransitionAt() {
	m.last_transition_at = nil
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (m *PlannedRunMutation) ClearCampaign() {
	m.clearedcampaign = true
	m.clearedFields[plannedrun.FieldCampaignID] = struct{}{}
}

// CampaignCleared reports if the "campaign" edge to the Campaign entity was cleared.
func (m *PlannedRunMutation) CampaignCleared() bool {
	return m.clearedcampaign
}

// CampaignIDs returns the "campaign" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CampaignID instead. It exists only for internal usage by the builders.
func (m *PlannedRunMutation) CampaignIDs() (ids []string) {
	if id := m.campaign; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCampaign resets all changes to the "campaign" edge.
func (m *PlannedRunMutation) ResetCampaign() {
	m.campaign = nil
	m.clearedcampaign = false
}

// SetResultID sets the "result" edge to the RunResult entity by id.
func (m *PlannedRunMutation) SetResultID(id string) {
	m.result = &id
}

// ClearResult clears the "result" edge to the RunResult entity.
func (m *PlannedRunMutation) ClearResult() {
	m.clearedresult = true
}

// ResultCleared reports if the "result" edge to the RunResult entity was cleared.
func (m *PlannedRunMutation) ResultCleared() bool {
	return m.clearedresult
}

// ResultID returns the "result" edge ID in the mutation.
func (m *PlannedRunMutation) ResultID() (id string, exists bool) {
	if m.result != nil {
		return *m.result, true
	}
	return
}

// ResultIDs returns the "result" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ResultID instead. It exists only for internal usage by the builders.
func (m *PlannedRunMutation) ResultIDs() (ids []string) {
	if id := m.result; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetResult resets all changes to the "result" edge.
func (m *PlannedRunMutation) ResetResult() {
	m.result = nil
	m.clearedresult = false
}

// Where appends a list predicates to the PlannedRunMutation builder.
func (m *PlannedRunMutation) Where(ps ...predicate.PlannedRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlannedRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlannedRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PlannedRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlannedRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlannedRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PlannedRun).
func (m *PlannedRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlannedRunMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.campaign != nil {
		fields = append(fields, plannedrun.FieldCampaignID)
	}
	if m.model_name != nil {
		fields = append(fields, plannedrun.FieldModelName)
	}
	if m.model_ref != nil {
		fields = append(fields, plannedrun.FieldModelRef)
	}
	if m.engine_name != nil {
		fields = append(fields, plannedrun.FieldEngineName)
	}
	if m.engine_mode != nil {
		fields = append(fields, plannedrun.FieldEngineMode)
	}
	if m.benchmark_name != nil {
		fields = append(fields, plannedrun.FieldBenchmarkName)
	}
	if m.suite_name != nil {
		fields = append(fields, plannedrun.FieldSuiteName)
	}
	if m.quant != nil {
		fields = append(fields, plannedrun.FieldQuant)
	}
	if m.estimated_size_gb != nil {
		fields = append(fields, plannedrun.FieldEstimatedSizeGB)
	}
	if m.status != nil {
		fields = append(fields, plannedrun.FieldStatus)
	}
	if m.command_id != nil {
		fields = append(fields, plannedrun.FieldCommandID)
	}
	if m.error_kind != nil {
		fields = append(fields, plannedrun.FieldErrorKind)
	}
	if m.error_message != nil {
		fields = append(fields, plannedrun.FieldErrorMessage)
	}
	if m.plan_index != nil {
		fields = append(fields, plannedrun.FieldPlanIndex)
	}
	if m.created_at != nil {
		fields = append(fields, plannedrun.FieldCreatedAt)
	}
	if m.queued_at != nil {
		fields = append(fields, plannedrun.FieldQueuedAt)
	}
	if m.dispatched_at != nil {
		fields = append(fields, plannedrun.FieldDispatchedAt)
	}
	if m.started_at != nil {
		fields = append(fields, plannedrun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, plannedrun.FieldCompletedAt)
	}
	if m.last_transition_at != nil {
		fields = append(fields, plannedrun.FieldLastTransitionAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlannedRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case plannedrun.FieldCampaignID:
		return m.CampaignID()
	case plannedrun.FieldModelName:
		return m.ModelName()
	case plannedrun.FieldModelRef:
		return m.ModelRef()
	case plannedrun.FieldEngineName:
		return m.EngineName()
	case plannedrun.FieldEngineMode:
		return m.EngineMode()
	case plannedrun.FieldBenchmarkName:
		return m.BenchmarkName()
	case plannedrun.FieldSuiteName:
		return m.SuiteName()
	case plannedrun.FieldQuant:
		return m.Quant()
	case plannedrun.FieldEstimatedSizeGB:
		return m.EstimatedSizeGB()
	case plannedrun.FieldStatus:
		return m.Status()
	case plannedrun.FieldCommandID:
		return m.CommandID()
	case plannedrun.FieldErrorKind:
		return m.ErrorKind()
	case plannedrun.FieldErrorMessage:
		return m.ErrorMessage()
	case plannedrun.FieldPlanIndex:
		return m.PlanIndex()
	case plannedrun.FieldCreatedAt:
		return m.CreatedAt()
	case plannedrun.FieldQueuedAt:
		return m.QueuedAt()
	case plannedrun.FieldDispatchedAt:
		return m.DispatchedAt()
	case plannedrun.FieldStartedAt:
		return m.StartedAt()
	case plannedrun.FieldCompletedAt:
		return m.CompletedAt()
	case plannedrun.FieldLastTransitionAt:
		return m.LastTransitionAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlannedRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case plannedrun.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case plannedrun.FieldModelName:
		return m.OldModelName(ctx)
	case plannedrun.FieldModelRef:
		return m.OldModelRef(ctx)
	case plannedrun.FieldEngineName:
		return m.OldEngineName(ctx)
	case plannedrun.FieldEngineMode:
		return m.OldEngineMode(ctx)
	case plannedrun.FieldBenchmarkName:
		return m.OldBenchmarkName(ctx)
	case plannedrun.FieldSuiteName:
		return m.OldSuiteName(ctx)
	case plannedrun.FieldQuant:
		return m.OldQuant(ctx)
	case plannedrun.FieldEstimatedSizeGB:
		return m.OldEstimatedSizeGB(ctx)
	case plannedrun.FieldStatus:
		return m.OldStatus(ctx)
	case plannedrun.FieldCommandID:
		return m.OldCommandID(ctx)
	case plannedrun.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case plannedrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case plannedrun.FieldPlanIndex:
		return m.OldPlanIndex(ctx)
	case plannedrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case plannedrun.FieldQueuedAt:
		return m.OldQueuedAt(ctx)
	case plannedrun.FieldDispatchedAt:
		return m.OldDispatchedAt(ctx)
	case plannedrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case plannedrun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case plannedrun.FieldLastTransitionAt:
		return m.OldLastTransitionAt(ctx)
	}
	return nil, fmt.Errorf("unknown PlannedRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlannedRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case plannedrun.FieldCampaignID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case plannedrun.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case plannedrun.FieldModelRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelRef(v)
		return nil
	case plannedrun.FieldEngineName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngineName(v)
		return nil
	case plannedrun.FieldEngineMode:
		v, ok := value.(plannedrun.EngineMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngineMode(v)
		return nil
	case plannedrun.FieldBenchmarkName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBenchmarkName(v)
		return nil
	case plannedrun.FieldSuiteName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuiteName(v)
		return nil
	case plannedrun.FieldQuant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuant(v)
		return nil
	case plannedrun.FieldEstimatedSizeGB:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedSizeGB(v)
		return nil
	case plannedrun.FieldStatus:
		v, ok := value.(plannedrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case plannedrun.FieldCommandID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommandID(v)
		return nil
	case plannedrun.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case plannedrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case plannedrun.FieldPlanIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanIndex(v)
		return nil
	case plannedrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case plannedrun.FieldQueuedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueuedAt(v)
		return nil
	case plannedrun.FieldDispatchedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDispatchedAt(v)
		return nil
	case plannedrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case plannedrun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case plannedrun.FieldLastTransitionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastTransitionAt(v)
		return nil
	}
	return fmt.Errorf("unknown PlannedRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlannedRunMutation) AddedFields() []string {
	var fields []string
	if m.addestimated_size_gb != nil {
		fields = append(fields, plannedrun.FieldEstimatedSizeGB)
	}
	if m.addplan_index != nil {
		fields = append(fields, plannedrun.FieldPlanIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlannedRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case plannedrun.FieldEstimatedSizeGB:
		return m.AddedEstimatedSizeGB()
	case plannedrun.FieldPlanIndex:
		return m.AddedPlanIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlannedRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case plannedrun.FieldEstimatedSizeGB:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedSizeGB(v)
		return nil
	case plannedrun.FieldPlanIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPlanIndex(v)
		return nil
	}
	return fmt.Errorf("unknown PlannedRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlannedRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(plannedrun.FieldCommandID) {
		fields = append(fields, plannedrun.FieldCommandID)
	}
	if m.FieldCleared(plannedrun.FieldErrorKind) {
		fields = append(fields, plannedrun.FieldErrorKind)
	}
	if m.FieldCleared(plannedrun.FieldErrorMessage) {
		fields = append(fields, plannedrun.FieldErrorMessage)
	}
	if m.FieldCleared(plannedrun.FieldQueuedAt) {
		fields = append(fields, plannedrun.FieldQueuedAt)
	}
	if m.FieldCleared(plannedrun.FieldDispatchedAt) {
		fields = append(fields, plannedrun.FieldDispatchedAt)
	}
	if m.FieldCleared(plannedrun.FieldStartedAt) {
		fields = append(fields, plannedrun.FieldStartedAt)
	}
	if m.FieldCleared(plannedrun.FieldCompletedAt) {
		fields = append(fields, plannedrun.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlannedRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlannedRunMutation) ClearField(name string) error {
	switch name {
	case plannedrun.FieldCommandID:
		m.ClearCommandID()
		return nil
	case plannedrun.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case plannedrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case plannedrun.FieldQueuedAt:
		m.ClearQueuedAt()
		return nil
	case plannedrun.FieldDispatchedAt:
		m.ClearDispatchedAt()
		return nil
	case plannedrun.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case plannedrun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown PlannedRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlannedRunMutation) ResetField(name string) error {
	switch name {
	case plannedrun.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case plannedrun.FieldModelName:
		m.ResetModelName()
		return nil
	case plannedrun.FieldModelRef:
		m.ResetModelRef()
		return nil
	case plannedrun.FieldEngineName:
		m.ResetEngineName()
		return nil
	case plannedrun.FieldEngineMode:
		m.ResetEngineMode()
		return nil
	case plannedrun.FieldBenchmarkName:
		m.ResetBenchmarkName()
		return nil
	case plannedrun.FieldSuiteName:
		m.ResetSuiteName()
		return nil
	case plannedrun.FieldQuant:
		m.ResetQuant()
		return nil
	case plannedrun.FieldEstimatedSizeGB:
		m.ResetEstimatedSizeGB()
		return nil
	case plannedrun.FieldStatus:
		m.ResetStatus()
		return nil
	case plannedrun.FieldCommandID:
		m.ResetCommandID()
		return nil
	case plannedrun.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case plannedrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case plannedrun.FieldPlanIndex:
		m.ResetPlanIndex()
		return nil
	case plannedrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case plannedrun.FieldQueuedAt:
		m.ResetQueuedAt()
		return nil
	case plannedrun.FieldDispatchedAt:
		m.ResetDispatchedAt()
		return nil
	case plannedrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case plannedrun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case plannedrun.FieldLastTransitionAt:
		m.ResetLastTransitionAt()
		return nil
	}
	return fmt.Errorf("unknown PlannedRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlannedRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.campaign != nil {
		edges = append(edges, plannedrun.EdgeCampaign)
	}
	if m.result != nil {
		edges = append(edges, plannedrun.EdgeResult)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlannedRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case plannedrun.EdgeCampaign:
		if id := m.campaign; id != nil {
			return []ent.Value{*id}
		}
	case plannedrun.EdgeResult:
		if id := m.result; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlannedRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlannedRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlannedRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcampaign {
		edges = append(edges, plannedrun.EdgeCampaign)
	}
	if m.clearedresult {
		edges = append(edges, plannedrun.EdgeResult)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlannedRunMutation) EdgeCleared(name string) bool {
	switch name {
	case plannedrun.EdgeCampaign:
		return m.clearedcampaign
	case plannedrun.EdgeResult:
		return m.clearedresult
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlannedRunMutation) ClearEdge(name string) error {
	switch name {
	case plannedrun.EdgeCampaign:
		m.ClearCampaign()
		return nil
	case plannedrun.EdgeResult:
		m.ClearResult()
		return nil
	}
	return fmt.Errorf("unknown PlannedRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlannedRunMutation) ResetEdge(name string) error {
	switch name {
	case plannedrun.EdgeCampaign:
		m.ResetCampaign()
		return nil
	case plannedrun.EdgeResult:
		m.ResetResult()
		return nil
	}
	return fmt.Errorf("unknown PlannedRun edge %s", name)
}

// RunResultMutation represents an operation that mutates the RunResult nodes in the graph.
type RunResultMutation struct {
	config
	op                Op
	typ               string
	id                *string
	command_id        *string
	passed            *bool
	metrics           *map[string]interface{}
	output_location   *string
	hardware_snapshot *map[string]interface{}
	created_at        *time.Time
	clearedFields     map[string]struct{}
	run               *string
	clearedrun        bool
	done              bool
	oldValue          func(context.Context) (*RunResult, error)
	predicates        []predicate.RunResult
}

var _ ent.Mutation = (*RunResultMutation)(nil)

// runresultOption allows management of the mutation configuration using functional options.
type runresultOption func(*RunResultMutation)

// newRunResultMutation creates new mutation for the RunResult entity.
func newRunResultMutation(c config, op Op, opts ...runresultOption) *RunResultMutation {
	m := &RunResultMutation{
		config:        c,
		op:            op,
		typ:           TypeRunResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunResultID sets the ID field of the mutation.
func withRunResultID(id string) runresultOption {
	return func(m *RunResultMutation) {
		var (
			err   error
			once  sync.Once
			value *RunResult
		)
		m.oldValue = func(ctx context.Context) (*RunResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunResult sets the old RunResult of the mutation.
func withRunResult(node *RunResult) runresultOption {
	return func(m *RunResultMutation) {
		m.oldValue = func(context.Context) (*RunResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RunResult entities.
func (m *RunResultMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunResultMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunResultMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *RunResultMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *RunResultMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the RunResult entity.
// If the RunResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunResultMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *RunResultMutation) ResetRunID() {
	m.run = nil
}

// SetCommandID sets the "command_id" field.
func (m *RunResultMutation) SetCommandID(s string) {
	m.command_id = &s
}

// CommandID returns the value of the "command_id" field in the mutation.
func (m *RunResultMutation) CommandID() (r string, exists bool) {
	v := m.command_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCommandID returns the old "command_id" field's value of the RunResult entity.
// If the RunResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunResultMutation) OldCommandID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommandID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommandID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommandID: %w", err)
	}
	return oldValue.CommandID, nil
}

// ResetCommandID resets all changes to the "command_id" field.
func (m *RunResultMutation) ResetCommandID() {
	m.command_id = nil
}

// SetPassed sets the "passed" field.
func (m *RunResultMutation) SetPassed(b bool) {
	m.passed = &b
}

// Passed returns the value of the "passed" field in the mutation.
func (m *RunResultMutation) Passed() (r bool, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the RunResult entity.
// If the RunResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunResultMutation) OldPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// ResetPassed resets all changes to the "passed" field.
func (m *RunResultMutation) ResetPassed() {
	m.passed = nil
}

// SetMetrics sets the "metrics" field.
func (m *RunResultMutation) SetMetrics(value map[string]interface{}) {
	m.metrics = &value
}

// Metrics returns the value of the "metrics" field in the mutation.
func (m *RunResultMutation) Metrics() (r map[string]interface{}, exists bool) {
	v := m.metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldMetrics returns the old "metrics" field's value of the RunResult entity.
// If the RunResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunResultMutation) OldMetrics(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetrics: %w", err)
	}
	return oldValue.Metrics, nil
}

// ClearMetrics clears the value of the "metrics" field.
func (m *RunResultMutation) ClearMetrics() {
	m.metrics = nil
	m.clearedFields[runresult.FieldMetrics] = struct{}{}
}

// MetricsCleared returns if the "metrics" field was cleared in this mutation.
func (m *RunResultMutation) MetricsCleared() bool {
	_, ok := m.clearedFields[runresult.FieldMetrics]
	return ok
}

// ResetMetrics resets all changes to the "metrics" field.
func (m *RunResultMutation) ResetMetrics() {
	m.metrics = nil
	delete(m.clearedFields, runresult.FieldMetrics)
}

// SetOutputLocation sets the "output_location" field.
func (m *RunResultMutation) SetOutputLocation(s string) {
	m.output_location = &s
}

// OutputLocation returns the value of the "output_location" field in the mutation.
func (m *RunResultMutation) OutputLocation() (r string, exists bool) {
	v := m.output_location
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputLocation returns the old "output_location" field's value of the RunResult entity.
// If the RunResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunResultMutation) OldOutputLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputLocation: %w", err)
	}
	return oldValue.OutputLocation, nil
}

// ClearOutputLocation clears the value of the "output_location" field.
func (m *RunResultMutation) ClearOutputLocation() {
	m.output_location = nil
	m.clearedFields[runresult.FieldOutputLocation] = struct{}{}
}

// OutputLocationCleared returns if the "output_location" field was cleared in this mutation.
func (m *RunResultMutation) OutputLocationCleared() bool {
	_, ok := m.clearedFields[runresult.FieldOutputLocation]
	return ok
}

// ResetOutputLocation resets all changes to the "output_location" field.
func (m *RunResultMutation) ResetOutputLocation() {
	m.output_location = nil
	delete(m.clearedFields, runresult.FieldOutputLocation)
}

// SetHardwareSnapshot sets the "hardware_snapshot" field.
func (m *RunResultMutation) SetHardwareSnapshot(value map[string]interface{}) {
	m.hardware_snapshot = &value
}

// HardwareSnapshot returns the value of the "hardware_snapshot" field in the mutation.
func (m *RunResultMutation) HardwareSnapshot() (r map[string]interface{}, exists bool) {
	v := m.hardware_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldHardwareSnapshot returns the old "hardware_snapshot" field's value of the RunResult entity.
// If the RunResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunResultMutation) OldHardwareSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHardwareSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHardwareSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHardwareSnapshot: %w", err)
	}
	return oldValue.HardwareSnapshot, nil
}

// ClearHardwareSnapshot clears the value of the "hardware_snapshot" field.
func (m *RunResultMutation) ClearHardwareSnapshot() {
	m.hardware_snapshot = nil
	m.clearedFields[runresult.FieldHardwareSnapshot] = struct{}{}
}

// HardwareSnapshotCleared returns if the "hardware_snapshot" field was cleared in this mutation.
func (m *RunResultMutation) HardwareSnapshotCleared() bool {
	_, ok := m.clearedFields[runresult.FieldHardwareSnapshot]
	return ok
}

// ResetHardwareSnapshot resets all changes to the "hardware_snapshot" field.
func (m *RunResultMutation) ResetHardwareSnapshot() {
	m.hardware_snapshot = nil
	delete(m.clearedFields, runresult.FieldHardwareSnapshot)
}

// SetCreatedAt sets the "created_at" field.
func (m *RunResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RunResult entity.
// If the RunResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the PlannedRun entity.
func (m *RunResultMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[runresult.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the PlannedRun entity was cleared.
func (m *RunResultMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *RunResultMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *RunResultMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the RunResultMutation builder.
func (m *RunResultMutation) Where(ps ...predicate.RunResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunResult).
func (m *RunResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunResultMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.run != nil {
		fields = append(fields, runresult.FieldRunID)
	}
	if m.command_id != nil {
		fields = append(fields, runresult.FieldCommandID)
	}
	if m.passed != nil {
		fields = append(fields, runresult.FieldPassed)
	}
	if m.metrics != nil {
		fields = append(fields, runresult.FieldMetrics)
	}
	if m.output_location != nil {
		fields = append(fields, runresult.FieldOutputLocation)
	}
	if m.hardware_snapshot != nil {
		fields = append(fields, runresult.FieldHardwareSnapshot)
	}
	if m.created_at != nil {
		fields = append(fields, runresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runresult.FieldRunID:
		return m.RunID()
	case runresult.FieldCommandID:
		return m.CommandID()
	case runresult.FieldPassed:
		return m.Passed()
	case runresult.FieldMetrics:
		return m.Metrics()
	case runresult.FieldOutputLocation:
		return m.OutputLocation()
	case runresult.FieldHardwareSnapshot:
		return m.HardwareSnapshot()
	case runresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runresult.FieldRunID:
		return m.OldRunID(ctx)
	case runresult.FieldCommandID:
		return m.OldCommandID(ctx)
	case runresult.FieldPassed:
		return m.OldPassed(ctx)
	case runresult.FieldMetrics:
		return m.OldMetrics(ctx)
	case runresult.FieldOutputLocation:
		return m.OldOutputLocation(ctx)
	case runresult.FieldHardwareSnapshot:
		return m.OldHardwareSnapshot(ctx)
	case runresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RunResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runresult.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case runresult.FieldCommandID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommandID(v)
		return nil
	case runresult.FieldPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case runresult.FieldMetrics:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetrics(v)
		return nil
	case runresult.FieldOutputLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputLocation(v)
		return nil
	case runresult.FieldHardwareSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHardwareSnapshot(v)
		return nil
	case runresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RunResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunResultMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunResultMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RunResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(runresult.FieldMetrics) {
		fields = append(fields, runresult.FieldMetrics)
	}
	if m.FieldCleared(runresult.FieldOutputLocation) {
		fields = append(fields, runresult.FieldOutputLocation)
	}
	if m.FieldCleared(runresult.FieldHardwareSnapshot) {
		fields = append(fields, runresult.FieldHardwareSnapshot)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunResultMutation) ClearField(name string) error {
	switch name {
	case runresult.FieldMetrics:
		m.ClearMetrics()
		return nil
	case runresult.FieldOutputLocation:
		m.ClearOutputLocation()
		return nil
	case runresult.FieldHardwareSnapshot:
		m.ClearHardwareSnapshot()
		return nil
	}
	return fmt.Errorf("unknown RunResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunResultMutation) ResetField(name string) error {
	switch name {
	case runresult.FieldRunID:
		m.ResetRunID()
		return nil
	case runresult.FieldCommandID:
		m.ResetCommandID()
		return nil
	case runresult.FieldPassed:
		m.ResetPassed()
		return nil
	case runresult.FieldMetrics:
		m.ResetMetrics()
		return nil
	case runresult.FieldOutputLocation:
		m.ResetOutputLocation()
		return nil
	case runresult.FieldHardwareSnapshot:
		m.ResetHardwareSnapshot()
		return nil
	case runresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RunResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, runresult.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case runresult.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, runresult.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunResultMutation) EdgeCleared(name string) bool {
	switch name {
	case runresult.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunResultMutation) ClearEdge(name string) error {
	switch name {
	case runresult.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown RunResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunResultMutation) ResetEdge(name string) error {
	switch name {
	case runresult.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown RunResult edge %s", name)
}

// StreamEventMutation represents an operation that mutates the StreamEvent nodes in the graph.
type StreamEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	stream_id     *string
	kind          *streamevent.Kind
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*StreamEvent, error)
	predicates    []predicate.StreamEvent
}

var _ ent.Mutation = (*StreamEventMutation)(nil)

// streameventOption allows management of the mutation configuration using functional options.
type streameventOption func(*StreamEventMutation)

// newStreamEventMutation creates new mutation for the StreamEvent entity.
func newStreamEventMutation(c config, op Op, opts ...streameventOption) *StreamEventMutation {
	m := &StreamEventMutation{
		config:        c,
		op:            op,
		typ:           TypeStreamEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStreamEventID sets the ID field of the mutation.
func withStreamEventID(id int) streameventOption {
	return func(m *StreamEventMutation) {
		var (
			err   error
			once  sync.Once
			value *StreamEvent
		)
		m.oldValue = func(ctx context.Context) (*StreamEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StreamEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStreamEvent sets the old StreamEvent of the mutation.
func withStreamEvent(node *StreamEvent) streameventOption {
	return func(m *StreamEventMutation) {
		m.oldValue = func(context.Context) (*StreamEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StreamEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StreamEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StreamEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StreamEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StreamEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStreamID sets the "stream_id" field.
func (m *StreamEventMutation) SetStreamID(s string) {
	m.stream_id = &s
}

// StreamID returns the value of the "stream_id" field in the mutation.
func (m *StreamEventMutation) StreamID() (r string, exists bool) {
	v := m.stream_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamID returns the old "stream_id" field's value of the StreamEvent entity.
// If the StreamEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreamEventMutation) OldStreamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamID: %w", err)
	}
	return oldValue.StreamID, nil
}

// ResetStreamID resets all changes to the "stream_id" field.
func (m *StreamEventMutation) ResetStreamID() {
	m.stream_id = nil
}

// SetKind sets the "kind" field.
func (m *StreamEventMutation) SetKind(s streamevent.Kind) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *StreamEventMutation) Kind() (r streamevent.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the StreamEvent entity.
// If the StreamEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreamEventMutation) OldKind(ctx context.Context) (v streamevent.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *StreamEventMutation) ResetKind() {
	m.kind = nil
}

// SetPayload sets the "payload" field.
func (m *StreamEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *StreamEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the StreamEvent entity.
// If the StreamEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreamEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *StreamEventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StreamEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StreamEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StreamEvent entity.
// If the StreamEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreamEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StreamEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the StreamEventMutation builder.
func (m *StreamEventMutation) Where(ps ...predicate.StreamEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StreamEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StreamEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StreamEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StreamEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StreamEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StreamEvent).
func (m *StreamEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StreamEventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.stream_id != nil {
		fields = append(fields, streamevent.FieldStreamID)
	}
	if m.kind != nil {
		fields = append(fields, streamevent.FieldKind)
	}
	if m.payload != nil {
		fields = append(fields, streamevent.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, streamevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StreamEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case streamevent.FieldStreamID:
		return m.StreamID()
	case streamevent.FieldKind:
		return m.Kind()
	case streamevent.FieldPayload:
		return m.Payload()
	case streamevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StreamEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case streamevent.FieldStreamID:
		return m.OldStreamID(ctx)
	case streamevent.FieldKind:
		return m.OldKind(ctx)
	case streamevent.FieldPayload:
		return m.OldPayload(ctx)
	case streamevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StreamEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StreamEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case streamevent.FieldStreamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamID(v)
		return nil
	case streamevent.FieldKind:
		v, ok := value.(streamevent.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case streamevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case streamevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StreamEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StreamEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StreamEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StreamEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StreamEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StreamEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StreamEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StreamEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StreamEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StreamEventMutation) ResetField(name string) error {
	switch name {
	case streamevent.FieldStreamID:
		m.ResetStreamID()
		return nil
	case streamevent.FieldKind:
		m.ResetKind()
		return nil
	case streamevent.FieldPayload:
		m.ResetPayload()
		return nil
	case streamevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StreamEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StreamEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StreamEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StreamEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StreamEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StreamEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StreamEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StreamEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StreamEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StreamEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StreamEvent edge %s", name)
}
