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
	"github.com/Kirizan/kitt-sub000/ent/campaign"
	"github.com/Kirizan/kitt-sub000/ent/plannedrun"
	"github.com/Kirizan/kitt-sub000/ent/runresult"
)

// PlannedRunCreate is the builder for creating a PlannedRun entity.
type PlannedRunCreate struct {
	config
	mutation *PlannedRunMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCampaignID sets the "campaign_id" field.
func (_c *PlannedRunCreate) SetCampaignID(v string) *PlannedRunCreate {
	_c.mutation.SetCampaignID(v)
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *PlannedRunCreate) SetModelName(v string) *PlannedRunCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetModelRef sets the "model_ref" field.
func (_c *PlannedRunCreate) SetModelRef(v string) *PlannedRunCreate {
	_c.mutation.SetModelRef(v)
	return _c
}

// SetEngineName sets the "engine_name" field.
func (_c *PlannedRunCreate) SetEngineName(v string) *PlannedRunCreate {
	_c.mutation.SetEngineName(v)
	return _c
}

// SetEngineMode sets the "engine_mode" field.
func (_c *PlannedRunCreate) SetEngineMode(v plannedrun.EngineMode) *PlannedRunCreate {
	_c.mutation.SetEngineMode(v)
	return _c
}

// SetNillableEngineMode sets the "engine_mode" field if the given value is not nil.
func (_c *PlannedRunCreate) SetNillableEngineMode(v *plannedrun.EngineMode) *PlannedRunCreate {
	if v != nil {
		_c.SetEngineMode(*v)
	}
	return _c
}

// SetBenchmarkName sets the "benchmark_name" field.
func (_c *PlannedRunCreate) SetBenchmarkName(v string) *PlannedRunCreate {
	_c.mutation.SetBenchmarkName(v)
	return _c
}

// SetSuiteName sets the "suite_name" field.
func (_c *PlannedRunCreate) SetSuiteName(v string) *PlannedRunCreate {
	_c.mutation.SetSuiteName(v)
	return _c
}

// SetNillableSuiteName sets the "suite_name" field if the given value is not nil.
func (_c *PlannedRunCreate) SetNillableSuiteName(v *string) *PlannedRunCreate {
	if v != nil {
		_c.SetSuiteName(*v)
	}
	return _c
}

// SetQuant sets the "quant" field.
func (_c *PlannedRunCreate) SetQuant(v string) *PlannedRunCreate {
	_c.mutation.SetQuant(v)
	return _c
}

// SetEstimatedSizeGB sets the "estimated_size_gb" field.
func (_c *PlannedRunCreate) SetEstimatedSizeGB(v float64) *PlannedRunCreate {
	_c.mutation.SetEstimatedSizeGB(v)
	return _c
}

// SetNillableEstimatedSizeGB sets the "estimated_size_gb" field if the given value is not nil.
func (_c *PlannedRunCreate) SetNillableEstimatedSizeGB(v *float64) *PlannedRunCreate {
	if v != nil {
		_c.SetEstimatedSizeGB(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PlannedRunCreate) SetStatus(v plannedrun.Status) *PlannedRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PlannedRunCreate) SetNillableStatus(v *plannedrun.Status) *PlannedRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCommandID sets the "command_id" field.
func (_c *PlannedRunCreate) SetCommandID(v string) *PlannedRunCreate {
	_c.mutation.SetCommandID(v)
	return _c
}

// SetNillableCommandID sets the "command_id" field if the given value is not nil.
func (_c *PlannedRunCreate) SetNillableCommandID(v *string) *PlannedRunCreate {
	if v != nil {
		_c.SetCommandID(*v)
	}
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *PlannedRunCreate) SetErrorKind(v string) *PlannedRunCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *PlannedRunCreate) SetNillableErrorKind(v *string) *PlannedRunCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *PlannedRunCreate) SetErrorMessage(v string) *PlannedRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *PlannedRunCreate) SetNillableErrorMessage(v *string) *PlannedRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetPlanIndex sets the "plan_index" field.
func (_c *PlannedRunCreate) SetPlanIndex(v int) *PlannedRunCreate {
	_c.mutation.SetPlanIndex(v)
	return _c
}

// SetNillablePlanIndex sets the "plan_index" field if the given value is not nil.
func (_c *PlannedRunCreate) SetNillablePlanIndex(v *int) *PlannedRunCreate {
	if v != nil {
		_c.SetPlanIndex(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PlannedRunCreate) SetCreatedAt(v time.Time) *PlannedRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PlannedRunCreate) SetNillableCreatedAt(v *time.Time) *PlannedRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetQueuedAt sets the "queued_at" field.
func (_c *PlannedRunCreate) SetQueuedAt(v time.Time) *PlannedRunCreate {
	_c.mutation.SetQueuedAt(v)
	return _c
}

// SetNillableQueuedAt sets the "queued_at" field if the given value is not nil.
func (_c *PlannedRunCreate) SetNillableQueuedAt(v *time.Time) *PlannedRunCreate {
	if v != nil {
		_c.SetQueuedAt(*v)
	}
	return _c
}

// SetDispatchedAt sets the "dispatched_at" field.
func (_c *PlannedRunCreate) SetDispatchedAt(v time.Time) *PlannedRunCreate {
	_c.mutation.SetDispatchedAt(v)
	return _c
}

// SetNillableDispatchedAt sets the "dispatched_at" field if the given value is not nil.
func (_c *PlannedRunCreate) SetNillableDispatchedAt(v *time.Time) *PlannedRunCreate {
	if v != nil {
		_c.SetDispatchedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *PlannedRunCreate) SetStartedAt(v time.Time) *PlannedRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *PlannedRunCreate) SetNillableStartedAt(v *time.Time) *PlannedRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PlannedRunCreate) SetCompletedAt(v time.Time) *PlannedRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PlannedRunCreate) SetNillableCompletedAt(v *time.Time) *PlannedRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastTransitionAt sets the "last_transition_at" field.
func (_c *PlannedRunCreate) SetLastTransitionAt(v time.Time) *PlannedRunCreate {
	_c.mutation.SetLastTransitionAt(v)
	return _c
}

// SetNillableLastTransitionAt sets the "last_transition_at" field if the given value is not nil.
func (_c *PlannedRunCreate) SetNillableLastTransitionAt(v *time.Time) *PlannedRunCreate {
	if v != nil {
		_c.SetLastTransitionAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PlannedRunCreate) SetID(v string) *PlannedRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_c *PlannedRunCreate) SetCampaign(v *Campaign) *PlannedRunCreate {
	return _c.SetCampaignID(v.ID)
}

// SetResultID sets the "result" edge to the RunResult entity by ID.
func (_c *PlannedRunCreate) SetResultID(id string) *PlannedRunCreate {
	_c.mutation.SetResultID(id)
	return _c
}

// SetNillableResultID sets the "result" edge to the RunResult entity by ID if the given value is not nil.
func (_c *PlannedRunCreate) SetNillableResultID(id *string) *PlannedRunCreate {
	if id != nil {
		_c = _c.SetResultID(*id)
	}
	return _c
}

// SetResult sets the "result" edge to the RunResult entity.
func (_c *PlannedRunCreate) SetResult(v *RunResult) *PlannedRunCreate {
	return _c.SetResultID(v.ID)
}

// Mutation returns the PlannedRunMutation object of the builder.
func (_c *PlannedRunCreate) Mutation() *PlannedRunMutation {
	return _c.mutation
}

// Save creates the PlannedRun in the database.
func (_c *PlannedRunCreate) Save(ctx context.Context) (*PlannedRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlannedRunCreate) SaveX(ctx context.Context) *PlannedRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlannedRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlannedRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlannedRunCreate) defaults() {
	if _, ok := _c.mutation.EngineMode(); !ok {
		v := plannedrun.DefaultEngineMode
		_c.mutation.SetEngineMode(v)
	}
	if _, ok := _c.mutation.SuiteName(); !ok {
		v := plannedrun.DefaultSuiteName
		_c.mutation.SetSuiteName(v)
	}
	if _, ok := _c.mutation.EstimatedSizeGB(); !ok {
		v := plannedrun.DefaultEstimatedSizeGB
		_c.mutation.SetEstimatedSizeGB(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := plannedrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.PlanIndex(); !ok {
		v := plannedrun.DefaultPlanIndex
		_c.mutation.SetPlanIndex(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := plannedrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastTransitionAt(); !ok {
		v := plannedrun.DefaultLastTransitionAt()
		_c.mutation.SetLastTransitionAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlannedRunCreate) check() error {
	if _, ok := _c.mutation.CampaignID(); !ok {
		return &ValidationError{Name: "campaign_id", err: errors.New(`ent: missing required field "PlannedRun.campaign_id"`)}
	}
	if _, ok := _c.mutation.ModelName(); !ok {
		return &ValidationError{Name: "model_name", err: errors.New(`ent: missing required field "PlannedRun.model_name"`)}
	}
	if _, ok := _c.mutation.ModelRef(); !ok {
		return &ValidationError{Name: "model_ref", err: errors.New(`ent: missing required field "PlannedRun.model_ref"`)}
	}
	if _, ok := _c.mutation.EngineName(); !ok {
		return &ValidationError{Name: "engine_name", err: errors.New(`ent: missing required field "PlannedRun.engine_name"`)}
	}
	if _, ok := _c.mutation.EngineMode(); !ok {
		return &ValidationError{Name: "engine_mode", err: errors.New(`ent: missing required field "PlannedRun.engine_mode"`)}
	}
	if v, ok := _c.mutation.EngineMode(); ok {
		if err := plannedrun.EngineModeValidator(v); err != nil {
			return &ValidationError{Name: "engine_mode", err: fmt.Errorf(`ent: validator failed for field "PlannedRun.engine_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BenchmarkName(); !ok {
		return &ValidationError{Name: "benchmark_name", err: errors.New(`ent: missing required field "PlannedRun.benchmark_name"`)}
	}
	if _, ok := _c.mutation.SuiteName(); !ok {
		return &ValidationError{Name: "suite_name", err: errors.New(`ent: missing required field "PlannedRun.suite_name"`)}
	}
	if _, ok := _c.mutation.Quant(); !ok {
		return &ValidationError{Name: "quant", err: errors.New(`ent: missing required field "PlannedRun.quant"`)}
	}
	if _, ok := _c.mutation.EstimatedSizeGB(); !ok {
		return &ValidationError{Name: "estimated_size_gb", err: errors.New(`ent: missing required field "PlannedRun.estimated_size_gb"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PlannedRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := plannedrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PlannedRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PlanIndex(); !ok {
		return &ValidationError{Name: "plan_index", err: errors.New(`ent: missing required field "PlannedRun.plan_index"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PlannedRun.created_at"`)}
	}
	if _, ok := _c.mutation.LastTransitionAt(); !ok {
		return &ValidationError{Name: "last_transition_at", err: errors.New(`ent: missing required field "PlannedRun.last_transition_at"`)}
	}
	if len(_c.mutation.CampaignIDs()) == 0 {
		return &ValidationError{Name: "campaign", err: errors.New(`ent: missing required edge "PlannedRun.campaign"`)}
	}
	return nil
}

func (_c *PlannedRunCreate) sqlSave(ctx context.Context) (*PlannedRun, error) {
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
			return nil, fmt.Errorf("unexpected PlannedRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PlannedRunCreate) createSpec() (*PlannedRun, *sqlgraph.CreateSpec) {
	var (
		_node = &PlannedRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(plannedrun.Table, sqlgraph.NewFieldSpec(plannedrun.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(plannedrun.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.ModelRef(); ok {
		_spec.SetField(plannedrun.FieldModelRef, field.TypeString, value)
		_node.ModelRef = value
	}
	if value, ok := _c.mutation.EngineName(); ok {
		_spec.SetField(plannedrun.FieldEngineName, field.TypeString, value)
		_node.EngineName = value
	}
	if value, ok := _c.mutation.EngineMode(); ok {
		_spec.SetField(plannedrun.FieldEngineMode, field.TypeEnum, value)
		_node.EngineMode = value
	}
	if value, ok := _c.mutation.BenchmarkName(); ok {
		_spec.SetField(plannedrun.FieldBenchmarkName, field.TypeString, value)
		_node.BenchmarkName = value
	}
	if value, ok := _c.mutation.SuiteName(); ok {
		_spec.SetField(plannedrun.FieldSuiteName, field.TypeString, value)
		_node.SuiteName = value
	}
	if value, ok := _c.mutation.Quant(); ok {
		_spec.SetField(plannedrun.FieldQuant, field.TypeString, value)
		_node.Quant = value
	}
	if value, ok := _c.mutation.EstimatedSizeGB(); ok {
		_spec.SetField(plannedrun.FieldEstimatedSizeGB, field.TypeFloat64, value)
		_node.EstimatedSizeGB = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(plannedrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CommandID(); ok {
		_spec.SetField(plannedrun.FieldCommandID, field.TypeString, value)
		_node.CommandID = &value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(plannedrun.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(plannedrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.PlanIndex(); ok {
		_spec.SetField(plannedrun.FieldPlanIndex, field.TypeInt, value)
		_node.PlanIndex = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(plannedrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.QueuedAt(); ok {
		_spec.SetField(plannedrun.FieldQueuedAt, field.TypeTime, value)
		_node.QueuedAt = &value
	}
	if value, ok := _c.mutation.DispatchedAt(); ok {
		_spec.SetField(plannedrun.FieldDispatchedAt, field.TypeTime, value)
		_node.DispatchedAt = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(plannedrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(plannedrun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastTransitionAt(); ok {
		_spec.SetField(plannedrun.FieldLastTransitionAt, field.TypeTime, value)
		_node.LastTransitionAt = value
	}
	if nodes := _c.mutation.CampaignIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   plannedrun.CampaignTable,
			Columns: []string{plannedrun.CampaignColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CampaignID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResultIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   plannedrun.ResultTable,
			Columns: []string{plannedrun.ResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PlannedRun.Create().
//		SetCampaignID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlannedRunUpsert) {
//			SetCampaignID(v+v).
//		}).
//		Exec(ctx)
func (_c *PlannedRunCreate) OnConflict(opts ...sql.ConflictOption) *PlannedRunUpsertOne {
	_c.conflict = opts
	return &PlannedRunUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PlannedRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlannedRunCreate) OnConflictColumns(columns ...string) *PlannedRunUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlannedRunUpsertOne{
		create: _c,
	}
}

type (
	// PlannedRunUpsertOne is the builder for "upsert"-ing
	//  one PlannedRun node.
	PlannedRunUpsertOne struct {
		create *PlannedRunCreate
	}

	// PlannedRunUpsert is the "OnConflict" setter.
	PlannedRunUpsert struct {
		*sql.UpdateSet
	}
)

// SetCampaignID sets the "campaign_id" field.
func (u *PlannedRunUpsert) SetCampaignID(v string) *PlannedRunUpsert {
	u.Set(plannedrun.FieldCampaignID, v)
	return u
}

// UpdateCampaignID sets the "campaign_id" field to the value that was provided on create.
func (u *PlannedRunUpsert) UpdateCampaignID() *PlannedRunUpsert {
	u.SetExcluded(plannedrun.FieldCampaignID)
	return u
}

// SetModelName sets the "model_name" field.
func (u *PlannedRunUpsert) SetModelName(v string) *PlannedRunUpsert {
	u.Set(plannedrun.FieldModelName, v)
	return u
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *PlannedRunUpsert) UpdateModelName() *PlannedRunUpsert {
	u.SetExcluded(plannedrun.FieldModelName)
	return u
}

// SetModelRef sets the "model_ref" field.
func (u *PlannedRunUpsert) SetModelRef(v string) *PlannedRunUpsert {
	u.Set(plannedrun.FieldModelRef, v)
	return u
}

// UpdateModelRef sets the "model_ref" field to the value that was provided on create.
func (u *PlannedRunUpsert) UpdateModelRef() *PlannedRunUpsert {
	u.SetExcluded(plannedrun.FieldModelRef)
	return u
}

// SetEngineName sets the "engine_name" field.
func (u *PlannedRunUpsert) SetEngineName(v string) *PlannedRunUpsert {
	u.Set(plannedrun.FieldEngineName, v)
	return u
}

// UpdateEngineName sets the "engine_name" field to the value that was provided on create.
func (u *PlannedRunUpsert) UpdateEngineName() *PlannedRunUpsert {
	u.SetExcluded(plannedrun.FieldEngineName)
	return u
}

// SetEngineMode sets the "engine_mode" field.
func (u *PlannedRunUpsert) SetEngineMode(v plannedrun.EngineMode) *PlannedRunUpsert {
	u.Set(plannedrun.FieldEngineMode, v)
	return u
}

// UpdateEngineMode sets the "engine_mode" field to the value that was provided on create.
func (u *PlannedRunUpsert) UpdateEngineMode() *PlannedRunUpsert {
	u.SetExcluded(plannedrun.FieldEngineMode)
	return u
}

// SetBenchmarkName sets the "benchmark_name" field.
func (u *PlannedRunUpsert) SetBenchmarkName(v string) *PlannedRunUpsert {
	u.Set(plannedrun.FieldBenchmarkName, v)
	return u
}

// UpdateBenchmarkName sets the "benchmark_name" field to the value that was provided on create.
func (u *PlannedRunUpsert) UpdateBenchmarkName() *PlannedRunUpsert {
	u.SetExcluded(plannedrun.FieldBenchmarkName)
	return u
}

// SetSuiteName sets the "suite_name" field.
func (u *PlannedRunUpsert) SetSuiteName(v string) *PlannedRunUpsert {
	u.Set(plannedrun.FieldSuiteName, v)
	return u
}

// UpdateSuiteName sets the "suite_name" field to the value that was provided on create.
func (u *PlannedRunUpsert) UpdateSuiteName() *PlannedRunUpsert {
	u.SetExcluded(plannedrun.FieldSuiteName)
	return u
}

// SetQuant sets the "quant" field.
func (u *PlannedRunUpsert) SetQuant(v string) *PlannedRunUpsert {
	u.Set(plannedrun.FieldQuant, v)
	return u
}

// UpdateQuant sets the "quant" field to the value that was provided on create.
func (u *PlannedRunUpsert) UpdateQuant() *PlannedRunUpsert {
	u.SetExcluded(plannedrun.FieldQuant)
	return u
}

// SetEstimatedSizeGB sets the "estimated_size_gb" field.
func (u *PlannedRunUpsert) SetEstimatedSizeGB(v float64) *PlannedRunUpsert {
	u.Set(plannedrun.FieldEstimatedSizeGB, v)
	return u
}

// UpdateEstimatedSizeGB sets the "estimated_size_gb" field to the value that was provided on create.
func (u *PlannedRunUpsert) UpdateEstimatedSizeGB() *PlannedRunUpsert {
	u.SetExcluded(plannedrun.FieldEstimatedSizeGB)
	return u
}

// AddEstimatedSizeGB adds v to the "estimated_size_gb" field.
func (u *PlannedRunUpsert) AddEstimatedSizeGB(v float64) *PlannedRunUpsert {
	u.Add(plannedrun.FieldEstimatedSizeGB, v)
	return u
}

// SetStatus sets the "status" field.
func (u *PlannedRunUpsert) SetStatus(v plannedrun.Status) *PlannedRunUpsert {
	u.Set(plannedrun.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PlannedRunUpsert) UpdateStatus() *PlannedRunUpsert {
	u.SetExcluded(plannedrun.FieldStatus)
	return u
}

// SetCommandID sets the "command_id" field.
func (u *PlannedRunUpsert) SetCommandID(v string) *PlannedRunUpsert {
	u.Set(plannedrun.FieldCommandID, v)
	return u
}

// UpdateCommandID sets the "command_id" field to the value that was provided on create.
func (u *PlannedRunUpsert) UpdateCommandID() *PlannedRunUpsert {
	u.SetExcluded(plannedrun.FieldCommandID)
	return u
}

// ClearCommandID clears the value of the "command_id" field.
func (u *PlannedRunUpsert) ClearCommandID() *PlannedRunUpsert {
	u.SetNull(plannedrun.FieldCommandID)
	return u
}

// SetErrorKind sets the "error_kind" field.
func (u *PlannedRunUpsert) SetErrorKind(v string) *PlannedRunUpsert {
	u.Set(plannedrun.FieldErrorKind, v)
	return u
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *PlannedRunUpsert) UpdateErrorKind() *PlannedRunUpsert {
	u.SetExcluded(plannedrun.FieldErrorKind)
	return u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *PlannedRunUpsert) ClearErrorKind() *PlannedRunUpsert {
	u.SetNull(plannedrun.FieldErrorKind)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *PlannedRunUpsert) SetErrorMessage(v string) *PlannedRunUpsert {
	u.Set(plannedrun.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *PlannedRunUpsert) UpdateErrorMessage() *PlannedRunUpsert {
	u.SetExcluded(plannedrun.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *PlannedRunUpsert) ClearErrorMessage() *PlannedRunUpsert {
	u.SetNull(plannedrun.FieldErrorMessage)
	return u
}

// SetPlanIndex sets the "plan_index" field.
func (u *PlannedRunUpsert) SetPlanIndex(v int) *PlannedRunUpsert {
	u.Set(plannedrun.FieldPlanIndex, v)
	return u
}

// UpdatePlanIndex sets the "plan_index" field to the value that was provided on create.
func (u *PlannedRunUpsert) UpdatePlanIndex() *PlannedRunUpsert {
	u.SetExcluded(plannedrun.FieldPlanIndex)
	return u
}

// AddPlanIndex adds v to the "plan_index" field.
func (u *PlannedRunUpsert) AddPlanIndex(v int) *PlannedRunUpsert {
	u.Add(plannedrun.FieldPlanIndex, v)
	return u
}

// SetQueuedAt sets the "queued_at" field.
func (u *PlannedRunUpsert) SetQueuedAt(v time.Time) *PlannedRunUpsert {
	u.Set(plannedrun.FieldQueuedAt, v)
	return u
}

// UpdateQueuedAt sets the "queued_at" field to the value that was provided on create.
func (u *PlannedRunUpsert) UpdateQueuedAt() *PlannedRunUpsert {
	u.SetExcluded(plannedrun.FieldQueuedAt)
	return u
}

// ClearQueuedAt clears the value of the "queued_at" field.
func (u *PlannedRunUpsert) ClearQueuedAt() *PlannedRunUpsert {
	u.SetNull(plannedrun.FieldQueuedAt)
	return u
}

// SetDispatchedAt sets the "dispatched_at" field.
func (u *PlannedRunUpsert) SetDispatchedAt(v time.Time) *PlannedRunUpsert {
	u.Set(plannedrun.FieldDispatchedAt, v)
	return u
}

// UpdateDispatchedAt sets the "dispatched_at" field to the value that was provided on create.
func (u *PlannedRunUpsert) UpdateDispatchedAt() *PlannedRunUpsert {
	u.SetExcluded(plannedrun.FieldDispatchedAt)
	return u
}

// ClearDispatchedAt clears the value of the "dispatched_at" field.
func (u *PlannedRunUpsert) ClearDispatchedAt() *PlannedRunUpsert {
	u.SetNull(plannedrun.FieldDispatchedAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *PlannedRunUpsert) SetStartedAt(v time.Time) *PlannedRunUpsert {
	u.Set(plannedrun.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *PlannedRunUpsert) UpdateStartedAt() *PlannedRunUpsert {
	u.SetExcluded(plannedrun.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *PlannedRunUpsert) ClearStartedAt() *PlannedRunUpsert {
	u.SetNull(plannedrun.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *PlannedRunUpsert) SetCompletedAt(v time.Time) *PlannedRunUpsert {
	u.Set(plannedrun.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PlannedRunUpsert) UpdateCompletedAt() *PlannedRunUpsert {
	u.SetExcluded(plannedrun.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PlannedRunUpsert) ClearCompletedAt() *PlannedRunUpsert {
	u.SetNull(plannedrun.FieldCompletedAt)
	return u
}

// SetLastTransitionAt sets the "last_transition_at" field.
func (u *PlannedRunUpsert) SetLastTransitionAt(v time.Time) *PlannedRunUpsert {
	u.Set(plannedrun.FieldLastTransitionAt, v)
	return u
}

// UpdateLastTransitionAt sets the "last_transition_at" field to the value that was provided on create.
func (u *PlannedRunUpsert) UpdateLastTransitionAt() *PlannedRunUpsert {
	u.SetExcluded(plannedrun.FieldLastTransitionAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PlannedRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(plannedrun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PlannedRunUpsertOne) UpdateNewValues() *PlannedRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(plannedrun.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(plannedrun.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PlannedRun.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PlannedRunUpsertOne) Ignore() *PlannedRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlannedRunUpsertOne) DoNothing() *PlannedRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlannedRunCreate.OnConflict
// documentation for more info.
func (u *PlannedRunUpsertOne) Update(set func(*PlannedRunUpsert)) *PlannedRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlannedRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetCampaignID sets the "campaign_id" field.
func (u *PlannedRunUpsertOne) SetCampaignID(v string) *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetCampaignID(v)
	})
}

// UpdateCampaignID sets the "campaign_id" field to the value that was provided on create.
func (u *PlannedRunUpsertOne) UpdateCampaignID() *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateCampaignID()
	})
}

// SetModelName sets the "model_name" field.
func (u *PlannedRunUpsertOne) SetModelName(v string) *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetModelName(v)
	})
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *PlannedRunUpsertOne) UpdateModelName() *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateModelName()
	})
}

// SetModelRef sets the "model_ref" field.
func (u *PlannedRunUpsertOne) SetModelRef(v string) *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetModelRef(v)
	})
}

// UpdateModelRef sets the "model_ref" field to the value that was provided on create.
func (u *PlannedRunUpsertOne) UpdateModelRef() *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateModelRef()
	})
}

// SetEngineName sets the "engine_name" field.
func (u *PlannedRunUpsertOne) SetEngineName(v string) *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetEngineName(v)
	})
}

// UpdateEngineName sets the "engine_name" field to the value that was provided on create.
func (u *PlannedRunUpsertOne) UpdateEngineName() *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateEngineName()
	})
}

// SetEngineMode sets the "engine_mode" field.
func (u *PlannedRunUpsertOne) SetEngineMode(v plannedrun.EngineMode) *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetEngineMode(v)
	})
}

// UpdateEngineMode sets the "engine_mode" field to the value that was provided on create.
func (u *PlannedRunUpsertOne) UpdateEngineMode() *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateEngineMode()
	})
}

// SetBenchmarkName sets the "benchmark_name" field.
func (u *PlannedRunUpsertOne) SetBenchmarkName(v string) *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetBenchmarkName(v)
	})
}

// UpdateBenchmarkName sets the "benchmark_name" field to the value that was provided on create.
func (u *PlannedRunUpsertOne) UpdateBenchmarkName() *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateBenchmarkName()
	})
}

// SetSuiteName sets the "suite_name" field.
func (u *PlannedRunUpsertOne) SetSuiteName(v string) *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetSuiteName(v)
	})
}

// UpdateSuiteName sets the "suite_name" field to the value that was provided on create.
func (u *PlannedRunUpsertOne) UpdateSuiteName() *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateSuiteName()
	})
}

// SetQuant sets the "quant" field.
func (u *PlannedRunUpsertOne) SetQuant(v string) *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetQuant(v)
	})
}

// UpdateQuant sets the "quant" field to the value that was provided on create.
func (u *PlannedRunUpsertOne) UpdateQuant() *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateQuant()
	})
}

// SetEstimatedSizeGB sets the "estimated_size_gb" field.
func (u *PlannedRunUpsertOne) SetEstimatedSizeGB(v float64) *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetEstimatedSizeGB(v)
	})
}

// AddEstimatedSizeGB adds v to the "estimated_size_gb" field.
func (u *PlannedRunUpsertOne) AddEstimatedSizeGB(v float64) *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.AddEstimatedSizeGB(v)
	})
}

// UpdateEstimatedSizeGB sets the "estimated_size_gb" field to the value that was provided on create.
func (u *PlannedRunUpsertOne) UpdateEstimatedSizeGB() *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateEstimatedSizeGB()
	})
}

// SetStatus sets the "status" field.
func (u *PlannedRunUpsertOne) SetStatus(v plannedrun.Status) *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PlannedRunUpsertOne) UpdateStatus() *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateStatus()
	})
}

// SetCommandID sets the "command_id" field.
func (u *PlannedRunUpsertOne) SetCommandID(v string) *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetCommandID(v)
	})
}

// UpdateCommandID sets the "command_id" field to the value that was provided on create.
func (u *PlannedRunUpsertOne) UpdateCommandID() *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateCommandID()
	})
}

// ClearCommandID clears the value of the "command_id" field.
func (u *PlannedRunUpsertOne) ClearCommandID() *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.ClearCommandID()
	})
}

// SetErrorKind sets the "error_kind" field.
func (u *PlannedRunUpsertOne) SetErrorKind(v string) *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetErrorKind(v)
	})
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *PlannedRunUpsertOne) UpdateErrorKind() *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateErrorKind()
	})
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *PlannedRunUpsertOne) ClearErrorKind() *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.ClearErrorKind()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *PlannedRunUpsertOne) SetErrorMessage(v string) *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *PlannedRunUpsertOne) UpdateErrorMessage() *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *PlannedRunUpsertOne) ClearErrorMessage() *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.ClearErrorMessage()
	})
}

// SetPlanIndex sets the "plan_index" field.
func (u *PlannedRunUpsertOne) SetPlanIndex(v int) *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetPlanIndex(v)
	})
}

// AddPlanIndex adds v to the "plan_index" field.
func (u *PlannedRunUpsertOne) AddPlanIndex(v int) *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.AddPlanIndex(v)
	})
}

// UpdatePlanIndex sets the "plan_index" field to the value that was provided on create.
func (u *PlannedRunUpsertOne) UpdatePlanIndex() *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdatePlanIndex()
	})
}

// SetQueuedAt sets the "queued_at" field.
func (u *PlannedRunUpsertOne) SetQueuedAt(v time.Time) *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetQueuedAt(v)
	})
}

// UpdateQueuedAt sets the "queued_at" field to the value that was provided on create.
func (u *PlannedRunUpsertOne) UpdateQueuedAt() *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateQueuedAt()
	})
}

// ClearQueuedAt clears the value of the "queued_at" field.
func (u *PlannedRunUpsertOne) ClearQueuedAt() *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.ClearQueuedAt()
	})
}

// SetDispatchedAt sets the "dispatched_at" field.
func (u *PlannedRunUpsertOne) SetDispatchedAt(v time.Time) *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetDispatchedAt(v)
	})
}

// UpdateDispatchedAt sets the "dispatched_at" field to the value that was provided on create.
func (u *PlannedRunUpsertOne) UpdateDispatchedAt() *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateDispatchedAt()
	})
}

// ClearDispatchedAt clears the value of the "dispatched_at" field.
func (u *PlannedRunUpsertOne) ClearDispatchedAt() *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.ClearDispatchedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *PlannedRunUpsertOne) SetStartedAt(v time.Time) *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *PlannedRunUpsertOne) UpdateStartedAt() *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *PlannedRunUpsertOne) ClearStartedAt() *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *PlannedRunUpsertOne) SetCompletedAt(v time.Time) *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PlannedRunUpsertOne) UpdateCompletedAt() *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PlannedRunUpsertOne) ClearCompletedAt() *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.ClearCompletedAt()
	})
}

// SetLastTransitionAt sets the "last_transition_at" field.
func (u *PlannedRunUpsertOne) SetLastTransitionAt(v time.Time) *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetLastTransitionAt(v)
	})
}

// UpdateLastTransitionAt sets the "last_transition_at" field to the value that was provided on create.
func (u *PlannedRunUpsertOne) UpdateLastTransitionAt() *PlannedRunUpsertOne {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateLastTransitionAt()
	})
}

// Exec executes the query.
func (u *PlannedRunUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlannedRunCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlannedRunUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PlannedRunUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PlannedRunUpsertOne.ID is not supported by MySQL driver. Use PlannedRunUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PlannedRunUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PlannedRunCreateBulk is the builder for creating many PlannedRun entities in bulk.
type PlannedRunCreateBulk struct {
	config
	err      error
	builders []*PlannedRunCreate
	conflict []sql.ConflictOption
}

// Save creates the PlannedRun entities in the database.
func (_c *PlannedRunCreateBulk) Save(ctx context.Context) ([]*PlannedRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlannedRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlannedRunMutation)
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
func (_c *PlannedRunCreateBulk) SaveX(ctx context.Context) []*PlannedRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlannedRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlannedRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PlannedRun.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlannedRunUpsert) {
//			SetCampaignID(v+v).
//		}).
//		Exec(ctx)
func (_c *PlannedRunCreateBulk) OnConflict(opts ...sql.ConflictOption) *PlannedRunUpsertBulk {
	_c.conflict = opts
	return &PlannedRunUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PlannedRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlannedRunCreateBulk) OnConflictColumns(columns ...string) *PlannedRunUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlannedRunUpsertBulk{
		create: _c,
	}
}

// PlannedRunUpsertBulk is the builder for "upsert"-ing
// a bulk of PlannedRun nodes.
type PlannedRunUpsertBulk struct {
	create *PlannedRunCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PlannedRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(plannedrun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PlannedRunUpsertBulk) UpdateNewValues() *PlannedRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(plannedrun.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(plannedrun.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PlannedRun.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PlannedRunUpsertBulk) Ignore() *PlannedRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlannedRunUpsertBulk) DoNothing() *PlannedRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlannedRunCreateBulk.OnConflict
// documentation for more info.
func (u *PlannedRunUpsertBulk) Update(set func(*PlannedRunUpsert)) *PlannedRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlannedRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetCampaignID sets the "campaign_id" field.
func (u *PlannedRunUpsertBulk) SetCampaignID(v string) *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetCampaignID(v)
	})
}

// UpdateCampaignID sets the "campaign_id" field to the value that was provided on create.
func (u *PlannedRunUpsertBulk) UpdateCampaignID() *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateCampaignID()
	})
}

// SetModelName sets the "model_name" field.
func (u *PlannedRunUpsertBulk) SetModelName(v string) *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetModelName(v)
	})
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *PlannedRunUpsertBulk) UpdateModelName() *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateModelName()
	})
}

// SetModelRef sets the "model_ref" field.
func (u *PlannedRunUpsertBulk) SetModelRef(v string) *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetModelRef(v)
	})
}

// UpdateModelRef sets the "model_ref" field to the value that was provided on create.
func (u *PlannedRunUpsertBulk) UpdateModelRef() *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateModelRef()
	})
}

// SetEngineName sets the "engine_name" field.
func (u *PlannedRunUpsertBulk) SetEngineName(v string) *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetEngineName(v)
	})
}

// UpdateEngineName sets the "engine_name" field to the value that was provided on create.
func (u *PlannedRunUpsertBulk) UpdateEngineName() *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateEngineName()
	})
}

// SetEngineMode sets the "engine_mode" field.
func (u *PlannedRunUpsertBulk) SetEngineMode(v plannedrun.EngineMode) *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetEngineMode(v)
	})
}

// UpdateEngineMode sets the "engine_mode" field to the value that was provided on create.
func (u *PlannedRunUpsertBulk) UpdateEngineMode() *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateEngineMode()
	})
}

// SetBenchmarkName sets the "benchmark_name" field.
func (u *PlannedRunUpsertBulk) SetBenchmarkName(v string) *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetBenchmarkName(v)
	})
}

// UpdateBenchmarkName sets the "benchmark_name" field to the value that was provided on create.
func (u *PlannedRunUpsertBulk) UpdateBenchmarkName() *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateBenchmarkName()
	})
}

// SetSuiteName sets the "suite_name" field.
func (u *PlannedRunUpsertBulk) SetSuiteName(v string) *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetSuiteName(v)
	})
}

// UpdateSuiteName sets the "suite_name" field to the value that was provided on create.
func (u *PlannedRunUpsertBulk) UpdateSuiteName() *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateSuiteName()
	})
}

// SetQuant sets the "quant" field.
func (u *PlannedRunUpsertBulk) SetQuant(v string) *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetQuant(v)
	})
}

// UpdateQuant sets the "quant" field to the value that was provided on create.
func (u *PlannedRunUpsertBulk) UpdateQuant() *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateQuant()
	})
}

// SetEstimatedSizeGB sets the "estimated_size_gb" field.
func (u *PlannedRunUpsertBulk) SetEstimatedSizeGB(v float64) *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetEstimatedSizeGB(v)
	})
}

// AddEstimatedSizeGB adds v to the "estimated_size_gb" field.
func (u *PlannedRunUpsertBulk) AddEstimatedSizeGB(v float64) *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.AddEstimatedSizeGB(v)
	})
}

// UpdateEstimatedSizeGB sets the "estimated_size_gb" field to the value that was provided on create.
func (u *PlannedRunUpsertBulk) UpdateEstimatedSizeGB() *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateEstimatedSizeGB()
	})
}

// SetStatus sets the "status" field.
func (u *PlannedRunUpsertBulk) SetStatus(v plannedrun.Status) *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PlannedRunUpsertBulk) UpdateStatus() *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateStatus()
	})
}

// SetCommandID sets the "command_id" field.
func (u *PlannedRunUpsertBulk) SetCommandID(v string) *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetCommandID(v)
	})
}

// UpdateCommandID sets the "command_id" field to the value that was provided on create.
func (u *PlannedRunUpsertBulk) UpdateCommandID() *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateCommandID()
	})
}

// ClearCommandID clears the value of the "command_id" field.
func (u *PlannedRunUpsertBulk) ClearCommandID() *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.ClearCommandID()
	})
}

// SetErrorKind sets the "error_kind" field.
func (u *PlannedRunUpsertBulk) SetErrorKind(v string) *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetErrorKind(v)
	})
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *PlannedRunUpsertBulk) UpdateErrorKind() *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateErrorKind()
	})
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *PlannedRunUpsertBulk) ClearErrorKind() *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.ClearErrorKind()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *PlannedRunUpsertBulk) SetErrorMessage(v string) *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *PlannedRunUpsertBulk) UpdateErrorMessage() *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *PlannedRunUpsertBulk) ClearErrorMessage() *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.ClearErrorMessage()
	})
}

// SetPlanIndex sets the "plan_index" field.
func (u *PlannedRunUpsertBulk) SetPlanIndex(v int) *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetPlanIndex(v)
	})
}

// AddPlanIndex adds v to the "plan_index" field.
func (u *PlannedRunUpsertBulk) AddPlanIndex(v int) *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.AddPlanIndex(v)
	})
}

// UpdatePlanIndex sets the "plan_index" field to the value that was provided on create.
func (u *PlannedRunUpsertBulk) UpdatePlanIndex() *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdatePlanIndex()
	})
}

// SetQueuedAt sets the "queued_at" field.
func (u *PlannedRunUpsertBulk) SetQueuedAt(v time.Time) *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetQueuedAt(v)
	})
}

// UpdateQueuedAt sets the "queued_at" field to the value that was provided on create.
func (u *PlannedRunUpsertBulk) UpdateQueuedAt() *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateQueuedAt()
	})
}

// ClearQueuedAt clears the value of the "queued_at" field.
func (u *PlannedRunUpsertBulk) ClearQueuedAt() *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.ClearQueuedAt()
	})
}

// SetDispatchedAt sets the "dispatched_at" field.
func (u *PlannedRunUpsertBulk) SetDispatchedAt(v time.Time) *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetDispatchedAt(v)
	})
}

// UpdateDispatchedAt sets the "dispatched_at" field to the value that was provided on create.
func (u *PlannedRunUpsertBulk) UpdateDispatchedAt() *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateDispatchedAt()
	})
}

// ClearDispatchedAt clears the value of the "dispatched_at" field.
func (u *PlannedRunUpsertBulk) ClearDispatchedAt() *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.ClearDispatchedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *PlannedRunUpsertBulk) SetStartedAt(v time.Time) *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *PlannedRunUpsertBulk) UpdateStartedAt() *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *PlannedRunUpsertBulk) ClearStartedAt() *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *PlannedRunUpsertBulk) SetCompletedAt(v time.Time) *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PlannedRunUpsertBulk) UpdateCompletedAt() *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PlannedRunUpsertBulk) ClearCompletedAt() *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.ClearCompletedAt()
	})
}

// SetLastTransitionAt sets the "last_transition_at" field.
func (u *PlannedRunUpsertBulk) SetLastTransitionAt(v time.Time) *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.SetLastTransitionAt(v)
	})
}

// UpdateLastTransitionAt sets the "last_transition_at" field to the value that was provided on create.
func (u *PlannedRunUpsertBulk) UpdateLastTransitionAt() *PlannedRunUpsertBulk {
	return u.Update(func(s *PlannedRunUpsert) {
		s.UpdateLastTransitionAt()
	})
}

// Exec executes the query.
func (u *PlannedRunUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PlannedRunCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlannedRunCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlannedRunUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
