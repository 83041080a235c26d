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
	"github.com/Kirizan/kitt-sub000/ent/campaign"
	"github.com/Kirizan/kitt-sub000/ent/plannedrun"
	"github.com/Kirizan/kitt-sub000/ent/predicate"
	"github.com/Kirizan/kitt-sub000/ent/runresult"
)

// PlannedRunUpdate is the builder for updating PlannedRun entities.
type PlannedRunUpdate struct {
	config
	hooks    []Hook
	mutation *PlannedRunMutation
}

// Where appends a list predicates to the PlannedRunUpdate builder.
func (_u *PlannedRunUpdate) Where(ps ...predicate.PlannedRun) *PlannedRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCampaignID sets the "campaign_id" field.
func (_u *PlannedRunUpdate) SetCampaignID(v string) *PlannedRunUpdate {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *PlannedRunUpdate) SetNillableCampaignID(v *string) *PlannedRunUpdate {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *PlannedRunUpdate) SetModelName(v string) *PlannedRunUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *PlannedRunUpdate) SetNillableModelName(v *string) *PlannedRunUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetModelRef sets the "model_ref" field.
func (_u *PlannedRunUpdate) SetModelRef(v string) *PlannedRunUpdate {
	_u.mutation.SetModelRef(v)
	return _u
}

// SetNillableModelRef sets the "model_ref" field if the given value is not nil.
func (_u *PlannedRunUpdate) SetNillableModelRef(v *string) *PlannedRunUpdate {
	if v != nil {
		_u.SetModelRef(*v)
	}
	return _u
}

// SetEngineName sets the "engine_name" field.
func (_u *PlannedRunUpdate) SetEngineName(v string) *PlannedRunUpdate {
	_u.mutation.SetEngineName(v)
	return _u
}

// SetNillableEngineName sets the "engine_name" field if the given value is not nil.
func (_u *PlannedRunUpdate) SetNillableEngineName(v *string) *PlannedRunUpdate {
	if v != nil {
		_u.SetEngineName(*v)
	}
	return _u
}

// SetEngineMode sets the "engine_mode" field.
func (_u *PlannedRunUpdate) SetEngineMode(v plannedrun.EngineMode) *PlannedRunUpdate {
	_u.mutation.SetEngineMode(v)
	return _u
}

// SetNillableEngineMode sets the "engine_mode" field if the given value is not nil.
func (_u *PlannedRunUpdate) SetNillableEngineMode(v *plannedrun.EngineMode) *PlannedRunUpdate {
	if v != nil {
		_u.SetEngineMode(*v)
	}
	return _u
}

// SetBenchmarkName sets the "benchmark_name" field.
func (_u *PlannedRunUpdate) SetBenchmarkName(v string) *PlannedRunUpdate {
	_u.mutation.SetBenchmarkName(v)
	return _u
}

// SetNillableBenchmarkName sets the "benchmark_name" field if the given value is not nil.
func (_u *PlannedRunUpdate) SetNillableBenchmarkName(v *string) *PlannedRunUpdate {
	if v != nil {
		_u.SetBenchmarkName(*v)
	}
	return _u
}

// SetSuiteName sets the "suite_name" field.
func (_u *PlannedRunUpdate) SetSuiteName(v string) *PlannedRunUpdate {
	_u.mutation.SetSuiteName(v)
	return _u
}

// SetNillableSuiteName sets the "suite_name" field if the given value is not nil.
func (_u *PlannedRunUpdate) SetNillableSuiteName(v *string) *PlannedRunUpdate {
	if v != nil {
		_u.SetSuiteName(*v)
	}
	return _u
}

// SetQuant sets the "quant" field.
func (_u *PlannedRunUpdate) SetQuant(v string) *PlannedRunUpdate {
	_u.mutation.SetQuant(v)
	return _u
}

// SetNillableQuant sets the "quant" field if the given value is not nil.
func (_u *PlannedRunUpdate) SetNillableQuant(v *string) *PlannedRunUpdate {
	if v != nil {
		_u.SetQuant(*v)
	}
	return _u
}

// SetEstimatedSizeGB sets the "estimated_size_gb" field.
func (_u *PlannedRunUpdate) SetEstimatedSizeGB(v float64) *PlannedRunUpdate {
	_u.mutation.ResetEstimatedSizeGB()
	_u.mutation.SetEstimatedSizeGB(v)
	return _u
}

// SetNillableEstimatedSizeGB sets the "estimated_size_gb" field if the given value is not nil.
func (_u *PlannedRunUpdate) SetNillableEstimatedSizeGB(v *float64) *PlannedRunUpdate {
	if v != nil {
		_u.SetEstimatedSizeGB(*v)
	}
	return _u
}

// AddEstimatedSizeGB adds value to the "estimated_size_gb" field.
func (_u *PlannedRunUpdate) AddEstimatedSizeGB(v float64) *PlannedRunUpdate {
	_u.mutation.AddEstimatedSizeGB(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PlannedRunUpdate) SetStatus(v plannedrun.Status) *PlannedRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PlannedRunUpdate) SetNillableStatus(v *plannedrun.Status) *PlannedRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCommandID sets the "command_id" field.
func (_u *PlannedRunUpdate) SetCommandID(v string) *PlannedRunUpdate {
	_u.mutation.SetCommandID(v)
	return _u
}

// SetNillableCommandID sets the "command_id" field if the given value is not nil.
func (_u *PlannedRunUpdate) SetNillableCommandID(v *string) *PlannedRunUpdate {
	if v != nil {
		_u.SetCommandID(*v)
	}
	return _u
}

// ClearCommandID clears the value of the "command_id" field.
func (_u *PlannedRunUpdate) ClearCommandID() *PlannedRunUpdate {
	_u.mutation.ClearCommandID()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *PlannedRunUpdate) SetErrorKind(v string) *PlannedRunUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *PlannedRunUpdate) SetNillableErrorKind(v *string) *PlannedRunUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *PlannedRunUpdate) ClearErrorKind() *PlannedRunUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PlannedRunUpdate) SetErrorMessage(v string) *PlannedRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PlannedRunUpdate) SetNillableErrorMessage(v *string) *PlannedRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PlannedRunUpdate) ClearErrorMessage() *PlannedRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPlanIndex sets the "plan_index" field.
func (_u *PlannedRunUpdate) SetPlanIndex(v int) *PlannedRunUpdate {
	_u.mutation.ResetPlanIndex()
	_u.mutation.SetPlanIndex(v)
	return _u
}

// SetNillablePlanIndex sets the "plan_index" field if the given value is not nil.
func (_u *PlannedRunUpdate) SetNillablePlanIndex(v *int) *PlannedRunUpdate {
	if v != nil {
		_u.SetPlanIndex(*v)
	}
	return _u
}

// AddPlanIndex adds value to the "plan_index" field.
func (_u *PlannedRunUpdate) AddPlanIndex(v int) *PlannedRunUpdate {
	_u.mutation.AddPlanIndex(v)
	return _u
}

// SetQueuedAt sets the "queued_at" field.
func (_u *PlannedRunUpdate) SetQueuedAt(v time.Time) *PlannedRunUpdate {
	_u.mutation.SetQueuedAt(v)
	return _u
}

// SetNillableQueuedAt sets the "queued_at" field if the given value is not nil.
func (_u *PlannedRunUpdate) SetNillableQueuedAt(v *time.Time) *PlannedRunUpdate {
	if v != nil {
		_u.SetQueuedAt(*v)
	}
	return _u
}

// ClearQueuedAt clears the value of the "queued_at" field.
func (_u *PlannedRunUpdate) ClearQueuedAt() *PlannedRunUpdate {
	_u.mutation.ClearQueuedAt()
	return _u
}

// SetDispatchedAt sets the "dispatched_at" field.
func (_u *PlannedRunUpdate) SetDispatchedAt(v time.Time) *PlannedRunUpdate {
	_u.mutation.SetDispatchedAt(v)
	return _u
}

// SetNillableDispatchedAt sets the "dispatched_at" field if the given value is not nil.
func (_u *PlannedRunUpdate) SetNillableDispatchedAt(v *time.Time) *PlannedRunUpdate {
	if v != nil {
		_u.SetDispatchedAt(*v)
	}
	return _u
}

// ClearDispatchedAt clears the value of the "dispatched_at" field.
func (_u *PlannedRunUpdate) ClearDispatchedAt() *PlannedRunUpdate {
	_u.mutation.ClearDispatchedAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PlannedRunUpdate) SetStartedAt(v time.Time) *PlannedRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PlannedRunUpdate) SetNillableStartedAt(v *time.Time) *PlannedRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PlannedRunUpdate) ClearStartedAt() *PlannedRunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PlannedRunUpdate) SetCompletedAt(v time.Time) *PlannedRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PlannedRunUpdate) SetNillableCompletedAt(v *time.Time) *PlannedRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PlannedRunUpdate) ClearCompletedAt() *PlannedRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastTransitionAt sets the "last_transition_at" field.
func (_u *PlannedRunUpdate) SetLastTransitionAt(v time.Time) *PlannedRunUpdate {
	_u.mutation.SetLastTransitionAt(v)
	return _u
}

// SetNillableLastTransitionAt sets the "last_transition_at" field if the given value is not nil.
func (_u *PlannedRunUpdate) SetNillableLastTransitionAt(v *time.Time) *PlannedRunUpdate {
	if v != nil {
		_u.SetLastTransitionAt(*v)
	}
	return _u
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_u *PlannedRunUpdate) SetCampaign(v *Campaign) *PlannedRunUpdate {
	return _u.SetCampaignID(v.ID)
}

// SetResultID sets the "result" edge to the RunResult entity by ID.
func (_u *PlannedRunUpdate) SetResultID(id string) *PlannedRunUpdate {
	_u.mutation.SetResultID(id)
	return _u
}

// SetNillableResultID sets the "result" edge to the RunResult entity by ID if the given value is not nil.
func (_u *PlannedRunUpdate) SetNillableResultID(id *string) *PlannedRunUpdate {
	if id != nil {
		_u = _u.SetResultID(*id)
	}
	return _u
}

// SetResult sets the "result" edge to the RunResult entity.
func (_u *PlannedRunUpdate) SetResult(v *RunResult) *PlannedRunUpdate {
	return _u.SetResultID(v.ID)
}

// Mutation returns the PlannedRunMutation object of the builder.
func (_u *PlannedRunUpdate) Mutation() *PlannedRunMutation {
	return _u.mutation
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (_u *PlannedRunUpdate) ClearCampaign() *PlannedRunUpdate {
	_u.mutation.ClearCampaign()
	return _u
}

// ClearResult clears the "result" edge to the RunResult entity.
func (_u *PlannedRunUpdate) ClearResult() *PlannedRunUpdate {
	_u.mutation.ClearResult()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlannedRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlannedRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlannedRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlannedRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlannedRunUpdate) check() error {
	if v, ok := _u.mutation.EngineMode(); ok {
		if err := plannedrun.EngineModeValidator(v); err != nil {
			return &ValidationError{Name: "engine_mode", err: fmt.Errorf(`ent: validator failed for field "PlannedRun.engine_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := plannedrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PlannedRun.status": %w`, err)}
		}
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PlannedRun.campaign"`)
	}
	return nil
}

func (_u *PlannedRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plannedrun.Table, plannedrun.Columns, sqlgraph.NewFieldSpec(plannedrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(plannedrun.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelRef(); ok {
		_spec.SetField(plannedrun.FieldModelRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.EngineName(); ok {
		_spec.SetField(plannedrun.FieldEngineName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EngineMode(); ok {
		_spec.SetField(plannedrun.FieldEngineMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BenchmarkName(); ok {
		_spec.SetField(plannedrun.FieldBenchmarkName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SuiteName(); ok {
		_spec.SetField(plannedrun.FieldSuiteName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quant(); ok {
		_spec.SetField(plannedrun.FieldQuant, field.TypeString, value)
	}
	if value, ok := _u.mutation.EstimatedSizeGB(); ok {
		_spec.SetField(plannedrun.FieldEstimatedSizeGB, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedSizeGB(); ok {
		_spec.AddField(plannedrun.FieldEstimatedSizeGB, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(plannedrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CommandID(); ok {
		_spec.SetField(plannedrun.FieldCommandID, field.TypeString, value)
	}
	if _u.mutation.CommandIDCleared() {
		_spec.ClearField(plannedrun.FieldCommandID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(plannedrun.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(plannedrun.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(plannedrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(plannedrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PlanIndex(); ok {
		_spec.SetField(plannedrun.FieldPlanIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlanIndex(); ok {
		_spec.AddField(plannedrun.FieldPlanIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QueuedAt(); ok {
		_spec.SetField(plannedrun.FieldQueuedAt, field.TypeTime, value)
	}
	if _u.mutation.QueuedAtCleared() {
		_spec.ClearField(plannedrun.FieldQueuedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DispatchedAt(); ok {
		_spec.SetField(plannedrun.FieldDispatchedAt, field.TypeTime, value)
	}
	if _u.mutation.DispatchedAtCleared() {
		_spec.ClearField(plannedrun.FieldDispatchedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(plannedrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(plannedrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(plannedrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(plannedrun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastTransitionAt(); ok {
		_spec.SetField(plannedrun.FieldLastTransitionAt, field.TypeTime, value)
	}
	if _u.mutation.CampaignCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plannedrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlannedRunUpdateOne is the builder for updating a single PlannedRun entity.
type PlannedRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlannedRunMutation
}

// SetCampaignID sets the "campaign_id" field.
func (_u *PlannedRunUpdateOne) SetCampaignID(v string) *PlannedRunUpdateOne {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *PlannedRunUpdateOne) SetNillableCampaignID(v *string) *PlannedRunUpdateOne {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *PlannedRunUpdateOne) SetModelName(v string) *PlannedRunUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *PlannedRunUpdateOne) SetNillableModelName(v *string) *PlannedRunUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetModelRef sets the "model_ref" field.
func (_u *PlannedRunUpdateOne) SetModelRef(v string) *PlannedRunUpdateOne {
	_u.mutation.SetModelRef(v)
	return _u
}

// SetNillableModelRef sets the "model_ref" field if the given value is not nil.
func (_u *PlannedRunUpdateOne) SetNillableModelRef(v *string) *PlannedRunUpdateOne {
	if v != nil {
		_u.SetModelRef(*v)
	}
	return _u
}

// SetEngineName sets the "engine_name" field.
func (_u *PlannedRunUpdateOne) SetEngineName(v string) *PlannedRunUpdateOne {
	_u.mutation.SetEngineName(v)
	return _u
}

// SetNillableEngineName sets the "engine_name" field if the given value is not nil.
func (_u *PlannedRunUpdateOne) SetNillableEngineName(v *string) *PlannedRunUpdateOne {
	if v != nil {
		_u.SetEngineName(*v)
	}
	return _u
}

// SetEngineMode sets the "engine_mode" field.
func (_u *PlannedRunUpdateOne) SetEngineMode(v plannedrun.EngineMode) *PlannedRunUpdateOne {
	_u.mutation.SetEngineMode(v)
	return _u
}

// SetNillableEngineMode sets the "engine_mode" field if the given value is not nil.
func (_u *PlannedRunUpdateOne) SetNillableEngineMode(v *plannedrun.EngineMode) *PlannedRunUpdateOne {
	if v != nil {
		_u.SetEngineMode(*v)
	}
	return _u
}

// SetBenchmarkName sets the "benchmark_name" field.
func (_u *PlannedRunUpdateOne) SetBenchmarkName(v string) *PlannedRunUpdateOne {
	_u.mutation.SetBenchmarkName(v)
	return _u
}

// SetNillableBenchmarkName sets the "benchmark_name" field if the given value is not nil.
func (_u *PlannedRunUpdateOne) SetNillableBenchmarkName(v *string) *PlannedRunUpdateOne {
	if v != nil {
		_u.SetBenchmarkName(*v)
	}
	return _u
}

// SetSuiteName sets the "suite_name" field.
func (_u *PlannedRunUpdateOne) SetSuiteName(v string) *PlannedRunUpdateOne {
	_u.mutation.SetSuiteName(v)
	return _u
}

// SetNillableSuiteName sets the "suite_name" field if the given value is not nil.
func (_u *PlannedRunUpdateOne) SetNillableSuiteName(v *string) *PlannedRunUpdateOne {
	if v != nil {
		_u.SetSuiteName(*v)
	}
	return _u
}

// SetQuant sets the "quant" field.
func (_u *PlannedRunUpdateOne) SetQuant(v string) *PlannedRunUpdateOne {
	_u.mutation.SetQuant(v)
	return _u
}

// SetNillableQuant sets the "quant" field if the given value is not nil.
func (_u *PlannedRunUpdateOne) SetNillableQuant(v *string) *PlannedRunUpdateOne {
	if v != nil {
		_u.SetQuant(*v)
	}
	return _u
}

// SetEstimatedSizeGB sets the "estimated_size_gb" field.
func (_u *PlannedRunUpdateOne) SetEstimatedSizeGB(v float64) *PlannedRunUpdateOne {
	_u.mutation.ResetEstimatedSizeGB()
	_u.mutation.SetEstimatedSizeGB(v)
	return _u
}

// SetNillableEstimatedSizeGB sets the "estimated_size_gb" field if the given value is not nil.
func (_u *PlannedRunUpdateOne) SetNillableEstimatedSizeGB(v *float64) *PlannedRunUpdateOne {
	if v != nil {
		_u.SetEstimatedSizeGB(*v)
	}
	return _u
}

// AddEstimatedSizeGB adds value to the "estimated_size_gb" field.
func (_u *PlannedRunUpdateOne) AddEstimatedSizeGB(v float64) *PlannedRunUpdateOne {
	_u.mutation.AddEstimatedSizeGB(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PlannedRunUpdateOne) SetStatus(v plannedrun.Status) *PlannedRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PlannedRunUpdateOne) SetNillableStatus(v *plannedrun.Status) *PlannedRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCommandID sets the "command_id" field.
func (_u *PlannedRunUpdateOne) SetCommandID(v string) *PlannedRunUpdateOne {
	_u.mutation.SetCommandID(v)
	return _u
}

// SetNillableCommandID sets the "command_id" field if the given value is not nil.
func (_u *PlannedRunUpdateOne) SetNillableCommandID(v *string) *PlannedRunUpdateOne {
	if v != nil {
		_u.SetCommandID(*v)
	}
	return _u
}

// ClearCommandID clears the value of the "command_id" field.
func (_u *PlannedRunUpdateOne) ClearCommandID() *PlannedRunUpdateOne {
	_u.mutation.ClearCommandID()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *PlannedRunUpdateOne) SetErrorKind(v string) *PlannedRunUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *PlannedRunUpdateOne) SetNillableErrorKind(v *string) *PlannedRunUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *PlannedRunUpdateOne) ClearErrorKind() *PlannedRunUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PlannedRunUpdateOne) SetErrorMessage(v string) *PlannedRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PlannedRunUpdateOne) SetNillableErrorMessage(v *string) *PlannedRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PlannedRunUpdateOne) ClearErrorMessage() *PlannedRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPlanIndex sets the "plan_index" field.
func (_u *PlannedRunUpdateOne) SetPlanIndex(v int) *PlannedRunUpdateOne {
	_u.mutation.ResetPlanIndex()
	_u.mutation.SetPlanIndex(v)
	return _u
}

// SetNillablePlanIndex sets the "plan_index" field if the given value is not nil.
func (_u *PlannedRunUpdateOne) SetNillablePlanIndex(v *int) *PlannedRunUpdateOne {
	if v != nil {
		_u.SetPlanIndex(*v)
	}
	return _u
}

// AddPlanIndex adds value to the "plan_index" field.
func (_u *PlannedRunUpdateOne) AddPlanIndex(v int) *PlannedRunUpdateOne {
	_u.mutation.AddPlanIndex(v)
	return _u
}

// SetQueuedAt sets the "queued_at" field.
func (_u *PlannedRunUpdateOne) SetQueuedAt(v time.Time) *PlannedRunUpdateOne {
	_u.mutation.SetQueuedAt(v)
	return _u
}

// SetNillableQueuedAt sets the "queued_at" field if the given value is not nil.
func (_u *PlannedRunUpdateOne) SetNillableQueuedAt(v *time.Time) *PlannedRunUpdateOne {
	if v != nil {
		_u.SetQueuedAt(*v)
	}
	return _u
}

// ClearQueuedAt clears the value of the "queued_at" field.
func (_u *PlannedRunUpdateOne) ClearQueuedAt() *PlannedRunUpdateOne {
	_u.mutation.ClearQueuedAt()
	return _u
}

// SetDispatchedAt sets the "dispatched_at" field.
func (_u *PlannedRunUpdateOne) SetDispatchedAt(v time.Time) *PlannedRunUpdateOne {
	_u.mutation.SetDispatchedAt(v)
	return _u
}

// SetNillableDispatchedAt sets the "dispatched_at" field if the given value is not nil.
func (_u *PlannedRunUpdateOne) SetNillableDispatchedAt(v *time.Time) *PlannedRunUpdateOne {
	if v != nil {
		_u.SetDispatchedAt(*v)
	}
	return _u
}

// ClearDispatchedAt clears the value of the "dispatched_at" field.
func (_u *PlannedRunUpdateOne) ClearDispatchedAt() *PlannedRunUpdateOne {
	_u.mutation.ClearDispatchedAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PlannedRunUpdateOne) SetStartedAt(v time.Time) *PlannedRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PlannedRunUpdateOne) SetNillableStartedAt(v *time.Time) *PlannedRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PlannedRunUpdateOne) ClearStartedAt() *PlannedRunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PlannedRunUpdateOne) SetCompletedAt(v time.Time) *PlannedRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PlannedRunUpdateOne) SetNillableCompletedAt(v *time.Time) *PlannedRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PlannedRunUpdateOne) ClearCompletedAt() *PlannedRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastTransitionAt sets the "last_transition_at" field.
func (_u *PlannedRunUpdateOne) SetLastTransitionAt(v time.Time) *PlannedRunUpdateOne {
	_u.mutation.SetLastTransitionAt(v)
	return _u
}

// SetNillableLastTransitionAt sets the "last_transition_at" field if the given value is not nil.
func (_u *PlannedRunUpdateOne) SetNillableLastTransitionAt(v *time.Time) *PlannedRunUpdateOne {
	if v != nil {
		_u.SetLastTransitionAt(*v)
	}
	return _u
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_u *PlannedRunUpdateOne) SetCampaign(v *Campaign) *PlannedRunUpdateOne {
	return _u.SetCampaignID(v.ID)
}

// SetResultID sets the "result" edge to the RunResult entity by ID.
func (_u *PlannedRunUpdateOne) SetResultID(id string) *PlannedRunUpdateOne {
	_u.mutation.SetResultID(id)
	return _u
}

// SetNillableResultID sets the "result" edge to the RunResult entity by ID if the given value is not nil.
func (_u *PlannedRunUpdateOne) SetNillableResultID(id *string) *PlannedRunUpdateOne {
	if id != nil {
		_u = _u.SetResultID(*id)
	}
	return _u
}

// SetResult sets the "result" edge to the RunResult entity.
func (_u *PlannedRunUpdateOne) SetResult(v *RunResult) *PlannedRunUpdateOne {
	return _u.SetResultID(v.ID)
}

// Mutation returns the PlannedRunMutation object of the builder.
func (_u *PlannedRunUpdateOne) Mutation() *PlannedRunMutation {
	return _u.mutation
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (_u *PlannedRunUpdateOne) ClearCampaign() *PlannedRunUpdateOne {
	_u.mutation.ClearCampaign()
	return _u
}

// ClearResult clears the "result" edge to the RunResult entity.
func (_u *PlannedRunUpdateOne) ClearResult() *PlannedRunUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// Where appends a list predicates to the PlannedRunUpdate builder.
func (_u *PlannedRunUpdateOne) Where(ps ...predicate.PlannedRun) *PlannedRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlannedRunUpdateOne) Select(field string, fields ...string) *PlannedRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlannedRun entity.
func (_u *PlannedRunUpdateOne) Save(ctx context.Context) (*PlannedRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlannedRunUpdateOne) SaveX(ctx context.Context) *PlannedRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlannedRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlannedRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlannedRunUpdateOne) check() error {
	if v, ok := _u.mutation.EngineMode(); ok {
		if err := plannedrun.EngineModeValidator(v); err != nil {
			return &ValidationError{Name: "engine_mode", err: fmt.Errorf(`ent: validator failed for field "PlannedRun.engine_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := plannedrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PlannedRun.status": %w`, err)}
		}
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PlannedRun.campaign"`)
	}
	return nil
}

func (_u *PlannedRunUpdateOne) sqlSave(ctx context.Context) (_node *PlannedRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plannedrun.Table, plannedrun.Columns, sqlgraph.NewFieldSpec(plannedrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlannedRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, plannedrun.FieldID)
		for _, f := range fields {
			if !plannedrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != plannedrun.FieldID {
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
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(plannedrun.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelRef(); ok {
		_spec.SetField(plannedrun.FieldModelRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.EngineName(); ok {
		_spec.SetField(plannedrun.FieldEngineName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EngineMode(); ok {
		_spec.SetField(plannedrun.FieldEngineMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BenchmarkName(); ok {
		_spec.SetField(plannedrun.FieldBenchmarkName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SuiteName(); ok {
		_spec.SetField(plannedrun.FieldSuiteName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quant(); ok {
		_spec.SetField(plannedrun.FieldQuant, field.TypeString, value)
	}
	if value, ok := _u.mutation.EstimatedSizeGB(); ok {
		_spec.SetField(plannedrun.FieldEstimatedSizeGB, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedSizeGB(); ok {
		_spec.AddField(plannedrun.FieldEstimatedSizeGB, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(plannedrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CommandID(); ok {
		_spec.SetField(plannedrun.FieldCommandID, field.TypeString, value)
	}
	if _u.mutation.CommandIDCleared() {
		_spec.ClearField(plannedrun.FieldCommandID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(plannedrun.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(plannedrun.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(plannedrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(plannedrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PlanIndex(); ok {
		_spec.SetField(plannedrun.FieldPlanIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlanIndex(); ok {
		_spec.AddField(plannedrun.FieldPlanIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QueuedAt(); ok {
		_spec.SetField(plannedrun.FieldQueuedAt, field.TypeTime, value)
	}
	if _u.mutation.QueuedAtCleared() {
		_spec.ClearField(plannedrun.FieldQueuedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DispatchedAt(); ok {
		_spec.SetField(plannedrun.FieldDispatchedAt, field.TypeTime, value)
	}
	if _u.mutation.DispatchedAtCleared() {
		_spec.ClearField(plannedrun.FieldDispatchedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(plannedrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(plannedrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(plannedrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(plannedrun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastTransitionAt(); ok {
		_spec.SetField(plannedrun.FieldLastTransitionAt, field.TypeTime, value)
	}
	if _u.mutation.CampaignCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PlannedRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plannedrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
