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
)

// CampaignUpdate is the builder for updating Campaign entities.
type CampaignUpdate struct {
	config
	hooks    []Hook
	mutation *CampaignMutation
}

// Where appends a list predicates to the CampaignUpdate builder.
func (_u *CampaignUpdate) Where(ps ...predicate.Campaign) *CampaignUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *CampaignUpdate) SetName(v string) *CampaignUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableName(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CampaignUpdate) SetDescription(v string) *CampaignUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableDescription(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CampaignUpdate) ClearDescription() *CampaignUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetConfig sets the "config" field.
func (_u *CampaignUpdate) SetConfig(v map[string]interface{}) *CampaignUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *CampaignUpdate) SetAgentID(v string) *CampaignUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableAgentID(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CampaignUpdate) SetStatus(v campaign.Status) *CampaignUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableStatus(v *campaign.Status) *CampaignUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalRuns sets the "total_runs" field.
func (_u *CampaignUpdate) SetTotalRuns(v int) *CampaignUpdate {
	_u.mutation.ResetTotalRuns()
	_u.mutation.SetTotalRuns(v)
	return _u
}

// SetNillableTotalRuns sets the "total_runs" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableTotalRuns(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetTotalRuns(*v)
	}
	return _u
}

// AddTotalRuns adds value to the "total_runs" field.
func (_u *CampaignUpdate) AddTotalRuns(v int) *CampaignUpdate {
	_u.mutation.AddTotalRuns(v)
	return _u
}

// SetSucceeded sets the "succeeded" field.
func (_u *CampaignUpdate) SetSucceeded(v int) *CampaignUpdate {
	_u.mutation.ResetSucceeded()
	_u.mutation.SetSucceeded(v)
	return _u
}

// SetNillableSucceeded sets the "succeeded" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableSucceeded(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetSucceeded(*v)
	}
	return _u
}

// AddSucceeded adds value to the "succeeded" field.
func (_u *CampaignUpdate) AddSucceeded(v int) *CampaignUpdate {
	_u.mutation.AddSucceeded(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *CampaignUpdate) SetFailed(v int) *CampaignUpdate {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableFailed(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *CampaignUpdate) AddFailed(v int) *CampaignUpdate {
	_u.mutation.AddFailed(v)
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *CampaignUpdate) SetSkipped(v int) *CampaignUpdate {
	_u.mutation.ResetSkipped()
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableSkipped(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// AddSkipped adds value to the "skipped" field.
func (_u *CampaignUpdate) AddSkipped(v int) *CampaignUpdate {
	_u.mutation.AddSkipped(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CampaignUpdate) SetErrorMessage(v string) *CampaignUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableErrorMessage(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CampaignUpdate) ClearErrorMessage() *CampaignUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *CampaignUpdate) SetStartedAt(v time.Time) *CampaignUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableStartedAt(v *time.Time) *CampaignUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *CampaignUpdate) ClearStartedAt() *CampaignUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CampaignUpdate) SetCompletedAt(v time.Time) *CampaignUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableCompletedAt(v *time.Time) *CampaignUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CampaignUpdate) ClearCompletedAt() *CampaignUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddPlannedRunIDs adds the "planned_runs" edge to the PlannedRun entity by IDs.
func (_u *CampaignUpdate) AddPlannedRunIDs(ids ...string) *CampaignUpdate {
	_u.mutation.AddPlannedRunIDs(ids...)
	return _u
}

// AddPlannedRuns adds the "planned_runs" edges to the PlannedRun entity.
func (_u *CampaignUpdate) AddPlannedRuns(v ...*PlannedRun) *CampaignUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPlannedRunIDs(ids...)
}

// Mutation returns the CampaignMutation object of the builder.
func (_u *CampaignUpdate) Mutation() *CampaignMutation {
	return _u.mutation
}

// ClearPlannedRuns clears all "planned_runs" edges to the PlannedRun entity.
func (_u *CampaignUpdate) ClearPlannedRuns() *CampaignUpdate {
	_u.mutation.ClearPlannedRuns()
	return _u
}

// RemovePlannedRunIDs removes the "planned_runs" edge to PlannedRun entities by IDs.
func (_u *CampaignUpdate) RemovePlannedRunIDs(ids ...string) *CampaignUpdate {
	_u.mutation.RemovePlannedRunIDs(ids...)
	return _u
}

// RemovePlannedRuns removes "planned_runs" edges to PlannedRun entities.
func (_u *CampaignUpdate) RemovePlannedRuns(v ...*PlannedRun) *CampaignUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePlannedRunIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CampaignUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CampaignUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CampaignUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaign.Table, campaign.Columns, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(campaign.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(campaign.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(campaign.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(campaign.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(campaign.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalRuns(); ok {
		_spec.SetField(campaign.FieldTotalRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalRuns(); ok {
		_spec.AddField(campaign.FieldTotalRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Succeeded(); ok {
		_spec.SetField(campaign.FieldSucceeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSucceeded(); ok {
		_spec.AddField(campaign.FieldSucceeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(campaign.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(campaign.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(campaign.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkipped(); ok {
		_spec.AddField(campaign.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(campaign.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(campaign.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(campaign.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(campaign.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(campaign.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(campaign.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.PlannedRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.PlannedRunsTable,
			Columns: []string{campaign.PlannedRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plannedrun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPlannedRunsIDs(); len(nodes) > 0 && !_u.mutation.PlannedRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.PlannedRunsTable,
			Columns: []string{campaign.PlannedRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plannedrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlannedRunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.PlannedRunsTable,
			Columns: []string{campaign.PlannedRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plannedrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaign.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CampaignUpdateOne is the builder for updating a single Campaign entity.
type CampaignUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CampaignMutation
}

// SetName sets the "name" field.
func (_u *CampaignUpdateOne) SetName(v string) *CampaignUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableName(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CampaignUpdateOne) SetDescription(v string) *CampaignUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableDescription(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CampaignUpdateOne) ClearDescription() *CampaignUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetConfig sets the "config" field.
func (_u *CampaignUpdateOne) SetConfig(v map[string]interface{}) *CampaignUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *CampaignUpdateOne) SetAgentID(v string) *CampaignUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableAgentID(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CampaignUpdateOne) SetStatus(v campaign.Status) *CampaignUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableStatus(v *campaign.Status) *CampaignUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalRuns sets the "total_runs" field.
func (_u *CampaignUpdateOne) SetTotalRuns(v int) *CampaignUpdateOne {
	_u.mutation.ResetTotalRuns()
	_u.mutation.SetTotalRuns(v)
	return _u
}

// SetNillableTotalRuns sets the "total_runs" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableTotalRuns(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetTotalRuns(*v)
	}
	return _u
}

// AddTotalRuns adds value to the "total_runs" field.
func (_u *CampaignUpdateOne) AddTotalRuns(v int) *CampaignUpdateOne {
	_u.mutation.AddTotalRuns(v)
	return _u
}

// SetSucceeded sets the "succeeded" field.
func (_u *CampaignUpdateOne) SetSucceeded(v int) *CampaignUpdateOne {
	_u.mutation.ResetSucceeded()
	_u.mutation.SetSucceeded(v)
	return _u
}

// SetNillableSucceeded sets the "succeeded" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableSucceeded(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetSucceeded(*v)
	}
	return _u
}

// AddSucceeded adds value to the "succeeded" field.
func (_u *CampaignUpdateOne) AddSucceeded(v int) *CampaignUpdateOne {
	_u.mutation.AddSucceeded(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *CampaignUpdateOne) SetFailed(v int) *CampaignUpdateOne {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableFailed(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *CampaignUpdateOne) AddFailed(v int) *CampaignUpdateOne {
	_u.mutation.AddFailed(v)
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *CampaignUpdateOne) SetSkipped(v int) *CampaignUpdateOne {
	_u.mutation.ResetSkipped()
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableSkipped(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// AddSkipped adds value to the "skipped" field.
func (_u *CampaignUpdateOne) AddSkipped(v int) *CampaignUpdateOne {
	_u.mutation.AddSkipped(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CampaignUpdateOne) SetErrorMessage(v string) *CampaignUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableErrorMessage(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CampaignUpdateOne) ClearErrorMessage() *CampaignUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *CampaignUpdateOne) SetStartedAt(v time.Time) *CampaignUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableStartedAt(v *time.Time) *CampaignUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *CampaignUpdateOne) ClearStartedAt() *CampaignUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CampaignUpdateOne) SetCompletedAt(v time.Time) *CampaignUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableCompletedAt(v *time.Time) *CampaignUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CampaignUpdateOne) ClearCompletedAt() *CampaignUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddPlannedRunIDs adds the "planned_runs" edge to the PlannedRun entity by IDs.
func (_u *CampaignUpdateOne) AddPlannedRunIDs(ids ...string) *CampaignUpdateOne {
	_u.mutation.AddPlannedRunIDs(ids...)
	return _u
}

// AddPlannedRuns adds the "planned_runs" edges to the PlannedRun entity.
func (_u *CampaignUpdateOne) AddPlannedRuns(v ...*PlannedRun) *CampaignUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPlannedRunIDs(ids...)
}

// Mutation returns the CampaignMutation object of the builder.
func (_u *CampaignUpdateOne) Mutation() *CampaignMutation {
	return _u.mutation
}

// ClearPlannedRuns clears all "planned_runs" edges to the PlannedRun entity.
func (_u *CampaignUpdateOne) ClearPlannedRuns() *CampaignUpdateOne {
	_u.mutation.ClearPlannedRuns()
	return _u
}

// RemovePlannedRunIDs removes the "planned_runs" edge to PlannedRun entities by IDs.
func (_u *CampaignUpdateOne) RemovePlannedRunIDs(ids ...string) *CampaignUpdateOne {
	_u.mutation.RemovePlannedRunIDs(ids...)
	return _u
}

// RemovePlannedRuns removes "planned_runs" edges to PlannedRun entities.
func (_u *CampaignUpdateOne) RemovePlannedRuns(v ...*PlannedRun) *CampaignUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePlannedRunIDs(ids...)
}

// Where appends a list predicates to the CampaignUpdate builder.
func (_u *CampaignUpdateOne) Where(ps ...predicate.Campaign) *CampaignUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CampaignUpdateOne) Select(field string, fields ...string) *CampaignUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Campaign entity.
func (_u *CampaignUpdateOne) Save(ctx context.Context) (*Campaign, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignUpdateOne) SaveX(ctx context.Context) *Campaign {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CampaignUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CampaignUpdateOne) sqlSave(ctx context.Context) (_node *Campaign, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaign.Table, campaign.Columns, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Campaign.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, campaign.FieldID)
		for _, f := range fields {
			if !campaign.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != campaign.FieldID {
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
		_spec.SetField(campaign.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(campaign.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(campaign.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(campaign.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(campaign.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalRuns(); ok {
		_spec.SetField(campaign.FieldTotalRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalRuns(); ok {
		_spec.AddField(campaign.FieldTotalRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Succeeded(); ok {
		_spec.SetField(campaign.FieldSucceeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSucceeded(); ok {
		_spec.AddField(campaign.FieldSucceeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(campaign.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(campaign.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(campaign.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkipped(); ok {
		_spec.AddField(campaign.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(campaign.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(campaign.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(campaign.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(campaign.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(campaign.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(campaign.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.PlannedRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.PlannedRunsTable,
			Columns: []string{campaign.PlannedRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plannedrun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPlannedRunsIDs(); len(nodes) > 0 && !_u.mutation.PlannedRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.PlannedRunsTable,
			Columns: []string{campaign.PlannedRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plannedrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlannedRunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.PlannedRunsTable,
			Columns: []string{campaign.PlannedRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plannedrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Campaign{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaign.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
