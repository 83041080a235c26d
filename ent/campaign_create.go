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
)

// CampaignCreate is the builder for creating a Campaign entity.
type CampaignCreate struct {
	config
	mutation *CampaignMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *CampaignCreate) SetName(v string) *CampaignCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CampaignCreate) SetDescription(v string) *CampaignCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableDescription(v *string) *CampaignCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetConfig sets the "config" field.
func (_c *CampaignCreate) SetConfig(v map[string]interface{}) *CampaignCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *CampaignCreate) SetAgentID(v string) *CampaignCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CampaignCreate) SetStatus(v campaign.Status) *CampaignCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableStatus(v *campaign.Status) *CampaignCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTotalRuns sets the "total_runs" field.
func (_c *CampaignCreate) SetTotalRuns(v int) *CampaignCreate {
	_c.mutation.SetTotalRuns(v)
	return _c
}

// SetNillableTotalRuns sets the "total_runs" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableTotalRuns(v *int) *CampaignCreate {
	if v != nil {
		_c.SetTotalRuns(*v)
	}
	return _c
}

// SetSucceeded sets the "succeeded" field.
func (_c *CampaignCreate) SetSucceeded(v int) *CampaignCreate {
	_c.mutation.SetSucceeded(v)
	return _c
}

// SetNillableSucceeded sets the "succeeded" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableSucceeded(v *int) *CampaignCreate {
	if v != nil {
		_c.SetSucceeded(*v)
	}
	return _c
}

// SetFailed sets the "failed" field.
func (_c *CampaignCreate) SetFailed(v int) *CampaignCreate {
	_c.mutation.SetFailed(v)
	return _c
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableFailed(v *int) *CampaignCreate {
	if v != nil {
		_c.SetFailed(*v)
	}
	return _c
}

// SetSkipped sets the "skipped" field.
func (_c *CampaignCreate) SetSkipped(v int) *CampaignCreate {
	_c.mutation.SetSkipped(v)
	return _c
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableSkipped(v *int) *CampaignCreate {
	if v != nil {
		_c.SetSkipped(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *CampaignCreate) SetErrorMessage(v string) *CampaignCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableErrorMessage(v *string) *CampaignCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CampaignCreate) SetCreatedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableCreatedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *CampaignCreate) SetStartedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableStartedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *CampaignCreate) SetCompletedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableCompletedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CampaignCreate) SetID(v string) *CampaignCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddPlannedRunIDs adds the "planned_runs" edge to the PlannedRun entity by IDs.
func (_c *CampaignCreate) AddPlannedRunIDs(ids ...string) *CampaignCreate {
	_c.mutation.AddPlannedRunIDs(ids...)
	return _c
}

// AddPlannedRuns adds the "planned_runs" edges to the PlannedRun entity.
func (_c *CampaignCreate) AddPlannedRuns(v ...*PlannedRun) *CampaignCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPlannedRunIDs(ids...)
}

// Mutation returns the CampaignMutation object of the builder.
func (_c *CampaignCreate) Mutation() *CampaignMutation {
	return _c.mutation
}

// Save creates the Campaign in the database.
func (_c *CampaignCreate) Save(ctx context.Context) (*Campaign, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CampaignCreate) SaveX(ctx context.Context) *Campaign {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CampaignCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := campaign.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalRuns(); !ok {
		v := campaign.DefaultTotalRuns
		_c.mutation.SetTotalRuns(v)
	}
	if _, ok := _c.mutation.Succeeded(); !ok {
		v := campaign.DefaultSucceeded
		_c.mutation.SetSucceeded(v)
	}
	if _, ok := _c.mutation.Failed(); !ok {
		v := campaign.DefaultFailed
		_c.mutation.SetFailed(v)
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		v := campaign.DefaultSkipped
		_c.mutation.SetSkipped(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := campaign.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CampaignCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Campaign.name"`)}
	}
	if _, ok := _c.mutation.Config(); !ok {
		return &ValidationError{Name: "config", err: errors.New(`ent: missing required field "Campaign.config"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "Campaign.agent_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Campaign.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalRuns(); !ok {
		return &ValidationError{Name: "total_runs", err: errors.New(`ent: missing required field "Campaign.total_runs"`)}
	}
	if _, ok := _c.mutation.Succeeded(); !ok {
		return &ValidationError{Name: "succeeded", err: errors.New(`ent: missing required field "Campaign.succeeded"`)}
	}
	if _, ok := _c.mutation.Failed(); !ok {
		return &ValidationError{Name: "failed", err: errors.New(`ent: missing required field "Campaign.failed"`)}
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		return &ValidationError{Name: "skipped", err: errors.New(`ent: missing required field "Campaign.skipped"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Campaign.created_at"`)}
	}
	return nil
}

func (_c *CampaignCreate) sqlSave(ctx context.Context) (*Campaign, error) {
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
			return nil, fmt.Errorf("unexpected Campaign.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CampaignCreate) createSpec() (*Campaign, *sqlgraph.CreateSpec) {
	var (
		_node = &Campaign{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(campaign.Table, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(campaign.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(campaign.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(campaign.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(campaign.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TotalRuns(); ok {
		_spec.SetField(campaign.FieldTotalRuns, field.TypeInt, value)
		_node.TotalRuns = value
	}
	if value, ok := _c.mutation.Succeeded(); ok {
		_spec.SetField(campaign.FieldSucceeded, field.TypeInt, value)
		_node.Succeeded = value
	}
	if value, ok := _c.mutation.Failed(); ok {
		_spec.SetField(campaign.FieldFailed, field.TypeInt, value)
		_node.Failed = value
	}
	if value, ok := _c.mutation.Skipped(); ok {
		_spec.SetField(campaign.FieldSkipped, field.TypeInt, value)
		_node.Skipped = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(campaign.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(campaign.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(campaign.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(campaign.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.PlannedRunsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Campaign.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CampaignUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *CampaignCreate) OnConflict(opts ...sql.ConflictOption) *CampaignUpsertOne {
	_c.conflict = opts
	return &CampaignUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Campaign.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CampaignCreate) OnConflictColumns(columns ...string) *CampaignUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CampaignUpsertOne{
		create: _c,
	}
}

type (
	// CampaignUpsertOne is the builder for "upsert"-ing
	//  one Campaign node.
	CampaignUpsertOne struct {
		create *CampaignCreate
	}

	// CampaignUpsert is the "OnConflict" setter.
	CampaignUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *CampaignUpsert) SetName(v string) *CampaignUpsert {
	u.Set(campaign.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateName() *CampaignUpsert {
	u.SetExcluded(campaign.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *CampaignUpsert) SetDescription(v string) *CampaignUpsert {
	u.Set(campaign.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateDescription() *CampaignUpsert {
	u.SetExcluded(campaign.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *CampaignUpsert) ClearDescription() *CampaignUpsert {
	u.SetNull(campaign.FieldDescription)
	return u
}

// SetConfig sets the "config" field.
func (u *CampaignUpsert) SetConfig(v map[string]interface{}) *CampaignUpsert {
	u.Set(campaign.FieldConfig, v)
	return u
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateConfig() *CampaignUpsert {
	u.SetExcluded(campaign.FieldConfig)
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *CampaignUpsert) SetAgentID(v string) *CampaignUpsert {
	u.Set(campaign.FieldAgentID, v)
	return u
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateAgentID() *CampaignUpsert {
	u.SetExcluded(campaign.FieldAgentID)
	return u
}

// SetStatus sets the "status" field.
func (u *CampaignUpsert) SetStatus(v campaign.Status) *CampaignUpsert {
	u.Set(campaign.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateStatus() *CampaignUpsert {
	u.SetExcluded(campaign.FieldStatus)
	return u
}

// SetTotalRuns sets the "total_runs" field.
func (u *CampaignUpsert) SetTotalRuns(v int) *CampaignUpsert {
	u.Set(campaign.FieldTotalRuns, v)
	return u
}

// UpdateTotalRuns sets the "total_runs" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateTotalRuns() *CampaignUpsert {
	u.SetExcluded(campaign.FieldTotalRuns)
	return u
}

// AddTotalRuns adds v to the "total_runs" field.
func (u *CampaignUpsert) AddTotalRuns(v int) *CampaignUpsert {
	u.Add(campaign.FieldTotalRuns, v)
	return u
}

// SetSucceeded sets the "succeeded" field.
func (u *CampaignUpsert) SetSucceeded(v int) *CampaignUpsert {
	u.Set(campaign.FieldSucceeded, v)
	return u
}

// UpdateSucceeded sets the "succeeded" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateSucceeded() *CampaignUpsert {
	u.SetExcluded(campaign.FieldSucceeded)
	return u
}

// AddSucceeded adds v to the "succeeded" field.
func (u *CampaignUpsert) AddSucceeded(v int) *CampaignUpsert {
	u.Add(campaign.FieldSucceeded, v)
	return u
}

// SetFailed sets the "failed" field.
func (u *CampaignUpsert) SetFailed(v int) *CampaignUpsert {
	u.Set(campaign.FieldFailed, v)
	return u
}

// UpdateFailed sets the "failed" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateFailed() *CampaignUpsert {
	u.SetExcluded(campaign.FieldFailed)
	return u
}

// AddFailed adds v to the "failed" field.
func (u *CampaignUpsert) AddFailed(v int) *CampaignUpsert {
	u.Add(campaign.FieldFailed, v)
	return u
}

// SetSkipped sets the "skipped" field.
func (u *CampaignUpsert) SetSkipped(v int) *CampaignUpsert {
	u.Set(campaign.FieldSkipped, v)
	return u
}

// UpdateSkipped sets the "skipped" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateSkipped() *CampaignUpsert {
	u.SetExcluded(campaign.FieldSkipped)
	return u
}

// AddSkipped adds v to the "skipped" field.
func (u *CampaignUpsert) AddSkipped(v int) *CampaignUpsert {
	u.Add(campaign.FieldSkipped, v)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *CampaignUpsert) SetErrorMessage(v string) *CampaignUpsert {
	u.Set(campaign.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateErrorMessage() *CampaignUpsert {
	u.SetExcluded(campaign.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *CampaignUpsert) ClearErrorMessage() *CampaignUpsert {
	u.SetNull(campaign.FieldErrorMessage)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *CampaignUpsert) SetStartedAt(v time.Time) *CampaignUpsert {
	u.Set(campaign.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateStartedAt() *CampaignUpsert {
	u.SetExcluded(campaign.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *CampaignUpsert) ClearStartedAt() *CampaignUpsert {
	u.SetNull(campaign.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *CampaignUpsert) SetCompletedAt(v time.Time) *CampaignUpsert {
	u.Set(campaign.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateCompletedAt() *CampaignUpsert {
	u.SetExcluded(campaign.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CampaignUpsert) ClearCompletedAt() *CampaignUpsert {
	u.SetNull(campaign.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Campaign.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(campaign.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CampaignUpsertOne) UpdateNewValues() *CampaignUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(campaign.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(campaign.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Campaign.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CampaignUpsertOne) Ignore() *CampaignUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CampaignUpsertOne) DoNothing() *CampaignUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CampaignCreate.OnConflict
// documentation for more info.
func (u *CampaignUpsertOne) Update(set func(*CampaignUpsert)) *CampaignUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CampaignUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *CampaignUpsertOne) SetName(v string) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateName() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *CampaignUpsertOne) SetDescription(v string) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateDescription() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *CampaignUpsertOne) ClearDescription() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearDescription()
	})
}

// SetConfig sets the "config" field.
func (u *CampaignUpsertOne) SetConfig(v map[string]interface{}) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateConfig() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateConfig()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *CampaignUpsertOne) SetAgentID(v string) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateAgentID() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateAgentID()
	})
}

// SetStatus sets the "status" field.
func (u *CampaignUpsertOne) SetStatus(v campaign.Status) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateStatus() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateStatus()
	})
}

// SetTotalRuns sets the "total_runs" field.
func (u *CampaignUpsertOne) SetTotalRuns(v int) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetTotalRuns(v)
	})
}

// AddTotalRuns adds v to the "total_runs" field.
func (u *CampaignUpsertOne) AddTotalRuns(v int) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.AddTotalRuns(v)
	})
}

// UpdateTotalRuns sets the "total_runs" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateTotalRuns() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateTotalRuns()
	})
}

// SetSucceeded sets the "succeeded" field.
func (u *CampaignUpsertOne) SetSucceeded(v int) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetSucceeded(v)
	})
}

// AddSucceeded adds v to the "succeeded" field.
func (u *CampaignUpsertOne) AddSucceeded(v int) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.AddSucceeded(v)
	})
}

// UpdateSucceeded sets the "succeeded" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateSucceeded() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateSucceeded()
	})
}

// SetFailed sets the "failed" field.
func (u *CampaignUpsertOne) SetFailed(v int) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetFailed(v)
	})
}

// AddFailed adds v to the "failed" field.
func (u *CampaignUpsertOne) AddFailed(v int) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.AddFailed(v)
	})
}

// UpdateFailed sets the "failed" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateFailed() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateFailed()
	})
}

// SetSkipped sets the "skipped" field.
func (u *CampaignUpsertOne) SetSkipped(v int) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetSkipped(v)
	})
}

// AddSkipped adds v to the "skipped" field.
func (u *CampaignUpsertOne) AddSkipped(v int) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.AddSkipped(v)
	})
}

// UpdateSkipped sets the "skipped" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateSkipped() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateSkipped()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *CampaignUpsertOne) SetErrorMessage(v string) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateErrorMessage() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *CampaignUpsertOne) ClearErrorMessage() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *CampaignUpsertOne) SetStartedAt(v time.Time) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateStartedAt() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *CampaignUpsertOne) ClearStartedAt() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *CampaignUpsertOne) SetCompletedAt(v time.Time) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateCompletedAt() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CampaignUpsertOne) ClearCompletedAt() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *CampaignUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CampaignCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CampaignUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CampaignUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CampaignUpsertOne.ID is not supported by MySQL driver. Use CampaignUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CampaignUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CampaignCreateBulk is the builder for creating many Campaign entities in bulk.
type CampaignCreateBulk struct {
	config
	err      error
	builders []*CampaignCreate
	conflict []sql.ConflictOption
}

// Save creates the Campaign entities in the database.
func (_c *CampaignCreateBulk) Save(ctx context.Context) ([]*Campaign, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Campaign, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CampaignMutation)
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
func (_c *CampaignCreateBulk) SaveX(ctx context.Context) []*Campaign {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Campaign.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CampaignUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *CampaignCreateBulk) OnConflict(opts ...sql.ConflictOption) *CampaignUpsertBulk {
	_c.conflict = opts
	return &CampaignUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Campaign.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CampaignCreateBulk) OnConflictColumns(columns ...string) *CampaignUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CampaignUpsertBulk{
		create: _c,
	}
}

// CampaignUpsertBulk is the builder for "upsert"-ing
// a bulk of Campaign nodes.
type CampaignUpsertBulk struct {
	create *CampaignCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Campaign.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(campaign.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CampaignUpsertBulk) UpdateNewValues() *CampaignUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(campaign.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(campaign.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Campaign.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CampaignUpsertBulk) Ignore() *CampaignUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CampaignUpsertBulk) DoNothing() *CampaignUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CampaignCreateBulk.OnConflict
// documentation for more info.
func (u *CampaignUpsertBulk) Update(set func(*CampaignUpsert)) *CampaignUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CampaignUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *CampaignUpsertBulk) SetName(v string) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateName() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *CampaignUpsertBulk) SetDescription(v string) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateDescription() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *CampaignUpsertBulk) ClearDescription() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearDescription()
	})
}

// SetConfig sets the "config" field.
func (u *CampaignUpsertBulk) SetConfig(v map[string]interface{}) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateConfig() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateConfig()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *CampaignUpsertBulk) SetAgentID(v string) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateAgentID() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateAgentID()
	})
}

// SetStatus sets the "status" field.
func (u *CampaignUpsertBulk) SetStatus(v campaign.Status) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateStatus() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateStatus()
	})
}

// SetTotalRuns sets the "total_runs" field.
func (u *CampaignUpsertBulk) SetTotalRuns(v int) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetTotalRuns(v)
	})
}

// AddTotalRuns adds v to the "total_runs" field.
func (u *CampaignUpsertBulk) AddTotalRuns(v int) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.AddTotalRuns(v)
	})
}

// UpdateTotalRuns sets the "total_runs" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateTotalRuns() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateTotalRuns()
	})
}

// SetSucceeded sets the "succeeded" field.
func (u *CampaignUpsertBulk) SetSucceeded(v int) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetSucceeded(v)
	})
}

// AddSucceeded adds v to the "succeeded" field.
func (u *CampaignUpsertBulk) AddSucceeded(v int) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.AddSucceeded(v)
	})
}

// UpdateSucceeded sets the "succeeded" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateSucceeded() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateSucceeded()
	})
}

// SetFailed sets the "failed" field.
func (u *CampaignUpsertBulk) SetFailed(v int) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetFailed(v)
	})
}

// AddFailed adds v to the "failed" field.
func (u *CampaignUpsertBulk) AddFailed(v int) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.AddFailed(v)
	})
}

// UpdateFailed sets the "failed" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateFailed() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateFailed()
	})
}

// SetSkipped sets the "skipped" field.
func (u *CampaignUpsertBulk) SetSkipped(v int) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetSkipped(v)
	})
}

// AddSkipped adds v to the "skipped" field.
func (u *CampaignUpsertBulk) AddSkipped(v int) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.AddSkipped(v)
	})
}

// UpdateSkipped sets the "skipped" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateSkipped() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateSkipped()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *CampaignUpsertBulk) SetErrorMessage(v string) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateErrorMessage() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *CampaignUpsertBulk) ClearErrorMessage() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *CampaignUpsertBulk) SetStartedAt(v time.Time) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateStartedAt() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *CampaignUpsertBulk) ClearStartedAt() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *CampaignUpsertBulk) SetCompletedAt(v time.Time) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateCompletedAt() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CampaignUpsertBulk) ClearCompletedAt() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *CampaignUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CampaignCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CampaignCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CampaignUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
