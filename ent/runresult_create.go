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
	"github.com/Kirizan/kitt-sub000/ent/plannedrun"
	"github.com/Kirizan/kitt-sub000/ent/runresult"
)

// RunResultCreate is the builder for creating a RunResult entity.
type RunResultCreate struct {
	config
	mutation *RunResultMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRunID sets the "run_id" field.
func (_c *RunResultCreate) SetRunID(v string) *RunResultCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetCommandID sets the "command_id" field.
func (_c *RunResultCreate) SetCommandID(v string) *RunResultCreate {
	_c.mutation.SetCommandID(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *RunResultCreate) SetPassed(v bool) *RunResultCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_c *RunResultCreate) SetNillablePassed(v *bool) *RunResultCreate {
	if v != nil {
		_c.SetPassed(*v)
	}
	return _c
}

// SetMetrics sets the "metrics" field.
func (_c *RunResultCreate) SetMetrics(v map[string]interface{}) *RunResultCreate {
	_c.mutation.SetMetrics(v)
	return _c
}

// SetOutputLocation sets the "output_location" field.
func (_c *RunResultCreate) SetOutputLocation(v string) *RunResultCreate {
	_c.mutation.SetOutputLocation(v)
	return _c
}

// SetNillableOutputLocation sets the "output_location" field if the given value is not nil.
func (_c *RunResultCreate) SetNillableOutputLocation(v *string) *RunResultCreate {
	if v != nil {
		_c.SetOutputLocation(*v)
	}
	return _c
}

// SetHardwareSnapshot sets the "hardware_snapshot" field.
func (_c *RunResultCreate) SetHardwareSnapshot(v map[string]interface{}) *RunResultCreate {
	_c.mutation.SetHardwareSnapshot(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunResultCreate) SetCreatedAt(v time.Time) *RunResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunResultCreate) SetNillableCreatedAt(v *time.Time) *RunResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunResultCreate) SetID(v string) *RunResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the PlannedRun entity.
func (_c *RunResultCreate) SetRun(v *PlannedRun) *RunResultCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the RunResultMutation object of the builder.
func (_c *RunResultCreate) Mutation() *RunResultMutation {
	return _c.mutation
}

// Save creates the RunResult in the database.
func (_c *RunResultCreate) Save(ctx context.Context) (*RunResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunResultCreate) SaveX(ctx context.Context) *RunResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunResultCreate) defaults() {
	if _, ok := _c.mutation.Passed(); !ok {
		v := runresult.DefaultPassed
		_c.mutation.SetPassed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := runresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunResultCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "RunResult.run_id"`)}
	}
	if _, ok := _c.mutation.CommandID(); !ok {
		return &ValidationError{Name: "command_id", err: errors.New(`ent: missing required field "RunResult.command_id"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "RunResult.passed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RunResult.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "RunResult.run"`)}
	}
	return nil
}

func (_c *RunResultCreate) sqlSave(ctx context.Context) (*RunResult, error) {
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
			return nil, fmt.Errorf("unexpected RunResult.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunResultCreate) createSpec() (*RunResult, *sqlgraph.CreateSpec) {
	var (
		_node = &RunResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runresult.Table, sqlgraph.NewFieldSpec(runresult.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CommandID(); ok {
		_spec.SetField(runresult.FieldCommandID, field.TypeString, value)
		_node.CommandID = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(runresult.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.Metrics(); ok {
		_spec.SetField(runresult.FieldMetrics, field.TypeJSON, value)
		_node.Metrics = value
	}
	if value, ok := _c.mutation.OutputLocation(); ok {
		_spec.SetField(runresult.FieldOutputLocation, field.TypeString, value)
		_node.OutputLocation = value
	}
	if value, ok := _c.mutation.HardwareSnapshot(); ok {
		_spec.SetField(runresult.FieldHardwareSnapshot, field.TypeJSON, value)
		_node.HardwareSnapshot = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(runresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   runresult.RunTable,
			Columns: []string{runresult.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plannedrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RunResult.Create().
//		SetRunID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunResultUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *RunResultCreate) OnConflict(opts ...sql.ConflictOption) *RunResultUpsertOne {
	_c.conflict = opts
	return &RunResultUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RunResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunResultCreate) OnConflictColumns(columns ...string) *RunResultUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunResultUpsertOne{
		create: _c,
	}
}

type (
	// RunResultUpsertOne is the builder for "upsert"-ing
	//  one RunResult node.
	RunResultUpsertOne struct {
		create *RunResultCreate
	}

	// RunResultUpsert is the "OnConflict" setter.
	RunResultUpsert struct {
		*sql.UpdateSet
	}
)

// SetRunID sets the "run_id" field.
func (u *RunResultUpsert) SetRunID(v string) *RunResultUpsert {
	u.Set(runresult.FieldRunID, v)
	return u
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *RunResultUpsert) UpdateRunID() *RunResultUpsert {
	u.SetExcluded(runresult.FieldRunID)
	return u
}

// SetCommandID sets the "command_id" field.
func (u *RunResultUpsert) SetCommandID(v string) *RunResultUpsert {
	u.Set(runresult.FieldCommandID, v)
	return u
}

// UpdateCommandID sets the "command_id" field to the value that was provided on create.
func (u *RunResultUpsert) UpdateCommandID() *RunResultUpsert {
	u.SetExcluded(runresult.FieldCommandID)
	return u
}

// SetPassed sets the "passed" field.
func (u *RunResultUpsert) SetPassed(v bool) *RunResultUpsert {
	u.Set(runresult.FieldPassed, v)
	return u
}

// UpdatePassed sets the "passed" field to the value that was provided on create.
func (u *RunResultUpsert) UpdatePassed() *RunResultUpsert {
	u.SetExcluded(runresult.FieldPassed)
	return u
}

// SetMetrics sets the "metrics" field.
func (u *RunResultUpsert) SetMetrics(v map[string]interface{}) *RunResultUpsert {
	u.Set(runresult.FieldMetrics, v)
	return u
}

// UpdateMetrics sets the "metrics" field to the value that was provided on create.
func (u *RunResultUpsert) UpdateMetrics() *RunResultUpsert {
	u.SetExcluded(runresult.FieldMetrics)
	return u
}

// ClearMetrics clears the value of the "metrics" field.
func (u *RunResultUpsert) ClearMetrics() *RunResultUpsert {
	u.SetNull(runresult.FieldMetrics)
	return u
}

// SetOutputLocation sets the "output_location" field.
func (u *RunResultUpsert) SetOutputLocation(v string) *RunResultUpsert {
	u.Set(runresult.FieldOutputLocation, v)
	return u
}

// UpdateOutputLocation sets the "output_location" field to the value that was provided on create.
func (u *RunResultUpsert) UpdateOutputLocation() *RunResultUpsert {
	u.SetExcluded(runresult.FieldOutputLocation)
	return u
}

// ClearOutputLocation clears the value of the "output_location" field.
func (u *RunResultUpsert) ClearOutputLocation() *RunResultUpsert {
	u.SetNull(runresult.FieldOutputLocation)
	return u
}

// SetHardwareSnapshot sets the "hardware_snapshot" field.
func (u *RunResultUpsert) SetHardwareSnapshot(v map[string]interface{}) *RunResultUpsert {
	u.Set(runresult.FieldHardwareSnapshot, v)
	return u
}

// UpdateHardwareSnapshot sets the "hardware_snapshot" field to the value that was provided on create.
func (u *RunResultUpsert) UpdateHardwareSnapshot() *RunResultUpsert {
	u.SetExcluded(runresult.FieldHardwareSnapshot)
	return u
}

// ClearHardwareSnapshot clears the value of the "hardware_snapshot" field.
func (u *RunResultUpsert) ClearHardwareSnapshot() *RunResultUpsert {
	u.SetNull(runresult.FieldHardwareSnapshot)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RunResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(runresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RunResultUpsertOne) UpdateNewValues() *RunResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(runresult.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(runresult.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RunResult.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RunResultUpsertOne) Ignore() *RunResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunResultUpsertOne) DoNothing() *RunResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunResultCreate.OnConflict
// documentation for more info.
func (u *RunResultUpsertOne) Update(set func(*RunResultUpsert)) *RunResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetRunID sets the "run_id" field.
func (u *RunResultUpsertOne) SetRunID(v string) *RunResultUpsertOne {
	return u.Update(func(s *RunResultUpsert) {
		s.SetRunID(v)
	})
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *RunResultUpsertOne) UpdateRunID() *RunResultUpsertOne {
	return u.Update(func(s *RunResultUpsert) {
		s.UpdateRunID()
	})
}

// SetCommandID sets the "command_id" field.
func (u *RunResultUpsertOne) SetCommandID(v string) *RunResultUpsertOne {
	return u.Update(func(s *RunResultUpsert) {
		s.SetCommandID(v)
	})
}

// UpdateCommandID sets the "command_id" field to the value that was provided on create.
func (u *RunResultUpsertOne) UpdateCommandID() *RunResultUpsertOne {
	return u.Update(func(s *RunResultUpsert) {
		s.UpdateCommandID()
	})
}

// SetPassed sets the "passed" field.
func (u *RunResultUpsertOne) SetPassed(v bool) *RunResultUpsertOne {
	return u.Update(func(s *RunResultUpsert) {
		s.SetPassed(v)
	})
}

// UpdatePassed sets the "passed" field to the value that was provided on create.
func (u *RunResultUpsertOne) UpdatePassed() *RunResultUpsertOne {
	return u.Update(func(s *RunResultUpsert) {
		s.UpdatePassed()
	})
}

// SetMetrics sets the "metrics" field.
func (u *RunResultUpsertOne) SetMetrics(v map[string]interface{}) *RunResultUpsertOne {
	return u.Update(func(s *RunResultUpsert) {
		s.SetMetrics(v)
	})
}

// UpdateMetrics sets the "metrics" field to the value that was provided on create.
func (u *RunResultUpsertOne) UpdateMetrics() *RunResultUpsertOne {
	return u.Update(func(s *RunResultUpsert) {
		s.UpdateMetrics()
	})
}

// ClearMetrics clears the value of the "metrics" field.
func (u *RunResultUpsertOne) ClearMetrics() *RunResultUpsertOne {
	return u.Update(func(s *RunResultUpsert) {
		s.ClearMetrics()
	})
}

// SetOutputLocation sets the "output_location" field.
func (u *RunResultUpsertOne) SetOutputLocation(v string) *RunResultUpsertOne {
	return u.Update(func(s *RunResultUpsert) {
		s.SetOutputLocation(v)
	})
}

// UpdateOutputLocation sets the "output_location" field to the value that was provided on create.
func (u *RunResultUpsertOne) UpdateOutputLocation() *RunResultUpsertOne {
	return u.Update(func(s *RunResultUpsert) {
		s.UpdateOutputLocation()
	})
}

// ClearOutputLocation clears the value of the "output_location" field.
func (u *RunResultUpsertOne) ClearOutputLocation() *RunResultUpsertOne {
	return u.Update(func(s *RunResultUpsert) {
		s.ClearOutputLocation()
	})
}

// SetHardwareSnapshot sets the "hardware_snapshot" field.
func (u *RunResultUpsertOne) SetHardwareSnapshot(v map[string]interface{}) *RunResultUpsertOne {
	return u.Update(func(s *RunResultUpsert) {
		s.SetHardwareSnapshot(v)
	})
}

// UpdateHardwareSnapshot sets the "hardware_snapshot" field to the value that was provided on create.
func (u *RunResultUpsertOne) UpdateHardwareSnapshot() *RunResultUpsertOne {
	return u.Update(func(s *RunResultUpsert) {
		s.UpdateHardwareSnapshot()
	})
}

// ClearHardwareSnapshot clears the value of the "hardware_snapshot" field.
func (u *RunResultUpsertOne) ClearHardwareSnapshot() *RunResultUpsertOne {
	return u.Update(func(s *RunResultUpsert) {
		s.ClearHardwareSnapshot()
	})
}

// Exec executes the query.
func (u *RunResultUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunResultCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunResultUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RunResultUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RunResultUpsertOne.ID is not supported by MySQL driver. Use RunResultUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RunResultUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RunResultCreateBulk is the builder for creating many RunResult entities in bulk.
type RunResultCreateBulk struct {
	config
	err      error
	builders []*RunResultCreate
	conflict []sql.ConflictOption
}

// Save creates the RunResult entities in the database.
func (_c *RunResultCreateBulk) Save(ctx context.Context) ([]*RunResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RunResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunResultMutation)
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
func (_c *RunResultCreateBulk) SaveX(ctx context.Context) []*RunResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RunResult.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunResultUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *RunResultCreateBulk) OnConflict(opts ...sql.ConflictOption) *RunResultUpsertBulk {
	_c.conflict = opts
	return &RunResultUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RunResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunResultCreateBulk) OnConflictColumns(columns ...string) *RunResultUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunResultUpsertBulk{
		create: _c,
	}
}

// RunResultUpsertBulk is the builder for "upsert"-ing
// a bulk of RunResult nodes.
type RunResultUpsertBulk struct {
	create *RunResultCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RunResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(runresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RunResultUpsertBulk) UpdateNewValues() *RunResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(runresult.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(runresult.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RunResult.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RunResultUpsertBulk) Ignore() *RunResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunResultUpsertBulk) DoNothing() *RunResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunResultCreateBulk.OnConflict
// documentation for more info.
func (u *RunResultUpsertBulk) Update(set func(*RunResultUpsert)) *RunResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetRunID sets the "run_id" field.
func (u *RunResultUpsertBulk) SetRunID(v string) *RunResultUpsertBulk {
	return u.Update(func(s *RunResultUpsert) {
		s.SetRunID(v)
	})
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *RunResultUpsertBulk) UpdateRunID() *RunResultUpsertBulk {
	return u.Update(func(s *RunResultUpsert) {
		s.UpdateRunID()
	})
}

// SetCommandID sets the "command_id" field.
func (u *RunResultUpsertBulk) SetCommandID(v string) *RunResultUpsertBulk {
	return u.Update(func(s *RunResultUpsert) {
		s.SetCommandID(v)
	})
}

// UpdateCommandID sets the "command_id" field to the value that was provided on create.
func (u *RunResultUpsertBulk) UpdateCommandID() *RunResultUpsertBulk {
	return u.Update(func(s *RunResultUpsert) {
		s.UpdateCommandID()
	})
}

// SetPassed sets the "passed" field.
func (u *RunResultUpsertBulk) SetPassed(v bool) *RunResultUpsertBulk {
	return u.Update(func(s *RunResultUpsert) {
		s.SetPassed(v)
	})
}

// UpdatePassed sets the "passed" field to the value that was provided on create.
func (u *RunResultUpsertBulk) UpdatePassed() *RunResultUpsertBulk {
	return u.Update(func(s *RunResultUpsert) {
		s.UpdatePassed()
	})
}

// SetMetrics sets the "metrics" field.
func (u *RunResultUpsertBulk) SetMetrics(v map[string]interface{}) *RunResultUpsertBulk {
	return u.Update(func(s *RunResultUpsert) {
		s.SetMetrics(v)
	})
}

// UpdateMetrics sets the "metrics" field to the value that was provided on create.
func (u *RunResultUpsertBulk) UpdateMetrics() *RunResultUpsertBulk {
	return u.Update(func(s *RunResultUpsert) {
		s.UpdateMetrics()
	})
}

// ClearMetrics clears the value of the "metrics" field.
func (u *RunResultUpsertBulk) ClearMetrics() *RunResultUpsertBulk {
	return u.Update(func(s *RunResultUpsert) {
		s.ClearMetrics()
	})
}

// SetOutputLocation sets the "output_location" field.
func (u *RunResultUpsertBulk) SetOutputLocation(v string) *RunResultUpsertBulk {
	return u.Update(func(s *RunResultUpsert) {
		s.SetOutputLocation(v)
	})
}

// UpdateOutputLocation sets the "output_location" field to the value that was provided on create.
func (u *RunResultUpsertBulk) UpdateOutputLocation() *RunResultUpsertBulk {
	return u.Update(func(s *RunResultUpsert) {
		s.UpdateOutputLocation()
	})
}

// ClearOutputLocation clears the value of the "output_location" field.
func (u *RunResultUpsertBulk) ClearOutputLocation() *RunResultUpsertBulk {
	return u.Update(func(s *RunResultUpsert) {
		s.ClearOutputLocation()
	})
}

// SetHardwareSnapshot sets the "hardware_snapshot" field.
func (u *RunResultUpsertBulk) SetHardwareSnapshot(v map[string]interface{}) *RunResultUpsertBulk {
	return u.Update(func(s *RunResultUpsert) {
		s.SetHardwareSnapshot(v)
	})
}

// UpdateHardwareSnapshot sets the "hardware_snapshot" field to the value that was provided on create.
func (u *RunResultUpsertBulk) UpdateHardwareSnapshot() *RunResultUpsertBulk {
	return u.Update(func(s *RunResultUpsert) {
		s.UpdateHardwareSnapshot()
	})
}

// ClearHardwareSnapshot clears the value of the "hardware_snapshot" field.
func (u *RunResultUpsertBulk) ClearHardwareSnapshot() *RunResultUpsertBulk {
	return u.Update(func(s *RunResultUpsert) {
		s.ClearHardwareSnapshot()
	})
}

// Exec executes the query.
func (u *RunResultUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RunResultCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunResultCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunResultUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
