// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Kirizan/kitt-sub000/ent/plannedrun"
	"github.com/Kirizan/kitt-sub000/ent/predicate"
	"github.com/Kirizan/kitt-sub000/ent/runresult"
)

// RunResultUpdate is the builder for updating RunResult entities.
type RunResultUpdate struct {
	config
	hooks    []Hook
	mutation *RunResultMutation
}

// Where appends a list predicates to the RunResultUpdate builder.
func (_u *RunResultUpdate) Where(ps ...predicate.RunResult) *RunResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *RunResultUpdate) SetRunID(v string) *RunResultUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *RunResultUpdate) SetNillableRunID(v *string) *RunResultUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetCommandID sets the "command_id" field.
func (_u *RunResultUpdate) SetCommandID(v string) *RunResultUpdate {
	_u.mutation.SetCommandID(v)
	return _u
}

// SetNillableCommandID sets the "command_id" field if the given value is not nil.
func (_u *RunResultUpdate) SetNillableCommandID(v *string) *RunResultUpdate {
	if v != nil {
		_u.SetCommandID(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *RunResultUpdate) SetPassed(v bool) *RunResultUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *RunResultUpdate) SetNillablePassed(v *bool) *RunResultUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *RunResultUpdate) SetMetrics(v map[string]interface{}) *RunResultUpdate {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *RunResultUpdate) ClearMetrics() *RunResultUpdate {
	_u.mutation.ClearMetrics()
	return _u
}

// SetOutputLocation sets the "output_location" field.
func (_u *RunResultUpdate) SetOutputLocation(v string) *RunResultUpdate {
	_u.mutation.SetOutputLocation(v)
	return _u
}

// SetNillableOutputLocation sets the "output_location" field if the given value is not nil.
func (_u *RunResultUpdate) SetNillableOutputLocation(v *string) *RunResultUpdate {
	if v != nil {
		_u.SetOutputLocation(*v)
	}
	return _u
}

// ClearOutputLocation clears the value of the "output_location" field.
func (_u *RunResultUpdate) ClearOutputLocation() *RunResultUpdate {
	_u.mutation.ClearOutputLocation()
	return _u
}

// SetHardwareSnapshot sets the "hardware_snapshot" field.
func (_u *RunResultUpdate) SetHardwareSnapshot(v map[string]interface{}) *RunResultUpdate {
	_u.mutation.SetHardwareSnapshot(v)
	return _u
}

// ClearHardwareSnapshot clears the value of the "hardware_snapshot" field.
func (_u *RunResultUpdate) ClearHardwareSnapshot() *RunResultUpdate {
	_u.mutation.ClearHardwareSnapshot()
	return _u
}

// SetRun sets the "run" edge to the PlannedRun entity.
func (_u *RunResultUpdate) SetRun(v *PlannedRun) *RunResultUpdate {
	return _u.SetRunID(v.ID)
}

// Mutation returns the RunResultMutation object of the builder.
func (_u *RunResultUpdate) Mutation() *RunResultMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the PlannedRun entity.
func (_u *RunResultUpdate) ClearRun() *RunResultUpdate {
	_u.mutation.ClearRun()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunResultUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunResult.run"`)
	}
	return nil
}

func (_u *RunResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runresult.Table, runresult.Columns, sqlgraph.NewFieldSpec(runresult.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CommandID(); ok {
		_spec.SetField(runresult.FieldCommandID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(runresult.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(runresult.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(runresult.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputLocation(); ok {
		_spec.SetField(runresult.FieldOutputLocation, field.TypeString, value)
	}
	if _u.mutation.OutputLocationCleared() {
		_spec.ClearField(runresult.FieldOutputLocation, field.TypeString)
	}
	if value, ok := _u.mutation.HardwareSnapshot(); ok {
		_spec.SetField(runresult.FieldHardwareSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.HardwareSnapshotCleared() {
		_spec.ClearField(runresult.FieldHardwareSnapshot, field.TypeJSON)
	}
	if _u.mutation.RunCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunResultUpdateOne is the builder for updating a single RunResult entity.
type RunResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunResultMutation
}

// SetRunID sets the "run_id" field.
func (_u *RunResultUpdateOne) SetRunID(v string) *RunResultUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *RunResultUpdateOne) SetNillableRunID(v *string) *RunResultUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetCommandID sets the "command_id" field.
func (_u *RunResultUpdateOne) SetCommandID(v string) *RunResultUpdateOne {
	_u.mutation.SetCommandID(v)
	return _u
}

// SetNillableCommandID sets the "command_id" field if the given value is not nil.
func (_u *RunResultUpdateOne) SetNillableCommandID(v *string) *RunResultUpdateOne {
	if v != nil {
		_u.SetCommandID(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *RunResultUpdateOne) SetPassed(v bool) *RunResultUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *RunResultUpdateOne) SetNillablePassed(v *bool) *RunResultUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *RunResultUpdateOne) SetMetrics(v map[string]interface{}) *RunResultUpdateOne {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *RunResultUpdateOne) ClearMetrics() *RunResultUpdateOne {
	_u.mutation.ClearMetrics()
	return _u
}

// SetOutputLocation sets the "output_location" field.
func (_u *RunResultUpdateOne) SetOutputLocation(v string) *RunResultUpdateOne {
	_u.mutation.SetOutputLocation(v)
	return _u
}

// SetNillableOutputLocation sets the "output_location" field if the given value is not nil.
func (_u *RunResultUpdateOne) SetNillableOutputLocation(v *string) *RunResultUpdateOne {
	if v != nil {
		_u.SetOutputLocation(*v)
	}
	return _u
}

// ClearOutputLocation clears the value of the "output_location" field.
func (_u *RunResultUpdateOne) ClearOutputLocation() *RunResultUpdateOne {
	_u.mutation.ClearOutputLocation()
	return _u
}

// SetHardwareSnapshot sets the "hardware_snapshot" field.
func (_u *RunResultUpdateOne) SetHardwareSnapshot(v map[string]interface{}) *RunResultUpdateOne {
	_u.mutation.SetHardwareSnapshot(v)
	return _u
}

// ClearHardwareSnapshot clears the value of the "hardware_snapshot" field.
func (_u *RunResultUpdateOne) ClearHardwareSnapshot() *RunResultUpdateOne {
	_u.mutation.ClearHardwareSnapshot()
	return _u
}

// SetRun sets the "run" edge to the PlannedRun entity.
func (_u *RunResultUpdateOne) SetRun(v *PlannedRun) *RunResultUpdateOne {
	return _u.SetRunID(v.ID)
}

// Mutation returns the RunResultMutation object of the builder.
func (_u *RunResultUpdateOne) Mutation() *RunResultMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the PlannedRun entity.
func (_u *RunResultUpdateOne) ClearRun() *RunResultUpdateOne {
	_u.mutation.ClearRun()
	return _u
}

// Where appends a list predicates to the RunResultUpdate builder.
func (_u *RunResultUpdateOne) Where(ps ...predicate.RunResult) *RunResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunResultUpdateOne) Select(field string, fields ...string) *RunResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunResult entity.
func (_u *RunResultUpdateOne) Save(ctx context.Context) (*RunResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunResultUpdateOne) SaveX(ctx context.Context) *RunResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunResultUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunResult.run"`)
	}
	return nil
}

func (_u *RunResultUpdateOne) sqlSave(ctx context.Context) (_node *RunResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runresult.Table, runresult.Columns, sqlgraph.NewFieldSpec(runresult.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runresult.FieldID)
		for _, f := range fields {
			if !runresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runresult.FieldID {
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
	if value, ok := _u.mutation.CommandID(); ok {
		_spec.SetField(runresult.FieldCommandID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(runresult.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(runresult.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(runresult.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputLocation(); ok {
		_spec.SetField(runresult.FieldOutputLocation, field.TypeString, value)
	}
	if _u.mutation.OutputLocationCleared() {
		_spec.ClearField(runresult.FieldOutputLocation, field.TypeString)
	}
	if value, ok := _u.mutation.HardwareSnapshot(); ok {
		_spec.SetField(runresult.FieldHardwareSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.HardwareSnapshotCleared() {
		_spec.ClearField(runresult.FieldHardwareSnapshot, field.TypeJSON)
	}
	if _u.mutation.RunCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RunResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
