// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Kirizan/kitt-sub000/ent/predicate"
	"github.com/Kirizan/kitt-sub000/ent/streamevent"
)

// StreamEventUpdate is the builder for updating StreamEvent entities.
type StreamEventUpdate struct {
	config
	hooks    []Hook
	mutation *StreamEventMutation
}

// Where appends a list predicates to the StreamEventUpdate builder.
func (_u *StreamEventUpdate) Where(ps ...predicate.StreamEvent) *StreamEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStreamID sets the "stream_id" field.
func (_u *StreamEventUpdate) SetStreamID(v string) *StreamEventUpdate {
	_u.mutation.SetStreamID(v)
	return _u
}

// SetNillableStreamID sets the "stream_id" field if the given value is not nil.
func (_u *StreamEventUpdate) SetNillableStreamID(v *string) *StreamEventUpdate {
	if v != nil {
		_u.SetStreamID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *StreamEventUpdate) SetKind(v streamevent.Kind) *StreamEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *StreamEventUpdate) SetNillableKind(v *streamevent.Kind) *StreamEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StreamEventUpdate) SetPayload(v map[string]interface{}) *StreamEventUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// Mutation returns the StreamEventMutation object of the builder.
func (_u *StreamEventUpdate) Mutation() *StreamEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StreamEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StreamEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StreamEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StreamEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StreamEventUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := streamevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "StreamEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *StreamEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(streamevent.Table, streamevent.Columns, sqlgraph.NewFieldSpec(streamevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StreamID(); ok {
		_spec.SetField(streamevent.FieldStreamID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(streamevent.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(streamevent.FieldPayload, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{streamevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StreamEventUpdateOne is the builder for updating a single StreamEvent entity.
type StreamEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StreamEventMutation
}

// SetStreamID sets the "stream_id" field.
func (_u *StreamEventUpdateOne) SetStreamID(v string) *StreamEventUpdateOne {
	_u.mutation.SetStreamID(v)
	return _u
}

// SetNillableStreamID sets the "stream_id" field if the given value is not nil.
func (_u *StreamEventUpdateOne) SetNillableStreamID(v *string) *StreamEventUpdateOne {
	if v != nil {
		_u.SetStreamID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *StreamEventUpdateOne) SetKind(v streamevent.Kind) *StreamEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *StreamEventUpdateOne) SetNillableKind(v *streamevent.Kind) *StreamEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StreamEventUpdateOne) SetPayload(v map[string]interface{}) *StreamEventUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// Mutation returns the StreamEventMutation object of the builder.
func (_u *StreamEventUpdateOne) Mutation() *StreamEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the StreamEventUpdate builder.
func (_u *StreamEventUpdateOne) Where(ps ...predicate.StreamEvent) *StreamEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StreamEventUpdateOne) Select(field string, fields ...string) *StreamEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StreamEvent entity.
func (_u *StreamEventUpdateOne) Save(ctx context.Context) (*StreamEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StreamEventUpdateOne) SaveX(ctx context.Context) *StreamEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StreamEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StreamEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StreamEventUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := streamevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "StreamEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *StreamEventUpdateOne) sqlSave(ctx context.Context) (_node *StreamEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(streamevent.Table, streamevent.Columns, sqlgraph.NewFieldSpec(streamevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StreamEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, streamevent.FieldID)
		for _, f := range fields {
			if !streamevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != streamevent.FieldID {
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
	if value, ok := _u.mutation.StreamID(); ok {
		_spec.SetField(streamevent.FieldStreamID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(streamevent.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(streamevent.FieldPayload, field.TypeJSON, value)
	}
	_node = &StreamEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{streamevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
