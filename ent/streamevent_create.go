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
	"github.com/Kirizan/kitt-sub000/ent/streamevent"
)

// StreamEventCreate is the builder for creating a StreamEvent entity.
type StreamEventCreate struct {
	config
	mutation *StreamEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStreamID sets the "stream_id" field.
func (_c *StreamEventCreate) SetStreamID(v string) *StreamEventCreate {
	_c.mutation.SetStreamID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *StreamEventCreate) SetKind(v streamevent.Kind) *StreamEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *StreamEventCreate) SetPayload(v map[string]interface{}) *StreamEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StreamEventCreate) SetCreatedAt(v time.Time) *StreamEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StreamEventCreate) SetNillableCreatedAt(v *time.Time) *StreamEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the StreamEventMutation object of the builder.
func (_c *StreamEventCreate) Mutation() *StreamEventMutation {
	return _c.mutation
}

// Save creates the StreamEvent in the database.
func (_c *StreamEventCreate) Save(ctx context.Context) (*StreamEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StreamEventCreate) SaveX(ctx context.Context) *StreamEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StreamEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StreamEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StreamEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := streamevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StreamEventCreate) check() error {
	if _, ok := _c.mutation.StreamID(); !ok {
		return &ValidationError{Name: "stream_id", err: errors.New(`ent: missing required field "StreamEvent.stream_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "StreamEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := streamevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "StreamEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "StreamEvent.payload"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StreamEvent.created_at"`)}
	}
	return nil
}

func (_c *StreamEventCreate) sqlSave(ctx context.Context) (*StreamEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StreamEventCreate) createSpec() (*StreamEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &StreamEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(streamevent.Table, sqlgraph.NewFieldSpec(streamevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.StreamID(); ok {
		_spec.SetField(streamevent.FieldStreamID, field.TypeString, value)
		_node.StreamID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(streamevent.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(streamevent.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(streamevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StreamEvent.Create().
//		SetStreamID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StreamEventUpsert) {
//			SetStreamID(v+v).
//		}).
//		Exec(ctx)
func (_c *StreamEventCreate) OnConflict(opts ...sql.ConflictOption) *StreamEventUpsertOne {
	_c.conflict = opts
	return &StreamEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StreamEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StreamEventCreate) OnConflictColumns(columns ...string) *StreamEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StreamEventUpsertOne{
		create: _c,
	}
}

type (
	// StreamEventUpsertOne is the builder for "upsert"-ing
	//  one StreamEvent node.
	StreamEventUpsertOne struct {
		create *StreamEventCreate
	}

	// StreamEventUpsert is the "OnConflict" setter.
	StreamEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetStreamID sets the "stream_id" field.
func (u *StreamEventUpsert) SetStreamID(v string) *StreamEventUpsert {
	u.Set(streamevent.FieldStreamID, v)
	return u
}

// UpdateStreamID sets the "stream_id" field to the value that was provided on create.
func (u *StreamEventUpsert) UpdateStreamID() *StreamEventUpsert {
	u.SetExcluded(streamevent.FieldStreamID)
	return u
}

// SetKind sets the "kind" field.
func (u *StreamEventUpsert) SetKind(v streamevent.Kind) *StreamEventUpsert {
	u.Set(streamevent.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *StreamEventUpsert) UpdateKind() *StreamEventUpsert {
	u.SetExcluded(streamevent.FieldKind)
	return u
}

// SetPayload sets the "payload" field.
func (u *StreamEventUpsert) SetPayload(v map[string]interface{}) *StreamEventUpsert {
	u.Set(streamevent.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StreamEventUpsert) UpdatePayload() *StreamEventUpsert {
	u.SetExcluded(streamevent.FieldPayload)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.StreamEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StreamEventUpsertOne) UpdateNewValues() *StreamEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(streamevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StreamEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StreamEventUpsertOne) Ignore() *StreamEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StreamEventUpsertOne) DoNothing() *StreamEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StreamEventCreate.OnConflict
// documentation for more info.
func (u *StreamEventUpsertOne) Update(set func(*StreamEventUpsert)) *StreamEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StreamEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetStreamID sets the "stream_id" field.
func (u *StreamEventUpsertOne) SetStreamID(v string) *StreamEventUpsertOne {
	return u.Update(func(s *StreamEventUpsert) {
		s.SetStreamID(v)
	})
}

// UpdateStreamID sets the "stream_id" field to the value that was provided on create.
func (u *StreamEventUpsertOne) UpdateStreamID() *StreamEventUpsertOne {
	return u.Update(func(s *StreamEventUpsert) {
		s.UpdateStreamID()
	})
}

// SetKind sets the "kind" field.
func (u *StreamEventUpsertOne) SetKind(v streamevent.Kind) *StreamEventUpsertOne {
	return u.Update(func(s *StreamEventUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *StreamEventUpsertOne) UpdateKind() *StreamEventUpsertOne {
	return u.Update(func(s *StreamEventUpsert) {
		s.UpdateKind()
	})
}

// SetPayload sets the "payload" field.
func (u *StreamEventUpsertOne) SetPayload(v map[string]interface{}) *StreamEventUpsertOne {
	return u.Update(func(s *StreamEventUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StreamEventUpsertOne) UpdatePayload() *StreamEventUpsertOne {
	return u.Update(func(s *StreamEventUpsert) {
		s.UpdatePayload()
	})
}

// Exec executes the query.
func (u *StreamEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StreamEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StreamEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StreamEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StreamEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StreamEventCreateBulk is the builder for creating many StreamEvent entities in bulk.
type StreamEventCreateBulk struct {
	config
	err      error
	builders []*StreamEventCreate
	conflict []sql.ConflictOption
}

// Save creates the StreamEvent entities in the database.
func (_c *StreamEventCreateBulk) Save(ctx context.Context) ([]*StreamEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StreamEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StreamEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *StreamEventCreateBulk) SaveX(ctx context.Context) []*StreamEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StreamEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StreamEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StreamEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StreamEventUpsert) {
//			SetStreamID(v+v).
//		}).
//		Exec(ctx)
func (_c *StreamEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *StreamEventUpsertBulk {
	_c.conflict = opts
	return &StreamEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StreamEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StreamEventCreateBulk) OnConflictColumns(columns ...string) *StreamEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StreamEventUpsertBulk{
		create: _c,
	}
}

// StreamEventUpsertBulk is the builder for "upsert"-ing
// a bulk of StreamEvent nodes.
type StreamEventUpsertBulk struct {
	create *StreamEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StreamEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StreamEventUpsertBulk) UpdateNewValues() *StreamEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(streamevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StreamEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StreamEventUpsertBulk) Ignore() *StreamEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StreamEventUpsertBulk) DoNothing() *StreamEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StreamEventCreateBulk.OnConflict
// documentation for more info.
func (u *StreamEventUpsertBulk) Update(set func(*StreamEventUpsert)) *StreamEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StreamEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetStreamID sets the "stream_id" field.
func (u *StreamEventUpsertBulk) SetStreamID(v string) *StreamEventUpsertBulk {
	return u.Update(func(s *StreamEventUpsert) {
		s.SetStreamID(v)
	})
}

// UpdateStreamID sets the "stream_id" field to the value that was provided on create.
func (u *StreamEventUpsertBulk) UpdateStreamID() *StreamEventUpsertBulk {
	return u.Update(func(s *StreamEventUpsert) {
		s.UpdateStreamID()
	})
}

// SetKind sets the "kind" field.
func (u *StreamEventUpsertBulk) SetKind(v streamevent.Kind) *StreamEventUpsertBulk {
	return u.Update(func(s *StreamEventUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *StreamEventUpsertBulk) UpdateKind() *StreamEventUpsertBulk {
	return u.Update(func(s *StreamEventUpsert) {
		s.UpdateKind()
	})
}

// SetPayload sets the "payload" field.
func (u *StreamEventUpsertBulk) SetPayload(v map[string]interface{}) *StreamEventUpsertBulk {
	return u.Update(func(s *StreamEventUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *StreamEventUpsertBulk) UpdatePayload() *StreamEventUpsertBulk {
	return u.Update(func(s *StreamEventUpsert) {
		s.UpdatePayload()
	})
}

// Exec executes the query.
func (u *StreamEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StreamEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StreamEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StreamEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
