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
	"github.com/CollideNV/hadron/ent/intervention"
)

// InterventionCreate is the builder for creating a Intervention entity.
type InterventionCreate struct {
	config
	mutation *InterventionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCrID sets the "cr_id" field.
func (_c *InterventionCreate) SetCrID(v string) *InterventionCreate {
	_c.mutation.SetCrID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *InterventionCreate) SetKind(v intervention.Kind) *InterventionCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetKey sets the "key" field.
func (_c *InterventionCreate) SetKey(v string) *InterventionCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_c *InterventionCreate) SetNillableKey(v *string) *InterventionCreate {
	if v != nil {
		_c.SetKey(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *InterventionCreate) SetPayload(v map[string]interface{}) *InterventionCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *InterventionCreate) SetExpiresAt(v time.Time) *InterventionCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *InterventionCreate) SetNillableExpiresAt(v *time.Time) *InterventionCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InterventionCreate) SetCreatedAt(v time.Time) *InterventionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InterventionCreate) SetNillableCreatedAt(v *time.Time) *InterventionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the InterventionMutation object of the builder.
func (_c *InterventionCreate) Mutation() *InterventionMutation {
	return _c.mutation
}

// Save creates the Intervention in the database.
func (_c *InterventionCreate) Save(ctx context.Context) (*Intervention, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InterventionCreate) SaveX(ctx context.Context) *Intervention {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterventionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterventionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InterventionCreate) defaults() {
	if _, ok := _c.mutation.Key(); !ok {
		v := intervention.DefaultKey
		_c.mutation.SetKey(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := intervention.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InterventionCreate) check() error {
	if _, ok := _c.mutation.CrID(); !ok {
		return &ValidationError{Name: "cr_id", err: errors.New(`ent: missing required field "Intervention.cr_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Intervention.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := intervention.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Intervention.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "Intervention.key"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "Intervention.payload"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Intervention.created_at"`)}
	}
	return nil
}

func (_c *InterventionCreate) sqlSave(ctx context.Context) (*Intervention, error) {
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

func (_c *InterventionCreate) createSpec() (*Intervention, *sqlgraph.CreateSpec) {
	var (
		_node = &Intervention{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(intervention.Table, sqlgraph.NewFieldSpec(intervention.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.CrID(); ok {
		_spec.SetField(intervention.FieldCrID, field.TypeString, value)
		_node.CrID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(intervention.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(intervention.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(intervention.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(intervention.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(intervention.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Intervention.Create().
//		SetCrID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InterventionUpsert) {
//			SetCrID(v+v).
//		}).
//		Exec(ctx)
func (_c *InterventionCreate) OnConflict(opts ...sql.ConflictOption) *InterventionUpsertOne {
	_c.conflict = opts
	return &InterventionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Intervention.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InterventionCreate) OnConflictColumns(columns ...string) *InterventionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InterventionUpsertOne{
		create: _c,
	}
}

type (
	// InterventionUpsertOne is the builder for "upsert"-ing
	//  one Intervention node.
	InterventionUpsertOne struct {
		create *InterventionCreate
	}

	// InterventionUpsert is the "OnConflict" setter.
	InterventionUpsert struct {
		*sql.UpdateSet
	}
)

// SetCrID sets the "cr_id" field.
func (u *InterventionUpsert) SetCrID(v string) *InterventionUpsert {
	u.Set(intervention.FieldCrID, v)
	return u
}

// UpdateCrID sets the "cr_id" field to the value that was provided on create.
func (u *InterventionUpsert) UpdateCrID() *InterventionUpsert {
	u.SetExcluded(intervention.FieldCrID)
	return u
}

// SetKind sets the "kind" field.
func (u *InterventionUpsert) SetKind(v intervention.Kind) *InterventionUpsert {
	u.Set(intervention.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *InterventionUpsert) UpdateKind() *InterventionUpsert {
	u.SetExcluded(intervention.FieldKind)
	return u
}

// SetKey sets the "key" field.
func (u *InterventionUpsert) SetKey(v string) *InterventionUpsert {
	u.Set(intervention.FieldKey, v)
	return u
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *InterventionUpsert) UpdateKey() *InterventionUpsert {
	u.SetExcluded(intervention.FieldKey)
	return u
}

// SetPayload sets the "payload" field.
func (u *InterventionUpsert) SetPayload(v map[string]interface{}) *InterventionUpsert {
	u.Set(intervention.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *InterventionUpsert) UpdatePayload() *InterventionUpsert {
	u.SetExcluded(intervention.FieldPayload)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *InterventionUpsert) SetExpiresAt(v time.Time) *InterventionUpsert {
	u.Set(intervention.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *InterventionUpsert) UpdateExpiresAt() *InterventionUpsert {
	u.SetExcluded(intervention.FieldExpiresAt)
	return u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *InterventionUpsert) ClearExpiresAt() *InterventionUpsert {
	u.SetNull(intervention.FieldExpiresAt)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *InterventionUpsert) SetCreatedAt(v time.Time) *InterventionUpsert {
	u.Set(intervention.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *InterventionUpsert) UpdateCreatedAt() *InterventionUpsert {
	u.SetExcluded(intervention.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Intervention.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *InterventionUpsertOne) UpdateNewValues() *InterventionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Intervention.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InterventionUpsertOne) Ignore() *InterventionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InterventionUpsertOne) DoNothing() *InterventionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InterventionCreate.OnConflict
// documentation for more info.
func (u *InterventionUpsertOne) Update(set func(*InterventionUpsert)) *InterventionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InterventionUpsert{UpdateSet: update})
	}))
	return u
}

// SetCrID sets the "cr_id" field.
func (u *InterventionUpsertOne) SetCrID(v string) *InterventionUpsertOne {
	return u.Update(func(s *InterventionUpsert) {
		s.SetCrID(v)
	})
}

// UpdateCrID sets the "cr_id" field to the value that was provided on create.
func (u *InterventionUpsertOne) UpdateCrID() *InterventionUpsertOne {
	return u.Update(func(s *InterventionUpsert) {
		s.UpdateCrID()
	})
}

// SetKind sets the "kind" field.
func (u *InterventionUpsertOne) SetKind(v intervention.Kind) *InterventionUpsertOne {
	return u.Update(func(s *InterventionUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *InterventionUpsertOne) UpdateKind() *InterventionUpsertOne {
	return u.Update(func(s *InterventionUpsert) {
		s.UpdateKind()
	})
}

// SetKey sets the "key" field.
func (u *InterventionUpsertOne) SetKey(v string) *InterventionUpsertOne {
	return u.Update(func(s *InterventionUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *InterventionUpsertOne) UpdateKey() *InterventionUpsertOne {
	return u.Update(func(s *InterventionUpsert) {
		s.UpdateKey()
	})
}

// SetPayload sets the "payload" field.
func (u *InterventionUpsertOne) SetPayload(v map[string]interface{}) *InterventionUpsertOne {
	return u.Update(func(s *InterventionUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *InterventionUpsertOne) UpdatePayload() *InterventionUpsertOne {
	return u.Update(func(s *InterventionUpsert) {
		s.UpdatePayload()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *InterventionUpsertOne) SetExpiresAt(v time.Time) *InterventionUpsertOne {
	return u.Update(func(s *InterventionUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *InterventionUpsertOne) UpdateExpiresAt() *InterventionUpsertOne {
	return u.Update(func(s *InterventionUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *InterventionUpsertOne) ClearExpiresAt() *InterventionUpsertOne {
	return u.Update(func(s *InterventionUpsert) {
		s.ClearExpiresAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *InterventionUpsertOne) SetCreatedAt(v time.Time) *InterventionUpsertOne {
	return u.Update(func(s *InterventionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *InterventionUpsertOne) UpdateCreatedAt() *InterventionUpsertOne {
	return u.Update(func(s *InterventionUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *InterventionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InterventionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InterventionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InterventionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InterventionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InterventionCreateBulk is the builder for creating many Intervention entities in bulk.
type InterventionCreateBulk struct {
	config
	err      error
	builders []*InterventionCreate
	conflict []sql.ConflictOption
}

// Save creates the Intervention entities in the database.
func (_c *InterventionCreateBulk) Save(ctx context.Context) ([]*Intervention, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Intervention, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InterventionMutation)
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
func (_c *InterventionCreateBulk) SaveX(ctx context.Context) []*Intervention {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterventionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterventionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Intervention.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InterventionUpsert) {
//			SetCrID(v+v).
//		}).
//		Exec(ctx)
func (_c *InterventionCreateBulk) OnConflict(opts ...sql.ConflictOption) *InterventionUpsertBulk {
	_c.conflict = opts
	return &InterventionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Intervention.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InterventionCreateBulk) OnConflictColumns(columns ...string) *InterventionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InterventionUpsertBulk{
		create: _c,
	}
}

// InterventionUpsertBulk is the builder for "upsert"-ing
// a bulk of Intervention nodes.
type InterventionUpsertBulk struct {
	create *InterventionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Intervention.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *InterventionUpsertBulk) UpdateNewValues() *InterventionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Intervention.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InterventionUpsertBulk) Ignore() *InterventionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InterventionUpsertBulk) DoNothing() *InterventionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InterventionCreateBulk.OnConflict
// documentation for more info.
func (u *InterventionUpsertBulk) Update(set func(*InterventionUpsert)) *InterventionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InterventionUpsert{UpdateSet: update})
	}))
	return u
}

// SetCrID sets the "cr_id" field.
func (u *InterventionUpsertBulk) SetCrID(v string) *InterventionUpsertBulk {
	return u.Update(func(s *InterventionUpsert) {
		s.SetCrID(v)
	})
}

// UpdateCrID sets the "cr_id" field to the value that was provided on create.
func (u *InterventionUpsertBulk) UpdateCrID() *InterventionUpsertBulk {
	return u.Update(func(s *InterventionUpsert) {
		s.UpdateCrID()
	})
}

// SetKind sets the "kind" field.
func (u *InterventionUpsertBulk) SetKind(v intervention.Kind) *InterventionUpsertBulk {
	return u.Update(func(s *InterventionUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *InterventionUpsertBulk) UpdateKind() *InterventionUpsertBulk {
	return u.Update(func(s *InterventionUpsert) {
		s.UpdateKind()
	})
}

// SetKey sets the "key" field.
func (u *InterventionUpsertBulk) SetKey(v string) *InterventionUpsertBulk {
	return u.Update(func(s *InterventionUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *InterventionUpsertBulk) UpdateKey() *InterventionUpsertBulk {
	return u.Update(func(s *InterventionUpsert) {
		s.UpdateKey()
	})
}

// SetPayload sets the "payload" field.
func (u *InterventionUpsertBulk) SetPayload(v map[string]interface{}) *InterventionUpsertBulk {
	return u.Update(func(s *InterventionUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *InterventionUpsertBulk) UpdatePayload() *InterventionUpsertBulk {
	return u.Update(func(s *InterventionUpsert) {
		s.UpdatePayload()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *InterventionUpsertBulk) SetExpiresAt(v time.Time) *InterventionUpsertBulk {
	return u.Update(func(s *InterventionUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *InterventionUpsertBulk) UpdateExpiresAt() *InterventionUpsertBulk {
	return u.Update(func(s *InterventionUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *InterventionUpsertBulk) ClearExpiresAt() *InterventionUpsertBulk {
	return u.Update(func(s *InterventionUpsert) {
		s.ClearExpiresAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *InterventionUpsertBulk) SetCreatedAt(v time.Time) *InterventionUpsertBulk {
	return u.Update(func(s *InterventionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *InterventionUpsertBulk) UpdateCreatedAt() *InterventionUpsertBulk {
	return u.Update(func(s *InterventionUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *InterventionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the InterventionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InterventionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InterventionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
