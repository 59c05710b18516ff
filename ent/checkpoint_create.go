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
	"github.com/CollideNV/hadron/ent/checkpoint"
	"github.com/CollideNV/hadron/ent/crrun"
)

// CheckpointCreate is the builder for creating a Checkpoint entity.
type CheckpointCreate struct {
	config
	mutation *CheckpointMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCrID sets the "cr_id" field.
func (_c *CheckpointCreate) SetCrID(v string) *CheckpointCreate {
	_c.mutation.SetCrID(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *CheckpointCreate) SetSequence(v int) *CheckpointCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetNodeName sets the "node_name" field.
func (_c *CheckpointCreate) SetNodeName(v string) *CheckpointCreate {
	_c.mutation.SetNodeName(v)
	return _c
}

// SetStateBlob sets the "state_blob" field.
func (_c *CheckpointCreate) SetStateBlob(v map[string]interface{}) *CheckpointCreate {
	_c.mutation.SetStateBlob(v)
	return _c
}

// SetWrittenAt sets the "written_at" field.
func (_c *CheckpointCreate) SetWrittenAt(v time.Time) *CheckpointCreate {
	_c.mutation.SetWrittenAt(v)
	return _c
}

// SetNillableWrittenAt sets the "written_at" field if the given value is not nil.
func (_c *CheckpointCreate) SetNillableWrittenAt(v *time.Time) *CheckpointCreate {
	if v != nil {
		_c.SetWrittenAt(*v)
	}
	return _c
}

// SetRunID sets the "run" edge to the CRRun entity by ID.
func (_c *CheckpointCreate) SetRunID(id string) *CheckpointCreate {
	_c.mutation.SetRunID(id)
	return _c
}

// SetRun sets the "run" edge to the CRRun entity.
func (_c *CheckpointCreate) SetRun(v *CRRun) *CheckpointCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the CheckpointMutation object of the builder.
func (_c *CheckpointCreate) Mutation() *CheckpointMutation {
	return _c.mutation
}

// Save creates the Checkpoint in the database.
func (_c *CheckpointCreate) Save(ctx context.Context) (*Checkpoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CheckpointCreate) SaveX(ctx context.Context) *Checkpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckpointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckpointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CheckpointCreate) defaults() {
	if _, ok := _c.mutation.WrittenAt(); !ok {
		v := checkpoint.DefaultWrittenAt()
		_c.mutation.SetWrittenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CheckpointCreate) check() error {
	if _, ok := _c.mutation.CrID(); !ok {
		return &ValidationError{Name: "cr_id", err: errors.New(`ent: missing required field "Checkpoint.cr_id"`)}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "Checkpoint.sequence"`)}
	}
	if _, ok := _c.mutation.NodeName(); !ok {
		return &ValidationError{Name: "node_name", err: errors.New(`ent: missing required field "Checkpoint.node_name"`)}
	}
	if _, ok := _c.mutation.StateBlob(); !ok {
		return &ValidationError{Name: "state_blob", err: errors.New(`ent: missing required field "Checkpoint.state_blob"`)}
	}
	if _, ok := _c.mutation.WrittenAt(); !ok {
		return &ValidationError{Name: "written_at", err: errors.New(`ent: missing required field "Checkpoint.written_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "Checkpoint.run"`)}
	}
	return nil
}

func (_c *CheckpointCreate) sqlSave(ctx context.Context) (*Checkpoint, error) {
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

func (_c *CheckpointCreate) createSpec() (*Checkpoint, *sqlgraph.CreateSpec) {
	var (
		_node = &Checkpoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checkpoint.Table, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(checkpoint.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.NodeName(); ok {
		_spec.SetField(checkpoint.FieldNodeName, field.TypeString, value)
		_node.NodeName = value
	}
	if value, ok := _c.mutation.StateBlob(); ok {
		_spec.SetField(checkpoint.FieldStateBlob, field.TypeJSON, value)
		_node.StateBlob = value
	}
	if value, ok := _c.mutation.WrittenAt(); ok {
		_spec.SetField(checkpoint.FieldWrittenAt, field.TypeTime, value)
		_node.WrittenAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkpoint.RunTable,
			Columns: []string{checkpoint.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(crrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CrID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Checkpoint.Create().
//		SetCrID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CheckpointUpsert) {
//			SetCrID(v+v).
//		}).
//		Exec(ctx)
func (_c *CheckpointCreate) OnConflict(opts ...sql.ConflictOption) *CheckpointUpsertOne {
	_c.conflict = opts
	return &CheckpointUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Checkpoint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CheckpointCreate) OnConflictColumns(columns ...string) *CheckpointUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CheckpointUpsertOne{
		create: _c,
	}
}

type (
	// CheckpointUpsertOne is the builder for "upsert"-ing
	//  one Checkpoint node.
	CheckpointUpsertOne struct {
		create *CheckpointCreate
	}

	// CheckpointUpsert is the "OnConflict" setter.
	CheckpointUpsert struct {
		*sql.UpdateSet
	}
)

// SetCrID sets the "cr_id" field.
func (u *CheckpointUpsert) SetCrID(v string) *CheckpointUpsert {
	u.Set(checkpoint.FieldCrID, v)
	return u
}

// UpdateCrID sets the "cr_id" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateCrID() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldCrID)
	return u
}

// SetSequence sets the "sequence" field.
func (u *CheckpointUpsert) SetSequence(v int) *CheckpointUpsert {
	u.Set(checkpoint.FieldSequence, v)
	return u
}

// UpdateSequence sets the "sequence" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateSequence() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldSequence)
	return u
}

// AddSequence adds v to the "sequence" field.
func (u *CheckpointUpsert) AddSequence(v int) *CheckpointUpsert {
	u.Add(checkpoint.FieldSequence, v)
	return u
}

// SetNodeName sets the "node_name" field.
func (u *CheckpointUpsert) SetNodeName(v string) *CheckpointUpsert {
	u.Set(checkpoint.FieldNodeName, v)
	return u
}

// UpdateNodeName sets the "node_name" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateNodeName() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldNodeName)
	return u
}

// SetStateBlob sets the "state_blob" field.
func (u *CheckpointUpsert) SetStateBlob(v map[string]interface{}) *CheckpointUpsert {
	u.Set(checkpoint.FieldStateBlob, v)
	return u
}

// UpdateStateBlob sets the "state_blob" field to the value that was provided on create.
func (u *CheckpointUpsert) UpdateStateBlob() *CheckpointUpsert {
	u.SetExcluded(checkpoint.FieldStateBlob)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Checkpoint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CheckpointUpsertOne) UpdateNewValues() *CheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.WrittenAt(); exists {
			s.SetIgnore(checkpoint.FieldWrittenAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Checkpoint.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CheckpointUpsertOne) Ignore() *CheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CheckpointUpsertOne) DoNothing() *CheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CheckpointCreate.OnConflict
// documentation for more info.
func (u *CheckpointUpsertOne) Update(set func(*CheckpointUpsert)) *CheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CheckpointUpsert{UpdateSet: update})
	}))
	return u
}

// SetCrID sets the "cr_id" field.
func (u *CheckpointUpsertOne) SetCrID(v string) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetCrID(v)
	})
}

// UpdateCrID sets the "cr_id" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateCrID() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateCrID()
	})
}

// SetSequence sets the "sequence" field.
func (u *CheckpointUpsertOne) SetSequence(v int) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetSequence(v)
	})
}

// AddSequence adds v to the "sequence" field.
func (u *CheckpointUpsertOne) AddSequence(v int) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.AddSequence(v)
	})
}

// UpdateSequence sets the "sequence" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateSequence() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateSequence()
	})
}

// SetNodeName sets the "node_name" field.
func (u *CheckpointUpsertOne) SetNodeName(v string) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetNodeName(v)
	})
}

// UpdateNodeName sets the "node_name" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateNodeName() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateNodeName()
	})
}

// SetStateBlob sets the "state_blob" field.
func (u *CheckpointUpsertOne) SetStateBlob(v map[string]interface{}) *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetStateBlob(v)
	})
}

// UpdateStateBlob sets the "state_blob" field to the value that was provided on create.
func (u *CheckpointUpsertOne) UpdateStateBlob() *CheckpointUpsertOne {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateStateBlob()
	})
}

// Exec executes the query.
func (u *CheckpointUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CheckpointCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CheckpointUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CheckpointUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CheckpointUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CheckpointCreateBulk is the builder for creating many Checkpoint entities in bulk.
type CheckpointCreateBulk struct {
	config
	err      error
	builders []*CheckpointCreate
	conflict []sql.ConflictOption
}

// Save creates the Checkpoint entities in the database.
func (_c *CheckpointCreateBulk) Save(ctx context.Context) ([]*Checkpoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Checkpoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CheckpointMutation)
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
func (_c *CheckpointCreateBulk) SaveX(ctx context.Context) []*Checkpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckpointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckpointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Checkpoint.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CheckpointUpsert) {
//			SetCrID(v+v).
//		}).
//		Exec(ctx)
func (_c *CheckpointCreateBulk) OnConflict(opts ...sql.ConflictOption) *CheckpointUpsertBulk {
	_c.conflict = opts
	return &CheckpointUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Checkpoint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CheckpointCreateBulk) OnConflictColumns(columns ...string) *CheckpointUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CheckpointUpsertBulk{
		create: _c,
	}
}

// CheckpointUpsertBulk is the builder for "upsert"-ing
// a bulk of Checkpoint nodes.
type CheckpointUpsertBulk struct {
	create *CheckpointCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Checkpoint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CheckpointUpsertBulk) UpdateNewValues() *CheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.WrittenAt(); exists {
				s.SetIgnore(checkpoint.FieldWrittenAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Checkpoint.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CheckpointUpsertBulk) Ignore() *CheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CheckpointUpsertBulk) DoNothing() *CheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CheckpointCreateBulk.OnConflict
// documentation for more info.
func (u *CheckpointUpsertBulk) Update(set func(*CheckpointUpsert)) *CheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CheckpointUpsert{UpdateSet: update})
	}))
	return u
}

// SetCrID sets the "cr_id" field.
func (u *CheckpointUpsertBulk) SetCrID(v string) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetCrID(v)
	})
}

// UpdateCrID sets the "cr_id" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateCrID() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateCrID()
	})
}

// SetSequence sets the "sequence" field.
func (u *CheckpointUpsertBulk) SetSequence(v int) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetSequence(v)
	})
}

// AddSequence adds v to the "sequence" field.
func (u *CheckpointUpsertBulk) AddSequence(v int) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.AddSequence(v)
	})
}

// UpdateSequence sets the "sequence" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateSequence() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateSequence()
	})
}

// SetNodeName sets the "node_name" field.
func (u *CheckpointUpsertBulk) SetNodeName(v string) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetNodeName(v)
	})
}

// UpdateNodeName sets the "node_name" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateNodeName() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateNodeName()
	})
}

// SetStateBlob sets the "state_blob" field.
func (u *CheckpointUpsertBulk) SetStateBlob(v map[string]interface{}) *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.SetStateBlob(v)
	})
}

// UpdateStateBlob sets the "state_blob" field to the value that was provided on create.
func (u *CheckpointUpsertBulk) UpdateStateBlob() *CheckpointUpsertBulk {
	return u.Update(func(s *CheckpointUpsert) {
		s.UpdateStateBlob()
	})
}

// Exec executes the query.
func (u *CheckpointUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CheckpointCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CheckpointCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CheckpointUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
