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
	"github.com/CollideNV/hadron/ent/predicate"
)

// InterventionUpdate is the builder for updating Intervention entities.
type InterventionUpdate struct {
	config
	hooks    []Hook
	mutation *InterventionMutation
}

// Where appends a list predicates to the InterventionUpdate builder.
func (_u *InterventionUpdate) Where(ps ...predicate.Intervention) *InterventionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCrID sets the "cr_id" field.
func (_u *InterventionUpdate) SetCrID(v string) *InterventionUpdate {
	_u.mutation.SetCrID(v)
	return _u
}

// SetNillableCrID sets the "cr_id" field if the given value is not nil.
func (_u *InterventionUpdate) SetNillableCrID(v *string) *InterventionUpdate {
	if v != nil {
		_u.SetCrID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *InterventionUpdate) SetKind(v intervention.Kind) *InterventionUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *InterventionUpdate) SetNillableKind(v *intervention.Kind) *InterventionUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *InterventionUpdate) SetKey(v string) *InterventionUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *InterventionUpdate) SetNillableKey(v *string) *InterventionUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *InterventionUpdate) SetPayload(v map[string]interface{}) *InterventionUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *InterventionUpdate) SetExpiresAt(v time.Time) *InterventionUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *InterventionUpdate) SetNillableExpiresAt(v *time.Time) *InterventionUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *InterventionUpdate) ClearExpiresAt() *InterventionUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InterventionUpdate) SetCreatedAt(v time.Time) *InterventionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InterventionUpdate) SetNillableCreatedAt(v *time.Time) *InterventionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the InterventionMutation object of the builder.
func (_u *InterventionUpdate) Mutation() *InterventionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InterventionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterventionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InterventionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterventionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterventionUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := intervention.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Intervention.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *InterventionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(intervention.Table, intervention.Columns, sqlgraph.NewFieldSpec(intervention.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CrID(); ok {
		_spec.SetField(intervention.FieldCrID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(intervention.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(intervention.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(intervention.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(intervention.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(intervention.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(intervention.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{intervention.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InterventionUpdateOne is the builder for updating a single Intervention entity.
type InterventionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InterventionMutation
}

// SetCrID sets the "cr_id" field.
func (_u *InterventionUpdateOne) SetCrID(v string) *InterventionUpdateOne {
	_u.mutation.SetCrID(v)
	return _u
}

// SetNillableCrID sets the "cr_id" field if the given value is not nil.
func (_u *InterventionUpdateOne) SetNillableCrID(v *string) *InterventionUpdateOne {
	if v != nil {
		_u.SetCrID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *InterventionUpdateOne) SetKind(v intervention.Kind) *InterventionUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *InterventionUpdateOne) SetNillableKind(v *intervention.Kind) *InterventionUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *InterventionUpdateOne) SetKey(v string) *InterventionUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *InterventionUpdateOne) SetNillableKey(v *string) *InterventionUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *InterventionUpdateOne) SetPayload(v map[string]interface{}) *InterventionUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *InterventionUpdateOne) SetExpiresAt(v time.Time) *InterventionUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *InterventionUpdateOne) SetNillableExpiresAt(v *time.Time) *InterventionUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *InterventionUpdateOne) ClearExpiresAt() *InterventionUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InterventionUpdateOne) SetCreatedAt(v time.Time) *InterventionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InterventionUpdateOne) SetNillableCreatedAt(v *time.Time) *InterventionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the InterventionMutation object of the builder.
func (_u *InterventionUpdateOne) Mutation() *InterventionMutation {
	return _u.mutation
}

// Where appends a list predicates to the InterventionUpdate builder.
func (_u *InterventionUpdateOne) Where(ps ...predicate.Intervention) *InterventionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InterventionUpdateOne) Select(field string, fields ...string) *InterventionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Intervention entity.
func (_u *InterventionUpdateOne) Save(ctx context.Context) (*Intervention, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterventionUpdateOne) SaveX(ctx context.Context) *Intervention {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InterventionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterventionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterventionUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := intervention.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Intervention.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *InterventionUpdateOne) sqlSave(ctx context.Context) (_node *Intervention, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(intervention.Table, intervention.Columns, sqlgraph.NewFieldSpec(intervention.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Intervention.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, intervention.FieldID)
		for _, f := range fields {
			if !intervention.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != intervention.FieldID {
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
	if value, ok := _u.mutation.CrID(); ok {
		_spec.SetField(intervention.FieldCrID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(intervention.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(intervention.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(intervention.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(intervention.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(intervention.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(intervention.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &Intervention{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{intervention.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
