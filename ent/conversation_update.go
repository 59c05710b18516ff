// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/CollideNV/hadron/ent/conversation"
	"github.com/CollideNV/hadron/ent/crrun"
	"github.com/CollideNV/hadron/ent/predicate"
)

// ConversationUpdate is the builder for updating Conversation entities.
type ConversationUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationMutation
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdate) Where(ps ...predicate.Conversation) *ConversationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCrID sets the "cr_id" field.
func (_u *ConversationUpdate) SetCrID(v string) *ConversationUpdate {
	_u.mutation.SetCrID(v)
	return _u
}

// SetNillableCrID sets the "cr_id" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableCrID(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetCrID(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *ConversationUpdate) SetKey(v string) *ConversationUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableKey(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *ConversationUpdate) SetRole(v string) *ConversationUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableRole(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetRepo sets the "repo" field.
func (_u *ConversationUpdate) SetRepo(v string) *ConversationUpdate {
	_u.mutation.SetRepo(v)
	return _u
}

// SetNillableRepo sets the "repo" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableRepo(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetRepo(*v)
	}
	return _u
}

// ClearRepo clears the value of the "repo" field.
func (_u *ConversationUpdate) ClearRepo() *ConversationUpdate {
	_u.mutation.ClearRepo()
	return _u
}

// SetMessages sets the "messages" field.
func (_u *ConversationUpdate) SetMessages(v []map[string]interface{}) *ConversationUpdate {
	_u.mutation.SetMessages(v)
	return _u
}

// AppendMessages appends value to the "messages" field.
func (_u *ConversationUpdate) AppendMessages(v []map[string]interface{}) *ConversationUpdate {
	_u.mutation.AppendMessages(v)
	return _u
}

// SetRunID sets the "run" edge to the CRRun entity by ID.
func (_u *ConversationUpdate) SetRunID(id string) *ConversationUpdate {
	_u.mutation.SetRunID(id)
	return _u
}

// SetRun sets the "run" edge to the CRRun entity.
func (_u *ConversationUpdate) SetRun(v *CRRun) *ConversationUpdate {
	return _u.SetRunID(v.ID)
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdate) Mutation() *ConversationMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the CRRun entity.
func (_u *ConversationUpdate) ClearRun() *ConversationUpdate {
	_u.mutation.ClearRun()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Conversation.run"`)
	}
	return nil
}

func (_u *ConversationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(conversation.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(conversation.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Repo(); ok {
		_spec.SetField(conversation.FieldRepo, field.TypeString, value)
	}
	if _u.mutation.RepoCleared() {
		_spec.ClearField(conversation.FieldRepo, field.TypeString)
	}
	if value, ok := _u.mutation.Messages(); ok {
		_spec.SetField(conversation.FieldMessages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMessages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conversation.FieldMessages, value)
		})
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conversation.RunTable,
			Columns: []string{conversation.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(crrun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conversation.RunTable,
			Columns: []string{conversation.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(crrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationUpdateOne is the builder for updating a single Conversation entity.
type ConversationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationMutation
}

// SetCrID sets the "cr_id" field.
func (_u *ConversationUpdateOne) SetCrID(v string) *ConversationUpdateOne {
	_u.mutation.SetCrID(v)
	return _u
}

// SetNillableCrID sets the "cr_id" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableCrID(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetCrID(*v)
	}
	return _u
}

// SetKey sets the "key" field.
func (_u *ConversationUpdateOne) SetKey(v string) *ConversationUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableKey(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *ConversationUpdateOne) SetRole(v string) *ConversationUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableRole(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetRepo sets the "repo" field.
func (_u *ConversationUpdateOne) SetRepo(v string) *ConversationUpdateOne {
	_u.mutation.SetRepo(v)
	return _u
}

// SetNillableRepo sets the "repo" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableRepo(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetRepo(*v)
	}
	return _u
}

// ClearRepo clears the value of the "repo" field.
func (_u *ConversationUpdateOne) ClearRepo() *ConversationUpdateOne {
	_u.mutation.ClearRepo()
	return _u
}

// SetMessages sets the "messages" field.
func (_u *ConversationUpdateOne) SetMessages(v []map[string]interface{}) *ConversationUpdateOne {
	_u.mutation.SetMessages(v)
	return _u
}

// AppendMessages appends value to the "messages" field.
func (_u *ConversationUpdateOne) AppendMessages(v []map[string]interface{}) *ConversationUpdateOne {
	_u.mutation.AppendMessages(v)
	return _u
}

// SetRunID sets the "run" edge to the CRRun entity by ID.
func (_u *ConversationUpdateOne) SetRunID(id string) *ConversationUpdateOne {
	_u.mutation.SetRunID(id)
	return _u
}

// SetRun sets the "run" edge to the CRRun entity.
func (_u *ConversationUpdateOne) SetRun(v *CRRun) *ConversationUpdateOne {
	return _u.SetRunID(v.ID)
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdateOne) Mutation() *ConversationMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the CRRun entity.
func (_u *ConversationUpdateOne) ClearRun() *ConversationUpdateOne {
	_u.mutation.ClearRun()
	return _u
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdateOne) Where(ps ...predicate.Conversation) *ConversationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationUpdateOne) Select(field string, fields ...string) *ConversationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Conversation entity.
func (_u *ConversationUpdateOne) Save(ctx context.Context) (*Conversation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdateOne) SaveX(ctx context.Context) *Conversation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Conversation.run"`)
	}
	return nil
}

func (_u *ConversationUpdateOne) sqlSave(ctx context.Context) (_node *Conversation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Conversation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversation.FieldID)
		for _, f := range fields {
			if !conversation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversation.FieldID {
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
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(conversation.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(conversation.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Repo(); ok {
		_spec.SetField(conversation.FieldRepo, field.TypeString, value)
	}
	if _u.mutation.RepoCleared() {
		_spec.ClearField(conversation.FieldRepo, field.TypeString)
	}
	if value, ok := _u.mutation.Messages(); ok {
		_spec.SetField(conversation.FieldMessages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMessages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conversation.FieldMessages, value)
		})
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conversation.RunTable,
			Columns: []string{conversation.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(crrun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conversation.RunTable,
			Columns: []string{conversation.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(crrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Conversation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
