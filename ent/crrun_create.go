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
	"github.com/CollideNV/hadron/ent/auditlog"
	"github.com/CollideNV/hadron/ent/checkpoint"
	"github.com/CollideNV/hadron/ent/conversation"
	"github.com/CollideNV/hadron/ent/crrun"
	"github.com/CollideNV/hadron/ent/event"
)

// CRRunCreate is the builder for creating a CRRun entity.
type CRRunCreate struct {
	config
	mutation *CRRunMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetExternalID sets the "external_id" field.
func (_c *CRRunCreate) SetExternalID(v string) *CRRunCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_c *CRRunCreate) SetNillableExternalID(v *string) *CRRunCreate {
	if v != nil {
		_c.SetExternalID(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *CRRunCreate) SetSource(v string) *CRRunCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *CRRunCreate) SetTitle(v string) *CRRunCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CRRunCreate) SetStatus(v crrun.Status) *CRRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CRRunCreate) SetNillableStatus(v *crrun.Status) *CRRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentStage sets the "current_stage" field.
func (_c *CRRunCreate) SetCurrentStage(v string) *CRRunCreate {
	_c.mutation.SetCurrentStage(v)
	return _c
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_c *CRRunCreate) SetNillableCurrentStage(v *string) *CRRunCreate {
	if v != nil {
		_c.SetCurrentStage(*v)
	}
	return _c
}

// SetPauseReason sets the "pause_reason" field.
func (_c *CRRunCreate) SetPauseReason(v string) *CRRunCreate {
	_c.mutation.SetPauseReason(v)
	return _c
}

// SetNillablePauseReason sets the "pause_reason" field if the given value is not nil.
func (_c *CRRunCreate) SetNillablePauseReason(v *string) *CRRunCreate {
	if v != nil {
		_c.SetPauseReason(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *CRRunCreate) SetErrorMessage(v string) *CRRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *CRRunCreate) SetNillableErrorMessage(v *string) *CRRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *CRRunCreate) SetCostUsd(v float64) *CRRunCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_c *CRRunCreate) SetNillableCostUsd(v *float64) *CRRunCreate {
	if v != nil {
		_c.SetCostUsd(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *CRRunCreate) SetInputTokens(v int64) *CRRunCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *CRRunCreate) SetNillableInputTokens(v *int64) *CRRunCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *CRRunCreate) SetOutputTokens(v int64) *CRRunCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *CRRunCreate) SetNillableOutputTokens(v *int64) *CRRunCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetConfigSnapshot sets the "config_snapshot" field.
func (_c *CRRunCreate) SetConfigSnapshot(v map[string]interface{}) *CRRunCreate {
	_c.mutation.SetConfigSnapshot(v)
	return _c
}

// SetRawRequest sets the "raw_request" field.
func (_c *CRRunCreate) SetRawRequest(v map[string]interface{}) *CRRunCreate {
	_c.mutation.SetRawRequest(v)
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *CRRunCreate) SetPodID(v string) *CRRunCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *CRRunCreate) SetNillablePodID(v *string) *CRRunCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *CRRunCreate) SetLastInteractionAt(v time.Time) *CRRunCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *CRRunCreate) SetNillableLastInteractionAt(v *time.Time) *CRRunCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetResumeRequestedAt sets the "resume_requested_at" field.
func (_c *CRRunCreate) SetResumeRequestedAt(v time.Time) *CRRunCreate {
	_c.mutation.SetResumeRequestedAt(v)
	return _c
}

// SetNillableResumeRequestedAt sets the "resume_requested_at" field if the given value is not nil.
func (_c *CRRunCreate) SetNillableResumeRequestedAt(v *time.Time) *CRRunCreate {
	if v != nil {
		_c.SetResumeRequestedAt(*v)
	}
	return _c
}

// SetWorkerLog sets the "worker_log" field.
func (_c *CRRunCreate) SetWorkerLog(v string) *CRRunCreate {
	_c.mutation.SetWorkerLog(v)
	return _c
}

// SetNillableWorkerLog sets the "worker_log" field if the given value is not nil.
func (_c *CRRunCreate) SetNillableWorkerLog(v *string) *CRRunCreate {
	if v != nil {
		_c.SetWorkerLog(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CRRunCreate) SetCreatedAt(v time.Time) *CRRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CRRunCreate) SetNillableCreatedAt(v *time.Time) *CRRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CRRunCreate) SetUpdatedAt(v time.Time) *CRRunCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CRRunCreate) SetNillableUpdatedAt(v *time.Time) *CRRunCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CRRunCreate) SetID(v string) *CRRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_c *CRRunCreate) AddCheckpointIDs(ids ...int) *CRRunCreate {
	_c.mutation.AddCheckpointIDs(ids...)
	return _c
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_c *CRRunCreate) AddCheckpoints(v ...*Checkpoint) *CRRunCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCheckpointIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *CRRunCreate) AddEventIDs(ids ...int64) *CRRunCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *CRRunCreate) AddEvents(v ...*Event) *CRRunCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_c *CRRunCreate) AddConversationIDs(ids ...int) *CRRunCreate {
	_c.mutation.AddConversationIDs(ids...)
	return _c
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_c *CRRunCreate) AddConversations(v ...*Conversation) *CRRunCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddConversationIDs(ids...)
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by IDs.
func (_c *CRRunCreate) AddAuditLogIDs(ids ...int) *CRRunCreate {
	_c.mutation.AddAuditLogIDs(ids...)
	return _c
}

// AddAuditLogs adds the "audit_logs" edges to the AuditLog entity.
func (_c *CRRunCreate) AddAuditLogs(v ...*AuditLog) *CRRunCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAuditLogIDs(ids...)
}

// Mutation returns the CRRunMutation object of the builder.
func (_c *CRRunCreate) Mutation() *CRRunMutation {
	return _c.mutation
}

// Save creates the CRRun in the database.
func (_c *CRRunCreate) Save(ctx context.Context) (*CRRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CRRunCreate) SaveX(ctx context.Context) *CRRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CRRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CRRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CRRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := crrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		v := crrun.DefaultCostUsd
		_c.mutation.SetCostUsd(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := crrun.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := crrun.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := crrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := crrun.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CRRunCreate) check() error {
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "CRRun.source"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "CRRun.title"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CRRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := crrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CRRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		return &ValidationError{Name: "cost_usd", err: errors.New(`ent: missing required field "CRRun.cost_usd"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "CRRun.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "CRRun.output_tokens"`)}
	}
	if _, ok := _c.mutation.ConfigSnapshot(); !ok {
		return &ValidationError{Name: "config_snapshot", err: errors.New(`ent: missing required field "CRRun.config_snapshot"`)}
	}
	if _, ok := _c.mutation.RawRequest(); !ok {
		return &ValidationError{Name: "raw_request", err: errors.New(`ent: missing required field "CRRun.raw_request"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CRRun.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CRRun.updated_at"`)}
	}
	return nil
}

func (_c *CRRunCreate) sqlSave(ctx context.Context) (*CRRun, error) {
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
			return nil, fmt.Errorf("unexpected CRRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CRRunCreate) createSpec() (*CRRun, *sqlgraph.CreateSpec) {
	var (
		_node = &CRRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(crrun.Table, sqlgraph.NewFieldSpec(crrun.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(crrun.FieldExternalID, field.TypeString, value)
		_node.ExternalID = &value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(crrun.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(crrun.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(crrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentStage(); ok {
		_spec.SetField(crrun.FieldCurrentStage, field.TypeString, value)
		_node.CurrentStage = &value
	}
	if value, ok := _c.mutation.PauseReason(); ok {
		_spec.SetField(crrun.FieldPauseReason, field.TypeString, value)
		_node.PauseReason = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(crrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(crrun.FieldCostUsd, field.TypeFloat64, value)
		_node.CostUsd = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(crrun.FieldInputTokens, field.TypeInt64, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(crrun.FieldOutputTokens, field.TypeInt64, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.ConfigSnapshot(); ok {
		_spec.SetField(crrun.FieldConfigSnapshot, field.TypeJSON, value)
		_node.ConfigSnapshot = value
	}
	if value, ok := _c.mutation.RawRequest(); ok {
		_spec.SetField(crrun.FieldRawRequest, field.TypeJSON, value)
		_node.RawRequest = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(crrun.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(crrun.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if value, ok := _c.mutation.ResumeRequestedAt(); ok {
		_spec.SetField(crrun.FieldResumeRequestedAt, field.TypeTime, value)
		_node.ResumeRequestedAt = &value
	}
	if value, ok := _c.mutation.WorkerLog(); ok {
		_spec.SetField(crrun.FieldWorkerLog, field.TypeString, value)
		_node.WorkerLog = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(crrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(crrun.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   crrun.CheckpointsTable,
			Columns: []string{crrun.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   crrun.EventsTable,
			Columns: []string{crrun.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ConversationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   crrun.ConversationsTable,
			Columns: []string{crrun.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuditLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   crrun.AuditLogsTable,
			Columns: []string{crrun.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeInt),
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
//	client.CRRun.Create().
//		SetExternalID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CRRunUpsert) {
//			SetExternalID(v+v).
//		}).
//		Exec(ctx)
func (_c *CRRunCreate) OnConflict(opts ...sql.ConflictOption) *CRRunUpsertOne {
	_c.conflict = opts
	return &CRRunUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CRRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CRRunCreate) OnConflictColumns(columns ...string) *CRRunUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CRRunUpsertOne{
		create: _c,
	}
}

type (
	// CRRunUpsertOne is the builder for "upsert"-ing
	//  one CRRun node.
	CRRunUpsertOne struct {
		create *CRRunCreate
	}

	// CRRunUpsert is the "OnConflict" setter.
	CRRunUpsert struct {
		*sql.UpdateSet
	}
)

// SetExternalID sets the "external_id" field.
func (u *CRRunUpsert) SetExternalID(v string) *CRRunUpsert {
	u.Set(crrun.FieldExternalID, v)
	return u
}

// UpdateExternalID sets the "external_id" field to the value that was provided on create.
func (u *CRRunUpsert) UpdateExternalID() *CRRunUpsert {
	u.SetExcluded(crrun.FieldExternalID)
	return u
}

// ClearExternalID clears the value of the "external_id" field.
func (u *CRRunUpsert) ClearExternalID() *CRRunUpsert {
	u.SetNull(crrun.FieldExternalID)
	return u
}

// SetSource sets the "source" field.
func (u *CRRunUpsert) SetSource(v string) *CRRunUpsert {
	u.Set(crrun.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *CRRunUpsert) UpdateSource() *CRRunUpsert {
	u.SetExcluded(crrun.FieldSource)
	return u
}

// SetTitle sets the "title" field.
func (u *CRRunUpsert) SetTitle(v string) *CRRunUpsert {
	u.Set(crrun.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CRRunUpsert) UpdateTitle() *CRRunUpsert {
	u.SetExcluded(crrun.FieldTitle)
	return u
}

// SetStatus sets the "status" field.
func (u *CRRunUpsert) SetStatus(v crrun.Status) *CRRunUpsert {
	u.Set(crrun.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CRRunUpsert) UpdateStatus() *CRRunUpsert {
	u.SetExcluded(crrun.FieldStatus)
	return u
}

// SetCurrentStage sets the "current_stage" field.
func (u *CRRunUpsert) SetCurrentStage(v string) *CRRunUpsert {
	u.Set(crrun.FieldCurrentStage, v)
	return u
}

// UpdateCurrentStage sets the "current_stage" field to the value that was provided on create.
func (u *CRRunUpsert) UpdateCurrentStage() *CRRunUpsert {
	u.SetExcluded(crrun.FieldCurrentStage)
	return u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (u *CRRunUpsert) ClearCurrentStage() *CRRunUpsert {
	u.SetNull(crrun.FieldCurrentStage)
	return u
}

// SetPauseReason sets the "pause_reason" field.
func (u *CRRunUpsert) SetPauseReason(v string) *CRRunUpsert {
	u.Set(crrun.FieldPauseReason, v)
	return u
}

// UpdatePauseReason sets the "pause_reason" field to the value that was provided on create.
func (u *CRRunUpsert) UpdatePauseReason() *CRRunUpsert {
	u.SetExcluded(crrun.FieldPauseReason)
	return u
}

// ClearPauseReason clears the value of the "pause_reason" field.
func (u *CRRunUpsert) ClearPauseReason() *CRRunUpsert {
	u.SetNull(crrun.FieldPauseReason)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *CRRunUpsert) SetErrorMessage(v string) *CRRunUpsert {
	u.Set(crrun.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *CRRunUpsert) UpdateErrorMessage() *CRRunUpsert {
	u.SetExcluded(crrun.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *CRRunUpsert) ClearErrorMessage() *CRRunUpsert {
	u.SetNull(crrun.FieldErrorMessage)
	return u
}

// SetCostUsd sets the "cost_usd" field.
func (u *CRRunUpsert) SetCostUsd(v float64) *CRRunUpsert {
	u.Set(crrun.FieldCostUsd, v)
	return u
}

// UpdateCostUsd sets the "cost_usd" field to the value that was provided on create.
func (u *CRRunUpsert) UpdateCostUsd() *CRRunUpsert {
	u.SetExcluded(crrun.FieldCostUsd)
	return u
}

// AddCostUsd adds v to the "cost_usd" field.
func (u *CRRunUpsert) AddCostUsd(v float64) *CRRunUpsert {
	u.Add(crrun.FieldCostUsd, v)
	return u
}

// SetInputTokens sets the "input_tokens" field.
func (u *CRRunUpsert) SetInputTokens(v int64) *CRRunUpsert {
	u.Set(crrun.FieldInputTokens, v)
	return u
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *CRRunUpsert) UpdateInputTokens() *CRRunUpsert {
	u.SetExcluded(crrun.FieldInputTokens)
	return u
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *CRRunUpsert) AddInputTokens(v int64) *CRRunUpsert {
	u.Add(crrun.FieldInputTokens, v)
	return u
}

// SetOutputTokens sets the "output_tokens" field.
func (u *CRRunUpsert) SetOutputTokens(v int64) *CRRunUpsert {
	u.Set(crrun.FieldOutputTokens, v)
	return u
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *CRRunUpsert) UpdateOutputTokens() *CRRunUpsert {
	u.SetExcluded(crrun.FieldOutputTokens)
	return u
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *CRRunUpsert) AddOutputTokens(v int64) *CRRunUpsert {
	u.Add(crrun.FieldOutputTokens, v)
	return u
}

// SetConfigSnapshot sets the "config_snapshot" field.
func (u *CRRunUpsert) SetConfigSnapshot(v map[string]interface{}) *CRRunUpsert {
	u.Set(crrun.FieldConfigSnapshot, v)
	return u
}

// UpdateConfigSnapshot sets the "config_snapshot" field to the value that was provided on create.
func (u *CRRunUpsert) UpdateConfigSnapshot() *CRRunUpsert {
	u.SetExcluded(crrun.FieldConfigSnapshot)
	return u
}

// SetRawRequest sets the "raw_request" field.
func (u *CRRunUpsert) SetRawRequest(v map[string]interface{}) *CRRunUpsert {
	u.Set(crrun.FieldRawRequest, v)
	return u
}

// UpdateRawRequest sets the "raw_request" field to the value that was provided on create.
func (u *CRRunUpsert) UpdateRawRequest() *CRRunUpsert {
	u.SetExcluded(crrun.FieldRawRequest)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *CRRunUpsert) SetPodID(v string) *CRRunUpsert {
	u.Set(crrun.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *CRRunUpsert) UpdatePodID() *CRRunUpsert {
	u.SetExcluded(crrun.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *CRRunUpsert) ClearPodID() *CRRunUpsert {
	u.SetNull(crrun.FieldPodID)
	return u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *CRRunUpsert) SetLastInteractionAt(v time.Time) *CRRunUpsert {
	u.Set(crrun.FieldLastInteractionAt, v)
	return u
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *CRRunUpsert) UpdateLastInteractionAt() *CRRunUpsert {
	u.SetExcluded(crrun.FieldLastInteractionAt)
	return u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *CRRunUpsert) ClearLastInteractionAt() *CRRunUpsert {
	u.SetNull(crrun.FieldLastInteractionAt)
	return u
}

// SetResumeRequestedAt sets the "resume_requested_at" field.
func (u *CRRunUpsert) SetResumeRequestedAt(v time.Time) *CRRunUpsert {
	u.Set(crrun.FieldResumeRequestedAt, v)
	return u
}

// UpdateResumeRequestedAt sets the "resume_requested_at" field to the value that was provided on create.
func (u *CRRunUpsert) UpdateResumeRequestedAt() *CRRunUpsert {
	u.SetExcluded(crrun.FieldResumeRequestedAt)
	return u
}

// ClearResumeRequestedAt clears the value of the "resume_requested_at" field.
func (u *CRRunUpsert) ClearResumeRequestedAt() *CRRunUpsert {
	u.SetNull(crrun.FieldResumeRequestedAt)
	return u
}

// SetWorkerLog sets the "worker_log" field.
func (u *CRRunUpsert) SetWorkerLog(v string) *CRRunUpsert {
	u.Set(crrun.FieldWorkerLog, v)
	return u
}

// UpdateWorkerLog sets the "worker_log" field to the value that was provided on create.
func (u *CRRunUpsert) UpdateWorkerLog() *CRRunUpsert {
	u.SetExcluded(crrun.FieldWorkerLog)
	return u
}

// ClearWorkerLog clears the value of the "worker_log" field.
func (u *CRRunUpsert) ClearWorkerLog() *CRRunUpsert {
	u.SetNull(crrun.FieldWorkerLog)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CRRunUpsert) SetUpdatedAt(v time.Time) *CRRunUpsert {
	u.Set(crrun.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CRRunUpsert) UpdateUpdatedAt() *CRRunUpsert {
	u.SetExcluded(crrun.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CRRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(crrun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CRRunUpsertOne) UpdateNewValues() *CRRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(crrun.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(crrun.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CRRun.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CRRunUpsertOne) Ignore() *CRRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CRRunUpsertOne) DoNothing() *CRRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CRRunCreate.OnConflict
// documentation for more info.
func (u *CRRunUpsertOne) Update(set func(*CRRunUpsert)) *CRRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CRRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetExternalID sets the "external_id" field.
func (u *CRRunUpsertOne) SetExternalID(v string) *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.SetExternalID(v)
	})
}

// UpdateExternalID sets the "external_id" field to the value that was provided on create.
func (u *CRRunUpsertOne) UpdateExternalID() *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateExternalID()
	})
}

// ClearExternalID clears the value of the "external_id" field.
func (u *CRRunUpsertOne) ClearExternalID() *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.ClearExternalID()
	})
}

// SetSource sets the "source" field.
func (u *CRRunUpsertOne) SetSource(v string) *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *CRRunUpsertOne) UpdateSource() *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateSource()
	})
}

// SetTitle sets the "title" field.
func (u *CRRunUpsertOne) SetTitle(v string) *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CRRunUpsertOne) UpdateTitle() *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateTitle()
	})
}

// SetStatus sets the "status" field.
func (u *CRRunUpsertOne) SetStatus(v crrun.Status) *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CRRunUpsertOne) UpdateStatus() *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateStatus()
	})
}

// SetCurrentStage sets the "current_stage" field.
func (u *CRRunUpsertOne) SetCurrentStage(v string) *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.SetCurrentStage(v)
	})
}

// UpdateCurrentStage sets the "current_stage" field to the value that was provided on create.
func (u *CRRunUpsertOne) UpdateCurrentStage() *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateCurrentStage()
	})
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (u *CRRunUpsertOne) ClearCurrentStage() *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.ClearCurrentStage()
	})
}

// SetPauseReason sets the "pause_reason" field.
func (u *CRRunUpsertOne) SetPauseReason(v string) *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.SetPauseReason(v)
	})
}

// UpdatePauseReason sets the "pause_reason" field to the value that was provided on create.
func (u *CRRunUpsertOne) UpdatePauseReason() *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdatePauseReason()
	})
}

// ClearPauseReason clears the value of the "pause_reason" field.
func (u *CRRunUpsertOne) ClearPauseReason() *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.ClearPauseReason()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *CRRunUpsertOne) SetErrorMessage(v string) *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *CRRunUpsertOne) UpdateErrorMessage() *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *CRRunUpsertOne) ClearErrorMessage() *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCostUsd sets the "cost_usd" field.
func (u *CRRunUpsertOne) SetCostUsd(v float64) *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.SetCostUsd(v)
	})
}

// AddCostUsd adds v to the "cost_usd" field.
func (u *CRRunUpsertOne) AddCostUsd(v float64) *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.AddCostUsd(v)
	})
}

// UpdateCostUsd sets the "cost_usd" field to the value that was provided on create.
func (u *CRRunUpsertOne) UpdateCostUsd() *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateCostUsd()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *CRRunUpsertOne) SetInputTokens(v int64) *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *CRRunUpsertOne) AddInputTokens(v int64) *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *CRRunUpsertOne) UpdateInputTokens() *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *CRRunUpsertOne) SetOutputTokens(v int64) *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *CRRunUpsertOne) AddOutputTokens(v int64) *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *CRRunUpsertOne) UpdateOutputTokens() *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetConfigSnapshot sets the "config_snapshot" field.
func (u *CRRunUpsertOne) SetConfigSnapshot(v map[string]interface{}) *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.SetConfigSnapshot(v)
	})
}

// UpdateConfigSnapshot sets the "config_snapshot" field to the value that was provided on create.
func (u *CRRunUpsertOne) UpdateConfigSnapshot() *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateConfigSnapshot()
	})
}

// SetRawRequest sets the "raw_request" field.
func (u *CRRunUpsertOne) SetRawRequest(v map[string]interface{}) *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.SetRawRequest(v)
	})
}

// UpdateRawRequest sets the "raw_request" field to the value that was provided on create.
func (u *CRRunUpsertOne) UpdateRawRequest() *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateRawRequest()
	})
}

// SetPodID sets the "pod_id" field.
func (u *CRRunUpsertOne) SetPodID(v string) *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *CRRunUpsertOne) UpdatePodID() *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *CRRunUpsertOne) ClearPodID() *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.ClearPodID()
	})
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *CRRunUpsertOne) SetLastInteractionAt(v time.Time) *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.SetLastInteractionAt(v)
	})
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *CRRunUpsertOne) UpdateLastInteractionAt() *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateLastInteractionAt()
	})
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *CRRunUpsertOne) ClearLastInteractionAt() *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.ClearLastInteractionAt()
	})
}

// SetResumeRequestedAt sets the "resume_requested_at" field.
func (u *CRRunUpsertOne) SetResumeRequestedAt(v time.Time) *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.SetResumeRequestedAt(v)
	})
}

// UpdateResumeRequestedAt sets the "resume_requested_at" field to the value that was provided on create.
func (u *CRRunUpsertOne) UpdateResumeRequestedAt() *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateResumeRequestedAt()
	})
}

// ClearResumeRequestedAt clears the value of the "resume_requested_at" field.
func (u *CRRunUpsertOne) ClearResumeRequestedAt() *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.ClearResumeRequestedAt()
	})
}

// SetWorkerLog sets the "worker_log" field.
func (u *CRRunUpsertOne) SetWorkerLog(v string) *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.SetWorkerLog(v)
	})
}

// UpdateWorkerLog sets the "worker_log" field to the value that was provided on create.
func (u *CRRunUpsertOne) UpdateWorkerLog() *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateWorkerLog()
	})
}

// ClearWorkerLog clears the value of the "worker_log" field.
func (u *CRRunUpsertOne) ClearWorkerLog() *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.ClearWorkerLog()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CRRunUpsertOne) SetUpdatedAt(v time.Time) *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CRRunUpsertOne) UpdateUpdatedAt() *CRRunUpsertOne {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CRRunUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CRRunCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CRRunUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CRRunUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CRRunUpsertOne.ID is not supported by MySQL driver. Use CRRunUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CRRunUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CRRunCreateBulk is the builder for creating many CRRun entities in bulk.
type CRRunCreateBulk struct {
	config
	err      error
	builders []*CRRunCreate
	conflict []sql.ConflictOption
}

// Save creates the CRRun entities in the database.
func (_c *CRRunCreateBulk) Save(ctx context.Context) ([]*CRRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CRRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CRRunMutation)
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
func (_c *CRRunCreateBulk) SaveX(ctx context.Context) []*CRRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CRRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CRRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CRRun.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CRRunUpsert) {
//			SetExternalID(v+v).
//		}).
//		Exec(ctx)
func (_c *CRRunCreateBulk) OnConflict(opts ...sql.ConflictOption) *CRRunUpsertBulk {
	_c.conflict = opts
	return &CRRunUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CRRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CRRunCreateBulk) OnConflictColumns(columns ...string) *CRRunUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CRRunUpsertBulk{
		create: _c,
	}
}

// CRRunUpsertBulk is the builder for "upsert"-ing
// a bulk of CRRun nodes.
type CRRunUpsertBulk struct {
	create *CRRunCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CRRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(crrun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CRRunUpsertBulk) UpdateNewValues() *CRRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(crrun.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(crrun.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CRRun.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CRRunUpsertBulk) Ignore() *CRRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CRRunUpsertBulk) DoNothing() *CRRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CRRunCreateBulk.OnConflict
// documentation for more info.
func (u *CRRunUpsertBulk) Update(set func(*CRRunUpsert)) *CRRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CRRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetExternalID sets the "external_id" field.
func (u *CRRunUpsertBulk) SetExternalID(v string) *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.SetExternalID(v)
	})
}

// UpdateExternalID sets the "external_id" field to the value that was provided on create.
func (u *CRRunUpsertBulk) UpdateExternalID() *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateExternalID()
	})
}

// ClearExternalID clears the value of the "external_id" field.
func (u *CRRunUpsertBulk) ClearExternalID() *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.ClearExternalID()
	})
}

// SetSource sets the "source" field.
func (u *CRRunUpsertBulk) SetSource(v string) *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *CRRunUpsertBulk) UpdateSource() *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateSource()
	})
}

// SetTitle sets the "title" field.
func (u *CRRunUpsertBulk) SetTitle(v string) *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CRRunUpsertBulk) UpdateTitle() *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateTitle()
	})
}

// SetStatus sets the "status" field.
func (u *CRRunUpsertBulk) SetStatus(v crrun.Status) *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CRRunUpsertBulk) UpdateStatus() *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateStatus()
	})
}

// SetCurrentStage sets the "current_stage" field.
func (u *CRRunUpsertBulk) SetCurrentStage(v string) *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.SetCurrentStage(v)
	})
}

// UpdateCurrentStage sets the "current_stage" field to the value that was provided on create.
func (u *CRRunUpsertBulk) UpdateCurrentStage() *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateCurrentStage()
	})
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (u *CRRunUpsertBulk) ClearCurrentStage() *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.ClearCurrentStage()
	})
}

// SetPauseReason sets the "pause_reason" field.
func (u *CRRunUpsertBulk) SetPauseReason(v string) *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.SetPauseReason(v)
	})
}

// UpdatePauseReason sets the "pause_reason" field to the value that was provided on create.
func (u *CRRunUpsertBulk) UpdatePauseReason() *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdatePauseReason()
	})
}

// ClearPauseReason clears the value of the "pause_reason" field.
func (u *CRRunUpsertBulk) ClearPauseReason() *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.ClearPauseReason()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *CRRunUpsertBulk) SetErrorMessage(v string) *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *CRRunUpsertBulk) UpdateErrorMessage() *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *CRRunUpsertBulk) ClearErrorMessage() *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCostUsd sets the "cost_usd" field.
func (u *CRRunUpsertBulk) SetCostUsd(v float64) *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.SetCostUsd(v)
	})
}

// AddCostUsd adds v to the "cost_usd" field.
func (u *CRRunUpsertBulk) AddCostUsd(v float64) *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.AddCostUsd(v)
	})
}

// UpdateCostUsd sets the "cost_usd" field to the value that was provided on create.
func (u *CRRunUpsertBulk) UpdateCostUsd() *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateCostUsd()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *CRRunUpsertBulk) SetInputTokens(v int64) *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *CRRunUpsertBulk) AddInputTokens(v int64) *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *CRRunUpsertBulk) UpdateInputTokens() *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *CRRunUpsertBulk) SetOutputTokens(v int64) *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *CRRunUpsertBulk) AddOutputTokens(v int64) *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *CRRunUpsertBulk) UpdateOutputTokens() *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetConfigSnapshot sets the "config_snapshot" field.
func (u *CRRunUpsertBulk) SetConfigSnapshot(v map[string]interface{}) *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.SetConfigSnapshot(v)
	})
}

// UpdateConfigSnapshot sets the "config_snapshot" field to the value that was provided on create.
func (u *CRRunUpsertBulk) UpdateConfigSnapshot() *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateConfigSnapshot()
	})
}

// SetRawRequest sets the "raw_request" field.
func (u *CRRunUpsertBulk) SetRawRequest(v map[string]interface{}) *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.SetRawRequest(v)
	})
}

// UpdateRawRequest sets the "raw_request" field to the value that was provided on create.
func (u *CRRunUpsertBulk) UpdateRawRequest() *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateRawRequest()
	})
}

// SetPodID sets the "pod_id" field.
func (u *CRRunUpsertBulk) SetPodID(v string) *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *CRRunUpsertBulk) UpdatePodID() *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *CRRunUpsertBulk) ClearPodID() *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.ClearPodID()
	})
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *CRRunUpsertBulk) SetLastInteractionAt(v time.Time) *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.SetLastInteractionAt(v)
	})
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *CRRunUpsertBulk) UpdateLastInteractionAt() *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateLastInteractionAt()
	})
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *CRRunUpsertBulk) ClearLastInteractionAt() *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.ClearLastInteractionAt()
	})
}

// SetResumeRequestedAt sets the "resume_requested_at" field.
func (u *CRRunUpsertBulk) SetResumeRequestedAt(v time.Time) *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.SetResumeRequestedAt(v)
	})
}

// UpdateResumeRequestedAt sets the "resume_requested_at" field to the value that was provided on create.
func (u *CRRunUpsertBulk) UpdateResumeRequestedAt() *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateResumeRequestedAt()
	})
}

// ClearResumeRequestedAt clears the value of the "resume_requested_at" field.
func (u *CRRunUpsertBulk) ClearResumeRequestedAt() *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.ClearResumeRequestedAt()
	})
}

// SetWorkerLog sets the "worker_log" field.
func (u *CRRunUpsertBulk) SetWorkerLog(v string) *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.SetWorkerLog(v)
	})
}

// UpdateWorkerLog sets the "worker_log" field to the value that was provided on create.
func (u *CRRunUpsertBulk) UpdateWorkerLog() *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateWorkerLog()
	})
}

// ClearWorkerLog clears the value of the "worker_log" field.
func (u *CRRunUpsertBulk) ClearWorkerLog() *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.ClearWorkerLog()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CRRunUpsertBulk) SetUpdatedAt(v time.Time) *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CRRunUpsertBulk) UpdateUpdatedAt() *CRRunUpsertBulk {
	return u.Update(func(s *CRRunUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CRRunUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CRRunCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CRRunCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CRRunUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
