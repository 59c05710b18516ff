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
	"github.com/CollideNV/hadron/ent/auditlog"
	"github.com/CollideNV/hadron/ent/checkpoint"
	"github.com/CollideNV/hadron/ent/conversation"
	"github.com/CollideNV/hadron/ent/crrun"
	"github.com/CollideNV/hadron/ent/event"
	"github.com/CollideNV/hadron/ent/predicate"
)

// CRRunUpdate is the builder for updating CRRun entities.
type CRRunUpdate struct {
	config
	hooks    []Hook
	mutation *CRRunMutation
}

// Where appends a list predicates to the CRRunUpdate builder.
func (_u *CRRunUpdate) Where(ps ...predicate.CRRun) *CRRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *CRRunUpdate) SetExternalID(v string) *CRRunUpdate {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *CRRunUpdate) SetNillableExternalID(v *string) *CRRunUpdate {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// ClearExternalID clears the value of the "external_id" field.
func (_u *CRRunUpdate) ClearExternalID() *CRRunUpdate {
	_u.mutation.ClearExternalID()
	return _u
}

// SetSource sets the "source" field.
func (_u *CRRunUpdate) SetSource(v string) *CRRunUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *CRRunUpdate) SetNillableSource(v *string) *CRRunUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CRRunUpdate) SetTitle(v string) *CRRunUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CRRunUpdate) SetNillableTitle(v *string) *CRRunUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CRRunUpdate) SetStatus(v crrun.Status) *CRRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CRRunUpdate) SetNillableStatus(v *crrun.Status) *CRRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *CRRunUpdate) SetCurrentStage(v string) *CRRunUpdate {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *CRRunUpdate) SetNillableCurrentStage(v *string) *CRRunUpdate {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (_u *CRRunUpdate) ClearCurrentStage() *CRRunUpdate {
	_u.mutation.ClearCurrentStage()
	return _u
}

// SetPauseReason sets the "pause_reason" field.
func (_u *CRRunUpdate) SetPauseReason(v string) *CRRunUpdate {
	_u.mutation.SetPauseReason(v)
	return _u
}

// SetNillablePauseReason sets the "pause_reason" field if the given value is not nil.
func (_u *CRRunUpdate) SetNillablePauseReason(v *string) *CRRunUpdate {
	if v != nil {
		_u.SetPauseReason(*v)
	}
	return _u
}

// ClearPauseReason clears the value of the "pause_reason" field.
func (_u *CRRunUpdate) ClearPauseReason() *CRRunUpdate {
	_u.mutation.ClearPauseReason()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CRRunUpdate) SetErrorMessage(v string) *CRRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CRRunUpdate) SetNillableErrorMessage(v *string) *CRRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CRRunUpdate) ClearErrorMessage() *CRRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *CRRunUpdate) SetCostUsd(v float64) *CRRunUpdate {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *CRRunUpdate) SetNillableCostUsd(v *float64) *CRRunUpdate {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *CRRunUpdate) AddCostUsd(v float64) *CRRunUpdate {
	_u.mutation.AddCostUsd(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *CRRunUpdate) SetInputTokens(v int64) *CRRunUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *CRRunUpdate) SetNillableInputTokens(v *int64) *CRRunUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *CRRunUpdate) AddInputTokens(v int64) *CRRunUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *CRRunUpdate) SetOutputTokens(v int64) *CRRunUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *CRRunUpdate) SetNillableOutputTokens(v *int64) *CRRunUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *CRRunUpdate) AddOutputTokens(v int64) *CRRunUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetConfigSnapshot sets the "config_snapshot" field.
func (_u *CRRunUpdate) SetConfigSnapshot(v map[string]interface{}) *CRRunUpdate {
	_u.mutation.SetConfigSnapshot(v)
	return _u
}

// SetRawRequest sets the "raw_request" field.
func (_u *CRRunUpdate) SetRawRequest(v map[string]interface{}) *CRRunUpdate {
	_u.mutation.SetRawRequest(v)
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *CRRunUpdate) SetPodID(v string) *CRRunUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *CRRunUpdate) SetNillablePodID(v *string) *CRRunUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *CRRunUpdate) ClearPodID() *CRRunUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *CRRunUpdate) SetLastInteractionAt(v time.Time) *CRRunUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *CRRunUpdate) SetNillableLastInteractionAt(v *time.Time) *CRRunUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *CRRunUpdate) ClearLastInteractionAt() *CRRunUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetResumeRequestedAt sets the "resume_requested_at" field.
func (_u *CRRunUpdate) SetResumeRequestedAt(v time.Time) *CRRunUpdate {
	_u.mutation.SetResumeRequestedAt(v)
	return _u
}

// SetNillableResumeRequestedAt sets the "resume_requested_at" field if the given value is not nil.
func (_u *CRRunUpdate) SetNillableResumeRequestedAt(v *time.Time) *CRRunUpdate {
	if v != nil {
		_u.SetResumeRequestedAt(*v)
	}
	return _u
}

// ClearResumeRequestedAt clears the value of the "resume_requested_at" field.
func (_u *CRRunUpdate) ClearResumeRequestedAt() *CRRunUpdate {
	_u.mutation.ClearResumeRequestedAt()
	return _u
}

// SetWorkerLog sets the "worker_log" field.
func (_u *CRRunUpdate) SetWorkerLog(v string) *CRRunUpdate {
	_u.mutation.SetWorkerLog(v)
	return _u
}

// SetNillableWorkerLog sets the "worker_log" field if the given value is not nil.
func (_u *CRRunUpdate) SetNillableWorkerLog(v *string) *CRRunUpdate {
	if v != nil {
		_u.SetWorkerLog(*v)
	}
	return _u
}

// ClearWorkerLog clears the value of the "worker_log" field.
func (_u *CRRunUpdate) ClearWorkerLog() *CRRunUpdate {
	_u.mutation.ClearWorkerLog()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CRRunUpdate) SetUpdatedAt(v time.Time) *CRRunUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *CRRunUpdate) AddCheckpointIDs(ids ...int) *CRRunUpdate {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *CRRunUpdate) AddCheckpoints(v ...*Checkpoint) *CRRunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *CRRunUpdate) AddEventIDs(ids ...int64) *CRRunUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *CRRunUpdate) AddEvents(v ...*Event) *CRRunUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_u *CRRunUpdate) AddConversationIDs(ids ...int) *CRRunUpdate {
	_u.mutation.AddConversationIDs(ids...)
	return _u
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_u *CRRunUpdate) AddConversations(v ...*Conversation) *CRRunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversationIDs(ids...)
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by IDs.
func (_u *CRRunUpdate) AddAuditLogIDs(ids ...int) *CRRunUpdate {
	_u.mutation.AddAuditLogIDs(ids...)
	return _u
}

// AddAuditLogs adds the "audit_logs" edges to the AuditLog entity.
func (_u *CRRunUpdate) AddAuditLogs(v ...*AuditLog) *CRRunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditLogIDs(ids...)
}

// Mutation returns the CRRunMutation object of the builder.
func (_u *CRRunUpdate) Mutation() *CRRunMutation {
	return _u.mutation
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *CRRunUpdate) ClearCheckpoints() *CRRunUpdate {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *CRRunUpdate) RemoveCheckpointIDs(ids ...int) *CRRunUpdate {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *CRRunUpdate) RemoveCheckpoints(v ...*Checkpoint) *CRRunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *CRRunUpdate) ClearEvents() *CRRunUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *CRRunUpdate) RemoveEventIDs(ids ...int64) *CRRunUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *CRRunUpdate) RemoveEvents(v ...*Event) *CRRunUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearConversations clears all "conversations" edges to the Conversation entity.
func (_u *CRRunUpdate) ClearConversations() *CRRunUpdate {
	_u.mutation.ClearConversations()
	return _u
}

// RemoveConversationIDs removes the "conversations" edge to Conversation entities by IDs.
func (_u *CRRunUpdate) RemoveConversationIDs(ids ...int) *CRRunUpdate {
	_u.mutation.RemoveConversationIDs(ids...)
	return _u
}

// RemoveConversations removes "conversations" edges to Conversation entities.
func (_u *CRRunUpdate) RemoveConversations(v ...*Conversation) *CRRunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversationIDs(ids...)
}

// ClearAuditLogs clears all "audit_logs" edges to the AuditLog entity.
func (_u *CRRunUpdate) ClearAuditLogs() *CRRunUpdate {
	_u.mutation.ClearAuditLogs()
	return _u
}

// RemoveAuditLogIDs removes the "audit_logs" edge to AuditLog entities by IDs.
func (_u *CRRunUpdate) RemoveAuditLogIDs(ids ...int) *CRRunUpdate {
	_u.mutation.RemoveAuditLogIDs(ids...)
	return _u
}

// RemoveAuditLogs removes "audit_logs" edges to AuditLog entities.
func (_u *CRRunUpdate) RemoveAuditLogs(v ...*AuditLog) *CRRunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CRRunUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CRRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CRRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CRRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CRRunUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := crrun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CRRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := crrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CRRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CRRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(crrun.Table, crrun.Columns, sqlgraph.NewFieldSpec(crrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(crrun.FieldExternalID, field.TypeString, value)
	}
	if _u.mutation.ExternalIDCleared() {
		_spec.ClearField(crrun.FieldExternalID, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(crrun.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(crrun.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(crrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(crrun.FieldCurrentStage, field.TypeString, value)
	}
	if _u.mutation.CurrentStageCleared() {
		_spec.ClearField(crrun.FieldCurrentStage, field.TypeString)
	}
	if value, ok := _u.mutation.PauseReason(); ok {
		_spec.SetField(crrun.FieldPauseReason, field.TypeString, value)
	}
	if _u.mutation.PauseReasonCleared() {
		_spec.ClearField(crrun.FieldPauseReason, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(crrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(crrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(crrun.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(crrun.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(crrun.FieldInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(crrun.FieldInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(crrun.FieldOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(crrun.FieldOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ConfigSnapshot(); ok {
		_spec.SetField(crrun.FieldConfigSnapshot, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.RawRequest(); ok {
		_spec.SetField(crrun.FieldRawRequest, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(crrun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(crrun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(crrun.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(crrun.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResumeRequestedAt(); ok {
		_spec.SetField(crrun.FieldResumeRequestedAt, field.TypeTime, value)
	}
	if _u.mutation.ResumeRequestedAtCleared() {
		_spec.ClearField(crrun.FieldResumeRequestedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.WorkerLog(); ok {
		_spec.SetField(crrun.FieldWorkerLog, field.TypeString, value)
	}
	if _u.mutation.WorkerLogCleared() {
		_spec.ClearField(crrun.FieldWorkerLog, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(crrun.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversationsIDs(); len(nodes) > 0 && !_u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditLogsIDs(); len(nodes) > 0 && !_u.mutation.AuditLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{crrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CRRunUpdateOne is the builder for updating a single CRRun entity.
type CRRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CRRunMutation
}

// SetExternalID sets the "external_id" field.
func (_u *CRRunUpdateOne) SetExternalID(v string) *CRRunUpdateOne {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *CRRunUpdateOne) SetNillableExternalID(v *string) *CRRunUpdateOne {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// ClearExternalID clears the value of the "external_id" field.
func (_u *CRRunUpdateOne) ClearExternalID() *CRRunUpdateOne {
	_u.mutation.ClearExternalID()
	return _u
}

// SetSource sets the "source" field.
func (_u *CRRunUpdateOne) SetSource(v string) *CRRunUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *CRRunUpdateOne) SetNillableSource(v *string) *CRRunUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CRRunUpdateOne) SetTitle(v string) *CRRunUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CRRunUpdateOne) SetNillableTitle(v *string) *CRRunUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CRRunUpdateOne) SetStatus(v crrun.Status) *CRRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CRRunUpdateOne) SetNillableStatus(v *crrun.Status) *CRRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *CRRunUpdateOne) SetCurrentStage(v string) *CRRunUpdateOne {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *CRRunUpdateOne) SetNillableCurrentStage(v *string) *CRRunUpdateOne {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (_u *CRRunUpdateOne) ClearCurrentStage() *CRRunUpdateOne {
	_u.mutation.ClearCurrentStage()
	return _u
}

// SetPauseReason sets the "pause_reason" field.
func (_u *CRRunUpdateOne) SetPauseReason(v string) *CRRunUpdateOne {
	_u.mutation.SetPauseReason(v)
	return _u
}

// SetNillablePauseReason sets the "pause_reason" field if the given value is not nil.
func (_u *CRRunUpdateOne) SetNillablePauseReason(v *string) *CRRunUpdateOne {
	if v != nil {
		_u.SetPauseReason(*v)
	}
	return _u
}

// ClearPauseReason clears the value of the "pause_reason" field.
func (_u *CRRunUpdateOne) ClearPauseReason() *CRRunUpdateOne {
	_u.mutation.ClearPauseReason()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CRRunUpdateOne) SetErrorMessage(v string) *CRRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CRRunUpdateOne) SetNillableErrorMessage(v *string) *CRRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CRRunUpdateOne) ClearErrorMessage() *CRRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *CRRunUpdateOne) SetCostUsd(v float64) *CRRunUpdateOne {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *CRRunUpdateOne) SetNillableCostUsd(v *float64) *CRRunUpdateOne {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *CRRunUpdateOne) AddCostUsd(v float64) *CRRunUpdateOne {
	_u.mutation.AddCostUsd(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *CRRunUpdateOne) SetInputTokens(v int64) *CRRunUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *CRRunUpdateOne) SetNillableInputTokens(v *int64) *CRRunUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *CRRunUpdateOne) AddInputTokens(v int64) *CRRunUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *CRRunUpdateOne) SetOutputTokens(v int64) *CRRunUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *CRRunUpdateOne) SetNillableOutputTokens(v *int64) *CRRunUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *CRRunUpdateOne) AddOutputTokens(v int64) *CRRunUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetConfigSnapshot sets the "config_snapshot" field.
func (_u *CRRunUpdateOne) SetConfigSnapshot(v map[string]interface{}) *CRRunUpdateOne {
	_u.mutation.SetConfigSnapshot(v)
	return _u
}

// SetRawRequest sets the "raw_request" field.
func (_u *CRRunUpdateOne) SetRawRequest(v map[string]interface{}) *CRRunUpdateOne {
	_u.mutation.SetRawRequest(v)
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *CRRunUpdateOne) SetPodID(v string) *CRRunUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *CRRunUpdateOne) SetNillablePodID(v *string) *CRRunUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *CRRunUpdateOne) ClearPodID() *CRRunUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *CRRunUpdateOne) SetLastInteractionAt(v time.Time) *CRRunUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *CRRunUpdateOne) SetNillableLastInteractionAt(v *time.Time) *CRRunUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *CRRunUpdateOne) ClearLastInteractionAt() *CRRunUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetResumeRequestedAt sets the "resume_requested_at" field.
func (_u *CRRunUpdateOne) SetResumeRequestedAt(v time.Time) *CRRunUpdateOne {
	_u.mutation.SetResumeRequestedAt(v)
	return _u
}

// SetNillableResumeRequestedAt sets the "resume_requested_at" field if the given value is not nil.
func (_u *CRRunUpdateOne) SetNillableResumeRequestedAt(v *time.Time) *CRRunUpdateOne {
	if v != nil {
		_u.SetResumeRequestedAt(*v)
	}
	return _u
}

// ClearResumeRequestedAt clears the value of the "resume_requested_at" field.
func (_u *CRRunUpdateOne) ClearResumeRequestedAt() *CRRunUpdateOne {
	_u.mutation.ClearResumeRequestedAt()
	return _u
}

// SetWorkerLog sets the "worker_log" field.
func (_u *CRRunUpdateOne) SetWorkerLog(v string) *CRRunUpdateOne {
	_u.mutation.SetWorkerLog(v)
	return _u
}

// SetNillableWorkerLog sets the "worker_log" field if the given value is not nil.
func (_u *CRRunUpdateOne) SetNillableWorkerLog(v *string) *CRRunUpdateOne {
	if v != nil {
		_u.SetWorkerLog(*v)
	}
	return _u
}

// ClearWorkerLog clears the value of the "worker_log" field.
func (_u *CRRunUpdateOne) ClearWorkerLog() *CRRunUpdateOne {
	_u.mutation.ClearWorkerLog()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CRRunUpdateOne) SetUpdatedAt(v time.Time) *CRRunUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *CRRunUpdateOne) AddCheckpointIDs(ids ...int) *CRRunUpdateOne {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *CRRunUpdateOne) AddCheckpoints(v ...*Checkpoint) *CRRunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *CRRunUpdateOne) AddEventIDs(ids ...int64) *CRRunUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *CRRunUpdateOne) AddEvents(v ...*Event) *CRRunUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_u *CRRunUpdateOne) AddConversationIDs(ids ...int) *CRRunUpdateOne {
	_u.mutation.AddConversationIDs(ids...)
	return _u
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_u *CRRunUpdateOne) AddConversations(v ...*Conversation) *CRRunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversationIDs(ids...)
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by IDs.
func (_u *CRRunUpdateOne) AddAuditLogIDs(ids ...int) *CRRunUpdateOne {
	_u.mutation.AddAuditLogIDs(ids...)
	return _u
}

// AddAuditLogs adds the "audit_logs" edges to the AuditLog entity.
func (_u *CRRunUpdateOne) AddAuditLogs(v ...*AuditLog) *CRRunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditLogIDs(ids...)
}

// Mutation returns the CRRunMutation object of the builder.
func (_u *CRRunUpdateOne) Mutation() *CRRunMutation {
	return _u.mutation
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *CRRunUpdateOne) ClearCheckpoints() *CRRunUpdateOne {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *CRRunUpdateOne) RemoveCheckpointIDs(ids ...int) *CRRunUpdateOne {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *CRRunUpdateOne) RemoveCheckpoints(v ...*Checkpoint) *CRRunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *CRRunUpdateOne) ClearEvents() *CRRunUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *CRRunUpdateOne) RemoveEventIDs(ids ...int64) *CRRunUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *CRRunUpdateOne) RemoveEvents(v ...*Event) *CRRunUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearConversations clears all "conversations" edges to the Conversation entity.
func (_u *CRRunUpdateOne) ClearConversations() *CRRunUpdateOne {
	_u.mutation.ClearConversations()
	return _u
}

// RemoveConversationIDs removes the "conversations" edge to Conversation entities by IDs.
func (_u *CRRunUpdateOne) RemoveConversationIDs(ids ...int) *CRRunUpdateOne {
	_u.mutation.RemoveConversationIDs(ids...)
	return _u
}

// RemoveConversations removes "conversations" edges to Conversation entities.
func (_u *CRRunUpdateOne) RemoveConversations(v ...*Conversation) *CRRunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversationIDs(ids...)
}

// ClearAuditLogs clears all "audit_logs" edges to the AuditLog entity.
func (_u *CRRunUpdateOne) ClearAuditLogs() *CRRunUpdateOne {
	_u.mutation.ClearAuditLogs()
	return _u
}

// RemoveAuditLogIDs removes the "audit_logs" edge to AuditLog entities by IDs.
func (_u *CRRunUpdateOne) RemoveAuditLogIDs(ids ...int) *CRRunUpdateOne {
	_u.mutation.RemoveAuditLogIDs(ids...)
	return _u
}

// RemoveAuditLogs removes "audit_logs" edges to AuditLog entities.
func (_u *CRRunUpdateOne) RemoveAuditLogs(v ...*AuditLog) *CRRunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditLogIDs(ids...)
}

// Where appends a list predicates to the CRRunUpdate builder.
func (_u *CRRunUpdateOne) Where(ps ...predicate.CRRun) *CRRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CRRunUpdateOne) Select(field string, fields ...string) *CRRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CRRun entity.
func (_u *CRRunUpdateOne) Save(ctx context.Context) (*CRRun, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CRRunUpdateOne) SaveX(ctx context.Context) *CRRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CRRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CRRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CRRunUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := crrun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CRRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := crrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CRRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CRRunUpdateOne) sqlSave(ctx context.Context) (_node *CRRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(crrun.Table, crrun.Columns, sqlgraph.NewFieldSpec(crrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CRRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, crrun.FieldID)
		for _, f := range fields {
			if !crrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != crrun.FieldID {
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
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(crrun.FieldExternalID, field.TypeString, value)
	}
	if _u.mutation.ExternalIDCleared() {
		_spec.ClearField(crrun.FieldExternalID, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(crrun.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(crrun.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(crrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(crrun.FieldCurrentStage, field.TypeString, value)
	}
	if _u.mutation.CurrentStageCleared() {
		_spec.ClearField(crrun.FieldCurrentStage, field.TypeString)
	}
	if value, ok := _u.mutation.PauseReason(); ok {
		_spec.SetField(crrun.FieldPauseReason, field.TypeString, value)
	}
	if _u.mutation.PauseReasonCleared() {
		_spec.ClearField(crrun.FieldPauseReason, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(crrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(crrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(crrun.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(crrun.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(crrun.FieldInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(crrun.FieldInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(crrun.FieldOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(crrun.FieldOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ConfigSnapshot(); ok {
		_spec.SetField(crrun.FieldConfigSnapshot, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.RawRequest(); ok {
		_spec.SetField(crrun.FieldRawRequest, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(crrun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(crrun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(crrun.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(crrun.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResumeRequestedAt(); ok {
		_spec.SetField(crrun.FieldResumeRequestedAt, field.TypeTime, value)
	}
	if _u.mutation.ResumeRequestedAtCleared() {
		_spec.ClearField(crrun.FieldResumeRequestedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.WorkerLog(); ok {
		_spec.SetField(crrun.FieldWorkerLog, field.TypeString, value)
	}
	if _u.mutation.WorkerLogCleared() {
		_spec.ClearField(crrun.FieldWorkerLog, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(crrun.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversationsIDs(); len(nodes) > 0 && !_u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditLogsIDs(); len(nodes) > 0 && !_u.mutation.AuditLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CRRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{crrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
