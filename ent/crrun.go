// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/CollideNV/hadron/ent/crrun"
)

// CRRun is the model entity for the CRRun schema.
type CRRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Upstream tracker id (e.g. JIRA key); dedup key with source
	ExternalID *string `json:"external_id,omitempty"`
	// Origin tag: api, jira, github, ado, slack
	Source string `json:"source,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Status holds the value of the "status" field.
	Status crrun.Status `json:"status,omitempty"`
	// CurrentStage holds the value of the "current_stage" field.
	CurrentStage *string `json:"current_stage,omitempty"`
	// waiting_ci, waiting_approval, or a circuit-breaker label
	PauseReason *string `json:"pause_reason,omitempty"`
	// Preserved until the next successful transition
	ErrorMessage *string `json:"error_message,omitempty"`
	// Monotonically accumulating
	CostUsd float64 `json:"cost_usd,omitempty"`
	// InputTokens holds the value of the "input_tokens" field.
	InputTokens int64 `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens int64 `json:"output_tokens,omitempty"`
	// Frozen runtime configuration taken at trigger time
	ConfigSnapshot map[string]interface{} `json:"config_snapshot,omitempty"`
	// Original trigger payload; a fresh worker starts intake from it
	RawRequest map[string]interface{} `json:"raw_request,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// Heartbeat timestamp for orphan detection
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
	// Set by /resume; cleared when a worker claims the run
	ResumeRequestedAt *time.Time `json:"resume_requested_at,omitempty"`
	// Captured worker logs, flushed on pause/terminal transitions
	WorkerLog *string `json:"worker_log,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CRRunQuery when eager-loading is set.
	Edges        CRRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CRRunEdges holds the relations/edges for other nodes in the graph.
type CRRunEdges struct {
	// Checkpoints holds the value of the checkpoints edge.
	Checkpoints []*Checkpoint `json:"checkpoints,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// Conversations holds the value of the conversations edge.
	Conversations []*Conversation `json:"conversations,omitempty"`
	// AuditLogs holds the value of the audit_logs edge.
	AuditLogs []*AuditLog `json:"audit_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// CheckpointsOrErr returns the Checkpoints value or an error if the edge
// was not loaded in eager-loading.
func (e CRRunEdges) CheckpointsOrErr() ([]*Checkpoint, error) {
	if e.loadedTypes[0] {
		return e.Checkpoints, nil
	}
	return nil, &NotLoadedError{edge: "checkpoints"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e CRRunEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[1] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// ConversationsOrErr returns the Conversations value or an error if the edge
// was not loaded in eager-loading.
func (e CRRunEdges) ConversationsOrErr() ([]*Conversation, error) {
	if e.loadedTypes[2] {
		return e.Conversations, nil
	}
	return nil, &NotLoadedError{edge: "conversations"}
}

// AuditLogsOrErr returns the AuditLogs value or an error if the edge
// was not loaded in eager-loading.
func (e CRRunEdges) AuditLogsOrErr() ([]*AuditLog, error) {
	if e.loadedTypes[3] {
		return e.AuditLogs, nil
	}
	return nil, &NotLoadedError{edge: "audit_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CRRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case crrun.FieldConfigSnapshot, crrun.FieldRawRequest:
			values[i] = new([]byte)
		case crrun.FieldCostUsd:
			values[i] = new(sql.NullFloat64)
		case crrun.FieldInputTokens, crrun.FieldOutputTokens:
			values[i] = new(sql.NullInt64)
		case crrun.FieldID, crrun.FieldExternalID, crrun.FieldSource, crrun.FieldTitle, crrun.FieldStatus, crrun.FieldCurrentStage, crrun.FieldPauseReason, crrun.FieldErrorMessage, crrun.FieldPodID, crrun.FieldWorkerLog:
			values[i] = new(sql.NullString)
		case crrun.FieldLastInteractionAt, crrun.FieldResumeRequestedAt, crrun.FieldCreatedAt, crrun.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CRRun fields.
func (_m *CRRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case crrun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case crrun.FieldExternalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_id", values[i])
			} else if value.Valid {
				_m.ExternalID = new(string)
				*_m.ExternalID = value.String
			}
		case crrun.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case crrun.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case crrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = crrun.Status(value.String)
			}
		case crrun.FieldCurrentStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_stage", values[i])
			} else if value.Valid {
				_m.CurrentStage = new(string)
				*_m.CurrentStage = value.String
			}
		case crrun.FieldPauseReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pause_reason", values[i])
			} else if value.Valid {
				_m.PauseReason = new(string)
				*_m.PauseReason = value.String
			}
		case crrun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case crrun.FieldCostUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_usd", values[i])
			} else if value.Valid {
				_m.CostUsd = value.Float64
			}
		case crrun.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = value.Int64
			}
		case crrun.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = value.Int64
			}
		case crrun.FieldConfigSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConfigSnapshot); err != nil {
					return fmt.Errorf("unmarshal field config_snapshot: %w", err)
				}
			}
		case crrun.FieldRawRequest:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw_request", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RawRequest); err != nil {
					return fmt.Errorf("unmarshal field raw_request: %w", err)
				}
			}
		case crrun.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case crrun.FieldLastInteractionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_interaction_at", values[i])
			} else if value.Valid {
				_m.LastInteractionAt = new(time.Time)
				*_m.LastInteractionAt = value.Time
			}
		case crrun.FieldResumeRequestedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resume_requested_at", values[i])
			} else if value.Valid {
				_m.ResumeRequestedAt = new(time.Time)
				*_m.ResumeRequestedAt = value.Time
			}
		case crrun.FieldWorkerLog:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field worker_log", values[i])
			} else if value.Valid {
				_m.WorkerLog = new(string)
				*_m.WorkerLog = value.String
			}
		case crrun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case crrun.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CRRun.
// This includes values selected through modifiers, order, etc.
func (_m *CRRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCheckpoints queries the "checkpoints" edge of the CRRun entity.
func (_m *CRRun) QueryCheckpoints() *CheckpointQuery {
	return NewCRRunClient(_m.config).QueryCheckpoints(_m)
}

// QueryEvents queries the "events" edge of the CRRun entity.
func (_m *CRRun) QueryEvents() *EventQuery {
	return NewCRRunClient(_m.config).QueryEvents(_m)
}

// QueryConversations queries the "conversations" edge of the CRRun entity.
func (_m *CRRun) QueryConversations() *ConversationQuery {
	return NewCRRunClient(_m.config).QueryConversations(_m)
}

// QueryAuditLogs queries the "audit_logs" edge of the CRRun entity.
func (_m *CRRun) QueryAuditLogs() *AuditLogQuery {
	return NewCRRunClient(_m.config).QueryAuditLogs(_m)
}

// Update returns a builder for updating this CRRun.
// Note that you need to call CRRun.Unwrap() before calling this method if this CRRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CRRun) Update() *CRRunUpdateOne {
	return NewCRRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CRRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CRRun) Unwrap() *CRRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CRRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CRRun) String() string {
	var builder strings.Builder
	builder.WriteString("CRRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.ExternalID; v != nil {
		builder.WriteString("external_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.CurrentStage; v != nil {
		builder.WriteString("current_stage=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PauseReason; v != nil {
		builder.WriteString("pause_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("cost_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostUsd))
	builder.WriteString(", ")
	builder.WriteString("input_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputTokens))
	builder.WriteString(", ")
	builder.WriteString("output_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputTokens))
	builder.WriteString(", ")
	builder.WriteString("config_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfigSnapshot))
	builder.WriteString(", ")
	builder.WriteString("raw_request=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawRequest))
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastInteractionAt; v != nil {
		builder.WriteString("last_interaction_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ResumeRequestedAt; v != nil {
		builder.WriteString("resume_requested_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.WorkerLog; v != nil {
		builder.WriteString("worker_log=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CRRuns is a parsable slice of CRRun.
type CRRuns []*CRRun
