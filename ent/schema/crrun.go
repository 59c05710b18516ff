package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CRRun holds the schema definition for the CRRun entity.
// One row per change request; the row is the single source of truth
// for run status and accumulated cost.
type CRRun struct {
	ent.Schema
}

// Fields of the CRRun.
func (CRRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("cr_id").
			Unique().
			Immutable(),
		field.String("external_id").
			Optional().
			Nillable().
			Comment("Upstream tracker id (e.g. JIRA key); dedup key with source"),
		field.String("source").
			Comment("Origin tag: api, jira, github, ado, slack"),
		field.String("title"),
		field.Enum("status").
			Values("pending", "running", "paused", "completed", "failed", "cancelled").
			Default("pending"),
		field.String("current_stage").
			Optional().
			Nillable(),
		field.String("pause_reason").
			Optional().
			Nillable().
			Comment("waiting_ci, waiting_approval, or a circuit-breaker label"),
		field.String("error_message").
			Optional().
			Nillable().
			Comment("Preserved until the next successful transition"),
		field.Float("cost_usd").
			Default(0).
			Comment("Monotonically accumulating"),
		field.Int64("input_tokens").
			Default(0),
		field.Int64("output_tokens").
			Default(0),
		field.JSON("config_snapshot", map[string]interface{}{}).
			Comment("Frozen runtime configuration taken at trigger time"),
		field.JSON("raw_request", map[string]interface{}{}).
			Comment("Original trigger payload; a fresh worker starts intake from it"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Heartbeat timestamp for orphan detection"),
		field.Time("resume_requested_at").
			Optional().
			Nillable().
			Comment("Set by /resume; cleared when a worker claims the run"),
		field.Text("worker_log").
			Optional().
			Nillable().
			Comment("Captured worker logs, flushed on pause/terminal transitions"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the CRRun.
func (CRRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("checkpoints", Checkpoint.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("conversations", Conversation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("audit_logs", AuditLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the CRRun.
// The partial unique dedup index on (source, external_id) cannot be
// expressed by Ent/Atlas; it is created in pkg/database/migrations.go.
func (CRRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("source"),
		index.Fields("created_at"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_interaction_at"),
		index.Fields("status", "resume_requested_at"),
	}
}
