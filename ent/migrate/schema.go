// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "actor", Type: field.TypeString, Default: "api"},
		{Name: "action", Type: field.TypeString},
		{Name: "detail", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "cr_id", Type: field.TypeString},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_logs_cr_runs_audit_logs",
				Columns:    []*schema.Column{AuditLogsColumns[5]},
				RefColumns: []*schema.Column{CrRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_cr_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[5], AuditLogsColumns[4]},
			},
		},
	}
	// CrRunsColumns holds the columns for the "cr_runs" table.
	CrRunsColumns = []*schema.Column{
		{Name: "cr_id", Type: field.TypeString, Unique: true},
		{Name: "external_id", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "paused", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "current_stage", Type: field.TypeString, Nullable: true},
		{Name: "pause_reason", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "input_tokens", Type: field.TypeInt64, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt64, Default: 0},
		{Name: "config_snapshot", Type: field.TypeJSON},
		{Name: "raw_request", Type: field.TypeJSON},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
		{Name: "resume_requested_at", Type: field.TypeTime, Nullable: true},
		{Name: "worker_log", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CrRunsTable holds the schema information for the "cr_runs" table.
	CrRunsTable = &schema.Table{
		Name:       "cr_runs",
		Columns:    CrRunsColumns,
		PrimaryKey: []*schema.Column{CrRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "crrun_status",
				Unique:  false,
				Columns: []*schema.Column{CrRunsColumns[4]},
			},
			{
				Name:    "crrun_source",
				Unique:  false,
				Columns: []*schema.Column{CrRunsColumns[2]},
			},
			{
				Name:    "crrun_created_at",
				Unique:  false,
				Columns: []*schema.Column{CrRunsColumns[17]},
			},
			{
				Name:    "crrun_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{CrRunsColumns[4], CrRunsColumns[17]},
			},
			{
				Name:    "crrun_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{CrRunsColumns[4], CrRunsColumns[14]},
			},
			{
				Name:    "crrun_status_resume_requested_at",
				Unique:  false,
				Columns: []*schema.Column{CrRunsColumns[4], CrRunsColumns[15]},
			},
		},
	}
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "node_name", Type: field.TypeString},
		{Name: "state_blob", Type: field.TypeJSON},
		{Name: "written_at", Type: field.TypeTime},
		{Name: "cr_id", Type: field.TypeString},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checkpoints_cr_runs_checkpoints",
				Columns:    []*schema.Column{CheckpointsColumns[5]},
				RefColumns: []*schema.Column{CrRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_cr_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{CheckpointsColumns[5], CheckpointsColumns[1]},
			},
		},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString},
		{Name: "role", Type: field.TypeString},
		{Name: "repo", Type: field.TypeString, Nullable: true},
		{Name: "messages", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "cr_id", Type: field.TypeString},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversations_cr_runs_conversations",
				Columns:    []*schema.Column{ConversationsColumns[6]},
				RefColumns: []*schema.Column{CrRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_cr_id_key",
				Unique:  true,
				Columns: []*schema.Column{ConversationsColumns[6], ConversationsColumns[1]},
			},
			{
				Name:    "conversation_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[5]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "stage", Type: field.TypeString, Nullable: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "cr_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_cr_runs_events",
				Columns:    []*schema.Column{EventsColumns[5]},
				RefColumns: []*schema.Column{CrRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_cr_id_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[5], EventsColumns[0]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// InterventionsColumns holds the columns for the "interventions" table.
	InterventionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "cr_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"instructions", "nudge", "resume_overrides"}},
		{Name: "key", Type: field.TypeString, Default: ""},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// InterventionsTable holds the schema information for the "interventions" table.
	InterventionsTable = &schema.Table{
		Name:       "interventions",
		Columns:    InterventionsColumns,
		PrimaryKey: []*schema.Column{InterventionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "intervention_cr_id_kind_key",
				Unique:  true,
				Columns: []*schema.Column{InterventionsColumns[1], InterventionsColumns[2], InterventionsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		CrRunsTable,
		CheckpointsTable,
		ConversationsTable,
		EventsTable,
		InterventionsTable,
	}
)

func init() {
	AuditLogsTable.ForeignKeys[0].RefTable = CrRunsTable
	CheckpointsTable.ForeignKeys[0].RefTable = CrRunsTable
	ConversationsTable.ForeignKeys[0].RefTable = CrRunsTable
	EventsTable.ForeignKeys[0].RefTable = CrRunsTable
}
