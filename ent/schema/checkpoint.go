package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Checkpoint holds the schema definition for the Checkpoint entity.
// Immutable PipelineState snapshots; the highest sequence per run
// is authoritative.
type Checkpoint struct {
	ent.Schema
}

// Fields of the Checkpoint.
func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("cr_id"),
		field.Int("sequence").
			Comment("Monotonic per run; assigned by the checkpoint service"),
		field.String("node_name"),
		field.JSON("state_blob", map[string]interface{}{}).
			Comment("Serialized PipelineState"),
		field.Time("written_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Checkpoint.
func (Checkpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", CRRun.Type).
			Ref("checkpoints").
			Field("cr_id").
			Unique().
			Required(),
	}
}

// Indexes of the Checkpoint.
func (Checkpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("cr_id", "sequence").
			Unique(),
	}
}
