package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conversation holds the schema definition for the Conversation entity.
// Full agent transcripts, keyed {role}:{repo}:{unix_ts}, kept for the
// retention window so operators can audit what an agent was told.
type Conversation struct {
	ent.Schema
}

// Fields of the Conversation.
func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.String("cr_id"),
		field.String("key"),
		field.String("role"),
		field.String("repo").
			Optional(),
		field.JSON("messages", []map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Conversation.
func (Conversation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", CRRun.Type).
			Ref("conversations").
			Field("cr_id").
			Unique().
			Required(),
	}
}

// Indexes of the Conversation.
func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("cr_id", "key").
			Unique(),
		index.Fields("created_at"),
	}
}
