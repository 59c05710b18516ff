package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Intervention holds the schema definition for the Intervention entity.
// Pending operator commands, consumed at-most-once by the executor.
type Intervention struct {
	ent.Schema
}

// Fields of the Intervention.
func (Intervention) Fields() []ent.Field {
	return []ent.Field{
		field.String("cr_id"),
		field.Enum("kind").
			Values("instructions", "nudge", "resume_overrides"),
		field.String("key").
			Default("").
			Comment("Agent role for nudges; empty otherwise"),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the Intervention.
func (Intervention) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("cr_id", "kind", "key").
			Unique(),
	}
}
