package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResearchSession holds the schema definition for the ResearchSession entity.
// processing_status tracks which graph role is currently running so UIs can
// render progress while the session is in flight.
type ResearchSession struct {
	ent.Schema
}

// Fields of the ResearchSession.
func (ResearchSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("research_session_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("title").
			Optional(),
		field.Enum("category").
			Values("deepresearch", "deeprag", "rag"),
		field.Enum("processing_status").
			Values(
				"pending",
				"coordinator",
				"planning",
				"supervising",
				"agent_running",
				"tools",
				"summarizing",
				"completed",
				"failed",
				"unknown_completion",
			).
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ResearchSession.
func (ResearchSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("research_sessions").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.To("messages", ResearchMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ResearchSession.
func (ResearchSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("processing_status"),
	}
}
