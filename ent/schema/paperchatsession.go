package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PaperChatSession holds the schema definition for the PaperChatSession entity.
type PaperChatSession struct {
	ent.Schema
}

// Fields of the PaperChatSession.
func (PaperChatSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("paper_chat_session_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("paper_id").
			Immutable(),
		field.String("title").
			Optional(),
		field.Enum("processing_status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the PaperChatSession.
func (PaperChatSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("chat_sessions").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.To("messages", PaperChatMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the PaperChatSession.
func (PaperChatSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "paper_id"),
	}
}
