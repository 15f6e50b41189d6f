package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PaperChatMessage holds the schema definition for the PaperChatMessage entity.
type PaperChatMessage struct {
	ent.Schema
}

// Fields of the PaperChatMessage.
func (PaperChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("paper_chat_message_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Enum("role").
			Values("user", "assistant", "system", "tool", "system_error"),
		field.Text("content"),
		field.Int("sequence"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PaperChatMessage.
func (PaperChatMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", PaperChatSession.Type).
			Ref("messages").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PaperChatMessage.
func (PaperChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "sequence").
			Unique(),
	}
}
