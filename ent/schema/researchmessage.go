package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResearchMessage holds the schema definition for the ResearchMessage entity.
// Every graph role output is persisted here; is_intermediate=false marks the
// messages a client renders as the conversation (user turns, coordinator
// direct replies, and the final summary).
type ResearchMessage struct {
	ent.Schema
}

// Fields of the ResearchMessage.
func (ResearchMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("research_message_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Enum("role").
			Values("user", "assistant", "system_step", "system", "tool", "system_error"),
		field.Text("content"),
		field.Bool("is_intermediate").
			Default(true),
		field.JSON("metadata_json", map[string]interface{}{}).
			Optional(),
		field.Int("sequence").
			Comment("Creation order within the session"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ResearchMessage.
func (ResearchMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ResearchSession.Type).
			Ref("messages").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ResearchMessage.
func (ResearchMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "sequence").
			Unique(),
	}
}
