package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.String("username").
			Unique(),
		field.String("display_name").
			Optional(),
		field.Int("points").
			Default(0),
		field.Enum("selected_character").
			Values("none", "sakura", "miyabi").
			Default("none"),
		field.Int("affinity_sakura").
			Default(0).
			Comment("Affinity level 0-4 with Sakura"),
		field.Int("affinity_miyabi").
			Default(0).
			Comment("Affinity level 0-4 with Miyabi"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("paper_links", UserPaperLink.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("custom_summaries", CustomSummary.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("edited_summaries", EditedSummary.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("prompts", Prompt.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("prompt_groups", PromptGroup.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("research_sessions", ResearchSession.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("chat_sessions", PaperChatSession.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
