package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Prompt holds the schema definition for the Prompt entity.
// owner_user_id null means a global built-in override; otherwise the prompt
// belongs to one user and only resolves for that user.
type Prompt struct {
	ent.Schema
}

// Fields of the Prompt.
func (Prompt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("prompt_id").
			Unique().
			Immutable(),
		field.Enum("type").
			Values(
				"paper_summary",
				"character_persona",
				"tagging",
				"paper_chat_system",
				"rag_system",
				"research_coordinator",
				"research_planner",
				"research_supervisor",
				"research_agent",
				"research_summary",
			),
		field.String("name"),
		field.String("category").
			Optional(),
		field.Text("body"),
		field.String("owner_user_id").
			Optional().
			Nillable(),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Prompt.
func (Prompt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("prompts").
			Field("owner_user_id").
			Unique(),
		edge.To("custom_summaries", CustomSummary.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Prompt.
func (Prompt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("type"),
		index.Fields("owner_user_id", "type"),
	}
}
