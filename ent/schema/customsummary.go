package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CustomSummary holds the schema definition for the CustomSummary entity.
// Like DefaultSummary but scoped to a (user, prompt) pair; the unique index
// extends the generation-lock tuple with user_id and prompt_id.
type CustomSummary struct {
	ent.Schema
}

// Fields of the CustomSummary.
func (CustomSummary) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("custom_summary_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("paper_id").
			Immutable(),
		field.String("prompt_id").
			Immutable(),
		field.String("llm_provider"),
		field.String("llm_model"),
		field.Enum("character").
			Values("none", "sakura", "miyabi").
			Default("none"),
		field.Int("affinity").
			Default(0),
		field.Text("body"),
		field.String("one_point").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the CustomSummary.
func (CustomSummary) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("custom_summaries").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.From("paper", PaperMetadata.Type).
			Ref("custom_summaries").
			Field("paper_id").
			Unique().
			Required().
			Immutable(),
		edge.From("prompt", Prompt.Type).
			Ref("custom_summaries").
			Field("prompt_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CustomSummary.
func (CustomSummary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "paper_id", "prompt_id", "llm_provider", "llm_model", "character", "affinity").
			Unique(),
		index.Fields("user_id", "paper_id"),
	}
}
