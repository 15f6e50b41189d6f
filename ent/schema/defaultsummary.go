package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DefaultSummary holds the schema definition for the DefaultSummary entity.
//
// One row per (paper, provider, model, character, affinity). The unique index
// on that tuple is the coordination primitive for summary generation: a
// [PROCESSING_n] body prefix marks an in-flight placeholder, and concurrent
// generators serialise on the INSERT (see pkg/summary).
type DefaultSummary struct {
	ent.Schema
}

// Fields of the DefaultSummary.
func (DefaultSummary) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("default_summary_id").
			Unique().
			Immutable(),
		field.String("paper_id").
			Immutable(),
		field.String("llm_provider"),
		field.String("llm_model"),
		field.Enum("character").
			Values("none", "sakura", "miyabi").
			Default("none"),
		field.Int("affinity").
			Default(0),
		field.Text("body").
			Comment("Summary markdown, or [PROCESSING_n] placeholder while in flight"),
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

// Edges of the DefaultSummary.
func (DefaultSummary) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("paper", PaperMetadata.Type).
			Ref("default_summaries").
			Field("paper_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DefaultSummary.
func (DefaultSummary) Indexes() []ent.Index {
	return []ent.Index{
		// The generation lock. Do not relax.
		index.Fields("paper_id", "llm_provider", "llm_model", "character", "affinity").
			Unique(),
	}
}
