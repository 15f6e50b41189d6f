package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PaperMetadata holds the schema definition for the PaperMetadata entity.
// One row per external paper, shared across all users. full_text is lazily
// populated on first ingest that needs it.
type PaperMetadata struct {
	ent.Schema
}

// Fields of the PaperMetadata.
func (PaperMetadata) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("paper_id").
			Unique().
			Immutable(),
		field.String("external_id").
			Unique().
			Comment("e.g. arXiv identifier 2403.01234"),
		field.String("url"),
		field.String("title"),
		field.Text("authors").
			Optional(),
		field.Text("abstract").
			Optional(),
		field.Text("full_text").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the PaperMetadata.
func (PaperMetadata) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("default_summaries", DefaultSummary.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("custom_summaries", CustomSummary.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("user_links", UserPaperLink.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the PaperMetadata.
func (PaperMetadata) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("url"),
	}
}
