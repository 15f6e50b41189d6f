package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserPaperLink holds the schema definition for the UserPaperLink entity.
// The per-user view of a paper: tags, memo, and which stored summary is
// currently selected for display/vectorisation. At most one of
// selected_default_summary_id / selected_custom_summary_id is non-null.
//
// Summaries reference papers and links reference summaries; the cycle is
// broken by keeping these as plain string columns with lookup helpers in
// pkg/services rather than bidirectional edges.
type UserPaperLink struct {
	ent.Schema
}

// Fields of the UserPaperLink.
func (UserPaperLink) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_paper_link_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("paper_id").
			Immutable(),
		field.Text("tags").
			Optional().
			Comment("Comma-separated tag set"),
		field.Text("memo").
			Optional(),
		field.String("selected_default_summary_id").
			Optional().
			Nillable(),
		field.String("selected_custom_summary_id").
			Optional().
			Nillable(),
		field.Time("last_accessed").
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

// Edges of the UserPaperLink.
func (UserPaperLink) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("paper_links").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.From("paper", PaperMetadata.Type).
			Ref("user_links").
			Field("paper_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the UserPaperLink.
func (UserPaperLink) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "paper_id").
			Unique(),
		index.Fields("user_id", "last_accessed"),
	}
}
