package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EditedSummary holds the schema definition for the EditedSummary entity.
// A user-owned override of exactly one stored summary. Exactly one of
// default_summary_id / custom_summary_id is set; Postgres treats NULLs as
// distinct so the two partial unique indexes coexist.
type EditedSummary struct {
	ent.Schema
}

// Fields of the EditedSummary.
func (EditedSummary) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("edited_summary_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("default_summary_id").
			Optional().
			Nillable(),
		field.String("custom_summary_id").
			Optional().
			Nillable(),
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

// Edges of the EditedSummary.
func (EditedSummary) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("edited_summaries").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the EditedSummary.
func (EditedSummary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "default_summary_id").
			Unique(),
		index.Fields("user_id", "custom_summary_id").
			Unique(),
	}
}
