package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PromptGroup holds the schema definition for the PromptGroup entity.
// A named bundle of per-role prompt overrides for a research graph run.
// Unset slots fall back to the built-in defaults at resolution time.
type PromptGroup struct {
	ent.Schema
}

// Fields of the PromptGroup.
func (PromptGroup) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("prompt_group_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("user_id").
			Immutable(),
		field.Enum("category").
			Values("deepresearch", "deeprag"),
		field.String("coordinator_prompt_id").
			Optional().
			Nillable(),
		field.String("planner_prompt_id").
			Optional().
			Nillable(),
		field.String("supervisor_prompt_id").
			Optional().
			Nillable(),
		field.String("agent_prompt_id").
			Optional().
			Nillable(),
		field.String("summary_prompt_id").
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

// Edges of the PromptGroup.
func (PromptGroup) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("prompt_groups").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PromptGroup.
func (PromptGroup) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name", "user_id", "category").
			Unique(),
	}
}
