// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/rainzero1960/paperscout/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldID, id))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUsername, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDisplayName, v))
}

// Points applies equality check predicate on the "points" field. It's identical to PointsEQ.
func Points(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPoints, v))
}

// AffinitySakura applies equality check predicate on the "affinity_sakura" field. It's identical to AffinitySakuraEQ.
func AffinitySakura(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAffinitySakura, v))
}

// AffinityMiyabi applies equality check predicate on the "affinity_miyabi" field. It's identical to AffinityMiyabiEQ.
func AffinityMiyabi(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAffinityMiyabi, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldUsername, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameIsNil applies the IsNil predicate on the "display_name" field.
func DisplayNameIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldDisplayName))
}

// DisplayNameNotNil applies the NotNil predicate on the "display_name" field.
func DisplayNameNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldDisplayName))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldDisplayName, v))
}

// PointsEQ applies the EQ predicate on the "points" field.
func PointsEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPoints, v))
}

// PointsNEQ applies the NEQ predicate on the "points" field.
func PointsNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldPoints, v))
}

// PointsIn applies the In predicate on the "points" field.
func PointsIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldPoints, vs...))
}

// PointsNotIn applies the NotIn predicate on the "points" field.
func PointsNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldPoints, vs...))
}

// PointsGT applies the GT predicate on the "points" field.
func PointsGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldPoints, v))
}

// PointsGTE applies the GTE predicate on the "points" field.
func PointsGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldPoints, v))
}

// PointsLT applies the LT predicate on the "points" field.
func PointsLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldPoints, v))
}

// PointsLTE applies the LTE predicate on the "points" field.
func PointsLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldPoints, v))
}

// SelectedCharacterEQ applies the EQ predicate on the "selected_character" field.
func SelectedCharacterEQ(v SelectedCharacter) predicate.User {
	return predicate.User(sql.FieldEQ(FieldSelectedCharacter, v))
}

// SelectedCharacterNEQ applies the NEQ predicate on the "selected_character" field.
func SelectedCharacterNEQ(v SelectedCharacter) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldSelectedCharacter, v))
}

// SelectedCharacterIn applies the In predicate on the "selected_character" field.
func SelectedCharacterIn(vs ...SelectedCharacter) predicate.User {
	return predicate.User(sql.FieldIn(FieldSelectedCharacter, vs...))
}

// SelectedCharacterNotIn applies the NotIn predicate on the "selected_character" field.
func SelectedCharacterNotIn(vs ...SelectedCharacter) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldSelectedCharacter, vs...))
}

// AffinitySakuraEQ applies the EQ predicate on the "affinity_sakura" field.
func AffinitySakuraEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAffinitySakura, v))
}

// AffinitySakuraNEQ applies the NEQ predicate on the "affinity_sakura" field.
func AffinitySakuraNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldAffinitySakura, v))
}

// AffinitySakuraIn applies the In predicate on the "affinity_sakura" field.
func AffinitySakuraIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldAffinitySakura, vs...))
}

// AffinitySakuraNotIn applies the NotIn predicate on the "affinity_sakura" field.
func AffinitySakuraNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldAffinitySakura, vs...))
}

// AffinitySakuraGT applies the GT predicate on the "affinity_sakura" field.
func AffinitySakuraGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldAffinitySakura, v))
}

// AffinitySakuraGTE applies the GTE predicate on the "affinity_sakura" field.
func AffinitySakuraGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldAffinitySakura, v))
}

// AffinitySakuraLT applies the LT predicate on the "affinity_sakura" field.
func AffinitySakuraLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldAffinitySakura, v))
}

// AffinitySakuraLTE applies the LTE predicate on the "affinity_sakura" field.
func AffinitySakuraLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldAffinitySakura, v))
}

// AffinityMiyabiEQ applies the EQ predicate on the "affinity_miyabi" field.
func AffinityMiyabiEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAffinityMiyabi, v))
}

// AffinityMiyabiNEQ applies the NEQ predicate on the "affinity_miyabi" field.
func AffinityMiyabiNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldAffinityMiyabi, v))
}

// AffinityMiyabiIn applies the In predicate on the "affinity_miyabi" field.
func AffinityMiyabiIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldAffinityMiyabi, vs...))
}

// AffinityMiyabiNotIn applies the NotIn predicate on the "affinity_miyabi" field.
func AffinityMiyabiNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldAffinityMiyabi, vs...))
}

// AffinityMiyabiGT applies the GT predicate on the "affinity_miyabi" field.
func AffinityMiyabiGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldAffinityMiyabi, v))
}

// AffinityMiyabiGTE applies the GTE predicate on the "affinity_miyabi" field.
func AffinityMiyabiGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldAffinityMiyabi, v))
}

// AffinityMiyabiLT applies the LT predicate on the "affinity_miyabi" field.
func AffinityMiyabiLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldAffinityMiyabi, v))
}

// AffinityMiyabiLTE applies the LTE predicate on the "affinity_miyabi" field.
func AffinityMiyabiLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldAffinityMiyabi, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasPaperLinks applies the HasEdge predicate on the "paper_links" edge.
func HasPaperLinks() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PaperLinksTable, PaperLinksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPaperLinksWith applies the HasEdge predicate on the "paper_links" edge with a given conditions (other predicates).
func HasPaperLinksWith(preds ...predicate.UserPaperLink) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newPaperLinksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCustomSummaries applies the HasEdge predicate on the "custom_summaries" edge.
func HasCustomSummaries() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CustomSummariesTable, CustomSummariesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCustomSummariesWith applies the HasEdge predicate on the "custom_summaries" edge with a given conditions (other predicates).
func HasCustomSummariesWith(preds ...predicate.CustomSummary) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newCustomSummariesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEditedSummaries applies the HasEdge predicate on the "edited_summaries" edge.
func HasEditedSummaries() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EditedSummariesTable, EditedSummariesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEditedSummariesWith applies the HasEdge predicate on the "edited_summaries" edge with a given conditions (other predicates).
func HasEditedSummariesWith(preds ...predicate.EditedSummary) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newEditedSummariesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPrompts applies the HasEdge predicate on the "prompts" edge.
func HasPrompts() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PromptsTable, PromptsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPromptsWith applies the HasEdge predicate on the "prompts" edge with a given conditions (other predicates).
func HasPromptsWith(preds ...predicate.Prompt) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newPromptsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPromptGroups applies the HasEdge predicate on the "prompt_groups" edge.
func HasPromptGroups() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PromptGroupsTable, PromptGroupsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPromptGroupsWith applies the HasEdge predicate on the "prompt_groups" edge with a given conditions (other predicates).
func HasPromptGroupsWith(preds ...predicate.PromptGroup) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newPromptGroupsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResearchSessions applies the HasEdge predicate on the "research_sessions" edge.
func HasResearchSessions() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ResearchSessionsTable, ResearchSessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResearchSessionsWith applies the HasEdge predicate on the "research_sessions" edge with a given conditions (other predicates).
func HasResearchSessionsWith(preds ...predicate.ResearchSession) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newResearchSessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChatSessions applies the HasEdge predicate on the "chat_sessions" edge.
func HasChatSessions() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChatSessionsTable, ChatSessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChatSessionsWith applies the HasEdge predicate on the "chat_sessions" edge with a given conditions (other predicates).
func HasChatSessionsWith(preds ...predicate.PaperChatSession) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newChatSessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
