// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rainzero1960/paperscout/ent/customsummary"
	"github.com/rainzero1960/paperscout/ent/editedsummary"
	"github.com/rainzero1960/paperscout/ent/paperchatsession"
	"github.com/rainzero1960/paperscout/ent/predicate"
	"github.com/rainzero1960/paperscout/ent/prompt"
	"github.com/rainzero1960/paperscout/ent/promptgroup"
	"github.com/rainzero1960/paperscout/ent/researchsession"
	"github.com/rainzero1960/paperscout/ent/user"
	"github.com/rainzero1960/paperscout/ent/userpaperlink"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUsername sets the "username" field.
func (_u *UserUpdate) SetUsername(v string) *UserUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *UserUpdate) SetNillableUsername(v *string) *UserUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *UserUpdate) SetDisplayName(v string) *UserUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *UserUpdate) SetNillableDisplayName(v *string) *UserUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *UserUpdate) ClearDisplayName() *UserUpdate {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetPoints sets the "points" field.
func (_u *UserUpdate) SetPoints(v int) *UserUpdate {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePoints(v *int) *UserUpdate {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *UserUpdate) AddPoints(v int) *UserUpdate {
	_u.mutation.AddPoints(v)
	return _u
}

// SetSelectedCharacter sets the "selected_character" field.
func (_u *UserUpdate) SetSelectedCharacter(v user.SelectedCharacter) *UserUpdate {
	_u.mutation.SetSelectedCharacter(v)
	return _u
}

// SetNillableSelectedCharacter sets the "selected_character" field if the given value is not nil.
func (_u *UserUpdate) SetNillableSelectedCharacter(v *user.SelectedCharacter) *UserUpdate {
	if v != nil {
		_u.SetSelectedCharacter(*v)
	}
	return _u
}

// SetAffinitySakura sets the "affinity_sakura" field.
func (_u *UserUpdate) SetAffinitySakura(v int) *UserUpdate {
	_u.mutation.ResetAffinitySakura()
	_u.mutation.SetAffinitySakura(v)
	return _u
}

// SetNillableAffinitySakura sets the "affinity_sakura" field if the given value is not nil.
func (_u *UserUpdate) SetNillableAffinitySakura(v *int) *UserUpdate {
	if v != nil {
		_u.SetAffinitySakura(*v)
	}
	return _u
}

// AddAffinitySakura adds value to the "affinity_sakura" field.
func (_u *UserUpdate) AddAffinitySakura(v int) *UserUpdate {
	_u.mutation.AddAffinitySakura(v)
	return _u
}

// SetAffinityMiyabi sets the "affinity_miyabi" field.
func (_u *UserUpdate) SetAffinityMiyabi(v int) *UserUpdate {
	_u.mutation.ResetAffinityMiyabi()
	_u.mutation.SetAffinityMiyabi(v)
	return _u
}

// SetNillableAffinityMiyabi sets the "affinity_miyabi" field if the given value is not nil.
func (_u *UserUpdate) SetNillableAffinityMiyabi(v *int) *UserUpdate {
	if v != nil {
		_u.SetAffinityMiyabi(*v)
	}
	return _u
}

// AddAffinityMiyabi adds value to the "affinity_miyabi" field.
func (_u *UserUpdate) AddAffinityMiyabi(v int) *UserUpdate {
	_u.mutation.AddAffinityMiyabi(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdate) SetUpdatedAt(v time.Time) *UserUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddPaperLinkIDs adds the "paper_links" edge to the UserPaperLink entity by IDs.
func (_u *UserUpdate) AddPaperLinkIDs(ids ...string) *UserUpdate {
	_u.mutation.AddPaperLinkIDs(ids...)
	return _u
}

// AddPaperLinks adds the "paper_links" edges to the UserPaperLink entity.
func (_u *UserUpdate) AddPaperLinks(v ...*UserPaperLink) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPaperLinkIDs(ids...)
}

// AddCustomSummaryIDs adds the "custom_summaries" edge to the CustomSummary entity by IDs.
func (_u *UserUpdate) AddCustomSummaryIDs(ids ...string) *UserUpdate {
	_u.mutation.AddCustomSummaryIDs(ids...)
	return _u
}

// AddCustomSummaries adds the "custom_summaries" edges to the CustomSummary entity.
func (_u *UserUpdate) AddCustomSummaries(v ...*CustomSummary) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCustomSummaryIDs(ids...)
}

// AddEditedSummaryIDs adds the "edited_summaries" edge to the EditedSummary entity by IDs.
func (_u *UserUpdate) AddEditedSummaryIDs(ids ...string) *UserUpdate {
	_u.mutation.AddEditedSummaryIDs(ids...)
	return _u
}

// AddEditedSummaries adds the "edited_summaries" edges to the EditedSummary entity.
func (_u *UserUpdate) AddEditedSummaries(v ...*EditedSummary) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEditedSummaryIDs(ids...)
}

// AddPromptIDs adds the "prompts" edge to the Prompt entity by IDs.
func (_u *UserUpdate) AddPromptIDs(ids ...string) *UserUpdate {
	_u.mutation.AddPromptIDs(ids...)
	return _u
}

// AddPrompts adds the "prompts" edges to the Prompt entity.
func (_u *UserUpdate) AddPrompts(v ...*Prompt) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPromptIDs(ids...)
}

// AddPromptGroupIDs adds the "prompt_groups" edge to the PromptGroup entity by IDs.
func (_u *UserUpdate) AddPromptGroupIDs(ids ...string) *UserUpdate {
	_u.mutation.AddPromptGroupIDs(ids...)
	return _u
}

// AddPromptGroups adds the "prompt_groups" edges to the PromptGroup entity.
func (_u *UserUpdate) AddPromptGroups(v ...*PromptGroup) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPromptGroupIDs(ids...)
}

// AddResearchSessionIDs adds the "research_sessions" edge to the ResearchSession entity by IDs.
func (_u *UserUpdate) AddResearchSessionIDs(ids ...string) *UserUpdate {
	_u.mutation.AddResearchSessionIDs(ids...)
	return _u
}

// AddResearchSessions adds the "research_sessions" edges to the ResearchSession entity.
func (_u *UserUpdate) AddResearchSessions(v ...*ResearchSession) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResearchSessionIDs(ids...)
}

// AddChatSessionIDs adds the "chat_sessions" edge to the PaperChatSession entity by IDs.
func (_u *UserUpdate) AddChatSessionIDs(ids ...string) *UserUpdate {
	_u.mutation.AddChatSessionIDs(ids...)
	return _u
}

// AddChatSessions adds the "chat_sessions" edges to the PaperChatSession entity.
func (_u *UserUpdate) AddChatSessions(v ...*PaperChatSession) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatSessionIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// ClearPaperLinks clears all "paper_links" edges to the UserPaperLink entity.
func (_u *UserUpdate) ClearPaperLinks() *UserUpdate {
	_u.mutation.ClearPaperLinks()
	return _u
}

// RemovePaperLinkIDs removes the "paper_links" edge to UserPaperLink entities by IDs.
func (_u *UserUpdate) RemovePaperLinkIDs(ids ...string) *UserUpdate {
	_u.mutation.RemovePaperLinkIDs(ids...)
	return _u
}

// RemovePaperLinks removes "paper_links" edges to UserPaperLink entities.
func (_u *UserUpdate) RemovePaperLinks(v ...*UserPaperLink) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePaperLinkIDs(ids...)
}

// ClearCustomSummaries clears all "custom_summaries" edges to the CustomSummary entity.
func (_u *UserUpdate) ClearCustomSummaries() *UserUpdate {
	_u.mutation.ClearCustomSummaries()
	return _u
}

// RemoveCustomSummaryIDs removes the "custom_summaries" edge to CustomSummary entities by IDs.
func (_u *UserUpdate) RemoveCustomSummaryIDs(ids ...string) *UserUpdate {
	_u.mutation.RemoveCustomSummaryIDs(ids...)
	return _u
}

// RemoveCustomSummaries removes "custom_summaries" edges to CustomSummary entities.
func (_u *UserUpdate) RemoveCustomSummaries(v ...*CustomSummary) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCustomSummaryIDs(ids...)
}

// ClearEditedSummaries clears all "edited_summaries" edges to the EditedSummary entity.
func (_u *UserUpdate) ClearEditedSummaries() *UserUpdate {
	_u.mutation.ClearEditedSummaries()
	return _u
}

// RemoveEditedSummaryIDs removes the "edited_summaries" edge to EditedSummary entities by IDs.
func (_u *UserUpdate) RemoveEditedSummaryIDs(ids ...string) *UserUpdate {
	_u.mutation.RemoveEditedSummaryIDs(ids...)
	return _u
}

// RemoveEditedSummaries removes "edited_summaries" edges to EditedSummary entities.
func (_u *UserUpdate) RemoveEditedSummaries(v ...*EditedSummary) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEditedSummaryIDs(ids...)
}

// ClearPrompts clears all "prompts" edges to the Prompt entity.
func (_u *UserUpdate) ClearPrompts() *UserUpdate {
	_u.mutation.ClearPrompts()
	return _u
}

// RemovePromptIDs removes the "prompts" edge to Prompt entities by IDs.
func (_u *UserUpdate) RemovePromptIDs(ids ...string) *UserUpdate {
	_u.mutation.RemovePromptIDs(ids...)
	return _u
}

// RemovePrompts removes "prompts" edges to Prompt entities.
func (_u *UserUpdate) RemovePrompts(v ...*Prompt) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePromptIDs(ids...)
}

// ClearPromptGroups clears all "prompt_groups" edges to the PromptGroup entity.
func (_u *UserUpdate) ClearPromptGroups() *UserUpdate {
	_u.mutation.ClearPromptGroups()
	return _u
}

// RemovePromptGroupIDs removes the "prompt_groups" edge to PromptGroup entities by IDs.
func (_u *UserUpdate) RemovePromptGroupIDs(ids ...string) *UserUpdate {
	_u.mutation.RemovePromptGroupIDs(ids...)
	return _u
}

// RemovePromptGroups removes "prompt_groups" edges to PromptGroup entities.
func (_u *UserUpdate) RemovePromptGroups(v ...*PromptGroup) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePromptGroupIDs(ids...)
}

// ClearResearchSessions clears all "research_sessions" edges to the ResearchSession entity.
func (_u *UserUpdate) ClearResearchSessions() *UserUpdate {
	_u.mutation.ClearResearchSessions()
	return _u
}

// RemoveResearchSessionIDs removes the "research_sessions" edge to ResearchSession entities by IDs.
func (_u *UserUpdate) RemoveResearchSessionIDs(ids ...string) *UserUpdate {
	_u.mutation.RemoveResearchSessionIDs(ids...)
	return _u
}

// RemoveResearchSessions removes "research_sessions" edges to ResearchSession entities.
func (_u *UserUpdate) RemoveResearchSessions(v ...*ResearchSession) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResearchSessionIDs(ids...)
}

// ClearChatSessions clears all "chat_sessions" edges to the PaperChatSession entity.
func (_u *UserUpdate) ClearChatSessions() *UserUpdate {
	_u.mutation.ClearChatSessions()
	return _u
}

// RemoveChatSessionIDs removes the "chat_sessions" edge to PaperChatSession entities by IDs.
func (_u *UserUpdate) RemoveChatSessionIDs(ids ...string) *UserUpdate {
	_u.mutation.RemoveChatSessionIDs(ids...)
	return _u
}

// RemoveChatSessions removes "chat_sessions" edges to PaperChatSession entities.
func (_u *UserUpdate) RemoveChatSessions(v ...*PaperChatSession) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatSessionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdate) check() error {
	if v, ok := _u.mutation.SelectedCharacter(); ok {
		if err := user.SelectedCharacterValidator(v); err != nil {
			return &ValidationError{Name: "selected_character", err: fmt.Errorf(`ent: validator failed for field "User.selected_character": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(user.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(user.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(user.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(user.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(user.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SelectedCharacter(); ok {
		_spec.SetField(user.FieldSelectedCharacter, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AffinitySakura(); ok {
		_spec.SetField(user.FieldAffinitySakura, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAffinitySakura(); ok {
		_spec.AddField(user.FieldAffinitySakura, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AffinityMiyabi(); ok {
		_spec.SetField(user.FieldAffinityMiyabi, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAffinityMiyabi(); ok {
		_spec.AddField(user.FieldAffinityMiyabi, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PaperLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.PaperLinksTable,
			Columns: []string{user.PaperLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userpaperlink.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPaperLinksIDs(); len(nodes) > 0 && !_u.mutation.PaperLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.PaperLinksTable,
			Columns: []string{user.PaperLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userpaperlink.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PaperLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.PaperLinksTable,
			Columns: []string{user.PaperLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userpaperlink.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CustomSummariesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CustomSummariesTable,
			Columns: []string{user.CustomSummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customsummary.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCustomSummariesIDs(); len(nodes) > 0 && !_u.mutation.CustomSummariesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CustomSummariesTable,
			Columns: []string{user.CustomSummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customsummary.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CustomSummariesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CustomSummariesTable,
			Columns: []string{user.CustomSummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customsummary.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EditedSummariesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.EditedSummariesTable,
			Columns: []string{user.EditedSummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(editedsummary.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEditedSummariesIDs(); len(nodes) > 0 && !_u.mutation.EditedSummariesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.EditedSummariesTable,
			Columns: []string{user.EditedSummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(editedsummary.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EditedSummariesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.EditedSummariesTable,
			Columns: []string{user.EditedSummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(editedsummary.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PromptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.PromptsTable,
			Columns: []string{user.PromptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPromptsIDs(); len(nodes) > 0 && !_u.mutation.PromptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.PromptsTable,
			Columns: []string{user.PromptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PromptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.PromptsTable,
			Columns: []string{user.PromptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PromptGroupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.PromptGroupsTable,
			Columns: []string{user.PromptGroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promptgroup.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPromptGroupsIDs(); len(nodes) > 0 && !_u.mutation.PromptGroupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.PromptGroupsTable,
			Columns: []string{user.PromptGroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promptgroup.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PromptGroupsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.PromptGroupsTable,
			Columns: []string{user.PromptGroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promptgroup.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResearchSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ResearchSessionsTable,
			Columns: []string{user.ResearchSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResearchSessionsIDs(); len(nodes) > 0 && !_u.mutation.ResearchSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ResearchSessionsTable,
			Columns: []string{user.ResearchSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResearchSessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ResearchSessionsTable,
			Columns: []string{user.ResearchSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ChatSessionsTable,
			Columns: []string{user.ChatSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paperchatsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatSessionsIDs(); len(nodes) > 0 && !_u.mutation.ChatSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ChatSessionsTable,
			Columns: []string{user.ChatSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paperchatsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatSessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ChatSessionsTable,
			Columns: []string{user.ChatSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paperchatsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetUsername sets the "username" field.
func (_u *UserUpdateOne) SetUsername(v string) *UserUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableUsername(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *UserUpdateOne) SetDisplayName(v string) *UserUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableDisplayName(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *UserUpdateOne) ClearDisplayName() *UserUpdateOne {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetPoints sets the "points" field.
func (_u *UserUpdateOne) SetPoints(v int) *UserUpdateOne {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePoints(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *UserUpdateOne) AddPoints(v int) *UserUpdateOne {
	_u.mutation.AddPoints(v)
	return _u
}

// SetSelectedCharacter sets the "selected_character" field.
func (_u *UserUpdateOne) SetSelectedCharacter(v user.SelectedCharacter) *UserUpdateOne {
	_u.mutation.SetSelectedCharacter(v)
	return _u
}

// SetNillableSelectedCharacter sets the "selected_character" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableSelectedCharacter(v *user.SelectedCharacter) *UserUpdateOne {
	if v != nil {
		_u.SetSelectedCharacter(*v)
	}
	return _u
}

// SetAffinitySakura sets the "affinity_sakura" field.
func (_u *UserUpdateOne) SetAffinitySakura(v int) *UserUpdateOne {
	_u.mutation.ResetAffinitySakura()
	_u.mutation.SetAffinitySakura(v)
	return _u
}

// SetNillableAffinitySakura sets the "affinity_sakura" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableAffinitySakura(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetAffinitySakura(*v)
	}
	return _u
}

// AddAffinitySakura adds value to the "affinity_sakura" field.
func (_u *UserUpdateOne) AddAffinitySakura(v int) *UserUpdateOne {
	_u.mutation.AddAffinitySakura(v)
	return _u
}

// SetAffinityMiyabi sets the "affinity_miyabi" field.
func (_u *UserUpdateOne) SetAffinityMiyabi(v int) *UserUpdateOne {
	_u.mutation.ResetAffinityMiyabi()
	_u.mutation.SetAffinityMiyabi(v)
	return _u
}

// SetNillableAffinityMiyabi sets the "affinity_miyabi" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableAffinityMiyabi(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetAffinityMiyabi(*v)
	}
	return _u
}

// AddAffinityMiyabi adds value to the "affinity_miyabi" field.
func (_u *UserUpdateOne) AddAffinityMiyabi(v int) *UserUpdateOne {
	_u.mutation.AddAffinityMiyabi(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdateOne) SetUpdatedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddPaperLinkIDs adds the "paper_links" edge to the UserPaperLink entity by IDs.
func (_u *UserUpdateOne) AddPaperLinkIDs(ids ...string) *UserUpdateOne {
	_u.mutation.AddPaperLinkIDs(ids...)
	return _u
}

// AddPaperLinks adds the "paper_links" edges to the UserPaperLink entity.
func (_u *UserUpdateOne) AddPaperLinks(v ...*UserPaperLink) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPaperLinkIDs(ids...)
}

// AddCustomSummaryIDs adds the "custom_summaries" edge to the CustomSummary entity by IDs.
func (_u *UserUpdateOne) AddCustomSummaryIDs(ids ...string) *UserUpdateOne {
	_u.mutation.AddCustomSummaryIDs(ids...)
	return _u
}

// AddCustomSummaries adds the "custom_summaries" edges to the CustomSummary entity.
func (_u *UserUpdateOne) AddCustomSummaries(v ...*CustomSummary) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCustomSummaryIDs(ids...)
}

// AddEditedSummaryIDs adds the "edited_summaries" edge to the EditedSummary entity by IDs.
func (_u *UserUpdateOne) AddEditedSummaryIDs(ids ...string) *UserUpdateOne {
	_u.mutation.AddEditedSummaryIDs(ids...)
	return _u
}

// AddEditedSummaries adds the "edited_summaries" edges to the EditedSummary entity.
func (_u *UserUpdateOne) AddEditedSummaries(v ...*EditedSummary) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEditedSummaryIDs(ids...)
}

// AddPromptIDs adds the "prompts" edge to the Prompt entity by IDs.
func (_u *UserUpdateOne) AddPromptIDs(ids ...string) *UserUpdateOne {
	_u.mutation.AddPromptIDs(ids...)
	return _u
}

// AddPrompts adds the "prompts" edges to the Prompt entity.
func (_u *UserUpdateOne) AddPrompts(v ...*Prompt) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPromptIDs(ids...)
}

// AddPromptGroupIDs adds the "prompt_groups" edge to the PromptGroup entity by IDs.
func (_u *UserUpdateOne) AddPromptGroupIDs(ids ...string) *UserUpdateOne {
	_u.mutation.AddPromptGroupIDs(ids...)
	return _u
}

// AddPromptGroups adds the "prompt_groups" edges to the PromptGroup entity.
func (_u *UserUpdateOne) AddPromptGroups(v ...*PromptGroup) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPromptGroupIDs(ids...)
}

// AddResearchSessionIDs adds the "research_sessions" edge to the ResearchSession entity by IDs.
func (_u *UserUpdateOne) AddResearchSessionIDs(ids ...string) *UserUpdateOne {
	_u.mutation.AddResearchSessionIDs(ids...)
	return _u
}

// AddResearchSessions adds the "research_sessions" edges to the ResearchSession entity.
func (_u *UserUpdateOne) AddResearchSessions(v ...*ResearchSession) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResearchSessionIDs(ids...)
}

// AddChatSessionIDs adds the "chat_sessions" edge to the PaperChatSession entity by IDs.
func (_u *UserUpdateOne) AddChatSessionIDs(ids ...string) *UserUpdateOne {
	_u.mutation.AddChatSessionIDs(ids...)
	return _u
}

// AddChatSessions adds the "chat_sessions" edges to the PaperChatSession entity.
func (_u *UserUpdateOne) AddChatSessions(v ...*PaperChatSession) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatSessionIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// ClearPaperLinks clears all "paper_links" edges to the UserPaperLink entity.
func (_u *UserUpdateOne) ClearPaperLinks() *UserUpdateOne {
	_u.mutation.ClearPaperLinks()
	return _u
}

// RemovePaperLinkIDs removes the "paper_links" edge to UserPaperLink entities by IDs.
func (_u *UserUpdateOne) RemovePaperLinkIDs(ids ...string) *UserUpdateOne {
	_u.mutation.RemovePaperLinkIDs(ids...)
	return _u
}

// RemovePaperLinks removes "paper_links" edges to UserPaperLink entities.
func (_u *UserUpdateOne) RemovePaperLinks(v ...*UserPaperLink) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePaperLinkIDs(ids...)
}

// ClearCustomSummaries clears all "custom_summaries" edges to the CustomSummary entity.
func (_u *UserUpdateOne) ClearCustomSummaries() *UserUpdateOne {
	_u.mutation.ClearCustomSummaries()
	return _u
}

// RemoveCustomSummaryIDs removes the "custom_summaries" edge to CustomSummary entities by IDs.
func (_u *UserUpdateOne) RemoveCustomSummaryIDs(ids ...string) *UserUpdateOne {
	_u.mutation.RemoveCustomSummaryIDs(ids...)
	return _u
}

// RemoveCustomSummaries removes "custom_summaries" edges to CustomSummary entities.
func (_u *UserUpdateOne) RemoveCustomSummaries(v ...*CustomSummary) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCustomSummaryIDs(ids...)
}

// ClearEditedSummaries clears all "edited_summaries" edges to the EditedSummary entity.
func (_u *UserUpdateOne) ClearEditedSummaries() *UserUpdateOne {
	_u.mutation.ClearEditedSummaries()
	return _u
}

// RemoveEditedSummaryIDs removes the "edited_summaries" edge to EditedSummary entities by IDs.
func (_u *UserUpdateOne) RemoveEditedSummaryIDs(ids ...string) *UserUpdateOne {
	_u.mutation.RemoveEditedSummaryIDs(ids...)
	return _u
}

// RemoveEditedSummaries removes "edited_summaries" edges to EditedSummary entities.
func (_u *UserUpdateOne) RemoveEditedSummaries(v ...*EditedSummary) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEditedSummaryIDs(ids...)
}

// ClearPrompts clears all "prompts" edges to the Prompt entity.
func (_u *UserUpdateOne) ClearPrompts() *UserUpdateOne {
	_u.mutation.ClearPrompts()
	return _u
}

// RemovePromptIDs removes the "prompts" edge to Prompt entities by IDs.
func (_u *UserUpdateOne) RemovePromptIDs(ids ...string) *UserUpdateOne {
	_u.mutation.RemovePromptIDs(ids...)
	return _u
}

// RemovePrompts removes "prompts" edges to Prompt entities.
func (_u *UserUpdateOne) RemovePrompts(v ...*Prompt) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePromptIDs(ids...)
}

// ClearPromptGroups clears all "prompt_groups" edges to the PromptGroup entity.
func (_u *UserUpdateOne) ClearPromptGroups() *UserUpdateOne {
	_u.mutation.ClearPromptGroups()
	return _u
}

// RemovePromptGroupIDs removes the "prompt_groups" edge to PromptGroup entities by IDs.
func (_u *UserUpdateOne) RemovePromptGroupIDs(ids ...string) *UserUpdateOne {
	_u.mutation.RemovePromptGroupIDs(ids...)
	return _u
}

// RemovePromptGroups removes "prompt_groups" edges to PromptGroup entities.
func (_u *UserUpdateOne) RemovePromptGroups(v ...*PromptGroup) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePromptGroupIDs(ids...)
}

// ClearResearchSessions clears all "research_sessions" edges to the ResearchSession entity.
func (_u *UserUpdateOne) ClearResearchSessions() *UserUpdateOne {
	_u.mutation.ClearResearchSessions()
	return _u
}

// RemoveResearchSessionIDs removes the "research_sessions" edge to ResearchSession entities by IDs.
func (_u *UserUpdateOne) RemoveResearchSessionIDs(ids ...string) *UserUpdateOne {
	_u.mutation.RemoveResearchSessionIDs(ids...)
	return _u
}

// RemoveResearchSessions removes "research_sessions" edges to ResearchSession entities.
func (_u *UserUpdateOne) RemoveResearchSessions(v ...*ResearchSession) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResearchSessionIDs(ids...)
}

// ClearChatSessions clears all "chat_sessions" edges to the PaperChatSession entity.
func (_u *UserUpdateOne) ClearChatSessions() *UserUpdateOne {
	_u.mutation.ClearChatSessions()
	return _u
}

// RemoveChatSessionIDs removes the "chat_sessions" edge to PaperChatSession entities by IDs.
func (_u *UserUpdateOne) RemoveChatSessionIDs(ids ...string) *UserUpdateOne {
	_u.mutation.RemoveChatSessionIDs(ids...)
	return _u
}

// RemoveChatSessions removes "chat_sessions" edges to PaperChatSession entities.
func (_u *UserUpdateOne) RemoveChatSessions(v ...*PaperChatSession) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatSessionIDs(ids...)
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdateOne) check() error {
	if v, ok := _u.mutation.SelectedCharacter(); ok {
		if err := user.SelectedCharacterValidator(v); err != nil {
			return &ValidationError{Name: "selected_character", err: fmt.Errorf(`ent: validator failed for field "User.selected_character": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(user.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(user.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(user.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(user.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(user.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SelectedCharacter(); ok {
		_spec.SetField(user.FieldSelectedCharacter, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AffinitySakura(); ok {
		_spec.SetField(user.FieldAffinitySakura, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAffinitySakura(); ok {
		_spec.AddField(user.FieldAffinitySakura, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AffinityMiyabi(); ok {
		_spec.SetField(user.FieldAffinityMiyabi, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAffinityMiyabi(); ok {
		_spec.AddField(user.FieldAffinityMiyabi, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PaperLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.PaperLinksTable,
			Columns: []string{user.PaperLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userpaperlink.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPaperLinksIDs(); len(nodes) > 0 && !_u.mutation.PaperLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.PaperLinksTable,
			Columns: []string{user.PaperLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userpaperlink.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PaperLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.PaperLinksTable,
			Columns: []string{user.PaperLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(userpaperlink.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CustomSummariesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CustomSummariesTable,
			Columns: []string{user.CustomSummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customsummary.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCustomSummariesIDs(); len(nodes) > 0 && !_u.mutation.CustomSummariesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CustomSummariesTable,
			Columns: []string{user.CustomSummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customsummary.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CustomSummariesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CustomSummariesTable,
			Columns: []string{user.CustomSummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customsummary.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EditedSummariesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.EditedSummariesTable,
			Columns: []string{user.EditedSummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(editedsummary.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEditedSummariesIDs(); len(nodes) > 0 && !_u.mutation.EditedSummariesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.EditedSummariesTable,
			Columns: []string{user.EditedSummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(editedsummary.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EditedSummariesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.EditedSummariesTable,
			Columns: []string{user.EditedSummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(editedsummary.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PromptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.PromptsTable,
			Columns: []string{user.PromptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPromptsIDs(); len(nodes) > 0 && !_u.mutation.PromptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.PromptsTable,
			Columns: []string{user.PromptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PromptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.PromptsTable,
			Columns: []string{user.PromptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PromptGroupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.PromptGroupsTable,
			Columns: []string{user.PromptGroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promptgroup.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPromptGroupsIDs(); len(nodes) > 0 && !_u.mutation.PromptGroupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.PromptGroupsTable,
			Columns: []string{user.PromptGroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promptgroup.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PromptGroupsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.PromptGroupsTable,
			Columns: []string{user.PromptGroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promptgroup.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResearchSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ResearchSessionsTable,
			Columns: []string{user.ResearchSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResearchSessionsIDs(); len(nodes) > 0 && !_u.mutation.ResearchSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ResearchSessionsTable,
			Columns: []string{user.ResearchSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResearchSessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ResearchSessionsTable,
			Columns: []string{user.ResearchSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ChatSessionsTable,
			Columns: []string{user.ChatSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paperchatsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatSessionsIDs(); len(nodes) > 0 && !_u.mutation.ChatSessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ChatSessionsTable,
			Columns: []string{user.ChatSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paperchatsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatSessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ChatSessionsTable,
			Columns: []string{user.ChatSessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paperchatsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
