// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rainzero1960/paperscout/ent/customsummary"
	"github.com/rainzero1960/paperscout/ent/editedsummary"
	"github.com/rainzero1960/paperscout/ent/paperchatsession"
	"github.com/rainzero1960/paperscout/ent/prompt"
	"github.com/rainzero1960/paperscout/ent/promptgroup"
	"github.com/rainzero1960/paperscout/ent/researchsession"
	"github.com/rainzero1960/paperscout/ent/user"
	"github.com/rainzero1960/paperscout/ent/userpaperlink"
)

// UserCreate is the builder for creating a User entity.
type UserCreate struct {
	config
	mutation *UserMutation
	hooks    []Hook
}

// SetUsername sets the "username" field.
func (_c *UserCreate) SetUsername(v string) *UserCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *UserCreate) SetDisplayName(v string) *UserCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_c *UserCreate) SetNillableDisplayName(v *string) *UserCreate {
	if v != nil {
		_c.SetDisplayName(*v)
	}
	return _c
}

// SetPoints sets the "points" field.
func (_c *UserCreate) SetPoints(v int) *UserCreate {
	_c.mutation.SetPoints(v)
	return _c
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_c *UserCreate) SetNillablePoints(v *int) *UserCreate {
	if v != nil {
		_c.SetPoints(*v)
	}
	return _c
}

// SetSelectedCharacter sets the "selected_character" field.
func (_c *UserCreate) SetSelectedCharacter(v user.SelectedCharacter) *UserCreate {
	_c.mutation.SetSelectedCharacter(v)
	return _c
}

// SetNillableSelectedCharacter sets the "selected_character" field if the given value is not nil.
func (_c *UserCreate) SetNillableSelectedCharacter(v *user.SelectedCharacter) *UserCreate {
	if v != nil {
		_c.SetSelectedCharacter(*v)
	}
	return _c
}

// SetAffinitySakura sets the "affinity_sakura" field.
func (_c *UserCreate) SetAffinitySakura(v int) *UserCreate {
	_c.mutation.SetAffinitySakura(v)
	return _c
}

// SetNillableAffinitySakura sets the "affinity_sakura" field if the given value is not nil.
func (_c *UserCreate) SetNillableAffinitySakura(v *int) *UserCreate {
	if v != nil {
		_c.SetAffinitySakura(*v)
	}
	return _c
}

// SetAffinityMiyabi sets the "affinity_miyabi" field.
func (_c *UserCreate) SetAffinityMiyabi(v int) *UserCreate {
	_c.mutation.SetAffinityMiyabi(v)
	return _c
}

// SetNillableAffinityMiyabi sets the "affinity_miyabi" field if the given value is not nil.
func (_c *UserCreate) SetNillableAffinityMiyabi(v *int) *UserCreate {
	if v != nil {
		_c.SetAffinityMiyabi(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserCreate) SetCreatedAt(v time.Time) *UserCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableCreatedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserCreate) SetUpdatedAt(v time.Time) *UserCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableUpdatedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserCreate) SetID(v string) *UserCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddPaperLinkIDs adds the "paper_links" edge to the UserPaperLink entity by IDs.
func (_c *UserCreate) AddPaperLinkIDs(ids ...string) *UserCreate {
	_c.mutation.AddPaperLinkIDs(ids...)
	return _c
}

// AddPaperLinks adds the "paper_links" edges to the UserPaperLink entity.
func (_c *UserCreate) AddPaperLinks(v ...*UserPaperLink) *UserCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPaperLinkIDs(ids...)
}

// AddCustomSummaryIDs adds the "custom_summaries" edge to the CustomSummary entity by IDs.
func (_c *UserCreate) AddCustomSummaryIDs(ids ...string) *UserCreate {
	_c.mutation.AddCustomSummaryIDs(ids...)
	return _c
}

// AddCustomSummaries adds the "custom_summaries" edges to the CustomSummary entity.
func (_c *UserCreate) AddCustomSummaries(v ...*CustomSummary) *UserCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCustomSummaryIDs(ids...)
}

// AddEditedSummaryIDs adds the "edited_summaries" edge to the EditedSummary entity by IDs.
func (_c *UserCreate) AddEditedSummaryIDs(ids ...string) *UserCreate {
	_c.mutation.AddEditedSummaryIDs(ids...)
	return _c
}

// AddEditedSummaries adds the "edited_summaries" edges to the EditedSummary entity.
func (_c *UserCreate) AddEditedSummaries(v ...*EditedSummary) *UserCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEditedSummaryIDs(ids...)
}

// AddPromptIDs adds the "prompts" edge to the Prompt entity by IDs.
func (_c *UserCreate) AddPromptIDs(ids ...string) *UserCreate {
	_c.mutation.AddPromptIDs(ids...)
	return _c
}

// AddPrompts adds the "prompts" edges to the Prompt entity.
func (_c *UserCreate) AddPrompts(v ...*Prompt) *UserCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPromptIDs(ids...)
}

// AddPromptGroupIDs adds the "prompt_groups" edge to the PromptGroup entity by IDs.
func (_c *UserCreate) AddPromptGroupIDs(ids ...string) *UserCreate {
	_c.mutation.AddPromptGroupIDs(ids...)
	return _c
}

// AddPromptGroups adds the "prompt_groups" edges to the PromptGroup entity.
func (_c *UserCreate) AddPromptGroups(v ...*PromptGroup) *UserCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPromptGroupIDs(ids...)
}

// AddResearchSessionIDs adds the "research_sessions" edge to the ResearchSession entity by IDs.
func (_c *UserCreate) AddResearchSessionIDs(ids ...string) *UserCreate {
	_c.mutation.AddResearchSessionIDs(ids...)
	return _c
}

// AddResearchSessions adds the "research_sessions" edges to the ResearchSession entity.
func (_c *UserCreate) AddResearchSessions(v ...*ResearchSession) *UserCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResearchSessionIDs(ids...)
}

// AddChatSessionIDs adds the "chat_sessions" edge to the PaperChatSession entity by IDs.
func (_c *UserCreate) AddChatSessionIDs(ids ...string) *UserCreate {
	_c.mutation.AddChatSessionIDs(ids...)
	return _c
}

// AddChatSessions adds the "chat_sessions" edges to the PaperChatSession entity.
func (_c *UserCreate) AddChatSessions(v ...*PaperChatSession) *UserCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChatSessionIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_c *UserCreate) Mutation() *UserMutation {
	return _c.mutation
}

// Save creates the User in the database.
func (_c *UserCreate) Save(ctx context.Context) (*User, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserCreate) SaveX(ctx context.Context) *User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserCreate) defaults() {
	if _, ok := _c.mutation.Points(); !ok {
		v := user.DefaultPoints
		_c.mutation.SetPoints(v)
	}
	if _, ok := _c.mutation.SelectedCharacter(); !ok {
		v := user.DefaultSelectedCharacter
		_c.mutation.SetSelectedCharacter(v)
	}
	if _, ok := _c.mutation.AffinitySakura(); !ok {
		v := user.DefaultAffinitySakura
		_c.mutation.SetAffinitySakura(v)
	}
	if _, ok := _c.mutation.AffinityMiyabi(); !ok {
		v := user.DefaultAffinityMiyabi
		_c.mutation.SetAffinityMiyabi(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := user.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := user.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserCreate) check() error {
	if _, ok := _c.mutation.Username(); !ok {
		return &ValidationError{Name: "username", err: errors.New(`ent: missing required field "User.username"`)}
	}
	if _, ok := _c.mutation.Points(); !ok {
		return &ValidationError{Name: "points", err: errors.New(`ent: missing required field "User.points"`)}
	}
	if _, ok := _c.mutation.SelectedCharacter(); !ok {
		return &ValidationError{Name: "selected_character", err: errors.New(`ent: missing required field "User.selected_character"`)}
	}
	if v, ok := _c.mutation.SelectedCharacter(); ok {
		if err := user.SelectedCharacterValidator(v); err != nil {
			return &ValidationError{Name: "selected_character", err: fmt.Errorf(`ent: validator failed for field "User.selected_character": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AffinitySakura(); !ok {
		return &ValidationError{Name: "affinity_sakura", err: errors.New(`ent: missing required field "User.affinity_sakura"`)}
	}
	if _, ok := _c.mutation.AffinityMiyabi(); !ok {
		return &ValidationError{Name: "affinity_miyabi", err: errors.New(`ent: missing required field "User.affinity_miyabi"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "User.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "User.updated_at"`)}
	}
	return nil
}

func (_c *UserCreate) sqlSave(ctx context.Context) (*User, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected User.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserCreate) createSpec() (*User, *sqlgraph.CreateSpec) {
	var (
		_node = &User{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(user.Table, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(user.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(user.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Points(); ok {
		_spec.SetField(user.FieldPoints, field.TypeInt, value)
		_node.Points = value
	}
	if value, ok := _c.mutation.SelectedCharacter(); ok {
		_spec.SetField(user.FieldSelectedCharacter, field.TypeEnum, value)
		_node.SelectedCharacter = value
	}
	if value, ok := _c.mutation.AffinitySakura(); ok {
		_spec.SetField(user.FieldAffinitySakura, field.TypeInt, value)
		_node.AffinitySakura = value
	}
	if value, ok := _c.mutation.AffinityMiyabi(); ok {
		_spec.SetField(user.FieldAffinityMiyabi, field.TypeInt, value)
		_node.AffinityMiyabi = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(user.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.PaperLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CustomSummariesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EditedSummariesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PromptsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PromptGroupsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResearchSessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChatSessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UserCreateBulk is the builder for creating many User entities in bulk.
type UserCreateBulk struct {
	config
	err      error
	builders []*UserCreate
}

// Save creates the User entities in the database.
func (_c *UserCreateBulk) Save(ctx context.Context) ([]*User, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*User, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *UserCreateBulk) SaveX(ctx context.Context) []*User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
