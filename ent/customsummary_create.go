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
	"github.com/rainzero1960/paperscout/ent/papermetadata"
	"github.com/rainzero1960/paperscout/ent/prompt"
	"github.com/rainzero1960/paperscout/ent/user"
)

// CustomSummaryCreate is the builder for creating a CustomSummary entity.
type CustomSummaryCreate struct {
	config
	mutation *CustomSummaryMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *CustomSummaryCreate) SetUserID(v string) *CustomSummaryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPaperID sets the "paper_id" field.
func (_c *CustomSummaryCreate) SetPaperID(v string) *CustomSummaryCreate {
	_c.mutation.SetPaperID(v)
	return _c
}

// SetPromptID sets the "prompt_id" field.
func (_c *CustomSummaryCreate) SetPromptID(v string) *CustomSummaryCreate {
	_c.mutation.SetPromptID(v)
	return _c
}

// SetLlmProvider sets the "llm_provider" field.
func (_c *CustomSummaryCreate) SetLlmProvider(v string) *CustomSummaryCreate {
	_c.mutation.SetLlmProvider(v)
	return _c
}

// SetLlmModel sets the "llm_model" field.
func (_c *CustomSummaryCreate) SetLlmModel(v string) *CustomSummaryCreate {
	_c.mutation.SetLlmModel(v)
	return _c
}

// SetCharacter sets the "character" field.
func (_c *CustomSummaryCreate) SetCharacter(v customsummary.Character) *CustomSummaryCreate {
	_c.mutation.SetCharacter(v)
	return _c
}

// SetNillableCharacter sets the "character" field if the given value is not nil.
func (_c *CustomSummaryCreate) SetNillableCharacter(v *customsummary.Character) *CustomSummaryCreate {
	if v != nil {
		_c.SetCharacter(*v)
	}
	return _c
}

// SetAffinity sets the "affinity" field.
func (_c *CustomSummaryCreate) SetAffinity(v int) *CustomSummaryCreate {
	_c.mutation.SetAffinity(v)
	return _c
}

// SetNillableAffinity sets the "affinity" field if the given value is not nil.
func (_c *CustomSummaryCreate) SetNillableAffinity(v *int) *CustomSummaryCreate {
	if v != nil {
		_c.SetAffinity(*v)
	}
	return _c
}

// SetBody sets the "body" field.
func (_c *CustomSummaryCreate) SetBody(v string) *CustomSummaryCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetOnePoint sets the "one_point" field.
func (_c *CustomSummaryCreate) SetOnePoint(v string) *CustomSummaryCreate {
	_c.mutation.SetOnePoint(v)
	return _c
}

// SetNillableOnePoint sets the "one_point" field if the given value is not nil.
func (_c *CustomSummaryCreate) SetNillableOnePoint(v *string) *CustomSummaryCreate {
	if v != nil {
		_c.SetOnePoint(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CustomSummaryCreate) SetCreatedAt(v time.Time) *CustomSummaryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CustomSummaryCreate) SetNillableCreatedAt(v *time.Time) *CustomSummaryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CustomSummaryCreate) SetUpdatedAt(v time.Time) *CustomSummaryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CustomSummaryCreate) SetNillableUpdatedAt(v *time.Time) *CustomSummaryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CustomSummaryCreate) SetID(v string) *CustomSummaryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *CustomSummaryCreate) SetUser(v *User) *CustomSummaryCreate {
	return _c.SetUserID(v.ID)
}

// SetPaper sets the "paper" edge to the PaperMetadata entity.
func (_c *CustomSummaryCreate) SetPaper(v *PaperMetadata) *CustomSummaryCreate {
	return _c.SetPaperID(v.ID)
}

// SetPrompt sets the "prompt" edge to the Prompt entity.
func (_c *CustomSummaryCreate) SetPrompt(v *Prompt) *CustomSummaryCreate {
	return _c.SetPromptID(v.ID)
}

// Mutation returns the CustomSummaryMutation object of the builder.
func (_c *CustomSummaryCreate) Mutation() *CustomSummaryMutation {
	return _c.mutation
}

// Save creates the CustomSummary in the database.
func (_c *CustomSummaryCreate) Save(ctx context.Context) (*CustomSummary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CustomSummaryCreate) SaveX(ctx context.Context) *CustomSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CustomSummaryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CustomSummaryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CustomSummaryCreate) defaults() {
	if _, ok := _c.mutation.Character(); !ok {
		v := customsummary.DefaultCharacter
		_c.mutation.SetCharacter(v)
	}
	if _, ok := _c.mutation.Affinity(); !ok {
		v := customsummary.DefaultAffinity
		_c.mutation.SetAffinity(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := customsummary.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := customsummary.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CustomSummaryCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CustomSummary.user_id"`)}
	}
	if _, ok := _c.mutation.PaperID(); !ok {
		return &ValidationError{Name: "paper_id", err: errors.New(`ent: missing required field "CustomSummary.paper_id"`)}
	}
	if _, ok := _c.mutation.PromptID(); !ok {
		return &ValidationError{Name: "prompt_id", err: errors.New(`ent: missing required field "CustomSummary.prompt_id"`)}
	}
	if _, ok := _c.mutation.LlmProvider(); !ok {
		return &ValidationError{Name: "llm_provider", err: errors.New(`ent: missing required field "CustomSummary.llm_provider"`)}
	}
	if _, ok := _c.mutation.LlmModel(); !ok {
		return &ValidationError{Name: "llm_model", err: errors.New(`ent: missing required field "CustomSummary.llm_model"`)}
	}
	if _, ok := _c.mutation.Character(); !ok {
		return &ValidationError{Name: "character", err: errors.New(`ent: missing required field "CustomSummary.character"`)}
	}
	if v, ok := _c.mutation.Character(); ok {
		if err := customsummary.CharacterValidator(v); err != nil {
			return &ValidationError{Name: "character", err: fmt.Errorf(`ent: validator failed for field "CustomSummary.character": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Affinity(); !ok {
		return &ValidationError{Name: "affinity", err: errors.New(`ent: missing required field "CustomSummary.affinity"`)}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "CustomSummary.body"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CustomSummary.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CustomSummary.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "CustomSummary.user"`)}
	}
	if len(_c.mutation.PaperIDs()) == 0 {
		return &ValidationError{Name: "paper", err: errors.New(`ent: missing required edge "CustomSummary.paper"`)}
	}
	if len(_c.mutation.PromptIDs()) == 0 {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required edge "CustomSummary.prompt"`)}
	}
	return nil
}

func (_c *CustomSummaryCreate) sqlSave(ctx context.Context) (*CustomSummary, error) {
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
			return nil, fmt.Errorf("unexpected CustomSummary.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CustomSummaryCreate) createSpec() (*CustomSummary, *sqlgraph.CreateSpec) {
	var (
		_node = &CustomSummary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(customsummary.Table, sqlgraph.NewFieldSpec(customsummary.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.LlmProvider(); ok {
		_spec.SetField(customsummary.FieldLlmProvider, field.TypeString, value)
		_node.LlmProvider = value
	}
	if value, ok := _c.mutation.LlmModel(); ok {
		_spec.SetField(customsummary.FieldLlmModel, field.TypeString, value)
		_node.LlmModel = value
	}
	if value, ok := _c.mutation.Character(); ok {
		_spec.SetField(customsummary.FieldCharacter, field.TypeEnum, value)
		_node.Character = value
	}
	if value, ok := _c.mutation.Affinity(); ok {
		_spec.SetField(customsummary.FieldAffinity, field.TypeInt, value)
		_node.Affinity = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(customsummary.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.OnePoint(); ok {
		_spec.SetField(customsummary.FieldOnePoint, field.TypeString, value)
		_node.OnePoint = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(customsummary.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(customsummary.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   customsummary.UserTable,
			Columns: []string{customsummary.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PaperIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   customsummary.PaperTable,
			Columns: []string{customsummary.PaperColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(papermetadata.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PaperID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PromptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   customsummary.PromptTable,
			Columns: []string{customsummary.PromptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PromptID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CustomSummaryCreateBulk is the builder for creating many CustomSummary entities in bulk.
type CustomSummaryCreateBulk struct {
	config
	err      error
	builders []*CustomSummaryCreate
}

// Save creates the CustomSummary entities in the database.
func (_c *CustomSummaryCreateBulk) Save(ctx context.Context) ([]*CustomSummary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CustomSummary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CustomSummaryMutation)
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
func (_c *CustomSummaryCreateBulk) SaveX(ctx context.Context) []*CustomSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CustomSummaryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CustomSummaryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
