// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rainzero1960/paperscout/ent/defaultsummary"
	"github.com/rainzero1960/paperscout/ent/papermetadata"
)

// DefaultSummaryCreate is the builder for creating a DefaultSummary entity.
type DefaultSummaryCreate struct {
	config
	mutation *DefaultSummaryMutation
	hooks    []Hook
}

// SetPaperID sets the "paper_id" field.
func (_c *DefaultSummaryCreate) SetPaperID(v string) *DefaultSummaryCreate {
	_c.mutation.SetPaperID(v)
	return _c
}

// SetLlmProvider sets the "llm_provider" field.
func (_c *DefaultSummaryCreate) SetLlmProvider(v string) *DefaultSummaryCreate {
	_c.mutation.SetLlmProvider(v)
	return _c
}

// SetLlmModel sets the "llm_model" field.
func (_c *DefaultSummaryCreate) SetLlmModel(v string) *DefaultSummaryCreate {
	_c.mutation.SetLlmModel(v)
	return _c
}

// SetCharacter sets the "character" field.
func (_c *DefaultSummaryCreate) SetCharacter(v defaultsummary.Character) *DefaultSummaryCreate {
	_c.mutation.SetCharacter(v)
	return _c
}

// SetNillableCharacter sets the "character" field if the given value is not nil.
func (_c *DefaultSummaryCreate) SetNillableCharacter(v *defaultsummary.Character) *DefaultSummaryCreate {
	if v != nil {
		_c.SetCharacter(*v)
	}
	return _c
}

// SetAffinity sets the "affinity" field.
func (_c *DefaultSummaryCreate) SetAffinity(v int) *DefaultSummaryCreate {
	_c.mutation.SetAffinity(v)
	return _c
}

// SetNillableAffinity sets the "affinity" field if the given value is not nil.
func (_c *DefaultSummaryCreate) SetNillableAffinity(v *int) *DefaultSummaryCreate {
	if v != nil {
		_c.SetAffinity(*v)
	}
	return _c
}

// SetBody sets the "body" field.
func (_c *DefaultSummaryCreate) SetBody(v string) *DefaultSummaryCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetOnePoint sets the "one_point" field.
func (_c *DefaultSummaryCreate) SetOnePoint(v string) *DefaultSummaryCreate {
	_c.mutation.SetOnePoint(v)
	return _c
}

// SetNillableOnePoint sets the "one_point" field if the given value is not nil.
func (_c *DefaultSummaryCreate) SetNillableOnePoint(v *string) *DefaultSummaryCreate {
	if v != nil {
		_c.SetOnePoint(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DefaultSummaryCreate) SetCreatedAt(v time.Time) *DefaultSummaryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DefaultSummaryCreate) SetNillableCreatedAt(v *time.Time) *DefaultSummaryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DefaultSummaryCreate) SetUpdatedAt(v time.Time) *DefaultSummaryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DefaultSummaryCreate) SetNillableUpdatedAt(v *time.Time) *DefaultSummaryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DefaultSummaryCreate) SetID(v string) *DefaultSummaryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetPaper sets the "paper" edge to the PaperMetadata entity.
func (_c *DefaultSummaryCreate) SetPaper(v *PaperMetadata) *DefaultSummaryCreate {
	return _c.SetPaperID(v.ID)
}

// Mutation returns the DefaultSummaryMutation object of the builder.
func (_c *DefaultSummaryCreate) Mutation() *DefaultSummaryMutation {
	return _c.mutation
}

// Save creates the DefaultSummary in the database.
func (_c *DefaultSummaryCreate) Save(ctx context.Context) (*DefaultSummary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DefaultSummaryCreate) SaveX(ctx context.Context) *DefaultSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DefaultSummaryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DefaultSummaryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DefaultSummaryCreate) defaults() {
	if _, ok := _c.mutation.Character(); !ok {
		v := defaultsummary.DefaultCharacter
		_c.mutation.SetCharacter(v)
	}
	if _, ok := _c.mutation.Affinity(); !ok {
		v := defaultsummary.DefaultAffinity
		_c.mutation.SetAffinity(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := defaultsummary.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := defaultsummary.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DefaultSummaryCreate) check() error {
	if _, ok := _c.mutation.PaperID(); !ok {
		return &ValidationError{Name: "paper_id", err: errors.New(`ent: missing required field "DefaultSummary.paper_id"`)}
	}
	if _, ok := _c.mutation.LlmProvider(); !ok {
		return &ValidationError{Name: "llm_provider", err: errors.New(`ent: missing required field "DefaultSummary.llm_provider"`)}
	}
	if _, ok := _c.mutation.LlmModel(); !ok {
		return &ValidationError{Name: "llm_model", err: errors.New(`ent: missing required field "DefaultSummary.llm_model"`)}
	}
	if _, ok := _c.mutation.Character(); !ok {
		return &ValidationError{Name: "character", err: errors.New(`ent: missing required field "DefaultSummary.character"`)}
	}
	if v, ok := _c.mutation.Character(); ok {
		if err := defaultsummary.CharacterValidator(v); err != nil {
			return &ValidationError{Name: "character", err: fmt.Errorf(`ent: validator failed for field "DefaultSummary.character": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Affinity(); !ok {
		return &ValidationError{Name: "affinity", err: errors.New(`ent: missing required field "DefaultSummary.affinity"`)}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "DefaultSummary.body"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DefaultSummary.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DefaultSummary.updated_at"`)}
	}
	if len(_c.mutation.PaperIDs()) == 0 {
		return &ValidationError{Name: "paper", err: errors.New(`ent: missing required edge "DefaultSummary.paper"`)}
	}
	return nil
}

func (_c *DefaultSummaryCreate) sqlSave(ctx context.Context) (*DefaultSummary, error) {
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
			return nil, fmt.Errorf("unexpected DefaultSummary.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DefaultSummaryCreate) createSpec() (*DefaultSummary, *sqlgraph.CreateSpec) {
	var (
		_node = &DefaultSummary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(defaultsummary.Table, sqlgraph.NewFieldSpec(defaultsummary.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.LlmProvider(); ok {
		_spec.SetField(defaultsummary.FieldLlmProvider, field.TypeString, value)
		_node.LlmProvider = value
	}
	if value, ok := _c.mutation.LlmModel(); ok {
		_spec.SetField(defaultsummary.FieldLlmModel, field.TypeString, value)
		_node.LlmModel = value
	}
	if value, ok := _c.mutation.Character(); ok {
		_spec.SetField(defaultsummary.FieldCharacter, field.TypeEnum, value)
		_node.Character = value
	}
	if value, ok := _c.mutation.Affinity(); ok {
		_spec.SetField(defaultsummary.FieldAffinity, field.TypeInt, value)
		_node.Affinity = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(defaultsummary.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.OnePoint(); ok {
		_spec.SetField(defaultsummary.FieldOnePoint, field.TypeString, value)
		_node.OnePoint = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(defaultsummary.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(defaultsummary.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.PaperIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   defaultsummary.PaperTable,
			Columns: []string{defaultsummary.PaperColumn},
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
	return _node, _spec
}

// DefaultSummaryCreateBulk is the builder for creating many DefaultSummary entities in bulk.
type DefaultSummaryCreateBulk struct {
	config
	err      error
	builders []*DefaultSummaryCreate
}

// Save creates the DefaultSummary entities in the database.
func (_c *DefaultSummaryCreateBulk) Save(ctx context.Context) ([]*DefaultSummary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DefaultSummary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DefaultSummaryMutation)
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
func (_c *DefaultSummaryCreateBulk) SaveX(ctx context.Context) []*DefaultSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DefaultSummaryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DefaultSummaryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
