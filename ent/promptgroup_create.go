// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rainzero1960/paperscout/ent/promptgroup"
	"github.com/rainzero1960/paperscout/ent/user"
)

// PromptGroupCreate is the builder for creating a PromptGroup entity.
type PromptGroupCreate struct {
	config
	mutation *PromptGroupMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *PromptGroupCreate) SetName(v string) *PromptGroupCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PromptGroupCreate) SetUserID(v string) *PromptGroupCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *PromptGroupCreate) SetCategory(v promptgroup.Category) *PromptGroupCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetCoordinatorPromptID sets the "coordinator_prompt_id" field.
func (_c *PromptGroupCreate) SetCoordinatorPromptID(v string) *PromptGroupCreate {
	_c.mutation.SetCoordinatorPromptID(v)
	return _c
}

// SetNillableCoordinatorPromptID sets the "coordinator_prompt_id" field if the given value is not nil.
func (_c *PromptGroupCreate) SetNillableCoordinatorPromptID(v *string) *PromptGroupCreate {
	if v != nil {
		_c.SetCoordinatorPromptID(*v)
	}
	return _c
}

// SetPlannerPromptID sets the "planner_prompt_id" field.
func (_c *PromptGroupCreate) SetPlannerPromptID(v string) *PromptGroupCreate {
	_c.mutation.SetPlannerPromptID(v)
	return _c
}

// SetNillablePlannerPromptID sets the "planner_prompt_id" field if the given value is not nil.
func (_c *PromptGroupCreate) SetNillablePlannerPromptID(v *string) *PromptGroupCreate {
	if v != nil {
		_c.SetPlannerPromptID(*v)
	}
	return _c
}

// SetSupervisorPromptID sets the "supervisor_prompt_id" field.
func (_c *PromptGroupCreate) SetSupervisorPromptID(v string) *PromptGroupCreate {
	_c.mutation.SetSupervisorPromptID(v)
	return _c
}

// SetNillableSupervisorPromptID sets the "supervisor_prompt_id" field if the given value is not nil.
func (_c *PromptGroupCreate) SetNillableSupervisorPromptID(v *string) *PromptGroupCreate {
	if v != nil {
		_c.SetSupervisorPromptID(*v)
	}
	return _c
}

// SetAgentPromptID sets the "agent_prompt_id" field.
func (_c *PromptGroupCreate) SetAgentPromptID(v string) *PromptGroupCreate {
	_c.mutation.SetAgentPromptID(v)
	return _c
}

// SetNillableAgentPromptID sets the "agent_prompt_id" field if the given value is not nil.
func (_c *PromptGroupCreate) SetNillableAgentPromptID(v *string) *PromptGroupCreate {
	if v != nil {
		_c.SetAgentPromptID(*v)
	}
	return _c
}

// SetSummaryPromptID sets the "summary_prompt_id" field.
func (_c *PromptGroupCreate) SetSummaryPromptID(v string) *PromptGroupCreate {
	_c.mutation.SetSummaryPromptID(v)
	return _c
}

// SetNillableSummaryPromptID sets the "summary_prompt_id" field if the given value is not nil.
func (_c *PromptGroupCreate) SetNillableSummaryPromptID(v *string) *PromptGroupCreate {
	if v != nil {
		_c.SetSummaryPromptID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PromptGroupCreate) SetCreatedAt(v time.Time) *PromptGroupCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PromptGroupCreate) SetNillableCreatedAt(v *time.Time) *PromptGroupCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PromptGroupCreate) SetUpdatedAt(v time.Time) *PromptGroupCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PromptGroupCreate) SetNillableUpdatedAt(v *time.Time) *PromptGroupCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PromptGroupCreate) SetID(v string) *PromptGroupCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *PromptGroupCreate) SetUser(v *User) *PromptGroupCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the PromptGroupMutation object of the builder.
func (_c *PromptGroupCreate) Mutation() *PromptGroupMutation {
	return _c.mutation
}

// Save creates the PromptGroup in the database.
func (_c *PromptGroupCreate) Save(ctx context.Context) (*PromptGroup, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PromptGroupCreate) SaveX(ctx context.Context) *PromptGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptGroupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptGroupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PromptGroupCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := promptgroup.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := promptgroup.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PromptGroupCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "PromptGroup.name"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PromptGroup.user_id"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "PromptGroup.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := promptgroup.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "PromptGroup.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PromptGroup.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PromptGroup.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "PromptGroup.user"`)}
	}
	return nil
}

func (_c *PromptGroupCreate) sqlSave(ctx context.Context) (*PromptGroup, error) {
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
			return nil, fmt.Errorf("unexpected PromptGroup.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PromptGroupCreate) createSpec() (*PromptGroup, *sqlgraph.CreateSpec) {
	var (
		_node = &PromptGroup{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(promptgroup.Table, sqlgraph.NewFieldSpec(promptgroup.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(promptgroup.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(promptgroup.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.CoordinatorPromptID(); ok {
		_spec.SetField(promptgroup.FieldCoordinatorPromptID, field.TypeString, value)
		_node.CoordinatorPromptID = &value
	}
	if value, ok := _c.mutation.PlannerPromptID(); ok {
		_spec.SetField(promptgroup.FieldPlannerPromptID, field.TypeString, value)
		_node.PlannerPromptID = &value
	}
	if value, ok := _c.mutation.SupervisorPromptID(); ok {
		_spec.SetField(promptgroup.FieldSupervisorPromptID, field.TypeString, value)
		_node.SupervisorPromptID = &value
	}
	if value, ok := _c.mutation.AgentPromptID(); ok {
		_spec.SetField(promptgroup.FieldAgentPromptID, field.TypeString, value)
		_node.AgentPromptID = &value
	}
	if value, ok := _c.mutation.SummaryPromptID(); ok {
		_spec.SetField(promptgroup.FieldSummaryPromptID, field.TypeString, value)
		_node.SummaryPromptID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(promptgroup.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(promptgroup.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   promptgroup.UserTable,
			Columns: []string{promptgroup.UserColumn},
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
	return _node, _spec
}

// PromptGroupCreateBulk is the builder for creating many PromptGroup entities in bulk.
type PromptGroupCreateBulk struct {
	config
	err      error
	builders []*PromptGroupCreate
}

// Save creates the PromptGroup entities in the database.
func (_c *PromptGroupCreateBulk) Save(ctx context.Context) ([]*PromptGroup, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PromptGroup, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PromptGroupMutation)
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
func (_c *PromptGroupCreateBulk) SaveX(ctx context.Context) []*PromptGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptGroupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptGroupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
