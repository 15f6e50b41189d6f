// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rainzero1960/paperscout/ent/editedsummary"
	"github.com/rainzero1960/paperscout/ent/user"
)

// EditedSummaryCreate is the builder for creating a EditedSummary entity.
type EditedSummaryCreate struct {
	config
	mutation *EditedSummaryMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *EditedSummaryCreate) SetUserID(v string) *EditedSummaryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDefaultSummaryID sets the "default_summary_id" field.
func (_c *EditedSummaryCreate) SetDefaultSummaryID(v string) *EditedSummaryCreate {
	_c.mutation.SetDefaultSummaryID(v)
	return _c
}

// SetNillableDefaultSummaryID sets the "default_summary_id" field if the given value is not nil.
func (_c *EditedSummaryCreate) SetNillableDefaultSummaryID(v *string) *EditedSummaryCreate {
	if v != nil {
		_c.SetDefaultSummaryID(*v)
	}
	return _c
}

// SetCustomSummaryID sets the "custom_summary_id" field.
func (_c *EditedSummaryCreate) SetCustomSummaryID(v string) *EditedSummaryCreate {
	_c.mutation.SetCustomSummaryID(v)
	return _c
}

// SetNillableCustomSummaryID sets the "custom_summary_id" field if the given value is not nil.
func (_c *EditedSummaryCreate) SetNillableCustomSummaryID(v *string) *EditedSummaryCreate {
	if v != nil {
		_c.SetCustomSummaryID(*v)
	}
	return _c
}

// SetBody sets the "body" field.
func (_c *EditedSummaryCreate) SetBody(v string) *EditedSummaryCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetOnePoint sets the "one_point" field.
func (_c *EditedSummaryCreate) SetOnePoint(v string) *EditedSummaryCreate {
	_c.mutation.SetOnePoint(v)
	return _c
}

// SetNillableOnePoint sets the "one_point" field if the given value is not nil.
func (_c *EditedSummaryCreate) SetNillableOnePoint(v *string) *EditedSummaryCreate {
	if v != nil {
		_c.SetOnePoint(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EditedSummaryCreate) SetCreatedAt(v time.Time) *EditedSummaryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EditedSummaryCreate) SetNillableCreatedAt(v *time.Time) *EditedSummaryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EditedSummaryCreate) SetUpdatedAt(v time.Time) *EditedSummaryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EditedSummaryCreate) SetNillableUpdatedAt(v *time.Time) *EditedSummaryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EditedSummaryCreate) SetID(v string) *EditedSummaryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *EditedSummaryCreate) SetUser(v *User) *EditedSummaryCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the EditedSummaryMutation object of the builder.
func (_c *EditedSummaryCreate) Mutation() *EditedSummaryMutation {
	return _c.mutation
}

// Save creates the EditedSummary in the database.
func (_c *EditedSummaryCreate) Save(ctx context.Context) (*EditedSummary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EditedSummaryCreate) SaveX(ctx context.Context) *EditedSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EditedSummaryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EditedSummaryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EditedSummaryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := editedsummary.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := editedsummary.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EditedSummaryCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "EditedSummary.user_id"`)}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "EditedSummary.body"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EditedSummary.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EditedSummary.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "EditedSummary.user"`)}
	}
	return nil
}

func (_c *EditedSummaryCreate) sqlSave(ctx context.Context) (*EditedSummary, error) {
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
			return nil, fmt.Errorf("unexpected EditedSummary.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EditedSummaryCreate) createSpec() (*EditedSummary, *sqlgraph.CreateSpec) {
	var (
		_node = &EditedSummary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(editedsummary.Table, sqlgraph.NewFieldSpec(editedsummary.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DefaultSummaryID(); ok {
		_spec.SetField(editedsummary.FieldDefaultSummaryID, field.TypeString, value)
		_node.DefaultSummaryID = &value
	}
	if value, ok := _c.mutation.CustomSummaryID(); ok {
		_spec.SetField(editedsummary.FieldCustomSummaryID, field.TypeString, value)
		_node.CustomSummaryID = &value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(editedsummary.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.OnePoint(); ok {
		_spec.SetField(editedsummary.FieldOnePoint, field.TypeString, value)
		_node.OnePoint = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(editedsummary.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(editedsummary.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   editedsummary.UserTable,
			Columns: []string{editedsummary.UserColumn},
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

// EditedSummaryCreateBulk is the builder for creating many EditedSummary entities in bulk.
type EditedSummaryCreateBulk struct {
	config
	err      error
	builders []*EditedSummaryCreate
}

// Save creates the EditedSummary entities in the database.
func (_c *EditedSummaryCreateBulk) Save(ctx context.Context) ([]*EditedSummary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EditedSummary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EditedSummaryMutation)
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
func (_c *EditedSummaryCreateBulk) SaveX(ctx context.Context) []*EditedSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EditedSummaryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EditedSummaryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
