// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rainzero1960/paperscout/ent/researchmessage"
	"github.com/rainzero1960/paperscout/ent/researchsession"
)

// ResearchMessageCreate is the builder for creating a ResearchMessage entity.
type ResearchMessageCreate struct {
	config
	mutation *ResearchMessageMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ResearchMessageCreate) SetSessionID(v string) *ResearchMessageCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *ResearchMessageCreate) SetRole(v researchmessage.Role) *ResearchMessageCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ResearchMessageCreate) SetContent(v string) *ResearchMessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetIsIntermediate sets the "is_intermediate" field.
func (_c *ResearchMessageCreate) SetIsIntermediate(v bool) *ResearchMessageCreate {
	_c.mutation.SetIsIntermediate(v)
	return _c
}

// SetNillableIsIntermediate sets the "is_intermediate" field if the given value is not nil.
func (_c *ResearchMessageCreate) SetNillableIsIntermediate(v *bool) *ResearchMessageCreate {
	if v != nil {
		_c.SetIsIntermediate(*v)
	}
	return _c
}

// SetMetadataJSON sets the "metadata_json" field.
func (_c *ResearchMessageCreate) SetMetadataJSON(v map[string]interface{}) *ResearchMessageCreate {
	_c.mutation.SetMetadataJSON(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *ResearchMessageCreate) SetSequence(v int) *ResearchMessageCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResearchMessageCreate) SetCreatedAt(v time.Time) *ResearchMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResearchMessageCreate) SetNillableCreatedAt(v *time.Time) *ResearchMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ResearchMessageCreate) SetID(v string) *ResearchMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the ResearchSession entity.
func (_c *ResearchMessageCreate) SetSession(v *ResearchSession) *ResearchMessageCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the ResearchMessageMutation object of the builder.
func (_c *ResearchMessageCreate) Mutation() *ResearchMessageMutation {
	return _c.mutation
}

// Save creates the ResearchMessage in the database.
func (_c *ResearchMessageCreate) Save(ctx context.Context) (*ResearchMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResearchMessageCreate) SaveX(ctx context.Context) *ResearchMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResearchMessageCreate) defaults() {
	if _, ok := _c.mutation.IsIntermediate(); !ok {
		v := researchmessage.DefaultIsIntermediate
		_c.mutation.SetIsIntermediate(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := researchmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResearchMessageCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ResearchMessage.session_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "ResearchMessage.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := researchmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ResearchMessage.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ResearchMessage.content"`)}
	}
	if _, ok := _c.mutation.IsIntermediate(); !ok {
		return &ValidationError{Name: "is_intermediate", err: errors.New(`ent: missing required field "ResearchMessage.is_intermediate"`)}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ResearchMessage.sequence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ResearchMessage.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "ResearchMessage.session"`)}
	}
	return nil
}

func (_c *ResearchMessageCreate) sqlSave(ctx context.Context) (*ResearchMessage, error) {
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
			return nil, fmt.Errorf("unexpected ResearchMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResearchMessageCreate) createSpec() (*ResearchMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &ResearchMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(researchmessage.Table, sqlgraph.NewFieldSpec(researchmessage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(researchmessage.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(researchmessage.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.IsIntermediate(); ok {
		_spec.SetField(researchmessage.FieldIsIntermediate, field.TypeBool, value)
		_node.IsIntermediate = value
	}
	if value, ok := _c.mutation.MetadataJSON(); ok {
		_spec.SetField(researchmessage.FieldMetadataJSON, field.TypeJSON, value)
		_node.MetadataJSON = value
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(researchmessage.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(researchmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   researchmessage.SessionTable,
			Columns: []string{researchmessage.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ResearchMessageCreateBulk is the builder for creating many ResearchMessage entities in bulk.
type ResearchMessageCreateBulk struct {
	config
	err      error
	builders []*ResearchMessageCreate
}

// Save creates the ResearchMessage entities in the database.
func (_c *ResearchMessageCreateBulk) Save(ctx context.Context) ([]*ResearchMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResearchMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResearchMessageMutation)
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
func (_c *ResearchMessageCreateBulk) SaveX(ctx context.Context) []*ResearchMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
