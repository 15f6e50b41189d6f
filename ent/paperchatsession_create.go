// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rainzero1960/paperscout/ent/paperchatmessage"
	"github.com/rainzero1960/paperscout/ent/paperchatsession"
	"github.com/rainzero1960/paperscout/ent/user"
)

// PaperChatSessionCreate is the builder for creating a PaperChatSession entity.
type PaperChatSessionCreate struct {
	config
	mutation *PaperChatSessionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *PaperChatSessionCreate) SetUserID(v string) *PaperChatSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPaperID sets the "paper_id" field.
func (_c *PaperChatSessionCreate) SetPaperID(v string) *PaperChatSessionCreate {
	_c.mutation.SetPaperID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *PaperChatSessionCreate) SetTitle(v string) *PaperChatSessionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *PaperChatSessionCreate) SetNillableTitle(v *string) *PaperChatSessionCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetProcessingStatus sets the "processing_status" field.
func (_c *PaperChatSessionCreate) SetProcessingStatus(v paperchatsession.ProcessingStatus) *PaperChatSessionCreate {
	_c.mutation.SetProcessingStatus(v)
	return _c
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_c *PaperChatSessionCreate) SetNillableProcessingStatus(v *paperchatsession.ProcessingStatus) *PaperChatSessionCreate {
	if v != nil {
		_c.SetProcessingStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PaperChatSessionCreate) SetCreatedAt(v time.Time) *PaperChatSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PaperChatSessionCreate) SetNillableCreatedAt(v *time.Time) *PaperChatSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PaperChatSessionCreate) SetUpdatedAt(v time.Time) *PaperChatSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PaperChatSessionCreate) SetNillableUpdatedAt(v *time.Time) *PaperChatSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PaperChatSessionCreate) SetID(v string) *PaperChatSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *PaperChatSessionCreate) SetUser(v *User) *PaperChatSessionCreate {
	return _c.SetUserID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the PaperChatMessage entity by IDs.
func (_c *PaperChatSessionCreate) AddMessageIDs(ids ...string) *PaperChatSessionCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the PaperChatMessage entity.
func (_c *PaperChatSessionCreate) AddMessages(v ...*PaperChatMessage) *PaperChatSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// Mutation returns the PaperChatSessionMutation object of the builder.
func (_c *PaperChatSessionCreate) Mutation() *PaperChatSessionMutation {
	return _c.mutation
}

// Save creates the PaperChatSession in the database.
func (_c *PaperChatSessionCreate) Save(ctx context.Context) (*PaperChatSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PaperChatSessionCreate) SaveX(ctx context.Context) *PaperChatSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaperChatSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaperChatSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PaperChatSessionCreate) defaults() {
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		v := paperchatsession.DefaultProcessingStatus
		_c.mutation.SetProcessingStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := paperchatsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := paperchatsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PaperChatSessionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PaperChatSession.user_id"`)}
	}
	if _, ok := _c.mutation.PaperID(); !ok {
		return &ValidationError{Name: "paper_id", err: errors.New(`ent: missing required field "PaperChatSession.paper_id"`)}
	}
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		return &ValidationError{Name: "processing_status", err: errors.New(`ent: missing required field "PaperChatSession.processing_status"`)}
	}
	if v, ok := _c.mutation.ProcessingStatus(); ok {
		if err := paperchatsession.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "PaperChatSession.processing_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PaperChatSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PaperChatSession.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "PaperChatSession.user"`)}
	}
	return nil
}

func (_c *PaperChatSessionCreate) sqlSave(ctx context.Context) (*PaperChatSession, error) {
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
			return nil, fmt.Errorf("unexpected PaperChatSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PaperChatSessionCreate) createSpec() (*PaperChatSession, *sqlgraph.CreateSpec) {
	var (
		_node = &PaperChatSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(paperchatsession.Table, sqlgraph.NewFieldSpec(paperchatsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PaperID(); ok {
		_spec.SetField(paperchatsession.FieldPaperID, field.TypeString, value)
		_node.PaperID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(paperchatsession.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.ProcessingStatus(); ok {
		_spec.SetField(paperchatsession.FieldProcessingStatus, field.TypeEnum, value)
		_node.ProcessingStatus = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(paperchatsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(paperchatsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   paperchatsession.UserTable,
			Columns: []string{paperchatsession.UserColumn},
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
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   paperchatsession.MessagesTable,
			Columns: []string{paperchatsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paperchatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PaperChatSessionCreateBulk is the builder for creating many PaperChatSession entities in bulk.
type PaperChatSessionCreateBulk struct {
	config
	err      error
	builders []*PaperChatSessionCreate
}

// Save creates the PaperChatSession entities in the database.
func (_c *PaperChatSessionCreateBulk) Save(ctx context.Context) ([]*PaperChatSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PaperChatSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PaperChatSessionMutation)
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
func (_c *PaperChatSessionCreateBulk) SaveX(ctx context.Context) []*PaperChatSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaperChatSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaperChatSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
