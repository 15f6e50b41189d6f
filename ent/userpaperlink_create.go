// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rainzero1960/paperscout/ent/papermetadata"
	"github.com/rainzero1960/paperscout/ent/user"
	"github.com/rainzero1960/paperscout/ent/userpaperlink"
)

// UserPaperLinkCreate is the builder for creating a UserPaperLink entity.
type UserPaperLinkCreate struct {
	config
	mutation *UserPaperLinkMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *UserPaperLinkCreate) SetUserID(v string) *UserPaperLinkCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPaperID sets the "paper_id" field.
func (_c *UserPaperLinkCreate) SetPaperID(v string) *UserPaperLinkCreate {
	_c.mutation.SetPaperID(v)
	return _c
}

// SetTags sets the "tags" field.
func (_c *UserPaperLinkCreate) SetTags(v string) *UserPaperLinkCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetNillableTags sets the "tags" field if the given value is not nil.
func (_c *UserPaperLinkCreate) SetNillableTags(v *string) *UserPaperLinkCreate {
	if v != nil {
		_c.SetTags(*v)
	}
	return _c
}

// SetMemo sets the "memo" field.
func (_c *UserPaperLinkCreate) SetMemo(v string) *UserPaperLinkCreate {
	_c.mutation.SetMemo(v)
	return _c
}

// SetNillableMemo sets the "memo" field if the given value is not nil.
func (_c *UserPaperLinkCreate) SetNillableMemo(v *string) *UserPaperLinkCreate {
	if v != nil {
		_c.SetMemo(*v)
	}
	return _c
}

// SetSelectedDefaultSummaryID sets the "selected_default_summary_id" field.
func (_c *UserPaperLinkCreate) SetSelectedDefaultSummaryID(v string) *UserPaperLinkCreate {
	_c.mutation.SetSelectedDefaultSummaryID(v)
	return _c
}

// SetNillableSelectedDefaultSummaryID sets the "selected_default_summary_id" field if the given value is not nil.
func (_c *UserPaperLinkCreate) SetNillableSelectedDefaultSummaryID(v *string) *UserPaperLinkCreate {
	if v != nil {
		_c.SetSelectedDefaultSummaryID(*v)
	}
	return _c
}

// SetSelectedCustomSummaryID sets the "selected_custom_summary_id" field.
func (_c *UserPaperLinkCreate) SetSelectedCustomSummaryID(v string) *UserPaperLinkCreate {
	_c.mutation.SetSelectedCustomSummaryID(v)
	return _c
}

// SetNillableSelectedCustomSummaryID sets the "selected_custom_summary_id" field if the given value is not nil.
func (_c *UserPaperLinkCreate) SetNillableSelectedCustomSummaryID(v *string) *UserPaperLinkCreate {
	if v != nil {
		_c.SetSelectedCustomSummaryID(*v)
	}
	return _c
}

// SetLastAccessed sets the "last_accessed" field.
func (_c *UserPaperLinkCreate) SetLastAccessed(v time.Time) *UserPaperLinkCreate {
	_c.mutation.SetLastAccessed(v)
	return _c
}

// SetNillableLastAccessed sets the "last_accessed" field if the given value is not nil.
func (_c *UserPaperLinkCreate) SetNillableLastAccessed(v *time.Time) *UserPaperLinkCreate {
	if v != nil {
		_c.SetLastAccessed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserPaperLinkCreate) SetCreatedAt(v time.Time) *UserPaperLinkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserPaperLinkCreate) SetNillableCreatedAt(v *time.Time) *UserPaperLinkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserPaperLinkCreate) SetUpdatedAt(v time.Time) *UserPaperLinkCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserPaperLinkCreate) SetNillableUpdatedAt(v *time.Time) *UserPaperLinkCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserPaperLinkCreate) SetID(v string) *UserPaperLinkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *UserPaperLinkCreate) SetUser(v *User) *UserPaperLinkCreate {
	return _c.SetUserID(v.ID)
}

// SetPaper sets the "paper" edge to the PaperMetadata entity.
func (_c *UserPaperLinkCreate) SetPaper(v *PaperMetadata) *UserPaperLinkCreate {
	return _c.SetPaperID(v.ID)
}

// Mutation returns the UserPaperLinkMutation object of the builder.
func (_c *UserPaperLinkCreate) Mutation() *UserPaperLinkMutation {
	return _c.mutation
}

// Save creates the UserPaperLink in the database.
func (_c *UserPaperLinkCreate) Save(ctx context.Context) (*UserPaperLink, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserPaperLinkCreate) SaveX(ctx context.Context) *UserPaperLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserPaperLinkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserPaperLinkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserPaperLinkCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := userpaperlink.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := userpaperlink.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserPaperLinkCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserPaperLink.user_id"`)}
	}
	if _, ok := _c.mutation.PaperID(); !ok {
		return &ValidationError{Name: "paper_id", err: errors.New(`ent: missing required field "UserPaperLink.paper_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UserPaperLink.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UserPaperLink.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "UserPaperLink.user"`)}
	}
	if len(_c.mutation.PaperIDs()) == 0 {
		return &ValidationError{Name: "paper", err: errors.New(`ent: missing required edge "UserPaperLink.paper"`)}
	}
	return nil
}

func (_c *UserPaperLinkCreate) sqlSave(ctx context.Context) (*UserPaperLink, error) {
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
			return nil, fmt.Errorf("unexpected UserPaperLink.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserPaperLinkCreate) createSpec() (*UserPaperLink, *sqlgraph.CreateSpec) {
	var (
		_node = &UserPaperLink{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userpaperlink.Table, sqlgraph.NewFieldSpec(userpaperlink.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(userpaperlink.FieldTags, field.TypeString, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Memo(); ok {
		_spec.SetField(userpaperlink.FieldMemo, field.TypeString, value)
		_node.Memo = value
	}
	if value, ok := _c.mutation.SelectedDefaultSummaryID(); ok {
		_spec.SetField(userpaperlink.FieldSelectedDefaultSummaryID, field.TypeString, value)
		_node.SelectedDefaultSummaryID = &value
	}
	if value, ok := _c.mutation.SelectedCustomSummaryID(); ok {
		_spec.SetField(userpaperlink.FieldSelectedCustomSummaryID, field.TypeString, value)
		_node.SelectedCustomSummaryID = &value
	}
	if value, ok := _c.mutation.LastAccessed(); ok {
		_spec.SetField(userpaperlink.FieldLastAccessed, field.TypeTime, value)
		_node.LastAccessed = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(userpaperlink.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(userpaperlink.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   userpaperlink.UserTable,
			Columns: []string{userpaperlink.UserColumn},
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
			Table:   userpaperlink.PaperTable,
			Columns: []string{userpaperlink.PaperColumn},
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

// UserPaperLinkCreateBulk is the builder for creating many UserPaperLink entities in bulk.
type UserPaperLinkCreateBulk struct {
	config
	err      error
	builders []*UserPaperLinkCreate
}

// Save creates the UserPaperLink entities in the database.
func (_c *UserPaperLinkCreateBulk) Save(ctx context.Context) ([]*UserPaperLink, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserPaperLink, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserPaperLinkMutation)
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
func (_c *UserPaperLinkCreateBulk) SaveX(ctx context.Context) []*UserPaperLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserPaperLinkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserPaperLinkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
