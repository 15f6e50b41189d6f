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
	"github.com/rainzero1960/paperscout/ent/defaultsummary"
	"github.com/rainzero1960/paperscout/ent/papermetadata"
	"github.com/rainzero1960/paperscout/ent/userpaperlink"
)

// PaperMetadataCreate is the builder for creating a PaperMetadata entity.
type PaperMetadataCreate struct {
	config
	mutation *PaperMetadataMutation
	hooks    []Hook
}

// SetExternalID sets the "external_id" field.
func (_c *PaperMetadataCreate) SetExternalID(v string) *PaperMetadataCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *PaperMetadataCreate) SetURL(v string) *PaperMetadataCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *PaperMetadataCreate) SetTitle(v string) *PaperMetadataCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetAuthors sets the "authors" field.
func (_c *PaperMetadataCreate) SetAuthors(v string) *PaperMetadataCreate {
	_c.mutation.SetAuthors(v)
	return _c
}

// SetNillableAuthors sets the "authors" field if the given value is not nil.
func (_c *PaperMetadataCreate) SetNillableAuthors(v *string) *PaperMetadataCreate {
	if v != nil {
		_c.SetAuthors(*v)
	}
	return _c
}

// SetAbstract sets the "abstract" field.
func (_c *PaperMetadataCreate) SetAbstract(v string) *PaperMetadataCreate {
	_c.mutation.SetAbstract(v)
	return _c
}

// SetNillableAbstract sets the "abstract" field if the given value is not nil.
func (_c *PaperMetadataCreate) SetNillableAbstract(v *string) *PaperMetadataCreate {
	if v != nil {
		_c.SetAbstract(*v)
	}
	return _c
}

// SetFullText sets the "full_text" field.
func (_c *PaperMetadataCreate) SetFullText(v string) *PaperMetadataCreate {
	_c.mutation.SetFullText(v)
	return _c
}

// SetNillableFullText sets the "full_text" field if the given value is not nil.
func (_c *PaperMetadataCreate) SetNillableFullText(v *string) *PaperMetadataCreate {
	if v != nil {
		_c.SetFullText(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PaperMetadataCreate) SetCreatedAt(v time.Time) *PaperMetadataCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PaperMetadataCreate) SetNillableCreatedAt(v *time.Time) *PaperMetadataCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PaperMetadataCreate) SetUpdatedAt(v time.Time) *PaperMetadataCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PaperMetadataCreate) SetNillableUpdatedAt(v *time.Time) *PaperMetadataCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PaperMetadataCreate) SetID(v string) *PaperMetadataCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddDefaultSummaryIDs adds the "default_summaries" edge to the DefaultSummary entity by IDs.
func (_c *PaperMetadataCreate) AddDefaultSummaryIDs(ids ...string) *PaperMetadataCreate {
	_c.mutation.AddDefaultSummaryIDs(ids...)
	return _c
}

// AddDefaultSummaries adds the "default_summaries" edges to the DefaultSummary entity.
func (_c *PaperMetadataCreate) AddDefaultSummaries(v ...*DefaultSummary) *PaperMetadataCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDefaultSummaryIDs(ids...)
}

// AddCustomSummaryIDs adds the "custom_summaries" edge to the CustomSummary entity by IDs.
func (_c *PaperMetadataCreate) AddCustomSummaryIDs(ids ...string) *PaperMetadataCreate {
	_c.mutation.AddCustomSummaryIDs(ids...)
	return _c
}

// AddCustomSummaries adds the "custom_summaries" edges to the CustomSummary entity.
func (_c *PaperMetadataCreate) AddCustomSummaries(v ...*CustomSummary) *PaperMetadataCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCustomSummaryIDs(ids...)
}

// AddUserLinkIDs adds the "user_links" edge to the UserPaperLink entity by IDs.
func (_c *PaperMetadataCreate) AddUserLinkIDs(ids ...string) *PaperMetadataCreate {
	_c.mutation.AddUserLinkIDs(ids...)
	return _c
}

// AddUserLinks adds the "user_links" edges to the UserPaperLink entity.
func (_c *PaperMetadataCreate) AddUserLinks(v ...*UserPaperLink) *PaperMetadataCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUserLinkIDs(ids...)
}

// Mutation returns the PaperMetadataMutation object of the builder.
func (_c *PaperMetadataCreate) Mutation() *PaperMetadataMutation {
	return _c.mutation
}

// Save creates the PaperMetadata in the database.
func (_c *PaperMetadataCreate) Save(ctx context.Context) (*PaperMetadata, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PaperMetadataCreate) SaveX(ctx context.Context) *PaperMetadata {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaperMetadataCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaperMetadataCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PaperMetadataCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := papermetadata.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := papermetadata.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PaperMetadataCreate) check() error {
	if _, ok := _c.mutation.ExternalID(); !ok {
		return &ValidationError{Name: "external_id", err: errors.New(`ent: missing required field "PaperMetadata.external_id"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "PaperMetadata.url"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "PaperMetadata.title"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PaperMetadata.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PaperMetadata.updated_at"`)}
	}
	return nil
}

func (_c *PaperMetadataCreate) sqlSave(ctx context.Context) (*PaperMetadata, error) {
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
			return nil, fmt.Errorf("unexpected PaperMetadata.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PaperMetadataCreate) createSpec() (*PaperMetadata, *sqlgraph.CreateSpec) {
	var (
		_node = &PaperMetadata{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(papermetadata.Table, sqlgraph.NewFieldSpec(papermetadata.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(papermetadata.FieldExternalID, field.TypeString, value)
		_node.ExternalID = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(papermetadata.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(papermetadata.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Authors(); ok {
		_spec.SetField(papermetadata.FieldAuthors, field.TypeString, value)
		_node.Authors = value
	}
	if value, ok := _c.mutation.Abstract(); ok {
		_spec.SetField(papermetadata.FieldAbstract, field.TypeString, value)
		_node.Abstract = value
	}
	if value, ok := _c.mutation.FullText(); ok {
		_spec.SetField(papermetadata.FieldFullText, field.TypeString, value)
		_node.FullText = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(papermetadata.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(papermetadata.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DefaultSummariesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   papermetadata.DefaultSummariesTable,
			Columns: []string{papermetadata.DefaultSummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(defaultsummary.FieldID, field.TypeString),
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
			Table:   papermetadata.CustomSummariesTable,
			Columns: []string{papermetadata.CustomSummariesColumn},
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
	if nodes := _c.mutation.UserLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   papermetadata.UserLinksTable,
			Columns: []string{papermetadata.UserLinksColumn},
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
	return _node, _spec
}

// PaperMetadataCreateBulk is the builder for creating many PaperMetadata entities in bulk.
type PaperMetadataCreateBulk struct {
	config
	err      error
	builders []*PaperMetadataCreate
}

// Save creates the PaperMetadata entities in the database.
func (_c *PaperMetadataCreateBulk) Save(ctx context.Context) ([]*PaperMetadata, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PaperMetadata, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PaperMetadataMutation)
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
func (_c *PaperMetadataCreateBulk) SaveX(ctx context.Context) []*PaperMetadata {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaperMetadataCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaperMetadataCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
