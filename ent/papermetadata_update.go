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
	"github.com/rainzero1960/paperscout/ent/defaultsummary"
	"github.com/rainzero1960/paperscout/ent/papermetadata"
	"github.com/rainzero1960/paperscout/ent/predicate"
	"github.com/rainzero1960/paperscout/ent/userpaperlink"
)

// PaperMetadataUpdate is the builder for updating PaperMetadata entities.
type PaperMetadataUpdate struct {
	config
	hooks    []Hook
	mutation *PaperMetadataMutation
}

// Where appends a list predicates to the PaperMetadataUpdate builder.
func (_u *PaperMetadataUpdate) Where(ps ...predicate.PaperMetadata) *PaperMetadataUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *PaperMetadataUpdate) SetExternalID(v string) *PaperMetadataUpdate {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *PaperMetadataUpdate) SetNillableExternalID(v *string) *PaperMetadataUpdate {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *PaperMetadataUpdate) SetURL(v string) *PaperMetadataUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *PaperMetadataUpdate) SetNillableURL(v *string) *PaperMetadataUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PaperMetadataUpdate) SetTitle(v string) *PaperMetadataUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PaperMetadataUpdate) SetNillableTitle(v *string) *PaperMetadataUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetAuthors sets the "authors" field.
func (_u *PaperMetadataUpdate) SetAuthors(v string) *PaperMetadataUpdate {
	_u.mutation.SetAuthors(v)
	return _u
}

// SetNillableAuthors sets the "authors" field if the given value is not nil.
func (_u *PaperMetadataUpdate) SetNillableAuthors(v *string) *PaperMetadataUpdate {
	if v != nil {
		_u.SetAuthors(*v)
	}
	return _u
}

// ClearAuthors clears the value of the "authors" field.
func (_u *PaperMetadataUpdate) ClearAuthors() *PaperMetadataUpdate {
	_u.mutation.ClearAuthors()
	return _u
}

// SetAbstract sets the "abstract" field.
func (_u *PaperMetadataUpdate) SetAbstract(v string) *PaperMetadataUpdate {
	_u.mutation.SetAbstract(v)
	return _u
}

// SetNillableAbstract sets the "abstract" field if the given value is not nil.
func (_u *PaperMetadataUpdate) SetNillableAbstract(v *string) *PaperMetadataUpdate {
	if v != nil {
		_u.SetAbstract(*v)
	}
	return _u
}

// ClearAbstract clears the value of the "abstract" field.
func (_u *PaperMetadataUpdate) ClearAbstract() *PaperMetadataUpdate {
	_u.mutation.ClearAbstract()
	return _u
}

// SetFullText sets the "full_text" field.
func (_u *PaperMetadataUpdate) SetFullText(v string) *PaperMetadataUpdate {
	_u.mutation.SetFullText(v)
	return _u
}

// SetNillableFullText sets the "full_text" field if the given value is not nil.
func (_u *PaperMetadataUpdate) SetNillableFullText(v *string) *PaperMetadataUpdate {
	if v != nil {
		_u.SetFullText(*v)
	}
	return _u
}

// ClearFullText clears the value of the "full_text" field.
func (_u *PaperMetadataUpdate) ClearFullText() *PaperMetadataUpdate {
	_u.mutation.ClearFullText()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PaperMetadataUpdate) SetUpdatedAt(v time.Time) *PaperMetadataUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDefaultSummaryIDs adds the "default_summaries" edge to the DefaultSummary entity by IDs.
func (_u *PaperMetadataUpdate) AddDefaultSummaryIDs(ids ...string) *PaperMetadataUpdate {
	_u.mutation.AddDefaultSummaryIDs(ids...)
	return _u
}

// AddDefaultSummaries adds the "default_summaries" edges to the DefaultSummary entity.
func (_u *PaperMetadataUpdate) AddDefaultSummaries(v ...*DefaultSummary) *PaperMetadataUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDefaultSummaryIDs(ids...)
}

// AddCustomSummaryIDs adds the "custom_summaries" edge to the CustomSummary entity by IDs.
func (_u *PaperMetadataUpdate) AddCustomSummaryIDs(ids ...string) *PaperMetadataUpdate {
	_u.mutation.AddCustomSummaryIDs(ids...)
	return _u
}

// AddCustomSummaries adds the "custom_summaries" edges to the CustomSummary entity.
func (_u *PaperMetadataUpdate) AddCustomSummaries(v ...*CustomSummary) *PaperMetadataUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCustomSummaryIDs(ids...)
}

// AddUserLinkIDs adds the "user_links" edge to the UserPaperLink entity by IDs.
func (_u *PaperMetadataUpdate) AddUserLinkIDs(ids ...string) *PaperMetadataUpdate {
	_u.mutation.AddUserLinkIDs(ids...)
	return _u
}

// AddUserLinks adds the "user_links" edges to the UserPaperLink entity.
func (_u *PaperMetadataUpdate) AddUserLinks(v ...*UserPaperLink) *PaperMetadataUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUserLinkIDs(ids...)
}

// Mutation returns the PaperMetadataMutation object of the builder.
func (_u *PaperMetadataUpdate) Mutation() *PaperMetadataMutation {
	return _u.mutation
}

// ClearDefaultSummaries clears all "default_summaries" edges to the DefaultSummary entity.
func (_u *PaperMetadataUpdate) ClearDefaultSummaries() *PaperMetadataUpdate {
	_u.mutation.ClearDefaultSummaries()
	return _u
}

// RemoveDefaultSummaryIDs removes the "default_summaries" edge to DefaultSummary entities by IDs.
func (_u *PaperMetadataUpdate) RemoveDefaultSummaryIDs(ids ...string) *PaperMetadataUpdate {
	_u.mutation.RemoveDefaultSummaryIDs(ids...)
	return _u
}

// RemoveDefaultSummaries removes "default_summaries" edges to DefaultSummary entities.
func (_u *PaperMetadataUpdate) RemoveDefaultSummaries(v ...*DefaultSummary) *PaperMetadataUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDefaultSummaryIDs(ids...)
}

// ClearCustomSummaries clears all "custom_summaries" edges to the CustomSummary entity.
func (_u *PaperMetadataUpdate) ClearCustomSummaries() *PaperMetadataUpdate {
	_u.mutation.ClearCustomSummaries()
	return _u
}

// RemoveCustomSummaryIDs removes the "custom_summaries" edge to CustomSummary entities by IDs.
func (_u *PaperMetadataUpdate) RemoveCustomSummaryIDs(ids ...string) *PaperMetadataUpdate {
	_u.mutation.RemoveCustomSummaryIDs(ids...)
	return _u
}

// RemoveCustomSummaries removes "custom_summaries" edges to CustomSummary entities.
func (_u *PaperMetadataUpdate) RemoveCustomSummaries(v ...*CustomSummary) *PaperMetadataUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCustomSummaryIDs(ids...)
}

// ClearUserLinks clears all "user_links" edges to the UserPaperLink entity.
func (_u *PaperMetadataUpdate) ClearUserLinks() *PaperMetadataUpdate {
	_u.mutation.ClearUserLinks()
	return _u
}

// RemoveUserLinkIDs removes the "user_links" edge to UserPaperLink entities by IDs.
func (_u *PaperMetadataUpdate) RemoveUserLinkIDs(ids ...string) *PaperMetadataUpdate {
	_u.mutation.RemoveUserLinkIDs(ids...)
	return _u
}

// RemoveUserLinks removes "user_links" edges to UserPaperLink entities.
func (_u *PaperMetadataUpdate) RemoveUserLinks(v ...*UserPaperLink) *PaperMetadataUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUserLinkIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PaperMetadataUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaperMetadataUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PaperMetadataUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaperMetadataUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PaperMetadataUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := papermetadata.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PaperMetadataUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(papermetadata.Table, papermetadata.Columns, sqlgraph.NewFieldSpec(papermetadata.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(papermetadata.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(papermetadata.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(papermetadata.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Authors(); ok {
		_spec.SetField(papermetadata.FieldAuthors, field.TypeString, value)
	}
	if _u.mutation.AuthorsCleared() {
		_spec.ClearField(papermetadata.FieldAuthors, field.TypeString)
	}
	if value, ok := _u.mutation.Abstract(); ok {
		_spec.SetField(papermetadata.FieldAbstract, field.TypeString, value)
	}
	if _u.mutation.AbstractCleared() {
		_spec.ClearField(papermetadata.FieldAbstract, field.TypeString)
	}
	if value, ok := _u.mutation.FullText(); ok {
		_spec.SetField(papermetadata.FieldFullText, field.TypeString, value)
	}
	if _u.mutation.FullTextCleared() {
		_spec.ClearField(papermetadata.FieldFullText, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(papermetadata.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DefaultSummariesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDefaultSummariesIDs(); len(nodes) > 0 && !_u.mutation.DefaultSummariesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DefaultSummariesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CustomSummariesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCustomSummariesIDs(); len(nodes) > 0 && !_u.mutation.CustomSummariesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CustomSummariesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUserLinksIDs(); len(nodes) > 0 && !_u.mutation.UserLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{papermetadata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PaperMetadataUpdateOne is the builder for updating a single PaperMetadata entity.
type PaperMetadataUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PaperMetadataMutation
}

// SetExternalID sets the "external_id" field.
func (_u *PaperMetadataUpdateOne) SetExternalID(v string) *PaperMetadataUpdateOne {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *PaperMetadataUpdateOne) SetNillableExternalID(v *string) *PaperMetadataUpdateOne {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *PaperMetadataUpdateOne) SetURL(v string) *PaperMetadataUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *PaperMetadataUpdateOne) SetNillableURL(v *string) *PaperMetadataUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PaperMetadataUpdateOne) SetTitle(v string) *PaperMetadataUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PaperMetadataUpdateOne) SetNillableTitle(v *string) *PaperMetadataUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetAuthors sets the "authors" field.
func (_u *PaperMetadataUpdateOne) SetAuthors(v string) *PaperMetadataUpdateOne {
	_u.mutation.SetAuthors(v)
	return _u
}

// SetNillableAuthors sets the "authors" field if the given value is not nil.
func (_u *PaperMetadataUpdateOne) SetNillableAuthors(v *string) *PaperMetadataUpdateOne {
	if v != nil {
		_u.SetAuthors(*v)
	}
	return _u
}

// ClearAuthors clears the value of the "authors" field.
func (_u *PaperMetadataUpdateOne) ClearAuthors() *PaperMetadataUpdateOne {
	_u.mutation.ClearAuthors()
	return _u
}

// SetAbstract sets the "abstract" field.
func (_u *PaperMetadataUpdateOne) SetAbstract(v string) *PaperMetadataUpdateOne {
	_u.mutation.SetAbstract(v)
	return _u
}

// SetNillableAbstract sets the "abstract" field if the given value is not nil.
func (_u *PaperMetadataUpdateOne) SetNillableAbstract(v *string) *PaperMetadataUpdateOne {
	if v != nil {
		_u.SetAbstract(*v)
	}
	return _u
}

// ClearAbstract clears the value of the "abstract" field.
func (_u *PaperMetadataUpdateOne) ClearAbstract() *PaperMetadataUpdateOne {
	_u.mutation.ClearAbstract()
	return _u
}

// SetFullText sets the "full_text" field.
func (_u *PaperMetadataUpdateOne) SetFullText(v string) *PaperMetadataUpdateOne {
	_u.mutation.SetFullText(v)
	return _u
}

// SetNillableFullText sets the "full_text" field if the given value is not nil.
func (_u *PaperMetadataUpdateOne) SetNillableFullText(v *string) *PaperMetadataUpdateOne {
	if v != nil {
		_u.SetFullText(*v)
	}
	return _u
}

// ClearFullText clears the value of the "full_text" field.
func (_u *PaperMetadataUpdateOne) ClearFullText() *PaperMetadataUpdateOne {
	_u.mutation.ClearFullText()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PaperMetadataUpdateOne) SetUpdatedAt(v time.Time) *PaperMetadataUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDefaultSummaryIDs adds the "default_summaries" edge to the DefaultSummary entity by IDs.
func (_u *PaperMetadataUpdateOne) AddDefaultSummaryIDs(ids ...string) *PaperMetadataUpdateOne {
	_u.mutation.AddDefaultSummaryIDs(ids...)
	return _u
}

// AddDefaultSummaries adds the "default_summaries" edges to the DefaultSummary entity.
func (_u *PaperMetadataUpdateOne) AddDefaultSummaries(v ...*DefaultSummary) *PaperMetadataUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDefaultSummaryIDs(ids...)
}

// AddCustomSummaryIDs adds the "custom_summaries" edge to the CustomSummary entity by IDs.
func (_u *PaperMetadataUpdateOne) AddCustomSummaryIDs(ids ...string) *PaperMetadataUpdateOne {
	_u.mutation.AddCustomSummaryIDs(ids...)
	return _u
}

// AddCustomSummaries adds the "custom_summaries" edges to the CustomSummary entity.
func (_u *PaperMetadataUpdateOne) AddCustomSummaries(v ...*CustomSummary) *PaperMetadataUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCustomSummaryIDs(ids...)
}

// AddUserLinkIDs adds the "user_links" edge to the UserPaperLink entity by IDs.
func (_u *PaperMetadataUpdateOne) AddUserLinkIDs(ids ...string) *PaperMetadataUpdateOne {
	_u.mutation.AddUserLinkIDs(ids...)
	return _u
}

// AddUserLinks adds the "user_links" edges to the UserPaperLink entity.
func (_u *PaperMetadataUpdateOne) AddUserLinks(v ...*UserPaperLink) *PaperMetadataUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUserLinkIDs(ids...)
}

// Mutation returns the PaperMetadataMutation object of the builder.
func (_u *PaperMetadataUpdateOne) Mutation() *PaperMetadataMutation {
	return _u.mutation
}

// ClearDefaultSummaries clears all "default_summaries" edges to the DefaultSummary entity.
func (_u *PaperMetadataUpdateOne) ClearDefaultSummaries() *PaperMetadataUpdateOne {
	_u.mutation.ClearDefaultSummaries()
	return _u
}

// RemoveDefaultSummaryIDs removes the "default_summaries" edge to DefaultSummary entities by IDs.
func (_u *PaperMetadataUpdateOne) RemoveDefaultSummaryIDs(ids ...string) *PaperMetadataUpdateOne {
	_u.mutation.RemoveDefaultSummaryIDs(ids...)
	return _u
}

// RemoveDefaultSummaries removes "default_summaries" edges to DefaultSummary entities.
func (_u *PaperMetadataUpdateOne) RemoveDefaultSummaries(v ...*DefaultSummary) *PaperMetadataUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDefaultSummaryIDs(ids...)
}

// ClearCustomSummaries clears all "custom_summaries" edges to the CustomSummary entity.
func (_u *PaperMetadataUpdateOne) ClearCustomSummaries() *PaperMetadataUpdateOne {
	_u.mutation.ClearCustomSummaries()
	return _u
}

// RemoveCustomSummaryIDs removes the "custom_summaries" edge to CustomSummary entities by IDs.
func (_u *PaperMetadataUpdateOne) RemoveCustomSummaryIDs(ids ...string) *PaperMetadataUpdateOne {
	_u.mutation.RemoveCustomSummaryIDs(ids...)
	return _u
}

// RemoveCustomSummaries removes "custom_summaries" edges to CustomSummary entities.
func (_u *PaperMetadataUpdateOne) RemoveCustomSummaries(v ...*CustomSummary) *PaperMetadataUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCustomSummaryIDs(ids...)
}

// ClearUserLinks clears all "user_links" edges to the UserPaperLink entity.
func (_u *PaperMetadataUpdateOne) ClearUserLinks() *PaperMetadataUpdateOne {
	_u.mutation.ClearUserLinks()
	return _u
}

// RemoveUserLinkIDs removes the "user_links" edge to UserPaperLink entities by IDs.
func (_u *PaperMetadataUpdateOne) RemoveUserLinkIDs(ids ...string) *PaperMetadataUpdateOne {
	_u.mutation.RemoveUserLinkIDs(ids...)
	return _u
}

// RemoveUserLinks removes "user_links" edges to UserPaperLink entities.
func (_u *PaperMetadataUpdateOne) RemoveUserLinks(v ...*UserPaperLink) *PaperMetadataUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUserLinkIDs(ids...)
}

// Where appends a list predicates to the PaperMetadataUpdate builder.
func (_u *PaperMetadataUpdateOne) Where(ps ...predicate.PaperMetadata) *PaperMetadataUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PaperMetadataUpdateOne) Select(field string, fields ...string) *PaperMetadataUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PaperMetadata entity.
func (_u *PaperMetadataUpdateOne) Save(ctx context.Context) (*PaperMetadata, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaperMetadataUpdateOne) SaveX(ctx context.Context) *PaperMetadata {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PaperMetadataUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaperMetadataUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PaperMetadataUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := papermetadata.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PaperMetadataUpdateOne) sqlSave(ctx context.Context) (_node *PaperMetadata, err error) {
	_spec := sqlgraph.NewUpdateSpec(papermetadata.Table, papermetadata.Columns, sqlgraph.NewFieldSpec(papermetadata.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PaperMetadata.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, papermetadata.FieldID)
		for _, f := range fields {
			if !papermetadata.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != papermetadata.FieldID {
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
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(papermetadata.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(papermetadata.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(papermetadata.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Authors(); ok {
		_spec.SetField(papermetadata.FieldAuthors, field.TypeString, value)
	}
	if _u.mutation.AuthorsCleared() {
		_spec.ClearField(papermetadata.FieldAuthors, field.TypeString)
	}
	if value, ok := _u.mutation.Abstract(); ok {
		_spec.SetField(papermetadata.FieldAbstract, field.TypeString, value)
	}
	if _u.mutation.AbstractCleared() {
		_spec.ClearField(papermetadata.FieldAbstract, field.TypeString)
	}
	if value, ok := _u.mutation.FullText(); ok {
		_spec.SetField(papermetadata.FieldFullText, field.TypeString, value)
	}
	if _u.mutation.FullTextCleared() {
		_spec.ClearField(papermetadata.FieldFullText, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(papermetadata.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DefaultSummariesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDefaultSummariesIDs(); len(nodes) > 0 && !_u.mutation.DefaultSummariesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DefaultSummariesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CustomSummariesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCustomSummariesIDs(); len(nodes) > 0 && !_u.mutation.CustomSummariesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CustomSummariesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUserLinksIDs(); len(nodes) > 0 && !_u.mutation.UserLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PaperMetadata{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{papermetadata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
