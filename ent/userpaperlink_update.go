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
	"github.com/rainzero1960/paperscout/ent/predicate"
	"github.com/rainzero1960/paperscout/ent/userpaperlink"
)

// UserPaperLinkUpdate is the builder for updating UserPaperLink entities.
type UserPaperLinkUpdate struct {
	config
	hooks    []Hook
	mutation *UserPaperLinkMutation
}

// Where appends a list predicates to the UserPaperLinkUpdate builder.
func (_u *UserPaperLinkUpdate) Where(ps ...predicate.UserPaperLink) *UserPaperLinkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTags sets the "tags" field.
func (_u *UserPaperLinkUpdate) SetTags(v string) *UserPaperLinkUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// SetNillableTags sets the "tags" field if the given value is not nil.
func (_u *UserPaperLinkUpdate) SetNillableTags(v *string) *UserPaperLinkUpdate {
	if v != nil {
		_u.SetTags(*v)
	}
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *UserPaperLinkUpdate) ClearTags() *UserPaperLinkUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetMemo sets the "memo" field.
func (_u *UserPaperLinkUpdate) SetMemo(v string) *UserPaperLinkUpdate {
	_u.mutation.SetMemo(v)
	return _u
}

// SetNillableMemo sets the "memo" field if the given value is not nil.
func (_u *UserPaperLinkUpdate) SetNillableMemo(v *string) *UserPaperLinkUpdate {
	if v != nil {
		_u.SetMemo(*v)
	}
	return _u
}

// ClearMemo clears the value of the "memo" field.
func (_u *UserPaperLinkUpdate) ClearMemo() *UserPaperLinkUpdate {
	_u.mutation.ClearMemo()
	return _u
}

// SetSelectedDefaultSummaryID sets the "selected_default_summary_id" field.
func (_u *UserPaperLinkUpdate) SetSelectedDefaultSummaryID(v string) *UserPaperLinkUpdate {
	_u.mutation.SetSelectedDefaultSummaryID(v)
	return _u
}

// SetNillableSelectedDefaultSummaryID sets the "selected_default_summary_id" field if the given value is not nil.
func (_u *UserPaperLinkUpdate) SetNillableSelectedDefaultSummaryID(v *string) *UserPaperLinkUpdate {
	if v != nil {
		_u.SetSelectedDefaultSummaryID(*v)
	}
	return _u
}

// ClearSelectedDefaultSummaryID clears the value of the "selected_default_summary_id" field.
func (_u *UserPaperLinkUpdate) ClearSelectedDefaultSummaryID() *UserPaperLinkUpdate {
	_u.mutation.ClearSelectedDefaultSummaryID()
	return _u
}

// SetSelectedCustomSummaryID sets the "selected_custom_summary_id" field.
func (_u *UserPaperLinkUpdate) SetSelectedCustomSummaryID(v string) *UserPaperLinkUpdate {
	_u.mutation.SetSelectedCustomSummaryID(v)
	return _u
}

// SetNillableSelectedCustomSummaryID sets the "selected_custom_summary_id" field if the given value is not nil.
func (_u *UserPaperLinkUpdate) SetNillableSelectedCustomSummaryID(v *string) *UserPaperLinkUpdate {
	if v != nil {
		_u.SetSelectedCustomSummaryID(*v)
	}
	return _u
}

// ClearSelectedCustomSummaryID clears the value of the "selected_custom_summary_id" field.
func (_u *UserPaperLinkUpdate) ClearSelectedCustomSummaryID() *UserPaperLinkUpdate {
	_u.mutation.ClearSelectedCustomSummaryID()
	return _u
}

// SetLastAccessed sets the "last_accessed" field.
func (_u *UserPaperLinkUpdate) SetLastAccessed(v time.Time) *UserPaperLinkUpdate {
	_u.mutation.SetLastAccessed(v)
	return _u
}

// SetNillableLastAccessed sets the "last_accessed" field if the given value is not nil.
func (_u *UserPaperLinkUpdate) SetNillableLastAccessed(v *time.Time) *UserPaperLinkUpdate {
	if v != nil {
		_u.SetLastAccessed(*v)
	}
	return _u
}

// ClearLastAccessed clears the value of the "last_accessed" field.
func (_u *UserPaperLinkUpdate) ClearLastAccessed() *UserPaperLinkUpdate {
	_u.mutation.ClearLastAccessed()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserPaperLinkUpdate) SetUpdatedAt(v time.Time) *UserPaperLinkUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserPaperLinkMutation object of the builder.
func (_u *UserPaperLinkUpdate) Mutation() *UserPaperLinkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserPaperLinkUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserPaperLinkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserPaperLinkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserPaperLinkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserPaperLinkUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userpaperlink.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserPaperLinkUpdate) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UserPaperLink.user"`)
	}
	if _u.mutation.PaperCleared() && len(_u.mutation.PaperIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UserPaperLink.paper"`)
	}
	return nil
}

func (_u *UserPaperLinkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userpaperlink.Table, userpaperlink.Columns, sqlgraph.NewFieldSpec(userpaperlink.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(userpaperlink.FieldTags, field.TypeString, value)
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(userpaperlink.FieldTags, field.TypeString)
	}
	if value, ok := _u.mutation.Memo(); ok {
		_spec.SetField(userpaperlink.FieldMemo, field.TypeString, value)
	}
	if _u.mutation.MemoCleared() {
		_spec.ClearField(userpaperlink.FieldMemo, field.TypeString)
	}
	if value, ok := _u.mutation.SelectedDefaultSummaryID(); ok {
		_spec.SetField(userpaperlink.FieldSelectedDefaultSummaryID, field.TypeString, value)
	}
	if _u.mutation.SelectedDefaultSummaryIDCleared() {
		_spec.ClearField(userpaperlink.FieldSelectedDefaultSummaryID, field.TypeString)
	}
	if value, ok := _u.mutation.SelectedCustomSummaryID(); ok {
		_spec.SetField(userpaperlink.FieldSelectedCustomSummaryID, field.TypeString, value)
	}
	if _u.mutation.SelectedCustomSummaryIDCleared() {
		_spec.ClearField(userpaperlink.FieldSelectedCustomSummaryID, field.TypeString)
	}
	if value, ok := _u.mutation.LastAccessed(); ok {
		_spec.SetField(userpaperlink.FieldLastAccessed, field.TypeTime, value)
	}
	if _u.mutation.LastAccessedCleared() {
		_spec.ClearField(userpaperlink.FieldLastAccessed, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userpaperlink.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userpaperlink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserPaperLinkUpdateOne is the builder for updating a single UserPaperLink entity.
type UserPaperLinkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserPaperLinkMutation
}

// SetTags sets the "tags" field.
func (_u *UserPaperLinkUpdateOne) SetTags(v string) *UserPaperLinkUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// SetNillableTags sets the "tags" field if the given value is not nil.
func (_u *UserPaperLinkUpdateOne) SetNillableTags(v *string) *UserPaperLinkUpdateOne {
	if v != nil {
		_u.SetTags(*v)
	}
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *UserPaperLinkUpdateOne) ClearTags() *UserPaperLinkUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetMemo sets the "memo" field.
func (_u *UserPaperLinkUpdateOne) SetMemo(v string) *UserPaperLinkUpdateOne {
	_u.mutation.SetMemo(v)
	return _u
}

// SetNillableMemo sets the "memo" field if the given value is not nil.
func (_u *UserPaperLinkUpdateOne) SetNillableMemo(v *string) *UserPaperLinkUpdateOne {
	if v != nil {
		_u.SetMemo(*v)
	}
	return _u
}

// ClearMemo clears the value of the "memo" field.
func (_u *UserPaperLinkUpdateOne) ClearMemo() *UserPaperLinkUpdateOne {
	_u.mutation.ClearMemo()
	return _u
}

// SetSelectedDefaultSummaryID sets the "selected_default_summary_id" field.
func (_u *UserPaperLinkUpdateOne) SetSelectedDefaultSummaryID(v string) *UserPaperLinkUpdateOne {
	_u.mutation.SetSelectedDefaultSummaryID(v)
	return _u
}

// SetNillableSelectedDefaultSummaryID sets the "selected_default_summary_id" field if the given value is not nil.
func (_u *UserPaperLinkUpdateOne) SetNillableSelectedDefaultSummaryID(v *string) *UserPaperLinkUpdateOne {
	if v != nil {
		_u.SetSelectedDefaultSummaryID(*v)
	}
	return _u
}

// ClearSelectedDefaultSummaryID clears the value of the "selected_default_summary_id" field.
func (_u *UserPaperLinkUpdateOne) ClearSelectedDefaultSummaryID() *UserPaperLinkUpdateOne {
	_u.mutation.ClearSelectedDefaultSummaryID()
	return _u
}

// SetSelectedCustomSummaryID sets the "selected_custom_summary_id" field.
func (_u *UserPaperLinkUpdateOne) SetSelectedCustomSummaryID(v string) *UserPaperLinkUpdateOne {
	_u.mutation.SetSelectedCustomSummaryID(v)
	return _u
}

// SetNillableSelectedCustomSummaryID sets the "selected_custom_summary_id" field if the given value is not nil.
func (_u *UserPaperLinkUpdateOne) SetNillableSelectedCustomSummaryID(v *string) *UserPaperLinkUpdateOne {
	if v != nil {
		_u.SetSelectedCustomSummaryID(*v)
	}
	return _u
}

// ClearSelectedCustomSummaryID clears the value of the "selected_custom_summary_id" field.
func (_u *UserPaperLinkUpdateOne) ClearSelectedCustomSummaryID() *UserPaperLinkUpdateOne {
	_u.mutation.ClearSelectedCustomSummaryID()
	return _u
}

// SetLastAccessed sets the "last_accessed" field.
func (_u *UserPaperLinkUpdateOne) SetLastAccessed(v time.Time) *UserPaperLinkUpdateOne {
	_u.mutation.SetLastAccessed(v)
	return _u
}

// SetNillableLastAccessed sets the "last_accessed" field if the given value is not nil.
func (_u *UserPaperLinkUpdateOne) SetNillableLastAccessed(v *time.Time) *UserPaperLinkUpdateOne {
	if v != nil {
		_u.SetLastAccessed(*v)
	}
	return _u
}

// ClearLastAccessed clears the value of the "last_accessed" field.
func (_u *UserPaperLinkUpdateOne) ClearLastAccessed() *UserPaperLinkUpdateOne {
	_u.mutation.ClearLastAccessed()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserPaperLinkUpdateOne) SetUpdatedAt(v time.Time) *UserPaperLinkUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserPaperLinkMutation object of the builder.
func (_u *UserPaperLinkUpdateOne) Mutation() *UserPaperLinkMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserPaperLinkUpdate builder.
func (_u *UserPaperLinkUpdateOne) Where(ps ...predicate.UserPaperLink) *UserPaperLinkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserPaperLinkUpdateOne) Select(field string, fields ...string) *UserPaperLinkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserPaperLink entity.
func (_u *UserPaperLinkUpdateOne) Save(ctx context.Context) (*UserPaperLink, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserPaperLinkUpdateOne) SaveX(ctx context.Context) *UserPaperLink {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserPaperLinkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserPaperLinkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserPaperLinkUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userpaperlink.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserPaperLinkUpdateOne) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UserPaperLink.user"`)
	}
	if _u.mutation.PaperCleared() && len(_u.mutation.PaperIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UserPaperLink.paper"`)
	}
	return nil
}

func (_u *UserPaperLinkUpdateOne) sqlSave(ctx context.Context) (_node *UserPaperLink, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userpaperlink.Table, userpaperlink.Columns, sqlgraph.NewFieldSpec(userpaperlink.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserPaperLink.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userpaperlink.FieldID)
		for _, f := range fields {
			if !userpaperlink.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userpaperlink.FieldID {
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
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(userpaperlink.FieldTags, field.TypeString, value)
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(userpaperlink.FieldTags, field.TypeString)
	}
	if value, ok := _u.mutation.Memo(); ok {
		_spec.SetField(userpaperlink.FieldMemo, field.TypeString, value)
	}
	if _u.mutation.MemoCleared() {
		_spec.ClearField(userpaperlink.FieldMemo, field.TypeString)
	}
	if value, ok := _u.mutation.SelectedDefaultSummaryID(); ok {
		_spec.SetField(userpaperlink.FieldSelectedDefaultSummaryID, field.TypeString, value)
	}
	if _u.mutation.SelectedDefaultSummaryIDCleared() {
		_spec.ClearField(userpaperlink.FieldSelectedDefaultSummaryID, field.TypeString)
	}
	if value, ok := _u.mutation.SelectedCustomSummaryID(); ok {
		_spec.SetField(userpaperlink.FieldSelectedCustomSummaryID, field.TypeString, value)
	}
	if _u.mutation.SelectedCustomSummaryIDCleared() {
		_spec.ClearField(userpaperlink.FieldSelectedCustomSummaryID, field.TypeString)
	}
	if value, ok := _u.mutation.LastAccessed(); ok {
		_spec.SetField(userpaperlink.FieldLastAccessed, field.TypeTime, value)
	}
	if _u.mutation.LastAccessedCleared() {
		_spec.ClearField(userpaperlink.FieldLastAccessed, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userpaperlink.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UserPaperLink{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userpaperlink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
