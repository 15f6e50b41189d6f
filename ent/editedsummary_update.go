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
	"github.com/rainzero1960/paperscout/ent/editedsummary"
	"github.com/rainzero1960/paperscout/ent/predicate"
)

// EditedSummaryUpdate is the builder for updating EditedSummary entities.
type EditedSummaryUpdate struct {
	config
	hooks    []Hook
	mutation *EditedSummaryMutation
}

// Where appends a list predicates to the EditedSummaryUpdate builder.
func (_u *EditedSummaryUpdate) Where(ps ...predicate.EditedSummary) *EditedSummaryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDefaultSummaryID sets the "default_summary_id" field.
func (_u *EditedSummaryUpdate) SetDefaultSummaryID(v string) *EditedSummaryUpdate {
	_u.mutation.SetDefaultSummaryID(v)
	return _u
}

// SetNillableDefaultSummaryID sets the "default_summary_id" field if the given value is not nil.
func (_u *EditedSummaryUpdate) SetNillableDefaultSummaryID(v *string) *EditedSummaryUpdate {
	if v != nil {
		_u.SetDefaultSummaryID(*v)
	}
	return _u
}

// ClearDefaultSummaryID clears the value of the "default_summary_id" field.
func (_u *EditedSummaryUpdate) ClearDefaultSummaryID() *EditedSummaryUpdate {
	_u.mutation.ClearDefaultSummaryID()
	return _u
}

// SetCustomSummaryID sets the "custom_summary_id" field.
func (_u *EditedSummaryUpdate) SetCustomSummaryID(v string) *EditedSummaryUpdate {
	_u.mutation.SetCustomSummaryID(v)
	return _u
}

// SetNillableCustomSummaryID sets the "custom_summary_id" field if the given value is not nil.
func (_u *EditedSummaryUpdate) SetNillableCustomSummaryID(v *string) *EditedSummaryUpdate {
	if v != nil {
		_u.SetCustomSummaryID(*v)
	}
	return _u
}

// ClearCustomSummaryID clears the value of the "custom_summary_id" field.
func (_u *EditedSummaryUpdate) ClearCustomSummaryID() *EditedSummaryUpdate {
	_u.mutation.ClearCustomSummaryID()
	return _u
}

// SetBody sets the "body" field.
func (_u *EditedSummaryUpdate) SetBody(v string) *EditedSummaryUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *EditedSummaryUpdate) SetNillableBody(v *string) *EditedSummaryUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetOnePoint sets the "one_point" field.
func (_u *EditedSummaryUpdate) SetOnePoint(v string) *EditedSummaryUpdate {
	_u.mutation.SetOnePoint(v)
	return _u
}

// SetNillableOnePoint sets the "one_point" field if the given value is not nil.
func (_u *EditedSummaryUpdate) SetNillableOnePoint(v *string) *EditedSummaryUpdate {
	if v != nil {
		_u.SetOnePoint(*v)
	}
	return _u
}

// ClearOnePoint clears the value of the "one_point" field.
func (_u *EditedSummaryUpdate) ClearOnePoint() *EditedSummaryUpdate {
	_u.mutation.ClearOnePoint()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EditedSummaryUpdate) SetUpdatedAt(v time.Time) *EditedSummaryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EditedSummaryMutation object of the builder.
func (_u *EditedSummaryUpdate) Mutation() *EditedSummaryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EditedSummaryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EditedSummaryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EditedSummaryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EditedSummaryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EditedSummaryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := editedsummary.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EditedSummaryUpdate) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EditedSummary.user"`)
	}
	return nil
}

func (_u *EditedSummaryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(editedsummary.Table, editedsummary.Columns, sqlgraph.NewFieldSpec(editedsummary.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DefaultSummaryID(); ok {
		_spec.SetField(editedsummary.FieldDefaultSummaryID, field.TypeString, value)
	}
	if _u.mutation.DefaultSummaryIDCleared() {
		_spec.ClearField(editedsummary.FieldDefaultSummaryID, field.TypeString)
	}
	if value, ok := _u.mutation.CustomSummaryID(); ok {
		_spec.SetField(editedsummary.FieldCustomSummaryID, field.TypeString, value)
	}
	if _u.mutation.CustomSummaryIDCleared() {
		_spec.ClearField(editedsummary.FieldCustomSummaryID, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(editedsummary.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.OnePoint(); ok {
		_spec.SetField(editedsummary.FieldOnePoint, field.TypeString, value)
	}
	if _u.mutation.OnePointCleared() {
		_spec.ClearField(editedsummary.FieldOnePoint, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(editedsummary.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{editedsummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EditedSummaryUpdateOne is the builder for updating a single EditedSummary entity.
type EditedSummaryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EditedSummaryMutation
}

// SetDefaultSummaryID sets the "default_summary_id" field.
func (_u *EditedSummaryUpdateOne) SetDefaultSummaryID(v string) *EditedSummaryUpdateOne {
	_u.mutation.SetDefaultSummaryID(v)
	return _u
}

// SetNillableDefaultSummaryID sets the "default_summary_id" field if the given value is not nil.
func (_u *EditedSummaryUpdateOne) SetNillableDefaultSummaryID(v *string) *EditedSummaryUpdateOne {
	if v != nil {
		_u.SetDefaultSummaryID(*v)
	}
	return _u
}

// ClearDefaultSummaryID clears the value of the "default_summary_id" field.
func (_u *EditedSummaryUpdateOne) ClearDefaultSummaryID() *EditedSummaryUpdateOne {
	_u.mutation.ClearDefaultSummaryID()
	return _u
}

// SetCustomSummaryID sets the "custom_summary_id" field.
func (_u *EditedSummaryUpdateOne) SetCustomSummaryID(v string) *EditedSummaryUpdateOne {
	_u.mutation.SetCustomSummaryID(v)
	return _u
}

// SetNillableCustomSummaryID sets the "custom_summary_id" field if the given value is not nil.
func (_u *EditedSummaryUpdateOne) SetNillableCustomSummaryID(v *string) *EditedSummaryUpdateOne {
	if v != nil {
		_u.SetCustomSummaryID(*v)
	}
	return _u
}

// ClearCustomSummaryID clears the value of the "custom_summary_id" field.
func (_u *EditedSummaryUpdateOne) ClearCustomSummaryID() *EditedSummaryUpdateOne {
	_u.mutation.ClearCustomSummaryID()
	return _u
}

// SetBody sets the "body" field.
func (_u *EditedSummaryUpdateOne) SetBody(v string) *EditedSummaryUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *EditedSummaryUpdateOne) SetNillableBody(v *string) *EditedSummaryUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetOnePoint sets the "one_point" field.
func (_u *EditedSummaryUpdateOne) SetOnePoint(v string) *EditedSummaryUpdateOne {
	_u.mutation.SetOnePoint(v)
	return _u
}

// SetNillableOnePoint sets the "one_point" field if the given value is not nil.
func (_u *EditedSummaryUpdateOne) SetNillableOnePoint(v *string) *EditedSummaryUpdateOne {
	if v != nil {
		_u.SetOnePoint(*v)
	}
	return _u
}

// ClearOnePoint clears the value of the "one_point" field.
func (_u *EditedSummaryUpdateOne) ClearOnePoint() *EditedSummaryUpdateOne {
	_u.mutation.ClearOnePoint()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EditedSummaryUpdateOne) SetUpdatedAt(v time.Time) *EditedSummaryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EditedSummaryMutation object of the builder.
func (_u *EditedSummaryUpdateOne) Mutation() *EditedSummaryMutation {
	return _u.mutation
}

// Where appends a list predicates to the EditedSummaryUpdate builder.
func (_u *EditedSummaryUpdateOne) Where(ps ...predicate.EditedSummary) *EditedSummaryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EditedSummaryUpdateOne) Select(field string, fields ...string) *EditedSummaryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EditedSummary entity.
func (_u *EditedSummaryUpdateOne) Save(ctx context.Context) (*EditedSummary, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EditedSummaryUpdateOne) SaveX(ctx context.Context) *EditedSummary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EditedSummaryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EditedSummaryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EditedSummaryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := editedsummary.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EditedSummaryUpdateOne) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EditedSummary.user"`)
	}
	return nil
}

func (_u *EditedSummaryUpdateOne) sqlSave(ctx context.Context) (_node *EditedSummary, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(editedsummary.Table, editedsummary.Columns, sqlgraph.NewFieldSpec(editedsummary.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EditedSummary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, editedsummary.FieldID)
		for _, f := range fields {
			if !editedsummary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != editedsummary.FieldID {
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
	if value, ok := _u.mutation.DefaultSummaryID(); ok {
		_spec.SetField(editedsummary.FieldDefaultSummaryID, field.TypeString, value)
	}
	if _u.mutation.DefaultSummaryIDCleared() {
		_spec.ClearField(editedsummary.FieldDefaultSummaryID, field.TypeString)
	}
	if value, ok := _u.mutation.CustomSummaryID(); ok {
		_spec.SetField(editedsummary.FieldCustomSummaryID, field.TypeString, value)
	}
	if _u.mutation.CustomSummaryIDCleared() {
		_spec.ClearField(editedsummary.FieldCustomSummaryID, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(editedsummary.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.OnePoint(); ok {
		_spec.SetField(editedsummary.FieldOnePoint, field.TypeString, value)
	}
	if _u.mutation.OnePointCleared() {
		_spec.ClearField(editedsummary.FieldOnePoint, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(editedsummary.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &EditedSummary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{editedsummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
