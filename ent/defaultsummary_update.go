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
	"github.com/rainzero1960/paperscout/ent/defaultsummary"
	"github.com/rainzero1960/paperscout/ent/predicate"
)

// DefaultSummaryUpdate is the builder for updating DefaultSummary entities.
type DefaultSummaryUpdate struct {
	config
	hooks    []Hook
	mutation *DefaultSummaryMutation
}

// Where appends a list predicates to the DefaultSummaryUpdate builder.
func (_u *DefaultSummaryUpdate) Where(ps ...predicate.DefaultSummary) *DefaultSummaryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLlmProvider sets the "llm_provider" field.
func (_u *DefaultSummaryUpdate) SetLlmProvider(v string) *DefaultSummaryUpdate {
	_u.mutation.SetLlmProvider(v)
	return _u
}

// SetNillableLlmProvider sets the "llm_provider" field if the given value is not nil.
func (_u *DefaultSummaryUpdate) SetNillableLlmProvider(v *string) *DefaultSummaryUpdate {
	if v != nil {
		_u.SetLlmProvider(*v)
	}
	return _u
}

// SetLlmModel sets the "llm_model" field.
func (_u *DefaultSummaryUpdate) SetLlmModel(v string) *DefaultSummaryUpdate {
	_u.mutation.SetLlmModel(v)
	return _u
}

// SetNillableLlmModel sets the "llm_model" field if the given value is not nil.
func (_u *DefaultSummaryUpdate) SetNillableLlmModel(v *string) *DefaultSummaryUpdate {
	if v != nil {
		_u.SetLlmModel(*v)
	}
	return _u
}

// SetCharacter sets the "character" field.
func (_u *DefaultSummaryUpdate) SetCharacter(v defaultsummary.Character) *DefaultSummaryUpdate {
	_u.mutation.SetCharacter(v)
	return _u
}

// SetNillableCharacter sets the "character" field if the given value is not nil.
func (_u *DefaultSummaryUpdate) SetNillableCharacter(v *defaultsummary.Character) *DefaultSummaryUpdate {
	if v != nil {
		_u.SetCharacter(*v)
	}
	return _u
}

// SetAffinity sets the "affinity" field.
func (_u *DefaultSummaryUpdate) SetAffinity(v int) *DefaultSummaryUpdate {
	_u.mutation.ResetAffinity()
	_u.mutation.SetAffinity(v)
	return _u
}

// SetNillableAffinity sets the "affinity" field if the given value is not nil.
func (_u *DefaultSummaryUpdate) SetNillableAffinity(v *int) *DefaultSummaryUpdate {
	if v != nil {
		_u.SetAffinity(*v)
	}
	return _u
}

// AddAffinity adds value to the "affinity" field.
func (_u *DefaultSummaryUpdate) AddAffinity(v int) *DefaultSummaryUpdate {
	_u.mutation.AddAffinity(v)
	return _u
}

// SetBody sets the "body" field.
func (_u *DefaultSummaryUpdate) SetBody(v string) *DefaultSummaryUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *DefaultSummaryUpdate) SetNillableBody(v *string) *DefaultSummaryUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetOnePoint sets the "one_point" field.
func (_u *DefaultSummaryUpdate) SetOnePoint(v string) *DefaultSummaryUpdate {
	_u.mutation.SetOnePoint(v)
	return _u
}

// SetNillableOnePoint sets the "one_point" field if the given value is not nil.
func (_u *DefaultSummaryUpdate) SetNillableOnePoint(v *string) *DefaultSummaryUpdate {
	if v != nil {
		_u.SetOnePoint(*v)
	}
	return _u
}

// ClearOnePoint clears the value of the "one_point" field.
func (_u *DefaultSummaryUpdate) ClearOnePoint() *DefaultSummaryUpdate {
	_u.mutation.ClearOnePoint()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DefaultSummaryUpdate) SetUpdatedAt(v time.Time) *DefaultSummaryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DefaultSummaryMutation object of the builder.
func (_u *DefaultSummaryUpdate) Mutation() *DefaultSummaryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DefaultSummaryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DefaultSummaryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DefaultSummaryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DefaultSummaryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DefaultSummaryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := defaultsummary.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DefaultSummaryUpdate) check() error {
	if v, ok := _u.mutation.Character(); ok {
		if err := defaultsummary.CharacterValidator(v); err != nil {
			return &ValidationError{Name: "character", err: fmt.Errorf(`ent: validator failed for field "DefaultSummary.character": %w`, err)}
		}
	}
	if _u.mutation.PaperCleared() && len(_u.mutation.PaperIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DefaultSummary.paper"`)
	}
	return nil
}

func (_u *DefaultSummaryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(defaultsummary.Table, defaultsummary.Columns, sqlgraph.NewFieldSpec(defaultsummary.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LlmProvider(); ok {
		_spec.SetField(defaultsummary.FieldLlmProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.LlmModel(); ok {
		_spec.SetField(defaultsummary.FieldLlmModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Character(); ok {
		_spec.SetField(defaultsummary.FieldCharacter, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Affinity(); ok {
		_spec.SetField(defaultsummary.FieldAffinity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAffinity(); ok {
		_spec.AddField(defaultsummary.FieldAffinity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(defaultsummary.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.OnePoint(); ok {
		_spec.SetField(defaultsummary.FieldOnePoint, field.TypeString, value)
	}
	if _u.mutation.OnePointCleared() {
		_spec.ClearField(defaultsummary.FieldOnePoint, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(defaultsummary.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{defaultsummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DefaultSummaryUpdateOne is the builder for updating a single DefaultSummary entity.
type DefaultSummaryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DefaultSummaryMutation
}

// SetLlmProvider sets the "llm_provider" field.
func (_u *DefaultSummaryUpdateOne) SetLlmProvider(v string) *DefaultSummaryUpdateOne {
	_u.mutation.SetLlmProvider(v)
	return _u
}

// SetNillableLlmProvider sets the "llm_provider" field if the given value is not nil.
func (_u *DefaultSummaryUpdateOne) SetNillableLlmProvider(v *string) *DefaultSummaryUpdateOne {
	if v != nil {
		_u.SetLlmProvider(*v)
	}
	return _u
}

// SetLlmModel sets the "llm_model" field.
func (_u *DefaultSummaryUpdateOne) SetLlmModel(v string) *DefaultSummaryUpdateOne {
	_u.mutation.SetLlmModel(v)
	return _u
}

// SetNillableLlmModel sets the "llm_model" field if the given value is not nil.
func (_u *DefaultSummaryUpdateOne) SetNillableLlmModel(v *string) *DefaultSummaryUpdateOne {
	if v != nil {
		_u.SetLlmModel(*v)
	}
	return _u
}

// SetCharacter sets the "character" field.
func (_u *DefaultSummaryUpdateOne) SetCharacter(v defaultsummary.Character) *DefaultSummaryUpdateOne {
	_u.mutation.SetCharacter(v)
	return _u
}

// SetNillableCharacter sets the "character" field if the given value is not nil.
func (_u *DefaultSummaryUpdateOne) SetNillableCharacter(v *defaultsummary.Character) *DefaultSummaryUpdateOne {
	if v != nil {
		_u.SetCharacter(*v)
	}
	return _u
}

// SetAffinity sets the "affinity" field.
func (_u *DefaultSummaryUpdateOne) SetAffinity(v int) *DefaultSummaryUpdateOne {
	_u.mutation.ResetAffinity()
	_u.mutation.SetAffinity(v)
	return _u
}

// SetNillableAffinity sets the "affinity" field if the given value is not nil.
func (_u *DefaultSummaryUpdateOne) SetNillableAffinity(v *int) *DefaultSummaryUpdateOne {
	if v != nil {
		_u.SetAffinity(*v)
	}
	return _u
}

// AddAffinity adds value to the "affinity" field.
func (_u *DefaultSummaryUpdateOne) AddAffinity(v int) *DefaultSummaryUpdateOne {
	_u.mutation.AddAffinity(v)
	return _u
}

// SetBody sets the "body" field.
func (_u *DefaultSummaryUpdateOne) SetBody(v string) *DefaultSummaryUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *DefaultSummaryUpdateOne) SetNillableBody(v *string) *DefaultSummaryUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetOnePoint sets the "one_point" field.
func (_u *DefaultSummaryUpdateOne) SetOnePoint(v string) *DefaultSummaryUpdateOne {
	_u.mutation.SetOnePoint(v)
	return _u
}

// SetNillableOnePoint sets the "one_point" field if the given value is not nil.
func (_u *DefaultSummaryUpdateOne) SetNillableOnePoint(v *string) *DefaultSummaryUpdateOne {
	if v != nil {
		_u.SetOnePoint(*v)
	}
	return _u
}

// ClearOnePoint clears the value of the "one_point" field.
func (_u *DefaultSummaryUpdateOne) ClearOnePoint() *DefaultSummaryUpdateOne {
	_u.mutation.ClearOnePoint()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DefaultSummaryUpdateOne) SetUpdatedAt(v time.Time) *DefaultSummaryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DefaultSummaryMutation object of the builder.
func (_u *DefaultSummaryUpdateOne) Mutation() *DefaultSummaryMutation {
	return _u.mutation
}

// Where appends a list predicates to the DefaultSummaryUpdate builder.
func (_u *DefaultSummaryUpdateOne) Where(ps ...predicate.DefaultSummary) *DefaultSummaryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DefaultSummaryUpdateOne) Select(field string, fields ...string) *DefaultSummaryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DefaultSummary entity.
func (_u *DefaultSummaryUpdateOne) Save(ctx context.Context) (*DefaultSummary, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DefaultSummaryUpdateOne) SaveX(ctx context.Context) *DefaultSummary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DefaultSummaryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DefaultSummaryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DefaultSummaryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := defaultsummary.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DefaultSummaryUpdateOne) check() error {
	if v, ok := _u.mutation.Character(); ok {
		if err := defaultsummary.CharacterValidator(v); err != nil {
			return &ValidationError{Name: "character", err: fmt.Errorf(`ent: validator failed for field "DefaultSummary.character": %w`, err)}
		}
	}
	if _u.mutation.PaperCleared() && len(_u.mutation.PaperIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DefaultSummary.paper"`)
	}
	return nil
}

func (_u *DefaultSummaryUpdateOne) sqlSave(ctx context.Context) (_node *DefaultSummary, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(defaultsummary.Table, defaultsummary.Columns, sqlgraph.NewFieldSpec(defaultsummary.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DefaultSummary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, defaultsummary.FieldID)
		for _, f := range fields {
			if !defaultsummary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != defaultsummary.FieldID {
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
	if value, ok := _u.mutation.LlmProvider(); ok {
		_spec.SetField(defaultsummary.FieldLlmProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.LlmModel(); ok {
		_spec.SetField(defaultsummary.FieldLlmModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Character(); ok {
		_spec.SetField(defaultsummary.FieldCharacter, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Affinity(); ok {
		_spec.SetField(defaultsummary.FieldAffinity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAffinity(); ok {
		_spec.AddField(defaultsummary.FieldAffinity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(defaultsummary.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.OnePoint(); ok {
		_spec.SetField(defaultsummary.FieldOnePoint, field.TypeString, value)
	}
	if _u.mutation.OnePointCleared() {
		_spec.ClearField(defaultsummary.FieldOnePoint, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(defaultsummary.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DefaultSummary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{defaultsummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
