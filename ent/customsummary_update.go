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
	"github.com/rainzero1960/paperscout/ent/predicate"
)

// CustomSummaryUpdate is the builder for updating CustomSummary entities.
type CustomSummaryUpdate struct {
	config
	hooks    []Hook
	mutation *CustomSummaryMutation
}

// Where appends a list predicates to the CustomSummaryUpdate builder.
func (_u *CustomSummaryUpdate) Where(ps ...predicate.CustomSummary) *CustomSummaryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLlmProvider sets the "llm_provider" field.
func (_u *CustomSummaryUpdate) SetLlmProvider(v string) *CustomSummaryUpdate {
	_u.mutation.SetLlmProvider(v)
	return _u
}

// SetNillableLlmProvider sets the "llm_provider" field if the given value is not nil.
func (_u *CustomSummaryUpdate) SetNillableLlmProvider(v *string) *CustomSummaryUpdate {
	if v != nil {
		_u.SetLlmProvider(*v)
	}
	return _u
}

// SetLlmModel sets the "llm_model" field.
func (_u *CustomSummaryUpdate) SetLlmModel(v string) *CustomSummaryUpdate {
	_u.mutation.SetLlmModel(v)
	return _u
}

// SetNillableLlmModel sets the "llm_model" field if the given value is not nil.
func (_u *CustomSummaryUpdate) SetNillableLlmModel(v *string) *CustomSummaryUpdate {
	if v != nil {
		_u.SetLlmModel(*v)
	}
	return _u
}

// SetCharacter sets the "character" field.
func (_u *CustomSummaryUpdate) SetCharacter(v customsummary.Character) *CustomSummaryUpdate {
	_u.mutation.SetCharacter(v)
	return _u
}

// SetNillableCharacter sets the "character" field if the given value is not nil.
func (_u *CustomSummaryUpdate) SetNillableCharacter(v *customsummary.Character) *CustomSummaryUpdate {
	if v != nil {
		_u.SetCharacter(*v)
	}
	return _u
}

// SetAffinity sets the "affinity" field.
func (_u *CustomSummaryUpdate) SetAffinity(v int) *CustomSummaryUpdate {
	_u.mutation.ResetAffinity()
	_u.mutation.SetAffinity(v)
	return _u
}

// SetNillableAffinity sets the "affinity" field if the given value is not nil.
func (_u *CustomSummaryUpdate) SetNillableAffinity(v *int) *CustomSummaryUpdate {
	if v != nil {
		_u.SetAffinity(*v)
	}
	return _u
}

// AddAffinity adds value to the "affinity" field.
func (_u *CustomSummaryUpdate) AddAffinity(v int) *CustomSummaryUpdate {
	_u.mutation.AddAffinity(v)
	return _u
}

// SetBody sets the "body" field.
func (_u *CustomSummaryUpdate) SetBody(v string) *CustomSummaryUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *CustomSummaryUpdate) SetNillableBody(v *string) *CustomSummaryUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetOnePoint sets the "one_point" field.
func (_u *CustomSummaryUpdate) SetOnePoint(v string) *CustomSummaryUpdate {
	_u.mutation.SetOnePoint(v)
	return _u
}

// SetNillableOnePoint sets the "one_point" field if the given value is not nil.
func (_u *CustomSummaryUpdate) SetNillableOnePoint(v *string) *CustomSummaryUpdate {
	if v != nil {
		_u.SetOnePoint(*v)
	}
	return _u
}

// ClearOnePoint clears the value of the "one_point" field.
func (_u *CustomSummaryUpdate) ClearOnePoint() *CustomSummaryUpdate {
	_u.mutation.ClearOnePoint()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CustomSummaryUpdate) SetUpdatedAt(v time.Time) *CustomSummaryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CustomSummaryMutation object of the builder.
func (_u *CustomSummaryUpdate) Mutation() *CustomSummaryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CustomSummaryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CustomSummaryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CustomSummaryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CustomSummaryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CustomSummaryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := customsummary.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CustomSummaryUpdate) check() error {
	if v, ok := _u.mutation.Character(); ok {
		if err := customsummary.CharacterValidator(v); err != nil {
			return &ValidationError{Name: "character", err: fmt.Errorf(`ent: validator failed for field "CustomSummary.character": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CustomSummary.user"`)
	}
	if _u.mutation.PaperCleared() && len(_u.mutation.PaperIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CustomSummary.paper"`)
	}
	if _u.mutation.PromptCleared() && len(_u.mutation.PromptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CustomSummary.prompt"`)
	}
	return nil
}

func (_u *CustomSummaryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(customsummary.Table, customsummary.Columns, sqlgraph.NewFieldSpec(customsummary.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LlmProvider(); ok {
		_spec.SetField(customsummary.FieldLlmProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.LlmModel(); ok {
		_spec.SetField(customsummary.FieldLlmModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Character(); ok {
		_spec.SetField(customsummary.FieldCharacter, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Affinity(); ok {
		_spec.SetField(customsummary.FieldAffinity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAffinity(); ok {
		_spec.AddField(customsummary.FieldAffinity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(customsummary.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.OnePoint(); ok {
		_spec.SetField(customsummary.FieldOnePoint, field.TypeString, value)
	}
	if _u.mutation.OnePointCleared() {
		_spec.ClearField(customsummary.FieldOnePoint, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(customsummary.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{customsummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CustomSummaryUpdateOne is the builder for updating a single CustomSummary entity.
type CustomSummaryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CustomSummaryMutation
}

// SetLlmProvider sets the "llm_provider" field.
func (_u *CustomSummaryUpdateOne) SetLlmProvider(v string) *CustomSummaryUpdateOne {
	_u.mutation.SetLlmProvider(v)
	return _u
}

// SetNillableLlmProvider sets the "llm_provider" field if the given value is not nil.
func (_u *CustomSummaryUpdateOne) SetNillableLlmProvider(v *string) *CustomSummaryUpdateOne {
	if v != nil {
		_u.SetLlmProvider(*v)
	}
	return _u
}

// SetLlmModel sets the "llm_model" field.
func (_u *CustomSummaryUpdateOne) SetLlmModel(v string) *CustomSummaryUpdateOne {
	_u.mutation.SetLlmModel(v)
	return _u
}

// SetNillableLlmModel sets the "llm_model" field if the given value is not nil.
func (_u *CustomSummaryUpdateOne) SetNillableLlmModel(v *string) *CustomSummaryUpdateOne {
	if v != nil {
		_u.SetLlmModel(*v)
	}
	return _u
}

// SetCharacter sets the "character" field.
func (_u *CustomSummaryUpdateOne) SetCharacter(v customsummary.Character) *CustomSummaryUpdateOne {
	_u.mutation.SetCharacter(v)
	return _u
}

// SetNillableCharacter sets the "character" field if the given value is not nil.
func (_u *CustomSummaryUpdateOne) SetNillableCharacter(v *customsummary.Character) *CustomSummaryUpdateOne {
	if v != nil {
		_u.SetCharacter(*v)
	}
	return _u
}

// SetAffinity sets the "affinity" field.
func (_u *CustomSummaryUpdateOne) SetAffinity(v int) *CustomSummaryUpdateOne {
	_u.mutation.ResetAffinity()
	_u.mutation.SetAffinity(v)
	return _u
}

// SetNillableAffinity sets the "affinity" field if the given value is not nil.
func (_u *CustomSummaryUpdateOne) SetNillableAffinity(v *int) *CustomSummaryUpdateOne {
	if v != nil {
		_u.SetAffinity(*v)
	}
	return _u
}

// AddAffinity adds value to the "affinity" field.
func (_u *CustomSummaryUpdateOne) AddAffinity(v int) *CustomSummaryUpdateOne {
	_u.mutation.AddAffinity(v)
	return _u
}

// SetBody sets the "body" field.
func (_u *CustomSummaryUpdateOne) SetBody(v string) *CustomSummaryUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *CustomSummaryUpdateOne) SetNillableBody(v *string) *CustomSummaryUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetOnePoint sets the "one_point" field.
func (_u *CustomSummaryUpdateOne) SetOnePoint(v string) *CustomSummaryUpdateOne {
	_u.mutation.SetOnePoint(v)
	return _u
}

// SetNillableOnePoint sets the "one_point" field if the given value is not nil.
func (_u *CustomSummaryUpdateOne) SetNillableOnePoint(v *string) *CustomSummaryUpdateOne {
	if v != nil {
		_u.SetOnePoint(*v)
	}
	return _u
}

// ClearOnePoint clears the value of the "one_point" field.
func (_u *CustomSummaryUpdateOne) ClearOnePoint() *CustomSummaryUpdateOne {
	_u.mutation.ClearOnePoint()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CustomSummaryUpdateOne) SetUpdatedAt(v time.Time) *CustomSummaryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CustomSummaryMutation object of the builder.
func (_u *CustomSummaryUpdateOne) Mutation() *CustomSummaryMutation {
	return _u.mutation
}

// Where appends a list predicates to the CustomSummaryUpdate builder.
func (_u *CustomSummaryUpdateOne) Where(ps ...predicate.CustomSummary) *CustomSummaryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CustomSummaryUpdateOne) Select(field string, fields ...string) *CustomSummaryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CustomSummary entity.
func (_u *CustomSummaryUpdateOne) Save(ctx context.Context) (*CustomSummary, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CustomSummaryUpdateOne) SaveX(ctx context.Context) *CustomSummary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CustomSummaryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CustomSummaryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CustomSummaryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := customsummary.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CustomSummaryUpdateOne) check() error {
	if v, ok := _u.mutation.Character(); ok {
		if err := customsummary.CharacterValidator(v); err != nil {
			return &ValidationError{Name: "character", err: fmt.Errorf(`ent: validator failed for field "CustomSummary.character": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CustomSummary.user"`)
	}
	if _u.mutation.PaperCleared() && len(_u.mutation.PaperIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CustomSummary.paper"`)
	}
	if _u.mutation.PromptCleared() && len(_u.mutation.PromptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CustomSummary.prompt"`)
	}
	return nil
}

func (_u *CustomSummaryUpdateOne) sqlSave(ctx context.Context) (_node *CustomSummary, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(customsummary.Table, customsummary.Columns, sqlgraph.NewFieldSpec(customsummary.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CustomSummary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, customsummary.FieldID)
		for _, f := range fields {
			if !customsummary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != customsummary.FieldID {
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
		_spec.SetField(customsummary.FieldLlmProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.LlmModel(); ok {
		_spec.SetField(customsummary.FieldLlmModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Character(); ok {
		_spec.SetField(customsummary.FieldCharacter, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Affinity(); ok {
		_spec.SetField(customsummary.FieldAffinity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAffinity(); ok {
		_spec.AddField(customsummary.FieldAffinity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(customsummary.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.OnePoint(); ok {
		_spec.SetField(customsummary.FieldOnePoint, field.TypeString, value)
	}
	if _u.mutation.OnePointCleared() {
		_spec.ClearField(customsummary.FieldOnePoint, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(customsummary.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CustomSummary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{customsummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
