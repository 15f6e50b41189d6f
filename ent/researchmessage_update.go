// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rainzero1960/paperscout/ent/predicate"
	"github.com/rainzero1960/paperscout/ent/researchmessage"
)

// ResearchMessageUpdate is the builder for updating ResearchMessage entities.
type ResearchMessageUpdate struct {
	config
	hooks    []Hook
	mutation *ResearchMessageMutation
}

// Where appends a list predicates to the ResearchMessageUpdate builder.
func (_u *ResearchMessageUpdate) Where(ps ...predicate.ResearchMessage) *ResearchMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *ResearchMessageUpdate) SetRole(v researchmessage.Role) *ResearchMessageUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ResearchMessageUpdate) SetNillableRole(v *researchmessage.Role) *ResearchMessageUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ResearchMessageUpdate) SetContent(v string) *ResearchMessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ResearchMessageUpdate) SetNillableContent(v *string) *ResearchMessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetIsIntermediate sets the "is_intermediate" field.
func (_u *ResearchMessageUpdate) SetIsIntermediate(v bool) *ResearchMessageUpdate {
	_u.mutation.SetIsIntermediate(v)
	return _u
}

// SetNillableIsIntermediate sets the "is_intermediate" field if the given value is not nil.
func (_u *ResearchMessageUpdate) SetNillableIsIntermediate(v *bool) *ResearchMessageUpdate {
	if v != nil {
		_u.SetIsIntermediate(*v)
	}
	return _u
}

// SetMetadataJSON sets the "metadata_json" field.
func (_u *ResearchMessageUpdate) SetMetadataJSON(v map[string]interface{}) *ResearchMessageUpdate {
	_u.mutation.SetMetadataJSON(v)
	return _u
}

// ClearMetadataJSON clears the value of the "metadata_json" field.
func (_u *ResearchMessageUpdate) ClearMetadataJSON() *ResearchMessageUpdate {
	_u.mutation.ClearMetadataJSON()
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *ResearchMessageUpdate) SetSequence(v int) *ResearchMessageUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *ResearchMessageUpdate) SetNillableSequence(v *int) *ResearchMessageUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *ResearchMessageUpdate) AddSequence(v int) *ResearchMessageUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// Mutation returns the ResearchMessageMutation object of the builder.
func (_u *ResearchMessageUpdate) Mutation() *ResearchMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResearchMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResearchMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchMessageUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := researchmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ResearchMessage.role": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ResearchMessage.session"`)
	}
	return nil
}

func (_u *ResearchMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchmessage.Table, researchmessage.Columns, sqlgraph.NewFieldSpec(researchmessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(researchmessage.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(researchmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsIntermediate(); ok {
		_spec.SetField(researchmessage.FieldIsIntermediate, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MetadataJSON(); ok {
		_spec.SetField(researchmessage.FieldMetadataJSON, field.TypeJSON, value)
	}
	if _u.mutation.MetadataJSONCleared() {
		_spec.ClearField(researchmessage.FieldMetadataJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(researchmessage.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(researchmessage.FieldSequence, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResearchMessageUpdateOne is the builder for updating a single ResearchMessage entity.
type ResearchMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResearchMessageMutation
}

// SetRole sets the "role" field.
func (_u *ResearchMessageUpdateOne) SetRole(v researchmessage.Role) *ResearchMessageUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ResearchMessageUpdateOne) SetNillableRole(v *researchmessage.Role) *ResearchMessageUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ResearchMessageUpdateOne) SetContent(v string) *ResearchMessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ResearchMessageUpdateOne) SetNillableContent(v *string) *ResearchMessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetIsIntermediate sets the "is_intermediate" field.
func (_u *ResearchMessageUpdateOne) SetIsIntermediate(v bool) *ResearchMessageUpdateOne {
	_u.mutation.SetIsIntermediate(v)
	return _u
}

// SetNillableIsIntermediate sets the "is_intermediate" field if the given value is not nil.
func (_u *ResearchMessageUpdateOne) SetNillableIsIntermediate(v *bool) *ResearchMessageUpdateOne {
	if v != nil {
		_u.SetIsIntermediate(*v)
	}
	return _u
}

// SetMetadataJSON sets the "metadata_json" field.
func (_u *ResearchMessageUpdateOne) SetMetadataJSON(v map[string]interface{}) *ResearchMessageUpdateOne {
	_u.mutation.SetMetadataJSON(v)
	return _u
}

// ClearMetadataJSON clears the value of the "metadata_json" field.
func (_u *ResearchMessageUpdateOne) ClearMetadataJSON() *ResearchMessageUpdateOne {
	_u.mutation.ClearMetadataJSON()
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *ResearchMessageUpdateOne) SetSequence(v int) *ResearchMessageUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *ResearchMessageUpdateOne) SetNillableSequence(v *int) *ResearchMessageUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *ResearchMessageUpdateOne) AddSequence(v int) *ResearchMessageUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// Mutation returns the ResearchMessageMutation object of the builder.
func (_u *ResearchMessageUpdateOne) Mutation() *ResearchMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResearchMessageUpdate builder.
func (_u *ResearchMessageUpdateOne) Where(ps ...predicate.ResearchMessage) *ResearchMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResearchMessageUpdateOne) Select(field string, fields ...string) *ResearchMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResearchMessage entity.
func (_u *ResearchMessageUpdateOne) Save(ctx context.Context) (*ResearchMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchMessageUpdateOne) SaveX(ctx context.Context) *ResearchMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResearchMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchMessageUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := researchmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ResearchMessage.role": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ResearchMessage.session"`)
	}
	return nil
}

func (_u *ResearchMessageUpdateOne) sqlSave(ctx context.Context) (_node *ResearchMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchmessage.Table, researchmessage.Columns, sqlgraph.NewFieldSpec(researchmessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResearchMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, researchmessage.FieldID)
		for _, f := range fields {
			if !researchmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != researchmessage.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(researchmessage.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(researchmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsIntermediate(); ok {
		_spec.SetField(researchmessage.FieldIsIntermediate, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MetadataJSON(); ok {
		_spec.SetField(researchmessage.FieldMetadataJSON, field.TypeJSON, value)
	}
	if _u.mutation.MetadataJSONCleared() {
		_spec.ClearField(researchmessage.FieldMetadataJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(researchmessage.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(researchmessage.FieldSequence, field.TypeInt, value)
	}
	_node = &ResearchMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
