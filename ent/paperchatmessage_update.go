// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rainzero1960/paperscout/ent/paperchatmessage"
	"github.com/rainzero1960/paperscout/ent/predicate"
)

// PaperChatMessageUpdate is the builder for updating PaperChatMessage entities.
type PaperChatMessageUpdate struct {
	config
	hooks    []Hook
	mutation *PaperChatMessageMutation
}

// Where appends a list predicates to the PaperChatMessageUpdate builder.
func (_u *PaperChatMessageUpdate) Where(ps ...predicate.PaperChatMessage) *PaperChatMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *PaperChatMessageUpdate) SetRole(v paperchatmessage.Role) *PaperChatMessageUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *PaperChatMessageUpdate) SetNillableRole(v *paperchatmessage.Role) *PaperChatMessageUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *PaperChatMessageUpdate) SetContent(v string) *PaperChatMessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PaperChatMessageUpdate) SetNillableContent(v *string) *PaperChatMessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *PaperChatMessageUpdate) SetSequence(v int) *PaperChatMessageUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *PaperChatMessageUpdate) SetNillableSequence(v *int) *PaperChatMessageUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *PaperChatMessageUpdate) AddSequence(v int) *PaperChatMessageUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// Mutation returns the PaperChatMessageMutation object of the builder.
func (_u *PaperChatMessageUpdate) Mutation() *PaperChatMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PaperChatMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaperChatMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PaperChatMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaperChatMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaperChatMessageUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := paperchatmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "PaperChatMessage.role": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PaperChatMessage.session"`)
	}
	return nil
}

func (_u *PaperChatMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paperchatmessage.Table, paperchatmessage.Columns, sqlgraph.NewFieldSpec(paperchatmessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(paperchatmessage.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(paperchatmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(paperchatmessage.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(paperchatmessage.FieldSequence, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paperchatmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PaperChatMessageUpdateOne is the builder for updating a single PaperChatMessage entity.
type PaperChatMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PaperChatMessageMutation
}

// SetRole sets the "role" field.
func (_u *PaperChatMessageUpdateOne) SetRole(v paperchatmessage.Role) *PaperChatMessageUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *PaperChatMessageUpdateOne) SetNillableRole(v *paperchatmessage.Role) *PaperChatMessageUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *PaperChatMessageUpdateOne) SetContent(v string) *PaperChatMessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PaperChatMessageUpdateOne) SetNillableContent(v *string) *PaperChatMessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *PaperChatMessageUpdateOne) SetSequence(v int) *PaperChatMessageUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *PaperChatMessageUpdateOne) SetNillableSequence(v *int) *PaperChatMessageUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *PaperChatMessageUpdateOne) AddSequence(v int) *PaperChatMessageUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// Mutation returns the PaperChatMessageMutation object of the builder.
func (_u *PaperChatMessageUpdateOne) Mutation() *PaperChatMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the PaperChatMessageUpdate builder.
func (_u *PaperChatMessageUpdateOne) Where(ps ...predicate.PaperChatMessage) *PaperChatMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PaperChatMessageUpdateOne) Select(field string, fields ...string) *PaperChatMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PaperChatMessage entity.
func (_u *PaperChatMessageUpdateOne) Save(ctx context.Context) (*PaperChatMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaperChatMessageUpdateOne) SaveX(ctx context.Context) *PaperChatMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PaperChatMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaperChatMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaperChatMessageUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := paperchatmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "PaperChatMessage.role": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PaperChatMessage.session"`)
	}
	return nil
}

func (_u *PaperChatMessageUpdateOne) sqlSave(ctx context.Context) (_node *PaperChatMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paperchatmessage.Table, paperchatmessage.Columns, sqlgraph.NewFieldSpec(paperchatmessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PaperChatMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paperchatmessage.FieldID)
		for _, f := range fields {
			if !paperchatmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != paperchatmessage.FieldID {
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
		_spec.SetField(paperchatmessage.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(paperchatmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(paperchatmessage.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(paperchatmessage.FieldSequence, field.TypeInt, value)
	}
	_node = &PaperChatMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paperchatmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
