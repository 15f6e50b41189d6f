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
	"github.com/rainzero1960/paperscout/ent/researchmessage"
	"github.com/rainzero1960/paperscout/ent/researchsession"
)

// ResearchSessionUpdate is the builder for updating ResearchSession entities.
type ResearchSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ResearchSessionMutation
}

// Where appends a list predicates to the ResearchSessionUpdate builder.
func (_u *ResearchSessionUpdate) Where(ps ...predicate.ResearchSession) *ResearchSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ResearchSessionUpdate) SetTitle(v string) *ResearchSessionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableTitle(v *string) *ResearchSessionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ResearchSessionUpdate) ClearTitle() *ResearchSessionUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetCategory sets the "category" field.
func (_u *ResearchSessionUpdate) SetCategory(v researchsession.Category) *ResearchSessionUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableCategory(v *researchsession.Category) *ResearchSessionUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *ResearchSessionUpdate) SetProcessingStatus(v researchsession.ProcessingStatus) *ResearchSessionUpdate {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *ResearchSessionUpdate) SetNillableProcessingStatus(v *researchsession.ProcessingStatus) *ResearchSessionUpdate {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ResearchSessionUpdate) SetUpdatedAt(v time.Time) *ResearchSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMessageIDs adds the "messages" edge to the ResearchMessage entity by IDs.
func (_u *ResearchSessionUpdate) AddMessageIDs(ids ...string) *ResearchSessionUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the ResearchMessage entity.
func (_u *ResearchSessionUpdate) AddMessages(v ...*ResearchMessage) *ResearchSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the ResearchSessionMutation object of the builder.
func (_u *ResearchSessionUpdate) Mutation() *ResearchSessionMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the ResearchMessage entity.
func (_u *ResearchSessionUpdate) ClearMessages() *ResearchSessionUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to ResearchMessage entities by IDs.
func (_u *ResearchSessionUpdate) RemoveMessageIDs(ids ...string) *ResearchSessionUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to ResearchMessage entities.
func (_u *ResearchSessionUpdate) RemoveMessages(v ...*ResearchMessage) *ResearchSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResearchSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResearchSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ResearchSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := researchsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchSessionUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := researchsession.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ResearchSession.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessingStatus(); ok {
		if err := researchsession.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "ResearchSession.processing_status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ResearchSession.user"`)
	}
	return nil
}

func (_u *ResearchSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchsession.Table, researchsession.Columns, sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(researchsession.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(researchsession.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(researchsession.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(researchsession.FieldProcessingStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(researchsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.MessagesTable,
			Columns: []string{researchsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.MessagesTable,
			Columns: []string{researchsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.MessagesTable,
			Columns: []string{researchsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResearchSessionUpdateOne is the builder for updating a single ResearchSession entity.
type ResearchSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResearchSessionMutation
}

// SetTitle sets the "title" field.
func (_u *ResearchSessionUpdateOne) SetTitle(v string) *ResearchSessionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableTitle(v *string) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ResearchSessionUpdateOne) ClearTitle() *ResearchSessionUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetCategory sets the "category" field.
func (_u *ResearchSessionUpdateOne) SetCategory(v researchsession.Category) *ResearchSessionUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableCategory(v *researchsession.Category) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *ResearchSessionUpdateOne) SetProcessingStatus(v researchsession.ProcessingStatus) *ResearchSessionUpdateOne {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *ResearchSessionUpdateOne) SetNillableProcessingStatus(v *researchsession.ProcessingStatus) *ResearchSessionUpdateOne {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ResearchSessionUpdateOne) SetUpdatedAt(v time.Time) *ResearchSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMessageIDs adds the "messages" edge to the ResearchMessage entity by IDs.
func (_u *ResearchSessionUpdateOne) AddMessageIDs(ids ...string) *ResearchSessionUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the ResearchMessage entity.
func (_u *ResearchSessionUpdateOne) AddMessages(v ...*ResearchMessage) *ResearchSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the ResearchSessionMutation object of the builder.
func (_u *ResearchSessionUpdateOne) Mutation() *ResearchSessionMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the ResearchMessage entity.
func (_u *ResearchSessionUpdateOne) ClearMessages() *ResearchSessionUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to ResearchMessage entities by IDs.
func (_u *ResearchSessionUpdateOne) RemoveMessageIDs(ids ...string) *ResearchSessionUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to ResearchMessage entities.
func (_u *ResearchSessionUpdateOne) RemoveMessages(v ...*ResearchMessage) *ResearchSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Where appends a list predicates to the ResearchSessionUpdate builder.
func (_u *ResearchSessionUpdateOne) Where(ps ...predicate.ResearchSession) *ResearchSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResearchSessionUpdateOne) Select(field string, fields ...string) *ResearchSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResearchSession entity.
func (_u *ResearchSessionUpdateOne) Save(ctx context.Context) (*ResearchSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchSessionUpdateOne) SaveX(ctx context.Context) *ResearchSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResearchSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ResearchSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := researchsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := researchsession.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ResearchSession.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessingStatus(); ok {
		if err := researchsession.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "ResearchSession.processing_status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ResearchSession.user"`)
	}
	return nil
}

func (_u *ResearchSessionUpdateOne) sqlSave(ctx context.Context) (_node *ResearchSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchsession.Table, researchsession.Columns, sqlgraph.NewFieldSpec(researchsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResearchSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, researchsession.FieldID)
		for _, f := range fields {
			if !researchsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != researchsession.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(researchsession.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(researchsession.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(researchsession.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(researchsession.FieldProcessingStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(researchsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.MessagesTable,
			Columns: []string{researchsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.MessagesTable,
			Columns: []string{researchsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchsession.MessagesTable,
			Columns: []string{researchsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ResearchSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
