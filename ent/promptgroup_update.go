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
	"github.com/rainzero1960/paperscout/ent/promptgroup"
)

// PromptGroupUpdate is the builder for updating PromptGroup entities.
type PromptGroupUpdate struct {
	config
	hooks    []Hook
	mutation *PromptGroupMutation
}

// Where appends a list predicates to the PromptGroupUpdate builder.
func (_u *PromptGroupUpdate) Where(ps ...predicate.PromptGroup) *PromptGroupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *PromptGroupUpdate) SetName(v string) *PromptGroupUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PromptGroupUpdate) SetNillableName(v *string) *PromptGroupUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *PromptGroupUpdate) SetCategory(v promptgroup.Category) *PromptGroupUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *PromptGroupUpdate) SetNillableCategory(v *promptgroup.Category) *PromptGroupUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetCoordinatorPromptID sets the "coordinator_prompt_id" field.
func (_u *PromptGroupUpdate) SetCoordinatorPromptID(v string) *PromptGroupUpdate {
	_u.mutation.SetCoordinatorPromptID(v)
	return _u
}

// SetNillableCoordinatorPromptID sets the "coordinator_prompt_id" field if the given value is not nil.
func (_u *PromptGroupUpdate) SetNillableCoordinatorPromptID(v *string) *PromptGroupUpdate {
	if v != nil {
		_u.SetCoordinatorPromptID(*v)
	}
	return _u
}

// ClearCoordinatorPromptID clears the value of the "coordinator_prompt_id" field.
func (_u *PromptGroupUpdate) ClearCoordinatorPromptID() *PromptGroupUpdate {
	_u.mutation.ClearCoordinatorPromptID()
	return _u
}

// SetPlannerPromptID sets the "planner_prompt_id" field.
func (_u *PromptGroupUpdate) SetPlannerPromptID(v string) *PromptGroupUpdate {
	_u.mutation.SetPlannerPromptID(v)
	return _u
}

// SetNillablePlannerPromptID sets the "planner_prompt_id" field if the given value is not nil.
func (_u *PromptGroupUpdate) SetNillablePlannerPromptID(v *string) *PromptGroupUpdate {
	if v != nil {
		_u.SetPlannerPromptID(*v)
	}
	return _u
}

// ClearPlannerPromptID clears the value of the "planner_prompt_id" field.
func (_u *PromptGroupUpdate) ClearPlannerPromptID() *PromptGroupUpdate {
	_u.mutation.ClearPlannerPromptID()
	return _u
}

// SetSupervisorPromptID sets the "supervisor_prompt_id" field.
func (_u *PromptGroupUpdate) SetSupervisorPromptID(v string) *PromptGroupUpdate {
	_u.mutation.SetSupervisorPromptID(v)
	return _u
}

// SetNillableSupervisorPromptID sets the "supervisor_prompt_id" field if the given value is not nil.
func (_u *PromptGroupUpdate) SetNillableSupervisorPromptID(v *string) *PromptGroupUpdate {
	if v != nil {
		_u.SetSupervisorPromptID(*v)
	}
	return _u
}

// ClearSupervisorPromptID clears the value of the "supervisor_prompt_id" field.
func (_u *PromptGroupUpdate) ClearSupervisorPromptID() *PromptGroupUpdate {
	_u.mutation.ClearSupervisorPromptID()
	return _u
}

// SetAgentPromptID sets the "agent_prompt_id" field.
func (_u *PromptGroupUpdate) SetAgentPromptID(v string) *PromptGroupUpdate {
	_u.mutation.SetAgentPromptID(v)
	return _u
}

// SetNillableAgentPromptID sets the "agent_prompt_id" field if the given value is not nil.
func (_u *PromptGroupUpdate) SetNillableAgentPromptID(v *string) *PromptGroupUpdate {
	if v != nil {
		_u.SetAgentPromptID(*v)
	}
	return _u
}

// ClearAgentPromptID clears the value of the "agent_prompt_id" field.
func (_u *PromptGroupUpdate) ClearAgentPromptID() *PromptGroupUpdate {
	_u.mutation.ClearAgentPromptID()
	return _u
}

// SetSummaryPromptID sets the "summary_prompt_id" field.
func (_u *PromptGroupUpdate) SetSummaryPromptID(v string) *PromptGroupUpdate {
	_u.mutation.SetSummaryPromptID(v)
	return _u
}

// SetNillableSummaryPromptID sets the "summary_prompt_id" field if the given value is not nil.
func (_u *PromptGroupUpdate) SetNillableSummaryPromptID(v *string) *PromptGroupUpdate {
	if v != nil {
		_u.SetSummaryPromptID(*v)
	}
	return _u
}

// ClearSummaryPromptID clears the value of the "summary_prompt_id" field.
func (_u *PromptGroupUpdate) ClearSummaryPromptID() *PromptGroupUpdate {
	_u.mutation.ClearSummaryPromptID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PromptGroupUpdate) SetUpdatedAt(v time.Time) *PromptGroupUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PromptGroupMutation object of the builder.
func (_u *PromptGroupUpdate) Mutation() *PromptGroupMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PromptGroupUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptGroupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PromptGroupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptGroupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PromptGroupUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := promptgroup.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptGroupUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := promptgroup.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "PromptGroup.category": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PromptGroup.user"`)
	}
	return nil
}

func (_u *PromptGroupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promptgroup.Table, promptgroup.Columns, sqlgraph.NewFieldSpec(promptgroup.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(promptgroup.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(promptgroup.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CoordinatorPromptID(); ok {
		_spec.SetField(promptgroup.FieldCoordinatorPromptID, field.TypeString, value)
	}
	if _u.mutation.CoordinatorPromptIDCleared() {
		_spec.ClearField(promptgroup.FieldCoordinatorPromptID, field.TypeString)
	}
	if value, ok := _u.mutation.PlannerPromptID(); ok {
		_spec.SetField(promptgroup.FieldPlannerPromptID, field.TypeString, value)
	}
	if _u.mutation.PlannerPromptIDCleared() {
		_spec.ClearField(promptgroup.FieldPlannerPromptID, field.TypeString)
	}
	if value, ok := _u.mutation.SupervisorPromptID(); ok {
		_spec.SetField(promptgroup.FieldSupervisorPromptID, field.TypeString, value)
	}
	if _u.mutation.SupervisorPromptIDCleared() {
		_spec.ClearField(promptgroup.FieldSupervisorPromptID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentPromptID(); ok {
		_spec.SetField(promptgroup.FieldAgentPromptID, field.TypeString, value)
	}
	if _u.mutation.AgentPromptIDCleared() {
		_spec.ClearField(promptgroup.FieldAgentPromptID, field.TypeString)
	}
	if value, ok := _u.mutation.SummaryPromptID(); ok {
		_spec.SetField(promptgroup.FieldSummaryPromptID, field.TypeString, value)
	}
	if _u.mutation.SummaryPromptIDCleared() {
		_spec.ClearField(promptgroup.FieldSummaryPromptID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(promptgroup.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PromptGroupUpdateOne is the builder for updating a single PromptGroup entity.
type PromptGroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PromptGroupMutation
}

// SetName sets the "name" field.
func (_u *PromptGroupUpdateOne) SetName(v string) *PromptGroupUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PromptGroupUpdateOne) SetNillableName(v *string) *PromptGroupUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *PromptGroupUpdateOne) SetCategory(v promptgroup.Category) *PromptGroupUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *PromptGroupUpdateOne) SetNillableCategory(v *promptgroup.Category) *PromptGroupUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetCoordinatorPromptID sets the "coordinator_prompt_id" field.
func (_u *PromptGroupUpdateOne) SetCoordinatorPromptID(v string) *PromptGroupUpdateOne {
	_u.mutation.SetCoordinatorPromptID(v)
	return _u
}

// SetNillableCoordinatorPromptID sets the "coordinator_prompt_id" field if the given value is not nil.
func (_u *PromptGroupUpdateOne) SetNillableCoordinatorPromptID(v *string) *PromptGroupUpdateOne {
	if v != nil {
		_u.SetCoordinatorPromptID(*v)
	}
	return _u
}

// ClearCoordinatorPromptID clears the value of the "coordinator_prompt_id" field.
func (_u *PromptGroupUpdateOne) ClearCoordinatorPromptID() *PromptGroupUpdateOne {
	_u.mutation.ClearCoordinatorPromptID()
	return _u
}

// SetPlannerPromptID sets the "planner_prompt_id" field.
func (_u *PromptGroupUpdateOne) SetPlannerPromptID(v string) *PromptGroupUpdateOne {
	_u.mutation.SetPlannerPromptID(v)
	return _u
}

// SetNillablePlannerPromptID sets the "planner_prompt_id" field if the given value is not nil.
func (_u *PromptGroupUpdateOne) SetNillablePlannerPromptID(v *string) *PromptGroupUpdateOne {
	if v != nil {
		_u.SetPlannerPromptID(*v)
	}
	return _u
}

// ClearPlannerPromptID clears the value of the "planner_prompt_id" field.
func (_u *PromptGroupUpdateOne) ClearPlannerPromptID() *PromptGroupUpdateOne {
	_u.mutation.ClearPlannerPromptID()
	return _u
}

// SetSupervisorPromptID sets the "supervisor_prompt_id" field.
func (_u *PromptGroupUpdateOne) SetSupervisorPromptID(v string) *PromptGroupUpdateOne {
	_u.mutation.SetSupervisorPromptID(v)
	return _u
}

// SetNillableSupervisorPromptID sets the "supervisor_prompt_id" field if the given value is not nil.
func (_u *PromptGroupUpdateOne) SetNillableSupervisorPromptID(v *string) *PromptGroupUpdateOne {
	if v != nil {
		_u.SetSupervisorPromptID(*v)
	}
	return _u
}

// ClearSupervisorPromptID clears the value of the "supervisor_prompt_id" field.
func (_u *PromptGroupUpdateOne) ClearSupervisorPromptID() *PromptGroupUpdateOne {
	_u.mutation.ClearSupervisorPromptID()
	return _u
}

// SetAgentPromptID sets the "agent_prompt_id" field.
func (_u *PromptGroupUpdateOne) SetAgentPromptID(v string) *PromptGroupUpdateOne {
	_u.mutation.SetAgentPromptID(v)
	return _u
}

// SetNillableAgentPromptID sets the "agent_prompt_id" field if the given value is not nil.
func (_u *PromptGroupUpdateOne) SetNillableAgentPromptID(v *string) *PromptGroupUpdateOne {
	if v != nil {
		_u.SetAgentPromptID(*v)
	}
	return _u
}

// ClearAgentPromptID clears the value of the "agent_prompt_id" field.
func (_u *PromptGroupUpdateOne) ClearAgentPromptID() *PromptGroupUpdateOne {
	_u.mutation.ClearAgentPromptID()
	return _u
}

// SetSummaryPromptID sets the "summary_prompt_id" field.
func (_u *PromptGroupUpdateOne) SetSummaryPromptID(v string) *PromptGroupUpdateOne {
	_u.mutation.SetSummaryPromptID(v)
	return _u
}

// SetNillableSummaryPromptID sets the "summary_prompt_id" field if the given value is not nil.
func (_u *PromptGroupUpdateOne) SetNillableSummaryPromptID(v *string) *PromptGroupUpdateOne {
	if v != nil {
		_u.SetSummaryPromptID(*v)
	}
	return _u
}

// ClearSummaryPromptID clears the value of the "summary_prompt_id" field.
func (_u *PromptGroupUpdateOne) ClearSummaryPromptID() *PromptGroupUpdateOne {
	_u.mutation.ClearSummaryPromptID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PromptGroupUpdateOne) SetUpdatedAt(v time.Time) *PromptGroupUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PromptGroupMutation object of the builder.
func (_u *PromptGroupUpdateOne) Mutation() *PromptGroupMutation {
	return _u.mutation
}

// Where appends a list predicates to the PromptGroupUpdate builder.
func (_u *PromptGroupUpdateOne) Where(ps ...predicate.PromptGroup) *PromptGroupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PromptGroupUpdateOne) Select(field string, fields ...string) *PromptGroupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PromptGroup entity.
func (_u *PromptGroupUpdateOne) Save(ctx context.Context) (*PromptGroup, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptGroupUpdateOne) SaveX(ctx context.Context) *PromptGroup {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PromptGroupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptGroupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PromptGroupUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := promptgroup.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptGroupUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := promptgroup.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "PromptGroup.category": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PromptGroup.user"`)
	}
	return nil
}

func (_u *PromptGroupUpdateOne) sqlSave(ctx context.Context) (_node *PromptGroup, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promptgroup.Table, promptgroup.Columns, sqlgraph.NewFieldSpec(promptgroup.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PromptGroup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, promptgroup.FieldID)
		for _, f := range fields {
			if !promptgroup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != promptgroup.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(promptgroup.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(promptgroup.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CoordinatorPromptID(); ok {
		_spec.SetField(promptgroup.FieldCoordinatorPromptID, field.TypeString, value)
	}
	if _u.mutation.CoordinatorPromptIDCleared() {
		_spec.ClearField(promptgroup.FieldCoordinatorPromptID, field.TypeString)
	}
	if value, ok := _u.mutation.PlannerPromptID(); ok {
		_spec.SetField(promptgroup.FieldPlannerPromptID, field.TypeString, value)
	}
	if _u.mutation.PlannerPromptIDCleared() {
		_spec.ClearField(promptgroup.FieldPlannerPromptID, field.TypeString)
	}
	if value, ok := _u.mutation.SupervisorPromptID(); ok {
		_spec.SetField(promptgroup.FieldSupervisorPromptID, field.TypeString, value)
	}
	if _u.mutation.SupervisorPromptIDCleared() {
		_spec.ClearField(promptgroup.FieldSupervisorPromptID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentPromptID(); ok {
		_spec.SetField(promptgroup.FieldAgentPromptID, field.TypeString, value)
	}
	if _u.mutation.AgentPromptIDCleared() {
		_spec.ClearField(promptgroup.FieldAgentPromptID, field.TypeString)
	}
	if value, ok := _u.mutation.SummaryPromptID(); ok {
		_spec.SetField(promptgroup.FieldSummaryPromptID, field.TypeString, value)
	}
	if _u.mutation.SummaryPromptIDCleared() {
		_spec.ClearField(promptgroup.FieldSummaryPromptID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(promptgroup.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PromptGroup{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
