// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rainzero1960/paperscout/ent/defaultsummary"
	"github.com/rainzero1960/paperscout/ent/predicate"
)

// DefaultSummaryDelete is the builder for deleting a DefaultSummary entity.
type DefaultSummaryDelete struct {
	config
	hooks    []Hook
	mutation *DefaultSummaryMutation
}

// Where appends a list predicates to the DefaultSummaryDelete builder.
func (_d *DefaultSummaryDelete) Where(ps ...predicate.DefaultSummary) *DefaultSummaryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DefaultSummaryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DefaultSummaryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DefaultSummaryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(defaultsummary.Table, sqlgraph.NewFieldSpec(defaultsummary.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DefaultSummaryDeleteOne is the builder for deleting a single DefaultSummary entity.
type DefaultSummaryDeleteOne struct {
	_d *DefaultSummaryDelete
}

// Where appends a list predicates to the DefaultSummaryDelete builder.
func (_d *DefaultSummaryDeleteOne) Where(ps ...predicate.DefaultSummary) *DefaultSummaryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DefaultSummaryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{defaultsummary.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DefaultSummaryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
