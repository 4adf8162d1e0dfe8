// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/retinalab/screening-tracker/gen/ent/predicate"
	"github.com/retinalab/screening-tracker/gen/ent/retinopathyfinding"
)

// RetinopathyFindingDelete is the builder for deleting a RetinopathyFinding entity.
type RetinopathyFindingDelete struct {
	config
	hooks    []Hook
	mutation *RetinopathyFindingMutation
}

// Where appends a list predicates to the RetinopathyFindingDelete builder.
func (_d *RetinopathyFindingDelete) Where(ps ...predicate.RetinopathyFinding) *RetinopathyFindingDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RetinopathyFindingDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RetinopathyFindingDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RetinopathyFindingDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(retinopathyfinding.Table, sqlgraph.NewFieldSpec(retinopathyfinding.FieldID, field.TypeUUID))
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

// RetinopathyFindingDeleteOne is the builder for deleting a single RetinopathyFinding entity.
type RetinopathyFindingDeleteOne struct {
	_d *RetinopathyFindingDelete
}

// Where appends a list predicates to the RetinopathyFindingDelete builder.
func (_d *RetinopathyFindingDeleteOne) Where(ps ...predicate.RetinopathyFinding) *RetinopathyFindingDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RetinopathyFindingDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{retinopathyfinding.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RetinopathyFindingDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
