// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/retinalab/screening-tracker/gen/ent/glaucomafinding"
	"github.com/retinalab/screening-tracker/gen/ent/predicate"
)

// GlaucomaFindingDelete is the builder for deleting a GlaucomaFinding entity.
type GlaucomaFindingDelete struct {
	config
	hooks    []Hook
	mutation *GlaucomaFindingMutation
}

// Where appends a list predicates to the GlaucomaFindingDelete builder.
func (_d *GlaucomaFindingDelete) Where(ps ...predicate.GlaucomaFinding) *GlaucomaFindingDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GlaucomaFindingDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GlaucomaFindingDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GlaucomaFindingDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(glaucomafinding.Table, sqlgraph.NewFieldSpec(glaucomafinding.FieldID, field.TypeUUID))
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

// GlaucomaFindingDeleteOne is the builder for deleting a single GlaucomaFinding entity.
type GlaucomaFindingDeleteOne struct {
	_d *GlaucomaFindingDelete
}

// Where appends a list predicates to the GlaucomaFindingDelete builder.
func (_d *GlaucomaFindingDeleteOne) Where(ps ...predicate.GlaucomaFinding) *GlaucomaFindingDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GlaucomaFindingDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{glaucomafinding.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GlaucomaFindingDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
