// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/retinalab/screening-tracker/gen/ent/encounterfile"
	"github.com/retinalab/screening-tracker/gen/ent/predicate"
)

// EncounterFileDelete is the builder for deleting a EncounterFile entity.
type EncounterFileDelete struct {
	config
	hooks    []Hook
	mutation *EncounterFileMutation
}

// Where appends a list predicates to the EncounterFileDelete builder.
func (_d *EncounterFileDelete) Where(ps ...predicate.EncounterFile) *EncounterFileDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EncounterFileDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EncounterFileDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EncounterFileDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(encounterfile.Table, sqlgraph.NewFieldSpec(encounterfile.FieldID, field.TypeUUID))
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

// EncounterFileDeleteOne is the builder for deleting a single EncounterFile entity.
type EncounterFileDeleteOne struct {
	_d *EncounterFileDelete
}

// Where appends a list predicates to the EncounterFileDelete builder.
func (_d *EncounterFileDeleteOne) Where(ps ...predicate.EncounterFile) *EncounterFileDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EncounterFileDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{encounterfile.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EncounterFileDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
