// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/retinalab/screening-tracker/gen/ent/encounter"
	"github.com/retinalab/screening-tracker/gen/ent/predicate"
	"github.com/retinalab/screening-tracker/gen/ent/retinopathyfinding"
)

// RetinopathyFindingUpdate is the builder for updating RetinopathyFinding entities.
type RetinopathyFindingUpdate struct {
	config
	hooks    []Hook
	mutation *RetinopathyFindingMutation
}

// Where appends a list predicates to the RetinopathyFindingUpdate builder.
func (_u *RetinopathyFindingUpdate) Where(ps ...predicate.RetinopathyFinding) *RetinopathyFindingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEncounterID sets the "encounter_id" field.
func (_u *RetinopathyFindingUpdate) SetEncounterID(v uuid.UUID) *RetinopathyFindingUpdate {
	_u.mutation.SetEncounterID(v)
	return _u
}

// SetNillableEncounterID sets the "encounter_id" field if the given value is not nil.
func (_u *RetinopathyFindingUpdate) SetNillableEncounterID(v *uuid.UUID) *RetinopathyFindingUpdate {
	if v != nil {
		_u.SetEncounterID(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *RetinopathyFindingUpdate) SetResult(v string) *RetinopathyFindingUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *RetinopathyFindingUpdate) SetNillableResult(v *string) *RetinopathyFindingUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// SetEncounter sets the "encounter" edge to the Encounter entity.
func (_u *RetinopathyFindingUpdate) SetEncounter(v *Encounter) *RetinopathyFindingUpdate {
	return _u.SetEncounterID(v.ID)
}

// Mutation returns the RetinopathyFindingMutation object of the builder.
func (_u *RetinopathyFindingUpdate) Mutation() *RetinopathyFindingMutation {
	return _u.mutation
}

// ClearEncounter clears the "encounter" edge to the Encounter entity.
func (_u *RetinopathyFindingUpdate) ClearEncounter() *RetinopathyFindingUpdate {
	_u.mutation.ClearEncounter()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RetinopathyFindingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RetinopathyFindingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RetinopathyFindingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RetinopathyFindingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RetinopathyFindingUpdate) check() error {
	if _u.mutation.EncounterCleared() && len(_u.mutation.EncounterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RetinopathyFinding.encounter"`)
	}
	return nil
}

func (_u *RetinopathyFindingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(retinopathyfinding.Table, retinopathyfinding.Columns, sqlgraph.NewFieldSpec(retinopathyfinding.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(retinopathyfinding.FieldResult, field.TypeString, value)
	}
	if _u.mutation.EncounterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   retinopathyfinding.EncounterTable,
			Columns: []string{retinopathyfinding.EncounterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(encounter.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EncounterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   retinopathyfinding.EncounterTable,
			Columns: []string{retinopathyfinding.EncounterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(encounter.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{retinopathyfinding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RetinopathyFindingUpdateOne is the builder for updating a single RetinopathyFinding entity.
type RetinopathyFindingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RetinopathyFindingMutation
}

// SetEncounterID sets the "encounter_id" field.
func (_u *RetinopathyFindingUpdateOne) SetEncounterID(v uuid.UUID) *RetinopathyFindingUpdateOne {
	_u.mutation.SetEncounterID(v)
	return _u
}

// SetNillableEncounterID sets the "encounter_id" field if the given value is not nil.
func (_u *RetinopathyFindingUpdateOne) SetNillableEncounterID(v *uuid.UUID) *RetinopathyFindingUpdateOne {
	if v != nil {
		_u.SetEncounterID(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *RetinopathyFindingUpdateOne) SetResult(v string) *RetinopathyFindingUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *RetinopathyFindingUpdateOne) SetNillableResult(v *string) *RetinopathyFindingUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// SetEncounter sets the "encounter" edge to the Encounter entity.
func (_u *RetinopathyFindingUpdateOne) SetEncounter(v *Encounter) *RetinopathyFindingUpdateOne {
	return _u.SetEncounterID(v.ID)
}

// Mutation returns the RetinopathyFindingMutation object of the builder.
func (_u *RetinopathyFindingUpdateOne) Mutation() *RetinopathyFindingMutation {
	return _u.mutation
}

// ClearEncounter clears the "encounter" edge to the Encounter entity.
func (_u *RetinopathyFindingUpdateOne) ClearEncounter() *RetinopathyFindingUpdateOne {
	_u.mutation.ClearEncounter()
	return _u
}

// Where appends a list predicates to the RetinopathyFindingUpdate builder.
func (_u *RetinopathyFindingUpdateOne) Where(ps ...predicate.RetinopathyFinding) *RetinopathyFindingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RetinopathyFindingUpdateOne) Select(field string, fields ...string) *RetinopathyFindingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RetinopathyFinding entity.
func (_u *RetinopathyFindingUpdateOne) Save(ctx context.Context) (*RetinopathyFinding, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RetinopathyFindingUpdateOne) SaveX(ctx context.Context) *RetinopathyFinding {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RetinopathyFindingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RetinopathyFindingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RetinopathyFindingUpdateOne) check() error {
	if _u.mutation.EncounterCleared() && len(_u.mutation.EncounterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RetinopathyFinding.encounter"`)
	}
	return nil
}

func (_u *RetinopathyFindingUpdateOne) sqlSave(ctx context.Context) (_node *RetinopathyFinding, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(retinopathyfinding.Table, retinopathyfinding.Columns, sqlgraph.NewFieldSpec(retinopathyfinding.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RetinopathyFinding.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, retinopathyfinding.FieldID)
		for _, f := range fields {
			if !retinopathyfinding.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != retinopathyfinding.FieldID {
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
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(retinopathyfinding.FieldResult, field.TypeString, value)
	}
	if _u.mutation.EncounterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   retinopathyfinding.EncounterTable,
			Columns: []string{retinopathyfinding.EncounterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(encounter.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EncounterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   retinopathyfinding.EncounterTable,
			Columns: []string{retinopathyfinding.EncounterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(encounter.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RetinopathyFinding{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{retinopathyfinding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
