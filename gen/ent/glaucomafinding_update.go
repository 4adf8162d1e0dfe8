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
	"github.com/retinalab/screening-tracker/gen/ent/glaucomafinding"
	"github.com/retinalab/screening-tracker/gen/ent/predicate"
)

// GlaucomaFindingUpdate is the builder for updating GlaucomaFinding entities.
type GlaucomaFindingUpdate struct {
	config
	hooks    []Hook
	mutation *GlaucomaFindingMutation
}

// Where appends a list predicates to the GlaucomaFindingUpdate builder.
func (_u *GlaucomaFindingUpdate) Where(ps ...predicate.GlaucomaFinding) *GlaucomaFindingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEncounterID sets the "encounter_id" field.
func (_u *GlaucomaFindingUpdate) SetEncounterID(v uuid.UUID) *GlaucomaFindingUpdate {
	_u.mutation.SetEncounterID(v)
	return _u
}

// SetNillableEncounterID sets the "encounter_id" field if the given value is not nil.
func (_u *GlaucomaFindingUpdate) SetNillableEncounterID(v *uuid.UUID) *GlaucomaFindingUpdate {
	if v != nil {
		_u.SetEncounterID(*v)
	}
	return _u
}

// SetVcdrRight sets the "vcdr_right" field.
func (_u *GlaucomaFindingUpdate) SetVcdrRight(v float64) *GlaucomaFindingUpdate {
	_u.mutation.ResetVcdrRight()
	_u.mutation.SetVcdrRight(v)
	return _u
}

// SetNillableVcdrRight sets the "vcdr_right" field if the given value is not nil.
func (_u *GlaucomaFindingUpdate) SetNillableVcdrRight(v *float64) *GlaucomaFindingUpdate {
	if v != nil {
		_u.SetVcdrRight(*v)
	}
	return _u
}

// AddVcdrRight adds value to the "vcdr_right" field.
func (_u *GlaucomaFindingUpdate) AddVcdrRight(v float64) *GlaucomaFindingUpdate {
	_u.mutation.AddVcdrRight(v)
	return _u
}

// ClearVcdrRight clears the value of the "vcdr_right" field.
func (_u *GlaucomaFindingUpdate) ClearVcdrRight() *GlaucomaFindingUpdate {
	_u.mutation.ClearVcdrRight()
	return _u
}

// SetVcdrLeft sets the "vcdr_left" field.
func (_u *GlaucomaFindingUpdate) SetVcdrLeft(v float64) *GlaucomaFindingUpdate {
	_u.mutation.ResetVcdrLeft()
	_u.mutation.SetVcdrLeft(v)
	return _u
}

// SetNillableVcdrLeft sets the "vcdr_left" field if the given value is not nil.
func (_u *GlaucomaFindingUpdate) SetNillableVcdrLeft(v *float64) *GlaucomaFindingUpdate {
	if v != nil {
		_u.SetVcdrLeft(*v)
	}
	return _u
}

// AddVcdrLeft adds value to the "vcdr_left" field.
func (_u *GlaucomaFindingUpdate) AddVcdrLeft(v float64) *GlaucomaFindingUpdate {
	_u.mutation.AddVcdrLeft(v)
	return _u
}

// ClearVcdrLeft clears the value of the "vcdr_left" field.
func (_u *GlaucomaFindingUpdate) ClearVcdrLeft() *GlaucomaFindingUpdate {
	_u.mutation.ClearVcdrLeft()
	return _u
}

// SetResult sets the "result" field.
func (_u *GlaucomaFindingUpdate) SetResult(v string) *GlaucomaFindingUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *GlaucomaFindingUpdate) SetNillableResult(v *string) *GlaucomaFindingUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// SetEncounter sets the "encounter" edge to the Encounter entity.
func (_u *GlaucomaFindingUpdate) SetEncounter(v *Encounter) *GlaucomaFindingUpdate {
	return _u.SetEncounterID(v.ID)
}

// Mutation returns the GlaucomaFindingMutation object of the builder.
func (_u *GlaucomaFindingUpdate) Mutation() *GlaucomaFindingMutation {
	return _u.mutation
}

// ClearEncounter clears the "encounter" edge to the Encounter entity.
func (_u *GlaucomaFindingUpdate) ClearEncounter() *GlaucomaFindingUpdate {
	_u.mutation.ClearEncounter()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GlaucomaFindingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GlaucomaFindingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GlaucomaFindingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GlaucomaFindingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GlaucomaFindingUpdate) check() error {
	if _u.mutation.EncounterCleared() && len(_u.mutation.EncounterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GlaucomaFinding.encounter"`)
	}
	return nil
}

func (_u *GlaucomaFindingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(glaucomafinding.Table, glaucomafinding.Columns, sqlgraph.NewFieldSpec(glaucomafinding.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VcdrRight(); ok {
		_spec.SetField(glaucomafinding.FieldVcdrRight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVcdrRight(); ok {
		_spec.AddField(glaucomafinding.FieldVcdrRight, field.TypeFloat64, value)
	}
	if _u.mutation.VcdrRightCleared() {
		_spec.ClearField(glaucomafinding.FieldVcdrRight, field.TypeFloat64)
	}
	if value, ok := _u.mutation.VcdrLeft(); ok {
		_spec.SetField(glaucomafinding.FieldVcdrLeft, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVcdrLeft(); ok {
		_spec.AddField(glaucomafinding.FieldVcdrLeft, field.TypeFloat64, value)
	}
	if _u.mutation.VcdrLeftCleared() {
		_spec.ClearField(glaucomafinding.FieldVcdrLeft, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(glaucomafinding.FieldResult, field.TypeString, value)
	}
	if _u.mutation.EncounterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   glaucomafinding.EncounterTable,
			Columns: []string{glaucomafinding.EncounterColumn},
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
			Table:   glaucomafinding.EncounterTable,
			Columns: []string{glaucomafinding.EncounterColumn},
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
			err = &NotFoundError{glaucomafinding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GlaucomaFindingUpdateOne is the builder for updating a single GlaucomaFinding entity.
type GlaucomaFindingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GlaucomaFindingMutation
}

// SetEncounterID sets the "encounter_id" field.
func (_u *GlaucomaFindingUpdateOne) SetEncounterID(v uuid.UUID) *GlaucomaFindingUpdateOne {
	_u.mutation.SetEncounterID(v)
	return _u
}

// SetNillableEncounterID sets the "encounter_id" field if the given value is not nil.
func (_u *GlaucomaFindingUpdateOne) SetNillableEncounterID(v *uuid.UUID) *GlaucomaFindingUpdateOne {
	if v != nil {
		_u.SetEncounterID(*v)
	}
	return _u
}

// SetVcdrRight sets the "vcdr_right" field.
func (_u *GlaucomaFindingUpdateOne) SetVcdrRight(v float64) *GlaucomaFindingUpdateOne {
	_u.mutation.ResetVcdrRight()
	_u.mutation.SetVcdrRight(v)
	return _u
}

// SetNillableVcdrRight sets the "vcdr_right" field if the given value is not nil.
func (_u *GlaucomaFindingUpdateOne) SetNillableVcdrRight(v *float64) *GlaucomaFindingUpdateOne {
	if v != nil {
		_u.SetVcdrRight(*v)
	}
	return _u
}

// AddVcdrRight adds value to the "vcdr_right" field.
func (_u *GlaucomaFindingUpdateOne) AddVcdrRight(v float64) *GlaucomaFindingUpdateOne {
	_u.mutation.AddVcdrRight(v)
	return _u
}

// ClearVcdrRight clears the value of the "vcdr_right" field.
func (_u *GlaucomaFindingUpdateOne) ClearVcdrRight() *GlaucomaFindingUpdateOne {
	_u.mutation.ClearVcdrRight()
	return _u
}

// SetVcdrLeft sets the "vcdr_left" field.
func (_u *GlaucomaFindingUpdateOne) SetVcdrLeft(v float64) *GlaucomaFindingUpdateOne {
	_u.mutation.ResetVcdrLeft()
	_u.mutation.SetVcdrLeft(v)
	return _u
}

// SetNillableVcdrLeft sets the "vcdr_left" field if the given value is not nil.
func (_u *GlaucomaFindingUpdateOne) SetNillableVcdrLeft(v *float64) *GlaucomaFindingUpdateOne {
	if v != nil {
		_u.SetVcdrLeft(*v)
	}
	return _u
}

// AddVcdrLeft adds value to the "vcdr_left" field.
func (_u *GlaucomaFindingUpdateOne) AddVcdrLeft(v float64) *GlaucomaFindingUpdateOne {
	_u.mutation.AddVcdrLeft(v)
	return _u
}

// ClearVcdrLeft clears the value of the "vcdr_left" field.
func (_u *GlaucomaFindingUpdateOne) ClearVcdrLeft() *GlaucomaFindingUpdateOne {
	_u.mutation.ClearVcdrLeft()
	return _u
}

// SetResult sets the "result" field.
func (_u *GlaucomaFindingUpdateOne) SetResult(v string) *GlaucomaFindingUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *GlaucomaFindingUpdateOne) SetNillableResult(v *string) *GlaucomaFindingUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// SetEncounter sets the "encounter" edge to the Encounter entity.
func (_u *GlaucomaFindingUpdateOne) SetEncounter(v *Encounter) *GlaucomaFindingUpdateOne {
	return _u.SetEncounterID(v.ID)
}

// Mutation returns the GlaucomaFindingMutation object of the builder.
func (_u *GlaucomaFindingUpdateOne) Mutation() *GlaucomaFindingMutation {
	return _u.mutation
}

// ClearEncounter clears the "encounter" edge to the Encounter entity.
func (_u *GlaucomaFindingUpdateOne) ClearEncounter() *GlaucomaFindingUpdateOne {
	_u.mutation.ClearEncounter()
	return _u
}

// Where appends a list predicates to the GlaucomaFindingUpdate builder.
func (_u *GlaucomaFindingUpdateOne) Where(ps ...predicate.GlaucomaFinding) *GlaucomaFindingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GlaucomaFindingUpdateOne) Select(field string, fields ...string) *GlaucomaFindingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GlaucomaFinding entity.
func (_u *GlaucomaFindingUpdateOne) Save(ctx context.Context) (*GlaucomaFinding, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GlaucomaFindingUpdateOne) SaveX(ctx context.Context) *GlaucomaFinding {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GlaucomaFindingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GlaucomaFindingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GlaucomaFindingUpdateOne) check() error {
	if _u.mutation.EncounterCleared() && len(_u.mutation.EncounterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GlaucomaFinding.encounter"`)
	}
	return nil
}

func (_u *GlaucomaFindingUpdateOne) sqlSave(ctx context.Context) (_node *GlaucomaFinding, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(glaucomafinding.Table, glaucomafinding.Columns, sqlgraph.NewFieldSpec(glaucomafinding.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GlaucomaFinding.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, glaucomafinding.FieldID)
		for _, f := range fields {
			if !glaucomafinding.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != glaucomafinding.FieldID {
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
	if value, ok := _u.mutation.VcdrRight(); ok {
		_spec.SetField(glaucomafinding.FieldVcdrRight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVcdrRight(); ok {
		_spec.AddField(glaucomafinding.FieldVcdrRight, field.TypeFloat64, value)
	}
	if _u.mutation.VcdrRightCleared() {
		_spec.ClearField(glaucomafinding.FieldVcdrRight, field.TypeFloat64)
	}
	if value, ok := _u.mutation.VcdrLeft(); ok {
		_spec.SetField(glaucomafinding.FieldVcdrLeft, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVcdrLeft(); ok {
		_spec.AddField(glaucomafinding.FieldVcdrLeft, field.TypeFloat64, value)
	}
	if _u.mutation.VcdrLeftCleared() {
		_spec.ClearField(glaucomafinding.FieldVcdrLeft, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(glaucomafinding.FieldResult, field.TypeString, value)
	}
	if _u.mutation.EncounterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   glaucomafinding.EncounterTable,
			Columns: []string{glaucomafinding.EncounterColumn},
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
			Table:   glaucomafinding.EncounterTable,
			Columns: []string{glaucomafinding.EncounterColumn},
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
	_node = &GlaucomaFinding{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{glaucomafinding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
