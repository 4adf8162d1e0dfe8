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
	"github.com/retinalab/screening-tracker/gen/ent/archive"
	"github.com/retinalab/screening-tracker/gen/ent/encounter"
	"github.com/retinalab/screening-tracker/gen/ent/predicate"
)

// ArchiveUpdate is the builder for updating Archive entities.
type ArchiveUpdate struct {
	config
	hooks    []Hook
	mutation *ArchiveMutation
}

// Where appends a list predicates to the ArchiveUpdate builder.
func (_u *ArchiveUpdate) Where(ps ...predicate.Archive) *ArchiveUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ArchiveUpdate) SetFilename(v string) *ArchiveUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ArchiveUpdate) SetNillableFilename(v *string) *ArchiveUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ArchiveUpdate) SetContentHash(v string) *ArchiveUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *ArchiveUpdate) SetNillableContentHash(v *string) *ArchiveUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetEncounterID sets the "encounter" edge to the Encounter entity by ID.
func (_u *ArchiveUpdate) SetEncounterID(id uuid.UUID) *ArchiveUpdate {
	_u.mutation.SetEncounterID(id)
	return _u
}

// SetNillableEncounterID sets the "encounter" edge to the Encounter entity by ID if the given value is not nil.
func (_u *ArchiveUpdate) SetNillableEncounterID(id *uuid.UUID) *ArchiveUpdate {
	if id != nil {
		_u = _u.SetEncounterID(*id)
	}
	return _u
}

// SetEncounter sets the "encounter" edge to the Encounter entity.
func (_u *ArchiveUpdate) SetEncounter(v *Encounter) *ArchiveUpdate {
	return _u.SetEncounterID(v.ID)
}

// Mutation returns the ArchiveMutation object of the builder.
func (_u *ArchiveUpdate) Mutation() *ArchiveMutation {
	return _u.mutation
}

// ClearEncounter clears the "encounter" edge to the Encounter entity.
func (_u *ArchiveUpdate) ClearEncounter() *ArchiveUpdate {
	_u.mutation.ClearEncounter()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ArchiveUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArchiveUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ArchiveUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArchiveUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArchiveUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := archive.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Archive.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := archive.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Archive.content_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *ArchiveUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(archive.Table, archive.Columns, sqlgraph.NewFieldSpec(archive.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(archive.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(archive.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.EncounterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   archive.EncounterTable,
			Columns: []string{archive.EncounterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(encounter.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EncounterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   archive.EncounterTable,
			Columns: []string{archive.EncounterColumn},
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
			err = &NotFoundError{archive.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ArchiveUpdateOne is the builder for updating a single Archive entity.
type ArchiveUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ArchiveMutation
}

// SetFilename sets the "filename" field.
func (_u *ArchiveUpdateOne) SetFilename(v string) *ArchiveUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ArchiveUpdateOne) SetNillableFilename(v *string) *ArchiveUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ArchiveUpdateOne) SetContentHash(v string) *ArchiveUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *ArchiveUpdateOne) SetNillableContentHash(v *string) *ArchiveUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetEncounterID sets the "encounter" edge to the Encounter entity by ID.
func (_u *ArchiveUpdateOne) SetEncounterID(id uuid.UUID) *ArchiveUpdateOne {
	_u.mutation.SetEncounterID(id)
	return _u
}

// SetNillableEncounterID sets the "encounter" edge to the Encounter entity by ID if the given value is not nil.
func (_u *ArchiveUpdateOne) SetNillableEncounterID(id *uuid.UUID) *ArchiveUpdateOne {
	if id != nil {
		_u = _u.SetEncounterID(*id)
	}
	return _u
}

// SetEncounter sets the "encounter" edge to the Encounter entity.
func (_u *ArchiveUpdateOne) SetEncounter(v *Encounter) *ArchiveUpdateOne {
	return _u.SetEncounterID(v.ID)
}

// Mutation returns the ArchiveMutation object of the builder.
func (_u *ArchiveUpdateOne) Mutation() *ArchiveMutation {
	return _u.mutation
}

// ClearEncounter clears the "encounter" edge to the Encounter entity.
func (_u *ArchiveUpdateOne) ClearEncounter() *ArchiveUpdateOne {
	_u.mutation.ClearEncounter()
	return _u
}

// Where appends a list predicates to the ArchiveUpdate builder.
func (_u *ArchiveUpdateOne) Where(ps ...predicate.Archive) *ArchiveUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ArchiveUpdateOne) Select(field string, fields ...string) *ArchiveUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Archive entity.
func (_u *ArchiveUpdateOne) Save(ctx context.Context) (*Archive, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArchiveUpdateOne) SaveX(ctx context.Context) *Archive {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ArchiveUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArchiveUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArchiveUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := archive.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Archive.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := archive.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Archive.content_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *ArchiveUpdateOne) sqlSave(ctx context.Context) (_node *Archive, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(archive.Table, archive.Columns, sqlgraph.NewFieldSpec(archive.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Archive.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, archive.FieldID)
		for _, f := range fields {
			if !archive.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != archive.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(archive.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(archive.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.EncounterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   archive.EncounterTable,
			Columns: []string{archive.EncounterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(encounter.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EncounterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   archive.EncounterTable,
			Columns: []string{archive.EncounterColumn},
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
	_node = &Archive{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{archive.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
