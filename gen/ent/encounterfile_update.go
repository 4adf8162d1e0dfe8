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
	"github.com/retinalab/screening-tracker/gen/ent/encounterfile"
	"github.com/retinalab/screening-tracker/gen/ent/predicate"
)

// EncounterFileUpdate is the builder for updating EncounterFile entities.
type EncounterFileUpdate struct {
	config
	hooks    []Hook
	mutation *EncounterFileMutation
}

// Where appends a list predicates to the EncounterFileUpdate builder.
func (_u *EncounterFileUpdate) Where(ps ...predicate.EncounterFile) *EncounterFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEncounterID sets the "encounter_id" field.
func (_u *EncounterFileUpdate) SetEncounterID(v uuid.UUID) *EncounterFileUpdate {
	_u.mutation.SetEncounterID(v)
	return _u
}

// SetNillableEncounterID sets the "encounter_id" field if the given value is not nil.
func (_u *EncounterFileUpdate) SetNillableEncounterID(v *uuid.UUID) *EncounterFileUpdate {
	if v != nil {
		_u.SetEncounterID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *EncounterFileUpdate) SetFilename(v string) *EncounterFileUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *EncounterFileUpdate) SetNillableFilename(v *string) *EncounterFileUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *EncounterFileUpdate) SetFileType(v string) *EncounterFileUpdate {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *EncounterFileUpdate) SetNillableFileType(v *string) *EncounterFileUpdate {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetOcrProcessed sets the "ocr_processed" field.
func (_u *EncounterFileUpdate) SetOcrProcessed(v bool) *EncounterFileUpdate {
	_u.mutation.SetOcrProcessed(v)
	return _u
}

// SetNillableOcrProcessed sets the "ocr_processed" field if the given value is not nil.
func (_u *EncounterFileUpdate) SetNillableOcrProcessed(v *bool) *EncounterFileUpdate {
	if v != nil {
		_u.SetOcrProcessed(*v)
	}
	return _u
}

// SetEncounter sets the "encounter" edge to the Encounter entity.
func (_u *EncounterFileUpdate) SetEncounter(v *Encounter) *EncounterFileUpdate {
	return _u.SetEncounterID(v.ID)
}

// Mutation returns the EncounterFileMutation object of the builder.
func (_u *EncounterFileUpdate) Mutation() *EncounterFileMutation {
	return _u.mutation
}

// ClearEncounter clears the "encounter" edge to the Encounter entity.
func (_u *EncounterFileUpdate) ClearEncounter() *EncounterFileUpdate {
	_u.mutation.ClearEncounter()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EncounterFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EncounterFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EncounterFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EncounterFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EncounterFileUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := encounterfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "EncounterFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileType(); ok {
		if err := encounterfile.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "EncounterFile.file_type": %w`, err)}
		}
	}
	if _u.mutation.EncounterCleared() && len(_u.mutation.EncounterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EncounterFile.encounter"`)
	}
	return nil
}

func (_u *EncounterFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(encounterfile.Table, encounterfile.Columns, sqlgraph.NewFieldSpec(encounterfile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(encounterfile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(encounterfile.FieldFileType, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrProcessed(); ok {
		_spec.SetField(encounterfile.FieldOcrProcessed, field.TypeBool, value)
	}
	if _u.mutation.EncounterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   encounterfile.EncounterTable,
			Columns: []string{encounterfile.EncounterColumn},
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
			Table:   encounterfile.EncounterTable,
			Columns: []string{encounterfile.EncounterColumn},
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
			err = &NotFoundError{encounterfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EncounterFileUpdateOne is the builder for updating a single EncounterFile entity.
type EncounterFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EncounterFileMutation
}

// SetEncounterID sets the "encounter_id" field.
func (_u *EncounterFileUpdateOne) SetEncounterID(v uuid.UUID) *EncounterFileUpdateOne {
	_u.mutation.SetEncounterID(v)
	return _u
}

// SetNillableEncounterID sets the "encounter_id" field if the given value is not nil.
func (_u *EncounterFileUpdateOne) SetNillableEncounterID(v *uuid.UUID) *EncounterFileUpdateOne {
	if v != nil {
		_u.SetEncounterID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *EncounterFileUpdateOne) SetFilename(v string) *EncounterFileUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *EncounterFileUpdateOne) SetNillableFilename(v *string) *EncounterFileUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *EncounterFileUpdateOne) SetFileType(v string) *EncounterFileUpdateOne {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *EncounterFileUpdateOne) SetNillableFileType(v *string) *EncounterFileUpdateOne {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetOcrProcessed sets the "ocr_processed" field.
func (_u *EncounterFileUpdateOne) SetOcrProcessed(v bool) *EncounterFileUpdateOne {
	_u.mutation.SetOcrProcessed(v)
	return _u
}

// SetNillableOcrProcessed sets the "ocr_processed" field if the given value is not nil.
func (_u *EncounterFileUpdateOne) SetNillableOcrProcessed(v *bool) *EncounterFileUpdateOne {
	if v != nil {
		_u.SetOcrProcessed(*v)
	}
	return _u
}

// SetEncounter sets the "encounter" edge to the Encounter entity.
func (_u *EncounterFileUpdateOne) SetEncounter(v *Encounter) *EncounterFileUpdateOne {
	return _u.SetEncounterID(v.ID)
}

// Mutation returns the EncounterFileMutation object of the builder.
func (_u *EncounterFileUpdateOne) Mutation() *EncounterFileMutation {
	return _u.mutation
}

// ClearEncounter clears the "encounter" edge to the Encounter entity.
func (_u *EncounterFileUpdateOne) ClearEncounter() *EncounterFileUpdateOne {
	_u.mutation.ClearEncounter()
	return _u
}

// Where appends a list predicates to the EncounterFileUpdate builder.
func (_u *EncounterFileUpdateOne) Where(ps ...predicate.EncounterFile) *EncounterFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EncounterFileUpdateOne) Select(field string, fields ...string) *EncounterFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EncounterFile entity.
func (_u *EncounterFileUpdateOne) Save(ctx context.Context) (*EncounterFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EncounterFileUpdateOne) SaveX(ctx context.Context) *EncounterFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EncounterFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EncounterFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EncounterFileUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := encounterfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "EncounterFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileType(); ok {
		if err := encounterfile.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "EncounterFile.file_type": %w`, err)}
		}
	}
	if _u.mutation.EncounterCleared() && len(_u.mutation.EncounterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EncounterFile.encounter"`)
	}
	return nil
}

func (_u *EncounterFileUpdateOne) sqlSave(ctx context.Context) (_node *EncounterFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(encounterfile.Table, encounterfile.Columns, sqlgraph.NewFieldSpec(encounterfile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EncounterFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, encounterfile.FieldID)
		for _, f := range fields {
			if !encounterfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != encounterfile.FieldID {
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
		_spec.SetField(encounterfile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(encounterfile.FieldFileType, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrProcessed(); ok {
		_spec.SetField(encounterfile.FieldOcrProcessed, field.TypeBool, value)
	}
	if _u.mutation.EncounterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   encounterfile.EncounterTable,
			Columns: []string{encounterfile.EncounterColumn},
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
			Table:   encounterfile.EncounterTable,
			Columns: []string{encounterfile.EncounterColumn},
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
	_node = &EncounterFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{encounterfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
