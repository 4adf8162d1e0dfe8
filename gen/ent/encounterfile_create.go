// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/retinalab/screening-tracker/gen/ent/encounter"
	"github.com/retinalab/screening-tracker/gen/ent/encounterfile"
)

// EncounterFileCreate is the builder for creating a EncounterFile entity.
type EncounterFileCreate struct {
	config
	mutation *EncounterFileMutation
	hooks    []Hook
}

// SetEncounterID sets the "encounter_id" field.
func (_c *EncounterFileCreate) SetEncounterID(v uuid.UUID) *EncounterFileCreate {
	_c.mutation.SetEncounterID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *EncounterFileCreate) SetFilename(v string) *EncounterFileCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFileType sets the "file_type" field.
func (_c *EncounterFileCreate) SetFileType(v string) *EncounterFileCreate {
	_c.mutation.SetFileType(v)
	return _c
}

// SetOcrProcessed sets the "ocr_processed" field.
func (_c *EncounterFileCreate) SetOcrProcessed(v bool) *EncounterFileCreate {
	_c.mutation.SetOcrProcessed(v)
	return _c
}

// SetNillableOcrProcessed sets the "ocr_processed" field if the given value is not nil.
func (_c *EncounterFileCreate) SetNillableOcrProcessed(v *bool) *EncounterFileCreate {
	if v != nil {
		_c.SetOcrProcessed(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EncounterFileCreate) SetID(v uuid.UUID) *EncounterFileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EncounterFileCreate) SetNillableID(v *uuid.UUID) *EncounterFileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetEncounter sets the "encounter" edge to the Encounter entity.
func (_c *EncounterFileCreate) SetEncounter(v *Encounter) *EncounterFileCreate {
	return _c.SetEncounterID(v.ID)
}

// Mutation returns the EncounterFileMutation object of the builder.
func (_c *EncounterFileCreate) Mutation() *EncounterFileMutation {
	return _c.mutation
}

// Save creates the EncounterFile in the database.
func (_c *EncounterFileCreate) Save(ctx context.Context) (*EncounterFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EncounterFileCreate) SaveX(ctx context.Context) *EncounterFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EncounterFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EncounterFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EncounterFileCreate) defaults() {
	if _, ok := _c.mutation.OcrProcessed(); !ok {
		v := encounterfile.DefaultOcrProcessed
		_c.mutation.SetOcrProcessed(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := encounterfile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EncounterFileCreate) check() error {
	if _, ok := _c.mutation.EncounterID(); !ok {
		return &ValidationError{Name: "encounter_id", err: errors.New(`ent: missing required field "EncounterFile.encounter_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "EncounterFile.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := encounterfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "EncounterFile.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileType(); !ok {
		return &ValidationError{Name: "file_type", err: errors.New(`ent: missing required field "EncounterFile.file_type"`)}
	}
	if v, ok := _c.mutation.FileType(); ok {
		if err := encounterfile.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "EncounterFile.file_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OcrProcessed(); !ok {
		return &ValidationError{Name: "ocr_processed", err: errors.New(`ent: missing required field "EncounterFile.ocr_processed"`)}
	}
	if len(_c.mutation.EncounterIDs()) == 0 {
		return &ValidationError{Name: "encounter", err: errors.New(`ent: missing required edge "EncounterFile.encounter"`)}
	}
	return nil
}

func (_c *EncounterFileCreate) sqlSave(ctx context.Context) (*EncounterFile, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EncounterFileCreate) createSpec() (*EncounterFile, *sqlgraph.CreateSpec) {
	var (
		_node = &EncounterFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(encounterfile.Table, sqlgraph.NewFieldSpec(encounterfile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(encounterfile.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.FileType(); ok {
		_spec.SetField(encounterfile.FieldFileType, field.TypeString, value)
		_node.FileType = value
	}
	if value, ok := _c.mutation.OcrProcessed(); ok {
		_spec.SetField(encounterfile.FieldOcrProcessed, field.TypeBool, value)
		_node.OcrProcessed = value
	}
	if nodes := _c.mutation.EncounterIDs(); len(nodes) > 0 {
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
		_node.EncounterID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EncounterFileCreateBulk is the builder for creating many EncounterFile entities in bulk.
type EncounterFileCreateBulk struct {
	config
	err      error
	builders []*EncounterFileCreate
}

// Save creates the EncounterFile entities in the database.
func (_c *EncounterFileCreateBulk) Save(ctx context.Context) ([]*EncounterFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EncounterFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EncounterFileMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EncounterFileCreateBulk) SaveX(ctx context.Context) []*EncounterFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EncounterFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EncounterFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
