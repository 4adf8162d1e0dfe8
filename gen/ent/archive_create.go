// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/retinalab/screening-tracker/gen/ent/archive"
	"github.com/retinalab/screening-tracker/gen/ent/encounter"
)

// ArchiveCreate is the builder for creating a Archive entity.
type ArchiveCreate struct {
	config
	mutation *ArchiveMutation
	hooks    []Hook
}

// SetFilename sets the "filename" field.
func (_c *ArchiveCreate) SetFilename(v string) *ArchiveCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *ArchiveCreate) SetContentHash(v string) *ArchiveCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *ArchiveCreate) SetProcessedAt(v time.Time) *ArchiveCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *ArchiveCreate) SetNillableProcessedAt(v *time.Time) *ArchiveCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ArchiveCreate) SetID(v uuid.UUID) *ArchiveCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ArchiveCreate) SetNillableID(v *uuid.UUID) *ArchiveCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetEncounterID sets the "encounter" edge to the Encounter entity by ID.
func (_c *ArchiveCreate) SetEncounterID(id uuid.UUID) *ArchiveCreate {
	_c.mutation.SetEncounterID(id)
	return _c
}

// SetNillableEncounterID sets the "encounter" edge to the Encounter entity by ID if the given value is not nil.
func (_c *ArchiveCreate) SetNillableEncounterID(id *uuid.UUID) *ArchiveCreate {
	if id != nil {
		_c = _c.SetEncounterID(*id)
	}
	return _c
}

// SetEncounter sets the "encounter" edge to the Encounter entity.
func (_c *ArchiveCreate) SetEncounter(v *Encounter) *ArchiveCreate {
	return _c.SetEncounterID(v.ID)
}

// Mutation returns the ArchiveMutation object of the builder.
func (_c *ArchiveCreate) Mutation() *ArchiveMutation {
	return _c.mutation
}

// Save creates the Archive in the database.
func (_c *ArchiveCreate) Save(ctx context.Context) (*Archive, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ArchiveCreate) SaveX(ctx context.Context) *Archive {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArchiveCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArchiveCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ArchiveCreate) defaults() {
	if _, ok := _c.mutation.ProcessedAt(); !ok {
		v := archive.DefaultProcessedAt()
		_c.mutation.SetProcessedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := archive.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ArchiveCreate) check() error {
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Archive.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := archive.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Archive.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "Archive.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := archive.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Archive.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessedAt(); !ok {
		return &ValidationError{Name: "processed_at", err: errors.New(`ent: missing required field "Archive.processed_at"`)}
	}
	return nil
}

func (_c *ArchiveCreate) sqlSave(ctx context.Context) (*Archive, error) {
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

func (_c *ArchiveCreate) createSpec() (*Archive, *sqlgraph.CreateSpec) {
	var (
		_node = &Archive{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(archive.Table, sqlgraph.NewFieldSpec(archive.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(archive.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(archive.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(archive.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = value
	}
	if nodes := _c.mutation.EncounterIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ArchiveCreateBulk is the builder for creating many Archive entities in bulk.
type ArchiveCreateBulk struct {
	config
	err      error
	builders []*ArchiveCreate
}

// Save creates the Archive entities in the database.
func (_c *ArchiveCreateBulk) Save(ctx context.Context) ([]*Archive, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Archive, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ArchiveMutation)
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
func (_c *ArchiveCreateBulk) SaveX(ctx context.Context) []*Archive {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArchiveCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArchiveCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
