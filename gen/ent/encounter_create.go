// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/retinalab/screening-tracker/gen/ent/archive"
	"github.com/retinalab/screening-tracker/gen/ent/encounter"
	"github.com/retinalab/screening-tracker/gen/ent/encounterfile"
	"github.com/retinalab/screening-tracker/gen/ent/glaucomafinding"
	"github.com/retinalab/screening-tracker/gen/ent/retinopathyfinding"
)

// EncounterCreate is the builder for creating a Encounter entity.
type EncounterCreate struct {
	config
	mutation *EncounterMutation
	hooks    []Hook
}

// SetArchiveID sets the "archive_id" field.
func (_c *EncounterCreate) SetArchiveID(v uuid.UUID) *EncounterCreate {
	_c.mutation.SetArchiveID(v)
	return _c
}

// SetPatientName sets the "patient_name" field.
func (_c *EncounterCreate) SetPatientName(v string) *EncounterCreate {
	_c.mutation.SetPatientName(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *EncounterCreate) SetPatientID(v string) *EncounterCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetCaptureDate sets the "capture_date" field.
func (_c *EncounterCreate) SetCaptureDate(v string) *EncounterCreate {
	_c.mutation.SetCaptureDate(v)
	return _c
}

// SetID sets the "id" field.
func (_c *EncounterCreate) SetID(v uuid.UUID) *EncounterCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EncounterCreate) SetNillableID(v *uuid.UUID) *EncounterCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetArchive sets the "archive" edge to the Archive entity.
func (_c *EncounterCreate) SetArchive(v *Archive) *EncounterCreate {
	return _c.SetArchiveID(v.ID)
}

// AddFileIDs adds the "files" edge to the EncounterFile entity by IDs.
func (_c *EncounterCreate) AddFileIDs(ids ...uuid.UUID) *EncounterCreate {
	_c.mutation.AddFileIDs(ids...)
	return _c
}

// AddFiles adds the "files" edges to the EncounterFile entity.
func (_c *EncounterCreate) AddFiles(v ...*EncounterFile) *EncounterCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFileIDs(ids...)
}

// AddRetinopathyFindingIDs adds the "retinopathy_findings" edge to the RetinopathyFinding entity by IDs.
func (_c *EncounterCreate) AddRetinopathyFindingIDs(ids ...uuid.UUID) *EncounterCreate {
	_c.mutation.AddRetinopathyFindingIDs(ids...)
	return _c
}

// AddRetinopathyFindings adds the "retinopathy_findings" edges to the RetinopathyFinding entity.
func (_c *EncounterCreate) AddRetinopathyFindings(v ...*RetinopathyFinding) *EncounterCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRetinopathyFindingIDs(ids...)
}

// AddGlaucomaFindingIDs adds the "glaucoma_findings" edge to the GlaucomaFinding entity by IDs.
func (_c *EncounterCreate) AddGlaucomaFindingIDs(ids ...uuid.UUID) *EncounterCreate {
	_c.mutation.AddGlaucomaFindingIDs(ids...)
	return _c
}

// AddGlaucomaFindings adds the "glaucoma_findings" edges to the GlaucomaFinding entity.
func (_c *EncounterCreate) AddGlaucomaFindings(v ...*GlaucomaFinding) *EncounterCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGlaucomaFindingIDs(ids...)
}

// Mutation returns the EncounterMutation object of the builder.
func (_c *EncounterCreate) Mutation() *EncounterMutation {
	return _c.mutation
}

// Save creates the Encounter in the database.
func (_c *EncounterCreate) Save(ctx context.Context) (*Encounter, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EncounterCreate) SaveX(ctx context.Context) *Encounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EncounterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EncounterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EncounterCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := encounter.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EncounterCreate) check() error {
	if _, ok := _c.mutation.ArchiveID(); !ok {
		return &ValidationError{Name: "archive_id", err: errors.New(`ent: missing required field "Encounter.archive_id"`)}
	}
	if _, ok := _c.mutation.PatientName(); !ok {
		return &ValidationError{Name: "patient_name", err: errors.New(`ent: missing required field "Encounter.patient_name"`)}
	}
	if v, ok := _c.mutation.PatientName(); ok {
		if err := encounter.PatientNameValidator(v); err != nil {
			return &ValidationError{Name: "patient_name", err: fmt.Errorf(`ent: validator failed for field "Encounter.patient_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`ent: missing required field "Encounter.patient_id"`)}
	}
	if v, ok := _c.mutation.PatientID(); ok {
		if err := encounter.PatientIDValidator(v); err != nil {
			return &ValidationError{Name: "patient_id", err: fmt.Errorf(`ent: validator failed for field "Encounter.patient_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CaptureDate(); !ok {
		return &ValidationError{Name: "capture_date", err: errors.New(`ent: missing required field "Encounter.capture_date"`)}
	}
	if v, ok := _c.mutation.CaptureDate(); ok {
		if err := encounter.CaptureDateValidator(v); err != nil {
			return &ValidationError{Name: "capture_date", err: fmt.Errorf(`ent: validator failed for field "Encounter.capture_date": %w`, err)}
		}
	}
	if len(_c.mutation.ArchiveIDs()) == 0 {
		return &ValidationError{Name: "archive", err: errors.New(`ent: missing required edge "Encounter.archive"`)}
	}
	return nil
}

func (_c *EncounterCreate) sqlSave(ctx context.Context) (*Encounter, error) {
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

func (_c *EncounterCreate) createSpec() (*Encounter, *sqlgraph.CreateSpec) {
	var (
		_node = &Encounter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(encounter.Table, sqlgraph.NewFieldSpec(encounter.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PatientName(); ok {
		_spec.SetField(encounter.FieldPatientName, field.TypeString, value)
		_node.PatientName = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(encounter.FieldPatientID, field.TypeString, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.CaptureDate(); ok {
		_spec.SetField(encounter.FieldCaptureDate, field.TypeString, value)
		_node.CaptureDate = value
	}
	if nodes := _c.mutation.ArchiveIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   encounter.ArchiveTable,
			Columns: []string{encounter.ArchiveColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(archive.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ArchiveID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   encounter.FilesTable,
			Columns: []string{encounter.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(encounterfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RetinopathyFindingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   encounter.RetinopathyFindingsTable,
			Columns: []string{encounter.RetinopathyFindingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(retinopathyfinding.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GlaucomaFindingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   encounter.GlaucomaFindingsTable,
			Columns: []string{encounter.GlaucomaFindingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(glaucomafinding.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EncounterCreateBulk is the builder for creating many Encounter entities in bulk.
type EncounterCreateBulk struct {
	config
	err      error
	builders []*EncounterCreate
}

// Save creates the Encounter entities in the database.
func (_c *EncounterCreateBulk) Save(ctx context.Context) ([]*Encounter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Encounter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EncounterMutation)
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
func (_c *EncounterCreateBulk) SaveX(ctx context.Context) []*Encounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EncounterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EncounterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
