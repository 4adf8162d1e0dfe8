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
	"github.com/retinalab/screening-tracker/gen/ent/encounterfile"
	"github.com/retinalab/screening-tracker/gen/ent/glaucomafinding"
	"github.com/retinalab/screening-tracker/gen/ent/predicate"
	"github.com/retinalab/screening-tracker/gen/ent/retinopathyfinding"
)

// EncounterUpdate is the builder for updating Encounter entities.
type EncounterUpdate struct {
	config
	hooks    []Hook
	mutation *EncounterMutation
}

// Where appends a list predicates to the EncounterUpdate builder.
func (_u *EncounterUpdate) Where(ps ...predicate.Encounter) *EncounterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetArchiveID sets the "archive_id" field.
func (_u *EncounterUpdate) SetArchiveID(v uuid.UUID) *EncounterUpdate {
	_u.mutation.SetArchiveID(v)
	return _u
}

// SetNillableArchiveID sets the "archive_id" field if the given value is not nil.
func (_u *EncounterUpdate) SetNillableArchiveID(v *uuid.UUID) *EncounterUpdate {
	if v != nil {
		_u.SetArchiveID(*v)
	}
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *EncounterUpdate) SetPatientName(v string) *EncounterUpdate {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *EncounterUpdate) SetNillablePatientName(v *string) *EncounterUpdate {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *EncounterUpdate) SetPatientID(v string) *EncounterUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *EncounterUpdate) SetNillablePatientID(v *string) *EncounterUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetCaptureDate sets the "capture_date" field.
func (_u *EncounterUpdate) SetCaptureDate(v string) *EncounterUpdate {
	_u.mutation.SetCaptureDate(v)
	return _u
}

// SetNillableCaptureDate sets the "capture_date" field if the given value is not nil.
func (_u *EncounterUpdate) SetNillableCaptureDate(v *string) *EncounterUpdate {
	if v != nil {
		_u.SetCaptureDate(*v)
	}
	return _u
}

// SetArchive sets the "archive" edge to the Archive entity.
func (_u *EncounterUpdate) SetArchive(v *Archive) *EncounterUpdate {
	return _u.SetArchiveID(v.ID)
}

// AddFileIDs adds the "files" edge to the EncounterFile entity by IDs.
func (_u *EncounterUpdate) AddFileIDs(ids ...uuid.UUID) *EncounterUpdate {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the EncounterFile entity.
func (_u *EncounterUpdate) AddFiles(v ...*EncounterFile) *EncounterUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// AddRetinopathyFindingIDs adds the "retinopathy_findings" edge to the RetinopathyFinding entity by IDs.
func (_u *EncounterUpdate) AddRetinopathyFindingIDs(ids ...uuid.UUID) *EncounterUpdate {
	_u.mutation.AddRetinopathyFindingIDs(ids...)
	return _u
}

// AddRetinopathyFindings adds the "retinopathy_findings" edges to the RetinopathyFinding entity.
func (_u *EncounterUpdate) AddRetinopathyFindings(v ...*RetinopathyFinding) *EncounterUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRetinopathyFindingIDs(ids...)
}

// AddGlaucomaFindingIDs adds the "glaucoma_findings" edge to the GlaucomaFinding entity by IDs.
func (_u *EncounterUpdate) AddGlaucomaFindingIDs(ids ...uuid.UUID) *EncounterUpdate {
	_u.mutation.AddGlaucomaFindingIDs(ids...)
	return _u
}

// AddGlaucomaFindings adds the "glaucoma_findings" edges to the GlaucomaFinding entity.
func (_u *EncounterUpdate) AddGlaucomaFindings(v ...*GlaucomaFinding) *EncounterUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGlaucomaFindingIDs(ids...)
}

// Mutation returns the EncounterMutation object of the builder.
func (_u *EncounterUpdate) Mutation() *EncounterMutation {
	return _u.mutation
}

// ClearArchive clears the "archive" edge to the Archive entity.
func (_u *EncounterUpdate) ClearArchive() *EncounterUpdate {
	_u.mutation.ClearArchive()
	return _u
}

// ClearFiles clears all "files" edges to the EncounterFile entity.
func (_u *EncounterUpdate) ClearFiles() *EncounterUpdate {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to EncounterFile entities by IDs.
func (_u *EncounterUpdate) RemoveFileIDs(ids ...uuid.UUID) *EncounterUpdate {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to EncounterFile entities.
func (_u *EncounterUpdate) RemoveFiles(v ...*EncounterFile) *EncounterUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// ClearRetinopathyFindings clears all "retinopathy_findings" edges to the RetinopathyFinding entity.
func (_u *EncounterUpdate) ClearRetinopathyFindings() *EncounterUpdate {
	_u.mutation.ClearRetinopathyFindings()
	return _u
}

// RemoveRetinopathyFindingIDs removes the "retinopathy_findings" edge to RetinopathyFinding entities by IDs.
func (_u *EncounterUpdate) RemoveRetinopathyFindingIDs(ids ...uuid.UUID) *EncounterUpdate {
	_u.mutation.RemoveRetinopathyFindingIDs(ids...)
	return _u
}

// RemoveRetinopathyFindings removes "retinopathy_findings" edges to RetinopathyFinding entities.
func (_u *EncounterUpdate) RemoveRetinopathyFindings(v ...*RetinopathyFinding) *EncounterUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRetinopathyFindingIDs(ids...)
}

// ClearGlaucomaFindings clears all "glaucoma_findings" edges to the GlaucomaFinding entity.
func (_u *EncounterUpdate) ClearGlaucomaFindings() *EncounterUpdate {
	_u.mutation.ClearGlaucomaFindings()
	return _u
}

// RemoveGlaucomaFindingIDs removes the "glaucoma_findings" edge to GlaucomaFinding entities by IDs.
func (_u *EncounterUpdate) RemoveGlaucomaFindingIDs(ids ...uuid.UUID) *EncounterUpdate {
	_u.mutation.RemoveGlaucomaFindingIDs(ids...)
	return _u
}

// RemoveGlaucomaFindings removes "glaucoma_findings" edges to GlaucomaFinding entities.
func (_u *EncounterUpdate) RemoveGlaucomaFindings(v ...*GlaucomaFinding) *EncounterUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGlaucomaFindingIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EncounterUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EncounterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EncounterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EncounterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EncounterUpdate) check() error {
	if v, ok := _u.mutation.PatientName(); ok {
		if err := encounter.PatientNameValidator(v); err != nil {
			return &ValidationError{Name: "patient_name", err: fmt.Errorf(`ent: validator failed for field "Encounter.patient_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatientID(); ok {
		if err := encounter.PatientIDValidator(v); err != nil {
			return &ValidationError{Name: "patient_id", err: fmt.Errorf(`ent: validator failed for field "Encounter.patient_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CaptureDate(); ok {
		if err := encounter.CaptureDateValidator(v); err != nil {
			return &ValidationError{Name: "capture_date", err: fmt.Errorf(`ent: validator failed for field "Encounter.capture_date": %w`, err)}
		}
	}
	if _u.mutation.ArchiveCleared() && len(_u.mutation.ArchiveIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Encounter.archive"`)
	}
	return nil
}

func (_u *EncounterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(encounter.Table, encounter.Columns, sqlgraph.NewFieldSpec(encounter.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(encounter.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(encounter.FieldPatientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaptureDate(); ok {
		_spec.SetField(encounter.FieldCaptureDate, field.TypeString, value)
	}
	if _u.mutation.ArchiveCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArchiveIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RetinopathyFindingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRetinopathyFindingsIDs(); len(nodes) > 0 && !_u.mutation.RetinopathyFindingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RetinopathyFindingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GlaucomaFindingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGlaucomaFindingsIDs(); len(nodes) > 0 && !_u.mutation.GlaucomaFindingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GlaucomaFindingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{encounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EncounterUpdateOne is the builder for updating a single Encounter entity.
type EncounterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EncounterMutation
}

// SetArchiveID sets the "archive_id" field.
func (_u *EncounterUpdateOne) SetArchiveID(v uuid.UUID) *EncounterUpdateOne {
	_u.mutation.SetArchiveID(v)
	return _u
}

// SetNillableArchiveID sets the "archive_id" field if the given value is not nil.
func (_u *EncounterUpdateOne) SetNillableArchiveID(v *uuid.UUID) *EncounterUpdateOne {
	if v != nil {
		_u.SetArchiveID(*v)
	}
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *EncounterUpdateOne) SetPatientName(v string) *EncounterUpdateOne {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *EncounterUpdateOne) SetNillablePatientName(v *string) *EncounterUpdateOne {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *EncounterUpdateOne) SetPatientID(v string) *EncounterUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *EncounterUpdateOne) SetNillablePatientID(v *string) *EncounterUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetCaptureDate sets the "capture_date" field.
func (_u *EncounterUpdateOne) SetCaptureDate(v string) *EncounterUpdateOne {
	_u.mutation.SetCaptureDate(v)
	return _u
}

// SetNillableCaptureDate sets the "capture_date" field if the given value is not nil.
func (_u *EncounterUpdateOne) SetNillableCaptureDate(v *string) *EncounterUpdateOne {
	if v != nil {
		_u.SetCaptureDate(*v)
	}
	return _u
}

// SetArchive sets the "archive" edge to the Archive entity.
func (_u *EncounterUpdateOne) SetArchive(v *Archive) *EncounterUpdateOne {
	return _u.SetArchiveID(v.ID)
}

// AddFileIDs adds the "files" edge to the EncounterFile entity by IDs.
func (_u *EncounterUpdateOne) AddFileIDs(ids ...uuid.UUID) *EncounterUpdateOne {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the EncounterFile entity.
func (_u *EncounterUpdateOne) AddFiles(v ...*EncounterFile) *EncounterUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// AddRetinopathyFindingIDs adds the "retinopathy_findings" edge to the RetinopathyFinding entity by IDs.
func (_u *EncounterUpdateOne) AddRetinopathyFindingIDs(ids ...uuid.UUID) *EncounterUpdateOne {
	_u.mutation.AddRetinopathyFindingIDs(ids...)
	return _u
}

// AddRetinopathyFindings adds the "retinopathy_findings" edges to the RetinopathyFinding entity.
func (_u *EncounterUpdateOne) AddRetinopathyFindings(v ...*RetinopathyFinding) *EncounterUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRetinopathyFindingIDs(ids...)
}

// AddGlaucomaFindingIDs adds the "glaucoma_findings" edge to the GlaucomaFinding entity by IDs.
func (_u *EncounterUpdateOne) AddGlaucomaFindingIDs(ids ...uuid.UUID) *EncounterUpdateOne {
	_u.mutation.AddGlaucomaFindingIDs(ids...)
	return _u
}

// AddGlaucomaFindings adds the "glaucoma_findings" edges to the GlaucomaFinding entity.
func (_u *EncounterUpdateOne) AddGlaucomaFindings(v ...*GlaucomaFinding) *EncounterUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGlaucomaFindingIDs(ids...)
}

// Mutation returns the EncounterMutation object of the builder.
func (_u *EncounterUpdateOne) Mutation() *EncounterMutation {
	return _u.mutation
}

// ClearArchive clears the "archive" edge to the Archive entity.
func (_u *EncounterUpdateOne) ClearArchive() *EncounterUpdateOne {
	_u.mutation.ClearArchive()
	return _u
}

// ClearFiles clears all "files" edges to the EncounterFile entity.
func (_u *EncounterUpdateOne) ClearFiles() *EncounterUpdateOne {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to EncounterFile entities by IDs.
func (_u *EncounterUpdateOne) RemoveFileIDs(ids ...uuid.UUID) *EncounterUpdateOne {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to EncounterFile entities.
func (_u *EncounterUpdateOne) RemoveFiles(v ...*EncounterFile) *EncounterUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// ClearRetinopathyFindings clears all "retinopathy_findings" edges to the RetinopathyFinding entity.
func (_u *EncounterUpdateOne) ClearRetinopathyFindings() *EncounterUpdateOne {
	_u.mutation.ClearRetinopathyFindings()
	return _u
}

// RemoveRetinopathyFindingIDs removes the "retinopathy_findings" edge to RetinopathyFinding entities by IDs.
func (_u *EncounterUpdateOne) RemoveRetinopathyFindingIDs(ids ...uuid.UUID) *EncounterUpdateOne {
	_u.mutation.RemoveRetinopathyFindingIDs(ids...)
	return _u
}

// RemoveRetinopathyFindings removes "retinopathy_findings" edges to RetinopathyFinding entities.
func (_u *EncounterUpdateOne) RemoveRetinopathyFindings(v ...*RetinopathyFinding) *EncounterUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRetinopathyFindingIDs(ids...)
}

// ClearGlaucomaFindings clears all "glaucoma_findings" edges to the GlaucomaFinding entity.
func (_u *EncounterUpdateOne) ClearGlaucomaFindings() *EncounterUpdateOne {
	_u.mutation.ClearGlaucomaFindings()
	return _u
}

// RemoveGlaucomaFindingIDs removes the "glaucoma_findings" edge to GlaucomaFinding entities by IDs.
func (_u *EncounterUpdateOne) RemoveGlaucomaFindingIDs(ids ...uuid.UUID) *EncounterUpdateOne {
	_u.mutation.RemoveGlaucomaFindingIDs(ids...)
	return _u
}

// RemoveGlaucomaFindings removes "glaucoma_findings" edges to GlaucomaFinding entities.
func (_u *EncounterUpdateOne) RemoveGlaucomaFindings(v ...*GlaucomaFinding) *EncounterUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGlaucomaFindingIDs(ids...)
}

// Where appends a list predicates to the EncounterUpdate builder.
func (_u *EncounterUpdateOne) Where(ps ...predicate.Encounter) *EncounterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EncounterUpdateOne) Select(field string, fields ...string) *EncounterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Encounter entity.
func (_u *EncounterUpdateOne) Save(ctx context.Context) (*Encounter, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EncounterUpdateOne) SaveX(ctx context.Context) *Encounter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EncounterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EncounterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EncounterUpdateOne) check() error {
	if v, ok := _u.mutation.PatientName(); ok {
		if err := encounter.PatientNameValidator(v); err != nil {
			return &ValidationError{Name: "patient_name", err: fmt.Errorf(`ent: validator failed for field "Encounter.patient_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatientID(); ok {
		if err := encounter.PatientIDValidator(v); err != nil {
			return &ValidationError{Name: "patient_id", err: fmt.Errorf(`ent: validator failed for field "Encounter.patient_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CaptureDate(); ok {
		if err := encounter.CaptureDateValidator(v); err != nil {
			return &ValidationError{Name: "capture_date", err: fmt.Errorf(`ent: validator failed for field "Encounter.capture_date": %w`, err)}
		}
	}
	if _u.mutation.ArchiveCleared() && len(_u.mutation.ArchiveIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Encounter.archive"`)
	}
	return nil
}

func (_u *EncounterUpdateOne) sqlSave(ctx context.Context) (_node *Encounter, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(encounter.Table, encounter.Columns, sqlgraph.NewFieldSpec(encounter.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Encounter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, encounter.FieldID)
		for _, f := range fields {
			if !encounter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != encounter.FieldID {
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
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(encounter.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(encounter.FieldPatientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CaptureDate(); ok {
		_spec.SetField(encounter.FieldCaptureDate, field.TypeString, value)
	}
	if _u.mutation.ArchiveCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArchiveIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RetinopathyFindingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRetinopathyFindingsIDs(); len(nodes) > 0 && !_u.mutation.RetinopathyFindingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RetinopathyFindingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GlaucomaFindingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGlaucomaFindingsIDs(); len(nodes) > 0 && !_u.mutation.GlaucomaFindingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GlaucomaFindingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Encounter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{encounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
