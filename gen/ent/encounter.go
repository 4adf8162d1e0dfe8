// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/retinalab/screening-tracker/gen/ent/archive"
	"github.com/retinalab/screening-tracker/gen/ent/encounter"
)

// Encounter is the model entity for the Encounter schema.
type Encounter struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ArchiveID holds the value of the "archive_id" field.
	ArchiveID uuid.UUID `json:"archive_id,omitempty"`
	// PatientName holds the value of the "patient_name" field.
	PatientName string `json:"patient_name,omitempty"`
	// PatientID holds the value of the "patient_id" field.
	PatientID string `json:"patient_id,omitempty"`
	// CaptureDate holds the value of the "capture_date" field.
	CaptureDate string `json:"capture_date,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EncounterQuery when eager-loading is set.
	Edges        EncounterEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EncounterEdges holds the relations/edges for other nodes in the graph.
type EncounterEdges struct {
	// Archive holds the value of the archive edge.
	Archive *Archive `json:"archive,omitempty"`
	// Files holds the value of the files edge.
	Files []*EncounterFile `json:"files,omitempty"`
	// RetinopathyFindings holds the value of the retinopathy_findings edge.
	RetinopathyFindings []*RetinopathyFinding `json:"retinopathy_findings,omitempty"`
	// GlaucomaFindings holds the value of the glaucoma_findings edge.
	GlaucomaFindings []*GlaucomaFinding `json:"glaucoma_findings,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ArchiveOrErr returns the Archive value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EncounterEdges) ArchiveOrErr() (*Archive, error) {
	if e.Archive != nil {
		return e.Archive, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: archive.Label}
	}
	return nil, &NotLoadedError{edge: "archive"}
}

// FilesOrErr returns the Files value or an error if the edge
// was not loaded in eager-loading.
func (e EncounterEdges) FilesOrErr() ([]*EncounterFile, error) {
	if e.loadedTypes[1] {
		return e.Files, nil
	}
	return nil, &NotLoadedError{edge: "files"}
}

// RetinopathyFindingsOrErr returns the RetinopathyFindings value or an error if the edge
// was not loaded in eager-loading.
func (e EncounterEdges) RetinopathyFindingsOrErr() ([]*RetinopathyFinding, error) {
	if e.loadedTypes[2] {
		return e.RetinopathyFindings, nil
	}
	return nil, &NotLoadedError{edge: "retinopathy_findings"}
}

// GlaucomaFindingsOrErr returns the GlaucomaFindings value or an error if the edge
// was not loaded in eager-loading.
func (e EncounterEdges) GlaucomaFindingsOrErr() ([]*GlaucomaFinding, error) {
	if e.loadedTypes[3] {
		return e.GlaucomaFindings, nil
	}
	return nil, &NotLoadedError{edge: "glaucoma_findings"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Encounter) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case encounter.FieldPatientName, encounter.FieldPatientID, encounter.FieldCaptureDate:
			values[i] = new(sql.NullString)
		case encounter.FieldID, encounter.FieldArchiveID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Encounter fields.
func (_m *Encounter) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case encounter.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case encounter.FieldArchiveID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field archive_id", values[i])
			} else if value != nil {
				_m.ArchiveID = *value
			}
		case encounter.FieldPatientName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_name", values[i])
			} else if value.Valid {
				_m.PatientName = value.String
			}
		case encounter.FieldPatientID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value.Valid {
				_m.PatientID = value.String
			}
		case encounter.FieldCaptureDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field capture_date", values[i])
			} else if value.Valid {
				_m.CaptureDate = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Encounter.
// This includes values selected through modifiers, order, etc.
func (_m *Encounter) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryArchive queries the "archive" edge of the Encounter entity.
func (_m *Encounter) QueryArchive() *ArchiveQuery {
	return NewEncounterClient(_m.config).QueryArchive(_m)
}

// QueryFiles queries the "files" edge of the Encounter entity.
func (_m *Encounter) QueryFiles() *EncounterFileQuery {
	return NewEncounterClient(_m.config).QueryFiles(_m)
}

// QueryRetinopathyFindings queries the "retinopathy_findings" edge of the Encounter entity.
func (_m *Encounter) QueryRetinopathyFindings() *RetinopathyFindingQuery {
	return NewEncounterClient(_m.config).QueryRetinopathyFindings(_m)
}

// QueryGlaucomaFindings queries the "glaucoma_findings" edge of the Encounter entity.
func (_m *Encounter) QueryGlaucomaFindings() *GlaucomaFindingQuery {
	return NewEncounterClient(_m.config).QueryGlaucomaFindings(_m)
}

// Update returns a builder for updating this Encounter.
// Note that you need to call Encounter.Unwrap() before calling this method if this Encounter
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Encounter) Update() *EncounterUpdateOne {
	return NewEncounterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Encounter entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Encounter) Unwrap() *Encounter {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Encounter is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Encounter) String() string {
	var builder strings.Builder
	builder.WriteString("Encounter(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("archive_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ArchiveID))
	builder.WriteString(", ")
	builder.WriteString("patient_name=")
	builder.WriteString(_m.PatientName)
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(_m.PatientID)
	builder.WriteString(", ")
	builder.WriteString("capture_date=")
	builder.WriteString(_m.CaptureDate)
	builder.WriteByte(')')
	return builder.String()
}

// Encounters is a parsable slice of Encounter.
type Encounters []*Encounter
