// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/retinalab/screening-tracker/gen/ent/encounter"
	"github.com/retinalab/screening-tracker/gen/ent/encounterfile"
)

// EncounterFile is the model entity for the EncounterFile schema.
type EncounterFile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// EncounterID holds the value of the "encounter_id" field.
	EncounterID uuid.UUID `json:"encounter_id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// FileType holds the value of the "file_type" field.
	FileType string `json:"file_type,omitempty"`
	// OcrProcessed holds the value of the "ocr_processed" field.
	OcrProcessed bool `json:"ocr_processed,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EncounterFileQuery when eager-loading is set.
	Edges        EncounterFileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EncounterFileEdges holds the relations/edges for other nodes in the graph.
type EncounterFileEdges struct {
	// Encounter holds the value of the encounter edge.
	Encounter *Encounter `json:"encounter,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EncounterOrErr returns the Encounter value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EncounterFileEdges) EncounterOrErr() (*Encounter, error) {
	if e.Encounter != nil {
		return e.Encounter, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: encounter.Label}
	}
	return nil, &NotLoadedError{edge: "encounter"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EncounterFile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case encounterfile.FieldOcrProcessed:
			values[i] = new(sql.NullBool)
		case encounterfile.FieldFilename, encounterfile.FieldFileType:
			values[i] = new(sql.NullString)
		case encounterfile.FieldID, encounterfile.FieldEncounterID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EncounterFile fields.
func (_m *EncounterFile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case encounterfile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case encounterfile.FieldEncounterID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field encounter_id", values[i])
			} else if value != nil {
				_m.EncounterID = *value
			}
		case encounterfile.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case encounterfile.FieldFileType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_type", values[i])
			} else if value.Valid {
				_m.FileType = value.String
			}
		case encounterfile.FieldOcrProcessed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_processed", values[i])
			} else if value.Valid {
				_m.OcrProcessed = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EncounterFile.
// This includes values selected through modifiers, order, etc.
func (_m *EncounterFile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEncounter queries the "encounter" edge of the EncounterFile entity.
func (_m *EncounterFile) QueryEncounter() *EncounterQuery {
	return NewEncounterFileClient(_m.config).QueryEncounter(_m)
}

// Update returns a builder for updating this EncounterFile.
// Note that you need to call EncounterFile.Unwrap() before calling this method if this EncounterFile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EncounterFile) Update() *EncounterFileUpdateOne {
	return NewEncounterFileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EncounterFile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EncounterFile) Unwrap() *EncounterFile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EncounterFile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EncounterFile) String() string {
	var builder strings.Builder
	builder.WriteString("EncounterFile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("encounter_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EncounterID))
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("file_type=")
	builder.WriteString(_m.FileType)
	builder.WriteString(", ")
	builder.WriteString("ocr_processed=")
	builder.WriteString(fmt.Sprintf("%v", _m.OcrProcessed))
	builder.WriteByte(')')
	return builder.String()
}

// EncounterFiles is a parsable slice of EncounterFile.
type EncounterFiles []*EncounterFile
