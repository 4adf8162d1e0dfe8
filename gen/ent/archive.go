// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/retinalab/screening-tracker/gen/ent/archive"
	"github.com/retinalab/screening-tracker/gen/ent/encounter"
)

// Archive is the model entity for the Archive schema.
type Archive struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash string `json:"content_hash,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt time.Time `json:"processed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ArchiveQuery when eager-loading is set.
	Edges        ArchiveEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ArchiveEdges holds the relations/edges for other nodes in the graph.
type ArchiveEdges struct {
	// Encounter holds the value of the encounter edge.
	Encounter *Encounter `json:"encounter,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EncounterOrErr returns the Encounter value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ArchiveEdges) EncounterOrErr() (*Encounter, error) {
	if e.Encounter != nil {
		return e.Encounter, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: encounter.Label}
	}
	return nil, &NotLoadedError{edge: "encounter"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Archive) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case archive.FieldFilename, archive.FieldContentHash:
			values[i] = new(sql.NullString)
		case archive.FieldProcessedAt:
			values[i] = new(sql.NullTime)
		case archive.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Archive fields.
func (_m *Archive) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case archive.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case archive.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case archive.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				_m.ContentHash = value.String
			}
		case archive.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Archive.
// This includes values selected through modifiers, order, etc.
func (_m *Archive) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEncounter queries the "encounter" edge of the Archive entity.
func (_m *Archive) QueryEncounter() *EncounterQuery {
	return NewArchiveClient(_m.config).QueryEncounter(_m)
}

// Update returns a builder for updating this Archive.
// Note that you need to call Archive.Unwrap() before calling this method if this Archive
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Archive) Update() *ArchiveUpdateOne {
	return NewArchiveClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Archive entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Archive) Unwrap() *Archive {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Archive is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Archive) String() string {
	var builder strings.Builder
	builder.WriteString("Archive(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(_m.ContentHash)
	builder.WriteString(", ")
	builder.WriteString("processed_at=")
	builder.WriteString(_m.ProcessedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Archives is a parsable slice of Archive.
type Archives []*Archive
