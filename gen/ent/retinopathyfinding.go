// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/retinalab/screening-tracker/gen/ent/encounter"
	"github.com/retinalab/screening-tracker/gen/ent/retinopathyfinding"
)

// RetinopathyFinding is the model entity for the RetinopathyFinding schema.
type RetinopathyFinding struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// EncounterID holds the value of the "encounter_id" field.
	EncounterID uuid.UUID `json:"encounter_id,omitempty"`
	// Result holds the value of the "result" field.
	Result string `json:"result,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RetinopathyFindingQuery when eager-loading is set.
	Edges        RetinopathyFindingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RetinopathyFindingEdges holds the relations/edges for other nodes in the graph.
type RetinopathyFindingEdges struct {
	// Encounter holds the value of the encounter edge.
	Encounter *Encounter `json:"encounter,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EncounterOrErr returns the Encounter value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RetinopathyFindingEdges) EncounterOrErr() (*Encounter, error) {
	if e.Encounter != nil {
		return e.Encounter, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: encounter.Label}
	}
	return nil, &NotLoadedError{edge: "encounter"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RetinopathyFinding) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case retinopathyfinding.FieldResult:
			values[i] = new(sql.NullString)
		case retinopathyfinding.FieldID, retinopathyfinding.FieldEncounterID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RetinopathyFinding fields.
func (_m *RetinopathyFinding) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case retinopathyfinding.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case retinopathyfinding.FieldEncounterID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field encounter_id", values[i])
			} else if value != nil {
				_m.EncounterID = *value
			}
		case retinopathyfinding.FieldResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value.Valid {
				_m.Result = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RetinopathyFinding.
// This includes values selected through modifiers, order, etc.
func (_m *RetinopathyFinding) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEncounter queries the "encounter" edge of the RetinopathyFinding entity.
func (_m *RetinopathyFinding) QueryEncounter() *EncounterQuery {
	return NewRetinopathyFindingClient(_m.config).QueryEncounter(_m)
}

// Update returns a builder for updating this RetinopathyFinding.
// Note that you need to call RetinopathyFinding.Unwrap() before calling this method if this RetinopathyFinding
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RetinopathyFinding) Update() *RetinopathyFindingUpdateOne {
	return NewRetinopathyFindingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RetinopathyFinding entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RetinopathyFinding) Unwrap() *RetinopathyFinding {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RetinopathyFinding is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RetinopathyFinding) String() string {
	var builder strings.Builder
	builder.WriteString("RetinopathyFinding(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("encounter_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EncounterID))
	builder.WriteString(", ")
	builder.WriteString("result=")
	builder.WriteString(_m.Result)
	builder.WriteByte(')')
	return builder.String()
}

// RetinopathyFindings is a parsable slice of RetinopathyFinding.
type RetinopathyFindings []*RetinopathyFinding
