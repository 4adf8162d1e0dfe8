// Code generated by ent, DO NOT EDIT.

package glaucomafinding

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the glaucomafinding type in the database.
	Label = "glaucoma_finding"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEncounterID holds the string denoting the encounter_id field in the database.
	FieldEncounterID = "encounter_id"
	// FieldVcdrRight holds the string denoting the vcdr_right field in the database.
	FieldVcdrRight = "vcdr_right"
	// FieldVcdrLeft holds the string denoting the vcdr_left field in the database.
	FieldVcdrLeft = "vcdr_left"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// EdgeEncounter holds the string denoting the encounter edge name in mutations.
	EdgeEncounter = "encounter"
	// Table holds the table name of the glaucomafinding in the database.
	Table = "glaucoma_findings"
	// EncounterTable is the table that holds the encounter relation/edge.
	EncounterTable = "glaucoma_findings"
	// EncounterInverseTable is the table name for the Encounter entity.
	// It exists in this package in order to avoid circular dependency with the "encounter" package.
	EncounterInverseTable = "encounters"
	// EncounterColumn is the table column denoting the encounter relation/edge.
	EncounterColumn = "encounter_id"
)

// Columns holds all SQL columns for glaucomafinding fields.
var Columns = []string{
	FieldID,
	FieldEncounterID,
	FieldVcdrRight,
	FieldVcdrLeft,
	FieldResult,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the GlaucomaFinding queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEncounterID orders the results by the encounter_id field.
func ByEncounterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEncounterID, opts...).ToFunc()
}

// ByVcdrRight orders the results by the vcdr_right field.
func ByVcdrRight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVcdrRight, opts...).ToFunc()
}

// ByVcdrLeft orders the results by the vcdr_left field.
func ByVcdrLeft(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVcdrLeft, opts...).ToFunc()
}

// ByResult orders the results by the result field.
func ByResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResult, opts...).ToFunc()
}

// ByEncounterField orders the results by encounter field.
func ByEncounterField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEncounterStep(), sql.OrderByField(field, opts...))
	}
}
func newEncounterStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EncounterInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EncounterTable, EncounterColumn),
	)
}
