// Code generated by ent, DO NOT EDIT.

package encounterfile

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the encounterfile type in the database.
	Label = "encounter_file"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEncounterID holds the string denoting the encounter_id field in the database.
	FieldEncounterID = "encounter_id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldFileType holds the string denoting the file_type field in the database.
	FieldFileType = "file_type"
	// FieldOcrProcessed holds the string denoting the ocr_processed field in the database.
	FieldOcrProcessed = "ocr_processed"
	// EdgeEncounter holds the string denoting the encounter edge name in mutations.
	EdgeEncounter = "encounter"
	// Table holds the table name of the encounterfile in the database.
	Table = "encounter_files"
	// EncounterTable is the table that holds the encounter relation/edge.
	EncounterTable = "encounter_files"
	// EncounterInverseTable is the table name for the Encounter entity.
	// It exists in this package in order to avoid circular dependency with the "encounter" package.
	EncounterInverseTable = "encounters"
	// EncounterColumn is the table column denoting the encounter relation/edge.
	EncounterColumn = "encounter_id"
)

// Columns holds all SQL columns for encounterfile fields.
var Columns = []string{
	FieldID,
	FieldEncounterID,
	FieldFilename,
	FieldFileType,
	FieldOcrProcessed,
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
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// FileTypeValidator is a validator for the "file_type" field. It is called by the builders before save.
	FileTypeValidator func(string) error
	// DefaultOcrProcessed holds the default value on creation for the "ocr_processed" field.
	DefaultOcrProcessed bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the EncounterFile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEncounterID orders the results by the encounter_id field.
func ByEncounterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEncounterID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByFileType orders the results by the file_type field.
func ByFileType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileType, opts...).ToFunc()
}

// ByOcrProcessed orders the results by the ocr_processed field.
func ByOcrProcessed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrProcessed, opts...).ToFunc()
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
