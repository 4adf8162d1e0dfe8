// Code generated by ent, DO NOT EDIT.

package encounter

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the encounter type in the database.
	Label = "encounter"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldArchiveID holds the string denoting the archive_id field in the database.
	FieldArchiveID = "archive_id"
	// FieldPatientName holds the string denoting the patient_name field in the database.
	FieldPatientName = "patient_name"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldCaptureDate holds the string denoting the capture_date field in the database.
	FieldCaptureDate = "capture_date"
	// EdgeArchive holds the string denoting the archive edge name in mutations.
	EdgeArchive = "archive"
	// EdgeFiles holds the string denoting the files edge name in mutations.
	EdgeFiles = "files"
	// EdgeRetinopathyFindings holds the string denoting the retinopathy_findings edge name in mutations.
	EdgeRetinopathyFindings = "retinopathy_findings"
	// EdgeGlaucomaFindings holds the string denoting the glaucoma_findings edge name in mutations.
	EdgeGlaucomaFindings = "glaucoma_findings"
	// Table holds the table name of the encounter in the database.
	Table = "encounters"
	// ArchiveTable is the table that holds the archive relation/edge.
	ArchiveTable = "encounters"
	// ArchiveInverseTable is the table name for the Archive entity.
	// It exists in this package in order to avoid circular dependency with the "archive" package.
	ArchiveInverseTable = "archives"
	// ArchiveColumn is the table column denoting the archive relation/edge.
	ArchiveColumn = "archive_id"
	// FilesTable is the table that holds the files relation/edge.
	FilesTable = "encounter_files"
	// FilesInverseTable is the table name for the EncounterFile entity.
	// It exists in this package in order to avoid circular dependency with the "encounterfile" package.
	FilesInverseTable = "encounter_files"
	// FilesColumn is the table column denoting the files relation/edge.
	FilesColumn = "encounter_id"
	// RetinopathyFindingsTable is the table that holds the retinopathy_findings relation/edge.
	RetinopathyFindingsTable = "retinopathy_findings"
	// RetinopathyFindingsInverseTable is the table name for the RetinopathyFinding entity.
	// It exists in this package in order to avoid circular dependency with the "retinopathyfinding" package.
	RetinopathyFindingsInverseTable = "retinopathy_findings"
	// RetinopathyFindingsColumn is the table column denoting the retinopathy_findings relation/edge.
	RetinopathyFindingsColumn = "encounter_id"
	// GlaucomaFindingsTable is the table that holds the glaucoma_findings relation/edge.
	GlaucomaFindingsTable = "glaucoma_findings"
	// GlaucomaFindingsInverseTable is the table name for the GlaucomaFinding entity.
	// It exists in this package in order to avoid circular dependency with the "glaucomafinding" package.
	GlaucomaFindingsInverseTable = "glaucoma_findings"
	// GlaucomaFindingsColumn is the table column denoting the glaucoma_findings relation/edge.
	GlaucomaFindingsColumn = "encounter_id"
)

// Columns holds all SQL columns for encounter fields.
var Columns = []string{
	FieldID,
	FieldArchiveID,
	FieldPatientName,
	FieldPatientID,
	FieldCaptureDate,
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
	// PatientNameValidator is a validator for the "patient_name" field. It is called by the builders before save.
	PatientNameValidator func(string) error
	// PatientIDValidator is a validator for the "patient_id" field. It is called by the builders before save.
	PatientIDValidator func(string) error
	// CaptureDateValidator is a validator for the "capture_date" field. It is called by the builders before save.
	CaptureDateValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Encounter queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByArchiveID orders the results by the archive_id field.
func ByArchiveID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchiveID, opts...).ToFunc()
}

// ByPatientName orders the results by the patient_name field.
func ByPatientName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientName, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByCaptureDate orders the results by the capture_date field.
func ByCaptureDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaptureDate, opts...).ToFunc()
}

// ByArchiveField orders the results by archive field.
func ByArchiveField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newArchiveStep(), sql.OrderByField(field, opts...))
	}
}

// ByFilesCount orders the results by files count.
func ByFilesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFilesStep(), opts...)
	}
}

// ByFiles orders the results by files terms.
func ByFiles(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFilesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRetinopathyFindingsCount orders the results by retinopathy_findings count.
func ByRetinopathyFindingsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRetinopathyFindingsStep(), opts...)
	}
}

// ByRetinopathyFindings orders the results by retinopathy_findings terms.
func ByRetinopathyFindings(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRetinopathyFindingsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByGlaucomaFindingsCount orders the results by glaucoma_findings count.
func ByGlaucomaFindingsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGlaucomaFindingsStep(), opts...)
	}
}

// ByGlaucomaFindings orders the results by glaucoma_findings terms.
func ByGlaucomaFindings(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGlaucomaFindingsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newArchiveStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ArchiveInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, ArchiveTable, ArchiveColumn),
	)
}
func newFilesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FilesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FilesTable, FilesColumn),
	)
}
func newRetinopathyFindingsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RetinopathyFindingsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RetinopathyFindingsTable, RetinopathyFindingsColumn),
	)
}
func newGlaucomaFindingsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GlaucomaFindingsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GlaucomaFindingsTable, GlaucomaFindingsColumn),
	)
}
