// Code generated by ent, DO NOT EDIT.

package encounter

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/retinalab/screening-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldLTE(FieldID, id))
}

// ArchiveID applies equality check predicate on the "archive_id" field. It's identical to ArchiveIDEQ.
func ArchiveID(v uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldArchiveID, v))
}

// PatientName applies equality check predicate on the "patient_name" field. It's identical to PatientNameEQ.
func PatientName(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldPatientName, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldPatientID, v))
}

// CaptureDate applies equality check predicate on the "capture_date" field. It's identical to CaptureDateEQ.
func CaptureDate(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldCaptureDate, v))
}

// ArchiveIDEQ applies the EQ predicate on the "archive_id" field.
func ArchiveIDEQ(v uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldArchiveID, v))
}

// ArchiveIDNEQ applies the NEQ predicate on the "archive_id" field.
func ArchiveIDNEQ(v uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldNEQ(FieldArchiveID, v))
}

// ArchiveIDIn applies the In predicate on the "archive_id" field.
func ArchiveIDIn(vs ...uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldIn(FieldArchiveID, vs...))
}

// ArchiveIDNotIn applies the NotIn predicate on the "archive_id" field.
func ArchiveIDNotIn(vs ...uuid.UUID) predicate.Encounter {
	return predicate.Encounter(sql.FieldNotIn(FieldArchiveID, vs...))
}

// PatientNameEQ applies the EQ predicate on the "patient_name" field.
func PatientNameEQ(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldPatientName, v))
}

// PatientNameNEQ applies the NEQ predicate on the "patient_name" field.
func PatientNameNEQ(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldNEQ(FieldPatientName, v))
}

// PatientNameIn applies the In predicate on the "patient_name" field.
func PatientNameIn(vs ...string) predicate.Encounter {
	return predicate.Encounter(sql.FieldIn(FieldPatientName, vs...))
}

// PatientNameNotIn applies the NotIn predicate on the "patient_name" field.
func PatientNameNotIn(vs ...string) predicate.Encounter {
	return predicate.Encounter(sql.FieldNotIn(FieldPatientName, vs...))
}

// PatientNameGT applies the GT predicate on the "patient_name" field.
func PatientNameGT(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldGT(FieldPatientName, v))
}

// PatientNameGTE applies the GTE predicate on the "patient_name" field.
func PatientNameGTE(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldGTE(FieldPatientName, v))
}

// PatientNameLT applies the LT predicate on the "patient_name" field.
func PatientNameLT(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldLT(FieldPatientName, v))
}

// PatientNameLTE applies the LTE predicate on the "patient_name" field.
func PatientNameLTE(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldLTE(FieldPatientName, v))
}

// PatientNameContains applies the Contains predicate on the "patient_name" field.
func PatientNameContains(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldContains(FieldPatientName, v))
}

// PatientNameHasPrefix applies the HasPrefix predicate on the "patient_name" field.
func PatientNameHasPrefix(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldHasPrefix(FieldPatientName, v))
}

// PatientNameHasSuffix applies the HasSuffix predicate on the "patient_name" field.
func PatientNameHasSuffix(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldHasSuffix(FieldPatientName, v))
}

// PatientNameEqualFold applies the EqualFold predicate on the "patient_name" field.
func PatientNameEqualFold(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEqualFold(FieldPatientName, v))
}

// PatientNameContainsFold applies the ContainsFold predicate on the "patient_name" field.
func PatientNameContainsFold(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldContainsFold(FieldPatientName, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...string) predicate.Encounter {
	return predicate.Encounter(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...string) predicate.Encounter {
	return predicate.Encounter(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldLTE(FieldPatientID, v))
}

// PatientIDContains applies the Contains predicate on the "patient_id" field.
func PatientIDContains(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldContains(FieldPatientID, v))
}

// PatientIDHasPrefix applies the HasPrefix predicate on the "patient_id" field.
func PatientIDHasPrefix(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldHasPrefix(FieldPatientID, v))
}

// PatientIDHasSuffix applies the HasSuffix predicate on the "patient_id" field.
func PatientIDHasSuffix(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldHasSuffix(FieldPatientID, v))
}

// PatientIDEqualFold applies the EqualFold predicate on the "patient_id" field.
func PatientIDEqualFold(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEqualFold(FieldPatientID, v))
}

// PatientIDContainsFold applies the ContainsFold predicate on the "patient_id" field.
func PatientIDContainsFold(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldContainsFold(FieldPatientID, v))
}

// CaptureDateEQ applies the EQ predicate on the "capture_date" field.
func CaptureDateEQ(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEQ(FieldCaptureDate, v))
}

// CaptureDateNEQ applies the NEQ predicate on the "capture_date" field.
func CaptureDateNEQ(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldNEQ(FieldCaptureDate, v))
}

// CaptureDateIn applies the In predicate on the "capture_date" field.
func CaptureDateIn(vs ...string) predicate.Encounter {
	return predicate.Encounter(sql.FieldIn(FieldCaptureDate, vs...))
}

// CaptureDateNotIn applies the NotIn predicate on the "capture_date" field.
func CaptureDateNotIn(vs ...string) predicate.Encounter {
	return predicate.Encounter(sql.FieldNotIn(FieldCaptureDate, vs...))
}

// CaptureDateGT applies the GT predicate on the "capture_date" field.
func CaptureDateGT(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldGT(FieldCaptureDate, v))
}

// CaptureDateGTE applies the GTE predicate on the "capture_date" field.
func CaptureDateGTE(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldGTE(FieldCaptureDate, v))
}

// CaptureDateLT applies the LT predicate on the "capture_date" field.
func CaptureDateLT(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldLT(FieldCaptureDate, v))
}

// CaptureDateLTE applies the LTE predicate on the "capture_date" field.
func CaptureDateLTE(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldLTE(FieldCaptureDate, v))
}

// CaptureDateContains applies the Contains predicate on the "capture_date" field.
func CaptureDateContains(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldContains(FieldCaptureDate, v))
}

// CaptureDateHasPrefix applies the HasPrefix predicate on the "capture_date" field.
func CaptureDateHasPrefix(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldHasPrefix(FieldCaptureDate, v))
}

// CaptureDateHasSuffix applies the HasSuffix predicate on the "capture_date" field.
func CaptureDateHasSuffix(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldHasSuffix(FieldCaptureDate, v))
}

// CaptureDateEqualFold applies the EqualFold predicate on the "capture_date" field.
func CaptureDateEqualFold(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldEqualFold(FieldCaptureDate, v))
}

// CaptureDateContainsFold applies the ContainsFold predicate on the "capture_date" field.
func CaptureDateContainsFold(v string) predicate.Encounter {
	return predicate.Encounter(sql.FieldContainsFold(FieldCaptureDate, v))
}

// HasArchive applies the HasEdge predicate on the "archive" edge.
func HasArchive() predicate.Encounter {
	return predicate.Encounter(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ArchiveTable, ArchiveColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArchiveWith applies the HasEdge predicate on the "archive" edge with a given conditions (other predicates).
func HasArchiveWith(preds ...predicate.Archive) predicate.Encounter {
	return predicate.Encounter(func(s *sql.Selector) {
		step := newArchiveStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFiles applies the HasEdge predicate on the "files" edge.
func HasFiles() predicate.Encounter {
	return predicate.Encounter(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FilesTable, FilesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFilesWith applies the HasEdge predicate on the "files" edge with a given conditions (other predicates).
func HasFilesWith(preds ...predicate.EncounterFile) predicate.Encounter {
	return predicate.Encounter(func(s *sql.Selector) {
		step := newFilesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRetinopathyFindings applies the HasEdge predicate on the "retinopathy_findings" edge.
func HasRetinopathyFindings() predicate.Encounter {
	return predicate.Encounter(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RetinopathyFindingsTable, RetinopathyFindingsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRetinopathyFindingsWith applies the HasEdge predicate on the "retinopathy_findings" edge with a given conditions (other predicates).
func HasRetinopathyFindingsWith(preds ...predicate.RetinopathyFinding) predicate.Encounter {
	return predicate.Encounter(func(s *sql.Selector) {
		step := newRetinopathyFindingsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasGlaucomaFindings applies the HasEdge predicate on the "glaucoma_findings" edge.
func HasGlaucomaFindings() predicate.Encounter {
	return predicate.Encounter(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, GlaucomaFindingsTable, GlaucomaFindingsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGlaucomaFindingsWith applies the HasEdge predicate on the "glaucoma_findings" edge with a given conditions (other predicates).
func HasGlaucomaFindingsWith(preds ...predicate.GlaucomaFinding) predicate.Encounter {
	return predicate.Encounter(func(s *sql.Selector) {
		step := newGlaucomaFindingsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Encounter) predicate.Encounter {
	return predicate.Encounter(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Encounter) predicate.Encounter {
	return predicate.Encounter(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Encounter) predicate.Encounter {
	return predicate.Encounter(sql.NotPredicates(p))
}
