// Code generated by ent, DO NOT EDIT.

package encounterfile

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/retinalab/screening-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldLTE(FieldID, id))
}

// EncounterID applies equality check predicate on the "encounter_id" field. It's identical to EncounterIDEQ.
func EncounterID(v uuid.UUID) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldEQ(FieldEncounterID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldEQ(FieldFilename, v))
}

// FileType applies equality check predicate on the "file_type" field. It's identical to FileTypeEQ.
func FileType(v string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldEQ(FieldFileType, v))
}

// OcrProcessed applies equality check predicate on the "ocr_processed" field. It's identical to OcrProcessedEQ.
func OcrProcessed(v bool) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldEQ(FieldOcrProcessed, v))
}

// EncounterIDEQ applies the EQ predicate on the "encounter_id" field.
func EncounterIDEQ(v uuid.UUID) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldEQ(FieldEncounterID, v))
}

// EncounterIDNEQ applies the NEQ predicate on the "encounter_id" field.
func EncounterIDNEQ(v uuid.UUID) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldNEQ(FieldEncounterID, v))
}

// EncounterIDIn applies the In predicate on the "encounter_id" field.
func EncounterIDIn(vs ...uuid.UUID) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldIn(FieldEncounterID, vs...))
}

// EncounterIDNotIn applies the NotIn predicate on the "encounter_id" field.
func EncounterIDNotIn(vs ...uuid.UUID) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldNotIn(FieldEncounterID, vs...))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldContainsFold(FieldFilename, v))
}

// FileTypeEQ applies the EQ predicate on the "file_type" field.
func FileTypeEQ(v string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldEQ(FieldFileType, v))
}

// FileTypeNEQ applies the NEQ predicate on the "file_type" field.
func FileTypeNEQ(v string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldNEQ(FieldFileType, v))
}

// FileTypeIn applies the In predicate on the "file_type" field.
func FileTypeIn(vs ...string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldIn(FieldFileType, vs...))
}

// FileTypeNotIn applies the NotIn predicate on the "file_type" field.
func FileTypeNotIn(vs ...string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldNotIn(FieldFileType, vs...))
}

// FileTypeGT applies the GT predicate on the "file_type" field.
func FileTypeGT(v string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldGT(FieldFileType, v))
}

// FileTypeGTE applies the GTE predicate on the "file_type" field.
func FileTypeGTE(v string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldGTE(FieldFileType, v))
}

// FileTypeLT applies the LT predicate on the "file_type" field.
func FileTypeLT(v string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldLT(FieldFileType, v))
}

// FileTypeLTE applies the LTE predicate on the "file_type" field.
func FileTypeLTE(v string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldLTE(FieldFileType, v))
}

// FileTypeContains applies the Contains predicate on the "file_type" field.
func FileTypeContains(v string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldContains(FieldFileType, v))
}

// FileTypeHasPrefix applies the HasPrefix predicate on the "file_type" field.
func FileTypeHasPrefix(v string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldHasPrefix(FieldFileType, v))
}

// FileTypeHasSuffix applies the HasSuffix predicate on the "file_type" field.
func FileTypeHasSuffix(v string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldHasSuffix(FieldFileType, v))
}

// FileTypeEqualFold applies the EqualFold predicate on the "file_type" field.
func FileTypeEqualFold(v string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldEqualFold(FieldFileType, v))
}

// FileTypeContainsFold applies the ContainsFold predicate on the "file_type" field.
func FileTypeContainsFold(v string) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldContainsFold(FieldFileType, v))
}

// OcrProcessedEQ applies the EQ predicate on the "ocr_processed" field.
func OcrProcessedEQ(v bool) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldEQ(FieldOcrProcessed, v))
}

// OcrProcessedNEQ applies the NEQ predicate on the "ocr_processed" field.
func OcrProcessedNEQ(v bool) predicate.EncounterFile {
	return predicate.EncounterFile(sql.FieldNEQ(FieldOcrProcessed, v))
}

// HasEncounter applies the HasEdge predicate on the "encounter" edge.
func HasEncounter() predicate.EncounterFile {
	return predicate.EncounterFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EncounterTable, EncounterColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEncounterWith applies the HasEdge predicate on the "encounter" edge with a given conditions (other predicates).
func HasEncounterWith(preds ...predicate.Encounter) predicate.EncounterFile {
	return predicate.EncounterFile(func(s *sql.Selector) {
		step := newEncounterStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EncounterFile) predicate.EncounterFile {
	return predicate.EncounterFile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EncounterFile) predicate.EncounterFile {
	return predicate.EncounterFile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EncounterFile) predicate.EncounterFile {
	return predicate.EncounterFile(sql.NotPredicates(p))
}
