// Code generated by ent, DO NOT EDIT.

package glaucomafinding

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/retinalab/screening-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldLTE(FieldID, id))
}

// EncounterID applies equality check predicate on the "encounter_id" field. It's identical to EncounterIDEQ.
func EncounterID(v uuid.UUID) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldEQ(FieldEncounterID, v))
}

// VcdrRight applies equality check predicate on the "vcdr_right" field. It's identical to VcdrRightEQ.
func VcdrRight(v float64) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldEQ(FieldVcdrRight, v))
}

// VcdrLeft applies equality check predicate on the "vcdr_left" field. It's identical to VcdrLeftEQ.
func VcdrLeft(v float64) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldEQ(FieldVcdrLeft, v))
}

// Result applies equality check predicate on the "result" field. It's identical to ResultEQ.
func Result(v string) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldEQ(FieldResult, v))
}

// EncounterIDEQ applies the EQ predicate on the "encounter_id" field.
func EncounterIDEQ(v uuid.UUID) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldEQ(FieldEncounterID, v))
}

// EncounterIDNEQ applies the NEQ predicate on the "encounter_id" field.
func EncounterIDNEQ(v uuid.UUID) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldNEQ(FieldEncounterID, v))
}

// EncounterIDIn applies the In predicate on the "encounter_id" field.
func EncounterIDIn(vs ...uuid.UUID) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldIn(FieldEncounterID, vs...))
}

// EncounterIDNotIn applies the NotIn predicate on the "encounter_id" field.
func EncounterIDNotIn(vs ...uuid.UUID) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldNotIn(FieldEncounterID, vs...))
}

// VcdrRightEQ applies the EQ predicate on the "vcdr_right" field.
func VcdrRightEQ(v float64) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldEQ(FieldVcdrRight, v))
}

// VcdrRightNEQ applies the NEQ predicate on the "vcdr_right" field.
func VcdrRightNEQ(v float64) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldNEQ(FieldVcdrRight, v))
}

// VcdrRightIn applies the In predicate on the "vcdr_right" field.
func VcdrRightIn(vs ...float64) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldIn(FieldVcdrRight, vs...))
}

// VcdrRightNotIn applies the NotIn predicate on the "vcdr_right" field.
func VcdrRightNotIn(vs ...float64) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldNotIn(FieldVcdrRight, vs...))
}

// VcdrRightGT applies the GT predicate on the "vcdr_right" field.
func VcdrRightGT(v float64) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldGT(FieldVcdrRight, v))
}

// VcdrRightGTE applies the GTE predicate on the "vcdr_right" field.
func VcdrRightGTE(v float64) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldGTE(FieldVcdrRight, v))
}

// VcdrRightLT applies the LT predicate on the "vcdr_right" field.
func VcdrRightLT(v float64) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldLT(FieldVcdrRight, v))
}

// VcdrRightLTE applies the LTE predicate on the "vcdr_right" field.
func VcdrRightLTE(v float64) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldLTE(FieldVcdrRight, v))
}

// VcdrRightIsNil applies the IsNil predicate on the "vcdr_right" field.
func VcdrRightIsNil() predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldIsNull(FieldVcdrRight))
}

// VcdrRightNotNil applies the NotNil predicate on the "vcdr_right" field.
func VcdrRightNotNil() predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldNotNull(FieldVcdrRight))
}

// VcdrLeftEQ applies the EQ predicate on the "vcdr_left" field.
func VcdrLeftEQ(v float64) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldEQ(FieldVcdrLeft, v))
}

// VcdrLeftNEQ applies the NEQ predicate on the "vcdr_left" field.
func VcdrLeftNEQ(v float64) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldNEQ(FieldVcdrLeft, v))
}

// VcdrLeftIn applies the In predicate on the "vcdr_left" field.
func VcdrLeftIn(vs ...float64) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldIn(FieldVcdrLeft, vs...))
}

// VcdrLeftNotIn applies the NotIn predicate on the "vcdr_left" field.
func VcdrLeftNotIn(vs ...float64) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldNotIn(FieldVcdrLeft, vs...))
}

// VcdrLeftGT applies the GT predicate on the "vcdr_left" field.
func VcdrLeftGT(v float64) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldGT(FieldVcdrLeft, v))
}

// VcdrLeftGTE applies the GTE predicate on the "vcdr_left" field.
func VcdrLeftGTE(v float64) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldGTE(FieldVcdrLeft, v))
}

// VcdrLeftLT applies the LT predicate on the "vcdr_left" field.
func VcdrLeftLT(v float64) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldLT(FieldVcdrLeft, v))
}

// VcdrLeftLTE applies the LTE predicate on the "vcdr_left" field.
func VcdrLeftLTE(v float64) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldLTE(FieldVcdrLeft, v))
}

// VcdrLeftIsNil applies the IsNil predicate on the "vcdr_left" field.
func VcdrLeftIsNil() predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldIsNull(FieldVcdrLeft))
}

// VcdrLeftNotNil applies the NotNil predicate on the "vcdr_left" field.
func VcdrLeftNotNil() predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldNotNull(FieldVcdrLeft))
}

// ResultEQ applies the EQ predicate on the "result" field.
func ResultEQ(v string) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldEQ(FieldResult, v))
}

// ResultNEQ applies the NEQ predicate on the "result" field.
func ResultNEQ(v string) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldNEQ(FieldResult, v))
}

// ResultIn applies the In predicate on the "result" field.
func ResultIn(vs ...string) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldIn(FieldResult, vs...))
}

// ResultNotIn applies the NotIn predicate on the "result" field.
func ResultNotIn(vs ...string) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldNotIn(FieldResult, vs...))
}

// ResultGT applies the GT predicate on the "result" field.
func ResultGT(v string) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldGT(FieldResult, v))
}

// ResultGTE applies the GTE predicate on the "result" field.
func ResultGTE(v string) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldGTE(FieldResult, v))
}

// ResultLT applies the LT predicate on the "result" field.
func ResultLT(v string) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldLT(FieldResult, v))
}

// ResultLTE applies the LTE predicate on the "result" field.
func ResultLTE(v string) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldLTE(FieldResult, v))
}

// ResultContains applies the Contains predicate on the "result" field.
func ResultContains(v string) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldContains(FieldResult, v))
}

// ResultHasPrefix applies the HasPrefix predicate on the "result" field.
func ResultHasPrefix(v string) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldHasPrefix(FieldResult, v))
}

// ResultHasSuffix applies the HasSuffix predicate on the "result" field.
func ResultHasSuffix(v string) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldHasSuffix(FieldResult, v))
}

// ResultEqualFold applies the EqualFold predicate on the "result" field.
func ResultEqualFold(v string) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldEqualFold(FieldResult, v))
}

// ResultContainsFold applies the ContainsFold predicate on the "result" field.
func ResultContainsFold(v string) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.FieldContainsFold(FieldResult, v))
}

// HasEncounter applies the HasEdge predicate on the "encounter" edge.
func HasEncounter() predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EncounterTable, EncounterColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEncounterWith applies the HasEdge predicate on the "encounter" edge with a given conditions (other predicates).
func HasEncounterWith(preds ...predicate.Encounter) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(func(s *sql.Selector) {
		step := newEncounterStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GlaucomaFinding) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GlaucomaFinding) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GlaucomaFinding) predicate.GlaucomaFinding {
	return predicate.GlaucomaFinding(sql.NotPredicates(p))
}
