// Code generated by ent, DO NOT EDIT.

package retinopathyfinding

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/retinalab/screening-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldLTE(FieldID, id))
}

// EncounterID applies equality check predicate on the "encounter_id" field. It's identical to EncounterIDEQ.
func EncounterID(v uuid.UUID) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldEQ(FieldEncounterID, v))
}

// Result applies equality check predicate on the "result" field. It's identical to ResultEQ.
func Result(v string) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldEQ(FieldResult, v))
}

// EncounterIDEQ applies the EQ predicate on the "encounter_id" field.
func EncounterIDEQ(v uuid.UUID) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldEQ(FieldEncounterID, v))
}

// EncounterIDNEQ applies the NEQ predicate on the "encounter_id" field.
func EncounterIDNEQ(v uuid.UUID) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldNEQ(FieldEncounterID, v))
}

// EncounterIDIn applies the In predicate on the "encounter_id" field.
func EncounterIDIn(vs ...uuid.UUID) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldIn(FieldEncounterID, vs...))
}

// EncounterIDNotIn applies the NotIn predicate on the "encounter_id" field.
func EncounterIDNotIn(vs ...uuid.UUID) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldNotIn(FieldEncounterID, vs...))
}

// ResultEQ applies the EQ predicate on the "result" field.
func ResultEQ(v string) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldEQ(FieldResult, v))
}

// ResultNEQ applies the NEQ predicate on the "result" field.
func ResultNEQ(v string) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldNEQ(FieldResult, v))
}

// ResultIn applies the In predicate on the "result" field.
func ResultIn(vs ...string) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldIn(FieldResult, vs...))
}

// ResultNotIn applies the NotIn predicate on the "result" field.
func ResultNotIn(vs ...string) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldNotIn(FieldResult, vs...))
}

// ResultGT applies the GT predicate on the "result" field.
func ResultGT(v string) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldGT(FieldResult, v))
}

// ResultGTE applies the GTE predicate on the "result" field.
func ResultGTE(v string) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldGTE(FieldResult, v))
}

// ResultLT applies the LT predicate on the "result" field.
func ResultLT(v string) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldLT(FieldResult, v))
}

// ResultLTE applies the LTE predicate on the "result" field.
func ResultLTE(v string) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldLTE(FieldResult, v))
}

// ResultContains applies the Contains predicate on the "result" field.
func ResultContains(v string) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldContains(FieldResult, v))
}

// ResultHasPrefix applies the HasPrefix predicate on the "result" field.
func ResultHasPrefix(v string) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldHasPrefix(FieldResult, v))
}

// ResultHasSuffix applies the HasSuffix predicate on the "result" field.
func ResultHasSuffix(v string) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldHasSuffix(FieldResult, v))
}

// ResultEqualFold applies the EqualFold predicate on the "result" field.
func ResultEqualFold(v string) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldEqualFold(FieldResult, v))
}

// ResultContainsFold applies the ContainsFold predicate on the "result" field.
func ResultContainsFold(v string) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.FieldContainsFold(FieldResult, v))
}

// HasEncounter applies the HasEdge predicate on the "encounter" edge.
func HasEncounter() predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EncounterTable, EncounterColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEncounterWith applies the HasEdge predicate on the "encounter" edge with a given conditions (other predicates).
func HasEncounterWith(preds ...predicate.Encounter) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(func(s *sql.Selector) {
		step := newEncounterStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RetinopathyFinding) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RetinopathyFinding) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RetinopathyFinding) predicate.RetinopathyFinding {
	return predicate.RetinopathyFinding(sql.NotPredicates(p))
}
