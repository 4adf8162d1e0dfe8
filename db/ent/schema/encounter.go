package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Encounter is one patient capture session, derived from the parsed session
// directory name. Name/ID/date are stored exactly as parsed — no semantic
// validation of the date or identifier.
type Encounter struct{ ent.Schema }

func (Encounter) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "encounters"},
	}
}

func (Encounter) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so the 1:1 with archives is enforceable
		field.UUID("archive_id", uuid.UUID{}).Unique(),
		field.String("patient_name").NotEmpty(),
		field.String("patient_id").NotEmpty(),
		field.String("capture_date").NotEmpty(),
	}
}

func (Encounter) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE encounter -> ONE archive (FK: encounters.archive_id)
		edge.From("archive", Archive.Type).
			Ref("encounter").
			Field("archive_id").
			Required().
			Unique(),
		// ONE encounter -> MANY files / findings
		edge.To("files", EncounterFile.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("retinopathy_findings", RetinopathyFinding.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("glaucoma_findings", GlaucomaFinding.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
