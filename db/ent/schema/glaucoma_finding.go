package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// GlaucomaFinding stores the VCDR measurements and screening result mined from
// a Glaucoma Screening report page. Either eye's value may be absent when the
// report only covers one eye.
type GlaucomaFinding struct{ ent.Schema }

func (GlaucomaFinding) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "glaucoma_findings"},
	}
}

func (GlaucomaFinding) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("encounter_id", uuid.UUID{}),
		field.Float("vcdr_right").Optional().Nillable(),
		field.Float("vcdr_left").Optional().Nillable(),
		field.String("result").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (GlaucomaFinding) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("encounter", Encounter.Type).
			Ref("glaucoma_findings").
			Field("encounter_id").
			Required().
			Unique(),
	}
}

func (GlaucomaFinding) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("encounter_id"),
	}
}
