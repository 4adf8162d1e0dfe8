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

// RetinopathyFinding stores the diagnostic result mined from a Diabetic
// Retinopathy report page. The value is stored as-observed.
type RetinopathyFinding struct{ ent.Schema }

func (RetinopathyFinding) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "retinopathy_findings"},
	}
}

func (RetinopathyFinding) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("encounter_id", uuid.UUID{}),
		field.String("result").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (RetinopathyFinding) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("encounter", Encounter.Type).
			Ref("retinopathy_findings").
			Field("encounter_id").
			Required().
			Unique(),
	}
}

func (RetinopathyFinding) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("encounter_id"),
	}
}
