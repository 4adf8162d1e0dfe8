package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Archive is one successfully processed input ZIP. The content hash is the
// dedup key: re-submitting byte-identical archives is a no-op.
type Archive struct{ ent.Schema }

func (Archive) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "archives"},
	}
}

func (Archive) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("filename").NotEmpty(),
		field.String("content_hash").NotEmpty().
			Unique().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("processed_at").Default(time.Now).Immutable(),
	}
}

func (Archive) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE archive -> ONE encounter
		edge.To("encounter", Encounter.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Archive) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_hash").Unique(),
	}
}
