package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
	"github.com/retinalab/screening-tracker/constants"
	"github.com/retinalab/screening-tracker/db/ent/schema/utils"
)

// EncounterFile is one file extracted from an archive, already renamed to its
// deterministic destination filename.
type EncounterFile struct{ ent.Schema }

func (EncounterFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "encounter_files"},
	}
}

func (EncounterFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("encounter_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		field.String("file_type").NotEmpty().
			Validate(utils.EnumValidator(constants.FileKinds...)),
		field.Bool("ocr_processed").Default(false),
	}
}

func (EncounterFile) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY files -> ONE encounter (FK: encounter_files.encounter_id)
		edge.From("encounter", Encounter.Type).
			Ref("files").
			Field("encounter_id").
			Required().
			Unique(),
	}
}

func (EncounterFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("encounter_id"),
		index.Fields("file_type", "ocr_processed"),
	}
}
