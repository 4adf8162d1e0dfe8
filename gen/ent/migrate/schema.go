// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArchivesColumns holds the columns for the "archives" table.
	ArchivesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "processed_at", Type: field.TypeTime},
	}
	// ArchivesTable holds the schema information for the "archives" table.
	ArchivesTable = &schema.Table{
		Name:       "archives",
		Columns:    ArchivesColumns,
		PrimaryKey: []*schema.Column{ArchivesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "archive_content_hash",
				Unique:  true,
				Columns: []*schema.Column{ArchivesColumns[2]},
			},
		},
	}
	// EncountersColumns holds the columns for the "encounters" table.
	EncountersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "patient_name", Type: field.TypeString},
		{Name: "patient_id", Type: field.TypeString},
		{Name: "capture_date", Type: field.TypeString},
		{Name: "archive_id", Type: field.TypeUUID, Unique: true},
	}
	// EncountersTable holds the schema information for the "encounters" table.
	EncountersTable = &schema.Table{
		Name:       "encounters",
		Columns:    EncountersColumns,
		PrimaryKey: []*schema.Column{EncountersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "encounters_archives_encounter",
				Columns:    []*schema.Column{EncountersColumns[4]},
				RefColumns: []*schema.Column{ArchivesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// EncounterFilesColumns holds the columns for the "encounter_files" table.
	EncounterFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_type", Type: field.TypeString},
		{Name: "ocr_processed", Type: field.TypeBool, Default: false},
		{Name: "encounter_id", Type: field.TypeUUID},
	}
	// EncounterFilesTable holds the schema information for the "encounter_files" table.
	EncounterFilesTable = &schema.Table{
		Name:       "encounter_files",
		Columns:    EncounterFilesColumns,
		PrimaryKey: []*schema.Column{EncounterFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "encounter_files_encounters_files",
				Columns:    []*schema.Column{EncounterFilesColumns[4]},
				RefColumns: []*schema.Column{EncountersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "encounterfile_encounter_id",
				Unique:  false,
				Columns: []*schema.Column{EncounterFilesColumns[4]},
			},
			{
				Name:    "encounterfile_file_type_ocr_processed",
				Unique:  false,
				Columns: []*schema.Column{EncounterFilesColumns[2], EncounterFilesColumns[3]},
			},
		},
	}
	// GlaucomaFindingsColumns holds the columns for the "glaucoma_findings" table.
	GlaucomaFindingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "vcdr_right", Type: field.TypeFloat64, Nullable: true},
		{Name: "vcdr_left", Type: field.TypeFloat64, Nullable: true},
		{Name: "result", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "encounter_id", Type: field.TypeUUID},
	}
	// GlaucomaFindingsTable holds the schema information for the "glaucoma_findings" table.
	GlaucomaFindingsTable = &schema.Table{
		Name:       "glaucoma_findings",
		Columns:    GlaucomaFindingsColumns,
		PrimaryKey: []*schema.Column{GlaucomaFindingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "glaucoma_findings_encounters_glaucoma_findings",
				Columns:    []*schema.Column{GlaucomaFindingsColumns[4]},
				RefColumns: []*schema.Column{EncountersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "glaucomafinding_encounter_id",
				Unique:  false,
				Columns: []*schema.Column{GlaucomaFindingsColumns[4]},
			},
		},
	}
	// RetinopathyFindingsColumns holds the columns for the "retinopathy_findings" table.
	RetinopathyFindingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "result", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "encounter_id", Type: field.TypeUUID},
	}
	// RetinopathyFindingsTable holds the schema information for the "retinopathy_findings" table.
	RetinopathyFindingsTable = &schema.Table{
		Name:       "retinopathy_findings",
		Columns:    RetinopathyFindingsColumns,
		PrimaryKey: []*schema.Column{RetinopathyFindingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "retinopathy_findings_encounters_retinopathy_findings",
				Columns:    []*schema.Column{RetinopathyFindingsColumns[2]},
				RefColumns: []*schema.Column{EncountersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "retinopathyfinding_encounter_id",
				Unique:  false,
				Columns: []*schema.Column{RetinopathyFindingsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArchivesTable,
		EncountersTable,
		EncounterFilesTable,
		GlaucomaFindingsTable,
		RetinopathyFindingsTable,
	}
)

func init() {
	ArchivesTable.Annotation = &entsql.Annotation{
		Table: "archives",
	}
	EncountersTable.ForeignKeys[0].RefTable = ArchivesTable
	EncountersTable.Annotation = &entsql.Annotation{
		Table: "encounters",
	}
	EncounterFilesTable.ForeignKeys[0].RefTable = EncountersTable
	EncounterFilesTable.Annotation = &entsql.Annotation{
		Table: "encounter_files",
	}
	GlaucomaFindingsTable.ForeignKeys[0].RefTable = EncountersTable
	GlaucomaFindingsTable.Annotation = &entsql.Annotation{
		Table: "glaucoma_findings",
	}
	RetinopathyFindingsTable.ForeignKeys[0].RefTable = EncountersTable
	RetinopathyFindingsTable.Annotation = &entsql.Annotation{
		Table: "retinopathy_findings",
	}
}
