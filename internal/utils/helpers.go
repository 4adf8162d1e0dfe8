package utils

import (
	"github.com/retinalab/screening-tracker/gen/ent"
	"github.com/retinalab/screening-tracker/internal/entity"
)

func ToArchive(e *ent.Archive) *entity.Archive {
	return &entity.Archive{
		ID:          e.ID,
		Filename:    e.Filename,
		ContentHash: e.ContentHash,
		ProcessedAt: e.ProcessedAt,
	}
}

func ToEncounter(e *ent.Encounter) *entity.Encounter {
	return &entity.Encounter{
		ID:          e.ID,
		ArchiveID:   e.ArchiveID,
		PatientName: e.PatientName,
		PatientID:   e.PatientID,
		CaptureDate: e.CaptureDate,
	}
}

func ToEncounterFile(e *ent.EncounterFile) *entity.EncounterFile {
	return &entity.EncounterFile{
		ID:           e.ID,
		EncounterID:  e.EncounterID,
		Filename:     e.Filename,
		FileType:     e.FileType,
		OCRProcessed: e.OcrProcessed,
	}
}

func ToRetinopathyFields(e *ent.RetinopathyFinding) *entity.RetinopathyFields {
	return &entity.RetinopathyFields{
		Result: e.Result,
	}
}

func ToGlaucomaFields(e *ent.GlaucomaFinding) *entity.GlaucomaFields {
	return &entity.GlaucomaFields{
		VCDRRight: e.VcdrRight,
		VCDRLeft:  e.VcdrLeft,
		Result:    e.Result,
	}
}
