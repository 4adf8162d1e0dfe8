package entity

import (
	"github.com/google/uuid"
)

// Encounter represents a patient capture session for data transfer between layers.
type Encounter struct {
	ID          uuid.UUID `json:"id"`
	ArchiveID   uuid.UUID `json:"archive_id"`
	PatientName string    `json:"patient_name"`
	PatientID   string    `json:"patient_id"`
	CaptureDate string    `json:"capture_date"`
}

// EncounterSummary joins an encounter with its findings for reporting.
type EncounterSummary struct {
	Encounter
	ArchiveFilename string
	FileCount       int
	Retinopathy     *RetinopathyFields
	Glaucoma        *GlaucomaFields
}
