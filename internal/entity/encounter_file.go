package entity

import (
	"github.com/google/uuid"
)

// EncounterFile represents an extracted file for data transfer between layers.
type EncounterFile struct {
	ID           uuid.UUID `json:"id"`
	EncounterID  uuid.UUID `json:"encounter_id"`
	Filename     string    `json:"filename"`
	FileType     string    `json:"file_type"`
	OCRProcessed bool      `json:"ocr_processed"`
}
