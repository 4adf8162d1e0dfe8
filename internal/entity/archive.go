package entity

import (
	"time"

	"github.com/google/uuid"
)

// Archive represents a processed input archive for data transfer between layers.
type Archive struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	ContentHash string    `json:"content_hash"`
	ProcessedAt time.Time `json:"processed_at"`
}
