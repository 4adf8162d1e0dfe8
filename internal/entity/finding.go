package entity

// RetinopathyFields is the structured output of the diabetic retinopathy rule.
type RetinopathyFields struct {
	Result string `json:"result"`
}

// GlaucomaFields is the structured output of the glaucoma screening rule.
// VCDR values are nil when the report page did not carry them.
type GlaucomaFields struct {
	VCDRRight *float64 `json:"vcdr_right,omitempty"`
	VCDRLeft  *float64 `json:"vcdr_left,omitempty"`
	Result    string   `json:"result"`
}

// FindingsBatch accumulates the findings mined from one document's pages.
// At most one finding of each kind survives per batch (first page wins).
type FindingsBatch struct {
	Retinopathy *RetinopathyFields `json:"retinopathy,omitempty"`
	Glaucoma    *GlaucomaFields    `json:"glaucoma,omitempty"`
}

// Empty reports whether the batch carries no findings at all.
func (b FindingsBatch) Empty() bool {
	return b.Retinopathy == nil && b.Glaucoma == nil
}
