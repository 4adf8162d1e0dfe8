package report

// BuildFindingsJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. Mined findings batches are validated against it before being
// handed to the store layer.
func BuildFindingsJSONSchema() map[string]any {
	// Stored as-observed: noisy OCR can read a value outside the anatomic
	// range, and the record keeps what the page said.
	vcdrProp := map[string]any{"type": "number"}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"retinopathy": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					// Stored as-observed; an empty capture is valid.
					"result": map[string]any{"type": "string"},
				},
				"required": []string{"result"},
			},
			"glaucoma": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"vcdr_right": vcdrProp,
					"vcdr_left":  vcdrProp,
					"result":     map[string]any{"type": "string", "minLength": 1},
				},
				"required": []string{"result"},
			},
		},
	}
}
