package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasRetinopathyReport(t *testing.T) {
	assert.True(t, HasRetinopathyReport("Diabetic Retinopathy Report\nsome body text"))
	assert.False(t, HasRetinopathyReport("Glaucoma Screening Report\nsome body text"))
}

func TestParseRetinopathy_FirstLineAfterLabel(t *testing.T) {
	text := "Diabetic Retinopathy Report\n" +
		"Patient: Jane Doe\n" +
		"Result DR: Moderate NPDR\n" +
		"Follow up in 6 months\n"

	fields, ok := ParseRetinopathy(text)
	require.True(t, ok)
	assert.Equal(t, "Moderate NPDR", fields.Result)
}

func TestParseRetinopathy_CaseInsensitiveLabel(t *testing.T) {
	fields, ok := ParseRetinopathy("result dr:   No DR detected  ")
	require.True(t, ok)
	assert.Equal(t, "No DR detected", fields.Result)
}

func TestParseRetinopathy_LabelOnOwnLine(t *testing.T) {
	// OCR sometimes breaks the line right after the label; the value then
	// comes from the next line.
	fields, ok := ParseRetinopathy("Result DR:\nSevere NPDR\nmore text")
	require.True(t, ok)
	assert.Equal(t, "Severe NPDR", fields.Result)
}

func TestParseRetinopathy_LabelAbsent(t *testing.T) {
	fields, ok := ParseRetinopathy("nothing relevant on this page")
	assert.False(t, ok)
	assert.Nil(t, fields)
}
