package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retinalab/screening-tracker/constants"
)

func TestHasGlaucomaReport(t *testing.T) {
	assert.True(t, HasGlaucomaReport("Glaucoma Screening Report\nbody"))
	assert.False(t, HasGlaucomaReport("Diabetic Retinopathy Report\nbody"))
}

func TestParseGlaucoma_TwoValuesRightThenLeft(t *testing.T) {
	text := "Glaucoma Screening Report\n" +
		"SCREENING RESULT\n" +
		"VCDR - 0.4\n" +
		"VCDR - 0.6\n" +
		"No Referable Glaucoma - routine recall\n"

	fields := ParseGlaucoma(text)
	require.NotNil(t, fields.VCDRRight)
	require.NotNil(t, fields.VCDRLeft)
	assert.Equal(t, 0.4, *fields.VCDRRight)
	assert.Equal(t, 0.6, *fields.VCDRLeft)
	assert.Equal(t, "No Referable Glaucoma - routine recall", fields.Result)
}

func TestParseGlaucoma_SingleValueLeftEyeMentioned(t *testing.T) {
	text := "SCREENING RESULT\nLeft eye only.\nVCDR - 0.7\n"

	fields := ParseGlaucoma(text)
	assert.Nil(t, fields.VCDRRight)
	require.NotNil(t, fields.VCDRLeft)
	assert.Equal(t, 0.7, *fields.VCDRLeft)
}

func TestParseGlaucoma_SingleValueDefaultsToRight(t *testing.T) {
	text := "SCREENING RESULT\nVCDR - 0.3\n"

	fields := ParseGlaucoma(text)
	require.NotNil(t, fields.VCDRRight)
	assert.Equal(t, 0.3, *fields.VCDRRight)
	assert.Nil(t, fields.VCDRLeft)
}

func TestParseGlaucoma_MisspelledCategoryPhrase(t *testing.T) {
	text := "SCREENING RESULT\nVCDR - 0.8\nReferable Glacuoma - Right Eye\n"

	fields := ParseGlaucoma(text)
	assert.Equal(t, "Referable Glacuoma - Right Eye", fields.Result)
}

func TestParseGlaucoma_NoCategoryPhrase(t *testing.T) {
	text := "SCREENING RESULT\nVCDR - 0.5\n"

	fields := ParseGlaucoma(text)
	assert.Equal(t, constants.ResultUnavailable, fields.Result)
}

func TestParseGlaucoma_NoSectionHeader(t *testing.T) {
	text := "Glaucoma Screening Report\nVCDR - 0.5\nReferable Glaucoma - Left Eye\n"

	fields := ParseGlaucoma(text)
	assert.Nil(t, fields.VCDRRight)
	assert.Nil(t, fields.VCDRLeft)
	assert.Equal(t, constants.ResultUnavailable, fields.Result)
}

func TestParseGlaucoma_TextBeforeHeaderIgnored(t *testing.T) {
	text := "Intro mentions VCDR - 0.9 in passing.\n" +
		"SCREENING RESULT\nVCDR - 0.4\nVCDR - 0.6\n"

	fields := ParseGlaucoma(text)
	require.NotNil(t, fields.VCDRRight)
	require.NotNil(t, fields.VCDRLeft)
	assert.Equal(t, 0.4, *fields.VCDRRight)
	assert.Equal(t, 0.6, *fields.VCDRLeft)
}
