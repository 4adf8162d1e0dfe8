package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retinalab/screening-tracker/internal/entity"
)

func float64Ptr(v float64) *float64 { return &v }

func TestValidateBatch_FullBatch(t *testing.T) {
	batch := entity.FindingsBatch{
		Retinopathy: &entity.RetinopathyFields{Result: "Moderate NPDR"},
		Glaucoma: &entity.GlaucomaFields{
			VCDRRight: float64Ptr(0.4),
			VCDRLeft:  float64Ptr(0.6),
			Result:    "No Referable Glaucoma - routine recall",
		},
	}
	assert.NoError(t, ValidateBatch(batch))
}

func TestValidateBatch_EmptyBatch(t *testing.T) {
	assert.NoError(t, ValidateBatch(entity.FindingsBatch{}))
}

func TestValidateBatch_NoisyVCDRStoredAsObserved(t *testing.T) {
	// OCR can misread a digit and produce a value outside the anatomic
	// range; the batch still validates and the value is kept as observed.
	fields := ParseGlaucoma("SCREENING RESULT\nVCDR - 1.2\nVCDR - 0.6\n")
	require.NotNil(t, fields.VCDRRight)
	assert.Equal(t, 1.2, *fields.VCDRRight)

	assert.NoError(t, ValidateBatch(entity.FindingsBatch{Glaucoma: fields}))
}

func TestValidateBatch_EmptyGlaucomaResult(t *testing.T) {
	batch := entity.FindingsBatch{
		Glaucoma: &entity.GlaucomaFields{Result: ""},
	}
	assert.Error(t, ValidateBatch(batch))
}
