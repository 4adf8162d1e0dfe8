package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSessionDir_DecomposesNameIDDate(t *testing.T) {
	members := []string{
		"Jane Doe_12345_20240101/fundus_left.jpg",
		"Jane Doe_12345_20240101/report.pdf",
	}

	dir, meta, err := FindSessionDir(members)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe_12345_20240101", dir)
	assert.Equal(t, "Jane Doe", meta.PatientName)
	assert.Equal(t, "12345", meta.PatientID)
	assert.Equal(t, "20240101", meta.CaptureDate)
}

func TestFindSessionDir_MultiPartName(t *testing.T) {
	_, meta, err := FindSessionDir([]string{"Mary Jane Watson_77_20231231/x.png"})
	require.NoError(t, err)
	assert.Equal(t, "Mary Jane Watson", meta.PatientName)
	assert.Equal(t, "77", meta.PatientID)
	assert.Equal(t, "20231231", meta.CaptureDate)
}

func TestFindSessionDir_NestedUnderWrapperDirs(t *testing.T) {
	// The session folder is rarely at the top level; exports wrap it in
	// arbitrary directories.
	members := []string{
		"export/batch-7/John Smith_99_20230505/oct.jpg",
		"export/batch-7/John Smith_99_20230505/report.pdf",
	}

	dir, meta, err := FindSessionDir(members)
	require.NoError(t, err)
	assert.Equal(t, "export/batch-7/John Smith_99_20230505", dir)
	assert.Equal(t, "John Smith", meta.PatientName)
}

func TestFindSessionDir_NoQualifyingDirectory(t *testing.T) {
	members := []string{
		"photos/img1.jpg",
		"docs/report.pdf",
		"one_two/file.png", // only 2 underscore-delimited parts
	}

	_, _, err := FindSessionDir(members)
	require.ErrorIs(t, err, ErrNoSessionDirectory)
}

func TestFindSessionDir_EmptyArchive(t *testing.T) {
	_, _, err := FindSessionDir(nil)
	require.ErrorIs(t, err, ErrNoSessionDirectory)
}

func TestFindSessionDir_ShallowestFirstThenLexical(t *testing.T) {
	// Both directories qualify; the shallower one must win regardless of
	// member enumeration order.
	members := []string{
		"wrap/Zed Deep_2_20240202/img.jpg",
		"Amy Top_1_20240101/img.jpg",
	}

	dir, meta, err := FindSessionDir(members)
	require.NoError(t, err)
	assert.Equal(t, "Amy Top_1_20240101", dir)
	assert.Equal(t, "1", meta.PatientID)

	// Same depth: lexical order decides.
	members = []string{
		"B Later_2_20240202/img.jpg",
		"A First_1_20240101/img.jpg",
	}
	dir, _, err = FindSessionDir(members)
	require.NoError(t, err)
	assert.Equal(t, "A First_1_20240101", dir)
}

func TestFindSessionDir_MatchesFinalSegmentOnly(t *testing.T) {
	// Underscores inherited from parent segments must not qualify a child
	// whose own name has too few parts.
	members := []string{
		"a_b_c-wrong/sub/img.jpg", // parent qualifies, not "sub"
	}
	dir, _, err := FindSessionDir(members)
	require.NoError(t, err)
	assert.Equal(t, "a_b_c-wrong", dir)

	// A child directory can qualify even when its parents never do.
	members = []string{
		"plain/inner/Jane Doe_12345_20240101/img.jpg",
	}
	dir, meta, err := FindSessionDir(members)
	require.NoError(t, err)
	assert.Equal(t, "plain/inner/Jane Doe_12345_20240101", dir)
	assert.Equal(t, "Jane Doe", meta.PatientName)
}

func TestFindSessionDir_ExplicitDirectoryEntry(t *testing.T) {
	// Some tools write explicit directory members (trailing slash) with no
	// files beneath them.
	dir, _, err := FindSessionDir([]string{"Jane Doe_12345_20240101/"})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe_12345_20240101", dir)
}
