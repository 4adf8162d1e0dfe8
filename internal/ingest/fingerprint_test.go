package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint_StableAcrossNames(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "upload-a.zip")
	b := filepath.Join(dir, "renamed-copy.zip")
	content := []byte("identical archive bytes")
	require.NoError(t, os.WriteFile(a, content, 0o644))
	require.NoError(t, os.WriteFile(b, content, 0o644))

	ha, err := FingerprintFile(a)
	require.NoError(t, err)
	hb, err := FingerprintFile(b)
	require.NoError(t, err)

	assert.Equal(t, ha, hb, "identical bytes must fingerprint identically regardless of filename")
	assert.Len(t, ha, 64, "sha-256 hex digest")
}

func TestFingerprint_DiffersForDifferentContent(t *testing.T) {
	ha, err := Fingerprint(strings.NewReader("archive one"))
	require.NoError(t, err)
	hb, err := Fingerprint(strings.NewReader("archive two"))
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb)
}

func TestFingerprintFile_Missing(t *testing.T) {
	_, err := FingerprintFile(filepath.Join(t.TempDir(), "nope.zip"))
	require.Error(t, err)
}
