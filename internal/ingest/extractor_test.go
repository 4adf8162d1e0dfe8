package ingest

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retinalab/screening-tracker/constants"
	"github.com/retinalab/screening-tracker/internal/common"
)

type zipEntry struct {
	name string
	data []byte
}

func buildZip(t *testing.T, path string, entries []zipEntry) {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.Create(e.name)
		require.NoError(t, err)
		_, err = w.Write(e.data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func testDirs(t *testing.T) common.DirsConfig {
	t.Helper()
	dirs := common.DirsConfig{
		DataDir:      t.TempDir(),
		UploadDir:    t.TempDir(),
		ImagesDir:    t.TempDir(),
		DocumentsDir: t.TempDir(),
		ProcessedDir: t.TempDir(),
		ErrorDir:     t.TempDir(),
	}
	return dirs
}

func openZip(t *testing.T, path string) *zip.ReadCloser {
	t.Helper()
	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = zr.Close() })
	return zr
}

func TestDestinationName_Deterministic(t *testing.T) {
	meta := SessionMeta{PatientName: "Jane Doe", PatientID: "12345", CaptureDate: "20240101"}
	assert.Equal(t, "12345_Jane_Doe_20240101_scan.jpg", DestinationName(meta, "scan.jpg"))
}

func TestExtractArchive_ClassifiesAndRenames(t *testing.T) {
	dirs := testDirs(t)
	archivePath := filepath.Join(dirs.UploadDir, "session.zip")
	buildZip(t, archivePath, []zipEntry{
		{"Jane Doe_12345_20240101/scan.jpg", []byte("jpeg-bytes")},
		{"Jane Doe_12345_20240101/report.pdf", []byte("pdf-bytes")},
		{"Jane Doe_12345_20240101/notes.txt", []byte("ignored")},
		{"Jane Doe_12345_20240101/oct.PNG", []byte("png-bytes")}, // extension case-insensitive
		{"outside/stray.jpg", []byte("outside session dir")},
	})

	zr := openZip(t, archivePath)
	meta := SessionMeta{PatientName: "Jane Doe", PatientID: "12345", CaptureDate: "20240101"}
	x := NewExtractor(dirs, nil)

	files, written, err := x.ExtractArchive(&zr.Reader, "Jane Doe_12345_20240101", meta)
	require.NoError(t, err)

	// archive-member order, unknown extensions and out-of-dir members skipped
	require.Len(t, files, 3)
	assert.Equal(t, "12345_Jane_Doe_20240101_scan.jpg", files[0].Filename)
	assert.Equal(t, constants.KindImage, files[0].FileType)
	assert.Equal(t, "12345_Jane_Doe_20240101_report.pdf", files[1].Filename)
	assert.Equal(t, constants.KindDocument, files[1].FileType)
	assert.Equal(t, "12345_Jane_Doe_20240101_oct.PNG", files[2].Filename)

	require.Len(t, written, 3)
	img, err := os.ReadFile(filepath.Join(dirs.ImagesDir, files[0].Filename))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), img)
	doc, err := os.ReadFile(filepath.Join(dirs.DocumentsDir, files[1].Filename))
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf-bytes"), doc)

	// nothing else landed in either area
	imgEntries, err := os.ReadDir(dirs.ImagesDir)
	require.NoError(t, err)
	assert.Len(t, imgEntries, 2)
	docEntries, err := os.ReadDir(dirs.DocumentsDir)
	require.NoError(t, err)
	assert.Len(t, docEntries, 1)
}

func TestExtractArchive_OnlyUnrecognizedExtensions(t *testing.T) {
	dirs := testDirs(t)
	archivePath := filepath.Join(dirs.UploadDir, "nothing.zip")
	buildZip(t, archivePath, []zipEntry{
		{"A B_1_2/readme.md", []byte("x")},
		{"A B_1_2/data.csv", []byte("y")},
	})

	zr := openZip(t, archivePath)
	x := NewExtractor(dirs, nil)
	files, written, err := x.ExtractArchive(&zr.Reader, "A B_1_2", SessionMeta{PatientName: "A B", PatientID: "1", CaptureDate: "2"})
	require.NoError(t, err, "unrecognized extensions are skipped, not an error")
	assert.Empty(t, files)
	assert.Empty(t, written)
}
