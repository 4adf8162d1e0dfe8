package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retinalab/screening-tracker/internal/common"
	"github.com/retinalab/screening-tracker/internal/entity"
	"github.com/retinalab/screening-tracker/internal/repository"
)

type MockArchiveRepository struct {
	ExistsByFingerprintFunc func(ctx context.Context, fingerprint string) (bool, error)
	CreateWithEncounterFunc func(ctx context.Context, req *repository.CreateArchiveRequest) (*entity.Encounter, error)
}

var _ repository.ArchiveRepository = (*MockArchiveRepository)(nil)

func (m *MockArchiveRepository) ExistsByFingerprint(ctx context.Context, fingerprint string) (bool, error) {
	return m.ExistsByFingerprintFunc(ctx, fingerprint)
}

func (m *MockArchiveRepository) CreateWithEncounter(ctx context.Context, req *repository.CreateArchiveRequest) (*entity.Encounter, error) {
	return m.CreateWithEncounterFunc(ctx, req)
}

func sessionArchive(t *testing.T, dirs, name string) string {
	t.Helper()
	p := filepath.Join(dirs, name)
	buildZip(t, p, []zipEntry{
		{"Jane Doe_12345_20240101/scan.jpg", []byte("jpeg-bytes")},
		{"Jane Doe_12345_20240101/report.pdf", []byte("pdf-bytes")},
	})
	return p
}

func TestPipelineRun_Success(t *testing.T) {
	dirs := testDirs(t)
	sessionArchive(t, dirs.UploadDir, "session.zip")

	var gotReq *repository.CreateArchiveRequest
	repo := &MockArchiveRepository{
		ExistsByFingerprintFunc: func(_ context.Context, _ string) (bool, error) {
			return false, nil
		},
		CreateWithEncounterFunc: func(_ context.Context, req *repository.CreateArchiveRequest) (*entity.Encounter, error) {
			gotReq = req
			return &entity.Encounter{PatientID: req.PatientID}, nil
		},
	}
	p := NewPipeline(repo, NewExtractor(dirs, nil), dirs, nil)

	stats, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RunStats{Scanned: 1, Processed: 1}, stats)

	require.NotNil(t, gotReq)
	assert.Equal(t, "session.zip", gotReq.Filename)
	assert.Len(t, gotReq.Fingerprint, 64)
	assert.Equal(t, "Jane Doe", gotReq.PatientName)
	assert.Equal(t, "12345", gotReq.PatientID)
	assert.Equal(t, "20240101", gotReq.CaptureDate)
	require.Len(t, gotReq.Files, 2)
	assert.Equal(t, "12345_Jane_Doe_20240101_scan.jpg", gotReq.Files[0].Filename)
	assert.Equal(t, "image", gotReq.Files[0].FileType)
	assert.Equal(t, "12345_Jane_Doe_20240101_report.pdf", gotReq.Files[1].Filename)
	assert.Equal(t, "document", gotReq.Files[1].FileType)

	assert.FileExists(t, filepath.Join(dirs.ProcessedDir, "session.zip"))
	assert.NoFileExists(t, filepath.Join(dirs.UploadDir, "session.zip"))
	assert.FileExists(t, filepath.Join(dirs.ImagesDir, "12345_Jane_Doe_20240101_scan.jpg"))
	assert.FileExists(t, filepath.Join(dirs.DocumentsDir, "12345_Jane_Doe_20240101_report.pdf"))
}

func TestPipelineRun_DuplicateSkipped(t *testing.T) {
	dirs := testDirs(t)
	sessionArchive(t, dirs.UploadDir, "dup.zip")

	repo := &MockArchiveRepository{
		ExistsByFingerprintFunc: func(_ context.Context, _ string) (bool, error) {
			return true, nil
		},
		CreateWithEncounterFunc: func(_ context.Context, _ *repository.CreateArchiveRequest) (*entity.Encounter, error) {
			t.Fatal("duplicate archive must not be committed")
			return nil, nil
		},
	}
	p := NewPipeline(repo, NewExtractor(dirs, nil), dirs, nil)

	stats, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RunStats{Scanned: 1, Skipped: 1}, stats)

	// a skipped duplicate stays where it was
	assert.FileExists(t, filepath.Join(dirs.UploadDir, "dup.zip"))

	err = p.ProcessArchive(context.Background(), filepath.Join(dirs.UploadDir, "dup.zip"))
	assert.ErrorIs(t, err, common.ErrDuplicate)
}

func TestPipelineRun_NoSessionDirectory(t *testing.T) {
	dirs := testDirs(t)
	buildZip(t, filepath.Join(dirs.UploadDir, "flat.zip"), []zipEntry{
		{"loose.jpg", []byte("no qualifying directory")},
	})

	repo := &MockArchiveRepository{
		ExistsByFingerprintFunc: func(_ context.Context, _ string) (bool, error) {
			return false, nil
		},
		CreateWithEncounterFunc: func(_ context.Context, _ *repository.CreateArchiveRequest) (*entity.Encounter, error) {
			t.Fatal("nothing to commit without a session directory")
			return nil, nil
		},
	}
	p := NewPipeline(repo, NewExtractor(dirs, nil), dirs, nil)

	stats, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RunStats{Scanned: 1, Failed: 1}, stats)
	assert.FileExists(t, filepath.Join(dirs.ErrorDir, "flat.zip"))
}

func TestPipelineRun_CommitFailureCleansUp(t *testing.T) {
	dirs := testDirs(t)
	sessionArchive(t, dirs.UploadDir, "broken.zip")

	repo := &MockArchiveRepository{
		ExistsByFingerprintFunc: func(_ context.Context, _ string) (bool, error) {
			return false, nil
		},
		CreateWithEncounterFunc: func(_ context.Context, _ *repository.CreateArchiveRequest) (*entity.Encounter, error) {
			return nil, errors.New("commit: database is locked")
		},
	}
	p := NewPipeline(repo, NewExtractor(dirs, nil), dirs, nil)

	stats, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RunStats{Scanned: 1, Failed: 1}, stats)

	// extracted files were compensatingly removed, archive routed to error area
	imgEntries, err := os.ReadDir(dirs.ImagesDir)
	require.NoError(t, err)
	assert.Empty(t, imgEntries)
	docEntries, err := os.ReadDir(dirs.DocumentsDir)
	require.NoError(t, err)
	assert.Empty(t, docEntries)
	assert.FileExists(t, filepath.Join(dirs.ErrorDir, "broken.zip"))
}

func TestPipelineRun_UnreadableArchive(t *testing.T) {
	dirs := testDirs(t)
	require.NoError(t, os.WriteFile(filepath.Join(dirs.UploadDir, "junk.zip"), []byte("not a zip"), 0o644))

	repo := &MockArchiveRepository{
		ExistsByFingerprintFunc: func(_ context.Context, _ string) (bool, error) {
			return false, nil
		},
	}
	p := NewPipeline(repo, NewExtractor(dirs, nil), dirs, nil)

	stats, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RunStats{Scanned: 1, Failed: 1}, stats)
	assert.FileExists(t, filepath.Join(dirs.ErrorDir, "junk.zip"))
}
