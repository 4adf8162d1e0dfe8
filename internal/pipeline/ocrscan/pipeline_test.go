package ocrscan

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retinalab/screening-tracker/internal/entity"
	"github.com/retinalab/screening-tracker/internal/extract"
	"github.com/retinalab/screening-tracker/internal/repository"
)

type MockFileRepository struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*entity.EncounterFile, error)
	ListDocumentsFunc func(ctx context.Context, includeProcessed bool) ([]*entity.EncounterFile, error)
}

var _ repository.EncounterFileRepository = (*MockFileRepository)(nil)

func (m *MockFileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.EncounterFile, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *MockFileRepository) ListDocuments(ctx context.Context, includeProcessed bool) ([]*entity.EncounterFile, error) {
	return m.ListDocumentsFunc(ctx, includeProcessed)
}

type MockFindingRepository struct {
	SaveDocumentFindingsFunc func(ctx context.Context, fileID, encounterID uuid.UUID, batch entity.FindingsBatch) error
}

var _ repository.FindingRepository = (*MockFindingRepository)(nil)

func (m *MockFindingRepository) SaveDocumentFindings(ctx context.Context, fileID, encounterID uuid.UUID, batch entity.FindingsBatch) error {
	return m.SaveDocumentFindingsFunc(ctx, fileID, encounterID, batch)
}

// fakePageSource serves canned text per page instead of rendering and
// recognizing real documents.
type fakePageSource struct {
	pageText     map[string][]string // document path -> text per page
	renderErr    error
	recognizeErr error
	cleanedUp    bool
}

var _ extract.PageSource = (*fakePageSource)(nil)

func (f *fakePageSource) RenderPages(_ context.Context, documentPath string) ([]string, func(), error) {
	if f.renderErr != nil {
		return nil, func() {}, f.renderErr
	}
	texts := f.pageText[documentPath]
	pages := make([]string, len(texts))
	for i := range texts {
		pages[i] = documentPath + "#" + texts[i]
	}
	return pages, func() { f.cleanedUp = true }, nil
}

func (f *fakePageSource) Recognize(_ context.Context, imagePath string) (string, error) {
	if f.recognizeErr != nil {
		return "", f.recognizeErr
	}
	_, text, _ := strings.Cut(imagePath, "#")
	return text, nil
}

func docRecord(t *testing.T, dir, filename string) *entity.EncounterFile {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte("%PDF-1.4"), 0o644))
	return &entity.EncounterFile{
		ID:          uuid.New(),
		EncounterID: uuid.New(),
		Filename:    filename,
		FileType:    "document",
	}
}

func TestPipelineRun_MinesBothReportKinds(t *testing.T) {
	dir := t.TempDir()
	doc := docRecord(t, dir, "12345_Jane_Doe_20240101_report.pdf")

	files := &MockFileRepository{
		ListDocumentsFunc: func(_ context.Context, includeProcessed bool) ([]*entity.EncounterFile, error) {
			assert.False(t, includeProcessed)
			return []*entity.EncounterFile{doc}, nil
		},
	}
	var saved *entity.FindingsBatch
	findings := &MockFindingRepository{
		SaveDocumentFindingsFunc: func(_ context.Context, fileID, encounterID uuid.UUID, batch entity.FindingsBatch) error {
			assert.Equal(t, doc.ID, fileID)
			assert.Equal(t, doc.EncounterID, encounterID)
			saved = &batch
			return nil
		},
	}
	source := &fakePageSource{pageText: map[string][]string{
		filepath.Join(dir, doc.Filename): {
			"Diabetic Retinopathy Report\nResult DR: Moderate NPDR\n",
			"Glaucoma Screening Report\nSCREENING RESULT\nVCDR - 0.4\nVCDR - 0.6\nNo Referable Glaucoma - routine recall\n",
		},
	}}

	p := NewPipeline(files, findings, source, dir, nil)
	stats, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RunStats{Documents: 1, Succeeded: 1}, stats)
	assert.True(t, source.cleanedUp)

	require.NotNil(t, saved)
	require.NotNil(t, saved.Retinopathy)
	assert.Equal(t, "Moderate NPDR", saved.Retinopathy.Result)
	require.NotNil(t, saved.Glaucoma)
	require.NotNil(t, saved.Glaucoma.VCDRRight)
	assert.Equal(t, 0.4, *saved.Glaucoma.VCDRRight)
	require.NotNil(t, saved.Glaucoma.VCDRLeft)
	assert.Equal(t, 0.6, *saved.Glaucoma.VCDRLeft)
	assert.Equal(t, "No Referable Glaucoma - routine recall", saved.Glaucoma.Result)
}

func TestPipelineRun_FirstPageWinsPerKind(t *testing.T) {
	dir := t.TempDir()
	doc := docRecord(t, dir, "doc.pdf")

	files := &MockFileRepository{
		ListDocumentsFunc: func(_ context.Context, _ bool) ([]*entity.EncounterFile, error) {
			return []*entity.EncounterFile{doc}, nil
		},
	}
	var saved *entity.FindingsBatch
	findings := &MockFindingRepository{
		SaveDocumentFindingsFunc: func(_ context.Context, _, _ uuid.UUID, batch entity.FindingsBatch) error {
			saved = &batch
			return nil
		},
	}
	source := &fakePageSource{pageText: map[string][]string{
		filepath.Join(dir, doc.Filename): {
			"Diabetic Retinopathy Report\nResult DR: No DR detected\n",
			"Diabetic Retinopathy Report\nResult DR: Severe NPDR\n",
		},
	}}

	p := NewPipeline(files, findings, source, dir, nil)
	_, err := p.Run(context.Background())
	require.NoError(t, err)

	require.NotNil(t, saved)
	require.NotNil(t, saved.Retinopathy)
	assert.Equal(t, "No DR detected", saved.Retinopathy.Result)
	assert.Nil(t, saved.Glaucoma)
}

func TestPipelineRun_MissingFileSkipped(t *testing.T) {
	dir := t.TempDir()
	files := &MockFileRepository{
		ListDocumentsFunc: func(_ context.Context, _ bool) ([]*entity.EncounterFile, error) {
			return []*entity.EncounterFile{{
				ID:          uuid.New(),
				EncounterID: uuid.New(),
				Filename:    "vanished.pdf",
				FileType:    "document",
			}}, nil
		},
	}
	findings := &MockFindingRepository{
		SaveDocumentFindingsFunc: func(_ context.Context, _, _ uuid.UUID, _ entity.FindingsBatch) error {
			t.Fatal("a missing document must not be committed")
			return nil
		},
	}
	p := NewPipeline(files, findings, &fakePageSource{}, dir, nil)

	stats, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RunStats{Documents: 1, Skipped: 1}, stats)
}

func TestPipelineRun_RecognitionFailureContinuesBatch(t *testing.T) {
	dir := t.TempDir()
	bad := docRecord(t, dir, "a_bad.pdf")
	good := docRecord(t, dir, "b_good.pdf")

	files := &MockFileRepository{
		ListDocumentsFunc: func(_ context.Context, _ bool) ([]*entity.EncounterFile, error) {
			return []*entity.EncounterFile{bad, good}, nil
		},
	}
	var savedFor []uuid.UUID
	findings := &MockFindingRepository{
		SaveDocumentFindingsFunc: func(_ context.Context, fileID, _ uuid.UUID, _ entity.FindingsBatch) error {
			savedFor = append(savedFor, fileID)
			return nil
		},
	}
	source := &perDocSource{
		fail: filepath.Join(dir, bad.Filename),
		text: "Diabetic Retinopathy Report\nResult DR: No DR detected\n",
	}
	p := NewPipeline(files, findings, source, dir, nil)

	stats, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RunStats{Documents: 2, Succeeded: 1, Failed: 1}, stats)
	assert.Equal(t, []uuid.UUID{good.ID}, savedFor)
}

// perDocSource fails recognition for one document and serves fixed text for
// the rest.
type perDocSource struct {
	fail string
	text string
}

var _ extract.PageSource = (*perDocSource)(nil)

func (s *perDocSource) RenderPages(_ context.Context, documentPath string) ([]string, func(), error) {
	return []string{documentPath}, func() {}, nil
}

func (s *perDocSource) Recognize(_ context.Context, imagePath string) (string, error) {
	if imagePath == s.fail {
		return "", errors.New("tesseract: unreadable page")
	}
	return s.text, nil
}

func TestPipelineRun_IncludeProcessedFlagForwarded(t *testing.T) {
	var got bool
	files := &MockFileRepository{
		ListDocumentsFunc: func(_ context.Context, includeProcessed bool) ([]*entity.EncounterFile, error) {
			got = includeProcessed
			return nil, nil
		},
	}
	p := NewPipeline(files, &MockFindingRepository{}, &fakePageSource{}, t.TempDir(), nil)
	p.IncludeProcessed = true

	stats, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RunStats{}, stats)
	assert.True(t, got)
}
