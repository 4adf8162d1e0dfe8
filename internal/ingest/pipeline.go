package ingest

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/retinalab/screening-tracker/internal/common"
	"github.com/retinalab/screening-tracker/internal/repository"
)

// RunStats summarizes one pass over the upload area.
type RunStats struct {
	Scanned   uint32
	Skipped   uint32
	Processed uint32
	Failed    uint32
}

// Pipeline sequences fingerprint check, convention parse, extraction, and the
// all-or-nothing commit for each input archive. Archives are processed
// strictly one at a time; a failed archive is routed to the error area and the
// run continues.
type Pipeline struct {
	Archives  repository.ArchiveRepository
	Extractor *Extractor
	Dirs      common.DirsConfig
	Log       *slog.Logger
}

func NewPipeline(archives repository.ArchiveRepository, extractor *Extractor, dirs common.DirsConfig, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{Archives: archives, Extractor: extractor, Dirs: dirs, Log: log}
}

// Run enumerates *.zip files in the upload area (sorted, so runs are
// deterministic) and processes each independently. Only an unreadable upload
// area fails the run itself.
func (p *Pipeline) Run(ctx context.Context) (RunStats, error) {
	var stats RunStats

	matches, err := filepath.Glob(filepath.Join(p.Dirs.UploadDir, "*.zip"))
	if err != nil {
		return stats, fmt.Errorf("scan upload dir: %w", err)
	}
	sort.Strings(matches)
	if len(matches) == 0 {
		p.Log.Info("no archives found in upload area", "dir", p.Dirs.UploadDir)
		return stats, nil
	}

	for _, archivePath := range matches {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.Scanned++
		switch err := p.ProcessArchive(ctx, archivePath); {
		case err == nil:
			stats.Processed++
		case errors.Is(err, errSkipped):
			stats.Skipped++
		default:
			stats.Failed++
		}
	}
	return stats, nil
}

// errSkipped marks an already-processed archive; not a failure.
var errSkipped = fmt.Errorf("archive already processed: %w", common.ErrDuplicate)

// ProcessArchive runs one archive through the full pipeline. Terminal states:
// skipped (duplicate fingerprint), relocated to the processed area, or
// relocated to the error area.
func (p *Pipeline) ProcessArchive(ctx context.Context, archivePath string) error {
	name := filepath.Base(archivePath)
	log := p.Log.With("archive", name)

	fingerprint, err := FingerprintFile(archivePath)
	if err != nil {
		log.Error("fingerprint failed", "error", err)
		p.moveToError(archivePath, log)
		return err
	}

	exists, err := p.Archives.ExistsByFingerprint(ctx, fingerprint)
	if err != nil {
		log.Error("fingerprint lookup failed", "error", err)
		return err
	}
	if exists {
		log.Info("skipping archive, already processed", "fingerprint", fingerprint)
		return errSkipped
	}

	log.Info("processing archive")
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		log.Error("archive unreadable", "error", err)
		p.moveToError(archivePath, log)
		return common.NewAppError("ARCHIVE_UNREADABLE", "open archive", err)
	}

	members := make([]string, len(zr.File))
	for i, f := range zr.File {
		members[i] = f.Name
	}

	sessionDir, meta, err := FindSessionDir(members)
	if err != nil {
		_ = zr.Close()
		log.Error("no session directory", "error", err)
		p.moveToError(archivePath, log)
		return err
	}
	log.Info("identified session directory",
		"dir", sessionDir,
		"patient_name", meta.PatientName,
		"patient_id", meta.PatientID,
		"capture_date", meta.CaptureDate,
	)

	files, written, err := p.Extractor.ExtractArchive(&zr.Reader, sessionDir, meta)
	_ = zr.Close()
	if err != nil {
		log.Error("extraction failed", "error", err)
		p.cleanup(written, log)
		p.moveToError(archivePath, log)
		return err
	}

	req := &repository.CreateArchiveRequest{
		Filename:    name,
		Fingerprint: fingerprint,
		PatientName: meta.PatientName,
		PatientID:   meta.PatientID,
		CaptureDate: meta.CaptureDate,
		Files:       make([]repository.ExtractedFileInfo, len(files)),
	}
	for i, f := range files {
		req.Files[i] = repository.ExtractedFileInfo{
			Filename: f.Filename,
			FileType: string(f.FileType),
		}
	}

	if _, err := p.Archives.CreateWithEncounter(ctx, req); err != nil {
		log.Error("commit failed", "error", err)
		// The transaction rolled back; remove the files this run wrote so
		// nothing orphaned is left in the destination areas.
		p.cleanup(written, log)
		p.moveToError(archivePath, log)
		return err
	}

	p.moveTo(archivePath, p.Dirs.ProcessedDir, log)
	log.Info("archive processed", "files", len(files))
	return nil
}

func (p *Pipeline) cleanup(written []string, log *slog.Logger) {
	for _, path := range written {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Warn("failed to remove extracted file", "path", path, "error", err)
		}
	}
}

func (p *Pipeline) moveToError(archivePath string, log *slog.Logger) {
	p.moveTo(archivePath, p.Dirs.ErrorDir, log)
}

func (p *Pipeline) moveTo(archivePath, destDir string, log *slog.Logger) {
	dest := filepath.Join(destDir, filepath.Base(archivePath))
	if err := moveFile(archivePath, dest); err != nil {
		log.Error("failed to relocate archive", "dest", dest, "error", err)
		return
	}
	log.Info("archive relocated", "dest", dest)
}

// moveFile renames, falling back to copy+remove across filesystems.
func moveFile(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(src)
}
