package ingest

import (
	"archive/zip"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/retinalab/screening-tracker/constants"
	"github.com/retinalab/screening-tracker/internal/common"
)

// ExtractedFile is one classified, renamed file written to a destination area.
type ExtractedFile struct {
	Filename string
	FileType constants.FileKind
}

// Extractor classifies archive members under the session directory and writes
// their bytes to the kind-specific destination area.
type Extractor struct {
	dirs   common.DirsConfig
	logger *slog.Logger
}

func NewExtractor(dirs common.DirsConfig, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{dirs: dirs, logger: logger}
}

// DestinationName builds the deterministic filename for an extracted member:
// {id}_{name with spaces as underscores}_{date}_{original basename}.
func DestinationName(meta SessionMeta, originalBase string) string {
	return fmt.Sprintf("%s_%s_%s_%s",
		meta.PatientID,
		strings.ReplaceAll(meta.PatientName, " ", "_"),
		meta.CaptureDate,
		strings.ReplaceAll(originalBase, "/", "_"),
	)
}

// ExtractArchive walks the members under sessionDir, classifies each by
// extension, and writes image and document members to their destination areas
// under the deterministic name. Members with unrecognized extensions are
// skipped silently. Returns the created records in archive-member order along
// with the absolute paths written, so a failed commit can clean up after
// itself.
func (e *Extractor) ExtractArchive(zr *zip.Reader, sessionDir string, meta SessionMeta) ([]ExtractedFile, []string, error) {
	var files []ExtractedFile
	var written []string

	prefix := sessionDir + "/"
	for _, member := range zr.File {
		if member.FileInfo().IsDir() {
			continue
		}
		name := strings.Trim(path.Clean(strings.ReplaceAll(member.Name, "\\", "/")), "/")
		if name != sessionDir && !strings.HasPrefix(name, prefix) {
			continue
		}

		kind, ok := constants.ClassifyExt(path.Ext(name))
		if !ok {
			continue
		}

		destName := DestinationName(meta, path.Base(name))
		destPath := filepath.Join(e.dirs.DirForKind(string(kind)), destName)
		if err := e.writeMember(member, destPath); err != nil {
			return files, written, fmt.Errorf("extract %q: %w", member.Name, err)
		}
		written = append(written, destPath)
		files = append(files, ExtractedFile{Filename: destName, FileType: kind})
		e.logger.Info("extracted file",
			"member", path.Base(name),
			"filename", destName,
			"file_type", string(kind),
		)
	}
	return files, written, nil
}

func (e *Extractor) writeMember(member *zip.File, destPath string) error {
	src, err := member.Open()
	if err != nil {
		return fmt.Errorf("open member: %w", err)
	}
	defer func() {
		_ = src.Close()
	}()

	dst, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return fmt.Errorf("write destination: %w", err)
	}
	return dst.Close()
}
