package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/retinalab/screening-tracker/gen/ent"
	entarchive "github.com/retinalab/screening-tracker/gen/ent/archive"
	"github.com/retinalab/screening-tracker/internal/entity"
	"github.com/retinalab/screening-tracker/internal/utils"
)

// ExtractedFileInfo describes one file written to a destination area,
// in archive-member order.
type ExtractedFileInfo struct {
	Filename string
	FileType string
}

// CreateArchiveRequest wraps everything persisted for one processed archive.
type CreateArchiveRequest struct {
	Filename    string
	Fingerprint string
	PatientName string
	PatientID   string
	CaptureDate string
	Files       []ExtractedFileInfo
}

type ArchiveRepository interface {
	// ExistsByFingerprint reports whether an archive with this content hash
	// was already processed.
	ExistsByFingerprint(ctx context.Context, fingerprint string) (bool, error)
	// CreateWithEncounter persists the archive, its encounter, and all file
	// records in a single transaction.
	CreateWithEncounter(ctx context.Context, req *CreateArchiveRequest) (*entity.Encounter, error)
}

type archiveRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewArchiveRepository(entc *ent.Client, logger *slog.Logger) ArchiveRepository {
	return &archiveRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *archiveRepo) ExistsByFingerprint(ctx context.Context, fingerprint string) (bool, error) {
	exists, err := r.ent.Archive.Query().
		Where(entarchive.ContentHash(fingerprint)).
		Exist(ctx)
	if err != nil {
		r.logger.Error("failed to query archive by fingerprint", "fingerprint", fingerprint, "error", err)
		return false, err
	}
	return exists, nil
}

func (r *archiveRepo) CreateWithEncounter(ctx context.Context, req *CreateArchiveRequest) (*entity.Encounter, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	arc, err := tx.Archive.Create().
		SetFilename(req.Filename).
		SetContentHash(req.Fingerprint).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("create archive: %w", err))
	}

	enc, err := tx.Encounter.Create().
		SetArchiveID(arc.ID).
		SetPatientName(req.PatientName).
		SetPatientID(req.PatientID).
		SetCaptureDate(req.CaptureDate).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("create encounter: %w", err))
	}

	if len(req.Files) > 0 {
		bulk := make([]*ent.EncounterFileCreate, len(req.Files))
		for i, f := range req.Files {
			bulk[i] = tx.EncounterFile.Create().
				SetEncounterID(enc.ID).
				SetFilename(f.Filename).
				SetFileType(f.FileType)
		}
		if _, err := tx.EncounterFile.CreateBulk(bulk...).Save(ctx); err != nil {
			return nil, rollback(tx, fmt.Errorf("create encounter files: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	r.logger.Info("archive recorded",
		"archive_id", arc.ID,
		"encounter_id", enc.ID,
		"patient_id", req.PatientID,
		"files", len(req.Files),
	)
	return utils.ToEncounter(enc), nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w: rollback: %v", err, rerr)
	}
	return err
}
