package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/retinalab/screening-tracker/constants"
	"github.com/retinalab/screening-tracker/gen/ent"
	entfile "github.com/retinalab/screening-tracker/gen/ent/encounterfile"
	"github.com/retinalab/screening-tracker/internal/common"
	"github.com/retinalab/screening-tracker/internal/entity"
	"github.com/retinalab/screening-tracker/internal/utils"
)

type EncounterFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.EncounterFile, error)
	// ListDocuments returns document-kind file records, in filename order.
	// With includeProcessed false, records already run through OCR are skipped.
	ListDocuments(ctx context.Context, includeProcessed bool) ([]*entity.EncounterFile, error)
}

type encounterFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewEncounterFileRepository(entc *ent.Client, logger *slog.Logger) EncounterFileRepository {
	return &encounterFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *encounterFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.EncounterFile, error) {
	row, err := r.ent.EncounterFile.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("encounter file " + id.String() + " not found")
		}
		r.logger.Error("failed to get encounter file", "file_id", id, "error", err)
		return nil, err
	}
	return utils.ToEncounterFile(row), nil
}

func (r *encounterFileRepo) ListDocuments(ctx context.Context, includeProcessed bool) ([]*entity.EncounterFile, error) {
	q := r.ent.EncounterFile.Query().
		Where(entfile.FileType(string(constants.KindDocument)))
	if !includeProcessed {
		q = q.Where(entfile.OcrProcessed(false))
	}
	rows, err := q.Order(entfile.ByFilename()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list document files", "error", err)
		return nil, err
	}

	result := make([]*entity.EncounterFile, len(rows))
	for i, row := range rows {
		result[i] = utils.ToEncounterFile(row)
	}
	return result, nil
}
