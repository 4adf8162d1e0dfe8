package repository

import (
	"context"
	"log/slog"

	"github.com/retinalab/screening-tracker/gen/ent"
	entencounter "github.com/retinalab/screening-tracker/gen/ent/encounter"
	"github.com/retinalab/screening-tracker/internal/entity"
	"github.com/retinalab/screening-tracker/internal/utils"
)

type EncounterRepository interface {
	// ListSummaries returns every encounter joined with its archive, file
	// count, and findings, ordered by capture date.
	ListSummaries(ctx context.Context) ([]*entity.EncounterSummary, error)
}

type encounterRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewEncounterRepository(entc *ent.Client, logger *slog.Logger) EncounterRepository {
	return &encounterRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *encounterRepo) ListSummaries(ctx context.Context) ([]*entity.EncounterSummary, error) {
	rows, err := r.ent.Encounter.Query().
		WithArchive().
		WithFiles().
		WithRetinopathyFindings().
		WithGlaucomaFindings().
		Order(entencounter.ByCaptureDate()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list encounters", "error", err)
		return nil, err
	}

	result := make([]*entity.EncounterSummary, len(rows))
	for i, row := range rows {
		s := &entity.EncounterSummary{
			Encounter: *utils.ToEncounter(row),
			FileCount: len(row.Edges.Files),
		}
		if row.Edges.Archive != nil {
			s.ArchiveFilename = row.Edges.Archive.Filename
		}
		if fs := row.Edges.RetinopathyFindings; len(fs) > 0 {
			s.Retinopathy = utils.ToRetinopathyFields(fs[0])
		}
		if fs := row.Edges.GlaucomaFindings; len(fs) > 0 {
			s.Glaucoma = utils.ToGlaucomaFields(fs[0])
		}
		result[i] = s
	}
	return result, nil
}
