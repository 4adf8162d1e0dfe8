package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/retinalab/screening-tracker/gen/ent"
	entglaucoma "github.com/retinalab/screening-tracker/gen/ent/glaucomafinding"
	entretino "github.com/retinalab/screening-tracker/gen/ent/retinopathyfinding"
	"github.com/retinalab/screening-tracker/internal/entity"
)

type FindingRepository interface {
	// SaveDocumentFindings commits one document's mined findings in a single
	// transaction. A finding kind already recorded for the encounter is left
	// untouched (first writer wins, checked inside the same transaction as the
	// insert). The file's ocr_processed flag is set in the same commit.
	SaveDocumentFindings(ctx context.Context, fileID, encounterID uuid.UUID, batch entity.FindingsBatch) error
}

type findingRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewFindingRepository(entc *ent.Client, logger *slog.Logger) FindingRepository {
	return &findingRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *findingRepo) SaveDocumentFindings(ctx context.Context, fileID, encounterID uuid.UUID, batch entity.FindingsBatch) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if batch.Retinopathy != nil {
		exists, err := tx.RetinopathyFinding.Query().
			Where(entretino.EncounterID(encounterID)).
			Exist(ctx)
		if err != nil {
			return rollback(tx, fmt.Errorf("check retinopathy finding: %w", err))
		}
		if exists {
			r.logger.Info("retinopathy finding already recorded, skipping",
				"encounter_id", encounterID)
		} else {
			if _, err := tx.RetinopathyFinding.Create().
				SetEncounterID(encounterID).
				SetResult(batch.Retinopathy.Result).
				Save(ctx); err != nil {
				return rollback(tx, fmt.Errorf("create retinopathy finding: %w", err))
			}
		}
	}

	if batch.Glaucoma != nil {
		exists, err := tx.GlaucomaFinding.Query().
			Where(entglaucoma.EncounterID(encounterID)).
			Exist(ctx)
		if err != nil {
			return rollback(tx, fmt.Errorf("check glaucoma finding: %w", err))
		}
		if exists {
			r.logger.Info("glaucoma finding already recorded, skipping",
				"encounter_id", encounterID)
		} else {
			if _, err := tx.GlaucomaFinding.Create().
				SetEncounterID(encounterID).
				SetNillableVcdrRight(batch.Glaucoma.VCDRRight).
				SetNillableVcdrLeft(batch.Glaucoma.VCDRLeft).
				SetResult(batch.Glaucoma.Result).
				Save(ctx); err != nil {
				return rollback(tx, fmt.Errorf("create glaucoma finding: %w", err))
			}
		}
	}

	if err := tx.EncounterFile.UpdateOneID(fileID).
		SetOcrProcessed(true).
		Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("mark file processed: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	r.logger.Info("document findings committed",
		"file_id", fileID,
		"encounter_id", encounterID,
		"retinopathy", batch.Retinopathy != nil,
		"glaucoma", batch.Glaucoma != nil,
	)
	return nil
}
