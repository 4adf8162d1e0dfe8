package ocrscan

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/retinalab/screening-tracker/internal/entity"
	"github.com/retinalab/screening-tracker/internal/extract"
	"github.com/retinalab/screening-tracker/internal/report"
	"github.com/retinalab/screening-tracker/internal/repository"
)

// RunStats summarizes one scan over the stored document records.
type RunStats struct {
	Documents uint32
	Succeeded uint32
	Skipped   uint32
	Failed    uint32
}

// Pipeline iterates stored document records, renders and recognizes each
// page, routes the text through the report field extractors, and commits
// findings once per document. A failing document rolls back alone; the batch
// continues.
type Pipeline struct {
	Files    repository.EncounterFileRepository
	Findings repository.FindingRepository
	Source   extract.PageSource
	// DocumentsDir is the destination area document filenames resolve against.
	DocumentsDir string
	// IncludeProcessed re-scans documents whose findings already committed.
	IncludeProcessed bool
	Log              *slog.Logger
}

func NewPipeline(files repository.EncounterFileRepository, findings repository.FindingRepository, source extract.PageSource, documentsDir string, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{
		Files:        files,
		Findings:     findings,
		Source:       source,
		DocumentsDir: documentsDir,
		Log:          log,
	}
}

func (p *Pipeline) Run(ctx context.Context) (RunStats, error) {
	var stats RunStats

	docs, err := p.Files.ListDocuments(ctx, p.IncludeProcessed)
	if err != nil {
		return stats, fmt.Errorf("list documents: %w", err)
	}
	if len(docs) == 0 {
		p.Log.Info("no documents to scan")
		return stats, nil
	}

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.Documents++
		log := p.Log.With("file_id", doc.ID, "filename", doc.Filename)

		docPath := filepath.Join(p.DocumentsDir, doc.Filename)
		if _, err := os.Stat(docPath); err != nil {
			log.Warn("document missing on disk, skipping", "path", docPath)
			stats.Skipped++
			continue
		}

		if err := p.processDocument(ctx, doc, docPath); err != nil {
			log.Error("document scan failed", "error", err)
			stats.Failed++
			continue
		}
		stats.Succeeded++
	}

	p.Log.Info("ocr scan finished",
		"documents", stats.Documents,
		"succeeded", stats.Succeeded,
		"skipped", stats.Skipped,
		"failed", stats.Failed,
	)
	return stats, nil
}

func (p *Pipeline) processDocument(ctx context.Context, doc *entity.EncounterFile, docPath string) error {
	log := p.Log.With("filename", doc.Filename)
	log.Info("scanning document")

	pages, cleanup, err := p.Source.RenderPages(ctx, docPath)
	if err != nil {
		return fmt.Errorf("render pages: %w", err)
	}
	defer cleanup()

	// One file can hold several scanned reports, one per page; every page is
	// recognized and mined. The first page to yield a finding kind wins.
	var batch entity.FindingsBatch
	for i, page := range pages {
		text, err := p.Source.Recognize(ctx, page)
		if err != nil {
			return fmt.Errorf("recognize page %d: %w", i+1, err)
		}
		p.minePage(text, &batch, log, i+1)
	}

	if err := report.ValidateBatch(batch); err != nil {
		return fmt.Errorf("findings validation: %w", err)
	}
	return p.Findings.SaveDocumentFindings(ctx, doc.ID, doc.EncounterID, batch)
}

func (p *Pipeline) minePage(text string, batch *entity.FindingsBatch, log *slog.Logger, pageNum int) {
	if report.HasRetinopathyReport(text) {
		if fields, ok := report.ParseRetinopathy(text); ok {
			if batch.Retinopathy == nil {
				batch.Retinopathy = fields
			}
			log.Info("retinopathy result mined", "page", pageNum, "result", fields.Result)
		}
	}
	if report.HasGlaucomaReport(text) {
		fields := report.ParseGlaucoma(text)
		if batch.Glaucoma == nil {
			batch.Glaucoma = fields
		}
		log.Info("glaucoma fields mined",
			"page", pageNum,
			"vcdr_right", floatOrNil(fields.VCDRRight),
			"vcdr_left", floatOrNil(fields.VCDRLeft),
			"result", fields.Result,
		)
	}
}

func floatOrNil(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
