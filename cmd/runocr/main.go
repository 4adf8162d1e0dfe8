package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/retinalab/screening-tracker/internal/common"
	"github.com/retinalab/screening-tracker/internal/extract"
	"github.com/retinalab/screening-tracker/internal/ocr"
	"github.com/retinalab/screening-tracker/internal/pipeline/ocrscan"
	repo "github.com/retinalab/screening-tracker/internal/repository"
)

func main() {
	all := flag.Bool("all", false, "re-scan documents whose findings already committed")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.Migrate(ctx, entc, logger); err != nil {
		os.Exit(1)
	}

	filesRepo := repo.NewEncounterFileRepository(entc, logger)
	findingsRepo := repo.NewFindingRepository(entc, logger)

	engine := ocr.NewEngine(ocr.Config{
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)

	p := ocrscan.NewPipeline(filesRepo, findingsRepo, extract.NewOCRSource(engine), cfg.Dirs.DocumentsDir, logger)
	p.IncludeProcessed = *all

	start := time.Now()
	stats, err := p.Run(ctx)
	if err != nil {
		logger.Error("ocr scan failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}
	logger.Info("ocr scan OK",
		"documents", stats.Documents,
		"succeeded", stats.Succeeded,
		"skipped", stats.Skipped,
		"failed", stats.Failed,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
