package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/retinalab/screening-tracker/internal/common"
	"github.com/retinalab/screening-tracker/internal/export"
	repo "github.com/retinalab/screening-tracker/internal/repository"
)

func main() {
	out := flag.String("out", "", "output XLSX file path (defaults to <data dir>/encounters.xlsx)")
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
	if *out == "" {
		*out = filepath.Join(cfg.Dirs.DataDir, "encounters.xlsx")
	}

	ctx := context.Background()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:         cfg.Database.DSN,
		MaxConns:    cfg.Database.MaxConns,
		MinConns:    cfg.Database.MinConns,
		DialTimeout: cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	svc := export.NewService(repo.NewEncounterRepository(entc, logger), logger)
	data, err := svc.ExportEncountersXLSX(ctx)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Error("write workbook", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("workbook written", "path", *out, "bytes", len(data))
}
