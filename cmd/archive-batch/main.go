package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/retinalab/screening-tracker/internal/common"
	"github.com/retinalab/screening-tracker/internal/ingest"
	repo "github.com/retinalab/screening-tracker/internal/repository"
)

func main() {
	var (
		watch    = flag.Bool("watch", false, "keep running and process archives as they arrive")
		debounce = flag.Duration("debounce", 2*time.Second, "settle time before a watched archive is processed")
	)
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
	if err := cfg.Dirs.EnsureDirs(); err != nil {
		logger.Error("failed to prepare directories", "error", err)
		os.Exit(1)
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

	if err := repo.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("db health failed", "error", err)
		os.Exit(1)
	}
	if err := repo.Migrate(ctx, entc, logger); err != nil {
		os.Exit(1)
	}

	archives := repo.NewArchiveRepository(entc, logger)
	extractor := ingest.NewExtractor(cfg.Dirs, logger)
	pipeline := ingest.NewPipeline(archives, extractor, cfg.Dirs, logger)

	stats, err := pipeline.Run(ctx)
	if err != nil {
		logger.Error("ingest run failed", "error", err)
		os.Exit(1)
	}
	logger.Info("ingest run finished",
		"scanned", stats.Scanned,
		"processed", stats.Processed,
		"skipped", stats.Skipped,
		"failed", stats.Failed,
	)

	if !*watch {
		return
	}

	evCh, errCh, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Root:     cfg.Dirs.UploadDir,
		Debounce: *debounce,
	})
	if err != nil {
		logger.Error("watcher start failed", "error", err)
		os.Exit(1)
	}
	logger.Info("watching upload area", "dir", cfg.Dirs.UploadDir)

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			return
		case path, ok := <-evCh:
			if !ok {
				return
			}
			if err := pipeline.ProcessArchive(ctx, path); err != nil {
				// Already logged with context; keep watching.
				continue
			}
		case werr, ok := <-errCh:
			if ok && werr != nil {
				logger.Error("watch error", "error", werr)
			}
		}
	}
}
