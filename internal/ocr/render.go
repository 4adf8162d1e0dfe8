package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// RenderPages validates the PDF, then rasterizes every page to PNG at the
// configured DPI. A single report file can hold multiple scanned reports, one
// per page, so pages are returned individually rather than merged.
func (e *Engine) RenderPages(ctx context.Context, documentPath string) ([]string, func(), error) {
	pageCount, err := api.PageCountFile(documentPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read pdf: %w", err)
	}
	e.logger.Debug("rendering document", "path", documentPath, "pages", pageCount, "dpi", e.cfg.DPI)

	tmpDir, err := os.MkdirTemp("", "st-pages-*")
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			e.logger.Warn("failed to remove temp dir", "dir", tmpDir, "error", err)
		}
	}

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", documentPath, prefix)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("pdftoppm: %w: %s", err, truncate(string(errb), 2<<10))
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		cleanup()
		return nil, nil, fmt.Errorf("no pages rendered")
	}
	return matches, cleanup, nil
}
