package extract

import (
	"context"
)

// PageRenderer is Stage 1: document -> one raster image per page.
// The cleanup func removes any temporary artifacts; callers must invoke it
// once the page images are no longer needed.
type PageRenderer interface {
	RenderPages(ctx context.Context, documentPath string) (pages []string, cleanup func(), err error)
}

// TextRecognizer is Stage 2: page image -> recognized plain text.
// The recognition engine's internals are out of scope; failures surface as
// errors.
type TextRecognizer interface {
	Recognize(ctx context.Context, imagePath string) (string, error)
}

// PageSource combines both stages so the field-mining pipeline can be tested
// against synthetic text without a real recognition engine.
type PageSource interface {
	PageRenderer
	TextRecognizer
}
