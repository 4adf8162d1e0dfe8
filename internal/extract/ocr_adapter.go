package extract

import (
	"github.com/retinalab/screening-tracker/internal/ocr"
)

// NewOCRSource exposes the external OCR engine through the capability
// contracts the scan pipeline depends on.
func NewOCRSource(e *ocr.Engine) PageSource {
	return e
}
