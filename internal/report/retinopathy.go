// Package report mines structured clinical fields out of noisy OCR text.
// The rules are tolerant by design: OCR output has unstable whitespace and
// casing, so matching is case-insensitive and anchored on the fixed marker
// strings the report templates print.
package report

import (
	"regexp"
	"strings"

	"github.com/retinalab/screening-tracker/constants"
	"github.com/retinalab/screening-tracker/internal/entity"
)

var retinopathyResultRe = regexp.MustCompile(`(?is)` + regexp.QuoteMeta(constants.RetinopathyResultLabel) + `\s*(.*)`)

// HasRetinopathyReport reports whether the page text carries the diabetic
// retinopathy report title marker.
func HasRetinopathyReport(text string) bool {
	return strings.Contains(text, constants.RetinopathyReportTitle)
}

// ParseRetinopathy extracts the diagnostic result from one page's recognized
// text: everything after the "Result DR:" label, truncated to its first line.
// ok is false when the label is absent.
func ParseRetinopathy(text string) (*entity.RetinopathyFields, bool) {
	m := retinopathyResultRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	result, _, _ := strings.Cut(strings.TrimSpace(m[1]), "\n")
	return &entity.RetinopathyFields{Result: strings.TrimSpace(result)}, true
}
