package report

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/retinalab/screening-tracker/constants"
	"github.com/retinalab/screening-tracker/internal/entity"
)

var (
	glaucomaSectionRe = regexp.MustCompile(`(?is)` + regexp.QuoteMeta(constants.GlaucomaSectionHeader) + `\s*(.*)`)
	// Tolerant form of constants.VCDRLabel: OCR drifts on spacing around the dash.
	vcdrRe     = regexp.MustCompile(`(?i)VCDR\s*-\s*([0-9.]+)`)
	categoryRe = buildCategoryRe()
)

func buildCategoryRe() *regexp.Regexp {
	quoted := make([]string, len(constants.GlaucomaCategoryPhrases))
	for i, p := range constants.GlaucomaCategoryPhrases {
		quoted[i] = regexp.QuoteMeta(p)
	}
	// Phrase, a dash, then the free-text remainder up to end of line.
	return regexp.MustCompile(`(?i)(` + strings.Join(quoted, "|") + `)\s*-\s*(.*)`)
}

// HasGlaucomaReport reports whether the page text carries the glaucoma
// screening report title marker.
func HasGlaucomaReport(text string) bool {
	return strings.Contains(text, constants.GlaucomaReportTitle)
}

// ParseGlaucoma extracts VCDR measurements and the screening result from one
// page's recognized text. Matching is restricted to the text following the
// SCREENING RESULT header. With two or more VCDR values the first is the right
// eye and the second the left (the template prints right first); a single
// value goes to the left eye only when the section mentions one, otherwise to
// the right. Without a recognized category phrase the result is the "N/A"
// sentinel.
func ParseGlaucoma(text string) *entity.GlaucomaFields {
	fields := &entity.GlaucomaFields{Result: constants.ResultUnavailable}

	m := glaucomaSectionRe.FindStringSubmatch(text)
	if m == nil {
		return fields
	}
	section := m[1]

	var values []float64
	for _, vm := range vcdrRe.FindAllStringSubmatch(section, -1) {
		v, err := strconv.ParseFloat(vm[1], 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	switch {
	case len(values) >= 2:
		fields.VCDRRight = &values[0]
		fields.VCDRLeft = &values[1]
	case len(values) == 1:
		if strings.Contains(strings.ToLower(section), "left eye") {
			fields.VCDRLeft = &values[0]
		} else {
			fields.VCDRRight = &values[0]
		}
	}

	if rm := categoryRe.FindString(section); rm != "" {
		fields.Result = strings.TrimSpace(rm)
	}
	return fields
}
