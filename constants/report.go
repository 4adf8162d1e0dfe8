package constants

// Report marker vocabulary. These strings must match the report templates
// bit-exact; classification and field mining key off them.
const (
	// Title markers that identify which report a page belongs to.
	RetinopathyReportTitle = "Diabetic Retinopathy Report"
	GlaucomaReportTitle    = "Glaucoma Screening Report"

	// RetinopathyResultLabel prefixes the diagnostic result line.
	RetinopathyResultLabel = "Result DR:"

	// GlaucomaSectionHeader opens the section holding VCDR values and the
	// screening result.
	GlaucomaSectionHeader = "SCREENING RESULT"

	// VCDRLabel prefixes each cup-to-disc ratio value.
	VCDRLabel = "VCDR -"

	// ResultUnavailable is stored when no category phrase is found.
	ResultUnavailable = "N/A"
)

// GlaucomaCategoryPhrases are the accepted screening-result phrases.
// "Referable Glacuoma" is a known template misspelling; keep it verbatim so
// reports produced with the old template still classify.
var GlaucomaCategoryPhrases = []string{
	"No Referable Glaucoma",
	"Referable Glaucoma",
	"Referable Glacuoma",
}
