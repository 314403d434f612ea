package guard

import (
	"fmt"
	"strings"
)

// reportBorder is the border used at the top and bottom of a
// cheat-guarded failure report.
var reportBorder = strings.Repeat("=", 70)

// Format renders the failure report for an assertion site. The
// five supplied fields are the only variable content; identical
// inputs produce byte-identical text, so reports are safe to
// golden-test.
func Format(errMsg string, meta Metadata) string {
	return fmt.Sprintf(
		"\n%s\n"+
			"=== CHEAT-GUARDED FAILURE ===\n"+
			"%s\n\n"+
			"PROTECTS: %s\n"+
			"SEVERITY: %s\n\n"+
			"CHEAT VECTORS:\n%s\n\n"+
			"USER CONSEQUENCE:\n%s\n\n"+
			"ERROR:\n%s\n"+
			"%s\n",
		reportBorder,
		reportBorder,
		meta.Protects,
		meta.Severity,
		meta.numberedCheats(),
		meta.Consequence,
		errMsg,
		reportBorder,
	)
}
