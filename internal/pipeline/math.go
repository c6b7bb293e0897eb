package pipeline

import "regexp"

// Math span patterns. Display spans are matched before inline spans so the
// $$ delimiters are never mistaken for two empty inline spans.
var (
	displayMath = regexp.MustCompile(`(?s)\$\$.*?\$\$`)
	inlineMath  = regexp.MustCompile(`\$[^$\n]+\$`)
)

// ShieldMath replaces every math span with a token and records the original
// text in the returned table. Runs after the code shield and before the
// escaper, so math bodies never see character escaping. The reserved token
// marker is neutralized here, ahead of the first persistent token mint.
func ShieldMath(doc string) (string, *ShieldTable) {
	doc = NeutralizeReservedMarker(doc)

	table := NewShieldTable("MATHTOKEN")
	doc = displayMath.ReplaceAllStringFunc(doc, table.Shield)
	doc = inlineMath.ReplaceAllStringFunc(doc, table.Shield)
	return doc, table
}
