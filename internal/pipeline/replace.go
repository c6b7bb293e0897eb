package pipeline

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// replaceAll is strings.ReplaceAll, aliased so the escape table reads as data.
func replaceAll(s, from, to string) string {
	return strings.ReplaceAll(s, from, to)
}

// replace2 runs a regexp2 replacement. The engine only fails on match
// timeouts, which are not configured here, so the input is returned
// unchanged on error.
func replace2(re *regexp2.Regexp, s, repl string) string {
	out, err := re.Replace(s, repl, -1, -1)
	if err != nil {
		return s
	}
	return out
}

// findAll2 collects every regexp2 match of re in s, in source order.
func findAll2(re *regexp2.Regexp, s string) []string {
	var out []string
	m, err := re.FindStringMatch(s)
	for err == nil && m != nil {
		out = append(out, m.String())
		m, err = re.FindNextMatch(m)
	}
	return out
}
