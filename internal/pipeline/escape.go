package pipeline

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	// Lines holding only whitespace become true blank lines.
	whitespaceOnlyLine = regexp.MustCompile(`(?m)^[ \t]+$`)

	// Environments already built by the code shield. They contain literal
	// TeX braces that must not be escaped a second time. Inline constructs
	// are found by scanning, not by pattern: their bodies may carry braces.
	builtListing  = regexp.MustCompile(`(?s)\\begin\{listing\}.*?\\end\{listing\}`)
	builtVerbatim = regexp.MustCompile(`(?s)\\begin\{verbatim\}.*?\\end\{verbatim\}`)

	// User backslashes, except the ones introduced by the brace escapes that
	// run immediately before. Needs lookahead, hence regexp2.
	bareBackslash = regexp2.MustCompile(`\\(?![{}])`, 0)

	blankLineRuns   = regexp.MustCompile("\n{3,}")
	blankAfterBegin = regexp.MustCompile(`(\\begin\{[^\n]*)\n{2,}`)
	blankBeforeEnd  = regexp.MustCompile(`\n{2,}([ \t]*\\end\{)`)
)

// escapeSteps rewrites TeX-significant characters, in order. The order is a
// correctness requirement: later steps must not re-match text produced by
// earlier ones (the brace escapes come first so the backslash step can
// recognize them, every command inserted afterwards carries backslashes and
// braces that no later step touches).
var escapeSteps = []struct {
	from string
	to   string
}{
	{"{", `\{`},
	{"}", `\}`},
	{"", ""}, // backslash step, handled separately (needs lookahead)
	{">", `\textgreater{}`},
	{"#", `\#`},
	{"$", `\$`},
	{"%", `\%`},
	{"~", `\~{}`},
	{"_", `\_`},
	{"&", `\&`},
	{"^", `\^{}`},
}

// Prepare normalizes blank lines, shields the environments the code shield
// already built, and escapes TeX-special characters everywhere else. The
// returned table is consumed by Cleanup once the structural passes are done.
func Prepare(doc string) (string, *ShieldTable) {
	doc = whitespaceOnlyLine.ReplaceAllString(doc, "")

	table := NewShieldTable("CODETOKEN")
	doc = builtListing.ReplaceAllStringFunc(doc, table.Shield)
	doc = builtVerbatim.ReplaceAllStringFunc(doc, table.Shield)
	doc = shieldInline(doc, table)

	doc = escapeSpecials(doc)
	return doc, table
}

// shieldInline replaces every \mintinline construct with a token. The body
// argument is verbatim user code and may itself contain braces, so the end
// of the construct is found by brace counting rather than by pattern.
func shieldInline(doc string, table *ShieldTable) string {
	const prefix = `\mintinline{`

	var b strings.Builder
	for {
		i := strings.Index(doc, prefix)
		if i < 0 {
			b.WriteString(doc)
			return b.String()
		}
		b.WriteString(doc[:i])
		doc = doc[i:]

		end, ok := inlineEnd(doc)
		if !ok {
			b.WriteString(prefix)
			doc = doc[len(prefix):]
			continue
		}
		b.WriteString(table.Shield(doc[:end]))
		doc = doc[end:]
	}
}

// inlineEnd returns the index just past a \mintinline construct starting at
// the beginning of s. The language argument is brace-free; the body closes
// at its balancing brace. Both arguments must end on the starting line.
func inlineEnd(s string) (int, bool) {
	i := len(`\mintinline{`)
	for ; ; i++ {
		if i >= len(s) || s[i] == '\n' || s[i] == '{' {
			return 0, false
		}
		if s[i] == '}' {
			break
		}
	}
	i++
	if i >= len(s) || s[i] != '{' {
		return 0, false
	}

	depth := 0
	for k := i; k < len(s); k++ {
		switch s[k] {
		case '\n':
			return 0, false
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return k + 1, true
			}
		}
	}
	return 0, false
}

// escapeSpecials applies the ordered escape table.
func escapeSpecials(doc string) string {
	for _, step := range escapeSteps {
		if step.from == "" {
			doc = replace2(bareBackslash, doc, `\textbackslash{}`)
			continue
		}
		doc = replaceAll(doc, step.from, step.to)
	}
	return doc
}

// Cleanup collapses redundant blank lines, reinserts the shielded snippets,
// and restores the reserved marker. Blank-line collapsing happens before
// restoration so code and math bodies come back byte-identical.
func Cleanup(doc string, codes, math *ShieldTable) string {
	doc = blankLineRuns.ReplaceAllString(doc, "\n\n")
	doc = blankAfterBegin.ReplaceAllString(doc, "${1}\n")
	doc = blankBeforeEnd.ReplaceAllString(doc, "\n${1}")

	doc = codes.Restore(doc)
	doc = math.Restore(doc)
	doc = RestoreReservedMarker(doc)
	return doc
}
