package pipeline

import (
	"regexp"
)

// Quote styles.
const (
	QuotesEnglish = "english"
	QuotesFrench  = "french"
)

var (
	// A block quote is a run of consecutive marker lines. The pass runs on
	// escaped text, so the > marker arrives as \textgreater{}.
	blockQuote     = regexp.MustCompile(`(?m)^(\\textgreater\{\}.*(?:\n\\textgreater\{\}.*)*)`)
	blockQuoteMark = regexp.MustCompile(`(?m)^\\textgreater\{\} ?`)
	doubleQuoted   = regexp.MustCompile(`"([^"\n]*)"`)
	singleQuoted   = regexp.MustCompile(`'([^'\n]*)'`)
)

// ConvertBlockQuotes wraps runs of quote-marked lines in a quotation
// environment, dropping the markers.
func ConvertBlockQuotes(doc string) string {
	return blockQuote.ReplaceAllStringFunc(doc, func(block string) string {
		body := blockQuoteMark.ReplaceAllString(block, "")
		return "\\begin{quotation}\n" + body + "\n\\end{quotation}"
	})
}

// ConvertInlineQuotes localizes quotation marks: english renders ``...''
// and `...', french renders \enquote{...} for double quotes. Single quotes
// convert first so the apostrophes emitted for double quotes are never
// re-matched.
func ConvertInlineQuotes(doc, style string) string {
	doc = singleQuoted.ReplaceAllString(doc, "`${1}'")
	if style == QuotesFrench {
		doc = doubleQuoted.ReplaceAllString(doc, `\enquote{${1}}`)
	} else {
		doc = doubleQuoted.ReplaceAllString(doc, "``${1}''")
	}
	return doc
}
