package pipeline

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

// Note styles.
const (
	NotesFootnote = "footnote"
	NotesEndnote  = "endnote"
)

var (
	// Footnote syntax after escaping: the caret of [^1] arrives as \^{}.
	// A pointer is a bracketed numeric label not followed by a colon; a
	// definition is the same label followed by a colon and body lines up to
	// the first blank line.
	footnotePointer  = regexp2.MustCompile(`\[\\\^\{\}\d+\](?![ \t]*:)`, 0)
	footnoteDigits   = regexp.MustCompile(`\d+`)
	footnoteDefSweep = regexp.MustCompile(`\[\\\^\{\}\d+\]:(?:.+\n?)*`)
	whitespaceRun    = regexp.MustCompile(`\s+`)

	// Hyperlink, excluding image and audio embeds via the bang lookbehind.
	hyperlink   = regexp2.MustCompile(`(?<!!)\[(.*?)\]\((.*?)\)`, 0)
	absoluteURL = regexp.MustCompile(`^(?:[a-zA-Z][a-zA-Z0-9+.-]*://|mailto:)`)

	// Pandoc citations. The multi-key form carries no locators; the single
	// form takes an optional page or page-range locator and an optional
	// suppress-author dash.
	multiCitation  = regexp.MustCompile(`\[@[^\[\]]+;[^\[\]]+\]`)
	singleCitation = regexp.MustCompile(`\[(-?)@([0-9A-Za-z][0-9A-Za-z:.-]*)(?:,[ \t]*(?:pp?\.[ \t]*)?(\d+)(?:[ \t]*-[ \t]*(\d+))?)?\]`)
)

// ConvertFootnotes resolves footnote pointers against their definitions.
// A matched pair becomes an inline note carrying the definition body; an
// empty body deletes both halves; dangling pointers and definitions are
// swept away silently at the end.
func ConvertFootnotes(doc, style string) string {
	cmd := `\footnote`
	if style == NotesEndnote {
		cmd = `\endnote`
	}

	for _, ptr := range findAll2(footnotePointer, doc) {
		key := footnoteDigits.FindString(ptr)
		defPattern := regexp.MustCompile(`\[\\\^\{\}` + key + `\]:(?:.+\n?)*`)
		def := defPattern.FindString(doc)
		if def == "" {
			continue
		}

		label := `[\^{}` + key + `]:`
		body := strings.TrimSpace(whitespaceRun.ReplaceAllString(strings.TrimPrefix(def, label), " "))

		doc = strings.ReplaceAll(doc, def, "")
		if body == "" {
			doc = strings.ReplaceAll(doc, ptr, "")
			continue
		}
		doc = strings.ReplaceAll(doc, ptr, cmd+"{"+body+"}")
	}

	doc = replace2(footnotePointer, doc, "")
	doc = footnoteDefSweep.ReplaceAllString(doc, "")
	return doc
}

// ConvertHyperlinks rewrites bracket-text links. Absolute targets become
// \href constructs; anything else is unsupported, warned about, and
// replaced by its link text.
func ConvertHyperlinks(doc string, rec *Recorder) string {
	m, err := hyperlink.FindStringMatch(doc)
	for err == nil && m != nil {
		full := m.String()
		text := m.Groups()[1].String()
		target := m.Groups()[2].String()

		if absoluteURL.MatchString(target) {
			doc = strings.Replace(doc, full, `\href{`+target+`}{`+text+`}`, 1)
		} else {
			rec.Add(WarnUnsupportedLink, target)
			doc = strings.Replace(doc, full, text, 1)
		}

		m, err = hyperlink.FindStringMatch(doc)
	}
	return doc
}

// ConvertCitations rewrites pandoc citation syntax into parenthetical
// citation commands. Multi-key groups join their keys with commas and do
// not take locators; a group carrying one is left unconverted.
func ConvertCitations(doc string) string {
	doc = multiCitation.ReplaceAllStringFunc(doc, func(match string) string {
		inner := strings.TrimSuffix(strings.TrimPrefix(match, "["), "]")
		parts := strings.Split(inner, ";")
		keys := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if !strings.HasPrefix(p, "@") || strings.Contains(p, ",") {
				return match
			}
			keys = append(keys, strings.TrimPrefix(p, "@"))
		}
		return `\parencite{` + strings.Join(keys, ",") + `}`
	})

	doc = singleCitation.ReplaceAllStringFunc(doc, func(match string) string {
		m := singleCitation.FindStringSubmatch(match)
		suppress, key, from, to := m[1], m[2], m[3], m[4]

		cmd := `\parencite`
		if suppress == "-" {
			cmd = `\parencite*`
		}
		switch {
		case from == "":
			return cmd + "{" + key + "}"
		case to == "":
			return cmd + "[p. " + from + "]{" + key + "}"
		default:
			return cmd + "[pp. " + from + "-" + to + "]{" + key + "}"
		}
	})

	return doc
}
