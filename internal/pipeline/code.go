package pipeline

import (
	"regexp"
	"strings"

	"github.com/alnah/go-md2tex/internal/languages"
)

// Precompiled patterns for fenced and inline code spans.
var (
	// Fenced block, non-greedy across lines.
	fencedBlock = regexp.MustCompile("(?s)```.*?```")

	// Info string sub-patterns, each optional and order-insensitive.
	infoLang    = regexp.MustCompile(`^([0-9A-Za-z_-]+) *`)
	infoTitle   = regexp.MustCompile(`title="([^"]+)"`)
	infoHlLines = regexp.MustCompile(`hl_lines="([^"]+)"`)

	// Inline span: one backtick pair, no embedded newline. Unterminated or
	// multi-line attempts stay unmatched.
	inlineCode = regexp.MustCompile("`([^`\n]+)`")
)

// ConvertCodeBlocks rewrites every fenced code block into a listing/minted
// environment. Runs before any other pass so block bodies are never
// reinterpreted as markup. The first fence line is parsed as an info string
// carrying a language, an optional title="..." caption, and an optional
// hl_lines="..." attribute. When force is set the configured language wins
// over whatever the info string says; otherwise the parsed language is
// checked against the registry and falls back to the default with a warning.
func ConvertCodeBlocks(doc, language string, force bool, rec *Recorder) string {
	return fencedBlock.ReplaceAllStringFunc(doc, func(block string) string {
		inner := strings.TrimSuffix(strings.TrimPrefix(block, "```"), "```")

		info := inner
		body := ""
		if idx := strings.Index(inner, "\n"); idx >= 0 {
			info = inner[:idx]
			body = inner[idx+1:]
		}
		info = strings.TrimSpace(info)

		return buildListing(info, body, blockLanguage(info, language, force, rec))
	})
}

// blockLanguage picks the highlighting language for one block.
func blockLanguage(info, configured string, force bool, rec *Recorder) string {
	if force {
		if configured == "" {
			return languages.Default
		}
		return configured
	}
	m := infoLang.FindStringSubmatch(info)
	if m == nil {
		return languages.Default
	}
	lang, fellBack := languages.Resolve(m[1])
	if fellBack {
		rec.Add(WarnUnsupportedLanguage, m[1])
	}
	return lang
}

// buildListing assembles the listing environment around a verbatim minted
// body. The body is copied whitespace-for-whitespace.
func buildListing(info, body, lang string) string {
	var b strings.Builder
	b.WriteString("\n\\begin{listing}[H]\n")
	b.WriteString("\\begin{minted}")
	if hl := infoHlLines.FindStringSubmatch(info); hl != nil {
		b.WriteString("[highlightlines={")
		b.WriteString(strings.Join(strings.Fields(hl[1]), ", "))
		b.WriteString("}]")
	}
	b.WriteString("{")
	b.WriteString(lang)
	b.WriteString("}\n")
	b.WriteString(body)
	if body != "" && !strings.HasSuffix(body, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("\\end{minted}\n")
	if ti := infoTitle.FindStringSubmatch(info); ti != nil {
		b.WriteString("\\caption{")
		b.WriteString(ti[1])
		b.WriteString("}\n")
	}
	b.WriteString("\\end{listing}")
	return b.String()
}

// ConvertInlineCode rewrites single-backtick spans into \mintinline
// constructs parameterized by the configured language. An empty language
// falls back to the plain-text default, since minted rejects an empty
// language argument.
func ConvertInlineCode(doc, language string) string {
	if language == "" {
		language = languages.Default
	}
	return inlineCode.ReplaceAllString(doc, `\mintinline{`+language+`}{${1}}`)
}
