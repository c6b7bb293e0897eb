package pipeline

import "github.com/dlclark/regexp2"

// substitutions is the ordered table for the remaining atomic constructs.
// Order matters: bold runs before italics so the shorter pattern cannot
// match inside the longer one. The adjacency guards keep both away from
// triple-marker runs. The line-break pattern matches the escaped form of
// <br>, since character escaping has already run.
var substitutions = []struct {
	pattern *regexp2.Regexp
	repl    string
}{
	{regexp2.MustCompile(`(?<!\*)\*{2}(?!\*)(.+?)(?<!\*)\*{2}(?!\*)`, 0), `\textbf{${1}}`},
	{regexp2.MustCompile(`(?<!\*)\*(?!\*)(.+?)(?<!\*)\*(?!\*)`, 0), `\textit{${1}}`},
	{regexp2.MustCompile(`-{3,}`, 0), `\par\noindent\rule{\linewidth}{0.4pt}`},
	{regexp2.MustCompile(`<br/?\\textgreater\{\}`, 0), "\n\n"},
	{regexp2.MustCompile(`!\[([^\[\]]*)\]\(([^()]*?\.(?:mp3|wav|ogg|m4a|flac))\)`, 0), `% audio: ${2}`},
}

// ApplySimpleSubstitutions runs the substitution table over the document.
// Audio embeds have no typeset representation and become comments.
func ApplySimpleSubstitutions(doc string) string {
	for _, sub := range substitutions {
		doc = replace2(sub.pattern, doc, sub.repl)
	}
	return doc
}
