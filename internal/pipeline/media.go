package pipeline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultFigureWidth is the fraction of \textwidth used when an image
// carries no width attribute.
const DefaultFigureWidth = 0.85

var (
	// Image embed with an optional attribute block. The pass runs on escaped
	// text, so the braces of { width=NN% } arrive as \{ ... \} and the
	// percent sign as \%.
	imageEmbed = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^()]*)\)(?:\\\{(.*?)\\\})?`)

	// Only the width attribute is honored; everything else is ignored.
	widthAttr = regexp.MustCompile(`width=(\d+)(?:\\%|%)`)

	// Audio embeds have no figure rendering and are left for the
	// substitution table.
	audioPath = regexp.MustCompile(`\.(?:mp3|wav|ogg|m4a|flac)$`)
)

// ConvertMedia rewrites image syntax into centered figure blocks. The alt
// text becomes the caption and the width attribute, a percentage, becomes a
// fraction of the text width.
func ConvertMedia(doc string) string {
	return imageEmbed.ReplaceAllStringFunc(doc, func(match string) string {
		m := imageEmbed.FindStringSubmatch(match)
		alt, path, attrs := m[1], m[2], m[3]

		if audioPath.MatchString(path) {
			return match
		}

		width := DefaultFigureWidth
		if w := widthAttr.FindStringSubmatch(attrs); w != nil {
			pct, err := strconv.Atoi(w[1])
			if err == nil {
				width = float64(pct) / 100
			}
		}

		var b strings.Builder
		b.WriteString("\n\\begin{figure}[h!]\n")
		b.WriteString("    \\centering\n")
		fmt.Fprintf(&b, "    \\includegraphics[width=%.2f\\textwidth]{%s}\n", width, path)
		fmt.Fprintf(&b, "    \\caption{%s}\n", alt)
		b.WriteString("\\end{figure}")
		return b.String()
	})
}
