package pipeline

import (
	"fmt"
	"regexp"
	"strings"
)

// Document classes.
const (
	ClassBook    = "book"
	ClassArticle = "article"
)

// A header line after escaping: a run of \# markers and the title text.
var headerMarkers = regexp.MustCompile(`^[ \t]*((?:\\#)+)[ \t]*(.*)$`)

// headerStyle holds the sectioning commands for one (class, numbering)
// combination: one command per depth, and a bold-paragraph fallback for
// anything deeper.
type headerStyle struct {
	commands []string
	starred  bool
	fallback string
}

// styleFor selects the header style. Book starts at chapter, article at
// section; unnumbered styles use starred commands plus an explicit table of
// contents entry.
func styleFor(class string, unnumbered bool) headerStyle {
	commands := []string{"chapter", "section", "subsection", "subsubsection"}
	if class == ClassArticle {
		commands = []string{"section", "subsection", "subsubsection"}
	}
	// Only the numbered book style uses a bare bold paragraph; every other
	// combination suppresses the paragraph indent as well.
	fallback := "\n\n\\noindent{}\\textbf{%s}\n\n"
	if class == ClassBook && !unnumbered {
		fallback = "\n\n\\textbf{%s}\n\n"
	}
	return headerStyle{commands: commands, starred: unnumbered, fallback: fallback}
}

// render emits the sectioning command for one header. Depths past the
// deepest defined level collapse to the fallback, whatever the exact count.
func (s headerStyle) render(depth int, title string) string {
	if depth > len(s.commands) {
		return fmt.Sprintf(s.fallback, title)
	}
	cmd := s.commands[depth-1]
	if !s.starred {
		return fmt.Sprintf("\\%s{%s}\n", cmd, title)
	}
	return fmt.Sprintf("\\%s*{%s}\n\\addcontentsline{toc}{%s}{%s}\n", cmd, title, cmd, title)
}

// ConvertHeaders maps marker runs at line start to sectioning commands.
func ConvertHeaders(doc, class string, unnumbered bool) string {
	style := styleFor(class, unnumbered)

	lines := strings.Split(doc, "\n")
	for i, line := range lines {
		m := headerMarkers.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		depth := strings.Count(m[1], `\#`)
		lines[i] = style.render(depth, strings.TrimSpace(m[2]))
	}
	return strings.Join(lines, "\n")
}
