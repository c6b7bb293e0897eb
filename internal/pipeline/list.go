package pipeline

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// LaTeX refuses lists nested deeper than four levels without extra setup.
const maxListDepth = 4

// ErrListIndentation reports list items whose indentation cannot be
// quantized into nesting levels.
var ErrListIndentation = errors.New("inconsistent list indentation")

var (
	leadingWhitespace = regexp.MustCompile(`^[ \t]*`)

	unorderedMarker = regexp.MustCompile(`^[ \t]*-`)
	horizontalRun   = regexp.MustCompile(`^[ \t]*-{3,}`)
	unorderedStrip  = regexp.MustCompile(`^[ \t]*-[ \t]*`)

	orderedMarker = regexp.MustCompile(`^[ \t]*\d+\.`)
	orderedStrip  = regexp.MustCompile(`^[ \t]*\d+\.[ \t]*`)

	defBodyMarker = regexp.MustCompile(`^[ \t]*:[ \t]+`)
	headerLine    = regexp.MustCompile(`^[ \t]*(\\#)+`)
)

// listItem is the transient intermediate built per matched block: the item
// text with its marker stripped, and the quantized nesting level.
type listItem struct {
	text  string
	level int
}

// ConvertUnorderedLists rewrites bullet lists into nested itemize
// environments.
func ConvertUnorderedLists(doc string, rec *Recorder) (string, error) {
	isItem := func(line string) bool {
		return unorderedMarker.MatchString(line) && !horizontalRun.MatchString(line)
	}
	return convertMarkerLists(doc, isItem, unorderedStrip, "itemize", rec)
}

// ConvertOrderedLists rewrites numbered lists into nested enumerate
// environments. Any digit run before the dot is accepted; the numbering
// sequence is not validated.
func ConvertOrderedLists(doc string, rec *Recorder) (string, error) {
	isItem := func(line string) bool {
		return orderedMarker.MatchString(line)
	}
	return convertMarkerLists(doc, isItem, orderedStrip, "enumerate", rec)
}

// convertMarkerLists scans for maximal runs of non-blank lines opening on a
// marker line, folds lazy continuations into their item, quantizes
// indentation, and emits one nested environment per run. The isItem
// predicate decides item lines both at block start and inside a block, so a
// horizontal rule never opens or splits a bullet list.
func convertMarkerLists(doc string, isItem func(string) bool, strip *regexp.Regexp, env string, rec *Recorder) (string, error) {
	lines := strings.Split(doc, "\n")
	out := make([]string, 0, len(lines))

	i := 0
	for i < len(lines) {
		if !isItem(lines[i]) {
			out = append(out, lines[i])
			i++
			continue
		}

		// The block ends at the first blank line: anything non-blank is
		// either another marker line or a continuation of the current item.
		j := i
		for j < len(lines) && strings.TrimSpace(lines[j]) != "" {
			j++
		}

		itemLines := foldContinuations(lines[i:j], isItem)
		items, err := quantizeItems(itemLines, strip)
		if err != nil {
			return "", err
		}

		depth := 0
		for _, it := range items {
			if it.level+1 > depth {
				depth = it.level + 1
			}
		}
		if depth > maxListDepth {
			rec.Add(WarnDeepNesting, strings.Join(itemLines, "\n"))
		}

		out = append(out, buildNestedList(items, env))
		i = j
	}

	return strings.Join(out, "\n"), nil
}

// foldContinuations joins every non-item line onto the preceding item.
func foldContinuations(block []string, isItem func(string) bool) []string {
	var items []string
	for _, line := range block {
		if len(items) == 0 || isItem(line) {
			items = append(items, line)
			continue
		}
		items[len(items)-1] += " " + strings.TrimSpace(line)
	}
	return items
}

// quantizeItems turns leading indentation widths into nesting levels. The
// first line sets the base; the first indented item sets the multiplier
// every other indentation must be a multiple of. Level jumps greater than
// one are clamped to a single step, the way visual indentation is read.
func quantizeItems(itemLines []string, strip *regexp.Regexp) ([]listItem, error) {
	if len(itemLines) == 0 {
		return nil, nil
	}

	base := len(leadingWhitespace.FindString(itemLines[0]))
	indents := make([]int, len(itemLines))
	distinct := make(map[int]struct{})
	for i, line := range itemLines {
		n := len(leadingWhitespace.FindString(line)) - base
		if n < 0 {
			return nil, fmt.Errorf("%w: items must be at least as indented as the first item:\n%s",
				ErrListIndentation, strings.Join(itemLines, "\n"))
		}
		indents[i] = n
		distinct[n] = struct{}{}
	}

	if len(distinct) > 1 {
		mult := 0
		for _, n := range indents {
			if n != 0 {
				mult = n
				break
			}
		}
		prev := 0
		for i, n := range indents {
			if n%mult != 0 {
				return nil, fmt.Errorf("%w: the first indented item sets the indentation multiplier:\n%s",
					ErrListIndentation, strings.Join(itemLines, "\n"))
			}
			level := n / mult
			if level > prev+1 {
				level = prev + 1
			}
			indents[i] = level
			prev = level
		}
	} else {
		for i := range indents {
			indents[i] = 0
		}
	}

	items := make([]listItem, len(itemLines))
	for i, line := range itemLines {
		items[i] = listItem{
			text:  strings.TrimRight(strip.ReplaceAllString(line, ""), " \t"),
			level: indents[i],
		}
	}
	return items, nil
}

// buildNestedList emits the environment tree for a level sequence: opening
// (current-previous) environments on the way up, closing on the way down,
// and closing everything still open after the last item.
func buildNestedList(items []listItem, env string) string {
	begin := "\\begin{" + env + "}"
	end := "\\end{" + env + "}"

	var b strings.Builder
	prev := 0
	for _, it := range items {
		switch diff := it.level - prev; {
		case diff > 0:
			b.WriteString(strings.Repeat(begin+" \n \\item ", diff))
			b.WriteString(it.text + "\n")
		case diff < 0:
			b.WriteString(strings.Repeat(end+"\n", -diff))
			b.WriteString("\\item " + it.text + "\n")
		default:
			b.WriteString("\\item " + it.text + "\n")
		}
		prev = it.level
	}
	b.WriteString(strings.Repeat(end+"\n", prev))

	return "\n" + begin + "\n" + b.String() + end
}

// definitionPair is one term with its gathered body text.
type definitionPair struct {
	term string
	body string
}

// ConvertDefinitionLists rewrites term/body pairs into description
// environments. A pair is a plain term line followed, within at most two
// blank lines, by one or more colon-marked body lines; indented lines after
// a body line continue it. Directly consecutive pairs share one block.
func ConvertDefinitionLists(doc string) string {
	lines := strings.Split(doc, "\n")
	out := make([]string, 0, len(lines))

	i := 0
	for i < len(lines) {
		pairs, next := scanDefinitionBlock(lines, i)
		if pairs == nil {
			out = append(out, lines[i])
			i++
			continue
		}
		out = append(out, buildDescription(pairs))
		i = next
	}

	return strings.Join(out, "\n")
}

// scanDefinitionBlock gathers consecutive term/body pairs starting at line
// i. Returns nil when line i does not open a definition.
func scanDefinitionBlock(lines []string, i int) ([]definitionPair, int) {
	var pairs []definitionPair

	pos := i
	for pos < len(lines) {
		term, bodyStart := matchDefinitionTerm(lines, pos)
		if bodyStart < 0 {
			break
		}

		var parts []string
		k := bodyStart
		for k < len(lines) {
			line := lines[k]
			if defBodyMarker.MatchString(line) {
				parts = append(parts, strings.TrimSpace(defBodyMarker.ReplaceAllString(line, "")))
			} else if strings.TrimSpace(line) != "" && isIndented(line) {
				parts = append(parts, strings.TrimSpace(line))
			} else {
				break
			}
			k++
		}

		pairs = append(pairs, definitionPair{
			term: strings.TrimSpace(term),
			body: strings.Join(parts, " "),
		})

		// Group the next pair only when it follows with at most one blank
		// line in between.
		pos = k
		if pos < len(lines) && strings.TrimSpace(lines[pos]) == "" {
			if _, next := matchDefinitionTerm(lines, pos+1); next >= 0 {
				pos++
			}
		}
	}

	if len(pairs) == 0 {
		return nil, i
	}
	return pairs, pos
}

// matchDefinitionTerm checks whether lines[i] is a term line whose body
// starts within two blank lines. Returns the term and the body line index,
// or -1 when there is no definition here.
func matchDefinitionTerm(lines []string, i int) (string, int) {
	if i >= len(lines) {
		return "", -1
	}
	term := lines[i]
	if strings.TrimSpace(term) == "" ||
		defBodyMarker.MatchString(term) ||
		unorderedMarker.MatchString(term) ||
		orderedMarker.MatchString(term) ||
		headerLine.MatchString(term) {
		return "", -1
	}

	k := i + 1
	for blanks := 0; k < len(lines) && strings.TrimSpace(lines[k]) == "" && blanks < 2; blanks++ {
		k++
	}
	if k >= len(lines) || !defBodyMarker.MatchString(lines[k]) {
		return "", -1
	}
	return term, k
}

// isIndented reports whether the line starts with whitespace.
func isIndented(line string) bool {
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
}

// buildDescription emits one description environment for a group of pairs.
func buildDescription(pairs []definitionPair) string {
	var b strings.Builder
	b.WriteString("\n\\begin{description}\n")
	for _, p := range pairs {
		fmt.Fprintf(&b, "\\item[%s] %s\n", p.term, p.body)
	}
	b.WriteString("\\end{description}")
	return b.String()
}
