package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alnah/go-md2tex/internal/yamlutil"
)

// frontmatterBlock matches a metadata block at the very start of the
// document: a --- line, anything up to the next --- line.
var frontmatterBlock = regexp.MustCompile(`(?s)\A---\n(.*?)\n---\n?`)

// Metadata carries the fields read from YAML frontmatter. Unknown keys are
// ignored; the template substitution fills whichever tokens exist.
type Metadata struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Author   string `yaml:"author"`
	Date     string `yaml:"date"`
}

// ParseMetadata reads frontmatter from the raw, unescaped document. A
// missing block yields zero metadata and no error; a malformed block yields
// zero metadata and an error the caller may downgrade to a warning.
func ParseMetadata(doc string) (Metadata, error) {
	var meta Metadata
	m := frontmatterBlock.FindStringSubmatch(doc)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return meta, nil
	}
	if err := yamlutil.Unmarshal([]byte(m[1]), &meta); err != nil {
		return Metadata{}, fmt.Errorf("parsing frontmatter: %w", err)
	}
	return meta, nil
}

// StripFrontmatter deletes a leading metadata block from the document body.
func StripFrontmatter(doc string) string {
	return frontmatterBlock.ReplaceAllString(doc, "")
}
