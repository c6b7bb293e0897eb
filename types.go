package md2tex

import (
	"fmt"

	"github.com/alnah/go-md2tex/internal/assets"
)

// Document class constants.
const (
	ClassArticle = "article"
	ClassBook    = "book"
)

// Quote style constants.
const (
	QuotesEnglish = "english"
	QuotesFrench  = "french"
)

// Note style constants.
const (
	NotesFootnote = "footnote"
	NotesEndnote  = "endnote"
)

// DefaultTemplateName is the embedded template used for complete documents
// when no custom template is supplied.
const DefaultTemplateName = "default"

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content (required)

	Class      string // "article" or "book" (default: "article")
	Unnumbered bool   // Starred sectioning commands plus manual TOC entries
	Quotes     string // "english" or "french" (default: "english")
	Notes      string // "footnote" or "endnote" (default: "footnote")

	Language      string // Default syntax highlighting language (optional)
	ForceLanguage bool   // Apply Language even when blocks declare their own

	CompleteDocument bool   // Wrap the body in a document template
	Template         string // Custom template text (empty = embedded default)
}

// withDefaults returns a copy of the input with empty enum fields filled in.
func (in Input) withDefaults() Input {
	if in.Class == "" {
		in.Class = ClassArticle
	}
	if in.Quotes == "" {
		in.Quotes = QuotesEnglish
	}
	if in.Notes == "" {
		in.Notes = NotesFootnote
	}
	return in
}

// Validate checks that required fields are present and enums are known.
// Expects defaults to be applied first.
func (in Input) Validate() error {
	if in.Markdown == "" {
		return ErrEmptyMarkdown
	}
	switch in.Class {
	case ClassArticle, ClassBook:
	default:
		return fmt.Errorf("%w: %q (must be article or book)", ErrInvalidClass, in.Class)
	}
	switch in.Quotes {
	case QuotesEnglish, QuotesFrench:
	default:
		return fmt.Errorf("%w: %q (must be english or french)", ErrInvalidQuoteStyle, in.Quotes)
	}
	switch in.Notes {
	case NotesFootnote, NotesEndnote:
	default:
		return fmt.Errorf("%w: %q (must be footnote or endnote)", ErrInvalidNoteStyle, in.Notes)
	}
	return nil
}

// Metadata holds fields parsed from a leading YAML frontmatter block.
type Metadata struct {
	Title    string
	Subtitle string
	Author   string
	Date     string
}

// Warning is a non-fatal condition noticed during conversion.
type Warning struct {
	Code   string
	Detail string
}

// Warning codes.
const (
	WarnUnsupportedLanguage = "unsupported_language"
	WarnUnsupportedLink     = "unsupported_link"
	WarnDeepNesting         = "deep_nesting"
	WarnFrontmatter         = "frontmatter"
)

// Result contains the converted document and everything noticed on the way.
type Result struct {
	TeX      string    // Converted LaTeX (body only, or complete document)
	Metadata Metadata  // Parsed frontmatter fields, zero value when absent
	Warnings []Warning // Non-fatal conditions, in pipeline order
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	loader assets.AssetLoader
}

// WithAssetLoader sets a custom loader for document templates.
// Panics if loader is nil (programmer error).
func WithAssetLoader(loader assets.AssetLoader) Option {
	if loader == nil {
		panic("md2tex: WithAssetLoader loader must not be nil")
	}
	return func(s *Service) {
		s.cfg.loader = loader
	}
}
