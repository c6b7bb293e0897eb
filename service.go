package md2tex

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2tex/internal/assets"
	"github.com/alnah/go-md2tex/internal/pipeline"
)

// Service orchestrates the markdown-to-LaTeX pipeline.
type Service struct {
	cfg serviceConfig
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithAssetLoader).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{loader: assets.NewEmbeddedLoader()},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Convert runs the full pipeline and returns the LaTeX document.
// The context is used for cancellation between stages.
func (s *Service) Convert(ctx context.Context, input Input) (*Result, error) {
	input = input.withDefaults()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rec := &pipeline.Recorder{}

	// Frontmatter metadata is read from the raw input; the block itself is
	// deleted later by the stripper stage. A malformed block is reported as
	// a warning, not an error.
	meta, err := pipeline.ParseMetadata(input.Markdown)
	if err != nil {
		rec.Add(pipeline.WarnFrontmatter, err.Error())
	}

	doc := pipeline.ConvertCodeBlocks(input.Markdown, input.Language, input.ForceLanguage, rec)
	doc = pipeline.ConvertInlineCode(doc, input.Language)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Math spans are shielded before escaping so $ delimiters survive.
	doc, mathTable := pipeline.ShieldMath(doc)

	// Prepare shields the built code environments and escapes the rest.
	doc, codeTable := pipeline.Prepare(doc)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	doc = pipeline.StripFrontmatter(doc)
	doc = pipeline.ConvertMedia(doc)

	doc = pipeline.ConvertBlockQuotes(doc)
	doc = pipeline.ConvertInlineQuotes(doc, input.Quotes)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	doc, err = pipeline.ConvertUnorderedLists(doc, rec)
	if err != nil {
		return nil, fmt.Errorf("converting unordered lists: %w", err)
	}
	doc, err = pipeline.ConvertOrderedLists(doc, rec)
	if err != nil {
		return nil, fmt.Errorf("converting ordered lists: %w", err)
	}
	doc = pipeline.ConvertDefinitionLists(doc)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	doc = pipeline.ConvertFootnotes(doc, input.Notes)
	doc = pipeline.ConvertHyperlinks(doc, rec)
	doc = pipeline.ConvertCitations(doc)

	doc = pipeline.ConvertHeaders(doc, input.Class, input.Unnumbered)
	doc = pipeline.ApplySimpleSubstitutions(doc)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	doc = pipeline.Cleanup(doc, codeTable, mathTable)

	metadata := toMetadata(meta)

	if input.CompleteDocument {
		template := input.Template
		if template == "" {
			template, err = s.cfg.loader.LoadTemplate(DefaultTemplateName)
			if err != nil {
				return nil, fmt.Errorf("loading template: %w", err)
			}
		}
		doc, err = spliceTemplate(template, doc, input.Class, metadata)
		if err != nil {
			return nil, err
		}
	}

	return &Result{
		TeX:      doc,
		Metadata: metadata,
		Warnings: toWarnings(rec.Warnings()),
	}, nil
}

// toMetadata converts the internal metadata type to the public one.
func toMetadata(m pipeline.Metadata) Metadata {
	return Metadata{
		Title:    m.Title,
		Subtitle: m.Subtitle,
		Author:   m.Author,
		Date:     m.Date,
	}
}

// toWarnings converts internal warnings to the public type.
func toWarnings(ws []pipeline.Warning) []Warning {
	if len(ws) == 0 {
		return nil
	}
	out := make([]Warning, len(ws))
	for i, w := range ws {
		out[i] = Warning(w)
	}
	return out
}
