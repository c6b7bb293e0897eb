package md2tex

import (
	"errors"

	"github.com/alnah/go-md2tex/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown     = errors.New("markdown content cannot be empty")
	ErrInvalidClass      = errors.New("invalid document class")
	ErrInvalidQuoteStyle = errors.New("invalid quote style")
	ErrInvalidNoteStyle  = errors.New("invalid note style")

	// ErrTemplateToken indicates a document template without the body token.
	ErrTemplateToken = errors.New("template missing @@BODYTOKEN@@")

	// ErrListIndentation indicates nested list items whose indentation is
	// not a consistent multiple of the first indent.
	ErrListIndentation = pipeline.ErrListIndentation
)
