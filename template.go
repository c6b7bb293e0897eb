package md2tex

import (
	"strings"
)

// Template substitution tokens.
const (
	bodyToken   = "@@BODYTOKEN@@"
	classToken  = "@@CLASSTOKEN@@"
	titleToken  = "@@TITLETOKEN@@"
	authorToken = "@@AUTHORTOKEN@@"
	dateToken   = "@@DATETOKEN@@"
)

// spliceTemplate fills a document template with the class, metadata fields
// and the converted body. Only the body token is required; the others are
// replaced when present. The body is spliced last so that body text is
// never scanned for tokens.
func spliceTemplate(template, body, class string, meta Metadata) (string, error) {
	if !strings.Contains(template, bodyToken) {
		return "", ErrTemplateToken
	}

	doc := strings.ReplaceAll(template, classToken, class)
	doc = strings.ReplaceAll(doc, titleToken, meta.Title)
	doc = strings.ReplaceAll(doc, authorToken, meta.Author)
	doc = strings.ReplaceAll(doc, dateToken, meta.Date)

	return strings.Replace(doc, bodyToken, body, 1), nil
}
