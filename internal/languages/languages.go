// Package languages is the registry of syntax-highlighting identifiers the
// code shield accepts. Resolution goes through chroma's lexer registry,
// which mirrors the Pygments lexer set that minted validates against, so an
// identifier accepted here highlights on the TeX side too.
package languages

import "github.com/alecthomas/chroma/v2/lexers"

// Default is the plain-text fallback used when a fence names no language or
// an unsupported one.
const Default = "text"

// IsSupported reports whether name resolves to a known lexer. Matching is
// by lexer name or alias, the way Pygments resolves identifiers.
func IsSupported(name string) bool {
	if name == "" {
		return false
	}
	return lexers.Get(name) != nil
}

// Resolve returns name when it is supported and Default otherwise. The
// boolean reports whether the fallback was taken.
func Resolve(name string) (string, bool) {
	if IsSupported(name) {
		return name, false
	}
	return Default, true
}
