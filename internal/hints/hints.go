// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2tex/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-md2tex") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForTemplateToken returns a hint for templates missing the body token.
func ForTemplateToken() string {
	return format("add @@BODYTOKEN@@ where the converted body should appear")
}

// ForUnsupportedLanguage returns a hint for unrecognized highlighting languages.
func ForUnsupportedLanguage() string {
	return format("code falls back to plain text; check the language name or use --force-language")
}

// ForListIndentation returns a hint for inconsistent list indentation.
func ForListIndentation() string {
	return format("indent nested items by a fixed multiple of the first indent, e.g. 2, 4, 6 spaces")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForInputExtension returns a hint for non-Markdown input paths.
func ForInputExtension() string {
	return format("expected a .md or .markdown file")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
