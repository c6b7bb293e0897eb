// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsMarkdownPath returns true if the path carries a Markdown extension.
// Recognized extensions: .md, .markdown (case-insensitive).
func IsMarkdownPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// DeriveOutputPath returns the .tex output path for a Markdown input path.
// The Markdown extension is replaced; any other extension is kept and
// .tex is appended, so the caller can warn about the unusual name.
//
// Examples:
//   - "notes.md" -> "notes.tex"
//   - "doc.markdown" -> "doc.tex"
//   - "report.txt" -> "report.txt.tex"
func DeriveOutputPath(inputPath string) string {
	if IsMarkdownPath(inputPath) {
		ext := filepath.Ext(inputPath)
		return strings.TrimSuffix(inputPath, ext) + ".tex"
	}
	return inputPath + ".tex"
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
