package main

import (
	"errors"
	"testing"

	md2tex "github.com/alnah/go-md2tex"
	"github.com/alnah/go-md2tex/internal/config"
)

func TestMergeFlags(t *testing.T) {
	cfg := config.DefaultConfig()
	flags := &convertFlags{
		document: documentFlags{book: true, unnumbered: true, frenchQuote: true, endnote: true},
		code:     codeFlags{language: "go", force: true},
		template: templateFlags{path: "custom.tex"},
		stdout:   true,
	}

	mergeFlags(flags, cfg)

	if cfg.Document.Class != md2tex.ClassBook {
		t.Errorf("Class = %q", cfg.Document.Class)
	}
	if !cfg.Document.Unnumbered {
		t.Error("Unnumbered not set")
	}
	if cfg.Document.Quotes != md2tex.QuotesFrench {
		t.Errorf("Quotes = %q", cfg.Document.Quotes)
	}
	if cfg.Document.Notes != md2tex.NotesEndnote {
		t.Errorf("Notes = %q", cfg.Document.Notes)
	}
	if cfg.Code.Language != "go" || !cfg.Code.Force {
		t.Errorf("Code = %+v", cfg.Code)
	}
	if cfg.Template.Path != "custom.tex" {
		t.Errorf("Template.Path = %q", cfg.Template.Path)
	}
	if !cfg.Template.Complete {
		t.Error("custom template path did not imply complete")
	}
	if !cfg.Output.Stdout {
		t.Error("Stdout not set")
	}
}

func TestMergeFlagsKeepsConfigValues(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Document.Class = md2tex.ClassBook
	cfg.Code.Language = "python"

	mergeFlags(&convertFlags{}, cfg)

	if cfg.Document.Class != md2tex.ClassBook {
		t.Errorf("Class = %q, config value lost", cfg.Document.Class)
	}
	if cfg.Code.Language != "python" {
		t.Errorf("Language = %q, config value lost", cfg.Code.Language)
	}
}

func TestResolveInputPath(t *testing.T) {
	cfg := config.DefaultConfig()

	path, err := resolveInputPath([]string{"doc.md"}, cfg)
	if err != nil || path != "doc.md" {
		t.Errorf("resolveInputPath(args) = %q, %v", path, err)
	}

	cfg.Input.DefaultDir = "notes"
	path, err = resolveInputPath(nil, cfg)
	if err != nil || path != "notes" {
		t.Errorf("resolveInputPath(config) = %q, %v", path, err)
	}

	cfg.Input.DefaultDir = ""
	if _, err = resolveInputPath(nil, cfg); !errors.Is(err, ErrNoInput) {
		t.Errorf("resolveInputPath(empty) error = %v, want ErrNoInput", err)
	}
}

func TestResolveWorkers(t *testing.T) {
	tests := []struct {
		name        string
		flagWorkers int
		fileCount   int
		want        int
	}{
		{"explicit flag", 4, 10, 4},
		{"capped by file count", 8, 2, 2},
		{"at least one", 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveWorkers(tt.flagWorkers, tt.fileCount); got != tt.want {
				t.Errorf("resolveWorkers(%d, %d) = %d, want %d", tt.flagWorkers, tt.fileCount, got, tt.want)
			}
		})
	}
}

func TestCountResults(t *testing.T) {
	results := []ConversionResult{
		{InputPath: "a.md"},
		{InputPath: "b.md", Err: errors.New("boom")},
		{InputPath: "c.md"},
	}

	summary := countResults(results)
	if summary.Succeeded != 2 || summary.Failed != 1 {
		t.Errorf("summary = %+v", summary)
	}
}
