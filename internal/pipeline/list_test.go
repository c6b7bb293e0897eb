package pipeline

import (
	"errors"
	"strings"
	"testing"
)

func TestConvertUnorderedLists(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "flat list",
			input: "- a\n- b",
			expected: "\n\\begin{itemize}\n" +
				"\\item a\n" +
				"\\item b\n" +
				"\\end{itemize}",
		},
		{
			name:  "nested list",
			input: "- a\n  - b",
			expected: "\n\\begin{itemize}\n" +
				"\\item a\n" +
				"\\begin{itemize} \n \\item b\n" +
				"\\end{itemize}\n" +
				"\\end{itemize}",
		},
		{
			name:  "descend then ascend",
			input: "- a\n  - b\n- c",
			expected: "\n\\begin{itemize}\n" +
				"\\item a\n" +
				"\\begin{itemize} \n \\item b\n" +
				"\\end{itemize}\n" +
				"\\item c\n" +
				"\\end{itemize}",
		},
		{
			name:  "same indent everywhere is one level",
			input: "  - a\n  - b",
			expected: "\n\\begin{itemize}\n" +
				"\\item a\n" +
				"\\item b\n" +
				"\\end{itemize}",
		},
		{
			name:  "continuation folded into item",
			input: "- first line\n  continued text\n- second",
			expected: "\n\\begin{itemize}\n" +
				"\\item first line continued text\n" +
				"\\item second\n" +
				"\\end{itemize}",
		},
		{
			name:  "horizontal rule inside a block is a continuation",
			input: "- first\n---\n- second",
			expected: "\n\\begin{itemize}\n" +
				"\\item first ---\n" +
				"\\item second\n" +
				"\\end{itemize}",
		},
		{
			name:     "horizontal rule is not a list",
			input:    "---",
			expected: "---",
		},
		{
			name:     "plain text untouched",
			input:    "no list here",
			expected: "no list here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &Recorder{}
			got, err := ConvertUnorderedLists(tt.input, rec)
			if err != nil {
				t.Fatalf("ConvertUnorderedLists() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("ConvertUnorderedLists() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConvertUnorderedListsLevelJumpClamped(t *testing.T) {
	rec := &Recorder{}
	got, err := ConvertUnorderedLists("- a\n  - b\n      - c", rec)
	if err != nil {
		t.Fatalf("ConvertUnorderedLists() error = %v", err)
	}

	// The jump from level 1 to level 3 clamps to level 2: environments
	// stay balanced.
	opens := strings.Count(got, "\\begin{itemize}")
	closes := strings.Count(got, "\\end{itemize}")
	if opens != closes {
		t.Errorf("unbalanced environments: %d begin, %d end\n%s", opens, closes, got)
	}
	if opens != 3 {
		t.Errorf("expected 3 nested environments, got %d\n%s", opens, got)
	}
}

func TestConvertUnorderedListsIndentationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "non multiple indent",
			input: "- a\n  - b\n   - c",
		},
		{
			name:  "item left of first",
			input: "  - a\n- b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &Recorder{}
			_, err := ConvertUnorderedLists(tt.input, rec)
			if !errors.Is(err, ErrListIndentation) {
				t.Errorf("error = %v, want ErrListIndentation", err)
			}
		})
	}
}

func TestConvertUnorderedListsDeepNestingWarning(t *testing.T) {
	rec := &Recorder{}
	input := "- a\n  - b\n    - c\n      - d\n        - e"
	_, err := ConvertUnorderedLists(input, rec)
	if err != nil {
		t.Fatalf("ConvertUnorderedLists() error = %v", err)
	}

	warnings := rec.Warnings()
	if len(warnings) != 1 || warnings[0].Code != WarnDeepNesting {
		t.Errorf("expected one deep nesting warning, got %v", warnings)
	}
}

func TestConvertOrderedLists(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "flat list",
			input: "1. first\n2. second",
			expected: "\n\\begin{enumerate}\n" +
				"\\item first\n" +
				"\\item second\n" +
				"\\end{enumerate}",
		},
		{
			name:  "numbering sequence not validated",
			input: "7. first\n3. second",
			expected: "\n\\begin{enumerate}\n" +
				"\\item first\n" +
				"\\item second\n" +
				"\\end{enumerate}",
		},
		{
			name:  "nested",
			input: "1. a\n  1. b",
			expected: "\n\\begin{enumerate}\n" +
				"\\item a\n" +
				"\\begin{enumerate} \n \\item b\n" +
				"\\end{enumerate}\n" +
				"\\end{enumerate}",
		},
		{
			name:     "decimal number in prose untouched",
			input:    "version 2.5 shipped",
			expected: "version 2.5 shipped",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &Recorder{}
			got, err := ConvertOrderedLists(tt.input, rec)
			if err != nil {
				t.Fatalf("ConvertOrderedLists() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("ConvertOrderedLists() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConvertDefinitionLists(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "single pair",
			input: "Term\n: definition body",
			expected: "\n\\begin{description}\n" +
				"\\item[Term] definition body\n" +
				"\\end{description}",
		},
		{
			name:  "blank line between term and body",
			input: "Term\n\n: definition body",
			expected: "\n\\begin{description}\n" +
				"\\item[Term] definition body\n" +
				"\\end{description}",
		},
		{
			name:  "indented continuation",
			input: "Term\n: first part\n  second part",
			expected: "\n\\begin{description}\n" +
				"\\item[Term] first part second part\n" +
				"\\end{description}",
		},
		{
			name:  "consecutive pairs share a block",
			input: "Apple\n: a fruit\nBread\n: a staple",
			expected: "\n\\begin{description}\n" +
				"\\item[Apple] a fruit\n" +
				"\\item[Bread] a staple\n" +
				"\\end{description}",
		},
		{
			name:     "plain paragraph untouched",
			input:    "just text\nmore text",
			expected: "just text\nmore text",
		},
		{
			name:     "colon mid line is not a definition",
			input:    "note: this stays",
			expected: "note: this stays",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertDefinitionLists(tt.input)
			if got != tt.expected {
				t.Errorf("ConvertDefinitionLists() = %q, want %q", got, tt.expected)
			}
		})
	}
}
