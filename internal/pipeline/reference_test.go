package pipeline

import (
	"strings"
	"testing"
)

func TestConvertFootnotes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		style    string
		expected string
	}{
		{
			name:     "pointer resolved against definition",
			input:    `claim[\^{}1] text` + "\n\n" + `[\^{}1]: supporting note`,
			style:    NotesFootnote,
			expected: `claim\footnote{supporting note} text` + "\n\n",
		},
		{
			name:     "endnote style",
			input:    `claim[\^{}1] text` + "\n\n" + `[\^{}1]: supporting note`,
			style:    NotesEndnote,
			expected: `claim\endnote{supporting note} text` + "\n\n",
		},
		{
			name:     "multiline definition joined",
			input:    `claim[\^{}2]` + "\n\n" + `[\^{}2]: first line` + "\n" + `second line`,
			style:    NotesFootnote,
			expected: `claim\footnote{first line second line}` + "\n\n",
		},
		{
			name:     "empty definition deletes both",
			input:    `claim[\^{}3] text` + "\n\n" + `[\^{}3]:`,
			style:    NotesFootnote,
			expected: `claim text` + "\n\n",
		},
		{
			name:     "dangling pointer swept",
			input:    `claim[\^{}4] text`,
			style:    NotesFootnote,
			expected: `claim text`,
		},
		{
			name:     "dangling definition swept",
			input:    "text\n\n" + `[\^{}5]: orphan note`,
			style:    NotesFootnote,
			expected: "text\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertFootnotes(tt.input, tt.style)
			if got != tt.expected {
				t.Errorf("ConvertFootnotes() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConvertHyperlinks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		warns    int
	}{
		{
			name:     "absolute http link",
			input:    "see [the site](https://example.com) now",
			expected: `see \href{https://example.com}{the site} now`,
		},
		{
			name:     "mailto link",
			input:    "write [us](mailto:team@example.com)",
			expected: `write \href{mailto:team@example.com}{us}`,
		},
		{
			name:     "relative link downgraded to text",
			input:    "see [notes](./notes.md) now",
			expected: "see notes now",
			warns:    1,
		},
		{
			name:     "anchor link downgraded to text",
			input:    "see [intro](#intro)",
			expected: "see intro",
			warns:    1,
		},
		{
			name:     "image embed untouched",
			input:    "![alt](https://example.com/i.png)",
			expected: "![alt](https://example.com/i.png)",
		},
		{
			name:     "mixed links handled in order",
			input:    "[a](https://a.io) and [b](b.md)",
			expected: `\href{https://a.io}{a} and b`,
			warns:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &Recorder{}
			got := ConvertHyperlinks(tt.input, rec)
			if got != tt.expected {
				t.Errorf("ConvertHyperlinks() = %q, want %q", got, tt.expected)
			}
			if len(rec.Warnings()) != tt.warns {
				t.Errorf("warnings = %d, want %d", len(rec.Warnings()), tt.warns)
			}
		})
	}
}

func TestConvertHyperlinksWarningDetail(t *testing.T) {
	rec := &Recorder{}
	ConvertHyperlinks("[t](./local.md)", rec)

	warnings := rec.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if warnings[0].Code != WarnUnsupportedLink {
		t.Errorf("code = %q, want %q", warnings[0].Code, WarnUnsupportedLink)
	}
	if !strings.Contains(warnings[0].Detail, "./local.md") {
		t.Errorf("detail = %q, want the target path", warnings[0].Detail)
	}
}

func TestConvertCitations(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single key",
			input:    "as shown [@smith2020] here",
			expected: `as shown \parencite{smith2020} here`,
		},
		{
			name:     "suppressed author",
			input:    "[-@smith2020]",
			expected: `\parencite*{smith2020}`,
		},
		{
			name:     "page locator",
			input:    "[@smith2020, p. 12]",
			expected: `\parencite[p. 12]{smith2020}`,
		},
		{
			name:     "page range locator",
			input:    "[@smith2020, pp. 12-15]",
			expected: `\parencite[pp. 12-15]{smith2020}`,
		},
		{
			name:     "bare locator without pp prefix",
			input:    "[@smith2020, 12]",
			expected: `\parencite[p. 12]{smith2020}`,
		},
		{
			name:     "multiple keys",
			input:    "[@smith2020; @jones2019]",
			expected: `\parencite{smith2020,jones2019}`,
		},
		{
			name:     "multi key group with locator unconverted",
			input:    "[@smith2020, p. 3; @jones2019]",
			expected: "[@smith2020, p. 3; @jones2019]",
		},
		{
			name:     "plain brackets untouched",
			input:    "[not a citation]",
			expected: "[not a citation]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertCitations(tt.input)
			if got != tt.expected {
				t.Errorf("ConvertCitations() = %q, want %q", got, tt.expected)
			}
		})
	}
}
