package pipeline

import (
	"testing"
)

func TestConvertBlockQuotes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single line",
			input:    `\textgreater{} quoted text`,
			expected: "\\begin{quotation}\nquoted text\n\\end{quotation}",
		},
		{
			name:     "multi line run",
			input:    "\\textgreater{} first\n\\textgreater{} second",
			expected: "\\begin{quotation}\nfirst\nsecond\n\\end{quotation}",
		},
		{
			name:     "surrounding text kept",
			input:    "before\n\\textgreater{} quote\nafter",
			expected: "before\n\\begin{quotation}\nquote\n\\end{quotation}\nafter",
		},
		{
			name:     "two runs two environments",
			input:    "\\textgreater{} a\n\nplain\n\n\\textgreater{} b",
			expected: "\\begin{quotation}\na\n\\end{quotation}\n\nplain\n\n\\begin{quotation}\nb\n\\end{quotation}",
		},
		{
			name:     "no marker unchanged",
			input:    "plain text",
			expected: "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertBlockQuotes(tt.input)
			if got != tt.expected {
				t.Errorf("ConvertBlockQuotes() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConvertInlineQuotes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		style    string
		expected string
	}{
		{
			name:     "english double",
			input:    `she said "hello" then left`,
			style:    QuotesEnglish,
			expected: "she said ``hello'' then left",
		},
		{
			name:     "french double",
			input:    `she said "hello" then left`,
			style:    QuotesFrench,
			expected: `she said \enquote{hello} then left`,
		},
		{
			name:     "single quotes",
			input:    "the 'word' here",
			style:    QuotesEnglish,
			expected: "the `word' here",
		},
		{
			name:     "quote does not cross newline",
			input:    "a \" b\nc \" d",
			style:    QuotesEnglish,
			expected: "a \" b\nc \" d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertInlineQuotes(tt.input, tt.style)
			if got != tt.expected {
				t.Errorf("ConvertInlineQuotes() = %q, want %q", got, tt.expected)
			}
		})
	}
}
