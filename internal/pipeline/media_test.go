package pipeline

import (
	"testing"
)

func TestConvertMedia(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "default width",
			input: "![A chart](chart.png)",
			expected: "\n\\begin{figure}[h!]\n" +
				"    \\centering\n" +
				"    \\includegraphics[width=0.85\\textwidth]{chart.png}\n" +
				"    \\caption{A chart}\n" +
				"\\end{figure}",
		},
		{
			name:  "explicit width",
			input: `![A chart](chart.png)\{ width=50\% \}`,
			expected: "\n\\begin{figure}[h!]\n" +
				"    \\centering\n" +
				"    \\includegraphics[width=0.50\\textwidth]{chart.png}\n" +
				"    \\caption{A chart}\n" +
				"\\end{figure}",
		},
		{
			name:  "empty alt",
			input: "![](img.jpg)",
			expected: "\n\\begin{figure}[h!]\n" +
				"    \\centering\n" +
				"    \\includegraphics[width=0.85\\textwidth]{img.jpg}\n" +
				"    \\caption{}\n" +
				"\\end{figure}",
		},
		{
			name:     "audio embed left alone",
			input:    "![song](track.mp3)",
			expected: "![song](track.mp3)",
		},
		{
			name:     "hyperlink untouched",
			input:    "[text](page.html)",
			expected: "[text](page.html)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertMedia(tt.input)
			if got != tt.expected {
				t.Errorf("ConvertMedia() = %q, want %q", got, tt.expected)
			}
		})
	}
}
