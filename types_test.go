package md2tex

import (
	"errors"
	"testing"
)

func TestInputWithDefaults(t *testing.T) {
	in := Input{Markdown: "x"}.withDefaults()
	if in.Class != ClassArticle {
		t.Errorf("Class = %q, want %q", in.Class, ClassArticle)
	}
	if in.Quotes != QuotesEnglish {
		t.Errorf("Quotes = %q, want %q", in.Quotes, QuotesEnglish)
	}
	if in.Notes != NotesFootnote {
		t.Errorf("Notes = %q, want %q", in.Notes, NotesFootnote)
	}

	in = Input{Markdown: "x", Class: ClassBook, Quotes: QuotesFrench, Notes: NotesEndnote}.withDefaults()
	if in.Class != ClassBook || in.Quotes != QuotesFrench || in.Notes != NotesEndnote {
		t.Errorf("defaults overwrote explicit values: %+v", in)
	}
}

func TestInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Input)
		wantErr error
	}{
		{"valid", func(in *Input) {}, nil},
		{"empty markdown", func(in *Input) { in.Markdown = "" }, ErrEmptyMarkdown},
		{"bad class", func(in *Input) { in.Class = "letter" }, ErrInvalidClass},
		{"bad quotes", func(in *Input) { in.Quotes = "german" }, ErrInvalidQuoteStyle},
		{"bad notes", func(in *Input) { in.Notes = "margin" }, ErrInvalidNoteStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Input{Markdown: "x"}.withDefaults()
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestWithAssetLoaderNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("WithAssetLoader(nil) did not panic")
		}
	}()
	WithAssetLoader(nil)
}
