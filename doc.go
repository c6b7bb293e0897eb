// Package md2tex converts Markdown documents to LaTeX.
//
// # Quick Start
//
// Create a service and convert markdown:
//
//	svc := md2tex.New()
//
//	result, err := svc.Convert(ctx, md2tex.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.tex", []byte(result.TeX), 0644)
//
// The result contains the LaTeX text (result.TeX), any frontmatter metadata
// (result.Metadata), and non-fatal warnings collected during conversion
// (result.Warnings).
//
// # Conversion Pipeline
//
// The converter works on the raw text with ordered regex passes instead of
// an AST. Code and math spans are shielded behind tokens first, LaTeX
// special characters are escaped, then structural passes rewrite media,
// quotes, lists, references and headers, and a final cleanup restores the
// shielded spans byte for byte.
//
// # Configuration
//
// Per-conversion options are passed via Input:
//
//	result, err := svc.Convert(ctx, md2tex.Input{
//	    Markdown:         content,
//	    Class:            md2tex.ClassBook,
//	    Quotes:           md2tex.QuotesFrench,
//	    Notes:            md2tex.NotesEndnote,
//	    Language:         "go",
//	    CompleteDocument: true,
//	})
//
// # Custom Templates
//
// Complete-document output splices the converted body into a template at
// the @@BODYTOKEN@@ marker. Pass custom template text via Input.Template,
// or load templates from a directory with a custom loader:
//
//	loader, err := assets.NewFilesystemLoader("/path/to/assets")
//	svc := md2tex.New(md2tex.WithAssetLoader(loader))
//
// Asset directory structure:
//
//	assets/
//	└── templates/
//	    └── default.tex
package md2tex
