package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds LaTeX document rendering flags.
type documentFlags struct {
	book        bool
	unnumbered  bool
	frenchQuote bool
	endnote     bool
}

// codeFlags holds syntax highlighting flags.
type codeFlags struct {
	language string
	force    bool
}

// templateFlags holds complete-document output flags.
type templateFlags struct {
	complete bool
	path     string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	output   string
	stdout   bool
	workers  int
	document documentFlags
	code     codeFlags
	template templateFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addDocumentFlags adds document rendering flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.BoolVarP(&f.book, "book", "b", false, "use the book document class (headers become chapters)")
	fs.BoolVarP(&f.unnumbered, "unnumbered", "n", false, "unnumbered headers with manual TOC entries")
	fs.BoolVarP(&f.frenchQuote, "french-quote", "f", false, "render quotes with \\enquote{}")
	fs.BoolVarP(&f.endnote, "endnote", "e", false, "render notes with \\endnote{} instead of \\footnote{}")
}

// addCodeFlags adds syntax highlighting flags to a FlagSet.
func addCodeFlags(fs *flag.FlagSet, f *codeFlags) {
	fs.StringVarP(&f.language, "language", "l", "", "default language for code without an info string")
	fs.BoolVar(&f.force, "force-language", false, "apply --language even when blocks declare their own")
}

// addTemplateFlags adds complete-document flags to a FlagSet.
func addTemplateFlags(fs *flag.FlagSet, f *templateFlags) {
	fs.BoolVarP(&f.complete, "complete", "C", false, "produce a complete document with preamble")
	fs.StringVarP(&f.path, "template", "t", "", "custom template file (implies --complete)")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.BoolVar(&f.stdout, "stdout", false, "print to stdout instead of writing files")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addCodeFlags(fs, &f.code)
	addTemplateFlags(fs, &f.template)

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
