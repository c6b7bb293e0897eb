package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	md2tex "github.com/alnah/go-md2tex"
	"github.com/alnah/go-md2tex/internal/assets"
	"github.com/alnah/go-md2tex/internal/config"
	"github.com/alnah/go-md2tex/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput      = errors.New("no input specified")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrReadTemplate = errors.New("failed to read template file")
	ErrWriteTeX     = errors.New("failed to write tex file")
)

// conversionParams groups parameters shared across the batch.
type conversionParams struct {
	class      string
	unnumbered bool
	quotes     string
	notes      string

	language      string
	forceLanguage bool

	complete bool
	template string // Raw template text, empty = embedded default

	stdout  bool
	quiet   bool
	verbose bool
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	// Load configuration
	cfg := env.Config
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(nil))
			}
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	// Resolve input path
	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	// Resolve output directory
	outputDir := flags.output
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no markdown files found in %s", inputPath)
	}

	params, err := buildParams(flags, cfg)
	if err != nil {
		return err
	}

	loader := env.AssetLoader
	if cfg.Assets.BasePath != "" {
		loader, err = assets.NewFilesystemLoader(cfg.Assets.BasePath)
		if err != nil {
			return fmt.Errorf("loading assets: %w", err)
		}
	}

	svc := md2tex.New(md2tex.WithAssetLoader(loader))
	results := convertBatch(ctx, svc, files, params, resolveWorkers(flags.workers, len(files)))

	failedCount := printResults(results, params, env)
	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}

	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.document.book {
		cfg.Document.Class = md2tex.ClassBook
	}
	if flags.document.unnumbered {
		cfg.Document.Unnumbered = true
	}
	if flags.document.frenchQuote {
		cfg.Document.Quotes = md2tex.QuotesFrench
	}
	if flags.document.endnote {
		cfg.Document.Notes = md2tex.NotesEndnote
	}

	if flags.code.language != "" {
		cfg.Code.Language = flags.code.language
	}
	if flags.code.force {
		cfg.Code.Force = true
	}

	if flags.template.complete {
		cfg.Template.Complete = true
	}
	if flags.template.path != "" {
		cfg.Template.Path = flags.template.path
		cfg.Template.Complete = true
	}

	if flags.stdout {
		cfg.Output.Stdout = true
	}
}

// buildParams resolves the per-batch conversion parameters, reading the
// custom template file once if one is configured.
func buildParams(flags *convertFlags, cfg *config.Config) (*conversionParams, error) {
	params := &conversionParams{
		class:         cfg.Document.Class,
		unnumbered:    cfg.Document.Unnumbered,
		quotes:        cfg.Document.Quotes,
		notes:         cfg.Document.Notes,
		language:      cfg.Code.Language,
		forceLanguage: cfg.Code.Force,
		complete:      cfg.Template.Complete,
		stdout:        cfg.Output.Stdout,
		quiet:         flags.common.quiet,
		verbose:       flags.common.verbose,
	}

	if cfg.Template.Path != "" {
		content, err := os.ReadFile(cfg.Template.Path) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadTemplate, err)
		}
		params.template = string(content)
	}

	return params, nil
}

// decorateError appends an actionable hint for well-known failures.
func decorateError(err error) error {
	switch {
	case errors.Is(err, md2tex.ErrTemplateToken):
		return fmt.Errorf("%w%s", err, hints.ForTemplateToken())
	case errors.Is(err, md2tex.ErrListIndentation):
		return fmt.Errorf("%w%s", err, hints.ForListIndentation())
	}
	return err
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveWorkers determines the batch concurrency.
// Priority: explicit flag > GOMAXPROCS-based default, capped by file count.
func resolveWorkers(flagWorkers, fileCount int) int {
	n := flagWorkers
	if n == 0 {
		n = autoWorkers()
	}
	if n > fileCount {
		n = fileCount
	}
	if n < 1 {
		n = 1
	}
	return n
}
