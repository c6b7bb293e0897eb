package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	md2tex "github.com/alnah/go-md2tex"
	"github.com/alnah/go-md2tex/internal/hints"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	TeX        string
	Warnings   []md2tex.Warning
	Err        error
	Duration   time.Duration
}

// autoWorkers picks a default worker count from GOMAXPROCS
// (adjusted by automaxprocs in containers).
func autoWorkers() int {
	n := runtime.GOMAXPROCS(0)
	if n > 8 {
		return 8
	}
	return n
}

// convertBatch processes files concurrently. The service is stateless and
// safe for concurrent use, so all workers share it.
func convertBatch(ctx context.Context, svc *md2tex.Service, files []FileToConvert, params *conversionParams, concurrency int) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, svc, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, svc *md2tex.Service, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	convResult, err := svc.Convert(ctx, md2tex.Input{
		Markdown:         string(content),
		Class:            params.class,
		Unnumbered:       params.unnumbered,
		Quotes:           params.quotes,
		Notes:            params.notes,
		Language:         params.language,
		ForceLanguage:    params.forceLanguage,
		CompleteDocument: params.complete,
		Template:         params.template,
	})
	if err != nil {
		result.Err = decorateError(err)
		result.Duration = time.Since(start)
		return result
	}

	result.TeX = convResult.TeX
	result.Warnings = convResult.Warnings

	if params.stdout {
		result.Duration = time.Since(start)
		return result
	}

	outDir := filepath.Dir(f.OutputPath)
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		result.Err = fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory())
		result.Duration = time.Since(start)
		return result
	}

	// #nosec G306 -- tex files are meant to be readable
	if err := os.WriteFile(f.OutputPath, []byte(convResult.TeX), filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteTeX, err)
		result.Duration = time.Since(start)
		return result
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs conversion results using the environment writers.
// Returns the number of failed conversions.
func printResults(results []ConversionResult, params *conversionParams, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		for _, w := range r.Warnings {
			suffix := ""
			if w.Code == md2tex.WarnUnsupportedLanguage {
				suffix = hints.ForUnsupportedLanguage()
			}
			fmt.Fprintf(env.Stderr, "WARNING %s: %s: %s%s\n", r.InputPath, w.Code, w.Detail, suffix)
		}

		if params.stdout {
			fmt.Fprint(env.Stdout, r.TeX)
			continue
		}

		if params.quiet {
			continue
		}

		if params.verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !params.quiet && !params.stdout && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
