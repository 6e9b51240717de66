package main

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	resumemd "github.com/alnah/go-resumemd"
	"github.com/alnah/go-resumemd/internal/logger"
)

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	css      string
	html     bool // also write the paged HTML next to the PDF
	htmlOnly bool // write the paged HTML only
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Pages      int
	Warnings   []resumemd.Warning
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently using the converter pool.
// Results keep the order of files.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire()
			if err != nil {
				// Converter creation failed: this worker fails what it takes.
				for idx := range jobs {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       fmt.Errorf("starting converter: %w", err),
					}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
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
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	logger.Ctx(ctx).Debug().Str("file", f.InputPath).Msg("converting")

	markdown, err := readFile(f.InputPath)
	if err != nil {
		return fail(err)
	}

	convResult, err := conv.Convert(ctx, resumemd.Input{
		Markdown:  markdown,
		SourceDir: filepath.Dir(f.InputPath),
		CSS:       params.css,
		HTMLOnly:  params.htmlOnly,
	})
	if err != nil {
		return fail(err)
	}
	result.Pages = convResult.Pages()
	result.Warnings = convResult.Warnings

	if params.htmlOnly {
		if err := writeFile(f.OutputPath, convResult.HTML); err != nil {
			return fail(err)
		}
		result.Duration = time.Since(start)
		return result
	}

	if err := writeFile(f.OutputPath, convResult.PDF); err != nil {
		return fail(err)
	}
	if params.html {
		if err := writeFile(htmlOutputPath(f.OutputPath), convResult.HTML); err != nil {
			return fail(err)
		}
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
