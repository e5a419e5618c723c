// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch parses many resume files concurrently with a bounded
// worker pool. One strategy value is shared by all workers.
package batch

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pdiddy/resume-parser/internal/loader"
	"github.com/pdiddy/resume-parser/internal/parser"
	"github.com/pdiddy/resume-parser/pkg/types"
)

// LoadFunc reads a file and returns normalized text.
type LoadFunc func(path string) (string, error)

// Item is the outcome for one input file.
type Item struct {
	Path   string
	Result types.ParseResult
	Err    error
}

// Result holds the outcome of a batch run. Items follow input order.
type Result struct {
	RunID  string
	Items  []Item
	Parsed int
	Failed int
}

// Total returns the number of files processed.
func (r Result) Total() int {
	return r.Parsed + r.Failed
}

// HasFailures reports whether any file failed.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Runner configures a batch run. Zero values fall back to the loader,
// types.DefaultWorkers and no input limit.
type Runner struct {
	Strategy       parser.Strategy
	Workers        int
	MaxInputLength int
	Load           LoadFunc
	Logger         zerolog.Logger
}

// Run parses paths and writes one progress line per file to w. A
// cancelled context marks the remaining files as failed.
func (r *Runner) Run(ctx context.Context, paths []string, w io.Writer) Result {
	res := Result{
		RunID: uuid.NewString(),
		Items: make([]Item, len(paths)),
	}
	log := r.Logger.With().Str("run_id", res.RunID).Logger()

	workers := r.Workers
	if workers <= 0 {
		workers = types.DefaultWorkers
	}
	workers = min(workers, max(len(paths), 1))

	log.Info().Int("files", len(paths)).Int("workers", workers).Msg("batch started")

	jobs := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res.Items[i] = r.parseOne(ctx, paths[i])
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, it := range res.Items {
		name := filepath.Base(it.Path)
		if it.Err != nil {
			res.Failed++
			fmt.Fprintf(w, "failed:  %s (%v)\n", name, it.Err)
			log.Warn().Err(it.Err).Str("file", it.Path).Msg("parse failed")
			continue
		}
		res.Parsed++
		fmt.Fprintf(w, "parsed:  %s (%d skills, %d sections)\n",
			name, len(it.Result.Skills), it.Result.Metadata.SectionsDetected)
	}

	log.Info().Int("parsed", res.Parsed).Int("failed", res.Failed).Msg("batch finished")
	return res
}

// LoadText reads path with the configured loader and enforces
// MaxInputLength.
func (r *Runner) LoadText(path string) (string, error) {
	load := r.Load
	if load == nil {
		load = loader.Load
	}
	text, err := load(path)
	if err != nil {
		return "", err
	}
	if err := parser.CheckInputLength(text, r.MaxInputLength); err != nil {
		return "", fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return text, nil
}

func (r *Runner) parseOne(ctx context.Context, path string) Item {
	it := Item{Path: path}
	if err := ctx.Err(); err != nil {
		it.Err = err
		return it
	}
	text, err := r.LoadText(path)
	if err != nil {
		it.Err = err
		return it
	}
	it.Result = r.Strategy.Parse(text)
	return it
}
