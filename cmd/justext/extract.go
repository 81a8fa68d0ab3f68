package main

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fwojciec/justext"
	"github.com/fwojciec/justext/batch"
	"github.com/fwojciec/justext/fs"
	"github.com/fwojciec/justext/goquery"
	justexthtml "github.com/fwojciec/justext/html"
	justextslog "github.com/fwojciec/justext/slog"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	extractor, err := c.buildExtractor(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", justext.ErrorMessage(err))
		return err
	}

	if len(c.Paths) == 0 {
		return c.runStdin(deps, extractor)
	}
	return c.runPaths(deps, extractor)
}

// buildExtractor assembles the extraction pipeline from the command flags.
func (c *ExtractCmd) buildExtractor(deps *Dependencies) (justext.Extractor, error) {
	config := justext.Config{
		LengthLow:          c.LengthLow,
		LengthHigh:         c.LengthHigh,
		StopwordsLow:       c.StopwordsLow,
		StopwordsHigh:      c.StopwordsHigh,
		MaxLinkDensity:     c.MaxLinkDensity,
		MaxHeadingDistance: c.MaxHeadingDistance,
		NoHeadings:         c.NoHeadings,
	}

	stoplist := justext.NewStoplist()
	if c.NoStopwords {
		// Without a stoplist the stopword rules cannot fire; zeroing the
		// thresholds keeps longer paragraphs classifiable as good.
		config.StopwordsLow = 0
		config.StopwordsHigh = 0
	} else {
		var err error
		stoplist, err = deps.Stoplists.Stoplist(c.Language)
		if err != nil {
			return nil, err
		}
	}

	extractor, err := justexthtml.NewExtractor(stoplist,
		justexthtml.WithConfig(config),
		justexthtml.WithCleaner(goquery.NewCleaner()),
	)
	if err != nil {
		return nil, err
	}

	if deps.Verbose {
		return justextslog.NewLoggingExtractor(extractor, deps.Logger), nil
	}
	return extractor, nil
}

// runStdin processes a single document read from standard input.
func (c *ExtractCmd) runStdin(deps *Dependencies, extractor justext.Extractor) error {
	raw, err := io.ReadAll(deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: reading stdin: %s\n", err)
		return err
	}

	src, err := justexthtml.Decode(raw, "", c.Encoding)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", justext.ErrorMessage(err))
		return err
	}

	paragraphs, err := extractor.Classify(src)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", justext.ErrorMessage(err))
		return err
	}

	return c.emit(deps, []batch.Result{{Name: "stdin", Paragraphs: paragraphs}})
}

// runPaths processes the named files and URLs concurrently, emitting
// results in input order.
func (c *ExtractCmd) runPaths(deps *Dependencies, extractor justext.Extractor) error {
	proc := &batch.Processor{
		Fetcher:     deps.Fetcher,
		Extractor:   extractor,
		RetryDelays: deps.RetryDelays,
		Concurrency: c.Concurrency,
		Encoding:    c.Encoding,
		Logger:      deps.Logger,
	}
	if c.RateLimit > 0 {
		proc.Limiter = batch.NewHostLimiter(c.RateLimit)
	}

	var progress batch.ProgressFunc
	if deps.Verbose {
		progress = func(ev batch.Progress) {
			status := "ok"
			if ev.Err != nil {
				status = "failed"
			}
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s %s\n", ev.Completed, ev.Total, status, batch.TruncateURL(ev.Name, 60))
		}
	}

	results := proc.Run(deps.Ctx, c.Paths, progress)
	return c.emit(deps, results)
}

// emit writes classified results to stdout or, with --output-dir, to a
// staged directory that is committed only when something succeeded.
func (c *ExtractCmd) emit(deps *Dependencies, results []batch.Result) error {
	var deduper *batch.Deduper
	if c.Dedupe {
		deduper = batch.NewDeduper(batch.DefaultExpectedDocuments, batch.DefaultFalsePositiveRate)
	}

	var store justext.ResultStore
	if c.OutputDir != "" {
		store = fs.NewStore(filepath.Dir(c.OutputDir), filepath.Base(c.OutputDir))
	}

	var failed, written int
	var totalBytes int
	for _, result := range results {
		if result.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", result.Name, result.Err)
			continue
		}

		if deduper != nil && deduper.Seen(justext.GoodText(result.Paragraphs)) {
			if deps.Verbose {
				fmt.Fprintf(deps.Stderr, "duplicate: %s\n", result.Name)
			}
			continue
		}

		if store == nil {
			if err := writeOutput(deps.Stdout, c.Format, deps.Renderer, result); err != nil {
				return err
			}
			continue
		}

		var buf bytes.Buffer
		if err := writeOutput(&buf, c.Format, deps.Renderer, result); err != nil {
			_ = store.Abort()
			return err
		}
		path := fs.NameToPath(result.Name) + formatExtension(c.Format)
		if err := store.Save(deps.Ctx, path, buf.String()); err != nil {
			_ = store.Abort()
			return err
		}
		written++
		totalBytes += buf.Len()
	}

	// The staging directory only exists once something was saved into it.
	// Committing an empty batch would remove a previous run's output and
	// have nothing to put in its place.
	if store != nil {
		if written == 0 {
			_ = store.Abort()
		} else {
			if err := store.Commit(); err != nil {
				return err
			}
			fmt.Fprintf(deps.Stderr, "Wrote %d files (%s) to %s\n", written, batch.FormatBytes(totalBytes), c.OutputDir)
		}
	}

	if failed > 0 {
		return justext.Errorf(justext.EINTERNAL, "failed to process %d of %d inputs", failed, len(results))
	}
	return nil
}
