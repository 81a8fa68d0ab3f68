// Package batch runs the extraction pipeline over many inputs at once.
// It coordinates fetching, decoding, retries and per-host rate limiting,
// and reports per-input outcomes in input order.
package batch

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/justext"
	justexthtml "github.com/fwojciec/justext/html"
)

// DefaultConcurrency is the worker limit used when none is configured.
const DefaultConcurrency = 10

// Limiter defers fetches until a host may be contacted again.
type Limiter interface {
	Wait(ctx context.Context, host string) error
}

// Processor loads named inputs (local files or http(s) URLs) and runs
// the extraction pipeline over them with bounded concurrency.
type Processor struct {
	// Fetcher retrieves URL inputs. Leaving it nil makes URL inputs fail
	// with EINVALID; local files still work.
	Fetcher justext.Fetcher

	// Extractor classifies loaded documents. Required for Run.
	Extractor justext.Extractor

	// Limiter, if set, is consulted with the URL host before each fetch.
	Limiter Limiter

	// RetryDelays are the backoff delays between fetch attempts.
	// nil means DefaultRetryDelays; an empty slice disables retries.
	RetryDelays []time.Duration

	// Concurrency bounds the number of inputs processed at once.
	// Values below 1 mean DefaultConcurrency.
	Concurrency int

	// Encoding forces a character encoding for local files instead of
	// detecting one.
	Encoding string

	// Logger, if set, records fetch retries.
	Logger *slog.Logger
}

// Source is one loaded input.
type Source struct {
	Name string
	HTML string
	Err  error
}

// Result is one classified input.
type Result struct {
	Name       string
	Paragraphs []*justext.Paragraph
	Err        error
}

// Progress reports the completion of one input.
type Progress struct {
	Name      string
	Completed int
	Total     int
	Err       error
}

// ProgressFunc is a callback for reporting batch progress. It is never
// called concurrently.
type ProgressFunc func(Progress)

// Load fetches or reads every named input and returns the decoded HTML
// in input order. Failures are recorded per input and do not stop the
// batch.
func (p *Processor) Load(ctx context.Context, names []string, progress ProgressFunc) []Source {
	sources := make([]Source, len(names))
	p.forEach(ctx, names, progress, func(ctx context.Context, i int) error {
		html, err := p.load(ctx, names[i])
		sources[i] = Source{Name: names[i], HTML: html, Err: err}
		return err
	})
	return sources
}

// Run loads every named input and classifies it, returning paragraphs in
// input order. Failures are recorded per input and do not stop the batch.
func (p *Processor) Run(ctx context.Context, names []string, progress ProgressFunc) []Result {
	results := make([]Result, len(names))
	p.forEach(ctx, names, progress, func(ctx context.Context, i int) error {
		html, err := p.load(ctx, names[i])
		if err != nil {
			results[i] = Result{Name: names[i], Err: err}
			return err
		}
		paragraphs, err := p.Extractor.Classify(html)
		results[i] = Result{Name: names[i], Paragraphs: paragraphs, Err: err}
		return err
	})
	return results
}

// forEach runs work for every input with bounded concurrency, invoking
// progress under a lock as each input finishes.
func (p *Processor) forEach(ctx context.Context, names []string, progress ProgressFunc, work func(ctx context.Context, i int) error) {
	concurrency := p.Concurrency
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var mu sync.Mutex
	completed := 0
	total := len(names)

	for i := range names {
		g.Go(func() error {
			err := work(gctx, i)
			if progress != nil {
				mu.Lock()
				completed++
				progress(Progress{Name: names[i], Completed: completed, Total: total, Err: err})
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
}

// load reads one input as UTF-8 text. URL inputs are rate limited and
// fetched with retries; anything else is read from disk and decoded.
func (p *Processor) load(ctx context.Context, name string) (string, error) {
	if IsURL(name) {
		return p.fetch(ctx, name)
	}

	raw, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	return justexthtml.Decode(raw, "", p.Encoding)
}

func (p *Processor) fetch(ctx context.Context, rawURL string) (string, error) {
	if p.Fetcher == nil {
		return "", justext.Errorf(justext.EINVALID, "no fetcher configured for URL input: %s", rawURL)
	}

	if p.Limiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", err
		}
		if err := p.Limiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}

	delays := p.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetryDelays(ctx, rawURL, p.Fetcher.Fetch, p.Logger, delays)
}

// IsURL reports whether name is fetched over HTTP rather than read from
// disk.
func IsURL(name string) bool {
	return strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://")
}
