package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/justext"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Stoplists justext.StoplistService
	Fetcher   justext.Fetcher
	Renderer  justext.Renderer
	Logger    *slog.Logger
	Verbose   bool

	// Gemini, when set, adds an LLM engine to the compare command.
	Gemini justext.TextExtractor

	// RetryDelays overrides the fetch retry backoff. nil means the
	// batch package default of 1s, 2s, 4s.
	RetryDelays []time.Duration
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log operations to stderr"`

	Extract   ExtractCmd   `cmd:"" help:"Extract main content from HTML documents"`
	Languages LanguagesCmd `cmd:"" help:"List bundled stoplist languages"`
	Compare   CompareCmd   `cmd:"" help:"Run several extraction engines on the same inputs"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Paths []string `arg:"" optional:"" help:"HTML files or http(s) URLs (reads stdin when empty)"`

	Language    string `short:"l" default:"English" help:"Stoplist language"`
	NoStopwords bool   `help:"Language-independent mode: empty stoplist and zeroed stopword thresholds"`
	Encoding    string `short:"e" help:"Force a character encoding for all inputs"`
	Format      string `short:"f" default:"text" enum:"text,boilerplate,detailed,krdwrd,json,jsonl,markdown" help:"Output format (${enum})"`
	Concurrency int    `short:"c" default:"10" help:"Concurrent input limit"`

	Render    bool    `help:"Render pages in a headless browser before extraction (for JavaScript-heavy sites)"`
	Cache     string  `help:"SQLite file for caching fetched pages between runs" type:"path"`
	RateLimit float64 `default:"0" help:"Maximum requests per second per host (0 means no limit)"`
	Dedupe    bool    `help:"Skip inputs whose extracted text duplicates an earlier input"`
	OutputDir string  `short:"o" help:"Write one file per input into this directory instead of stdout" type:"path"`

	LengthLow          int     `default:"70" help:"Character count below which paragraphs cannot be good on their own"`
	LengthHigh         int     `default:"200" help:"Character count above which stopword-dense paragraphs are good"`
	StopwordsLow       float64 `default:"0.30" help:"Minimum stopword density for neargood"`
	StopwordsHigh      float64 `default:"0.32" help:"Minimum stopword density for good"`
	MaxLinkDensity     float64 `default:"0.2" help:"Link density above which paragraphs are bad"`
	MaxHeadingDistance int     `default:"200" help:"How far good content may follow a short heading (characters)"`
	NoHeadings         bool    `help:"Disable special treatment of headings"`
}

// LanguagesCmd is the "languages" subcommand.
type LanguagesCmd struct{}

// CompareCmd is the "compare" subcommand.
type CompareCmd struct {
	Paths []string `arg:"" help:"HTML files or http(s) URLs"`

	Language    string `short:"l" default:"English" help:"Stoplist language for the justext engine"`
	Encoding    string `short:"e" help:"Force a character encoding for all inputs"`
	Concurrency int    `short:"c" default:"10" help:"Concurrent input limit"`

	Render      bool    `help:"Render pages in a headless browser before extraction"`
	Cache       string  `help:"SQLite file for caching fetched pages between runs" type:"path"`
	RateLimit   float64 `default:"0" help:"Maximum requests per second per host (0 means no limit)"`
	GeminiModel string  `help:"Add a Gemini engine using this model (requires GEMINI_API_KEY)"`
}
