package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	"github.com/fwojciec/justext"
	"github.com/fwojciec/justext/batch"
	"github.com/fwojciec/justext/gemini"
	"github.com/fwojciec/justext/htmltomarkdown"
	justexthttp "github.com/fwojciec/justext/http"
	justextrod "github.com/fwojciec/justext/rod"
	justextslog "github.com/fwojciec/justext/slog"
	"github.com/fwojciec/justext/sqlite"
	"github.com/fwojciec/justext/stoplists"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:       ctx,
		Stdin:     stdin,
		Stdout:    stdout,
		Stderr:    stderr,
		Stoplists: stoplists.NewService(),
		Renderer:  htmltomarkdown.NewRenderer(),
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("justext"),
		kong.Description("Remove boilerplate content from HTML pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'justext --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Verbose = cli.Verbose
	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire the fetcher for commands that may read URLs. A forced input
	// encoding applies to fetched pages as well as local files.
	if cmd == "extract" || cmd == "compare" {
		encoding := cli.Extract.Encoding
		render := cli.Extract.Render
		cachePath := cli.Extract.Cache
		if cmd == "compare" {
			encoding = cli.Compare.Encoding
			render = cli.Compare.Render
			cachePath = cli.Compare.Cache
		}

		var fetcher justext.Fetcher
		if render {
			f, err := justextrod.NewFetcher()
			if err != nil {
				return fmt.Errorf("starting browser: %w", err)
			}
			fetcher = f
		} else {
			var opts []justexthttp.Option
			if encoding != "" {
				opts = append(opts, justexthttp.WithEncoding(encoding))
			}
			fetcher = justexthttp.NewFetcher(opts...)
		}

		if cachePath != "" {
			db := sqlite.NewDB(cachePath)
			if err := db.Open(); err != nil {
				fetcher.Close()
				return fmt.Errorf("opening page cache: %w", err)
			}
			defer db.Close()
			fetcher = batch.NewCachingFetcher(fetcher, sqlite.NewPageCache(db))
		}
		defer fetcher.Close()

		deps.Fetcher = fetcher
		if cli.Verbose {
			deps.Fetcher = justextslog.NewLoggingFetcher(deps.Fetcher, deps.Logger)
		}
	}

	// The gemini engine is opt-in: it needs a model name and an API key.
	if cmd == "compare" && cli.Compare.GeminiModel != "" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return fmt.Errorf("GEMINI_API_KEY must be set to use the gemini engine")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return fmt.Errorf("creating gemini client: %w", err)
		}
		deps.Gemini = gemini.NewExtractor(client, gemini.WithModel(cli.Compare.GeminiModel))
	}

	return kongCtx.Run(deps)
}
