package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/justext"
	"github.com/fwojciec/justext/batch"
	"github.com/fwojciec/justext/goquery"
	justexthtml "github.com/fwojciec/justext/html"
	"github.com/fwojciec/justext/readability"
	"github.com/fwojciec/justext/trafilatura"
)

// engine pairs an extraction engine with its report name.
type engine struct {
	name      string
	extractor justext.TextExtractor
}

// engineReport holds one engine's extraction metrics for a single input.
// Similarity is the token overlap with the justext output, so the justext
// entry always reads 1.
type engineReport struct {
	Engine     string  `json:"engine"`
	Chars      int     `json:"chars"`
	Words      int     `json:"words"`
	Hash       string  `json:"hash"`
	Similarity float64 `json:"similarity"`
	Error      string  `json:"error,omitempty"`
}

// compareReport is one line of compare output.
type compareReport struct {
	File    string         `json:"file"`
	Engines []engineReport `json:"engines"`
}

// Run executes the compare command.
func (c *CompareCmd) Run(deps *Dependencies) error {
	stoplist, err := deps.Stoplists.Stoplist(c.Language)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", justext.ErrorMessage(err))
		return err
	}

	primary, err := justexthtml.NewExtractor(stoplist,
		justexthtml.WithCleaner(goquery.NewCleaner()),
	)
	if err != nil {
		return err
	}

	engines := []engine{
		{name: "justext", extractor: primary},
		{name: "trafilatura", extractor: trafilatura.NewExtractor()},
		{name: "readability", extractor: readability.NewExtractor()},
	}
	if deps.Gemini != nil {
		engines = append(engines, engine{name: "gemini", extractor: deps.Gemini})
	}

	proc := &batch.Processor{
		Fetcher:     deps.Fetcher,
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

	sources := proc.Load(deps.Ctx, c.Paths, progress)

	enc := json.NewEncoder(deps.Stdout)
	var ok, failed int
	for _, source := range sources {
		if source.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", source.Name, source.Err)
			continue
		}
		if err := enc.Encode(compareEngines(source.Name, source.HTML, engines)); err != nil {
			return err
		}
		ok++
	}

	fmt.Fprintf(deps.Stderr, "Done: %d ok, %d errors  (total %d)\n", ok, failed, ok+failed)

	if failed > 0 {
		return justext.Errorf(justext.EINTERNAL, "failed to process %d of %d inputs", failed, len(c.Paths))
	}
	return nil
}

// compareEngines runs every engine over the same document. The first
// engine's output is the reference for the similarity column.
func compareEngines(file, src string, engines []engine) *compareReport {
	report := &compareReport{File: file, Engines: make([]engineReport, 0, len(engines))}

	var reference string
	for i, eng := range engines {
		text, err := eng.extractor.ExtractText(src)
		if err != nil {
			report.Engines = append(report.Engines, engineReport{Engine: eng.name, Error: err.Error()})
			continue
		}
		if i == 0 {
			reference = text
		}
		report.Engines = append(report.Engines, engineReport{
			Engine:     eng.name,
			Chars:      utf8.RuneCountInString(text),
			Words:      len(strings.Fields(text)),
			Hash:       contentHash(text),
			Similarity: tokenOverlap(reference, text),
		})
	}
	return report
}

// tokenOverlap returns the Jaccard similarity of the lowercased word sets
// of a and b. Two empty texts count as identical.
func tokenOverlap(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 1
	}

	intersection := 0
	for tok := range setA {
		if _, present := setB[tok]; present {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

func tokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		set[tok] = struct{}{}
	}
	return set
}
