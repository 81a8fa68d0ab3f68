// Package slog provides logging decorators for the core interfaces,
// built on the standard library's structured logger.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/justext"
)

// Ensure LoggingExtractor implements justext.Extractor.
var _ justext.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   justext.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next justext.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Classify delegates to the wrapped extractor and logs the paragraph counts.
func (e *LoggingExtractor) Classify(src string) (paragraphs []*justext.Paragraph, err error) {
	defer func(begin time.Time) {
		good := 0
		for _, p := range paragraphs {
			if !p.IsBoilerplate() {
				good++
			}
		}
		e.logger.Info("classify",
			"paragraphs", len(paragraphs),
			"good", good,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Classify(src)
}

// ExtractText delegates to the wrapped extractor and logs the output size.
func (e *LoggingExtractor) ExtractText(src string) (text string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractText(src)
}
