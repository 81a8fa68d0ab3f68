// Package readability adapts go-readability as a reference text
// extraction engine for the compare command.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"

	"github.com/fwojciec/justext"
)

// Ensure Extractor implements justext.TextExtractor at compile time.
var _ justext.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content as plain text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the main content of the document as plain text.
func (e *Extractor) ExtractText(src string) (string, error) {
	if src == "" {
		return "", justext.Errorf(justext.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(src), nil)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(article.TextContent), nil
}
