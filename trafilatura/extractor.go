// Package trafilatura adapts go-trafilatura as a reference text
// extraction engine for the compare command.
package trafilatura

import (
	"strings"

	"github.com/markusmobius/go-trafilatura"

	"github.com/fwojciec/justext"
)

// Ensure Extractor implements justext.TextExtractor at compile time.
var _ justext.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content as plain text.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(src), opts)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result.ContentText), nil
}
