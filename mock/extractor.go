package mock

import "github.com/fwojciec/justext"

// Compile-time interface verification.
var (
	_ justext.Extractor     = (*Extractor)(nil)
	_ justext.TextExtractor = (*TextExtractor)(nil)
)

// Extractor is a mock implementation of justext.Extractor.
type Extractor struct {
	ClassifyFn    func(src string) ([]*justext.Paragraph, error)
	ExtractTextFn func(src string) (string, error)
}

func (e *Extractor) Classify(src string) ([]*justext.Paragraph, error) {
	return e.ClassifyFn(src)
}

func (e *Extractor) ExtractText(src string) (string, error) {
	return e.ExtractTextFn(src)
}

// TextExtractor is a mock implementation of justext.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(src string) (string, error)
}

func (e *TextExtractor) ExtractText(src string) (string, error) {
	return e.ExtractTextFn(src)
}
