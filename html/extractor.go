// Package html implements the justext extraction pipeline on top of the
// golang.org/x/net/html parser: segmentation of the parsed tree into
// paragraphs, context-free classification and context-sensitive revision.
package html

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/fwojciec/justext"
)

// Ensure Extractor implements justext.Extractor at compile time.
var _ justext.Extractor = (*Extractor)(nil)

// Extractor classifies the paragraphs of an HTML document against a
// stoplist.
type Extractor struct {
	stoplist justext.Stoplist
	config   justext.Config
	cleaner  justext.Cleaner
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithConfig replaces the default classification thresholds.
func WithConfig(config justext.Config) Option {
	return func(e *Extractor) {
		e.config = config
	}
}

// WithCleaner sets a cleaner that strips non-content markup before
// parsing. Without one, Classify expects already cleaned input; script
// and style text would otherwise end up in paragraphs.
func WithCleaner(cleaner justext.Cleaner) Option {
	return func(e *Extractor) {
		e.cleaner = cleaner
	}
}

// NewExtractor creates an Extractor that classifies against stoplist.
// Paragraphs with no stopwords can still be classified structurally, so an
// empty stoplist with zeroed stopword thresholds gives language-independent
// behavior.
func NewExtractor(stoplist justext.Stoplist, opts ...Option) (*Extractor, error) {
	e := &Extractor{
		stoplist: stoplist,
		config:   justext.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.config.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Classify parses src and returns its paragraphs in document order with
// both classifications filled in.
func (e *Extractor) Classify(src string) ([]*justext.Paragraph, error) {
	if e.cleaner != nil {
		cleaned, err := e.cleaner.Clean(src)
		if err != nil {
			return nil, err
		}
		src = cleaned
	}

	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, justext.Errorf(justext.EINVALID, "failed to parse HTML: %v", err)
	}

	return e.ClassifyNode(doc), nil
}

// ClassifyNode runs segmentation, classification and revision over an
// already parsed tree. It never fails: malformed structures are handled
// by the parser, and every paragraph receives a final class.
func (e *Extractor) ClassifyNode(doc *html.Node) []*justext.Paragraph {
	paragraphs := Segment(doc)
	justext.ClassifyParagraphs(paragraphs, e.stoplist, e.config)
	justext.ReviseParagraphs(paragraphs, e.config.MaxHeadingDistance)
	return paragraphs
}

// ExtractText returns the text of the main-content paragraphs, separated
// by newlines.
func (e *Extractor) ExtractText(src string) (string, error) {
	paragraphs, err := e.Classify(src)
	if err != nil {
		return "", err
	}
	return justext.GoodText(paragraphs), nil
}
