package justext

import (
	"strings"
	"unicode/utf8"
)

// Class labels a paragraph as main content or boilerplate.
type Class string

// Classification constants for Paragraph. Short and NearGood are
// provisional labels that the revision stage resolves to Good or Bad.
const (
	Good     Class = "good"
	Bad      Class = "bad"
	Short    Class = "short"
	NearGood Class = "neargood"
)

// Paragraph represents a block of textually uniform content extracted from
// an HTML page.
type Paragraph struct {
	// DOMPath is the dot-separated path of tag names from the root to the
	// paragraph, without ordinals (e.g. "html.body.div.p").
	DOMPath string `json:"domPath"`

	// XPath is the element path with ordinals (e.g. "/html[1]/body[1]/p[2]").
	XPath string `json:"xpath"`

	// Text is the whitespace-normalized text content.
	Text string `json:"text"`

	// WordCount is the number of whitespace-separated words in Text.
	WordCount int `json:"wordCount"`

	// LinkCharCount is the number of characters of Text that came from
	// inside <a> elements.
	LinkCharCount int `json:"linkCharCount"`

	// TagCount is the number of inline tags encountered within the paragraph.
	TagCount int `json:"tagCount"`

	// Class is the final classification, set by the revision stage.
	Class Class `json:"class"`

	// InitialClass is the context-free classification, before any
	// neighbour-based revision.
	InitialClass Class `json:"initialClass"`

	// Heading records whether the paragraph was treated as a heading
	// during classification.
	Heading bool `json:"heading"`
}

// NewParagraph assembles a paragraph from normalized text and the counters
// gathered during segmentation. Both classification fields start out Short.
func NewParagraph(domPath, xpath, text string, linkChars, tags int) *Paragraph {
	return &Paragraph{
		DOMPath:       domPath,
		XPath:         xpath,
		Text:          text,
		WordCount:     len(strings.Fields(text)),
		LinkCharCount: linkChars,
		TagCount:      tags,
		Class:         Short,
		InitialClass:  Short,
	}
}

// IsBoilerplate reports whether the paragraph ended up classified as
// anything other than main content.
func (p *Paragraph) IsBoilerplate() bool {
	return p.Class != Good
}

// IsHeading reports whether the DOM path contains a heading tag. A path
// segment counts as a heading when it is exactly "h" followed by an ASCII
// digit, which mirrors a \bh\d\b match on the dot-separated path.
func (p *Paragraph) IsHeading() bool {
	for _, seg := range strings.Split(p.DOMPath, ".") {
		if len(seg) == 2 && seg[0] == 'h' && seg[1] >= '0' && seg[1] <= '9' {
			return true
		}
	}
	return false
}

// Length returns the number of Unicode code points in the paragraph text.
func (p *Paragraph) Length() int {
	return utf8.RuneCountInString(p.Text)
}

// LinkDensity returns the share of characters that came from inside links,
// or 0 for empty text. Values above 1 are possible when link text repeats
// in the markup.
func (p *Paragraph) LinkDensity() float64 {
	length := p.Length()
	if length == 0 {
		return 0
	}
	return float64(p.LinkCharCount) / float64(length)
}

// StopwordCount returns the number of words that appear in the stoplist.
// Matching is case-insensitive.
func (p *Paragraph) StopwordCount(stoplist Stoplist) int {
	count := 0
	for _, word := range strings.Fields(p.Text) {
		if stoplist.Contains(word) {
			count++
		}
	}
	return count
}

// StopwordDensity returns the share of words that appear in the stoplist,
// or 0 for a paragraph with no words.
func (p *Paragraph) StopwordDensity(stoplist Stoplist) float64 {
	if p.WordCount == 0 {
		return 0
	}
	return float64(p.StopwordCount(stoplist)) / float64(p.WordCount)
}

// GoodText joins the text of paragraphs classified as main content,
// separated by newlines.
func GoodText(paragraphs []*Paragraph) string {
	parts := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if !p.IsBoilerplate() {
			parts = append(parts, p.Text)
		}
	}
	return strings.Join(parts, "\n")
}
