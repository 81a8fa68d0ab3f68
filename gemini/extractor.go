// Package gemini adapts Google Gemini as a reference text extraction
// engine for the compare command.
package gemini

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/justext"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// DefaultTimeout bounds a single extraction request.
const DefaultTimeout = 2 * time.Minute

// Ensure Extractor implements justext.TextExtractor at compile time.
var _ justext.TextExtractor = (*Extractor)(nil)

// Extractor asks Gemini to read a page and return its main content as
// plain text. It gives the compare command a judgment that is
// independent of any rule-based engine.
type Extractor struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithModel sets the Gemini model. Defaults to DefaultModel.
func WithModel(model string) Option {
	return func(e *Extractor) {
		e.model = model
	}
}

// WithTimeout bounds each extraction request. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(e *Extractor) {
		e.timeout = d
	}
}

// NewExtractor creates a new Extractor using the given client.
func NewExtractor(client *genai.Client, opts ...Option) *Extractor {
	e := &Extractor{
		client:  client,
		model:   DefaultModel,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractText returns the main content of the document as plain text.
func (e *Extractor) ExtractText(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", justext.Errorf(justext.EINVALID, "empty HTML input")
	}
	if e.client == nil {
		return "", justext.Errorf(justext.EINVALID, "gemini client required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	result, err := e.client.Models.GenerateContent(ctx, e.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildPrompt(src)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", justext.Errorf(justext.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for extraction calls.
// Temperature is zero so repeated runs over the same page agree.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You extract the main textual content of web pages. Return only that text, with headings and paragraphs separated by blank lines. Leave out navigation, advertising, cookie banners, legal notices and other boilerplate. Do not summarize, translate or comment.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildPrompt builds the user prompt containing the page source.
func BuildPrompt(src string) string {
	var sb strings.Builder
	sb.WriteString("<page>\n")
	sb.WriteString(src)
	sb.WriteString("\n</page>\n\n")
	sb.WriteString("Return the main content of this page as plain text.")
	return sb.String()
}
