// Package htmltomarkdown renders classified paragraphs as Markdown.
package htmltomarkdown

import (
	"fmt"
	"html"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/justext"
)

// Ensure Renderer implements justext.Renderer at compile time.
var _ justext.Renderer = (*Renderer)(nil)

// Renderer converts the paragraphs the pipeline kept as content into a
// Markdown document. Headings keep their level from the original
// markup; everything else becomes a plain paragraph.
type Renderer struct {
	conv *converter.Converter
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Renderer{conv: conv}
}

// Render returns the good paragraphs as Markdown. Paragraphs classified
// as boilerplate are skipped; an all-boilerplate document renders to an
// empty string.
func (r *Renderer) Render(paragraphs []*justext.Paragraph) (string, error) {
	var b strings.Builder
	for _, p := range paragraphs {
		if p.IsBoilerplate() {
			continue
		}
		if p.Heading {
			level := headingLevel(p.DOMPath)
			fmt.Fprintf(&b, "<h%d>%s</h%d>\n", level, html.EscapeString(p.Text), level)
		} else {
			fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(p.Text))
		}
	}
	if b.Len() == 0 {
		return "", nil
	}

	result, err := r.conv.ConvertString(b.String())
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}

// headingLevel returns the level of the innermost heading tag on the
// path, clamped to Markdown's six levels.
func headingLevel(domPath string) int {
	segs := strings.Split(domPath, ".")
	for i := len(segs) - 1; i >= 0; i-- {
		seg := segs[i]
		if len(seg) == 2 && seg[0] == 'h' && seg[1] >= '0' && seg[1] <= '9' {
			level := int(seg[1] - '0')
			if level < 1 {
				return 1
			}
			if level > 6 {
				return 6
			}
			return level
		}
	}
	return 1
}
