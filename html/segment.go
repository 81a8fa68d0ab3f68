package html

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/fwojciec/justext"
)

// paragraphTags create paragraph boundaries when entered or exited.
var paragraphTags = map[string]bool{
	"body": true, "blockquote": true, "caption": true, "center": true,
	"col": true, "colgroup": true, "dd": true, "div": true,
	"dl": true, "dt": true, "fieldset": true, "form": true,
	"legend": true, "optgroup": true, "option": true, "p": true,
	"pre": true, "table": true, "td": true, "textarea": true,
	"tfoot": true, "th": true, "thead": true, "tr": true,
	"ul": true, "li": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true,
}

type pathElement struct {
	tag      string
	ordinal  int
	children map[string]int
}

// pathInfo tracks the current DOM path during the tree walk. It maintains
// both a dot-separated tag path and an XPath with per-level sibling
// ordinals. An element's ordinal counts previous siblings of the same tag
// name, so the second div under body is div[2] even with other tags in
// between.
type pathInfo struct {
	elements []pathElement
}

func (p *pathInfo) push(tag string) {
	ordinal := 1
	if n := len(p.elements); n > 0 {
		parent := &p.elements[n-1]
		if parent.children == nil {
			parent.children = make(map[string]int)
		}
		parent.children[tag]++
		ordinal = parent.children[tag]
	}
	p.elements = append(p.elements, pathElement{tag: tag, ordinal: ordinal})
}

func (p *pathInfo) pop() {
	if len(p.elements) > 0 {
		p.elements = p.elements[:len(p.elements)-1]
	}
}

// dom returns the dot-separated path without ordinals, e.g. "html.body.p".
func (p *pathInfo) dom() string {
	tags := make([]string, len(p.elements))
	for i, el := range p.elements {
		tags[i] = el.tag
	}
	return strings.Join(tags, ".")
}

// xpath returns the element path with ordinals, e.g. "/html[1]/body[1]/p[2]".
// The empty path renders as "/".
func (p *pathInfo) xpath() string {
	if len(p.elements) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, el := range p.elements {
		fmt.Fprintf(&b, "/%s[%d]", el.tag, el.ordinal)
	}
	return b.String()
}

// accumulator gathers normalized text chunks for the paragraph being
// built. The path fields are snapshotted when the accumulator starts, not
// when text arrives.
type accumulator struct {
	domPath   string
	xpath     string
	chunks    []string
	linkChars int
	tagCount  int
}

func newAccumulator(path *pathInfo) accumulator {
	return accumulator{domPath: path.dom(), xpath: path.xpath()}
}

func (a *accumulator) append(text string) string {
	normalized := justext.NormalizeWhitespace(text)
	a.chunks = append(a.chunks, normalized)
	return normalized
}

func (a *accumulator) containsText() bool {
	return len(a.chunks) > 0
}

func (a *accumulator) build() *justext.Paragraph {
	text := justext.NormalizeWhitespace(strings.TrimSpace(strings.Join(a.chunks, "")))
	return justext.NewParagraph(a.domPath, a.xpath, text, a.linkChars, a.tagCount)
}

// walker threads the segmentation state through the depth-first walk.
type walker struct {
	path       pathInfo
	paragraphs []*justext.Paragraph
	current    accumulator
	link       bool
	br         bool
}

func newWalker() *walker {
	w := &walker{}
	w.current = newAccumulator(&w.path)
	return w
}

// flush emits the current paragraph if it accumulated any chunk, then
// starts a fresh accumulator at the current path. A paragraph whose
// chunks trim to nothing is still emitted; it classifies as Short with
// zero words.
func (w *walker) flush() {
	finished := w.current
	w.current = newAccumulator(&w.path)
	if finished.containsText() {
		w.paragraphs = append(w.paragraphs, finished.build())
	}
	w.br = false
}

func (w *walker) visit(n *html.Node) {
	switch n.Type {
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			w.visit(c)
		}
	case html.ElementNode:
		w.visitElement(n)
	case html.TextNode:
		w.visitText(n.Data)
	}
}

func (w *walker) visitElement(n *html.Node) {
	tag := n.Data
	w.path.push(tag)

	switch {
	case paragraphTags[tag]:
		w.flush()
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			w.visit(c)
		}
		w.path.pop()
		w.flush()
	case tag == "br":
		if w.br {
			// Second consecutive <br> separates paragraphs. Undo the tag
			// count contributed by the first one.
			if w.current.tagCount > 0 {
				w.current.tagCount--
			}
			w.path.pop()
			w.flush()
		} else {
			w.br = true
			w.current.append(" ")
			w.current.tagCount++
			w.path.pop()
		}
	default:
		wasLink := w.link
		if tag == "a" {
			w.link = true
		}
		w.current.tagCount++
		w.br = false
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			w.visit(c)
		}
		w.path.pop()
		w.link = wasLink
	}
}

func (w *walker) visitText(content string) {
	if strings.TrimSpace(content) == "" {
		return
	}
	normalized := w.current.append(content)
	if w.link {
		w.current.linkChars += utf8.RuneCountInString(normalized)
	}
	w.br = false
}

// Segment walks a parsed HTML tree depth-first and returns the ordered
// paragraph sequence. Comments, doctypes and other non-element, non-text
// nodes are skipped. The trailing buffer is flushed at document end, so
// text after the last boundary tag still forms a paragraph.
func Segment(doc *html.Node) []*justext.Paragraph {
	w := newWalker()
	w.visit(doc)
	w.flush()
	return w.paragraphs
}
