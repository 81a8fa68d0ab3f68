// Package goquery provides a selector-based justext.Cleaner that strips
// non-content markup from HTML documents before segmentation.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/fwojciec/justext"
)

// killSelector matches elements that are removed with their entire
// subtree: scripts, styles, head metadata, form controls and plugin
// content.
const killSelector = "script, style, head, form, input, button, select, textarea, embed, object, applet, layer, param"

// Ensure Cleaner implements justext.Cleaner at compile time.
var _ justext.Cleaner = (*Cleaner)(nil)

// Cleaner removes non-content markup from HTML using CSS selectors.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean parses src, removes unwanted elements along with comments and
// doctypes, and returns the remaining markup serialized back to a string.
func (c *Cleaner) Clean(src string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return "", justext.Errorf(justext.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(killSelector).Remove()
	for _, root := range doc.Nodes {
		stripNonContent(root)
	}

	cleaned, err := doc.Html()
	if err != nil {
		return "", justext.Errorf(justext.EINTERNAL, "failed to serialize HTML: %v", err)
	}
	return cleaned, nil
}

// stripNonContent removes comment and doctype nodes in place.
func stripNonContent(n *html.Node) {
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if c.Type == html.CommentNode || c.Type == html.DoctypeNode {
			n.RemoveChild(c)
			continue
		}
		stripNonContent(c)
	}
}
