package main

import (
	"encoding/json"
	"fmt"
	"html"
	"io"

	"github.com/beevik/etree"
	"github.com/cespare/xxhash/v2"

	"github.com/fwojciec/justext"
	"github.com/fwojciec/justext/batch"
)

// writeOutput renders one input's paragraphs in the requested format.
func writeOutput(w io.Writer, format string, renderer justext.Renderer, result batch.Result) error {
	switch format {
	case "text":
		if text := justext.GoodText(result.Paragraphs); text != "" {
			if _, err := fmt.Fprintln(w, text); err != nil {
				return err
			}
		}
		return nil
	case "boilerplate":
		return writeTagged(w, result.Paragraphs)
	case "detailed":
		return writeDetailed(w, result.Paragraphs)
	case "krdwrd":
		return writeKrdwrd(w, result.Paragraphs)
	case "json":
		return writeJSON(w, result.Paragraphs)
	case "jsonl":
		return writeJSONL(w, result)
	case "markdown":
		return writeMarkdown(w, renderer, result.Paragraphs)
	default:
		return justext.Errorf(justext.EINVALID, "unknown format %q", format)
	}
}

// formatExtension returns the file extension used when writing a format
// to an output directory.
func formatExtension(format string) string {
	switch format {
	case "detailed":
		return ".xml"
	case "json":
		return ".json"
	case "jsonl":
		return ".jsonl"
	case "markdown":
		return ".md"
	default:
		return ".txt"
	}
}

// writeTagged prints one line per paragraph: <h> for good headings, <p>
// for other good paragraphs and <b> for boilerplate.
func writeTagged(w io.Writer, paragraphs []*justext.Paragraph) error {
	for _, p := range paragraphs {
		tag := "b"
		if !p.IsBoilerplate() {
			tag = "p"
			if p.Heading {
				tag = "h"
			}
		}
		if _, err := fmt.Fprintf(w, "<%s> %s\n", tag, html.EscapeString(p.Text)); err != nil {
			return err
		}
	}
	return nil
}

// writeDetailed renders an XML document with one element per paragraph,
// carrying the final class, the context-free class, the heading flag and
// the source xpath.
func writeDetailed(w io.Writer, paragraphs []*justext.Paragraph) error {
	doc := etree.NewDocument()
	root := doc.CreateElement("document")
	for _, p := range paragraphs {
		heading := "0"
		if p.Heading {
			heading = "1"
		}
		el := root.CreateElement("p")
		el.CreateAttr("class", string(p.Class))
		el.CreateAttr("cfclass", string(p.InitialClass))
		el.CreateAttr("heading", heading)
		el.CreateAttr("xpath", p.XPath)
		el.SetText(p.Text)
	}
	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// writeKrdwrd prints per-paragraph grades: 1 for boilerplate, 2 for good
// headings, 3 for other good paragraphs.
func writeKrdwrd(w io.Writer, paragraphs []*justext.Paragraph) error {
	for _, p := range paragraphs {
		grade := 1
		if !p.IsBoilerplate() {
			grade = 3
			if p.Heading {
				grade = 2
			}
		}
		if _, err := fmt.Fprintf(w, "%d\t%s\n", grade, p.Text); err != nil {
			return err
		}
	}
	return nil
}

// writeJSON renders the full paragraph list as an indented JSON array.
func writeJSON(w io.Writer, paragraphs []*justext.Paragraph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(paragraphs)
}

// jsonlRecord is one line of jsonl output.
type jsonlRecord struct {
	File string `json:"file"`
	Text string `json:"text"`
	Hash string `json:"hash"`
}

// writeJSONL renders one input as a single JSON line with a content hash,
// so large batches can be diffed cheaply.
func writeJSONL(w io.Writer, result batch.Result) error {
	text := justext.GoodText(result.Paragraphs)
	return json.NewEncoder(w).Encode(jsonlRecord{
		File: result.Name,
		Text: text,
		Hash: contentHash(text),
	})
}

// writeMarkdown renders the good paragraphs as a markdown document.
func writeMarkdown(w io.Writer, renderer justext.Renderer, paragraphs []*justext.Paragraph) error {
	md, err := renderer.Render(paragraphs)
	if err != nil {
		return err
	}
	if md == "" {
		return nil
	}
	_, err = fmt.Fprintln(w, md)
	return err
}

// contentHash computes a hash of the content using xxhash.
func contentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
