package justext

// TextExtractor produces a plain-text rendition of an HTML document's main
// content. Reference engines used by the compare command implement this
// interface alongside the native pipeline.
type TextExtractor interface {
	// ExtractText returns the main content of the document as plain text
	// with boilerplate removed.
	ExtractText(src string) (string, error)
}

// Extractor runs the full pipeline on an HTML document: cleaning,
// segmentation, context-free classification and context-sensitive
// revision.
type Extractor interface {
	TextExtractor

	// Classify returns every paragraph of the document in document order
	// with both classifications filled in.
	Classify(src string) ([]*Paragraph, error)
}

// Cleaner strips non-content markup (scripts, styles, form controls,
// comments) from raw HTML before segmentation.
type Cleaner interface {
	Clean(src string) (string, error)
}
