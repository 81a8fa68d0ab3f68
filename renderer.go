package justext

// Renderer produces an alternative rendition of classified paragraphs,
// such as Markdown, from the paragraphs the pipeline kept as content.
type Renderer interface {
	Render(paragraphs []*Paragraph) (string, error)
}
