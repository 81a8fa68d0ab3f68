package mock

import "github.com/fwojciec/justext"

var _ justext.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of justext.Renderer.
type Renderer struct {
	RenderFn func(paragraphs []*justext.Paragraph) (string, error)
}

func (r *Renderer) Render(paragraphs []*justext.Paragraph) (string, error) {
	return r.RenderFn(paragraphs)
}
