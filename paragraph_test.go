package justext_test

import (
	"testing"

	"github.com/fwojciec/justext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParagraph(t *testing.T) {
	t.Parallel()

	p := justext.NewParagraph("html.body.p", "/html[1]/body[1]/p[1]", "Hello brave new world", 5, 2)

	assert.Equal(t, "html.body.p", p.DOMPath)
	assert.Equal(t, "/html[1]/body[1]/p[1]", p.XPath)
	assert.Equal(t, "Hello brave new world", p.Text)
	assert.Equal(t, 4, p.WordCount)
	assert.Equal(t, 5, p.LinkCharCount)
	assert.Equal(t, 2, p.TagCount)
	assert.Equal(t, justext.Short, p.Class)
	assert.Equal(t, justext.Short, p.InitialClass)
	assert.False(t, p.Heading)
}

func TestParagraph_IsHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		domPath string
		want    bool
	}{
		{"html.body.h1", true},
		{"html.body.h1.span", true},
		{"html.body.div.h6", true},
		{"h9", true},
		{"html.body.p", false},
		{"html.body.header", false},
		{"html.body.h", false},
		{"html.body.h10", false},
		{"", false},
	}
	for _, tt := range tests {
		p := justext.NewParagraph(tt.domPath, "/", "text", 0, 0)
		assert.Equal(t, tt.want, p.IsHeading(), "domPath: %q", tt.domPath)
	}
}

func TestParagraph_Length(t *testing.T) {
	t.Parallel()

	// Length counts code points, not bytes.
	p := justext.NewParagraph("html.body.p", "/", "žluťoučký", 0, 0)
	assert.Equal(t, 9, p.Length())
}

func TestParagraph_LinkDensity(t *testing.T) {
	t.Parallel()

	t.Run("empty text has zero density", func(t *testing.T) {
		t.Parallel()
		p := justext.NewParagraph("html.body.p", "/", "", 0, 0)
		assert.Equal(t, 0.0, p.LinkDensity())
	})

	t.Run("ratio of link characters to text length", func(t *testing.T) {
		t.Parallel()
		p := justext.NewParagraph("html.body.p", "/", "0123456789", 5, 0)
		assert.InDelta(t, 0.5, p.LinkDensity(), 1e-9)
	})

	t.Run("density can exceed one", func(t *testing.T) {
		t.Parallel()
		p := justext.NewParagraph("html.body.p", "/", "0123456789", 12, 0)
		assert.InDelta(t, 1.2, p.LinkDensity(), 1e-9)
	})
}

func TestParagraph_StopwordDensity(t *testing.T) {
	t.Parallel()

	stoplist := justext.NewStoplist("the", "and")

	p := justext.NewParagraph("html.body.p", "/", "The cat and the dog", 0, 0)
	assert.Equal(t, 3, p.StopwordCount(stoplist))
	assert.InDelta(t, 0.6, p.StopwordDensity(stoplist), 1e-9)

	empty := justext.NewParagraph("html.body.p", "/", "", 0, 0)
	assert.Equal(t, 0.0, empty.StopwordDensity(stoplist))
}

func TestParagraph_IsBoilerplate(t *testing.T) {
	t.Parallel()

	p := justext.NewParagraph("html.body.p", "/", "text", 0, 0)
	require.True(t, p.IsBoilerplate(), "paragraphs start out as boilerplate")

	p.Class = justext.Good
	assert.False(t, p.IsBoilerplate())

	for _, class := range []justext.Class{justext.Bad, justext.Short, justext.NearGood} {
		p.Class = class
		assert.True(t, p.IsBoilerplate(), "class: %s", class)
	}
}

func TestGoodText(t *testing.T) {
	t.Parallel()

	first := justext.NewParagraph("html.body.p", "/", "First paragraph.", 0, 0)
	first.Class = justext.Good
	noise := justext.NewParagraph("html.body.p", "/", "Click here for more.", 0, 0)
	noise.Class = justext.Bad
	second := justext.NewParagraph("html.body.p", "/", "Second paragraph.", 0, 0)
	second.Class = justext.Good

	got := justext.GoodText([]*justext.Paragraph{first, noise, second})
	assert.Equal(t, "First paragraph.\nSecond paragraph.", got)

	assert.Equal(t, "", justext.GoodText(nil))
}
