package trafilatura_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/justext"
	"github.com/fwojciec/justext/trafilatura"
)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := trafilatura.NewExtractor()
	_, err := ext.ExtractText("")

	require.Error(t, err)
	assert.Equal(t, justext.EINVALID, justext.ErrorCode(err))
}

func TestExtractor_ExtractsArticleText(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article>
<p>This is the main article content that should be preserved in the output.
It continues for long enough that the extractor treats it as the document body.</p>
</article>
</body>
</html>`

	ext := trafilatura.NewExtractor()
	text, err := ext.ExtractText(html)

	require.NoError(t, err)
	assert.Contains(t, text, "main article content")
	assert.NotContains(t, text, "<p>", "output should be plain text")
}
