package html_test

import (
	"testing"

	"github.com/fwojciec/justext"
	justexthtml "github.com/fwojciec/justext/html"
	"github.com/fwojciec/justext/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// articleText is long and stopword-dense enough to classify as good
// content under the default thresholds.
const articleText = "The quick brown fox jumps over the lazy dog and then " +
	"the dog jumps over the quick brown fox again and again until they are " +
	"both tired of the game and decide to rest in the shade of an old oak " +
	"tree for the afternoon."

func articleStoplist() justext.Stoplist {
	return justext.NewStoplist(
		"the", "and", "of", "to", "in", "an", "for",
		"over", "until", "they", "are", "then",
	)
}

func TestNewExtractor_ValidatesConfig(t *testing.T) {
	t.Parallel()

	config := justext.DefaultConfig()
	config.LengthLow = 100
	config.LengthHigh = 50

	_, err := justexthtml.NewExtractor(justext.NewStoplist(), justexthtml.WithConfig(config))
	require.Error(t, err)
	assert.Equal(t, justext.EINVALID, justext.ErrorCode(err))
}

func TestExtractor_Classify(t *testing.T) {
	t.Parallel()

	extractor, err := justexthtml.NewExtractor(articleStoplist())
	require.NoError(t, err)

	paragraphs, err := extractor.Classify(`<html><body>` +
		`<div><a href="#">Home</a> <a href="#">About</a> <a href="#">Contact</a></div>` +
		`<p>` + articleText + `</p>` +
		`</body></html>`)
	require.NoError(t, err)
	require.Len(t, paragraphs, 2)

	// The navigation div is nearly all link text.
	assert.Equal(t, justext.Bad, paragraphs[0].Class)
	assert.Equal(t, justext.Bad, paragraphs[0].InitialClass)

	assert.Equal(t, justext.Good, paragraphs[1].Class)
	assert.Equal(t, justext.Good, paragraphs[1].InitialClass)
	assert.Equal(t, articleText, paragraphs[1].Text)
}

func TestExtractor_ShortBetweenGoodBecomesGood(t *testing.T) {
	t.Parallel()

	config := justext.DefaultConfig()
	config.LengthLow = 10
	config.LengthHigh = 20
	config.StopwordsLow = 0
	config.StopwordsHigh = 0
	config.MaxLinkDensity = 1

	extractor, err := justexthtml.NewExtractor(justext.NewStoplist(), justexthtml.WithConfig(config))
	require.NoError(t, err)

	paragraphs, err := extractor.Classify(`<html><body>` +
		`<p>This paragraph is long enough to be good content.</p>` +
		`<p>tiny</p>` +
		`<p>Another long paragraph that is also good content here.</p>` +
		`</body></html>`)
	require.NoError(t, err)
	require.Len(t, paragraphs, 3)

	assert.Equal(t, justext.Short, paragraphs[1].InitialClass)
	assert.Equal(t, justext.Good, paragraphs[1].Class)
}

func TestExtractor_HeadingKeptNearGoodContent(t *testing.T) {
	t.Parallel()

	extractor, err := justexthtml.NewExtractor(articleStoplist())
	require.NoError(t, err)

	text, err := extractor.ExtractText(`<html><body>` +
		`<h1>Article Title</h1>` +
		`<p>` + articleText + `</p>` +
		`</body></html>`)
	require.NoError(t, err)

	assert.Equal(t, "Article Title\n"+articleText, text)
}

func TestExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	extractor, err := justexthtml.NewExtractor(articleStoplist())
	require.NoError(t, err)

	text, err := extractor.ExtractText(`<html><body>` +
		`<div><a href="#">Home</a> <a href="#">About</a> <a href="#">Contact</a></div>` +
		`<p>` + articleText + `</p>` +
		"<p>Copyright © 2024 Acme</p>" +
		`</body></html>`)
	require.NoError(t, err)

	assert.Equal(t, articleText, text)
}

func TestExtractor_WithCleaner(t *testing.T) {
	t.Parallel()

	var gotSrc string
	cleaner := &mock.Cleaner{
		CleanFn: func(src string) (string, error) {
			gotSrc = src
			return "<html><body><p>" + articleText + "</p></body></html>", nil
		},
	}

	extractor, err := justexthtml.NewExtractor(articleStoplist(), justexthtml.WithCleaner(cleaner))
	require.NoError(t, err)

	text, err := extractor.ExtractText("<html><body>raw</body></html>")
	require.NoError(t, err)

	assert.Equal(t, "<html><body>raw</body></html>", gotSrc)
	assert.Equal(t, articleText, text)
}

func TestExtractor_CleanerErrorPropagates(t *testing.T) {
	t.Parallel()

	cleaner := &mock.Cleaner{
		CleanFn: func(src string) (string, error) {
			return "", justext.Errorf(justext.EINVALID, "malformed input")
		},
	}

	extractor, err := justexthtml.NewExtractor(justext.NewStoplist(), justexthtml.WithCleaner(cleaner))
	require.NoError(t, err)

	_, err = extractor.Classify("<html></html>")
	require.Error(t, err)
	assert.Equal(t, justext.EINVALID, justext.ErrorCode(err))
}
