package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/justext"
	"github.com/fwojciec/justext/mock"
	justextslog "github.com/fwojciec/justext/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Classify(t *testing.T) {
	t.Parallel()

	t.Run("logs paragraph and good counts with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		good := justext.NewParagraph("html.body.p", "/html[1]/body[1]/p[1]", "main content", 0, 0)
		good.Class = justext.Good
		bad := justext.NewParagraph("html.body.div", "/html[1]/body[1]/div[1]", "menu", 0, 0)
		bad.Class = justext.Bad
		inner := &mock.Extractor{
			ClassifyFn: func(src string) ([]*justext.Paragraph, error) {
				return []*justext.Paragraph{good, bad}, nil
			},
		}

		extractor := justextslog.NewLoggingExtractor(inner, logger)
		paragraphs, err := extractor.Classify("<html></html>")

		require.NoError(t, err)
		assert.Len(t, paragraphs, 2)
		output := buf.String()
		assert.Contains(t, output, "classify")
		assert.Contains(t, output, "paragraphs=2")
		assert.Contains(t, output, "good=1")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ClassifyFn: func(src string) ([]*justext.Paragraph, error) {
				return nil, justext.Errorf(justext.EINVALID, "failed to parse HTML: bad input")
			},
		}

		extractor := justextslog.NewLoggingExtractor(inner, logger)
		_, err := extractor.Classify("not html")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "bad input")
	})
}

func TestLoggingExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Extractor{
		ExtractTextFn: func(src string) (string, error) {
			return "main content", nil
		},
	}

	extractor := justextslog.NewLoggingExtractor(inner, logger)
	text, err := extractor.ExtractText("<html></html>")

	require.NoError(t, err)
	assert.Equal(t, "main content", text)
	output := buf.String()
	assert.Contains(t, output, "extract")
	assert.Contains(t, output, "bytes=12")
}
