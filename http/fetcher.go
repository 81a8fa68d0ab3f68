// Package http provides an HTTP-based implementation of justext.Fetcher
// for downloading pages that are to be run through the extraction pipeline.
package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/justext"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the client to servers that reject
// requests without a User-Agent header.
const DefaultUserAgent = "justext/2.0"

// Ensure Fetcher implements justext.Fetcher at compile time.
var _ justext.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// Response bodies are decoded to UTF-8 before being returned, using the
// charset from the Content-Type header or a <meta> tag in the document.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	encoding  string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithEncoding forces a character encoding for all fetched pages,
// overriding whatever the server or the document declares. The name is
// resolved through the WHATWG encoding registry, so labels like
// "latin2" or "windows-1250" both work.
func WithEncoding(name string) Option {
	return func(f *Fetcher) {
		f.encoding = name
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page at the given URL and returns its content
// decoded to UTF-8.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return f.decode(raw, resp.Header.Get("Content-Type"))
}

// decode converts raw response bytes to a UTF-8 string. A forced
// encoding set with WithEncoding wins over anything the response
// declares; otherwise the charset is taken from the Content-Type
// header, a <meta> tag, or a BOM, falling back to UTF-8.
func (f *Fetcher) decode(raw []byte, contentType string) (string, error) {
	if f.encoding != "" {
		enc, err := htmlindex.Get(f.encoding)
		if err != nil {
			return "", justext.Errorf(justext.EINVALID, "unknown encoding %q", f.encoding)
		}
		decoded, err := enc.NewDecoder().Bytes(raw)
		if err != nil {
			return "", fmt.Errorf("decoding as %q: %w", f.encoding, err)
		}
		return string(decoded), nil
	}

	r, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		return "", fmt.Errorf("determining charset: %w", err)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
