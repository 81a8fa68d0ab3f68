package justext

import "context"

// Fetcher retrieves HTML documents from URLs.
// Implementations decode the response body to UTF-8 before returning it.
type Fetcher interface {
	// Fetch downloads the document at url and returns its HTML decoded
	// to UTF-8. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the Fetcher.
	Close() error
}
