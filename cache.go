package justext

import "context"

// PageCache stores fetched HTML keyed by URL so repeated runs over the
// same inputs skip the network. Implementations return ENOTFOUND from
// Get when the URL has not been cached.
type PageCache interface {
	// Get returns the cached HTML for url.
	Get(ctx context.Context, url string) (html string, err error)

	// Put stores the HTML for url, replacing any previous entry.
	Put(ctx context.Context, url, html string) error

	// Close releases any resources held by the cache.
	Close() error
}
