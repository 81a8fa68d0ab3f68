package batch

import (
	"context"

	"github.com/fwojciec/justext"
)

// Ensure CachingFetcher implements justext.Fetcher at compile time.
var _ justext.Fetcher = (*CachingFetcher)(nil)

// CachingFetcher serves fetches from a page cache and falls back to the
// wrapped fetcher on a miss, storing what it fetched. It makes repeated
// runs over the same URL list cost one network pass.
type CachingFetcher struct {
	next  justext.Fetcher
	cache justext.PageCache
}

// NewCachingFetcher creates a CachingFetcher over next backed by cache.
func NewCachingFetcher(next justext.Fetcher, cache justext.PageCache) *CachingFetcher {
	return &CachingFetcher{next: next, cache: cache}
}

// Fetch returns the cached HTML for url if present, fetching and caching
// it otherwise.
func (f *CachingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	html, err := f.cache.Get(ctx, url)
	if err == nil {
		return html, nil
	}
	if justext.ErrorCode(err) != justext.ENOTFOUND {
		return "", err
	}

	html, err = f.next.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	// A failed write only costs a refetch on the next run.
	_ = f.cache.Put(ctx, url, html)

	return html, nil
}

// Close closes the wrapped fetcher. The cache is left open; its owner
// closes it.
func (f *CachingFetcher) Close() error {
	return f.next.Close()
}
