package mock

import (
	"context"

	"github.com/fwojciec/justext"
)

var _ justext.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of justext.PageCache.
type PageCache struct {
	GetFn   func(ctx context.Context, url string) (string, error)
	PutFn   func(ctx context.Context, url, html string) error
	CloseFn func() error
}

func (c *PageCache) Get(ctx context.Context, url string) (string, error) {
	return c.GetFn(ctx, url)
}

func (c *PageCache) Put(ctx context.Context, url, html string) error {
	return c.PutFn(ctx, url, html)
}

func (c *PageCache) Close() error {
	return c.CloseFn()
}
