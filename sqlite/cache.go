package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/justext"
)

// Compile-time interface verification.
var _ justext.PageCache = (*PageCache)(nil)

// PageCache implements justext.PageCache using SQLite. Entries never
// expire; rerunning with a fresh cache file is how callers invalidate.
type PageCache struct {
	db *DB
}

// NewPageCache creates a new PageCache backed by db.
func NewPageCache(db *DB) *PageCache {
	return &PageCache{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// Get returns the cached HTML for url, or ENOTFOUND if the URL has not
// been cached.
func (c *PageCache) Get(ctx context.Context, url string) (string, error) {
	var html string

	err := c.db.QueryRowContext(ctx, `
		SELECT html FROM pages WHERE url = ?
	`, url).Scan(&html)

	if errors.Is(err, sql.ErrNoRows) {
		return "", justext.Errorf(justext.ENOTFOUND, "page not cached: %s", url)
	}
	if err != nil {
		return "", err
	}

	return html, nil
}

// Put stores the HTML for url, replacing any previous entry.
func (c *PageCache) Put(ctx context.Context, url, html string) error {
	if url == "" {
		return justext.Errorf(justext.EINVALID, "url required")
	}

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO pages (url, html, content_hash, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			html = excluded.html,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, url, html, hashContent(html), time.Now().UTC().Format(time.RFC3339))

	return err
}

// Close closes the underlying database.
func (c *PageCache) Close() error {
	return c.db.Close()
}
