package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/justext"
	"github.com/fwojciec/justext/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPageCache_GetMissing(t *testing.T) {
	t.Parallel()

	cache := sqlite.NewPageCache(openTestDB(t))

	_, err := cache.Get(context.Background(), "https://example.com/missing")

	require.Error(t, err)
	assert.Equal(t, justext.ENOTFOUND, justext.ErrorCode(err))
	assert.Contains(t, justext.ErrorMessage(err), "not cached")
}

func TestPageCache_PutAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := sqlite.NewPageCache(openTestDB(t))

	err := cache.Put(ctx, "https://example.com/a", "<html><body>A</body></html>")
	require.NoError(t, err)

	html, err := cache.Get(ctx, "https://example.com/a")
	require.NoError(t, err)
	assert.Equal(t, "<html><body>A</body></html>", html)

	// A different URL is still a miss.
	_, err = cache.Get(ctx, "https://example.com/b")
	assert.Equal(t, justext.ENOTFOUND, justext.ErrorCode(err))
}

func TestPageCache_PutReplacesEntry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := sqlite.NewPageCache(openTestDB(t))

	require.NoError(t, cache.Put(ctx, "https://example.com/a", "<p>old</p>"))
	require.NoError(t, cache.Put(ctx, "https://example.com/a", "<p>new</p>"))

	html, err := cache.Get(ctx, "https://example.com/a")
	require.NoError(t, err)
	assert.Equal(t, "<p>new</p>", html)
}

func TestPageCache_PutRequiresURL(t *testing.T) {
	t.Parallel()

	cache := sqlite.NewPageCache(openTestDB(t))

	err := cache.Put(context.Background(), "", "<p>x</p>")

	require.Error(t, err)
	assert.Equal(t, justext.EINVALID, justext.ErrorCode(err))
}

func TestPageCache_SurvivesReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dbPath := t.TempDir() + "/cache.db"

	db := sqlite.NewDB(dbPath)
	require.NoError(t, db.Open())
	cache := sqlite.NewPageCache(db)
	require.NoError(t, cache.Put(ctx, "https://example.com/a", "<p>kept</p>"))
	require.NoError(t, cache.Close())

	// A second open of the same file sees the entry.
	db2 := sqlite.NewDB(dbPath)
	require.NoError(t, db2.Open())
	defer db2.Close()

	html, err := sqlite.NewPageCache(db2).Get(ctx, "https://example.com/a")
	require.NoError(t, err)
	assert.Equal(t, "<p>kept</p>", html)
}
