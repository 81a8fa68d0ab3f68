//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/justext"
	"github.com/fwojciec/justext/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// renderedPage only shows its article once the script has run, so a
// plain HTTP fetch of it returns an empty body.
const renderedPage = `<!DOCTYPE html>
<html>
<head><title>Rendered</title></head>
<body>
<div id="app"></div>
<script>
document.getElementById("app").innerHTML =
  "<h1>Rendered Title</h1><p>This paragraph only exists after JavaScript has run in the browser.</p>";
</script>
</body>
</html>`

func TestFetcher_Fetch_RendersJavaScript(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(renderedPage))
	}))
	defer srv.Close()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	html, err := fetcher.Fetch(ctx, srv.URL)
	require.NoError(t, err)

	assert.Contains(t, html, "Rendered Title")
	assert.Contains(t, html, "only exists after JavaScript has run")
}

func TestFetcher_Fetch_RenderDelay(t *testing.T) {
	t.Parallel()

	// Content appears 200ms after load; without the delay the fetch
	// would read an empty app div.
	page := `<!DOCTYPE html>
<html><body>
<div id="app"></div>
<script>
setTimeout(function() {
  document.getElementById("app").textContent = "Delayed content arrived.";
}, 200);
</script>
</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	fetcher, err := rod.NewFetcher(rod.WithRenderDelay(time.Second))
	require.NoError(t, err)
	defer fetcher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	html, err := fetcher.Fetch(ctx, srv.URL)
	require.NoError(t, err)
	assert.Contains(t, html, "Delayed content arrived.")
}

func TestFetcher_Fetch_ContextCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Never respond; the context should end the fetch.
		select {}
	}))
	defer srv.Close()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = fetcher.Fetch(ctx, srv.URL)
	require.Error(t, err)
}

func TestFetcher_Fetch_RecyclesBrowser(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><p>ok</p></body></html>"))
	}))
	defer srv.Close()

	// With maxPages 1 the second fetch runs against a recycled browser.
	fetcher, err := rod.NewFetcher(rod.WithMaxPages(1))
	require.NoError(t, err)
	defer fetcher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	firstPID := fetcher.LauncherPID()

	_, err = fetcher.Fetch(ctx, srv.URL)
	require.NoError(t, err)

	html, err := fetcher.Fetch(ctx, srv.URL)
	require.NoError(t, err)
	assert.Contains(t, html, "ok")

	assert.NotEqual(t, firstPID, fetcher.LauncherPID(), "browser should have been recycled")
}

func TestFetcher_Close_IsIdempotent(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)

	require.NoError(t, fetcher.Close())
	require.NoError(t, fetcher.Close())

	_, err = fetcher.Fetch(context.Background(), "https://example.com")
	require.Error(t, err)
	assert.Equal(t, justext.EINTERNAL, justext.ErrorCode(err))
}
