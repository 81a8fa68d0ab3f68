// Package fs provides file-based storage for extraction output.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/justext"
)

// Ensure Store implements justext.ResultStore at compile time.
var _ justext.ResultStore = (*Store)(nil)

// Store implements justext.ResultStore with atomic update semantics.
// Files are saved to a temporary directory, then moved atomically on
// Commit, so the destination never holds a half-written batch.
type Store struct {
	baseDir string
	name    string
}

// NewStore creates a new Store. baseDir is the parent directory, name is
// the output directory name. Files are saved to baseDir/name.tmp and
// moved to baseDir/name on Commit.
func NewStore(baseDir, name string) *Store {
	return &Store{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *Store) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *Store) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes content at the given relative path inside the staging
// directory, creating parent directories as needed.
func (s *Store) Save(ctx context.Context, path, content string) error {
	if filepath.IsAbs(path) || path == "" {
		return justext.Errorf(justext.EINVALID, "store path must be relative and non-empty: %q", path)
	}

	fullPath := filepath.Join(s.tempDir(), path)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(content), 0644)
}

// Commit atomically replaces the destination directory with the staged
// files. A previous destination directory is removed first.
func (s *Store) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort removes the staging directory without touching the destination.
func (s *Store) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// NameToPath converts an input name (a URL or a local file path) to a
// relative output path without extension. URLs keep their host and path
// structure; local paths are reduced to their base name. Path segments
// that would escape the output directory are dropped.
//
// Example: https://example.com/news/article.html → example.com/news/article.html
func NameToPath(name string) string {
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		if u, err := url.Parse(name); err == nil {
			segs := []string{u.Host}
			for _, seg := range strings.Split(u.Path, "/") {
				if seg == "" || seg == "." || seg == ".." {
					continue
				}
				segs = append(segs, seg)
			}
			// Root or trailing slash becomes an index entry in that
			// directory.
			if len(segs) == 1 || strings.HasSuffix(u.Path, "/") {
				segs = append(segs, "index")
			}
			return filepath.Join(segs...)
		}
	}

	base := filepath.Base(name)
	if base == "." || base == string(filepath.Separator) {
		return "index"
	}
	return base
}
