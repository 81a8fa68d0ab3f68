package justext

import "context"

// ResultStore persists per-document extraction output as files under a
// staging area that becomes visible atomically. Callers Save any number
// of documents and then either Commit the batch or Abort to discard it.
type ResultStore interface {
	// Save writes content at the given relative path inside the staging
	// area, creating parent directories as needed.
	Save(ctx context.Context, path, content string) error

	// Commit atomically replaces the destination directory with the
	// staged files.
	Commit() error

	// Abort removes the staging area without touching the destination.
	Abort() error
}
