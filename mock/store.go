package mock

import (
	"context"

	"github.com/fwojciec/justext"
)

var _ justext.ResultStore = (*ResultStore)(nil)

// ResultStore is a mock implementation of justext.ResultStore.
type ResultStore struct {
	SaveFn   func(ctx context.Context, path, content string) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ResultStore) Save(ctx context.Context, path, content string) error {
	return s.SaveFn(ctx, path, content)
}

func (s *ResultStore) Commit() error {
	return s.CommitFn()
}

func (s *ResultStore) Abort() error {
	return s.AbortFn()
}
