package mock

import "github.com/fwojciec/justext"

var _ justext.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of justext.Cleaner.
type Cleaner struct {
	CleanFn func(src string) (string, error)
}

func (c *Cleaner) Clean(src string) (string, error) {
	return c.CleanFn(src)
}
