package mock

import "github.com/fwojciec/justext"

var _ justext.StoplistService = (*StoplistService)(nil)

// StoplistService is a mock implementation of justext.StoplistService.
type StoplistService struct {
	StoplistFn  func(language string) (justext.Stoplist, error)
	AllFn       func() justext.Stoplist
	LanguagesFn func() []string
}

func (s *StoplistService) Stoplist(language string) (justext.Stoplist, error) {
	return s.StoplistFn(language)
}

func (s *StoplistService) All() justext.Stoplist {
	return s.AllFn()
}

func (s *StoplistService) Languages() []string {
	return s.LanguagesFn()
}
