// Package stoplists serves the language stoplists embedded with the
// binary. Each list is a plain text file with one word per line.
package stoplists

import (
	"embed"
	"sort"
	"strings"
	"sync"

	"github.com/fwojciec/justext"
)

//go:embed data/*.txt
var dataFS embed.FS

// Ensure Service implements justext.StoplistService at compile time.
var _ justext.StoplistService = (*Service)(nil)

// Service parses the embedded word lists once, on first use, and serves
// them from memory. It is safe for concurrent use.
type Service struct {
	once   sync.Once
	err    error
	byName map[string]justext.Stoplist
	names  []string
	merged justext.Stoplist
}

// NewService creates a new Service.
func NewService() *Service {
	return &Service{}
}

func (s *Service) load() error {
	s.once.Do(func() {
		entries, err := dataFS.ReadDir("data")
		if err != nil {
			s.err = justext.Errorf(justext.EINTERNAL, "failed to read embedded stoplists: %v", err)
			return
		}

		s.byName = make(map[string]justext.Stoplist, len(entries))
		s.merged = justext.Stoplist{}
		for _, entry := range entries {
			raw, err := dataFS.ReadFile("data/" + entry.Name())
			if err != nil {
				s.err = justext.Errorf(justext.EINTERNAL, "failed to read stoplist %s: %v", entry.Name(), err)
				return
			}
			name := strings.TrimSuffix(entry.Name(), ".txt")
			list := justext.NewStoplist(strings.Split(string(raw), "\n")...)
			s.byName[strings.ToLower(name)] = list
			s.names = append(s.names, name)
			for word := range list {
				s.merged[word] = struct{}{}
			}
		}
		sort.Strings(s.names)
	})
	return s.err
}

// Stoplist returns the stoplist for the named language. The lookup is
// case-insensitive. Returns ENOTFOUND if the language is unknown.
func (s *Service) Stoplist(language string) (justext.Stoplist, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	list, ok := s.byName[strings.ToLower(language)]
	if !ok {
		return nil, justext.Errorf(justext.ENOTFOUND, "unknown language: %s", language)
	}
	return list, nil
}

// All returns the merged stopwords of every available language.
func (s *Service) All() justext.Stoplist {
	if err := s.load(); err != nil {
		return justext.Stoplist{}
	}
	return s.merged
}

// Languages returns the available language names in sorted order.
func (s *Service) Languages() []string {
	if err := s.load(); err != nil {
		return nil
	}
	return s.names
}
