package justext

import "strings"

// Stoplist is a set of frequent words for one language. Entries are stored
// lowercase.
type Stoplist map[string]struct{}

// NewStoplist builds a stoplist from words, lowercasing every entry and
// skipping empty ones.
func NewStoplist(words ...string) Stoplist {
	s := make(Stoplist, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		s[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// Contains reports whether word is in the stoplist. Matching is
// case-insensitive.
func (s Stoplist) Contains(word string) bool {
	_, ok := s[strings.ToLower(word)]
	return ok
}

// StoplistService provides access to per-language stoplists.
type StoplistService interface {
	// Stoplist returns the stoplist for the named language. The lookup is
	// case-insensitive. Returns ENOTFOUND if the language is unknown.
	Stoplist(language string) (Stoplist, error)

	// All returns the merged stopwords of every available language.
	All() Stoplist

	// Languages returns the available language names in sorted order.
	Languages() []string
}
