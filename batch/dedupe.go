package batch

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/fwojciec/justext/bloom"
)

// Deduper sizing defaults for typical corpus runs.
const (
	// DefaultExpectedDocuments sizes the Bloom filter.
	DefaultExpectedDocuments = 10000
	// DefaultFalsePositiveRate is the acceptable rate of distinct
	// documents misreported as duplicates.
	DefaultFalsePositiveRate = 0.01
)

// Deduper tracks fingerprints of extracted text so batches can skip
// documents whose content repeats an earlier input, such as the same
// article served under several URLs. Detection is probabilistic: a
// small share of distinct documents may be misreported as duplicates,
// but a duplicate is never reported as new.
//
// Deduper is safe for concurrent use.
type Deduper struct {
	mu     sync.Mutex
	filter *bloom.Filter
}

// NewDeduper creates a Deduper sized for the expected number of
// documents with the given false positive rate.
func NewDeduper(expected uint, fpRate float64) *Deduper {
	return &Deduper{
		filter: bloom.NewFilter(expected, fpRate),
	}
}

// Seen records the text and reports whether its fingerprint was already
// recorded.
func (d *Deduper) Seen(text string) bool {
	fingerprint := fmt.Sprintf("%x", xxhash.Sum64String(text))

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.filter.Test(fingerprint) {
		return true
	}
	d.filter.Add(fingerprint)
	return false
}
