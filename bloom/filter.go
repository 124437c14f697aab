// Package bloom provides probabilistic visited-URL tracking for scrape
// runs.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/progscout/progscout"
)

// Sizing for a scrape session. A run touches at most a few thousand
// pages; 1% false positives means at most a handful of skipped pages.
const (
	DefaultExpectedURLs      = 10000
	DefaultFalsePositiveRate = 0.01
)

// Ensure VisitedSet implements progscout.VisitedSet at compile time.
var _ progscout.VisitedSet = (*VisitedSet)(nil)

// VisitedSet tracks processed URLs with a Bloom filter. False positives
// are possible; false negatives are not.
type VisitedSet struct {
	f *bloom.BloomFilter
}

// NewVisitedSet creates a VisitedSet sized for n expected URLs with the
// given false positive rate.
func NewVisitedSet(n uint, fpRate float64) *VisitedSet {
	return &VisitedSet{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// NewDefaultVisitedSet creates a VisitedSet with the default sizing.
func NewDefaultVisitedSet() *VisitedSet {
	return NewVisitedSet(DefaultExpectedURLs, DefaultFalsePositiveRate)
}

// Add marks a URL as visited.
func (v *VisitedSet) Add(url string) {
	v.f.AddString(url)
}

// Test returns true if the URL might have been visited.
func (v *VisitedSet) Test(url string) bool {
	return v.f.TestString(url)
}

// EstimatedCount returns the approximate number of visited URLs.
func (v *VisitedSet) EstimatedCount() uint {
	return uint(v.f.ApproximatedSize())
}
