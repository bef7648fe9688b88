// Package bloom provides identity deduplication using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter for page identity deduplication.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected identities
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds an identity to the filter.
func (f *Filter) Add(identity string) {
	f.f.AddString(identity)
}

// Test returns true if the identity might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(identity string) bool {
	return f.f.TestString(identity)
}

// EstimatedCount returns the approximate number of identities in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
