// Package bloom remembers origins whose favicon lookup failed, so repeated
// refreshes skip them without keeping every origin in memory.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter is a concurrency-safe Bloom filter over origin strings.
type Filter struct {
	mu sync.RWMutex
	f  *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected origins
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records origin.
func (f *Filter) Add(origin string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.f.AddString(origin)
}

// Test returns true if origin might have been added.
// False positives are possible; false negatives are not.
func (f *Filter) Test(origin string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.f.TestString(origin)
}

// EstimatedCount returns the approximate number of origins in the filter.
func (f *Filter) EstimatedCount() uint {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return uint(f.f.ApproximatedSize())
}

// Reset forgets every origin.
func (f *Filter) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.f.ClearAll()
}
