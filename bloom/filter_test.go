package bloom_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/startpage/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Test("https://example.com"))

	f.Add("https://example.com")

	assert.True(t, f.Test("https://example.com"))
	assert.False(t, f.Test("https://example.org"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.Equal(t, uint(0), f.EstimatedCount())

	f.Add("https://a.example")
	f.Add("https://b.example")
	f.Add("https://c.example")

	count := f.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestFilter_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	f.Add("https://example.com")
	countAfterFirst := f.EstimatedCount()

	f.Add("https://example.com")
	f.Add("https://example.com")

	assert.Equal(t, countAfterFirst, f.EstimatedCount())
}

func TestFilter_Reset(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(100, 0.01)
	f.Add("https://example.com")

	f.Reset()

	assert.False(t, f.Test("https://example.com"))
	assert.Equal(t, uint(0), f.EstimatedCount())
}

func TestFilter_ConcurrentUse(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 50 {
				origin := fmt.Sprintf("https://%d-%d.example", i, j)
				f.Add(origin)
				_ = f.Test(origin)
			}
		}()
	}
	wg.Wait()

	assert.True(t, f.Test("https://7-49.example"))
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	f := bloom.NewFilter(numItems, fpRate)

	for i := range numItems {
		f.Add(fmt.Sprintf("https://added-%d.example", i))
	}

	falsePositives := 0
	for i := range testProbes {
		if f.Test(fmt.Sprintf("https://notadded-%d.example", i)) {
			falsePositives++
		}
	}

	// Allow up to 2% to account for statistical variance.
	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}
