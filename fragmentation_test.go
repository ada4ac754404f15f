package vpalloc

import (
	"github.com/QuangTung97/vpalloc/allocator"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewFragmentation(t *testing.T) {
	f := NewFragmentation(allocator.Stats{
		Capacity:    100,
		FreeTotal:   60,
		LargestFree: 40,
	})
	assert.Equal(t, Fragmentation{LargestFree: 40, FreeTotal: 60}, f)
}

func TestFragmentationFragmented(t *testing.T) {
	assert.True(t, Fragmentation{LargestFree: 40, FreeTotal: 60}.Fragmented())
	assert.False(t, Fragmentation{LargestFree: 60, FreeTotal: 60}.Fragmented())
	assert.False(t, Fragmentation{}.Fragmented())
}

func TestFragmentationPercent(t *testing.T) {
	table := []struct {
		name     string
		frag     Fragmentation
		expected uint32
	}{
		{
			name:     "coalesced",
			frag:     Fragmentation{LargestFree: 60, FreeTotal: 60},
			expected: 100,
		},
		{
			name:     "split",
			frag:     Fragmentation{LargestFree: 20, FreeTotal: 30},
			expected: 66,
		},
		{
			name:     "no-free-space",
			frag:     Fragmentation{},
			expected: 100,
		},
		{
			name:     "large-values",
			frag:     Fragmentation{LargestFree: 1 << 31, FreeTotal: 1 << 31},
			expected: 100,
		},
	}

	for _, e := range table {
		t.Run(e.name, func(t *testing.T) {
			assert.Equal(t, e.expected, e.frag.Percent())
		})
	}
}
