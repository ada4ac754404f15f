package vpalloc

import "github.com/QuangTung97/vpalloc/allocator"

// Fragmentation relates the largest free block to the total free space.
type Fragmentation struct {
	LargestFree uint32
	FreeTotal   uint32
}

// NewFragmentation ...
func NewFragmentation(stats allocator.Stats) Fragmentation {
	return Fragmentation{
		LargestFree: stats.LargestFree,
		FreeTotal:   stats.FreeTotal,
	}
}

// Fragmented reports whether some request could fail even though the
// total free space would cover it.
func (f Fragmentation) Fragmented() bool {
	return f.LargestFree < f.FreeTotal
}

// Percent returns the share of free space covered by the largest free
// block, in whole percents. Fully coalesced free space reports 100, and
// so does a fully allocated address space.
func (f Fragmentation) Percent() uint32 {
	if f.FreeTotal == 0 {
		return 100
	}
	return uint32(uint64(f.LargestFree) * 100 / uint64(f.FreeTotal))
}
