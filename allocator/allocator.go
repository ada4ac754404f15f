package allocator

import "sort"

// Allocator tracks a fixed address space [0, capacity-1] as an ordered
// sequence of disjoint blocks that exactly tile it. Not safe for
// concurrent use: a single caller drives it.
type Allocator struct {
	capacity uint32
	blocks   []Block
}

// New ...
func New(capacity uint32) *Allocator {
	if capacity == 0 {
		panic("capacity must > 0")
	}
	return &Allocator{
		capacity: capacity,
		blocks: []Block{
			{Start: 0, End: capacity - 1},
		},
	}
}

// Capacity ...
func (a *Allocator) Capacity() uint32 {
	return a.capacity
}

func sortBlocks(blocks []Block) {
	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].Start < blocks[j].Start
	})
}

func (a *Allocator) findFreeBlock(size uint32, strategy Strategy) (int, bool) {
	found := -1
	for i, b := range a.blocks {
		if !b.IsFree() || b.Size() < size {
			continue
		}
		if found < 0 {
			found = i
			if strategy == FirstFit {
				break
			}
			continue
		}
		if strategy.better(b, a.blocks[found]) {
			found = i
		}
	}
	if found < 0 {
		return 0, false
	}
	return found, true
}

// Allocate carves a block of the given size for owner out of the free
// block chosen by strategy, at the low end of that block. It returns
// false, leaving the sequence untouched, when the request is invalid or
// no free block is large enough. An owner already holding memory may
// allocate again: the label is a tag, not a unique handle.
func (a *Allocator) Allocate(owner string, size uint32, strategy Strategy) bool {
	if owner == "" || size == 0 || !strategy.valid() {
		return false
	}

	index, ok := a.findFreeBlock(size, strategy)
	if !ok {
		return false
	}

	chosen := &a.blocks[index]
	start := chosen.Start
	end := start + size - 1

	if chosen.Size() == size {
		chosen.Owner = owner
		return true
	}

	chosen.Start = end + 1
	a.blocks = append(a.blocks, Block{Start: start, End: end, Owner: owner})
	sortBlocks(a.blocks)
	return true
}

// Release frees every block held by owner and coalesces adjacent free
// blocks. It returns false when owner holds nothing.
func (a *Allocator) Release(owner string) bool {
	if owner == "" {
		return false
	}

	found := false
	for i := range a.blocks {
		if a.blocks[i].Owner == owner {
			a.blocks[i].Owner = ""
			found = true
		}
	}
	if !found {
		return false
	}

	a.MergeAdjacentFree()
	return true
}

// MergeAdjacentFree merges every run of adjacent free blocks into one.
// Release calls it automatically; calling it again is a no-op.
func (a *Allocator) MergeAdjacentFree() {
	sortBlocks(a.blocks)

	merged := make([]Block, 0, len(a.blocks))
	for _, b := range a.blocks {
		last := len(merged) - 1
		if last >= 0 && merged[last].IsFree() && b.IsFree() {
			merged[last].End = b.End
			continue
		}
		merged = append(merged, b)
	}
	a.blocks = merged
}

// Compact slides every owned block toward address 0, preserving size,
// owner and relative order, leaving at most one trailing free block.
// When owned blocks fill the capacity exactly there is no free block.
// Compaction invalidates every previously reported address range.
func (a *Allocator) Compact() {
	sortBlocks(a.blocks)

	next := uint32(0)
	compacted := make([]Block, 0, len(a.blocks))
	for _, b := range a.blocks {
		if b.IsFree() {
			continue
		}
		size := b.Size()
		compacted = append(compacted, Block{
			Start: next,
			End:   next + size - 1,
			Owner: b.Owner,
		})
		next += size
	}
	if next < a.capacity {
		compacted = append(compacted, Block{Start: next, End: a.capacity - 1})
	}
	a.blocks = compacted
}

// Status returns a copy of the block sequence in ascending start order.
func (a *Allocator) Status() []Block {
	result := make([]Block, len(a.blocks))
	copy(result, a.blocks)
	return result
}

// Stats ...
type Stats struct {
	Capacity    uint32
	UsedTotal   uint32
	FreeTotal   uint32
	LargestFree uint32
	UsedBlocks  int
	FreeBlocks  int
}

// GetStats ...
func (a *Allocator) GetStats() Stats {
	stats := Stats{Capacity: a.capacity}
	for _, b := range a.blocks {
		if b.IsFree() {
			stats.FreeTotal += b.Size()
			stats.FreeBlocks++
			if b.Size() > stats.LargestFree {
				stats.LargestFree = b.Size()
			}
		} else {
			stats.UsedTotal += b.Size()
			stats.UsedBlocks++
		}
	}
	return stats
}
