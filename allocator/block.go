package allocator

// Block is a contiguous address range [Start, End], either free or held
// by the owner it is tagged with. An empty Owner marks the block free.
type Block struct {
	Start uint32
	End   uint32
	Owner string
}

// Size ...
func (b Block) Size() uint32 {
	return b.End - b.Start + 1
}

// IsFree ...
func (b Block) IsFree() bool {
	return b.Owner == ""
}
