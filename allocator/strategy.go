package allocator

// Strategy selects which free block satisfies an allocation request.
type Strategy int

const (
	// FirstFit takes the lowest-addressed free block that is large enough
	FirstFit Strategy = iota
	// BestFit takes the smallest free block that is large enough
	BestFit
	// WorstFit takes the largest free block that is large enough
	WorstFit
)

func (s Strategy) valid() bool {
	switch s {
	case FirstFit, BestFit, WorstFit:
		return true
	}
	return false
}

// better reports whether candidate should replace current as the chosen
// free block. FirstFit never replaces: the scan keeps its first match.
// Ties keep the lower-addressed block since both comparisons are strict.
func (s Strategy) better(candidate Block, current Block) bool {
	switch s {
	case BestFit:
		return candidate.Size() < current.Size()
	case WorstFit:
		return candidate.Size() > current.Size()
	default:
		return false
	}
}
