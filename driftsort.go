package omnisort

import "math"

// DriftSort sorts s in place by insertion-sorting fixed-size blocks of
// max(32, floor(sqrt(n))) elements, then repeatedly merging the first
// adjacent block pair whose boundary is out of order. When every boundary
// is ordered the blocks are collapsed front to back, which costs nothing
// because those merges short-circuit. The eager first-out-of-order policy
// favors locality over balanced merge trees. Stable.
func DriftSort[E any](s Sequence[E], cmp Compare[E]) {
	n := s.Len()
	if n < 2 {
		return
	}

	block := int(math.Sqrt(float64(n)))
	if block < 32 {
		block = 32
	}

	// block boundaries; bounds[i] starts block i
	var bounds []int
	for lo := 0; lo < n; lo += block {
		hi := lo + block
		if hi > n {
			hi = n
		}
		insertionSortRange(s, cmp, lo, hi)
		bounds = append(bounds, lo)
	}
	bounds = append(bounds, n)

	for len(bounds) > 2 {
		pick := 0
		for i := 1; i < len(bounds)-1; i++ {
			if cmp(s.Get(bounds[i]-1), s.Get(bounds[i])) > 0 {
				pick = i - 1
				break
			}
		}
		mergeRuns(s, cmp, bounds[pick], bounds[pick+1], bounds[pick+2])
		copy(bounds[pick+1:], bounds[pick+2:])
		bounds = bounds[:len(bounds)-1]
	}
}
