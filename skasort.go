package omnisort

// SkaSort sorts s in place with a depth-limited quicksort that first scans
// for an already-sorted range and partitions three ways in a single
// forward pass, so runs of equal keys drop out of the recursion entirely.
// Unstable, O(n log n) worst case through the heap-sort fallback.
func SkaSort[E any](s Sequence[E], cmp Compare[E]) {
	n := s.Len()
	if n < 2 {
		return
	}
	skaRange(s, cmp, 0, n, 2*log2floor(n))
}

func skaRange[E any](s Sequence[E], cmp Compare[E], lo, hi, limit int) {
	for hi-lo > 24 {
		if sortedRange(s, cmp, lo, hi) {
			return
		}
		if limit == 0 {
			heapSortRange(s, cmp, lo, hi)
			return
		}
		limit--

		pivot := medianOf3(s, cmp, lo, lo+(hi-lo)/2, hi-1)
		lt, gt := partitionThreeWay(s, cmp, lo, hi, pivot)

		if lt-lo < hi-gt {
			skaRange(s, cmp, lo, lt, limit)
			lo = gt
		} else {
			skaRange(s, cmp, gt, hi, limit)
			hi = lt
		}
	}
	insertionSortRange(s, cmp, lo, hi)
}

// sortedRange reports whether s[lo:hi] is already non-decreasing.
func sortedRange[E any](s Sequence[E], cmp Compare[E], lo, hi int) bool {
	for i := lo + 1; i < hi; i++ {
		if cmp(s.Get(i-1), s.Get(i)) > 0 {
			return false
		}
	}
	return true
}

// partitionThreeWay is a Dutch-flag partition of s[lo:hi] around the value
// at pivot: on return s[lo:lt] < pivot value, s[lt:gt] == pivot value, and
// s[gt:hi] > pivot value.
func partitionThreeWay[E any](s Sequence[E], cmp Compare[E], lo, hi, pivot int) (lt, gt int) {
	p := s.Get(pivot)
	lt, gt = lo, hi
	i := lo
	for i < gt {
		c := cmp(s.Get(i), p)
		switch {
		case c < 0:
			swap(s, lt, i)
			lt++
			i++
		case c > 0:
			gt--
			swap(s, i, gt)
		default:
			i++
		}
	}
	return lt, gt
}
