package omnisort

// GrailSort sorts s in place with a classic top-down mergesort: split at
// the midpoint, recurse, and merge with a pooled buffer no larger than
// half the range. No run detection. Stable, O(n log n) in every case.
func GrailSort[E any](s Sequence[E], cmp Compare[E]) {
	grailRange(s, cmp, 0, s.Len())
}

func grailRange[E any](s Sequence[E], cmp Compare[E], lo, hi int) {
	if hi-lo <= 16 {
		insertionSortRange(s, cmp, lo, hi)
		return
	}
	mid := int(uint(lo+hi) >> 1)
	grailRange(s, cmp, lo, mid)
	grailRange(s, cmp, mid, hi)
	mergeRuns(s, cmp, lo, mid, hi)
}
