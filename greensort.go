package omnisort

// GreenSort sorts s in place with a top-down mergesort whose merges first
// trim the already-ordered prefix of the left half and suffix of the right
// half by binary search, so only the unordered middle is copied and
// merged. On partially pre-ordered halves this avoids most of the data
// movement of a plain merge. Stable, O(n log n) worst case.
func GreenSort[E any](s Sequence[E], cmp Compare[E]) {
	greenRange(s, cmp, 0, s.Len())
}

func greenRange[E any](s Sequence[E], cmp Compare[E], lo, hi int) {
	if hi-lo <= 16 {
		insertionSortRange(s, cmp, lo, hi)
		return
	}
	mid := int(uint(lo+hi) >> 1)
	greenRange(s, cmp, lo, mid)
	greenRange(s, cmp, mid, hi)
	trimMerge(s, cmp, lo, mid, hi)
}

// trimMerge merges s[lo:mid] and s[mid:hi] after shrinking the window:
// left elements no greater than the right half's first element are already
// placed, as are right elements no smaller than the left half's last.
func trimMerge[E any](s Sequence[E], cmp Compare[E], lo, mid, hi int) {
	if cmp(s.Get(mid-1), s.Get(mid)) <= 0 {
		return
	}
	// upper bound of s[mid] in the left half: equals stay left of it
	first := s.Get(mid)
	a, b := lo, mid
	for a < b {
		m := int(uint(a+b) >> 1)
		if cmp(first, s.Get(m)) < 0 {
			b = m
		} else {
			a = m + 1
		}
	}
	lo = a

	// lower bound of s[mid-1] in the right half: equals stay right of it
	last := s.Get(mid - 1)
	a, b = mid, hi
	for a < b {
		m := int(uint(a+b) >> 1)
		if cmp(s.Get(m), last) < 0 {
			a = m + 1
		} else {
			b = m
		}
	}
	hi = a

	mergeRuns(s, cmp, lo, mid, hi)
}
