package omnisort

// IpnSort sorts s in place with a depth-limited introspective quicksort
// that samples five evenly spaced elements for its pivot on every range
// above 64 elements, trading comparisons for partition balance. Unstable,
// O(n log n) worst case through the heap-sort fallback.
func IpnSort[E any](s Sequence[E], cmp Compare[E]) {
	n := s.Len()
	if n < 2 {
		return
	}
	ipnRange(s, cmp, 0, n, 2*log2floor(n))
}

func ipnRange[E any](s Sequence[E], cmp Compare[E], lo, hi, limit int) {
	for hi-lo > 16 {
		if limit == 0 {
			heapSortRange(s, cmp, lo, hi)
			return
		}
		limit--

		n := hi - lo
		var pivot int
		if n > 64 {
			q := n / 4
			pivot = medianOf5(s, cmp, lo, lo+q, lo+n/2, hi-1-q, hi-1)
		} else {
			pivot = medianOf3(s, cmp, lo, lo+n/2, hi-1)
		}
		mid, _ := partitionRight(s, cmp, lo, hi, pivot)

		if mid-lo < hi-mid-1 {
			ipnRange(s, cmp, lo, mid, limit)
			lo = mid + 1
		} else {
			ipnRange(s, cmp, mid+1, hi, limit)
			hi = mid
		}
	}
	insertionSortRange(s, cmp, lo, hi)
}
