package omnisort

// PatternDefeatingQuickSort sorts s in place with a pattern-defeating
// quicksort: three-way partitioning widens runs of equal keys out of both
// sides, a partition pass that moved nothing short-circuits through a
// bounded insertion attempt, and a recursion depth budget of
// 2*floor(log2(n)) triggers a heap-sort fallback. Unstable, O(n log n)
// worst case.
func PatternDefeatingQuickSort[E any](s Sequence[E], cmp Compare[E]) {
	n := s.Len()
	if n < 2 {
		return
	}
	pdqRange(s, cmp, 0, n, 2*log2floor(n), 0)
}

// pdqRange sorts s[lo:hi]. Recurses into the smaller partition and loops
// on the larger to keep stack depth logarithmic. origin marks the start of
// the top-level range so the equal-key check can look one element left;
// anything between origin and lo is already in final position and no
// larger than the elements of [lo, hi).
func pdqRange[E any](s Sequence[E], cmp Compare[E], lo, hi, limit, origin int) {
	for {
		n := hi - lo
		if n <= 24 {
			insertionSortRange(s, cmp, lo, hi)
			return
		}
		if limit == 0 {
			heapSortRange(s, cmp, lo, hi)
			return
		}
		limit--

		pivot := choosePivot(s, cmp, lo, hi)

		// A pivot no larger than its left neighbor means the left side of
		// the current range is saturated with equal keys; sweep them out
		// of both partitions instead of recursing on them.
		if lo > origin && cmp(s.Get(lo-1), s.Get(pivot)) >= 0 {
			lo = partitionEqual(s, cmp, lo, hi, pivot)
			continue
		}

		mid, alreadyPartitioned := partitionRight(s, cmp, lo, hi, pivot)
		if alreadyPartitioned {
			// zero swaps: probe whether both sides are in fact sorted
			if partialInsertionSort(s, cmp, lo, mid) &&
				partialInsertionSort(s, cmp, mid+1, hi) {
				return
			}
		}

		if mid-lo < hi-mid-1 {
			pdqRange(s, cmp, lo, mid, limit, origin)
			lo = mid + 1
		} else {
			pdqRange(s, cmp, mid+1, hi, limit, origin)
			hi = mid
		}
	}
}

// choosePivot picks median-of-3 for small ranges and median-of-5 over
// evenly spaced samples for large ones, returning the pivot index.
func choosePivot[E any](s Sequence[E], cmp Compare[E], lo, hi int) int {
	n := hi - lo
	if n < 128 {
		return medianOf3(s, cmp, lo, lo+n/2, hi-1)
	}
	q := n / 4
	return medianOf5(s, cmp, lo, lo+q, lo+n/2, hi-1-q, hi-1)
}

// partitionRight partitions s[lo:hi] around s[pivot] so that elements
// smaller than the pivot land left of it. Returns the pivot's final index
// and whether the pass performed no swaps.
func partitionRight[E any](s Sequence[E], cmp Compare[E], lo, hi, pivot int) (int, bool) {
	swap(s, lo, pivot)
	p := s.Get(lo)
	i, j := lo+1, hi-1

	for i <= j && cmp(s.Get(i), p) < 0 {
		i++
	}
	for i <= j && cmp(s.Get(j), p) >= 0 {
		j--
	}
	if i > j {
		swap(s, lo, j)
		return j, true
	}
	swap(s, i, j)
	i++
	j--

	for {
		for i <= j && cmp(s.Get(i), p) < 0 {
			i++
		}
		for i <= j && cmp(s.Get(j), p) >= 0 {
			j--
		}
		if i > j {
			break
		}
		swap(s, i, j)
		i++
		j--
	}
	swap(s, lo, j)
	return j, false
}

// partitionEqual moves every element equal to s[pivot] to s[lo:ret) and
// returns ret, the index after the equal range.
func partitionEqual[E any](s Sequence[E], cmp Compare[E], lo, hi, pivot int) int {
	swap(s, lo, pivot)
	p := s.Get(lo)
	i, j := lo+1, hi-1
	for {
		for i <= j && cmp(s.Get(i), p) <= 0 {
			i++
		}
		for i <= j && cmp(s.Get(j), p) > 0 {
			j--
		}
		if i > j {
			break
		}
		swap(s, i, j)
		i++
		j--
	}
	return i
}

// partialInsertionSort tries to finish sorting s[lo:hi] with at most a
// small constant number of out-of-place elements, reporting whether it
// succeeded. A failed probe leaves the range partially adjusted but still
// a permutation.
func partialInsertionSort[E any](s Sequence[E], cmp Compare[E], lo, hi int) bool {
	const maxSteps = 5
	steps := 0
	i := lo + 1
	for i < hi {
		if cmp(s.Get(i), s.Get(i-1)) >= 0 {
			i++
			continue
		}
		steps++
		if steps > maxSteps {
			return false
		}
		v := s.Get(i)
		j := i
		for j > lo && cmp(v, s.Get(j-1)) < 0 {
			s.Set(j, s.Get(j-1))
			j--
		}
		s.Set(j, v)
		i++
	}
	return true
}
