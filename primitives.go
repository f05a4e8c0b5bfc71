package omnisort

import "math/bits"

func swap[E any](s Sequence[E], i, j int) {
	a, b := s.Get(i), s.Get(j)
	s.Set(i, b)
	s.Set(j, a)
}

func reverseRange[E any](s Sequence[E], lo, hi int) {
	for hi--; lo < hi; lo, hi = lo+1, hi-1 {
		swap(s, lo, hi)
	}
}

// log2floor is floor(log2(n)) for n > 0.
func log2floor(n int) int {
	return bits.Len(uint(n)) - 1
}

// insertionSortRange sorts s[lo:hi] by straight insertion. Stable.
func insertionSortRange[E any](s Sequence[E], cmp Compare[E], lo, hi int) {
	for i := lo + 1; i < hi; i++ {
		v := s.Get(i)
		j := i
		for j > lo && cmp(v, s.Get(j-1)) < 0 {
			s.Set(j, s.Get(j-1))
			j--
		}
		if j != i {
			s.Set(j, v)
		}
	}
}

// binaryInsertionSortRange sorts s[lo:hi] given that s[lo:start] is already
// sorted, locating each insertion point by binary search. Stable.
func binaryInsertionSortRange[E any](s Sequence[E], cmp Compare[E], lo, hi, start int) {
	if start <= lo {
		start = lo + 1
	}
	for ; start < hi; start++ {
		v := s.Get(start)
		// rightmost position keeps equal elements in input order
		left, right := lo, start
		for left < right {
			mid := int(uint(left+right) >> 1)
			if cmp(v, s.Get(mid)) < 0 {
				right = mid
			} else {
				left = mid + 1
			}
		}
		for j := start; j > left; j-- {
			s.Set(j, s.Get(j-1))
		}
		s.Set(left, v)
	}
}

// siftDownRange implements the heap property on s[lo+root:hi) rooted at
// lo+root, with lo as the offset of the heap within the sequence.
func siftDownRange[E any](s Sequence[E], cmp Compare[E], lo, root, hi int) {
	for {
		child := 2*root + 1
		if child >= hi {
			return
		}
		if child+1 < hi && cmp(s.Get(lo+child), s.Get(lo+child+1)) < 0 {
			child++
		}
		if cmp(s.Get(lo+root), s.Get(lo+child)) >= 0 {
			return
		}
		swap(s, lo+root, lo+child)
		root = child
	}
}

// heapSortRange sorts s[lo:hi] with a binary max-heap. Unstable,
// O(n log n) worst case; the quicksort family calls it when the recursion
// depth budget runs out.
func heapSortRange[E any](s Sequence[E], cmp Compare[E], lo, hi int) {
	n := hi - lo
	for root := n/2 - 1; root >= 0; root-- {
		siftDownRange(s, cmp, lo, root, n)
	}
	for end := n - 1; end > 0; end-- {
		swap(s, lo, lo+end)
		siftDownRange(s, cmp, lo, 0, end)
	}
}

// findRun returns the length of the maximal run starting at lo within
// s[lo:hi]. A strictly descending run is reversed in place first, so the
// returned run is always ascending. Equal adjacent elements extend an
// ascending run, which keeps later stable merges correct.
func findRun[E any](s Sequence[E], cmp Compare[E], lo, hi int) int {
	i := lo + 1
	if i == hi {
		return 1
	}
	if cmp(s.Get(i), s.Get(i-1)) < 0 {
		for i++; i < hi && cmp(s.Get(i), s.Get(i-1)) < 0; i++ {
		}
		reverseRange(s, lo, i)
	} else {
		for i++; i < hi && cmp(s.Get(i), s.Get(i-1)) >= 0; i++ {
		}
	}
	return i - lo
}

// medianOf3 orders the elements at a, b, c in place and returns b, the
// index now holding the median.
func medianOf3[E any](s Sequence[E], cmp Compare[E], a, b, c int) int {
	if cmp(s.Get(b), s.Get(a)) < 0 {
		swap(s, a, b)
	}
	if cmp(s.Get(c), s.Get(b)) < 0 {
		swap(s, b, c)
		if cmp(s.Get(b), s.Get(a)) < 0 {
			swap(s, a, b)
		}
	}
	return b
}

// medianOf5 orders the five indices by their elements with a short
// insertion network and returns c, the index now holding the median.
// The indices are expected to be evenly spaced over the range.
func medianOf5[E any](s Sequence[E], cmp Compare[E], a, b, c, d, e int) int {
	idx := [5]int{a, b, c, d, e}
	for i := 1; i < 5; i++ {
		for j := i; j > 0 && cmp(s.Get(idx[j]), s.Get(idx[j-1])) < 0; j-- {
			swap(s, idx[j], idx[j-1])
		}
	}
	return c
}
