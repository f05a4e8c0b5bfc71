package omnisort

// FluxSort sorts s in place with a dual-pivot quicksort. Each partition
// pass picks the second and fourth of five evenly spaced samples as low
// and high pivots and classifies every element in one sweep into
// "at most low", "between", or "at least high", staging the latter two
// classes in a full-size scratch buffer. Unstable, O(n log n) worst case
// through the depth-limited heap-sort fallback.
func FluxSort[E any](s Sequence[E], cmp Compare[E]) {
	n := s.Len()
	if n < 2 {
		return
	}
	fluxRange(s, cmp, 0, n, 2*log2floor(n))
}

func fluxRange[E any](s Sequence[E], cmp Compare[E], lo, hi, limit int) {
	for hi-lo > 24 {
		if limit == 0 {
			heapSortRange(s, cmp, lo, hi)
			return
		}
		limit--

		n := hi - lo
		q := n / 4
		// order the samples in place; the 2nd and 4th become the pivots
		medianOf5(s, cmp, lo, lo+q, lo+n/2, hi-1-q, hi-1)
		pL, pR := s.Get(lo+q), s.Get(hi-1-q)

		if cmp(pL, pR) == 0 {
			// degenerate sample: single-pivot three-way pass
			lt, gt := partitionThreeWay(s, cmp, lo, hi, lo+n/2)
			if lt-lo < hi-gt {
				fluxRange(s, cmp, lo, lt, limit)
				lo = gt
			} else {
				fluxRange(s, cmp, gt, hi, limit)
				hi = lt
			}
			continue
		}

		a, b := fluxPartition(s, cmp, lo, hi, pL, pR)

		// recurse on the two smaller segments, iterate on the largest
		l1, l2, l3 := a-lo, b-a, hi-b
		if l1 >= l2 && l1 >= l3 {
			fluxRange(s, cmp, a, b, limit)
			fluxRange(s, cmp, b, hi, limit)
			hi = a
		} else if l2 >= l1 && l2 >= l3 {
			fluxRange(s, cmp, lo, a, limit)
			fluxRange(s, cmp, b, hi, limit)
			lo, hi = a, b
		} else {
			fluxRange(s, cmp, lo, a, limit)
			fluxRange(s, cmp, a, b, limit)
			lo = b
		}
	}
	insertionSortRange(s, cmp, lo, hi)
}

// fluxPartition classifies s[lo:hi] against the pivot pair in one forward
// pass: elements <= pL stay in the sequence, the middle class grows from
// the front of the scratch buffer and the high class from its back. On
// return s[lo:a] <= pL < s[a:b] < pR <= s[b:hi]. Requires pL < pR, which
// guarantees all three classes are proper subranges.
func fluxPartition[E any](s Sequence[E], cmp Compare[E], lo, hi int, pL, pR E) (a, b int) {
	n := hi - lo
	buf, release := borrowScratch[E](n)
	defer release(&buf)
	buf = buf[:n]

	low := lo
	m, g := 0, n
	for i := lo; i < hi; i++ {
		v := s.Get(i)
		if cmp(v, pL) <= 0 {
			s.Set(low, v)
			low++
		} else if cmp(v, pR) >= 0 {
			g--
			buf[g] = v
		} else {
			buf[m] = v
			m++
		}
	}

	a = low
	for i := 0; i < m; i++ {
		s.Set(low, buf[i])
		low++
	}
	b = low
	// high class was collected back to front; restore scan order
	for i := n - 1; i >= g; i-- {
		s.Set(low, buf[i])
		low++
	}
	return a, b
}
