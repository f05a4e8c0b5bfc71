package omnisort

// BlockSort sorts s in place with a bottom-up mergesort: insertion-sort
// blocks of 16, then merge blocks of doubling width with one full-size
// scratch buffer borrowed for the whole call. No run detection; the merge
// tree depends only on n. Stable, O(n log n) in every case.
func BlockSort[E any](s Sequence[E], cmp Compare[E]) {
	n := s.Len()
	if n < 2 {
		return
	}

	const base = 16
	for lo := 0; lo < n; lo += base {
		hi := lo + base
		if hi > n {
			hi = n
		}
		insertionSortRange(s, cmp, lo, hi)
	}
	if n <= base {
		return
	}

	buf, release := borrowScratch[E](n)
	defer release(&buf)
	buf = buf[:n]

	for width := base; width < n; width <<= 1 {
		for lo := 0; lo+width < n; lo += width << 1 {
			mid := lo + width
			hi := mid + width
			if hi > n {
				hi = n
			}
			blockMerge(s, cmp, buf, lo, mid, hi)
		}
	}
}

// blockMerge merges s[lo:mid] and s[mid:hi] through buf, which must hold
// at least hi-lo elements.
func blockMerge[E any](s Sequence[E], cmp Compare[E], buf []E, lo, mid, hi int) {
	if cmp(s.Get(mid-1), s.Get(mid)) <= 0 {
		return
	}
	i, j, k := lo, mid, 0
	for i < mid && j < hi {
		if cmp(s.Get(j), s.Get(i)) < 0 {
			buf[k] = s.Get(j)
			j++
		} else {
			buf[k] = s.Get(i)
			i++
		}
		k++
	}
	for ; i < mid; i++ {
		buf[k] = s.Get(i)
		k++
	}
	for ; j < hi; j++ {
		buf[k] = s.Get(j)
		k++
	}
	for i := 0; i < k; i++ {
		s.Set(lo+i, buf[i])
	}
}
