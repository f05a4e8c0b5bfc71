package omnisort

// Gap-based hybrids: shell sorts with tuned shrink factors instead of the
// classic halving sequence. Low overhead, no auxiliary memory, not stable.

// GhostSort sorts s in place with a shell sort using a 2.25 gap shrink
// factor. Unstable, O(n log n) average, no auxiliary memory.
func GhostSort[E any](s Sequence[E], cmp Compare[E]) {
	n := s.Len()
	if n < 2 {
		return
	}
	for gap := n * 4 / 9; gap > 1; gap = gap * 4 / 9 {
		gapPass(s, cmp, gap)
	}
	insertionSortRange(s, cmp, 0, n)
}

// MeteorSort sorts s in place with a shell sort using a 1.7 gap shrink
// factor, finishing with a plain insertion pass. The denser gap sequence
// trades more passes for fewer far moves per pass. Unstable.
func MeteorSort[E any](s Sequence[E], cmp Compare[E]) {
	n := s.Len()
	if n < 2 {
		return
	}
	for gap := n * 10 / 17; gap > 1; gap = gap * 10 / 17 {
		gapPass(s, cmp, gap)
	}
	insertionSortRange(s, cmp, 0, n)
}

// gapPass runs one insertion pass over every gap-strided chain.
func gapPass[E any](s Sequence[E], cmp Compare[E], gap int) {
	n := s.Len()
	for i := gap; i < n; i++ {
		v := s.Get(i)
		j := i
		for j >= gap && cmp(v, s.Get(j-gap)) < 0 {
			s.Set(j, s.Get(j-gap))
			j -= gap
		}
		if j != i {
			s.Set(j, v)
		}
	}
}
