package omnisort

// InsertionSort sorts s in place by binary insertion. Stable, O(n²) worst
// and average case, O(n) on nearly-sorted input. The divide-and-conquer
// strategies use it as their terminal case; it is also selectable directly
// for small sequences.
func InsertionSort[E any](s Sequence[E], cmp Compare[E]) {
	n := s.Len()
	if n < 2 {
		return
	}
	run := findRun(s, cmp, 0, n)
	binaryInsertionSortRange(s, cmp, 0, n, run)
}
