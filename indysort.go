package omnisort

// IndySort sorts s in place by collecting natural runs into a queue and
// merging them pairwise left to right, one round at a time: runs 0 and 1
// merge, then 2 and 3, and so on, an odd run carrying over unchanged. The
// queue stays in sequence order so every pair is adjacent. Stable,
// O(n log n) worst case, and a single detected run short-circuits with
// zero merges.
func IndySort[E any](s Sequence[E], cmp Compare[E]) {
	n := s.Len()
	if n < 2 {
		return
	}

	type run struct{ start, length int }
	var runs []run
	for lo := 0; lo < n; {
		length := findRun(s, cmp, lo, n)
		runs = append(runs, run{lo, length})
		lo += length
	}

	for len(runs) > 1 {
		next := runs[:0]
		i := 0
		for ; i+1 < len(runs); i += 2 {
			a, b := runs[i], runs[i+1]
			mergeRuns(s, cmp, a.start, b.start, b.start+b.length)
			next = append(next, run{a.start, a.length + b.length})
		}
		if i < len(runs) {
			next = append(next, runs[i])
		}
		runs = next
	}
}
