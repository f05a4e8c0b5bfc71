package omnisort

// SledSort sorts s in place by keeping the detected runs ordered by start
// index and always merging the two leftmost. The merged run is re-inserted
// by its start index, which puts it straight back at the front, so the
// merge order degenerates into a left fold: simple bookkeeping at the cost
// of unbalanced merges on many-run inputs. Stable.
func SledSort[E any](s Sequence[E], cmp Compare[E]) {
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
		// the two lowest start indices are adjacent because the runs
		// partition the sequence
		a, b := runs[0], runs[1]
		mergeRuns(s, cmp, a.start, b.start, b.start+b.length)
		merged := run{a.start, a.length + b.length}
		runs = runs[1:]

		// re-insert by start index rather than appending sequentially
		pos := 0
		for pos+1 < len(runs) && runs[pos+1].start < merged.start {
			runs[pos] = runs[pos+1]
			pos++
		}
		runs[pos] = merged
	}
}
