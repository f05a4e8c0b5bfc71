package omnisort

// minMerge is the run length below which detected runs are extended by
// binary insertion before entering the run stack.
const minMerge = 32

// TimSort sorts s in place with the classic run-stack mergesort: natural
// runs are detected and extended to a computed minimum length, pushed on a
// stack, and merged whenever the top runs violate the collapse invariant.
// Stable, O(n log n) worst case, O(n) on sorted input.
func TimSort[E any](s Sequence[E], cmp Compare[E]) {
	runStackSort(s, cmp, timMinRun(s.Len()), func(lo, mid, hi int) {
		mergeRuns(s, cmp, lo, mid, hi)
	})
}

// GlideSort is TimSort with galloping merges: after seven consecutive
// wins from one side a merge switches to exponential search and bulk
// copies, which pays off when runs interleave in long stretches. The
// minimum run length is floored at the fixed extension threshold. Stable.
func GlideSort[E any](s Sequence[E], cmp Compare[E]) {
	m := newMerger(s, cmp)
	minRun := timMinRun(s.Len())
	if minRun < minMerge {
		minRun = minMerge
	}
	runStackSort(s, cmp, minRun, m.merge)
}

// timMinRun computes the TimSort minimum run length for n: n itself below
// minMerge, otherwise a value in [minMerge/2, minMerge] such that n/minRun
// is a power of two or slightly below one. The rounding bit keeps the run
// count close to balanced merges.
func timMinRun(n int) int {
	r := 0
	for n >= minMerge {
		r |= n & 1
		n >>= 1
	}
	return n + r
}

// runStackSort is the shared engine for the run-stack family: collect
// runs, extend short ones to minRun, and keep the stack collapsed under
// the three-rule invariant using mergeFn for every merge.
func runStackSort[E any](s Sequence[E], cmp Compare[E], minRun int, mergeFn func(lo, mid, hi int)) {
	n := s.Len()
	if n < 2 {
		return
	}

	type run struct{ start, length int }
	var stack []run

	mergeAt := func(i int) {
		a, b := stack[i], stack[i+1]
		mergeFn(a.start, b.start, b.start+b.length)
		stack[i] = run{a.start, a.length + b.length}
		copy(stack[i+1:], stack[i+2:])
		stack = stack[:len(stack)-1]
	}

	// three-rule invariant: stack[i-1] > stack[i]+stack[i+1] and
	// stack[i] > stack[i+1] for every i, restored after each push
	collapse := func() {
		for len(stack) > 1 {
			i := len(stack) - 2
			if i > 0 && stack[i-1].length <= stack[i].length+stack[i+1].length {
				if stack[i-1].length < stack[i+1].length {
					i--
				}
				mergeAt(i)
			} else if stack[i].length <= stack[i+1].length {
				mergeAt(i)
			} else {
				return
			}
		}
	}

	forceCollapse := func() {
		for len(stack) > 1 {
			i := len(stack) - 2
			if i > 0 && stack[i-1].length < stack[i+1].length {
				i--
			}
			mergeAt(i)
		}
	}

	lo := 0
	for lo < n {
		length := findRun(s, cmp, lo, n)
		if length < minRun {
			force := minRun
			if n-lo < force {
				force = n - lo
			}
			binaryInsertionSortRange(s, cmp, lo, lo+force, lo+length)
			length = force
		}
		stack = append(stack, run{lo, length})
		collapse()
		lo += length
	}
	forceCollapse()
}
