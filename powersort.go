package omnisort

import "github.com/omnisort/omnisort/queue"

// The power family keeps every detected run in an index-based arena and
// schedules merges through a min-heap of adjacent-pair candidates keyed by
// the combined run length (the "power" of the merge), tie-broken by start
// index. Merging a pair invalidates every candidate that referenced either
// run; the two variants differ in how staleness is detected.

// runNode is an arena entry for one live run. Runs form a doubly-linked
// list through arena indices rather than pointers.
type runNode struct {
	start  int
	length int
	prev   int // arena index, -1 at the left edge
	next   int // arena index, -1 at the right edge
	gen    int // bumped on every merge into this node
	alive  bool
}

// mergeCandidate proposes merging the adjacent runs at arena indices left
// and right. sum and start are frozen at push time; genLeft/genRight
// record the node generations the sum was computed from.
type mergeCandidate struct {
	left, right       int
	sum, start        int
	genLeft, genRight int
}

// PowerSort sorts s in place by merging natural runs in order of smallest
// combined length first, selected through a min-heap of merge candidates.
// A candidate is skipped when either of its runs has since been absorbed.
// Stable, O(n log n) worst case, O(n) on a single-run input.
func PowerSort[E any](s Sequence[E], cmp Compare[E]) {
	powerMergeSort(s, cmp, false)
}

// PowerPlusSort is PowerSort with per-run generation counters: a candidate
// whose runs have merged since it was pushed carries stale generation
// numbers and is discarded even if the pair is still adjacent, so every
// executed merge uses a freshly computed power. Stable.
func PowerPlusSort[E any](s Sequence[E], cmp Compare[E]) {
	powerMergeSort(s, cmp, true)
}

func powerMergeSort[E any](s Sequence[E], cmp Compare[E], generational bool) {
	n := s.Len()
	if n < 2 {
		return
	}

	var arena []runNode
	for lo := 0; lo < n; {
		length := findRun(s, cmp, lo, n)
		arena = append(arena, runNode{
			start:  lo,
			length: length,
			prev:   len(arena) - 1,
			next:   len(arena) + 1,
			gen:    0,
			alive:  true,
		})
		lo += length
	}
	live := len(arena)
	if live == 1 {
		// already sorted, zero merges
		return
	}
	arena[live-1].next = -1

	heap := queue.NewPriorityQueue(func(a, b mergeCandidate) bool {
		if a.sum != b.sum {
			return a.sum < b.sum
		}
		return a.start < b.start
	})
	push := func(left int) {
		right := arena[left].next
		if right == -1 {
			return
		}
		heap.Push(mergeCandidate{
			left:     left,
			right:    right,
			sum:      arena[left].length + arena[right].length,
			start:    arena[left].start,
			genLeft:  arena[left].gen,
			genRight: arena[right].gen,
		})
	}
	for i := 0; i < len(arena)-1; i++ {
		push(i)
	}

	for live > 1 {
		c := heap.Pop()
		l, r := &arena[c.left], &arena[c.right]
		if !l.alive || !r.alive || l.next != c.right {
			continue
		}
		if generational && (l.gen != c.genLeft || r.gen != c.genRight) {
			// pair still adjacent but the power is out of date
			continue
		}

		mergeRuns(s, cmp, l.start, r.start, r.start+r.length)
		l.length += r.length
		l.gen++
		l.next = r.next
		if r.next != -1 {
			arena[r.next].prev = c.left
		}
		r.alive = false
		live--

		if l.prev != -1 {
			push(l.prev)
		}
		push(c.left)
	}
}
