package omnisort

import "github.com/omnisort/omnisort/queue"

// pile is one patience pile plus its consumption cursor. Ascending piles
// hold non-decreasing elements and are consumed front to back; descending
// piles hold non-increasing elements and are consumed back to front, so
// cur always points at the pile's smallest remaining element.
type pile[E any] struct {
	data []E
	cur  int
	step int
}

// JesseSort sorts s with a patience-sort hybrid: the sequence splits into
// maximal ascending and strictly-descending runs, each run's elements drop
// one at a time onto a binary-searched pile (ascending-run elements onto
// one pile set, descending-run elements onto a second), and all piles
// merge through a k-way min-heap keyed by each pile's smallest remaining
// element. Not stable. O(n log k) for k piles, which is small when the
// input decomposes into few long monotone runs.
func JesseSort[E any](s Sequence[E], cmp Compare[E]) {
	n := s.Len()
	if n < 2 {
		return
	}

	var asc, desc []*pile[E] // each kept sorted by pile top
	i := 0
	for i < n {
		j := i + 1
		if j < n && cmp(s.Get(j), s.Get(j-1)) < 0 {
			for j++; j < n && cmp(s.Get(j), s.Get(j-1)) < 0; j++ {
			}
			for k := i; k < j; k++ {
				desc = dealDescending(desc, s.Get(k), cmp)
			}
		} else {
			for ; j < n && cmp(s.Get(j), s.Get(j-1)) >= 0; j++ {
			}
			for k := i; k < j; k++ {
				asc = dealAscending(asc, s.Get(k), cmp)
			}
		}
		i = j
	}

	heap := queue.NewPriorityQueue(func(a, b *pile[E]) bool {
		return cmp(a.data[a.cur], b.data[b.cur]) < 0
	})
	for _, p := range asc {
		p.cur, p.step = 0, 1
		heap.Push(p)
	}
	for _, p := range desc {
		p.cur, p.step = len(p.data)-1, -1
		heap.Push(p)
	}

	out, release := borrowScratch[E](n)
	defer release(&out)
	for heap.Len() > 0 {
		p := heap.Peek()
		out = append(out, p.data[p.cur])
		p.cur += p.step
		if p.cur < 0 || p.cur >= len(p.data) {
			heap.Pop()
		} else {
			heap.PeekUpdate()
		}
	}
	for k, v := range out {
		s.Set(k, v)
	}
}

// dealAscending drops v onto the rightmost ascending pile whose top is no
// greater than v, or opens a new pile at the front when every top exceeds
// v. Pile tops stay sorted ascending, so the search is binary.
func dealAscending[E any](piles []*pile[E], v E, cmp Compare[E]) []*pile[E] {
	lo, hi := 0, len(piles)
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		top := piles[m].data[len(piles[m].data)-1]
		if cmp(top, v) <= 0 {
			lo = m + 1
		} else {
			hi = m
		}
	}
	if lo == 0 {
		p := &pile[E]{data: []E{v}}
		return append([]*pile[E]{p}, piles...)
	}
	p := piles[lo-1]
	p.data = append(p.data, v)
	return piles
}

// dealDescending mirrors dealAscending with the order reversed: pile tops
// stay sorted descending and v lands on the rightmost pile whose top is no
// smaller than v.
func dealDescending[E any](piles []*pile[E], v E, cmp Compare[E]) []*pile[E] {
	lo, hi := 0, len(piles)
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		top := piles[m].data[len(piles[m].data)-1]
		if cmp(top, v) >= 0 {
			lo = m + 1
		} else {
			hi = m
		}
	}
	if lo == 0 {
		p := &pile[E]{data: []E{v}}
		return append([]*pile[E]{p}, piles...)
	}
	p := piles[lo-1]
	p.data = append(p.data, v)
	return piles
}
