package omnisort

import "math/bits"

// SmoothSort sorts s in place using a forest of post-order heaps sized by
// the Leonardo numbers. The forest shape lives in the bitmask p: bit i set
// means a tree of order pshift+i exists, rightmost tree at bit zero. The
// build phase sifts each new element into the forest, trinkling the root
// chain whenever a tree has reached its final size; the extract phase
// dismantles the forest right to left, trinkling the two subtrees each
// removed root exposes. O(1) extra memory, O(n log n) worst case, O(n) on
// already-sorted input. Not stable.
func SmoothSort[E any](s Sequence[E], cmp Compare[E]) {
	n := s.Len()
	if n < 2 {
		return
	}

	// leonardo numbers covering n: lp[0]=lp[1]=1, lp[k]=lp[k-1]+lp[k-2]+1
	lp := []int{1, 1}
	for lp[len(lp)-1] < n {
		lp = append(lp, lp[len(lp)-1]+lp[len(lp)-2]+1)
	}

	var p uint64 = 1
	pshift := 1

	for head := 0; head < n-1; head++ {
		if p&3 == 3 {
			// the next element merges the two rightmost trees; this one
			// becomes an interior child and only needs the heap property
			leoSift(s, cmp, lp, pshift, head)
			p >>= 2
			pshift += 2
		} else {
			if lp[pshift-1] >= n-1-head {
				// final size: the root must take its place in the
				// sorted root chain now
				leoTrinkle(s, cmp, lp, p, pshift, head, false)
			} else {
				leoSift(s, cmp, lp, pshift, head)
			}
			if pshift == 1 {
				p <<= 1
				pshift = 0
			} else {
				p <<= uint(pshift - 1)
				pshift = 1
			}
		}
		p |= 1
	}
	leoTrinkle(s, cmp, lp, p, pshift, n-1, false)

	for head := n - 1; p != 1 || pshift != 1; head-- {
		if pshift <= 1 {
			// singleton tree: drop it and advance to the next tree
			trail := bits.TrailingZeros64(p - 1)
			p >>= uint(trail)
			pshift += trail
		} else {
			// removing the root exposes children of order pshift-1 and
			// pshift-2; trinkle each back into the root chain
			p = p<<2 ^ 7
			pshift -= 2
			leoTrinkle(s, cmp, lp, p>>1, pshift+1, head-1-lp[pshift], true)
			leoTrinkle(s, cmp, lp, p, pshift, head-1, true)
		}
	}
}

// leoSift restores the heap property of the Leonardo tree of order pshift
// rooted at head by walking the larger child down.
func leoSift[E any](s Sequence[E], cmp Compare[E], lp []int, pshift, head int) {
	v := s.Get(head)
	start := head
	for pshift > 1 {
		rt := head - 1
		lf := head - 1 - lp[pshift-2]
		if cmp(v, s.Get(lf)) >= 0 && cmp(v, s.Get(rt)) >= 0 {
			break
		}
		if cmp(s.Get(lf), s.Get(rt)) >= 0 {
			s.Set(head, s.Get(lf))
			head = lf
			pshift--
		} else {
			s.Set(head, s.Get(rt))
			head = rt
			pshift -= 2
		}
	}
	if head != start {
		s.Set(head, v)
	}
}

// leoTrinkle walks the root chain leftward, swapping the value at head
// with larger stepson roots until the chain is sorted, then sifts the
// value into its final tree. trusty means the tree at head already has the
// heap property, so children need not be rechecked before the first move.
func leoTrinkle[E any](s Sequence[E], cmp Compare[E], lp []int, p uint64, pshift, head int, trusty bool) {
	v := s.Get(head)
	start := head
	for p != 1 {
		stepson := head - lp[pshift]
		if cmp(s.Get(stepson), v) <= 0 {
			break
		}
		if !trusty && pshift > 1 {
			rt := head - 1
			lf := head - 1 - lp[pshift-2]
			if cmp(s.Get(rt), s.Get(stepson)) >= 0 || cmp(s.Get(lf), s.Get(stepson)) >= 0 {
				break
			}
		}
		s.Set(head, s.Get(stepson))
		head = stepson
		trail := bits.TrailingZeros64(p - 1)
		p >>= uint(trail)
		pshift += trail
		trusty = false
	}
	if !trusty {
		if head != start {
			s.Set(head, v)
		}
		leoSift(s, cmp, lp, pshift, head)
	}
}
