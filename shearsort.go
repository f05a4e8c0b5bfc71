package omnisort

import "math"

// ShearSort sorts s by treating it as a side*side mesh in row-major order
// and alternating boustrophedon row passes (even rows ascending, odd rows
// descending) with ascending column passes, which converges to snake order
// in ceil(log2(side))+1 phase pairs; a final pass re-sorts every row
// ascending to turn snake order into row-major order. Sequences whose
// length is not a perfect square fall back to PatternDefeatingQuickSort.
// Unstable; included as a comparison sorting network rather than a
// practical default.
func ShearSort[E any](s Sequence[E], cmp Compare[E]) {
	n := s.Len()
	if n < 2 {
		return
	}
	side := int(math.Sqrt(float64(n)))
	for side*side < n {
		side++
	}
	if side*side != n {
		PatternDefeatingQuickSort(s, cmp)
		return
	}

	phases := log2floor(side) + 2
	for p := 0; p < phases; p++ {
		for r := 0; r < side; r++ {
			strideInsertion(s, cmp, r*side, 1, side, r%2 == 1)
		}
		for c := 0; c < side; c++ {
			strideInsertion(s, cmp, c, side, side, false)
		}
	}
	for r := 1; r < side; r += 2 {
		reverseRange(s, r*side, r*side+side)
	}
}

// strideInsertion insertion-sorts the virtual array s[base+k*stride] for
// k in [0, count), descending when desc is set.
func strideInsertion[E any](s Sequence[E], cmp Compare[E], base, stride, count int, desc bool) {
	sign := 1
	if desc {
		sign = -1
	}
	for k := 1; k < count; k++ {
		v := s.Get(base + k*stride)
		j := k
		for j > 0 && sign*cmp(v, s.Get(base+(j-1)*stride)) < 0 {
			s.Set(base+j*stride, s.Get(base+(j-1)*stride))
			j--
		}
		if j != k {
			s.Set(base+j*stride, v)
		}
	}
}
