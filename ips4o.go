package omnisort

// Ips4oSort sorts s in place with a recursive samplesort. Each pass draws
// evenly spaced samples (one per 64 elements, clamped to [4, 32]), sorts
// them, and uses them as bucket boundaries; every element is routed to its
// bucket by binary search over the boundaries and the buckets recurse.
// Ranges under 256 elements hand off to PatternDefeatingQuickSort and
// ranges under 32 to insertion sort, as does any pass whose samples
// degenerate into a single bucket. Unstable; built for large sequences
// where bucket-local cache behavior dominates.
func Ips4oSort[E any](s Sequence[E], cmp Compare[E]) {
	ips4oRange(s, cmp, 0, s.Len())
}

func ips4oRange[E any](s Sequence[E], cmp Compare[E], lo, hi int) {
	n := hi - lo
	if n < 32 {
		insertionSortRange(s, cmp, lo, hi)
		return
	}
	if n < 256 {
		pdqRange(s, cmp, lo, hi, 2*log2floor(n), lo)
		return
	}

	samples := n / 64
	if samples < 4 {
		samples = 4
	}
	if samples > 32 {
		samples = 32
	}

	// copy evenly spaced samples out and sort them into splitters
	splitters, release := borrowScratch[E](samples)
	defer release(&splitters)
	step := n / samples
	for i := 0; i < samples; i++ {
		splitters = append(splitters, s.Get(lo+i*step+step/2))
	}
	insertionSortRange(SliceOf(splitters), cmp, 0, len(splitters))

	buckets := ips4oPartition(s, cmp, lo, hi, splitters)

	for i := 0; i+1 < len(buckets); i++ {
		a, b := buckets[i], buckets[i+1]
		if b-a == n {
			// degenerate sample: one bucket swallowed the range
			pdqRange(s, cmp, lo, hi, 2*log2floor(n), lo)
			return
		}
		if b-a > 1 {
			ips4oRange(s, cmp, a, b)
		}
	}
}

// ips4oPartition distributes s[lo:hi] into len(splitters)+1 buckets
// through a full-size scratch buffer, two counting passes and one
// placement pass. Returns the bucket boundaries, buckets[i] being the
// start of bucket i and buckets[len] == hi.
func ips4oPartition[E any](s Sequence[E], cmp Compare[E], lo, hi int, splitters []E) []int {
	k := len(splitters) + 1
	n := hi - lo

	counts := make([]int, k+1)
	for i := lo; i < hi; i++ {
		counts[bucketOf(s.Get(i), splitters, cmp)+1]++
	}
	for i := 1; i <= k; i++ {
		counts[i] += counts[i-1]
	}
	bounds := make([]int, k+1)
	for i := 0; i <= k; i++ {
		bounds[i] = lo + counts[i]
	}

	buf, release := borrowScratch[E](n)
	defer release(&buf)
	buf = buf[:n]

	next := make([]int, k)
	copy(next, counts[:k])
	for i := lo; i < hi; i++ {
		v := s.Get(i)
		b := bucketOf(v, splitters, cmp)
		buf[next[b]] = v
		next[b]++
	}
	for i, v := range buf {
		s.Set(lo+i, v)
	}
	return bounds
}

// bucketOf locates v's bucket by binary search: the number of splitters
// less than v, so equal elements share the splitter's left bucket.
func bucketOf[E any](v E, splitters []E, cmp Compare[E]) int {
	lo, hi := 0, len(splitters)
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		if cmp(splitters[m], v) < 0 {
			lo = m + 1
		} else {
			hi = m
		}
	}
	return lo
}
