package omnisort

// minGallop is the number of consecutive wins one merge side needs before
// the galloping merge switches from one-at-a-time comparison to
// exponential search.
const minGallop = 7

// mergeRuns stably merges the adjacent sorted ranges s[lo:mid] and
// s[mid:hi]. The shorter side is copied into pooled scratch; elements from
// the left range precede right-range elements with equal keys. If the two
// ranges are already in order the merge is a no-op with no copy.
func mergeRuns[E any](s Sequence[E], cmp Compare[E], lo, mid, hi int) {
	if lo >= mid || mid >= hi {
		return
	}
	if cmp(s.Get(mid-1), s.Get(mid)) <= 0 {
		return
	}
	if mid-lo <= hi-mid {
		mergeIntoLo(s, cmp, lo, mid, hi)
	} else {
		mergeIntoHi(s, cmp, lo, mid, hi)
	}
}

// mergeIntoLo copies the left range to scratch and merges forward.
func mergeIntoLo[E any](s Sequence[E], cmp Compare[E], lo, mid, hi int) {
	buf, release := borrowScratch[E](mid - lo)
	defer release(&buf)
	for i := lo; i < mid; i++ {
		buf = append(buf, s.Get(i))
	}
	i, j, k := 0, mid, lo
	for i < len(buf) && j < hi {
		if cmp(s.Get(j), buf[i]) < 0 {
			s.Set(k, s.Get(j))
			j++
		} else {
			s.Set(k, buf[i])
			i++
		}
		k++
	}
	for ; i < len(buf); i++ {
		s.Set(k, buf[i])
		k++
	}
}

// mergeIntoHi copies the right range to scratch and merges backward.
func mergeIntoHi[E any](s Sequence[E], cmp Compare[E], lo, mid, hi int) {
	buf, release := borrowScratch[E](hi - mid)
	defer release(&buf)
	for i := mid; i < hi; i++ {
		buf = append(buf, s.Get(i))
	}
	i, j, k := mid-1, len(buf)-1, hi-1
	for i >= lo && j >= 0 {
		if cmp(buf[j], s.Get(i)) >= 0 {
			s.Set(k, buf[j])
			j--
		} else {
			s.Set(k, s.Get(i))
			i--
		}
		k--
	}
	for ; j >= 0; j-- {
		s.Set(k, buf[j])
		k--
	}
}

// gallopLeft returns the leftmost insertion point for key in the sorted
// view get(base)..get(base+n-1), probing outward from hint before binary
// searching the narrowed window.
func gallopLeft[E any](cmp Compare[E], key E, get func(int) E, base, n, hint int) int {
	lastOfs, ofs := 0, 1
	if cmp(key, get(base+hint)) > 0 {
		maxOfs := n - hint
		for ofs < maxOfs && cmp(key, get(base+hint+ofs)) > 0 {
			lastOfs = ofs
			ofs = ofs<<1 + 1
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs += hint
		ofs += hint
	} else {
		maxOfs := hint + 1
		for ofs < maxOfs && cmp(key, get(base+hint-ofs)) <= 0 {
			lastOfs = ofs
			ofs = ofs<<1 + 1
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs, ofs = hint-ofs, hint-lastOfs
	}
	for lastOfs++; lastOfs < ofs; {
		m := int(uint(lastOfs+ofs) >> 1)
		if cmp(key, get(base+m)) > 0 {
			lastOfs = m + 1
		} else {
			ofs = m
		}
	}
	return ofs
}

// gallopRight returns the rightmost insertion point for key, so equal
// elements already in the view stay before key.
func gallopRight[E any](cmp Compare[E], key E, get func(int) E, base, n, hint int) int {
	lastOfs, ofs := 0, 1
	if cmp(key, get(base+hint)) < 0 {
		maxOfs := hint + 1
		for ofs < maxOfs && cmp(key, get(base+hint-ofs)) < 0 {
			lastOfs = ofs
			ofs = ofs<<1 + 1
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs, ofs = hint-ofs, hint-lastOfs
	} else {
		maxOfs := n - hint
		for ofs < maxOfs && cmp(key, get(base+hint+ofs)) >= 0 {
			lastOfs = ofs
			ofs = ofs<<1 + 1
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs += hint
		ofs += hint
	}
	for lastOfs++; lastOfs < ofs; {
		m := int(uint(lastOfs+ofs) >> 1)
		if cmp(key, get(base+m)) < 0 {
			ofs = m
		} else {
			lastOfs = m + 1
		}
	}
	return ofs
}

// merger carries the adaptive gallop threshold across the merges of one
// galloping sort call.
type merger[E any] struct {
	s         Sequence[E]
	cmp       Compare[E]
	minGallop int
}

func newMerger[E any](s Sequence[E], cmp Compare[E]) *merger[E] {
	return &merger[E]{s: s, cmp: cmp, minGallop: minGallop}
}

// merge stably merges s[lo:mid] and s[mid:hi] with galloping. The ordered
// prefix of the left run and suffix of the right run are trimmed first.
func (m *merger[E]) merge(lo, mid, hi int) {
	s, cmp := m.s, m.cmp
	if lo >= mid || mid >= hi || cmp(s.Get(mid-1), s.Get(mid)) <= 0 {
		return
	}
	// left elements already <= the right run's first element are in place
	lo += gallopRight(cmp, s.Get(mid), s.Get, lo, mid-lo, 0)
	if lo == mid {
		return
	}
	// right elements already >= the left run's last element are in place
	hi = mid + gallopLeft(cmp, s.Get(mid-1), s.Get, mid, hi-mid, hi-mid-1)
	if mid-lo <= hi-mid {
		m.mergeLo(lo, mid, hi)
	} else {
		m.mergeHi(lo, mid, hi)
	}
}

// mergeLo merges with the left run in scratch, filling from the front.
func (m *merger[E]) mergeLo(lo, mid, hi int) {
	s, cmp := m.s, m.cmp
	buf, release := borrowScratch[E](mid - lo)
	defer release(&buf)
	for i := lo; i < mid; i++ {
		buf = append(buf, s.Get(i))
	}
	getBuf := func(i int) E { return buf[i] }

	c1, c2, dest := 0, mid, lo
	len1, len2 := len(buf), hi-mid

	// first right element is known to win after trimming
	s.Set(dest, s.Get(c2))
	dest++
	c2++
	len2--

	for len1 > 1 && len2 > 0 {
		count1, count2 := 0, 0
		// one-at-a-time until one side streaks
		for {
			if cmp(s.Get(c2), buf[c1]) < 0 {
				s.Set(dest, s.Get(c2))
				dest++
				c2++
				len2--
				count2++
				count1 = 0
				if len2 == 0 || count2 >= m.minGallop {
					break
				}
			} else {
				s.Set(dest, buf[c1])
				dest++
				c1++
				len1--
				count1++
				count2 = 0
				if len1 == 1 || count1 >= m.minGallop {
					break
				}
			}
		}
		if len1 <= 1 || len2 == 0 {
			break
		}
		// gallop while either side keeps winning big
		for count1 >= minGallop || count2 >= minGallop {
			count1 = gallopRight(cmp, s.Get(c2), getBuf, c1, len1, 0)
			for k := 0; k < count1; k++ {
				s.Set(dest, buf[c1])
				dest++
				c1++
			}
			len1 -= count1
			if len1 <= 1 {
				break
			}
			s.Set(dest, s.Get(c2))
			dest++
			c2++
			len2--
			if len2 == 0 {
				break
			}
			count2 = gallopLeft(cmp, buf[c1], s.Get, c2, len2, 0)
			for k := 0; k < count2; k++ {
				s.Set(dest, s.Get(c2))
				dest++
				c2++
			}
			len2 -= count2
			if len2 == 0 {
				break
			}
			s.Set(dest, buf[c1])
			dest++
			c1++
			len1--
			if len1 == 1 {
				break
			}
			m.minGallop--
		}
		if m.minGallop < 1 {
			m.minGallop = 1
		}
		m.minGallop++
	}

	if len1 == 1 && len2 > 0 {
		for ; len2 > 0; len2-- {
			s.Set(dest, s.Get(c2))
			dest++
			c2++
		}
		s.Set(dest, buf[c1])
	} else {
		for ; len1 > 0; len1-- {
			s.Set(dest, buf[c1])
			dest++
			c1++
		}
	}
}

// mergeHi merges with the right run in scratch, filling from the back.
func (m *merger[E]) mergeHi(lo, mid, hi int) {
	s, cmp := m.s, m.cmp
	buf, release := borrowScratch[E](hi - mid)
	defer release(&buf)
	for i := mid; i < hi; i++ {
		buf = append(buf, s.Get(i))
	}
	getBuf := func(i int) E { return buf[i] }

	len1, len2 := mid-lo, len(buf)
	c1, c2, dest := mid-1, len2-1, hi-1

	// last left element is known to belong at the end after trimming
	s.Set(dest, s.Get(c1))
	dest--
	c1--
	len1--

	for len1 > 0 && len2 > 1 {
		count1, count2 := 0, 0
		for {
			if cmp(buf[c2], s.Get(c1)) < 0 {
				s.Set(dest, s.Get(c1))
				dest--
				c1--
				len1--
				count1++
				count2 = 0
				if len1 == 0 || count1 >= m.minGallop {
					break
				}
			} else {
				s.Set(dest, buf[c2])
				dest--
				c2--
				len2--
				count2++
				count1 = 0
				if len2 == 1 || count2 >= m.minGallop {
					break
				}
			}
		}
		if len1 == 0 || len2 <= 1 {
			break
		}
		for count1 >= minGallop || count2 >= minGallop {
			count1 = len1 - gallopRight(cmp, buf[c2], s.Get, lo, len1, len1-1)
			for k := 0; k < count1; k++ {
				s.Set(dest, s.Get(c1))
				dest--
				c1--
			}
			len1 -= count1
			if len1 == 0 {
				break
			}
			s.Set(dest, buf[c2])
			dest--
			c2--
			len2--
			if len2 == 1 {
				break
			}
			count2 = len2 - gallopLeft(cmp, s.Get(c1), getBuf, 0, len2, len2-1)
			for k := 0; k < count2; k++ {
				s.Set(dest, buf[c2])
				dest--
				c2--
			}
			len2 -= count2
			if len2 <= 1 {
				break
			}
			s.Set(dest, s.Get(c1))
			dest--
			c1--
			len1--
			if len1 == 0 {
				break
			}
			m.minGallop--
		}
		if m.minGallop < 1 {
			m.minGallop = 1
		}
		m.minGallop++
	}

	if len2 == 1 && len1 > 0 {
		for ; len1 > 0; len1-- {
			s.Set(dest, s.Get(c1))
			dest--
			c1--
		}
		s.Set(dest, buf[c2])
	} else {
		for ; len2 > 0; len2-- {
			s.Set(dest, buf[c2])
			dest--
			c2--
		}
	}
}
