// Package omnisort implements a family of interchangeable in-place sorting
// algorithms over an arbitrary indexable, mutable sequence and a caller-supplied
// three-way comparator.
//
// Every algorithm mutates the sequence through the Sequence interface and
// never copies it wholesale. Algorithms that need auxiliary storage borrow it
// from an internal buffer pool for the duration of a single call; no state
// persists between calls, so concurrent sorts of distinct sequences are safe.
//
// Stability varies per algorithm; see Algorithm.Stable.
package omnisort

import "cmp"

// Sequence is the indexable, mutable collection being sorted.
// The methods refer to elements by integer index in [0, Len()).
// Len must not change for the duration of a sort call.
type Sequence[E any] interface {
	// Len is the number of elements in the collection.
	Len() int

	// Get returns the element at index i.
	Get(i int) E

	// Set replaces the element at index i with v.
	Set(i int, v E)
}

// Compare is a three-way comparator over elements.
// It returns a negative integer if a orders before b, zero if they are equal,
// and a positive integer if a orders after b, following cmp.Compare semantics.
// It must implement a consistent total preorder; the algorithms do not defend
// against an inconsistent comparator (the result is an undefined order, not
// a crash). A panicking comparator aborts the sort with the sequence left in
// an algorithm-defined intermediate state.
type Compare[E any] func(a, b E) int

// Slice adapts a Go slice to the Sequence interface.
type Slice[E any] []E

// Len is the number of elements in the slice.
func (s Slice[E]) Len() int { return len(s) }

// Get returns the element at index i.
func (s Slice[E]) Get(i int) E { return s[i] }

// Set replaces the element at index i with v.
func (s Slice[E]) Set(i int, v E) { s[i] = v }

// SliceOf wraps a slice as a Sequence without copying it.
func SliceOf[E any](s []E) Slice[E] { return Slice[E](s) }

// IsSorted reports whether s is in non-decreasing order under cmp.
// It performs no mutation.
func IsSorted[E any](s Sequence[E], cmp Compare[E]) bool {
	for i := s.Len() - 1; i > 0; i-- {
		if cmp(s.Get(i-1), s.Get(i)) > 0 {
			return false
		}
	}
	return true
}

// Swap exchanges the elements at indices i and j.
// It returns an *IndexError if either index is outside [0, Len()).
func Swap[E any](s Sequence[E], i, j int) error {
	n := s.Len()
	if i < 0 || i >= n {
		return &IndexError{Op: "swap", Index: i, Len: n}
	}
	if j < 0 || j >= n {
		return &IndexError{Op: "swap", Index: j, Len: n}
	}
	swap(s, i, j)
	return nil
}

// Reverse reverses the elements in the half-open range [lo, hi).
// It returns an *IndexError if the range does not lie inside [0, Len()].
func Reverse[E any](s Sequence[E], lo, hi int) error {
	n := s.Len()
	if lo < 0 || lo > n {
		return &IndexError{Op: "reverse", Index: lo, Len: n}
	}
	if hi < lo || hi > n {
		return &IndexError{Op: "reverse", Index: hi, Len: n}
	}
	reverseRange(s, lo, hi)
	return nil
}

// SortOrdered sorts a slice of an ordered type with the given algorithm,
// using cmp.Compare as the comparator.
func SortOrdered[E cmp.Ordered](s []E, algo Algorithm) error {
	return Sort(SliceOf(s), cmp.Compare[E], algo)
}
