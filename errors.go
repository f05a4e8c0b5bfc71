package omnisort

import "fmt"

// InvalidAlgorithmError is returned by Sort when the algorithm selector is
// not one of the defined Algorithm values. The sequence is not touched.
type InvalidAlgorithmError struct {
	// Value is the rejected selector
	Value Algorithm
}

func (e *InvalidAlgorithmError) Error() string {
	return fmt.Sprintf("omnisort: invalid algorithm selector %d", int(e.Value))
}

// NewInvalidAlgorithmError creates an InvalidAlgorithmError
func NewInvalidAlgorithmError(value Algorithm) error {
	return &InvalidAlgorithmError{Value: value}
}

// IndexError is returned by the exported range helpers (Swap, Reverse) when
// a caller-supplied index falls outside the sequence bounds.
type IndexError struct {
	// Op is the helper that rejected the index
	Op string
	// Index is the offending index
	Index int
	// Len is the sequence length at the time of the call
	Len int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("omnisort: %s index %d out of range [0, %d)", e.Op, e.Index, e.Len)
}
