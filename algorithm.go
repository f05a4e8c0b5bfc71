package omnisort

// Algorithm selects one of the sorting strategies understood by Sort.
// The set is closed: Sort rejects any other value with an
// InvalidAlgorithmError before mutating the sequence.
type Algorithm int

// The defined algorithm selectors.
const (
	// AlgorithmInsertion is plain binary insertion sort. Stable, O(n²),
	// O(n) on nearly-sorted input.
	AlgorithmInsertion Algorithm = iota
	// AlgorithmGhost is a shell sort with a 2.25 gap shrink factor. Unstable.
	AlgorithmGhost
	// AlgorithmMeteor is a shell sort with a 1.7 gap shrink factor and a
	// final plain insertion pass. Unstable.
	AlgorithmMeteor
	// AlgorithmPDQ is pattern-defeating quicksort. Unstable.
	AlgorithmPDQ
	// AlgorithmIpn is a depth-limited introspective quicksort using
	// median-of-5 pivots on large ranges. Unstable.
	AlgorithmIpn
	// AlgorithmSka is a depth-limited introspective quicksort with a
	// pre-scan for already-sorted input. Unstable.
	AlgorithmSka
	// AlgorithmFlux is a dual-pivot three-way quicksort. Unstable.
	AlgorithmFlux
	// AlgorithmShear treats a perfect-square sequence as a square mesh and
	// sorts with alternating row/column passes; other lengths fall back to
	// pattern-defeating quicksort. Unstable.
	AlgorithmShear
	// AlgorithmGrail is a top-down mergesort with a pooled half-size
	// buffer. Stable.
	AlgorithmGrail
	// AlgorithmPower merges natural runs chosen by combined length through
	// a min-heap of merge candidates. Stable.
	AlgorithmPower
	// AlgorithmPowerPlus is AlgorithmPower with generation counters so
	// stale merge candidates are detected and discarded. Stable.
	AlgorithmPowerPlus
	// AlgorithmTim is the classic run-stack mergesort with the three-rule
	// collapse invariant. Stable.
	AlgorithmTim
	// AlgorithmGreen is a mergesort whose merges trim the already-ordered
	// prefix and suffix before merging the middle. Stable.
	AlgorithmGreen
	// AlgorithmDrift insertion-sorts fixed-size blocks and merges the
	// first out-of-order adjacent pair eagerly. Stable.
	AlgorithmDrift
	// AlgorithmGlide is a run-stack mergesort whose merges gallop after
	// repeated wins from one side. Stable.
	AlgorithmGlide
	// AlgorithmIndy merges natural runs pairwise left to right through a
	// FIFO queue. Stable.
	AlgorithmIndy
	// AlgorithmSled merges the two leftmost runs and re-inserts the result
	// by start index. Stable.
	AlgorithmSled
	// AlgorithmBlock is a bottom-up power-of-two block mergesort with one
	// full-size scratch buffer. Stable.
	AlgorithmBlock
	// AlgorithmJesse is a patience-sort hybrid: runs feed binary-searched
	// piles, merged by a k-way min-heap. Unstable.
	AlgorithmJesse
	// AlgorithmSmooth is smoothsort over a forest of Leonardo heaps, O(1)
	// extra memory. Unstable.
	AlgorithmSmooth
	// AlgorithmIps4o is a recursive samplesort with up to 32 buckets.
	// Unstable.
	AlgorithmIps4o

	numAlgorithms
)

var algorithmNames = [...]string{
	AlgorithmInsertion: "insertion",
	AlgorithmGhost:     "ghost",
	AlgorithmMeteor:    "meteor",
	AlgorithmPDQ:       "pdq",
	AlgorithmIpn:       "ipn",
	AlgorithmSka:       "ska",
	AlgorithmFlux:      "flux",
	AlgorithmShear:     "shear",
	AlgorithmGrail:     "grail",
	AlgorithmPower:     "power",
	AlgorithmPowerPlus: "powerplus",
	AlgorithmTim:       "tim",
	AlgorithmGreen:     "green",
	AlgorithmDrift:     "drift",
	AlgorithmGlide:     "glide",
	AlgorithmIndy:      "indy",
	AlgorithmSled:      "sled",
	AlgorithmBlock:     "block",
	AlgorithmJesse:     "jesse",
	AlgorithmSmooth:    "smooth",
	AlgorithmIps4o:     "ips4o",
}

// String returns the lowercase name of the algorithm, or "invalid" for an
// out-of-range selector.
func (a Algorithm) String() string {
	if a < 0 || a >= numAlgorithms {
		return "invalid"
	}
	return algorithmNames[a]
}

// Stable reports whether the algorithm preserves the relative order of
// equal-key elements. Out-of-range selectors report false.
func (a Algorithm) Stable() bool {
	switch a {
	case AlgorithmInsertion, AlgorithmGrail, AlgorithmPower, AlgorithmPowerPlus,
		AlgorithmTim, AlgorithmGreen, AlgorithmDrift, AlgorithmGlide,
		AlgorithmIndy, AlgorithmSled, AlgorithmBlock:
		return true
	}
	return false
}

// Algorithms returns all defined selectors in declaration order.
func Algorithms() []Algorithm {
	all := make([]Algorithm, numAlgorithms)
	for i := range all {
		all[i] = Algorithm(i)
	}
	return all
}

// Sort sorts s in place with the selected algorithm, using cmp as the total
// order. Sequences of length 0 or 1 are a no-op for every selector. An
// unrecognized selector returns an *InvalidAlgorithmError without touching
// the sequence.
func Sort[E any](s Sequence[E], cmp Compare[E], algo Algorithm) error {
	if algo < 0 || algo >= numAlgorithms {
		return NewInvalidAlgorithmError(algo)
	}
	if s.Len() < 2 {
		return nil
	}
	switch algo {
	case AlgorithmInsertion:
		InsertionSort(s, cmp)
	case AlgorithmGhost:
		GhostSort(s, cmp)
	case AlgorithmMeteor:
		MeteorSort(s, cmp)
	case AlgorithmPDQ:
		PatternDefeatingQuickSort(s, cmp)
	case AlgorithmIpn:
		IpnSort(s, cmp)
	case AlgorithmSka:
		SkaSort(s, cmp)
	case AlgorithmFlux:
		FluxSort(s, cmp)
	case AlgorithmShear:
		ShearSort(s, cmp)
	case AlgorithmGrail:
		GrailSort(s, cmp)
	case AlgorithmPower:
		PowerSort(s, cmp)
	case AlgorithmPowerPlus:
		PowerPlusSort(s, cmp)
	case AlgorithmTim:
		TimSort(s, cmp)
	case AlgorithmGreen:
		GreenSort(s, cmp)
	case AlgorithmDrift:
		DriftSort(s, cmp)
	case AlgorithmGlide:
		GlideSort(s, cmp)
	case AlgorithmIndy:
		IndySort(s, cmp)
	case AlgorithmSled:
		SledSort(s, cmp)
	case AlgorithmBlock:
		BlockSort(s, cmp)
	case AlgorithmJesse:
		JesseSort(s, cmp)
	case AlgorithmSmooth:
		SmoothSort(s, cmp)
	case AlgorithmIps4o:
		Ips4oSort(s, cmp)
	}
	return nil
}
