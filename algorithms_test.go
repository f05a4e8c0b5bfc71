package omnisort_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/omnisort/omnisort"
)

func requireSortsLike(t *testing.T, data []int, sortFn func(omnisort.Sequence[int], omnisort.Compare[int])) {
	t.Helper()
	want := slices.Clone(data)
	slices.Sort(want)
	sortFn(omnisort.SliceOf(data), intCmp)
	require.Equal(t, want, data)
}

// TestGlideGalloping interleaves two long sorted streams so merges win
// repeatedly from alternating sides and the gallop path engages.
func TestGlideGalloping(t *testing.T) {
	const n = 20000
	data := make([]int, 0, n)
	for i := 0; i < n/2; i++ {
		data = append(data, i*2)
	}
	for i := 0; i < n/2; i++ {
		data = append(data, i*2+1)
	}
	requireSortsLike(t, data, omnisort.GlideSort[int])

	// long equal stretches stress the gallop tie handling
	dup := make([]int, 0, n)
	for i := 0; i < n; i++ {
		dup = append(dup, i/1000)
	}
	rand.New(rand.NewSource(5)).Shuffle(len(dup), func(i, j int) {
		dup[i], dup[j] = dup[j], dup[i]
	})
	requireSortsLike(t, dup, omnisort.GlideSort[int])
}

// TestPowerManyRuns feeds a short-period sawtooth, which produces many
// natural runs and plenty of stale merge candidates for both variants.
func TestPowerManyRuns(t *testing.T) {
	const n = 10000
	for _, fn := range []func(omnisort.Sequence[int], omnisort.Compare[int]){
		omnisort.PowerSort[int],
		omnisort.PowerPlusSort[int],
	} {
		data := make([]int, n)
		for i := range data {
			data[i] = i % 37
		}
		requireSortsLike(t, data, fn)

		// alternating up/down sawtooth gives descending runs too
		data = make([]int, n)
		for i := range data {
			if (i/37)%2 == 0 {
				data[i] = i % 37
			} else {
				data[i] = 37 - i%37
			}
		}
		requireSortsLike(t, data, fn)
	}
}

// TestSmoothSortAllSmallSizes goes through every size the first few
// Leonardo trees can produce; the forest bookkeeping has its edge cases
// at the small-size boundaries.
func TestSmoothSortAllSmallSizes(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	for n := 0; n <= 130; n++ {
		data := make([]int, n)
		for i := range data {
			data[i] = r.Intn(n + 1)
		}
		requireSortsLike(t, data, omnisort.SmoothSort[int])
	}
	for _, n := range []int{1000, 4095, 4096, 10000} {
		data := make([]int, n)
		for i := range data {
			data[i] = r.Intn(n)
		}
		requireSortsLike(t, data, omnisort.SmoothSort[int])
	}
}

// TestIps4oPaths covers the large bucketed path, the quicksort and
// insertion handoffs, and the degenerate single-bucket fallback.
func TestIps4oPaths(t *testing.T) {
	r := rand.New(rand.NewSource(13))

	big := make([]int, 100000)
	for i := range big {
		big[i] = r.Intn(1000)
	}
	requireSortsLike(t, big, omnisort.Ips4oSort[int])

	// all-equal input degenerates every sample into one bucket
	requireSortsLike(t, make([]int, 5000), omnisort.Ips4oSort[int])

	small := []int{9, 4, 7, 1}
	requireSortsLike(t, small, omnisort.Ips4oSort[int])

	mid := make([]int, 200)
	for i := range mid {
		mid[i] = r.Intn(10)
	}
	requireSortsLike(t, mid, omnisort.Ips4oSort[int])
}

// TestJesseRunShapes checks the patience hybrid on inputs that form few
// long piles and on ones that force many piles.
func TestJesseRunShapes(t *testing.T) {
	asc := make([]int, 5000)
	for i := range asc {
		asc[i] = i
	}
	requireSortsLike(t, asc, omnisort.JesseSort[int])

	desc := make([]int, 5000)
	for i := range desc {
		desc[i] = 5000 - i
	}
	requireSortsLike(t, desc, omnisort.JesseSort[int])

	// zigzag of alternating ascending and descending runs
	zig := make([]int, 5000)
	for i := range zig {
		if (i/100)%2 == 0 {
			zig[i] = i % 100
		} else {
			zig[i] = 100 - i%100
		}
	}
	requireSortsLike(t, zig, omnisort.JesseSort[int])

	r := rand.New(rand.NewSource(17))
	random := make([]int, 5000)
	for i := range random {
		random[i] = r.Intn(5000)
	}
	requireSortsLike(t, random, omnisort.JesseSort[int])
}

// TestFluxDegeneratePivots drives the dual-pivot partition into its
// equal-pivot branch with heavy duplication.
func TestFluxDegeneratePivots(t *testing.T) {
	r := rand.New(rand.NewSource(19))
	data := make([]int, 8000)
	for i := range data {
		data[i] = r.Intn(3)
	}
	requireSortsLike(t, data, omnisort.FluxSort[int])
}

// TestDriftBlockBoundaries uses sizes straddling the sqrt block size and
// partially ordered content so both merge policies run.
func TestDriftBlockBoundaries(t *testing.T) {
	r := rand.New(rand.NewSource(23))
	for _, n := range []int{33, 1023, 1025, 5000} {
		data := make([]int, n)
		for i := range data {
			data[i] = r.Intn(n)
		}
		requireSortsLike(t, data, omnisort.DriftSort[int])

		// mostly sorted: block boundaries mostly in order
		data = make([]int, n)
		for i := range data {
			data[i] = i
		}
		data[0], data[n-1] = data[n-1], data[0]
		requireSortsLike(t, data, omnisort.DriftSort[int])
	}
}
