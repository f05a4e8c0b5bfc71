package omnisort_test

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/omnisort/omnisort"
)

// countingSeq instruments a slice with move and read counters.
type countingSeq struct {
	data []int
	gets int
	sets int
}

func (c *countingSeq) Len() int { return len(c.data) }

func (c *countingSeq) Get(i int) int {
	c.gets++
	return c.data[i]
}

func (c *countingSeq) Set(i int, v int) {
	c.sets++
	c.data[i] = v
}

// TestRunAwareAdaptivity checks that the run-aware mergesorts and
// smoothsort move far fewer elements on an ascending input than on a
// descending one of the same size.
func TestRunAwareAdaptivity(t *testing.T) {
	const n = 4096
	adaptive := []omnisort.Algorithm{
		omnisort.AlgorithmPower,
		omnisort.AlgorithmPowerPlus,
		omnisort.AlgorithmTim,
		omnisort.AlgorithmGreen,
		omnisort.AlgorithmDrift,
		omnisort.AlgorithmGlide,
		omnisort.AlgorithmIndy,
		omnisort.AlgorithmSled,
		omnisort.AlgorithmSmooth,
	}
	for _, algo := range adaptive {
		t.Run(algo.String(), func(t *testing.T) {
			asc := &countingSeq{data: make([]int, n)}
			for i := range asc.data {
				asc.data[i] = i
			}
			require.NoError(t, omnisort.Sort(asc, intCmp, algo))

			desc := &countingSeq{data: make([]int, n)}
			for i := range desc.data {
				desc.data[i] = n - i
			}
			require.NoError(t, omnisort.Sort(desc, intCmp, algo))

			require.True(t, omnisort.IsSorted(omnisort.SliceOf(desc.data), intCmp))
			require.Less(t, asc.sets*4, desc.sets,
				"ascending moved %d, descending moved %d", asc.sets, desc.sets)
		})
	}
}

// TestPDQReverseNotQuadratic checks that pattern-defeating quicksort
// stays out of quadratic territory on a large reverse-sorted input: the
// depth budget caps the comparison count well below n²/4.
func TestPDQReverseNotQuadratic(t *testing.T) {
	const n = 10000
	data := make([]int, n)
	for i := range data {
		data[i] = n - i
	}
	cmps := 0
	counting := func(a, b int) int {
		cmps++
		return intCmp(a, b)
	}
	omnisort.PatternDefeatingQuickSort(omnisort.SliceOf(data), counting)

	require.True(t, omnisort.IsSorted(omnisort.SliceOf(data), intCmp))
	bound := 20 * n * (bits.Len(uint(n)) - 1)
	require.Less(t, cmps, bound, "comparisons %d exceed O(n log n) bound", cmps)
	require.Less(t, cmps, n*n/4)
}
