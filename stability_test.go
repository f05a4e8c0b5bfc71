package omnisort_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/omnisort/omnisort"
)

type record struct {
	key int
	seq int
}

func recordCmp(a, b record) int {
	return intCmp(a.key, b.key)
}

// TestStableAlgorithms checks that every algorithm contracted as stable
// preserves the input order of equal keys, across enough duplicates and
// sizes to force real merge activity.
func TestStableAlgorithms(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for _, algo := range omnisort.Algorithms() {
		if !algo.Stable() {
			continue
		}
		t.Run(algo.String(), func(t *testing.T) {
			for _, n := range []int{10, 64, 500, 3000} {
				data := make([]record, n)
				for i := range data {
					data[i] = record{key: r.Intn(16), seq: i}
				}
				err := omnisort.Sort(omnisort.SliceOf(data), recordCmp, algo)
				require.NoError(t, err)

				for i := 1; i < n; i++ {
					require.LessOrEqual(t, data[i-1].key, data[i].key)
					if data[i-1].key == data[i].key {
						require.Less(t, data[i-1].seq, data[i].seq,
							"equal keys reordered at %d (n=%d)", i, n)
					}
				}
			}
		})
	}
}

// TestTimStabilityScenario pins the documented stable-pair case: compare
// by first component only, expect the payloads to keep input order.
func TestTimStabilityScenario(t *testing.T) {
	type pair struct {
		k int
		v string
	}
	data := []pair{{1, "a"}, {1, "b"}, {0, "c"}}
	omnisort.TimSort(omnisort.SliceOf(data), func(a, b pair) int {
		return intCmp(a.k, b.k)
	})
	require.Equal(t, []pair{{0, "c"}, {1, "a"}, {1, "b"}}, data)
}
