package omnisort

import (
	"math/rand"
	"sort"
	"testing"
)

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func TestFindRun(t *testing.T) {
	tests := []struct {
		name  string
		data  []int
		want  int
		after []int
	}{
		{"ascending", []int{1, 2, 3, 2, 1}, 3, []int{1, 2, 3, 2, 1}},
		{"equalExtends", []int{1, 1, 1, 0}, 3, []int{1, 1, 1, 0}},
		{"descendingReversed", []int{5, 4, 3, 9, 9}, 3, []int{3, 4, 5, 9, 9}},
		{"single", []int{7}, 1, []int{7}},
		{"descendingStopsAtEqual", []int{3, 2, 2, 1}, 2, []int{2, 3, 2, 1}},
	}
	for _, tt := range tests {
		s := SliceOf(tt.data)
		got := findRun(s, cmpInt, 0, len(tt.data))
		if got != tt.want {
			t.Errorf("%s: run length = %d, want %d", tt.name, got, tt.want)
		}
		for i, v := range tt.after {
			if tt.data[i] != v {
				t.Errorf("%s: data[%d] = %d, want %d", tt.name, i, tt.data[i], v)
			}
		}
	}
}

func TestTimMinRun(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 1},
		{31, 31},
		{32, 16},
		{64, 16},
		{65, 17},
		{1 << 20, 16},
		{(1 << 20) + 1, 17},
	}
	for _, tt := range tests {
		if got := timMinRun(tt.n); got != tt.want {
			t.Errorf("timMinRun(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
	// result always lands in [minMerge/2, minMerge] for large n
	for n := minMerge; n < 10000; n += 37 {
		got := timMinRun(n)
		if got < minMerge/2 || got > minMerge {
			t.Fatalf("timMinRun(%d) = %d out of range", n, got)
		}
	}
}

func TestGallopSearch(t *testing.T) {
	data := []int{1, 1, 2, 2, 2, 5, 5, 8, 9, 9}
	get := func(i int) int { return data[i] }
	n := len(data)

	for _, hint := range []int{0, n / 2, n - 1} {
		for key := 0; key <= 10; key++ {
			wantLeft := sort.SearchInts(data, key)
			if got := gallopLeft(cmpInt, key, get, 0, n, hint); got != wantLeft {
				t.Errorf("gallopLeft(%d, hint %d) = %d, want %d", key, hint, got, wantLeft)
			}
			wantRight := sort.SearchInts(data, key+1)
			if got := gallopRight(cmpInt, key, get, 0, n, hint); got != wantRight {
				t.Errorf("gallopRight(%d, hint %d) = %d, want %d", key, hint, got, wantRight)
			}
		}
	}
}

func TestMergeRunsStability(t *testing.T) {
	// keys with distinct payload bits in the low digits
	data := []int{10, 20, 30, 11, 21, 31}
	key := func(v int) int { return v / 10 }
	s := SliceOf(data)
	mergeRuns(s, func(a, b int) int { return cmpInt(key(a), key(b)) }, 0, 3, 6)
	want := []int{10, 11, 20, 21, 30, 31}
	for i, v := range want {
		if data[i] != v {
			t.Fatalf("data = %v, want %v", data, want)
		}
	}
}

func TestMergeRunsShortCircuit(t *testing.T) {
	c := &countingSlice{data: []int{1, 2, 3, 4, 5, 6}}
	mergeRuns[int](c, cmpInt, 0, 3, 6)
	if c.sets != 0 {
		t.Errorf("ordered merge wrote %d elements, want 0", c.sets)
	}
}

type countingSlice struct {
	data []int
	sets int
}

func (c *countingSlice) Len() int      { return len(c.data) }
func (c *countingSlice) Get(i int) int { return c.data[i] }
func (c *countingSlice) Set(i int, v int) {
	c.sets++
	c.data[i] = v
}

func TestPartitionThreeWay(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	for trial := 0; trial < 100; trial++ {
		n := 3 + r.Intn(60)
		data := make([]int, n)
		for i := range data {
			data[i] = r.Intn(8)
		}
		s := SliceOf(data)
		pivot := r.Intn(n)
		p := data[pivot]
		lt, gt := partitionThreeWay(s, cmpInt, 0, n, pivot)
		for i := 0; i < lt; i++ {
			if data[i] >= p {
				t.Fatalf("data[%d] = %d not < pivot %d", i, data[i], p)
			}
		}
		for i := lt; i < gt; i++ {
			if data[i] != p {
				t.Fatalf("data[%d] = %d != pivot %d", i, data[i], p)
			}
		}
		for i := gt; i < n; i++ {
			if data[i] <= p {
				t.Fatalf("data[%d] = %d not > pivot %d", i, data[i], p)
			}
		}
	}
}

func TestHeapSortRange(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	data := make([]int, 200)
	for i := range data {
		data[i] = r.Intn(50)
	}
	// sort only the middle, leaving the edges alone
	heapSortRange(SliceOf(data), cmpInt, 20, 180)
	for i := 21; i < 180; i++ {
		if data[i-1] > data[i] {
			t.Fatalf("range not sorted at %d", i)
		}
	}
}
