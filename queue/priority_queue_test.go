package queue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/omnisort/omnisort/queue"
)

func intLess(a, b int) bool { return a < b }

func TestPriorityQueueOrder(t *testing.T) {
	pq := queue.NewPriorityQueue(intLess)
	input := []int{5, 1, 4, 1, 5, 9, 2, 6}
	for _, v := range input {
		pq.Push(v)
	}
	if pq.Len() != len(input) {
		t.Fatalf("Len = %d, want %d", pq.Len(), len(input))
	}

	want := append([]int(nil), input...)
	sort.Ints(want)
	for i, w := range want {
		if got := pq.Peek(); got != w {
			t.Errorf("Peek %d = %d, want %d", i, got, w)
		}
		if got := pq.Pop(); got != w {
			t.Errorf("Pop %d = %d, want %d", i, got, w)
		}
	}
	if pq.Len() != 0 {
		t.Errorf("queue not empty after draining: %d", pq.Len())
	}
}

func TestPriorityQueueRandom(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	pq := queue.NewPriorityQueue(intLess)
	var mirror []int
	for op := 0; op < 5000; op++ {
		if len(mirror) == 0 || r.Intn(3) != 0 {
			v := r.Intn(1000)
			pq.Push(v)
			mirror = append(mirror, v)
		} else {
			sort.Ints(mirror)
			if got := pq.Pop(); got != mirror[0] {
				t.Fatalf("op %d: Pop = %d, want %d", op, got, mirror[0])
			}
			mirror = mirror[1:]
		}
	}
}

// TestPeekUpdate drives the queue the way the k-way merges do: mutate the
// minimum item's key in place, then restore heap order.
func TestPeekUpdate(t *testing.T) {
	type cursor struct {
		vals []int
		pos  int
	}
	pq := queue.NewPriorityQueue(func(a, b *cursor) bool {
		return a.vals[a.pos] < b.vals[b.pos]
	})
	pq.Push(&cursor{vals: []int{1, 4, 7}})
	pq.Push(&cursor{vals: []int{2, 3, 9}})
	pq.Push(&cursor{vals: []int{5, 6, 8}})

	var got []int
	for pq.Len() > 0 {
		c := pq.Peek()
		got = append(got, c.vals[c.pos])
		c.pos++
		if c.pos == len(c.vals) {
			pq.Pop()
		} else {
			pq.PeekUpdate()
		}
	}
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if len(got) != len(want) {
		t.Fatalf("merged %d items, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("merge[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
