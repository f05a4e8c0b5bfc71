// Package queue provides a generic slice-backed priority queue used by the
// run-merge schedulers and the k-way pile merge
package queue

// PriorityQueue is a binary min-heap ordered by a caller-supplied less
// function. The zero value is not usable; create one with NewPriorityQueue.
type PriorityQueue[E any] struct {
	items []E
	less  func(E, E) bool
}

// NewPriorityQueue creates an empty PriorityQueue ordered by lessFunc
func NewPriorityQueue[E any](lessFunc func(E, E) bool) *PriorityQueue[E] {
	return &PriorityQueue[E]{less: lessFunc}
}

// Len returns the number of items in the queue
func (pq *PriorityQueue[E]) Len() int {
	return len(pq.items)
}

// Push adds x to the queue
func (pq *PriorityQueue[E]) Push(x E) {
	pq.items = append(pq.items, x)
	pq.up(len(pq.items) - 1)
}

// Pop removes and returns the minimum item in the queue.
// It panics on an empty queue.
func (pq *PriorityQueue[E]) Pop() E {
	n := len(pq.items) - 1
	top := pq.items[0]
	pq.items[0] = pq.items[n]
	var zero E
	pq.items[n] = zero
	pq.items = pq.items[:n]
	if n > 0 {
		pq.down(0)
	}
	return top
}

// Peek returns the minimum item without removing it.
// It panics on an empty queue.
func (pq *PriorityQueue[E]) Peek() E {
	return pq.items[0]
}

// PeekUpdate restores heap order after the minimum item's key changed in
// place, as happens when a merge source advances to its next element.
func (pq *PriorityQueue[E]) PeekUpdate() {
	pq.down(0)
}

func (pq *PriorityQueue[E]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !pq.less(pq.items[i], pq.items[parent]) {
			return
		}
		pq.items[i], pq.items[parent] = pq.items[parent], pq.items[i]
		i = parent
	}
}

func (pq *PriorityQueue[E]) down(i int) {
	n := len(pq.items)
	for {
		child := 2*i + 1
		if child >= n {
			return
		}
		if child+1 < n && pq.less(pq.items[child+1], pq.items[child]) {
			child++
		}
		if !pq.less(pq.items[child], pq.items[i]) {
			return
		}
		pq.items[i], pq.items[child] = pq.items[child], pq.items[i]
		i = child
	}
}
