package omnisort

import (
	"reflect"
	"sync"
)

// scratchPools holds one sync.Pool of element buffers per element type.
// Pools are created lazily on first borrow and shared by every sort call,
// so concurrent top-level sorts draw from the same pool without sharing
// buffers. Keyed by reflect.Type because sync.Pool cannot be generic at
// package level.
var scratchPools sync.Map // reflect.Type -> *sync.Pool

func poolFor[E any]() *sync.Pool {
	key := reflect.TypeOf((*E)(nil))
	if p, ok := scratchPools.Load(key); ok {
		return p.(*sync.Pool)
	}
	p, _ := scratchPools.LoadOrStore(key, &sync.Pool{
		New: func() any {
			s := make([]E, 0)
			return &s
		},
	})
	return p.(*sync.Pool)
}

// borrowScratch leases a zero-length buffer with capacity at least n from
// the pool for the element type. The release func must be called on every
// exit path (callers defer it immediately); it clears the buffer before
// returning it so pooled buffers never retain caller elements.
func borrowScratch[E any](n int) (buf []E, release func(*[]E)) {
	pool := poolFor[E]()
	ptr := pool.Get().(*[]E)
	buf = (*ptr)[:0]
	if cap(buf) < n {
		buf = make([]E, 0, n)
	}
	release = func(b *[]E) {
		clear((*b)[:cap(*b)])
		kept := (*b)[:0]
		pool.Put(&kept)
		*b = nil
	}
	return buf, release
}
