package vector

import (
	"math/bits"
	"sync"

	"github.com/pkg/errors"
)

// PoolAllocator recycles blocks through size-bucketed pools. A request
// is rounded up to the next power-of-two bucket, but the returned block
// has exactly the requested length; the bucket's spare capacity stays
// private to the pool. Deallocate zeroes the full bucket extent and
// shelves it for reuse. Requests larger than the biggest bucket fall
// through to plain heap allocation. Safe for concurrent use.
//
// PoolAllocator has no budget of its own; wrap it in a LimitAllocator to
// bound total usage.
type PoolAllocator[T any] struct {
	buckets     []sync.Pool
	maxBlockLen int
}

// NewPoolAllocator creates a PoolAllocator whose largest bucket holds
// maxBlockLen slots. maxBlockLen must be a positive power of two.
func NewPoolAllocator[T any](maxBlockLen int) (*PoolAllocator[T], error) {
	if maxBlockLen < 1 || maxBlockLen&(maxBlockLen-1) != 0 {
		return nil, errors.Errorf("invalid max block length %d, must be a positive power of two", maxBlockLen)
	}
	return &PoolAllocator[T]{
		buckets:     make([]sync.Pool, bits.Len(uint(maxBlockLen))),
		maxBlockLen: maxBlockLen,
	}, nil
}

// Allocate returns a zeroed block of exactly n slots, reusing a pooled
// bucket when one is available. Returns nil if n <= 0.
func (p *PoolAllocator[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	if n > p.maxBlockLen {
		return make([]T, n), nil
	}
	i := bucketIndex(n)
	if b, ok := p.buckets[i].Get().(*[]T); ok && b != nil {
		return (*b)[:n], nil
	}
	block := make([]T, 1<<i)
	return block[:n], nil
}

// Deallocate zeroes the block's full bucket extent and shelves it. A
// block whose capacity is not one of the pool's bucket sizes is left to
// the garbage collector.
func (p *PoolAllocator[T]) Deallocate(block []T) {
	c := cap(block)
	if c == 0 {
		return
	}
	full := block[:c]
	clear(full)
	if c > p.maxBlockLen || c&(c-1) != 0 {
		return
	}
	p.buckets[bucketIndex(c)].Put(&full)
}

// Construct stores value into the slot. It never fails.
func (p *PoolAllocator[T]) Construct(slot *T, value T) error {
	*slot = value
	return nil
}

// Destroy zeroes the slot.
func (p *PoolAllocator[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
}

// bucketIndex returns the index of the smallest bucket holding at least
// n slots, so that 1<<bucketIndex(n) >= n.
func bucketIndex(n int) int {
	return bits.Len(uint(n - 1))
}

var _ Allocator[int] = (*PoolAllocator[int])(nil)
