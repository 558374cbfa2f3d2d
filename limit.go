package vector

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

// LimitAllocator enforces a byte budget on an inner allocator. Each
// block is accounted as len(block) slots times the element size; an
// allocation that would push the total past the budget is rejected with
// ErrLimitExceeded, the block is returned to the inner allocator, and
// the rejection counter is incremented. Safe for concurrent use, so one
// LimitAllocator can budget vectors across goroutines.
type LimitAllocator[T any] struct {
	inner    Allocator[T]
	maxBytes uint64

	current atomic.Uint64
	peak    atomic.Uint64

	rejections prometheus.Counter
}

// NewLimitAllocator wraps inner with a budget of maxBytes. A maxBytes of
// 0 means no limit; usage and peak are still tracked. A nil inner means
// the Go heap. rejections may be nil when no metric is wanted.
func NewLimitAllocator[T any](inner Allocator[T], maxBytes uint64, rejections prometheus.Counter) *LimitAllocator[T] {
	if inner == nil {
		inner = GoAllocator[T]{}
	}
	return &LimitAllocator[T]{
		inner:      inner,
		maxBytes:   maxBytes,
		rejections: rejections,
	}
}

// Allocate obtains a block from the inner allocator and reserves its
// byte estimate against the budget. The block is handed back to the
// inner allocator when the reservation is rejected. Returns nil if
// n <= 0.
func (l *LimitAllocator[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	block, err := l.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	if err := l.reserve(uint64(len(block)) * elemSize[T]()); err != nil {
		l.inner.Deallocate(block)
		return nil, err
	}
	return block, nil
}

// Deallocate releases the block's reservation and returns it to the
// inner allocator. It panics if more bytes come back than are currently
// reserved, since that means a block was deallocated twice.
func (l *LimitAllocator[T]) Deallocate(block []T) {
	if len(block) > 0 {
		bytes := uint64(len(block)) * elemSize[T]()
		if l.current.Sub(bytes) > math.MaxUint64/2 {
			panic("vector: block returned to allocator more than once, which is a bug")
		}
	}
	l.inner.Deallocate(block)
}

// Construct delegates to the inner allocator.
func (l *LimitAllocator[T]) Construct(slot *T, value T) error {
	return l.inner.Construct(slot, value)
}

// Destroy delegates to the inner allocator.
func (l *LimitAllocator[T]) Destroy(slot *T) {
	l.inner.Destroy(slot)
}

// InUseBytes returns the bytes currently reserved.
func (l *LimitAllocator[T]) InUseBytes() uint64 {
	return l.current.Load()
}

// PeakBytes returns the highest reservation level seen.
func (l *LimitAllocator[T]) PeakBytes() uint64 {
	return l.peak.Load()
}

// Limit returns the configured budget in bytes, 0 meaning unlimited.
func (l *LimitAllocator[T]) Limit() uint64 {
	return l.maxBytes
}

// reserve adds bytes to the running total, rolling the addition back and
// recording a rejection when it would exceed the budget.
func (l *LimitAllocator[T]) reserve(bytes uint64) error {
	cur := l.current.Add(bytes)
	if l.maxBytes > 0 && cur > l.maxBytes {
		l.current.Sub(bytes)
		if l.rejections != nil {
			l.rejections.Inc()
		}
		return errors.Wrapf(ErrLimitExceeded,
			"requested %d bytes with %d bytes already in use and a limit of %d bytes",
			bytes, cur-bytes, l.maxBytes)
	}
	for {
		peak := l.peak.Load()
		if cur <= peak || l.peak.CompareAndSwap(peak, cur) {
			return nil
		}
	}
}

// elemSize returns the in-memory size of T in bytes.
func elemSize[T any]() uint64 {
	var zero T
	return uint64(unsafe.Sizeof(zero))
}

var _ Allocator[int] = (*LimitAllocator[int])(nil)
