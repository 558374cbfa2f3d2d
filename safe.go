package vector

import "sync"

// SafeArena is a mutex-protected wrapper around Arena for concurrent
// use. Independent vectors running on different goroutines may share one
// SafeArena as their allocator; each vector itself must still stay on a
// single goroutine.
type SafeArena[T any] struct {
	mu sync.Mutex
	a  *Arena[T]
}

// NewSafeArena creates a goroutine-safe arena whose chunks hold chunkLen
// element slots each. If chunkLen <= 0, DefaultChunkLen is used.
func NewSafeArena[T any](chunkLen int) *SafeArena[T] {
	return &SafeArena[T]{a: NewArena[T](chunkLen)}
}

// Allocate thread-safely carves a zeroed block of n slots from the
// underlying arena. Returns nil if n <= 0.
func (s *SafeArena[T]) Allocate(n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Allocate(n)
}

// Deallocate is a no-op, as for Arena.
func (s *SafeArena[T]) Deallocate([]T) {}

// Construct stores value into the slot. The slot belongs to the calling
// vector's block, not to shared arena state, so no locking is involved.
func (s *SafeArena[T]) Construct(slot *T, value T) error {
	*slot = value
	return nil
}

// Destroy zeroes the slot. As with Construct, the slot is owned by the
// calling vector, so no locking is involved.
func (s *SafeArena[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
}

// Reset thread-safely rewinds all chunks to empty for reuse. Blocks
// handed out before the call become invalid.
func (s *SafeArena[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely drops all chunks and makes the arena unusable.
func (s *SafeArena[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

var _ Allocator[int] = (*SafeArena[int])(nil)
