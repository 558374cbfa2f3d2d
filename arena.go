package vector

// DefaultChunkLen is the default chunk length, in element slots, for new
// arenas.
const DefaultChunkLen = 1024

// chunk is a single backing slab within an arena.
type chunk[T any] struct {
	buf  []T // backing slots
	used int // slots handed out from buf
}

// Arena is a chunked bump allocator over typed slabs. Blocks are carved
// off the current chunk until it runs out, then a new chunk is added.
// Deallocate is a no-op: arena memory is reclaimed wholesale by Reset or
// Release. Typical usage is one arena per request or batch, feeding the
// vectors built during it, with a Reset at the end for O(1) cleanup.
// Not goroutine-safe; use SafeArena for concurrent access.
type Arena[T any] struct {
	chunks       []chunk[T]
	chunkLen     int
	currentChunk *chunk[T]
}

// NewArena creates an Arena whose chunks hold chunkLen element slots
// each. If chunkLen <= 0, DefaultChunkLen is used.
func NewArena[T any](chunkLen int) *Arena[T] {
	if chunkLen <= 0 {
		chunkLen = DefaultChunkLen
	}
	a := &Arena[T]{chunkLen: chunkLen}
	a.grow(chunkLen)
	return a
}

// Allocate returns a zeroed block of exactly n slots carved from the
// arena. The block's capacity is capped at n so writes through it can
// never reach a neighboring allocation. Returns nil if n <= 0.
func (a *Arena[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}

	// Fast path: carve from the cached current chunk.
	c := a.currentChunk
	if c != nil && c.used+n <= len(c.buf) {
		block := c.buf[c.used : c.used+n : c.used+n]
		c.used += n
		clear(block)
		return block, nil
	}

	return a.allocateSlow(n)
}

// allocateSlow handles allocation when the current chunk is missing or
// too full.
func (a *Arena[T]) allocateSlow(n int) ([]T, error) {
	if a.chunks == nil {
		panic("vector: arena use after Release()")
	}

	a.grow(n)
	c := a.currentChunk
	block := c.buf[:n:n]
	c.used = n
	clear(block)
	return block, nil
}

// Deallocate is a no-op; arena memory is reclaimed by Reset or Release.
func (a *Arena[T]) Deallocate([]T) {}

// Construct stores value into the slot. It never fails.
func (a *Arena[T]) Construct(slot *T, value T) error {
	*slot = value
	return nil
}

// Destroy zeroes the slot.
func (a *Arena[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
}

// Reset rewinds all chunks to empty for reuse without freeing them.
// Blocks handed out before the call become invalid: future allocations
// are carved from the same memory.
func (a *Arena[T]) Reset() {
	if a.chunks == nil {
		panic("vector: arena use after Release()")
	}
	for i := range a.chunks {
		a.chunks[i].used = 0
	}
	a.currentChunk = &a.chunks[0]
}

// Release drops all chunks and makes the arena unusable. Any subsequent
// allocation will panic.
func (a *Arena[T]) Release() {
	a.chunks = nil
	a.currentChunk = nil
}

// grow appends a new chunk of at least min slots.
func (a *Arena[T]) grow(min int) {
	size := a.chunkLen
	if min > size {
		size = min
	}
	a.chunks = append(a.chunks, chunk[T]{buf: make([]T, size)})
	a.currentChunk = &a.chunks[len(a.chunks)-1]
}

var _ Allocator[int] = (*Arena[int])(nil)
