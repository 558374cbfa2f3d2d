package vector

// Allocator is the memory capability a Vector is parameterized over. It
// supplies raw blocks of element slots and performs in-place element
// construction and destruction within them.
//
// Allocate returns a block with len >= n, or an error with no side
// effects. Vectors treat len(block) as the block's capacity, so an
// implementation may hand out blocks longer than requested (bucketed
// pools do) as long as every slot in [0, len(block)) is usable and
// zeroed.
//
// Deallocate releases a block previously returned by Allocate. It never
// fails and must tolerate a nil block.
//
// Construct initializes the slot with value. It may fail; on failure the
// slot must be left zeroed so the caller can retry or abandon it.
//
// Destroy finalizes a live slot by zeroing it, so a dead slot never pins
// heap objects through a still-live block. It never fails.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(block []T)
	Construct(slot *T, value T) error
	Destroy(slot *T)
}

// GoAllocator allocates blocks directly from the Go heap. Deallocate is
// a no-op: the garbage collector reclaims blocks once unreferenced. It
// is the allocator a Vector uses when constructed with a nil Allocator.
type GoAllocator[T any] struct{}

// NewGoAllocator returns a GoAllocator for T.
func NewGoAllocator[T any]() GoAllocator[T] {
	return GoAllocator[T]{}
}

// Allocate returns a zeroed block of exactly n slots.
// Returns nil if n <= 0.
func (GoAllocator[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

// Deallocate is a no-op; the garbage collector owns reclamation.
func (GoAllocator[T]) Deallocate([]T) {}

// Construct stores value into the slot. It never fails.
func (GoAllocator[T]) Construct(slot *T, value T) error {
	*slot = value
	return nil
}

// Destroy zeroes the slot.
func (GoAllocator[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
}

var _ Allocator[int] = GoAllocator[int]{}
