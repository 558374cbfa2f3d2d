package vector

import (
	"iter"
	"slices"

	"github.com/pkg/errors"
)

// Vector is a resizable contiguous array of T backed by storage obtained
// from an Allocator. The zero value is an empty vector using the Go heap.
//
// A vector owns its block exclusively: the first Len() slots hold live
// elements and the rest are zero. Any operation that reallocates (growth,
// Reserve, ShrinkToFit) invalidates slices previously returned by Data
// and any in-flight iterators.
//
// Every mutator either succeeds completely or returns an error with the
// vector's length, capacity, element values, and element addresses
// exactly as they were before the call. A vector is not safe for
// concurrent use.
type Vector[T any] struct {
	alloc Allocator[T]
	block []T
	size  int
}

// New returns an empty vector backed by the Go heap.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewIn returns an empty vector that allocates from a. A nil a means the
// Go heap.
func NewIn[T any](a Allocator[T]) *Vector[T] {
	return &Vector[T]{alloc: a}
}

// Make returns a vector of n zero-valued elements with capacity n.
func Make[T any](a Allocator[T], n int) (*Vector[T], error) {
	var zero T
	return MakeFilled(a, n, zero)
}

// MakeFilled returns a vector of n copies of fill with capacity n.
func MakeFilled[T any](a Allocator[T], n int, fill T) (*Vector[T], error) {
	v := NewIn[T](a)
	if n <= 0 {
		return v, nil
	}
	al := v.allocator()
	block, err := al.Allocate(n)
	if err != nil {
		return nil, err
	}
	if err := constructFill(al, block, 0, n, fill); err != nil {
		al.Deallocate(block)
		return nil, err
	}
	v.block = block
	v.size = n
	return v, nil
}

// Of returns a vector holding items in order, with capacity exactly
// len(items).
func Of[T any](a Allocator[T], items ...T) (*Vector[T], error) {
	v := NewIn[T](a)
	if len(items) == 0 {
		return v, nil
	}
	al := v.allocator()
	block, err := al.Allocate(len(items))
	if err != nil {
		return nil, err
	}
	if err := constructCopy(al, block, items); err != nil {
		al.Deallocate(block)
		return nil, err
	}
	v.block = block
	v.size = len(items)
	return v, nil
}

// FromSlice returns a vector copied from src with capacity 2*len(src),
// leaving headroom for appends. src is not retained.
func FromSlice[T any](a Allocator[T], src []T) (*Vector[T], error) {
	v := NewIn[T](a)
	if len(src) == 0 {
		return v, nil
	}
	al := v.allocator()
	block, err := al.Allocate(2 * len(src))
	if err != nil {
		return nil, err
	}
	if err := constructCopy(al, block, src); err != nil {
		al.Deallocate(block)
		return nil, err
	}
	v.block = block
	v.size = len(src)
	return v, nil
}

// FromSeq collects seq and returns a vector of its values, with the same
// capacity headroom as FromSlice.
func FromSeq[T any](a Allocator[T], seq iter.Seq[T]) (*Vector[T], error) {
	return FromSlice(a, slices.Collect(seq))
}

// allocator returns the vector's allocator, installing the Go heap
// default on first use so the zero value works.
func (v *Vector[T]) allocator() Allocator[T] {
	if v.alloc == nil {
		v.alloc = GoAllocator[T]{}
	}
	return v.alloc
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of slots in the current block.
func (v *Vector[T]) Cap() int { return len(v.block) }

// Empty reports whether the vector has no elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// Front returns the first element. It panics if the vector is empty.
func (v *Vector[T]) Front() T {
	return v.block[:v.size][0]
}

// Back returns the last element. It panics if the vector is empty.
func (v *Vector[T]) Back() T {
	return v.block[v.size-1]
}

// Get returns the element at index i without a bounds-checked error
// path: like a slice access, it panics if i is not in [0, Len()).
func (v *Vector[T]) Get(i int) T {
	return v.block[:v.size][i]
}

// Set overwrites the live element at index i. Like Get, it panics if i
// is not in [0, Len()).
func (v *Vector[T]) Set(i int, x T) {
	v.block[:v.size][i] = x
}

// At returns the element at index i, or ErrOutOfRange if i is not in
// [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, errors.Wrapf(ErrOutOfRange, "index %d with length %d", i, v.size)
	}
	return v.block[i], nil
}

// SetAt overwrites the element at index i, or returns ErrOutOfRange if i
// is not in [0, Len()).
func (v *Vector[T]) SetAt(i int, x T) error {
	if i < 0 || i >= v.size {
		return errors.Wrapf(ErrOutOfRange, "index %d with length %d", i, v.size)
	}
	v.block[i] = x
	return nil
}

// Data returns the live elements as a slice sharing the vector's
// storage. The slice is capped at the vector's length, so appending to
// it copies rather than writing into the vector's spare slots. Any
// reallocation invalidates it.
func (v *Vector[T]) Data() []T {
	return v.block[:v.size:v.size]
}

// PushBack appends x. When the block is full it grows to twice the
// current capacity (one slot from empty): the new element is constructed
// into the new block first, then the existing elements follow, and the
// old block is released only after both steps succeed.
func (v *Vector[T]) PushBack(x T) error {
	a := v.allocator()
	if v.size < len(v.block) {
		if err := a.Construct(&v.block[v.size], x); err != nil {
			return err
		}
		v.size++
		return nil
	}

	block, err := a.Allocate(nextCap(len(v.block)))
	if err != nil {
		return err
	}
	if err := a.Construct(&block[v.size], x); err != nil {
		a.Deallocate(block)
		return err
	}
	if err := constructCopy(a, block, v.block[:v.size]); err != nil {
		a.Destroy(&block[v.size])
		a.Deallocate(block)
		return err
	}
	v.replaceBlock(block)
	v.size++
	return nil
}

// Append appends all items, or none on failure. At most one reallocation
// happens, doubling from the current capacity until the items fit.
func (v *Vector[T]) Append(items ...T) error {
	if len(items) == 0 {
		return nil
	}
	a := v.allocator()
	need := v.size + len(items)
	if need <= len(v.block) {
		if err := constructCopy(a, v.block[v.size:need], items); err != nil {
			return err
		}
		v.size = need
		return nil
	}

	block, err := a.Allocate(appendCap(len(v.block), need))
	if err != nil {
		return err
	}
	if err := constructCopy(a, block[v.size:need], items); err != nil {
		a.Deallocate(block)
		return err
	}
	if err := constructCopy(a, block, v.block[:v.size]); err != nil {
		destroyRange(a, block, v.size, need)
		a.Deallocate(block)
		return err
	}
	v.replaceBlock(block)
	v.size = need
	return nil
}

// PopBack destroys the last element and returns its prior value, or
// (zero, false) when the vector is empty. Capacity is unchanged.
func (v *Vector[T]) PopBack() (T, bool) {
	if v.size == 0 {
		var zero T
		return zero, false
	}
	v.size--
	x := v.block[v.size]
	v.allocator().Destroy(&v.block[v.size])
	return x, true
}

// Resize changes the length to n, constructing zero values as needed.
// It panics if n is negative.
func (v *Vector[T]) Resize(n int) error {
	var zero T
	return v.ResizeWith(n, zero)
}

// ResizeWith changes the length to n. Shrinking destroys the tail and
// keeps the block. Growing within capacity constructs copies of fill in
// place. Growing past capacity allocates a block of 2n slots, constructs
// the new tail into it first, then moves the existing elements over.
// It panics if n is negative.
func (v *Vector[T]) ResizeWith(n int, fill T) error {
	if n < 0 {
		panic("vector: negative length")
	}
	a := v.allocator()
	switch {
	case n == v.size:
		return nil

	case n < v.size:
		destroyRange(a, v.block, n, v.size)
		v.size = n
		return nil

	case n <= len(v.block):
		if err := constructFill(a, v.block, v.size, n, fill); err != nil {
			return err
		}
		v.size = n
		return nil

	default:
		block, err := a.Allocate(2 * n)
		if err != nil {
			return err
		}
		if err := constructFill(a, block, v.size, n, fill); err != nil {
			a.Deallocate(block)
			return err
		}
		if err := constructCopy(a, block, v.block[:v.size]); err != nil {
			destroyRange(a, block, v.size, n)
			a.Deallocate(block)
			return err
		}
		v.replaceBlock(block)
		v.size = n
		return nil
	}
}

// Reserve grows the capacity to exactly c, moving the elements to a new
// block. It is a no-op when c does not exceed the current capacity, so
// element addresses survive such a call.
func (v *Vector[T]) Reserve(c int) error {
	if c <= len(v.block) {
		return nil
	}
	return v.relocate(c)
}

// ShrinkToFit reallocates the block to hold exactly Len() elements,
// freeing the block entirely when the vector is empty. It is a no-op
// when capacity already equals length, so calling it twice in a row does
// nothing the second time.
func (v *Vector[T]) ShrinkToFit() error {
	if len(v.block) == v.size {
		return nil
	}
	return v.relocate(v.size)
}

// Clear destroys all elements. The block is kept, so capacity is
// unchanged.
func (v *Vector[T]) Clear() {
	destroyRange(v.allocator(), v.block, 0, v.size)
	v.size = 0
}

// Release destroys all elements and returns the block to the allocator.
// The vector is left empty with zero capacity and may be reused.
func (v *Vector[T]) Release() {
	a := v.allocator()
	destroyRange(a, v.block, 0, v.size)
	a.Deallocate(v.block)
	v.block = nil
	v.size = 0
}

// Swap exchanges the contents, capacity, and allocator of v and other in
// O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.alloc, other.alloc = other.alloc, v.alloc
	v.block, other.block = other.block, v.block
	v.size, other.size = other.size, v.size
}

// Clone returns a deep copy with independent storage, the same
// capacity, and the same allocator. On failure v is untouched.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	w := NewIn[T](v.alloc)
	if len(v.block) == 0 {
		return w, nil
	}
	a := w.allocator()
	block, err := a.Allocate(len(v.block))
	if err != nil {
		return nil, err
	}
	if err := constructCopy(a, block, v.block[:v.size]); err != nil {
		a.Deallocate(block)
		return nil, err
	}
	w.block = block
	w.size = v.size
	return w, nil
}

// CopyFrom replaces v's contents with a deep copy of other, adopting
// other's allocator. The copy is built in full before v is touched, so a
// failure leaves v unchanged.
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}
	tmp, err := other.Clone()
	if err != nil {
		return err
	}
	v.Swap(tmp)
	// tmp now holds the old block and allocator, so releasing it tears
	// the old contents down with the allocator that created them.
	tmp.Release()
	return nil
}

// Move returns a new vector that takes over v's block, size, and
// allocator in O(1). v is left empty with zero capacity, keeping its
// allocator, and remains usable. Element addresses are preserved in the
// returned vector.
func (v *Vector[T]) Move() *Vector[T] {
	w := &Vector[T]{alloc: v.alloc, block: v.block, size: v.size}
	v.block = nil
	v.size = 0
	return w
}

// MoveFrom releases v's own contents and takes over other's block, size,
// and allocator in O(1). other is left empty with zero capacity and
// remains usable.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.Release()
	v.alloc = other.alloc
	v.block = other.block
	v.size = other.size
	other.block = nil
	other.size = 0
}
