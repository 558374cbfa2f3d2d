package vector

// Storage helpers shared by the mutators. The discipline in every
// reallocating path is the same: do all fallible work against the new
// block first, and only once it has fully succeeded tear down and
// replace the old one. A failure before the publish point leaves the
// vector exactly as it was.

// nextCap returns the capacity to grow to for a single-element append.
func nextCap(capacity int) int {
	if capacity == 0 {
		return 1
	}
	return 2 * capacity
}

// appendCap doubles from the current capacity until it covers need.
func appendCap(capacity, need int) int {
	c := nextCap(capacity)
	for c < need {
		c *= 2
	}
	return c
}

// relocate moves the live elements into a freshly allocated block of
// exactly newCap slots and publishes it. newCap must be >= the current
// size. On failure the vector is untouched.
func (v *Vector[T]) relocate(newCap int) error {
	a := v.allocator()
	block, err := a.Allocate(newCap)
	if err != nil {
		return err
	}
	if err := constructCopy(a, block, v.block[:v.size]); err != nil {
		a.Deallocate(block)
		return err
	}
	v.replaceBlock(block)
	return nil
}

// replaceBlock destroys the live elements in the current block, releases
// it, and publishes block as the new storage. The size is unchanged;
// callers adjust it afterwards when the operation added elements.
func (v *Vector[T]) replaceBlock(block []T) {
	a := v.allocator()
	destroyRange(a, v.block, 0, v.size)
	a.Deallocate(v.block)
	v.block = block
}
