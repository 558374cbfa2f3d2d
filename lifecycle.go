package vector

// Element lifecycle helpers. Every construct helper tracks how many slots
// it has initialized so far; if a Construct call fails, the helper
// destroys exactly its own successes, most recent first, and returns the
// error. Slots the helper never touched stay untouched, which is what
// lets callers keep their original state on failure.

// constructFill constructs block[start:end] from a single fill value.
func constructFill[T any](a Allocator[T], block []T, start, end int, fill T) error {
	for i := start; i < end; i++ {
		if err := a.Construct(&block[i], fill); err != nil {
			for j := i - 1; j >= start; j-- {
				a.Destroy(&block[j])
			}
			return err
		}
	}
	return nil
}

// constructCopy constructs dst[i] from src[i] for every index of src.
// dst must have at least len(src) slots.
func constructCopy[T any](a Allocator[T], dst, src []T) error {
	for i := range src {
		if err := a.Construct(&dst[i], src[i]); err != nil {
			for j := i - 1; j >= 0; j-- {
				a.Destroy(&dst[j])
			}
			return err
		}
	}
	return nil
}

// destroyRange destroys block[start:end]. Destroy never fails, so neither
// does this.
func destroyRange[T any](a Allocator[T], block []T, start, end int) {
	for i := start; i < end; i++ {
		a.Destroy(&block[i])
	}
}
