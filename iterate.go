package vector

import "iter"

// All returns an iterator over index/element pairs of the live elements
// in ascending index order. Mutating the vector during iteration, or any
// reallocation, gives unspecified results.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.block[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.block[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/element pairs from the last
// element to the first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.block[i]) {
				return
			}
		}
	}
}
