package vector

import "cmp"

// Equal reports whether a and b have the same length and equal elements
// at every index. Capacity and allocator do not participate.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.block[i] != b.block[i] {
			return false
		}
	}
	return true
}

// EqualFunc reports whether a and b have the same length and eq holds
// for the elements at every index.
func EqualFunc[T1, T2 any](a *Vector[T1], b *Vector[T2], eq func(T1, T2) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.block[i], b.block[i]) {
			return false
		}
	}
	return true
}

// Compare compares a and b lexicographically, element by element,
// returning -1, 0, or +1 in the manner of cmp.Compare. When one vector
// is a prefix of the other, the shorter one compares smaller.
//
// The remaining orderings follow from the sign: a > b is Compare > 0,
// a <= b is Compare <= 0, and so on.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	n := min(a.size, b.size)
	for i := 0; i < n; i++ {
		if c := cmp.Compare(a.block[i], b.block[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.size, b.size)
}

// CompareFunc is Compare using cmpFn on element pairs.
func CompareFunc[T1, T2 any](a *Vector[T1], b *Vector[T2], cmpFn func(T1, T2) int) int {
	n := min(a.size, b.size)
	for i := 0; i < n; i++ {
		if c := cmpFn(a.block[i], b.block[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.size, b.size)
}

// Less reports whether a orders strictly before b.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}
