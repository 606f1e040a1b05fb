package vector

import "iter"

// All returns a forward cursor over index/element pairs in [0, Len()).
//
// The cursor reads the backing storage directly. Mutating the vector in a
// way that reallocates storage or changes the length while iterating
// violates the cursor's precondition; the resulting iteration order and
// contents are unspecified.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, v.storage[i]) {
				return
			}
		}
	}
}

// Backward returns a reverse cursor over index/element pairs, from
// Len()-1 down to 0. Same invalidation rules as All.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.length - 1; i >= 0; i-- {
			if !yield(i, v.storage[i]) {
				return
			}
		}
	}
}

// Values returns a forward cursor over the elements only.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(v.storage[i]) {
				return
			}
		}
	}
}
