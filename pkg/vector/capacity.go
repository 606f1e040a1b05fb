package vector

import (
	"fmt"
	"math"
	"unsafe"
)

// minCapacity is the capacity of the first allocation when growing from
// empty through the doubling policy.
const minCapacity = 2

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.length
}

// Cap returns the number of allocated element slots.
func (v *Vector[T]) Cap() int {
	return len(v.storage)
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.length == 0
}

// MaxLen returns a theoretical upper bound on the number of elements the
// vector could hold: the addressable range divided by the element size.
// It is a ceiling, not a live constraint; no operation consults it.
func (v *Vector[T]) MaxLen() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return math.MaxInt
	}
	return math.MaxInt / size
}

// Reserve grows the capacity to exactly n slots, preserving the live
// elements in order. A no-op when n <= Cap(): capacity never shrinks here
// and no element is touched. Len is unchanged either way.
func (v *Vector[T]) Reserve(n int) {
	if n <= v.Cap() {
		return
	}
	v.reallocate(n)
}

// ShrinkToFit reduces the capacity to exactly Len(), releasing the backing
// storage entirely when the vector is empty. A no-op when capacity already
// matches the length.
func (v *Vector[T]) ShrinkToFit() {
	if v.Cap() <= v.length {
		return
	}
	if v.length == 0 {
		v.storage = nil
		return
	}
	v.reallocate(v.length)
}

// Resize sets the length to n. When growing, capacity is raised to at
// least n (via Reserve) and the new slots [Len(), n) are set to fill.
// When shrinking, the length is truncated and the vacated slots are
// zeroed so the GC can reclaim what they referenced; capacity is never
// reduced.
//
// Returns a wrapped ErrOutOfRange when n is negative.
func (v *Vector[T]) Resize(n int, fill T) error {
	if n < 0 {
		return fmt.Errorf("%w: negative size %d", ErrOutOfRange, n)
	}
	if n > v.length {
		v.Reserve(n)
		for i := v.length; i < n; i++ {
			v.storage[i] = fill
		}
	} else {
		v.release(n, v.length)
	}
	v.length = n
	return nil
}

// grownCapacity returns the capacity the doubling policy yields for
// accommodating at least needed slots: 2 from empty, then doubling.
func (v *Vector[T]) grownCapacity(needed int) int {
	c := v.Cap()
	if c == 0 {
		c = minCapacity
	}
	for c < needed {
		c *= 2
	}
	return c
}

// reallocate moves the live elements into a fresh block of exactly n
// slots and drops the old block. The observer, if any, sees every call.
func (v *Vector[T]) reallocate(n int) {
	fresh := make([]T, n)
	copied := copy(fresh, v.storage[:v.length])
	old := v.Cap()
	v.storage = fresh
	if v.obs != nil {
		v.obs.ObserveRealloc(old, n, copied)
	}
}
