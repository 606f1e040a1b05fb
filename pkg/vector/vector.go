// Package vector implements a generic growable array with explicit
// capacity management.
//
// A Vector owns a single contiguous block of element slots and tracks its
// logical length separately from its allocated capacity. Unlike a plain Go
// slice, the buffer never grows behind the caller's back: every allocation
// is an exactly-sized block, growth follows a documented doubling policy,
// and capacity is only ever reclaimed through an explicit ShrinkToFit call.
//
// # Design Rationale
//
// The length/capacity split makes allocation behavior observable and
// controllable. Appends are amortized O(1) via capacity doubling, bulk
// inserts grow in a single step, and Clear is O(1) because it retains the
// allocation. Callers that care about memory opt in to reclamation with
// ShrinkToFit.
//
// # Accessor Contracts
//
// Element access comes in two deliberate flavors: checked accessors (At,
// Front, Back) validate their position and return a wrapped error, while
// Ref performs no validation at all and leaves the bounds contract to the
// caller. Both return pointers into the backing storage; any operation
// that reallocates storage or changes the length invalidates previously
// returned pointers, views, and cursors.
//
// # Thread Safety
//
// A Vector is not safe for concurrent mutation. Callers needing shared
// access must serialize externally.
package vector

import "fmt"

// Vector is a dynamically sized contiguous container of elements of type T.
//
// The zero value is an empty vector with no backing allocation and is ready
// to use. A Vector must not be copied by value after first use; pointers
// returned by accessors alias its backing storage.
type Vector[T any] struct {
	// storage is the backing block. Its slice length always equals the
	// allocated capacity; nil when capacity is zero.
	storage []T

	// length is the number of live elements, occupying storage[0:length].
	length int

	// obs, when non-nil, is notified of every reallocation.
	obs Observer
}

// New returns an empty vector with no backing allocation.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWithSize returns a vector of n elements, each set to fill.
// Both length and capacity equal n; n == 0 allocates nothing.
//
// Returns a wrapped ErrOutOfRange when n is negative.
func NewWithSize[T any](n int, fill T) (*Vector[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrOutOfRange, n)
	}
	v := &Vector[T]{}
	if n > 0 {
		v.storage = make([]T, n)
		for i := range v.storage {
			v.storage[i] = fill
		}
		v.length = n
	}
	return v, nil
}

// Of returns a vector holding the given items in order.
// Both length and capacity equal the number of items.
func Of[T any](items ...T) *Vector[T] {
	return FromSlice(items)
}

// FromSlice returns a vector holding a copy of items in order.
// Both length and capacity equal len(items); the vector does not alias
// the input slice.
func FromSlice[T any](items []T) *Vector[T] {
	v := &Vector[T]{}
	if len(items) > 0 {
		v.storage = make([]T, len(items))
		copy(v.storage, items)
		v.length = len(items)
	}
	return v
}

// Clone returns a deep copy of the vector.
//
// The clone preserves the source's capacity exactly, not just its length,
// and shares no storage with the source: mutating one never affects the
// other. The observer is not carried over.
func (v *Vector[T]) Clone() *Vector[T] {
	out := &Vector[T]{}
	if v.Cap() > 0 {
		out.storage = make([]T, v.Cap())
		copy(out.storage, v.storage[:v.length])
		out.length = v.length
	}
	return out
}

// CopyFrom replaces the vector's contents with a deep copy of other,
// matching other's capacity exactly. Self-assignment is a no-op that
// neither frees nor reallocates; a nil other is ignored.
//
// The previous storage is dropped only after the new block is fully
// populated, so a reallocation failure (a fatal runtime condition in Go)
// can never leave the vector aliasing freed memory.
func (v *Vector[T]) CopyFrom(other *Vector[T]) {
	if other == nil || other == v {
		return
	}
	var fresh []T
	if other.Cap() > 0 {
		fresh = make([]T, other.Cap())
		copy(fresh, other.storage[:other.length])
	}
	v.storage = fresh
	v.length = other.length
}

// Assign replaces the vector's contents with n copies of value.
// Capacity grows to at least n if needed but never shrinks; slots beyond
// the new length are zeroed so the GC can reclaim what they referenced.
//
// Returns a wrapped ErrOutOfRange when n is negative.
func (v *Vector[T]) Assign(n int, value T) error {
	if n < 0 {
		return fmt.Errorf("%w: negative size %d", ErrOutOfRange, n)
	}
	v.Reserve(n)
	for i := 0; i < n; i++ {
		v.storage[i] = value
	}
	v.release(n, v.length)
	v.length = n
	return nil
}

// AssignSlice replaces the vector's contents with a copy of items.
// Capacity grows to at least len(items) if needed but never shrinks.
func (v *Vector[T]) AssignSlice(items []T) {
	v.Reserve(len(items))
	copy(v.storage, items)
	v.release(len(items), v.length)
	v.length = len(items)
}

// release zeroes the slots in [from, to) so truncated elements do not pin
// their referents. This is the GC-language analog of destroying the
// elements; the slots remain allocated.
func (v *Vector[T]) release(from, to int) {
	var zero T
	for i := from; i < to; i++ {
		v.storage[i] = zero
	}
}
