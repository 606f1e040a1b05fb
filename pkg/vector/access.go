package vector

import "fmt"

// At returns a pointer to the element at index i after bounds checking.
// The pointer aliases the backing storage and is invalidated by any
// operation that reallocates storage or changes the length.
//
// Returns a wrapped ErrOutOfRange when i is not in [0, Len()).
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.length {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, v.length)
	}
	return &v.storage[i], nil
}

// Ref returns a pointer to the element at index i with no bounds check.
//
// The caller must guarantee 0 <= i < Len(). Violating that contract is not
// a recoverable condition: an index inside the allocated capacity silently
// yields a slot holding unspecified contents, and one beyond it panics.
// Use At when the position is not already known to be valid.
func (v *Vector[T]) Ref(i int) *T {
	return &v.storage[i]
}

// Front returns a pointer to the first element.
// Returns a wrapped ErrEmpty when the vector is empty.
func (v *Vector[T]) Front() (*T, error) {
	if v.length == 0 {
		return nil, fmt.Errorf("front: %w", ErrEmpty)
	}
	return &v.storage[0], nil
}

// Back returns a pointer to the last element.
// Returns a wrapped ErrEmpty when the vector is empty.
func (v *Vector[T]) Back() (*T, error) {
	if v.length == 0 {
		return nil, fmt.Errorf("back: %w", ErrEmpty)
	}
	return &v.storage[v.length-1], nil
}

// Data returns a read/write view over the live elements, backed by the
// vector's own storage. The view is invalidated by any operation that
// reallocates storage or changes the length; callers must not grow it.
func (v *Vector[T]) Data() []T {
	return v.storage[:v.length]
}
