// Package stack implements a last-in-first-out adapter over
// vector.Vector.
//
// A Stack holds exactly one vector and forwards every operation to the
// vector's tail; it keeps no state of its own and adds no invariants.
// Like the vector it wraps, a Stack is not safe for concurrent mutation.
package stack

import (
	"fmt"

	"github.com/marmos91/vec/pkg/vector"
)

// Stack is a LIFO container of elements of type T. The zero value is an
// empty stack ready to use.
type Stack[T any] struct {
	v vector.Vector[T]
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.v.Append(value)
}

// Pop removes and returns the top element.
// Returns a wrapped vector.ErrEmpty when the stack is empty.
func (s *Stack[T]) Pop() (T, error) {
	top, err := s.v.Back()
	if err != nil {
		var zero T
		return zero, fmt.Errorf("pop: %w", vector.ErrEmpty)
	}
	value := *top
	s.v.RemoveLast()
	return value, nil
}

// Top returns a pointer to the top element without removing it. The
// pointer aliases the stack's storage and is invalidated by any
// subsequent Push, Pop, or Swap.
//
// Returns a wrapped vector.ErrEmpty when the stack is empty.
func (s *Stack[T]) Top() (*T, error) {
	top, err := s.v.Back()
	if err != nil {
		return nil, fmt.Errorf("top: %w", vector.ErrEmpty)
	}
	return top, nil
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return s.v.Len()
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.v.IsEmpty()
}

// Swap exchanges contents with other in O(1).
func (s *Stack[T]) Swap(other *Stack[T]) {
	if other == nil {
		return
	}
	s.v.Swap(&other.v)
}
