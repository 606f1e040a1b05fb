package vector

import "fmt"

// Append adds value after the last element, growing the capacity first
// when the vector is full. Growth doubles the capacity (starting at 2
// from empty), which makes a sequence of appends amortized O(1).
func (v *Vector[T]) Append(value T) {
	if v.length == v.Cap() {
		v.reallocate(v.grownCapacity(v.length + 1))
	}
	v.storage[v.length] = value
	v.length++
}

// AppendWith adds the element produced by construct after the last
// element. The constructor runs only after any required growth, and its
// result is written directly into the final storage slot. Intended for
// element types that are expensive or meaningless to copy around.
func (v *Vector[T]) AppendWith(construct func() T) {
	if v.length == v.Cap() {
		v.reallocate(v.grownCapacity(v.length + 1))
	}
	v.storage[v.length] = construct()
	v.length++
}

// RemoveLast drops the last element, zeroing its slot. A no-op on an
// empty vector. Capacity is unchanged.
func (v *Vector[T]) RemoveLast() {
	if v.length == 0 {
		return
	}
	v.length--
	v.release(v.length, v.length+1)
}

// Insert places value at position i, shifting [i, Len()) one slot right.
// Inserting at i == Len() is equivalent to Append.
//
// Returns a wrapped ErrOutOfRange when i is not in [0, Len()].
func (v *Vector[T]) Insert(i int, value T) error {
	if err := v.checkInsertPos(i); err != nil {
		return err
	}
	if i == v.length {
		v.Append(value)
		return nil
	}
	if v.length == v.Cap() {
		v.reallocate(v.grownCapacity(v.length + 1))
	}
	// Shift tail-first so no source slot is overwritten before it is read.
	for j := v.length; j > i; j-- {
		v.storage[j] = v.storage[j-1]
	}
	v.storage[i] = value
	v.length++
	return nil
}

// InsertN places count copies of value at position i, shifting the
// existing tail right by count. Capacity is raised to Len()+count in a
// single step, so the operation performs at most one reallocation
// regardless of count.
//
// Returns a wrapped ErrOutOfRange when i is not in [0, Len()] or count
// is negative. Inserting zero elements is a no-op.
func (v *Vector[T]) InsertN(i, count int, value T) error {
	if err := v.checkInsertPos(i); err != nil {
		return err
	}
	if count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrOutOfRange, count)
	}
	if count == 0 {
		return nil
	}
	v.Reserve(v.length + count)
	v.shiftRight(i, count)
	for j := i; j < i+count; j++ {
		v.storage[j] = value
	}
	v.length += count
	return nil
}

// InsertSlice places a copy of items at position i, shifting the existing
// tail right by len(items). Like InsertN it grows in a single step and
// never reads a slot after overwriting it.
//
// Returns a wrapped ErrOutOfRange when i is not in [0, Len()].
func (v *Vector[T]) InsertSlice(i int, items []T) error {
	if err := v.checkInsertPos(i); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	v.Reserve(v.length + len(items))
	v.shiftRight(i, len(items))
	copy(v.storage[i:], items)
	v.length += len(items)
	return nil
}

// InsertWith places the element produced by construct at position i.
// Semantically Insert with in-place construction: growth happens first,
// then the shift, and only then does the constructor run, writing its
// result directly into the opened slot.
//
// Returns a wrapped ErrOutOfRange when i is not in [0, Len()].
func (v *Vector[T]) InsertWith(i int, construct func() T) error {
	if err := v.checkInsertPos(i); err != nil {
		return err
	}
	if i == v.length {
		v.AppendWith(construct)
		return nil
	}
	if v.length == v.Cap() {
		v.reallocate(v.grownCapacity(v.length + 1))
	}
	for j := v.length; j > i; j-- {
		v.storage[j] = v.storage[j-1]
	}
	v.storage[i] = construct()
	v.length++
	return nil
}

// RemoveAt drops the element at position i, shifting [i+1, Len()) one
// slot left and zeroing the vacated tail slot.
//
// Returns a wrapped ErrOutOfRange when i is not in [0, Len()).
func (v *Vector[T]) RemoveAt(i int) error {
	if i < 0 || i >= v.length {
		return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, v.length)
	}
	for j := i; j < v.length-1; j++ {
		v.storage[j] = v.storage[j+1]
	}
	v.length--
	v.release(v.length, v.length+1)
	return nil
}

// RemoveRange drops the elements in [first, last), shifting [last, Len())
// down to first and zeroing the vacated tail slots.
//
// An empty range (first == last) is accepted as a no-op at any position
// up to and including Len(). Otherwise a wrapped ErrOutOfRange is
// returned when first >= Len(), last > Len(), or last < first.
func (v *Vector[T]) RemoveRange(first, last int) error {
	if first == last && first >= 0 && first <= v.length {
		return nil
	}
	if first < 0 || first >= v.length || last > v.length || last < first {
		return fmt.Errorf("%w: range [%d, %d), length %d", ErrOutOfRange, first, last, v.length)
	}
	n := copy(v.storage[first:v.length], v.storage[last:v.length])
	removed := last - first
	v.release(first+n, v.length)
	v.length -= removed
	return nil
}

// Clear sets the length to zero, zeroing the previously live slots.
// Capacity is retained: clearing is O(n) zeroing but performs no
// allocation, and ShrinkToFit is the explicit opt-in for reclaiming the
// memory.
func (v *Vector[T]) Clear() {
	v.release(0, v.length)
	v.length = 0
}

// Swap exchanges storage, length, and capacity with other in O(1),
// copying no elements. Observers stay with their instance. From the
// caller's point of view the exchange is atomic: no partial state is
// observable.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if other == nil || other == v {
		return
	}
	v.storage, other.storage = other.storage, v.storage
	v.length, other.length = other.length, v.length
}

// checkInsertPos validates an insertion position, which may equal Len().
func (v *Vector[T]) checkInsertPos(i int) error {
	if i < 0 || i > v.length {
		return fmt.Errorf("%w: position %d, length %d", ErrOutOfRange, i, v.length)
	}
	return nil
}

// shiftRight moves [i, length) right by n slots, tail-first. The caller
// must have reserved capacity for length+n already.
func (v *Vector[T]) shiftRight(i, n int) {
	for j := v.length; j > i; j-- {
		v.storage[j+n-1] = v.storage[j-1]
	}
}
