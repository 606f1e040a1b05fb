package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/vec/pkg/vector"
)

// ============================================================================
// Push / Pop Tests
// ============================================================================

func TestPushPop(t *testing.T) {
	t.Run("LastInFirstOut", func(t *testing.T) {
		s := New[int]()
		s.Push(1)
		s.Push(2)
		s.Push(3)

		for _, want := range []int{3, 2, 1} {
			got, err := s.Pop()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
		assert.True(t, s.IsEmpty())
	})

	t.Run("PopEmptyFails", func(t *testing.T) {
		s := New[string]()

		_, err := s.Pop()
		assert.ErrorIs(t, err, vector.ErrEmpty)
	})

	t.Run("PopAfterDrainFails", func(t *testing.T) {
		s := New[int]()
		s.Push(1)

		_, err := s.Pop()
		require.NoError(t, err)
		_, err = s.Pop()
		assert.ErrorIs(t, err, vector.ErrEmpty)
	})
}

// ============================================================================
// Top Tests
// ============================================================================

func TestTop(t *testing.T) {
	t.Run("ReturnsTailWithoutRemoving", func(t *testing.T) {
		s := New[int]()
		s.Push(1)
		s.Push(2)

		top, err := s.Top()
		require.NoError(t, err)
		assert.Equal(t, 2, *top)
		assert.Equal(t, 2, s.Len())
	})

	t.Run("MutableThroughPointer", func(t *testing.T) {
		s := New[int]()
		s.Push(1)

		top, err := s.Top()
		require.NoError(t, err)
		*top = 42

		got, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("EmptyFails", func(t *testing.T) {
		s := New[int]()
		_, err := s.Top()
		assert.ErrorIs(t, err, vector.ErrEmpty)
	})
}

// ============================================================================
// Size and Swap Tests
// ============================================================================

func TestLen(t *testing.T) {
	s := New[int]()
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.IsEmpty())

	s.Push(1)
	s.Push(2)
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.IsEmpty())
}

func TestSwap(t *testing.T) {
	a := New[int]()
	a.Push(1)
	a.Push(2)
	b := New[int]()
	b.Push(9)

	a.Swap(b)

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 2, b.Len())

	got, err := a.Pop()
	require.NoError(t, err)
	assert.Equal(t, 9, got)

	got, err = b.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestZeroValueStack(t *testing.T) {
	var s Stack[int]
	s.Push(5)

	got, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}
