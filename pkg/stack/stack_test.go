package stack

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvalidCapacity(t *testing.T) {
	testcases := []struct {
		name     string
		capacity int
		err      bool
	}{
		{"zero", 0, true},
		{"negative", -1, true},
		{"very negative", -1 << 20, true},
		{"one", 1, false},
		{"many", 1024, false},
	}

	for _, c := range testcases {
		s, err := New(c.capacity)
		if c.err {
			assert.True(t, errors.Is(err, ErrInvalidCapacity), "testcase %s: unexpected error %v", c.name, err)
			assert.Nil(t, s, "testcase %s", c.name)
			continue
		}
		require.NoError(t, err, "testcase %s", c.name)
		assert.Equal(t, c.capacity, s.Cap())
		assert.Equal(t, 0, s.Len())
		assert.True(t, s.IsEmpty())
		assert.Equal(t, []int{}, s.Peek())
	}
}

func TestPushUpToCapacity(t *testing.T) {
	for capacity := 1; capacity <= 16; capacity++ {
		s, err := New(capacity)
		require.NoError(t, err)

		var pushed []int
		for i := 0; i < capacity; i++ {
			v := i*7 - 3
			require.NoError(t, s.Push(v))
			pushed = append(pushed, v)
			assert.Equal(t, len(pushed), s.Len())
			assert.Equal(t, pushed, s.Peek())
		}
		assert.True(t, s.IsFull())
		assert.False(t, s.IsEmpty())
	}
}

func TestPushOverflowLeavesStateUnchanged(t *testing.T) {
	s, err := New(2)
	require.NoError(t, err)
	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))

	err = s.Push(3)
	assert.True(t, errors.Is(err, ErrStackOverflow))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []int{1, 2}, s.Peek())

	// still refuses on retry
	assert.ErrorIs(t, s.Push(4), ErrStackOverflow)
	assert.Equal(t, []int{1, 2}, s.Peek())
}

func TestPopUnderflowLeavesStateUnchanged(t *testing.T) {
	s, err := New(1)
	require.NoError(t, err)

	_, err = s.Pop()
	assert.ErrorIs(t, err, ErrStackUnderflow)
	assert.Equal(t, 0, s.Len())

	_, err = s.Top()
	assert.ErrorIs(t, err, ErrStackUnderflow)

	require.NoError(t, s.Push(5))
	v, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	_, err = s.Pop()
	assert.ErrorIs(t, err, ErrStackUnderflow)
	assert.True(t, s.IsEmpty())
}

func TestPushPopRoundTrip(t *testing.T) {
	s, err := New(4)
	require.NoError(t, err)
	require.NoError(t, s.Push(100))

	for _, v := range []int{0, -1, 42, int(^uint(0) >> 1), -int(^uint(0)>>1) - 1} {
		before := s.Peek()
		require.NoError(t, s.Push(v))
		top, err := s.Top()
		require.NoError(t, err)
		assert.Equal(t, v, top)

		got, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, before, s.Peek())
	}
}

func TestPeekDoesNotAlias(t *testing.T) {
	s, err := New(3)
	require.NoError(t, err)
	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))

	contents := s.Peek()
	contents[0] = 99
	assert.Equal(t, []int{1, 2}, s.Peek())

	// stale slots past size are not reported
	_, err = s.Pop()
	require.NoError(t, err)
	assert.Equal(t, []int{1}, s.Peek())
}
