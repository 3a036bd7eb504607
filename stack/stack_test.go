package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsakit/stack"
)

func TestStack_PushPopOrder(t *testing.T) {
	s := stack.New[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.Equal(t, 3, s.Size())

	for _, want := range []int{3, 2, 1} {
		v, ok := s.Pop()
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
	assert.True(t, s.IsEmpty())
}

func TestStack_EmptyPopPeek(t *testing.T) {
	var s stack.Stack[string]

	v, ok := s.Pop()
	assert.False(t, ok)
	assert.Equal(t, "", v)

	v, ok = s.Peek()
	assert.False(t, ok)
	assert.Equal(t, "", v)
	assert.Equal(t, 0, s.Size())
}

func TestStack_PeekDoesNotRemove(t *testing.T) {
	s := stack.New[int]()
	s.Push(1)
	s.Push(2)

	v, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, s.Size())
}

func TestStack_ClearAndToSlice(t *testing.T) {
	s := stack.New[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)

	snapshot := s.ToSlice()
	assert.Equal(t, []int{1, 2, 3}, snapshot)

	// The snapshot is a copy.
	snapshot[0] = 99
	assert.Equal(t, []int{1, 2, 3}, s.ToSlice())

	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Empty(t, s.ToSlice())
}
