// Package stack provides a generic LIFO stack backed by a slice.
//
// Push, Pop and Peek are O(1) (Push amortized). Pop and Peek on an empty
// stack return the zero value and false.
package stack

// Stack is a last-in, first-out container. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

// New returns an empty stack.
func New[T any]() *Stack[T] { return &Stack[T]{} }

// Push places value on top.
func (s *Stack[T]) Push(value T) {
	s.items = append(s.items, value)
}

// Pop removes and returns the top value.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	last := len(s.items) - 1
	v := s.items[last]
	s.items[last] = zero // release the reference held by the backing array
	s.items = s.items[:last]

	return v, true
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	return s.items[len(s.items)-1], true
}

// IsEmpty reports whether the stack holds nothing.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Size returns the number of stored values.
func (s *Stack[T]) Size() int { return len(s.items) }

// Clear removes every value.
func (s *Stack[T]) Clear() { s.items = nil }

// ToSlice returns a copy ordered bottom to top.
func (s *Stack[T]) ToSlice() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)

	return out
}
