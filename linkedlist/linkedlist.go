package linkedlist

import (
	"fmt"
	"iter"
	"strings"
)

// Append adds value at the tail of the list.
//
// Implementation:
//   - Stage 1: Allocate a detached node holding value.
//   - Stage 2: Empty list → node becomes both head and tail.
//     Otherwise link it after the cached tail and move tail forward.
//   - Stage 3: Increment size.
//
// Behavior highlights:
//   - Never fails; size grows by exactly one.
//
// Complexity:
//   - Time O(1), Space O(1).
func (l *LinkedList[T]) Append(value T) {
	n := &Node[T]{Value: value}

	if l.head == nil {
		l.head = n
		l.tail = n
	} else {
		l.tail.next = n
		l.tail = n
	}

	l.size++
}

// GetAt returns the value stored at index.
//
// Implementation:
//   - Stage 1: Reject index < 0 or index >= Size() (no mutation).
//   - Stage 2: Walk index links from head and return the node value.
//
// Returns:
//   - (value, true) when index addresses an element.
//   - (zero, false) when index is out of range.
//
// Complexity:
//   - Time O(index), Space O(1).
func (l *LinkedList[T]) GetAt(index int) (T, bool) {
	n := l.nodeAt(index)
	if n == nil {
		var zero T
		return zero, false
	}

	return n.Value, true
}

// RemoveAt unlinks the node at index and returns its value.
//
// Implementation:
//   - Stage 1: Reject index < 0 or index >= Size(); the list is left untouched.
//   - Stage 2: index == 0 → advance head; a single-node list also drops tail.
//   - Stage 3: otherwise locate the predecessor at index-1 and splice the target
//     out. When the target was the tail, the predecessor becomes the new tail.
//   - Stage 4: Clear the removed node's link and decrement size.
//
// Returns:
//   - (value, true) with the value that was at index before the call.
//   - (zero, false) when index is out of range.
//
// Complexity:
//   - Time O(index), Space O(1).
func (l *LinkedList[T]) RemoveAt(index int) (T, bool) {
	var zero T
	if index < 0 || index >= l.size {
		return zero, false
	}

	var target *Node[T]
	if index == 0 {
		target = l.head
		l.head = target.next
		if l.head == nil {
			l.tail = nil
		}
	} else {
		prev := l.nodeAt(index - 1)
		target = prev.next
		prev.next = target.next
		if target == l.tail {
			l.tail = prev
		}
	}

	// Detach so the removed node keeps nothing of the chain alive.
	target.next = nil
	l.size--

	return target.Value, true
}

// Size reports the number of elements.
func (l *LinkedList[T]) Size() int { return l.size }

// IsEmpty reports whether the list holds no elements.
func (l *LinkedList[T]) IsEmpty() bool { return l.size == 0 }

// Head returns the first node, or nil for an empty list.
func (l *LinkedList[T]) Head() *Node[T] { return l.head }

// Clear drops every node and resets the list to Empty.
//
// Links are cut one by one so that nodes still referenced from outside
// (via Head/Next) do not pin the rest of the former chain.
// Complexity: O(n)
func (l *LinkedList[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}
	l.head, l.tail, l.size = nil, nil, 0
}

// All yields values head to tail.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Values returns a copy of the stored values head to tail.
// Complexity: O(n)
func (l *LinkedList[T]) Values() []T {
	out := make([]T, 0, l.size)
	for v := range l.All() {
		out = append(out, v)
	}

	return out
}

// String renders the list head to tail joined by Separator.
// An empty list renders as "".
// Complexity: O(n)
func (l *LinkedList[T]) String() string {
	var sb strings.Builder
	for n := l.head; n != nil; n = n.next {
		fmt.Fprint(&sb, n.Value)
		if n.next != nil {
			sb.WriteString(Separator)
		}
	}

	return sb.String()
}

// nodeAt returns the node at index, or nil when index is out of range.
func (l *LinkedList[T]) nodeAt(index int) *Node[T] {
	if index < 0 || index >= l.size {
		return nil
	}
	n := l.head
	for i := 0; i < index; i++ {
		n = n.next
	}

	return n
}
