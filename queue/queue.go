// Package queue provides a generic FIFO queue backed by linkedlist.LinkedList.
//
// Enqueue appends at the list tail and Dequeue removes index 0, so both run
// in O(1) without the element shifting a slice-backed queue would need.
package queue

import "github.com/katalvlaran/dsakit/linkedlist"

// Queue is a first-in, first-out container. The zero value is ready to use.
type Queue[T any] struct {
	list linkedlist.LinkedList[T]
}

// New returns an empty queue.
func New[T any]() *Queue[T] { return &Queue[T]{} }

// Enqueue adds value at the rear.
func (q *Queue[T]) Enqueue(value T) { q.list.Append(value) }

// Dequeue removes and returns the front value; (zero, false) when empty.
func (q *Queue[T]) Dequeue() (T, bool) { return q.list.RemoveAt(0) }

// Peek returns the front value without removing it.
func (q *Queue[T]) Peek() (T, bool) { return q.list.GetAt(0) }

// IsEmpty reports whether the queue holds nothing.
func (q *Queue[T]) IsEmpty() bool { return q.list.IsEmpty() }

// Size returns the number of queued values.
func (q *Queue[T]) Size() int { return q.list.Size() }

// Clear removes every value.
func (q *Queue[T]) Clear() { q.list.Clear() }

// ToSlice returns a copy ordered front to rear.
func (q *Queue[T]) ToSlice() []T { return q.list.Values() }

// String renders the queue front to rear, e.g. "1 -> 2 -> 3".
func (q *Queue[T]) String() string { return q.list.String() }
