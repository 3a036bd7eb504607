package linkedlist

// Separator is placed between consecutive values by String.
const Separator = " -> "

// Node is one link of the chain.
//
// A Node is owned by exactly one of: the list head, or its predecessor's next.
type Node[T any] struct {
	// Value is the stored element.
	Value T

	// next is nil for the last node.
	next *Node[T]
}

// Next returns the following node, or nil at the end of the chain.
func (n *Node[T]) Next() *Node[T] { return n.next }

// LinkedList is a singly linked list of T.
//
// The zero value is an empty list ready to use.
type LinkedList[T any] struct {
	head *Node[T] // owning reference to the first node
	tail *Node[T] // positional cache of the last node; never owns
	size int      // number of nodes reachable from head
}

// New returns an empty list.
// Complexity: O(1)
func New[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// From returns a list holding values in order.
// Complexity: O(len(values))
func From[T any](values ...T) *LinkedList[T] {
	l := New[T]()
	for _, v := range values {
		l.Append(v)
	}

	return l
}
