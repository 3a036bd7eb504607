package linkedlist

// Tail exposes the cached tail pointer to linkedlist_test.
func (l *LinkedList[T]) Tail() *Node[T] { return l.tail }
