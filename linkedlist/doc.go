// Package linkedlist provides a generic singly linked list with O(1) tail
// append and index-addressed access and removal.
//
// What
//
//   - LinkedList[T] keeps an owning chain head → … → tail plus a cached,
//     non-owning pointer to the last node so Append never walks the chain.
//   - GetAt and RemoveAt address elements by zero-based index and report
//     out-of-range indices through the comma-ok idiom instead of panicking.
//   - String renders the list head-to-tail as "v0 -> v1 -> … -> vN".
//
// Invariants
//
//   - Size() == 0  ⇔  head == nil  ⇔  tail == nil.
//   - Following next from head exactly Size() times reaches nil.
//   - tail.next == nil and tail is reached from head in Size()-1 steps.
//   - Every node has exactly one owner: head or a single predecessor.
//
// Only tail insertion is exposed; there is no PushFront or InsertAt.
//
// Complexity
//
//   - Append:   O(1)
//   - GetAt:    O(index)
//   - RemoveAt: O(index)
//   - String:   O(n)
//
// Concurrency
//
//	A LinkedList is not safe for concurrent mutation. Guard it with a
//	sync.Mutex or keep it owned by a single goroutine.
//
// Usage
//
//	l := linkedlist.New[int]()
//	l.Append(1)
//	l.Append(2)
//	l.Append(3)
//	fmt.Println(l)            // 1 -> 2 -> 3
//	v, ok := l.RemoveAt(1)    // 2, true
//	_, ok = l.GetAt(5)        // ok == false
package linkedlist
