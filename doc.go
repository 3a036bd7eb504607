// Package dsakit is a collection of classic data structures and
// interview-style algorithms written as small, independent Go packages.
//
// What is inside?
//
//	linkedlist/    generic singly linked list: O(1) append, index access & removal
//	stack/         slice-backed LIFO
//	queue/         FIFO backed by linkedlist (O(1) enqueue & dequeue)
//	arrays/        slice helpers, prefix sums, matrix traversal
//	sorting/       quicksort, functional and in-place
//	twopointers/   converging and read/write pointer patterns
//	slidingwindow/ fixed and variable window patterns
//	leetcode/      two-sum, anagrams, one-bit characters and friends
//	cmd/dsakit/    demo CLI driving the packages above
//
// Conventions:
//
//   - Absence is reported with the comma-ok idiom: (value, false).
//   - Precondition violations that callers can reasonably trigger return
//     package-level sentinel errors, checked with errors.Is.
//   - Library packages never log, never panic on bad indices and are not
//     safe for concurrent mutation; synchronize externally.
//
// Quick start:
//
//	l := linkedlist.New[int]()
//	l.Append(1)
//	l.Append(2)
//	l.Append(3)
//	l.RemoveAt(1)
//	fmt.Println(l) // 1 -> 3
package dsakit
