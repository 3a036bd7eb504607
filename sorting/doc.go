// Package sorting implements quicksort in two flavors.
//
//   - QuickSort: functional form. Picks the first element as pivot, partitions
//     the rest into "<= pivot" and "> pivot", recurses, and returns a fresh
//     slice. The input is never modified.
//   - QuickSortInPlace: Lomuto partition around the last element, driven by a
//     caller-supplied three-way comparator. Sorts s in place and returns it.
//
// Complexity
//
//   - Time:   O(n log n) average, O(n²) worst case (already sorted input).
//   - Memory: O(n) extra for QuickSort, O(log n) stack for QuickSortInPlace
//     on average.
//
// Neither variant is stable.
package sorting
