package sorting

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// QuickSort returns a sorted copy of s.
//
// Implementation:
//   - Stage 1: len(s) <= 1 → return a copy as-is.
//   - Stage 2: pivot = s[0]; split s[1:] into left (<= pivot) and right (> pivot).
//   - Stage 3: return QuickSort(left) ++ pivot ++ QuickSort(right).
func QuickSort[T constraints.Ordered](s []T) []T {
	if len(s) <= 1 {
		out := make([]T, len(s))
		copy(out, s)
		return out
	}

	pivot := s[0]
	var left, right []T
	for _, v := range s[1:] {
		if v <= pivot {
			left = append(left, v)
		} else {
			right = append(right, v)
		}
	}

	out := make([]T, 0, len(s))
	out = append(out, QuickSort(left)...)
	out = append(out, pivot)
	out = append(out, QuickSort(right)...)

	return out
}

// QuickSortInPlace sorts s in place using compare and returns s.
//
// compare must return a negative number when a < b, zero when equal,
// and a positive number when a > b. A nil compare panics.
func QuickSortInPlace[T any](s []T, compare func(a, b T) int) []T {
	quickSortRange(s, compare, 0, len(s)-1)

	return s
}

// QuickSortOrdered sorts s in place by natural order.
func QuickSortOrdered[T constraints.Ordered](s []T) []T {
	return QuickSortInPlace(s, cmp.Compare[T])
}

func quickSortRange[T any](s []T, compare func(a, b T) int, start, end int) {
	if start >= end {
		return
	}
	p := partition(s, compare, start, end)
	quickSortRange(s, compare, start, p-1)
	quickSortRange(s, compare, p+1, end)
}

// partition places s[end] at its final position and returns that index.
// Everything strictly less than the pivot ends up on its left.
func partition[T any](s []T, compare func(a, b T) int, start, end int) int {
	pivot := s[end]
	i := start - 1
	for j := start; j < end; j++ {
		if compare(s[j], pivot) < 0 {
			i++
			s[i], s[j] = s[j], s[i]
		}
	}
	s[i+1], s[end] = s[end], s[i+1]

	return i + 1
}
