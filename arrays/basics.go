package arrays

import (
	"golang.org/x/exp/constraints"
)

// Number is the element constraint for arithmetic helpers.
type Number interface {
	constraints.Integer | constraints.Float
}

// Filled returns a slice of n copies of value. n <= 0 yields an empty slice.
func Filled[T any](n int, value T) []T {
	if n <= 0 {
		return []T{}
	}
	out := make([]T, n)
	for i := range out {
		out[i] = value
	}

	return out
}

// Chars splits s into its runes rendered as one-character strings.
func Chars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}

	return out
}

// Get returns s[index], or (zero, false) when index is out of range.
// Complexity: O(1)
func Get[T any](s []T, index int) (T, bool) {
	if index < 0 || index >= len(s) {
		var zero T
		return zero, false
	}

	return s[index], true
}

// IndexOf returns the first index of value in s, or -1.
// Complexity: O(n)
func IndexOf[T comparable](s []T, value T) int {
	for i, v := range s {
		if v == value {
			return i
		}
	}

	return -1
}

// LinearSearch is IndexOf spelled as the classic algorithm name.
func LinearSearch[T comparable](s []T, target T) int { return IndexOf(s, target) }

// Contains reports whether value occurs in s.
func Contains[T comparable](s []T, value T) bool { return IndexOf(s, value) >= 0 }

// InsertAt inserts value before position index (index == len(s) appends).
//
// Errors:
//   - ErrIndexOutOfRange if index < 0 or index > len(s).
//
// Complexity: O(n) for the shift.
func InsertAt[T any](s []T, index int, value T) ([]T, error) {
	if index < 0 || index > len(s) {
		return s, ErrIndexOutOfRange
	}
	var zero T
	s = append(s, zero)
	copy(s[index+1:], s[index:])
	s[index] = value

	return s, nil
}

// DeleteAt removes s[index] and shifts the tail left.
//
// Errors:
//   - ErrIndexOutOfRange if index < 0 or index >= len(s).
//
// Complexity: O(n) for the shift.
func DeleteAt[T any](s []T, index int) ([]T, error) {
	if index < 0 || index >= len(s) {
		return s, ErrIndexOutOfRange
	}
	copy(s[index:], s[index+1:])
	var zero T
	s[len(s)-1] = zero

	return s[:len(s)-1], nil
}

// RemoveLast pops the final element.
func RemoveLast[T any](s []T) ([]T, T, bool) {
	var zero T
	if len(s) == 0 {
		return s, zero, false
	}
	last := s[len(s)-1]

	return s[:len(s)-1], last, true
}

// Sum adds every element; an empty slice sums to 0.
func Sum[T Number](s []T) T {
	var total T
	for _, v := range s {
		total += v
	}

	return total
}

// Max returns the largest element.
//
// Errors:
//   - ErrEmpty if s has no elements.
func Max[T constraints.Ordered](s []T) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	best := s[0]
	for _, v := range s[1:] {
		if v > best {
			best = v
		}
	}

	return best, nil
}

// Min returns the smallest element.
//
// Errors:
//   - ErrEmpty if s has no elements.
func Min[T constraints.Ordered](s []T) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	best := s[0]
	for _, v := range s[1:] {
		if v < best {
			best = v
		}
	}

	return best, nil
}

// Reverse reverses s in place and returns it.
func Reverse[T any](s []T) []T {
	reverseRange(s, 0, len(s)-1)

	return s
}

// RotateRight shifts every element k positions to the right in place,
// wrapping the overflow to the front.
//
// Implementation (three reversals):
//   - Stage 1: k = k mod n; k == 0 → nothing to do.
//   - Stage 2: reverse all, then reverse [0,k) and [k,n).
//
// Example: [1 2 3 4 5], k=2 → [4 5 1 2 3].
// Complexity: O(n) time, O(1) space.
func RotateRight[T any](s []T, k int) []T {
	n := len(s)
	if n == 0 {
		return s
	}
	k %= n
	if k < 0 {
		k += n
	}
	if k == 0 {
		return s
	}
	reverseRange(s, 0, n-1)
	reverseRange(s, 0, k-1)
	reverseRange(s, k, n-1)

	return s
}

func reverseRange[T any](s []T, lo, hi int) {
	for lo < hi {
		s[lo], s[hi] = s[hi], s[lo]
		lo++
		hi--
	}
}

// Unique returns the distinct elements of s in first-occurrence order.
// Complexity: O(n) time, O(n) space.
func Unique[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// IsSorted reports whether s is in non-decreasing order.
func IsSorted[T constraints.Ordered](s []T) bool {
	for i := 0; i+1 < len(s); i++ {
		if s[i] > s[i+1] {
			return false
		}
	}

	return true
}
