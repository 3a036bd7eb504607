package arrays

import "golang.org/x/exp/constraints"

// SpiralTraversal walks matrix clockwise from the outer ring inward.
//
// Example:
//
//	1 2 3
//	4 5 6   →  [1 2 3 6 9 8 7 4 5]
//	7 8 9
//
// Rows are assumed to share the length of matrix[0].
// Complexity: O(rows·cols).
func SpiralTraversal[T any](matrix [][]T) []T {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return []T{}
	}

	out := make([]T, 0, len(matrix)*len(matrix[0]))
	top, bottom := 0, len(matrix)-1
	left, right := 0, len(matrix[0])-1

	for top <= bottom && left <= right {
		for c := left; c <= right; c++ {
			out = append(out, matrix[top][c])
		}
		top++

		for r := top; r <= bottom; r++ {
			out = append(out, matrix[r][right])
		}
		right--

		if top <= bottom {
			for c := right; c >= left; c-- {
				out = append(out, matrix[bottom][c])
			}
			bottom--
		}

		if left <= right {
			for r := bottom; r >= top; r-- {
				out = append(out, matrix[r][left])
			}
			left++
		}
	}

	return out
}

// FindInSortedMatrix reports whether target occurs in a matrix whose rows and
// columns are each sorted ascending. The search starts top-right and moves
// left on "too big", down on "too small".
// Complexity: O(rows + cols).
func FindInSortedMatrix[T constraints.Ordered](matrix [][]T, target T) bool {
	if len(matrix) == 0 {
		return false
	}
	row, col := 0, len(matrix[0])-1
	for row < len(matrix) && col >= 0 {
		switch v := matrix[row][col]; {
		case v == target:
			return true
		case v > target:
			col--
		default:
			row++
		}
	}

	return false
}
