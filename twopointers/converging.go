package twopointers

import (
	"slices"
	"unicode"

	"golang.org/x/exp/constraints"
)

// TwoSumSorted finds i < j with nums[i]+nums[j] == target in an ascending slice.
func TwoSumSorted[T constraints.Integer | constraints.Float](nums []T, target T) (i, j int, ok bool) {
	left, right := 0, len(nums)-1
	for left < right {
		switch sum := nums[left] + nums[right]; {
		case sum == target:
			return left, right, true
		case sum < target:
			left++
		default:
			right--
		}
	}

	return 0, 0, false
}

// IsPalindrome reports whether s reads the same both ways once non-alphanumeric
// runes are dropped and letters are folded to lower case.
func IsPalindrome(s string) bool {
	clean := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			clean = append(clean, unicode.ToLower(r))
		}
	}
	for left, right := 0, len(clean)-1; left < right; left, right = left+1, right-1 {
		if clean[left] != clean[right] {
			return false
		}
	}

	return true
}

// MaxArea returns the most water two lines can hold:
// max over i<j of min(h[i], h[j]) * (j - i).
//
// The shorter line is always the one moved inward; moving the taller one can
// only shrink width without raising the bound.
func MaxArea(heights []int) int {
	left, right := 0, len(heights)-1
	best := 0
	for left < right {
		area := min(heights[left], heights[right]) * (right - left)
		best = max(best, area)
		if heights[left] < heights[right] {
			left++
		} else {
			right--
		}
	}

	return best
}

// ThreeSum returns every unique triplet summing to zero, each triplet ascending
// and the list ordered by first element then second. The input is not modified.
// Complexity: O(n²) time, O(n) space for the sorted copy.
func ThreeSum(nums []int) [][]int {
	sorted := slices.Clone(nums)
	slices.Sort(sorted)

	result := [][]int{}
	for i := 0; i+2 < len(sorted); i++ {
		if i > 0 && sorted[i] == sorted[i-1] {
			continue
		}
		left, right := i+1, len(sorted)-1
		for left < right {
			sum := sorted[i] + sorted[left] + sorted[right]
			switch {
			case sum == 0:
				result = append(result, []int{sorted[i], sorted[left], sorted[right]})
				for left < right && sorted[left] == sorted[left+1] {
					left++
				}
				for left < right && sorted[right] == sorted[right-1] {
					right--
				}
				left++
				right--
			case sum < 0:
				left++
			default:
				right--
			}
		}
	}

	return result
}

// SortedSquares squares an ascending slice and returns the squares ascending.
// Largest squares sit at either end, so the output is filled back to front.
func SortedSquares(nums []int) []int {
	out := make([]int, len(nums))
	left, right := 0, len(nums)-1
	for w := len(nums) - 1; w >= 0; w-- {
		ls, rs := nums[left]*nums[left], nums[right]*nums[right]
		if ls > rs {
			out[w] = ls
			left++
		} else {
			out[w] = rs
			right--
		}
	}

	return out
}
