package leetcode

import "strconv"

// IsPalindromeNumber reports whether x reads the same forwards and backwards
// in base 10. Negative numbers never do.
func IsPalindromeNumber(x int) bool {
	if x < 0 {
		return false
	}
	digits := strconv.Itoa(x)
	for l, r := 0, len(digits)-1; l < r; l, r = l+1, r-1 {
		if digits[l] != digits[r] {
			return false
		}
	}

	return true
}
