package leetcode

// IsOneBitCharacter reports whether the final 0 of bits decodes as a one-bit
// character, where 0 is one bit and 10/11 are two bits.
//
// Walk greedily: a 1 consumes two bits, a 0 consumes one. Landing exactly on
// the last index means nothing swallowed it.
func IsOneBitCharacter(bits []int) bool {
	i := 0
	for i < len(bits)-1 {
		if bits[i] == 1 {
			i += 2
		} else {
			i++
		}
	}

	return i == len(bits)-1
}

// IsOneBitCharacterByTrailingOnes counts the run of 1s just before the final
// 0: an even run leaves the 0 standing alone. Empty input → false.
func IsOneBitCharacterByTrailingOnes(bits []int) bool {
	if len(bits) == 0 {
		return false
	}
	ones := 0
	for i := len(bits) - 2; i >= 0 && bits[i] == 1; i-- {
		ones++
	}

	return ones%2 == 0
}

// KLengthApartIndex reports whether every pair of 1s in nums has at least k
// zeros between them, tracking the index of the previous 1.
func KLengthApartIndex(nums []int, k int) bool {
	last := -1
	for i, v := range nums {
		if v != 1 {
			continue
		}
		if last != -1 && i-last-1 < k {
			return false
		}
		last = i
	}

	return true
}

// KLengthApartGap is KLengthApartIndex counting the running gap instead of
// remembering indices. The gap starts at k so the first 1 always passes.
func KLengthApartGap(nums []int, k int) bool {
	gap := k
	for _, v := range nums {
		if v == 1 {
			if gap < k {
				return false
			}
			gap = 0
		} else {
			gap++
		}
	}

	return true
}
