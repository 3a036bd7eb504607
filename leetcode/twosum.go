package leetcode

// TwoSum returns indices i < j with nums[i]+nums[j] == target.
//
// Implementation:
//   - Walk once, remembering value → index.
//   - For each nums[j], look up target - nums[j] among the values already seen.
//
// Returns ok == false when no pair exists.
// Complexity: O(n) time, O(n) space.
func TwoSum(nums []int, target int) (i, j int, ok bool) {
	seen := make(map[int]int, len(nums))
	for j, v := range nums {
		if i, found := seen[target-v]; found {
			return i, j, true
		}
		seen[v] = j
	}

	return 0, 0, false
}

// TwoSumBruteForce checks every pair in index order.
// Complexity: O(n²) time, O(1) space.
func TwoSumBruteForce(nums []int, target int) (i, j int, ok bool) {
	for i := 0; i < len(nums); i++ {
		for j := i + 1; j < len(nums); j++ {
			if nums[i]+nums[j] == target {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}
