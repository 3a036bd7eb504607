package arrays

// BuildPrefixSum returns p with p[0] = 0 and p[i+1] = s[0] + … + s[i].
//
// Example: [1 2 3 4 5] → [0 1 3 6 10 15].
func BuildPrefixSum[T Number](s []T) []T {
	prefix := make([]T, len(s)+1)
	for i, v := range s {
		prefix[i+1] = prefix[i] + v
	}

	return prefix
}

// RangeSum returns s[left] + … + s[right] from a BuildPrefixSum result in O(1).
// Indices are not validated; out-of-range input panics like any slice access.
func RangeSum[T Number](prefix []T, left, right int) T {
	return prefix[right+1] - prefix[left]
}

// FindSubarrayWithSum finds the first contiguous run s[start..end] summing to target.
//
// Implementation:
//   - Track the running sum and the first index at which each running sum occurred,
//     seeded with sum 0 at index -1.
//   - At index i, if (sum - target) was seen at j, then s[j+1..i] is a match.
//
// Complexity: O(n) time, O(n) space.
func FindSubarrayWithSum[T Number](s []T, target T) (start, end int, ok bool) {
	firstSeen := map[T]int{0: -1}
	var running T
	for i, v := range s {
		running += v
		if j, found := firstSeen[running-target]; found {
			return j + 1, i, true
		}
		if _, found := firstSeen[running]; !found {
			firstSeen[running] = i
		}
	}

	return 0, 0, false
}
