package slidingwindow

// LengthOfLongestSubstring returns the length of the longest substring of s
// without a repeated byte.
func LengthOfLongestSubstring(s string) int {
	lastSeen := make(map[byte]int)
	best, start := 0, 0
	for end := 0; end < len(s); end++ {
		if j, ok := lastSeen[s[end]]; ok && j >= start {
			start = j + 1
		}
		lastSeen[s[end]] = end
		best = max(best, end-start+1)
	}

	return best
}

// LongestSubstringKDistinct returns the length of the longest substring of s
// holding at most k distinct bytes.
func LongestSubstringKDistinct(s string, k int) int {
	return longestWithAtMost(len(s), k, func(i int) byte { return s[i] })
}

// TotalFruit returns the longest run of fruits holding at most two kinds.
func TotalFruit(fruits []int) int {
	return longestWithAtMost(len(fruits), 2, func(i int) int { return fruits[i] })
}

// longestWithAtMost grows a window over n items and shrinks it from the left
// whenever it holds more than k distinct keys.
func longestWithAtMost[K comparable](n, k int, key func(int) K) int {
	freq := make(map[K]int)
	best, start := 0, 0
	for end := 0; end < n; end++ {
		freq[key(end)]++
		for len(freq) > k {
			left := key(start)
			freq[left]--
			if freq[left] == 0 {
				delete(freq, left)
			}
			start++
		}
		best = max(best, end-start+1)
	}

	return best
}

// MinWindow returns the shortest substring of s containing every byte of t
// with multiplicity, or "" if none exists. Ties keep the leftmost window.
//
// Implementation:
//   - need counts t; formed counts keys whose window count has reached need.
//   - Expand right; while formed == len(need), record and shrink left.
func MinWindow(s, t string) string {
	if len(s) == 0 || len(t) == 0 {
		return ""
	}
	need := make(map[byte]int)
	for i := 0; i < len(t); i++ {
		need[t[i]]++
	}

	have := make(map[byte]int)
	formed := 0
	bestLen, bestStart := -1, 0
	left := 0
	for right := 0; right < len(s); right++ {
		c := s[right]
		have[c]++
		if n, ok := need[c]; ok && have[c] == n {
			formed++
		}

		for formed == len(need) {
			if bestLen < 0 || right-left+1 < bestLen {
				bestLen, bestStart = right-left+1, left
			}
			lc := s[left]
			have[lc]--
			if n, ok := need[lc]; ok && have[lc] < n {
				formed--
			}
			left++
		}
	}

	if bestLen < 0 {
		return ""
	}

	return s[bestStart : bestStart+bestLen]
}
