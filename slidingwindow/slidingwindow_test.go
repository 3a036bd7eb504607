package slidingwindow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/dsakit/slidingwindow"
)

// TestMaxSumSubarray covers the happy path and degenerate window sizes.
func TestMaxSumSubarray(t *testing.T) {
	assert.Equal(t, 9, slidingwindow.MaxSumSubarray([]int{2, 1, 5, 1, 3, 2}, 3))
	assert.Equal(t, 7, slidingwindow.MaxSumSubarray([]int{2, 3, 4, 1, 5}, 2))
	assert.Equal(t, -1, slidingwindow.MaxSumSubarray([]int{-3, -1, -2}, 1))
	assert.Equal(t, 0, slidingwindow.MaxSumSubarray([]int{1, 2}, 3))
	assert.Equal(t, 0, slidingwindow.MaxSumSubarray([]int{1, 2}, 0))
}

func TestAverageOfSubarrays(t *testing.T) {
	got := slidingwindow.AverageOfSubarrays([]float64{1, 3, 2, 6, -1, 4, 1, 8, 2}, 5)
	want := []float64{2.2, 2.8, 2.4, 3.6, 2.8}
	assert.InDeltaSlice(t, want, got, 1e-9)

	assert.Empty(t, slidingwindow.AverageOfSubarrays([]float64{1, 2}, 3))
	assert.Empty(t, slidingwindow.AverageOfSubarrays([]float64{1, 2}, 0))
}

// TestMaxSlidingWindow checks the monotonic deque against known answers.
func TestMaxSlidingWindow(t *testing.T) {
	assert.Equal(t, []int{3, 3, 5, 5, 6, 7},
		slidingwindow.MaxSlidingWindow([]int{1, 3, -1, -3, 5, 3, 6, 7}, 3))
	assert.Equal(t, []int{1}, slidingwindow.MaxSlidingWindow([]int{1}, 1))
	assert.Equal(t, []int{4, 4, 4}, slidingwindow.MaxSlidingWindow([]int{4, 4, 4}, 1))
	assert.Equal(t, []int{9, 8, 7}, slidingwindow.MaxSlidingWindow([]int{9, 8, 7, 6}, 2))
	assert.Empty(t, slidingwindow.MaxSlidingWindow([]int{}, 3))
	assert.Empty(t, slidingwindow.MaxSlidingWindow([]int{1, 2}, 0))
}

func TestLengthOfLongestSubstring(t *testing.T) {
	cases := map[string]int{
		"abcabcbb": 3,
		"bbbbb":    1,
		"pwwkew":   3,
		"":         0,
		"abba":     2,
	}
	for in, want := range cases {
		assert.Equal(t, want, slidingwindow.LengthOfLongestSubstring(in), "input %q", in)
	}
}

func TestLongestSubstringKDistinct(t *testing.T) {
	assert.Equal(t, 4, slidingwindow.LongestSubstringKDistinct("araaci", 2))
	assert.Equal(t, 2, slidingwindow.LongestSubstringKDistinct("araaci", 1))
	assert.Equal(t, 5, slidingwindow.LongestSubstringKDistinct("cbbebi", 3))
	assert.Equal(t, 0, slidingwindow.LongestSubstringKDistinct("abc", 0))
}

func TestMinWindow(t *testing.T) {
	assert.Equal(t, "BANC", slidingwindow.MinWindow("ADOBECODEBANC", "ABC"))
	assert.Equal(t, "a", slidingwindow.MinWindow("a", "a"))
	assert.Equal(t, "", slidingwindow.MinWindow("a", "aa"))
	assert.Equal(t, "", slidingwindow.MinWindow("", "a"))
	assert.Equal(t, "", slidingwindow.MinWindow("abc", ""))
}

func TestTotalFruit(t *testing.T) {
	assert.Equal(t, 4, slidingwindow.TotalFruit([]int{1, 2, 1, 2, 3}))
	assert.Equal(t, 3, slidingwindow.TotalFruit([]int{0, 1, 2, 2}))
	assert.Equal(t, 4, slidingwindow.TotalFruit([]int{1, 2, 3, 2, 2}))
	assert.Equal(t, 0, slidingwindow.TotalFruit([]int{}))
}

// TestFindAnagrams includes overlapping matches.
func TestFindAnagrams(t *testing.T) {
	assert.Equal(t, []int{0, 6}, slidingwindow.FindAnagrams("cbaebabacd", "abc"))
	assert.Equal(t, []int{0, 1, 2}, slidingwindow.FindAnagrams("abab", "ab"))
	assert.Empty(t, slidingwindow.FindAnagrams("a", "ab"))
}

func TestCheckInclusion(t *testing.T) {
	assert.True(t, slidingwindow.CheckInclusion("ab", "eidbaooo"))
	assert.False(t, slidingwindow.CheckInclusion("ab", "eidboaoo"))
	assert.True(t, slidingwindow.CheckInclusion("adc", "dcda"), "match at the very end")
	assert.False(t, slidingwindow.CheckInclusion("abc", "ab"))
}
