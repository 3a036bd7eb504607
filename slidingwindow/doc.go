// Package slidingwindow is a catalog of sliding-window solutions.
//
// Fixed window: MaxSumSubarray, AverageOfSubarrays, MaxSlidingWindow.
//
// Variable window: LengthOfLongestSubstring, LongestSubstringKDistinct,
// MinWindow, TotalFruit.
//
// Pattern matching: FindAnagrams, CheckInclusion.
//
// Every function visits each element a constant number of times, so time is
// O(n). Space is O(k) for the window state (distinct keys or deque indices).
// String functions index by byte, which matches rune semantics for ASCII input.
package slidingwindow
