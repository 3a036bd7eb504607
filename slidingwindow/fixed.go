package slidingwindow

import (
	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// MaxSumSubarray returns the largest sum of any k consecutive elements.
// It returns 0 when k <= 0 or len(arr) < k.
func MaxSumSubarray(arr []int, k int) int {
	if k <= 0 || len(arr) < k {
		return 0
	}
	window := 0
	for _, v := range arr[:k] {
		window += v
	}
	best := window
	for i := k; i < len(arr); i++ {
		window += arr[i] - arr[i-k]
		best = max(best, window)
	}

	return best
}

// AverageOfSubarrays returns the mean of every window of k consecutive elements.
// It returns an empty slice when k <= 0 or len(arr) < k.
func AverageOfSubarrays(arr []float64, k int) []float64 {
	out := []float64{}
	if k <= 0 {
		return out
	}
	window := 0.0
	for i, v := range arr {
		window += v
		if i >= k-1 {
			out = append(out, window/float64(k))
			window -= arr[i-k+1]
		}
	}

	return out
}

// MaxSlidingWindow returns the maximum of every window of k consecutive elements.
//
// Implementation:
//   - A double-ended queue holds indices whose values are strictly decreasing
//     from front to back.
//   - Stage 1: drop the front index once it falls out of the window.
//   - Stage 2: pop back indices whose values are < arr[i]; they can never be a max.
//   - Stage 3: push i; once the first window is full, arr[front] is its max.
//
// Returns an empty slice when arr is empty or k <= 0.
// Complexity: O(n) time, O(k) space.
func MaxSlidingWindow(arr []int, k int) []int {
	out := []int{}
	if len(arr) == 0 || k <= 0 {
		return out
	}

	deque := doublylinkedlist.New()
	front := func() int {
		v, _ := deque.Get(0)
		return v.(int)
	}
	back := func() int {
		v, _ := deque.Get(deque.Size() - 1)
		return v.(int)
	}

	for i, v := range arr {
		if !deque.Empty() && front() <= i-k {
			deque.Remove(0)
		}
		for !deque.Empty() && arr[back()] < v {
			deque.Remove(deque.Size() - 1)
		}
		deque.Add(i)

		if i >= k-1 {
			out = append(out, arr[front()])
		}
	}

	return out
}
