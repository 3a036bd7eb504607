package twopointers

// RemoveDuplicates compacts an ascending slice in place so its first k
// elements are the distinct values, and returns k.
func RemoveDuplicates[T comparable](nums []T) int {
	if len(nums) == 0 {
		return 0
	}
	w := 0
	for r := 1; r < len(nums); r++ {
		if nums[r] != nums[w] {
			w++
			nums[w] = nums[r]
		}
	}

	return w + 1
}

// MoveZeroes shifts every zero to the end in place, keeping the relative
// order of the non-zero elements.
func MoveZeroes(nums []int) {
	w := 0
	for _, v := range nums {
		if v != 0 {
			nums[w] = v
			w++
		}
	}
	for ; w < len(nums); w++ {
		nums[w] = 0
	}
}

// RemoveElement compacts nums in place dropping every val and returns the
// number of kept elements, which occupy nums[:k] in original order.
func RemoveElement[T comparable](nums []T, val T) int {
	w := 0
	for _, v := range nums {
		if v != val {
			nums[w] = v
			w++
		}
	}

	return w
}

// SortColors sorts a slice of 0s, 1s and 2s in one pass (Dutch national flag).
//
// Invariant: nums[:low] are 0, nums[low:mid] are 1, nums[high+1:] are 2.
// Values outside {0,1,2} are treated as 2.
func SortColors(nums []int) {
	low, mid, high := 0, 0, len(nums)-1
	for mid <= high {
		switch nums[mid] {
		case 0:
			nums[low], nums[mid] = nums[mid], nums[low]
			low++
			mid++
		case 1:
			mid++
		default:
			nums[mid], nums[high] = nums[high], nums[mid]
			high--
		}
	}
}
