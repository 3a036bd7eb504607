// Package twopointers is a catalog of two-pointer solutions over slices and
// strings.
//
// Converging (opposite ends): TwoSumSorted, IsPalindrome, MaxArea, ThreeSum,
// SortedSquares.
//
// Same direction (read/write cursors): RemoveDuplicates, MoveZeroes,
// RemoveElement.
//
// Partition (three cursors): SortColors.
//
// Unless noted, each runs in O(n) time and O(1) extra space. Functions that
// rewrite their input in place say so.
package twopointers
