// Package leetcode holds small interview problems, usually in two flavors:
// the straightforward one and the one an interviewer is fishing for.
//
//	Problem                      Functions
//	1   Two Sum                  TwoSum (hash map, O(n)), TwoSumBruteForce (O(n²))
//	9   Palindrome Number        IsPalindromeNumber
//	49  Group Anagrams           GroupAnagrams (sorted key), GroupAnagramsByCount (26-count key)
//	242 Valid Anagram            IsAnagram, IsAnagramSingleMap
//	717 1-bit and 2-bit Chars    IsOneBitCharacter, IsOneBitCharacterByTrailingOnes
//	1437 K Length Apart          KLengthApartIndex, KLengthApartGap
package leetcode
