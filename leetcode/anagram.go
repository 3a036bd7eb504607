package leetcode

import (
	"slices"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// IsAnagram reports whether t is a rearrangement of s (rune-wise).
// One map counts up over s and down over t.
func IsAnagram(s, t string) bool {
	if len(s) != len(t) {
		return false
	}
	count := make(map[rune]int)
	for _, r := range s {
		count[r]++
	}
	for _, r := range t {
		if count[r] == 0 {
			return false
		}
		count[r]--
	}

	return true
}

// IsAnagramSingleMap is IsAnagram with the check moved after the decrement:
// any count dropping below zero proves t has a rune s lacks.
func IsAnagramSingleMap(s, t string) bool {
	if len(s) != len(t) {
		return false
	}
	count := make(map[byte]int)
	for i := 0; i < len(s); i++ {
		count[s[i]]++
	}
	for i := 0; i < len(t); i++ {
		count[t[i]]--
		if count[t[i]] < 0 {
			return false
		}
	}

	return true
}

// GroupAnagrams buckets words by their sorted letters.
//
// Groups appear in the order their first member appears in strs, and members
// keep their input order.
// Complexity: O(n·L log L) for n words of length at most L.
func GroupAnagrams(strs []string) [][]string {
	return groupBy(strs, func(s string) string {
		r := []rune(s)
		slices.Sort(r)
		return string(r)
	})
}

// GroupAnagramsByCount buckets words by their a–z letter counts, rendered as
// "c0#c1#…#c25". Input must be lowercase ASCII letters.
// Complexity: O(n·L).
func GroupAnagramsByCount(strs []string) [][]string {
	return groupBy(strs, func(s string) string {
		var counts [26]int
		for i := 0; i < len(s); i++ {
			counts[s[i]-'a']++
		}
		parts := make([]string, len(counts))
		for i, c := range counts {
			parts[i] = strconv.Itoa(c)
		}
		return strings.Join(parts, "#")
	})
}

// groupBy collects strs under key(s), preserving first-seen key order.
func groupBy(strs []string, key func(string) string) [][]string {
	groups := linkedhashmap.New()
	for _, s := range strs {
		k := key(s)
		members, _ := groups.Get(k)
		if members == nil {
			groups.Put(k, []string{s})
			continue
		}
		groups.Put(k, append(members.([]string), s))
	}

	out := make([][]string, 0, groups.Size())
	for _, members := range groups.Values() {
		out = append(out, members.([]string))
	}

	return out
}
