package slidingwindow

import "maps"

// FindAnagrams returns every start index i such that s[i:i+len(p)] is an
// anagram of p, ascending.
func FindAnagrams(s, p string) []int {
	out := []int{}
	if len(p) == 0 || len(s) < len(p) {
		return out
	}

	want := make(map[byte]int)
	for i := 0; i < len(p); i++ {
		want[p[i]]++
	}

	window := make(map[byte]int)
	size := len(p)
	for i := 0; i < len(s); i++ {
		window[s[i]]++
		if i >= size {
			left := s[i-size]
			window[left]--
			if window[left] == 0 {
				delete(window, left)
			}
		}
		if i >= size-1 && maps.Equal(want, window) {
			out = append(out, i-size+1)
		}
	}

	return out
}

// CheckInclusion reports whether s2 contains a permutation of s1.
// Both strings must consist of lowercase ASCII letters.
func CheckInclusion(s1, s2 string) bool {
	if len(s1) > len(s2) {
		return false
	}

	var want, window [26]int
	for i := 0; i < len(s1); i++ {
		want[s1[i]-'a']++
		window[s2[i]-'a']++
	}
	for i := len(s1); i < len(s2); i++ {
		if want == window {
			return true
		}
		window[s2[i]-'a']++
		window[s2[i-len(s1)]-'a']--
	}

	return want == window
}
