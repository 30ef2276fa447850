// Package textmatch provides the normalization and similarity scoring used by
// merchant-to-goal resolution and assistant message preprocessing.
package textmatch

import "strings"

// Normalize lowercases, trims, and collapses every run of non-alphanumeric
// characters into a single space.
func Normalize(input string) string {
	var b strings.Builder
	b.Grow(len(input))

	lastWasSpace := false
	for _, r := range strings.ToLower(input) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlnum {
			b.WriteRune(r)
			lastWasSpace = false
			continue
		}
		if !lastWasSpace {
			b.WriteByte(' ')
			lastWasSpace = true
		}
	}

	return strings.TrimSpace(b.String())
}

// SimilarityPercent scores two strings from 0 to 100 by recursively matching
// their longest common substrings: matched characters count double against the
// combined length, so identical strings score 100 and disjoint strings 0.
func SimilarityPercent(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	matched := commonChars(a, b)
	return float64(matched*2) * 100 / float64(len(a)+len(b))
}

func commonChars(a, b string) int {
	posA, posB, max := longestCommonSubstring(a, b)
	if max == 0 {
		return 0
	}

	sum := max
	sum += commonChars(a[:posA], b[:posB])
	sum += commonChars(a[posA+max:], b[posB+max:])
	return sum
}

func longestCommonSubstring(a, b string) (posA, posB, max int) {
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			length := 0
			for i+length < len(a) && j+length < len(b) && a[i+length] == b[j+length] {
				length++
			}
			if length > max {
				posA, posB, max = i, j, length
			}
		}
	}
	return posA, posB, max
}
