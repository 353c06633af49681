// Package rewrite applies ordered literal token replacements to text.
//
// Pairs are applied one after another over the cumulative result, so the
// caller owns ordering: when one old token can occur inside another, the
// longer token must come first. Ordering is not checked here.
package rewrite

import "strings"

// Pair replaces every occurrence of Old with New.
type Pair struct {
	Old string
	New string
}

// Apply runs each pair as a global, non-overlapping literal replacement, in
// order. Pairs with an empty Old token are skipped.
func Apply(text string, pairs []Pair) string {
	for _, p := range pairs {
		if p.Old == "" || p.Old == p.New {
			continue
		}
		text = strings.ReplaceAll(text, p.Old, p.New)
	}
	return text
}

// Count reports how many replacements each pair makes when the pairs are
// applied in order to text. The result is indexed like pairs.
func Count(text string, pairs []Pair) []int {
	counts := make([]int, len(pairs))
	for i, p := range pairs {
		if p.Old == "" {
			continue
		}
		counts[i] = strings.Count(text, p.Old)
		if p.Old != p.New {
			text = strings.ReplaceAll(text, p.Old, p.New)
		}
	}
	return counts
}

// Total sums the counts returned by Count.
func Total(text string, pairs []Pair) int {
	n := 0
	for _, c := range Count(text, pairs) {
		n += c
	}
	return n
}
