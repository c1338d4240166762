// Package onboarding tracks which steps of a guide each owner has finished.
package onboarding

import "sort"

// Normalize keeps the indices in [0, stepCount), drops duplicates and sorts
// them. completed is true when every step is present and there is at least
// one step. Normalizing its own output returns the same result.
func Normalize(raw []int, stepCount int) ([]int, bool) {
	out := make([]int, 0, len(raw))
	if stepCount <= 0 {
		return out, false
	}

	seen := make(map[int]struct{}, len(raw))
	for _, i := range raw {
		if i < 0 || i >= stepCount {
			continue
		}
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		out = append(out, i)
	}
	sort.Ints(out)
	return out, len(out) == stepCount
}
