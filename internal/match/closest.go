package match

import (
	"slices"
)

// maxSuggestions caps the number of names returned by Closest.
const maxSuggestions = 3

// Closest returns the candidates that look like a misspelling of name, best
// first. Names are compared after folding; a candidate qualifies when its
// distance is at most a third of the longer name, and at least one.
func Closest(name string, candidates []string) []string {
	type scored struct {
		name string
		dist int
	}

	folded := Fold(name)

	var found []scored

	for _, c := range candidates {
		if c == name || slices.ContainsFunc(found, func(s scored) bool { return s.name == c }) {
			continue
		}

		fc := Fold(c)
		d := Distance(folded, fc)

		if d <= max(1, max(len(folded), len(fc))/3) {
			found = append(found, scored{name: c, dist: d})
		}
	}

	slices.SortStableFunc(found, func(a, b scored) int {
		return a.dist - b.dist
	})

	out := make([]string, 0, min(len(found), maxSuggestions))
	for _, s := range found[:min(len(found), maxSuggestions)] {
		out = append(out, s.name)
	}

	return out
}
