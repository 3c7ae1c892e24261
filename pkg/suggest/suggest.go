// Package suggest finds the closest valid value for a mistyped one, for
// "did you mean" hints in error messages.
package suggest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// MaxDistance is the largest edit distance still offered as a suggestion.
const MaxDistance = 2

// Closest returns the candidate nearest to input, comparing case
// insensitively. Ties go to the alphabetically first candidate. ok is false
// when no candidate is within MaxDistance.
func Closest(input string, candidates []string) (string, bool) {
	type candidate struct {
		value string
		dist  int
	}

	needle := strings.ToLower(input)
	var found []candidate
	for _, c := range candidates {
		dist := levenshtein.ComputeDistance(needle, strings.ToLower(c))
		if dist <= MaxDistance {
			found = append(found, candidate{value: c, dist: dist})
		}
	}
	if len(found) == 0 {
		return "", false
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].dist == found[j].dist {
			return found[i].value < found[j].value
		}
		return found[i].dist < found[j].dist
	})
	return found[0].value, true
}

// Hint returns " (did you mean X?)" for the closest candidate, or an empty
// string.
func Hint(input string, candidates []string) string {
	if s, ok := Closest(input, candidates); ok {
		return fmt.Sprintf(" (did you mean %q?)", s)
	}
	return ""
}
