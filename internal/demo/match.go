package demo

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// MatchOption resolves picker type-ahead input to an option. A prefix of a
// label or value wins outright; otherwise the closest label or value by edit
// distance is taken if it is within half the longer string's length.
func MatchOption(query string) (Option, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Option{}, false
	}
	for _, o := range options {
		if strings.HasPrefix(strings.ToLower(o.Label), q) || strings.HasPrefix(strings.ToLower(o.Value), q) {
			return o, true
		}
	}

	best, bestScore := -1, 1.0
	for i, o := range options {
		for _, cand := range []string{strings.ToLower(o.Label), strings.ToLower(o.Value)} {
			dist := levenshtein.ComputeDistance(q, cand)
			score := float64(dist) / float64(max(len(q), len(cand)))
			if score < bestScore {
				best, bestScore = i, score
			}
		}
	}
	if best < 0 || bestScore >= 0.5 {
		return Option{}, false
	}
	return options[best], true
}
