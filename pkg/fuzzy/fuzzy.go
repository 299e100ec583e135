// ABOUTME: Thin wrapper over sahilm/fuzzy for fuzzy key-name lookup
// ABOUTME: Provides a simplified API for filtering and ranking matches

package fuzzy

import "github.com/sahilm/fuzzy"

// Match represents a single fuzzy match result.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
	Score          int
}

// Find performs fuzzy matching of pattern against the given items.
// Returns matches sorted by score (best first).
func Find(pattern string, items []string) []Match {
	results := fuzzy.Find(pattern, items)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Str:            r.Str,
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return matches
}

// Best returns the top-ranked match for pattern, or false when nothing
// matches.
func Best(pattern string, items []string) (Match, bool) {
	matches := Find(pattern, items)
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[0], true
}
