package vocab

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/samber/lo"
)

// maxSuggestDistance bounds how far a suggestion may be from the query.
const maxSuggestDistance = 3

// Filter returns the words whose text or translation contains query,
// ignoring case. An empty query disables filtering and the input slice is
// returned as is. Order is preserved.
func Filter(words []Word, query string) []Word {
	if query == "" {
		return words
	}
	q := strings.ToLower(query)
	return lo.Filter(words, func(w Word, _ int) bool {
		return matchesSearch(w, q)
	})
}

func matchesSearch(w Word, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(w.Word), lowerQuery) ||
		strings.Contains(strings.ToLower(w.Translation), lowerQuery)
}

// Suggest finds the word closest to query by edit distance, for use when
// Filter came back empty. Ties go to the earlier word.
func Suggest(words []Word, query string) (Word, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Word{}, false
	}
	best, bestDist := -1, maxSuggestDistance+1
	for i, w := range words {
		d := levenshtein.ComputeDistance(q, strings.ToLower(w.Word))
		if t := levenshtein.ComputeDistance(q, strings.ToLower(w.Translation)); t < d {
			d = t
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Word{}, false
	}
	return words[best], true
}
