package names

import "sort"

// Default ranking options, used when the corresponding Options field is
// left at its zero value.
const (
	DefaultThreshold  = 0.5
	DefaultMaxResults = 10
)

// Options controls threshold filtering and result truncation for Rank.
type Options struct {
	// Threshold is the minimum similarity score to keep a candidate.
	// Zero means DefaultThreshold.
	Threshold float64

	// MaxResults caps the number of returned candidates.
	// Zero means DefaultMaxResults.
	MaxResults int
}

// Scored pairs a candidate with its similarity score.
type Scored[T any] struct {
	// Item is the candidate record.
	Item T

	// Score is the similarity in [0,1]; never below the rank threshold.
	Score float64
}

// Rank scores every candidate against the query name via Similarity,
// drops candidates below the threshold, and returns the rest sorted
// best-first, capped at MaxResults. Ties keep their original relative
// order. Pure, no side effects.
func Rank[T any](queryFirst, queryLast string, candidates []T, getFirst, getLast func(T) string, opts Options) []Scored[T] {
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	maxResults := opts.MaxResults
	if maxResults == 0 {
		maxResults = DefaultMaxResults
	}

	scored := make([]Scored[T], 0, len(candidates))
	for _, c := range candidates {
		score := Similarity(queryFirst, queryLast, getFirst(c), getLast(c))
		if score < threshold {
			continue
		}
		scored = append(scored, Scored[T]{Item: c, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > maxResults {
		scored = scored[:maxResults]
	}
	return scored
}
