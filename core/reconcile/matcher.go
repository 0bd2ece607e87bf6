package reconcile

import (
	"math"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"

	"results-manager/core/names"
)

const (
	// DistanceToleranceKm absorbs unit and rounding differences between
	// sources; genuine distance differences exceed it.
	DistanceToleranceKm = 10.0

	// eventNameThreshold is the minimum event name similarity to accept
	// a date/distance-filtered candidate.
	eventNameThreshold = 0.6

	// riderMatchThreshold is the minimum rider name similarity to claim
	// a database result inside a matched event.
	riderMatchThreshold = 0.85
)

// MatchEvents pairs source events with database events, greedy and
// one-to-one in source input order. Candidates must share the exact date
// string and sit within DistanceToleranceKm; among those, the highest
// event-name similarity wins if it reaches the acceptance threshold.
// A claimed database event is never reused, so same-day events cannot
// collapse onto one record.
//
// Unmatched source events come back with a nil DBEvent and an
// event_missing_in_db discrepancy; database events never claimed come
// back as synthetic entries (empty source shell) with an
// event_missing_in_html discrepancy.
func MatchEvents(sourceEvents []ParsedEvent, dbEvents []DBEvent) []EventMatch {
	matches := make([]EventMatch, 0, len(sourceEvents))
	claimed := make([]bool, len(dbEvents))

	for _, src := range sourceEvents {
		bestIdx := -1
		bestScore := 0.0

		for i := range dbEvents {
			if claimed[i] {
				continue
			}
			db := dbEvents[i]
			if db.Date != src.Date {
				continue
			}
			if math.Abs(src.DistanceKm-db.DistanceKm) > DistanceToleranceKm {
				continue
			}
			score := eventNameSimilarity(src.Name, db.Name)
			if score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}

		if bestIdx >= 0 && bestScore >= eventNameThreshold {
			claimed[bestIdx] = true
			db := dbEvents[bestIdx]
			matches = append(matches, EventMatch{
				SourceEvent:     src,
				DBEvent:         &db,
				MatchConfidence: bestScore,
				Discrepancies:   []Discrepancy{},
			})
			continue
		}

		matches = append(matches, EventMatch{
			SourceEvent: src,
			Discrepancies: []Discrepancy{{
				Type:        TypeEventMissingInDB,
				Severity:    SeverityError,
				Description: "event \"" + src.Name + "\" (" + src.Date + ") has no database counterpart",
				SourceValue: src.Name,
			}},
		})
	}

	for i := range dbEvents {
		if claimed[i] {
			continue
		}
		db := dbEvents[i]
		matches = append(matches, EventMatch{
			DBEvent: &db,
			Discrepancies: []Discrepancy{{
				Type:        TypeEventMissingInHTML,
				Severity:    SeverityWarning,
				Description: "database event \"" + db.Name + "\" (" + db.Date + ") does not appear on the source page",
				DBValue:     db.Name,
			}},
		})
	}

	return matches
}

// MatchRiders pairs source riders with database results inside one
// matched event, greedy and one-to-one in source input order. Each source
// rider takes the single best unclaimed candidate at or above the rider
// threshold, or stays unmatched.
func MatchRiders(sourceRiders []ParsedRiderResult, dbResults []DBResult) []RiderMatch {
	matches := make([]RiderMatch, 0, len(sourceRiders))
	remaining := make([]int, len(dbResults))
	for i := range remaining {
		remaining[i] = i
	}

	for _, src := range sourceRiders {
		ranked := names.Rank(src.FirstName, src.LastName, remaining,
			func(i int) string { return dbResults[i].RiderFirstName },
			func(i int) string { return dbResults[i].RiderLastName },
			names.Options{Threshold: riderMatchThreshold, MaxResults: 1},
		)

		if len(ranked) == 0 {
			matches = append(matches, RiderMatch{Source: src, DBIndex: -1})
			continue
		}

		idx := ranked[0].Item
		db := dbResults[idx]
		matches = append(matches, RiderMatch{
			Source:     src,
			DB:         &db,
			DBIndex:    idx,
			Confidence: ranked[0].Score,
		})
		for j, r := range remaining {
			if r == idx {
				remaining = append(remaining[:j], remaining[j+1:]...)
				break
			}
		}
	}

	return matches
}

// eventNameSimilarity scores two event names after stripping everything
// but letters and digits: 1.0 for equality, 0.9 when one name contains
// the other, else edit-distance similarity.
//
// The containment shortcut can overmatch very short names ("200" against
// many routes); kept for compatibility with the legacy validator.
func eventNameSimilarity(a, b string) float64 {
	na := normalizeEventName(a)
	nb := normalizeEventName(b)

	if na == nb {
		return 1.0
	}
	if na != "" && nb != "" && (strings.Contains(na, nb) || strings.Contains(nb, na)) {
		return 0.9
	}

	longest := len([]rune(na))
	if l := len([]rune(nb)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshtein.ComputeDistance(na, nb))/float64(longest)
}

func normalizeEventName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
