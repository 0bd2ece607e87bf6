package reconcile

import (
	"sort"
	"strings"
)

// Compare matches source events against database events, then classifies
// every rider-level difference inside the matched pairs. Entries come
// back ordered ascending by date (ISO dates compare as strings), with
// synthetic database-only entries sorted by their database date.
func Compare(sourceEvents []ParsedEvent, dbEvents []DBEvent) []EventMatch {
	matches := MatchEvents(sourceEvents, dbEvents)

	for i := range matches {
		m := &matches[i]
		if m.DBEvent == nil {
			continue
		}
		if m.SourceEvent.Date == "" && m.SourceEvent.Name == "" {
			// Synthetic entry for a database event absent from the page;
			// there are no source riders to compare.
			continue
		}
		m.Discrepancies = append(m.Discrepancies, compareRiders(m.SourceEvent.Riders, m.DBEvent.Results)...)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matchDate(matches[i]) < matchDate(matches[j])
	})

	return matches
}

func matchDate(m EventMatch) string {
	if m.SourceEvent.Date != "" {
		return m.SourceEvent.Date
	}
	if m.DBEvent != nil {
		return m.DBEvent.Date
	}
	return ""
}

// compareRiders runs the rider matching pass for one event and turns the
// outcome into discrepancies: absences, value mismatches on matched
// pairs, and an advisory record for every fuzzy pairing.
func compareRiders(sourceRiders []ParsedRiderResult, dbResults []DBResult) []Discrepancy {
	riderMatches := MatchRiders(sourceRiders, dbResults)
	claimed := make([]bool, len(dbResults))

	var discrepancies []Discrepancy
	for _, rm := range riderMatches {
		if rm.DB == nil {
			discrepancies = append(discrepancies, Discrepancy{
				Type:        TypeMissingInDB,
				Severity:    SeverityError,
				Description: "rider \"" + rm.Source.FullName + "\" has no database result",
				RiderName:   rm.Source.FullName,
			})
			continue
		}
		claimed[rm.DBIndex] = true
		discrepancies = append(discrepancies, compareMatchedRider(rm)...)
	}

	for i, db := range dbResults {
		if claimed[i] {
			continue
		}
		dbName := db.RiderFirstName + " " + db.RiderLastName
		discrepancies = append(discrepancies, Discrepancy{
			Type:        TypeMissingInHTML,
			Severity:    SeverityWarning,
			Description: "database result for \"" + dbName + "\" does not appear on the source page",
			RiderName:   dbName,
		})
	}

	return discrepancies
}

// compareMatchedRider classifies value differences for one accepted
// rider pairing.
func compareMatchedRider(rm RiderMatch) []Discrepancy {
	var discrepancies []Discrepancy
	src := rm.Source
	db := rm.DB

	if !timesMatch(src.Time, db.Time) {
		discrepancies = append(discrepancies, Discrepancy{
			Type:        TypeTimeMismatch,
			Severity:    SeverityWarning,
			Description: "finish time differs for \"" + src.FullName + "\"",
			SourceValue: src.Time,
			DBValue:     db.Time,
			RiderName:   src.FullName,
		})
	}

	if !statusesMatch(src.Status, src.Time, db.Status) {
		discrepancies = append(discrepancies, Discrepancy{
			Type:        TypeStatusMismatch,
			Severity:    SeverityWarning,
			Description: "result status differs for \"" + src.FullName + "\"",
			SourceValue: src.Status,
			DBValue:     db.Status,
			RiderName:   src.FullName,
		})
	}

	if rm.Confidence < 1.0 {
		dbName := db.RiderFirstName + " " + db.RiderLastName
		discrepancies = append(discrepancies, Discrepancy{
			Type:        TypeNameVariation,
			Severity:    SeverityInfo,
			Description: "accepted fuzzy name match \"" + src.FullName + "\" ~ \"" + dbName + "\"",
			SourceValue: src.FullName,
			DBValue:     dbName,
			RiderName:   src.FullName,
		})
	}

	return discrepancies
}

// timesMatch compares two finish times after normalization. Both absent
// is a match; one absent is not.
func timesMatch(sourceTime, dbTime string) bool {
	st := NormalizeTime(sourceTime)
	dt := NormalizeTime(dbTime)
	return st == dt
}

// statusesMatch compares the source status against the stored status,
// case-insensitively over the three recognized values. A source row with
// no explicit status but a finish time implies finished.
func statusesMatch(sourceStatus, sourceTime, dbStatus string) bool {
	ss := strings.ToLower(strings.TrimSpace(sourceStatus))
	ds := strings.ToLower(strings.TrimSpace(dbStatus))

	if ss == "" {
		if sourceTime != "" {
			ss = StatusFinished
		} else {
			// No status and no time on the page; nothing to contradict.
			return true
		}
	}
	return ss == ds
}

// NormalizeTime brings a finish time to canonical H:MM form: trimmed,
// leading zero dropped from the hour. Empty input stays empty.
func NormalizeTime(t string) string {
	t = strings.TrimSpace(t)
	if t == "" {
		return ""
	}
	if len(t) > 1 && t[0] == '0' && t[1] != ':' {
		t = t[1:]
	}
	return t
}
