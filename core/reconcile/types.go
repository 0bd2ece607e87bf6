package reconcile

// ParsedRiderResult is one rider's result row extracted from a legacy
// HTML page. The extractor guarantees the shape; fields may still be
// empty when the page omitted them.
type ParsedRiderResult struct {
	// FullName is the rider name as printed on the page.
	FullName string `json:"full_name"`

	// FirstName is the extractor's split of the given name.
	FirstName string `json:"first_name"`

	// LastName is the extractor's split of the family name.
	LastName string `json:"last_name"`

	// Time is the finish time in H:MM form, empty when not finished
	// or not printed.
	Time string `json:"time,omitempty"`

	// Status is one of StatusFinished, StatusDNF, StatusDNS, or empty
	// when the page carried no explicit status.
	Status string `json:"status,omitempty"`
}

// Source rider statuses recognized by the comparator.
const (
	StatusFinished = "finished"
	StatusDNF      = "dnf"
	StatusDNS      = "dns"
)

// ParsedEvent is one event's worth of data extracted from a legacy page.
type ParsedEvent struct {
	// Date is the event date in ISO form (YYYY-MM-DD).
	Date string `json:"date"`

	// Name is the event name as printed on the page.
	Name string `json:"name"`

	// DistanceKm is the route distance in kilometres.
	DistanceKm float64 `json:"distance_km"`

	// Riders are the result rows listed for this event.
	Riders []ParsedRiderResult `json:"riders"`
}

// DBResult is a canonical result row from the system of record, with the
// rider name joined in.
type DBResult struct {
	// RiderID is the canonical rider identifier.
	RiderID uint `json:"rider_id"`

	// RiderFirstName is the rider's given name on record.
	RiderFirstName string `json:"rider_first_name"`

	// RiderLastName is the rider's family name on record.
	RiderLastName string `json:"rider_last_name"`

	// Time is the finish time normalized to H:MM, empty when absent.
	Time string `json:"time,omitempty"`

	// Status is the stored result status string.
	Status string `json:"status"`
}

// DBEvent is a canonical event record with its joined result rows.
type DBEvent struct {
	// ID is the canonical event identifier.
	ID string `json:"id"`

	// Date is the event date in ISO form (YYYY-MM-DD).
	Date string `json:"date"`

	// Name is the stored event name.
	Name string `json:"name"`

	// DistanceKm is the stored route distance in kilometres.
	DistanceKm float64 `json:"distance_km"`

	// Results are the stored result rows for this event.
	Results []DBResult `json:"results"`
}

// DiscrepancyType classifies a difference found during reconciliation.
type DiscrepancyType string

const (
	// TypeEventMissingInDB marks a source event with no database counterpart.
	TypeEventMissingInDB DiscrepancyType = "event_missing_in_db"
	// TypeEventMissingInHTML marks a database event absent from the source page.
	TypeEventMissingInHTML DiscrepancyType = "event_missing_in_html"
	// TypeMissingInDB marks a source rider with no database counterpart.
	TypeMissingInDB DiscrepancyType = "missing_in_db"
	// TypeMissingInHTML marks a database result absent from the source page.
	TypeMissingInHTML DiscrepancyType = "missing_in_html"
	// TypeTimeMismatch marks differing finish times for a matched rider.
	TypeTimeMismatch DiscrepancyType = "time_mismatch"
	// TypeStatusMismatch marks differing result statuses for a matched rider.
	TypeStatusMismatch DiscrepancyType = "status_mismatch"
	// TypeNameVariation records a fuzzy (below 1.0 confidence) rider pairing
	// so a human can audit it. It never blocks the match.
	TypeNameVariation DiscrepancyType = "name_variation"
)

// Severity grades a discrepancy for reporting.
type Severity string

const (
	// SeverityError marks records that could not be reconciled at all.
	SeverityError Severity = "error"
	// SeverityWarning marks reconciled records with differing values.
	SeverityWarning Severity = "warning"
	// SeverityInfo marks findings that are advisory only.
	SeverityInfo Severity = "info"
)

// Discrepancy is a single classified difference between the source page
// and the database. Every discrepancy has exactly one type and severity.
type Discrepancy struct {
	// Type classifies the difference.
	Type DiscrepancyType `json:"type"`

	// Severity grades it for reporting.
	Severity Severity `json:"severity"`

	// Description is a human-readable summary.
	Description string `json:"description"`

	// SourceValue is the value seen on the source page, when applicable.
	SourceValue string `json:"source_value,omitempty"`

	// DBValue is the value stored in the database, when applicable.
	DBValue string `json:"db_value,omitempty"`

	// RiderName identifies the rider concerned, when applicable.
	RiderName string `json:"rider_name,omitempty"`
}

// RiderMatch pairs a source rider with a claimed database result.
// DB is nil when no candidate cleared the threshold.
type RiderMatch struct {
	// Source is the rider row from the page.
	Source ParsedRiderResult `json:"source"`

	// DB is the claimed database result, nil when unmatched.
	DB *DBResult `json:"db,omitempty"`

	// DBIndex is the position of the claimed result in the event's
	// result list, -1 when unmatched. Claims are tracked per row, not
	// per rider ID, so duplicate rows stay distinguishable.
	DBIndex int `json:"-"`

	// Confidence is the name-similarity score of the accepted pairing.
	Confidence float64 `json:"confidence"`
}

// EventMatch pairs a source event with a claimed database event and
// carries every discrepancy found inside it.
type EventMatch struct {
	// SourceEvent is the event from the page. For a database event absent
	// from the page it is an empty shell.
	SourceEvent ParsedEvent `json:"source_event"`

	// DBEvent is the claimed database event, nil when unmatched.
	DBEvent *DBEvent `json:"db_event,omitempty"`

	// MatchConfidence is the event name-similarity score of the accepted
	// pairing, zero for unmatched entries.
	MatchConfidence float64 `json:"match_confidence"`

	// Discrepancies are all differences found for this event.
	Discrepancies []Discrepancy `json:"discrepancies"`
}

// Summary aggregates a comparison run for reporting.
type Summary struct {
	// EventsCompared is the number of match entries produced.
	EventsCompared int `json:"events_compared"`

	// EventsMatched is the number of source events paired with a
	// database event.
	EventsMatched int `json:"events_matched"`

	// RidersCompared is the number of source rider rows examined across
	// matched events.
	RidersCompared int `json:"riders_compared"`

	// RidersMatched is the number of source riders paired with a
	// database result.
	RidersMatched int `json:"riders_matched"`

	// Errors, Warnings, and Infos count discrepancies by severity.
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Infos    int `json:"infos"`
}

// Report is the full outcome of validating one chapter/year combination.
type Report struct {
	// Chapter is the chapter code that was validated.
	Chapter string `json:"chapter"`

	// Year is the season that was validated.
	Year int `json:"year"`

	// SourceURL is the legacy page the source data came from.
	SourceURL string `json:"source_url,omitempty"`

	// FromCache indicates the page was served from the disk cache.
	FromCache bool `json:"from_cache,omitempty"`

	// Matches are the per-event comparison entries, ascending by date.
	Matches []EventMatch `json:"matches"`

	// Summary aggregates the counts above.
	Summary Summary `json:"summary"`
}
