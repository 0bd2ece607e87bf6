package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchedEventFixture(srcRiders []ParsedRiderResult, dbResults []DBResult) ([]ParsedEvent, []DBEvent) {
	source := []ParsedEvent{{
		Date:       "2024-04-15",
		Name:       "Spring 200",
		DistanceKm: 200,
		Riders:     srcRiders,
	}}
	db := []DBEvent{{
		ID:         "1",
		Date:       "2024-04-15",
		Name:       "Spring 200",
		DistanceKm: 200,
		Results:    dbResults,
	}}
	return source, db
}

func TestCompare_NoDiscrepanciesForIdenticalData(t *testing.T) {
	source, db := matchedEventFixture(
		[]ParsedRiderResult{{FullName: "John Smith", FirstName: "John", LastName: "Smith", Time: "10:30", Status: StatusFinished}},
		[]DBResult{{RiderID: 1, RiderFirstName: "John", RiderLastName: "Smith", Time: "10:30", Status: "finished"}},
	)

	matches := Compare(source, db)

	require.Len(t, matches, 1)
	require.NotNil(t, matches[0].DBEvent)
	assert.Equal(t, "1", matches[0].DBEvent.ID)
	assert.Equal(t, 1.0, matches[0].MatchConfidence)
	assert.Empty(t, matches[0].Discrepancies)
}

func TestCompare_TimeMismatch(t *testing.T) {
	source, db := matchedEventFixture(
		[]ParsedRiderResult{{FullName: "John Smith", FirstName: "John", LastName: "Smith", Time: "10:30", Status: StatusFinished}},
		[]DBResult{{RiderID: 1, RiderFirstName: "John", RiderLastName: "Smith", Time: "10:35", Status: "finished"}},
	)

	matches := Compare(source, db)

	require.Len(t, matches, 1)
	require.Len(t, matches[0].Discrepancies, 1)
	d := matches[0].Discrepancies[0]
	assert.Equal(t, TypeTimeMismatch, d.Type)
	assert.Equal(t, SeverityWarning, d.Severity)
	assert.Equal(t, "10:30", d.SourceValue)
	assert.Equal(t, "10:35", d.DBValue)
}

func TestCompare_TimeNormalizationBeforeComparison(t *testing.T) {
	// A zero-padded hour on one side is not a mismatch.
	source, db := matchedEventFixture(
		[]ParsedRiderResult{{FullName: "John Smith", FirstName: "John", LastName: "Smith", Time: "09:30", Status: StatusFinished}},
		[]DBResult{{RiderID: 1, RiderFirstName: "John", RiderLastName: "Smith", Time: "9:30", Status: "finished"}},
	)

	matches := Compare(source, db)

	require.Len(t, matches, 1)
	assert.Empty(t, matches[0].Discrepancies)
}

func TestCompare_OneTimeAbsentIsMismatch(t *testing.T) {
	source, db := matchedEventFixture(
		[]ParsedRiderResult{{FullName: "John Smith", FirstName: "John", LastName: "Smith", Status: StatusFinished}},
		[]DBResult{{RiderID: 1, RiderFirstName: "John", RiderLastName: "Smith", Time: "10:30", Status: "finished"}},
	)

	matches := Compare(source, db)

	require.Len(t, matches, 1)
	require.Len(t, matches[0].Discrepancies, 1)
	assert.Equal(t, TypeTimeMismatch, matches[0].Discrepancies[0].Type)
}

func TestCompare_BothTimesAbsentIsNotMismatch(t *testing.T) {
	source, db := matchedEventFixture(
		[]ParsedRiderResult{{FullName: "John Smith", FirstName: "John", LastName: "Smith", Status: StatusDNF}},
		[]DBResult{{RiderID: 1, RiderFirstName: "John", RiderLastName: "Smith", Status: "dnf"}},
	)

	matches := Compare(source, db)

	require.Len(t, matches, 1)
	assert.Empty(t, matches[0].Discrepancies)
}

func TestCompare_StatusMismatch(t *testing.T) {
	source, db := matchedEventFixture(
		[]ParsedRiderResult{{FullName: "John Smith", FirstName: "John", LastName: "Smith", Status: StatusDNF}},
		[]DBResult{{RiderID: 1, RiderFirstName: "John", RiderLastName: "Smith", Status: "finished"}},
	)

	matches := Compare(source, db)

	require.Len(t, matches, 1)
	require.Len(t, matches[0].Discrepancies, 1)
	d := matches[0].Discrepancies[0]
	assert.Equal(t, TypeStatusMismatch, d.Type)
	assert.Equal(t, SeverityWarning, d.Severity)
}

func TestCompare_ImpliedFinishedStatus(t *testing.T) {
	// No explicit status on the page, but a finish time: implies finished.
	source, db := matchedEventFixture(
		[]ParsedRiderResult{{FullName: "John Smith", FirstName: "John", LastName: "Smith", Time: "10:30"}},
		[]DBResult{{RiderID: 1, RiderFirstName: "John", RiderLastName: "Smith", Time: "10:30", Status: "Finished"}},
	)

	matches := Compare(source, db)

	require.Len(t, matches, 1)
	assert.Empty(t, matches[0].Discrepancies)
}

func TestCompare_NameVariationRecordedForFuzzyMatch(t *testing.T) {
	source, db := matchedEventFixture(
		[]ParsedRiderResult{{FullName: "John Smithe", FirstName: "John", LastName: "Smithe", Time: "10:30", Status: StatusFinished}},
		[]DBResult{{RiderID: 1, RiderFirstName: "John", RiderLastName: "Smith", Time: "10:30", Status: "finished"}},
	)

	matches := Compare(source, db)

	require.Len(t, matches, 1)
	require.Len(t, matches[0].Discrepancies, 1)
	d := matches[0].Discrepancies[0]
	assert.Equal(t, TypeNameVariation, d.Type)
	assert.Equal(t, SeverityInfo, d.Severity)
	assert.Equal(t, "John Smithe", d.SourceValue)
	assert.Equal(t, "John Smith", d.DBValue)
}

func TestCompare_MissingRiderInDB(t *testing.T) {
	source, db := matchedEventFixture(
		[]ParsedRiderResult{{FullName: "Nobody Known", FirstName: "Nobody", LastName: "Known"}},
		nil,
	)

	matches := Compare(source, db)

	require.Len(t, matches, 1)
	require.Len(t, matches[0].Discrepancies, 1)
	d := matches[0].Discrepancies[0]
	assert.Equal(t, TypeMissingInDB, d.Type)
	assert.Equal(t, SeverityError, d.Severity)
	assert.Equal(t, "Nobody Known", d.RiderName)
}

func TestCompare_MissingRiderInHTML(t *testing.T) {
	source, db := matchedEventFixture(
		nil,
		[]DBResult{{RiderID: 1, RiderFirstName: "John", RiderLastName: "Smith", Time: "10:30", Status: "finished"}},
	)

	matches := Compare(source, db)

	require.Len(t, matches, 1)
	require.Len(t, matches[0].Discrepancies, 1)
	d := matches[0].Discrepancies[0]
	assert.Equal(t, TypeMissingInHTML, d.Type)
	assert.Equal(t, SeverityWarning, d.Severity)
	assert.Equal(t, "John Smith", d.RiderName)
}

func TestCompare_DuplicateRiderRowsClaimedIndividually(t *testing.T) {
	// Two result rows carrying the same rider ID (duplicate insert or
	// zero-value IDs): matching one row must not claim the other.
	source, db := matchedEventFixture(
		[]ParsedRiderResult{{FullName: "John Smith", FirstName: "John", LastName: "Smith", Time: "10:30", Status: StatusFinished}},
		[]DBResult{
			{RiderID: 0, RiderFirstName: "John", RiderLastName: "Smith", Time: "10:30", Status: "finished"},
			{RiderID: 0, RiderFirstName: "John", RiderLastName: "Smith", Time: "10:30", Status: "finished"},
		},
	)

	matches := Compare(source, db)

	require.Len(t, matches, 1)
	require.Len(t, matches[0].Discrepancies, 1)
	d := matches[0].Discrepancies[0]
	assert.Equal(t, TypeMissingInHTML, d.Type)
	assert.Equal(t, SeverityWarning, d.Severity)
	assert.Equal(t, "John Smith", d.RiderName)
}

func TestCompare_SourceEventMissingInDB(t *testing.T) {
	source := []ParsedEvent{{Date: "2024-04-15", Name: "Spring 200", DistanceKm: 200}}

	matches := Compare(source, nil)

	require.Len(t, matches, 1)
	assert.Nil(t, matches[0].DBEvent)
	require.Len(t, matches[0].Discrepancies, 1)
	assert.Equal(t, TypeEventMissingInDB, matches[0].Discrepancies[0].Type)
	assert.Equal(t, SeverityError, matches[0].Discrepancies[0].Severity)
}

func TestCompare_DBEventMissingInHTMLNotDoubleCounted(t *testing.T) {
	db := []DBEvent{{
		ID: "1", Date: "2024-04-15", Name: "Spring 200", DistanceKm: 200,
		Results: []DBResult{{RiderID: 1, RiderFirstName: "John", RiderLastName: "Smith"}},
	}}

	matches := Compare(nil, db)

	require.Len(t, matches, 1)
	// Exactly one synthetic entry with exactly one discrepancy: the DB
	// results inside it must not additionally surface as missing riders.
	require.Len(t, matches[0].Discrepancies, 1)
	assert.Equal(t, TypeEventMissingInHTML, matches[0].Discrepancies[0].Type)
}

func TestCompare_OrderedAscendingByDate(t *testing.T) {
	source := []ParsedEvent{
		{Date: "2024-09-01", Name: "Fall 300", DistanceKm: 300},
		{Date: "2024-04-15", Name: "Spring 200", DistanceKm: 200},
	}
	db := []DBEvent{
		{ID: "2", Date: "2024-09-01", Name: "Fall 300", DistanceKm: 300},
		{ID: "1", Date: "2024-04-15", Name: "Spring 200", DistanceKm: 200},
		{ID: "3", Date: "2024-06-20", Name: "Summer 400", DistanceKm: 400},
	}

	matches := Compare(source, db)

	require.Len(t, matches, 3)
	assert.Equal(t, "2024-04-15", matchDate(matches[0]))
	assert.Equal(t, "2024-06-20", matchDate(matches[1]))
	assert.Equal(t, "2024-09-01", matchDate(matches[2]))
}

func TestCompare_Idempotent(t *testing.T) {
	source := []ParsedEvent{
		{Date: "2024-04-15", Name: "Spring 200", DistanceKm: 200, Riders: []ParsedRiderResult{
			{FullName: "John Smithe", FirstName: "John", LastName: "Smithe", Time: "10:30", Status: StatusFinished},
			{FullName: "Bob Jones", FirstName: "Bob", LastName: "Jones", Time: "11:02", Status: StatusFinished},
		}},
	}
	db := []DBEvent{
		{ID: "1", Date: "2024-04-15", Name: "Spring 200", DistanceKm: 200, Results: []DBResult{
			{RiderID: 1, RiderFirstName: "John", RiderLastName: "Smith", Time: "10:35", Status: "finished"},
			{RiderID: 2, RiderFirstName: "Robert", RiderLastName: "Jones", Time: "11:02", Status: "finished"},
			{RiderID: 3, RiderFirstName: "Walter", RiderLastName: "Quintero", Time: "12:40", Status: "finished"},
		}},
	}

	first := Compare(source, db)
	second := Compare(source, db)

	assert.Equal(t, first, second)
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "leading zero hour", input: "09:30", want: "9:30"},
		{name: "already canonical", input: "10:30", want: "10:30"},
		{name: "zero hour kept", input: "0:45", want: "0:45"},
		{name: "whitespace", input: " 9:30 ", want: "9:30"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTime(tt.input))
		})
	}
}
