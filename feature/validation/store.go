package validation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"results-manager/core/reconcile"
	"results-manager/feature/validation/models"

	"gorm.io/gorm"
)

// ErrUnknownChapter marks a chapter code with no database record.
var ErrUnknownChapter = errors.New("unknown chapter")

// Store is the GORM-backed query layer for canonical events and results.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over the given database connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ResolveChapter looks a chapter up by its code or by a chapter-group
// code. Unknown codes yield ErrUnknownChapter.
func (s *Store) ResolveChapter(ctx context.Context, code string) (*models.Chapter, error) {
	var chapter models.Chapter
	err := s.db.WithContext(ctx).
		Where("code = ? OR group_code = ?", code, code).
		First(&chapter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChapter, code)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve chapter %q: %w", code, err)
	}
	return &chapter, nil
}

// eventResultRow is the flat projection of the events/results/riders
// join. Rider columns are nullable because an event may have no results.
type eventResultRow struct {
	EventID    uint
	Date       time.Time
	Name       string
	DistanceKm float64
	RiderID    *uint
	FirstName  *string
	LastName   *string
	Time       *string
	Status     *string
}

// FetchDBEvents returns the chapter's events for one season with their
// result rows and joined rider names, shaped for the reconciliation
// core. Stored interval times (HH:MM:SS) are normalized to H:MM.
func (s *Store) FetchDBEvents(ctx context.Context, chapterID uint, year int) ([]reconcile.DBEvent, error) {
	start := fmt.Sprintf("%d-01-01", year)
	end := fmt.Sprintf("%d-12-31", year)

	var rows []eventResultRow
	err := s.db.WithContext(ctx).
		Table("events").
		Select("events.id AS event_id, events.date, events.name, events.distance_km, "+
			"results.rider_id, riders.first_name, riders.last_name, results.time, results.status").
		Joins("LEFT JOIN results ON results.event_id = events.id").
		Joins("LEFT JOIN riders ON riders.id = results.rider_id").
		Where("events.chapter_id = ? AND events.date BETWEEN ? AND ?", chapterID, start, end).
		Order("events.date, events.id, results.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("fetch events for chapter %d year %d: %w", chapterID, year, err)
	}

	var events []reconcile.DBEvent
	index := make(map[uint]int)

	for _, row := range rows {
		idx, ok := index[row.EventID]
		if !ok {
			events = append(events, reconcile.DBEvent{
				ID:         fmt.Sprintf("%d", row.EventID),
				Date:       row.Date.Format("2006-01-02"),
				Name:       row.Name,
				DistanceKm: row.DistanceKm,
				Results:    []reconcile.DBResult{},
			})
			idx = len(events) - 1
			index[row.EventID] = idx
		}

		if row.RiderID == nil {
			continue
		}
		events[idx].Results = append(events[idx].Results, reconcile.DBResult{
			RiderID:        *row.RiderID,
			RiderFirstName: deref(row.FirstName),
			RiderLastName:  deref(row.LastName),
			Time:           normalizeInterval(deref(row.Time)),
			Status:         deref(row.Status),
		})
	}

	return events, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// normalizeInterval converts a stored HH:MM:SS interval to H:MM. Values
// already in H:MM pass through; empty stays empty.
func normalizeInterval(t string) string {
	t = strings.TrimSpace(t)
	if t == "" {
		return ""
	}
	parts := strings.Split(t, ":")
	if len(parts) < 2 {
		return t
	}
	hours := strings.TrimLeft(parts[0], "0")
	if hours == "" {
		hours = "0"
	}
	minutes := parts[1]
	if len(minutes) == 1 {
		minutes = "0" + minutes
	}
	return hours + ":" + minutes
}
