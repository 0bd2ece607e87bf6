package models

import "time"

// Chapter is a regional chapter of the club. Legacy result pages are
// published per chapter and year.
type Chapter struct {
	// ID is the primary key.
	ID uint `gorm:"primaryKey"`

	// Code is the short chapter identifier used in URLs and the CLI.
	Code string `gorm:"column:code"`

	// GroupCode optionally joins several chapters under one legacy page.
	GroupCode string `gorm:"column:group_code"`

	// Name is the chapter display name.
	Name string `gorm:"column:name"`
}

// TableName overrides the GORM default.
func (Chapter) TableName() string { return "chapters" }

// Event is a canonical event record.
type Event struct {
	// ID is the primary key.
	ID uint `gorm:"primaryKey"`

	// ChapterID references the organizing chapter.
	ChapterID uint `gorm:"column:chapter_id"`

	// Date is the event date.
	Date time.Time `gorm:"column:date"`

	// Name is the stored event name.
	Name string `gorm:"column:name"`

	// DistanceKm is the route distance in kilometres.
	DistanceKm float64 `gorm:"column:distance_km"`
}

// TableName overrides the GORM default.
func (Event) TableName() string { return "events" }

// Result is one rider's result row for an event. Time is stored in the
// database's interval format (HH:MM:SS) and normalized on read.
type Result struct {
	// ID is the primary key.
	ID uint `gorm:"primaryKey"`

	// EventID references the event.
	EventID uint `gorm:"column:event_id"`

	// RiderID references the rider.
	RiderID uint `gorm:"column:rider_id"`

	// Time is the stored finish time interval, nil when absent.
	Time *string `gorm:"column:time"`

	// Status is the stored result status.
	Status string `gorm:"column:status"`
}

// TableName overrides the GORM default.
func (Result) TableName() string { return "results" }
