package validation

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestStore_ResolveChapter(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	store := NewStore(db)

	rows := sqlmock.NewRows([]string{"id", "code", "group_code", "name"}).
		AddRow(7, "north", "", "North Chapter")
	sqlMock.ExpectQuery("SELECT .* FROM `chapters`").
		WithArgs("north", "north", 1).
		WillReturnRows(rows)

	chapter, err := store.ResolveChapter(context.Background(), "north")
	assert.NoError(t, err)
	assert.Equal(t, uint(7), chapter.ID)
	assert.Equal(t, "north", chapter.Code)
}

func TestStore_ResolveChapter_Unknown(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	store := NewStore(db)

	sqlMock.ExpectQuery("SELECT .* FROM `chapters`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "group_code", "name"}))

	_, err := store.ResolveChapter(context.Background(), "nowhere")
	assert.ErrorIs(t, err, ErrUnknownChapter)
	assert.Contains(t, err.Error(), "nowhere")
}

func TestStore_FetchDBEvents(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	store := NewStore(db)

	date := time.Date(2010, 5, 1, 0, 0, 0, 0, time.UTC)
	laterDate := time.Date(2010, 9, 12, 0, 0, 0, 0, time.UTC)

	john := "John"
	smith := "Smith"
	jane := "Jane"
	doe := "Doe"
	johnTime := "10:30:00"
	finished := "finished"
	dnf := "dnf"
	johnID := uint(42)
	janeID := uint(43)

	rows := sqlmock.NewRows([]string{
		"event_id", "date", "name", "distance_km",
		"rider_id", "first_name", "last_name", "time", "status",
	}).
		AddRow(1, date, "Spring 200", 200.0, johnID, john, smith, johnTime, finished).
		AddRow(1, date, "Spring 200", 200.0, janeID, jane, doe, nil, dnf).
		AddRow(2, laterDate, "Autumn 300", 300.0, nil, nil, nil, nil, nil)

	sqlMock.ExpectQuery("SELECT .* FROM `events`").
		WithArgs(7, "2010-01-01", "2010-12-31").
		WillReturnRows(rows)

	events, err := store.FetchDBEvents(context.Background(), 7, 2010)
	assert.NoError(t, err)
	assert.Len(t, events, 2)

	assert.Equal(t, "1", events[0].ID)
	assert.Equal(t, "2010-05-01", events[0].Date)
	assert.Equal(t, "Spring 200", events[0].Name)
	assert.Len(t, events[0].Results, 2)
	assert.Equal(t, uint(42), events[0].Results[0].RiderID)
	assert.Equal(t, "John", events[0].Results[0].RiderFirstName)
	assert.Equal(t, "10:30", events[0].Results[0].Time)
	assert.Equal(t, "finished", events[0].Results[0].Status)
	assert.Equal(t, "", events[0].Results[1].Time)
	assert.Equal(t, "dnf", events[0].Results[1].Status)

	// An event with no result rows still appears, with an empty slice.
	assert.Equal(t, "2", events[1].ID)
	assert.NotNil(t, events[1].Results)
	assert.Empty(t, events[1].Results)
}

func TestStore_FetchDBEvents_Empty(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	store := NewStore(db)

	sqlMock.ExpectQuery("SELECT .* FROM `events`").
		WillReturnRows(sqlmock.NewRows([]string{
			"event_id", "date", "name", "distance_km",
			"rider_id", "first_name", "last_name", "time", "status",
		}))

	events, err := store.FetchDBEvents(context.Background(), 7, 2010)
	assert.NoError(t, err)
	assert.Empty(t, events)
}

func TestNormalizeInterval(t *testing.T) {
	cases := map[string]string{
		"10:30:00": "10:30",
		"09:05:00": "9:05",
		"9:5":      "9:05",
		"10:30":    "10:30",
		"00:45:00": "0:45",
		"":         "",
		"  ":       "",
		"dnf":      "dnf",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizeInterval(in), "input %q", in)
	}
}
