package registration

import (
	"context"
	"testing"

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

func TestStore_FindByEmail(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	store := NewStore(db)

	rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "email"}).
		AddRow(5, "Jane", "Doe", "jane@example.org")
	sqlMock.ExpectQuery("SELECT .* FROM `riders`").
		WithArgs("jane@example.org", 1).
		WillReturnRows(rows)

	rider, err := store.FindByEmail(context.Background(), "jane@example.org")
	assert.NoError(t, err)
	assert.NotNil(t, rider)
	assert.Equal(t, uint(5), rider.ID)
	assert.Equal(t, "Jane", rider.FirstName)
}

func TestStore_FindByEmail_NotFound(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	store := NewStore(db)

	sqlMock.ExpectQuery("SELECT .* FROM `riders`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "email"}))

	rider, err := store.FindByEmail(context.Background(), "nobody@example.org")
	assert.NoError(t, err)
	assert.Nil(t, rider)
}

func TestStore_SearchWithoutEmail(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	store := NewStore(db)

	rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "email"}).
		AddRow(1, "Robert", "Smith", nil).
		AddRow(2, "Bob", "Smith", "").
		AddRow(3, "J. Robert", "Jones", nil)
	// Variants bind as contains patterns so names with the variant
	// mid-string still reach the ranker.
	sqlMock.ExpectQuery("SELECT .* FROM `riders`").
		WithArgs("%bob%", "%robert%").
		WillReturnRows(rows)

	riders, err := store.SearchWithoutEmail(context.Background(), []string{"bob", "robert"})
	assert.NoError(t, err)
	assert.Len(t, riders, 3)
	assert.Equal(t, "Robert", riders[0].FirstName)
	assert.Equal(t, "J. Robert", riders[2].FirstName)
}

func TestStore_SearchWithoutEmail_NoVariants(t *testing.T) {
	db, _ := setupMockDB(t)
	store := NewStore(db)

	riders, err := store.SearchWithoutEmail(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, riders)
}

func TestStore_ParticipationStats(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	store := NewStore(db)

	rows := sqlmock.NewRows([]string{"rider_id", "first_season", "total"}).
		AddRow(1, 1998, 41).
		AddRow(2, 2015, 3)
	sqlMock.ExpectQuery("SELECT .* FROM `results`").
		WillReturnRows(rows)

	stats, err := store.ParticipationStats(context.Background(), []uint{1, 2, 3})
	assert.NoError(t, err)
	assert.Len(t, stats, 2)
	assert.Equal(t, 1998, stats[1].FirstSeason)
	assert.Equal(t, 41, stats[1].Total)
	_, ok := stats[3]
	assert.False(t, ok, "rider without results has no stats entry")
}

func TestStore_ParticipationStats_NoIDs(t *testing.T) {
	db, _ := setupMockDB(t)
	store := NewStore(db)

	stats, err := store.ParticipationStats(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, stats)
}
