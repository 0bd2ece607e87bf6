package registration

import (
	"context"
	"errors"
	"fmt"

	"results-manager/feature/registration/models"

	"gorm.io/gorm"
)

// Store is the GORM-backed query layer for rider lookups.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over the given database connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// FindByEmail returns the rider with the given email, or nil when no
// rider has it on file.
func (s *Store) FindByEmail(ctx context.Context, email string) (*models.Rider, error) {
	var rider models.Rider
	err := s.db.WithContext(ctx).
		Where("email = ?", email).
		First(&rider).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find rider by email: %w", err)
	}
	return &rider, nil
}

// SearchWithoutEmail returns riders with no email on file whose first
// name contains any of the given lowercase variants. The variants come
// from the nickname table, so a search for "Bob" also pulls in every
// Robert, and the contains match keeps hyphenated or initialed
// spellings ("Anne-Bob", "J. Robert") in the candidate pool.
func (s *Store) SearchWithoutEmail(ctx context.Context, variants []string) ([]models.Rider, error) {
	if len(variants) == 0 {
		return nil, nil
	}

	query := s.db.WithContext(ctx).
		Where("email IS NULL OR email = ''")

	nameFilter := s.db.Where("LOWER(first_name) LIKE ?", "%"+variants[0]+"%")
	for _, variant := range variants[1:] {
		nameFilter = nameFilter.Or("LOWER(first_name) LIKE ?", "%"+variant+"%")
	}

	var riders []models.Rider
	if err := query.Where(nameFilter).Find(&riders).Error; err != nil {
		return nil, fmt.Errorf("search riders without email: %w", err)
	}
	return riders, nil
}

// ParticipationStats returns per-rider participation summaries for the
// given rider IDs. Riders with no recorded results are absent from the
// result map.
func (s *Store) ParticipationStats(ctx context.Context, riderIDs []uint) (map[uint]models.ParticipationStats, error) {
	if len(riderIDs) == 0 {
		return map[uint]models.ParticipationStats{}, nil
	}

	var rows []models.ParticipationStats
	err := s.db.WithContext(ctx).
		Table("results").
		Select("results.rider_id AS rider_id, MIN(YEAR(events.date)) AS first_season, COUNT(*) AS total").
		Joins("JOIN events ON events.id = results.event_id").
		Where("results.rider_id IN ?", riderIDs).
		Group("results.rider_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load participation stats: %w", err)
	}

	stats := make(map[uint]models.ParticipationStats, len(rows))
	for _, row := range rows {
		stats[row.RiderID] = row
	}
	return stats, nil
}
