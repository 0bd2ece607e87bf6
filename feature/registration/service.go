package registration

import (
	"context"
	"fmt"

	"results-manager/core/names"
	"results-manager/feature/registration/models"

	"go.uber.org/zap"
)

const (
	candidateThreshold = 0.4
	maxCandidates      = 10
)

// RiderStore looks up riders and their participation history.
type RiderStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Rider, error)
	SearchWithoutEmail(ctx context.Context, variants []string) ([]models.Rider, error)
	ParticipationStats(ctx context.Context, riderIDs []uint) (map[uint]models.ParticipationStats, error)
}

// Service matches registering riders against existing member records.
type Service struct {
	store  RiderStore
	logger *zap.Logger
}

// NewService creates a registration service.
func NewService(store RiderStore, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// MatchByEmail returns the candidate whose email is already on file, or
// nil when no rider has it.
func (s *Service) MatchByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	rider, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if rider == nil {
		return nil, nil
	}

	candidate := s.toCandidate(*rider, nil)
	stats, err := s.store.ParticipationStats(ctx, []uint{rider.ID})
	if err != nil {
		s.logger.Warn("Participation stats unavailable for email match", zap.Error(err))
		return &candidate, nil
	}
	candidate = s.toCandidate(*rider, stats)
	return &candidate, nil
}

// FindCandidates returns up to ten existing riders without an email on
// file whose name resembles the registering rider's, best match first.
// Matching is advisory: any lookup failure degrades to an empty list so
// registration can proceed as a new member.
func (s *Service) FindCandidates(ctx context.Context, firstName, lastName string) []models.Candidate {
	normalized := names.Normalize(firstName)
	if normalized == "" {
		return []models.Candidate{}
	}

	riders, err := s.store.SearchWithoutEmail(ctx, names.Variants(normalized))
	if err != nil {
		s.logger.Warn("Rider candidate search failed", zap.Error(err))
		return []models.Candidate{}
	}

	ranked := names.Rank(firstName, lastName, riders,
		func(r models.Rider) string { return r.FirstName },
		func(r models.Rider) string { return r.LastName },
		names.Options{Threshold: candidateThreshold, MaxResults: maxCandidates},
	)
	if len(ranked) == 0 {
		return []models.Candidate{}
	}

	ids := make([]uint, 0, len(ranked))
	for _, match := range ranked {
		ids = append(ids, match.Item.ID)
	}
	stats, err := s.store.ParticipationStats(ctx, ids)
	if err != nil {
		s.logger.Warn("Participation stats lookup failed", zap.Error(err))
		return []models.Candidate{}
	}

	candidates := make([]models.Candidate, 0, len(ranked))
	for _, match := range ranked {
		candidates = append(candidates, s.toCandidate(match.Item, stats))
	}
	return candidates
}

func (s *Service) toCandidate(rider models.Rider, stats map[uint]models.ParticipationStats) models.Candidate {
	candidate := models.Candidate{
		ID:        rider.ID,
		FirstName: rider.FirstName,
		LastName:  rider.LastName,
		FullName:  fmt.Sprintf("%s %s", rider.FirstName, rider.LastName),
	}
	if stat, ok := stats[rider.ID]; ok {
		season := stat.FirstSeason
		candidate.FirstSeasonSeen = &season
		candidate.TotalParticipations = stat.Total
	}
	return candidate
}
