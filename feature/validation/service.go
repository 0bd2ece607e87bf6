package validation

import (
	"context"
	"errors"
	"fmt"

	"results-manager/core/legacyhtml"
	"results-manager/core/reconcile"
	"results-manager/feature/validation/models"

	"go.uber.org/zap"
)

// ErrInvalidYear marks a year outside the club's recorded history.
var ErrInvalidYear = errors.New("invalid year")

// The club's oldest legacy pages date from the mid-nineties.
const (
	minYear = 1995
	maxYear = 2100
)

// PageFetcher fetches one legacy result page.
type PageFetcher interface {
	Fetch(ctx context.Context, url string, useCache bool) (legacyhtml.Page, error)
}

// EventExtractor converts page HTML into structured events.
type EventExtractor interface {
	Extract(ctx context.Context, html string) ([]reconcile.ParsedEvent, error)
}

// EventStore resolves chapters and loads canonical events.
type EventStore interface {
	ResolveChapter(ctx context.Context, code string) (*models.Chapter, error)
	FetchDBEvents(ctx context.Context, chapterID uint, year int) ([]reconcile.DBEvent, error)
}

// Service runs the historical-data validation pipeline: fetch the legacy
// page, extract structured events, load the canonical records, and
// reconcile the two.
type Service struct {
	fetcher   PageFetcher
	extractor EventExtractor
	store     EventStore
	baseURL   string
	logger    *zap.Logger
}

// NewService creates a validation service.
func NewService(fetcher PageFetcher, extractor EventExtractor, store EventStore, baseURL string, logger *zap.Logger) *Service {
	return &Service{
		fetcher:   fetcher,
		extractor: extractor,
		store:     store,
		baseURL:   baseURL,
		logger:    logger,
	}
}

// Validate reconciles one chapter/year combination and returns the full
// report. Each stage runs to completion before the next starts; only the
// page fetch retries internally. Discrepancies are findings inside the
// report, never an error.
func (s *Service) Validate(ctx context.Context, chapterCode string, year int, useCache bool) (*reconcile.Report, error) {
	if year < minYear || year > maxYear {
		return nil, fmt.Errorf("%w: %d (expected %d..%d)", ErrInvalidYear, year, minYear, maxYear)
	}

	chapter, err := s.store.ResolveChapter(ctx, chapterCode)
	if err != nil {
		return nil, err
	}

	url := s.pageURL(chapter, year)
	s.logger.Info("Fetching legacy result page", zap.String("url", url), zap.Bool("use_cache", useCache))

	page, err := s.fetcher.Fetch(ctx, url, useCache)
	if err != nil {
		return nil, fmt.Errorf("fetch legacy page: %w", err)
	}

	s.logger.Info("Extracting events from page",
		zap.Int("html_bytes", len(page.HTML)),
		zap.Bool("from_cache", page.FromCache),
	)
	sourceEvents, err := s.extractor.Extract(ctx, page.HTML)
	if err != nil {
		return nil, fmt.Errorf("extract events: %w", err)
	}

	dbEvents, err := s.store.FetchDBEvents(ctx, chapter.ID, year)
	if err != nil {
		return nil, err
	}

	matches := reconcile.Compare(sourceEvents, dbEvents)
	summary := reconcile.Summarize(matches)

	s.logger.Info("Validation finished",
		zap.String("chapter", chapter.Code),
		zap.Int("year", year),
		zap.Int("events_compared", summary.EventsCompared),
		zap.Int("errors", summary.Errors),
		zap.Int("warnings", summary.Warnings),
	)

	return &reconcile.Report{
		Chapter:   chapter.Code,
		Year:      year,
		SourceURL: url,
		FromCache: page.FromCache,
		Matches:   matches,
		Summary:   summary,
	}, nil
}

// pageURL builds the legacy page address. Chapter groups publish one
// shared page under the group code.
func (s *Service) pageURL(chapter *models.Chapter, year int) string {
	code := chapter.Code
	if chapter.GroupCode != "" {
		code = chapter.GroupCode
	}
	return fmt.Sprintf("%s/results/%s/%d.html", s.baseURL, code, year)
}
