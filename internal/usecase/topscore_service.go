package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/topscorers"
	"github.com/riskibarqy/football-manager/internal/metrics"
	"go.opentelemetry.io/otel/attribute"
)

const maxLeaderboardYear = 9999

type TopScoreService struct {
	repo    topscorers.Repository
	limit   int
	metrics metrics.Metrics
}

func NewTopScoreService(repo topscorers.Repository, limit int, recorder metrics.Metrics) *TopScoreService {
	if limit <= 0 {
		limit = topscorers.DefaultLimit
	}
	return &TopScoreService{
		repo:    repo,
		limit:   limit,
		metrics: metrics.OrNop(recorder),
	}
}

// TopScorersForMonth ranks players by goals dated inside the given month.
func (s *TopScoreService) TopScorersForMonth(ctx context.Context, month, year int) ([]topscorers.TopScorer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TopScoreService.TopScorersForMonth",
		attribute.Int("period.month", month),
		attribute.Int("period.year", year),
	)
	defer span.End()

	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12, got %d", ErrInvalidInput, month)
	}
	if err := validateYear(year); err != nil {
		return nil, err
	}

	s.metrics.IncLeaderboardQuery("month")
	return s.list(ctx, topscorers.MonthWindow(year, time.Month(month)))
}

// TopScorersForYear ranks players by goals dated inside the given calendar year.
func (s *TopScoreService) TopScorersForYear(ctx context.Context, year int) ([]topscorers.TopScorer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TopScoreService.TopScorersForYear", attribute.Int("period.year", year))
	defer span.End()

	if err := validateYear(year); err != nil {
		return nil, err
	}

	s.metrics.IncLeaderboardQuery("year")
	return s.list(ctx, topscorers.YearWindow(year))
}

func (s *TopScoreService) list(ctx context.Context, w topscorers.Window) ([]topscorers.TopScorer, error) {
	items, err := s.repo.ListTopScorers(ctx, w, s.limit)
	if err != nil {
		return nil, markStoreError(fmt.Errorf("list top scorers window=%s: %w", w.Key(), err))
	}
	if items == nil {
		items = []topscorers.TopScorer{}
	}
	return items, nil
}

func validateYear(year int) error {
	if year < 1 || year > maxLeaderboardYear {
		return fmt.Errorf("%w: year must be between 1 and %d, got %d", ErrInvalidInput, maxLeaderboardYear, year)
	}
	return nil
}
