package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/match"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
)

type RecordMatchInput struct {
	Team1  string
	Team2  string
	Winner string
	// Date defaults to now when zero.
	Date time.Time
}

type MatchService struct {
	matchRepo match.Repository
	logger    *logging.Logger
	now       func() time.Time
}

func NewMatchService(matchRepo match.Repository, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		matchRepo: matchRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// RecordMatch stores a played game. The winner is stored as given.
func (s *MatchService) RecordMatch(ctx context.Context, input RecordMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RecordMatch")
	defer span.End()

	date := input.Date
	if date.IsZero() {
		date = s.now()
	}
	candidate := match.Match{
		Date:   date.UTC(),
		Team1:  strings.TrimSpace(input.Team1),
		Team2:  strings.TrimSpace(input.Team2),
		Winner: strings.TrimSpace(input.Winner),
	}
	if err := candidate.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.matchRepo.Create(ctx, candidate)
	if err != nil {
		return match.Match{}, markStoreError(fmt.Errorf("create match: %w", err))
	}

	s.logger.InfoContext(ctx, "match recorded",
		"match_id", created.ID,
		"team1", created.Team1,
		"team2", created.Team2,
		"winner", created.Winner,
	)
	return created, nil
}

// ListAll returns matches newest first.
func (s *MatchService) ListAll(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListAll")
	defer span.End()

	items, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, markStoreError(fmt.Errorf("list matches: %w", err))
	}
	return items, nil
}
