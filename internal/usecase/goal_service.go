package usecase

import (
	"context"
	"fmt"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-manager/internal/domain/goal"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/metrics"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type AddGoalInput struct {
	PlayerID int64
	Quantity int
	MatchID  *int64
	// Date defaults to today (UTC) when zero.
	Date time.Time
}

type GoalService struct {
	goalRepo    goal.Repository
	playerRepo  player.Repository
	tx          Transactor
	invalidator LeaderboardInvalidator
	metrics     metrics.Metrics
	logger      *logging.Logger
	now         func() time.Time
}

func NewGoalService(
	goalRepo goal.Repository,
	playerRepo player.Repository,
	tx Transactor,
	invalidator LeaderboardInvalidator,
	recorder metrics.Metrics,
	logger *logging.Logger,
) *GoalService {
	if invalidator == nil {
		invalidator = noopInvalidator{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &GoalService{
		goalRepo:    goalRepo,
		playerRepo:  playerRepo,
		tx:          tx,
		invalidator: invalidator,
		metrics:     metrics.OrNop(recorder),
		logger:      logger,
		now:         time.Now,
	}
}

// AddGoal appends a ledger entry and bumps the player's total in one transaction.
// Quantity is stored as given.
func (s *GoalService) AddGoal(ctx context.Context, input AddGoalInput) (goal.Goal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GoalService.AddGoal",
		attribute.Int64("player.id", input.PlayerID),
		attribute.Int("goal.quantity", input.Quantity),
	)
	defer span.End()

	date := input.Date
	if date.IsZero() {
		date = s.now()
	}
	entry := goal.Goal{
		PlayerID: input.PlayerID,
		MatchID:  input.MatchID,
		Quantity: input.Quantity,
		Date:     goal.Day(date),
	}

	var created goal.Goal
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.goalRepo.Create(ctx, entry)
		if err != nil {
			return fmt.Errorf("create goal player=%d: %w", entry.PlayerID, err)
		}

		if err := s.playerRepo.IncrementGoals(ctx, entry.PlayerID, int64(entry.Quantity)); err != nil {
			if crerr.Is(err, player.ErrNotFound) {
				return fmt.Errorf("increment goals player=%d: %w", entry.PlayerID, goal.ErrUnknownReference)
			}
			return fmt.Errorf("increment goals player=%d: %w", entry.PlayerID, err)
		}
		return nil
	})
	if err != nil {
		err = markStoreError(err)
		s.metrics.IncOperationFailure("add_goal", FailureReason(err))
		s.logger.WarnContext(ctx, "add goal failed", "player_id", entry.PlayerID, "error", err)
		return goal.Goal{}, err
	}

	s.invalidator.InvalidateLeaderboards(ctx)
	s.metrics.AddGoalsRecorded(created.Quantity)
	s.logger.InfoContext(ctx, "goal recorded",
		"goal_id", created.ID,
		"player_id", created.PlayerID,
		"quantity", created.Quantity,
		"date", created.Date.Format(time.DateOnly),
	)
	return created, nil
}

// ListByPlayer returns a player's ledger entries oldest first.
func (s *GoalService) ListByPlayer(ctx context.Context, playerID int64) ([]goal.Goal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GoalService.ListByPlayer", attribute.Int64("player.id", playerID))
	defer span.End()

	if playerID <= 0 {
		return nil, fmt.Errorf("%w: player id must be > 0", ErrInvalidInput)
	}

	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, markStoreError(fmt.Errorf("get player by id: %w", err))
	}
	if !exists {
		return nil, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	items, err := s.goalRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, markStoreError(fmt.Errorf("list goals by player: %w", err))
	}
	return items, nil
}
