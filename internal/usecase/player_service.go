package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/metrics"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type RegisterPlayerInput struct {
	Name     string
	Position string
}

type PlayerService struct {
	playerRepo player.Repository
	tx         Transactor
	metrics    metrics.Metrics
	logger     *logging.Logger
}

func NewPlayerService(playerRepo player.Repository, tx Transactor, recorder metrics.Metrics, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerService{
		playerRepo: playerRepo,
		tx:         tx,
		metrics:    metrics.OrNop(recorder),
		logger:     logger,
	}
}

// Register creates a player with a zero goal total. Names are unique.
func (s *PlayerService) Register(ctx context.Context, input RegisterPlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Register")
	defer span.End()

	candidate := player.Player{
		Name:     strings.TrimSpace(input.Name),
		Position: player.Position(strings.TrimSpace(input.Position)),
	}
	if err := candidate.Validate(); err != nil {
		s.metrics.IncOperationFailure("register_player", "invalid_input")
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var created player.Player
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		_, exists, err := s.playerRepo.GetByName(ctx, candidate.Name)
		if err != nil {
			return fmt.Errorf("get player by name: %w", err)
		}
		if exists {
			return fmt.Errorf("name=%q: %w", candidate.Name, player.ErrNameTaken)
		}

		created, err = s.playerRepo.Create(ctx, candidate)
		if err != nil {
			return fmt.Errorf("create player: %w", err)
		}
		return nil
	})
	if err != nil {
		err = markStoreError(err)
		s.metrics.IncOperationFailure("register_player", FailureReason(err))
		s.logger.WarnContext(ctx, "register player failed", "name", candidate.Name, "error", err)
		return player.Player{}, err
	}

	s.metrics.IncPlayersRegistered()
	s.logger.InfoContext(ctx, "player registered",
		"player_id", created.ID,
		"name", created.Name,
		"position", string(created.Position),
	)
	return created, nil
}

func (s *PlayerService) GetByID(ctx context.Context, playerID int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetByID", attribute.Int64("player.id", playerID))
	defer span.End()

	if playerID <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id must be > 0", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, markStoreError(fmt.Errorf("get player by id: %w", err))
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	return item, nil
}

// ListAll returns every player ordered by name.
func (s *PlayerService) ListAll(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListAll")
	defer span.End()

	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, markStoreError(fmt.Errorf("list players: %w", err))
	}
	return items, nil
}
