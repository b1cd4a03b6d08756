package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-manager/internal/domain/goal"
	qb "github.com/riskibarqy/football-manager/internal/platform/querybuilder"
)

type GoalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Create(ctx context.Context, g goal.Goal) (goal.Goal, error) {
	query, args, err := qb.InsertInto("goals").
		Columns("player_id", "match_id", "quantity", "scored_on").
		Values(g.PlayerID, nullableMatchID(g.MatchID), g.Quantity, g.Date.UTC().Format(time.DateOnly)).
		Suffix("RETURNING " + joinColumns(goalSelectColumns)).
		ToSQL()
	if err != nil {
		return goal.Goal{}, fmt.Errorf("build insert goal query: %w", err)
	}

	var row goalTableModel
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, query, args...); err != nil {
		if isForeignKeyViolation(err) {
			return goal.Goal{}, fmt.Errorf("insert goal player=%d: %w (%v)", g.PlayerID, goal.ErrUnknownReference, err)
		}
		return goal.Goal{}, fmt.Errorf("insert goal player=%d: %w", g.PlayerID, err)
	}

	return goalFromRow(row), nil
}

func (r *GoalRepository) ListByPlayer(ctx context.Context, playerID int64) ([]goal.Goal, error) {
	query, args, err := qb.Select(goalSelectColumns...).From("goals").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("scored_on", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select goals by player query: %w", err)
	}

	var rows []goalTableModel
	if err := sqlx.SelectContext(ctx, executor(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select goals by player: %w", err)
	}

	out := make([]goal.Goal, 0, len(rows))
	for _, row := range rows {
		out = append(out, goalFromRow(row))
	}
	return out, nil
}

func (r *GoalRepository) SumByPlayer(ctx context.Context, playerID int64) (int64, error) {
	query, args, err := qb.Select("COALESCE(SUM(quantity), 0)").From("goals").
		Where(qb.Eq("player_id", playerID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build sum goals query: %w", err)
	}

	var total int64
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &total, query, args...); err != nil {
		return 0, fmt.Errorf("sum goals player=%d: %w", playerID, err)
	}
	return total, nil
}
