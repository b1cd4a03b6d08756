package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-manager/internal/domain/topscorers"
	qb "github.com/riskibarqy/football-manager/internal/platform/querybuilder"
)

type TopScorersRepository struct {
	db *sqlx.DB
}

func NewTopScorersRepository(db *sqlx.DB) *TopScorersRepository {
	return &TopScorersRepository{db: db}
}

func (r *TopScorersRepository) ListTopScorers(ctx context.Context, w topscorers.Window, limit int) ([]topscorers.TopScorer, error) {
	query, args, err := topScorersQuery(w, limit)
	if err != nil {
		return nil, fmt.Errorf("build top scorers query: %w", err)
	}

	var rows []topScorerRow
	if err := sqlx.SelectContext(ctx, executor(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select top scorers window=%s: %w", w.Key(), err)
	}

	out := make([]topscorers.TopScorer, 0, len(rows))
	for _, row := range rows {
		out = append(out, topScorerFromRow(row))
	}
	return topscorers.Rank(out), nil
}

// scored_on is a DATE column; window bounds are bound as untyped date strings.
func topScorersQuery(w topscorers.Window, limit int) (string, []any, error) {
	return qb.Select(
		"p.id AS player_id",
		"p.name",
		"p.position",
		"p.total_goals",
		"SUM(g.quantity) AS period_goals",
	).
		From("goals g").
		Join("JOIN players p ON p.id = g.player_id").
		Where(
			qb.Gte("g.scored_on", w.Start.Format(time.DateOnly)),
			qb.Lt("g.scored_on", w.End.Format(time.DateOnly)),
		).
		GroupBy("p.id", "p.name", "p.position", "p.total_goals").
		OrderBy("period_goals DESC", "p.id ASC").
		Limit(limit).
		ToSQL()
}
