package postgres

import (
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/topscorers"
)

type topScorerRow struct {
	PlayerID    int64  `db:"player_id"`
	Name        string `db:"name"`
	Position    string `db:"position"`
	TotalGoals  int64  `db:"total_goals"`
	PeriodGoals int64  `db:"period_goals"`
}

func topScorerFromRow(row topScorerRow) topscorers.TopScorer {
	return topscorers.TopScorer{
		Player: player.Player{
			ID:         row.PlayerID,
			Name:       row.Name,
			Position:   player.Position(row.Position),
			TotalGoals: row.TotalGoals,
		},
		TotalGoals: row.PeriodGoals,
	}
}
