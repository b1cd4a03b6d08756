package postgres

import (
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/player"
)

type playerTableModel struct {
	ID         int64     `db:"id,omitinsert"`
	Name       string    `db:"name"`
	Position   string    `db:"position"`
	TotalGoals int64     `db:"total_goals,omitinsert"`
	CreatedAt  time.Time `db:"created_at,omitinsert"`
}

var playerSelectColumns = []string{"id", "name", "position", "total_goals", "created_at"}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:         row.ID,
		Name:       row.Name,
		Position:   player.Position(row.Position),
		TotalGoals: row.TotalGoals,
	}
}
