package postgres

import (
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/match"
)

type matchTableModel struct {
	ID        int64     `db:"id,omitinsert"`
	PlayedAt  time.Time `db:"played_at"`
	Team1     string    `db:"team1"`
	Team2     string    `db:"team2"`
	Winner    string    `db:"winner"`
	CreatedAt time.Time `db:"created_at,omitinsert"`
}

var matchSelectColumns = []string{"id", "played_at", "team1", "team2", "winner", "created_at"}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:     row.ID,
		Date:   row.PlayedAt.UTC(),
		Team1:  row.Team1,
		Team2:  row.Team2,
		Winner: row.Winner,
	}
}
