package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/goal"
)

type goalTableModel struct {
	ID        int64         `db:"id"`
	PlayerID  int64         `db:"player_id"`
	MatchID   sql.NullInt64 `db:"match_id"`
	Quantity  int64         `db:"quantity"`
	ScoredOn  time.Time     `db:"scored_on"`
	CreatedAt time.Time     `db:"created_at"`
}

var goalSelectColumns = []string{"id", "player_id", "match_id", "quantity", "scored_on", "created_at"}

func goalFromRow(row goalTableModel) goal.Goal {
	out := goal.Goal{
		ID:       row.ID,
		PlayerID: row.PlayerID,
		Quantity: int(row.Quantity),
		Date:     goal.Day(row.ScoredOn),
	}
	if row.MatchID.Valid {
		matchID := row.MatchID.Int64
		out.MatchID = &matchID
	}
	return out
}

func nullableMatchID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}
