package goal

import (
	"errors"
	"time"
)

// ErrUnknownReference is returned when a goal points at a player or match that does not exist.
var ErrUnknownReference = errors.New("goal references unknown player or match")

// Goal is one append-only ledger entry. Quantity is the number of goals scored in the entry.
type Goal struct {
	ID       int64
	PlayerID int64
	MatchID  *int64
	Quantity int
	Date     time.Time
}

// Day truncates t to midnight UTC. Ledger dates are stored at day precision.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
