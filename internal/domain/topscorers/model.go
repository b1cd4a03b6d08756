package topscorers

import (
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/player"
)

// DefaultLimit is the number of rows a leaderboard returns.
const DefaultLimit = 10

// TopScorer is one leaderboard row. Rank is the 1-based position in the board.
type TopScorer struct {
	Rank       int
	Player     player.Player
	TotalGoals int64
}

// Window is a half-open [Start, End) range of ledger days, in UTC.
type Window struct {
	Start time.Time
	End   time.Time
}

// MonthWindow covers the given calendar month. December rolls over to January of year+1.
func MonthWindow(year int, month time.Month) Window {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	var end time.Time
	if month == time.December {
		end = time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	} else {
		end = time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	}
	return Window{Start: start, End: end}
}

// YearWindow covers Jan 1 of year up to Jan 1 of year+1.
func YearWindow(year int) Window {
	return Window{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Key identifies the window in cache keys and logs.
func (w Window) Key() string {
	return w.Start.Format(time.DateOnly) + ".." + w.End.Format(time.DateOnly)
}

// Rank assigns 1-based ranks in slice order.
func Rank(items []TopScorer) []TopScorer {
	for i := range items {
		items[i].Rank = i + 1
	}
	return items
}
