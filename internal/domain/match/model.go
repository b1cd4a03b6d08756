package match

import (
	"fmt"
	"strings"
	"time"
)

// Match is an immutable record of a played game.
// Winner is free text and is not checked against Team1/Team2.
type Match struct {
	ID     int64
	Date   time.Time
	Team1  string
	Team2  string
	Winner string
}

func (m Match) Validate() error {
	if strings.TrimSpace(m.Team1) == "" {
		return fmt.Errorf("match team1 is required")
	}
	if strings.TrimSpace(m.Team2) == "" {
		return fmt.Errorf("match team2 is required")
	}
	if m.Date.IsZero() {
		return fmt.Errorf("match date is required")
	}

	return nil
}
