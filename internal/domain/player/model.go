package player

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound  = errors.New("player not found")
	ErrNameTaken = errors.New("player name already registered")
)

// Position is the free-form role label a player registers with.
type Position string

// Suggested positions offered to registration forms. Any non-empty value is accepted.
const (
	PositionGoalkeeper Position = "Goleiro"
	PositionDefender   Position = "Zagueiro"
	PositionMidfielder Position = "Meio-campo"
	PositionForward    Position = "Atacante"
)

var KnownPositions = []Position{
	PositionGoalkeeper,
	PositionDefender,
	PositionMidfielder,
	PositionForward,
}

// Player is a registered participant. TotalGoals mirrors the sum of the player's goal ledger.
type Player struct {
	ID         int64
	Name       string
	Position   Position
	TotalGoals int64
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if strings.TrimSpace(string(p.Position)) == "" {
		return fmt.Errorf("player position is required")
	}
	if p.TotalGoals < 0 {
		return fmt.Errorf("player total goals cannot be negative")
	}

	return nil
}
