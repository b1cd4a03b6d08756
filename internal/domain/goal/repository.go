package goal

import "context"

// Repository describes goal ledger persistence needs from use cases.
type Repository interface {
	// Create appends g. Returns ErrUnknownReference when the player or match does not exist.
	Create(ctx context.Context, g Goal) (Goal, error)
	// ListByPlayer returns a player's entries oldest first.
	ListByPlayer(ctx context.Context, playerID int64) ([]Goal, error)
	// SumByPlayer returns the ledger total for a player, zero when there are no entries.
	SumByPlayer(ctx context.Context, playerID int64) (int64, error)
}
