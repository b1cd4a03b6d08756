package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	// Create inserts p and returns it with its assigned id. Returns ErrNameTaken on a duplicate name.
	Create(ctx context.Context, p Player) (Player, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	GetByName(ctx context.Context, name string) (Player, bool, error)
	// List returns every player ordered by name.
	List(ctx context.Context) ([]Player, error)
	// IncrementGoals adds amount to the cached total. Returns ErrNotFound when no row matches.
	IncrementGoals(ctx context.Context, id int64, amount int64) error
}
