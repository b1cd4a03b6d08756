package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, m Match) (Match, error)
	GetByID(ctx context.Context, id int64) (Match, bool, error)
	// List returns matches newest first.
	List(ctx context.Context) ([]Match, error)
}
