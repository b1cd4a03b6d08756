package topscorers

import "context"

// Repository aggregates the goal ledger into leaderboards.
type Repository interface {
	// ListTopScorers sums goal quantities per player inside w, orders by sum descending
	// then player id ascending, and returns at most limit ranked rows.
	ListTopScorers(ctx context.Context, w Window, limit int) ([]TopScorer, error)
}
