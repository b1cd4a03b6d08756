package usecase

import "context"

// Transactor runs fn in a single store transaction. Repositories called with the
// context passed to fn take part in it. The transaction commits when fn returns
// nil and rolls back on error or panic. Nested calls join the outer transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// LeaderboardInvalidator drops cached leaderboards after the ledger changes.
type LeaderboardInvalidator interface {
	InvalidateLeaderboards(ctx context.Context)
}

type noopInvalidator struct{}

func (noopInvalidator) InvalidateLeaderboards(context.Context) {}
