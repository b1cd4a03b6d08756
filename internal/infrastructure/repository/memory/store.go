package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/football-manager/internal/domain/goal"
	"github.com/riskibarqy/football-manager/internal/domain/match"
	"github.com/riskibarqy/football-manager/internal/domain/player"
)

// Store holds every table of the in-memory backend. Repositories are views over
// one Store so goal inserts can check player and match references.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	players      map[int64]player.Player
	matches      map[int64]match.Match
	goals        []goal.Goal
	nextPlayerID int64
	nextMatchID  int64
	nextGoalID   int64
}

func NewStore() *Store {
	return &Store{
		players: make(map[int64]player.Player),
		matches: make(map[int64]match.Match),
	}
}

type snapshot struct {
	players      map[int64]player.Player
	matches      map[int64]match.Match
	goals        []goal.Goal
	nextPlayerID int64
	nextMatchID  int64
	nextGoalID   int64
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := snapshot{
		players:      make(map[int64]player.Player, len(s.players)),
		matches:      make(map[int64]match.Match, len(s.matches)),
		goals:        slices.Clone(s.goals),
		nextPlayerID: s.nextPlayerID,
		nextMatchID:  s.nextMatchID,
		nextGoalID:   s.nextGoalID,
	}
	for id, p := range s.players {
		snap.players[id] = p
	}
	for id, m := range s.matches {
		snap.matches[id] = m
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players = snap.players
	s.matches = snap.matches
	s.goals = snap.goals
	s.nextPlayerID = snap.nextPlayerID
	s.nextMatchID = snap.nextMatchID
	s.nextGoalID = snap.nextGoalID
}

type txContextKey struct{}

// Transactor serializes transactions over a Store and restores the pre-transaction
// state when fn fails or panics.
type Transactor struct {
	store *Store
}

func NewTransactor(store *Store) *Transactor {
	return &Transactor{store: store}
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txContextKey{}).(*Store); ok {
		return fn(ctx)
	}

	t.store.txMu.Lock()
	defer t.store.txMu.Unlock()

	snap := t.store.snapshot()
	defer func() {
		if rec := recover(); rec != nil {
			t.store.restore(snap)
			panic(rec)
		}
		if err != nil {
			t.store.restore(snap)
		}
	}()

	return fn(context.WithValue(ctx, txContextKey{}, t.store))
}

// write runs fn under the table lock. Writes outside a transaction also wait for
// any running transaction so a rollback cannot discard them.
func (s *Store) write(ctx context.Context, fn func() error) error {
	if _, inTx := ctx.Value(txContextKey{}).(*Store); !inTx {
		s.txMu.Lock()
		defer s.txMu.Unlock()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}
