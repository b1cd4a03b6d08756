package memory

import (
	"context"

	"github.com/riskibarqy/football-manager/internal/domain/goal"
)

type GoalRepository struct {
	store *Store
}

func NewGoalRepository(store *Store) *GoalRepository {
	return &GoalRepository{store: store}
}

func (r *GoalRepository) Create(ctx context.Context, g goal.Goal) (goal.Goal, error) {
	err := r.store.write(ctx, func() error {
		if _, ok := r.store.players[g.PlayerID]; !ok {
			return goal.ErrUnknownReference
		}
		if g.MatchID != nil {
			if _, ok := r.store.matches[*g.MatchID]; !ok {
				return goal.ErrUnknownReference
			}
			matchID := *g.MatchID
			g.MatchID = &matchID
		}
		r.store.nextGoalID++
		g.ID = r.store.nextGoalID
		r.store.goals = append(r.store.goals, g)
		return nil
	})
	if err != nil {
		return goal.Goal{}, err
	}
	return g, nil
}

func (r *GoalRepository) ListByPlayer(_ context.Context, playerID int64) ([]goal.Goal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]goal.Goal, 0)
	for _, g := range r.store.goals {
		if g.PlayerID == playerID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *GoalRepository) SumByPlayer(_ context.Context, playerID int64) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var total int64
	for _, g := range r.store.goals {
		if g.PlayerID == playerID {
			total += int64(g.Quantity)
		}
	}
	return total, nil
}
