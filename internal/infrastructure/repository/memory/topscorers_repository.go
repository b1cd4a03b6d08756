package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/football-manager/internal/domain/topscorers"
)

type TopScorersRepository struct {
	store *Store
}

func NewTopScorersRepository(store *Store) *TopScorersRepository {
	return &TopScorersRepository{store: store}
}

func (r *TopScorersRepository) ListTopScorers(_ context.Context, w topscorers.Window, limit int) ([]topscorers.TopScorer, error) {
	r.store.mu.RLock()
	totals := make(map[int64]int64)
	for _, g := range r.store.goals {
		if w.Contains(g.Date) {
			totals[g.PlayerID] += int64(g.Quantity)
		}
	}

	out := make([]topscorers.TopScorer, 0, len(totals))
	for playerID, total := range totals {
		p, ok := r.store.players[playerID]
		if !ok {
			continue
		}
		out = append(out, topscorers.TopScorer{Player: p, TotalGoals: total})
	}
	r.store.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalGoals != out[j].TotalGoals {
			return out[i].TotalGoals > out[j].TotalGoals
		}
		return out[i].Player.ID < out[j].Player.ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return topscorers.Rank(out), nil
}
