package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/football-manager/internal/domain/match"
)

type MatchRepository struct {
	store *Store
}

func NewMatchRepository(store *Store) *MatchRepository {
	return &MatchRepository{store: store}
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) (match.Match, error) {
	err := r.store.write(ctx, func() error {
		r.store.nextMatchID++
		m.ID = r.store.nextMatchID
		r.store.matches[m.ID] = m
		return nil
	})
	if err != nil {
		return match.Match{}, err
	}
	return m, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id int64) (match.Match, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	m, ok := r.store.matches[id]
	return m, ok, nil
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.store.mu.RLock()
	out := make([]match.Match, 0, len(r.store.matches))
	for _, m := range r.store.matches {
		out = append(out, m)
	}
	r.store.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
